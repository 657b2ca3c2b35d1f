package geometry

import (
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/material"
)

func testMedium(density float64) *ConstantMedium {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial())
	phase := material.NewIsotropic(core.NewVec3(1, 1, 1))
	return NewConstantMedium(boundary, density, phase)
}

func TestConstantMedium_MissesOutsideBoundary(t *testing.T) {
	medium := testMedium(10)
	ray := core.NewRay(core.NewVec3(0, 5, -5), core.NewVec3(0, 0, 1))
	if _, isHit := medium.Hit(ray, infiniteInterval()); isHit {
		t.Error("Ray missing the boundary should miss the medium")
	}
}

func TestConstantMedium_DenseMediumScatters(t *testing.T) {
	// At density 1000 the expected free path is far smaller than the
	// boundary, so practically every crossing ray scatters inside it
	medium := testMedium(1000)

	random := core.NewRandom(17)
	for i := 0; i < 100; i++ {
		// Offsets of at most 0.7 keep every ray crossing the unit boundary
		origin := core.NewVec3(-5, 0.7*(2*random.Float64()-1), 0.7*(2*random.Float64()-1))
		ray := core.NewRay(origin, core.NewVec3(1, 0, 0))
		hit, isHit := medium.Hit(ray, infiniteInterval())
		if !isHit {
			t.Fatalf("Ray %d crossing a dense medium should scatter", i)
		}
		// Scatter point must lie inside the boundary sphere
		if hit.Point.Length() > 1+1e-6 {
			t.Fatalf("Scatter point %v outside the boundary", hit.Point)
		}
		if hit.Material == nil {
			t.Fatal("Scatter record should carry the phase material")
		}
	}
}

func TestConstantMedium_ThinMediumPassesRaysThrough(t *testing.T) {
	medium := testMedium(0.0001)

	random := core.NewRandom(17)
	hits := 0
	for i := 0; i < 100; i++ {
		origin := core.NewVec3(-5, 0.9*(2*random.Float64()-1), 0.9*(2*random.Float64()-1))
		ray := core.NewRay(origin, core.NewVec3(1, 0, 0))
		if _, isHit := medium.Hit(ray, infiniteInterval()); isHit {
			hits++
		}
	}
	if hits > 10 {
		t.Errorf("Nearly transparent medium should pass most rays, got %d/100 scatters", hits)
	}
}

func TestConstantMedium_Deterministic(t *testing.T) {
	medium := testMedium(5)
	ray := core.NewRay(core.NewVec3(-5, 0.1, 0.2), core.NewVec3(1, 0, 0))

	first, okFirst := medium.Hit(ray, infiniteInterval())
	second, okSecond := medium.Hit(ray, infiniteInterval())
	if okFirst != okSecond {
		t.Fatal("Identical queries should agree on hit or miss")
	}
	if okFirst && first.T != second.T {
		t.Errorf("Identical queries should scatter at the same depth: %v vs %v", first.T, second.T)
	}
}
