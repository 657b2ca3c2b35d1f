package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
)

func randomSpheres(count int, seed int64) []core.Hittable {
	random := core.NewRandom(seed)
	objects := make([]core.Hittable, 0, count)
	for i := 0; i < count; i++ {
		center := core.RandomVec3(random, -50, 50)
		radius := 0.2 + 2*random.Float64()
		objects = append(objects, NewSphere(center, radius, testMaterial()))
	}
	return objects
}

func TestNewBVH_EmptyInput(t *testing.T) {
	if _, err := NewBVH(nil); !errors.Is(err, ErrNoPrimitives) {
		t.Errorf("Expected ErrNoPrimitives, got %v", err)
	}
	if _, err := NewBVH([]core.Hittable{}); !errors.Is(err, ErrNoPrimitives) {
		t.Errorf("Expected ErrNoPrimitives, got %v", err)
	}
}

func TestBVH_SingleObject(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial())
	bvh, err := NewBVH([]core.Hittable{sphere})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := bvh.Hit(ray, infiniteInterval())
	if !isHit {
		t.Fatal("Expected a hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %v", hit.T)
	}
}

// The BVH must agree with a brute-force linear search on every query
func TestBVH_MatchesLinearSearch(t *testing.T) {
	for _, count := range []int{1, 2, 5, 37, 500} {
		objects := randomSpheres(count, int64(count))
		list := NewHittableList(objects...)
		bvh, err := NewBVH(objects)
		if err != nil {
			t.Fatalf("count %d: unexpected error: %v", count, err)
		}

		random := core.NewRandom(99)
		for i := 0; i < 500; i++ {
			ray := core.NewRay(
				core.RandomVec3(random, -80, 80),
				core.RandomUnitVector(random),
			)

			linearHit, linearOk := list.Hit(ray, infiniteInterval())
			bvhHit, bvhOk := bvh.Hit(ray, infiniteInterval())

			if linearOk != bvhOk {
				t.Fatalf("count %d ray %d: linear hit=%v but bvh hit=%v", count, i, linearOk, bvhOk)
			}
			if !linearOk {
				continue
			}
			if math.Abs(linearHit.T-bvhHit.T) > 1e-9 {
				t.Fatalf("count %d ray %d: linear t=%v but bvh t=%v", count, i, linearHit.T, bvhHit.T)
			}
		}
	}
}

func TestBVH_MissesOutsideBounds(t *testing.T) {
	objects := randomSpheres(100, 3)
	bvh, err := NewBVH(objects)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// All spheres live inside |coord| <= 52; rays far away must miss
	ray := core.NewRay(core.NewVec3(500, 500, 500), core.NewVec3(0, 1, 0))
	if _, isHit := bvh.Hit(ray, infiniteInterval()); isHit {
		t.Error("Ray far outside the scene bounds should miss")
	}
}

func TestBVH_Stats(t *testing.T) {
	const count = 64
	bvh, err := NewBVH(randomSpheres(count, 11))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	stats := bvh.Stats()
	if stats.Objects != count {
		t.Errorf("Expected %d objects in leaves, got %d", count, stats.Objects)
	}
	if stats.LeafNodes == 0 || stats.TotalNodes < stats.LeafNodes {
		t.Errorf("Implausible node counts: %+v", stats)
	}
	// Median splits keep the tree roughly balanced
	if stats.MaxDepth > 2*int(math.Ceil(math.Log2(count)))+1 {
		t.Errorf("Tree too deep for %d objects: depth %d", count, stats.MaxDepth)
	}
}

func TestBVH_DeterministicConstruction(t *testing.T) {
	objects := randomSpheres(50, 5)
	a, _ := NewBVH(objects)
	b, _ := NewBVH(objects)

	if a.Stats() != b.Stats() {
		t.Error("Identical input should produce an identical hierarchy")
	}
}
