package geometry

import (
	"math"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/material"
)

func testMaterial() core.Material {
	return material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
}

func infiniteInterval() core.Interval {
	return core.NewInterval(0.001, math.Inf(1))
}

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial())

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectT   float64
	}{
		{
			name:      "Head-on hit from outside",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			expectHit: true,
			expectT:   4,
		},
		{
			name:      "Miss to the side",
			ray:       core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, 0, -1)),
			expectHit: false,
		},
		{
			name:      "Pointing away",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			expectHit: false,
		},
		{
			name:      "Grazing miss",
			ray:       core.NewRay(core.NewVec3(0, 1.001, 0), core.NewVec3(0, 0, -1)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(tt.ray, infiniteInterval())
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.expectT, hit.T)
			}
			// The hit point must satisfy the ray equation
			if hit.Point.Subtract(tt.ray.At(hit.T)).Length() > 1e-9 {
				t.Errorf("Hit point %v does not lie on the ray", hit.Point)
			}
			if !hit.FrontFace {
				t.Error("Hit from outside should be front-facing")
			}
		})
	}
}

func TestSphere_HitFromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	hit, isHit := sphere.Hit(ray, infiniteInterval())
	if !isHit {
		t.Fatal("Ray from the center should hit the shell")
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected t=2, got %v", hit.T)
	}
	if hit.FrontFace {
		t.Error("Hit from inside should be back-facing")
	}
	// Stored normal must oppose the ray direction
	if hit.Normal.Dot(ray.Direction) >= 0 {
		t.Errorf("Normal %v should oppose the ray direction", hit.Normal)
	}
}

func TestSphere_IntervalClipsNearRoot(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Near root at t=4 is excluded, far root at t=6 should be returned
	hit, isHit := sphere.Hit(ray, core.NewInterval(5, math.Inf(1)))
	if !isHit {
		t.Fatal("Far root should be found when the near root is clipped")
	}
	if math.Abs(hit.T-6) > 1e-9 {
		t.Errorf("Expected t=6, got %v", hit.T)
	}

	// Both roots excluded
	if _, isHit := sphere.Hit(ray, core.NewInterval(7, math.Inf(1))); isHit {
		t.Error("No hit expected when both roots are outside the interval")
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec2
	}{
		{"Positive X", core.NewVec3(1, 0, 0), core.NewVec2(0.5, 0.5)},
		{"North pole", core.NewVec3(0, 1, 0), core.NewVec2(0.5, 1)},
		{"South pole", core.NewVec3(0, -1, 0), core.NewVec2(0.5, 0)},
		{"Positive Z", core.NewVec3(0, 0, 1), core.NewVec2(0.25, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sphereUV(tt.point)
			if math.Abs(got.X-tt.expected.X) > 1e-9 || math.Abs(got.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("Expected (%v,%v), got (%v,%v)", tt.expected.X, tt.expected.Y, got.X, got.Y)
			}
		})
	}
}

func TestMovingSphere(t *testing.T) {
	// Center travels from the origin to (0,2,0) over the exposure
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0.5, testMaterial())

	atStart := core.NewRayAt(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0)
	if _, isHit := sphere.Hit(atStart, infiniteInterval()); !isHit {
		t.Error("Ray at time 0 should hit the sphere at its start position")
	}

	atEnd := core.NewRayAt(core.NewVec3(0, 2, -5), core.NewVec3(0, 0, 1), 1)
	if _, isHit := sphere.Hit(atEnd, infiniteInterval()); !isHit {
		t.Error("Ray at time 1 should hit the sphere at its end position")
	}

	crossed := core.NewRayAt(core.NewVec3(0, 2, -5), core.NewVec3(0, 0, 1), 0)
	if _, isHit := sphere.Hit(crossed, infiniteInterval()); isHit {
		t.Error("Ray at time 0 should miss the end position")
	}

	// The bounding box must cover the whole motion range
	box := sphere.BoundingBox()
	if box.Min.Y > -0.5+1e-9 || box.Max.Y < 2.5-1e-9 {
		t.Errorf("Bounding box %v..%v does not cover the motion", box.Min, box.Max)
	}
}
