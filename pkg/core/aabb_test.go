package core

import (
	"math"
	"testing"
)

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		interval Interval
		expected bool
	}{
		{
			name:     "Straight through center",
			ray:      NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)),
			interval: NewInterval(0.001, math.Inf(1)),
			expected: true,
		},
		{
			name:     "Misses to the side",
			ray:      NewRay(NewVec3(0, 5, -5), NewVec3(0, 0, 1)),
			interval: NewInterval(0.001, math.Inf(1)),
			expected: false,
		},
		{
			name:     "Pointing away",
			ray:      NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)),
			interval: NewInterval(0.001, math.Inf(1)),
			expected: false,
		},
		{
			name:     "Origin inside the box",
			ray:      NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)),
			interval: NewInterval(0.001, math.Inf(1)),
			expected: true,
		},
		{
			name:     "Interval too short to reach",
			ray:      NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)),
			interval: NewInterval(0.001, 2),
			expected: false,
		},
		{
			name:     "Parallel ray inside the slab",
			ray:      NewRay(NewVec3(0, 0.5, -5), NewVec3(0, 0, 1)),
			interval: NewInterval(0.001, math.Inf(1)),
			expected: true,
		},
		{
			name:     "Parallel ray outside the slab",
			ray:      NewRay(NewVec3(0, 2, -5), NewVec3(0, 0, 1)),
			interval: NewInterval(0.001, math.Inf(1)),
			expected: false,
		},
		{
			name:     "Diagonal through a corner region",
			ray:      NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)),
			interval: NewInterval(0.001, math.Inf(1)),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.interval); got != tt.expected {
				t.Errorf("Expected hit=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_DegenerateAxisPadding(t *testing.T) {
	// A quad in the XY plane has zero Z extent; the box must still be hittable
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 0))

	if size := box.Size(); size.Z <= 0 {
		t.Fatalf("Degenerate axis should be padded, got Z extent %v", size.Z)
	}

	ray := NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, 1))
	if !box.Hit(ray, NewInterval(0.001, math.Inf(1))) {
		t.Error("Ray perpendicular to a planar box should hit it")
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(-1, -1, -1), NewVec3(0, 0, 0))
	b := NewAABB(NewVec3(2, 2, 2), NewVec3(3, 3, 3))
	u := a.Union(b)

	if !vecsClose(u.Min, a.Min) || !vecsClose(u.Max, b.Max) {
		t.Errorf("Union should span both boxes, got %v..%v", u.Min, u.Max)
	}
	if !u.IsValid() {
		t.Error("Union of valid boxes should be valid")
	}
}

func TestAABB_LongestAxis(t *testing.T) {
	tests := []struct {
		name     string
		box      AABB
		expected int
	}{
		{"X dominant", NewAABB(NewVec3(0, 0, 0), NewVec3(10, 1, 1)), 0},
		{"Y dominant", NewAABB(NewVec3(0, 0, 0), NewVec3(1, 10, 1)), 1},
		{"Z dominant", NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 10)), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.LongestAxis(); got != tt.expected {
				t.Errorf("Expected axis %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestAABB_Center(t *testing.T) {
	box := NewAABB(NewVec3(0, 2, 4), NewVec3(2, 4, 6))
	if got := box.Center(); !vecsClose(got, NewVec3(1, 3, 5)) {
		t.Errorf("Expected (1,3,5), got %v", got)
	}
}
