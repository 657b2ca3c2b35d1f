package core

import "math"

// Minimum extent of an AABB along any axis. Planar primitives such as quads
// produce zero-volume boxes; padding keeps the slab test well-defined.
const aabbMinExtent = 1e-4

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points, padding any
// degenerate (near-zero extent) axis
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}.padToMinimum()
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}.padToMinimum()
}

// padToMinimum widens near-degenerate axes to aabbMinExtent
func (aabb AABB) padToMinimum() AABB {
	if aabb.Max.X-aabb.Min.X < aabbMinExtent {
		aabb.Min.X -= aabbMinExtent / 2
		aabb.Max.X += aabbMinExtent / 2
	}
	if aabb.Max.Y-aabb.Min.Y < aabbMinExtent {
		aabb.Min.Y -= aabbMinExtent / 2
		aabb.Max.Y += aabbMinExtent / 2
	}
	if aabb.Max.Z-aabb.Min.Z < aabbMinExtent {
		aabb.Min.Z -= aabbMinExtent / 2
		aabb.Max.Z += aabbMinExtent / 2
	}
	return aabb
}

// Hit tests if a ray intersects this AABB within the interval using the slab method
func (aabb AABB) Hit(ray Ray, t Interval) bool {
	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis)
		max := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Ray parallel to this slab: inside or outside, never crossing
		if math.Abs(direction) < 1e-12 {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		t.Min = math.Max(t.Min, t1)
		t.Max = math.Min(t.Max, t2)
		if t.Max <= t.Min {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
