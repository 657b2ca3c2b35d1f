package geometry

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// ConstantMedium wraps a boundary primitive with a constant-density
// participating medium (smoke, fog). Rays entering the boundary scatter at
// an exponentially distributed depth.
type ConstantMedium struct {
	Boundary      core.Hittable
	Phase         core.Material
	negInvDensity float64
}

// NewConstantMedium creates a constant-density medium bounded by the given
// primitive. The boundary must be convex for correct results.
func NewConstantMedium(boundary core.Hittable, density float64, phase core.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Phase:         phase,
		negInvDensity: -1.0 / density,
	}
}

// Hit samples a scattering event inside the boundary. The scatter depth is
// drawn from a deterministic hash of the ray, which keeps the Hittable
// contract pure: identical queries always return identical results, and no
// mutable generator state is shared between workers.
func (m *ConstantMedium) Hit(ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	hit1, ok := m.Boundary.Hit(ray, core.UniverseInterval)
	if !ok {
		return nil, false
	}
	hit2, ok := m.Boundary.Hit(ray, core.NewInterval(hit1.T+1e-4, math.Inf(1)))
	if !ok {
		return nil, false
	}

	t1 := math.Max(hit1.T, t.Min)
	t2 := math.Min(hit2.T, t.Max)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(rayUniform(ray))

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	root := t1 + hitDistance/rayLength
	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: m.Phase,
		// Normal and face orientation are arbitrary inside a medium
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
	}

	return hit, true
}

// BoundingBox returns the boundary's bounding box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}

// rayUniform derives a uniform sample in (0,1] from the ray's bits
func rayUniform(ray core.Ray) float64 {
	h := uint64(0x9e3779b97f4a7c15)
	for _, f := range [7]float64{
		ray.Origin.X, ray.Origin.Y, ray.Origin.Z,
		ray.Direction.X, ray.Direction.Y, ray.Direction.Z,
		ray.Time,
	} {
		h ^= math.Float64bits(f)
		h *= 0xbf58476d1ce4e5b9
		h ^= h >> 31
	}
	// Map the high 53 bits to (0,1]
	u := float64(h>>11) / float64(1<<53)
	if u <= 0 {
		return 1.0 / float64(1<<53)
	}
	return u
}
