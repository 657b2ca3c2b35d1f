package geometry

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// Sphere represents a sphere, optionally with a moving center. The center
// travels from Center to Center+CenterVec over the ray time range [0,1].
type Sphere struct {
	Center    core.Vec3
	CenterVec core.Vec3
	Radius    float64
	Material  core.Material
	bbox      core.AABB
}

// NewSphere creates a static sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
		bbox:     core.NewAABB(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere whose center moves from center0 to center1
// over the exposure time
func NewMovingSphere(center0, center1 core.Vec3, radius float64, material core.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	box0 := core.NewAABB(center0.Subtract(rvec), center0.Add(rvec))
	box1 := core.NewAABB(center1.Subtract(rvec), center1.Add(rvec))
	return &Sphere{
		Center:    center0,
		CenterVec: center1.Subtract(center0),
		Radius:    radius,
		Material:  material,
		bbox:      box0.Union(box1),
	}
}

// centerAt returns the sphere center at the given ray time
func (s *Sphere) centerAt(time float64) core.Vec3 {
	return s.Center.Add(s.CenterVec.Multiply(time))
}

// Hit tests if a ray intersects the sphere within the interval
func (s *Sphere) Hit(ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	center := s.centerAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2bt + c = 0 with b = halfB
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Take the nearest root inside the interval
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if !t.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !t.Surrounds(root) {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.UV = sphereUV(outwardNormal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere,
// covering the full motion range for moving spheres
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// sphereUV maps a point on the unit sphere to latitude/longitude texture
// coordinates: u in [0,1] around the Y axis, v in [0,1] from south to north pole
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
