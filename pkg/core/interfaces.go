package core

import "math/rand"

// HitRecord contains information about a ray-primitive intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the incoming ray
	T         float64  // Parameter t along the ray
	UV        Vec2     // Surface texture coordinates
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material at the hit point
}

// SetFaceNormal stores the normal oriented against the ray and records
// which face was hit. outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is implemented by anything a ray can intersect. Hit must reject
// intersections whose t parameter falls outside the given interval.
type Hittable interface {
	Hit(ray Ray, t Interval) (*HitRecord, bool)
	BoundingBox() AABB
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The outgoing ray
	Attenuation Vec3 // Color attenuation, components in [0,1]
}

// Material decides whether and how light scatters at a surface hit
type Material interface {
	// Scatter returns the scattered ray and attenuation, or false if the
	// material absorbs the ray
	Scatter(rayIn Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool)

	// Emitted returns the light emitted at the hit point; zero for
	// non-emissive materials
	Emitted(uv Vec2, point Vec3) Vec3
}

// Texture maps a surface coordinate and point to a color
type Texture interface {
	Value(uv Vec2, point Vec3) Vec3
}

// Background maps a ray that escaped the scene to a color
type Background func(ray Ray) Vec3

// GradientBackground returns a vertical gradient sky from bottomColor to topColor
func GradientBackground(topColor, bottomColor Vec3) Background {
	return func(r Ray) Vec3 {
		unitDirection := r.Direction.Normalize()
		t := 0.5 * (unitDirection.Y + 1.0)
		return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
	}
}

// SolidBackground returns a constant background color
func SolidBackground(color Vec3) Background {
	return func(Ray) Vec3 {
		return color
	}
}

// Logger is the minimal logging surface the render packages depend on
type Logger interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}
