package material

import (
	"math/rand"

	"github.com/lumen-render/lumen/pkg/core"
)

// Lambertian represents a perfectly diffuse material with a texture-driven albedo
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian creates a lambertian material with a solid color albedo
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a lambertian material with a textured albedo
func NewTexturedLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter bounces the ray in a cosine-weighted random direction around the normal
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))

	// A random vector almost exactly opposite the normal yields a near-zero
	// direction; fall back to the normal itself
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return core.ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, scatterDirection, rayIn.Time),
		Attenuation: l.Albedo.Value(hit.UV, hit.Point),
	}, true
}

// Emitted returns zero; lambertian surfaces do not emit
func (l *Lambertian) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
