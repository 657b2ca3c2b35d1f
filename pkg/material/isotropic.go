package material

import (
	"math/rand"

	"github.com/lumen-render/lumen/pkg/core"
)

// Isotropic scatters uniformly in all directions; it is the phase function
// used by constant-density media
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic material with a solid color albedo
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// Scatter picks a uniformly random direction on the unit sphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, core.RandomUnitVector(random), rayIn.Time),
		Attenuation: i.Albedo.Value(hit.UV, hit.Point),
	}, true
}

// Emitted returns zero; media do not emit
func (i *Isotropic) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
