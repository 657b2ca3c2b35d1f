package core

import (
	"math/rand"
)

// NewRandom creates a deterministic random generator for a worker or tile.
// Each parallel unit of work owns its own generator; none are shared.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomVec3 returns a vector with components uniform in [min, max)
func RandomVec3(random *rand.Rand, min, max float64) Vec3 {
	return Vec3{
		X: min + (max-min)*random.Float64(),
		Y: min + (max-min)*random.Float64(),
		Z: min + (max-min)*random.Float64(),
	}
}

// RandomInUnitSphere generates a uniformly distributed point inside the unit
// sphere by rejection sampling. Renormalizing points from the cube would bias
// the angular distribution toward the corners, so rejection is required.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3(random, -1, 1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomOnHemisphere generates a uniform direction on the hemisphere around normal
func RandomOnHemisphere(random *rand.Rand, normal Vec3) Vec3 {
	onSphere := RandomUnitVector(random)
	if onSphere.Dot(normal) > 0 {
		return onSphere
	}
	return onSphere.Negate()
}

// RandomInUnitDisk generates a random point in the unit disk in the XY plane,
// used for defocus (lens) sampling
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{X: 2*random.Float64() - 1, Y: 2*random.Float64() - 1}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
