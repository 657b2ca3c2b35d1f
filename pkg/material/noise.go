package material

import (
	"math"
	"math/rand"

	"github.com/lumen-render/lumen/pkg/core"
)

const perlinPointCount = 256

// Perlin generates smooth gradient noise. Construction is seeded so that a
// given seed always yields the same noise field, keeping renders reproducible.
type Perlin struct {
	randVec [perlinPointCount]core.Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// NewPerlin creates a Perlin noise generator from a seed
func NewPerlin(seed int64) *Perlin {
	random := core.NewRandom(seed)

	p := &Perlin{}
	for i := range p.randVec {
		p.randVec[i] = core.RandomVec3(random, -1, 1).Normalize()
	}
	p.permX = generatePerm(random)
	p.permY = generatePerm(random)
	p.permZ = generatePerm(random)

	return p
}

func generatePerm(random *rand.Rand) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}

// Noise returns smoothed gradient noise in roughly [-1, 1] at the point
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.randVec[idx]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// Turbulence sums octaves of noise with halving weights
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0

	for octave := 0; octave < depth; octave++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}

	return math.Abs(accum)
}

// perlinInterp performs Hermitian-smoothed trilinear interpolation of the
// corner gradients
func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				accum += (float64(i)*uu + float64(1-i)*(1-uu)) *
					(float64(j)*vv + float64(1-j)*(1-vv)) *
					(float64(k)*ww + float64(1-k)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}

	return accum
}

// NoiseTexture produces a marble-like pattern from turbulence-perturbed
// sine bands
type NoiseTexture struct {
	Scale float64
	noise *Perlin
}

// NewNoiseTexture creates a noise texture with the given frequency scale
func NewNoiseTexture(scale float64, seed int64) *NoiseTexture {
	return &NoiseTexture{Scale: scale, noise: NewPerlin(seed)}
}

// Value evaluates the marble pattern at the point; UV is unused
func (n *NoiseTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	s := point.Multiply(n.Scale)
	value := 0.5 * (1 + math.Sin(s.Z+10*n.noise.Turbulence(s, 7)))
	return core.NewVec3(value, value, value)
}
