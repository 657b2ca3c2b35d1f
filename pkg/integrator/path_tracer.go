package integrator

import (
	"math"
	"math/rand"

	"github.com/lumen-render/lumen/pkg/core"
)

// Lower bound of the intersection interval for every cast ray. Starting
// strictly above zero prevents a bounce from re-hitting its own origin
// surface (shadow acne).
const tMinEpsilon = 0.001

// Integrator turns a camera ray into a color estimate
type Integrator interface {
	RayColor(ray core.Ray, random *rand.Rand) core.Vec3
}

// PathTracer estimates light transport by recursively sampling scatter
// directions at each surface hit, bounded by a hard depth cutoff
type PathTracer struct {
	world      core.Hittable
	background core.Background
	maxDepth   int
}

// NewPathTracer creates a path tracing integrator over the given world.
// The world is typically a built BVH; it is only read, never modified.
func NewPathTracer(world core.Hittable, background core.Background, maxDepth int) *PathTracer {
	return &PathTracer{
		world:      world,
		background: background,
		maxDepth:   maxDepth,
	}
}

// RayColor evaluates the light arriving along the ray. The scatter
// recursion is expressed as a loop carrying the running attenuation
// product: at each bounce the emitted term is weighted by the throughput
// accumulated so far, and a miss terminates the path with the background.
func (pt *PathTracer) RayColor(ray core.Ray, random *rand.Rand) core.Vec3 {
	color := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for depth := pt.maxDepth; depth > 0; depth-- {
		hit, isHit := pt.world.Hit(ray, core.NewInterval(tMinEpsilon, math.Inf(1)))
		if !isHit {
			return color.Add(throughput.MultiplyVec(pt.background(ray)))
		}

		emitted := hit.Material.Emitted(hit.UV, hit.Point)
		color = color.Add(throughput.MultiplyVec(emitted))

		scatter, didScatter := hit.Material.Scatter(ray, hit, random)
		if !didScatter {
			return color
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Depth exhausted: the remaining path contributes no energy
	return color
}
