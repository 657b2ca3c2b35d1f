package geometry

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// NewBox returns a composite of six quads forming the axis-aligned box with
// opposite corners a and b
func NewBox(a, b core.Vec3, material core.Material) *HittableList {
	min := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	max := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	return NewHittableList(
		NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, material),          // front
		NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, material), // right
		NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, material), // back
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, material),          // left
		NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), material), // top
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, material),          // bottom
	)
}
