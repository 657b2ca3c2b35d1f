package material

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// SolidColor is a texture with a single uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidColorRGB creates a solid color texture from components
func NewSolidColorRGB(r, g, b float64) *SolidColor {
	return &SolidColor{Color: core.NewVec3(r, g, b)}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates two sub-textures in a 3D spatial checker
// pattern. The pattern is spatial rather than UV-based so it stays correct
// on curved surfaces.
type CheckerTexture struct {
	InvScale float64
	Even     core.Texture
	Odd      core.Texture
}

// NewCheckerTexture creates a checker from two sub-textures
func NewCheckerTexture(scale float64, even, odd core.Texture) *CheckerTexture {
	return &CheckerTexture{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors creates a checker from two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTexture(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value selects the even or odd sub-texture by the parity of the sum of the
// integer lattice coordinates of the point
func (c *CheckerTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	xInt := int(math.Floor(c.InvScale * point.X))
	yInt := int(math.Floor(c.InvScale * point.Y))
	zInt := int(math.Floor(c.InvScale * point.Z))

	if (xInt+yInt+zInt)%2 == 0 {
		return c.Even.Value(uv, point)
	}
	return c.Odd.Value(uv, point)
}

// ImageTexture samples a decoded pixel buffer by (u,v)
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, origin top-left: Pixels[y*Width + x]
}

// NewImageTexture creates an image texture from linear-space pixels
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// Value samples the image with nearest-neighbor filtering. Out-of-range UV
// coordinates are clamped, and v is flipped to match the buffer's top-left
// origin.
func (t *ImageTexture) Value(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 {
		// Solid cyan flags a missing image without failing the render
		return core.NewVec3(0, 1, 1)
	}

	u := core.NewInterval(0, 1).Clamp(uv.X)
	v := 1.0 - core.NewInterval(0, 1).Clamp(uv.Y)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
