package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/scene"
)

// Camera maps pixel coordinates plus per-sample jitter to world-space rays,
// modeling vertical field of view, orientation and thin-lens defocus blur.
// All derived vectors are computed once at construction.
type Camera struct {
	center       core.Vec3
	pixel00      core.Vec3
	pixelDeltaU  core.Vec3
	pixelDeltaV  core.Vec3
	defocusAngle float64
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// NewCamera derives the viewport geometry from the camera configuration for
// the given image dimensions. It fails on degenerate configurations: zero
// view direction, vup parallel to the view direction, or a non-positive
// field of view or focus distance.
func NewCamera(cfg scene.CameraConfig, width, height int) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("camera: non-positive image dimensions %dx%d", width, height)
	}
	if cfg.VFov <= 0 || cfg.VFov >= 180 {
		return nil, fmt.Errorf("camera: vertical fov %.2f outside (0, 180)", cfg.VFov)
	}
	if cfg.FocusDistance <= 0 {
		return nil, fmt.Errorf("camera: non-positive focus distance %.2f", cfg.FocusDistance)
	}

	view := cfg.LookFrom.Subtract(cfg.LookAt)
	if view.NearZero() {
		return nil, fmt.Errorf("camera: lookfrom equals lookat %v", cfg.LookFrom)
	}

	// Orthonormal basis: w opposes the view direction, u points right, v up
	w := view.Normalize()
	uCross := cfg.VUp.Cross(w)
	if uCross.NearZero() {
		return nil, fmt.Errorf("camera: vup %v parallel to view direction", cfg.VUp)
	}
	u := uCross.Normalize()
	v := w.Cross(u)

	theta := cfg.VFov * math.Pi / 180
	halfHeight := math.Tan(theta/2) * cfg.FocusDistance
	viewportHeight := 2 * halfHeight
	viewportWidth := viewportHeight * float64(width) / float64(height)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	viewportUpperLeft := cfg.LookFrom.
		Subtract(w.Multiply(cfg.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	camera := &Camera{
		center:       cfg.LookFrom,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusAngle: cfg.DefocusAngle,
	}

	if cfg.DefocusAngle > 0 {
		defocusRadius := cfg.FocusDistance * math.Tan(cfg.DefocusAngle/2*math.Pi/180)
		camera.defocusDiskU = u.Multiply(defocusRadius)
		camera.defocusDiskV = v.Multiply(defocusRadius)
	}

	return camera, nil
}

// GetRay generates a ray through pixel (i, j) with sub-pixel jitter for
// anti-aliasing. With a positive defocus angle the origin is sampled from
// the lens disk. The direction is intentionally not normalized; the
// intersection math is scale-invariant in t.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	jitterX := random.Float64() - 0.5
	jitterY := random.Float64() - 0.5

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + jitterX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + jitterY))

	origin := c.center
	if c.defocusAngle > 0 {
		disk := core.RandomInUnitDisk(random)
		origin = c.center.
			Add(c.defocusDiskU.Multiply(disk.X)).
			Add(c.defocusDiskV.Multiply(disk.Y))
	}

	return core.NewRayAt(origin, pixelSample.Subtract(origin), random.Float64())
}
