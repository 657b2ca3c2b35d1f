package renderer

import (
	"math"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/scene"
)

func squareCamera() scene.CameraConfig {
	return scene.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          90,
		DefocusAngle:  0,
		FocusDistance: 1,
	}
}

func TestNewCamera_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*scene.CameraConfig)
		width  int
		height int
	}{
		{
			name:   "Zero width",
			mutate: func(*scene.CameraConfig) {},
			width:  0, height: 10,
		},
		{
			name:   "Negative height",
			mutate: func(*scene.CameraConfig) {},
			width:  10, height: -1,
		},
		{
			name:   "Zero fov",
			mutate: func(c *scene.CameraConfig) { c.VFov = 0 },
			width:  10, height: 10,
		},
		{
			name:   "Fov of 180",
			mutate: func(c *scene.CameraConfig) { c.VFov = 180 },
			width:  10, height: 10,
		},
		{
			name:   "Non-positive focus distance",
			mutate: func(c *scene.CameraConfig) { c.FocusDistance = 0 },
			width:  10, height: 10,
		},
		{
			name:   "Lookfrom equals lookat",
			mutate: func(c *scene.CameraConfig) { c.LookAt = c.LookFrom },
			width:  10, height: 10,
		},
		{
			name:   "Vup parallel to view direction",
			mutate: func(c *scene.CameraConfig) { c.VUp = core.NewVec3(0, 0, 1) },
			width:  10, height: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := squareCamera()
			tt.mutate(&cfg)
			if _, err := NewCamera(cfg, tt.width, tt.height); err == nil {
				t.Error("Expected an error for a degenerate configuration")
			}
		})
	}

	if _, err := NewCamera(squareCamera(), 10, 10); err != nil {
		t.Errorf("Valid configuration rejected: %v", err)
	}
}

func TestCamera_RayQuadrants(t *testing.T) {
	// 2x2 image, 90 degree fov: pixel centers sit in the four quadrants of
	// the viewport, at z = -1
	camera, err := NewCamera(squareCamera(), 2, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name string
		i, j int
		signX, signY float64
	}{
		{"Top-left", 0, 0, -1, 1},
		{"Top-right", 1, 0, 1, 1},
		{"Bottom-left", 0, 1, -1, -1},
		{"Bottom-right", 1, 1, 1, -1},
	}

	random := core.NewRandom(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for sample := 0; sample < 50; sample++ {
				ray := camera.GetRay(tt.i, tt.j, random)
				if ray.Origin != (core.Vec3{}) {
					t.Fatalf("Pinhole camera rays should start at the center, got %v", ray.Origin)
				}
				if ray.Direction.X*tt.signX < 0 || ray.Direction.Y*tt.signY < 0 {
					t.Fatalf("Direction %v not in the expected quadrant", ray.Direction)
				}
				if math.Abs(ray.Direction.Z+1) > 1e-9 {
					t.Fatalf("Viewport sits at z=-1, direction z should be -1, got %v", ray.Direction.Z)
				}
				if ray.Time < 0 || ray.Time >= 1 {
					t.Fatalf("Ray time %v outside [0, 1)", ray.Time)
				}
			}
		})
	}
}

func TestCamera_JitterStaysInsidePixel(t *testing.T) {
	camera, err := NewCamera(squareCamera(), 4, 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// With a 4-pixel-wide 90 degree viewport each pixel is 0.5 wide; all
	// jittered samples of one pixel stay within half a pixel of its center
	random := core.NewRandom(2)
	var first core.Ray
	for sample := 0; sample < 100; sample++ {
		ray := camera.GetRay(1, 2, random)
		if sample == 0 {
			first = ray
			continue
		}
		if ray.Direction.Subtract(first.Direction).Length() > 0.5*math.Sqrt2+1e-9 {
			t.Fatalf("Jitter larger than one pixel: %v vs %v", first.Direction, ray.Direction)
		}
	}
}

func TestCamera_DefocusSamplesLens(t *testing.T) {
	cfg := squareCamera()
	cfg.DefocusAngle = 10
	cfg.FocusDistance = 5

	camera, err := NewCamera(cfg, 4, 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	maxRadius := 5 * math.Tan(10.0/2*math.Pi/180)
	random := core.NewRandom(3)
	sawOffCenter := false
	for sample := 0; sample < 100; sample++ {
		ray := camera.GetRay(2, 2, random)
		offset := ray.Origin.Length()
		if offset > maxRadius+1e-9 {
			t.Fatalf("Lens sample %v outside the defocus disk (radius %v)", ray.Origin, maxRadius)
		}
		if offset > 1e-12 {
			sawOffCenter = true
		}
	}
	if !sawOffCenter {
		t.Error("Defocus blur should sample origins off the camera center")
	}
}
