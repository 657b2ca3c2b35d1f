package scene

import (
	"errors"
	"fmt"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
)

// ErrEmptyScene is returned when a scene contains no primitives
var ErrEmptyScene = errors.New("scene: no primitives")

// CameraConfig holds the camera extrinsics and lens parameters supplied by
// the scene (or overridden by the caller)
type CameraConfig struct {
	LookFrom      core.Vec3
	LookAt        core.Vec3
	VUp           core.Vec3
	VFov          float64 // Vertical field of view in degrees
	DefocusAngle  float64 // Lens cone angle in degrees; 0 disables defocus blur
	FocusDistance float64 // Distance to the plane of perfect focus
}

// DefaultCameraConfig returns the conventional starting camera
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          90,
		DefocusAngle:  0,
		FocusDistance: 10,
	}
}

// Scene owns the primitive collection, camera configuration and background
// function. It is built once and treated as immutable by the renderer.
type Scene struct {
	Name        string
	Objects     *geometry.HittableList
	Camera      CameraConfig
	Background  core.Background
	AspectRatio float64 // Width / height; image height is derived from it
}

// Validate checks the scene for configuration errors before any rendering
// work begins
func (s *Scene) Validate() error {
	if s.Objects == nil || len(s.Objects.Objects) == 0 {
		return ErrEmptyScene
	}
	if s.AspectRatio <= 0 {
		return fmt.Errorf("scene %q: non-positive aspect ratio %.3f", s.Name, s.AspectRatio)
	}
	if s.Background == nil {
		return fmt.Errorf("scene %q: nil background", s.Name)
	}
	return nil
}

// BuildBVH constructs the acceleration structure over the scene's
// primitives. The result is immutable and shared read-only by all workers.
func (s *Scene) BuildBVH() (*geometry.BVH, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return geometry.NewBVH(s.Objects.Objects)
}

// PrimitiveCount returns the number of top-level primitives in the scene
func (s *Scene) PrimitiveCount() int {
	if s.Objects == nil {
		return 0
	}
	return len(s.Objects.Objects)
}
