package scene

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/material"
)

func cornellCamera() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          40,
		DefocusAngle:  0,
		FocusDistance: 10,
	}
}

func cornellWalls(world *geometry.HittableList) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	world.Add(geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red))
	world.Add(geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white))
	world.Add(geometry.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white))
	world.Add(geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white))
}

// NewCornellBoxScene builds the Cornell box with two interior boxes lit by
// a ceiling quad light
func NewCornellBoxScene() *Scene {
	world := geometry.NewHittableList()
	cornellWalls(world)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	world.Add(geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white))
	world.Add(geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white))

	return &Scene{
		Name:        "cornell",
		Objects:     world,
		Background:  core.SolidBackground(core.Vec3{}),
		AspectRatio: 1,
		Camera:      cornellCamera(),
	}
}

// NewCornellSmokeScene builds the Cornell box with the interior boxes
// replaced by constant-density smoke volumes
func NewCornellSmokeScene() *Scene {
	world := geometry.NewHittableList()
	cornellWalls(world)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	box1 := geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white)
	box2 := geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white)

	world.Add(geometry.NewConstantMedium(box1, 0.01, material.NewIsotropic(core.NewVec3(1, 1, 1))))
	world.Add(geometry.NewConstantMedium(box2, 0.01, material.NewIsotropic(core.NewVec3(0, 0, 0))))

	return &Scene{
		Name:        "cornell-smoke",
		Objects:     world,
		Background:  core.SolidBackground(core.Vec3{}),
		AspectRatio: 1,
		Camera:      cornellCamera(),
	}
}
