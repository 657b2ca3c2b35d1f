package scene

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/material"
)

// NewFinalScene builds the showcase composite: a ground of randomized boxes,
// a moving sphere, glass and metal spheres, a fog-filled sphere, a textured
// globe, a marble sphere and a cube of small diffuse spheres, all under a
// single quad light.
func NewFinalScene(globeSurface core.Texture) *Scene {
	random := core.NewRandom(19840822)
	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := 1 + 100*random.Float64()
			world.Add(geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+w, y1, z0+w),
				ground,
			))
		}
	}

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center := core.NewVec3(400, 400, 200)
	world.Add(geometry.NewMovingSphere(center, center.Add(core.NewVec3(30, 0, 0)), 50,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1)))

	// Subsurface-looking sphere: glass shell filled with blue fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMedium(boundary, 0.2, material.NewIsotropic(core.NewVec3(0.2, 0.4, 0.9))))

	// Thin global haze
	haze := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMedium(haze, 0.0001, material.NewIsotropic(core.NewVec3(1, 1, 1))))

	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(globeSurface)))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
		material.NewTexturedLambertian(material.NewNoiseTexture(0.2, 73))))

	// Cube of small spheres, offset into place
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	offset := core.NewVec3(-100, 270, 395)
	for i := 0; i < 1000; i++ {
		center := core.RandomVec3(random, 0, 165).Add(offset)
		world.Add(geometry.NewSphere(center, 10, white))
	}

	return &Scene{
		Name:        "final",
		Objects:     world,
		Background:  core.SolidBackground(core.Vec3{}),
		AspectRatio: 1,
		Camera: CameraConfig{
			LookFrom:      core.NewVec3(478, 278, -600),
			LookAt:        core.NewVec3(278, 278, 0),
			VUp:           core.NewVec3(0, 1, 0),
			VFov:          40,
			DefocusAngle:  0,
			FocusDistance: 10,
		},
	}
}
