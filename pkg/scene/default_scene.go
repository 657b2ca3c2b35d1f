package scene

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/material"
)

// Sky gradient shared by the outdoor scenes
func skyBackground() core.Background {
	return core.GradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))
}

// NewDefaultScene builds the classic sphere-field cover scene: a checkered
// ground, three showcase spheres and a seeded grid of small random spheres
// (some of them moving).
func NewDefaultScene() *Scene {
	random := core.NewRandom(20250314)
	world := geometry.NewHittableList()

	ground := material.NewTexturedLambertian(
		material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(random, 0, 1).MultiplyVec(core.RandomVec3(random, 0, 1))
				mat := material.NewLambertian(albedo)
				center2 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				world.Add(geometry.NewMovingSphere(center, center2, 0.2, mat))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(random, 0.5, 1)
				fuzz := 0.5 * random.Float64()
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	return &Scene{
		Name:        "default",
		Objects:     world,
		Background:  skyBackground(),
		AspectRatio: 16.0 / 9.0,
		Camera: CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			VFov:          20,
			DefocusAngle:  0.6,
			FocusDistance: 10,
		},
	}
}

// NewCheckeredSpheresScene builds two large checkered spheres facing each other
func NewCheckeredSpheresScene() *Scene {
	checker := material.NewTexturedLambertian(
		material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return &Scene{
		Name:        "checkered-spheres",
		Objects:     world,
		Background:  skyBackground(),
		AspectRatio: 16.0 / 9.0,
		Camera: CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			VFov:          20,
			DefocusAngle:  0,
			FocusDistance: 10,
		},
	}
}

// NewPerlinSpheresScene builds a marble-textured sphere resting on a
// marble-textured ground
func NewPerlinSpheresScene() *Scene {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, 73))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return &Scene{
		Name:        "perlin-spheres",
		Objects:     world,
		Background:  skyBackground(),
		AspectRatio: 16.0 / 9.0,
		Camera: CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			VFov:          20,
			DefocusAngle:  0,
			FocusDistance: 10,
		},
	}
}

// NewEarthScene maps the given texture (typically a loaded earth image)
// onto a single sphere
func NewEarthScene(surface core.Texture) *Scene {
	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(surface))

	return &Scene{
		Name:        "earth",
		Objects:     geometry.NewHittableList(globe),
		Background:  skyBackground(),
		AspectRatio: 16.0 / 9.0,
		Camera: CameraConfig{
			LookFrom:      core.NewVec3(0, 0, 12),
			LookAt:        core.NewVec3(0, 0, 0),
			VUp:           core.NewVec3(0, 1, 0),
			VFov:          20,
			DefocusAngle:  0,
			FocusDistance: 10,
		},
	}
}

// NewSimpleLightScene builds a dark scene lit by a quad light and a glowing
// sphere over a marble ground
func NewSimpleLightScene() *Scene {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, 73))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
	)

	return &Scene{
		Name:        "simple-light",
		Objects:     world,
		Background:  core.SolidBackground(core.Vec3{}),
		AspectRatio: 16.0 / 9.0,
		Camera: CameraConfig{
			LookFrom:      core.NewVec3(26, 3, 6),
			LookAt:        core.NewVec3(0, 2, 0),
			VUp:           core.NewVec3(0, 1, 0),
			VFov:          20,
			DefocusAngle:  0,
			FocusDistance: 10,
		},
	}
}
