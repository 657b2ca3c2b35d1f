package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/lumen-render/lumen/cmd"
	"github.com/lumen-render/lumen/log"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "lumen"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "q",
			Usage: "only log warnings and errors",
		},
	}

	sceneFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "scene, s",
			Value: "default",
			Usage: "name of the built-in scene to use",
		},
		cli.StringFlag{
			Name:  "texture",
			Usage: "image file for scenes that map a texture",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to a png file",
			Description: `
Build the selected scene, construct a BVH over its primitives and path trace
it with the configured sample budget. The budget can be spread over multiple
progressive passes; each pass refines the accumulated image.`,
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "image width in pixels (height follows the scene aspect ratio)",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 100,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 50,
					Usage: "maximum ray bounce depth",
				},
				cli.IntFlag{
					Name:  "passes",
					Value: 1,
					Usage: "number of progressive passes to spread the samples over",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Usage: "tile edge length in pixels (0 for default)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (0 for one per logical cpu)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "base rng seed; the same seed reproduces the same image",
				},
				cli.StringFlag{
					Name:  "lookfrom",
					Usage: "camera position override as x,y,z",
				},
				cli.StringFlag{
					Name:  "lookat",
					Usage: "camera target override as x,y,z",
				},
				cli.StringFlag{
					Name:  "vup",
					Usage: "camera up vector override as x,y,z",
				},
				cli.Float64Flag{
					Name:  "fov",
					Usage: "vertical field of view override in degrees",
				},
				cli.Float64Flag{
					Name:  "defocus",
					Usage: "defocus cone angle override in degrees",
				},
				cli.Float64Flag{
					Name:  "focus-dist",
					Usage: "focus distance override",
				},
				cli.Float64Flag{
					Name:  "aspect",
					Usage: "aspect ratio override (width / height)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
			}, sceneFlags...),
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:   "info",
			Usage:  "print primitive and bvh statistics for a scene",
			Flags:  sceneFlags,
			Action: cmd.SceneInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("lumen").Error(err)
		os.Exit(1)
	}
}
