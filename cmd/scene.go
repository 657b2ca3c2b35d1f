package cmd

import (
	"fmt"
	"sort"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/loaders"
	"github.com/lumen-render/lumen/pkg/material"
	"github.com/lumen-render/lumen/pkg/scene"
)

// maxTextureDim caps loaded texture sizes; anything larger is downscaled
const maxTextureDim = 4096

type sceneEntry struct {
	description string
	build       func(texturePath string) (*scene.Scene, error)
}

var sceneCatalog = map[string]sceneEntry{
	"default": {
		description: "sphere field with moving spheres over a checkered ground",
		build: func(string) (*scene.Scene, error) {
			return scene.NewDefaultScene(), nil
		},
	},
	"checkered-spheres": {
		description: "two large checkered spheres",
		build: func(string) (*scene.Scene, error) {
			return scene.NewCheckeredSpheresScene(), nil
		},
	},
	"perlin-spheres": {
		description: "marble-textured spheres",
		build: func(string) (*scene.Scene, error) {
			return scene.NewPerlinSpheresScene(), nil
		},
	},
	"earth": {
		description: "image-textured globe (use --texture to supply the map)",
		build: func(texturePath string) (*scene.Scene, error) {
			globe, err := globeTexture(texturePath)
			if err != nil {
				return nil, err
			}
			return scene.NewEarthScene(globe), nil
		},
	},
	"simple-light": {
		description: "emissive quad and sphere over a marble ground",
		build: func(string) (*scene.Scene, error) {
			return scene.NewSimpleLightScene(), nil
		},
	},
	"cornell": {
		description: "Cornell box with two interior boxes",
		build: func(string) (*scene.Scene, error) {
			return scene.NewCornellBoxScene(), nil
		},
	},
	"cornell-smoke": {
		description: "Cornell box with smoke volumes",
		build: func(string) (*scene.Scene, error) {
			return scene.NewCornellSmokeScene(), nil
		},
	},
	"final": {
		description: "composite showcase: box terrain, volumes, moving sphere",
		build: func(texturePath string) (*scene.Scene, error) {
			globe, err := globeTexture(texturePath)
			if err != nil {
				return nil, err
			}
			return scene.NewFinalScene(globe), nil
		},
	},
}

func globeTexture(texturePath string) (core.Texture, error) {
	if texturePath == "" {
		logger.Warning("no --texture supplied, using placeholder globe")
		return material.NewImageTexture(0, 0, nil), nil
	}
	return loaders.LoadImageTexture(texturePath, maxTextureDim)
}

func sceneNames() []string {
	names := make([]string, 0, len(sceneCatalog))
	for name := range sceneCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildScene(name, texturePath string) (*scene.Scene, error) {
	entry, exists := sceneCatalog[name]
	if !exists {
		return nil, fmt.Errorf("unknown scene %q; run the scenes command for the catalog", name)
	}
	return entry.build(texturePath)
}
