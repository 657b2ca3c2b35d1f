// Package loaders reads external assets (texture images) into the forms
// the material package consumes.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/material"
)

// LoadImageTexture reads a PNG or JPEG file and converts it into a linear
// radiance texture. Images larger than maxDim on either side are downscaled
// to fit; maxDim <= 0 disables scaling.
func LoadImageTexture(path string, maxDim int) (*material.ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open texture: %w", err)
	}
	defer f.Close()

	tex, err := DecodeImageTexture(f, maxDim)
	if err != nil {
		return nil, fmt.Errorf("loaders: decode texture %s: %w", path, err)
	}
	return tex, nil
}

// DecodeImageTexture decodes image data from r and converts the pixels
// from 8-bit sRGB to linear floating point
func DecodeImageTexture(r io.Reader, maxDim int) (*material.ImageTexture, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	src = downscale(src, maxDim)
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	pixels := make([]core.Vec3, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rr, gg, bb, _ := src.At(x, y).RGBA()
			pixels = append(pixels, core.NewVec3(
				srgbToLinear(float64(rr)/65535),
				srgbToLinear(float64(gg)/65535),
				srgbToLinear(float64(bb)/65535),
			))
		}
	}
	return material.NewImageTexture(width, height, pixels), nil
}

func downscale(src image.Image, maxDim int) image.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if maxDim <= 0 || (width <= maxDim && height <= maxDim) {
		return src
	}

	scale := float64(maxDim) / float64(max(width, height))
	dstW := max(1, int(float64(width)*scale))
	dstH := max(1, int(float64(height)*scale))

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

// srgbToLinear applies the standard sRGB electro-optical transfer function
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
