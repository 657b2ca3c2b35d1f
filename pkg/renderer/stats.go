package renderer

import (
	"math"
	"time"

	"github.com/lumen-render/lumen/pkg/core"
)

// PixelStats accumulates radiance samples for one pixel across passes.
// Keeping the luminance sum of squares alongside the color sum lets the
// renderer report per-pixel variance without storing individual samples.
type PixelStats struct {
	ColorAccum       core.Vec3
	LuminanceAccum   float64
	LuminanceSqAccum float64
	SampleCount      int
}

// AddSample folds one radiance sample into the accumulator
func (ps *PixelStats) AddSample(color core.Vec3) {
	lum := color.Luminance()
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.LuminanceAccum += lum
	ps.LuminanceSqAccum += lum * lum
	ps.SampleCount++
}

// GetColor returns the mean radiance over all accumulated samples.
// A pixel with no samples is black.
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the sample variance of the pixel luminance
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	variance := ps.LuminanceSqAccum/n - mean*mean
	if variance < 0 {
		// Guard against catastrophic cancellation on converged pixels
		return 0
	}
	return variance * n / (n - 1)
}

// RenderStats summarizes a completed render (or render pass)
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	TotalSamples    int64
	Passes          int
	Workers         int
	Elapsed         time.Duration
	AverageVariance float64
}

// SamplesPerSecond reports accumulated sampling throughput
func (rs RenderStats) SamplesPerSecond() float64 {
	secs := rs.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(rs.TotalSamples) / secs
}

// averageVariance computes the mean per-pixel luminance variance over the
// whole frame buffer
func averageVariance(pixels []PixelStats) float64 {
	if len(pixels) == 0 {
		return 0
	}
	sum := 0.0
	for i := range pixels {
		v := pixels[i].Variance()
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			sum += v
		}
	}
	return sum / float64(len(pixels))
}
