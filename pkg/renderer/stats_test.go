package renderer

import (
	"math"
	"testing"
	"time"

	"github.com/lumen-render/lumen/pkg/core"
)

func TestPixelStats_MeanColor(t *testing.T) {
	var ps PixelStats

	if ps.GetColor() != (core.Vec3{}) {
		t.Error("No samples should read as black")
	}

	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))
	ps.AddSample(core.NewVec3(0, 0, 1))
	ps.AddSample(core.NewVec3(1, 1, 1))

	mean := ps.GetColor()
	expected := core.NewVec3(0.5, 0.5, 0.5)
	if mean.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, mean)
	}
	if ps.SampleCount != 4 {
		t.Errorf("Expected 4 samples, got %d", ps.SampleCount)
	}
}

func TestPixelStats_Variance(t *testing.T) {
	var constant PixelStats
	for i := 0; i < 10; i++ {
		constant.AddSample(core.NewVec3(0.5, 0.5, 0.5))
	}
	if v := constant.Variance(); v > 1e-12 {
		t.Errorf("Constant samples should have zero variance, got %v", v)
	}

	var noisy PixelStats
	for i := 0; i < 10; i++ {
		if i%2 == 0 {
			noisy.AddSample(core.NewVec3(1, 1, 1))
		} else {
			noisy.AddSample(core.Vec3{})
		}
	}
	// Alternating 0 and 1 luminance has sample variance n/(n-1) * 0.25
	expected := 0.25 * 10.0 / 9.0
	if math.Abs(noisy.Variance()-expected) > 1e-9 {
		t.Errorf("Expected variance %v, got %v", expected, noisy.Variance())
	}

	var single PixelStats
	single.AddSample(core.NewVec3(1, 1, 1))
	if single.Variance() != 0 {
		t.Error("A single sample has no defined variance and should read zero")
	}
}

func TestRenderStats_SamplesPerSecond(t *testing.T) {
	stats := RenderStats{TotalSamples: 1000, Elapsed: 2 * time.Second}
	if got := stats.SamplesPerSecond(); math.Abs(got-500) > 1e-9 {
		t.Errorf("Expected 500, got %v", got)
	}

	if (RenderStats{TotalSamples: 10}).SamplesPerSecond() != 0 {
		t.Error("Zero elapsed time should report zero throughput")
	}
}
