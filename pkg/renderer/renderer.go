package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/integrator"
	"github.com/lumen-render/lumen/pkg/scene"
)

const defaultTileSize = 64

// Options configures a render
type Options struct {
	Width           int
	SamplesPerPixel int
	MaxDepth        int
	TileSize        int   // 0 selects the default tile size
	Workers         int   // 0 selects one worker per logical CPU
	Seed            int64 // Base seed; the same seed reproduces the same image
}

// DefaultOptions returns a quick-preview configuration
func DefaultOptions() Options {
	return Options{
		Width:           400,
		SamplesPerPixel: 16,
		MaxDepth:        50,
		TileSize:        defaultTileSize,
		Seed:            1,
	}
}

// Validate rejects configurations that cannot produce an image. Zero
// samples or zero depth are allowed and yield a black image; negative
// values are configuration errors.
func (o Options) Validate() error {
	if o.Width <= 0 {
		return fmt.Errorf("renderer: non-positive image width %d", o.Width)
	}
	if o.SamplesPerPixel < 0 {
		return fmt.Errorf("renderer: negative samples per pixel %d", o.SamplesPerPixel)
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("renderer: negative max depth %d", o.MaxDepth)
	}
	if o.TileSize < 0 {
		return fmt.Errorf("renderer: negative tile size %d", o.TileSize)
	}
	if o.Workers < 0 {
		return fmt.Errorf("renderer: negative worker count %d", o.Workers)
	}
	return nil
}

// Renderer accumulates radiance samples for one scene into a persistent
// frame buffer. The scene, BVH and camera are immutable after New; all
// mutable state is the per-pixel statistics, which workers update in
// disjoint tile regions.
type Renderer struct {
	opts       Options
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
	width      int
	height     int
	tiles      []Tile
	pixels     []PixelStats

	passCount    int
	totalSamples int64
	totalElapsed time.Duration
	logger       core.Logger
}

// New validates the options, builds the BVH over the scene and derives the
// camera. The returned renderer holds an empty frame buffer; call Render
// or RenderPass to fill it.
func New(sc *scene.Scene, opts Options, logger core.Logger) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	height := int(float64(opts.Width) / sc.AspectRatio)
	if height < 1 {
		height = 1
	}

	bvh, err := sc.BuildBVH()
	if err != nil {
		return nil, err
	}

	camera, err := NewCamera(sc.Camera, opts.Width, height)
	if err != nil {
		return nil, err
	}

	if opts.TileSize == 0 {
		opts.TileSize = defaultTileSize
	}
	if opts.Workers == 0 {
		opts.Workers = defaultWorkers()
	}

	r := &Renderer{
		opts:       opts,
		scene:      sc,
		camera:     camera,
		integrator: integrator.NewPathTracer(bvh, sc.Background, opts.MaxDepth),
		width:      opts.Width,
		height:     height,
		tiles:      makeTiles(opts.Width, height, opts.TileSize),
		pixels:     make([]PixelStats, opts.Width*height),
		logger:     logger,
	}

	if logger != nil {
		logger.Debugf("renderer: %dx%d, %d tiles of %dpx, %d workers",
			r.width, r.height, len(r.tiles), opts.TileSize, opts.Workers)
	}
	return r, nil
}

// Width returns the output image width in pixels
func (r *Renderer) Width() int { return r.width }

// Height returns the output image height in pixels
func (r *Renderer) Height() int { return r.height }

// RenderPass accumulates the given number of samples per pixel on top of
// whatever the frame buffer already holds. Passing the same seed and scene
// through the same sequence of passes reproduces the same image regardless
// of worker count.
func (r *Renderer) RenderPass(ctx context.Context, samples int) error {
	if samples < 0 {
		return fmt.Errorf("renderer: negative sample count %d", samples)
	}
	if samples == 0 {
		return nil
	}

	pass := r.passCount
	tasks := make([]tileTask, len(r.tiles))
	for i, tile := range r.tiles {
		tasks[i] = tileTask{tile: tile, seed: tileSeed(r.opts.Seed, pass, tile.Index)}
	}

	start := time.Now()
	err := runTilePool(ctx, r.opts.Workers, tasks, func(task tileTask) {
		random := core.NewRandom(task.seed)
		for y := task.tile.Y0; y < task.tile.Y1; y++ {
			row := r.pixels[y*r.width : (y+1)*r.width]
			for x := task.tile.X0; x < task.tile.X1; x++ {
				for s := 0; s < samples; s++ {
					ray := r.camera.GetRay(x, y, random)
					row[x].AddSample(r.integrator.RayColor(ray, random))
				}
			}
		}
	})
	r.totalElapsed += time.Since(start)
	if err != nil {
		return err
	}

	r.passCount++
	r.totalSamples += int64(samples) * int64(len(r.pixels))
	if r.logger != nil {
		r.logger.Debugf("renderer: pass %d done, %d spp accumulated (%.1fs total)",
			r.passCount, r.SamplesPerPixel(), r.totalElapsed.Seconds())
	}
	return nil
}

// Render runs all configured samples in a single pass and returns the
// finished image
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if err := r.RenderPass(ctx, r.opts.SamplesPerPixel); err != nil {
		return nil, RenderStats{}, err
	}
	return r.Image(), r.Stats(), nil
}

// PassFunc is invoked after every progressive pass with the cumulative
// image so far. Returning an error stops the render.
type PassFunc func(pass int, img *image.RGBA, stats RenderStats) error

// RenderProgressive spreads the configured sample budget over the given
// number of passes, invoking onPass after each so callers can preview or
// persist intermediate results. Earlier passes receive the remainder when
// the budget does not divide evenly.
func (r *Renderer) RenderProgressive(ctx context.Context, passes int, onPass PassFunc) error {
	if passes <= 0 {
		return fmt.Errorf("renderer: non-positive pass count %d", passes)
	}

	budget := r.opts.SamplesPerPixel
	for p := 0; p < passes; p++ {
		perPass := budget / passes
		if p < budget%passes {
			perPass++
		}
		if err := r.RenderPass(ctx, perPass); err != nil {
			return err
		}
		if onPass != nil {
			if err := onPass(p+1, r.Image(), r.Stats()); err != nil {
				return err
			}
		}
	}
	return nil
}

// SamplesPerPixel returns the number of samples accumulated per pixel so far
func (r *Renderer) SamplesPerPixel() int {
	if len(r.pixels) == 0 {
		return 0
	}
	return r.pixels[0].SampleCount
}

// Stats summarizes the render so far
func (r *Renderer) Stats() RenderStats {
	return RenderStats{
		Width:           r.width,
		Height:          r.height,
		SamplesPerPixel: r.SamplesPerPixel(),
		TotalSamples:    r.totalSamples,
		Passes:          r.passCount,
		Workers:         r.opts.Workers,
		Elapsed:         r.totalElapsed,
		AverageVariance: averageVariance(r.pixels),
	}
}

// Image quantizes the current frame buffer to 8-bit sRGB. Linear radiance
// is gamma corrected with gamma 2 (square root) and clamped to [0, 1)
// before scaling.
func (r *Renderer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			c := r.pixels[y*r.width+x].GetColor()
			img.SetRGBA(x, y, quantize(c))
		}
	}
	return img
}

// PixelColor returns the mean linear radiance accumulated at (x, y)
func (r *Renderer) PixelColor(x, y int) core.Vec3 {
	return r.pixels[y*r.width+x].GetColor()
}

// Framebuffer returns a copy of the mean linear radiance values in
// row-major order, origin at the top-left pixel
func (r *Renderer) Framebuffer() []core.Vec3 {
	buffer := make([]core.Vec3, len(r.pixels))
	for i := range r.pixels {
		buffer[i] = r.pixels[i].GetColor()
	}
	return buffer
}

func quantize(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: quantizeComponent(c.X),
		G: quantizeComponent(c.Y),
		B: quantizeComponent(c.Z),
		A: 255,
	}
}

func quantizeComponent(v float64) uint8 {
	if v > 0 {
		v = math.Sqrt(v)
	} else {
		v = 0
	}
	if v > 0.999 {
		v = 0.999
	}
	return uint8(256 * v)
}
