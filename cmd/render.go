package cmd

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/renderer"
	"github.com/lumen-render/lumen/pkg/scene"
)

// RenderScene renders the selected scene to a PNG file
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)
	logSysInfo()

	sc, err := buildScene(ctx.String("scene"), ctx.String("texture"))
	if err != nil {
		return err
	}
	if err := applyCameraOverrides(ctx, sc); err != nil {
		return err
	}

	opts := renderer.Options{
		Width:           ctx.Int("width"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		TileSize:        ctx.Int("tile-size"),
		Workers:         ctx.Int("workers"),
		Seed:            ctx.Int64("seed"),
	}

	r, err := renderer.New(sc, opts, logger)
	if err != nil {
		return err
	}

	logger.Infof("rendering scene %q at %dx%d, %d spp, depth %d",
		sc.Name, r.Width(), r.Height(), opts.SamplesPerPixel, opts.MaxDepth)

	renderCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	passes := ctx.Int("passes")
	if passes <= 0 {
		passes = 1
	}

	var img *image.RGBA
	err = r.RenderProgressive(renderCtx, passes, func(pass int, passImg *image.RGBA, stats renderer.RenderStats) error {
		img = passImg
		logger.Infof("pass %d/%d: %d spp, %.0f samples/sec, avg variance %.4f",
			pass, passes, stats.SamplesPerPixel, stats.SamplesPerSecond(), stats.AverageVariance)
		return nil
	})
	if err != nil {
		if renderCtx.Err() != nil && img != nil {
			logger.Warning("render interrupted, writing partial image")
		} else {
			return err
		}
	}

	out := ctx.String("out")
	if err := writePNG(out, img); err != nil {
		return err
	}
	logger.Infof("wrote %s", out)

	printStats(sc.Name, r.Stats())
	return nil
}

func writePNG(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

// applyCameraOverrides replaces individual camera parameters of the scene
// with values the user supplied on the command line
func applyCameraOverrides(ctx *cli.Context, sc *scene.Scene) error {
	vecFlags := map[string]*core.Vec3{
		"lookfrom": &sc.Camera.LookFrom,
		"lookat":   &sc.Camera.LookAt,
		"vup":      &sc.Camera.VUp,
	}
	for name, target := range vecFlags {
		if !ctx.IsSet(name) {
			continue
		}
		v, err := parseVec3(ctx.String(name))
		if err != nil {
			return fmt.Errorf("flag --%s: %w", name, err)
		}
		*target = v
	}

	if ctx.IsSet("fov") {
		sc.Camera.VFov = ctx.Float64("fov")
	}
	if ctx.IsSet("defocus") {
		sc.Camera.DefocusAngle = ctx.Float64("defocus")
	}
	if ctx.IsSet("focus-dist") {
		sc.Camera.FocusDistance = ctx.Float64("focus-dist")
	}
	if ctx.IsSet("aspect") {
		sc.AspectRatio = ctx.Float64("aspect")
	}
	return nil
}

func printStats(sceneName string, stats renderer.RenderStats) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Scene", "Resolution", "SPP", "Passes", "Workers", "Time", "Samples/sec", "Avg variance"})
	table.Append([]string{
		sceneName,
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		strconv.Itoa(stats.SamplesPerPixel),
		strconv.Itoa(stats.Passes),
		strconv.Itoa(stats.Workers),
		stats.Elapsed.Round(time.Millisecond).String(),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		fmt.Sprintf("%.5f", stats.AverageVariance),
	})
	table.Render()
}

func logSysInfo() {
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		logger.Debugf("cpu: %s (%d logical cores)", infos[0].ModelName, logicalCores())
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		logger.Debugf("memory: %.1f GiB total, %.1f%% used",
			float64(vm.Total)/(1<<30), vm.UsedPercent)
	}
}

func logicalCores() int {
	if n, err := cpu.Counts(true); err == nil {
		return n
	}
	return 0
}

func parseVec3(value string) (core.Vec3, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z but got %q", value)
	}
	var components [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("component %d of %q: %w", i, value, err)
		}
		components[i] = v
	}
	return core.NewVec3(components[0], components[1], components[2]), nil
}
