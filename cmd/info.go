package cmd

import (
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// SceneInfo builds the selected scene and reports its primitive count and
// the shape of its acceleration structure
func SceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := buildScene(ctx.String("scene"), ctx.String("texture"))
	if err != nil {
		return err
	}

	start := time.Now()
	bvh, err := sc.BuildBVH()
	if err != nil {
		return err
	}
	buildTime := time.Since(start)
	stats := bvh.Stats()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Scene", "Primitives", "BVH nodes", "Leaves", "Max depth", "Build time"})
	table.Append([]string{
		sc.Name,
		strconv.Itoa(sc.PrimitiveCount()),
		strconv.Itoa(stats.TotalNodes),
		strconv.Itoa(stats.LeafNodes),
		strconv.Itoa(stats.MaxDepth),
		buildTime.Round(time.Microsecond).String(),
	})
	table.Render()
	return nil
}
