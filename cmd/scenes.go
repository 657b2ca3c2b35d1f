package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scene catalog
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Scene", "Description"})
	for _, name := range sceneNames() {
		table.Append([]string{name, sceneCatalog[name].description})
	}
	table.Render()
	return nil
}
