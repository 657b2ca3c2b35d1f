package cmd

import (
	"github.com/lumen-render/lumen/log"
	"github.com/urfave/cli"
)

var logger = log.New("lumen")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("q") {
		log.SetLevel(log.Warning)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Debug)
	}
}
