package main

import (
	"os"

	"github.com/kelvaris/flightdump/cmd"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "flightdump",
		Usage: "A CLI tool to transfer, verify and benchmark flight reservation database dumps",
		Commands: []*cli.Command{
			cmd.InitCommand(),
			cmd.ImportCommand(),
			cmd.ExportCommand(),
			cmd.CompressCommand(),
			cmd.DecompressCommand(),
			cmd.CheckCommand(),
			cmd.BenchCommand(),
			cmd.ParallelImportCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
