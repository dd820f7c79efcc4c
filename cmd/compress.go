package cmd

import (
	"errors"
	"fmt"
	"strings"

	db "github.com/kelvaris/flightdump/database"

	"github.com/urfave/cli/v2"
)

func CompressCommand() *cli.Command {
	return &cli.Command{
		Name:  "compress",
		Usage: "Compress a dump file into a zip archive",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Required: true,
				Usage:    "File to compress",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Archive path (defaults to <file>.zip)",
			},
		},
		Action: func(c *cli.Context) error {
			input := c.String("file")
			output := c.String("out")
			if output == "" {
				output = strings.TrimSuffix(input, ".sql") + ".zip"
			}

			res := db.Compress(input, output)
			fmt.Println(res.Message)
			if !res.Success {
				return errors.New("compress failed")
			}
			return nil
		},
	}
}

func DecompressCommand() *cli.Command {
	return &cli.Command{
		Name:  "decompress",
		Usage: "Extract a zip archive into a directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Required: true,
				Usage:    "Archive to extract",
			},
			&cli.StringFlag{
				Name:  "out-dir",
				Usage: "Output directory",
				Value: ".",
			},
		},
		Action: func(c *cli.Context) error {
			res := db.Decompress(c.String("file"), c.String("out-dir"))
			fmt.Println(res.Message)
			if !res.Success {
				return errors.New("decompress failed")
			}
			return nil
		},
	}
}
