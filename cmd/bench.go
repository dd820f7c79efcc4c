package cmd

import (
	"fmt"
	"os"

	db "github.com/kelvaris/flightdump/database"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

func BenchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Benchmark sequential import/export cycles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Required: true,
				Usage:    "Path to the canonical SQL dump file",
			},
			&cli.IntFlag{
				Name:  "iterations",
				Usage: "Number of import/export cycles",
				Value: 5,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			records := db.Benchmark(cfg, c.String("file"), c.Int("iterations"))

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Iteration", "Import", "Export", "Status"})
			table.SetBorder(false)
			table.SetColumnSeparator(" ")

			for _, record := range records {
				status := "ok"
				if !record.Success {
					status = record.Err
				}
				table.Append([]string{
					fmt.Sprintf("%d", record.Iteration),
					record.ImportTime.String(),
					record.ExportTime.String(),
					status,
				})
			}
			table.Render()

			return nil
		},
	}
}
