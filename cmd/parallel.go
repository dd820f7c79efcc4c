package cmd

import (
	"fmt"
	"os"

	db "github.com/kelvaris/flightdump/database"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

func ParallelImportCommand() *cli.Command {
	return &cli.Command{
		Name:  "parallel",
		Usage: "Import a dump in chunks across concurrent workers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Required: true,
				Usage:    "Path to SQL dump file",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "Target database name prefix",
				Value: "parallel_import",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of concurrent import workers",
				Value: 4,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			outcomes, err := db.ImportParallel(cfg, c.String("file"), c.String("prefix"), c.Int("workers"))
			if err != nil {
				return fmt.Errorf("parallel import: %v", err)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Database", "Elapsed", "Status", "Message"})
			table.SetBorder(false)
			table.SetColumnSeparator(" ")

			for _, outcome := range outcomes {
				status := "ok"
				if !outcome.Success {
					status = "failed"
				}
				table.Append([]string{
					outcome.Database,
					outcome.Elapsed.String(),
					status,
					outcome.Message,
				})
			}
			table.Render()

			return nil
		},
	}
}
