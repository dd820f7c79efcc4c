package cmd

import (
	"errors"
	"fmt"

	db "github.com/kelvaris/flightdump/database"

	"github.com/urfave/cli/v2"
)

func ExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export database schema and data to a SQL dump file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Required: true,
				Usage:    "Path for the output SQL file",
			},
			&cli.StringFlag{
				Name:  "database",
				Usage: "Database to export (defaults to the configured one)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			manager, err := db.Connect(cfg)
			if err != nil {
				return fmt.Errorf("connecting to database: %v", err)
			}
			defer manager.Close()

			res := manager.ExportDump(c.String("file"), c.String("database"))
			fmt.Println(res.Message)
			if !res.Success {
				return errors.New("export failed")
			}
			return nil
		},
	}
}
