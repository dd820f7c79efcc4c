package cmd

import (
	"errors"
	"fmt"

	db "github.com/kelvaris/flightdump/database"

	"github.com/urfave/cli/v2"
)

func ImportCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import a SQL dump file into the database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Required: true,
				Usage:    "Path to SQL dump file",
			},
			&cli.StringFlag{
				Name:  "database",
				Usage: "Import into this database, creating it if needed (optional)",
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

			res := manager.ImportDump(c.String("file"), c.String("database"))
			fmt.Println(res.Message)
			if !res.Success {
				return errors.New("import failed")
			}
			return nil
		},
	}
}
