package cmd

import (
	"fmt"
	"os"

	utils "github.com/kelvaris/flightdump/internal/utils"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func InitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize flightdump configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Database host",
				Value: "localhost",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Database port",
				Value: 3306,
			},
			&cli.StringFlag{
				Name:  "user",
				Usage: "Database user",
				Value: "root",
			},
			&cli.StringFlag{
				Name:  "password",
				Usage: "Database password",
			},
			&cli.StringFlag{
				Name:  "database",
				Usage: "Default database name",
				Value: "flight_reservation",
			},
		},
		Action: func(c *cli.Context) error {
			config := utils.FileConfig{
				Host:              c.String("host"),
				Port:              c.Int("port"),
				User:              c.String("user"),
				Password:          c.String("password"),
				Database:          c.String("database"),
				MaxRetries:        3,
				RetryDelaySeconds: 2,
			}

			yamlData, err := yaml.Marshal(config)
			if err != nil {
				return fmt.Errorf("creating yaml: %v", err)
			}

			if err := os.WriteFile("flightdump.yaml", yamlData, 0644); err != nil {
				return fmt.Errorf("writing config file: %v", err)
			}

			fmt.Println("Created flightdump.yaml")
			return nil
		},
	}
}
