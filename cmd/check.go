package cmd

import (
	"errors"
	"fmt"
	"os"

	db "github.com/kelvaris/flightdump/database"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Run data consistency checks against the configured database",
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

			res, report := manager.CheckConsistency()
			fmt.Println(res.Message)

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Check", "Violations", "Elapsed", "Status"})
			table.SetBorder(false)
			table.SetColumnSeparator(" ")

			for _, name := range db.CheckNames() {
				check := report[name]
				status := "ok"
				if !check.Ran {
					status = "skipped: " + check.Err
				}
				table.Append([]string{
					name,
					fmt.Sprintf("%d", check.Violations),
					check.Elapsed.String(),
					status,
				})
			}
			table.Render()

			for _, name := range db.CheckNames() {
				check := report[name]
				if !check.Ran || check.Violations == 0 {
					continue
				}

				fmt.Printf("\nViolations for %s:\n", name)
				rowsTable := tablewriter.NewWriter(os.Stdout)
				rowsTable.SetHeader(check.Columns)
				rowsTable.SetBorder(false)
				rowsTable.SetColumnSeparator(" ")
				for _, row := range check.Rows {
					rowsTable.Append(row)
				}
				rowsTable.Render()
			}

			if !res.Success {
				return errors.New("consistency checks failed")
			}
			return nil
		},
	}
}
