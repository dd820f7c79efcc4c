package cmd

import (
	"fmt"

	db "github.com/kelvaris/flightdump/database"
	utils "github.com/kelvaris/flightdump/internal/utils"
)

// loadConfig locates and reads the process configuration.
func loadConfig() (db.Config, error) {
	configPath, err := utils.FindConfigFile()
	if err != nil {
		return db.Config{}, fmt.Errorf("finding config file: %v", err)
	}

	cfg, err := utils.LoadConfig(configPath)
	if err != nil {
		return db.Config{}, fmt.Errorf("loading config: %v", err)
	}
	return cfg, nil
}
