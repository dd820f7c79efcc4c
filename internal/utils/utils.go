package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	db "github.com/kelvaris/flightdump/database"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors flightdump.yaml.
type FileConfig struct {
	Host              string `yaml:"host"`
	Port              int    `yaml:"port"`
	User              string `yaml:"user"`
	Password          string `yaml:"password"`
	Database          string `yaml:"database"`
	MaxRetries        int    `yaml:"max_retries"`
	RetryDelaySeconds int    `yaml:"retry_delay_seconds"`
}

// FindConfigFile tries to find the flightdump config file in the current
// directory or any parent directory, falling back to the global config.
func FindConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %v", err)
	}
	for {
		configPath := filepath.Join(dir, "flightdump.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %v", err)
	}
	globalConfig := filepath.Join(homeDir, ".flightdump", "config.yaml")
	if _, err := os.Stat(globalConfig); err == nil {
		return globalConfig, nil
	}

	return "", fmt.Errorf("no config file found in project or ~/.flightdump/config.yaml")
}

// LoadConfig reads a flightdump config file and returns the connection
// settings with defaults applied.
func LoadConfig(configPath string) (db.Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return db.Config{}, fmt.Errorf("reading config file: %v", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return db.Config{}, fmt.Errorf("parsing config file: %v", err)
	}

	if fc.Host == "" {
		fc.Host = "localhost"
	}
	if fc.Port == 0 {
		fc.Port = 3306
	}
	if fc.MaxRetries == 0 {
		fc.MaxRetries = db.DefaultMaxRetries
	}

	delay := time.Duration(fc.RetryDelaySeconds) * time.Second
	if delay == 0 {
		delay = db.DefaultRetryDelay
	}

	return db.Config{
		Host:       fc.Host,
		Port:       fc.Port,
		User:       fc.User,
		Password:   fc.Password,
		Database:   fc.Database,
		MaxRetries: fc.MaxRetries,
		RetryDelay: delay,
	}, nil
}
