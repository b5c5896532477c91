package app

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/xxxsen/retroweb/internal/config"
)

const (
	defaultConfigName = "config.json"
	systemConfigPath  = "/etc/retroweb.json"
)

// loadConfig resolves the configuration respecting precedence rules. When no
// config file exists anywhere, the built-in system table is used.
func loadConfig(explicit string) (*config.Config, error) {
	searchPaths := make([]string, 0, 3)
	if explicit != "" {
		searchPaths = append(searchPaths, explicit)
	}

	if wd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(wd, defaultConfigName))
	}

	searchPaths = append(searchPaths, systemConfigPath)

	cfg, err := config.LoadFirst(searchPaths...)
	if errors.Is(err, os.ErrNotExist) && explicit == "" {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
