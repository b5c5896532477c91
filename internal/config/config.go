package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Config describes the application level configuration loaded from json.
type Config struct {
	// Systems maps a system directory name to its human readable display
	// name. Only directories whose name appears here are treated as systems.
	Systems map[string]string `json:"systems"`
	S3      S3Config          `json:"s3"`
}

// S3Config holds the options for accessing the object store used by deploy.
type S3Config struct {
	Host            string `json:"host"`
	Bucket          string `json:"bucket"`
	Region          string `json:"region"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	SessionToken    string `json:"session_token"`
	ForcePathStyle  bool   `json:"force_path_style"`
}

// Default returns a configuration with the built-in system lookup table and
// no deploy target. Used when no config file is present on disk.
func Default() *Config {
	return &Config{Systems: defaultSystems()}
}

func defaultSystems() map[string]string {
	return map[string]string{
		"atari2600":    "Atari 2600",
		"atari7800":    "Atari 7800",
		"c64":          "Commodore 64",
		"dreamcast":    "Sega Dreamcast",
		"fba":          "Final Burn Alpha",
		"gamegear":     "Sega Game Gear",
		"gb":           "Game Boy",
		"gba":          "Game Boy Advance",
		"gbc":          "Game Boy Color",
		"genesis":      "Sega Genesis",
		"mame":         "MAME",
		"mastersystem": "Sega Master System",
		"megadrive":    "Sega Mega Drive",
		"n64":          "Nintendo 64",
		"nds":          "Nintendo DS",
		"neogeo":       "Neo Geo",
		"nes":          "Nintendo Entertainment System",
		"ngp":          "Neo Geo Pocket",
		"pcengine":     "PC Engine",
		"psp":          "PlayStation Portable",
		"psx":          "PlayStation",
		"scummvm":      "ScummVM",
		"sega32x":      "Sega 32X",
		"segacd":       "Sega CD",
		"snes":         "Super Nintendo Entertainment System",
		"wonderswan":   "WonderSwan",
	}
}

// LoadFirst tries to load configuration from the given paths, returning the
// first successfully decoded configuration. If none of the paths contain a
// readable config, an error is returned.
func LoadFirst(paths ...string) (*Config, error) {
	var lastErr error
	for _, path := range paths {
		if path == "" {
			continue
		}
		cfg, err := Load(path)
		if errors.Is(err, os.ErrNotExist) {
			lastErr = err
			continue
		}
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("config not found in paths: %v", paths)
	}
	return nil, lastErr
}

// Load reads configuration from a single json file path. A config file may
// omit the systems table entirely, in which case the built-in table applies.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if len(cfg.Systems) == 0 {
		cfg.Systems = defaultSystems()
	}

	return &cfg, nil
}

// ValidateDeploy checks the fields required by the deploy command.
func (c *Config) ValidateDeploy() error {
	if c.S3.Host == "" {
		return errors.New("config.s3.host must be set")
	}
	if c.S3.Bucket == "" {
		return errors.New("config.s3.bucket must be set")
	}
	return nil
}
