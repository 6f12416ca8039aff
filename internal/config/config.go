// Package config loads server configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// #region config
// Config holds runtime settings for the chart server.
type Config struct {
	// Addr is the listen address for the HTTP API.
	Addr string `yaml:"addr"`
	// DBPath is the SQLite database file. Empty disables persistence.
	DBPath string `yaml:"db_path"`
	// DefaultZone is applied when a request names no timezone and no
	// offset. Empty means UTC.
	DefaultZone string `yaml:"default_zone"`
}

// #endregion config

// #region defaults
// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:   ":8080",
		DBPath: "charts.db",
	}
}

// #endregion defaults

// #region load
// Load reads the YAML file at path, falling back to defaults when the
// file does not exist, then applies HD_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("config: read %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.Addr = envOr("HD_ADDR", cfg.Addr)
	cfg.DBPath = envOr("HD_DB", cfg.DBPath)
	cfg.DefaultZone = envOr("HD_ZONE", cfg.DefaultZone)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// #endregion load

// #region validate
func (c Config) validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("config: addr is required")
	}
	return nil
}

// #endregion validate

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
