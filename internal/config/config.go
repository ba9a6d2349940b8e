// Package config loads activity-tracker settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. ACTIVITY_TRACKER_DB.
const Prefix = "ACTIVITY_TRACKER"

// Config holds runtime configuration.
type Config struct {
	// DB is the SQLite database path. Empty means DefaultDBPath.
	DB string `envconfig:"DB"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// New parses the environment.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported LOG_FORMAT: %s", c.LogFormat)
	}
	return nil
}

// DBPath returns the flag value when set, then the configured path, then
// the default location under the home directory.
func (c *Config) DBPath(flag string) string {
	if flag != "" {
		return flag
	}
	if c.DB != "" {
		return c.DB
	}
	return DefaultDBPath()
}

// DefaultDBPath is ~/.activity-tracker/activities.db.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".activity-tracker", "activities.db")
}
