// Package config resolves the tool's configuration and storage location.
//
// The database path is resolved exactly once at process start and passed
// down as a plain value; nothing below this package consults the
// environment.
//
// Config file locations (priority order):
//  1. $TASKMAN_CONFIG
//  2. $XDG_CONFIG_HOME/taskman/config.yaml
//  3. ~/.config/taskman/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath is the environment variable for an explicit config path.
	EnvConfigPath = "TASKMAN_CONFIG"
	// AppDirName is the directory name used under XDG config and data homes.
	AppDirName = "taskman"
	// ConfigFileName is the config file name under the config directory.
	ConfigFileName = "config.yaml"
	// DBFileName is the database file name under the data directory.
	DBFileName = "taskman.db"
)

// Config is the on-disk configuration.
type Config struct {
	// Database overrides the default database file path.
	Database string `yaml:"database"`
}

// Load finds and parses the config file, or returns defaults when none
// exists.
func Load() (*Config, error) {
	path := findConfigPath()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// DatabasePath returns the configured database path, falling back to
// the per-user default under the XDG data directory.
func (c *Config) DatabasePath() (string, error) {
	if c.Database != "" {
		return expandHome(c.Database)
	}
	return defaultDBPath()
}

func findConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		path := filepath.Join(dir, AppDirName, ConfigFileName)
		if fileExists(path) {
			return path
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", AppDirName, ConfigFileName)
		if fileExists(path) {
			return path
		}
	}

	return ""
}

func defaultDBPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, AppDirName, DBFileName), nil
}

func expandHome(path string) (string, error) {
	if len(path) < 2 || path[:2] != "~/" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
