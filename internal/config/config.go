// Package config loads application settings from an optional YAML file
// and VETTA_-prefixed environment variables. Interview mechanics (time
// budgets, sampling counts, score bounds) are compiled-in constants and
// deliberately not configurable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "VETTA_"

// Config contains process configuration.
type Config struct {
	// DBPath overrides the candidate database location.
	// Empty means the default XDG path.
	DBPath string `koanf:"db_path"`

	// SortBy is the initial dashboard sort column: score, name, or date.
	SortBy string `koanf:"sort_by"`

	// SortOrder is the initial dashboard sort direction: asc or desc.
	SortOrder string `koanf:"sort_order"`
}

// defaults returns the built-in configuration.
func defaults() *Config {
	return &Config{
		SortBy:    "score",
		SortOrder: "desc",
	}
}

// Load builds the configuration with precedence env > file > defaults.
// path points at a YAML config file; when empty, the default location
// is used if it exists, otherwise file loading is skipped.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		if p, err := DefaultPath(); err == nil {
			if _, statErr := os.Stat(p); statErr == nil {
				path = p
			}
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// VETTA_DB_PATH → db_path, etc.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns the standard config file location:
// $XDG_CONFIG_HOME/vetta/config.yaml, falling back to ~/.config.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "vetta", "config.yaml"), nil
}
