// Package config loads cardpanel configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the workspace-relative config location.
const DefaultPath = ".cardpanel/config.yaml"

// Config holds all cardpanel configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme is "auto", "light" or "dark". Auto detects from the terminal.
	Theme string `yaml:"theme"`
}

// LoggingConfig controls the categorized file logger. With DebugMode false
// nothing is written anywhere.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"`
	Categories map[string]bool `yaml:"categories"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "auto",
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
}

// Load reads the config file at path, or the default workspace location when
// path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(".", DefaultPath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
