// Package config provides unified configuration loading for pizzeria.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lor/pizzeria/internal/constants"
	"gopkg.in/yaml.v3"
)

// PizzeriaConfig contains all pizzeria configuration settings.
type PizzeriaConfig struct {
	// Catalog selects the menu data.
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// CatalogConfig configures where store menus come from.
type CatalogConfig struct {
	// Path is a YAML catalog file. Empty means the embedded reference catalog.
	// Supports ${VAR} syntax for env vars.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LoggingConfig configures pizzeria's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns a PizzeriaConfig with sensible defaults.
func Default() *PizzeriaConfig {
	return &PizzeriaConfig{
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Path returns the default config file location, ~/.pizzeria/config.yaml.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, constants.ConfigDirName, constants.ConfigFileName), nil
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.pizzeria/config.yaml -> environment variables
func Load() (*PizzeriaConfig, error) {
	config := Default()

	if configPath, err := Path(); err == nil {
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*PizzeriaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	config.Catalog.Path = expandEnvVars(config.Catalog.Path)

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *PizzeriaConfig) Validate() error {
	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}
	return nil
}

// Get retrieves a configuration value by dot-notation key.
func (c *PizzeriaConfig) Get(key string) (string, bool) {
	switch key {
	case "catalog.path":
		return c.Catalog.Path, true
	case "logging.level":
		return c.Logging.Level, true
	default:
		return "", false
	}
}

// Keys lists the supported dot-notation keys in display order.
func Keys() []string {
	return []string{"catalog.path", "logging.level"}
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *PizzeriaConfig) {
	if v := os.Getenv(constants.EnvLogLevel); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv(constants.EnvCatalogPath); v != "" {
		config.Catalog.Path = v
	}
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return os.Expand(s, os.Getenv)
}
