// Package config loads the optional .stdt.yml file that holds defaults for
// the stdt command.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RekeyModes lists the accepted values for the rekey option.
var RekeyModes = []string{"snake", "camel", "kebab"}

// Config represents the stdt command configuration.
type Config struct {
	// Indent is the indentation unit for pretty output; empty means compact.
	Indent string `yaml:"indent"`
	// Rekey rewrites object keys: "snake", "camel", "kebab" or empty.
	Rekey string `yaml:"rekey"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{}
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in the current directory and its
// parents, returning the first hit or "".
func FindConfigFile() string {
	configNames := []string{".stdt.yml", ".stdt.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}
	return ""
}

// Validate checks option values.
func (c *Config) Validate() error {
	if c.Rekey == "" {
		return nil
	}
	for _, mode := range RekeyModes {
		if c.Rekey == mode {
			return nil
		}
	}
	return fmt.Errorf("unknown rekey mode %q (want one of %v)", c.Rekey, RekeyModes)
}

// Merge applies CLI overrides on top of the file values. Non-empty CLI
// values win.
func (c *Config) Merge(indent, rekey string) *Config {
	merged := *c
	if indent != "" {
		merged.Indent = indent
	}
	if rekey != "" {
		merged.Rekey = rekey
	}
	return &merged
}
