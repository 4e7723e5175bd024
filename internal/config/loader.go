package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values applied when the config file leaves a field empty.
const (
	DefaultGeneratedExtension     = ".generated"
	DefaultFragmentSuffix         = "Fragment"
	DefaultFragmentVariableSuffix = "FragmentDoc"
)

// LoadFile loads and parses a YAML linker config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.GeneratedExtension == "" {
		cfg.GeneratedExtension = DefaultGeneratedExtension
	}

	if cfg.Naming.FragmentSuffix == "" {
		cfg.Naming.FragmentSuffix = DefaultFragmentSuffix
	}

	if cfg.Naming.FragmentVariableSuffix == "" {
		cfg.Naming.FragmentVariableSuffix = DefaultFragmentVariableSuffix
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
