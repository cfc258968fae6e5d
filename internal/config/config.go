// Package config loads and saves bplustree-cli's YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds bplustree-cli's tunables.
type Config struct {
	DataFile string `yaml:"data_file"`
	LeafCap  int    `yaml:"leaf_cap"`
	InnerCap int    `yaml:"inner_cap"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		DataFile: "./bplustree.dat",
		LeafCap:  32,
		InnerCap: 32,
	}
}

// LoadConfig reads and parses the YAML config at path. A missing file is
// not an error: it returns DefaultConfig() unchanged, so the CLI works
// without any setup step.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as YAML, creating parent directories as
// needed.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetDefaultConfigPath returns ~/.config/bplustree/config.yaml, falling
// back to a relative path if the home directory cannot be determined.
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./bplustree.yaml"
	}
	return filepath.Join(homeDir, ".config", "bplustree", "config.yaml")
}
