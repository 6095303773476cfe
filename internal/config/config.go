package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file kept at the data directory root.
const FileName = "timeline.yaml"

// Config represents the top-level timeline.yaml configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Display DisplayConfig `yaml:"display"`
}

// StorageConfig controls where and under which key prefix state is kept.
type StorageConfig struct {
	Namespace string `yaml:"namespace"`
	File      string `yaml:"file"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// Load reads a timeline.yaml file from disk. A missing file yields the
// defaults rather than an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Namespace: "timeline",
			File:      "timeline.db",
		},
		Display: DisplayConfig{
			Currency: "৳",
		},
	}
}
