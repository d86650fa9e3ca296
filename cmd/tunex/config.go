package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/tunex/pkg/errors"
)

// Config holds the collect command's settings. Flags override values loaded
// from a YAML config file.
type Config struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Metrics  bool   `yaml:"metrics"`
	Wide     bool   `yaml:"wide"`
	LogLevel string `yaml:"log_level"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return &cfg, nil
}

// Merge fills cfg from file for every flag the user did not set explicitly.
func (cfg *Config) Merge(file *Config, changed func(name string) bool) {
	if !changed("input") && file.Input != "" {
		cfg.Input = file.Input
	}
	if !changed("out") && file.Output != "" {
		cfg.Output = file.Output
	}
	if !changed("metrics") {
		cfg.Metrics = file.Metrics
	}
	if !changed("wide") {
		cfg.Wide = file.Wide
	}
	if !changed("log-level") && file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
}
