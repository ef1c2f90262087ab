// Package config loads and validates analysis configuration for the CLI.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all tunable parameters for a motif analysis run.
type Config struct {
	// Order is the motif order (nodes per instance).
	Order int `yaml:"order" validate:"gte=2"`
	// Runs is the number of configuration-model runs.
	Runs int `yaml:"runs_config_model" validate:"gte=0"`
	// Seed for null-model randomness; 0 means time-seeded.
	Seed int64 `yaml:"seed"`
	// StepsPerEdge scales the per-run randomization budget.
	StepsPerEdge int `yaml:"steps_per_edge" validate:"gte=1"`
	// Workers bounds concurrent null-model runs; 0 or 1 runs serially.
	Workers int `yaml:"workers" validate:"gte=0"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Generator parameters for the synthetic input hypergraph.
	Generator GeneratorConfig `yaml:"generator"`
}

// GeneratorConfig describes the synthetic hypergraph built when no input is
// supplied by the caller.
type GeneratorConfig struct {
	Nodes       int         `yaml:"nodes" validate:"gte=1"`
	EdgesBySize map[int]int `yaml:"edges_by_size" validate:"required,min=1"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Order:        3,
		Runs:         10,
		StepsPerEdge: 10,
		Workers:      1,
		LogLevel:     "info",
		Generator: GeneratorConfig{
			Nodes: 50,
			EdgesBySize: map[int]int{
				2: 100,
				3: 40,
			},
		},
	}
}

// Load reads a YAML config file, applying defaults for absent fields, and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks all constraints on the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for size, count := range c.Generator.EdgesBySize {
		if size < 1 {
			return fmt.Errorf("invalid config: edge size %d is below 1", size)
		}
		if size > c.Generator.Nodes {
			return fmt.Errorf("invalid config: edge size %d exceeds %d nodes", size, c.Generator.Nodes)
		}
		if count < 0 {
			return fmt.Errorf("invalid config: negative edge count for size %d", size)
		}
	}
	return nil
}
