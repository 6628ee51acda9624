// Package config loads the settings of the patterns demo driver.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-leo/design-pattern-demo/strategy"
	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrUnknownOutput the output format is neither text nor json
var ErrUnknownOutput = errors.New("unknown output format")

// Config is the demo driver configuration.
type Config struct {
	Strategy StrategyConfig `yaml:"strategy"`
	Factory  FactoryConfig  `yaml:"factory"`
	Output   string         `yaml:"output"`
}

// StrategyConfig selects the strategy and the sample input.
type StrategyConfig struct {
	Name  string   `yaml:"name"`
	Input []string `yaml:"input"`
}

// FactoryConfig selects the creator. Empty runs every creator.
type FactoryConfig struct {
	Creator string `yaml:"creator"`
}

// Default returns the built-in sample configuration.
func Default() *Config {
	return &Config{
		Strategy: StrategyConfig{
			Name:  strategy.SortName,
			Input: []string{"a", "b", "c", "d", "e"},
		},
		Output: OutputText,
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the strategy name and the output format.
func (c *Config) Validate() error {
	if _, err := strategy.Lookup(c.Strategy.Name); err != nil {
		return err
	}
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutput, c.Output)
	}
}
