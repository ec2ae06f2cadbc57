package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPlanets = 8
	DefaultFPS     = 60
	DefaultWidth   = 1280
	DefaultHeight  = 720
)

// Config holds everything the front ends need to build and run a system.
// CLI flags override file values; the positional planet count overrides
// both.
type Config struct {
	Planets int          `yaml:"planets"`
	Seed    int64        `yaml:"seed"`
	FPS     int          `yaml:"fps"`
	Window  WindowConfig `yaml:"window"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Planets: DefaultPlanets,
		FPS:     DefaultFPS,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Planets < 0 {
		return fmt.Errorf("planets must be non-negative, got %d", c.Planets)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
