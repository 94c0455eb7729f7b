package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bouncebox/internal/world"
)

const (
	DefaultTitle        = "bouncebox"
	DefaultTickInterval = 16 * time.Millisecond
	DefaultFrontend     = "tui"
	DefaultTheme        = "cyberpunk"
	DefaultTicks        = 600
)

var ErrInvalidConfig = errors.New("config: invalid")

var Frontends = []string{"tui", "term", "gui"}

// Config holds presentation settings. The physics constants are fixed and
// deliberately absent.
type Config struct {
	Window       WindowConfig  `yaml:"window"`
	TickInterval time.Duration `yaml:"tick_interval"`
	Frontend     string        `yaml:"frontend"`
	Theme        string        `yaml:"theme"`
	Sound        bool          `yaml:"sound"`
	Ticks        int           `yaml:"ticks"`
	Script       []string      `yaml:"script"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  world.DefaultWidth,
			Height: world.DefaultHeight,
			Title:  DefaultTitle,
		},
		TickInterval: DefaultTickInterval,
		Frontend:     DefaultFrontend,
		Theme:        DefaultTheme,
		Ticks:        DefaultTicks,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval %s", ErrInvalidConfig, c.TickInterval)
	}
	if c.Ticks < 0 {
		return fmt.Errorf("%w: ticks %d", ErrInvalidConfig, c.Ticks)
	}
	for _, f := range Frontends {
		if c.Frontend == f {
			return nil
		}
	}
	return fmt.Errorf("%w: frontend %q (want one of %v)", ErrInvalidConfig, c.Frontend, Frontends)
}

// NewWorld builds the starting world for the configured window.
func (c *Config) NewWorld() (*world.World, error) {
	return world.New(c.Window.Width, c.Window.Height)
}
