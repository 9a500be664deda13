// Package config loads game settings from an optional YAML file layered over
// defaults that match the classic game.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"battleship/internal/game"
)

// Config is the full application configuration.
type Config struct {
	Grid   GridConfig       `yaml:"grid"`
	Fleet  []game.ShipClass `yaml:"fleet"`
	Server ServerConfig     `yaml:"server"`
	Log    LogConfig        `yaml:"log"`
	// Seed drives all randomness (layouts and targeting). Zero means seed
	// from the clock.
	Seed int64 `yaml:"seed"`
}

// GridConfig sets the board dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ServerConfig sets the serve-mode listen address.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig sets the log level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default is a 10x10 board with the standard fleet.
func Default() *Config {
	return &Config{
		Grid:   GridConfig{Width: 10, Height: 10},
		Fleet:  game.StandardFleet(),
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return errors.New("grid dimensions must be positive")
	}
	if len(c.Fleet) == 0 {
		return errors.New("fleet must contain at least one ship")
	}
	cells := 0
	for _, class := range c.Fleet {
		if class.Length < 1 {
			return fmt.Errorf("ship %q has non-positive length", class.Name)
		}
		longest := c.Grid.Width
		if c.Grid.Height > longest {
			longest = c.Grid.Height
		}
		if class.Length > longest {
			return fmt.Errorf("ship %q (length %d) cannot fit on a %dx%d board",
				class.Name, class.Length, c.Grid.Width, c.Grid.Height)
		}
		cells += class.Length
	}
	if cells > c.Grid.Width*c.Grid.Height {
		return errors.New("fleet does not fit on the board")
	}
	return nil
}

// Rules converts the configuration into engine rules.
func (c *Config) Rules() game.Rules {
	return game.Rules{Width: c.Grid.Width, Height: c.Grid.Height, Fleet: c.Fleet}
}

// Level parses the configured log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
