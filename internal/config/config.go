// Package config handles tool configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/propsnap/pkg/conform"
)

// Config holds all tool settings.
type Config struct {
	Conform ConformConfig `yaml:"conform"`
	Logging LoggingConfig `yaml:"logging"`
}

// ConformConfig holds surface-conform settings.
type ConformConfig struct {
	RayLength     float64 `yaml:"ray_length"`     // Probe distance, must be >= 0
	Direction     string  `yaml:"direction"`      // Cast direction: down, up, +x, -x, +y, -y
	AlignRotation bool    `yaml:"align_rotation"` // Point local Z along the hit normal
	MaxRetries    int     `yaml:"max_retries"`    // Self-hit suppression retry ceiling
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Conform: ConformConfig{
			RayLength:     conform.DefaultMaxDistance,
			Direction:     "down",
			AlignRotation: false,
			MaxRetries:    conform.DefaultMaxRetries,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Options converts the conform settings into validated conform.Options.
func (c *Config) Options() (conform.Options, error) {
	dir, err := conform.ParseDirection(c.Conform.Direction)
	if err != nil {
		return conform.Options{}, err
	}
	opts := conform.Options{
		MaxDistance:   c.Conform.RayLength,
		Direction:     dir,
		AlignRotation: c.Conform.AlignRotation,
		MaxRetries:    c.Conform.MaxRetries,
	}
	if err := opts.Validate(); err != nil {
		return conform.Options{}, fmt.Errorf("invalid conform settings: %w", err)
	}
	return opts, nil
}
