// Package config loads runtime settings from CUBES_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// MaxRotationSpeed is the upper bound of the per-frame rotation speed.
const MaxRotationSpeed = 0.5

// Config holds window, simulation and panel settings.
type Config struct {
	WindowWidth  int    `env:"CUBES_WINDOW_WIDTH"  envDefault:"1280"`
	WindowHeight int    `env:"CUBES_WINDOW_HEIGHT" envDefault:"720"`
	WindowTitle  string `env:"CUBES_WINDOW_TITLE"  envDefault:"Cubes"`
	// TPS of 0 ticks once per displayed frame.
	TPS          int    `env:"CUBES_TPS"           envDefault:"0"`

	// Seed drives cube placement; 0 picks a random seed.
	Seed          uint64  `env:"CUBES_SEED"`
	RotationSpeed float32 `env:"CUBES_ROTATION_SPEED" envDefault:"0.02"`
	PlaneWidth    float32 `env:"CUBES_PLANE_WIDTH"    envDefault:"60"`
	PlaneHeight   float32 `env:"CUBES_PLANE_HEIGHT"   envDefault:"40"`
	MaxCubeHeight float32 `env:"CUBES_MAX_CUBE_HEIGHT" envDefault:"5"`

	StatsHistory int `env:"CUBES_STATS_HISTORY" envDefault:"120"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration Load yields with an empty environment.
func Default() Config {
	return Config{
		WindowWidth:   1280,
		WindowHeight:  720,
		WindowTitle:   "Cubes",
		RotationSpeed: 0.02,
		PlaneWidth:    60,
		PlaneHeight:   40,
		MaxCubeHeight: 5,
		StatsHistory:  120,
	}
}

// SyncWithDisplay reports whether updates follow the display refresh rate.
func (c Config) SyncWithDisplay() bool {
	return c.TPS == 0
}

// Validate checks ranges that env tags cannot express.
func (c Config) Validate() error {
	var errs []error
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight))
	}
	if c.TPS < 0 {
		errs = append(errs, fmt.Errorf("tps %d must not be negative", c.TPS))
	}
	if !(c.RotationSpeed >= 0 && c.RotationSpeed <= MaxRotationSpeed) {
		errs = append(errs, fmt.Errorf("rotation speed %v outside [0, %v]", c.RotationSpeed, MaxRotationSpeed))
	}
	if c.PlaneWidth <= 0 || c.PlaneHeight <= 0 {
		errs = append(errs, fmt.Errorf("plane size %vx%v must be positive", c.PlaneWidth, c.PlaneHeight))
	}
	if c.MaxCubeHeight < 0 {
		errs = append(errs, fmt.Errorf("max cube height %v must not be negative", c.MaxCubeHeight))
	}
	if c.StatsHistory <= 0 {
		errs = append(errs, fmt.Errorf("stats history %d must be positive", c.StatsHistory))
	}
	return errors.Join(errs...)
}
