// SPDX-License-Identifier: MIT

// Package config loads linsys settings from the environment.
//
// Variables and defaults:
//
//	LINSYS_TOLERANCE       1e-10
//	LINSYS_MAX_ITERATIONS  1000
//	LINSYS_RELAXATION      1.25
//	LOG_LEVEL              info
//	LOG_DEV                false
//
// Command-line flags override these values in cmd/linsys.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/internal/logging"
	"github.com/katalvlaran/linsys/solver"
	"github.com/kelseyhightower/envconfig"
)

// ErrInvalid marks a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all application configuration.
type Config struct {
	Solver  SolverConfig
	Logging LogConfig
}

// SolverConfig holds the iterative stopping rule and SOR factor.
type SolverConfig struct {
	Tolerance     float64 `envconfig:"LINSYS_TOLERANCE" default:"1e-10"`
	MaxIterations int     `envconfig:"LINSYS_MAX_ITERATIONS" default:"1000"`
	Relaxation    float64 `envconfig:"LINSYS_RELAXATION" default:"1.25"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}

	return cfg
}

// Default returns default configuration.
func Default() *Config {
	def := solver.DefaultConfig()

	return &Config{
		Solver: SolverConfig{
			Tolerance:     def.Tolerance,
			MaxIterations: def.MaxIterations,
			Relaxation:    def.Relaxation,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}

// Validate checks every field against its domain.
func (c *Config) Validate() error {
	s := c.Solver
	if !(s.Tolerance > 0) || math.IsInf(s.Tolerance, 0) {
		return fmt.Errorf("LINSYS_TOLERANCE=%g: %w", s.Tolerance, ErrInvalid)
	}
	if s.MaxIterations < 1 {
		return fmt.Errorf("LINSYS_MAX_ITERATIONS=%d: %w", s.MaxIterations, ErrInvalid)
	}
	if !(s.Relaxation > 0 && s.Relaxation < 2) {
		return fmt.Errorf("LINSYS_RELAXATION=%g: %w", s.Relaxation, ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL=%q: %w", c.Logging.Level, ErrInvalid)
	}

	return nil
}

// ToSolver converts to the per-call solver configuration (zero initial guess).
func (s SolverConfig) ToSolver() solver.Config {
	return solver.Config{
		Tolerance:     s.Tolerance,
		MaxIterations: s.MaxIterations,
		Relaxation:    s.Relaxation,
	}
}

// ToLogging converts to a logging.Config writing to stderr.
func (l LogConfig) ToLogging() logging.Config {
	cfg := logging.DefaultConfig()
	if l.Development {
		cfg = logging.DevelopmentConfig()
	}
	cfg.Level = l.Level

	return cfg
}
