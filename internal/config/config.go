// Package config handles optimizer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Reordering algorithms.
const (
	AlgorithmGreedy = "greedy"
	AlgorithmFifo   = "fifo"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all optimizer settings.
type Config struct {
	Optimize OptimizeConfig `yaml:"optimize"`
	Analyze  AnalyzeConfig  `yaml:"analyze"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// OptimizeConfig selects the reordering pass.
type OptimizeConfig struct {
	Algorithm   string `yaml:"algorithm"`    // greedy or fifo
	CacheSize   int    `yaml:"cache_size"`   // FIFO cache entries, used by the fifo algorithm
	VertexFetch bool   `yaml:"vertex_fetch"` // Renumber vertices in first-use order afterwards
}

// AnalyzeConfig describes the simulated cache used for statistics.
type AnalyzeConfig struct {
	CacheSize     int `yaml:"cache_size"`
	WarpSize      int `yaml:"warp_size"`      // 0 disables warp accounting
	PrimGroupSize int `yaml:"primgroup_size"` // 0 disables primitive groups
}

// OutputConfig holds output file settings.
type OutputConfig struct {
	Overwrite bool `yaml:"overwrite"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Optimize: OptimizeConfig{
			Algorithm:   AlgorithmGreedy,
			CacheSize:   16,
			VertexFetch: true,
		},
		Analyze: AnalyzeConfig{
			CacheSize:     16,
			WarpSize:      0,
			PrimGroupSize: 0,
		},
		Output: OutputConfig{
			Overwrite: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings the optimizer would reject.
func (c *Config) Validate() error {
	switch c.Optimize.Algorithm {
	case AlgorithmGreedy, AlgorithmFifo:
	default:
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, c.Optimize.Algorithm)
	}
	if c.Optimize.CacheSize < 3 {
		return fmt.Errorf("%w: optimize.cache_size must be at least 3, got %d", ErrInvalidConfig, c.Optimize.CacheSize)
	}
	if c.Analyze.CacheSize < 3 {
		return fmt.Errorf("%w: analyze.cache_size must be at least 3, got %d", ErrInvalidConfig, c.Analyze.CacheSize)
	}
	if c.Analyze.WarpSize != 0 && c.Analyze.WarpSize < 3 {
		return fmt.Errorf("%w: analyze.warp_size must be 0 or at least 3, got %d", ErrInvalidConfig, c.Analyze.WarpSize)
	}
	if c.Analyze.PrimGroupSize < 0 {
		return fmt.Errorf("%w: analyze.primgroup_size must not be negative", ErrInvalidConfig)
	}
	return nil
}
