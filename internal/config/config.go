// Package config defines the application configuration for the sparsenms CLI
// and server, loadable from files, environment variables, and flags.
package config

import (
	"fmt"
)

// Config represents the complete configuration for the sparsenms application.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Suppression thresholds used by the suppress command and the server.
	Suppression SuppressionConfig `mapstructure:"suppression" yaml:"suppression" json:"suppression"`

	// Output configuration for the suppress command.
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Server configuration (for serve command).
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`

	// Bench configuration (for bench command).
	Bench BenchConfig `mapstructure:"bench" yaml:"bench" json:"bench"`
}

// SuppressionConfig contains the NMS thresholds.
type SuppressionConfig struct {
	IoUThreshold   float64 `mapstructure:"iou_threshold" yaml:"iou_threshold" json:"iou_threshold"`
	ScoreThreshold float64 `mapstructure:"score_threshold" yaml:"score_threshold" json:"score_threshold"`
}

// OutputConfig controls how the suppress command emits results.
type OutputConfig struct {
	// Format is "indices" (kept indices only) or "detections" (filtered set).
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	// File is the output path; empty writes to stdout.
	File string `mapstructure:"file" yaml:"file" json:"file"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host       string `mapstructure:"host" yaml:"host" json:"host"`
	Port       int    `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigin string `mapstructure:"cors_origin" yaml:"cors_origin" json:"cors_origin"`
	MaxBodyMB  int64  `mapstructure:"max_body_mb" yaml:"max_body_mb" json:"max_body_mb"`
	TimeoutSec int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
}

// BenchConfig contains settings for the sparse-vs-naive benchmark run.
type BenchConfig struct {
	Boxes int   `mapstructure:"boxes" yaml:"boxes" json:"boxes"`
	Runs  int   `mapstructure:"runs" yaml:"runs" json:"runs"`
	Seed  int64 `mapstructure:"seed" yaml:"seed" json:"seed"`
}

// DefaultConfig returns the default application configuration.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Suppression: SuppressionConfig{
			IoUThreshold:   0.5,
			ScoreThreshold: 0.0,
		},
		Output: OutputConfig{
			Format: "indices",
		},
		Server: ServerConfig{
			Host:       "localhost",
			Port:       8080,
			CORSOrigin: "*",
			MaxBodyMB:  16,
			TimeoutSec: 30,
		},
		Bench: BenchConfig{
			Boxes: 10000,
			Runs:  10,
			Seed:  42,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (want debug, info, warn or error)", c.LogLevel)
	}

	if c.Suppression.IoUThreshold < 0 || c.Suppression.IoUThreshold > 1 {
		return fmt.Errorf("suppression.iou_threshold must be in [0, 1], got %v", c.Suppression.IoUThreshold)
	}
	if c.Suppression.ScoreThreshold < 0 || c.Suppression.ScoreThreshold > 1 {
		return fmt.Errorf("suppression.score_threshold must be in [0, 1], got %v", c.Suppression.ScoreThreshold)
	}

	switch c.Output.Format {
	case "indices", "detections":
	default:
		return fmt.Errorf("invalid output.format %q (want indices or detections)", c.Output.Format)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.MaxBodyMB <= 0 {
		return fmt.Errorf("server.max_body_mb must be positive, got %d", c.Server.MaxBodyMB)
	}
	if c.Server.TimeoutSec <= 0 {
		return fmt.Errorf("server.timeout_sec must be positive, got %d", c.Server.TimeoutSec)
	}

	if c.Bench.Boxes <= 0 {
		return fmt.Errorf("bench.boxes must be positive, got %d", c.Bench.Boxes)
	}
	if c.Bench.Runs <= 0 {
		return fmt.Errorf("bench.runs must be positive, got %d", c.Bench.Runs)
	}

	return nil
}
