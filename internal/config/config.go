// SPDX-License-Identifier: MIT

// Package config holds the teamsplit configuration: defaults, viper wiring
// and validation. Values come, in increasing priority, from the defaults
// below, the YAML config file, TEAMSPLIT_* environment variables and command
// line flags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/teamsplit/csvmatrix"
	"github.com/katalvlaran/teamsplit/partition"
)

// EnvPrefix is prepended to every environment override, e.g.
// TEAMSPLIT_PARTITION_ITERATIONS for partition.iterations.
const EnvPrefix = "TEAMSPLIT"

// Config is the root configuration.
type Config struct {
	Input     InputConfig     `mapstructure:"input"`
	Partition PartitionConfig `mapstructure:"partition"`
	Output    OutputConfig    `mapstructure:"output"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// InputConfig controls how matrix files are read.
type InputConfig struct {
	// HasHeader treats the first row as column names (default: true)
	HasHeader bool `mapstructure:"has_header"`
	// Delimiter separates fields; escapes and names are accepted, see DecodeSeparator (default: ",")
	Delimiter string `mapstructure:"delimiter"`
	// LineSeparator separates rows (default: "\n")
	LineSeparator string `mapstructure:"line_separator"`
}

// PartitionConfig mirrors partition.Options.
type PartitionConfig struct {
	ExactThreshold int   `mapstructure:"exact_threshold"`
	Iterations     int   `mapstructure:"iterations"`
	Seed           int64 `mapstructure:"seed"`
	Workers        int   `mapstructure:"workers"`
}

// OutputConfig selects the result encoding.
type OutputConfig struct {
	// Format is one of "text", "json", "yaml", "toml" (default: "text")
	Format string `mapstructure:"format"`
}

// LoggingConfig controls diagnostics on stderr.
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error" (default: "warn")
	Level string `mapstructure:"level"`
	// Format is "text" or "json" (default: "text")
	Format string `mapstructure:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	in := csvmatrix.DefaultOptions()
	p := partition.DefaultOptions()

	return &Config{
		Input: InputConfig{
			HasHeader:     in.HasHeader,
			Delimiter:     in.Delimiter,
			LineSeparator: in.LineSeparator,
		},
		Partition: PartitionConfig{
			ExactThreshold: p.ExactThreshold,
			Iterations:     p.Iterations,
			Seed:           p.Seed,
			Workers:        p.Workers,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// SetDefaults registers every default on v so they are visible even without
// a config file.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("input.has_header", defaults.Input.HasHeader)
	v.SetDefault("input.delimiter", defaults.Input.Delimiter)
	v.SetDefault("input.line_separator", defaults.Input.LineSeparator)

	v.SetDefault("partition.exact_threshold", defaults.Partition.ExactThreshold)
	v.SetDefault("partition.iterations", defaults.Partition.Iterations)
	v.SetDefault("partition.seed", defaults.Partition.Seed)
	v.SetDefault("partition.workers", defaults.Partition.Workers)

	v.SetDefault("output.format", defaults.Output.Format)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
}

// NewViper returns a viper instance with defaults registered and
// TEAMSPLIT_* environment overrides enabled. Nested keys map to env vars by
// replacing dots with underscores.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load unmarshals the merged view of v into a Config.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "teamsplit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teamsplit"
	}

	return filepath.Join(home, ".config", "teamsplit")
}

// CSVOptions converts the input section, decoding separator escapes.
func (c *Config) CSVOptions() csvmatrix.Options {
	return csvmatrix.Options{
		HasHeader:     c.Input.HasHeader,
		Delimiter:     DecodeSeparator(c.Input.Delimiter),
		LineSeparator: DecodeSeparator(c.Input.LineSeparator),
	}
}

// PartitionOptions converts the partition section; log may be nil.
func (c *Config) PartitionOptions(log *slog.Logger) partition.Options {
	return partition.Options{
		ExactThreshold: c.Partition.ExactThreshold,
		Iterations:     c.Partition.Iterations,
		Seed:           c.Partition.Seed,
		Workers:        c.Partition.Workers,
		Logger:         log,
	}
}
