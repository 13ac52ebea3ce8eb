// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/teamsplit/partition"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "partition.iterations")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogFormats returns the list of valid log formats
func ValidLogFormats() []string {
	return []string{"text", "json"}
}

// ValidOutputFormats returns the list of valid result encodings
func ValidOutputFormats() []string {
	return []string{"text", "json", "yaml", "toml"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if DecodeSeparator(c.Input.Delimiter) == "" {
		errors = append(errors, ValidationError{
			Field:   "input.delimiter",
			Value:   c.Input.Delimiter,
			Message: "must not be empty",
		})
	}
	if DecodeSeparator(c.Input.LineSeparator) == "" {
		errors = append(errors, ValidationError{
			Field:   "input.line_separator",
			Value:   c.Input.LineSeparator,
			Message: "must not be empty",
		})
	}

	if c.Partition.ExactThreshold < 0 || c.Partition.ExactThreshold > partition.MaxExactSize {
		errors = append(errors, ValidationError{
			Field:   "partition.exact_threshold",
			Value:   c.Partition.ExactThreshold,
			Message: fmt.Sprintf("must be between 0 and %d", partition.MaxExactSize),
		})
	}
	if c.Partition.Iterations < 1 {
		errors = append(errors, ValidationError{
			Field:   "partition.iterations",
			Value:   c.Partition.Iterations,
			Message: "must be at least 1",
		})
	}
	if c.Partition.Workers < 0 {
		errors = append(errors, ValidationError{
			Field:   "partition.workers",
			Value:   c.Partition.Workers,
			Message: "must be non-negative",
		})
	}

	if !slices.Contains(ValidOutputFormats(), strings.ToLower(c.Output.Format)) {
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Value:   c.Output.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidOutputFormats(), ", ")),
		})
	}

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(c.Logging.Format)) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats(), ", ")),
		})
	}

	return errors
}
