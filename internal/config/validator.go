package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "chart.rows")
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
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Bounds on the grid size. Rows are addressed by a single letter.
const (
	MaxRows = 26
	MaxCols = 100
)

// ValidStrategies returns the accepted reservation.strategy values.
// Must match strategy.Kinds (kept separate to avoid an import cycle).
func ValidStrategies() []string {
	return []string{"lock", "row-lock", "optimistic"}
}

// ValidModes returns the accepted reservation.mode values.
func ValidModes() []string {
	return []string{"contiguous", "nearest"}
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidColorModes returns the accepted display.color values.
func ValidColorModes() []string {
	return []string{"auto", "always", "never"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateChart()...)
	errors = append(errors, c.validateReservation()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateDisplay()...)
	errors = append(errors, c.validateBench()...)

	return errors
}

func oneOf(field string, value string, valid []string) []ValidationError {
	if slices.Contains(valid, strings.ToLower(value)) {
		return nil
	}
	return []ValidationError{{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(valid, ", ")),
	}}
}

func inRange(field string, value, lo, hi int) []ValidationError {
	if value < lo {
		return []ValidationError{{Field: field, Value: value, Message: fmt.Sprintf("must be at least %d", lo)}}
	}
	if value > hi {
		return []ValidationError{{Field: field, Value: value, Message: fmt.Sprintf("exceeds maximum of %d", hi)}}
	}
	return nil
}

// validateChart validates the ChartConfig
func (c *Config) validateChart() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Chart.Path) == "" {
		errors = append(errors, ValidationError{
			Field:   "chart.path",
			Value:   c.Chart.Path,
			Message: "must not be empty",
		})
	}
	errors = append(errors, inRange("chart.rows", c.Chart.Rows, 1, MaxRows)...)
	errors = append(errors, inRange("chart.cols", c.Chart.Cols, 1, MaxCols)...)

	return errors
}

// validateReservation validates the ReservationConfig
func (c *Config) validateReservation() []ValidationError {
	var errors []ValidationError

	errors = append(errors, oneOf("reservation.strategy", c.Reservation.Strategy, ValidStrategies())...)
	errors = append(errors, oneOf("reservation.mode", c.Reservation.Mode, ValidModes())...)

	// 0 is unbounded
	if c.Reservation.MaxRetries < 0 {
		errors = append(errors, ValidationError{
			Field:   "reservation.max_retries",
			Value:   c.Reservation.MaxRetries,
			Message: "must be non-negative (0 retries until success)",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" {
		errors = append(errors, oneOf("logging.level", c.Logging.Level, ValidLogLevels())...)
	}

	// 0 disables rotation
	const maxLogSizeMB = 1000
	errors = append(errors, inRange("logging.max_size_mb", c.Logging.MaxSizeMB, 0, maxLogSizeMB)...)

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateDisplay validates the DisplayConfig
func (c *Config) validateDisplay() []ValidationError {
	return oneOf("display.color", c.Display.Color, ValidColorModes())
}

// validateBench validates the BenchConfig
func (c *Config) validateBench() []ValidationError {
	var errors []ValidationError

	const maxRequests = 10_000_000
	const maxWorkers = 4096
	errors = append(errors, inRange("bench.requests", c.Bench.Requests, 1, maxRequests)...)
	errors = append(errors, inRange("bench.workers", c.Bench.Workers, 1, maxWorkers)...)

	return errors
}
