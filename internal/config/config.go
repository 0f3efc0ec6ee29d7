package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete seatbook configuration
type Config struct {
	Chart       ChartConfig       `mapstructure:"chart" yaml:"chart"`
	Reservation ReservationConfig `mapstructure:"reservation" yaml:"reservation"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging"`
	Display     DisplayConfig     `mapstructure:"display" yaml:"display"`
	Bench       BenchConfig       `mapstructure:"bench" yaml:"bench"`
}

// ChartConfig controls where seat state is stored and the size of a new flight
type ChartConfig struct {
	// Path is the seat chart file (default: "seating_chart.txt" in the working directory)
	Path string `mapstructure:"path" yaml:"path"`
	// Rows is the number of rows used when the chart does not exist yet (default: 20)
	Rows int `mapstructure:"rows" yaml:"rows"`
	// Cols is the number of seats per row used when the chart does not exist yet (default: 8)
	Cols int `mapstructure:"cols" yaml:"cols"`
}

// ReservationConfig controls how requests are executed
type ReservationConfig struct {
	// Strategy is the concurrency strategy: "lock", "row-lock" or "optimistic" (default: "lock")
	Strategy string `mapstructure:"strategy" yaml:"strategy"`
	// Mode is the booking policy: "contiguous" or "nearest" (default: "nearest")
	Mode string `mapstructure:"mode" yaml:"mode"`
	// MaxRetries bounds optimistic compare-and-swap retries; 0 retries forever (default: 64)
	MaxRetries int `mapstructure:"max_retries" yaml:"max_retries"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logging is enabled (default: false)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the directory holding seatbook.log; empty logs to stderr
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB is the log file size in megabytes that triggers rotation (default: 5)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated log files to keep (default: 2)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
}

// DisplayConfig controls terminal output
type DisplayConfig struct {
	// Color is "auto", "always" or "never" (default: "auto")
	Color string `mapstructure:"color" yaml:"color"`
}

// BenchConfig controls the bench command
type BenchConfig struct {
	// Requests is the number of random requests to fire (default: 1000)
	Requests int `mapstructure:"requests" yaml:"requests"`
	// Workers is the number of concurrent goroutines (default: 8)
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Chart: ChartConfig{
			Path: "seating_chart.txt",
			Rows: 20,
			Cols: 8,
		},
		Reservation: ReservationConfig{
			Strategy:   "lock",
			Mode:       "nearest",
			MaxRetries: 64,
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
		Display: DisplayConfig{
			Color: "auto",
		},
		Bench: BenchConfig{
			Requests: 1000,
			Workers:  8,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("chart.path", defaults.Chart.Path)
	viper.SetDefault("chart.rows", defaults.Chart.Rows)
	viper.SetDefault("chart.cols", defaults.Chart.Cols)

	viper.SetDefault("reservation.strategy", defaults.Reservation.Strategy)
	viper.SetDefault("reservation.mode", defaults.Reservation.Mode)
	viper.SetDefault("reservation.max_retries", defaults.Reservation.MaxRetries)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	viper.SetDefault("display.color", defaults.Display.Color)

	viper.SetDefault("bench.requests", defaults.Bench.Requests)
	viper.SetDefault("bench.workers", defaults.Bench.Workers)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "seatbook")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".seatbook"
	}
	return filepath.Join(home, ".config", "seatbook")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Keys returns every configuration key in display order.
func Keys() []string {
	return []string{
		"chart.path", "chart.rows", "chart.cols",
		"reservation.strategy", "reservation.mode", "reservation.max_retries",
		"logging.enabled", "logging.level", "logging.dir", "logging.max_size_mb", "logging.max_backups",
		"display.color",
		"bench.requests", "bench.workers",
	}
}
