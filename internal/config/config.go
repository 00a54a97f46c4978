package config

import (
	"os"
	"strconv"
	"time"
)

// Store backends
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Output formats for task listings
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all configuration options for the schedule application
type Config struct {
	Store       StoreConfig       `toml:"store" yaml:"store"`
	Time        TimeConfig        `toml:"time" yaml:"time"`
	Validation  ValidationConfig  `toml:"validation" yaml:"validation"`
	Display     DisplayConfig     `toml:"display" yaml:"display"`
	Application ApplicationConfig `toml:"application" yaml:"application"`
}

// StoreConfig holds task storage configuration. Every backend keeps its
// data in memory only; nothing survives the process.
type StoreConfig struct {
	Backend      string        `env:"ADS_STORE_BACKEND" toml:"backend" yaml:"backend"`
	QueryTimeout time.Duration `env:"ADS_STORE_QUERY_TIMEOUT" toml:"query_timeout" yaml:"query_timeout"`
}

// TimeConfig holds time parsing and formatting configuration
type TimeConfig struct {
	InputFormat   string `env:"ADS_TIME_INPUT_FORMAT" toml:"input_format" yaml:"input_format"`
	DisplayFormat string `env:"ADS_TIME_DISPLAY_FORMAT" toml:"display_format" yaml:"display_format"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	// DescriptionMaxLength of zero means no limit.
	DescriptionMaxLength   int  `env:"ADS_VALIDATION_DESCRIPTION_MAX" toml:"description_max_length" yaml:"description_max_length"`
	RequireOrderedInterval bool `env:"ADS_VALIDATION_REQUIRE_ORDERED" toml:"require_ordered_interval" yaml:"require_ordered_interval"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Format      string `env:"ADS_DISPLAY_FORMAT" toml:"format" yaml:"format"`
	ShowSummary bool   `env:"ADS_DISPLAY_SHOW_SUMMARY" toml:"show_summary" yaml:"show_summary"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"ADS_APP_TIMEOUT" toml:"timeout" yaml:"timeout"`
	Verbose bool          `env:"ADS_APP_VERBOSE" toml:"verbose" yaml:"verbose"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:      BackendMemory,
			QueryTimeout: 5 * time.Second,
		},
		Time: TimeConfig{
			InputFormat:   "15:04",
			DisplayFormat: "15:04",
		},
		Validation: ValidationConfig{
			DescriptionMaxLength:   0,
			RequireOrderedInterval: false,
		},
		Display: DisplayConfig{
			Format:      FormatText,
			ShowSummary: false,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and the current value is kept.
func (c *Config) LoadFromEnvironment() error {
	// Store configuration
	if backend := os.Getenv("ADS_STORE_BACKEND"); backend != "" {
		c.Store.Backend = backend
	}
	if timeout := os.Getenv("ADS_STORE_QUERY_TIMEOUT"); timeout != "" {
		c.Store.QueryTimeout = ParseDurationWithFallback(timeout, c.Store.QueryTimeout)
	}

	// Time configuration
	if format := os.Getenv("ADS_TIME_INPUT_FORMAT"); format != "" {
		c.Time.InputFormat = format
	}
	if format := os.Getenv("ADS_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}

	// Validation configuration
	if maxLen := os.Getenv("ADS_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		c.Validation.DescriptionMaxLength = ParseIntWithFallback(maxLen, c.Validation.DescriptionMaxLength)
	}
	if ordered := os.Getenv("ADS_VALIDATION_REQUIRE_ORDERED"); ordered != "" {
		c.Validation.RequireOrderedInterval = ParseBoolWithFallback(ordered, c.Validation.RequireOrderedInterval)
	}

	// Display configuration
	if format := os.Getenv("ADS_DISPLAY_FORMAT"); format != "" {
		c.Display.Format = format
	}
	if summary := os.Getenv("ADS_DISPLAY_SHOW_SUMMARY"); summary != "" {
		c.Display.ShowSummary = ParseBoolWithFallback(summary, c.Display.ShowSummary)
	}

	// Application configuration
	if timeout := os.Getenv("ADS_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("ADS_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return &ConfigError{Field: "store.backend", Message: "store backend must be one of: memory, sqlite"}
	}
	if c.Store.QueryTimeout <= 0 {
		return &ConfigError{Field: "store.query_timeout", Message: "query timeout must be positive"}
	}

	if c.Time.InputFormat == "" {
		return &ConfigError{Field: "time.input_format", Message: "input format cannot be empty"}
	}
	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}

	if c.Validation.DescriptionMaxLength < 0 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length cannot be negative (0 means no limit)"}
	}

	switch c.Display.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return &ConfigError{Field: "display.format", Message: "display format must be one of: text, json, yaml"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
