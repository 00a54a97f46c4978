package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, 5*time.Second, cfg.Store.QueryTimeout)
	assert.Equal(t, "15:04", cfg.Time.InputFormat)
	assert.Equal(t, "15:04", cfg.Time.DisplayFormat)
	assert.Equal(t, 0, cfg.Validation.DescriptionMaxLength)
	assert.False(t, cfg.Validation.RequireOrderedInterval)
	assert.Equal(t, FormatText, cfg.Display.Format)
	assert.False(t, cfg.Display.ShowSummary)
	assert.Equal(t, 30*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("ADS_STORE_BACKEND", "sqlite")
	t.Setenv("ADS_STORE_QUERY_TIMEOUT", "2s")
	t.Setenv("ADS_TIME_INPUT_FORMAT", "3:04PM")
	t.Setenv("ADS_TIME_DISPLAY_FORMAT", "3:04PM")
	t.Setenv("ADS_VALIDATION_DESCRIPTION_MAX", "40")
	t.Setenv("ADS_VALIDATION_REQUIRE_ORDERED", "true")
	t.Setenv("ADS_DISPLAY_FORMAT", "json")
	t.Setenv("ADS_DISPLAY_SHOW_SUMMARY", "1")
	t.Setenv("ADS_APP_TIMEOUT", "1m")
	t.Setenv("ADS_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, 2*time.Second, cfg.Store.QueryTimeout)
	assert.Equal(t, "3:04PM", cfg.Time.InputFormat)
	assert.Equal(t, "3:04PM", cfg.Time.DisplayFormat)
	assert.Equal(t, 40, cfg.Validation.DescriptionMaxLength)
	assert.True(t, cfg.Validation.RequireOrderedInterval)
	assert.Equal(t, FormatJSON, cfg.Display.Format)
	assert.True(t, cfg.Display.ShowSummary)
	assert.Equal(t, time.Minute, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironment_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("ADS_STORE_QUERY_TIMEOUT", "soon")
	t.Setenv("ADS_VALIDATION_DESCRIPTION_MAX", "many")
	t.Setenv("ADS_APP_VERBOSE", "maybe")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 5*time.Second, cfg.Store.QueryTimeout)
	assert.Equal(t, 0, cfg.Validation.DescriptionMaxLength)
	assert.False(t, cfg.Application.Verbose)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown backend", func(c *Config) { c.Store.Backend = "postgres" }, "store.backend"},
		{"zero query timeout", func(c *Config) { c.Store.QueryTimeout = 0 }, "store.query_timeout"},
		{"empty input format", func(c *Config) { c.Time.InputFormat = "" }, "time.input_format"},
		{"empty display format", func(c *Config) { c.Time.DisplayFormat = "" }, "time.display_format"},
		{"negative description length", func(c *Config) { c.Validation.DescriptionMaxLength = -1 }, "validation.description_max_length"},
		{"unknown output format", func(c *Config) { c.Display.Format = "xml" }, "display.format"},
		{"negative app timeout", func(c *Config) { c.Application.Timeout = -time.Second }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			configErr, ok := err.(*ConfigError)
			require.True(t, ok, "expected *ConfigError, got %T", err)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestParseWithFallback(t *testing.T) {
	assert.Equal(t, 3*time.Second, ParseDurationWithFallback("3s", time.Second))
	assert.Equal(t, time.Second, ParseDurationWithFallback("x", time.Second))
	assert.Equal(t, 7, ParseIntWithFallback("7", 1))
	assert.Equal(t, 1, ParseIntWithFallback("seven", 1))
	assert.True(t, ParseBoolWithFallback("true", false))
	assert.True(t, ParseBoolWithFallback("nope", true))
}
