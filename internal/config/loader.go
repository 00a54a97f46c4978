package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configFileNames are tried in order inside every search directory.
var configFileNames = []string{"ads.toml", ".ads.toml", "ads.yaml", "ads.yml", ".ads.yaml"}

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	file       string
	searchDirs []string
	source     string
}

// NewLoader creates a new configuration loader that searches the current
// directory and the user configuration directory for a config file.
func NewLoader() *Loader {
	dirs := []string{"."}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, "ads"))
	}
	return &Loader{
		config:     NewConfig(),
		searchDirs: dirs,
	}
}

// WithFile makes the loader read exactly this config file. A missing file is an error.
func (l *Loader) WithFile(path string) *Loader {
	l.file = path
	return l
}

// WithSearchDirs replaces the directories searched for a config file.
func (l *Loader) WithSearchDirs(dirs ...string) *Loader {
	l.searchDirs = dirs
	return l
}

// Source returns the config file that was loaded, or "" if none was.
func (l *Loader) Source() string {
	return l.source
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file (TOML or YAML)
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	path, err := l.resolveFile()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := LoadFile(l.config, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		l.source = path
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) resolveFile() (string, error) {
	if l.file != "" {
		if _, err := os.Stat(l.file); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return l.file, nil
	}
	for _, dir := range l.searchDirs {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}
	return "", nil
}

// LoadFile decodes a TOML or YAML config file over cfg, chosen by extension.
// Keys missing from the file keep their current values.
func LoadFile(cfg *Config, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown config key %q", undecoded[0].String())
		}
		return nil
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config file type %q", filepath.Ext(path))
	}
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Store overrides
	StoreBackend      *string
	StoreQueryTimeout *time.Duration

	// Time overrides
	InputFormat   *string
	DisplayFormat *string

	// Validation overrides
	DescriptionMaxLength   *int
	RequireOrderedInterval *bool

	// Display overrides
	Format      *string
	ShowSummary *bool

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.StoreBackend != nil {
		config.Store.Backend = *overrides.StoreBackend
	}
	if overrides.StoreQueryTimeout != nil {
		config.Store.QueryTimeout = *overrides.StoreQueryTimeout
	}

	if overrides.InputFormat != nil {
		config.Time.InputFormat = *overrides.InputFormat
	}
	if overrides.DisplayFormat != nil {
		config.Time.DisplayFormat = *overrides.DisplayFormat
	}

	if overrides.DescriptionMaxLength != nil {
		config.Validation.DescriptionMaxLength = *overrides.DescriptionMaxLength
	}
	if overrides.RequireOrderedInterval != nil {
		config.Validation.RequireOrderedInterval = *overrides.RequireOrderedInterval
	}

	if overrides.Format != nil {
		config.Display.Format = *overrides.Format
	}
	if overrides.ShowSummary != nil {
		config.Display.ShowSummary = *overrides.ShowSummary
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
