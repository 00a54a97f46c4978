// Package logging provides the leveled console logger built on charmbracelet/log.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DebugEnv enables debug output when set to any non-empty value.
const DebugEnv = "ADS_DEBUG"

// Options holds configuration for the console logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
	Output          io.Writer
}

// DefaultOptions returns default options: warnings and above on stderr.
func DefaultOptions() Options {
	level := log.WarnLevel
	if DebugEnabled() {
		level = log.DebugLevel
	}
	return Options{
		Level:     level,
		Formatter: log.TextFormatter,
		Prefix:    "ads",
		Output:    os.Stderr,
	}
}

// New creates a logger with the given options.
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	return log.NewWithOptions(out, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

var (
	mu      sync.RWMutex
	current = New(DefaultOptions())
)

// Default returns the process logger.
func Default() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetDefault replaces the process logger.
func SetDefault(logger *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = logger
}

// SetVerbose lowers the process logger level to debug when verbose is true.
func SetVerbose(verbose bool) {
	if verbose {
		Default().SetLevel(log.DebugLevel)
	}
}

// DebugEnabled returns true if debug mode is enabled via ADS_DEBUG
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// Debugf logs a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		Default().Debugf(format, args...)
	}
}

// Debugln logs a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		Default().Debug(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
	}
}
