package validation

import (
	"strings"
	"unicode/utf8"

	"astro-schedule/internal/config"
	"astro-schedule/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator using the default configuration
func NewValidator() *Validator {
	return &Validator{config: nil}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength reports whether s has at most max characters.
func (v *Validator) IsValidStringLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// IsValidDescriptionLength checks a description against the configured
// limit. A limit of zero or less means any length is accepted.
func (v *Validator) IsValidDescriptionLength(description string) bool {
	maxLen := v.DescriptionMaxLength()
	return maxLen <= 0 || v.IsValidStringLength(description, maxLen)
}

// IsValidTimeOfDay checks that t lies within a single day
func (v *Validator) IsValidTimeOfDay(t domain.TimeOfDay) bool {
	return t.IsValid()
}

// IsOrderedInterval checks that start is strictly before end
func (v *Validator) IsOrderedInterval(start, end domain.TimeOfDay) bool {
	return start.Before(end)
}

// DescriptionMaxLength returns the configured maximum description length.
// Zero, the default, means no limit.
func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 0
}

// RequireOrderedInterval reports whether start must precede end
func (v *Validator) RequireOrderedInterval() bool {
	if v.config != nil {
		return v.config.Validation.RequireOrderedInterval
	}
	return false
}

// InputTimeFormat returns the configured input time layout or "15:04"
func (v *Validator) InputTimeFormat() string {
	if v.config != nil && v.config.Time.InputFormat != "" {
		return v.config.Time.InputFormat
	}
	return domain.DefaultTimeLayout
}
