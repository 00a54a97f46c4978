package domain

import (
	"fmt"
	"time"
)

// MinutesPerDay is the number of distinct TimeOfDay values.
const MinutesPerDay = 24 * 60

// DefaultTimeLayout is the "HH:mm" layout used for input and display.
const DefaultTimeLayout = "15:04"

// TimeOfDay is a wall-clock time within a single day, stored as minutes
// since midnight. It carries no date and no timezone.
type TimeOfDay int

// NewTimeOfDay creates a TimeOfDay from an hour and minute.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses s with the given time layout (for example "15:04").
// Only the hour and minute of the parsed value are kept.
func ParseTimeOfDay(s, layout string) (TimeOfDay, error) {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// IsValid reports whether t lies within a single day.
func (t TimeOfDay) IsValid() bool {
	return t >= 0 && t < MinutesPerDay
}

// Format renders t using a Go time layout.
func (t TimeOfDay) Format(layout string) string {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), 0, 0, time.UTC).Format(layout)
}

// String renders t as HH:mm.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text), DefaultTimeLayout)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
