package sqlite

import (
	"fmt"

	"astro-schedule/internal/domain"
)

// FormatTimeOfDayForDB stores a time of day as minutes since midnight.
func FormatTimeOfDayForDB(t domain.TimeOfDay) int {
	return t.Minutes()
}

// ParseTimeOfDayFromDB converts stored minutes back into a time of day.
func ParseTimeOfDayFromDB(minutes int) (domain.TimeOfDay, error) {
	t := domain.TimeOfDay(minutes)
	if !t.IsValid() {
		return 0, fmt.Errorf("stored minute %d is outside a single day", minutes)
	}
	return t, nil
}

// FormatBoolForDB stores a flag as 0 or 1.
func FormatBoolForDB(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ParseBoolFromDB treats any non-zero value as true.
func ParseBoolFromDB(v int) bool {
	return v != 0
}
