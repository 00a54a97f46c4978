package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Canonical priority values. Priority is an open set; other strings are accepted.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Task represents a scheduled activity for the day.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Description string    `json:"description" yaml:"description"`
	Start       TimeOfDay `json:"start" yaml:"start"`
	End         TimeOfDay `json:"end" yaml:"end"`
	Priority    string    `json:"priority" yaml:"priority"`
	Completed   bool      `json:"completed" yaml:"completed"`
}

// NewTask creates a new, not yet completed Task with a fresh ID.
func NewTask(description string, start, end TimeOfDay, priority string) Task {
	return Task{
		ID:          uuid.New(),
		Description: description,
		Start:       start,
		End:         end,
		Priority:    priority,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Description != ""
}

// Overlaps reports whether the half-open intervals [Start, End) of t and
// other share at least one instant. Touching intervals do not overlap.
func (t Task) Overlaps(other Task) bool {
	return t.Start < other.End && other.Start < t.End
}

// HasPriority compares priorities case-insensitively.
func (t Task) HasPriority(priority string) bool {
	return strings.EqualFold(t.Priority, priority)
}

// MarkCompleted returns a copy of the task with Completed set.
func (t Task) MarkCompleted() Task {
	t.Completed = true
	return t
}

// Format renders the task as a single display line using the given time layout:
//
//	06:00 - 07:00: Exercise [High] (Completed)
func (t Task) Format(layout string) string {
	var b strings.Builder
	b.WriteString(t.Start.Format(layout))
	b.WriteString(" - ")
	b.WriteString(t.End.Format(layout))
	b.WriteString(": ")
	b.WriteString(t.Description)
	b.WriteString(" [")
	b.WriteString(t.Priority)
	b.WriteString("]")
	if t.Completed {
		b.WriteString(" (Completed)")
	}
	return b.String()
}

// String returns the display line using HH:mm times.
func (t Task) String() string {
	return t.Format(DefaultTimeLayout)
}
