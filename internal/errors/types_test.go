package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"astro-schedule/internal/domain"
)

func TestErrorType_Recoverable(t *testing.T) {
	tests := []struct {
		errorType   ErrorType
		text        string
		recoverable bool
	}{
		{ErrorTypeConflict, "conflict", true},
		{ErrorTypeNotFound, "not_found", true},
		{ErrorTypeInvalidInput, "invalid_input", true},
		{ErrorTypeValidation, "validation", true},
		{ErrorTypeTimeout, "timeout", false},
		{ErrorTypeDatabase, "database", false},
		{ErrorType(""), "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := tt.errorType.String(); got != tt.text {
				t.Errorf("String() = %v, want %v", got, tt.text)
			}
			if got := tt.errorType.Recoverable(); got != tt.recoverable {
				t.Errorf("Recoverable() = %v, want %v", got, tt.recoverable)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	exercise := domain.Task{Description: "Exercise"}
	standup := domain.Task{Description: "Standup"}

	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "conflict",
			err:      NewConflictError(exercise, standup),
			expected: `conflict: task "Standup" conflicts with existing task "Exercise"`,
		},
		{
			name:     "timeout with cause",
			err:      &AppError{Type: ErrorTypeTimeout, Message: "operation timed out: list tasks", Cause: errors.New("context deadline exceeded")},
			expected: "timeout: operation timed out: list tasks (caused by: context deadline exceeded)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Is(t *testing.T) {
	conflict := NewConflictError(domain.Task{Description: "Exercise"}, domain.Task{Description: "Standup"})
	wrapped := fmt.Errorf("add task: %w", conflict)

	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{"conflict matches sentinel", conflict, ErrConflict, true},
		{"wrapped conflict matches sentinel", wrapped, ErrConflict, true},
		{"conflict is not not-found", conflict, ErrNotFound, false},
		{"timeout is not conflict", NewTimeoutError("add task", "5s"), ErrConflict, false},
		{"timeout unwraps to deadline", &AppError{Type: ErrorTypeTimeout, Cause: context.DeadlineExceeded}, context.DeadlineExceeded, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.expected {
				t.Errorf("errors.Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Context(t *testing.T) {
	err := NewTimeoutError("list tasks", "5s")
	if err.WithContext("store", "sqlite") != err {
		t.Errorf("WithContext should return the same instance")
	}

	store, ok := err.GetContext("store")
	if !ok || store != "sqlite" {
		t.Errorf("GetContext(store) = %v, %v", store, ok)
	}
	if _, ok := err.GetContext("missing"); ok {
		t.Errorf("GetContext should report missing keys")
	}

	empty := &AppError{Type: ErrorTypeTimeout}
	if _, ok := empty.GetContext("store"); ok {
		t.Errorf("GetContext should handle a nil context")
	}
}

func TestAppError_LogValues(t *testing.T) {
	err := NewDatabaseError("insert task", errors.New("disk I/O error")).WithContext("backend", "sqlite")

	got := err.LogValues()
	want := []interface{}{
		"kind", "database",
		"code", "DATABASE_ERROR",
		"backend", "sqlite",
		"operation", "insert task",
	}
	if len(got) != len(want) {
		t.Fatalf("LogValues() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LogValues()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
