package validation

import (
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "description", Message: "is required"}}, "validation error for field 'description': is required"},
		{"Multiple errors", []FieldError{
			{Field: "description", Message: "is required"},
			{Field: "end", Message: "must be after the start time"},
		}, "multiple validation errors: validation error for field 'description': is required; validation error for field 'end': must be after the start time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			if result := ve.Error(); result != tt.expectError {
				t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
			}
		})
	}
}

func TestValidationError_AddHelpers(t *testing.T) {
	tests := []struct {
		name        string
		add         func(ve *ValidationError)
		wantType    ValidationErrorType
		wantMessage string
	}{
		{
			name:        "required",
			add:         func(ve *ValidationError) { ve.AddRequiredError(FieldDescription) },
			wantType:    ErrorTypeRequired,
			wantMessage: "description is required",
		},
		{
			name:        "invalid format",
			add:         func(ve *ValidationError) { ve.AddInvalidFormatError(FieldStart, "7am", "15:04") },
			wantType:    ErrorTypeInvalidFormat,
			wantMessage: "start has invalid format, expected: 15:04",
		},
		{
			name:        "invalid length",
			add:         func(ve *ValidationError) { ve.AddInvalidLengthError(FieldDescription, "xxxx", 3) },
			wantType:    ErrorTypeInvalidLength,
			wantMessage: "description must be at most 3 characters long",
		},
		{
			name:        "invalid range",
			add:         func(ve *ValidationError) { ve.AddInvalidRangeError(FieldEnd, "06:00", "must be after the start time") },
			wantType:    ErrorTypeInvalidRange,
			wantMessage: "end has invalid range: must be after the start time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := NewValidationError()
			tt.add(ve)

			if len(ve.Errors) != 1 {
				t.Fatalf("expected 1 error, got %d", len(ve.Errors))
			}
			if ve.Errors[0].Type != tt.wantType {
				t.Errorf("error type = %v, want %v", ve.Errors[0].Type, tt.wantType)
			}
			if ve.Errors[0].Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", ve.Errors[0].Message, tt.wantMessage)
			}
			if !ve.HasErrorType(tt.wantType) {
				t.Errorf("HasErrorType(%v) = false", tt.wantType)
			}
		})
	}
}

func TestValidationError_ErrOrNil(t *testing.T) {
	ve := NewValidationError()
	if ve.ErrOrNil() != nil {
		t.Errorf("ErrOrNil() on empty error should be nil")
	}

	ve.AddRequiredError(FieldDescription)
	if ve.ErrOrNil() == nil {
		t.Errorf("ErrOrNil() with errors should return the error")
	}
}

func TestValidationError_Merge(t *testing.T) {
	first := NewValidationError()
	first.AddRequiredError(FieldDescription)

	second := NewValidationError()
	second.AddInvalidRangeError(FieldEnd, 0, "must be after the start time")

	first.Merge(second)
	first.Merge(nil)
	first.Merge(fmt.Errorf("not a validation error"))

	if len(first.Errors) != 2 {
		t.Fatalf("expected 2 errors after merge, got %d", len(first.Errors))
	}
	if len(first.GetFieldErrors(FieldEnd)) != 1 {
		t.Errorf("expected one error for field end")
	}
	if len(first.GetFieldErrors(FieldStart)) != 0 {
		t.Errorf("expected no errors for field start")
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	empty := NewValidationError()
	if got := empty.GetUserFriendlyMessage(); got != "Input validation failed" {
		t.Errorf("GetUserFriendlyMessage() = %q", got)
	}

	single := NewValidationError()
	single.AddRequiredError(FieldDescription)
	if got := single.GetUserFriendlyMessage(); got != "description is required" {
		t.Errorf("GetUserFriendlyMessage() = %q", got)
	}

	multi := NewValidationError()
	multi.AddRequiredError(FieldDescription)
	multi.AddInvalidFormatError(FieldStart, "x", "15:04")
	got := multi.GetUserFriendlyMessage()
	if !strings.HasPrefix(got, "Multiple validation errors occurred:\n") {
		t.Errorf("GetUserFriendlyMessage() = %q", got)
	}
	if !strings.Contains(got, "- description is required\n- start has invalid format, expected: 15:04") {
		t.Errorf("GetUserFriendlyMessage() = %q", got)
	}
}

func TestAsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError(FieldDescription)

	wrapped := fmt.Errorf("add task: %w", ve)
	got, ok := AsValidationError(wrapped)
	if !ok || got != ve {
		t.Errorf("AsValidationError should find the wrapped ValidationError")
	}

	if _, ok := AsValidationError(fmt.Errorf("plain")); ok {
		t.Errorf("AsValidationError should return false for regular errors")
	}
}
