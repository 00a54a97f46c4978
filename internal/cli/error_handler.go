package cli

import (
	"fmt"

	"astro-schedule/internal/errors"
	"astro-schedule/internal/logging"
	"astro-schedule/internal/validation"
)

// ErrorHandler turns errors returned by commands into the single line shown to the user
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Message returns the user-facing line for err. Unexpected errors are also logged.
func (eh *ErrorHandler) Message(err error) string {
	if eh.IsConflictError(err) {
		if existing, ok := errors.ConflictingTask(err); ok {
			return fmt.Sprintf("Error: Task conflicts with existing task \"%s\".", existing.Description)
		}
	}

	switch {
	case eh.IsNotFoundError(err):
		return "Error: Task not found."
	case eh.IsInvalidTimeError(err):
		return "Error: Invalid time format."
	case eh.IsValidationError(err):
		if validationErr, ok := validation.AsValidationError(err); ok {
			return "Error: " + validationErr.GetUserFriendlyMessage()
		}
		return "Error: " + errors.GetUserMessage(err)
	}

	if errors.ShouldLogError(err) {
		fields := []interface{}{"code", errors.GetErrorCode(err)}
		if appErr, ok := errors.AsAppError(err); ok {
			fields = appErr.LogValues()
		}
		logging.Default().Error("command failed", append(fields, "err", err)...)
	}
	return "Error: " + errors.GetUserMessage(err)
}

// IsConflictError checks if an error reports an overlapping task
func (eh *ErrorHandler) IsConflictError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeConflict)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsInvalidTimeError checks if an error comes from an unparseable start or end time
func (eh *ErrorHandler) IsInvalidTimeError(err error) bool {
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Type != errors.ErrorTypeInvalidInput {
		return false
	}
	field, _ := appErr.GetContext("field")
	return field == validation.FieldStart || field == validation.FieldEnd
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if _, ok := validation.AsValidationError(err); ok {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}
