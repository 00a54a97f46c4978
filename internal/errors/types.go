package errors

import (
	"fmt"
	"sort"
)

// ErrorType classifies an AppError. Its text is used in Error() output,
// as the code of wrapped errors and as the "kind" of logged errors.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeDatabase     ErrorType = "database"
	ErrorTypeInvalidInput ErrorType = "invalid_input"
	ErrorTypeTimeout      ErrorType = "timeout"
)

func (et ErrorType) String() string {
	if et == "" {
		return "unknown"
	}
	return string(et)
}

// Recoverable reports whether the error was caused by the user's input.
// The schedule is left unchanged and the user can simply try again.
func (et ErrorType) Recoverable() bool {
	switch et {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeConflict, ErrorTypeInvalidInput:
		return true
	}
	return false
}

// AppError is the error value passed between the schedule, its stores and
// the front end. Context holds details such as the conflicting task or the
// offending input field.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	msg := e.Type.String() + ": " + e.Message
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches AppErrors of the same type and code, so sentinels such as
// ErrNotFound work with errors.Is.
func (e *AppError) Is(target error) bool {
	other, ok := target.(*AppError)
	return ok && other.Type == e.Type && other.Code == e.Code
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext records a detail on the error and returns it for chaining.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// GetContext returns a detail recorded with WithContext.
func (e *AppError) GetContext(key string) (interface{}, bool) {
	value, ok := e.Context[key]
	return value, ok
}

// LogValues returns the error as key/value pairs for structured logging:
// kind and code first, then the context entries sorted by key.
func (e *AppError) LogValues() []interface{} {
	keys := make([]string, 0, len(e.Context))
	for key := range e.Context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := []interface{}{"kind", e.Type.String(), "code", e.Code}
	for _, key := range keys {
		values = append(values, key, e.Context[key])
	}
	return values
}
