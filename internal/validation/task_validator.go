package validation

import (
	"astro-schedule/internal/config"
	"astro-schedule/internal/domain"
)

// TaskValidator provides validation for task input
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default rules
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator that follows cfg
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateDescription validates a task description. Any non-blank text is
// accepted, up to the configured length limit. Descriptions are matched
// exactly later on, so they are checked as given and not trimmed.
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(description) {
		validationError.AddRequiredError(FieldDescription)
		return validationError
	}

	if !tv.validator.IsValidDescriptionLength(description) {
		validationError.AddInvalidLengthError(FieldDescription, description, tv.validator.DescriptionMaxLength())
	}

	return validationError.ErrOrNil()
}

// ParseTime parses a time of day typed by the user with the configured layout.
func (tv *TaskValidator) ParseTime(field, value string) (domain.TimeOfDay, error) {
	layout := tv.validator.InputTimeFormat()
	t, err := domain.ParseTimeOfDay(value, layout)
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError(field, value, layout)
		return 0, validationError
	}
	return t, nil
}

// ValidateInterval checks both bounds and, when configured, that start precedes end.
func (tv *TaskValidator) ValidateInterval(start, end domain.TimeOfDay) error {
	validationError := NewValidationError()

	if !tv.validator.IsValidTimeOfDay(start) {
		validationError.AddInvalidRangeError(FieldStart, start, "must be within a single day")
	}
	if !tv.validator.IsValidTimeOfDay(end) {
		validationError.AddInvalidRangeError(FieldEnd, end, "must be within a single day")
	}
	if tv.validator.RequireOrderedInterval() && !tv.validator.IsOrderedInterval(start, end) {
		validationError.AddInvalidRangeError(FieldEnd, end, "must be after the start time")
	}

	return validationError.ErrOrNil()
}

// ValidateTask validates a complete task. Priority is free text and is not checked.
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	validationError.Merge(tv.ValidateDescription(task.Description))
	validationError.Merge(tv.ValidateInterval(task.Start, task.End))

	return validationError.ErrOrNil()
}
