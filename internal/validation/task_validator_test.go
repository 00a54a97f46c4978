package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astro-schedule/internal/config"
	"astro-schedule/internal/domain"
)

func TestTaskValidator_ValidateDescription(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       string
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid description", "Exercise", false, ""},
		{"Punctuation allowed", "EVA prep #2 @ node-3", false, ""},
		{"Empty description", "", true, ErrorTypeRequired},
		{"Whitespace only", "   ", true, ErrorTypeRequired},
		{"Long description", strings.Repeat("a", 300), false, ""},
		{"Tab inside", "tab\there", false, ""},
		{"Surrounding spaces kept", "  Exercise ", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateDescription(tt.input)

			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			ve, ok := AsValidationError(err)
			require.True(t, ok, "expected ValidationError, got %T", err)
			require.NotEmpty(t, ve.Errors)
			assert.Equal(t, tt.errorType, ve.Errors[0].Type)
			assert.Equal(t, FieldDescription, ve.Errors[0].Field)
		})
	}
}

func TestTaskValidator_ValidateDescriptionWithLimit(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.DescriptionMaxLength = 5
	validator := NewTaskValidatorWithConfig(cfg)

	assert.NoError(t, validator.ValidateDescription("Lunch"))

	err := validator.ValidateDescription("Dinner")
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.True(t, ve.HasErrorType(ErrorTypeInvalidLength))
	assert.Equal(t, "description must be at most 5 characters long", ve.GetUserFriendlyMessage())
}

func TestTaskValidator_ParseTime(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name    string
		input   string
		want    domain.TimeOfDay
		wantErr bool
	}{
		{"morning", "06:00", domain.NewTimeOfDay(6, 0), false},
		{"single digit hour", "7:30", domain.NewTimeOfDay(7, 30), false},
		{"last minute", "23:59", domain.NewTimeOfDay(23, 59), false},
		{"hour out of range", "24:00", 0, true},
		{"minute out of range", "12:60", 0, true},
		{"words", "noon", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.ParseTime(FieldStart, tt.input)
			if tt.wantErr {
				ve, ok := AsValidationError(err)
				require.True(t, ok)
				assert.True(t, ve.HasErrorType(ErrorTypeInvalidFormat))
				assert.Len(t, ve.GetFieldErrors(FieldStart), 1)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskValidator_ParseTimeWithConfiguredLayout(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Time.InputFormat = "3:04PM"
	validator := NewTaskValidatorWithConfig(cfg)

	got, err := validator.ParseTime(FieldEnd, "7:15PM")
	require.NoError(t, err)
	assert.Equal(t, domain.NewTimeOfDay(19, 15), got)

	_, err = validator.ParseTime(FieldEnd, "19:15")
	assert.Error(t, err)
}

func TestTaskValidator_ValidateInterval(t *testing.T) {
	six, seven := domain.NewTimeOfDay(6, 0), domain.NewTimeOfDay(7, 0)

	lenient := NewTaskValidator()
	assert.NoError(t, lenient.ValidateInterval(six, seven))
	assert.NoError(t, lenient.ValidateInterval(seven, six))
	assert.NoError(t, lenient.ValidateInterval(seven, seven))
	assert.Error(t, lenient.ValidateInterval(domain.TimeOfDay(-1), seven))
	assert.Error(t, lenient.ValidateInterval(six, domain.TimeOfDay(domain.MinutesPerDay)))

	cfg := config.NewConfig()
	cfg.Validation.RequireOrderedInterval = true
	strict := NewTaskValidatorWithConfig(cfg)
	assert.NoError(t, strict.ValidateInterval(six, seven))

	err := strict.ValidateInterval(seven, six)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.True(t, ve.HasErrorType(ErrorTypeInvalidRange))
	assert.Len(t, ve.GetFieldErrors(FieldEnd), 1)
}

func TestTaskValidator_ValidateTask(t *testing.T) {
	validator := NewTaskValidator()

	valid := domain.NewTask("Exercise", domain.NewTimeOfDay(6, 0), domain.NewTimeOfDay(7, 0), "High")
	assert.NoError(t, validator.ValidateTask(valid))

	freeText := domain.NewTask("Exercise", domain.NewTimeOfDay(6, 0), domain.NewTimeOfDay(7, 0), "Hi\tgh")
	assert.NoError(t, validator.ValidateTask(freeText))

	invalid := domain.NewTask("", domain.TimeOfDay(-5), domain.NewTimeOfDay(7, 0), "High")
	err := validator.ValidateTask(invalid)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Errors, 2)
	assert.Len(t, ve.GetFieldErrors(FieldDescription), 1)
	assert.Len(t, ve.GetFieldErrors(FieldStart), 1)
}
