// Package api turns raw user input into schedule operations.
package api

import (
	"context"

	"astro-schedule/internal/config"
	"astro-schedule/internal/domain"
	"astro-schedule/internal/errors"
	"astro-schedule/internal/schedule"
	"astro-schedule/internal/validation"
)

// API defines the operations offered to front-ends. Times are given as text
// in the configured input layout.
type API interface {
	AddTask(ctx context.Context, description, start, end, priority string) (*domain.Task, error)
	RemoveTask(ctx context.Context, description string) error
	MarkTaskCompleted(ctx context.Context, description string) error
	ListTasks(ctx context.Context) ([]domain.Task, error)
	ListTasksByPriority(ctx context.Context, priority string) ([]domain.Task, error)
	Summary(ctx context.Context) (schedule.Summary, error)
}

// Schedule is the part of schedule.DaySchedule the API depends on.
type Schedule interface {
	Add(ctx context.Context, task domain.Task) error
	Remove(ctx context.Context, description string) error
	MarkCompleted(ctx context.Context, description string) error
	ListAll(ctx context.Context) ([]domain.Task, error)
	ListByPriority(ctx context.Context, priority string) ([]domain.Task, error)
	Summary(ctx context.Context) (schedule.Summary, error)
}

type apiImpl struct {
	schedule      Schedule
	taskValidator *validation.TaskValidator
}

// New creates a new API instance. A nil cfg uses the defaults.
func New(sched Schedule, cfg *config.Config) API {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &apiImpl{
		schedule:      sched,
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
	}
}

// AddTask parses and validates the input, then schedules the task.
// A malformed time is reported as an invalid input error before anything else is checked.
func (a *apiImpl) AddTask(ctx context.Context, description, start, end, priority string) (*domain.Task, error) {
	startTime, err := a.parseTime(validation.FieldStart, start)
	if err != nil {
		return nil, err
	}
	endTime, err := a.parseTime(validation.FieldEnd, end)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(description, startTime, endTime, priority)
	if err := a.taskValidator.ValidateTask(task); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	if err := a.schedule.Add(ctx, task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (a *apiImpl) parseTime(field, value string) (domain.TimeOfDay, error) {
	t, err := a.taskValidator.ParseTime(field, value)
	if err != nil {
		inputErr := errors.NewInvalidInputError(field, value, "invalid time format")
		inputErr.Cause = err
		return 0, inputErr
	}
	return t, nil
}

func (a *apiImpl) RemoveTask(ctx context.Context, description string) error {
	return a.schedule.Remove(ctx, description)
}

func (a *apiImpl) MarkTaskCompleted(ctx context.Context, description string) error {
	return a.schedule.MarkCompleted(ctx, description)
}

func (a *apiImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return a.schedule.ListAll(ctx)
}

func (a *apiImpl) ListTasksByPriority(ctx context.Context, priority string) ([]domain.Task, error) {
	return a.schedule.ListByPriority(ctx, priority)
}

func (a *apiImpl) Summary(ctx context.Context) (schedule.Summary, error) {
	return a.schedule.Summary(ctx)
}
