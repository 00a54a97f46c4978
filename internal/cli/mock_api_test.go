package cli

import (
	"context"
	"strings"

	"astro-schedule/internal/domain"
	"astro-schedule/internal/errors"
	"astro-schedule/internal/schedule"
)

// mockAPI implements api.API with a plain slice and optional injected errors
type mockAPI struct {
	tasks []domain.Task
	err   error

	added    []string
	removed  []string
	complete []string
}

func newMockAPI() *mockAPI {
	return &mockAPI{}
}

func (m *mockAPI) AddTask(ctx context.Context, description, start, end, priority string) (*domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	startTime, err := domain.ParseTimeOfDay(start, domain.DefaultTimeLayout)
	if err != nil {
		return nil, errors.NewInvalidInputError("start", start, "invalid time format")
	}
	endTime, err := domain.ParseTimeOfDay(end, domain.DefaultTimeLayout)
	if err != nil {
		return nil, errors.NewInvalidInputError("end", end, "invalid time format")
	}
	task := domain.NewTask(description, startTime, endTime, priority)
	m.tasks = append(m.tasks, task)
	m.added = append(m.added, description)
	return &task, nil
}

func (m *mockAPI) RemoveTask(ctx context.Context, description string) error {
	if m.err != nil {
		return m.err
	}
	for i, task := range m.tasks {
		if task.Description == description {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			m.removed = append(m.removed, description)
			return nil
		}
	}
	return errors.NewNotFoundError("task", description)
}

func (m *mockAPI) MarkTaskCompleted(ctx context.Context, description string) error {
	if m.err != nil {
		return m.err
	}
	for i, task := range m.tasks {
		if task.Description == description {
			m.tasks[i].Completed = true
			m.complete = append(m.complete, description)
			return nil
		}
	}
	return errors.NewNotFoundError("task", description)
}

func (m *mockAPI) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.Task(nil), m.tasks...), nil
}

func (m *mockAPI) ListTasksByPriority(ctx context.Context, priority string) ([]domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Task
	for _, task := range m.tasks {
		if strings.EqualFold(task.Priority, priority) {
			out = append(out, task)
		}
	}
	return out, nil
}

func (m *mockAPI) Summary(ctx context.Context) (schedule.Summary, error) {
	if m.err != nil {
		return schedule.Summary{}, m.err
	}
	summary := schedule.Summary{Total: len(m.tasks)}
	for _, task := range m.tasks {
		if task.Completed {
			summary.Completed++
		}
	}
	return summary, nil
}
