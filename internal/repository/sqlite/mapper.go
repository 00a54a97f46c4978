package sqlite

import (
	"fmt"

	"github.com/google/uuid"

	"astro-schedule/internal/domain"
)

// TaskMapper converts between domain tasks and stored rows.
type TaskMapper struct{}

// ToRow converts a domain task into its stored form. Seq is left for the database to assign.
func (TaskMapper) ToRow(task domain.Task) TaskRow {
	return TaskRow{
		ID:          task.ID.String(),
		Description: task.Description,
		StartMinute: FormatTimeOfDayForDB(task.Start),
		EndMinute:   FormatTimeOfDayForDB(task.End),
		Priority:    task.Priority,
		Completed:   FormatBoolForDB(task.Completed),
	}
}

// FromRow converts a stored row into a domain task.
func (TaskMapper) FromRow(row *TaskRow) (domain.Task, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task id %q: %w", row.ID, err)
	}
	start, err := ParseTimeOfDayFromDB(row.StartMinute)
	if err != nil {
		return domain.Task{}, err
	}
	end, err := ParseTimeOfDayFromDB(row.EndMinute)
	if err != nil {
		return domain.Task{}, err
	}
	return domain.Task{
		ID:          id,
		Description: row.Description,
		Start:       start,
		End:         end,
		Priority:    row.Priority,
		Completed:   ParseBoolFromDB(row.Completed),
	}, nil
}

// FromRows converts stored rows, preserving their order.
func (m TaskMapper) FromRows(rows []*TaskRow) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := m.FromRow(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
