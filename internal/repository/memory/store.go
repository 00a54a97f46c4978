// Package memory implements repository.Store on a plain ordered slice.
package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"astro-schedule/internal/domain"
	"astro-schedule/internal/errors"
)

// Store keeps tasks in a slice sorted by start time.
type Store struct {
	tasks []domain.Task
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Insert appends the task and restores start-time order. The sort is stable
// so equal start times keep insertion order.
func (s *Store) Insert(_ context.Context, task domain.Task) error {
	s.tasks = append(s.tasks, task)
	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].Start < s.tasks[j].Start
	})
	return nil
}

// List returns a copy of the tasks in order.
func (s *Store) List(_ context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// Delete removes the task with the given ID.
func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	i := s.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("task", id.String())
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// SetCompleted marks the task with the given ID as completed.
func (s *Store) SetCompleted(_ context.Context, id uuid.UUID) error {
	i := s.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("task", id.String())
	}
	s.tasks[i] = s.tasks[i].MarkCompleted()
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

func (s *Store) indexOf(id uuid.UUID) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}
