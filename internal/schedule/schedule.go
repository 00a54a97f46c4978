// Package schedule holds the day's conflict-free, start-ordered task list.
package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"astro-schedule/internal/domain"
	"astro-schedule/internal/errors"
	"astro-schedule/internal/logging"
	"astro-schedule/internal/repository"
	"astro-schedule/internal/repository/memory"
)

// DaySchedule owns a single day's tasks. No two tasks overlap and the tasks
// are kept in ascending start order, ties in insertion order.
// DaySchedule is safe for concurrent use.
type DaySchedule struct {
	mu     sync.RWMutex
	store  repository.Store
	logger *log.Logger
}

// Option configures a DaySchedule.
type Option func(*DaySchedule)

// WithLogger sets the logger used for mutation events.
func WithLogger(logger *log.Logger) Option {
	return func(s *DaySchedule) {
		s.logger = logger
	}
}

// New creates a schedule on top of store. The schedule takes ownership of
// the store; callers must not write to it directly.
func New(store repository.Store, opts ...Option) *DaySchedule {
	s := &DaySchedule{
		store:  store,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewInMemory creates an empty schedule backed by the slice store.
func NewInMemory(opts ...Option) *DaySchedule {
	return New(memory.New(), opts...)
}

// Add inserts task unless it overlaps a scheduled task. The first
// overlapping task in start order is reported in a conflict error and the
// schedule is left unchanged. A task without an ID is given one.
func (s *DaySchedule) Add(ctx context.Context, task domain.Task) error {
	if !task.IsValid() {
		return errors.NewValidationError("task description is required", nil)
	}
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.store.List(ctx)
	if err != nil {
		return err
	}

	for _, existing := range tasks {
		if existing.Overlaps(task) {
			s.logger.Debug("task conflict", "task", task.Description, "existing", existing.Description)
			return errors.NewConflictError(existing, task)
		}
	}

	if err := s.store.Insert(ctx, task); err != nil {
		return err
	}
	s.logger.Debug("task added", "task", task.Description, "start", task.Start, "end", task.End, "priority", task.Priority)
	return nil
}

// Remove deletes the first task whose description equals description exactly.
func (s *DaySchedule) Remove(ctx context.Context, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.find(ctx, description)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, task.ID); err != nil {
		return err
	}
	s.logger.Debug("task removed", "task", description)
	return nil
}

// MarkCompleted flags the first task whose description equals description
// exactly. Marking a completed task again succeeds.
func (s *DaySchedule) MarkCompleted(ctx context.Context, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.find(ctx, description)
	if err != nil {
		return err
	}
	if err := s.store.SetCompleted(ctx, task.ID); err != nil {
		return err
	}
	s.logger.Debug("task completed", "task", description)
	return nil
}

// ListAll returns a copy of every task in start order.
func (s *DaySchedule) ListAll(ctx context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.List(ctx)
}

// ListByPriority returns the tasks whose priority matches case-insensitively, in start order.
func (s *DaySchedule) ListByPriority(ctx context.Context, priority string) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.HasPriority(priority) {
			matched = append(matched, task)
		}
	}
	return matched, nil
}

// Summary describes the schedule as a whole.
type Summary struct {
	Total     int           `json:"total" yaml:"total"`
	Completed int           `json:"completed" yaml:"completed"`
	Scheduled time.Duration `json:"scheduled" yaml:"scheduled"`
}

// Pending returns the number of tasks not yet completed.
func (s Summary) Pending() int {
	return s.Total - s.Completed
}

// Summary counts the tasks and adds up their scheduled time. Tasks whose
// end is not after their start contribute no time.
func (s *DaySchedule) Summary(ctx context.Context) (Summary, error) {
	tasks, err := s.ListAll(ctx)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for _, task := range tasks {
		summary.Total++
		if task.Completed {
			summary.Completed++
		}
		if task.Start.Before(task.End) {
			summary.Scheduled += time.Duration(task.End.Minutes()-task.Start.Minutes()) * time.Minute
		}
	}
	return summary, nil
}

// Close releases the underlying store.
func (s *DaySchedule) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Close()
}

// find must be called with s.mu held.
func (s *DaySchedule) find(ctx context.Context, description string) (domain.Task, error) {
	tasks, err := s.store.List(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	for _, task := range tasks {
		if task.Description == description {
			return task, nil
		}
	}
	return domain.Task{}, errors.NewNotFoundError("task", description)
}
