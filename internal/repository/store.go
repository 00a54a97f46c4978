// Package repository defines the storage contract behind a day schedule.
package repository

import (
	"context"

	"github.com/google/uuid"

	"astro-schedule/internal/domain"
)

// Store holds the tasks of one schedule. List returns tasks ordered by start
// time ascending; tasks with equal start times keep insertion order.
//
// Stores are not safe for concurrent use on their own; the schedule that
// owns a store serializes access to it.
type Store interface {
	// Insert adds a task. Overlap checking is the caller's job.
	Insert(ctx context.Context, task domain.Task) error
	// List returns copies of all tasks in schedule order.
	List(ctx context.Context) ([]domain.Task, error)
	// Delete removes the task with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
	// SetCompleted marks the task with the given ID as completed.
	SetCompleted(ctx context.Context, id uuid.UUID) error
	// Close releases any resources held by the store.
	Close() error
}
