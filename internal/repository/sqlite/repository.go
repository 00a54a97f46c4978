// Package sqlite implements repository.Store on a private in-memory SQLite
// database. Each Store owns its own database; nothing is written to disk.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"astro-schedule/internal/domain"
	"astro-schedule/internal/errors"
	"astro-schedule/internal/logging"
	"astro-schedule/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Options configures a Store.
type Options struct {
	// QueryTimeout bounds every statement. Zero means no extra bound.
	QueryTimeout time.Duration
}

// Store is a task store backed by an in-memory SQLite database.
type Store struct {
	db      *sql.DB
	mapper  TaskMapper
	timeout time.Duration
}

// New opens a fresh in-memory database and applies the schema migrations.
func New(ctx context.Context, opts Options) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &Store{db: db, timeout: opts.QueryTimeout}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// Insert stores a task. Rows are assigned an increasing sequence number.
func (s *Store) Insert(ctx context.Context, task domain.Task) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	row := s.mapper.ToRow(task)
	query := `
	INSERT INTO tasks (id, description, start_minute, end_minute, priority, completed)
	VALUES (?, ?, ?, ?, ?, ?)`

	seq, err := ExecuteWithLastInsertID(ctx, s.db, query,
		row.ID, row.Description, row.StartMinute, row.EndMinute, row.Priority, row.Completed)
	if err != nil {
		return err
	}
	logging.Debugf("sqlite: inserted task %s as seq %d", row.ID, seq)
	return nil
}

// List returns all tasks ordered by start time, then insertion order.
func (s *Store) List(ctx context.Context) ([]domain.Task, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := "SELECT " + taskColumns + " FROM tasks ORDER BY start_minute ASC, seq ASC"
	rows, err := QueryMultiple(ctx, s.db, query, ScanTaskRows, "tasks")
	if err != nil {
		return nil, err
	}

	tasks, err := s.mapper.FromRows(rows)
	if err != nil {
		return nil, HandleDatabaseError("map tasks", err)
	}
	return tasks, nil
}

// Delete removes the task with the given ID.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return ExecuteWithRowsAffected(ctx, s.db, "DELETE FROM tasks WHERE id = ?", "task", id.String(), id.String())
}

// SetCompleted marks the task with the given ID as completed.
func (s *Store) SetCompleted(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return ExecuteWithRowsAffected(ctx, s.db,
		"UPDATE tasks SET completed = ? WHERE id = ?", "task", id.String(),
		FormatBoolForDB(true), id.String())
}
