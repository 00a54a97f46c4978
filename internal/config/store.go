package config

import (
	"context"
	"fmt"

	"astro-schedule/internal/repository"
	"astro-schedule/internal/repository/memory"
	"astro-schedule/internal/repository/sqlite"
)

// StoreFactory creates task stores based on the configured backend
type StoreFactory struct {
	cfg StoreConfig
}

// NewStoreFactory creates a new store factory for the given store configuration
func NewStoreFactory(cfg StoreConfig) *StoreFactory {
	return &StoreFactory{cfg: cfg}
}

// CreateStore creates a store for the configured backend.
// Both backends keep their data in memory for the life of the process.
func (f *StoreFactory) CreateStore(ctx context.Context) (repository.Store, error) {
	switch f.cfg.Backend {
	case BackendMemory, "":
		return memory.New(), nil
	case BackendSQLite:
		return f.createSQLiteStore(ctx)
	default:
		return nil, &ConfigError{Field: "store.backend", Message: fmt.Sprintf("unknown store backend %q", f.cfg.Backend)}
	}
}

func (f *StoreFactory) createSQLiteStore(ctx context.Context) (repository.Store, error) {
	store, err := sqlite.New(ctx, sqlite.Options{QueryTimeout: f.cfg.QueryTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
	}
	return store, nil
}

// CreateStore is shorthand for NewStoreFactory(cfg.Store).CreateStore(ctx).
func CreateStore(ctx context.Context, cfg *Config) (repository.Store, error) {
	return NewStoreFactory(cfg.Store).CreateStore(ctx)
}
