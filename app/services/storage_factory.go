package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"phrase-svc/app/clients"
	"phrase-svc/app/utils"
	"phrase-svc/storage/jsonfile"
	"phrase-svc/storage/memory"
	"phrase-svc/storage/postgres"
	"phrase-svc/storage/sqlite"

	"go.uber.org/zap"
)

// Store drivers
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StorageOptions selects and configures a phrase store
type StorageOptions struct {
	Driver      string
	FilePath    string
	SQLitePath  string
	DatabaseURL string
}

// StorageFactory creates storage adapters
type StorageFactory struct {
	logger *zap.Logger
	retry  *utils.RetryPolicy
}

// NewStorageFactory creates a new storage factory
func NewStorageFactory(logger *zap.Logger, retry *utils.RetryPolicy) *StorageFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	if retry == nil {
		retry = utils.DefaultRetryPolicy()
	}
	return &StorageFactory{logger: logger, retry: retry}
}

// Create opens the store named by opts.Driver. The returned closer releases
// any underlying connection and is never nil.
func (f *StorageFactory) Create(ctx context.Context, opts StorageOptions) (clients.PhraseStore, io.Closer, error) {
	switch opts.Driver {
	case DriverFile, "":
		store, err := jsonfile.NewStore(opts.FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file store: %w", err)
		}
		return store, nopCloser{}, nil
	case DriverMemory:
		return memory.NewStore(nil), nopCloser{}, nil
	case DriverSQLite:
		store, err := sqlite.NewStore(opts.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create sqlite store: %w", err)
		}
		return store, store, nil
	case DriverPostgres:
		return f.createPostgresStore(ctx, opts.DatabaseURL)
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}

func (f *StorageFactory) createPostgresStore(ctx context.Context, connString string) (clients.PhraseStore, io.Closer, error) {
	if connString == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL must be set for the postgres driver")
	}

	var store *postgres.Store
	err := f.retry.Do(ctx, func() error {
		var err error
		store, err = postgres.NewStore(ctx, connString)
		return err
	}, func(attempt int, err error, wait time.Duration) {
		f.logger.Warn("postgres not reachable, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create postgres store: %w", err)
	}

	if err := postgres.RunMigrations(connString); err != nil {
		store.Close()
		return nil, nil, err
	}

	return store, store, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
