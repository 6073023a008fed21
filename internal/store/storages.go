package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gtd/internal/config"
	"github.com/MKhiriev/go-gtd/internal/logger"
)

// Storages groups the backend repositories.
type Storages struct {
	UserRepository      UserRepository
	ProjectRepository   ProjectRepository
	TaskRepository      TaskRepository
	FieldRepository     FieldRepository
	DashboardRepository DashboardRepository
	TransferRepository  TransferRepository

	db *DB
}

// NewStorages connects to Postgres, applies migrations and builds every
// repository on the shared pool.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB builds the repositories on an open connection.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		ProjectRepository:   NewProjectRepository(db, logger),
		TaskRepository:      NewTaskRepository(db, logger),
		FieldRepository:     NewFieldRepository(db, logger),
		DashboardRepository: NewDashboardRepository(db, logger),
		TransferRepository:  NewTransferRepository(db, logger),
		db:                  db,
	}
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
