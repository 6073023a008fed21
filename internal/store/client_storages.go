package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gtd/internal/logger"
)

// ClientStorages groups the client-local repositories.
type ClientStorages struct {
	// PreferenceRepository holds UI preferences and the session id.
	PreferenceRepository PreferenceRepository

	db *DB
}

// NewClientStorages opens the SQLite file at dsn, applies the client
// migrations and builds the repositories.
func NewClientStorages(ctx context.Context, dsn string, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		PreferenceRepository: NewPreferenceRepository(db, logger),
		db:                   db,
	}, nil
}

// Close closes the SQLite connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
