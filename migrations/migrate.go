// Package migrations embeds the goose migrations of the backend Postgres
// schema and the client SQLite preferences schema.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql
var serverMigrations embed.FS

//go:embed client/*.sql
var clientMigrations embed.FS

// ErrNilDB is returned when a migration is requested on a nil connection.
var ErrNilDB = errors.New("db is nil")

// MigratePostgres applies the backend schema.
func MigratePostgres(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, serverMigrations, "server", goose.DialectPostgres)
}

// MigrateSQLite applies the client preferences schema.
func MigrateSQLite(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, clientMigrations, "client", goose.DialectSQLite3)
}

func migrate(ctx context.Context, db *sql.DB, fsys fs.FS, dir string, dialect goose.Dialect) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, sub)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
