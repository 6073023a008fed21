package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/migrations"
)

// DB wraps *sql.DB with the dialect's error classifier.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	migrate            func(ctx context.Context, db *sql.DB) error
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	if db.migrate == nil {
		return migrations.MigratePostgres(ctx, db.DB)
	}
	return db.migrate(ctx, db.DB)
}

// Retryable reports whether err is classified as transient.
func (db *DB) Retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// snapshot is the option set of list pages and aggregate reads. Every
// statement of the transaction sees the same data, so a page never holds more
// rows than its total.
var snapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// withTx runs fn inside a transaction, committing on success and rolling
// back on any error.
func (db *DB) withTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// withRetry runs withTx and repeats it once when the first failure is
// classified as retryable.
func (db *DB) withRetry(ctx context.Context, opts *sql.TxOptions, fn func(tx *sql.Tx) error) error {
	err := db.withTx(ctx, opts, fn)
	if err != nil && db.Retryable(err) {
		db.logger.Warn().Err(err).Msg("retrying transaction after transient error")
		err = db.withTx(ctx, opts, fn)
	}
	return err
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// count runs a single-value COUNT statement.
func count(ctx context.Context, q queryer, query string, args []any) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

// exists runs a single-value EXISTS statement.
func exists(ctx context.Context, q queryer, query string, args ...any) (bool, error) {
	var ok bool
	if err := q.QueryRowContext(ctx, query, args...).Scan(&ok); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return ok, nil
}

// checkReference fails with InvalidReferenceError when id does not name a
// live row of the user. A nil or zero id is always valid.
func checkReference(ctx context.Context, q queryer, query, field string, userID int64, id *int64) error {
	if id == nil || *id == 0 {
		return nil
	}
	ok, err := exists(ctx, q, query, *id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return &InvalidReferenceError{Field: field, ID: *id}
	}
	return nil
}

// affectedOne maps a zero-row write to ErrNotFound.
func affectedOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
