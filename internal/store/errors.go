package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrNotFound is returned when a row does not exist, belongs to another
	// user or is soft-deleted.
	ErrNotFound = errors.New("resource not found")

	// ErrLoginAlreadyExists is returned when registering a login that is taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrUserNotFound is returned when no live user matches.
	ErrUserNotFound = errors.New("no user was found")

	// ErrConflict is returned on a unique or concurrent-update conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrPreferenceNotFound is returned by the client preference store.
	ErrPreferenceNotFound = errors.New("preference not found")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)

// InvalidReferenceError is returned when a write names a project or field
// that the user does not own.
type InvalidReferenceError struct {
	Field string
	ID    int64
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Field, e.ID)
}
