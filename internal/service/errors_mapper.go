package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gtd/internal/store"
	"github.com/MKhiriev/go-gtd/internal/validators"
)

// mapStoreError translates repository errors into service errors. Errors it
// does not know are returned wrapped with op.
func mapStoreError(op string, err error) error {
	var refErr *store.InvalidReferenceError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &refErr):
		return validators.NewValidationError(refErr.Field, "does not exist")
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return ErrLoginTaken
	case errors.Is(err, store.ErrConflict):
		return fmt.Errorf("%s: %w", op, ErrConflict)
	case errors.Is(err, validators.ErrValidation):
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
