package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError describes malformed or out-of-range input. Fields maps the
// JSON name of each offending input to the rule it broke.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

// NewValidationError returns an error for a single offending field.
func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: rule}}
}

// Add records another offending field.
func (e *ValidationError) Add(field, rule string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = rule
}

// Empty reports whether no field was recorded.
func (e *ValidationError) Empty() bool {
	return e.Message == "" && len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
