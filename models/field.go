package models

import "time"

// Field is an area of focus grouping projects and tasks.
type Field struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FieldCreate is the inbound payload for a new field.
type FieldCreate struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

// FieldUpdate is a partial field update. Only non-nil fields are applied.
type FieldUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,notblank,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// Empty reports whether the update carries no changes.
func (u FieldUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil
}
