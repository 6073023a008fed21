// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// User is the owner of fields, projects and tasks.
// PasswordHash never leaves the backend.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// DisplayName is shown in the UI.
	DisplayName string `json:"display_name"`

	// Email is optional contact data.
	Email string `json:"email"`

	// Language is the preferred UI language (e.g. "en").
	Language string `json:"language"`

	// Settings holds free-form user preferences.
	Settings Settings `json:"settings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the inbound payload for register and login.
type Credentials struct {
	Login       string `json:"login" validate:"required,min=3,max=64"`
	Password    string `json:"password" validate:"required,min=6,max=128"`
	DisplayName string `json:"display_name,omitempty" validate:"omitempty,max=255"`
}

// UserUpdate is a partial update of the current user's profile.
// Only non-nil fields are applied.
type UserUpdate struct {
	DisplayName *string   `json:"display_name,omitempty" validate:"omitempty,max=255"`
	Email       *string   `json:"email,omitempty" validate:"omitempty,max=255"`
	Language    *string   `json:"language,omitempty" validate:"omitempty,oneof=en de ru"`
	Settings    *Settings `json:"settings,omitempty"`
}

// Empty reports whether the update carries no changes.
func (u UserUpdate) Empty() bool {
	return u.DisplayName == nil && u.Email == nil && u.Language == nil && u.Settings == nil
}

// Settings is a string map persisted as JSONB.
type Settings map[string]string

// Value implements driver.Valuer.
func (s Settings) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *Settings) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = Settings{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("settings: unsupported source type")
	}

	out := Settings{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*s = out
	return nil
}
