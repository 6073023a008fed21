// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Project is a multi-step outcome owned by a user.
//
// DoneStatus and TaskCount are derived on read: DoneStatus mirrors
// DoneAt != nil and TaskCount is the number of open tasks of the project.
type Project struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"-"`
	Name       string     `json:"name"`
	FieldID    *int64     `json:"field_id"`
	DoneStatus bool       `json:"done_status"`
	DoneAt     *time.Time `json:"done_at"`
	DoThisWeek bool       `json:"do_this_week"`
	TaskCount  int        `json:"task_count"`
	Keywords   string     `json:"keywords"`
	Readings   string     `json:"readings"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ProjectCreate is the inbound payload for a new project.
type ProjectCreate struct {
	Name       string `json:"name" validate:"required,notblank,max=255"`
	FieldID    *int64 `json:"field_id,omitempty" validate:"omitempty,gt=0"`
	DoThisWeek bool   `json:"do_this_week"`
	Keywords   string `json:"keywords" validate:"max=1000"`
	Readings   string `json:"readings" validate:"max=4000"`
}

// ProjectUpdate is a partial project update. Only non-nil fields are applied.
// FieldID = 0 detaches the project from its field.
type ProjectUpdate struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,notblank,max=255"`
	FieldID    *int64  `json:"field_id,omitempty" validate:"omitempty,gte=0"`
	DoneStatus *bool   `json:"done_status,omitempty"`
	DoThisWeek *bool   `json:"do_this_week,omitempty"`
	Keywords   *string `json:"keywords,omitempty" validate:"omitempty,max=1000"`
	Readings   *string `json:"readings,omitempty" validate:"omitempty,max=4000"`
}

// Empty reports whether the update carries no changes.
func (u ProjectUpdate) Empty() bool {
	return u.Name == nil && u.FieldID == nil && u.DoneStatus == nil &&
		u.DoThisWeek == nil && u.Keywords == nil && u.Readings == nil
}

// ProjectFilter narrows a project listing.
type ProjectFilter struct {
	ListParams
	DoThisWeek *bool
}
