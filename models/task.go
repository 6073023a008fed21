// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Priority bounds of a task.
const (
	MinPriority     = 0
	MaxPriority     = 10
	DefaultPriority = 3
)

// Task is a single next action.
type Task struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"-"`
	Name             string     `json:"name"`
	ProjectID        *int64     `json:"project_id"`
	FieldID          *int64     `json:"field_id"`
	DoneStatus       bool       `json:"done_status"`
	DoneAt           *time.Time `json:"done_at"`
	DoToday          bool       `json:"do_today"`
	DoThisWeek       bool       `json:"do_this_week"`
	IsReading        bool       `json:"is_reading"`
	WaitFor          bool       `json:"wait_for"`
	Postponed        bool       `json:"postponed"`
	Reviewed         bool       `json:"reviewed"`
	Priority         int        `json:"priority"`
	DoOnDate         *Date      `json:"do_on_date"`
	TimeExpenditure  string     `json:"time_expenditure"`
	URL              string     `json:"url"`
	KnowledgeDBEntry string     `json:"knowledge_db_entry"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TaskCreate is the inbound payload for a new task.
// A nil Priority means DefaultPriority.
type TaskCreate struct {
	Name             string `json:"name" validate:"required,notblank,max=500"`
	ProjectID        *int64 `json:"project_id,omitempty" validate:"omitempty,gt=0"`
	FieldID          *int64 `json:"field_id,omitempty" validate:"omitempty,gt=0"`
	DoToday          bool   `json:"do_today"`
	DoThisWeek       bool   `json:"do_this_week"`
	IsReading        bool   `json:"is_reading"`
	WaitFor          bool   `json:"wait_for"`
	Postponed        bool   `json:"postponed"`
	Priority         *int   `json:"priority,omitempty" validate:"omitempty,min=0,max=10"`
	DoOnDate         *Date  `json:"do_on_date,omitempty"`
	TimeExpenditure  string `json:"time_expenditure" validate:"max=64"`
	URL              string `json:"url" validate:"omitempty,url,max=2048"`
	KnowledgeDBEntry string `json:"knowledge_db_entry" validate:"max=2048"`
}

// TaskUpdate is a partial task update. Only non-nil fields are applied.
// ProjectID/FieldID = 0 detach the task; an empty DoOnDate clears the date.
type TaskUpdate struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,notblank,max=500"`
	ProjectID        *int64  `json:"project_id,omitempty" validate:"omitempty,gte=0"`
	FieldID          *int64  `json:"field_id,omitempty" validate:"omitempty,gte=0"`
	DoneStatus       *bool   `json:"done_status,omitempty"`
	DoToday          *bool   `json:"do_today,omitempty"`
	DoThisWeek       *bool   `json:"do_this_week,omitempty"`
	IsReading        *bool   `json:"is_reading,omitempty"`
	WaitFor          *bool   `json:"wait_for,omitempty"`
	Postponed        *bool   `json:"postponed,omitempty"`
	Reviewed         *bool   `json:"reviewed,omitempty"`
	Priority         *int    `json:"priority,omitempty" validate:"omitempty,min=0,max=10"`
	DoOnDate         *Date   `json:"do_on_date,omitempty"`
	TimeExpenditure  *string `json:"time_expenditure,omitempty" validate:"omitempty,max=64"`
	URL              *string `json:"url,omitempty" validate:"omitempty,max=2048"`
	KnowledgeDBEntry *string `json:"knowledge_db_entry,omitempty" validate:"omitempty,max=2048"`
}

// Empty reports whether the update carries no changes.
func (u TaskUpdate) Empty() bool {
	return u.Name == nil && u.ProjectID == nil && u.FieldID == nil && u.DoneStatus == nil &&
		u.DoToday == nil && u.DoThisWeek == nil && u.IsReading == nil && u.WaitFor == nil &&
		u.Postponed == nil && u.Reviewed == nil && u.Priority == nil && u.DoOnDate == nil &&
		u.TimeExpenditure == nil && u.URL == nil && u.KnowledgeDBEntry == nil
}

// TaskFilter narrows a task listing.
type TaskFilter struct {
	ListParams
	DoToday    *bool
	DoThisWeek *bool
	WaitFor    *bool
	IsReading  *bool
}
