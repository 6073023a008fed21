package models

import "time"

// Event actions.
const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionDeleted  = "deleted"
	ActionImported = "imported"
)

// Event resources.
const (
	ResourceProject = "project"
	ResourceTask    = "task"
	ResourceField   = "field"
	ResourceUser    = "user"
)

// Event notifies subscribers of a change in one of a user's resources.
// Type is "<resource>.<action>", e.g. "task.created".
type Event struct {
	Type     string    `json:"type"`
	Resource string    `json:"resource"`
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	At       time.Time `json:"at"`
}

// NewEvent builds an event stamped with at.
func NewEvent(resource, action string, id, userID int64, at time.Time) Event {
	return Event{
		Type:     resource + "." + action,
		Resource: resource,
		ID:       id,
		UserID:   userID,
		At:       at.UTC(),
	}
}
