// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-gtd/models"
)

// API is the gateway as seen by the terminal UI and the CLI commands.
type API interface {
	Login(ctx context.Context, login, password string) (models.User, error)
	Register(ctx context.Context, login, password string) (models.User, error)
	Logout(ctx context.Context) error
	// SessionID returns the current session id, empty when logged out.
	SessionID() string
	SetSessionID(id string)

	Features(ctx context.Context) (models.Features, error)
	Stats(ctx context.Context) (models.DashboardStats, error)

	Projects(ctx context.Context, view View, q Query) (models.ViewPage[models.ProjectView], error)
	Tasks(ctx context.Context, view View, q Query) (models.ViewPage[models.TaskView], error)
	Fields(ctx context.Context, q Query) (models.ViewPage[models.FieldView], error)

	QuickAdd(ctx context.Context, text string) (models.TaskView, error)
	SetTaskDone(ctx context.Context, id int64, done bool) (models.TaskView, error)
	SetProjectDone(ctx context.Context, id int64, done bool) (models.ProjectView, error)

	// Watch streams change events to handle until ctx is done.
	Watch(ctx context.Context, handle func(models.Event)) error
}
