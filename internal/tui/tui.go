// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal user interface of the GTD client: project and
// task lists, the today and weekly views, a dashboard sidebar, quick-add and
// a detail view.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-gtd/internal/client"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/models"
	tea "github.com/charmbracelet/bubbletea"
)

const watchRetryDelay = 5 * time.Second

// Options tune the list views.
type Options struct {
	PageSize    int
	MaxPageSize int
	CacheTTL    time.Duration

	// Realtime subscribes to change events and reloads on each one.
	Realtime bool
}

type TUI struct {
	api    client.API
	prefs  *client.PreferenceStore
	opts   Options
	logger *logger.Logger
}

// New builds the UI. prefs may be nil, in which case nothing is persisted.
func New(api client.API, prefs *client.PreferenceStore, opts Options, logger *logger.Logger) *TUI {
	return &TUI{api: api, prefs: prefs, opts: opts, logger: logger}
}

// Run shows the UI until the user quits. loggedIn skips the login form.
// logout reports that the user signed out.
func (t *TUI) Run(ctx context.Context, loggedIn bool) (logout bool, err error) {
	settings := client.Preferences{Language: "en", PageSize: t.opts.PageSize}
	if t.prefs != nil {
		loaded, err := t.prefs.Load(ctx, settings)
		if err != nil {
			t.logger.Warn().Err(err).Msg("using default preferences")
		} else {
			settings = loaded
		}
	}

	model := newAppModel(ctx, t.api, t.prefs, settings, t.opts, t.logger, loggedIn)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if t.opts.Realtime {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go t.watch(watchCtx, program.Send)
	}

	finalModel, runErr := program.Run()
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

// watch keeps an event subscription open for the lifetime of ctx. A dropped
// or refused stream is retried after watchRetryDelay.
func (t *TUI) watch(ctx context.Context, send func(tea.Msg)) {
	for {
		err := t.api.Watch(ctx, func(e models.Event) {
			send(eventMsg{event: e})
		})
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			t.logger.Debug().Err(err).Msg("event stream closed")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(watchRetryDelay):
		}
	}
}
