package tui

import (
	"context"

	"github.com/MKhiriev/go-gtd/internal/client"
	"github.com/MKhiriev/go-gtd/models"
	tea "github.com/charmbracelet/bubbletea"
)

// load fetches the current page of view. The request works on a copy of the
// list state; the result is applied in Update and dropped when the filters
// changed in the meantime.
func (m appModel) load(view client.View) tea.Cmd {
	l := m.lists[view]
	l.loading = true
	snapshot := *l.state
	key := snapshot.Key()
	ctx, api := m.ctx, m.api

	if isProjectView(view) {
		cache := m.projectCache
		return func() tea.Msg {
			page, err := client.Load(ctx, &snapshot, cache, func(ctx context.Context, q client.Query) (models.ViewPage[models.ProjectView], error) {
				return api.Projects(ctx, view, q)
			})
			return projectsLoadedMsg{view: view, key: key, page: page, err: err}
		}
	}

	cache := m.taskCache
	return func() tea.Msg {
		page, err := client.Load(ctx, &snapshot, cache, func(ctx context.Context, q client.Query) (models.ViewPage[models.TaskView], error) {
			return api.Tasks(ctx, view, q)
		})
		return tasksLoadedMsg{view: view, key: key, page: page, err: err}
	}
}

func (m appModel) loadStats() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		stats, err := api.Stats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m appModel) authenticate() tea.Cmd {
	ctx, api, prefs, log := m.ctx, m.api, m.prefs, m.logger
	login, password := m.login.credentials()
	register := m.login.register

	return func() tea.Msg {
		var (
			user models.User
			err  error
		)
		if register {
			user, err = api.Register(ctx, login, password)
		} else {
			user, err = api.Login(ctx, login, password)
		}
		if err != nil {
			return authDoneMsg{err: err}
		}
		if prefs != nil {
			if err := prefs.SaveSessionID(ctx, api.SessionID()); err != nil {
				log.Warn().Err(err).Msg("session id not saved")
			}
		}
		return authDoneMsg{user: user}
	}
}

func (m appModel) addTask(text string) tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		task, err := api.QuickAdd(ctx, text)
		return quickAddDoneMsg{task: task, err: err}
	}
}

func (m appModel) toggle(e entry) tea.Cmd {
	ctx, api := m.ctx, m.api
	switch {
	case e.project != nil:
		id, done := e.project.ID, !e.project.DoneStatus
		return func() tea.Msg {
			p, err := api.SetProjectDone(ctx, id, done)
			if err != nil {
				return toggledMsg{err: err}
			}
			return toggledMsg{project: &p}
		}
	case e.task != nil:
		id, done := e.task.ID, !e.task.DoneStatus
		return func() tea.Msg {
			t, err := api.SetTaskDone(ctx, id, done)
			if err != nil {
				return toggledMsg{err: err}
			}
			return toggledMsg{task: &t}
		}
	}
	return nil
}

func (m appModel) copyURL(url string) tea.Cmd {
	write := m.copy
	return func() tea.Msg {
		return copiedMsg{err: write(url)}
	}
}

func (m appModel) signOut() tea.Cmd {
	ctx, api, log := m.ctx, m.api, m.logger
	forget := m.forgetSession()
	return func() tea.Msg {
		if err := api.Logout(ctx); err != nil {
			log.Warn().Err(err).Msg("logout request failed")
		}
		forget()
		return logoutDoneMsg{}
	}
}

// forgetSession drops the session id locally. It returns no message.
func (m appModel) forgetSession() tea.Cmd {
	ctx, api, prefs, log := m.ctx, m.api, m.prefs, m.logger
	return func() tea.Msg {
		api.SetSessionID("")
		if prefs != nil {
			if err := prefs.SaveSessionID(ctx, ""); err != nil {
				log.Warn().Err(err).Msg("session id not cleared")
			}
		}
		return nil
	}
}

func (m appModel) savePreferences() tea.Cmd {
	if m.prefs == nil {
		return nil
	}
	ctx, prefs, settings, log := m.ctx, m.prefs, m.settings, m.logger
	return func() tea.Msg {
		if err := prefs.Save(ctx, settings); err != nil {
			log.Warn().Err(err).Msg("preferences not saved")
		}
		return nil
	}
}
