package tui

import (
	"github.com/MKhiriev/go-gtd/internal/client"
	"github.com/MKhiriev/go-gtd/models"
)

type projectsLoadedMsg struct {
	view client.View
	key  client.CacheKey
	page models.ViewPage[models.ProjectView]
	err  error
}

type tasksLoadedMsg struct {
	view client.View
	key  client.CacheKey
	page models.ViewPage[models.TaskView]
	err  error
}

type statsLoadedMsg struct {
	stats models.DashboardStats
	err   error
}

type authDoneMsg struct {
	user models.User
	err  error
}

type quickAddDoneMsg struct {
	task models.TaskView
	err  error
}

type toggledMsg struct {
	project *models.ProjectView
	task    *models.TaskView
	err     error
}

type copiedMsg struct {
	err error
}

type logoutDoneMsg struct{}

type eventMsg struct {
	event models.Event
}
