// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-gtd/internal/client"
	"github.com/MKhiriev/go-gtd/models"
)

// tabs are the list views in tab order.
var tabs = []client.View{
	client.ViewProjects,
	client.ViewWeekly,
	client.ViewTasks,
	client.ViewToday,
	client.ViewWeek,
}

func tabTitle(v client.View) string {
	switch v {
	case client.ViewProjects:
		return "Projects"
	case client.ViewWeekly:
		return "Weekly"
	case client.ViewTasks:
		return "Tasks"
	case client.ViewToday:
		return "Today"
	case client.ViewWeek:
		return "This week"
	default:
		return string(v)
	}
}

func isProjectView(v client.View) bool {
	return v == client.ViewProjects || v == client.ViewWeekly
}

// entry is one line of a grouped list: a group header or an item.
type entry struct {
	header  string
	project *models.ProjectView
	task    *models.TaskView
}

func (e entry) isItem() bool {
	return e.project != nil || e.task != nil
}

type listScreen struct {
	state    *client.ListState
	projects []models.ProjectView
	tasks    []models.TaskView
	cursor   int
	loading  bool
	loaded   bool
}

func (l *listScreen) entries() []entry {
	var out []entry
	if isProjectView(l.state.View) {
		for _, g := range client.GroupProjects(l.projects, l.state.GroupBy) {
			if g.Title != "" {
				out = append(out, entry{header: g.Title})
			}
			for i := range g.Items {
				out = append(out, entry{project: &g.Items[i]})
			}
		}
		return out
	}
	for _, g := range client.GroupTasks(l.tasks, l.state.GroupBy) {
		if g.Title != "" {
			out = append(out, entry{header: g.Title})
		}
		for i := range g.Items {
			out = append(out, entry{task: &g.Items[i]})
		}
	}
	return out
}

func (l *listScreen) itemCount() int {
	if isProjectView(l.state.View) {
		return len(l.projects)
	}
	return len(l.tasks)
}

// selected returns the item under the cursor in display order.
func (l *listScreen) selected() (entry, bool) {
	i := 0
	for _, e := range l.entries() {
		if !e.isItem() {
			continue
		}
		if i == l.cursor {
			return e, true
		}
		i++
	}
	return entry{}, false
}

func (l *listScreen) moveCursor(delta int) {
	n := l.itemCount()
	if n == 0 {
		l.cursor = 0
		return
	}
	l.cursor = min(max(l.cursor+delta, 0), n-1)
}

func (l *listScreen) setProjects(items []models.ProjectView) {
	l.projects = items
	l.loaded, l.loading = true, false
	l.moveCursor(0)
}

func (l *listScreen) setTasks(items []models.TaskView) {
	l.tasks = items
	l.loaded, l.loading = true, false
	l.moveCursor(0)
}

// summary is the filter line above the list.
func (l *listScreen) summary() string {
	s := l.state
	parts := make([]string, 0, 5)
	if s.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", s.Search))
	}
	if s.ShowCompleted {
		parts = append(parts, "completed shown")
	} else {
		parts = append(parts, "completed hidden")
	}
	group := string(s.GroupBy)
	if group == "" {
		group = "none"
	}
	parts = append(parts, "group: "+group)
	if s.ShowAll {
		parts = append(parts, "all items")
	} else {
		parts = append(parts, fmt.Sprintf("page %d/%d (%d per page)", s.Page, s.Pages(), s.PageSize))
	}
	if s.Total >= 0 {
		parts = append(parts, fmt.Sprintf("%d total", s.Total))
	}
	return strings.Join(parts, " · ")
}

func (l *listScreen) render(width int) string {
	entries := l.entries()
	if len(entries) == 0 {
		return helpStyle.Render("Nothing here.")
	}

	var b strings.Builder
	i := 0
	for _, e := range entries {
		if !e.isItem() {
			b.WriteString(groupStyle.Render(e.header))
			b.WriteString("\n")
			continue
		}

		line := "  " + renderItem(e, width)
		switch {
		case i == l.cursor:
			line = selectedStyle.Render("> " + renderItem(e, width))
		case itemDone(e):
			line = doneStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		i++
	}
	return strings.TrimRight(b.String(), "\n")
}

func itemDone(e entry) bool {
	if e.project != nil {
		return e.project.DoneStatus
	}
	return e.task != nil && e.task.DoneStatus
}

func renderItem(e entry, width int) string {
	if e.project != nil {
		p := e.project
		meta := []string{fmt.Sprintf("%d tasks", p.TaskCount)}
		if p.FieldName != "" {
			meta = append([]string{p.FieldName}, meta...)
		}
		if p.DoThisWeek {
			meta = append(meta, "this week")
		}
		return checkbox(p.DoneStatus) + " " + fitText(p.ProjectName, width) + "  " + helpStyle.Render(strings.Join(meta, " · "))
	}

	t := e.task
	var meta []string
	if t.Priority > 0 {
		meta = append(meta, fmt.Sprintf("!%d", t.Priority))
	}
	if t.DoToday {
		meta = append(meta, "today")
	}
	if t.DoOnDate != "" {
		meta = append(meta, t.DoOnDate)
	}
	if t.ProjectName != "" {
		meta = append(meta, t.ProjectName)
	}
	if t.WaitFor {
		meta = append(meta, "waiting")
	}
	line := checkbox(t.DoneStatus) + " " + fitText(t.TaskName, width)
	if len(meta) > 0 {
		line += "  " + helpStyle.Render(strings.Join(meta, " · "))
	}
	return line
}
