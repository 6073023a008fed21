package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-gtd/models"
)

func renderStats(s models.DashboardStats) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value int
	}{
		{"Active projects", s.ActiveProjects},
		{"Weekly projects", s.WeeklyProjects},
		{"Done projects", s.CompletedProjects},
		{"Active tasks", s.ActiveTasks},
		{"Today", s.TodayTasks},
		{"This week", s.WeekTasks},
		{"Waiting", s.WaitingTasks},
		{"Overdue", s.OverdueTasks},
		{"Done tasks", s.CompletedTasks},
		{"Fields", s.TotalFields},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%-16s %4d\n", r.label, r.value)
	}
	return sidebarStyle.Render(strings.TrimRight(b.String(), "\n"))
}
