package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-gtd/models"
)

type detailModel struct {
	item   entry
	status string
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func (m detailModel) title() string {
	if m.item.project != nil {
		return m.item.project.ProjectName
	}
	if m.item.task != nil {
		return m.item.task.TaskName
	}
	return "-"
}

func (m detailModel) View() string {
	var b strings.Builder
	hotKeys := "space: toggle done  esc: back"

	switch {
	case m.item.project != nil:
		p := m.item.project
		fmt.Fprintf(&b, "Field:      %s\n", valueOrDash(p.FieldName))
		fmt.Fprintf(&b, "Done:       %s\n", yesNo(p.DoneStatus))
		fmt.Fprintf(&b, "This week:  %s\n", yesNo(p.DoThisWeek))
		fmt.Fprintf(&b, "Open tasks: %d\n", p.TaskCount)
		fmt.Fprintf(&b, "Keywords:   %s\n", valueOrDash(p.Keywords))
		fmt.Fprintf(&b, "Readings:   %s", valueOrDash(p.Readings))
	case m.item.task != nil:
		writeTask(&b, m.item.task)
		if m.item.task.URL != "" {
			hotKeys = "c: copy URL  " + hotKeys
		}
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage(m.title(), b.String(), hotKeys)
}

func writeTask(b *strings.Builder, t *models.TaskView) {
	fmt.Fprintf(b, "Project:    %s\n", valueOrDash(t.ProjectName))
	fmt.Fprintf(b, "Field:      %s\n", valueOrDash(t.FieldName))
	fmt.Fprintf(b, "Done:       %s\n", yesNo(t.DoneStatus))
	fmt.Fprintf(b, "Priority:   %d\n", t.Priority)
	fmt.Fprintf(b, "Today:      %s\n", yesNo(t.DoToday))
	fmt.Fprintf(b, "This week:  %s\n", yesNo(t.DoThisWeek))
	fmt.Fprintf(b, "Do on:      %s\n", valueOrDash(t.DoOnDate))
	fmt.Fprintf(b, "Time:       %s\n", valueOrDash(t.TimeExpenditure))
	fmt.Fprintf(b, "Waiting:    %s\n", yesNo(t.WaitFor))
	fmt.Fprintf(b, "Reading:    %s\n", yesNo(t.IsReading))
	fmt.Fprintf(b, "URL:        %s\n", valueOrDash(t.URL))
	fmt.Fprintf(b, "Notes:      %s", valueOrDash(t.KnowledgeDBEntry))
}
