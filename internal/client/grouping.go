package client

import "github.com/MKhiriev/go-gtd/models"

// Group is a titled run of list items. Groups come in a fixed order per
// dimension; empty groups are omitted.
type Group[T any] struct {
	Title string
	Items []T
}

// TaskCountBucket names the open-task bucket of a project.
func TaskCountBucket(n int) string {
	switch {
	case n <= 0:
		return "0"
	case n <= 3:
		return "1-3"
	case n <= 10:
		return "4-10"
	default:
		return "11+"
	}
}

var taskCountBuckets = []string{"0", "1-3", "4-10", "11+"}

const noField = "No field"

func GroupProjects(items []models.ProjectView, by GroupBy) []Group[models.ProjectView] {
	switch by {
	case GroupStatus:
		return groupFixed(items, []string{"Active", "Done"}, func(p models.ProjectView) string {
			return statusTitle(p.DoneStatus)
		})
	case GroupWeekly:
		return groupFixed(items, []string{"This week", "Later"}, func(p models.ProjectView) string {
			return weeklyTitle(p.DoThisWeek)
		})
	case GroupTaskCount:
		return groupFixed(items, taskCountBuckets, func(p models.ProjectView) string {
			return TaskCountBucket(p.TaskCount)
		})
	case GroupField:
		return groupByFirstSeen(items, func(p models.ProjectView) string {
			return fieldTitle(p.FieldID, p.FieldName)
		})
	default:
		return single(items)
	}
}

// GroupTasks groups tasks. Tasks have no task count, so GroupTaskCount
// leaves them ungrouped.
func GroupTasks(items []models.TaskView, by GroupBy) []Group[models.TaskView] {
	switch by {
	case GroupStatus:
		return groupFixed(items, []string{"Active", "Done"}, func(t models.TaskView) string {
			return statusTitle(t.DoneStatus)
		})
	case GroupWeekly:
		return groupFixed(items, []string{"This week", "Later"}, func(t models.TaskView) string {
			return weeklyTitle(t.DoThisWeek)
		})
	case GroupField:
		return groupByFirstSeen(items, func(t models.TaskView) string {
			return fieldTitle(t.FieldID, t.FieldName)
		})
	default:
		return single(items)
	}
}

func statusTitle(done bool) string {
	if done {
		return "Done"
	}
	return "Active"
}

func weeklyTitle(weekly bool) string {
	if weekly {
		return "This week"
	}
	return "Later"
}

func fieldTitle(id *int64, name string) string {
	if id == nil {
		return noField
	}
	if name == "" {
		return "Field"
	}
	return name
}

func single[T any](items []T) []Group[T] {
	if len(items) == 0 {
		return nil
	}
	return []Group[T]{{Items: items}}
}

func groupFixed[T any](items []T, order []string, title func(T) string) []Group[T] {
	buckets := make(map[string][]T, len(order))
	for _, item := range items {
		t := title(item)
		buckets[t] = append(buckets[t], item)
	}

	var groups []Group[T]
	for _, t := range order {
		if len(buckets[t]) > 0 {
			groups = append(groups, Group[T]{Title: t, Items: buckets[t]})
		}
	}
	return groups
}

// groupByFirstSeen keeps titles in order of first appearance, with the
// no-field group last.
func groupByFirstSeen[T any](items []T, title func(T) string) []Group[T] {
	var order []string
	buckets := make(map[string][]T)
	for _, item := range items {
		t := title(item)
		if _, seen := buckets[t]; !seen && t != noField {
			order = append(order, t)
		}
		buckets[t] = append(buckets[t], item)
	}
	order = append(order, noField)

	return groupFixed(items, order, title)
}
