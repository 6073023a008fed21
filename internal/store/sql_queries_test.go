// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-gtd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool    { return &b }
func int64Ptr(i int64) *int64 { return &i }

func TestContainsPattern_EscapesMetacharacters(t *testing.T) {
	assert.Equal(t, `%50\%%`, containsPattern("50%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%c:\\d%`, containsPattern(`c:\d`))
	assert.Equal(t, `%plain%`, containsPattern("plain"))
}

func TestBuildListProjectsQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.ProjectFilter
		wantParts []string
		wantArgs  []any
	}{
		{
			name:      "defaults",
			filter:    models.ProjectFilter{ListParams: models.ListParams{Limit: 50}},
			wantParts: []string{"FROM projects p", "p.user_id = $1", "p.deleted_at IS NULL", "ORDER BY p.created_at ASC, p.id", "LIMIT 50", "task_count"},
			wantArgs:  []any{int64(7)},
		},
		{
			name: "search, open only, field, weekly, sort desc, offset",
			filter: models.ProjectFilter{
				ListParams: models.ListParams{
					Limit: 10, Offset: 20, Search: "home", IsDone: boolPtr(false),
					Sort: "name", Order: "desc", FieldID: int64Ptr(3),
				},
				DoThisWeek: boolPtr(true),
			},
			wantParts: []string{"p.name ILIKE $2", "p.done_at IS NULL", "p.field_id = $3", "p.do_this_week = $4", "ORDER BY p.name DESC, p.id", "LIMIT 10", "OFFSET 20"},
			wantArgs:  []any{int64(7), "%home%", int64(3), true},
		},
		{
			name:      "done only",
			filter:    models.ProjectFilter{ListParams: models.ListParams{IsDone: boolPtr(true)}},
			wantParts: []string{"p.done_at IS NOT NULL"},
			wantArgs:  []any{int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListProjectsQuery(7, tt.filter)
			require.NoError(t, err)
			for _, part := range tt.wantParts {
				assert.Contains(t, query, part)
			}
			assert.Equal(t, tt.wantArgs, args)

			countQuery, countArgs, err := buildCountProjectsQuery(7, tt.filter)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(countQuery, "SELECT COUNT(*) FROM projects p"))
			assert.NotContains(t, countQuery, "LIMIT")
			assert.Equal(t, args, countArgs)
		})
	}
}

func TestBuildListProjectsQuery_UnknownSort(t *testing.T) {
	_, _, err := buildListProjectsQuery(1, models.ProjectFilter{ListParams: models.ListParams{Sort: "priority"}})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestBuildListTasksQuery_Filters(t *testing.T) {
	filter := models.TaskFilter{
		ListParams: models.ListParams{ProjectID: int64Ptr(5), Sort: "priority", Order: "desc", Limit: 5},
		DoToday:    boolPtr(true),
		WaitFor:    boolPtr(false),
		IsReading:  boolPtr(true),
	}

	query, args, err := buildListTasksQuery(1, filter)
	require.NoError(t, err)
	assert.Contains(t, query, "t.project_id = $2")
	assert.Contains(t, query, "t.do_today = $3")
	assert.Contains(t, query, "t.wait_for = $4")
	assert.Contains(t, query, "t.is_reading = $5")
	assert.Contains(t, query, "ORDER BY t.priority DESC, t.id")
	assert.Equal(t, []any{int64(1), int64(5), true, false, true}, args)
}

func TestBuildCountTasksQuery_OpenOnlyNarrowsAll(t *testing.T) {
	all := models.TaskFilter{ListParams: models.ListParams{Search: "milk"}}
	open := models.TaskFilter{ListParams: models.ListParams{Search: "milk", IsDone: boolPtr(false)}}

	allQuery, allArgs, err := buildCountTasksQuery(3, all)
	require.NoError(t, err)
	openQuery, openArgs, err := buildCountTasksQuery(3, open)
	require.NoError(t, err)

	assert.Equal(t, allQuery, strings.Replace(openQuery, " AND t.done_at IS NULL", "", 1))
	assert.NotEqual(t, allQuery, openQuery)
	assert.Equal(t, allArgs, openArgs)
}

func TestBuildListFieldsQuery_IgnoresDoneAndFieldFilters(t *testing.T) {
	query, args, err := buildListFieldsQuery(1, models.ListParams{IsDone: boolPtr(true), FieldID: int64Ptr(2)})
	require.NoError(t, err)
	assert.NotContains(t, query, "done_at")
	assert.NotContains(t, query, "field_id")
	assert.Equal(t, []any{int64(1)}, args)
}

func TestBuildListTodayTasksQuery(t *testing.T) {
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildListTodayTasksQuery(4, today, models.TaskFilter{ListParams: models.ListParams{Limit: 50}})
	require.NoError(t, err)
	assert.Contains(t, query, "t.done_at IS NULL")
	assert.Contains(t, query, "(t.do_today = $2 OR t.do_on_date <= $3)")
	assert.Contains(t, query, "ORDER BY t.priority DESC, t.created_at ASC, t.id")
	assert.Contains(t, query, "LIMIT 50")
	assert.Equal(t, []any{int64(4), true, today}, args)
}

func TestBuildListWeekTasksQuery_FilterAndPaging(t *testing.T) {
	weekEnd := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	filter := models.TaskFilter{
		ListParams: models.ListParams{Limit: 1, Offset: 2, Search: "rent", IsDone: boolPtr(true), Sort: "name"},
		WaitFor:    boolPtr(false),
	}

	query, args, err := buildListWeekTasksQuery(4, weekEnd, filter)
	require.NoError(t, err)
	assert.Contains(t, query, "t.name ILIKE $2")
	assert.Contains(t, query, "t.wait_for = $3")
	assert.Contains(t, query, "(t.do_this_week = $4 OR t.do_on_date < $5)")
	assert.Contains(t, query, "ORDER BY t.name ASC, t.id")
	assert.Contains(t, query, "LIMIT 1")
	assert.Contains(t, query, "OFFSET 2")
	assert.Equal(t, []any{int64(4), "%rent%", false, true, weekEnd}, args)

	countQuery, countArgs, err := buildCountWeekTasksQuery(4, weekEnd, filter)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(countQuery, "SELECT COUNT(*) FROM tasks t"))
	assert.NotContains(t, countQuery, "LIMIT")
	assert.NotContains(t, countQuery, "IS NOT NULL")
	assert.Equal(t, args, countArgs)
}

func TestBuildListTodayTasksQuery_UnknownSort(t *testing.T) {
	_, _, err := buildListTodayTasksQuery(1, time.Now(), models.TaskFilter{ListParams: models.ListParams{Sort: "password"}})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestBuildUpdateTaskQuery(t *testing.T) {
	name := "renamed"
	priority := 8
	update := models.TaskUpdate{
		Name:       &name,
		ProjectID:  int64Ptr(0),
		DoneStatus: boolPtr(true),
		DoToday:    boolPtr(false),
		Priority:   &priority,
		DoOnDate:   &models.Date{},
	}

	query, args, err := buildUpdateTaskQuery(2, 9, update)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE tasks SET updated_at = NOW()")
	assert.Contains(t, query, "done_at = COALESCE(done_at, NOW())")
	assert.Contains(t, query, "WHERE id = $6 AND user_id = $7 AND deleted_at IS NULL")
	assert.Equal(t, []any{"renamed", nil, false, 8, nil, int64(9), int64(2)}, args)
}

func TestBuildUpdateProjectQuery_Undone(t *testing.T) {
	query, args, err := buildUpdateProjectQuery(1, 2, models.ProjectUpdate{DoneStatus: boolPtr(false)})
	require.NoError(t, err)
	assert.Contains(t, query, "done_at = $1")
	assert.Equal(t, []any{nil, int64(2), int64(1)}, args)
}

func TestBuildInsertTaskQuery_DefaultPriority(t *testing.T) {
	query, args, err := buildInsertTaskQuery(1, models.TaskCreate{Name: "x"})
	require.NoError(t, err)
	assert.Contains(t, query, "RETURNING id")
	assert.Equal(t, models.DefaultPriority, args[9])
	assert.Nil(t, args[10])
}

func TestValidSort(t *testing.T) {
	assert.True(t, ValidSort(models.ResourceTask, "priority"))
	assert.False(t, ValidSort(models.ResourceProject, "priority"))
	assert.True(t, ValidSort(models.ResourceField, "name"))
	assert.False(t, ValidSort("unknown", "name"))
}
