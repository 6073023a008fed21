package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListState_FilterChangeResetsPage(t *testing.T) {
	s := NewListState(ViewTasks, 10, 100)
	s.Apply(45)
	s.NextPage()
	s.NextPage()
	assert.Equal(t, 3, s.Page)

	s.SetSearch("milk")
	assert.Equal(t, 1, s.Page)

	s.NextPage()
	s.SetShowCompleted(true)
	assert.Equal(t, 1, s.Page)

	s.NextPage()
	id := int64(4)
	s.SetProjectID(&id)
	assert.Equal(t, 1, s.Page)

	s.NextPage()
	same := int64(4)
	s.SetProjectID(&same)
	assert.Equal(t, 2, s.Page, "same filter value keeps the page")
}

func TestListState_PageSizeForgetsTotal(t *testing.T) {
	s := NewListState(ViewProjects, 10, 50)
	s.Apply(30)
	s.NextPage()

	s.SetPageSize(25)
	assert.Equal(t, 25, s.PageSize)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, -1, s.Total)

	s.SetPageSize(500)
	assert.Equal(t, 50, s.PageSize)

	s.SetPageSize(0)
	assert.Equal(t, 1, s.PageSize)
}

func TestListState_Paging(t *testing.T) {
	s := NewListState(ViewTasks, 20, 100)
	assert.False(t, s.NextPage(), "unknown total has one page")

	s.Apply(41)
	assert.Equal(t, 3, s.Pages())
	assert.True(t, s.NextPage())
	assert.True(t, s.NextPage())
	assert.False(t, s.NextPage())
	assert.Equal(t, Query{Limit: 20, Offset: 40}, s.Query())

	s.Apply(10)
	assert.Equal(t, 1, s.Page, "page pulled back when the list shrank")
	assert.False(t, s.PrevPage())
}

func TestListState_ShowAll(t *testing.T) {
	s := NewListState(ViewTasks, 20, 100)
	s.Apply(100)
	s.NextPage()

	s.SetShowAll(true)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, 1, s.Pages())
	assert.False(t, s.NextPage())

	key := s.Key()
	assert.Zero(t, key.Page)
	assert.Zero(t, key.PageSize)
	assert.True(t, key.ShowAll)
}

func TestListState_GroupByKeepsPage(t *testing.T) {
	s := NewListState(ViewProjects, 10, 100)
	s.Apply(30)
	s.NextPage()

	assert.Equal(t, GroupStatus, s.CycleGroupBy())
	assert.Equal(t, 2, s.Page)

	s.SetGroupBy(GroupWeekly)
	assert.Equal(t, GroupNone, s.CycleGroupBy())
}

func TestQueryValues(t *testing.T) {
	id := int64(7)
	v := Query{Search: "tax", ShowCompleted: false, ProjectID: &id, Limit: 10, Offset: 20}.values()

	assert.Equal(t, "false", v.Get("showCompleted"))
	assert.Equal(t, "tax", v.Get("search"))
	assert.Equal(t, "7", v.Get("project_id"))
	assert.Equal(t, "10", v.Get("limit"))
	assert.Equal(t, "20", v.Get("offset"))

	v = Query{ShowCompleted: true}.values()
	assert.False(t, v.Has("offset"))
	assert.False(t, v.Has("search"))
}

func TestViewPath(t *testing.T) {
	assert.Equal(t, "/api/projects", ViewProjects.Path())
	assert.Equal(t, "/api/projects/weekly", ViewWeekly.Path())
	assert.Equal(t, "/api/tasks/today", ViewToday.Path())
	assert.Equal(t, "/api/tasks/week", ViewWeek.Path())
	assert.Equal(t, "/api/fields", ViewFields.Path())
}
