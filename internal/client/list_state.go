// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"net/url"
	"strconv"
)

// View is one list screen backed by a gateway collection.
type View string

const (
	ViewProjects View = "projects"
	ViewWeekly   View = "weekly"
	ViewTasks    View = "tasks"
	ViewToday    View = "today"
	ViewWeek     View = "week"
	ViewFields   View = "fields"
)

// Path is the gateway path serving v.
func (v View) Path() string {
	switch v {
	case ViewWeekly:
		return "/api/projects/weekly"
	case ViewToday:
		return "/api/tasks/today"
	case ViewWeek:
		return "/api/tasks/week"
	default:
		return "/api/" + string(v)
	}
}

// GroupBy is the grouping dimension of a list.
type GroupBy string

const (
	GroupNone      GroupBy = ""
	GroupStatus    GroupBy = "status"
	GroupField     GroupBy = "field"
	GroupTaskCount GroupBy = "task_count"
	GroupWeekly    GroupBy = "weekly"
)

// GroupOrder is the cycling order used by the UI.
var GroupOrder = []GroupBy{GroupNone, GroupStatus, GroupField, GroupTaskCount, GroupWeekly}

// Query is one page request.
type Query struct {
	Search        string
	ShowCompleted bool
	ProjectID     *int64
	Limit         int
	Offset        int
}

func (q Query) values() url.Values {
	values := url.Values{}
	values.Set("showCompleted", strconv.FormatBool(q.ShowCompleted))
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.ProjectID != nil {
		values.Set("project_id", strconv.FormatInt(*q.ProjectID, 10))
	}
	return values
}

// CacheKey is the filter tuple a fetched page is cached under.
type CacheKey struct {
	View          View
	Search        string
	ShowCompleted bool
	ProjectID     int64
	Page          int
	PageSize      int
	ShowAll       bool
}

// ListState is the state of one list view. Changing any filter returns to
// the first page; changing the page size also forgets the known total so it
// is fetched again.
type ListState struct {
	View          View
	Page          int
	PageSize      int
	Search        string
	ShowCompleted bool
	ProjectID     *int64
	GroupBy       GroupBy
	ShowAll       bool

	// Total is the last known number of matching items, -1 when unknown.
	Total int

	maxPageSize int
}

func NewListState(view View, pageSize, maxPageSize int) *ListState {
	s := &ListState{View: view, Page: 1, Total: -1, maxPageSize: maxPageSize}
	s.PageSize = s.clampPageSize(pageSize)
	return s
}

func (s *ListState) clampPageSize(size int) int {
	if size < 1 {
		size = 1
	}
	if s.maxPageSize > 0 && size > s.maxPageSize {
		size = s.maxPageSize
	}
	return size
}

func (s *ListState) resetPage() {
	s.Page = 1
}

func (s *ListState) SetSearch(search string) {
	if s.Search != search {
		s.Search = search
		s.resetPage()
	}
}

func (s *ListState) SetShowCompleted(show bool) {
	if s.ShowCompleted != show {
		s.ShowCompleted = show
		s.resetPage()
	}
}

func (s *ListState) SetProjectID(id *int64) {
	if !sameID(s.ProjectID, id) {
		s.ProjectID = id
		s.resetPage()
	}
}

// SetGroupBy regroups the loaded items; the page is kept.
func (s *ListState) SetGroupBy(by GroupBy) {
	s.GroupBy = by
}

// CycleGroupBy moves to the next grouping in GroupOrder.
func (s *ListState) CycleGroupBy() GroupBy {
	next := GroupOrder[0]
	for i, by := range GroupOrder {
		if by == s.GroupBy {
			next = GroupOrder[(i+1)%len(GroupOrder)]
			break
		}
	}
	s.GroupBy = next
	return next
}

func (s *ListState) SetPageSize(size int) {
	size = s.clampPageSize(size)
	if size != s.PageSize {
		s.PageSize = size
		s.Total = -1
		s.resetPage()
	}
}

// SetShowAll switches between paged and unpaged listing.
func (s *ListState) SetShowAll(all bool) {
	if s.ShowAll != all {
		s.ShowAll = all
		s.resetPage()
	}
}

// Pages is the number of pages for the known total, at least 1.
func (s *ListState) Pages() int {
	if s.ShowAll || s.Total <= 0 {
		return 1
	}
	return (s.Total + s.PageSize - 1) / s.PageSize
}

func (s *ListState) NextPage() bool {
	if s.ShowAll || s.Page >= s.Pages() {
		return false
	}
	s.Page++
	return true
}

func (s *ListState) PrevPage() bool {
	if s.ShowAll || s.Page <= 1 {
		return false
	}
	s.Page--
	return true
}

// Apply records the total of a fetched result and pulls the page back in
// range when the collection shrank.
func (s *ListState) Apply(total int) {
	s.Total = total
	if pages := s.Pages(); s.Page > pages {
		s.Page = pages
	}
}

// Query is the request for the current page.
func (s *ListState) Query() Query {
	return Query{
		Search:        s.Search,
		ShowCompleted: s.ShowCompleted,
		ProjectID:     s.ProjectID,
		Limit:         s.PageSize,
		Offset:        (s.Page - 1) * s.PageSize,
	}
}

func (s *ListState) Key() CacheKey {
	key := CacheKey{
		View:          s.View,
		Search:        s.Search,
		ShowCompleted: s.ShowCompleted,
		Page:          s.Page,
		PageSize:      s.PageSize,
		ShowAll:       s.ShowAll,
	}
	if s.ProjectID != nil {
		key.ProjectID = *s.ProjectID
	}
	if s.ShowAll {
		key.Page, key.PageSize = 0, 0
	}
	return key
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
