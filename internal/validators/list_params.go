package validators

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-gtd/internal/store"
	"github.com/MKhiriev/go-gtd/models"
)

// ParseListParams reads the shared list query parameters of resource.
// Unknown keys are ignored. A limit above maxLimit is capped.
func ParseListParams(q url.Values, resource string, maxLimit int) (models.ListParams, error) {
	verr := &ValidationError{}
	p := parseListParams(q, resource, maxLimit, verr)
	if !verr.Empty() {
		return models.ListParams{}, verr
	}
	return p, nil
}

// ParseProjectFilter reads a project listing query.
func ParseProjectFilter(q url.Values, maxLimit int) (models.ProjectFilter, error) {
	verr := &ValidationError{}
	f := models.ProjectFilter{
		ListParams: parseListParams(q, models.ResourceProject, maxLimit, verr),
		DoThisWeek: parseBool(q, "do_this_week", verr),
	}
	if !verr.Empty() {
		return models.ProjectFilter{}, verr
	}
	return f, nil
}

// ParseTaskFilter reads a task listing query.
func ParseTaskFilter(q url.Values, maxLimit int) (models.TaskFilter, error) {
	verr := &ValidationError{}
	f := models.TaskFilter{
		ListParams: parseListParams(q, models.ResourceTask, maxLimit, verr),
		DoToday:    parseBool(q, "do_today", verr),
		DoThisWeek: parseBool(q, "do_this_week", verr),
		WaitFor:    parseBool(q, "wait_for", verr),
		IsReading:  parseBool(q, "is_reading", verr),
	}
	if !verr.Empty() {
		return models.TaskFilter{}, verr
	}
	return f, nil
}

func parseListParams(q url.Values, resource string, maxLimit int, verr *ValidationError) models.ListParams {
	if maxLimit <= 0 {
		maxLimit = models.MaxLimit
	}

	p := models.ListParams{
		Limit:  models.DefaultLimit,
		Search: strings.TrimSpace(q.Get("search")),
		IsDone: parseBool(q, "is_done", verr),
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil || n < 1:
			verr.Add("limit", "must be a positive integer")
		case n > maxLimit:
			p.Limit = maxLimit
		default:
			p.Limit = n
		}
	}

	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			verr.Add("offset", "must be a non-negative integer")
		} else {
			p.Offset = n
		}
	}

	if sort := q.Get("sort"); sort != "" {
		if !store.ValidSort(resource, sort) {
			verr.Add("sort", "unknown sort column")
		} else {
			p.Sort = sort
		}
	}

	switch order := strings.ToLower(q.Get("order")); order {
	case "", models.OrderAsc, models.OrderDesc:
		p.Order = order
	default:
		verr.Add("order", "must be asc or desc")
	}

	if resource != models.ResourceField {
		p.FieldID = parseID(q, "field_id", verr)
	}
	if resource == models.ResourceTask {
		p.ProjectID = parseID(q, "project_id", verr)
	}

	return p
}

func parseBool(q url.Values, key string, verr *ValidationError) *bool {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		verr.Add(key, "must be a boolean")
		return nil
	}
	return &b
}

func parseID(q url.Values, key string, verr *ValidationError) *int64 {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		verr.Add(key, "must be a positive integer")
		return nil
	}
	return &id
}

// ParseID reads a path id.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}
