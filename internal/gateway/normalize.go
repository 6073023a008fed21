// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-gtd/models"
)

// ErrMalformedBackendBody is returned when a backend body cannot be reshaped.
var ErrMalformedBackendBody = errors.New("malformed backend body")

// record is one backend object with lookups that fall back through a list
// of keys. A key holding JSON null counts as absent.
type record map[string]json.RawMessage

func (r record) raw(key string) (json.RawMessage, bool) {
	v, ok := r[key]
	if !ok || len(v) == 0 || string(v) == "null" {
		return nil, false
	}
	return v, true
}

func (r record) has(key string) bool {
	_, ok := r.raw(key)
	return ok
}

func (r record) str(keys ...string) string {
	for _, key := range keys {
		v, ok := r.raw(key)
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return s
		}
	}
	return ""
}

func (r record) boolean(key string) (bool, bool) {
	v, ok := r.raw(key)
	if !ok {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(v, &b); err != nil {
		return false, false
	}
	return b, true
}

func (r record) integer(key string) (int64, bool) {
	v, ok := r.raw(key)
	if !ok {
		return 0, false
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err != nil {
		return 0, false
	}
	i, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

func (r record) optionalID(key string) *int64 {
	if id, ok := r.integer(key); ok && id > 0 {
		return &id
	}
	return nil
}

// doneStatus falls back from done_status to done_at != null, then false.
func (r record) doneStatus() bool {
	if done, ok := r.boolean("done_status"); ok {
		return done
	}
	return r.has("done_at")
}

// normalizeProject: project_name <- project_name, name, "";
// done_status <- done_status, done_at != null, false; task_count <- task_count, 0.
func normalizeProject(r record) models.ProjectView {
	id, _ := r.integer("id")
	taskCount, _ := r.integer("task_count")

	return models.ProjectView{
		ID:          id,
		ProjectName: r.str("project_name", "name"),
		FieldID:     r.optionalID("field_id"),
		FieldName:   r.str("field_name"),
		DoneStatus:  r.doneStatus(),
		DoThisWeek:  boolOr(r, "do_this_week", false),
		TaskCount:   int(taskCount),
		Keywords:    r.str("keywords"),
		Readings:    r.str("readings"),
	}
}

// normalizeTask: task_name <- task_name, name; done_status <- done_status,
// done_at != null; priority <- priority, 3.
func normalizeTask(r record) models.TaskView {
	id, _ := r.integer("id")
	priority, ok := r.integer("priority")
	if !ok {
		priority = models.DefaultPriority
	}

	return models.TaskView{
		ID:               id,
		TaskName:         r.str("task_name", "name"),
		ProjectID:        r.optionalID("project_id"),
		ProjectName:      r.str("project_name"),
		FieldID:          r.optionalID("field_id"),
		FieldName:        r.str("field_name"),
		DoneStatus:       r.doneStatus(),
		DoToday:          boolOr(r, "do_today", false),
		DoThisWeek:       boolOr(r, "do_this_week", false),
		IsReading:        boolOr(r, "is_reading", false),
		WaitFor:          boolOr(r, "wait_for", false),
		Postponed:        boolOr(r, "postponed", false),
		Reviewed:         boolOr(r, "reviewed", false),
		Priority:         int(priority),
		DoOnDate:         r.str("do_on_date"),
		TimeExpenditure:  r.str("time_expenditure"),
		URL:              r.str("url"),
		KnowledgeDBEntry: r.str("knowledge_db_entry"),
	}
}

// normalizeField: field_name <- field_name, name.
func normalizeField(r record) models.FieldView {
	id, _ := r.integer("id")

	return models.FieldView{
		ID:          id,
		FieldName:   r.str("field_name", "name"),
		Description: r.str("description"),
	}
}

func boolOr(r record, key string, fallback bool) bool {
	if b, ok := r.boolean(key); ok {
		return b
	}
	return fallback
}

func decodeRecord(body []byte) (record, error) {
	var r record
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBackendBody, err)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: empty object", ErrMalformedBackendBody)
	}
	return r, nil
}

func normalizeOne[T any](body []byte, normalize func(record) T) (T, error) {
	r, err := decodeRecord(body)
	if err != nil {
		var zero T
		return zero, err
	}
	return normalize(r), nil
}

type envelope struct {
	Items  []record `json:"items"`
	Total  *int     `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
}

// normalizeList accepts either the paginated envelope or a bare array and
// always returns the envelope. A bare array is one complete page.
func normalizeList[T any](body []byte, normalize func(record) T) (models.ViewPage[T], error) {
	trimmed := bytes.TrimSpace(body)

	var env envelope
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &env.Items); err != nil {
			return models.ViewPage[T]{}, fmt.Errorf("%w: %w", ErrMalformedBackendBody, err)
		}
	} else if err := json.Unmarshal(trimmed, &env); err != nil {
		return models.ViewPage[T]{}, fmt.Errorf("%w: %w", ErrMalformedBackendBody, err)
	}

	items := make([]T, 0, len(env.Items))
	for _, r := range env.Items {
		items = append(items, normalize(r))
	}

	total := len(items)
	if env.Total != nil {
		total = *env.Total
	}
	limit := env.Limit
	if limit == 0 {
		limit = len(items)
	}

	return models.ViewPage[T]{
		Items:   items,
		Total:   total,
		Limit:   limit,
		Offset:  env.Offset,
		HasMore: env.Offset+len(items) < total,
	}, nil
}

// denormalize rewrites a view-shaped write body into the backend shape:
// nameKey becomes "name" unless the body already carries one, and the other
// view-only keys are dropped.
func denormalize(body []byte, nameKey string) ([]byte, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return body, nil
	}

	r, err := decodeRecord(body)
	if err != nil {
		return nil, err
	}

	if v, ok := r[nameKey]; ok {
		if _, hasName := r["name"]; !hasName {
			r["name"] = v
		}
	}
	for _, key := range []string{"project_name", "task_name", "field_name", "task_count"} {
		delete(r, key)
	}

	return json.Marshal(r)
}
