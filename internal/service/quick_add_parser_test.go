// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(y int, m time.Month, d int) *models.Date {
	date := models.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &date
}

func TestParseQuickAdd(t *testing.T) {
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want models.TaskDraft
	}{
		{
			name: "plain name",
			text: "  Buy   milk ",
			want: models.TaskDraft{Name: "Buy milk", Priority: models.DefaultPriority},
		},
		{
			name: "today flag",
			text: "Call dentist !today",
			want: models.TaskDraft{Name: "Call dentist", DoToday: true, Priority: models.DefaultPriority},
		},
		{
			name: "hash flags are case-insensitive",
			text: "#WEEK Read book #reading #Waiting",
			want: models.TaskDraft{Name: "Read book", DoThisWeek: true, IsReading: true, WaitFor: true, Priority: models.DefaultPriority},
		},
		{
			name: "numeric priority",
			text: "Fix bug !8",
			want: models.TaskDraft{Name: "Fix bug", Priority: 8},
		},
		{
			name: "bang priority",
			text: "Fix bug !!",
			want: models.TaskDraft{Name: "Fix bug", Priority: 7},
		},
		{
			name: "out of range priority stays in name",
			text: "Fix bug !11",
			want: models.TaskDraft{Name: "Fix bug !11", Priority: models.DefaultPriority},
		},
		{
			name: "relative date",
			text: "Pay rent ^tomorrow",
			want: models.TaskDraft{Name: "Pay rent", DoOnDate: datePtr(2026, 10, 19), Priority: models.DefaultPriority},
		},
		{
			name: "first date wins",
			text: "Pay rent ^2026-11-01 ^today",
			want: models.TaskDraft{Name: "Pay rent ^today", DoOnDate: datePtr(2026, 11, 1), Priority: models.DefaultPriority},
		},
		{
			name: "unknown date stays in name",
			text: "Travel ^someday",
			want: models.TaskDraft{Name: "Travel ^someday", Priority: models.DefaultPriority},
		},
		{
			name: "hints time and url",
			text: "Write report +Q4 @Work ~2h https://example.com/doc",
			want: models.TaskDraft{
				Name:            "Write report",
				ProjectHint:     "Q4",
				FieldHint:       "Work",
				TimeExpenditure: "2h",
				URL:             "https://example.com/doc",
				Priority:        models.DefaultPriority,
			},
		},
		{
			name: "unknown hash tag stays",
			text: "Relax #foo",
			want: models.TaskDraft{Name: "Relax #foo", Priority: models.DefaultPriority},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuickAdd(tt.text, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuickAdd_NoName(t *testing.T) {
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	for _, text := range []string{"", "   ", "!today +Home !5"} {
		_, err := ParseQuickAdd(text, now)

		var verr *validators.ValidationError
		require.ErrorAs(t, err, &verr, text)
		assert.Contains(t, verr.Fields, "text")
	}
}
