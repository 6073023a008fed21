// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
)

// ParseQuickAdd turns one line of free text into a task draft. today
// anchors relative dates.
//
// The text is split on whitespace and every recognised token is removed
// from the name (matching is case-insensitive):
//
//	!today #today          do_today
//	!week #week            do_this_week
//	#wait #waiting         wait_for
//	#read #reading         is_reading
//	!0 .. !10              priority N
//	! !! !!!               priority 5, 7, 9
//	^today ^tomorrow       do_on_date
//	^YYYY-MM-DD            do_on_date
//	~<text>                time_expenditure
//	+<name>                project hint
//	@<name>                field hint
//	http(s)://...          url
//
// Dates, time, hints and url are taken from their first occurrence; later
// ones stay in the name. Every other token, such as #foo, !11 or ^someday,
// stays in the name verbatim. Text that leaves no name fails, even when it
// holds a hint: whether the hint resolves is only known when the task is
// created.
func ParseQuickAdd(text string, today time.Time) (models.TaskDraft, error) {
	draft, _, err := parseQuickAdd(text, today)
	if err != nil {
		return models.TaskDraft{}, err
	}
	if draft.Name == "" {
		return models.TaskDraft{}, noNameError()
	}
	return draft, nil
}

func noNameError() error {
	return validators.NewValidationError("text", "no task name left after parsing")
}

// parseQuickAdd parses text without requiring a name. The layout keeps the
// written order of the name words and hints.
func parseQuickAdd(text string, today time.Time) (models.TaskDraft, quickAddLayout, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return models.TaskDraft{}, quickAddLayout{}, validators.NewValidationError("text", "required")
	}

	p := quickAddParser{
		draft:  models.TaskDraft{Priority: models.DefaultPriority},
		today:  today,
		layout: quickAddLayout{words: make([]string, 0, len(tokens)), projectAt: -1, fieldAt: -1},
	}

	for _, tok := range tokens {
		if !p.apply(tok) {
			p.layout.words = append(p.layout.words, tok)
		}
	}

	p.draft.Name = p.layout.name(false, false)
	return p.draft, p.layout, nil
}

// quickAddLayout is the name words with the hint tokens at the index they
// were written. projectAt and fieldAt are -1 without a hint.
type quickAddLayout struct {
	words     []string
	projectAt int
	fieldAt   int
}

// name joins the words, keeping the project and field hint tokens only when
// asked to.
func (l quickAddLayout) name(keepProject, keepField bool) string {
	out := make([]string, 0, len(l.words))
	for i, w := range l.words {
		if (i == l.projectAt && !keepProject) || (i == l.fieldAt && !keepField) {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

type quickAddParser struct {
	draft  models.TaskDraft
	today  time.Time
	layout quickAddLayout
}

// apply records tok in the draft and reports whether it was consumed.
func (p *quickAddParser) apply(tok string) bool {
	d := &p.draft

	switch lower := strings.ToLower(tok); lower {
	case "!today", "#today":
		d.DoToday = true
		return true
	case "!week", "#week":
		d.DoThisWeek = true
		return true
	case "#wait", "#waiting":
		d.WaitFor = true
		return true
	case "#read", "#reading":
		d.IsReading = true
		return true
	case "!", "!!", "!!!":
		d.Priority = models.DefaultPriority + 2*len(lower)
		return true
	}

	switch {
	case tok[0] == '!':
		n, err := strconv.Atoi(tok[1:])
		if err != nil || n < models.MinPriority || n > models.MaxPriority || tok[1] == '+' || tok[1] == '-' {
			return false
		}
		d.Priority = n
		return true

	case tok[0] == '^':
		if d.DoOnDate != nil {
			return false
		}
		date, ok := p.date(strings.ToLower(tok[1:]))
		if !ok {
			return false
		}
		d.DoOnDate = &date
		return true

	case tok[0] == '~' && len(tok) > 1:
		if d.TimeExpenditure != "" {
			return false
		}
		d.TimeExpenditure = tok[1:]
		return true

	case tok[0] == '+' && len(tok) > 1:
		if d.ProjectHint != "" {
			return false
		}
		d.ProjectHint = tok[1:]
		p.layout.projectAt = len(p.layout.words)
		p.layout.words = append(p.layout.words, tok)
		return true

	case tok[0] == '@' && len(tok) > 1:
		if d.FieldHint != "" {
			return false
		}
		d.FieldHint = tok[1:]
		p.layout.fieldAt = len(p.layout.words)
		p.layout.words = append(p.layout.words, tok)
		return true

	case isURL(tok):
		if d.URL != "" {
			return false
		}
		d.URL = tok
		return true
	}

	return false
}

func (p *quickAddParser) date(s string) (models.Date, bool) {
	switch s {
	case "today":
		return models.NewDate(p.today), true
	case "tomorrow":
		return models.NewDate(p.today.AddDate(0, 0, 1)), true
	}

	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, false
	}
	return d, true
}

func isURL(tok string) bool {
	lower := strings.ToLower(tok)
	for _, scheme := range []string{"http://", "https://"} {
		if strings.HasPrefix(lower, scheme) && len(lower) > len(scheme) {
			return true
		}
	}
	return false
}
