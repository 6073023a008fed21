package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-gtd/internal/store"
)

const (
	prefLanguage         = "language"
	prefSidebarCollapsed = "sidebar_collapsed"
	prefPageSize         = "page_size"
	prefGroupBy          = "group_by"
	prefSessionID        = "session_id"
)

// Preferences is client-local UI state. It never leaves the machine.
type Preferences struct {
	Language         string
	SidebarCollapsed bool
	PageSize         int
	GroupBy          GroupBy
	SessionID        string
}

// PreferenceStore persists Preferences in the local key-value table.
type PreferenceStore struct {
	repo store.PreferenceRepository
}

func NewPreferenceStore(repo store.PreferenceRepository) *PreferenceStore {
	return &PreferenceStore{repo: repo}
}

// Load overlays stored values on defaults. Unparsable values are ignored.
func (p *PreferenceStore) Load(ctx context.Context, defaults Preferences) (Preferences, error) {
	stored, err := p.repo.All(ctx)
	if err != nil {
		return defaults, fmt.Errorf("error loading preferences: %w", err)
	}

	prefs := defaults
	if v, ok := stored[prefLanguage]; ok && v != "" {
		prefs.Language = v
	}
	if v, ok := stored[prefSidebarCollapsed]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			prefs.SidebarCollapsed = b
		}
	}
	if v, ok := stored[prefPageSize]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			prefs.PageSize = n
		}
	}
	if v, ok := stored[prefGroupBy]; ok && validGroupBy(GroupBy(v)) {
		prefs.GroupBy = GroupBy(v)
	}
	if v, ok := stored[prefSessionID]; ok {
		prefs.SessionID = v
	}
	return prefs, nil
}

// Save writes the UI preferences. The session id is saved separately.
func (p *PreferenceStore) Save(ctx context.Context, prefs Preferences) error {
	values := map[string]string{
		prefLanguage:         prefs.Language,
		prefSidebarCollapsed: strconv.FormatBool(prefs.SidebarCollapsed),
		prefPageSize:         strconv.Itoa(prefs.PageSize),
		prefGroupBy:          string(prefs.GroupBy),
	}
	for key, value := range values {
		if err := p.repo.Set(ctx, key, value); err != nil {
			return fmt.Errorf("error saving preference %s: %w", key, err)
		}
	}
	return nil
}

// SaveSessionID stores id, or forgets the session when id is empty.
func (p *PreferenceStore) SaveSessionID(ctx context.Context, id string) error {
	if id == "" {
		err := p.repo.Delete(ctx, prefSessionID)
		if err != nil && !errors.Is(err, store.ErrPreferenceNotFound) {
			return fmt.Errorf("error clearing session: %w", err)
		}
		return nil
	}
	if err := p.repo.Set(ctx, prefSessionID, id); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

func validGroupBy(by GroupBy) bool {
	for _, known := range GroupOrder {
		if by == known {
			return true
		}
	}
	return false
}
