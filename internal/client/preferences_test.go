package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-gtd/internal/mock"
	"github.com/MKhiriev/go-gtd/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPreferenceStore_LoadOverlaysDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().All(gomock.Any()).Return(map[string]string{
		"language":          "de",
		"sidebar_collapsed": "true",
		"page_size":         "not-a-number",
		"group_by":          "field",
		"session_id":        "abc",
	}, nil)

	prefs, err := NewPreferenceStore(repo).Load(context.Background(), Preferences{Language: "en", PageSize: 20})
	require.NoError(t, err)

	assert.Equal(t, Preferences{
		Language:         "de",
		SidebarCollapsed: true,
		PageSize:         20,
		GroupBy:          GroupField,
		SessionID:        "abc",
	}, prefs)
}

func TestPreferenceStore_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().All(gomock.Any()).Return(nil, errors.New("disk"))

	defaults := Preferences{PageSize: 20}
	prefs, err := NewPreferenceStore(repo).Load(context.Background(), defaults)
	assert.Error(t, err)
	assert.Equal(t, defaults, prefs)
}

func TestPreferenceStore_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Set(gomock.Any(), "language", "en").Return(nil)
	repo.EXPECT().Set(gomock.Any(), "sidebar_collapsed", "false").Return(nil)
	repo.EXPECT().Set(gomock.Any(), "page_size", "30").Return(nil)
	repo.EXPECT().Set(gomock.Any(), "group_by", "status").Return(nil)

	err := NewPreferenceStore(repo).Save(context.Background(), Preferences{Language: "en", PageSize: 30, GroupBy: GroupStatus})
	assert.NoError(t, err)
}

func TestPreferenceStore_SaveSessionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Set(gomock.Any(), "session_id", "s-1").Return(nil)
	repo.EXPECT().Delete(gomock.Any(), "session_id").Return(store.ErrPreferenceNotFound)

	prefs := NewPreferenceStore(repo)
	assert.NoError(t, prefs.SaveSessionID(context.Background(), "s-1"))
	assert.NoError(t, prefs.SaveSessionID(context.Background(), ""))
}
