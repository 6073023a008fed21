package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryStore(ttl time.Duration, now *time.Time) *MemoryStore {
	s := NewMemoryStore(ttl)
	s.now = func() time.Time { return *now }
	return s
}

func TestMemoryStore_CreateGet(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	s := newTestMemoryStore(time.Hour, &now)
	ctx := context.Background()

	created, err := s.Create(ctx, 7, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, now.Add(time.Hour), created.ExpiresAt)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	s := newTestMemoryStore(time.Minute, &now)
	ctx := context.Background()

	sess, err := s.Create(ctx, 1, "bob")
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	require.NoError(t, s.Touch(ctx, sess.ID))

	now = now.Add(45 * time.Second)
	_, err = s.Get(ctx, sess.ID)
	require.NoError(t, err, "touch should have extended the session")

	now = now.Add(time.Minute)
	_, err = s.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, s.Touch(ctx, sess.ID), ErrSessionNotFound)
}

func TestMemoryStore_DeleteAndSweep(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	s := newTestMemoryStore(time.Minute, &now)
	ctx := context.Background()

	a, _ := s.Create(ctx, 1, "a")
	_, _ = s.Create(ctx, 2, "b")
	require.NoError(t, s.Delete(ctx, a.ID))
	assert.Equal(t, 1, s.Len())

	now = now.Add(2 * time.Minute)
	_, _ = s.Create(ctx, 3, "c")
	require.NoError(t, s.Sweep(ctx))
	assert.Equal(t, 1, s.Len())
}
