package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisStore_EmptyID(t *testing.T) {
	s := NewRedisStore(unreachableClient(t), time.Hour)

	_, err := s.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_BackendErrors(t *testing.T) {
	s := NewRedisStore(unreachableClient(t), time.Hour)
	ctx := context.Background()

	_, err := s.Create(ctx, 1, "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error storing session")

	_, err = s.Get(ctx, "abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)

	err = s.Delete(ctx, "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error deleting session")
}

func TestKey(t *testing.T) {
	assert.Equal(t, "gtd:session:abc", key("abc"))
}
