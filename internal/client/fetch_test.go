package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-gtd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedSource serves ids 1..total in pages and records the queries it saw.
type pagedSource struct {
	total   int
	queries []Query
}

func (p *pagedSource) fetch(_ context.Context, q Query) (models.ViewPage[int], error) {
	p.queries = append(p.queries, q)
	items := []int{}
	for i := q.Offset; i < q.Offset+q.Limit && i < p.total; i++ {
		items = append(items, i+1)
	}
	return models.ViewPage[int]{Items: items, Total: p.total, Limit: q.Limit, Offset: q.Offset}, nil
}

func TestLoad_UsesCacheByFilterTuple(t *testing.T) {
	src := &pagedSource{total: 25}
	cache := NewCache[int](time.Minute)
	state := NewListState(ViewTasks, 10, 100)
	ctx := context.Background()

	page, err := Load(ctx, state, cache, src.fetch)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, page.Items)
	assert.Equal(t, 25, state.Total)

	_, err = Load(ctx, state, cache, src.fetch)
	require.NoError(t, err)
	assert.Len(t, src.queries, 1, "second load is served from cache")

	state.SetSearch("x")
	_, err = Load(ctx, state, cache, src.fetch)
	require.NoError(t, err)
	assert.Len(t, src.queries, 2)

	cache.Invalidate()
	_, err = Load(ctx, state, cache, src.fetch)
	require.NoError(t, err)
	assert.Len(t, src.queries, 3)
}

func TestCache_Expires(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	cache := NewCache[int](time.Minute)
	cache.now = func() time.Time { return now }

	key := CacheKey{View: ViewTasks, Page: 1}
	cache.Put(key, models.ViewPage[int]{Items: []int{1}})

	_, ok := cache.Get(key)
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = cache.Get(key)
	assert.False(t, ok)
}

func TestLoad_ShowAllFetchesEveryPage(t *testing.T) {
	src := &pagedSource{total: 7}
	state := NewListState(ViewProjects, 2, 3)
	state.SetShowAll(true)

	page, err := Load(context.Background(), state, nil, src.fetch)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, page.Items)
	assert.Equal(t, 7, page.Total)
	assert.Len(t, src.queries, 3)
	for _, q := range src.queries {
		assert.Equal(t, 3, q.Limit)
	}
}

func TestFetchAll_EmptyAndError(t *testing.T) {
	src := &pagedSource{total: 0}
	page, err := FetchAll(context.Background(), Query{}, 10, src.fetch)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)

	boom := errors.New("boom")
	_, err = FetchAll(context.Background(), Query{}, 10, func(context.Context, Query) (models.ViewPage[int], error) {
		return models.ViewPage[int]{}, boom
	})
	assert.ErrorIs(t, err, boom)
}
