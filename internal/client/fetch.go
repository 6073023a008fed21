package client

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-gtd/models"
)

// Fetcher loads one page of a collection.
type Fetcher[T any] func(ctx context.Context, q Query) (models.ViewPage[T], error)

// Cache keeps fetched pages under their filter tuple for ttl.
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[CacheKey]cacheEntry[T]
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry[T any] struct {
	page    models.ViewPage[T]
	fetched time.Time
}

func NewCache[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		entries: make(map[CacheKey]cacheEntry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *Cache[T]) Get(key CacheKey) (models.ViewPage[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || c.now().Sub(entry.fetched) > c.ttl {
		return models.ViewPage[T]{}, false
	}
	return entry.page, true
}

func (c *Cache[T]) Put(key CacheKey, page models.ViewPage[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry[T]{page: page, fetched: c.now()}
}

// Invalidate drops everything; any write can change every page.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Load returns the items for state, from cache when possible, and records
// the total in state.
func Load[T any](ctx context.Context, state *ListState, cache *Cache[T], fetch Fetcher[T]) (models.ViewPage[T], error) {
	key := state.Key()
	if cache != nil {
		if page, ok := cache.Get(key); ok {
			state.Apply(page.Total)
			return page, nil
		}
	}

	var (
		page models.ViewPage[T]
		err  error
	)
	if state.ShowAll {
		page, err = FetchAll(ctx, state.Query(), state.maxPageSize, fetch)
	} else {
		page, err = fetch(ctx, state.Query())
	}
	if err != nil {
		return models.ViewPage[T]{}, err
	}

	if cache != nil {
		cache.Put(key, page)
	}
	state.Apply(page.Total)
	return page, nil
}

// FetchAll walks every page of q with batch-sized requests.
func FetchAll[T any](ctx context.Context, q Query, batch int, fetch Fetcher[T]) (models.ViewPage[T], error) {
	if batch <= 0 {
		batch = models.MaxLimit
	}
	q.Limit = batch
	q.Offset = 0

	all := make([]T, 0)
	total := 0
	for {
		page, err := fetch(ctx, q)
		if err != nil {
			return models.ViewPage[T]{}, err
		}
		all = append(all, page.Items...)
		total = page.Total

		q.Offset += len(page.Items)
		if len(page.Items) == 0 || q.Offset >= total {
			break
		}
	}

	return models.ViewPage[T]{Items: all, Total: total, Limit: len(all), Offset: 0}, nil
}
