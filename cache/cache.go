// Package cache provides the small caching interface the verifier uses to
// memoize deterministic verification results.
package cache

import (
	"time"

	"github.com/karlseguin/ccache/v3"
)

// ICache is a generic interface for a cache implementation.
type ICache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Len() int
}

type inMemoryCache[T any] struct {
	cache *ccache.Cache[T]
	ttl   time.Duration
}

// NewInMemoryCache creates an in-memory cache bounded to size entries,
// each kept for the given TTL.
func NewInMemoryCache[T any](size int64, ttl time.Duration) ICache[T] {
	return &inMemoryCache[T]{
		cache: ccache.New(ccache.Configure[T]().MaxSize(size)),
		ttl:   ttl,
	}
}

// Get retrieves an item from the cache by its key.
func (c *inMemoryCache[T]) Get(key string) (T, bool) {
	item := c.cache.Get(key)
	if item == nil || item.Expired() {
		var zero T
		return zero, false
	}
	return item.Value(), true
}

// Set adds an item to the cache under the given key.
func (c *inMemoryCache[T]) Set(key string, value T) {
	c.cache.Set(key, value, c.ttl)
}

// Len returns the number of items currently in the cache.
func (c *inMemoryCache[T]) Len() int {
	return c.cache.ItemCount()
}
