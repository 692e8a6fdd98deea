package cache

import (
	"sync"
	"time"

	"github.com/narwhalmedia/cinedex/pkg/interfaces"
)

type entry[V any] struct {
	value      V
	expiration time.Time
}

// InMemoryCache is a mutex-guarded map with optional expiry. A zero ttl keeps
// entries until they are deleted, which suits values derived from a catalog
// that never changes after load.
type InMemoryCache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

var _ interfaces.Cache[string, int] = (*InMemoryCache[string, int])(nil)

// NewInMemoryCache creates a cache whose entries live for ttl (0 = forever).
func NewInMemoryCache[K comparable, V any](ttl time.Duration) *InMemoryCache[K, V] {
	return &InMemoryCache[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *InMemoryCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if !e.expiration.IsZero() && c.now().After(e.expiration) {
		c.Delete(key)
		return zero, false
	}
	return e.value, true
}

func (c *InMemoryCache[K, V]) Set(key K, value V) {
	e := entry[V]{value: value}
	if c.ttl > 0 {
		e.expiration = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}

func (c *InMemoryCache[K, V]) Delete(key K) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *InMemoryCache[K, V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[K]entry[V])
	c.mu.Unlock()
}

// Len counts entries, including expired ones not yet evicted.
func (c *InMemoryCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetOrCompute returns the cached value or stores and returns fn().
func (c *InMemoryCache[K, V]) GetOrCompute(key K, fn func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := fn()
	c.Set(key, v)
	return v
}
