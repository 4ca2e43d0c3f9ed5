package petsprite

import (
	"sort"
	"sync"
	"time"
)

// DefaultMaxCacheSize is the soft capacity used when none is configured.
const DefaultMaxCacheSize = 50

// Cache is a soft-bounded key/value store that tracks when each entry was
// last read or written. Put never evicts; the store may exceed its capacity
// until Trim runs (normally from a Janitor). Between trims the size is at
// most Capacity() + InsertsSinceTrim().
//
// All methods are safe for concurrent use. A single mutex guards the map and
// the recency bookkeeping.
type Cache[V any] struct {
	mu       sync.Mutex
	entries  map[string]*cacheEntry[V]
	capacity int
	now      func() time.Time
	seq      uint64
	inserts  int
	evicted  uint64
}

type cacheEntry[V any] struct {
	key        string
	value      V
	lastAccess time.Time
	seq        uint64 // access order; breaks lastAccess ties
}

// CacheOption configures a Cache.
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	now func() time.Time
}

// WithCacheClock replaces time.Now as the source of access timestamps.
func WithCacheClock(now func() time.Time) CacheOption {
	return func(o *cacheOptions) { o.now = now }
}

// NewCache creates a cache with the given soft capacity. Non-positive
// capacities use DefaultMaxCacheSize.
func NewCache[V any](capacity int, opts ...CacheOption) *Cache[V] {
	o := cacheOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if capacity <= 0 {
		capacity = DefaultMaxCacheSize
	}
	return &Cache[V]{
		entries:  make(map[string]*cacheEntry[V]),
		capacity: capacity,
		now:      o.now,
	}
}

// touch marks e as accessed now. Caller holds mu.
func (c *Cache[V]) touch(e *cacheEntry[V]) {
	c.seq++
	e.seq = c.seq
	e.lastAccess = c.now()
}

// Get returns the value for key and refreshes its recency.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.touch(e)
	return e.value, true
}

// Peek returns the value for key without touching its recency.
func (c *Cache[V]) Peek(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores value under key, replacing any existing entry and resetting its
// recency. It never evicts.
func (c *Cache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		e = &cacheEntry[V]{key: key}
		c.entries[key] = e
		c.inserts++
	}
	e.value = value
	c.touch(e)
}

// Remove deletes key and reports whether it was present.
func (c *Cache[V]) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	return true
}

// Clear drops every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.inserts = 0
}

// Size returns the current number of entries.
func (c *Cache[V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the soft capacity.
func (c *Cache[V]) Capacity() int {
	return c.capacity
}

// InsertsSinceTrim returns how many new keys were added since the last Trim
// or Clear.
func (c *Cache[V]) InsertsSinceTrim() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inserts
}

// Evictions returns the total number of entries removed by Trim.
func (c *Cache[V]) Evictions() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evicted
}

// Keys returns the cached keys from least to most recently accessed.
func (c *Cache[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ordered := c.byRecency()
	keys := make([]string, len(ordered))
	for i, e := range ordered {
		keys[i] = e.key
	}
	return keys
}

// Trim removes the least recently accessed entries until the cache is back
// at capacity and returns how many were removed.
func (c *Cache[V]) Trim() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inserts = 0
	excess := len(c.entries) - c.capacity
	if excess <= 0 {
		return 0
	}
	for _, e := range c.byRecency()[:excess] {
		delete(c.entries, e.key)
	}
	c.evicted += uint64(excess)
	return excess
}

// byRecency returns entries sorted oldest first. Caller holds mu.
func (c *Cache[V]) byRecency() []*cacheEntry[V] {
	out := make([]*cacheEntry[V], 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].lastAccess.Equal(out[j].lastAccess) {
			return out[i].lastAccess.Before(out[j].lastAccess)
		}
		return out[i].seq < out[j].seq
	})
	return out
}
