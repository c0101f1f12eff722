package fontsource

import "sync"

// cache is a generic thread-safe glyph cache with a soft limit. When the
// cache exceeds the limit, the least recently used entries are evicted in
// a batch.
type cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64 // monotonic access counter
}

type cacheEntry[V any] struct {
	value V
	atime int64 // access time (tick value)
}

// newCache creates a cache with the given soft limit.
// A softLimit of 0 disables caching: every Get misses, Set is a no-op.
func newCache[K comparable, V any](softLimit int) *cache[K, V] {
	return &cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// get retrieves a value and marks it recently used.
func (c *cache[K, V]) get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	entry.atime = c.tick
	return entry.value, true
}

// set stores a value, evicting old entries when over the soft limit.
func (c *cache[K, V]) set(key K, value V) {
	if c.softLimit == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[key] = &cacheEntry[V]{value: value, atime: c.tick}
	if len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// len returns the number of cached entries.
func (c *cache[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest removes the least recently used quarter of the cache so that
// eviction cost is amortized. Caller must hold c.mu.
func (c *cache[K, V]) evictOldest() {
	targetSize := c.softLimit * 3 / 4
	if targetSize < 1 {
		targetSize = 1
	}
	for len(c.entries) > targetSize {
		var oldestKey K
		oldest := int64(-1)
		for k, e := range c.entries {
			if oldest < 0 || e.atime < oldest {
				oldest = e.atime
				oldestKey = k
			}
		}
		delete(c.entries, oldestKey)
	}
}
