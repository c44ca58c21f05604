package cache

import (
	"sync"
	"sync/atomic"

	"github.com/guttosm/number-classifier/internal/domain/model"
	"github.com/guttosm/number-classifier/internal/metrics"
)

// MemoryCache keeps every entry for the life of the process.
// Concurrent writers of the same key race; the last one wins.
type MemoryCache struct {
	mu     sync.RWMutex
	items  map[int]model.Classification
	hits   int64
	misses int64
}

// NewMemoryCache creates an empty unbounded cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: make(map[int]model.Classification)}
}

// Get returns a copy of the entry stored under key.
func (c *MemoryCache) Get(key int) (model.Classification, bool) {
	c.mu.RLock()
	value, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return model.Classification{}, false
	}
	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return value.Clone(), true
}

// Peek returns a copy of the entry stored under key without counting the lookup.
func (c *MemoryCache) Peek(key int) (model.Classification, bool) {
	c.mu.RLock()
	value, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return model.Classification{}, false
	}
	return value.Clone(), true
}

// Set stores a copy of value under key.
func (c *MemoryCache) Set(key int, value model.Classification) {
	c.mu.Lock()
	c.items[key] = value.Clone()
	size := len(c.items)
	c.mu.Unlock()

	metrics.RecordCacheOperation("set", "success")
	metrics.UpdateCacheSize(size)
}

// Invalidate removes key from the cache.
func (c *MemoryCache) Invalidate(key int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; ok {
		delete(c.items, key)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear removes all entries and resets the counters.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[int]model.Classification)
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	metrics.RecordCacheOperation("clear", "success")
	metrics.UpdateCacheSize(0)
}

// Len returns the number of entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop is a no-op; MemoryCache owns no goroutines.
func (c *MemoryCache) Stop() {}

// Metrics returns current cache performance metrics.
func (c *MemoryCache) Metrics() Metrics {
	return Metrics{
		Hits:   atomic.LoadInt64(&c.hits),
		Misses: atomic.LoadInt64(&c.misses),
		Size:   c.Len(),
	}
}
