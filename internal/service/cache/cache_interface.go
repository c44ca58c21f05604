// Package cache holds the in-memory stores that memoize classifications by number.
package cache

import (
	"time"

	"github.com/guttosm/number-classifier/internal/domain/model"
)

// Cache defines the interface for cache operations.
type Cache interface {
	Get(key int) (model.Classification, bool)
	// Peek looks key up without touching hit/miss counters or recency.
	Peek(key int) (model.Classification, bool)
	Set(key int, value model.Classification)
	Invalidate(key int)
	Clear()
	Len() int
	Stop()
}

// Metrics provides cache performance metrics.
// Capacity is zero for unbounded stores.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}

// New returns an unbounded store when capacity is not positive, and a
// sharded LRU bounded to capacity entries otherwise. A zero ttl never expires.
func New(capacity int, ttl time.Duration, shards int) CacheWithMetrics {
	if capacity <= 0 {
		return NewMemoryCache()
	}
	return NewShardedCache(capacity, ttl, shards)
}
