package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/number-classifier/internal/domain/model"
	"github.com/guttosm/number-classifier/internal/metrics"
)

// ShardedCache is a bounded LRU spread over independently locked shards.
type ShardedCache struct {
	shards    []*lruCache
	shardMask int
}

// NewShardedCache creates a sharded LRU holding at most capacity entries in total.
// numShards is rounded up to a power of two; non-positive values mean 16.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}
	// never more shards than entries, or per-shard capacity would round to zero
	for n > 1 && n > capacity {
		n /= 2
	}

	// the first capacity%n shards hold one extra entry so the total is exact
	perShard, extra := capacity/n, capacity%n
	if perShard < 1 {
		perShard, extra = 1, 0
	}

	shards := make([]*lruCache, n)
	for i := range shards {
		size := perShard
		if i < extra {
			size++
		}
		shards[i] = newLRUCache(size, ttl)
	}
	return &ShardedCache{shards: shards, shardMask: n - 1}
}

func (sc *ShardedCache) shard(key int) *lruCache {
	return sc.shards[key&sc.shardMask]
}

// Get retrieves a value from the appropriate shard.
func (sc *ShardedCache) Get(key int) (model.Classification, bool) {
	return sc.shard(key).Get(key)
}

// Peek retrieves a value without counting the lookup or refreshing its recency.
func (sc *ShardedCache) Peek(key int) (model.Classification, bool) {
	return sc.shard(key).Peek(key)
}

// Set stores a value in the appropriate shard.
func (sc *ShardedCache) Set(key int, value model.Classification) {
	sc.shard(key).Set(key, value)
	metrics.UpdateCacheSize(sc.Len())
}

// Invalidate removes a key from the appropriate shard.
func (sc *ShardedCache) Invalidate(key int) {
	sc.shard(key).Invalidate(key)
}

// Clear removes all entries from all shards.
func (sc *ShardedCache) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
	metrics.UpdateCacheSize(0)
}

// Len returns the number of entries across shards.
func (sc *ShardedCache) Len() int {
	total := 0
	for _, s := range sc.shards {
		total += s.Len()
	}
	return total
}

// Stop shuts down the expiry goroutines of all shards.
func (sc *ShardedCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics returns aggregated metrics from all shards.
func (sc *ShardedCache) Metrics() Metrics {
	var total Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// lruCache is a single LRU shard with optional TTL expiration.
type lruCache struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[int]*entry
	head      *entry
	tail      *entry
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
}

type entry struct {
	key       int
	value     model.Classification
	expiresAt time.Time
	prev      *entry
	next      *entry
}

func newLRUCache(capacity int, ttl time.Duration) *lruCache {
	c := &lruCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[int]*entry, capacity),
		stopCh:   make(chan struct{}),
	}
	if ttl > 0 {
		go c.startCleanup(cleanupInterval(ttl))
	}
	return c
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl < time.Minute {
		return ttl
	}
	return time.Minute
}

func (c *lruCache) expired(e *entry, now time.Time) bool {
	return c.ttl > 0 && now.After(e.expiresAt)
}

func (c *lruCache) Get(key int) (model.Classification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return model.Classification{}, false
	}
	if c.expired(e, time.Now()) {
		c.removeEntry(e)
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return model.Classification{}, false
	}

	c.moveToFront(e)
	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return e.value.Clone(), true
}

func (c *lruCache) Peek(key int) (model.Classification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok || c.expired(e, time.Now()) {
		return model.Classification{}, false
	}
	return e.value.Clone(), true
}

// Set adds or replaces key. When the shard is over capacity the least
// recently used entry is evicted.
func (c *lruCache) Set(key int, value model.Classification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)
	if e, ok := c.items[key]; ok {
		e.value = value.Clone()
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value.Clone(), expiresAt: expiresAt}
	c.items[key] = e
	c.addToFront(e)

	if len(c.items) > c.capacity {
		c.removeTail()
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

func (c *lruCache) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *lruCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, e := range c.items {
		if c.expired(e, now) {
			c.removeEntry(e)
			metrics.RecordCacheOperation("evict", "expired")
		}
	}
}

func (c *lruCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *lruCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *lruCache) Metrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

func (c *lruCache) Invalidate(key int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.removeEntry(e)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

func (c *lruCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[int]*entry, c.capacity)
	c.head = nil
	c.tail = nil
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)
	metrics.RecordCacheOperation("clear", "success")
}

func (c *lruCache) removeEntry(e *entry) {
	delete(c.items, e.key)
	c.unlink(e)
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.unlink(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

func (c *lruCache) removeTail() {
	if c.tail == nil {
		return
	}
	c.removeEntry(c.tail)
}
