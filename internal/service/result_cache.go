package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/guttosm/number-classifier/internal/domain/model"
	"github.com/guttosm/number-classifier/internal/factprovider"
	"github.com/guttosm/number-classifier/internal/logger"
	"github.com/guttosm/number-classifier/internal/metrics"
	"github.com/guttosm/number-classifier/internal/repository"
	"github.com/guttosm/number-classifier/internal/service/cache"
	"github.com/rs/zerolog"
)

// CacheStats summarizes the result cache.
type CacheStats struct {
	cache.Metrics
	PersistedFacts int
	Persistence    string
}

// ResultCache memoizes whole classifications in memory and, when a FactStore
// is attached, keeps fetched fun facts across restarts.
// Fallback facts are memoized with their classification but never persisted.
type ResultCache struct {
	results     cache.CacheWithMetrics
	store       repository.FactStore
	persistence string
	log         zerolog.Logger

	mu      sync.RWMutex
	facts   map[int]string
	pending map[int]struct{}
}

// NewResultCache creates a result cache. A nil results store defaults to an
// unbounded in-memory map; a nil store disables fact persistence.
func NewResultCache(results cache.CacheWithMetrics, store repository.FactStore, persistence string) *ResultCache {
	if results == nil {
		results = cache.NewMemoryCache()
	}
	if store == nil || persistence == "" {
		persistence = "none"
	}
	return &ResultCache{
		results:     results,
		store:       store,
		persistence: persistence,
		log:         logger.Component("result_cache"),
		facts:       make(map[int]string),
		pending:     make(map[int]struct{}),
	}
}

// Load fills the fact map from the store. On failure the cache starts empty,
// a warning is logged and the error is returned for the caller to report.
func (c *ResultCache) Load(ctx context.Context) error {
	if c.store == nil {
		return nil
	}

	facts, err := c.store.LoadAll(ctx)

	c.mu.Lock()
	c.facts = make(map[int]string, len(facts))
	if err == nil {
		for n, fact := range facts {
			if fact != "" && fact != factprovider.Fallback {
				c.facts[n] = fact
			}
		}
	}
	count := len(c.facts)
	c.mu.Unlock()

	metrics.UpdatePersistedFacts(count)
	if err != nil {
		c.log.Warn().Err(err).Str("persistence", c.persistence).Msg("failed to load persisted facts, starting empty")
		return fmt.Errorf("load facts: %w", err)
	}
	c.log.Info().Int("facts", count).Str("persistence", c.persistence).Msg("persisted facts loaded")
	return nil
}

// Get returns the memoized classification for n.
func (c *ResultCache) Get(n int) (model.Classification, bool) {
	return c.results.Get(n)
}

// Peek returns the memoized classification for n without counting the lookup.
func (c *ResultCache) Peek(n int) (model.Classification, bool) {
	return c.results.Peek(n)
}

// Fact returns a persisted fun fact for n.
func (c *ResultCache) Fact(n int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fact, ok := c.facts[n]
	return fact, ok
}

// Put memoizes result and persists its fun fact when it is new. A failed
// write is logged and retried on Flush; it never fails the request.
func (c *ResultCache) Put(ctx context.Context, result model.Classification) {
	c.results.Set(result.Number, result)

	if c.store == nil || result.FunFact == "" || result.FunFact == factprovider.Fallback {
		return
	}

	c.mu.Lock()
	if existing, ok := c.facts[result.Number]; ok && existing == result.FunFact {
		c.mu.Unlock()
		return
	}
	c.facts[result.Number] = result.FunFact
	count := len(c.facts)
	c.mu.Unlock()
	metrics.UpdatePersistedFacts(count)

	if err := c.store.Put(ctx, result.Number, result.FunFact); err != nil {
		c.mu.Lock()
		c.pending[result.Number] = struct{}{}
		c.mu.Unlock()
		c.log.Warn().Err(err).Int("number", result.Number).Msg("failed to persist fun fact")
	}
}

// Flush retries every fact whose earlier write failed.
func (c *ResultCache) Flush(ctx context.Context) error {
	if c.store == nil {
		return nil
	}

	c.mu.Lock()
	numbers := make([]int, 0, len(c.pending))
	for n := range c.pending {
		numbers = append(numbers, n)
	}
	c.mu.Unlock()
	sort.Ints(numbers)

	var errs []error
	for _, n := range numbers {
		fact, ok := c.Fact(n)
		if !ok {
			continue
		}
		if err := c.store.Put(ctx, n, fact); err != nil {
			errs = append(errs, fmt.Errorf("persist fact %d: %w", n, err))
			continue
		}
		c.mu.Lock()
		delete(c.pending, n)
		c.mu.Unlock()
	}
	return errors.Join(errs...)
}

// Close flushes pending facts, stops the in-memory store and closes the fact store.
func (c *ResultCache) Close(ctx context.Context) error {
	flushErr := c.Flush(ctx)
	c.results.Stop()
	if c.store == nil {
		return flushErr
	}
	return errors.Join(flushErr, c.store.Close(ctx))
}

// Pending returns how many facts still await a successful write.
func (c *ResultCache) Pending() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pending)
}

// Stats returns cache counters.
func (c *ResultCache) Stats() CacheStats {
	c.mu.RLock()
	persisted := len(c.facts)
	c.mu.RUnlock()
	return CacheStats{
		Metrics:        c.results.Metrics(),
		PersistedFacts: persisted,
		Persistence:    c.persistence,
	}
}
