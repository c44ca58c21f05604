package repository

import (
	"context"

	"github.com/guttosm/number-classifier/internal/circuitbreaker"
)

// FactStoreWithCircuitBreaker wraps a FactStore with circuit breaker protection.
type FactStoreWithCircuitBreaker struct {
	store          FactStore
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewFactStoreWithCircuitBreaker creates a new store wrapper with circuit breaker.
func NewFactStoreWithCircuitBreaker(store FactStore, cb *circuitbreaker.CircuitBreaker) *FactStoreWithCircuitBreaker {
	return &FactStoreWithCircuitBreaker{
		store:          store,
		circuitBreaker: cb,
	}
}

// LoadAll loads every fact with circuit breaker protection.
func (r *FactStoreWithCircuitBreaker) LoadAll(ctx context.Context) (map[int]string, error) {
	facts := map[int]string{}
	err := r.circuitBreaker.Execute(ctx, func() error {
		loaded, cbErr := r.store.LoadAll(ctx)
		if loaded != nil {
			facts = loaded
		}
		return cbErr
	})
	return facts, err
}

// Put persists a fact with circuit breaker protection.
func (r *FactStoreWithCircuitBreaker) Put(ctx context.Context, number int, fact string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.store.Put(ctx, number, fact)
	})
}

// Close closes the wrapped store. It is not guarded by the breaker.
func (r *FactStoreWithCircuitBreaker) Close(ctx context.Context) error {
	return r.store.Close(ctx)
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *FactStoreWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
