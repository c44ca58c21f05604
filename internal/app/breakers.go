package app

import (
	"time"

	"github.com/guttosm/number-classifier/internal/circuitbreaker"
	"github.com/guttosm/number-classifier/internal/metrics"
)

// newCircuitBreaker creates a breaker whose state is exported as a gauge.
func newCircuitBreaker(name string, failureThreshold, successThreshold int, timeout time.Duration) *circuitbreaker.CircuitBreaker {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: failureThreshold,
		SuccessThreshold: successThreshold,
		Timeout:          timeout,
		Name:             name,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return cb
}
