//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("boom")

func failing() error { return errBoom }

func succeeding() error { return nil }

func testBreaker(failures, successes int, timeout time.Duration) *CircuitBreaker {
	return New(Config{
		FailureThreshold: failures,
		SuccessThreshold: successes,
		Timeout:          timeout,
		Name:             "test",
	})
}

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := New(DefaultConfig())

	err := cb.Execute(context.Background(), succeeding)

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := testBreaker(2, 1, 100*time.Millisecond)

	assert.Equal(t, errBoom, cb.Execute(context.Background(), failing))
	assert.Equal(t, StateClosed, cb.State())

	assert.Equal(t, errBoom, cb.Execute(context.Background(), failing))
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.Equal(t, ErrCircuitOpen, err)
	assert.False(t, called, "fn must not run while the circuit is open")
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := testBreaker(2, 2, 50*time.Millisecond)

	_ = cb.Execute(context.Background(), failing)
	_ = cb.Execute(context.Background(), failing)
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	assert.NoError(t, cb.Execute(context.Background(), succeeding))
	assert.Equal(t, StateHalfOpen, cb.State())

	assert.NoError(t, cb.Execute(context.Background(), succeeding))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpen_Failure(t *testing.T) {
	cb := testBreaker(2, 2, 50*time.Millisecond)

	_ = cb.Execute(context.Background(), failing)
	_ = cb.Execute(context.Background(), failing)
	time.Sleep(60 * time.Millisecond)

	assert.Error(t, cb.Execute(context.Background(), failing))
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_ContextCancellation(t *testing.T) {
	cb := testBreaker(1, 1, time.Minute)

	t.Run("done context short-circuits", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := cb.Execute(ctx, func() error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("cancellation inside fn is not a failure", func(t *testing.T) {
		err := cb.Execute(context.Background(), func() error {
			return context.Canceled
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, StateClosed, cb.State())
	})
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	var mu sync.Mutex
	var transitions []string

	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          20 * time.Millisecond,
		Name:             "facts",
		OnStateChange: func(name string, from, to State) {
			mu.Lock()
			defer mu.Unlock()
			transitions = append(transitions, name+":"+from.String()+"->"+to.String())
		},
	})

	_ = cb.Execute(context.Background(), failing)
	time.Sleep(30 * time.Millisecond)
	_ = cb.Execute(context.Background(), succeeding)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"facts:closed->open",
		"facts:open->half-open",
		"facts:half-open->closed",
	}, transitions)
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(DefaultConfig())

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Equal(t, 0, stats.FailureCount)

	_ = cb.Execute(context.Background(), failing)

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestCircuitBreaker_IsOpen(t *testing.T) {
	cb := testBreaker(1, 1, 100*time.Millisecond)
	assert.False(t, cb.IsOpen())

	_ = cb.Execute(context.Background(), failing)

	assert.True(t, cb.IsOpen())
}

func TestNew_AppliesDefaults(t *testing.T) {
	cb := New(Config{})

	assert.Equal(t, DefaultConfig().FailureThreshold, cb.config.FailureThreshold)
	assert.Equal(t, DefaultConfig().SuccessThreshold, cb.config.SuccessThreshold)
	assert.Equal(t, DefaultConfig().Timeout, cb.config.Timeout)
	assert.Equal(t, "circuit-breaker", cb.Name())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}
