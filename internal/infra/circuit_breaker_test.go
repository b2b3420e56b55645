package infra_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Jhanky/Energy4Cero-sub001/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func newTestBreaker(openTimeout time.Duration) *infra.CircuitBreaker {
	return infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		OpenTimeout:      openTimeout,
	})
}

func trip(t *testing.T, cb *infra.CircuitBreaker, failures int) {
	t.Helper()
	for i := 0; i < failures; i++ {
		err := cb.Execute(func() error { return errBoom })
		require.ErrorIs(t, err, errBoom)
	}
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := newTestBreaker(time.Minute)
	assert.Equal(t, infra.CBClosed, cb.State())

	trip(t, cb, 3)
	assert.Equal(t, infra.CBOpen, cb.State())

	// While open, calls fail fast without running fn.
	ran := false
	err := cb.Execute(func() error { ran = true; return nil })
	assert.ErrorIs(t, err, infra.ErrCircuitOpen)
	assert.False(t, ran)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := newTestBreaker(time.Minute)

	trip(t, cb, 2)
	require.NoError(t, cb.Execute(func() error { return nil }))

	// The streak restarted — two more failures must not be enough.
	trip(t, cb, 2)
	assert.Equal(t, infra.CBClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenProbeClosesAfterSuccesses(t *testing.T) {
	cb := newTestBreaker(10 * time.Millisecond)
	trip(t, cb, 3)
	require.Equal(t, infra.CBOpen, cb.State())

	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, infra.CBHalfOpen, cb.State())

	// Two consecutive probe successes close the breaker.
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, infra.CBClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenProbeFailureReopens(t *testing.T) {
	cb := newTestBreaker(10 * time.Millisecond)
	trip(t, cb, 3)

	time.Sleep(15 * time.Millisecond)
	require.Equal(t, infra.CBHalfOpen, cb.State())

	err := cb.Execute(func() error { return errBoom })
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, infra.CBOpen, cb.State())
}

func TestCircuitBreaker_StateString(t *testing.T) {
	assert.Equal(t, "closed", infra.CBClosed.String())
	assert.Equal(t, "open", infra.CBOpen.String())
	assert.Equal(t, "half-open", infra.CBHalfOpen.String())
}
