package infra

import (
	"context"
	"errors"
	"testing"
	"time"

	"rebowork/internal/config"
	"rebowork/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("backend down")

func TestCircuitBreaker_TripsAndRecovers(t *testing.T) {
	now := time.Now()
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 2, SuccessThreshold: 1, OpenTimeout: time.Minute})
	cb.now = func() time.Time { return now }

	assert.ErrorIs(t, cb.Execute(func() error { return errDown }), errDown)
	assert.Equal(t, CBClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(func() error { return errDown }), errDown)
	assert.Equal(t, CBOpen, cb.State())

	called := false
	err := cb.Execute(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)

	now = now.Add(2 * time.Minute)
	assert.Equal(t, CBHalfOpen, cb.State())
	assert.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	now := time.Now()
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: time.Second})
	cb.now = func() time.Time { return now }

	_ = cb.Execute(func() error { return errDown })
	now = now.Add(2 * time.Second)
	require.Equal(t, CBHalfOpen, cb.State())

	_ = cb.Execute(func() error { return errDown })
	assert.Equal(t, CBOpen, cb.State())
}

func TestCircuitBreaker_IgnoresNonFailures(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 1,
		OpenTimeout:      time.Hour,
		IsFailure:        func(err error) bool { return !errors.Is(err, context.Canceled) },
	})

	assert.ErrorIs(t, cb.Execute(func() error { return context.Canceled }), context.Canceled)
	assert.Equal(t, CBClosed, cb.State())

	_ = cb.Execute(func() error { return errDown })
	assert.Equal(t, CBOpen, cb.State())
}

type flakyBackend struct {
	store.Backend
	fail bool
}

// Read honours ctx the way the network drivers do.
func (f *flakyBackend) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.fail {
		return nil, errDown
	}
	return f.Backend.Read(ctx, name)
}

func TestBreakerBackend_CancelledCallsDoNotTrip(t *testing.T) {
	flaky := &flakyBackend{Backend: store.NewMemoryBackend()}
	b := guarded(flaky, "test", CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: time.Hour}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 3; i++ {
		_, err := b.Read(ctx, store.Workers)
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, CBClosed, b.Breaker.State())

	_, err := b.Read(context.Background(), store.Workers)
	assert.NoError(t, err)
}

func TestBreakerBackend_FailsFastWhenOpen(t *testing.T) {
	flaky := &flakyBackend{Backend: store.NewMemoryBackend(), fail: true}
	b := guarded(flaky, "test", CircuitBreakerConfig{FailureThreshold: 1, OpenTimeout: time.Hour}, nil)
	ctx := context.Background()

	_, err := b.Read(ctx, store.Workers)
	assert.ErrorIs(t, err, errDown)

	flaky.fail = false
	_, err = b.Read(ctx, store.Workers)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, CBOpen, b.Breaker.State())
}

func TestNewBackend_LocalDrivers(t *testing.T) {
	ctx := context.Background()

	mem, err := NewBackend(ctx, &config.Config{StoreDriver: "memory"})
	require.NoError(t, err)
	assert.Nil(t, mem.Breaker)
	assert.NoError(t, mem.Close(ctx))

	file, err := NewBackend(ctx, &config.Config{StoreDriver: "file", StoreDir: t.TempDir()})
	require.NoError(t, err)
	assert.NoError(t, file.Ping(ctx))

	_, err = NewBackend(ctx, &config.Config{StoreDriver: "cassandra"})
	assert.Error(t, err)
}
