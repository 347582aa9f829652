package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransient = errors.New("transient")

func fastPolicy() Policy {
	return Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, Multiplier: 2.0}
}

func TestPolicy_Delay(t *testing.T) {
	p := Policy{MaxAttempts: 4, BaseDelay: 100 * time.Millisecond, Multiplier: 2.0}

	assert.Equal(t, time.Duration(0), p.Delay(1))
	assert.Equal(t, 100*time.Millisecond, p.Delay(2))
	assert.Equal(t, 200*time.Millisecond, p.Delay(3))
	assert.Equal(t, 400*time.Millisecond, p.Delay(4))
}

func TestPolicy_Do(t *testing.T) {
	always := func(error) bool { return true }
	ctx := context.Background()

	t.Run("first attempt succeeds without delay", func(t *testing.T) {
		calls := 0
		err := fastPolicy().Do(ctx, always, func(context.Context) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := fastPolicy().Do(ctx, always, func(context.Context) error {
			calls++
			if calls < 3 {
				return errTransient
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error after exhaustion", func(t *testing.T) {
		calls := 0
		err := fastPolicy().Do(ctx, always, func(context.Context) error {
			calls++
			return errTransient
		})
		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable error returns immediately", func(t *testing.T) {
		terminal := errors.New("terminal")
		calls := 0
		err := fastPolicy().Do(ctx, func(err error) bool {
			return !errors.Is(err, terminal)
		}, func(context.Context) error {
			calls++
			return terminal
		})
		assert.ErrorIs(t, err, terminal)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context aborts the backoff", func(t *testing.T) {
		p := Policy{MaxAttempts: 3, BaseDelay: time.Minute, Multiplier: 2.0}
		ctx, cancel := context.WithCancel(context.Background())

		calls := 0
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		err := p.Do(ctx, always, func(context.Context) error {
			calls++
			return errTransient
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls, "no attempt should run after cancellation")
	})

	t.Run("zero max attempts still runs once", func(t *testing.T) {
		p := Policy{}
		calls := 0
		err := p.Do(ctx, always, func(context.Context) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, DefaultMaxAttempts, p.MaxAttempts)
	assert.Equal(t, DefaultBaseDelay, p.BaseDelay)
	assert.Equal(t, DefaultMultiplier, p.Multiplier)
}
