package retry

import (
	"context"
	"time"
)

// Defaults for the booking conflict policy.
const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 100 * time.Millisecond
	DefaultMultiplier  = 2.0
)

// Policy is a bounded retry-with-exponential-backoff policy. Only errors the
// caller's predicate accepts are retried; everything else is returned as-is
// on the first attempt.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

// DefaultPolicy returns the policy used for booking write conflicts.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
		Multiplier:  DefaultMultiplier,
	}
}

// Delay returns the backoff before attempt number attempt (1-based).
// There is no delay before the first attempt.
func (p Policy) Delay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	d := p.BaseDelay
	for i := 2; i < attempt; i++ {
		d = time.Duration(float64(d) * p.Multiplier)
	}
	return d
}

// Do runs fn up to MaxAttempts times. A failed attempt is retried only when
// retryable(err) is true and attempts remain; the backoff sleep respects ctx,
// so a caller deadline aborts the loop with ctx.Err(). The last attempt's
// error is returned after exhaustion.
func (p Policy) Do(ctx context.Context, retryable func(error) bool, fn func(ctx context.Context) error) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if delay := p.Delay(attempt); delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}
