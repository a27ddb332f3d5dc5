package retry

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"
)

// Hook is called before each retry wait with the attempt number that just
// failed (starting at 1), the upcoming wait duration, and the error.
type Hook func(attempt int, wait time.Duration, err error)

// Config defines retry behavior.
type Config struct {
	// Tries is the total number of attempts (first call + retries).
	// Values <= 0 are treated as 1.
	Tries int

	// Delay is the wait before the first retry.
	Delay time.Duration

	// Backoff scales the delay after each retry. Values < 1 are treated
	// as 1 (constant delay).
	Backoff float64

	// Jitter randomizes each wait to delay * (1 ± Jitter). Clamped to
	// [0, 1]; 0 disables jitter.
	Jitter float64

	// OnRetry is reported on every retry attempt. Nil falls back to a
	// slog warning.
	OnRetry Hook
}

// Default provides sensible defaults for transient automation errors.
var Default = Config{
	Tries:   3,
	Delay:   1 * time.Second,
	Backoff: 2.0,
	Jitter:  0.1,
}

// Test seams, overridden in retry_test.go.
var (
	sleep = func(ctx context.Context, d time.Duration) error {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			return nil
		}
	}
	randFloat = rand.Float64
)

// Do calls fn up to cfg.Tries times, waiting between attempts with jittered
// exponential backoff. It returns the first nil error from fn, or the last
// attempt's error unchanged if every attempt fails.
//
// Context cancellation during a wait aborts immediately; the returned error
// then carries both ctx.Err() and the last operation error.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	tries := cfg.Tries
	if tries <= 0 {
		tries = 1
	}
	backoff := cfg.Backoff
	if backoff < 1 {
		backoff = 1
	}
	jitter := cfg.Jitter
	if jitter < 0 {
		jitter = 0
	}
	if jitter > 1 {
		jitter = 1
	}

	delay := cfg.Delay
	var err error

	for attempt := 1; attempt <= tries; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if attempt == tries {
			break
		}

		wait := jittered(delay, jitter)
		notify(cfg.OnRetry, attempt, wait, err)

		if serr := sleep(ctx, wait); serr != nil {
			return errors.Join(serr, err)
		}
		delay = time.Duration(float64(delay) * backoff)
	}

	return err
}

// DoValue is Do for operations that produce a value. On failure the zero
// value is returned alongside the last error.
func DoValue[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var out T
	err := Do(ctx, cfg, func() error {
		v, err := fn()
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// jittered returns d scaled by a uniform factor in [1-j, 1+j]. With j
// clamped to [0, 1] the factor cannot go negative.
func jittered(d time.Duration, j float64) time.Duration {
	if j == 0 || d <= 0 {
		return d
	}
	return time.Duration(float64(d) * (1 + j*(2*randFloat()-1)))
}

func notify(hook Hook, attempt int, wait time.Duration, err error) {
	if hook != nil {
		hook(attempt, wait, err)
		return
	}
	slog.Warn("operation failed, retrying",
		"attempt", attempt,
		"wait", wait,
		"error", err)
}
