package provider

import (
	"context"
	"errors"
	"time"

	"github.com/ZaguanLabs/locdisplay"
)

// RetryConfig holds configuration for retry behavior.
type RetryConfig struct {
	MaxRetries int           // Maximum number of retry attempts
	BaseDelay  time.Duration // Initial delay between retries
	MaxDelay   time.Duration // Maximum delay between retries

	// OnRetry, if set, is called before each wait.
	OnRetry func(attempt int, delay time.Duration, err error)
}

// DefaultRetryConfig keeps retries short: a location change is not worth
// more than a couple of seconds of waiting.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 2,
		BaseDelay:  250 * time.Millisecond,
		MaxDelay:   2 * time.Second,
	}
}

// backoff returns the wait after a failed attempt. A RetryAfter hint on the
// ProviderError replaces the exponential step; MaxDelay caps both.
func (c RetryConfig) backoff(attempt int, err error) time.Duration {
	delay := c.BaseDelay * time.Duration(1<<attempt)

	var providerErr *locdisplay.ProviderError
	if errors.As(err, &providerErr) && providerErr.RetryAfter > 0 {
		delay = providerErr.RetryAfter
	}
	if c.MaxDelay > 0 && delay > c.MaxDelay {
		delay = c.MaxDelay
	}
	return delay
}

// RetryFunc is a function that can be retried.
type RetryFunc[T any] func() (T, error)

// WithRetry runs fn until it succeeds, fails with an error IsRetryable
// rejects, or runs out of attempts. It gives up early when the next wait
// would outlast the context deadline and returns the last error.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn RetryFunc[T]) (T, error) {
	var zero T

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !IsRetryable(err) || attempt >= cfg.MaxRetries {
			return zero, err
		}

		delay := cfg.backoff(attempt, err)
		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < delay {
			return zero, err
		}
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt+1, delay, err)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}
}

// IsRetryable reports whether err is a ProviderError marked retryable.
func IsRetryable(err error) bool {
	var providerErr *locdisplay.ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}
	return false
}
