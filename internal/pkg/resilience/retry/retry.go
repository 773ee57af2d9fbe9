// Package retry provides a configurable retry mechanism for operations that may fail temporarily.
// It wraps the retry-go package from Avast and exposes a simple interface with functional
// options for customizing retry behavior.
//
// Exponential backoff is used by default. WithFixedDelay switches to a constant
// interval, which is what status polling loops want.
//
// Basic usage:
//
//	r := retry.New(retry.WithAttempts(120), retry.WithDelay(500*time.Millisecond), retry.WithFixedDelay())
//	err := r.Execute(ctx, func() error {
//	    done, err := poll(ctx)
//	    if err != nil {
//	        return retry.Unrecoverable(err) // stop immediately
//	    }
//	    if !done {
//	        return errNotYet // try again after the delay
//	    }
//	    return nil
//	})
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs operation until it returns nil, returns an error wrapped
	// with Unrecoverable, the attempts are exhausted, or ctx is done.
	//
	// The operation must be safe to call multiple times.
	//
	// Execute returns nil on success. Otherwise it returns the last error
	// (or all of them when WithLastErrorOnly(false) is set), or the context error.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // maximum number of attempts
	delay       time.Duration // base delay between attempts
	maxDelay    time.Duration // maximum delay between attempts
	lastErrOnly bool          // whether to return only the last error
	fixedDelay  bool          // use a constant delay instead of exponential backoff
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates a Retry configured with the provided options.
//
// Defaults:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
//   - fixedDelay:  false (exponential backoff)
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	delayType := retry.BackOffDelay
	if r.cfg.fixedDelay {
		delayType = retry.FixedDelay
	}

	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(delayType),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	return retry.Do(operation, options...)
}

// Unrecoverable marks err as final: Execute stops and returns it without
// further attempts. errors.Is and errors.As still see the original error.
func Unrecoverable(err error) error {
	return retry.Unrecoverable(err)
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
// Zero means retry until the context is done.
// Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
// Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts.
// Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether to return only the last error.
// Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithFixedDelay makes every wait between attempts equal to the base delay.
func WithFixedDelay() Option {
	return func(c *config) {
		c.fixedDelay = true
	}
}
