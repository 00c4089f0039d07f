package retry

import (
	"context"
	"fmt"
	"os"
	"time"
)

type Policy struct {
	// Attempts is the maximum number of calls, including the first one.
	Attempts int

	// Delay returns how long to wait after given failed attempt (zero-based).
	Delay func(attempt int) time.Duration

	// Retriable reports whether given error is worth another attempt. All errors are when nil.
	Retriable func(err error) bool

	// OnRetry is notified before waiting for the next attempt.
	OnRetry func(err error, delay time.Duration)
}

// Default retries up to 5 times, waiting 2s, 3s, 4s and 5s between attempts and reporting retries to stderr.
var Default = Policy{
	Attempts: 5,
	Delay:    func(attempt int) time.Duration { return time.Duration(attempt+2) * time.Second },
	OnRetry: func(err error, delay time.Duration) {
		_, _ = fmt.Fprintf(os.Stderr, "Retrying in %s. error: %v\n", delay, err)
	},
}

// Do calls fn until it succeeds, fails with an error that is not retriable, policy attempts are exhausted or ctx is
// done. It returns the result and error of the last call.
func Do[T any](ctx context.Context, policy Policy, fn func() (T, error)) (T, error) {
	attempts := max(policy.Attempts, 1)

	var result T
	var err error
	for i := range attempts {
		result, err = fn()
		if err == nil {
			return result, nil
		}
		if i == attempts-1 || (policy.Retriable != nil && !policy.Retriable(err)) {
			break
		}

		var delay time.Duration
		if policy.Delay != nil {
			delay = policy.Delay(i)
		}
		if policy.OnRetry != nil {
			policy.OnRetry(err, delay)
		}

		select {
		case <-ctx.Done():
			return result, fmt.Errorf("%w (giving up: %w)", err, ctx.Err())
		case <-time.After(delay):
		}
	}
	return result, err
}
