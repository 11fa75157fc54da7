package driven

import "context"

// RateLimiter accounts per-key request quotas over a rolling window.
// The small interface keeps the in-memory table and a shared counter
// store (key-value with TTL) interchangeable.
type RateLimiter interface {
	// Check reports whether the key may make another request and how
	// many requests remain in the current window.
	Check(ctx context.Context, key string) (allowed bool, remaining int, err error)

	// Increment records one request for the key.
	Increment(ctx context.Context, key string) error
}
