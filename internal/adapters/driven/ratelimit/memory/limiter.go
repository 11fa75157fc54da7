// Package memory provides an in-memory per-key request quota over a
// fixed 24-hour window.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/wethelder/wethelder/internal/core/ports/driven"
)

// Ensure Limiter implements the interface.
var _ driven.RateLimiter = (*Limiter)(nil)

// DefaultWindow is the quota accounting window.
const DefaultWindow = 24 * time.Hour

// entry tracks one key's usage inside its current window.
type entry struct {
	count       int
	windowStart time.Time
}

// Limiter counts requests per key in fixed windows. A key's counter
// resets when its window has fully elapsed, so the first request
// after expiry starts a fresh window.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry

	quota   int
	window  time.Duration
	nowFunc func() time.Time
}

// NewLimiter creates a limiter allowing quota requests per key per
// 24-hour window.
func NewLimiter(quota int) *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		quota:   quota,
		window:  DefaultWindow,
		nowFunc: time.Now,
	}
}

// Check reports whether the key may make another request and how many
// requests remain in the current window.
func (l *Limiter) Check(_ context.Context, key string) (bool, int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.current(key)
	remaining := l.quota - e.count
	if remaining < 0 {
		remaining = 0
	}
	return e.count < l.quota, remaining, nil
}

// Increment records one request for the key.
func (l *Limiter) Increment(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.current(key)
	e.count++
	return nil
}

// current returns the key's live entry, starting a fresh window when
// the previous one has elapsed. Expired entries for other keys are
// swept opportunistically to bound memory.
func (l *Limiter) current(key string) *entry {
	now := l.nowFunc()

	for k, e := range l.entries {
		if k != key && now.Sub(e.windowStart) >= l.window {
			delete(l.entries, k)
		}
	}

	e, ok := l.entries[key]
	if !ok || now.Sub(e.windowStart) >= l.window {
		e = &entry{windowStart: now}
		l.entries[key] = e
	}
	return e
}
