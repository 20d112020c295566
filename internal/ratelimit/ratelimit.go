// internal/ratelimit/ratelimit.go
//
// In-memory fixed-window rate limiter.
//
// Context
// -------
// The public contact endpoint and the login endpoint are the only
// unauthenticated writes in the system, so both sit behind a small
// per-IP limiter.  State is process-local: the site runs as a single
// instance, and losing counters on restart is acceptable.
//
// Expired windows are swept by a background goroutine so a slow trickle
// of one-off visitors cannot grow the map without bound.

package ratelimit

import (
	"sync"
	"time"
)

const sweepInterval = 5 * time.Minute

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter counts requests per key within a fixed window.  Safe for
// concurrent use.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry

	max    int
	window time.Duration
	now    func() time.Time // injectable clock for tests
}

// New returns a Limiter allowing max requests per window per key and
// starts the background sweeper.
func New(max int, window time.Duration) *Limiter {
	l := &Limiter{
		entries: make(map[string]*entry),
		max:     max,
		window:  window,
		now:     time.Now,
	}
	go l.sweep()
	return l
}

// Allow records one request for key and reports whether it fits the
// current window.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || now.After(e.resetAt) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(l.window)}
		return true
	}
	if e.count >= l.max {
		return false
	}
	e.count++
	return true
}

// sweep drops expired windows periodically.
func (l *Limiter) sweep() {
	t := time.NewTicker(sweepInterval)
	defer t.Stop()
	for range t.C {
		l.mu.Lock()
		now := l.now()
		for k, e := range l.entries {
			if now.After(e.resetAt) {
				delete(l.entries, k)
			}
		}
		l.mu.Unlock()
	}
}
