package ratelimit

import (
	"testing"
	"time"
)

// newTestLimiter builds a limiter with a fake clock and no sweeper.
func newTestLimiter(max int, window time.Duration, now *time.Time) *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		max:     max,
		window:  window,
		now:     func() time.Time { return *now },
	}
}

func TestAllowWithinWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newTestLimiter(3, time.Minute, &now)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d: want allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("4th request in window: want denied")
	}
}

func TestWindowReset(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newTestLimiter(1, time.Minute, &now)

	if !l.Allow("k") {
		t.Fatal("first request: want allowed")
	}
	if l.Allow("k") {
		t.Fatal("second request: want denied")
	}

	now = now.Add(time.Minute + time.Second)
	if !l.Allow("k") {
		t.Fatal("request after window expiry: want allowed")
	}
}

func TestKeysIndependent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := newTestLimiter(1, time.Minute, &now)

	if !l.Allow("a") {
		t.Fatal("key a: want allowed")
	}
	if !l.Allow("b") {
		t.Fatal("key b: want allowed despite a being exhausted")
	}
	if l.Allow("a") {
		t.Fatal("key a second request: want denied")
	}
}
