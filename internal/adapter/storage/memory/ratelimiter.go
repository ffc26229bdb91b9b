package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"agentpay/internal/core/ports"
)

// RateLimiter implements ports.RateLimiter with in-memory sliding
// windows (per-minute and per-hour) keyed by actor and action. A restart
// resetting the counters is acceptable: the fraud guard is the
// ledger-backed second line of defense.
type RateLimiter struct {
	mu        sync.Mutex
	perMinute int
	perHour   int
	events    map[string][]time.Time
	now       func() time.Time
}

// NewRateLimiter creates a sliding-window limiter with the given ceilings.
func NewRateLimiter(perMinute, perHour int) *RateLimiter {
	return &RateLimiter{
		perMinute: perMinute,
		perHour:   perHour,
		events:    make(map[string][]time.Time),
		now:       time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (l *RateLimiter) SetClock(now func() time.Time) { l.now = now }

// Check reports whether the actor may perform the action. Counters are
// not incremented here: gating is advisory, Record runs after the
// operation proceeds.
func (l *RateLimiter) Check(_ context.Context, actorID, action string) (*ports.RateDecision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := actorID + ":" + action
	now := l.now()
	l.prune(key, now)

	var lastMinute int
	for _, ts := range l.events[key] {
		if now.Sub(ts) < time.Minute {
			lastMinute++
		}
	}

	if l.perMinute > 0 && lastMinute >= l.perMinute {
		return &ports.RateDecision{
			Allowed: false,
			Message: fmt.Sprintf("Too many %s requests, wait a minute before retrying", action),
		}, nil
	}
	if l.perHour > 0 && len(l.events[key]) >= l.perHour {
		return &ports.RateDecision{
			Allowed: false,
			Message: fmt.Sprintf("Hourly %s limit reached, try again later", action),
		}, nil
	}
	return &ports.RateDecision{Allowed: true}, nil
}

// Record counts one proceeded operation against the actor's windows.
func (l *RateLimiter) Record(_ context.Context, actorID, action string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := actorID + ":" + action
	now := l.now()
	l.prune(key, now)
	l.events[key] = append(l.events[key], now)
	return nil
}

// prune drops timestamps older than the widest window. Caller holds the lock.
func (l *RateLimiter) prune(key string, now time.Time) {
	kept := l.events[key][:0]
	for _, ts := range l.events[key] {
		if now.Sub(ts) < time.Hour {
			kept = append(kept, ts)
		}
	}
	if len(kept) == 0 {
		delete(l.events, key)
		return
	}
	l.events[key] = kept
}
