package redis

import (
	"context"
	"fmt"
	"time"

	"agentpay/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// RateLimitStore implements ports.RateLimiter on Redis fixed-window
// counters, the shared-store option for multi-instance deployments.
// Check reads the counters without consuming budget; Record increments
// them after the gated operation proceeds.
type RateLimitStore struct {
	client    *goredis.Client
	prefix    string
	perMinute int
	perHour   int
}

// NewRateLimitStore creates a Redis-backed rate limiter.
func NewRateLimitStore(client *goredis.Client, perMinute, perHour int) *RateLimitStore {
	return &RateLimitStore{
		client:    client,
		prefix:    "ratelimit:",
		perMinute: perMinute,
		perHour:   perHour,
	}
}

func (s *RateLimitStore) windowKey(actorID, action string, window time.Duration) string {
	windowID := time.Now().Unix() / int64(window.Seconds())
	return fmt.Sprintf("%s%s:%s:%d:%d", s.prefix, actorID, action, int64(window.Seconds()), windowID)
}

// Check reports whether the actor is within both windows.
func (s *RateLimitStore) Check(ctx context.Context, actorID, action string) (*ports.RateDecision, error) {
	minuteCount, err := s.count(ctx, s.windowKey(actorID, action, time.Minute))
	if err != nil {
		return nil, err
	}
	if s.perMinute > 0 && minuteCount >= int64(s.perMinute) {
		return &ports.RateDecision{
			Allowed: false,
			Message: fmt.Sprintf("Too many %s requests, wait a minute before retrying", action),
		}, nil
	}

	hourCount, err := s.count(ctx, s.windowKey(actorID, action, time.Hour))
	if err != nil {
		return nil, err
	}
	if s.perHour > 0 && hourCount >= int64(s.perHour) {
		return &ports.RateDecision{
			Allowed: false,
			Message: fmt.Sprintf("Hourly %s limit reached, try again later", action),
		}, nil
	}
	return &ports.RateDecision{Allowed: true}, nil
}

// Record counts one proceeded operation in both windows.
func (s *RateLimitStore) Record(ctx context.Context, actorID, action string) error {
	for _, window := range []time.Duration{time.Minute, time.Hour} {
		key := s.windowKey(actorID, action, window)
		count, err := s.client.Incr(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("redis rate limit incr: %w", err)
		}
		// Set expiry only on first increment (new window)
		if count == 1 {
			s.client.Expire(ctx, key, window+time.Second) // +1s safety margin
		}
	}
	return nil
}

func (s *RateLimitStore) count(ctx context.Context, key string) (int64, error) {
	val, err := s.client.Get(ctx, key).Int64()
	if err == goredis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis rate limit get: %w", err)
	}
	return val, nil
}
