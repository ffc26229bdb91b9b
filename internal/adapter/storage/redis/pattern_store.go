package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"agentpay/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// PatternStore implements ports.PatternStore on Redis lists, the
// shared-store option for running the fraud guard across instances.
// Entries are pushed newest-first and trimmed to the window size.
type PatternStore struct {
	client *goredis.Client
	prefix string
}

// NewPatternStore creates a Redis-backed pattern store.
func NewPatternStore(client *goredis.Client) *PatternStore {
	return &PatternStore{client: client, prefix: "pattern:"}
}

// Get loads the actor's window, oldest entry first. Returns nil when
// the actor has no recorded history.
func (s *PatternStore) Get(ctx context.Context, actorID string) (*domain.TransactionPattern, error) {
	raw, err := s.client.LRange(ctx, s.prefix+actorID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis pattern lrange: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	p := &domain.TransactionPattern{ActorID: actorID}
	// LPUSH order: index 0 is newest. Rebuild chronological order.
	for i := len(raw) - 1; i >= 0; i-- {
		var e domain.PatternEntry
		if err := json.Unmarshal([]byte(raw[i]), &e); err != nil {
			return nil, fmt.Errorf("redis pattern entry: %w", err)
		}
		p.Entries = append(p.Entries, e)
	}

	firstSeen, err := s.client.Get(ctx, s.prefix+"first:"+actorID).Result()
	if err != nil && err != goredis.Nil {
		return nil, fmt.Errorf("redis pattern first-seen: %w", err)
	}
	if firstSeen != "" {
		if ts, err := time.Parse(time.RFC3339Nano, firstSeen); err == nil {
			p.FirstSeen = ts
		}
	}
	if p.FirstSeen.IsZero() {
		p.FirstSeen = p.Entries[0].Timestamp
	}
	return p, nil
}

// Append pushes an entry and trims the window to maxEntries.
func (s *PatternStore) Append(ctx context.Context, actorID string, entry domain.PatternEntry, maxEntries int) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal pattern entry: %w", err)
	}

	key := s.prefix + actorID
	if err := s.client.LPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("redis pattern lpush: %w", err)
	}
	if maxEntries > 0 {
		if err := s.client.LTrim(ctx, key, 0, int64(maxEntries)-1).Err(); err != nil {
			return fmt.Errorf("redis pattern ltrim: %w", err)
		}
	}

	// First write wins: preserves the actor's first-seen timestamp.
	s.client.SetNX(ctx, s.prefix+"first:"+actorID, entry.Timestamp.Format(time.RFC3339Nano), 0)
	return nil
}
