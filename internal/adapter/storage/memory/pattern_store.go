package memory

import (
	"context"
	"sync"

	"agentpay/internal/core/domain"
)

// PatternStore implements ports.PatternStore in process memory.
// Process-local: in multi-instance deployments use the redis-backed
// store instead, or accept duplicate-detection tolerance.
type PatternStore struct {
	mu       sync.Mutex
	patterns map[string]*domain.TransactionPattern
}

// NewPatternStore creates an empty in-memory pattern store.
func NewPatternStore() *PatternStore {
	return &PatternStore{patterns: make(map[string]*domain.TransactionPattern)}
}

// Get returns a copy of the actor's pattern, or nil when unknown.
func (s *PatternStore) Get(_ context.Context, actorID string) (*domain.TransactionPattern, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patterns[actorID]
	if !ok {
		return nil, nil
	}
	out := &domain.TransactionPattern{
		ActorID:   p.ActorID,
		FirstSeen: p.FirstSeen,
		Entries:   make([]domain.PatternEntry, len(p.Entries)),
	}
	copy(out.Entries, p.Entries)
	return out, nil
}

// Append adds an entry to the actor's window, dropping the oldest
// beyond maxEntries.
func (s *PatternStore) Append(_ context.Context, actorID string, entry domain.PatternEntry, maxEntries int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patterns[actorID]
	if !ok {
		p = &domain.TransactionPattern{ActorID: actorID, FirstSeen: entry.Timestamp}
		s.patterns[actorID] = p
	}
	p.Entries = append(p.Entries, entry)
	if maxEntries > 0 && len(p.Entries) > maxEntries {
		p.Entries = p.Entries[len(p.Entries)-maxEntries:]
	}
	return nil
}
