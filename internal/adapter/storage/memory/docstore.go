package memory

import (
	"context"
	"sync"

	"agentpay/internal/core/ports"
)

type record struct {
	data    []byte
	version int64
}

// DocStore implements ports.DocumentStore in process memory with
// per-key optimistic-concurrency versions. Default backend for tests
// and single-node development.
type DocStore struct {
	mu          sync.Mutex
	collections map[string]map[string]record
}

// NewDocStore creates an empty in-memory document store.
func NewDocStore() *DocStore {
	return &DocStore{collections: make(map[string]map[string]record)}
}

// Get returns the document, or (nil, nil) when absent.
func (s *DocStore) Get(_ context.Context, collection, key string) (*ports.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.collections[collection][key]
	if !ok {
		return nil, nil
	}
	return &ports.Document{Data: cloneBytes(rec.data), Version: rec.version}, nil
}

// Put writes data if expectedVersion matches the stored version
// (0 = must not exist) and returns the new version.
func (s *DocStore) Put(_ context.Context, collection, key string, data []byte, expectedVersion int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[string]record)
		s.collections[collection] = coll
	}

	current, exists := coll[key]
	switch {
	case !exists && expectedVersion != 0:
		return 0, ports.ErrVersionConflict
	case exists && current.version != expectedVersion:
		return 0, ports.ErrVersionConflict
	}

	next := expectedVersion + 1
	coll[key] = record{data: cloneBytes(data), version: next}
	return next, nil
}

// List returns a snapshot of every document in the collection.
func (s *DocStore) List(_ context.Context, collection string) (map[string]ports.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]ports.Document, len(s.collections[collection]))
	for key, rec := range s.collections[collection] {
		out[key] = ports.Document{Data: cloneBytes(rec.data), Version: rec.version}
	}
	return out, nil
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
