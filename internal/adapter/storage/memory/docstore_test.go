package memory_test

import (
	"context"
	"sync"
	"testing"

	"agentpay/internal/adapter/storage/memory"
	"agentpay/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocStore_GetAbsent(t *testing.T) {
	s := memory.NewDocStore()
	doc, err := s.Get(context.Background(), "balances", "255700000001")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestDocStore_CreateAndVersioning(t *testing.T) {
	s := memory.NewDocStore()
	ctx := context.Background()

	v1, err := s.Put(ctx, "balances", "u1", []byte(`{"amount":100}`), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v1)

	// Re-create with version 0 must conflict.
	_, err = s.Put(ctx, "balances", "u1", []byte(`{}`), 0)
	assert.ErrorIs(t, err, ports.ErrVersionConflict)

	doc, err := s.Get(ctx, "balances", "u1")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, int64(1), doc.Version)

	v2, err := s.Put(ctx, "balances", "u1", []byte(`{"amount":200}`), doc.Version)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v2)

	// Stale write loses.
	_, err = s.Put(ctx, "balances", "u1", []byte(`{"amount":300}`), v1)
	assert.ErrorIs(t, err, ports.ErrVersionConflict)
}

func TestDocStore_List(t *testing.T) {
	s := memory.NewDocStore()
	ctx := context.Background()

	_, err := s.Put(ctx, "agents", "a1", []byte(`{"id":"a1"}`), 0)
	require.NoError(t, err)
	_, err = s.Put(ctx, "agents", "a2", []byte(`{"id":"a2"}`), 0)
	require.NoError(t, err)

	all, err := s.List(ctx, "agents")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Contains(t, all, "a1")

	empty, err := s.List(ctx, "transactions")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDocStore_ConcurrentCAS_OneWinner(t *testing.T) {
	s := memory.NewDocStore()
	ctx := context.Background()

	_, err := s.Put(ctx, "requests", "r1", []byte(`{"status":"confirmed"}`), 0)
	require.NoError(t, err)

	const writers = 16
	var wg sync.WaitGroup
	wins := make(chan int64, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v, err := s.Put(ctx, "requests", "r1", []byte(`{"status":"completed"}`), 1); err == nil {
				wins <- v
			}
		}()
	}
	wg.Wait()
	close(wins)

	var count int
	for range wins {
		count++
	}
	assert.Equal(t, 1, count, "exactly one writer may win the version race")
}

func TestDocStore_ReturnsCopies(t *testing.T) {
	s := memory.NewDocStore()
	ctx := context.Background()

	_, err := s.Put(ctx, "balances", "u1", []byte(`{"amount":1}`), 0)
	require.NoError(t, err)

	doc, err := s.Get(ctx, "balances", "u1")
	require.NoError(t, err)
	doc.Data[0] = 'X' // mutating the returned slice must not corrupt the store

	again, err := s.Get(ctx, "balances", "u1")
	require.NoError(t, err)
	assert.Equal(t, byte('{'), again.Data[0])
}
