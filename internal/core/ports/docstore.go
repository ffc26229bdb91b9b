package ports

import (
	"context"
	"errors"
)

// Collections used by the settlement core.
const (
	CollectionTransactions       = "transactions"
	CollectionBalances           = "balances"
	CollectionAgents             = "agents"
	CollectionDepositRequests    = "deposit_requests"
	CollectionWithdrawalRequests = "withdrawal_requests"
)

// ErrVersionConflict is returned by Put when the expected version is stale.
var ErrVersionConflict = errors.New("docstore: version conflict")

// Document is a stored record plus its optimistic-concurrency version token.
type Document struct {
	Data    []byte
	Version int64
}

// DocumentStore is the persistence contract: key/value documents with
// per-key version tokens. Every read returns the current version; every
// write requires the version the writer last saw and fails with
// ErrVersionConflict if it is stale. An expectedVersion of 0 means
// "create, the key must not exist yet".
//
// Documents are JSON; time fields cross this boundary as RFC 3339 strings.
type DocumentStore interface {
	// Get returns the document, or (nil, nil) when the key is absent.
	Get(ctx context.Context, collection, key string) (*Document, error)
	// Put writes data and returns the new version.
	Put(ctx context.Context, collection, key string, data []byte, expectedVersion int64) (int64, error)
	// List returns every document in the collection keyed by id. Used for
	// scans (code lookup, nearby search) — acceptable at this scale.
	List(ctx context.Context, collection string) (map[string]Document, error)
}

// IDGenerator produces collision-resistant opaque identifiers.
type IDGenerator interface {
	NewID() string
}
