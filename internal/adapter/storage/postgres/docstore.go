package postgres

import (
	"context"
	"errors"
	"fmt"

	"agentpay/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// DocStore implements ports.DocumentStore on a single documents table:
//
//	CREATE TABLE documents (
//	    collection TEXT        NOT NULL,
//	    doc_key    TEXT        NOT NULL,
//	    data       JSONB       NOT NULL,
//	    version    BIGINT      NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    PRIMARY KEY (collection, doc_key)
//	);
//
// Optimistic concurrency: updates are guarded by WHERE version = $n,
// creates by ON CONFLICT DO NOTHING.
type DocStore struct {
	pool Pool
}

// NewDocStore creates a PostgreSQL-backed document store.
func NewDocStore(pool Pool) *DocStore {
	return &DocStore{pool: pool}
}

// Get returns the document, or (nil, nil) when absent.
func (s *DocStore) Get(ctx context.Context, collection, key string) (*ports.Document, error) {
	query := `SELECT data, version FROM documents WHERE collection = $1 AND doc_key = $2`

	doc := &ports.Document{}
	err := s.pool.QueryRow(ctx, query, collection, key).Scan(&doc.Data, &doc.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document %s/%s: %w", collection, key, err)
	}
	return doc, nil
}

// Put writes data guarded by the expected version.
func (s *DocStore) Put(ctx context.Context, collection, key string, data []byte, expectedVersion int64) (int64, error) {
	if expectedVersion == 0 {
		query := `INSERT INTO documents (collection, doc_key, data, version)
			VALUES ($1, $2, $3, 1)
			ON CONFLICT (collection, doc_key) DO NOTHING`

		tag, err := s.pool.Exec(ctx, query, collection, key, data)
		if err != nil {
			return 0, fmt.Errorf("insert document %s/%s: %w", collection, key, err)
		}
		if tag.RowsAffected() == 0 {
			return 0, ports.ErrVersionConflict
		}
		return 1, nil
	}

	query := `UPDATE documents SET data = $3, version = version + 1, updated_at = NOW()
		WHERE collection = $1 AND doc_key = $2 AND version = $4
		RETURNING version`

	var newVersion int64
	err := s.pool.QueryRow(ctx, query, collection, key, data, expectedVersion).Scan(&newVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ports.ErrVersionConflict
		}
		return 0, fmt.Errorf("update document %s/%s: %w", collection, key, err)
	}
	return newVersion, nil
}

// List returns every document in the collection.
func (s *DocStore) List(ctx context.Context, collection string) (map[string]ports.Document, error) {
	query := `SELECT doc_key, data, version FROM documents WHERE collection = $1`

	rows, err := s.pool.Query(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("list documents %s: %w", collection, err)
	}
	defer rows.Close()

	out := make(map[string]ports.Document)
	for rows.Next() {
		var key string
		var doc ports.Document
		if err := rows.Scan(&key, &doc.Data, &doc.Version); err != nil {
			return nil, fmt.Errorf("scan document row: %w", err)
		}
		out[key] = doc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents %s: %w", collection, err)
	}
	return out, nil
}
