package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"agentpay/internal/core/domain"
	"agentpay/internal/core/ports"
	"agentpay/pkg/apperror"

	"github.com/rs/zerolog"
)

// LedgerService is the append-only record of money movements, backed by
// the document store. Entries reaching a terminal status are immutable;
// the ledger enforces this itself, independent of caller discipline.
type LedgerService struct {
	store ports.DocumentStore
	idgen ports.IDGenerator
	log   zerolog.Logger
	now   func() time.Time
}

// NewLedgerService creates a ledger over the given store.
func NewLedgerService(store ports.DocumentStore, idgen ports.IDGenerator, log zerolog.Logger) *LedgerService {
	return &LedgerService{
		store: store,
		idgen: idgen,
		log:   log,
		now:   time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (s *LedgerService) SetClock(now func() time.Time) {
	s.now = now
}

// Append persists a new ledger entry, assigning id and creation time
// when absent. A caller-supplied id is honored verbatim: the entry is
// created at most once, and a second append under the same id fails
// with a concurrency conflict instead of duplicating the record.
func (s *LedgerService) Append(ctx context.Context, entry domain.Transaction) (*domain.Transaction, error) {
	if entry.Amount < 0 {
		return nil, apperror.Validation("Amount must not be negative")
	}
	if entry.ID == "" {
		entry.ID = s.idgen.NewID()
	}
	entry.CreatedAt = s.now().UTC()
	if entry.Status == "" {
		entry.Status = domain.TransactionStatusPending
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if _, err := s.store.Put(ctx, ports.CollectionTransactions, entry.ID, data, 0); err != nil {
		if errors.Is(err, ports.ErrVersionConflict) {
			return nil, apperror.ErrConcurrencyConflict()
		}
		return nil, apperror.InternalError(err)
	}

	s.log.Debug().
		Str("transaction_id", entry.ID).
		Str("type", string(entry.Type)).
		Int64("amount", entry.Amount).
		Msg("ledger entry appended")
	return &entry, nil
}

// Get returns the entry by id.
func (s *LedgerService) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	doc, err := s.store.Get(ctx, ports.CollectionTransactions, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if doc == nil {
		return nil, apperror.ErrNotFound("Transaction")
	}
	var tx domain.Transaction
	if err := json.Unmarshal(doc.Data, &tx); err != nil {
		return nil, apperror.InternalError(err)
	}
	return &tx, nil
}

// ListByActor returns entries where the actor is sender or recipient,
// newest first.
func (s *LedgerService) ListByActor(ctx context.Context, actorID string) ([]domain.Transaction, error) {
	return s.list(ctx, func(tx *domain.Transaction) bool {
		return tx.ActorUserID == actorID || tx.RecipientID == actorID
	})
}

// ListByAgent returns entries tied to the given agent, newest first.
func (s *LedgerService) ListByAgent(ctx context.Context, agentID string) ([]domain.Transaction, error) {
	return s.list(ctx, func(tx *domain.Transaction) bool {
		return tx.AgentID == agentID
	})
}

func (s *LedgerService) list(ctx context.Context, match func(*domain.Transaction) bool) ([]domain.Transaction, error) {
	docs, err := s.store.List(ctx, ports.CollectionTransactions)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	out := make([]domain.Transaction, 0)
	for _, doc := range docs {
		var tx domain.Transaction
		if err := json.Unmarshal(doc.Data, &tx); err != nil {
			return nil, apperror.InternalError(err)
		}
		if match(&tx) {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update applies the partial update to a non-terminal entry. Terminal
// entries are immutable and updates against them are rejected.
func (s *LedgerService) Update(ctx context.Context, id string, upd ports.TransactionUpdate) (*domain.Transaction, error) {
	doc, err := s.store.Get(ctx, ports.CollectionTransactions, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if doc == nil {
		return nil, apperror.ErrNotFound("Transaction")
	}
	var tx domain.Transaction
	if err := json.Unmarshal(doc.Data, &tx); err != nil {
		return nil, apperror.InternalError(err)
	}
	if tx.IsTerminal() {
		return nil, apperror.ErrRequestAlreadyProcessed()
	}

	if upd.Status != nil {
		tx.Status = *upd.Status
	}
	if upd.Metadata != nil {
		if tx.Metadata == nil {
			tx.Metadata = make(map[string]string, len(upd.Metadata))
		}
		for k, v := range upd.Metadata {
			tx.Metadata[k] = v
		}
	}
	if upd.CompletedAt != nil {
		tx.CompletedAt = upd.CompletedAt
	}

	data, err := json.Marshal(tx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if _, err := s.store.Put(ctx, ports.CollectionTransactions, id, data, doc.Version); err != nil {
		if errors.Is(err, ports.ErrVersionConflict) {
			return nil, apperror.ErrConcurrencyConflict()
		}
		return nil, apperror.InternalError(err)
	}
	return &tx, nil
}
