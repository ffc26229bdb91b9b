package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"agentpay/internal/core/domain"
	"agentpay/internal/core/ports"
	"agentpay/pkg/apperror"

	"github.com/rs/zerolog"
)

// BalanceService maintains materialized user balances over the document
// store. Apply is the single mutation entry point; every caller pairs it
// with a ledger append in the same logical operation.
type BalanceService struct {
	store      ports.DocumentStore
	currency   string
	maxRetries int
	log        zerolog.Logger
	now        func() time.Time
}

// NewBalanceService creates a balance materializer.
func NewBalanceService(store ports.DocumentStore, currency string, maxRetries int, log zerolog.Logger) *BalanceService {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &BalanceService{
		store:      store,
		currency:   currency,
		maxRetries: maxRetries,
		log:        log,
		now:        time.Now,
	}
}

// GetBalance returns the user's current balance, zero when none exists.
func (s *BalanceService) GetBalance(ctx context.Context, userID string) (int64, error) {
	doc, err := s.store.Get(ctx, ports.CollectionBalances, userID)
	if err != nil {
		return 0, apperror.InternalError(err)
	}
	if doc == nil {
		return 0, nil
	}
	var bal domain.UserBalance
	if err := json.Unmarshal(doc.Data, &bal); err != nil {
		return 0, apperror.InternalError(err)
	}
	return bal.Amount, nil
}

// Apply adjusts the balance by delta with read-compute-CAS-retry. A result
// below zero is rejected before any write; exhausted retries surface a
// concurrency conflict.
func (s *BalanceService) Apply(ctx context.Context, userID string, delta int64) (int64, error) {
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		doc, err := s.store.Get(ctx, ports.CollectionBalances, userID)
		if err != nil {
			return 0, apperror.InternalError(err)
		}

		var current int64
		var version int64
		if doc != nil {
			var bal domain.UserBalance
			if err := json.Unmarshal(doc.Data, &bal); err != nil {
				return 0, apperror.InternalError(err)
			}
			current = bal.Amount
			version = doc.Version
		}

		next := current + delta
		if next < 0 {
			return 0, apperror.ErrInsufficientBalance()
		}

		data, err := json.Marshal(domain.UserBalance{
			UserID:    userID,
			Amount:    next,
			Currency:  s.currency,
			UpdatedAt: s.now().UTC(),
		})
		if err != nil {
			return 0, apperror.InternalError(err)
		}

		if _, err := s.store.Put(ctx, ports.CollectionBalances, userID, data, version); err != nil {
			if errors.Is(err, ports.ErrVersionConflict) {
				s.log.Debug().
					Str("user_id", userID).
					Int("attempt", attempt+1).
					Msg("balance write conflict, retrying")
				continue
			}
			return 0, apperror.InternalError(err)
		}
		return next, nil
	}
	return 0, apperror.ErrConcurrencyConflict()
}
