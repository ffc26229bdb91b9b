package service

import (
	"context"

	"agentpay/internal/core/domain"
	"agentpay/internal/core/ports"

	"github.com/rs/zerolog"
)

// ReconcileReport compares a user's materialized balance against the
// amount recomputed from the ledger.
type ReconcileReport struct {
	UserID       string `json:"user_id"`
	Materialized int64  `json:"materialized"`
	Recomputed   int64  `json:"recomputed"`
	Drift        int64  `json:"drift"`
	Entries      int    `json:"entries"`
}

// InBalance reports whether the materialized value matches the ledger.
func (r *ReconcileReport) InBalance() bool {
	return r.Drift == 0
}

// ReconcileService recomputes user balances from the ledger, the
// operational safety net for the materialized values. Read-only and
// never on a blocking path.
type ReconcileService struct {
	ledger   ports.Ledger
	balances ports.BalanceMaterializer
	log      zerolog.Logger
}

// NewReconcileService creates a reconciler.
func NewReconcileService(ledger ports.Ledger, balances ports.BalanceMaterializer, log zerolog.Logger) *ReconcileService {
	return &ReconcileService{ledger: ledger, balances: balances, log: log}
}

// Reconcile replays the user's completed ledger entries and reports
// drift against the materialized balance. Agent-side entries track the
// agent's cash/digital pools, not a user balance, and are skipped.
func (s *ReconcileService) Reconcile(ctx context.Context, userID string) (*ReconcileReport, error) {
	entries, err := s.ledger.ListByActor(ctx, userID)
	if err != nil {
		return nil, err
	}
	materialized, err := s.balances.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	var recomputed int64
	counted := 0
	for i := range entries {
		tx := &entries[i]
		if tx.Status != domain.TransactionStatusCompleted || tx.IsAgentSide() {
			continue
		}
		recomputed += balanceEffect(tx, userID)
		counted++
	}

	report := &ReconcileReport{
		UserID:       userID,
		Materialized: materialized,
		Recomputed:   recomputed,
		Drift:        materialized - recomputed,
		Entries:      counted,
	}
	if !report.InBalance() {
		s.log.Error().
			Str("user_id", userID).
			Int64("materialized", materialized).
			Int64("recomputed", recomputed).
			Int64("drift", report.Drift).
			Msg("balance drift detected")
	}
	return report, nil
}

// balanceEffect is the signed contribution of one entry to the user's
// balance. Amounts are stored non-negative; direction comes from the
// type and from which side of the entry the user is on.
func balanceEffect(tx *domain.Transaction, userID string) int64 {
	switch tx.Type {
	case domain.TransactionTypeDeposit:
		if tx.ActorUserID == userID {
			return tx.Amount
		}
	case domain.TransactionTypeWithdraw, domain.TransactionTypeFee:
		if tx.ActorUserID == userID {
			return -tx.Amount
		}
	case domain.TransactionTypeSend:
		if tx.ActorUserID == userID {
			return -tx.Amount
		}
		if tx.RecipientID == userID {
			return tx.Amount
		}
	case domain.TransactionTypeReceive:
		if tx.ActorUserID == userID {
			return tx.Amount
		}
	}
	return 0
}
