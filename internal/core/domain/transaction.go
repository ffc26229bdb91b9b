package domain

import "time"

// TransactionType represents the kind of money movement. Direction is
// always conveyed by the type; amounts are never negative.
type TransactionType string

const (
	TransactionTypeSend     TransactionType = "send"
	TransactionTypeReceive  TransactionType = "receive"
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
	TransactionTypeFee      TransactionType = "fee"
)

// TransactionStatus represents the lifecycle state of a ledger entry.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Metadata keys used by the settlement manager.
const (
	MetaSourceRequestID = "source_request_id"
	MetaEscrowKind      = "escrow_kind"
	// MetaAgentSide marks entries that track an agent's cash/digital pools
	// rather than a user balance; the reconciler skips them.
	MetaAgentSide = "agent_side"
)

// Transaction is an append-only ledger entry. Once it reaches a terminal
// status it is immutable.
type Transaction struct {
	ID          string            `json:"id"`
	ActorUserID string            `json:"actor_user_id"`
	Type        TransactionType   `json:"type"`
	Amount      int64             `json:"amount"` // smallest currency unit, >= 0
	Currency    string            `json:"currency"`
	RecipientID string            `json:"recipient_id,omitempty"`
	AgentID     string            `json:"agent_id,omitempty"`
	Status      TransactionStatus `json:"status"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusCompleted ||
		t.Status == TransactionStatusFailed ||
		t.Status == TransactionStatusCancelled
}

// IsAgentSide reports whether this entry tracks an agent pool movement.
func (t *Transaction) IsAgentSide() bool {
	return t.Metadata[MetaAgentSide] == "true"
}
