package domain

import "time"

// EscrowKind distinguishes the two settlement directions.
type EscrowKind string

const (
	EscrowKindDeposit    EscrowKind = "deposit"
	EscrowKindWithdrawal EscrowKind = "withdrawal"
)

// EscrowStatus is the settlement state machine:
// pending -> confirmed -> completed, with rejected as the alternative
// terminal outcome from pending or confirmed.
type EscrowStatus string

const (
	EscrowStatusPending   EscrowStatus = "pending"
	EscrowStatusConfirmed EscrowStatus = "confirmed"
	EscrowStatusCompleted EscrowStatus = "completed"
	EscrowStatusRejected  EscrowStatus = "rejected"
)

// EscrowRequest is a two-party pending settlement identified by a
// one-time code. The code is stored only as an HMAC digest; the
// plaintext is handed to the user exactly once, at creation.
type EscrowRequest struct {
	ID          string       `json:"id"`
	Kind        EscrowKind   `json:"kind"`
	UserID      string       `json:"user_id"`
	AgentID     string       `json:"agent_id"`
	Amount      int64        `json:"amount"`
	Currency    string       `json:"currency"`
	CodeDigest  string       `json:"code_digest"`
	Status      EscrowStatus `json:"status"`
	Fee         int64        `json:"fee,omitempty"` // withdrawal only, never netted into Amount
	Attempts    int          `json:"attempts"`      // settlement claims, bumps the version on retry
	CreatedAt   time.Time    `json:"created_at"`
	ConfirmedAt *time.Time   `json:"confirmed_at,omitempty"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}

// IsTerminal returns true once the request can no longer move funds.
func (r *EscrowRequest) IsTerminal() bool {
	return r.Status == EscrowStatusCompleted || r.Status == EscrowStatusRejected
}
