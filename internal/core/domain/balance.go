package domain

import "time"

// UserBalance is the materialized balance for a user: a cache of the
// ledger, maintained alongside every ledger append rather than recomputed
// on read. It is created implicitly at zero and never deleted.
type UserBalance struct {
	UserID    string    `json:"user_id"`
	Amount    int64     `json:"amount"` // never negative
	Currency  string    `json:"currency"`
	UpdatedAt time.Time `json:"updated_at"`
}
