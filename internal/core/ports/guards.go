package ports

import (
	"context"

	"agentpay/internal/core/domain"
)

// RiskLevel grades a fraud verdict.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// FraudCheck is the guard's verdict on a candidate transaction.
type FraudCheck struct {
	IsSuspicious         bool
	Reason               string
	RiskLevel            RiskLevel
	RequiresVerification bool
}

// FraudGuard analyzes per-actor transaction patterns. CheckTransaction must
// run before any ledger mutation; RecordTransaction appends the realized
// transaction to the actor's window only after the operation proceeds.
type FraudGuard interface {
	CheckTransaction(ctx context.Context, actorID string, amount int64, counterpartID string) (*FraudCheck, error)
	RecordTransaction(ctx context.Context, actorID string, amount int64, counterpartID string) error
	// RiskScore derives an advisory 0-100 score. Informational only,
	// never used for blocking.
	RiskScore(ctx context.Context, actorID string) (int, error)
}

// PatternStore holds the per-actor rolling windows behind the guard.
// In-memory by default; redis-backed for multi-instance deployments.
type PatternStore interface {
	Get(ctx context.Context, actorID string) (*domain.TransactionPattern, error)
	// Append adds an entry, dropping the oldest beyond maxEntries.
	Append(ctx context.Context, actorID string, entry domain.PatternEntry, maxEntries int) error
}

// RateDecision is the limiter's answer for one candidate action.
type RateDecision struct {
	Allowed bool
	Message string
}

// RateLimiter gates request frequency per (actor, action). Advisory:
// Record is called only after the gated operation actually proceeds.
type RateLimiter interface {
	Check(ctx context.Context, actorID, action string) (*RateDecision, error)
	Record(ctx context.Context, actorID, action string) error
}
