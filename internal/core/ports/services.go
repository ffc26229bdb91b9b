package ports

import (
	"context"
	"time"

	"agentpay/internal/core/domain"
)

// TransactionUpdate is the set of fields the ledger accepts on
// non-terminal records. Nil fields are left untouched.
type TransactionUpdate struct {
	Status      *domain.TransactionStatus
	Metadata    map[string]string
	CompletedAt *time.Time
}

// Ledger is the append-only record of every money movement and the
// source of truth for all balances.
type Ledger interface {
	Append(ctx context.Context, entry domain.Transaction) (*domain.Transaction, error)
	Get(ctx context.Context, id string) (*domain.Transaction, error)
	ListByActor(ctx context.Context, actorID string) ([]domain.Transaction, error)
	ListByAgent(ctx context.Context, agentID string) ([]domain.Transaction, error)
	Update(ctx context.Context, id string, upd TransactionUpdate) (*domain.Transaction, error)
}

// BalanceMaterializer maintains materialized user balances. Apply is the
// single mutation entry point; no code path may set a balance without a
// corresponding ledger entry in the same logical operation.
type BalanceMaterializer interface {
	GetBalance(ctx context.Context, userID string) (int64, error)
	Apply(ctx context.Context, userID string, delta int64) (int64, error)
}

// CreateAgentInput is the profile supplied when registering an agent.
type CreateAgentInput struct {
	OwnerUserID    string
	BusinessName   string
	Location       domain.Location
	CommissionRate float64
}

// AgentBalanceDelta mutates one or both agent pools in a single
// atomic document write.
type AgentBalanceDelta struct {
	CashDelta    int64
	DigitalDelta int64
}

// NearbyQuery selects agents around a point. Statuses defaults to
// available only.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Statuses  []domain.AgentStatus
}

// AgentWithDistance pairs an agent with its distance from the query point.
type AgentWithDistance struct {
	Agent      domain.Agent `json:"agent"`
	DistanceKm float64      `json:"distance_km"`
}

// AgentDirectory manages agent profiles and their dual balances.
type AgentDirectory interface {
	// Create is idempotent per owner: a second create returns the
	// existing agent.
	Create(ctx context.Context, input CreateAgentInput) (*domain.Agent, error)
	Get(ctx context.Context, id string) (*domain.Agent, error)
	GetByOwner(ctx context.Context, ownerID string) (*domain.Agent, error)
	UpdateStatus(ctx context.Context, id string, status domain.AgentStatus) (*domain.Agent, error)
	UpdateBalances(ctx context.Context, id string, delta AgentBalanceDelta) (*domain.Agent, error)
	Nearby(ctx context.Context, q NearbyQuery) ([]AgentWithDistance, error)
}

// EscrowResult is returned on request creation; Code is the plaintext
// one-time code, surfaced exactly once.
type EscrowResult struct {
	Request *domain.EscrowRequest `json:"request"`
	Code    string                `json:"code,omitempty"`
}

// EscrowManager orchestrates the deposit/withdrawal state machine.
type EscrowManager interface {
	CreateDepositRequest(ctx context.Context, userID, agentID string, amount int64, currency string) (*EscrowResult, error)
	CreateWithdrawalRequest(ctx context.Context, userID, agentID string, amount int64, currency string) (*EscrowResult, error)
	ConfirmAndProcessDeposit(ctx context.Context, requestID, agentID, code string) (*domain.EscrowRequest, error)
	ConfirmAndProcessWithdrawal(ctx context.Context, requestID, agentID, code string) (*domain.EscrowRequest, error)
	// ExpireStale rejects pending/confirmed requests older than the
	// cutoff. Caller-driven cleanup; no balance effect.
	ExpireStale(ctx context.Context, olderThan time.Duration) (int, error)
}

// TokenClaims identifies the authenticated actor (phone-shaped id).
type TokenClaims struct {
	ActorID string
}

// TokenService issues and validates bearer tokens for the HTTP surface.
type TokenService interface {
	Generate(actorID string) (string, time.Time, error)
	Validate(token string) (*TokenClaims, error)
}
