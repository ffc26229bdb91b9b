package dto

// CreateEscrowRequest is the body for opening a deposit or withdrawal.
type CreateEscrowRequest struct {
	AgentID  string `json:"agent_id" binding:"required,safe_id"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
}

// ConfirmEscrowRequest is the body the agent submits to settle a request.
type ConfirmEscrowRequest struct {
	Code string `json:"code" binding:"required,min=4,max=12"`
}

// EscrowResponse is the settlement request as returned to callers.
type EscrowResponse struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	UserID      string  `json:"user_id"`
	AgentID     string  `json:"agent_id"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"`
	Fee         int64   `json:"fee,omitempty"`
	Code        string  `json:"code,omitempty"` // present only at creation
	CreatedAt   string  `json:"created_at"`
	ConfirmedAt *string `json:"confirmed_at,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// CreateAgentRequest is the body for registering an agent.
type CreateAgentRequest struct {
	BusinessName   string  `json:"business_name" binding:"required,min=1,max=100"`
	Country        string  `json:"country" binding:"omitempty,max=50"`
	State          string  `json:"state" binding:"omitempty,max=50"`
	City           string  `json:"city" binding:"omitempty,max=50"`
	Address        string  `json:"address" binding:"omitempty,max=200"`
	Latitude       float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude      float64 `json:"longitude" binding:"min=-180,max=180"`
	CommissionRate float64 `json:"commission_rate" binding:"min=0,max=1"`
}

// UpdateAgentStatusRequest is the body for changing agent availability.
type UpdateAgentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available busy cash_out offline"`
}

// FundAgentRequest is the body for agent float management. Deltas may be
// negative; either pool going below zero rejects the whole update.
type FundAgentRequest struct {
	CashDelta    int64 `json:"cash_delta"`
	DigitalDelta int64 `json:"digital_delta"`
}

// NearbyRequest carries the query parameters for agent discovery.
type NearbyRequest struct {
	Latitude  float64 `form:"lat" binding:"min=-90,max=90"`
	Longitude float64 `form:"lng" binding:"min=-180,max=180"`
	RadiusKm  float64 `form:"radius_km" binding:"omitempty,gt=0,max=500"`
	Status    string  `form:"status" binding:"omitempty,oneof=available busy cash_out offline"`
}

// AgentResponse is the agent profile as returned to callers.
type AgentResponse struct {
	ID             string  `json:"id"`
	OwnerUserID    string  `json:"owner_user_id"`
	BusinessName   string  `json:"business_name"`
	City           string  `json:"city,omitempty"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	IsActive       bool    `json:"is_active"`
	Status         string  `json:"status"`
	CashBalance    int64   `json:"cash_balance"`
	DigitalBalance int64   `json:"digital_balance"`
	CommissionRate float64 `json:"commission_rate"`
	DistanceKm     float64 `json:"distance_km,omitempty"`
}

// BalanceResponse is the wallet balance view.
type BalanceResponse struct {
	UserID   string `json:"user_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// TransactionResponse is a ledger entry as returned to callers.
type TransactionResponse struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	RecipientID string            `json:"recipient_id,omitempty"`
	AgentID     string            `json:"agent_id,omitempty"`
	Status      string            `json:"status"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   string            `json:"created_at"`
	CompletedAt *string           `json:"completed_at,omitempty"`
}

// RiskResponse is the advisory risk score view.
type RiskResponse struct {
	ActorID string `json:"actor_id"`
	Score   int    `json:"score"`
}
