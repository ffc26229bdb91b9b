package handler

import (
	"agentpay/internal/adapter/http/dto"
	"agentpay/internal/adapter/http/middleware"
	"agentpay/internal/core/domain"
	"agentpay/internal/core/ports"
	"agentpay/pkg/apperror"
	"agentpay/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultNearbyRadiusKm = 10

// AgentHandler exposes agent registration, float management and discovery.
type AgentHandler struct {
	agentSvc ports.AgentDirectory
}

// NewAgentHandler creates a new AgentHandler.
func NewAgentHandler(agentSvc ports.AgentDirectory) *AgentHandler {
	return &AgentHandler{agentSvc: agentSvc}
}

// Register handles POST /api/v1/agents. Idempotent per owner: repeating
// the call returns the existing agent.
func (h *AgentHandler) Register(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	agent, err := h.agentSvc.Create(c.Request.Context(), ports.CreateAgentInput{
		OwnerUserID:  actorID,
		BusinessName: req.BusinessName,
		Location: domain.Location{
			Country:   req.Country,
			State:     req.State,
			City:      req.City,
			Address:   req.Address,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
		CommissionRate: req.CommissionRate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toAgentResponse(agent, 0))
}

// GetProfile handles GET /api/v1/agents/me.
func (h *AgentHandler) GetProfile(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	agent, err := h.agentSvc.GetByOwner(c.Request.Context(), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAgentResponse(agent, 0))
}

// UpdateStatus handles PUT /api/v1/agents/me/status.
func (h *AgentHandler) UpdateStatus(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UpdateAgentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	agent, err := h.agentSvc.GetByOwner(c.Request.Context(), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	updated, err := h.agentSvc.UpdateStatus(c.Request.Context(), agent.ID, domain.AgentStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAgentResponse(updated, 0))
}

// Fund handles POST /api/v1/agents/me/funding — cash/digital float
// management for the agent owner.
func (h *AgentHandler) Fund(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.FundAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.CashDelta == 0 && req.DigitalDelta == 0 {
		response.Error(c, apperror.Validation("At least one delta must be non-zero"))
		return
	}

	agent, err := h.agentSvc.GetByOwner(c.Request.Context(), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	updated, err := h.agentSvc.UpdateBalances(c.Request.Context(), agent.ID, ports.AgentBalanceDelta{
		CashDelta:    req.CashDelta,
		DigitalDelta: req.DigitalDelta,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toAgentResponse(updated, 0))
}

// Nearby handles GET /api/v1/agents/nearby?lat=&lng=&radius_km=&status=.
func (h *AgentHandler) Nearby(c *gin.Context) {
	var req dto.NearbyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.RadiusKm == 0 {
		req.RadiusKm = defaultNearbyRadiusKm
	}

	q := ports.NearbyQuery{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RadiusKm:  req.RadiusKm,
	}
	if req.Status != "" {
		q.Statuses = []domain.AgentStatus{domain.AgentStatus(req.Status)}
	}

	results, err := h.agentSvc.Nearby(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toNearbyResponses(results))
}
