package handler

import (
	"context"

	"agentpay/internal/adapter/http/dto"
	"agentpay/internal/adapter/http/middleware"
	"agentpay/internal/core/domain"
	"agentpay/internal/core/ports"
	"agentpay/pkg/apperror"
	"agentpay/pkg/response"

	"github.com/gin-gonic/gin"
)

type settleFunc func(ctx context.Context, requestID, agentID, code string) (*domain.EscrowRequest, error)

// EscrowHandler exposes the settlement request lifecycle. Users open
// requests; the named agent settles them by relaying the one-time code.
type EscrowHandler struct {
	escrowSvc ports.EscrowManager
	agentSvc  ports.AgentDirectory
}

// NewEscrowHandler creates a new EscrowHandler.
func NewEscrowHandler(escrowSvc ports.EscrowManager, agentSvc ports.AgentDirectory) *EscrowHandler {
	return &EscrowHandler{escrowSvc: escrowSvc, agentSvc: agentSvc}
}

// CreateDeposit handles POST /api/v1/deposits.
func (h *EscrowHandler) CreateDeposit(c *gin.Context) {
	h.create(c, h.escrowSvc.CreateDepositRequest)
}

// CreateWithdrawal handles POST /api/v1/withdrawals.
func (h *EscrowHandler) CreateWithdrawal(c *gin.Context) {
	h.create(c, h.escrowSvc.CreateWithdrawalRequest)
}

func (h *EscrowHandler) create(c *gin.Context, open func(ctx context.Context, userID, agentID string, amount int64, currency string) (*ports.EscrowResult, error)) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.CreateEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := open(c.Request.Context(), actorID, req.AgentID, req.Amount, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toEscrowResponse(result.Request, result.Code))
}

// ConfirmDeposit handles POST /api/v1/deposits/:id/confirm. The caller
// must own the agent named on the request.
func (h *EscrowHandler) ConfirmDeposit(c *gin.Context) {
	h.confirm(c, h.escrowSvc.ConfirmAndProcessDeposit)
}

// ConfirmWithdrawal handles POST /api/v1/withdrawals/:id/confirm.
func (h *EscrowHandler) ConfirmWithdrawal(c *gin.Context) {
	h.confirm(c, h.escrowSvc.ConfirmAndProcessWithdrawal)
}

func (h *EscrowHandler) confirm(c *gin.Context, settle settleFunc) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ConfirmEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	// The settlement side is always an agent; resolve the caller's.
	agent, err := h.agentSvc.GetByOwner(c.Request.Context(), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	settled, err := settle(c.Request.Context(), c.Param("id"), agent.ID, req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toEscrowResponse(settled, ""))
}
