package handler

import (
	"agentpay/internal/adapter/http/dto"
	"agentpay/internal/adapter/http/middleware"
	"agentpay/internal/core/ports"
	"agentpay/internal/service"
	"agentpay/pkg/apperror"
	"agentpay/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler exposes the actor's own balance, history, risk score and
// reconciliation views.
type WalletHandler struct {
	balances   ports.BalanceMaterializer
	ledger     ports.Ledger
	fraud      ports.FraudGuard
	reconciler *service.ReconcileService
	currency   string
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(balances ports.BalanceMaterializer, ledger ports.Ledger, fraud ports.FraudGuard, reconciler *service.ReconcileService, currency string) *WalletHandler {
	return &WalletHandler{
		balances:   balances,
		ledger:     ledger,
		fraud:      fraud,
		reconciler: reconciler,
		currency:   currency,
	}
}

// GetBalance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	amount, err := h.balances.GetBalance(c.Request.Context(), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{UserID: actorID, Amount: amount, Currency: h.currency})
}

// ListTransactions handles GET /api/v1/wallet/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	txs, err := h.ledger.ListByActor(c.Request.Context(), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTransactionResponses(txs))
}

// GetRiskScore handles GET /api/v1/wallet/risk. Advisory only.
func (h *WalletHandler) GetRiskScore(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	score, err := h.fraud.RiskScore(c.Request.Context(), actorID)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, dto.RiskResponse{ActorID: actorID, Score: score})
}

// Reconcile handles GET /api/v1/wallet/reconciliation — recomputes the
// caller's balance from the ledger and reports drift.
func (h *WalletHandler) Reconcile(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	report, err := h.reconciler.Reconcile(c.Request.Context(), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}
