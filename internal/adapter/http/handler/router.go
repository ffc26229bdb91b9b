package handler

import (
	"agentpay/internal/adapter/http/middleware"
	"agentpay/internal/core/ports"
	"agentpay/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	EscrowSvc      ports.EscrowManager
	AgentSvc       ports.AgentDirectory
	Ledger         ports.Ledger
	Balances       ports.BalanceMaterializer
	Fraud          ports.FraudGuard
	Reconciler     *service.ReconcileService
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Currency       string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies the configured stores)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	escrowHandler := NewEscrowHandler(deps.EscrowSvc, deps.AgentSvc)
	agentHandler := NewAgentHandler(deps.AgentSvc)
	walletHandler := NewWalletHandler(deps.Balances, deps.Ledger, deps.Fraud, deps.Reconciler, deps.Currency)

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	v1 := r.Group("/api/v1")

	// Agent discovery is public; everything else needs a bearer token.
	v1.GET("/agents/nearby", agentHandler.Nearby)

	deposits := v1.Group("/deposits", jwtAuth)
	{
		deposits.POST("", escrowHandler.CreateDeposit)
		deposits.POST("/:id/confirm", escrowHandler.ConfirmDeposit)
	}

	withdrawals := v1.Group("/withdrawals", jwtAuth)
	{
		withdrawals.POST("", escrowHandler.CreateWithdrawal)
		withdrawals.POST("/:id/confirm", escrowHandler.ConfirmWithdrawal)
	}

	agents := v1.Group("/agents", jwtAuth)
	{
		agents.POST("", agentHandler.Register)
		agents.GET("/me", agentHandler.GetProfile)
		agents.PUT("/me/status", agentHandler.UpdateStatus)
		agents.POST("/me/funding", agentHandler.Fund)
	}

	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("/balance", walletHandler.GetBalance)
		wallet.GET("/transactions", walletHandler.ListTransactions)
		wallet.GET("/risk", walletHandler.GetRiskScore)
		wallet.GET("/reconciliation", walletHandler.Reconcile)
	}

	return r
}
