package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agentpay/config"
	httpHandler "agentpay/internal/adapter/http/handler"
	memStorage "agentpay/internal/adapter/storage/memory"
	pgStorage "agentpay/internal/adapter/storage/postgres"
	redisStorage "agentpay/internal/adapter/storage/redis"
	"agentpay/internal/core/ports"
	"agentpay/internal/service"
	"agentpay/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("backend", cfg.Store.Backend).
		Int("port", cfg.Server.Port).
		Msg("Starting agent settlement core")

	ctx := context.Background()

	// Select the document store backend and matching health checks.
	var (
		store    ports.DocumentStore
		checkers []ports.HealthChecker
		patterns ports.PatternStore
		limiter  ports.RateLimiter
	)

	switch cfg.Store.Backend {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")
		store = pgStorage.NewDocStore(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	case "redis":
		client, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer client.Close()
		log.Info().Msg("Redis connected")
		store = redisStorage.NewDocStore(client)
		checkers = append(checkers, redisStorage.NewHealthCheck(client))
		if cfg.Store.SharedGuard {
			patterns = redisStorage.NewPatternStore(client)
			limiter = redisStorage.NewRateLimitStore(client, cfg.RateLimit.PerMinute, cfg.RateLimit.PerHour)
		}
	default:
		store = memStorage.NewDocStore()
	}

	// Guard state defaults to process-local memory.
	if patterns == nil {
		patterns = memStorage.NewPatternStore()
	}
	if limiter == nil {
		limiter = memStorage.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.PerHour)
	}

	// Core services
	idgen := service.NewUUIDGenerator()
	codeSvc := service.NewCodeService(cfg.Escrow.CodeSecret, cfg.Escrow.CodeLength)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	ledger := service.NewLedgerService(store, idgen, log)
	balances := service.NewBalanceService(store, cfg.Currency, cfg.Escrow.MaxCASRetries, log)
	agents := service.NewAgentService(store, idgen, cfg.Escrow.MaxCASRetries, log)
	fraud := service.NewFraudService(patterns, cfg.Fraud, log)
	reconciler := service.NewReconcileService(ledger, balances, log)

	notifier := service.NewLogNotifier(log)
	reward := service.NewLogRewardHook(log)

	escrow := service.NewEscrowService(
		store, ledger, balances, agents,
		fraud, limiter, codeSvc, idgen,
		notifier, reward,
		cfg.Escrow, cfg.Currency, log,
	)

	// Periodic expiry sweep for overdue settlement requests.
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				n, err := escrow.ExpireStale(sweepCtx, cfg.Escrow.RequestExpiry)
				if err != nil {
					log.Error().Err(err).Msg("expiry sweep failed")
				} else if n > 0 {
					log.Info().Int("expired", n).Msg("expiry sweep")
				}
			}
		}
	}()

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		EscrowSvc:      escrow,
		AgentSvc:       agents,
		Ledger:         ledger,
		Balances:       balances,
		Fraud:          fraud,
		Reconciler:     reconciler,
		TokenSvc:       tokenSvc,
		HealthCheckers: checkers,
		Currency:       cfg.Currency,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
