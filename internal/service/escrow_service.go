package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agentpay/config"
	"agentpay/internal/core/domain"
	"agentpay/internal/core/ports"
	"agentpay/pkg/apperror"

	"github.com/rs/zerolog"
)

// Rate limiter action names used by the settlement manager.
const (
	actionDeposit    = "deposit_request"
	actionWithdrawal = "withdrawal_request"
)

// Ledger entry ids for a settlement derive from the request id, one per
// leg. Creating the entry (a version-0 put, exactly once per id) is the
// gate for the balance mutation paired with that leg: a rival settler
// or a retry that finds the entry already recorded skips the leg
// instead of re-crediting.
const (
	legUser  = "-user"
	legAgent = "-agent"
	legFee   = "-fee"
)

// EscrowService orchestrates the deposit/withdrawal state machine:
// pending -> confirmed -> completed, rejected on expiry. Settlement is
// serialized through the escrow request's own version token: a claim
// write moves pending to confirmed (or bumps the attempt counter when
// retrying from confirmed), so concurrent settlers lose the version race
// before any balance moves. The final confirmed -> completed write is
// the commit point and always happens last.
type EscrowService struct {
	store    ports.DocumentStore
	ledger   ports.Ledger
	balances ports.BalanceMaterializer
	agents   ports.AgentDirectory
	fraud    ports.FraudGuard
	limiter  ports.RateLimiter
	codes    *CodeService
	idgen    ports.IDGenerator
	notifier ports.Notifier
	reward   ports.RewardHook
	cfg      config.EscrowConfig
	currency string
	log      zerolog.Logger
	now      func() time.Time
}

// NewEscrowService wires the settlement manager.
func NewEscrowService(
	store ports.DocumentStore,
	ledger ports.Ledger,
	balances ports.BalanceMaterializer,
	agents ports.AgentDirectory,
	fraud ports.FraudGuard,
	limiter ports.RateLimiter,
	codes *CodeService,
	idgen ports.IDGenerator,
	notifier ports.Notifier,
	reward ports.RewardHook,
	cfg config.EscrowConfig,
	currency string,
	log zerolog.Logger,
) *EscrowService {
	if cfg.MaxCASRetries <= 0 {
		cfg.MaxCASRetries = 3
	}
	if cfg.MaxCodeRetries <= 0 {
		cfg.MaxCodeRetries = 10
	}
	return &EscrowService{
		store:    store,
		ledger:   ledger,
		balances: balances,
		agents:   agents,
		fraud:    fraud,
		limiter:  limiter,
		codes:    codes,
		idgen:    idgen,
		notifier: notifier,
		reward:   reward,
		cfg:      cfg,
		currency: currency,
		log:      log,
		now:      time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (s *EscrowService) SetClock(now func() time.Time) {
	s.now = now
}

// CreateDepositRequest opens a cash-in: the user will hand the agent
// cash and receive digital balance once the agent confirms the code.
func (s *EscrowService) CreateDepositRequest(ctx context.Context, userID, agentID string, amount int64, currency string) (*ports.EscrowResult, error) {
	if err := s.validateCreate(userID, agentID, amount); err != nil {
		return nil, err
	}
	agent, err := s.agents.Get(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if err := s.gate(ctx, userID, agentID, amount, actionDeposit); err != nil {
		return nil, err
	}
	return s.createRequest(ctx, domain.EscrowKindDeposit, ports.CollectionDepositRequests,
		userID, agent, amount, s.pickCurrency(currency), 0, actionDeposit)
}

// CreateWithdrawalRequest opens a cash-out: the user gives up digital
// balance for the agent's cash. Fails fast if the user cannot cover the
// amount; the commission fee is computed here and stored on the request.
func (s *EscrowService) CreateWithdrawalRequest(ctx context.Context, userID, agentID string, amount int64, currency string) (*ports.EscrowResult, error) {
	if err := s.validateCreate(userID, agentID, amount); err != nil {
		return nil, err
	}
	agent, err := s.agents.Get(ctx, agentID)
	if err != nil {
		return nil, err
	}
	balance, err := s.balances.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance < amount {
		return nil, apperror.ErrInsufficientBalance()
	}
	if err := s.gate(ctx, userID, agentID, amount, actionWithdrawal); err != nil {
		return nil, err
	}
	fee := int64(float64(amount) * agent.CommissionRate)
	return s.createRequest(ctx, domain.EscrowKindWithdrawal, ports.CollectionWithdrawalRequests,
		userID, agent, amount, s.pickCurrency(currency), fee, actionWithdrawal)
}

// ConfirmAndProcessDeposit settles a deposit: the agent relays the
// user's code, fronts digital balance and takes the cash.
func (s *EscrowService) ConfirmAndProcessDeposit(ctx context.Context, requestID, agentID, code string) (*domain.EscrowRequest, error) {
	return s.settle(ctx, ports.CollectionDepositRequests, requestID, agentID, code, s.applyDeposit)
}

// ConfirmAndProcessWithdrawal settles a withdrawal: the agent pays out
// cash and absorbs the user's digital balance.
func (s *EscrowService) ConfirmAndProcessWithdrawal(ctx context.Context, requestID, agentID, code string) (*domain.EscrowRequest, error) {
	return s.settle(ctx, ports.CollectionWithdrawalRequests, requestID, agentID, code, s.applyWithdrawal)
}

// ExpireStale rejects pending and confirmed requests older than the
// cutoff. No balance effect; a lost version race means someone else is
// actively settling, so that request is skipped.
func (s *EscrowService) ExpireStale(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := s.now().Add(-olderThan)
	expired := 0
	for _, collection := range []string{ports.CollectionDepositRequests, ports.CollectionWithdrawalRequests} {
		docs, err := s.store.List(ctx, collection)
		if err != nil {
			return expired, apperror.InternalError(err)
		}
		for key, doc := range docs {
			var req domain.EscrowRequest
			if err := json.Unmarshal(doc.Data, &req); err != nil {
				return expired, apperror.InternalError(err)
			}
			if req.IsTerminal() || !req.CreatedAt.Before(cutoff) {
				continue
			}
			req.Status = domain.EscrowStatusRejected
			data, err := json.Marshal(req)
			if err != nil {
				return expired, apperror.InternalError(err)
			}
			if _, err := s.store.Put(ctx, collection, key, data, doc.Version); err != nil {
				if errors.Is(err, ports.ErrVersionConflict) {
					continue
				}
				return expired, apperror.InternalError(err)
			}
			expired++
			s.log.Info().
				Str("request_id", req.ID).
				Str("kind", string(req.Kind)).
				Msg("stale settlement request expired")
		}
	}
	return expired, nil
}

func (s *EscrowService) validateCreate(userID, agentID string, amount int64) error {
	if userID == "" || agentID == "" {
		return apperror.Validation("User and agent ids are required")
	}
	if amount <= 0 {
		return apperror.Validation("Amount must be positive")
	}
	return nil
}

func (s *EscrowService) pickCurrency(currency string) string {
	if currency == "" {
		return s.currency
	}
	return currency
}

// gate runs the advisory rate limiter and the fraud guard. Nothing is
// persisted when either blocks; typed errors surface verbatim.
func (s *EscrowService) gate(ctx context.Context, userID, agentID string, amount int64, action string) error {
	decision, err := s.limiter.Check(ctx, userID, action)
	if err != nil {
		return apperror.InternalError(err)
	}
	if !decision.Allowed {
		return apperror.ErrRateLimited(decision.Message)
	}
	check, err := s.fraud.CheckTransaction(ctx, userID, amount, agentID)
	if err != nil {
		return apperror.InternalError(err)
	}
	if check.IsSuspicious {
		return apperror.ErrFraudBlocked(check.Reason, string(check.RiskLevel))
	}
	return nil
}

func (s *EscrowService) createRequest(ctx context.Context, kind domain.EscrowKind, collection, userID string, agent *domain.Agent, amount int64, currency string, fee int64, action string) (*ports.EscrowResult, error) {
	code, digest, err := s.uniqueCode(ctx, collection)
	if err != nil {
		return nil, err
	}

	req := domain.EscrowRequest{
		ID:         s.idgen.NewID(),
		Kind:       kind,
		UserID:     userID,
		AgentID:    agent.ID,
		Amount:     amount,
		Currency:   currency,
		CodeDigest: digest,
		Status:     domain.EscrowStatusPending,
		Fee:        fee,
		CreatedAt:  s.now().UTC(),
	}
	data, err := json.Marshal(req)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if _, err := s.store.Put(ctx, collection, req.ID, data, 0); err != nil {
		return nil, apperror.InternalError(err)
	}

	// The operation proceeded: counters and pattern windows update now.
	if err := s.limiter.Record(ctx, userID, action); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("rate limiter record failed")
	}
	if err := s.fraud.RecordTransaction(ctx, userID, amount, agent.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("fraud pattern record failed")
	}

	if err := s.notifier.Send(ctx, userID, fmt.Sprintf("Your %s code is %s. Share it only with agent %s.", kind, code, agent.BusinessName)); err != nil {
		s.log.Warn().Err(err).Str("request_id", req.ID).Msg("settlement code notification failed")
	}

	s.log.Info().
		Str("request_id", req.ID).
		Str("kind", string(kind)).
		Str("user_id", userID).
		Str("agent_id", agent.ID).
		Int64("amount", amount).
		Msg("settlement request created")

	return &ports.EscrowResult{Request: &req, Code: code}, nil
}

// uniqueCode generates a code whose digest does not collide with any
// non-terminal request in the collection, regenerating on conflict.
func (s *EscrowService) uniqueCode(ctx context.Context, collection string) (string, string, error) {
	docs, err := s.store.List(ctx, collection)
	if err != nil {
		return "", "", apperror.InternalError(err)
	}
	live := make(map[string]bool)
	for _, doc := range docs {
		var req domain.EscrowRequest
		if err := json.Unmarshal(doc.Data, &req); err != nil {
			return "", "", apperror.InternalError(err)
		}
		if !req.IsTerminal() {
			live[req.CodeDigest] = true
		}
	}
	for i := 0; i < s.cfg.MaxCodeRetries; i++ {
		code, err := s.codes.Generate()
		if err != nil {
			return "", "", apperror.InternalError(err)
		}
		digest := s.codes.Digest(code)
		if !live[digest] {
			return code, digest, nil
		}
	}
	return "", "", apperror.InternalError(errors.New("could not generate a unique settlement code"))
}

// settle runs the shared settlement path: load, authorize, match the
// code, claim the request via CAS, move funds, then commit.
func (s *EscrowService) settle(ctx context.Context, collection, requestID, agentID, code string, apply func(context.Context, *domain.EscrowRequest) error) (*domain.EscrowRequest, error) {
	for attempt := 0; attempt < s.cfg.MaxCASRetries; attempt++ {
		doc, err := s.store.Get(ctx, collection, requestID)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		if doc == nil {
			return nil, apperror.ErrRequestNotFound()
		}
		var req domain.EscrowRequest
		if err := json.Unmarshal(doc.Data, &req); err != nil {
			return nil, apperror.InternalError(err)
		}

		if req.IsTerminal() {
			return nil, apperror.ErrRequestAlreadyProcessed()
		}
		if req.AgentID != agentID {
			return nil, apperror.ErrRequestNotAuthorized()
		}
		if !s.codes.Verify(code, req.CodeDigest) {
			// A wrong code is indistinguishable from a nonexistent request.
			return nil, apperror.ErrRequestNotFound()
		}

		// Claim: pending -> confirmed, or an attempt bump when retrying an
		// already-confirmed request. Either way the version moves, so a
		// concurrent claimant loses the race here and rereads.
		if req.Status == domain.EscrowStatusPending {
			req.Status = domain.EscrowStatusConfirmed
			confirmedAt := s.now().UTC()
			req.ConfirmedAt = &confirmedAt
		}
		req.Attempts++
		data, err := json.Marshal(req)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		claimed, err := s.store.Put(ctx, collection, requestID, data, doc.Version)
		if err != nil {
			if errors.Is(err, ports.ErrVersionConflict) {
				continue
			}
			return nil, apperror.InternalError(err)
		}

		// Funds move only while we hold the claim. Failures leave the
		// request confirmed and retriable; apply is idempotent per leg
		// (deterministic ledger entry ids), so a retry or a rival only
		// performs the legs that have not already landed.
		if err := apply(ctx, &req); err != nil {
			return nil, err
		}

		// Commit point: confirmed -> completed, written last.
		req.Status = domain.EscrowStatusCompleted
		completedAt := s.now().UTC()
		req.CompletedAt = &completedAt
		data, err = json.Marshal(req)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		if _, err := s.store.Put(ctx, collection, requestID, data, claimed); err != nil {
			if errors.Is(err, ports.ErrVersionConflict) {
				// A rival committed while we were applying. Reread: the
				// terminal check reports already-processed instead of
				// re-crediting anything.
				continue
			}
			return nil, apperror.InternalError(err)
		}

		s.log.Info().
			Str("request_id", req.ID).
			Str("kind", string(req.Kind)).
			Int64("amount", req.Amount).
			Msg("settlement completed")

		s.afterSettlement(ctx, &req)
		return &req, nil
	}
	return nil, apperror.ErrConcurrencyConflict()
}

// entryRecorded reports whether the ledger already holds the entry.
func (s *EscrowService) entryRecorded(ctx context.Context, id string) (bool, error) {
	if _, err := s.ledger.Get(ctx, id); err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// appendOnce writes the entry under its deterministic id, reporting
// whether this call created it. false with a nil error means a rival
// settler recorded the entry first; the balance mutation paired with
// the leg belongs to whoever actually created it.
func (s *EscrowService) appendOnce(ctx context.Context, entry domain.Transaction) (bool, error) {
	if _, err := s.ledger.Append(ctx, entry); err != nil {
		if apperror.HasCode(err, apperror.CodeConcurrencyConflict) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// applyDeposit moves funds for a claimed deposit: agent digital pool
// down, user balance up, with the paired ledger entries written first.
// Idempotent per leg: entry ids derive from the request id, so a rival
// settler or a retry skips whatever already landed.
func (s *EscrowService) applyDeposit(ctx context.Context, req *domain.EscrowRequest) error {
	agent, err := s.agents.Get(ctx, req.AgentID)
	if err != nil {
		return err
	}
	userDone, err := s.entryRecorded(ctx, req.ID+legUser)
	if err != nil {
		return err
	}
	agentDone, err := s.entryRecorded(ctx, req.ID+legAgent)
	if err != nil {
		return err
	}
	// Fresh attempt: verify the float before anything is written.
	if !userDone && !agentDone && agent.DigitalBalance < req.Amount {
		return apperror.ErrInsufficientAgentBalance("digital")
	}

	completedAt := s.now().UTC()
	meta := map[string]string{
		domain.MetaSourceRequestID: req.ID,
		domain.MetaEscrowKind:      string(req.Kind),
	}

	// User-side entry: cash in, digital balance up.
	createdUser := false
	if !userDone {
		createdUser, err = s.appendOnce(ctx, domain.Transaction{
			ID:          req.ID + legUser,
			ActorUserID: req.UserID,
			Type:        domain.TransactionTypeDeposit,
			Amount:      req.Amount,
			Currency:    req.Currency,
			AgentID:     req.AgentID,
			Status:      domain.TransactionStatusCompleted,
			Metadata:    meta,
			CompletedAt: &completedAt,
		})
		if err != nil {
			return err
		}
	}

	// Agent-side entry: the agent fronts digital balance to the user.
	agentMeta := map[string]string{
		domain.MetaSourceRequestID: req.ID,
		domain.MetaEscrowKind:      string(req.Kind),
		domain.MetaAgentSide:       "true",
	}
	createdAgent := false
	if !agentDone {
		createdAgent, err = s.appendOnce(ctx, domain.Transaction{
			ID:          req.ID + legAgent,
			ActorUserID: agent.OwnerUserID,
			Type:        domain.TransactionTypeSend,
			Amount:      req.Amount,
			Currency:    req.Currency,
			RecipientID: req.UserID,
			AgentID:     req.AgentID,
			Status:      domain.TransactionStatusCompleted,
			Metadata:    agentMeta,
			CompletedAt: &completedAt,
		})
		if err != nil {
			return err
		}
	}

	// Agent first: its CAS re-verifies the digital pool, so an
	// insufficient float aborts before the user is credited.
	if createdAgent {
		if _, err := s.agents.UpdateBalances(ctx, req.AgentID, ports.AgentBalanceDelta{
			CashDelta:    req.Amount,
			DigitalDelta: -req.Amount,
		}); err != nil {
			return err
		}
	}
	if createdUser {
		if _, err := s.balances.Apply(ctx, req.UserID, req.Amount); err != nil {
			return err
		}
	}
	return nil
}

// applyWithdrawal is the mirror: user balance down, agent cash down and
// digital up by the same amount, fee recorded separately.
func (s *EscrowService) applyWithdrawal(ctx context.Context, req *domain.EscrowRequest) error {
	agent, err := s.agents.Get(ctx, req.AgentID)
	if err != nil {
		return err
	}
	userDone, err := s.entryRecorded(ctx, req.ID+legUser)
	if err != nil {
		return err
	}
	agentDone, err := s.entryRecorded(ctx, req.ID+legAgent)
	if err != nil {
		return err
	}
	feeDone := false
	if req.Fee > 0 {
		if feeDone, err = s.entryRecorded(ctx, req.ID+legFee); err != nil {
			return err
		}
	}
	// Fresh attempt: verify both sides before anything is written.
	if !userDone && !agentDone {
		if agent.CashBalance < req.Amount {
			return apperror.ErrInsufficientAgentBalance("cash")
		}
		balance, err := s.balances.GetBalance(ctx, req.UserID)
		if err != nil {
			return err
		}
		if balance < req.Amount+req.Fee {
			return apperror.ErrInsufficientBalance()
		}
	}

	completedAt := s.now().UTC()
	meta := map[string]string{
		domain.MetaSourceRequestID: req.ID,
		domain.MetaEscrowKind:      string(req.Kind),
	}

	createdUser := false
	if !userDone {
		createdUser, err = s.appendOnce(ctx, domain.Transaction{
			ID:          req.ID + legUser,
			ActorUserID: req.UserID,
			Type:        domain.TransactionTypeWithdraw,
			Amount:      req.Amount,
			Currency:    req.Currency,
			AgentID:     req.AgentID,
			Status:      domain.TransactionStatusCompleted,
			Metadata:    meta,
			CompletedAt: &completedAt,
		})
		if err != nil {
			return err
		}
	}

	// Fee entry, never netted into the withdrawal amount.
	if req.Fee > 0 && !feeDone {
		if _, err := s.appendOnce(ctx, domain.Transaction{
			ID:          req.ID + legFee,
			ActorUserID: req.UserID,
			Type:        domain.TransactionTypeFee,
			Amount:      req.Fee,
			Currency:    req.Currency,
			RecipientID: agent.OwnerUserID,
			AgentID:     req.AgentID,
			Status:      domain.TransactionStatusCompleted,
			Metadata:    meta,
			CompletedAt: &completedAt,
		}); err != nil {
			return err
		}
	}

	// Agent-side entry: cash out, digital absorbed.
	agentMeta := map[string]string{
		domain.MetaSourceRequestID: req.ID,
		domain.MetaEscrowKind:      string(req.Kind),
		domain.MetaAgentSide:       "true",
	}
	createdAgent := false
	if !agentDone {
		createdAgent, err = s.appendOnce(ctx, domain.Transaction{
			ID:          req.ID + legAgent,
			ActorUserID: agent.OwnerUserID,
			Type:        domain.TransactionTypeReceive,
			Amount:      req.Amount,
			Currency:    req.Currency,
			RecipientID: req.UserID,
			AgentID:     req.AgentID,
			Status:      domain.TransactionStatusCompleted,
			Metadata:    agentMeta,
			CompletedAt: &completedAt,
		})
		if err != nil {
			return err
		}
	}

	// Agent first again: the cash-pool CAS is the real sufficiency check.
	// The fee lands in the agent's digital pool as commission.
	if createdAgent {
		if _, err := s.agents.UpdateBalances(ctx, req.AgentID, ports.AgentBalanceDelta{
			CashDelta:    -req.Amount,
			DigitalDelta: req.Amount + req.Fee,
		}); err != nil {
			return err
		}
	}
	if createdUser {
		if _, err := s.balances.Apply(ctx, req.UserID, -(req.Amount + req.Fee)); err != nil {
			return err
		}
	}
	return nil
}

// afterSettlement fires the best-effort hooks. Failures are logged,
// never rolled back.
func (s *EscrowService) afterSettlement(ctx context.Context, req *domain.EscrowRequest) {
	if err := s.reward.SettlementCompleted(ctx, req.AgentID, string(req.Kind)); err != nil {
		s.log.Warn().Err(err).Str("request_id", req.ID).Msg("reward hook failed")
	}
	if err := s.notifier.Send(ctx, req.UserID, fmt.Sprintf("Your %s of %d %s is complete.", req.Kind, req.Amount, req.Currency)); err != nil {
		s.log.Warn().Err(err).Str("request_id", req.ID).Msg("completion notification failed")
	}
}
