package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"agentpay/config"
	"agentpay/internal/adapter/storage/memory"
	"agentpay/internal/core/domain"
	"agentpay/internal/core/ports"
	"agentpay/internal/core/ports/mocks"
	"agentpay/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type escrowTestDeps struct {
	svc      *EscrowService
	store    *memory.DocStore
	ledger   *LedgerService
	balances *BalanceService
	agents   *AgentService
	codes    *CodeService
	fraud    *mocks.MockFraudGuard
	limiter  *mocks.MockRateLimiter
	notifier *mocks.MockNotifier
	reward   *mocks.MockRewardHook
	ctrl     *gomock.Controller
}

func setupEscrowService(t *testing.T) *escrowTestDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := memory.NewDocStore()
	idgen := NewUUIDGenerator()
	log := zerolog.Nop()

	d := &escrowTestDeps{
		store:    store,
		ledger:   NewLedgerService(store, idgen, log),
		balances: NewBalanceService(store, "TZS", 3, log),
		agents:   NewAgentService(store, idgen, 3, log),
		codes:    NewCodeService("test-code-secret", 6),
		fraud:    mocks.NewMockFraudGuard(ctrl),
		limiter:  mocks.NewMockRateLimiter(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		reward:   mocks.NewMockRewardHook(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewEscrowService(
		store, d.ledger, d.balances, d.agents,
		d.fraud, d.limiter, d.codes, idgen,
		d.notifier, d.reward,
		config.EscrowConfig{
			CodeLength:     6,
			CodeSecret:     "test-code-secret",
			RequestExpiry:  24 * time.Hour,
			MaxCASRetries:  3,
			MaxCodeRetries: 10,
		},
		"TZS", log,
	)
	return d
}

// allowAll disarms the gate and hook mocks for tests that focus on the
// settlement mechanics.
func (d *escrowTestDeps) allowAll() {
	d.limiter.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ports.RateDecision{Allowed: true}, nil).AnyTimes()
	d.limiter.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.fraud.EXPECT().CheckTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ports.FraudCheck{IsSuspicious: false, RiskLevel: ports.RiskLow}, nil).AnyTimes()
	d.fraud.EXPECT().RecordTransaction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.notifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.reward.EXPECT().SettlementCompleted(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// fundedAgent registers an agent and sets its float.
func (d *escrowTestDeps) fundedAgent(t *testing.T, owner string, cash, digital int64) *domain.Agent {
	t.Helper()
	agent, err := d.agents.Create(context.Background(), ports.CreateAgentInput{
		OwnerUserID:    owner,
		BusinessName:   "Kariakoo Mobile Money",
		Location:       domain.Location{Latitude: -6.8160, Longitude: 39.2803},
		CommissionRate: 0.01,
	})
	require.NoError(t, err)
	if cash != 0 || digital != 0 {
		agent, err = d.agents.UpdateBalances(context.Background(), agent.ID, ports.AgentBalanceDelta{
			CashDelta:    cash,
			DigitalDelta: digital,
		})
		require.NoError(t, err)
	}
	return agent
}

func TestEscrowService_CreateDepositRequest(t *testing.T) {
	d := setupEscrowService(t)
	d.allowAll()
	agent := d.fundedAgent(t, "agent-owner", 0, 500_000)

	result, err := d.svc.CreateDepositRequest(context.Background(), "user-1", agent.ID, 100_000, "")
	require.NoError(t, err)
	require.NotNil(t, result.Request)
	assert.Len(t, result.Code, 6)
	assert.Equal(t, domain.EscrowStatusPending, result.Request.Status)
	assert.Equal(t, domain.EscrowKindDeposit, result.Request.Kind)
	assert.Equal(t, "TZS", result.Request.Currency)

	// Only the digest is persisted, and it matches the returned code.
	doc, err := d.store.Get(context.Background(), ports.CollectionDepositRequests, result.Request.ID)
	require.NoError(t, err)
	require.NotNil(t, doc)
	var stored domain.EscrowRequest
	require.NoError(t, json.Unmarshal(doc.Data, &stored))
	assert.True(t, d.codes.Verify(result.Code, stored.CodeDigest))
	assert.NotContains(t, string(doc.Data), result.Code)
}

func TestEscrowService_CreateDepositRequest_Validation(t *testing.T) {
	d := setupEscrowService(t)

	_, err := d.svc.CreateDepositRequest(context.Background(), "", "agent", 100, "")
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))

	_, err = d.svc.CreateDepositRequest(context.Background(), "user", "agent", 0, "")
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestEscrowService_CreateDepositRequest_FraudBlocked(t *testing.T) {
	d := setupEscrowService(t)
	agent := d.fundedAgent(t, "agent-owner", 0, 500_000)

	d.limiter.EXPECT().Check(gomock.Any(), "user-1", actionDeposit).
		Return(&ports.RateDecision{Allowed: true}, nil)
	d.fraud.EXPECT().CheckTransaction(gomock.Any(), "user-1", int64(9_000_000), agent.ID).
		Return(&ports.FraudCheck{
			IsSuspicious: true,
			Reason:       "Amount exceeds the single-transaction limit of 5000000",
			RiskLevel:    ports.RiskHigh,
		}, nil)
	// No Record, no notification: nothing proceeded.

	_, err := d.svc.CreateDepositRequest(context.Background(), "user-1", agent.ID, 9_000_000, "")
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeFraudBlocked))
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "high", appErr.Details["risk_level"])

	// Nothing persisted.
	docs, err := d.store.List(context.Background(), ports.CollectionDepositRequests)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestEscrowService_CreateDepositRequest_RateLimited(t *testing.T) {
	d := setupEscrowService(t)
	agent := d.fundedAgent(t, "agent-owner", 0, 500_000)

	d.limiter.EXPECT().Check(gomock.Any(), "user-1", actionDeposit).
		Return(&ports.RateDecision{Allowed: false, Message: "Too many requests this minute"}, nil)

	_, err := d.svc.CreateDepositRequest(context.Background(), "user-1", agent.ID, 100_000, "")
	assert.True(t, apperror.HasCode(err, apperror.CodeRateLimited))
}

func TestEscrowService_CreateWithdrawalRequest_InsufficientBalance(t *testing.T) {
	d := setupEscrowService(t)
	agent := d.fundedAgent(t, "agent-owner", 500_000, 0)

	_, err := d.balances.Apply(context.Background(), "user-1", 100_000)
	require.NoError(t, err)

	// The §8 scenario: 150,000 against a 100,000 balance fails fast.
	_, err = d.svc.CreateWithdrawalRequest(context.Background(), "user-1", agent.ID, 150_000, "")
	assert.True(t, apperror.HasCode(err, apperror.CodeInsufficientBalance))

	docs, err := d.store.List(context.Background(), ports.CollectionWithdrawalRequests)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestEscrowService_CreateWithdrawalRequest_FeeFromCommission(t *testing.T) {
	d := setupEscrowService(t)
	d.allowAll()
	agent := d.fundedAgent(t, "agent-owner", 500_000, 0)

	_, err := d.balances.Apply(context.Background(), "user-1", 300_000)
	require.NoError(t, err)

	result, err := d.svc.CreateWithdrawalRequest(context.Background(), "user-1", agent.ID, 150_000, "")
	require.NoError(t, err)
	// 1% of 150,000.
	assert.Equal(t, int64(1_500), result.Request.Fee)
}

func TestEscrowService_DepositSettlement(t *testing.T) {
	d := setupEscrowService(t)
	d.allowAll()
	ctx := context.Background()
	agent := d.fundedAgent(t, "agent-owner", 0, 500_000)

	result, err := d.svc.CreateDepositRequest(ctx, "user-1", agent.ID, 100_000, "")
	require.NoError(t, err)

	settled, err := d.svc.ConfirmAndProcessDeposit(ctx, result.Request.ID, agent.ID, result.Code)
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowStatusCompleted, settled.Status)
	require.NotNil(t, settled.ConfirmedAt)
	require.NotNil(t, settled.CompletedAt)

	// User credited, agent digital pool down, cash up.
	balance, err := d.balances.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100_000), balance)

	after, err := d.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(400_000), after.DigitalBalance)
	assert.Equal(t, int64(100_000), after.CashBalance)

	// Paired ledger entries, with the agent side marked.
	userTxs, err := d.ledger.ListByActor(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, userTxs, 1)
	assert.Equal(t, domain.TransactionTypeDeposit, userTxs[0].Type)
	assert.Equal(t, result.Request.ID, userTxs[0].Metadata[domain.MetaSourceRequestID])
	assert.False(t, userTxs[0].IsAgentSide())

	agentTxs, err := d.ledger.ListByAgent(ctx, agent.ID)
	require.NoError(t, err)
	require.Len(t, agentTxs, 2)
}

func TestEscrowService_DepositSettlement_WrongAgent(t *testing.T) {
	d := setupEscrowService(t)
	d.allowAll()
	ctx := context.Background()
	agent := d.fundedAgent(t, "agent-owner", 0, 500_000)
	intruder := d.fundedAgent(t, "other-owner", 0, 500_000)

	result, err := d.svc.CreateDepositRequest(ctx, "user-1", agent.ID, 100_000, "")
	require.NoError(t, err)

	_, err = d.svc.ConfirmAndProcessDeposit(ctx, result.Request.ID, intruder.ID, result.Code)
	assert.True(t, apperror.HasCode(err, apperror.CodeRequestNotAuthorized))

	// Nothing moved.
	balance, err := d.balances.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestEscrowService_DepositSettlement_WrongCode(t *testing.T) {
	d := setupEscrowService(t)
	d.allowAll()
	ctx := context.Background()
	agent := d.fundedAgent(t, "agent-owner", 0, 500_000)

	result, err := d.svc.CreateDepositRequest(ctx, "user-1", agent.ID, 100_000, "")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == result.Code {
		wrong = "000001"
	}
	_, err = d.svc.ConfirmAndProcessDeposit(ctx, result.Request.ID, agent.ID, wrong)
	assert.True(t, apperror.HasCode(err, apperror.CodeRequestNotFound))

	// Request untouched and still settleable.
	settled, err := d.svc.ConfirmAndProcessDeposit(ctx, result.Request.ID, agent.ID, result.Code)
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowStatusCompleted, settled.Status)
}

func TestEscrowService_DepositSettlement_DoubleComplete(t *testing.T) {
	d := setupEscrowService(t)
	d.allowAll()
	ctx := context.Background()
	agent := d.fundedAgent(t, "agent-owner", 0, 500_000)

	result, err := d.svc.CreateDepositRequest(ctx, "user-1", agent.ID, 100_000, "")
	require.NoError(t, err)

	_, err = d.svc.ConfirmAndProcessDeposit(ctx, result.Request.ID, agent.ID, result.Code)
	require.NoError(t, err)

	_, err = d.svc.ConfirmAndProcessDeposit(ctx, result.Request.ID, agent.ID, result.Code)
	assert.True(t, apperror.HasCode(err, apperror.CodeRequestAlreadyProcessed))

	// Exactly one mutation.
	balance, err := d.balances.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100_000), balance)

	after, err := d.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(400_000), after.DigitalBalance)
}

// commitHookStore lets a test interpose between a settler's fund
// movement and its commit write.
type commitHookStore struct {
	ports.DocumentStore
	before func(collection string, data []byte)
}

func (s *commitHookStore) Put(ctx context.Context, collection, key string, data []byte, expectedVersion int64) (int64, error) {
	if s.before != nil {
		s.before(collection, data)
	}
	return s.DocumentStore.Put(ctx, collection, key, data, expectedVersion)
}

// A second settler claims the request through the attempt bump while the
// first settler sits between moving funds and committing. The legs must
// land exactly once, the rival completes the request, and the first
// settler's stale commit surfaces as already-processed.
func TestEscrowService_DepositSettlement_RivalSettlerDuringCommit(t *testing.T) {
	d := setupEscrowService(t)
	d.allowAll()
	ctx := context.Background()
	agent := d.fundedAgent(t, "agent-owner", 0, 500_000)

	result, err := d.svc.CreateDepositRequest(ctx, "user-1", agent.ID, 100_000, "")
	require.NoError(t, err)

	hooked := &commitHookStore{DocumentStore: d.store}
	first := NewEscrowService(
		hooked, d.ledger, d.balances, d.agents,
		d.fraud, d.limiter, d.codes, NewUUIDGenerator(),
		d.notifier, d.reward,
		config.EscrowConfig{
			CodeLength:     6,
			CodeSecret:     "test-code-secret",
			RequestExpiry:  24 * time.Hour,
			MaxCASRetries:  3,
			MaxCodeRetries: 10,
		},
		"TZS", zerolog.Nop(),
	)

	var rival *domain.EscrowRequest
	var rivalErr error
	hooked.before = func(collection string, data []byte) {
		if collection != ports.CollectionDepositRequests || !bytes.Contains(data, []byte(`"status":"completed"`)) {
			return
		}
		hooked.before = nil
		// The first settler has applied but not committed; the rival runs
		// the whole settlement in that window.
		rival, rivalErr = d.svc.ConfirmAndProcessDeposit(ctx, result.Request.ID, agent.ID, result.Code)
	}

	_, err = first.ConfirmAndProcessDeposit(ctx, result.Request.ID, agent.ID, result.Code)
	assert.True(t, apperror.HasCode(err, apperror.CodeRequestAlreadyProcessed))

	require.NoError(t, rivalErr)
	require.NotNil(t, rival)
	assert.Equal(t, domain.EscrowStatusCompleted, rival.Status)

	// Funds moved exactly once between the two settlers.
	balance, err := d.balances.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100_000), balance)

	after, err := d.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(400_000), after.DigitalBalance)
	assert.Equal(t, int64(100_000), after.CashBalance)

	agentTxs, err := d.ledger.ListByAgent(ctx, agent.ID)
	require.NoError(t, err)
	assert.Len(t, agentTxs, 2)
}

func TestEscrowService_DepositSettlement_InsufficientFloatIsRetriable(t *testing.T) {
	d := setupEscrowService(t)
	d.allowAll()
	ctx := context.Background()
	agent := d.fundedAgent(t, "agent-owner", 0, 50_000)

	result, err := d.svc.CreateDepositRequest(ctx, "user-1", agent.ID, 100_000, "")
	require.NoError(t, err)

	_, err = d.svc.ConfirmAndProcessDeposit(ctx, result.Request.ID, agent.ID, result.Code)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeInsufficientAgentBalance))

	// The claim stuck: request is confirmed, no funds moved.
	doc, err := d.store.Get(ctx, ports.CollectionDepositRequests, result.Request.ID)
	require.NoError(t, err)
	var stored domain.EscrowRequest
	require.NoError(t, json.Unmarshal(doc.Data, &stored))
	assert.Equal(t, domain.EscrowStatusConfirmed, stored.Status)

	balance, err := d.balances.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	// Agent funds more float; the retry completes.
	_, err = d.agents.UpdateBalances(ctx, agent.ID, ports.AgentBalanceDelta{DigitalDelta: 100_000})
	require.NoError(t, err)

	settled, err := d.svc.ConfirmAndProcessDeposit(ctx, result.Request.ID, agent.ID, result.Code)
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowStatusCompleted, settled.Status)

	balance, err = d.balances.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100_000), balance)
}

func TestEscrowService_WithdrawalSettlement(t *testing.T) {
	d := setupEscrowService(t)
	d.allowAll()
	ctx := context.Background()
	agent := d.fundedAgent(t, "agent-owner", 500_000, 0)

	_, err := d.balances.Apply(ctx, "user-1", 200_000)
	require.NoError(t, err)

	result, err := d.svc.CreateWithdrawalRequest(ctx, "user-1", agent.ID, 150_000, "")
	require.NoError(t, err)
	require.Equal(t, int64(1_500), result.Request.Fee)

	settled, err := d.svc.ConfirmAndProcessWithdrawal(ctx, result.Request.ID, agent.ID, result.Code)
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowStatusCompleted, settled.Status)

	// User pays amount plus fee.
	balance, err := d.balances.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(200_000-150_000-1_500), balance)

	// Agent: cash paid out, digital absorbed plus commission.
	after, err := d.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(350_000), after.CashBalance)
	assert.Equal(t, int64(151_500), after.DigitalBalance)

	// Withdraw and fee entries, fee never netted.
	userTxs, err := d.ledger.ListByActor(ctx, "user-1")
	require.NoError(t, err)
	types := make(map[domain.TransactionType]int64)
	for _, tx := range userTxs {
		if !tx.IsAgentSide() {
			types[tx.Type] = tx.Amount
		}
	}
	assert.Equal(t, int64(150_000), types[domain.TransactionTypeWithdraw])
	assert.Equal(t, int64(1_500), types[domain.TransactionTypeFee])
}

func TestEscrowService_WithdrawalSettlement_InsufficientCash(t *testing.T) {
	d := setupEscrowService(t)
	d.allowAll()
	ctx := context.Background()
	agent := d.fundedAgent(t, "agent-owner", 100_000, 0)

	_, err := d.balances.Apply(ctx, "user-1", 300_000)
	require.NoError(t, err)

	result, err := d.svc.CreateWithdrawalRequest(ctx, "user-1", agent.ID, 150_000, "")
	require.NoError(t, err)

	_, err = d.svc.ConfirmAndProcessWithdrawal(ctx, result.Request.ID, agent.ID, result.Code)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeInsufficientAgentBalance))
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "cash", appErr.Details["pool"])

	// No balance moved anywhere.
	balance, err := d.balances.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(300_000), balance)
	after, err := d.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100_000), after.CashBalance)
}

func TestEscrowService_ExpireStale(t *testing.T) {
	d := setupEscrowService(t)
	d.allowAll()
	ctx := context.Background()
	agent := d.fundedAgent(t, "agent-owner", 500_000, 500_000)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	d.svc.SetClock(func() time.Time { return base })

	stale, err := d.svc.CreateDepositRequest(ctx, "user-1", agent.ID, 100_000, "")
	require.NoError(t, err)

	d.svc.SetClock(func() time.Time { return base.Add(23 * time.Hour) })
	fresh, err := d.svc.CreateDepositRequest(ctx, "user-2", agent.ID, 100_000, "")
	require.NoError(t, err)

	d.svc.SetClock(func() time.Time { return base.Add(25 * time.Hour) })
	expired, err := d.svc.ExpireStale(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	// Stale request is terminal now; settlement refuses it.
	_, err = d.svc.ConfirmAndProcessDeposit(ctx, stale.Request.ID, agent.ID, stale.Code)
	assert.True(t, apperror.HasCode(err, apperror.CodeRequestAlreadyProcessed))

	// The fresh one still settles.
	settled, err := d.svc.ConfirmAndProcessDeposit(ctx, fresh.Request.ID, agent.ID, fresh.Code)
	require.NoError(t, err)
	assert.Equal(t, domain.EscrowStatusCompleted, settled.Status)
}

func TestEscrowService_ExpireStale_NoBalanceEffect(t *testing.T) {
	d := setupEscrowService(t)
	d.allowAll()
	ctx := context.Background()
	agent := d.fundedAgent(t, "agent-owner", 500_000, 500_000)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	d.svc.SetClock(func() time.Time { return base })
	_, err := d.svc.CreateDepositRequest(ctx, "user-1", agent.ID, 100_000, "")
	require.NoError(t, err)

	d.svc.SetClock(func() time.Time { return base.Add(48 * time.Hour) })
	_, err = d.svc.ExpireStale(ctx, 24*time.Hour)
	require.NoError(t, err)

	balance, err := d.balances.GetBalance(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
	after, err := d.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500_000), after.DigitalBalance)
}
