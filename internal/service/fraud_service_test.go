package service

import (
	"context"
	"testing"
	"time"

	"agentpay/config"
	"agentpay/internal/adapter/storage/memory"
	"agentpay/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFraudConfig() config.FraudConfig {
	return config.FraudConfig{
		MaxSingleAmount:        5_000_000,
		RapidFireWindow:        30 * time.Second,
		RapidFireCount:         3,
		HourlyTxLimit:          10,
		HourlyAmountLimit:      10_000_000,
		DailyTxLimit:           50,
		DailyAmountLimit:       50_000_000,
		HourlyDistinctParties:  5,
		HourlySameParty:        3,
		NewAccountAge:          24 * time.Hour,
		NewAccountMaxSingle:    1_000_000,
		NewAccountDailyAmount:  2_000_000,
		RoundUnit:              100_000,
		PatternWindowSize:      100,
		LargeTransactionFactor: 0.5,
	}
}

type fraudFixture struct {
	svc   *FraudService
	now   time.Time
	actor string
}

func newFraudFixture(t *testing.T) *fraudFixture {
	t.Helper()
	f := &fraudFixture{
		svc:   NewFraudService(memory.NewPatternStore(), testFraudConfig(), zerolog.Nop()),
		now:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		actor: "255700000001",
	}
	f.svc.SetClock(func() time.Time { return f.now })
	return f
}

// seed records a transaction at an offset from the fixture's current time.
func (f *fraudFixture) seed(t *testing.T, offset time.Duration, amount int64, counterpart string) {
	t.Helper()
	saved := f.now
	f.now = saved.Add(offset)
	require.NoError(t, f.svc.RecordTransaction(context.Background(), f.actor, amount, counterpart))
	f.now = saved
}

// age pushes the actor's first-seen far enough back to not count as new.
func (f *fraudFixture) age(t *testing.T) {
	t.Helper()
	f.seed(t, -48*time.Hour, 1, "warmup")
}

func TestFraudService_CleanTransaction(t *testing.T) {
	f := newFraudFixture(t)
	f.age(t)

	check, err := f.svc.CheckTransaction(context.Background(), f.actor, 50_000, "agent-1")
	require.NoError(t, err)
	assert.False(t, check.IsSuspicious)
	assert.Equal(t, ports.RiskLow, check.RiskLevel)
}

func TestFraudService_SingleAmountCeiling(t *testing.T) {
	f := newFraudFixture(t)
	f.age(t)

	check, err := f.svc.CheckTransaction(context.Background(), f.actor, 5_000_001, "agent-1")
	require.NoError(t, err)
	assert.True(t, check.IsSuspicious)
	assert.Equal(t, ports.RiskHigh, check.RiskLevel)
	assert.True(t, check.RequiresVerification)
}

func TestFraudService_RapidFire(t *testing.T) {
	f := newFraudFixture(t)
	f.age(t)

	for i := 0; i < 3; i++ {
		f.seed(t, -time.Duration(i+1)*5*time.Second, 10_000, "agent-1")
	}

	check, err := f.svc.CheckTransaction(context.Background(), f.actor, 10_000, "agent-1")
	require.NoError(t, err)
	assert.True(t, check.IsSuspicious)
	assert.Equal(t, ports.RiskHigh, check.RiskLevel)
}

func TestFraudService_HourlyTxCount(t *testing.T) {
	f := newFraudFixture(t)
	f.age(t)

	// Spread out so rapid-fire does not trip first.
	for i := 0; i < 10; i++ {
		f.seed(t, -time.Duration(i+1)*5*time.Minute, 10_000, "agent-1")
	}

	check, err := f.svc.CheckTransaction(context.Background(), f.actor, 10_000, "")
	require.NoError(t, err)
	assert.True(t, check.IsSuspicious)
	assert.Equal(t, ports.RiskMedium, check.RiskLevel)
}

func TestFraudService_HourlyAmountIncludesCandidate(t *testing.T) {
	f := newFraudFixture(t)
	f.age(t)

	f.seed(t, -30*time.Minute, 4_000_000, "a")
	f.seed(t, -40*time.Minute, 4_000_000, "b")

	// 8M recorded + 3M candidate > 10M hourly limit.
	check, err := f.svc.CheckTransaction(context.Background(), f.actor, 3_000_000, "c")
	require.NoError(t, err)
	assert.True(t, check.IsSuspicious)
	assert.Equal(t, ports.RiskHigh, check.RiskLevel)

	// 1M candidate stays under the limit.
	check, err = f.svc.CheckTransaction(context.Background(), f.actor, 1_000_000, "c")
	require.NoError(t, err)
	assert.False(t, check.IsSuspicious)
}

func TestFraudService_DailyAmountCeiling(t *testing.T) {
	f := newFraudFixture(t)
	f.age(t)

	// 48M spread over the day, far apart, under all hourly limits.
	for i := 0; i < 8; i++ {
		f.seed(t, -time.Duration(i+2)*2*time.Hour, 6_000_000, "agent-1")
	}

	check, err := f.svc.CheckTransaction(context.Background(), f.actor, 3_000_000, "agent-1")
	require.NoError(t, err)
	assert.True(t, check.IsSuspicious)
	assert.Equal(t, ports.RiskHigh, check.RiskLevel)
}

func TestFraudService_DistinctCounterparties(t *testing.T) {
	f := newFraudFixture(t)
	f.age(t)

	parties := []string{"p1", "p2", "p3", "p4", "p5"}
	for i, p := range parties {
		f.seed(t, -time.Duration(i+1)*8*time.Minute, 10_000, p)
	}

	// A sixth distinct party trips the fan-out rule.
	check, err := f.svc.CheckTransaction(context.Background(), f.actor, 10_000, "p6")
	require.NoError(t, err)
	assert.True(t, check.IsSuspicious)
	assert.Equal(t, ports.RiskMedium, check.RiskLevel)

	// A known party does not.
	check, err = f.svc.CheckTransaction(context.Background(), f.actor, 10_000, "p3")
	require.NoError(t, err)
	assert.False(t, check.IsSuspicious)
}

func TestFraudService_SameCounterpartyRepeats(t *testing.T) {
	f := newFraudFixture(t)
	f.age(t)

	for i := 0; i < 3; i++ {
		f.seed(t, -time.Duration(i+1)*10*time.Minute, 10_000, "agent-1")
	}

	check, err := f.svc.CheckTransaction(context.Background(), f.actor, 10_000, "agent-1")
	require.NoError(t, err)
	assert.True(t, check.IsSuspicious)
	assert.Equal(t, ports.RiskMedium, check.RiskLevel)
}

func TestFraudService_NewAccountLimits(t *testing.T) {
	f := newFraudFixture(t)

	// No history at all: new-account ceilings apply.
	check, err := f.svc.CheckTransaction(context.Background(), f.actor, 1_500_000, "agent-1")
	require.NoError(t, err)
	assert.True(t, check.IsSuspicious)
	assert.Equal(t, ports.RiskMedium, check.RiskLevel)
	assert.True(t, check.RequiresVerification)

	// Under the new-account single ceiling passes.
	check, err = f.svc.CheckTransaction(context.Background(), f.actor, 900_000, "agent-1")
	require.NoError(t, err)
	assert.False(t, check.IsSuspicious)

	// Aged account: the same amount is fine.
	f.age(t)
	check, err = f.svc.CheckTransaction(context.Background(), f.actor, 1_500_000, "agent-1")
	require.NoError(t, err)
	assert.False(t, check.IsSuspicious)
}

func TestFraudService_NewAccountDailyAmount(t *testing.T) {
	f := newFraudFixture(t)

	f.seed(t, -2*time.Hour, 900_000, "a")
	f.seed(t, -4*time.Hour, 900_000, "b")

	check, err := f.svc.CheckTransaction(context.Background(), f.actor, 500_000, "c")
	require.NoError(t, err)
	assert.True(t, check.IsSuspicious)
	assert.True(t, check.RequiresVerification)
}

func TestFraudService_RoundNumbersNeverBlock(t *testing.T) {
	f := newFraudFixture(t)
	f.age(t)

	// Four recorded round amounts plus a round candidate: the pattern is
	// present but the verdict stays clean.
	for i := 0; i < 4; i++ {
		f.seed(t, -time.Duration(i+1)*12*time.Minute, 200_000, "agent-1")
	}

	check, err := f.svc.CheckTransaction(context.Background(), f.actor, 300_000, "other-agent")
	require.NoError(t, err)
	assert.False(t, check.IsSuspicious)
	assert.Equal(t, ports.RiskLow, check.RiskLevel)
}

func TestFraudService_RiskScore(t *testing.T) {
	f := newFraudFixture(t)
	ctx := context.Background()

	// No history: zero.
	score, err := f.svc.RiskScore(ctx, f.actor)
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	// Busy new account with round large amounts scores high.
	for i := 0; i < 8; i++ {
		f.seed(t, -time.Duration(i+1)*5*time.Minute, 3_000_000, "p"+string(rune('0'+i)))
	}
	score, err = f.svc.RiskScore(ctx, f.actor)
	require.NoError(t, err)
	assert.Greater(t, score, 50)
	assert.LessOrEqual(t, score, 100)
}

func TestFraudService_WindowIsCapped(t *testing.T) {
	store := memory.NewPatternStore()
	cfg := testFraudConfig()
	cfg.PatternWindowSize = 5
	svc := NewFraudService(store, cfg, zerolog.Nop())

	ctx := context.Background()
	for i := 0; i < 12; i++ {
		require.NoError(t, svc.RecordTransaction(ctx, "actor", int64(i), ""))
	}

	pattern, err := store.Get(ctx, "actor")
	require.NoError(t, err)
	require.NotNil(t, pattern)
	assert.Len(t, pattern.Entries, 5)
	// Oldest dropped, newest kept.
	assert.Equal(t, int64(11), pattern.Entries[len(pattern.Entries)-1].Amount)
}
