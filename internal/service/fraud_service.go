package service

import (
	"context"
	"fmt"
	"time"

	"agentpay/config"
	"agentpay/internal/core/domain"
	"agentpay/internal/core/ports"

	"github.com/rs/zerolog"
)

// FraudService implements the velocity and pattern guard. Rules run in a
// fixed priority order and short-circuit on the first trigger; the
// blocking decision is deterministic, not a weighted score.
type FraudService struct {
	patterns ports.PatternStore
	cfg      config.FraudConfig
	log      zerolog.Logger
	now      func() time.Time
}

// NewFraudService creates a fraud guard with the configured ceilings.
func NewFraudService(patterns ports.PatternStore, cfg config.FraudConfig, log zerolog.Logger) *FraudService {
	return &FraudService{
		patterns: patterns,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (s *FraudService) SetClock(now func() time.Time) {
	s.now = now
}

func blocked(reason string, level ports.RiskLevel, verify bool) *ports.FraudCheck {
	return &ports.FraudCheck{
		IsSuspicious:         true,
		Reason:               reason,
		RiskLevel:            level,
		RequiresVerification: verify,
	}
}

// CheckTransaction evaluates the candidate against the actor's recent
// pattern. It must run before any ledger mutation; a suspicious verdict
// aborts the whole operation with no partial state.
func (s *FraudService) CheckTransaction(ctx context.Context, actorID string, amount int64, counterpartID string) (*ports.FraudCheck, error) {
	pattern, err := s.patterns.Get(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("loading pattern for %s: %w", actorID, err)
	}
	now := s.now()

	// 1. Single-transaction ceiling.
	if amount > s.cfg.MaxSingleAmount {
		return blocked(
			fmt.Sprintf("Amount exceeds the single-transaction limit of %d", s.cfg.MaxSingleAmount),
			ports.RiskHigh, true), nil
	}

	var hourly, daily, rapid []domain.PatternEntry
	if pattern != nil {
		hourly = pattern.Since(now.Add(-time.Hour))
		daily = pattern.Since(now.Add(-24 * time.Hour))
		rapid = pattern.Since(now.Add(-s.cfg.RapidFireWindow))
	}

	// 2. Rapid-fire burst.
	if len(rapid) >= s.cfg.RapidFireCount {
		return blocked(
			fmt.Sprintf("Too many transactions within %s", s.cfg.RapidFireWindow),
			ports.RiskHigh, true), nil
	}

	// 3. Hourly transaction count.
	if len(hourly) >= s.cfg.HourlyTxLimit {
		return blocked("Hourly transaction limit reached", ports.RiskMedium, false), nil
	}

	// 4. Hourly cumulative amount, candidate included.
	if sumAmounts(hourly)+amount > s.cfg.HourlyAmountLimit {
		return blocked("Hourly amount limit exceeded", ports.RiskHigh, true), nil
	}

	// 5. Daily transaction count.
	if len(daily) >= s.cfg.DailyTxLimit {
		return blocked("Daily transaction limit reached", ports.RiskMedium, false), nil
	}

	// 6. Daily cumulative amount.
	if sumAmounts(daily)+amount > s.cfg.DailyAmountLimit {
		return blocked("Daily amount limit exceeded", ports.RiskHigh, true), nil
	}

	// 7. Counterparty fan-out within the hour.
	if counterpartID != "" {
		parties := distinctCounterparts(hourly)
		if !parties[counterpartID] && len(parties) >= s.cfg.HourlyDistinctParties {
			return blocked("Too many distinct counterparties this hour", ports.RiskMedium, false), nil
		}

		// 8. Repeats to the same counterparty.
		same := 0
		for _, e := range hourly {
			if e.CounterpartID == counterpartID {
				same++
			}
		}
		if same >= s.cfg.HourlySameParty {
			return blocked("Too many transactions with the same counterparty this hour", ports.RiskMedium, false), nil
		}
	}

	// 9. New accounts get tighter ceilings. No history counts as new.
	age := pattern.AccountAge(now)
	if age < s.cfg.NewAccountAge {
		if amount > s.cfg.NewAccountMaxSingle {
			return blocked("Amount exceeds the new-account transaction limit", ports.RiskMedium, true), nil
		}
		if sumAmounts(daily)+amount > s.cfg.NewAccountDailyAmount {
			return blocked("New-account daily amount limit exceeded", ports.RiskMedium, true), nil
		}
	}

	// 10. Round-number structuring signal. Logged, never blocks.
	if s.roundNumberPattern(pattern, amount) {
		s.log.Warn().
			Str("actor_id", actorID).
			Int64("amount", amount).
			Msg("round-number transaction pattern observed")
	}

	return &ports.FraudCheck{IsSuspicious: false, RiskLevel: ports.RiskLow}, nil
}

// RecordTransaction appends the realized transaction to the actor's
// rolling window. Called only after the gated operation proceeds.
func (s *FraudService) RecordTransaction(ctx context.Context, actorID string, amount int64, counterpartID string) error {
	entry := domain.PatternEntry{
		Amount:        amount,
		CounterpartID: counterpartID,
		Timestamp:     s.now().UTC(),
	}
	return s.patterns.Append(ctx, actorID, entry, s.cfg.PatternWindowSize)
}

// RiskScore derives an advisory 0-100 score from velocity, account age,
// counterpart diversity, round-number habits and large-transaction
// frequency. Informational only, never used for blocking.
func (s *FraudService) RiskScore(ctx context.Context, actorID string) (int, error) {
	pattern, err := s.patterns.Get(ctx, actorID)
	if err != nil {
		return 0, fmt.Errorf("loading pattern for %s: %w", actorID, err)
	}
	if pattern == nil || len(pattern.Entries) == 0 {
		return 0, nil
	}
	now := s.now()
	score := 0

	// Velocity: up to 30 points as the hourly window fills.
	hourly := pattern.Since(now.Add(-time.Hour))
	if s.cfg.HourlyTxLimit > 0 {
		score += min(30, 30*len(hourly)/s.cfg.HourlyTxLimit)
	}

	// Account age: brand-new actors start at 20.
	if pattern.AccountAge(now) < s.cfg.NewAccountAge {
		score += 20
	}

	// Counterpart diversity within the hour: up to 20.
	if s.cfg.HourlyDistinctParties > 0 {
		score += min(20, 20*len(distinctCounterparts(hourly))/s.cfg.HourlyDistinctParties)
	}

	// Round-number habit over the recent window: up to 15.
	if s.cfg.RoundUnit > 0 {
		round := 0
		for _, e := range recentEntries(pattern, 10) {
			if e.Amount > 0 && e.Amount%s.cfg.RoundUnit == 0 {
				round++
			}
		}
		score += min(15, 15*round/5)
	}

	// Large transactions relative to the single ceiling: up to 15.
	threshold := int64(float64(s.cfg.MaxSingleAmount) * s.cfg.LargeTransactionFactor)
	if threshold > 0 {
		large := 0
		for _, e := range recentEntries(pattern, 10) {
			if e.Amount >= threshold {
				large++
			}
		}
		score += min(15, 15*large/5)
	}

	return min(100, score), nil
}

// roundNumberPattern reports whether at least 4 of the last 5 amounts
// (candidate included) are exact multiples of the configured round unit.
func (s *FraudService) roundNumberPattern(pattern *domain.TransactionPattern, amount int64) bool {
	if s.cfg.RoundUnit <= 0 {
		return false
	}
	amounts := []int64{amount}
	if pattern != nil {
		for _, e := range recentEntries(pattern, 4) {
			amounts = append(amounts, e.Amount)
		}
	}
	if len(amounts) < 5 {
		return false
	}
	round := 0
	for _, a := range amounts {
		if a > 0 && a%s.cfg.RoundUnit == 0 {
			round++
		}
	}
	return round >= 4
}

func sumAmounts(entries []domain.PatternEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Amount
	}
	return total
}

func distinctCounterparts(entries []domain.PatternEntry) map[string]bool {
	parties := make(map[string]bool)
	for _, e := range entries {
		if e.CounterpartID != "" {
			parties[e.CounterpartID] = true
		}
	}
	return parties
}

// recentEntries returns up to n newest entries (entries are stored
// oldest-first).
func recentEntries(pattern *domain.TransactionPattern, n int) []domain.PatternEntry {
	if pattern == nil {
		return nil
	}
	if len(pattern.Entries) <= n {
		return pattern.Entries
	}
	return pattern.Entries[len(pattern.Entries)-n:]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
