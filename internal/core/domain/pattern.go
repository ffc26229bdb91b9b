package domain

import "time"

// PatternEntry is one realized transaction in an actor's rolling window.
type PatternEntry struct {
	Amount        int64     `json:"amount"`
	CounterpartID string    `json:"counterpart_id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// TransactionPattern is the fraud guard's working state for one actor:
// a bounded window of recent transactions. Derived state — rebuildable
// from the ledger, never authoritative.
type TransactionPattern struct {
	ActorID   string         `json:"actor_id"`
	FirstSeen time.Time      `json:"first_seen"`
	Entries   []PatternEntry `json:"entries"`
}

// Since returns the entries with a timestamp at or after the cutoff.
func (p *TransactionPattern) Since(cutoff time.Time) []PatternEntry {
	var out []PatternEntry
	for _, e := range p.Entries {
		if !e.Timestamp.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// AccountAge returns how long the actor has been transacting. Zero when
// the actor has no recorded history.
func (p *TransactionPattern) AccountAge(now time.Time) time.Duration {
	if p == nil || p.FirstSeen.IsZero() {
		return 0
	}
	return now.Sub(p.FirstSeen)
}
