package ports

import "context"

// Notifier dispatches SMS-style messages to phone-shaped recipients.
// Best-effort: failures are logged by the caller, never block settlement.
type Notifier interface {
	Send(ctx context.Context, recipient, message string) error
}

// RewardHook notifies an external incentive subsystem after a settlement
// completes. Failures are logged only.
type RewardHook interface {
	SettlementCompleted(ctx context.Context, agentID, actionKind string) error
}
