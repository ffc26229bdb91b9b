package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// LogNotifier implements ports.Notifier by logging the message. Default
// when no SMS gateway is configured.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a logging notifier.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Send logs the outbound message.
func (n *LogNotifier) Send(_ context.Context, recipient, message string) error {
	n.log.Info().
		Str("recipient", recipient).
		Str("message", message).
		Msg("sms notification")
	return nil
}

// HTTPNotifier implements ports.Notifier against an SMS gateway's HTTP
// endpoint. Best-effort: callers log failures and never roll back.
type HTTPNotifier struct {
	endpoint string
	client   *http.Client
}

// NewHTTPNotifier creates an HTTP notifier for the given gateway endpoint.
func NewHTTPNotifier(endpoint string, client *http.Client) *HTTPNotifier {
	return &HTTPNotifier{endpoint: endpoint, client: client}
}

// Send posts {to, message} to the gateway.
func (n *HTTPNotifier) Send(ctx context.Context, recipient, message string) error {
	payload, err := json.Marshal(map[string]string{"to": recipient, "message": message})
	if err != nil {
		return fmt.Errorf("marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned %d", resp.StatusCode)
	}
	return nil
}

// LogRewardHook implements ports.RewardHook by logging the event. The
// incentive subsystem consumes these asynchronously in production.
type LogRewardHook struct {
	log zerolog.Logger
}

// NewLogRewardHook creates a logging reward hook.
func NewLogRewardHook(log zerolog.Logger) *LogRewardHook {
	return &LogRewardHook{log: log}
}

// SettlementCompleted records the completed settlement for the agent.
func (h *LogRewardHook) SettlementCompleted(_ context.Context, agentID, actionKind string) error {
	h.log.Info().
		Str("agent_id", agentID).
		Str("action", actionKind).
		Msg("settlement reward event")
	return nil
}
