package handler

import (
	"time"

	"agentpay/internal/adapter/http/dto"
	"agentpay/internal/core/domain"
	"agentpay/internal/core/ports"
)

func rfc3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func rfc3339Ptr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := rfc3339(*t)
	return &s
}

func toEscrowResponse(req *domain.EscrowRequest, code string) dto.EscrowResponse {
	return dto.EscrowResponse{
		ID:          req.ID,
		Kind:        string(req.Kind),
		UserID:      req.UserID,
		AgentID:     req.AgentID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Status:      string(req.Status),
		Fee:         req.Fee,
		Code:        code,
		CreatedAt:   rfc3339(req.CreatedAt),
		ConfirmedAt: rfc3339Ptr(req.ConfirmedAt),
		CompletedAt: rfc3339Ptr(req.CompletedAt),
	}
}

func toAgentResponse(a *domain.Agent, distanceKm float64) dto.AgentResponse {
	return dto.AgentResponse{
		ID:             a.ID,
		OwnerUserID:    a.OwnerUserID,
		BusinessName:   a.BusinessName,
		City:           a.Location.City,
		Latitude:       a.Location.Latitude,
		Longitude:      a.Location.Longitude,
		IsActive:       a.IsActive,
		Status:         string(a.Status),
		CashBalance:    a.CashBalance,
		DigitalBalance: a.DigitalBalance,
		CommissionRate: a.CommissionRate,
		DistanceKm:     distanceKm,
	}
}

func toTransactionResponse(tx *domain.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Currency:    tx.Currency,
		RecipientID: tx.RecipientID,
		AgentID:     tx.AgentID,
		Status:      string(tx.Status),
		Metadata:    tx.Metadata,
		CreatedAt:   rfc3339(tx.CreatedAt),
		CompletedAt: rfc3339Ptr(tx.CompletedAt),
	}
}

func toTransactionResponses(txs []domain.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, toTransactionResponse(&txs[i]))
	}
	return out
}

func toNearbyResponses(results []ports.AgentWithDistance) []dto.AgentResponse {
	out := make([]dto.AgentResponse, 0, len(results))
	for i := range results {
		out = append(out, toAgentResponse(&results[i].Agent, results[i].DistanceKm))
	}
	return out
}
