package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"agentpay/internal/core/domain"
	"agentpay/internal/core/ports"
	"agentpay/pkg/apperror"

	"github.com/rs/zerolog"
)

// AgentService manages agent profiles and their dual cash/digital
// balances. Agent documents are keyed by the owner's user id, which
// makes one-agent-per-owner structural and Create naturally idempotent.
type AgentService struct {
	store      ports.DocumentStore
	idgen      ports.IDGenerator
	maxRetries int
	log        zerolog.Logger
	now        func() time.Time
}

// NewAgentService creates an agent directory over the given store.
func NewAgentService(store ports.DocumentStore, idgen ports.IDGenerator, maxRetries int, log zerolog.Logger) *AgentService {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &AgentService{
		store:      store,
		idgen:      idgen,
		maxRetries: maxRetries,
		log:        log,
		now:        time.Now,
	}
}

// Create registers a new agent, or returns the owner's existing one.
func (s *AgentService) Create(ctx context.Context, input ports.CreateAgentInput) (*domain.Agent, error) {
	if input.OwnerUserID == "" {
		return nil, apperror.Validation("Owner user id is required")
	}
	if input.BusinessName == "" {
		return nil, apperror.Validation("Business name is required")
	}
	if input.CommissionRate < 0 || input.CommissionRate > 1 {
		return nil, apperror.Validation("Commission rate must be between 0 and 1")
	}

	if existing, err := s.GetByOwner(ctx, input.OwnerUserID); err == nil {
		return existing, nil
	} else if !apperror.HasCode(err, apperror.CodeNotFound) {
		return nil, err
	}

	agent := domain.Agent{
		ID:             s.idgen.NewID(),
		OwnerUserID:    input.OwnerUserID,
		BusinessName:   input.BusinessName,
		Location:       input.Location,
		IsActive:       true,
		Status:         domain.AgentStatusAvailable,
		CommissionRate: input.CommissionRate,
		CreatedAt:      s.now().UTC(),
	}
	data, err := json.Marshal(agent)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if _, err := s.store.Put(ctx, ports.CollectionAgents, input.OwnerUserID, data, 0); err != nil {
		if errors.Is(err, ports.ErrVersionConflict) {
			// Lost the create race to a concurrent register; theirs wins.
			return s.GetByOwner(ctx, input.OwnerUserID)
		}
		return nil, apperror.InternalError(err)
	}

	s.log.Info().
		Str("agent_id", agent.ID).
		Str("owner", agent.OwnerUserID).
		Msg("agent registered")
	return &agent, nil
}

// Get returns the agent by agent id.
func (s *AgentService) Get(ctx context.Context, id string) (*domain.Agent, error) {
	agent, _, _, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return agent, nil
}

// GetByOwner returns the agent owned by the given user.
func (s *AgentService) GetByOwner(ctx context.Context, ownerID string) (*domain.Agent, error) {
	doc, err := s.store.Get(ctx, ports.CollectionAgents, ownerID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if doc == nil {
		return nil, apperror.ErrNotFound("Agent")
	}
	var agent domain.Agent
	if err := json.Unmarshal(doc.Data, &agent); err != nil {
		return nil, apperror.InternalError(err)
	}
	return &agent, nil
}

// UpdateStatus sets the agent's availability.
func (s *AgentService) UpdateStatus(ctx context.Context, id string, status domain.AgentStatus) (*domain.Agent, error) {
	if !domain.ValidAgentStatus(status) {
		return nil, apperror.Validation("Unknown agent status: " + string(status))
	}
	return s.mutate(ctx, id, func(a *domain.Agent) error {
		a.Status = status
		return nil
	})
}

// UpdateBalances applies cash and digital deltas atomically in one
// document write. Either pool going negative aborts the whole update.
func (s *AgentService) UpdateBalances(ctx context.Context, id string, delta ports.AgentBalanceDelta) (*domain.Agent, error) {
	return s.mutate(ctx, id, func(a *domain.Agent) error {
		if a.CashBalance+delta.CashDelta < 0 {
			return apperror.ErrInsufficientAgentBalance("cash")
		}
		if a.DigitalBalance+delta.DigitalDelta < 0 {
			return apperror.ErrInsufficientAgentBalance("digital")
		}
		a.CashBalance += delta.CashDelta
		a.DigitalBalance += delta.DigitalDelta
		return nil
	})
}

// Nearby returns active agents within radiusKm of the point, ascending
// by distance. An empty status filter means available only.
func (s *AgentService) Nearby(ctx context.Context, q ports.NearbyQuery) ([]ports.AgentWithDistance, error) {
	statuses := q.Statuses
	if len(statuses) == 0 {
		statuses = []domain.AgentStatus{domain.AgentStatusAvailable}
	}
	allowed := make(map[domain.AgentStatus]bool, len(statuses))
	for _, st := range statuses {
		allowed[st] = true
	}

	docs, err := s.store.List(ctx, ports.CollectionAgents)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	out := make([]ports.AgentWithDistance, 0)
	for _, doc := range docs {
		var agent domain.Agent
		if err := json.Unmarshal(doc.Data, &agent); err != nil {
			return nil, apperror.InternalError(err)
		}
		if !agent.IsActive || !allowed[agent.Status] {
			continue
		}
		dist := agent.DistanceKm(q.Latitude, q.Longitude)
		if dist > q.RadiusKm {
			continue
		}
		out = append(out, ports.AgentWithDistance{Agent: agent, DistanceKm: dist})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out, nil
}

// findByID scans the collection for the agent. Returns the owner key the
// document is stored under along with the current version.
func (s *AgentService) findByID(ctx context.Context, id string) (*domain.Agent, string, int64, error) {
	docs, err := s.store.List(ctx, ports.CollectionAgents)
	if err != nil {
		return nil, "", 0, apperror.InternalError(err)
	}
	for key, doc := range docs {
		var agent domain.Agent
		if err := json.Unmarshal(doc.Data, &agent); err != nil {
			return nil, "", 0, apperror.InternalError(err)
		}
		if agent.ID == id {
			return &agent, key, doc.Version, nil
		}
	}
	return nil, "", 0, apperror.ErrNotFound("Agent")
}

// mutate runs the read-modify-CAS cycle with bounded retries.
func (s *AgentService) mutate(ctx context.Context, id string, fn func(*domain.Agent) error) (*domain.Agent, error) {
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		agent, key, version, err := s.findByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := fn(agent); err != nil {
			return nil, err
		}
		data, err := json.Marshal(agent)
		if err != nil {
			return nil, apperror.InternalError(err)
		}
		if _, err := s.store.Put(ctx, ports.CollectionAgents, key, data, version); err != nil {
			if errors.Is(err, ports.ErrVersionConflict) {
				s.log.Debug().
					Str("agent_id", id).
					Int("attempt", attempt+1).
					Msg("agent write conflict, retrying")
				continue
			}
			return nil, apperror.InternalError(err)
		}
		return agent, nil
	}
	return nil, apperror.ErrConcurrencyConflict()
}
