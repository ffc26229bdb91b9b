package domain

import (
	"math"
	"time"
)

// AgentStatus is the agent's availability for new settlement work.
type AgentStatus string

const (
	AgentStatusAvailable AgentStatus = "available"
	AgentStatusBusy      AgentStatus = "busy"
	AgentStatusCashOut   AgentStatus = "cash_out"
	AgentStatusOffline   AgentStatus = "offline"
)

// ValidAgentStatus reports whether s is one of the known statuses.
func ValidAgentStatus(s AgentStatus) bool {
	switch s {
	case AgentStatusAvailable, AgentStatusBusy, AgentStatusCashOut, AgentStatusOffline:
		return true
	}
	return false
}

// Location is an agent's physical place of business.
type Location struct {
	Country   string  `json:"country"`
	State     string  `json:"state"`
	City      string  `json:"city"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Agent is an operator converting between cash and digital balance.
// CashBalance and DigitalBalance are accounted independently: each
// settlement kind moves exactly one of the two pools on each side.
type Agent struct {
	ID             string      `json:"id"`
	OwnerUserID    string      `json:"owner_user_id"`
	BusinessName   string      `json:"business_name"`
	Location       Location    `json:"location"`
	IsActive       bool        `json:"is_active"`
	Status         AgentStatus `json:"status"`
	CashBalance    int64       `json:"cash_balance"`
	DigitalBalance int64       `json:"digital_balance"`
	CommissionRate float64     `json:"commission_rate"`
	CreatedAt      time.Time   `json:"created_at"`
}

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance from the agent to the
// given coordinates, using the haversine formula.
func (a *Agent) DistanceKm(lat, lng float64) float64 {
	dLat := (lat - a.Location.Latitude) * math.Pi / 180
	dLng := (lng - a.Location.Longitude) * math.Pi / 180
	lat1 := a.Location.Latitude * math.Pi / 180
	lat2 := lat * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
