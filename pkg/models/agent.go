package models

import "time"

// AgentStatus is the registry health state of an agent profile.
type AgentStatus string

// Agent health states. Transitions are pure functions of heartbeat age.
const (
	AgentRegistering AgentStatus = "registering"
	AgentHealthy     AgentStatus = "healthy"
	AgentUnhealthy   AgentStatus = "unhealthy"
	AgentGone        AgentStatus = "gone"
)

// Capability is a declared function of an agent, addressable by name or tag set.
type Capability struct {
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Parameters   map[string]any `json:"parameters,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	CostEstimate float64        `json:"cost_estimate,omitempty"`
}

// HasTags reports whether the capability carries every tag in want.
func (c Capability) HasTags(want []string) bool {
	if len(want) == 0 {
		return false
	}
	tags := make(map[string]bool, len(c.Tags))
	for _, t := range c.Tags {
		tags[t] = true
	}
	for _, t := range want {
		if !tags[t] {
			return false
		}
	}
	return true
}

// AgentProfile describes a named network endpoint providing capabilities.
// Exactly one profile exists per ID; registration is an upsert.
type AgentProfile struct {
	ID              string       `json:"id"`
	BaseURL         string       `json:"base_url"`
	Port            int          `json:"port,omitempty"`
	Capabilities    []Capability `json:"capabilities"`
	Status          AgentStatus  `json:"status"`
	RegisteredAt    time.Time    `json:"registered_at"`
	LastHeartbeatAt time.Time    `json:"last_heartbeat_at"`
}
