// Package registry tracks agent profiles and their health. Agents register
// capabilities, heartbeat periodically, and are discovered by capability
// name or tag set. Health is a pure function of heartbeat age, so every
// reader computes the same state without coordination.
package registry

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/conductorhq/conductor/pkg/models"
)

var (
	// ErrAgentNotFound is returned for operations on unknown agent ids.
	ErrAgentNotFound = errors.New("agent not found")

	// ErrAgentUnreachable is returned when dispatch targets an agent whose
	// health state is gone.
	ErrAgentUnreachable = errors.New("agent unreachable")
)

// HealthPolicy holds the heartbeat-age thresholds for the health state
// machine.
type HealthPolicy struct {
	// Grace is how stale a heartbeat may be before an agent is unhealthy.
	Grace time.Duration
	// Gone is how stale a heartbeat may be before an agent is gone.
	Gone time.Duration
}

// DefaultHealthPolicy matches a 10s heartbeat interval with three missed
// beats before unhealthy.
func DefaultHealthPolicy() HealthPolicy {
	return HealthPolicy{
		Grace: 30 * time.Second,
		Gone:  2 * time.Minute,
	}
}

// StatusOf computes the health state for a profile at the given instant.
// An agent that has never heartbeated stays registering until the gone
// threshold, measured from registration.
func (p HealthPolicy) StatusOf(profile *models.AgentProfile, now time.Time) models.AgentStatus {
	last := profile.LastHeartbeatAt
	if last.IsZero() {
		if now.Sub(profile.RegisteredAt) > p.Gone {
			return models.AgentGone
		}
		return models.AgentRegistering
	}
	age := now.Sub(last)
	switch {
	case age <= p.Grace:
		return models.AgentHealthy
	case age <= p.Gone:
		return models.AgentUnhealthy
	default:
		return models.AgentGone
	}
}

// Registry is the agent registry. Register is an upsert keyed by agent id.
type Registry interface {
	Register(ctx context.Context, profile *models.AgentProfile) error
	Deregister(ctx context.Context, agentID string) error
	Heartbeat(ctx context.Context, agentID string) error
	Get(ctx context.Context, agentID string) (*models.AgentProfile, error)
	List(ctx context.Context) ([]*models.AgentProfile, error)
	// FindByCapability returns healthy agents declaring the named
	// capability, freshest heartbeat first.
	FindByCapability(ctx context.Context, capability string) ([]*models.AgentProfile, error)
	// FindByTags returns healthy agents with a capability carrying every
	// given tag, freshest heartbeat first.
	FindByTags(ctx context.Context, tags []string) ([]*models.AgentProfile, error)
	Close() error
}

// InMemoryRegistry is the default single-process registry backend.
type InMemoryRegistry struct {
	mu      sync.RWMutex
	agents  map[string]*models.AgentProfile
	policy  HealthPolicy
	nowFunc func() time.Time
}

// NewInMemoryRegistry creates an in-memory registry.
func NewInMemoryRegistry(policy HealthPolicy) *InMemoryRegistry {
	return &InMemoryRegistry{
		agents:  make(map[string]*models.AgentProfile),
		policy:  policy,
		nowFunc: time.Now,
	}
}

// Register upserts an agent profile. Re-registration preserves the original
// registration time and heartbeat history but replaces capabilities and
// endpoint details.
func (r *InMemoryRegistry) Register(_ context.Context, profile *models.AgentProfile) error {
	if profile.ID == "" {
		return errors.New("agent id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	p := cloneProfile(profile)
	if existing, ok := r.agents[profile.ID]; ok {
		p.RegisteredAt = existing.RegisteredAt
		p.LastHeartbeatAt = existing.LastHeartbeatAt
	} else {
		p.RegisteredAt = now
		p.LastHeartbeatAt = time.Time{}
	}
	p.Status = r.policy.StatusOf(p, now)
	r.agents[p.ID] = p
	return nil
}

// Deregister removes an agent. Unknown ids are a no-op.
func (r *InMemoryRegistry) Deregister(_ context.Context, agentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.agents, agentID)
	return nil
}

// Heartbeat refreshes an agent's liveness. Any heartbeat makes the agent
// healthy, including from unhealthy or gone states.
func (r *InMemoryRegistry) Heartbeat(_ context.Context, agentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.agents[agentID]
	if !ok {
		return ErrAgentNotFound
	}
	p.LastHeartbeatAt = r.nowFunc()
	p.Status = models.AgentHealthy
	return nil
}

// Get returns the profile with its health state evaluated at call time.
func (r *InMemoryRegistry) Get(_ context.Context, agentID string) (*models.AgentProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.agents[agentID]
	if !ok {
		return nil, ErrAgentNotFound
	}
	out := cloneProfile(p)
	out.Status = r.policy.StatusOf(p, r.nowFunc())
	return out, nil
}

// List returns all profiles with evaluated health, sorted by id.
func (r *InMemoryRegistry) List(_ context.Context) ([]*models.AgentProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.nowFunc()
	out := make([]*models.AgentProfile, 0, len(r.agents))
	for _, p := range r.agents {
		c := cloneProfile(p)
		c.Status = r.policy.StatusOf(p, now)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FindByCapability returns healthy agents declaring the named capability.
func (r *InMemoryRegistry) FindByCapability(_ context.Context, capability string) ([]*models.AgentProfile, error) {
	return r.findHealthy(func(p *models.AgentProfile) bool {
		for _, c := range p.Capabilities {
			if c.Name == capability {
				return true
			}
		}
		return false
	}), nil
}

// FindByTags returns healthy agents with a capability carrying every tag.
func (r *InMemoryRegistry) FindByTags(_ context.Context, tags []string) ([]*models.AgentProfile, error) {
	return r.findHealthy(func(p *models.AgentProfile) bool {
		for _, c := range p.Capabilities {
			if c.HasTags(tags) {
				return true
			}
		}
		return false
	}), nil
}

// Close is a no-op for the in-memory backend.
func (r *InMemoryRegistry) Close() error { return nil }

func (r *InMemoryRegistry) findHealthy(match func(*models.AgentProfile) bool) []*models.AgentProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.nowFunc()
	var out []*models.AgentProfile
	for _, p := range r.agents {
		if r.policy.StatusOf(p, now) != models.AgentHealthy {
			continue
		}
		if !match(p) {
			continue
		}
		c := cloneProfile(p)
		c.Status = models.AgentHealthy
		out = append(out, c)
	}
	// Freshest heartbeat first; id as tiebreaker for determinism.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LastHeartbeatAt.Equal(out[j].LastHeartbeatAt) {
			return out[i].LastHeartbeatAt.After(out[j].LastHeartbeatAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func cloneProfile(p *models.AgentProfile) *models.AgentProfile {
	c := *p
	c.Capabilities = make([]models.Capability, len(p.Capabilities))
	copy(c.Capabilities, p.Capabilities)
	return &c
}
