package registry

import (
	"context"
	"testing"
	"time"

	"github.com/conductorhq/conductor/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() HealthPolicy {
	return HealthPolicy{Grace: 30 * time.Second, Gone: 2 * time.Minute}
}

// fakeClock lets tests steer heartbeat age deterministically.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestRegistry() (*InMemoryRegistry, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	r := NewInMemoryRegistry(testPolicy())
	r.nowFunc = clock.Now
	return r, clock
}

func profile(id string, caps ...models.Capability) *models.AgentProfile {
	return &models.AgentProfile{
		ID:           id,
		BaseURL:      "http://" + id + ":8080",
		Capabilities: caps,
	}
}

func TestHealthPolicy_StatusOf(t *testing.T) {
	policy := testPolicy()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		heartbeatAge  time.Duration
		neverBeat     bool
		registeredAge time.Duration
		want          models.AgentStatus
	}{
		{name: "fresh heartbeat", heartbeatAge: 5 * time.Second, want: models.AgentHealthy},
		{name: "at grace boundary", heartbeatAge: 30 * time.Second, want: models.AgentHealthy},
		{name: "past grace", heartbeatAge: 31 * time.Second, want: models.AgentUnhealthy},
		{name: "at gone boundary", heartbeatAge: 2 * time.Minute, want: models.AgentUnhealthy},
		{name: "past gone", heartbeatAge: 3 * time.Minute, want: models.AgentGone},
		{name: "never heartbeated, recent", neverBeat: true, registeredAge: 10 * time.Second, want: models.AgentRegistering},
		{name: "never heartbeated, abandoned", neverBeat: true, registeredAge: 5 * time.Minute, want: models.AgentGone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.AgentProfile{RegisteredAt: base.Add(-tt.registeredAge)}
			if !tt.neverBeat {
				p.LastHeartbeatAt = base.Add(-tt.heartbeatAge)
			}
			assert.Equal(t, tt.want, policy.StatusOf(p, base))
		})
	}
}

func TestInMemoryRegistry_RegisterAndHeartbeat(t *testing.T) {
	r, clock := newTestRegistry()
	ctx := context.Background()

	require.NoError(t, r.Register(ctx, profile("agent-1")))

	got, err := r.Get(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, models.AgentRegistering, got.Status)

	require.NoError(t, r.Heartbeat(ctx, "agent-1"))
	got, err = r.Get(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, models.AgentHealthy, got.Status)

	// Missed heartbeats degrade health without any writes.
	clock.Advance(time.Minute)
	got, err = r.Get(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, models.AgentUnhealthy, got.Status)

	clock.Advance(5 * time.Minute)
	got, err = r.Get(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, models.AgentGone, got.Status)

	// A heartbeat from any state restores healthy.
	require.NoError(t, r.Heartbeat(ctx, "agent-1"))
	got, err = r.Get(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, models.AgentHealthy, got.Status)
}

func TestInMemoryRegistry_ReregisterPreservesHistory(t *testing.T) {
	r, clock := newTestRegistry()
	ctx := context.Background()

	require.NoError(t, r.Register(ctx, profile("agent-1", models.Capability{Name: "scale"})))
	require.NoError(t, r.Heartbeat(ctx, "agent-1"))
	first, err := r.Get(ctx, "agent-1")
	require.NoError(t, err)

	clock.Advance(10 * time.Second)
	require.NoError(t, r.Register(ctx, profile("agent-1", models.Capability{Name: "restart"})))

	got, err := r.Get(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, first.RegisteredAt, got.RegisteredAt)
	assert.Equal(t, first.LastHeartbeatAt, got.LastHeartbeatAt)
	require.Len(t, got.Capabilities, 1)
	assert.Equal(t, "restart", got.Capabilities[0].Name)
}

func TestInMemoryRegistry_Heartbeat_UnknownAgent(t *testing.T) {
	r, _ := newTestRegistry()
	assert.ErrorIs(t, r.Heartbeat(context.Background(), "nope"), ErrAgentNotFound)
}

func TestInMemoryRegistry_FindByCapability(t *testing.T) {
	r, clock := newTestRegistry()
	ctx := context.Background()

	require.NoError(t, r.Register(ctx, profile("agent-a", models.Capability{Name: "scale_deployment"})))
	require.NoError(t, r.Register(ctx, profile("agent-b", models.Capability{Name: "scale_deployment"})))
	require.NoError(t, r.Register(ctx, profile("agent-c", models.Capability{Name: "restart_pod"})))

	require.NoError(t, r.Heartbeat(ctx, "agent-a"))
	clock.Advance(time.Second)
	require.NoError(t, r.Heartbeat(ctx, "agent-b"))
	require.NoError(t, r.Heartbeat(ctx, "agent-c"))

	found, err := r.FindByCapability(ctx, "scale_deployment")
	require.NoError(t, err)
	require.Len(t, found, 2)
	// Freshest heartbeat first.
	assert.Equal(t, "agent-b", found[0].ID)
	assert.Equal(t, "agent-a", found[1].ID)

	// Unhealthy agents are excluded.
	clock.Advance(time.Minute)
	require.NoError(t, r.Heartbeat(ctx, "agent-a"))
	found, err = r.FindByCapability(ctx, "scale_deployment")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "agent-a", found[0].ID)

	found, err = r.FindByCapability(ctx, "unknown_capability")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestInMemoryRegistry_FindByTags(t *testing.T) {
	r, _ := newTestRegistry()
	ctx := context.Background()

	require.NoError(t, r.Register(ctx, profile("agent-a",
		models.Capability{Name: "scale", Tags: []string{"kubernetes", "write"}})))
	require.NoError(t, r.Register(ctx, profile("agent-b",
		models.Capability{Name: "inspect", Tags: []string{"kubernetes"}})))
	require.NoError(t, r.Heartbeat(ctx, "agent-a"))
	require.NoError(t, r.Heartbeat(ctx, "agent-b"))

	found, err := r.FindByTags(ctx, []string{"kubernetes", "write"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "agent-a", found[0].ID)

	found, err = r.FindByTags(ctx, []string{"kubernetes"})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	// Tags must all match on a single capability.
	found, err = r.FindByTags(ctx, []string{"kubernetes", "gpu"})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestInMemoryRegistry_Deregister(t *testing.T) {
	r, _ := newTestRegistry()
	ctx := context.Background()

	require.NoError(t, r.Register(ctx, profile("agent-1")))
	require.NoError(t, r.Deregister(ctx, "agent-1"))

	_, err := r.Get(ctx, "agent-1")
	assert.ErrorIs(t, err, ErrAgentNotFound)

	// Deregistering twice is fine.
	assert.NoError(t, r.Deregister(ctx, "agent-1"))
}

func TestEvaluator_NotifiesTransitions(t *testing.T) {
	r, clock := newTestRegistry()
	ctx := context.Background()

	require.NoError(t, r.Register(ctx, profile("agent-1")))
	require.NoError(t, r.Heartbeat(ctx, "agent-1"))

	type transition struct {
		agentID  string
		from, to models.AgentStatus
	}
	var got []transition
	e := NewEvaluator(r, time.Second, func(agentID string, from, to models.AgentStatus) {
		got = append(got, transition{agentID, from, to})
	})

	e.evaluate(ctx)
	assert.Empty(t, got)

	clock.Advance(time.Minute)
	e.evaluate(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, transition{"agent-1", models.AgentHealthy, models.AgentUnhealthy}, got[0])

	clock.Advance(5 * time.Minute)
	e.evaluate(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, transition{"agent-1", models.AgentUnhealthy, models.AgentGone}, got[1])
}
