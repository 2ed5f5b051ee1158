package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/conductorhq/conductor/pkg/models"
	"github.com/redis/go-redis/v9"
)

const redisNamespace = "conductor"

// RedisRegistry is the shared registry backend for multi-pod deployments.
// Profiles live at <ns>:agents:<id> as JSON; capability and tag indexes are
// sets of agent ids. Profile keys carry a TTL a bit past the gone threshold
// so crashed agents age out of Redis on their own.
type RedisRegistry struct {
	client  *redis.Client
	policy  HealthPolicy
	keyTTL  time.Duration
	nowFunc func() time.Time
}

// NewRedisRegistry connects to the given redis:// URL and verifies the
// connection before returning.
func NewRedisRegistry(ctx context.Context, redisURL string, policy HealthPolicy) (*RedisRegistry, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registry URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to registry redis: %w", err)
	}

	return &RedisRegistry{
		client:  client,
		policy:  policy,
		keyTTL:  policy.Gone * 2,
		nowFunc: time.Now,
	}, nil
}

func (r *RedisRegistry) agentKey(id string) string {
	return fmt.Sprintf("%s:agents:%s", redisNamespace, id)
}

func (r *RedisRegistry) capabilityKey(name string) string {
	return fmt.Sprintf("%s:capabilities:%s", redisNamespace, name)
}

func (r *RedisRegistry) tagKey(tag string) string {
	return fmt.Sprintf("%s:tags:%s", redisNamespace, tag)
}

func (r *RedisRegistry) agentsIndexKey() string {
	return fmt.Sprintf("%s:agents", redisNamespace)
}

// Register upserts an agent profile and refreshes the capability and tag
// indexes.
func (r *RedisRegistry) Register(ctx context.Context, profile *models.AgentProfile) error {
	if profile.ID == "" {
		return errors.New("agent id is required")
	}

	now := r.nowFunc()
	p := cloneProfile(profile)

	// Preserve registration time and heartbeat across re-registration.
	if existing, err := r.load(ctx, profile.ID); err == nil {
		p.RegisteredAt = existing.RegisteredAt
		p.LastHeartbeatAt = existing.LastHeartbeatAt
	} else if errors.Is(err, ErrAgentNotFound) {
		p.RegisteredAt = now
		p.LastHeartbeatAt = time.Time{}
	} else {
		return err
	}
	p.Status = r.policy.StatusOf(p, now)

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal agent profile: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.agentKey(p.ID), data, r.keyTTL)
	pipe.SAdd(ctx, r.agentsIndexKey(), p.ID)
	for _, cap := range p.Capabilities {
		pipe.SAdd(ctx, r.capabilityKey(cap.Name), p.ID)
		pipe.Expire(ctx, r.capabilityKey(cap.Name), r.keyTTL)
		for _, tag := range cap.Tags {
			pipe.SAdd(ctx, r.tagKey(tag), p.ID)
			pipe.Expire(ctx, r.tagKey(tag), r.keyTTL)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to register agent %s: %w", p.ID, err)
	}
	return nil
}

// Deregister removes an agent and scrubs it from the indexes.
func (r *RedisRegistry) Deregister(ctx context.Context, agentID string) error {
	p, err := r.load(ctx, agentID)
	if err != nil {
		if errors.Is(err, ErrAgentNotFound) {
			return nil
		}
		return err
	}

	pipe := r.client.Pipeline()
	for _, cap := range p.Capabilities {
		pipe.SRem(ctx, r.capabilityKey(cap.Name), agentID)
		for _, tag := range cap.Tags {
			pipe.SRem(ctx, r.tagKey(tag), agentID)
		}
	}
	pipe.SRem(ctx, r.agentsIndexKey(), agentID)
	pipe.Del(ctx, r.agentKey(agentID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to deregister agent %s: %w", agentID, err)
	}
	return nil
}

// Heartbeat refreshes liveness and re-extends the profile TTL.
func (r *RedisRegistry) Heartbeat(ctx context.Context, agentID string) error {
	p, err := r.load(ctx, agentID)
	if err != nil {
		return err
	}
	p.LastHeartbeatAt = r.nowFunc()
	p.Status = models.AgentHealthy

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal agent profile: %w", err)
	}
	if err := r.client.Set(ctx, r.agentKey(agentID), data, r.keyTTL).Err(); err != nil {
		return fmt.Errorf("failed to heartbeat agent %s: %w", agentID, err)
	}
	return nil
}

// Get returns the profile with health evaluated at call time.
func (r *RedisRegistry) Get(ctx context.Context, agentID string) (*models.AgentProfile, error) {
	p, err := r.load(ctx, agentID)
	if err != nil {
		return nil, err
	}
	p.Status = r.policy.StatusOf(p, r.nowFunc())
	return p, nil
}

// List returns all known profiles with evaluated health, sorted by id.
func (r *RedisRegistry) List(ctx context.Context) ([]*models.AgentProfile, error) {
	ids, err := r.client.SMembers(ctx, r.agentsIndexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	now := r.nowFunc()
	out := make([]*models.AgentProfile, 0, len(ids))
	for _, id := range ids {
		p, err := r.load(ctx, id)
		if err != nil {
			if errors.Is(err, ErrAgentNotFound) {
				// TTL expired under us; drop the stale index entry.
				r.client.SRem(ctx, r.agentsIndexKey(), id)
				continue
			}
			return nil, err
		}
		p.Status = r.policy.StatusOf(p, now)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FindByCapability returns healthy agents from the capability index.
func (r *RedisRegistry) FindByCapability(ctx context.Context, capability string) ([]*models.AgentProfile, error) {
	ids, err := r.client.SMembers(ctx, r.capabilityKey(capability)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to find agents by capability: %w", err)
	}
	return r.healthyByIDs(ctx, ids, nil)
}

// FindByTags returns healthy agents whose capability carries every tag. The
// first tag narrows via the index; the rest are checked on the profile.
func (r *RedisRegistry) FindByTags(ctx context.Context, tags []string) ([]*models.AgentProfile, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	ids, err := r.client.SMembers(ctx, r.tagKey(tags[0])).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to find agents by tag: %w", err)
	}
	return r.healthyByIDs(ctx, ids, func(p *models.AgentProfile) bool {
		for _, c := range p.Capabilities {
			if c.HasTags(tags) {
				return true
			}
		}
		return false
	})
}

// Close releases the Redis connection.
func (r *RedisRegistry) Close() error {
	return r.client.Close()
}

func (r *RedisRegistry) load(ctx context.Context, agentID string) (*models.AgentProfile, error) {
	data, err := r.client.Get(ctx, r.agentKey(agentID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to load agent %s: %w", agentID, err)
	}
	var p models.AgentProfile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to decode agent %s: %w", agentID, err)
	}
	return &p, nil
}

func (r *RedisRegistry) healthyByIDs(ctx context.Context, ids []string, match func(*models.AgentProfile) bool) ([]*models.AgentProfile, error) {
	now := r.nowFunc()
	var out []*models.AgentProfile
	for _, id := range ids {
		p, err := r.load(ctx, id)
		if err != nil {
			if errors.Is(err, ErrAgentNotFound) {
				continue
			}
			return nil, err
		}
		if r.policy.StatusOf(p, now) != models.AgentHealthy {
			continue
		}
		if match != nil && !match(p) {
			continue
		}
		p.Status = models.AgentHealthy
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LastHeartbeatAt.Equal(out[j].LastHeartbeatAt) {
			return out[i].LastHeartbeatAt.After(out[j].LastHeartbeatAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// NewFromEnv builds a registry backend from AGENT_REGISTRY_URL. An empty
// value selects the in-memory backend; redis:// selects Redis.
func NewFromEnv(ctx context.Context, registryURL string, policy HealthPolicy) (Registry, error) {
	if registryURL == "" {
		slog.Info("Agent registry: in-memory backend")
		return NewInMemoryRegistry(policy), nil
	}
	slog.Info("Agent registry: redis backend", "url", registryURL)
	return NewRedisRegistry(ctx, registryURL, policy)
}
