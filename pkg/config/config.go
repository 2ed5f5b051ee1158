// Package config loads and validates the Conductor configuration: YAML
// files from a config directory merged over built-in defaults, with
// environment variables layered on top for deployment-specific settings.
package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/conductorhq/conductor/pkg/intent"
	"github.com/conductorhq/conductor/pkg/llm"
	"github.com/conductorhq/conductor/pkg/mcp"
)

// Config is the fully resolved runtime configuration.
type Config struct {
	configDir string

	System      *SystemConfig
	Locks       *LocksConfig
	Registry    *RegistryConfig
	Bus         *BusConfig
	Engine      *EngineConfig
	Retention   *RetentionConfig
	Intent      intent.Config
	Selector    mcp.SelectorConfig
	ToolCatalog *ToolCatalogYAMLConfig

	Specialists  *SpecialistRegistry
	LLMProviders *LLMProviderRegistry
	LLMChain     []llm.ChainEntry
}

// ConfigDir returns the directory configuration was loaded from.
func (c *Config) ConfigDir() string { return c.configDir }

// TemplatesDir returns the workflow template directory.
func (c *Config) TemplatesDir() string {
	return c.configDir + "/templates"
}

// SystemConfig groups server-wide settings.
type SystemConfig struct {
	// Port the HTTP server listens on.
	Port int `yaml:"port"`
	// OrchestratorURL is this pod's externally reachable base URL,
	// registered as the orchestrator profile's endpoint.
	OrchestratorURL string `yaml:"orchestrator_url"`
	// AgentRegistryURL selects the registry backend (empty = in-memory).
	AgentRegistryURL string `yaml:"agent_registry_url"`
	// EventBusURL selects the bus backend (empty = in-process).
	EventBusURL string `yaml:"event_bus_url"`
	// ToolRegistryURL is the external tool catalog endpoint. Empty keeps
	// the static catalog from conductor.yaml.
	ToolRegistryURL string `yaml:"tool_registry_url"`
}

// LocksConfig tunes the resource lock manager.
type LocksConfig struct {
	LeaseSeconds  int           `yaml:"lease_seconds"`
	WaitSeconds   int           `yaml:"wait_seconds"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// Lease returns the default lock lease duration.
func (c *LocksConfig) Lease() time.Duration {
	return time.Duration(c.LeaseSeconds) * time.Second
}

// Wait returns the default blocking-acquire wait budget.
func (c *LocksConfig) Wait() time.Duration {
	return time.Duration(c.WaitSeconds) * time.Second
}

// RegistryConfig tunes agent health evaluation.
type RegistryConfig struct {
	HeartbeatGrace time.Duration `yaml:"heartbeat_grace"`
	GoneGrace      time.Duration `yaml:"gone_grace"`
	EvalInterval   time.Duration `yaml:"eval_interval"`
}

// BusConfig tunes the event bus request path.
type BusConfig struct {
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds"`
}

// RequestTimeout returns the default agent request deadline.
func (c *BusConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// EngineConfig tunes workflow execution.
type EngineConfig struct {
	// HeartbeatInterval is how often running workflows refresh their
	// liveness mark.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`
	// OrphanThreshold is how stale a heartbeat may be before another pod
	// claims the workflow.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
	// OrphanScanInterval is how often the recovery loop runs.
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`
	// LLMTimeoutSeconds bounds individual model calls.
	LLMTimeoutSeconds int `yaml:"llm_timeout_seconds"`
	// DefaultTemplate is the workflow template used when an orchestration
	// request names none (chat messages routed to full orchestration).
	DefaultTemplate string `yaml:"default_template"`
}

// LLMTimeout returns the per-call model deadline.
func (c *EngineConfig) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}

// RetentionConfig tunes background cleanup.
type RetentionConfig struct {
	EventTTL time.Duration `yaml:"event_ttl"`
	// WorkflowRetention is how long terminal workflows are kept.
	WorkflowRetention time.Duration `yaml:"workflow_retention"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"`
}

// SpecialistConfig describes one specialist worker the orchestrator can
// dispatch to.
type SpecialistConfig struct {
	// Capabilities the specialist registers.
	Capabilities []string `yaml:"capabilities"`
	// RequestType is the bus request type the specialist serves.
	RequestType string `yaml:"request_type"`
	// ToolStrategy selects the catalog slice offered to the specialist.
	ToolStrategy mcp.Strategy `yaml:"tool_strategy"`
	// Resources are lock resource ids acquired around dispatch.
	Resources []string `yaml:"resources,omitempty"`
}

// SpecialistRegistry stores specialist configurations with thread-safe
// access.
type SpecialistRegistry struct {
	mu          sync.RWMutex
	specialists map[string]*SpecialistConfig
}

// NewSpecialistRegistry creates a registry over a defensive copy of the map.
func NewSpecialistRegistry(specialists map[string]*SpecialistConfig) *SpecialistRegistry {
	copied := make(map[string]*SpecialistConfig, len(specialists))
	for k, v := range specialists {
		copied[k] = v
	}
	return &SpecialistRegistry{specialists: copied}
}

// Get retrieves a specialist configuration by agent id.
func (r *SpecialistRegistry) Get(agentID string) (*SpecialistConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.specialists[agentID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSpecialistNotFound, agentID)
	}
	return s, nil
}

// IDs returns all configured specialist ids.
func (r *SpecialistRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.specialists))
	for id := range r.specialists {
		out = append(out, id)
	}
	return out
}

// Has checks whether a specialist is configured.
func (r *SpecialistRegistry) Has(agentID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.specialists[agentID]
	return ok
}

// Stats summarizes loaded configuration for the startup log line.
type Stats struct {
	Specialists  int
	LLMProviders int
	ChainLength  int
}

// Stats returns configuration counts.
func (c *Config) Stats() Stats {
	return Stats{
		Specialists:  len(c.Specialists.IDs()),
		LLMProviders: len(c.LLMProviders.Names()),
		ChainLength:  len(c.LLMChain),
	}
}
