package config

import (
	"fmt"

	"github.com/conductorhq/conductor/pkg/mcp"
)

// validate performs comprehensive validation on loaded configuration.
func validate(cfg *Config) error {
	validator := &Validator{cfg: cfg}
	return validator.ValidateAll()
}

// Validator checks a loaded Config for internal consistency.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every check and returns the first failure.
func (v *Validator) ValidateAll() error {
	checks := []func() error{
		v.validateSystem,
		v.validateLocks,
		v.validateRegistry,
		v.validateBus,
		v.validateEngine,
		v.validateSpecialists,
		v.validateLLM,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateSystem() error {
	s := v.cfg.System
	if s.Port < 1 || s.Port > 65535 {
		return newValidationError("system", "port", fmt.Sprintf("out of range: %d", s.Port))
	}
	if s.OrchestratorURL == "" {
		return newValidationError("system", "orchestrator_url", "must not be empty")
	}
	return nil
}

func (v *Validator) validateLocks() error {
	l := v.cfg.Locks
	if l.LeaseSeconds <= 0 {
		return newValidationError("locks", "lease_seconds", "must be positive")
	}
	if l.WaitSeconds <= 0 {
		return newValidationError("locks", "wait_seconds", "must be positive")
	}
	if l.SweepInterval <= 0 {
		return newValidationError("locks", "sweep_interval", "must be positive")
	}
	return nil
}

func (v *Validator) validateRegistry() error {
	r := v.cfg.Registry
	if r.HeartbeatGrace <= 0 {
		return newValidationError("registry", "heartbeat_grace", "must be positive")
	}
	if r.GoneGrace <= r.HeartbeatGrace {
		return newValidationError("registry", "gone_grace", "must exceed heartbeat_grace")
	}
	return nil
}

func (v *Validator) validateBus() error {
	if v.cfg.Bus.RequestTimeoutSeconds <= 0 {
		return newValidationError("bus", "request_timeout_seconds", "must be positive")
	}
	return nil
}

func (v *Validator) validateEngine() error {
	e := v.cfg.Engine
	if e.HeartbeatInterval <= 0 {
		return newValidationError("engine", "heartbeat_interval", "must be positive")
	}
	if e.OrphanThreshold <= e.HeartbeatInterval {
		return newValidationError("engine", "orphan_threshold", "must exceed heartbeat_interval")
	}
	if e.LLMTimeoutSeconds <= 0 {
		return newValidationError("engine", "llm_timeout_seconds", "must be positive")
	}
	return nil
}

func (v *Validator) validateSpecialists() error {
	for _, id := range v.cfg.Specialists.IDs() {
		s, err := v.cfg.Specialists.Get(id)
		if err != nil {
			return err
		}
		if s.RequestType == "" {
			return newValidationError("specialists", id, "request_type must not be empty")
		}
		switch s.ToolStrategy {
		case "", mcp.StrategyMinimal, mcp.StrategyProgressive, mcp.StrategyFull:
		default:
			return newValidationError("specialists", id,
				fmt.Sprintf("unknown tool_strategy %q", s.ToolStrategy))
		}
	}
	return nil
}

func (v *Validator) validateLLM() error {
	for _, name := range v.cfg.LLMProviders.Names() {
		p, err := v.cfg.LLMProviders.Get(name)
		if err != nil {
			return err
		}
		if p.Type != ProviderTypeOpenAI && p.Type != ProviderTypeAnthropic {
			return newValidationError("llm_providers", name,
				fmt.Sprintf("unknown type %q", p.Type))
		}
		if p.Model == "" {
			return newValidationError("llm_providers", name, "model must not be empty")
		}
		if p.APIKeyEnv == "" {
			return newValidationError("llm_providers", name, "api_key_env must not be empty")
		}
	}

	if len(v.cfg.LLMChain) == 0 {
		return newValidationError("llm_providers", "failover_chain", "must not be empty")
	}
	for i, entry := range v.cfg.LLMChain {
		if _, err := v.cfg.LLMProviders.Get(entry.Provider); err != nil {
			return newValidationError("llm_providers", "failover_chain",
				fmt.Sprintf("entry %d references unknown provider %q", i, entry.Provider))
		}
	}
	return nil
}
