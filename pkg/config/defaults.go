package config

import (
	"time"

	"github.com/conductorhq/conductor/pkg/intent"
	"github.com/conductorhq/conductor/pkg/llm"
)

// DefaultSystemConfig returns built-in server settings.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		Port:            8000,
		OrchestratorURL: "http://localhost:8000",
	}
}

// DefaultLocksConfig returns built-in lock manager settings.
func DefaultLocksConfig() *LocksConfig {
	return &LocksConfig{
		LeaseSeconds:  300,
		WaitSeconds:   30,
		SweepInterval: 5 * time.Second,
	}
}

// DefaultRegistryConfig returns built-in agent health settings.
func DefaultRegistryConfig() *RegistryConfig {
	return &RegistryConfig{
		HeartbeatGrace: 30 * time.Second,
		GoneGrace:      2 * time.Minute,
		EvalInterval:   10 * time.Second,
	}
}

// DefaultBusConfig returns built-in event bus settings.
func DefaultBusConfig() *BusConfig {
	return &BusConfig{
		RequestTimeoutSeconds: 30,
	}
}

// DefaultEngineConfig returns built-in workflow engine settings.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		HeartbeatInterval:  15 * time.Second,
		OrphanThreshold:    2 * time.Minute,
		OrphanScanInterval: time.Minute,
		LLMTimeoutSeconds:  120,
	}
}

// DefaultRetentionConfig returns built-in cleanup settings.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:          24 * time.Hour,
		WorkflowRetention: 30 * 24 * time.Hour,
		CleanupInterval:   time.Hour,
	}
}

// builtinSpecialists are the stock specialist profiles. User YAML entries
// with the same id override them.
func builtinSpecialists() map[string]*SpecialistConfig {
	return map[string]*SpecialistConfig{
		"code-agent": {
			Capabilities: []string{"code", "refactor", "review"},
			RequestType:  "task.execute",
			ToolStrategy: "progressive",
		},
		"infra-agent": {
			Capabilities: []string{"deploy", "scale", "provision"},
			RequestType:  "task.execute",
			ToolStrategy: "minimal",
			Resources:    []string{"cluster-config"},
		},
	}
}

// builtinLLMProviders are the stock provider entries. User YAML entries with
// the same name override them.
func builtinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"openai-default": {
			Type:      ProviderTypeOpenAI,
			Model:     "gpt-4o",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		"anthropic-default": {
			Type:      ProviderTypeAnthropic,
			Model:     "claude-sonnet-4-5",
			APIKeyEnv: "ANTHROPIC_API_KEY",
		},
	}
}

// builtinChain is the stock failover order used when llm-providers.yaml does
// not define one.
func builtinChain() []llm.ChainEntry {
	return []llm.ChainEntry{
		{Provider: "anthropic-default"},
		{Provider: "openai-default"},
	}
}

// defaultIntentConfig returns the stock classifier keyword sets.
func defaultIntentConfig() intent.Config {
	return intent.DefaultConfig()
}
