package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/conductorhq/conductor/pkg/intent"
	"github.com/conductorhq/conductor/pkg/llm"
	"github.com/conductorhq/conductor/pkg/mcp"
)

// ConductorYAMLConfig represents the complete conductor.yaml file structure.
type ConductorYAMLConfig struct {
	System      *SystemConfig                `yaml:"system"`
	Locks       *LocksConfig                 `yaml:"locks"`
	Registry    *RegistryConfig              `yaml:"registry"`
	Bus         *BusConfig                   `yaml:"bus"`
	Engine      *EngineConfig                `yaml:"engine"`
	Retention   *RetentionConfig             `yaml:"retention"`
	Intent      *intent.Config               `yaml:"intent"`
	Selector    *mcp.SelectorConfig          `yaml:"tool_selector"`
	ToolCatalog *ToolCatalogYAMLConfig       `yaml:"tool_catalog"`
	Specialists map[string]*SpecialistConfig `yaml:"specialists"`
}

// ToolCatalogYAMLConfig is the static tool catalog embedded in conductor.yaml,
// used when no external tool registry is configured.
type ToolCatalogYAMLConfig struct {
	Version string                      `yaml:"version"`
	Servers map[string][]mcp.ToolSchema `yaml:"servers"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file
// structure.
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
	Chain        []llm.ChainEntry             `yaml:"failover_chain"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Merge user YAML over built-in defaults
//  4. Apply environment variable overrides
//  5. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"specialists", stats.Specialists,
		"llm_providers", stats.LLMProviders,
		"chain_length", stats.ChainLength)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	conductorConfig, err := loader.loadConductorYAML()
	if err != nil {
		return nil, NewLoadError("conductor.yaml", err)
	}

	llmConfig, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	systemCfg, err := mergeSection(DefaultSystemConfig(), conductorConfig.System)
	if err != nil {
		return nil, err
	}
	locksCfg, err := mergeSection(DefaultLocksConfig(), conductorConfig.Locks)
	if err != nil {
		return nil, err
	}
	registryCfg, err := mergeSection(DefaultRegistryConfig(), conductorConfig.Registry)
	if err != nil {
		return nil, err
	}
	busCfg, err := mergeSection(DefaultBusConfig(), conductorConfig.Bus)
	if err != nil {
		return nil, err
	}
	engineCfg, err := mergeSection(DefaultEngineConfig(), conductorConfig.Engine)
	if err != nil {
		return nil, err
	}
	retentionCfg, err := mergeSection(DefaultRetentionConfig(), conductorConfig.Retention)
	if err != nil {
		return nil, err
	}
	intentCfg := defaultIntentConfig()
	if conductorConfig.Intent != nil {
		intentCfg = *conductorConfig.Intent
	}

	var selectorCfg mcp.SelectorConfig
	if conductorConfig.Selector != nil {
		selectorCfg = *conductorConfig.Selector
	}

	specialists := mergeSpecialists(builtinSpecialists(), conductorConfig.Specialists)
	providers := mergeLLMProviders(builtinLLMProviders(), llmConfig.LLMProviders)

	chain := llmConfig.Chain
	if len(chain) == 0 {
		chain = builtinChain()
	}

	return &Config{
		configDir:    configDir,
		System:       systemCfg,
		Locks:        locksCfg,
		Registry:     registryCfg,
		Bus:          busCfg,
		Engine:       engineCfg,
		Retention:    retentionCfg,
		Intent:       intentCfg,
		Selector:     selectorCfg,
		ToolCatalog:  conductorConfig.ToolCatalog,
		Specialists:  NewSpecialistRegistry(specialists),
		LLMProviders: NewLLMProviderRegistry(providers),
		LLMChain:     chain,
	}, nil
}

// mergeSection merges user YAML over defaults. Non-zero user values win.
func mergeSection[T any](defaults *T, user *T) (*T, error) {
	if user == nil {
		return defaults, nil
	}
	if err := mergo.Merge(defaults, user, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge configuration section: %w", err)
	}
	return defaults, nil
}

// mergeSpecialists merges user-defined specialists over built-in ones.
func mergeSpecialists(builtin, user map[string]*SpecialistConfig) map[string]*SpecialistConfig {
	merged := make(map[string]*SpecialistConfig, len(builtin)+len(user))
	for id, s := range builtin {
		merged[id] = s
	}
	for id, s := range user {
		merged[id] = s
	}
	return merged
}

// mergeLLMProviders merges user-defined providers over built-in ones.
func mergeLLMProviders(builtin, user map[string]LLMProviderConfig) map[string]LLMProviderConfig {
	merged := make(map[string]LLMProviderConfig, len(builtin)+len(user))
	for name, p := range builtin {
		merged[name] = p
	}
	for name, p := range user {
		merged[name] = p
	}
	return merged
}

// applyEnvOverrides layers deployment environment variables over the loaded
// configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.System.Port = port
		} else {
			slog.Warn("Invalid PORT, keeping configured value", "value", v)
		}
	}
	if v := os.Getenv("ORCHESTRATOR_URL"); v != "" {
		cfg.System.OrchestratorURL = v
	}
	if v := os.Getenv("AGENT_REGISTRY_URL"); v != "" {
		cfg.System.AgentRegistryURL = v
	}
	if v := os.Getenv("EVENT_BUS_URL"); v != "" {
		cfg.System.EventBusURL = v
	}
	if v := os.Getenv("TOOL_REGISTRY_URL"); v != "" {
		cfg.System.ToolRegistryURL = v
	}
	if v := os.Getenv("ENABLE_INTENT_ROUTING"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Intent.Enabled = enabled
		} else {
			slog.Warn("Invalid ENABLE_INTENT_ROUTING, keeping configured value", "value", v)
		}
	}
	overrideSeconds := func(name string, target *int) {
		v := os.Getenv(name)
		if v == "" {
			return
		}
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			*target = secs
		} else {
			slog.Warn("Invalid duration override, keeping configured value",
				"var", name, "value", v)
		}
	}
	overrideSeconds("LOCK_LEASE_SECONDS", &cfg.Locks.LeaseSeconds)
	overrideSeconds("LOCK_WAIT_SECONDS", &cfg.Locks.WaitSeconds)
	overrideSeconds("AGENT_REQUEST_TIMEOUT_SECONDS", &cfg.Bus.RequestTimeoutSeconds)
	overrideSeconds("LLM_TIMEOUT_SECONDS", &cfg.Engine.LLMTimeoutSeconds)

	applyLLMEnvOverrides(cfg)
}

// applyLLMEnvOverrides handles the single-provider quick-start variables.
// LLM_PROVIDER pins the chain to one configured provider; LLM_API_KEY and
// LLM_BASE_URL adjust that provider's entry.
func applyLLMEnvOverrides(cfg *Config) {
	name := os.Getenv("LLM_PROVIDER")
	if name == "" {
		return
	}
	pc, err := cfg.LLMProviders.Get(name)
	if err != nil {
		slog.Warn("LLM_PROVIDER names an unconfigured provider, ignoring", "provider", name)
		return
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		pc.BaseURL = v
	}
	if os.Getenv("LLM_API_KEY") != "" {
		pc.APIKeyEnv = "LLM_API_KEY"
	}

	providers := map[string]LLMProviderConfig{name: pc}
	for _, existing := range cfg.LLMProviders.Names() {
		if existing != name {
			other, _ := cfg.LLMProviders.Get(existing)
			providers[existing] = other
		}
	}
	cfg.LLMProviders = NewLLMProviderRegistry(providers)
	cfg.LLMChain = []llm.ChainEntry{{Provider: name, Model: pc.Model}}
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser surface a clearer message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadConductorYAML() (*ConductorYAMLConfig, error) {
	config := ConductorYAMLConfig{
		Specialists: make(map[string]*SpecialistConfig),
	}

	if err := l.loadYAML("conductor.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (*LLMProvidersYAMLConfig, error) {
	config := LLMProvidersYAMLConfig{
		LLMProviders: make(map[string]LLMProviderConfig),
	}

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}
