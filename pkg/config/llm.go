package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/conductorhq/conductor/pkg/llm"
)

// Provider types supported by the model layer.
const (
	ProviderTypeOpenAI    = "openai"
	ProviderTypeAnthropic = "anthropic"
)

// LLMProviderConfig describes one model provider from llm-providers.yaml.
type LLMProviderConfig struct {
	// Type selects the SDK: "openai" or "anthropic".
	Type string `yaml:"type"`
	// Model is the default model used when a chain entry omits one.
	Model string `yaml:"model"`
	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env"`
	// BaseURL overrides the provider endpoint (OpenAI-compatible gateways).
	BaseURL string `yaml:"base_url,omitempty"`
}

// LLMProviderRegistry stores provider configurations with thread-safe access.
type LLMProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]LLMProviderConfig
}

// NewLLMProviderRegistry creates a registry over a defensive copy of the map.
func NewLLMProviderRegistry(providers map[string]LLMProviderConfig) *LLMProviderRegistry {
	copied := make(map[string]LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &LLMProviderRegistry{providers: copied}
}

// Get retrieves a provider configuration by name.
func (r *LLMProviderRegistry) Get(name string) (LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	if !ok {
		return LLMProviderConfig{}, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return p, nil
}

// Names returns all configured provider names.
func (r *LLMProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.providers))
	for name := range r.providers {
		out = append(out, name)
	}
	return out
}

// BuildLLMClient constructs the failover client from the configured providers
// and chain. Providers whose API key environment variable is unset are
// skipped, and chain entries referencing them are dropped, so a deployment
// with a single key still starts.
func (c *Config) BuildLLMClient() (*llm.Client, error) {
	providers := make(map[string]llm.Provider)
	for _, name := range c.LLMProviders.Names() {
		pc, err := c.LLMProviders.Get(name)
		if err != nil {
			return nil, err
		}
		apiKey := os.Getenv(pc.APIKeyEnv)
		if apiKey == "" {
			continue
		}

		var provider llm.Provider
		switch pc.Type {
		case ProviderTypeOpenAI:
			provider, err = llm.NewOpenAIProvider(name, apiKey, pc.BaseURL)
		case ProviderTypeAnthropic:
			provider, err = llm.NewAnthropicProvider(name, apiKey)
		default:
			return nil, newValidationError("llm_providers", name,
				fmt.Sprintf("unknown provider type %q", pc.Type))
		}
		if err != nil {
			return nil, fmt.Errorf("building provider %s: %w", name, err)
		}
		providers[name] = provider
	}

	chain := make([]llm.ChainEntry, 0, len(c.LLMChain))
	for _, entry := range c.LLMChain {
		if _, ok := providers[entry.Provider]; !ok {
			continue
		}
		if entry.Model == "" {
			pc, _ := c.LLMProviders.Get(entry.Provider)
			entry.Model = pc.Model
		}
		chain = append(chain, entry)
	}
	if len(chain) == 0 {
		return nil, fmt.Errorf("no usable llm providers: check api_key_env variables")
	}

	return llm.NewClient(providers, chain, llm.ClientOptions{})
}
