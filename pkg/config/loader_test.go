package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFiles(t *testing.T, conductorYAML, llmYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "conductor.yaml"), []byte(conductorYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(llmYAML), 0o644))
	return dir
}

const minimalLLMYAML = `
llm_providers:
  primary:
    type: openai
    model: gpt-4o
    api_key_env: OPENAI_API_KEY
failover_chain:
  - provider: primary
`

func TestInitialize_Defaults(t *testing.T) {
	dir := writeConfigFiles(t, "system:\n  port: 9000\n", minimalLLMYAML)

	cfg, err := Initialize(t.Context(), dir)
	require.NoError(t, err)

	// User value wins, everything else falls back to built-in defaults.
	assert.Equal(t, 9000, cfg.System.Port)
	assert.Equal(t, "http://localhost:8000", cfg.System.OrchestratorURL)
	assert.Equal(t, 300, cfg.Locks.LeaseSeconds)
	assert.Equal(t, 30*time.Second, cfg.Registry.HeartbeatGrace)
	assert.Equal(t, 2*time.Minute, cfg.Registry.GoneGrace)
	assert.True(t, cfg.Intent.Enabled)
	assert.Equal(t, filepath.Join(dir, "templates"), filepath.Clean(cfg.TemplatesDir()))

	// Built-in specialists are present alongside user-defined ones.
	assert.True(t, cfg.Specialists.Has("code-agent"))
}

func TestInitialize_UserOverridesBuiltin(t *testing.T) {
	dir := writeConfigFiles(t, `
locks:
  lease_seconds: 60
  wait_seconds: 10
specialists:
  code-agent:
    capabilities: [code]
    request_type: custom.execute
    tool_strategy: full
`, minimalLLMYAML)

	cfg, err := Initialize(t.Context(), dir)
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Locks.Lease())
	assert.Equal(t, 10*time.Second, cfg.Locks.Wait())

	s, err := cfg.Specialists.Get("code-agent")
	require.NoError(t, err)
	assert.Equal(t, "custom.execute", s.RequestType)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("CONDUCTOR_TEST_URL", "http://conductor.internal:8000")
	dir := writeConfigFiles(t, `
system:
  orchestrator_url: "{{.CONDUCTOR_TEST_URL}}"
`, minimalLLMYAML)

	cfg, err := Initialize(t.Context(), dir)
	require.NoError(t, err)
	assert.Equal(t, "http://conductor.internal:8000", cfg.System.OrchestratorURL)
}

func TestInitialize_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENABLE_INTENT_ROUTING", "false")
	t.Setenv("LOCK_LEASE_SECONDS", "120")
	t.Setenv("AGENT_REQUEST_TIMEOUT_SECONDS", "45")

	dir := writeConfigFiles(t, "", minimalLLMYAML)
	cfg, err := Initialize(t.Context(), dir)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.System.Port)
	assert.False(t, cfg.Intent.Enabled)
	assert.Equal(t, 2*time.Minute, cfg.Locks.Lease())
	assert.Equal(t, 45*time.Second, cfg.Bus.RequestTimeout())
}

func TestInitialize_LLMProviderOverride(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "secondary")
	t.Setenv("LLM_BASE_URL", "http://gateway.internal/v1")

	dir := writeConfigFiles(t, "", `
llm_providers:
  primary:
    type: openai
    model: gpt-4o
    api_key_env: OPENAI_API_KEY
  secondary:
    type: openai
    model: gpt-4o-mini
    api_key_env: SECONDARY_API_KEY
failover_chain:
  - provider: primary
`)

	cfg, err := Initialize(t.Context(), dir)
	require.NoError(t, err)

	require.Len(t, cfg.LLMChain, 1)
	assert.Equal(t, "secondary", cfg.LLMChain[0].Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLMChain[0].Model)

	p, err := cfg.LLMProviders.Get("secondary")
	require.NoError(t, err)
	assert.Equal(t, "http://gateway.internal/v1", p.BaseURL)
}

func TestInitialize_MissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "conductor.yaml"), []byte(""), 0o644))

	_, err := Initialize(t.Context(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name          string
		conductorYAML string
		llmYAML       string
	}{
		{
			name:          "port out of range",
			conductorYAML: "system:\n  port: 70000\n",
			llmYAML:       minimalLLMYAML,
		},
		{
			name:          "unknown tool strategy",
			conductorYAML: "specialists:\n  bad:\n    request_type: x\n    tool_strategy: everything\n",
			llmYAML:       minimalLLMYAML,
		},
		{
			name:          "chain references unknown provider",
			conductorYAML: "",
			llmYAML: `
llm_providers:
  primary:
    type: openai
    model: gpt-4o
    api_key_env: OPENAI_API_KEY
failover_chain:
  - provider: missing
`,
		},
		{
			name:          "unknown provider type",
			conductorYAML: "",
			llmYAML: `
llm_providers:
  primary:
    type: bedrock
    model: titan
    api_key_env: KEY
failover_chain:
  - provider: primary
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfigFiles(t, tt.conductorYAML, tt.llmYAML)
			_, err := Initialize(t.Context(), dir)
			require.Error(t, err)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestExpandEnv_PreservesLiteralDollar(t *testing.T) {
	in := []byte(`pattern: "^secret.*$"`)
	assert.Equal(t, in, ExpandEnv(in))
}
