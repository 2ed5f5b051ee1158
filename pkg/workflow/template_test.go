package workflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateValidate(t *testing.T) {
	tests := []struct {
		name     string
		template Template
		wantErr  string
	}{
		{
			name: "valid chain",
			template: Template{Name: "ok", Steps: []Step{
				{ID: "a", Type: StepAgentCall, Agent: "code-agent", OnSuccess: "b"},
				{ID: "b", Type: StepNoop},
			}},
		},
		{
			name:     "missing name",
			template: Template{Steps: []Step{{ID: "a", Type: StepNoop}}},
			wantErr:  "no name",
		},
		{
			name: "duplicate step id",
			template: Template{Name: "dup", Steps: []Step{
				{ID: "a", Type: StepNoop},
				{ID: "a", Type: StepNoop},
			}},
			wantErr: "duplicate step id",
		},
		{
			name: "unknown step type",
			template: Template{Name: "bad-type", Steps: []Step{
				{ID: "a", Type: "teleport"},
			}},
			wantErr: "unknown type",
		},
		{
			name: "agent_call without agent",
			template: Template{Name: "no-agent", Steps: []Step{
				{ID: "a", Type: StepAgentCall},
			}},
			wantErr: "no agent",
		},
		{
			name: "dangling transition",
			template: Template{Name: "dangling", Steps: []Step{
				{ID: "a", Type: StepNoop, OnSuccess: "ghost"},
			}},
			wantErr: "unknown step",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.template.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrTemplate)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTemplateRegistry(t *testing.T) {
	r := NewTemplateRegistry()
	require.NoError(t, r.Register(&Template{Name: "beta", Steps: []Step{{ID: "a", Type: StepNoop}}}))
	require.NoError(t, r.Register(&Template{Name: "alpha", Steps: []Step{{ID: "a", Type: StepNoop}}}))

	got, err := r.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.Name)

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	assert.Equal(t, []string{"alpha", "beta"}, r.Names())
}

func TestLoadTemplateDir(t *testing.T) {
	dir := t.TempDir()

	valid := `
name: pr-deployment
version: "1"
steps:
  - id: build
    type: agent_call
    agent: code-agent
    payload:
      request_type: build.run
    on_success: review
  - id: review
    type: hitl_approval
    prompt: "Assess deploying {{ context.repo }}"
    on_approved: deploy
  - id: deploy
    type: agent_call
    agent: infra-agent
    resources: ["cluster/prod"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pr-deployment.yaml"), []byte(valid), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	registry, err := LoadTemplateDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"pr-deployment"}, registry.Names())

	tmpl, err := registry.Get("pr-deployment")
	require.NoError(t, err)
	assert.Equal(t, "build", tmpl.FirstStep())

	step, ok := tmpl.Step("deploy")
	require.True(t, ok)
	assert.Equal(t, []string{"cluster/prod"}, step.Resources)

	t.Run("missing dir yields empty registry", func(t *testing.T) {
		registry, err := LoadTemplateDir(filepath.Join(dir, "nope"))
		require.NoError(t, err)
		assert.Empty(t, registry.Names())
	})

	t.Run("invalid template fails the load", func(t *testing.T) {
		bad := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(bad, "bad.yaml"),
			[]byte("name: broken\nsteps:\n  - id: a\n    type: warp\n"), 0o644))
		_, err := LoadTemplateDir(bad)
		assert.ErrorIs(t, err, ErrTemplate)
	})
}
