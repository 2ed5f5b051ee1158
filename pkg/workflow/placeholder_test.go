package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPayload(t *testing.T) {
	context := map[string]any{
		"repo":   "conductor",
		"pr_num": 42,
	}
	outputs := map[string]any{
		"build": map[string]any{
			"artifact": "conductor-1.2.3.tar.gz",
			"passed":   true,
		},
	}

	t.Run("whole placeholder preserves type", func(t *testing.T) {
		rendered, err := RenderPayload(map[string]any{
			"pr":     "{{ context.pr_num }}",
			"passed": "{{ outputs.build.passed }}",
		}, context, outputs)
		require.NoError(t, err)
		assert.Equal(t, 42, rendered["pr"])
		assert.Equal(t, true, rendered["passed"])
	})

	t.Run("embedded placeholder stringifies", func(t *testing.T) {
		rendered, err := RenderPayload(map[string]any{
			"message": "deploying {{ outputs.build.artifact }} for PR {{ context.pr_num }}",
		}, context, outputs)
		require.NoError(t, err)
		assert.Equal(t, "deploying conductor-1.2.3.tar.gz for PR 42", rendered["message"])
	})

	t.Run("nested maps and slices", func(t *testing.T) {
		rendered, err := RenderPayload(map[string]any{
			"spec": map[string]any{
				"targets": []any{"{{ context.repo }}", "static"},
			},
		}, context, outputs)
		require.NoError(t, err)
		spec := rendered["spec"].(map[string]any)
		assert.Equal(t, []any{"conductor", "static"}, spec["targets"])
	})

	t.Run("unresolved placeholder fails", func(t *testing.T) {
		_, err := RenderPayload(map[string]any{
			"x": "{{ outputs.missing.value }}",
		}, context, outputs)
		assert.ErrorIs(t, err, ErrTemplate)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		payload := map[string]any{"repo": "{{ context.repo }}"}
		_, err := RenderPayload(payload, context, outputs)
		require.NoError(t, err)
		assert.Equal(t, "{{ context.repo }}", payload["repo"])
		assert.Equal(t, "conductor", context["repo"])
	})

	t.Run("same inputs yield same result", func(t *testing.T) {
		payload := map[string]any{"msg": "{{ context.repo }}#{{ context.pr_num }}"}
		first, err := RenderPayload(payload, context, outputs)
		require.NoError(t, err)
		second, err := RenderPayload(payload, context, outputs)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("nil payload renders empty", func(t *testing.T) {
		rendered, err := RenderPayload(nil, context, outputs)
		require.NoError(t, err)
		assert.Empty(t, rendered)
	})

	t.Run("non-placeholder braces pass through", func(t *testing.T) {
		rendered, err := RenderPayload(map[string]any{
			"raw": "{{ not.a.placeholder }}",
		}, context, outputs)
		require.NoError(t, err)
		assert.Equal(t, "{{ not.a.placeholder }}", rendered["raw"])
	})
}

func TestRenderString(t *testing.T) {
	context := map[string]any{"env": "staging"}

	s, err := RenderString("deploy to {{ context.env }}", context, nil)
	require.NoError(t, err)
	assert.Equal(t, "deploy to staging", s)

	_, err = RenderString("{{ context.absent }}", context, nil)
	assert.ErrorIs(t, err, ErrTemplate)
}
