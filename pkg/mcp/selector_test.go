package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return NewStaticCatalog("v1", map[string][]ToolSchema{
		"kubernetes": {
			{Name: "get_pods"},
			{Name: "scale_deployment"},
			{Name: "restart_pod"},
		},
		"github": {
			{Name: "create_pr"},
			{Name: "merge_pr"},
		},
		"prometheus": {
			{Name: "query_range"},
		},
	})
}

func testSelector() *Selector {
	return NewSelector(SelectorConfig{
		KeywordServers: map[string][]string{
			"deploy":  {"kubernetes", "github"},
			"scale":   {"kubernetes"},
			"metrics": {"prometheus"},
		},
		AgentServers: map[string][]string{
			"sre-agent": {"prometheus"},
		},
	})
}

func qualifiedNames(tools []NamedTool) []string {
	out := make([]string, len(tools))
	for i, t := range tools {
		out[i] = t.QualifiedName()
	}
	return out
}

func TestSelector_Minimal(t *testing.T) {
	s := testSelector()
	catalog := testCatalog()

	t.Run("keyword match picks priority servers", func(t *testing.T) {
		tools := s.Select("scale the API deployment", "any", StrategyMinimal, catalog)
		assert.Equal(t, []string{
			"kubernetes.get_pods",
			"kubernetes.scale_deployment",
			"kubernetes.restart_pod",
			"github.create_pr",
			"github.merge_pr",
		}, qualifiedNames(tools))
	})

	t.Run("no keyword match yields empty set", func(t *testing.T) {
		tools := s.Select("write a poem", "any", StrategyMinimal, catalog)
		assert.Empty(t, tools)
	})

	t.Run("duplicate servers across keywords are deduplicated", func(t *testing.T) {
		tools := s.Select("deploy and scale", "any", StrategyMinimal, catalog)
		names := qualifiedNames(tools)
		seen := map[string]int{}
		for _, n := range names {
			seen[n]++
		}
		for name, count := range seen {
			assert.Equal(t, 1, count, name)
		}
	})
}

func TestSelector_Progressive(t *testing.T) {
	s := testSelector()
	catalog := testCatalog()

	tools := s.Select("scale the API deployment", "sre-agent", StrategyProgressive, catalog)
	names := qualifiedNames(tools)
	assert.Contains(t, names, "kubernetes.scale_deployment")
	assert.Contains(t, names, "prometheus.query_range")

	// Without agent priority servers, progressive equals minimal.
	minimal := s.Select("scale the API deployment", "other-agent", StrategyMinimal, catalog)
	progressive := s.Select("scale the API deployment", "other-agent", StrategyProgressive, catalog)
	assert.Equal(t, qualifiedNames(minimal), qualifiedNames(progressive))
}

func TestSelector_Full(t *testing.T) {
	s := testSelector()
	catalog := testCatalog()

	tools := s.Select("anything at all", "any", StrategyFull, catalog)
	assert.Len(t, tools, 6)
	// Servers sorted for determinism.
	assert.Equal(t, "github.create_pr", tools[0].QualifiedName())
}

func TestSelector_Deterministic(t *testing.T) {
	s := testSelector()
	catalog := testCatalog()

	first := qualifiedNames(s.Select("deploy and scale with metrics", "sre-agent", StrategyProgressive, catalog))
	for i := 0; i < 10; i++ {
		again := qualifiedNames(s.Select("deploy and scale with metrics", "sre-agent", StrategyProgressive, catalog))
		assert.Equal(t, first, again)
	}
}

func TestCatalog_RefreshFromRegistry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"version": "2026-08-01",
			"servers": {
				"kubernetes": [{"name": "get_pods"}],
				"github": [{"name": "create_pr"}, {"name": "merge_pr"}]
			}
		}`))
	}))
	defer server.Close()

	catalog, err := NewCatalogFromRegistry(t.Context(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", catalog.Version())
	assert.Equal(t, []string{"github", "kubernetes"}, catalog.Servers())
	assert.Len(t, catalog.Tools("github"), 2)
}

func TestToolNames(t *testing.T) {
	t.Run("normalize restricted form", func(t *testing.T) {
		assert.Equal(t, "kubernetes.get_pods", NormalizeToolName("kubernetes__get_pods"))
		assert.Equal(t, "kubernetes.get_pods", NormalizeToolName("kubernetes.get_pods"))
	})

	t.Run("provider form round trips", func(t *testing.T) {
		assert.Equal(t, "kubernetes__get_pods", ProviderToolName("kubernetes.get_pods"))
		assert.Equal(t, "kubernetes.get_pods", NormalizeToolName(ProviderToolName("kubernetes.get_pods")))
	})

	t.Run("split validates strictly", func(t *testing.T) {
		server, tool, err := SplitToolName("kubernetes-server.get_pods")
		require.NoError(t, err)
		assert.Equal(t, "kubernetes-server", server)
		assert.Equal(t, "get_pods", tool)

		for _, bad := range []string{"", "noseparator", "a.b.c", ".tool", "server.", "sp ace.tool"} {
			_, _, err := SplitToolName(bad)
			assert.Error(t, err, bad)
		}
	})
}
