package mcp

import (
	"sort"
	"strings"
)

// Strategy controls how many of the catalog's tools a task is offered.
type Strategy string

// Selection strategies, from narrowest to widest.
const (
	StrategyMinimal     Strategy = "minimal"
	StrategyProgressive Strategy = "progressive"
	StrategyFull        Strategy = "full"
)

// Tool count caps per strategy.
const (
	minimalCap     = 30
	progressiveCap = 60
)

// SelectorConfig is the static priority data behind minimal and progressive
// selection.
type SelectorConfig struct {
	// KeywordServers maps a task keyword to servers in priority order.
	KeywordServers map[string][]string `yaml:"keyword_servers"`
	// AgentServers maps an agent id to its priority servers.
	AgentServers map[string][]string `yaml:"agent_servers"`
}

// Selector narrows the catalog per task. Selection is a pure function of
// (task, agent, strategy, catalog snapshot): same inputs, same tool list.
type Selector struct {
	config SelectorConfig
}

// NewSelector creates a selector over the given priority configuration.
func NewSelector(config SelectorConfig) *Selector {
	return &Selector{config: config}
}

// Select returns the tools offered for the task under the given strategy,
// qualified names ready for the model.
func (s *Selector) Select(task, agentID string, strategy Strategy, catalog *Catalog) []NamedTool {
	switch strategy {
	case StrategyFull:
		return catalog.AllTools()
	case StrategyMinimal:
		return capTools(s.collect(catalog, s.minimalServers(task)), minimalCap)
	default:
		servers := s.minimalServers(task)
		servers = append(servers, s.config.AgentServers[agentID]...)
		return capTools(s.collect(catalog, servers), progressiveCap)
	}
}

// minimalServers resolves the keyword→server priority map against the task.
// Keywords are scanned in sorted order so the result never depends on map
// iteration.
func (s *Selector) minimalServers(task string) []string {
	lowered := strings.ToLower(task)

	keywords := make([]string, 0, len(s.config.KeywordServers))
	for k := range s.config.KeywordServers {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)

	var servers []string
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			servers = append(servers, s.config.KeywordServers[keyword]...)
		}
	}
	return servers
}

// collect resolves a priority-ordered server list against the catalog,
// deduplicating servers while preserving first-mention order.
func (s *Selector) collect(catalog *Catalog, servers []string) []NamedTool {
	seen := make(map[string]bool, len(servers))
	var out []NamedTool
	for _, server := range servers {
		if seen[server] {
			continue
		}
		seen[server] = true
		for _, tool := range catalog.Tools(server) {
			out = append(out, NamedTool{Server: server, Schema: tool})
		}
	}
	return out
}

func capTools(tools []NamedTool, limit int) []NamedTool {
	if len(tools) > limit {
		return tools[:limit]
	}
	return tools
}
