// Package intent classifies incoming messages into routing intents. The
// classifier is a pure function of the message and its configuration: no
// model calls, no stored state, fully deterministic.
package intent

import (
	"strings"
)

// Intent is the routing decision for a message.
type Intent string

// Intents, from most to least complex handling.
const (
	// ExplicitCommand routes /execute messages straight to the execute
	// stream.
	ExplicitCommand Intent = "explicit_command"
	// HighComplexity routes to full orchestration.
	HighComplexity Intent = "high_complexity"
	// MediumComplexity routes to a single specialist.
	MediumComplexity Intent = "medium_complexity"
	// SimpleTask routes to the conversational handler with tools.
	SimpleTask Intent = "simple_task"
	// QA routes to the conversational handler without tools.
	QA Intent = "qa"
)

// Config holds the keyword sets behind classification. All matching is
// case-insensitive.
type Config struct {
	// Enabled gates the router. When false every message is treated as
	// high complexity and handed to full orchestration.
	Enabled bool `yaml:"enabled"`

	// CommandPrefix marks explicit execute commands.
	CommandPrefix string `yaml:"command_prefix"`

	// ExecutionKeywords are verbs that open an actionable request.
	ExecutionKeywords []string `yaml:"execution_keywords"`

	// SearchPatterns are substrings marking simple lookup questions.
	SearchPatterns []string `yaml:"search_patterns"`
}

// DefaultConfig returns the stock keyword sets.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		CommandPrefix: "/execute",
		ExecutionKeywords: []string{
			"implement", "create", "build", "add", "write", "develop",
			"fix", "refactor", "modify", "change", "edit", "delete",
			"deploy", "setup", "configure", "migrate", "update", "remove",
			"improve", "optimize", "enhance",
		},
		SearchPatterns: []string{
			"what files", "where is", "where are", "show me",
			"list ", "find ", "search for",
		},
	}
}

// Classifier routes messages by intent.
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with the given configuration.
func NewClassifier(config Config) *Classifier {
	if config.CommandPrefix == "" {
		config.CommandPrefix = "/execute"
	}
	return &Classifier{config: config}
}

// Classify returns the intent for a message. When two intent criteria both
// match, the lower-complexity intent wins.
func (c *Classifier) Classify(message string) Intent {
	text := strings.ToLower(strings.TrimSpace(message))

	if strings.HasPrefix(text, c.config.CommandPrefix) {
		return ExplicitCommand
	}

	if !c.config.Enabled {
		return HighComplexity
	}

	markers := c.multiStepMarkers(text)
	startsWithVerb := c.startsWithExecutionKeyword(text)
	looksLikeSearch := c.matchesSearchPattern(text)

	// A lookup question stays conversational even when it carries an
	// action verb somewhere later.
	if looksLikeSearch && !startsWithVerb {
		return SimpleTask
	}
	if markers >= 2 || (startsWithVerb && markers >= 1) {
		return HighComplexity
	}
	if startsWithVerb {
		return MediumComplexity
	}
	if looksLikeSearch {
		return SimpleTask
	}
	return QA
}

// multiStepMarkers counts distinct multi-step signals in the message:
// repeated "and", "then", an enumeration with two or more commas, "after".
func (c *Classifier) multiStepMarkers(text string) int {
	count := 0
	if strings.Count(text, " and ") >= 2 {
		count++
	}
	if strings.Contains(text, " then ") || strings.HasPrefix(text, "then ") {
		count++
	}
	if strings.Count(text, ",") >= 2 {
		count++
	}
	if strings.Contains(text, " after ") {
		count++
	}
	return count
}

func (c *Classifier) startsWithExecutionKeyword(text string) bool {
	for _, keyword := range c.config.ExecutionKeywords {
		if strings.HasPrefix(text, keyword+" ") || text == keyword {
			return true
		}
	}
	return false
}

func (c *Classifier) matchesSearchPattern(text string) bool {
	for _, pattern := range c.config.SearchPatterns {
		if strings.HasPrefix(pattern, "list ") || strings.HasPrefix(pattern, "find ") {
			if strings.HasPrefix(text, pattern) {
				return true
			}
			continue
		}
		if strings.Contains(text, pattern) {
			return true
		}
	}
	return false
}
