// Package workflow is the orchestration engine: declarative DAG templates
// interpreted step by step, with every advance checkpointed to the state
// store under optimistic concurrency. The store is the source of truth; no
// in-memory workflow state survives between advances.
package workflow

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// StepType enumerates the step node types a template may use.
type StepType string

// Step types.
const (
	StepAgentCall    StepType = "agent_call"
	StepDecisionGate StepType = "decision_gate"
	StepHITLApproval StepType = "hitl_approval"
	StepNoop         StepType = "noop"
)

// Step is one node of the template graph. Transition fields name successor
// step ids; an empty transition ends the workflow.
type Step struct {
	ID      string         `yaml:"id"`
	Type    StepType       `yaml:"type"`
	Agent   string         `yaml:"agent,omitempty"`
	Payload map[string]any `yaml:"payload,omitempty"`
	// Prompt drives decision gates and HITL risk assessment.
	Prompt string `yaml:"prompt,omitempty"`
	// Resources are lock resource ids held while the step runs.
	Resources []string `yaml:"resources,omitempty"`
	// Timeout bounds the step; zero means no step-level timeout.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	OnSuccess  string `yaml:"on_success,omitempty"`
	OnFailure  string `yaml:"on_failure,omitempty"`
	OnProceed  string `yaml:"on_proceed,omitempty"`
	OnBlock    string `yaml:"on_block,omitempty"`
	OnApproved string `yaml:"on_approved,omitempty"`
	OnRejected string `yaml:"on_rejected,omitempty"`
}

// Template is a named workflow definition.
type Template struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Steps   []Step `yaml:"steps"`

	byID map[string]*Step
}

// FirstStep returns the id of the template's entry step, empty for an empty
// template.
func (t *Template) FirstStep() string {
	if len(t.Steps) == 0 {
		return ""
	}
	return t.Steps[0].ID
}

// Step returns the step with the given id.
func (t *Template) Step(id string) (*Step, bool) {
	s, ok := t.byID[id]
	return s, ok
}

// Validate checks structural consistency: unique step ids, known types, and
// transitions that reference existing steps.
func (t *Template) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: template has no name", ErrTemplate)
	}
	t.byID = make(map[string]*Step, len(t.Steps))
	for i := range t.Steps {
		s := &t.Steps[i]
		if s.ID == "" {
			return fmt.Errorf("%w: template %s: step %d has no id", ErrTemplate, t.Name, i)
		}
		if _, dup := t.byID[s.ID]; dup {
			return fmt.Errorf("%w: template %s: duplicate step id %q", ErrTemplate, t.Name, s.ID)
		}
		switch s.Type {
		case StepAgentCall, StepDecisionGate, StepHITLApproval, StepNoop:
		default:
			return fmt.Errorf("%w: template %s: step %s has unknown type %q",
				ErrTemplate, t.Name, s.ID, s.Type)
		}
		if s.Type == StepAgentCall && s.Agent == "" {
			return fmt.Errorf("%w: template %s: agent_call step %s has no agent",
				ErrTemplate, t.Name, s.ID)
		}
		t.byID[s.ID] = s
	}
	for _, s := range t.Steps {
		for _, next := range []string{s.OnSuccess, s.OnFailure, s.OnProceed, s.OnBlock, s.OnApproved, s.OnRejected} {
			if next == "" {
				continue
			}
			if _, ok := t.byID[next]; !ok {
				return fmt.Errorf("%w: template %s: step %s transitions to unknown step %q",
					ErrTemplate, t.Name, s.ID, next)
			}
		}
	}
	return nil
}

// TemplateRegistry holds loaded templates with thread-safe access.
type TemplateRegistry struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

// NewTemplateRegistry creates an empty registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: make(map[string]*Template)}
}

// Register validates and adds a template, replacing any same-named one.
func (r *TemplateRegistry) Register(t *Template) error {
	if err := t.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[t.Name] = t
	return nil
}

// Get returns a template by name.
func (r *TemplateRegistry) Get(name string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown template %q", ErrTemplateNotFound, name)
	}
	return t, nil
}

// Names returns all registered template names, sorted.
func (r *TemplateRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadTemplateDir loads every *.yaml / *.yml file in dir into a registry.
// A missing directory yields an empty registry.
func LoadTemplateDir(dir string) (*TemplateRegistry, error) {
	registry := NewTemplateRegistry()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return registry, nil
		}
		return nil, fmt.Errorf("failed to read template dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", entry.Name(), err)
		}

		var t Template
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, entry.Name(), err)
		}
		if err := registry.Register(&t); err != nil {
			return nil, fmt.Errorf("template %s: %w", entry.Name(), err)
		}
	}
	return registry, nil
}
