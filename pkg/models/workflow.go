// Package models defines the domain types shared across services, the
// workflow engine, and the API layer.
package models

import "time"

// WorkflowStatus is the lifecycle state of a workflow.
type WorkflowStatus string

// Workflow lifecycle states.
const (
	WorkflowRunning   WorkflowStatus = "running"
	WorkflowPaused    WorkflowStatus = "paused"
	WorkflowCompleted WorkflowStatus = "completed"
	WorkflowFailed    WorkflowStatus = "failed"
	WorkflowCanceled  WorkflowStatus = "canceled"
)

// Terminal reports whether the status admits no further transitions.
func (s WorkflowStatus) Terminal() bool {
	switch s {
	case WorkflowCompleted, WorkflowFailed, WorkflowCanceled:
		return true
	}
	return false
}

// StepStatus is the lifecycle state of a single step within a workflow.
type StepStatus string

// Step lifecycle states.
const (
	StepPending   StepStatus = "pending"
	StepRunning   StepStatus = "running"
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

// Workflow is the engine checkpoint: everything needed to resume a DAG
// instance after a pause or a process restart. The persisted row is the
// source of truth; no mutable in-memory copy survives between advances.
type Workflow struct {
	ID           string                `json:"workflow_id"`
	TemplateName string                `json:"template_name"`
	Status       WorkflowStatus        `json:"status"`
	CurrentStep  string                `json:"current_step,omitempty"`
	Context      map[string]any        `json:"context"`
	Outputs      map[string]any        `json:"outputs"`
	StepStatuses map[string]StepStatus `json:"step_statuses"`
	Version      int                   `json:"version"`
	TaskID       string                `json:"task_id,omitempty"`
	ErrorMessage string                `json:"error_message,omitempty"`
	StartedAt    time.Time             `json:"started_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	CompletedAt  *time.Time            `json:"completed_at,omitempty"`
}

// Clone returns a deep copy. The engine mutates a clone and persists it with
// an optimistic write; the original stays untouched for conflict retries.
func (w *Workflow) Clone() *Workflow {
	cp := *w
	cp.Context = make(map[string]any, len(w.Context))
	for k, v := range w.Context {
		cp.Context[k] = v
	}
	cp.Outputs = make(map[string]any, len(w.Outputs))
	for k, v := range w.Outputs {
		cp.Outputs[k] = v
	}
	cp.StepStatuses = make(map[string]StepStatus, len(w.StepStatuses))
	for k, v := range w.StepStatuses {
		cp.StepStatuses[k] = v
	}
	return &cp
}

// CreateWorkflowRequest is the input for creating a workflow instance.
type CreateWorkflowRequest struct {
	TemplateName string         `json:"template_name"`
	Context      map[string]any `json:"context"`
	TaskID       string         `json:"task_id,omitempty"`
}
