// Package services implements the state store operations over the Ent client.
// Services are thin: validation, transaction boundaries, and model mapping.
// Callers own retry policy; the store surfaces conflicts as errors.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/conductorhq/conductor/ent"
	entworkflow "github.com/conductorhq/conductor/ent/workflow"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/google/uuid"
)

// WorkflowService persists workflow checkpoints with optimistic concurrency.
type WorkflowService struct {
	client *ent.Client
}

// NewWorkflowService creates a new WorkflowService.
func NewWorkflowService(client *ent.Client) *WorkflowService {
	return &WorkflowService{client: client}
}

// CreateWorkflow creates a new workflow row in status running, version 1.
func (s *WorkflowService) CreateWorkflow(ctx context.Context, req models.CreateWorkflowRequest) (*models.Workflow, error) {
	if req.TemplateName == "" {
		return nil, NewValidationError("template_name", "required")
	}
	if req.Context == nil {
		req.Context = map[string]any{}
	}

	builder := s.client.Workflow.Create().
		SetID(uuid.New().String()).
		SetTemplateName(req.TemplateName).
		SetStatus(entworkflow.StatusRunning).
		SetContext(req.Context).
		SetOutputs(map[string]any{}).
		SetStepStatuses(map[string]string{})

	if req.TaskID != "" {
		builder = builder.SetTaskID(req.TaskID)
	}

	wf, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}
	return workflowToModel(wf), nil
}

// GetWorkflow loads a workflow by id.
func (s *WorkflowService) GetWorkflow(ctx context.Context, id string) (*models.Workflow, error) {
	wf, err := s.client.Workflow.Query().
		Where(entworkflow.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load workflow %s: %w", id, err)
	}
	return workflowToModel(wf), nil
}

// UpdateWorkflow applies mutate to the workflow snapshot and persists it,
// guarded by expectedVersion. Exactly one of two concurrent updates with the
// same expected version succeeds; the loser gets ErrVersionConflict. On
// success the stored version is expectedVersion+1.
func (s *WorkflowService) UpdateWorkflow(ctx context.Context, id string, expectedVersion int, mutate func(*models.Workflow)) (*models.Workflow, error) {
	current, err := s.GetWorkflow(ctx, id)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	mutate(next)
	next.Version = expectedVersion + 1
	next.UpdatedAt = time.Now()

	update := s.client.Workflow.Update().
		Where(
			entworkflow.IDEQ(id),
			entworkflow.VersionEQ(expectedVersion),
		).
		SetStatus(entworkflow.Status(next.Status)).
		SetContext(next.Context).
		SetOutputs(next.Outputs).
		SetStepStatuses(stepStatusesToStrings(next.StepStatuses)).
		SetVersion(next.Version).
		SetUpdatedAt(next.UpdatedAt)

	if next.CurrentStep != "" {
		update = update.SetCurrentStep(next.CurrentStep)
	} else {
		update = update.ClearCurrentStep()
	}
	if next.ErrorMessage != "" {
		update = update.SetErrorMessage(next.ErrorMessage)
	}
	if next.Status.Terminal() {
		now := time.Now()
		next.CompletedAt = &now
		update = update.SetCompletedAt(now)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update workflow %s: %w", id, err)
	}
	if n == 0 {
		// Either the row is gone or another writer bumped the version.
		exists, exErr := s.client.Workflow.Query().Where(entworkflow.IDEQ(id)).Exist(ctx)
		if exErr == nil && !exists {
			return nil, ErrNotFound
		}
		return nil, ErrVersionConflict
	}

	return next, nil
}

// ClaimOrphans re-adopts workflows left running by dead pods: any running
// workflow whose heartbeat is older than staleAfter is reassigned to podID.
// Returns the claimed workflow ids.
func (s *WorkflowService) ClaimOrphans(ctx context.Context, podID string, staleAfter time.Duration) ([]string, error) {
	cutoff := time.Now().Add(-staleAfter)

	orphans, err := s.client.Workflow.Query().
		Where(
			entworkflow.StatusEQ(entworkflow.StatusRunning),
			entworkflow.LastHeartbeatAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query orphaned workflows: %w", err)
	}

	claimed := make([]string, 0, len(orphans))
	for _, wf := range orphans {
		// Version-guarded claim: a concurrently recovering pod loses the race.
		n, err := s.client.Workflow.Update().
			Where(
				entworkflow.IDEQ(wf.ID),
				entworkflow.VersionEQ(wf.Version),
			).
			SetPodID(podID).
			SetLastHeartbeatAt(time.Now()).
			SetVersion(wf.Version + 1).
			Save(ctx)
		if err != nil {
			return claimed, fmt.Errorf("failed to claim orphan %s: %w", wf.ID, err)
		}
		if n > 0 {
			claimed = append(claimed, wf.ID)
		}
	}
	return claimed, nil
}

// PurgeTerminal deletes terminal workflows that completed before the
// retention window. Returns the number of rows removed.
func (s *WorkflowService) PurgeTerminal(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	n, err := s.client.Workflow.Delete().
		Where(
			entworkflow.StatusIn(
				entworkflow.StatusCompleted,
				entworkflow.StatusFailed,
				entworkflow.StatusCanceled,
			),
			entworkflow.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge terminal workflows: %w", err)
	}
	return n, nil
}

// Heartbeat refreshes last_heartbeat_at for an in-flight workflow.
func (s *WorkflowService) Heartbeat(ctx context.Context, id string) error {
	return s.client.Workflow.UpdateOneID(id).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
}

// workflowToModel maps an Ent row to the domain model.
func workflowToModel(wf *ent.Workflow) *models.Workflow {
	m := &models.Workflow{
		ID:           wf.ID,
		TemplateName: wf.TemplateName,
		Status:       models.WorkflowStatus(wf.Status),
		Context:      wf.Context,
		Outputs:      wf.Outputs,
		StepStatuses: stepStatusesFromStrings(wf.StepStatuses),
		Version:      wf.Version,
		StartedAt:    wf.StartedAt,
		UpdatedAt:    wf.UpdatedAt,
		CompletedAt:  wf.CompletedAt,
	}
	if wf.CurrentStep != nil {
		m.CurrentStep = *wf.CurrentStep
	}
	if wf.TaskID != nil {
		m.TaskID = *wf.TaskID
	}
	if wf.ErrorMessage != nil {
		m.ErrorMessage = *wf.ErrorMessage
	}
	if m.Context == nil {
		m.Context = map[string]any{}
	}
	if m.Outputs == nil {
		m.Outputs = map[string]any{}
	}
	if m.StepStatuses == nil {
		m.StepStatuses = map[string]models.StepStatus{}
	}
	return m
}

func stepStatusesToStrings(in map[string]models.StepStatus) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = string(v)
	}
	return out
}

func stepStatusesFromStrings(in map[string]string) map[string]models.StepStatus {
	out := make(map[string]models.StepStatus, len(in))
	for k, v := range in {
		out[k] = models.StepStatus(v)
	}
	return out
}
