package services

import (
	"context"
	"fmt"
	"time"

	"github.com/conductorhq/conductor/ent"
	entapproval "github.com/conductorhq/conductor/ent/approvalrequest"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/google/uuid"
)

// ApprovalService persists HITL approval requests. Decisions are idempotent
// per (workflow, step, decision): repeating the same decision is a no-op,
// a different decision on a decided request is rejected.
type ApprovalService struct {
	client *ent.Client
}

// NewApprovalService creates a new ApprovalService.
func NewApprovalService(client *ent.Client) *ApprovalService {
	return &ApprovalService{client: client}
}

// CreateApproval records a pending approval request for a HITL gate.
// If a request already exists for (workflow_id, step_id) it is returned
// unchanged — gate re-entry after a crash must not duplicate requests.
func (s *ApprovalService) CreateApproval(ctx context.Context, workflowID, stepID string, risk models.RiskLevel, assessment string) (*models.ApprovalRequest, error) {
	if workflowID == "" {
		return nil, NewValidationError("workflow_id", "required")
	}
	if stepID == "" {
		return nil, NewValidationError("step_id", "required")
	}

	existing, err := s.client.ApprovalRequest.Query().
		Where(
			entapproval.WorkflowIDEQ(workflowID),
			entapproval.StepIDEQ(stepID),
		).
		Only(ctx)
	if err == nil {
		return approvalToModel(existing), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query approval: %w", err)
	}

	created, err := s.client.ApprovalRequest.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(workflowID).
		SetStepID(stepID).
		SetRisk(string(risk)).
		SetRiskAssessment(assessment).
		SetDecision(entapproval.DecisionPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race; the winner's row is authoritative.
			return s.GetApprovalForStep(ctx, workflowID, stepID)
		}
		return nil, fmt.Errorf("failed to create approval: %w", err)
	}
	return approvalToModel(created), nil
}

// GetApproval loads an approval request by id.
func (s *ApprovalService) GetApproval(ctx context.Context, id string) (*models.ApprovalRequest, error) {
	ar, err := s.client.ApprovalRequest.Query().
		Where(entapproval.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load approval %s: %w", id, err)
	}
	return approvalToModel(ar), nil
}

// GetApprovalForStep loads the approval request for a workflow step.
func (s *ApprovalService) GetApprovalForStep(ctx context.Context, workflowID, stepID string) (*models.ApprovalRequest, error) {
	ar, err := s.client.ApprovalRequest.Query().
		Where(
			entapproval.WorkflowIDEQ(workflowID),
			entapproval.StepIDEQ(stepID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load approval for %s/%s: %w", workflowID, stepID, err)
	}
	return approvalToModel(ar), nil
}

// Decide records a decision. Duplicate identical decisions coalesce; a
// conflicting decision on an already-decided request returns ErrAlreadyExists.
func (s *ApprovalService) Decide(ctx context.Context, id string, decision models.ApprovalDecision, decidedBy string) (*models.ApprovalRequest, error) {
	if decision != models.ApprovalApproved && decision != models.ApprovalRejected {
		return nil, NewValidationError("decision", "must be approved or rejected")
	}

	ar, err := s.GetApproval(ctx, id)
	if err != nil {
		return nil, err
	}

	if ar.Decision != models.ApprovalPending {
		if ar.Decision == decision {
			return ar, nil
		}
		return nil, ErrAlreadyExists
	}

	now := time.Now()
	updated, err := s.client.ApprovalRequest.UpdateOneID(id).
		SetDecision(entapproval.Decision(decision)).
		SetDecidedBy(decidedBy).
		SetDecidedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to decide approval %s: %w", id, err)
	}
	return approvalToModel(updated), nil
}

func approvalToModel(ar *ent.ApprovalRequest) *models.ApprovalRequest {
	m := &models.ApprovalRequest{
		ID:             ar.ID,
		WorkflowID:     ar.WorkflowID,
		StepID:         ar.StepID,
		Risk:           models.RiskLevel(ar.Risk),
		RiskAssessment: ar.RiskAssessment,
		Decision:       models.ApprovalDecision(ar.Decision),
		DecidedAt:      ar.DecidedAt,
		CreatedAt:      ar.CreatedAt,
	}
	if ar.DecidedBy != nil {
		m.DecidedBy = *ar.DecidedBy
	}
	return m
}
