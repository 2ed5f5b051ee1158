package services

import (
	"context"
	"fmt"

	"github.com/conductorhq/conductor/ent"
	entmapping "github.com/conductorhq/conductor/ent/taskissuemapping"
)

// MappingService stores task -> external issue references, consulted when a
// HITL gate pauses a workflow so approvers can be pointed at the tracker.
type MappingService struct {
	client *ent.Client
}

// NewMappingService creates a new MappingService.
func NewMappingService(client *ent.Client) *MappingService {
	return &MappingService{client: client}
}

// PutMapping upserts the issue reference for a task.
func (s *MappingService) PutMapping(ctx context.Context, taskID, issueRef string) error {
	if taskID == "" {
		return NewValidationError("task_id", "required")
	}
	if issueRef == "" {
		return NewValidationError("issue_ref", "required")
	}

	err := s.client.TaskIssueMapping.Create().
		SetID(taskID).
		SetIssueRef(issueRef).
		OnConflictColumns(entmapping.FieldID).
		UpdateIssueRef().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to put mapping for task %s: %w", taskID, err)
	}
	return nil
}

// GetMapping returns the issue reference for a task.
func (s *MappingService) GetMapping(ctx context.Context, taskID string) (string, error) {
	m, err := s.client.TaskIssueMapping.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get mapping for task %s: %w", taskID, err)
	}
	return m.IssueRef, nil
}
