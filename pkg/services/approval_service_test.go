package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/services"
	testdb "github.com/conductorhq/conductor/test/database"
)

func setupApprovalService(t *testing.T) (*services.WorkflowService, *services.ApprovalService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return services.NewWorkflowService(client.Client), services.NewApprovalService(client.Client)
}

func createRunningWorkflow(t *testing.T, workflows *services.WorkflowService) *models.Workflow {
	t.Helper()
	wf, err := workflows.CreateWorkflow(context.Background(), models.CreateWorkflowRequest{
		TemplateName: "deployment",
	})
	require.NoError(t, err)
	return wf
}

func TestApprovalService_CreateIsIdempotentPerStep(t *testing.T) {
	workflows, approvals := setupApprovalService(t)
	ctx := context.Background()
	wf := createRunningWorkflow(t, workflows)

	first, err := approvals.CreateApproval(ctx, wf.ID, "confirm", models.RiskHigh, "production deploy")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalPending, first.Decision)
	assert.Equal(t, models.RiskHigh, first.Risk)

	// Gate re-entry after a crash must find the original request, not mint
	// a second one.
	again, err := approvals.CreateApproval(ctx, wf.ID, "confirm", models.RiskLow, "ignored")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, models.RiskHigh, again.Risk)
}

func TestApprovalService_GetApprovalForStep(t *testing.T) {
	workflows, approvals := setupApprovalService(t)
	ctx := context.Background()
	wf := createRunningWorkflow(t, workflows)

	created, err := approvals.CreateApproval(ctx, wf.ID, "confirm", models.RiskMedium, "")
	require.NoError(t, err)

	got, err := approvals.GetApprovalForStep(ctx, wf.ID, "confirm")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = approvals.GetApprovalForStep(ctx, wf.ID, "no-such-step")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestApprovalService_Decide(t *testing.T) {
	workflows, approvals := setupApprovalService(t)
	ctx := context.Background()
	wf := createRunningWorkflow(t, workflows)

	ar, err := approvals.CreateApproval(ctx, wf.ID, "confirm", models.RiskMedium, "")
	require.NoError(t, err)

	decided, err := approvals.Decide(ctx, ar.ID, models.ApprovalApproved, "ops@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, decided.Decision)
	assert.Equal(t, "ops@example.com", decided.DecidedBy)
	require.NotNil(t, decided.DecidedAt)

	// Repeating the same decision coalesces.
	repeat, err := approvals.Decide(ctx, ar.ID, models.ApprovalApproved, "other@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", repeat.DecidedBy)

	// A conflicting decision on a decided request is rejected.
	_, err = approvals.Decide(ctx, ar.ID, models.ApprovalRejected, "other@example.com")
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestApprovalService_DecideValidatesDecision(t *testing.T) {
	workflows, approvals := setupApprovalService(t)
	ctx := context.Background()
	wf := createRunningWorkflow(t, workflows)

	ar, err := approvals.CreateApproval(ctx, wf.ID, "confirm", models.RiskLow, "")
	require.NoError(t, err)

	_, err = approvals.Decide(ctx, ar.ID, models.ApprovalPending, "ops@example.com")
	assert.True(t, services.IsValidationError(err))

	_, err = approvals.Decide(ctx, "no-such-approval", models.ApprovalApproved, "ops@example.com")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestMappingService_PutAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	mappings := services.NewMappingService(client.Client)
	ctx := context.Background()

	require.NoError(t, mappings.PutMapping(ctx, "TASK-42", "JIRA-1001"))

	ref, err := mappings.GetMapping(ctx, "TASK-42")
	require.NoError(t, err)
	assert.Equal(t, "JIRA-1001", ref)

	// Put is an upsert.
	require.NoError(t, mappings.PutMapping(ctx, "TASK-42", "JIRA-2002"))
	ref, err = mappings.GetMapping(ctx, "TASK-42")
	require.NoError(t, err)
	assert.Equal(t, "JIRA-2002", ref)

	_, err = mappings.GetMapping(ctx, "TASK-404")
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = mappings.PutMapping(ctx, "", "JIRA-1")
	assert.True(t, services.IsValidationError(err))
}
