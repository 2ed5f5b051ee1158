package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/pkg/database"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/services"
	testdb "github.com/conductorhq/conductor/test/database"
)

func setupWorkflowService(t *testing.T) (*database.Client, *services.WorkflowService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewWorkflowService(client.Client)
}

func TestWorkflowService_CreateAndGet(t *testing.T) {
	_, svc := setupWorkflowService(t)
	ctx := context.Background()

	wf, err := svc.CreateWorkflow(ctx, models.CreateWorkflowRequest{
		TemplateName: "deployment",
		Context:      map[string]any{"repo": "conductor"},
		TaskID:       "TASK-42",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, wf.ID)
	assert.Equal(t, models.WorkflowRunning, wf.Status)
	assert.Equal(t, 1, wf.Version)
	assert.Equal(t, "TASK-42", wf.TaskID)

	got, err := svc.GetWorkflow(ctx, wf.ID)
	require.NoError(t, err)
	assert.Equal(t, "deployment", got.TemplateName)
	assert.Equal(t, "conductor", got.Context["repo"])
	assert.NotNil(t, got.Outputs)
	assert.NotNil(t, got.StepStatuses)
}

func TestWorkflowService_CreateRequiresTemplate(t *testing.T) {
	_, svc := setupWorkflowService(t)

	_, err := svc.CreateWorkflow(context.Background(), models.CreateWorkflowRequest{})
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "template_name", verr.Field)
}

func TestWorkflowService_GetWorkflowNotFound(t *testing.T) {
	_, svc := setupWorkflowService(t)

	_, err := svc.GetWorkflow(context.Background(), "no-such-workflow")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestWorkflowService_UpdateWorkflow(t *testing.T) {
	_, svc := setupWorkflowService(t)
	ctx := context.Background()

	wf, err := svc.CreateWorkflow(ctx, models.CreateWorkflowRequest{TemplateName: "deployment"})
	require.NoError(t, err)

	updated, err := svc.UpdateWorkflow(ctx, wf.ID, wf.Version, func(w *models.Workflow) {
		w.CurrentStep = "build"
		w.StepStatuses["build"] = models.StepRunning
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, "build", updated.CurrentStep)

	got, err := svc.GetWorkflow(ctx, wf.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepRunning, got.StepStatuses["build"])
	assert.Equal(t, 2, got.Version)
}

func TestWorkflowService_UpdateWorkflowVersionConflict(t *testing.T) {
	_, svc := setupWorkflowService(t)
	ctx := context.Background()

	wf, err := svc.CreateWorkflow(ctx, models.CreateWorkflowRequest{TemplateName: "deployment"})
	require.NoError(t, err)

	// Two writers race with the same snapshot. The second loses.
	_, err = svc.UpdateWorkflow(ctx, wf.ID, wf.Version, func(w *models.Workflow) {
		w.CurrentStep = "build"
	})
	require.NoError(t, err)

	_, err = svc.UpdateWorkflow(ctx, wf.ID, wf.Version, func(w *models.Workflow) {
		w.CurrentStep = "deploy"
	})
	assert.ErrorIs(t, err, services.ErrVersionConflict)

	got, err := svc.GetWorkflow(ctx, wf.ID)
	require.NoError(t, err)
	assert.Equal(t, "build", got.CurrentStep, "losing update must not be applied")
}

func TestWorkflowService_UpdateWorkflowTerminalSetsCompletedAt(t *testing.T) {
	_, svc := setupWorkflowService(t)
	ctx := context.Background()

	wf, err := svc.CreateWorkflow(ctx, models.CreateWorkflowRequest{TemplateName: "deployment"})
	require.NoError(t, err)

	updated, err := svc.UpdateWorkflow(ctx, wf.ID, wf.Version, func(w *models.Workflow) {
		w.Status = models.WorkflowCompleted
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	assert.WithinDuration(t, time.Now(), *updated.CompletedAt, 5*time.Second)
}

func TestWorkflowService_ClaimOrphans(t *testing.T) {
	client, svc := setupWorkflowService(t)
	ctx := context.Background()

	stale, err := svc.CreateWorkflow(ctx, models.CreateWorkflowRequest{TemplateName: "deployment"})
	require.NoError(t, err)
	err = client.Workflow.UpdateOneID(stale.ID).
		SetPodID("pod-a").
		SetLastHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	fresh, err := svc.CreateWorkflow(ctx, models.CreateWorkflowRequest{TemplateName: "deployment"})
	require.NoError(t, err)
	require.NoError(t, svc.Heartbeat(ctx, fresh.ID))

	claimed, err := svc.ClaimOrphans(ctx, "pod-b", 2*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []string{stale.ID}, claimed)

	// The claim bumps the version so the dead pod's stale snapshot loses
	// any in-flight update.
	row, err := client.Workflow.Get(ctx, stale.ID)
	require.NoError(t, err)
	require.NotNil(t, row.PodID)
	assert.Equal(t, "pod-b", *row.PodID)
	assert.Equal(t, stale.Version+1, row.Version)

	// A second scan finds nothing: the heartbeat was refreshed on claim.
	claimed, err = svc.ClaimOrphans(ctx, "pod-c", 2*time.Minute)
	require.NoError(t, err)
	assert.Empty(t, claimed)
}

func TestWorkflowService_PurgeTerminal(t *testing.T) {
	client, svc := setupWorkflowService(t)
	ctx := context.Background()

	old, err := svc.CreateWorkflow(ctx, models.CreateWorkflowRequest{TemplateName: "deployment"})
	require.NoError(t, err)
	_, err = svc.UpdateWorkflow(ctx, old.ID, old.Version, func(w *models.Workflow) {
		w.Status = models.WorkflowFailed
	})
	require.NoError(t, err)
	err = client.Workflow.UpdateOneID(old.ID).
		SetCompletedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	running, err := svc.CreateWorkflow(ctx, models.CreateWorkflowRequest{TemplateName: "deployment"})
	require.NoError(t, err)

	n, err := svc.PurgeTerminal(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.GetWorkflow(ctx, old.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = svc.GetWorkflow(ctx, running.ID)
	assert.NoError(t, err)
}
