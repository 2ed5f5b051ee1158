package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entworkflow "github.com/conductorhq/conductor/ent/workflow"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/database"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/services"
	testdb "github.com/conductorhq/conductor/test/database"
)

func setupRetention(t *testing.T) (*database.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := &config.RetentionConfig{
		EventTTL:          time.Hour,
		WorkflowRetention: 30 * 24 * time.Hour,
		CleanupInterval:   time.Hour,
	}
	svc := NewService(cfg,
		services.NewWorkflowService(client.Client),
		services.NewEventService(client.Client),
	)
	return client, svc
}

func createWorkflow(t *testing.T, client *database.Client) *models.Workflow {
	t.Helper()
	wf, err := services.NewWorkflowService(client.Client).CreateWorkflow(
		context.Background(),
		models.CreateWorkflowRequest{TemplateName: "deployment"},
	)
	require.NoError(t, err)
	return wf
}

func TestService_PurgesOldTerminalWorkflows(t *testing.T) {
	client, svc := setupRetention(t)
	ctx := context.Background()

	wf := createWorkflow(t, client)
	err := client.Workflow.UpdateOneID(wf.ID).
		SetStatus(entworkflow.StatusCompleted).
		SetCompletedAt(time.Now().Add(-60 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	_, err = services.NewWorkflowService(client.Client).GetWorkflow(ctx, wf.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestService_PreservesRecentAndRunningWorkflows(t *testing.T) {
	client, svc := setupRetention(t)
	ctx := context.Background()

	running := createWorkflow(t, client)

	recent := createWorkflow(t, client)
	err := client.Workflow.UpdateOneID(recent.ID).
		SetStatus(entworkflow.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	store := services.NewWorkflowService(client.Client)
	_, err = store.GetWorkflow(ctx, running.ID)
	assert.NoError(t, err)
	_, err = store.GetWorkflow(ctx, recent.ID)
	assert.NoError(t, err)
}

func TestService_CleansUpOldEvents(t *testing.T) {
	client, svc := setupRetention(t)
	ctx := context.Background()

	_, err := client.Event.Create().
		SetID(1).
		SetChannel("workflow:wf-1").
		SetPayload(map[string]any{"type": "content"}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Event.Create().
		SetID(2).
		SetChannel("workflow:wf-1").
		SetPayload(map[string]any{"type": "done"}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	events, err := services.NewEventService(client.Client).
		EventsAfter(ctx, "workflow:wf-1", 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 1, "old event removed, recent event preserved")
	assert.Equal(t, int64(2), events[0].ID)
}
