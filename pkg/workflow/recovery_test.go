package workflow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/pkg/models"
)

// claimingStore hands out a fixed set of orphan ids once, then nothing.
type claimingStore struct {
	mu      sync.Mutex
	orphans []string
	claims  []string
	pods    []string
}

func (s *claimingStore) ClaimOrphans(_ context.Context, podID string, _ time.Duration) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pods = append(s.pods, podID)
	claimed := s.orphans
	s.orphans = nil
	s.claims = append(s.claims, claimed...)
	return claimed, nil
}

func TestRecovery_ResumesClaimedWorkflows(t *testing.T) {
	f := newEngineFixture(t, deploymentTemplate(t, StepDecisionGate))

	// A workflow another pod left mid-run: build finished, gate next.
	wf, err := f.store.CreateWorkflow(context.Background(), models.CreateWorkflowRequest{
		TemplateName: "pr-deployment",
		Context:      map[string]any{"repo": "conductor"},
	})
	require.NoError(t, err)
	_, err = f.store.UpdateWorkflow(context.Background(), wf.ID, wf.Version, func(w *models.Workflow) {
		w.CurrentStep = "gate"
		w.StepStatuses["build"] = models.StepCompleted
		w.Outputs["build"] = map[string]any{"artifact": "app-1.0.tar.gz"}
	})
	require.NoError(t, err)

	claims := &claimingStore{orphans: []string{wf.ID}}
	recovery := NewRecovery(claims, f.engine, "pod-b", 50*time.Millisecond, time.Minute)
	recovery.Start(context.Background())
	defer recovery.Stop()

	require.Eventually(t, func() bool {
		got, err := f.store.GetWorkflow(context.Background(), wf.ID)
		return err == nil && got.Status == models.WorkflowCompleted
	}, 2*time.Second, 10*time.Millisecond, "claimed workflow should run to completion")

	got, err := f.store.GetWorkflow(context.Background(), wf.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepCompleted, got.StepStatuses["gate"])
	assert.Equal(t, models.StepCompleted, got.StepStatuses["deploy"])
	assert.Equal(t, []string{wf.ID}, claims.claims)
}

func TestRecovery_StopWaitsForScanLoop(t *testing.T) {
	f := newEngineFixture(t, deploymentTemplate(t, StepDecisionGate))

	claims := &claimingStore{}
	recovery := NewRecovery(claims, f.engine, "", time.Hour, time.Minute)
	recovery.Start(context.Background())

	// The initial scan runs before the first tick.
	require.Eventually(t, func() bool {
		claims.mu.Lock()
		defer claims.mu.Unlock()
		return len(claims.pods) == 1
	}, time.Second, 10*time.Millisecond)

	recovery.Stop()
	recovery.Stop() // second stop is a no-op

	claims.mu.Lock()
	pod := claims.pods[0]
	claims.mu.Unlock()
	assert.NotEmpty(t, pod, "empty pod id is replaced with a derived identity")
}

func TestPodID(t *testing.T) {
	t.Setenv("POD_ID", "pod-42")
	assert.Equal(t, "pod-42", PodID())
}
