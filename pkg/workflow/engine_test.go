package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/pkg/bus"
	"github.com/conductorhq/conductor/pkg/dispatch"
	"github.com/conductorhq/conductor/pkg/events"
	"github.com/conductorhq/conductor/pkg/llm"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/services"
)

// memStore mimics the optimistic concurrency of the persisted store.
// injectConflicts fails the next N updates with ErrVersionConflict while
// still bumping the stored version, simulating a concurrent writer winning.
type memStore struct {
	mu              sync.Mutex
	workflows       map[string]*models.Workflow
	injectConflicts int
	updates         int
}

func newMemStore() *memStore {
	return &memStore{workflows: make(map[string]*models.Workflow)}
}

func (s *memStore) CreateWorkflow(_ context.Context, req models.CreateWorkflowRequest) (*models.Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctxMap := req.Context
	if ctxMap == nil {
		ctxMap = map[string]any{}
	}
	wf := &models.Workflow{
		ID:           uuid.NewString(),
		TemplateName: req.TemplateName,
		Status:       models.WorkflowRunning,
		Context:      ctxMap,
		Outputs:      map[string]any{},
		StepStatuses: map[string]models.StepStatus{},
		Version:      1,
		TaskID:       req.TaskID,
		StartedAt:    time.Now(),
	}
	s.workflows[wf.ID] = wf
	return wf.Clone(), nil
}

func (s *memStore) GetWorkflow(_ context.Context, id string) (*models.Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wf, ok := s.workflows[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return wf.Clone(), nil
}

func (s *memStore) UpdateWorkflow(_ context.Context, id string, expectedVersion int, mutate func(*models.Workflow)) (*models.Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates++
	wf, ok := s.workflows[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	if s.injectConflicts > 0 {
		s.injectConflicts--
		wf.Version++
		return nil, services.ErrVersionConflict
	}
	if wf.Version != expectedVersion {
		return nil, services.ErrVersionConflict
	}
	next := wf.Clone()
	mutate(next)
	next.Version = expectedVersion + 1
	s.workflows[id] = next
	return next.Clone(), nil
}

type memApprovals struct {
	mu     sync.Mutex
	byStep map[string]*models.ApprovalRequest
	byID   map[string]*models.ApprovalRequest
}

func newMemApprovals() *memApprovals {
	return &memApprovals{
		byStep: make(map[string]*models.ApprovalRequest),
		byID:   make(map[string]*models.ApprovalRequest),
	}
}

func (a *memApprovals) CreateApproval(_ context.Context, workflowID, stepID string, risk models.RiskLevel, assessment string) (*models.ApprovalRequest, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	key := workflowID + "/" + stepID
	if existing, ok := a.byStep[key]; ok {
		return existing, nil
	}
	ar := &models.ApprovalRequest{
		ID:             uuid.NewString(),
		WorkflowID:     workflowID,
		StepID:         stepID,
		Risk:           risk,
		RiskAssessment: assessment,
		Decision:       models.ApprovalPending,
		CreatedAt:      time.Now(),
	}
	a.byStep[key] = ar
	a.byID[ar.ID] = ar
	return ar, nil
}

func (a *memApprovals) GetApprovalForStep(_ context.Context, workflowID, stepID string) (*models.ApprovalRequest, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	ar, ok := a.byStep[workflowID+"/"+stepID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return ar, nil
}

func (a *memApprovals) Decide(_ context.Context, id string, decision models.ApprovalDecision, decidedBy string) (*models.ApprovalRequest, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	ar, ok := a.byID[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	if ar.Decision != models.ApprovalPending {
		if ar.Decision == decision {
			return ar, nil
		}
		return nil, services.ErrAlreadyExists
	}
	ar.Decision = decision
	ar.DecidedBy = decidedBy
	return ar, nil
}

// scriptedRunner returns canned results per agent id.
type scriptedRunner struct {
	mu      sync.Mutex
	results map[string]*dispatch.Result
	errs    map[string]error
	tasks   []dispatch.Task
	block   chan struct{}
}

func (r *scriptedRunner) Run(ctx context.Context, task dispatch.Task) (*dispatch.Result, error) {
	r.mu.Lock()
	r.tasks = append(r.tasks, task)
	block := r.block
	r.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err, ok := r.errs[task.AgentID]; ok {
		return nil, err
	}
	if res, ok := r.results[task.AgentID]; ok {
		return res, nil
	}
	return &dispatch.Result{Payload: map[string]any{"ok": true}}, nil
}

// scriptedCompleter replies with canned content in call order.
type scriptedCompleter struct {
	mu      sync.Mutex
	replies []string
	err     error
	calls   int
}

func (c *scriptedCompleter) Complete(_ context.Context, _ llm.Request) (*llm.Completion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	reply := c.replies[c.calls%len(c.replies)]
	c.calls++
	return &llm.Completion{Content: reply, Provider: "fake", Model: "fake"}, nil
}

type framePublisher struct {
	mu     sync.Mutex
	frames []*events.StreamFrame
}

func (p *framePublisher) PublishContent(_ context.Context, _, _ string) error { return nil }

func (p *framePublisher) PublishFrame(_ context.Context, _ string, frame *events.StreamFrame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frames = append(p.frames, frame)
	return nil
}

func (p *framePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.frames))
	for i, f := range p.frames {
		out[i] = f.Type
	}
	return out
}

type recordingSink struct {
	mu     sync.Mutex
	events []*bus.Event
}

func (s *recordingSink) Publish(_ context.Context, _ string, event *bus.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// deploymentTemplate is the canonical three-step pipeline used across the
// engine tests: build, gate on the build, deploy.
func deploymentTemplate(t *testing.T, gateType StepType) *TemplateRegistry {
	t.Helper()
	gate := Step{ID: "gate", Prompt: "evaluate {{ outputs.build.artifact }}"}
	switch gateType {
	case StepDecisionGate:
		gate.Type = StepDecisionGate
		gate.OnProceed = "deploy"
	case StepHITLApproval:
		gate.Type = StepHITLApproval
		gate.OnApproved = "deploy"
	default:
		t.Fatalf("unsupported gate type %s", gateType)
	}

	registry := NewTemplateRegistry()
	require.NoError(t, registry.Register(&Template{
		Name: "pr-deployment",
		Steps: []Step{
			{
				ID:    "build",
				Type:  StepAgentCall,
				Agent: "code-agent",
				Payload: map[string]any{
					"repo": "{{ context.repo }}",
				},
				OnSuccess: "gate",
			},
			gate,
			{
				ID:    "deploy",
				Type:  StepAgentCall,
				Agent: "infra-agent",
				Payload: map[string]any{
					"artifact": "{{ outputs.build.artifact }}",
				},
			},
		},
	}))
	return registry
}

type engineFixture struct {
	engine    *Engine
	store     *memStore
	approvals *memApprovals
	runner    *scriptedRunner
	completer *scriptedCompleter
	publisher *framePublisher
	sink      *recordingSink
}

func newEngineFixture(t *testing.T, templates *TemplateRegistry) *engineFixture {
	t.Helper()
	f := &engineFixture{
		store:     newMemStore(),
		approvals: newMemApprovals(),
		runner: &scriptedRunner{
			results: map[string]*dispatch.Result{
				"code-agent":  {Payload: map[string]any{"artifact": "app-1.0.tar.gz"}},
				"infra-agent": {Payload: map[string]any{"deployed": true}},
			},
			errs: map[string]error{},
		},
		completer: &scriptedCompleter{replies: []string{`{"decision":"proceed","reasoning":"build is green"}`}},
		publisher: &framePublisher{},
		sink:      &recordingSink{},
	}
	f.engine = NewEngine(f.store, f.approvals, f.runner, f.completer,
		f.publisher, f.sink, templates, nil, Options{})
	return f
}

func TestEngine_DeploymentPipeline(t *testing.T) {
	f := newEngineFixture(t, deploymentTemplate(t, StepDecisionGate))

	wf, err := f.engine.Execute(t.Context(), "pr-deployment",
		map[string]any{"repo": "conductor"}, "")
	require.NoError(t, err)

	assert.Equal(t, models.WorkflowCompleted, wf.Status)
	assert.Empty(t, wf.CurrentStep)

	// Every completed step stored an output, including the gate.
	for _, step := range []string{"build", "gate", "deploy"} {
		assert.Equal(t, models.StepCompleted, wf.StepStatuses[step], step)
		assert.Contains(t, wf.Outputs, step)
	}
	gateOut := wf.Outputs["gate"].(map[string]any)
	assert.Equal(t, "proceed", gateOut["decision"])

	// Placeholders resolved against context and prior outputs.
	require.Len(t, f.runner.tasks, 2)
	assert.Equal(t, "conductor", f.runner.tasks[0].Payload["repo"])
	assert.Equal(t, "app-1.0.tar.gz", f.runner.tasks[1].Payload["artifact"])

	assert.Equal(t, []string{
		events.FrameStepStarted, events.FrameStepCompleted,
		events.FrameStepStarted, events.FrameStepCompleted,
		events.FrameStepStarted, events.FrameStepCompleted,
		events.FrameDone,
	}, f.publisher.types())
}

func TestEngine_DecisionGateBlocks(t *testing.T) {
	registry := NewTemplateRegistry()
	require.NoError(t, registry.Register(&Template{
		Name: "gated",
		Steps: []Step{
			{ID: "gate", Type: StepDecisionGate, Prompt: "check", OnProceed: "go", OnBlock: "stop"},
			{ID: "go", Type: StepNoop},
			{ID: "stop", Type: StepNoop},
		},
	}))

	t.Run("explicit block verdict", func(t *testing.T) {
		f := newEngineFixture(t, registry)
		f.completer.replies = []string{`{"decision":"block","reasoning":"tests are red"}`}

		wf, err := f.engine.Execute(t.Context(), "gated", nil, "")
		require.NoError(t, err)
		assert.Equal(t, models.WorkflowCompleted, wf.Status)
		assert.Equal(t, models.StepCompleted, wf.StepStatuses["stop"])
		assert.NotContains(t, wf.StepStatuses, "go")
	})

	t.Run("malformed verdict blocks", func(t *testing.T) {
		f := newEngineFixture(t, registry)
		f.completer.replies = []string{"I think you should probably proceed"}

		wf, err := f.engine.Execute(t.Context(), "gated", nil, "")
		require.NoError(t, err)
		assert.Equal(t, models.StepCompleted, wf.StepStatuses["stop"])
		gateOut := wf.Outputs["gate"].(map[string]any)
		assert.Equal(t, "block", gateOut["decision"])
	})

	t.Run("llm failure blocks", func(t *testing.T) {
		f := newEngineFixture(t, registry)
		f.completer.err = llm.ErrChainExhausted

		wf, err := f.engine.Execute(t.Context(), "gated", nil, "")
		require.NoError(t, err)
		assert.Equal(t, models.StepCompleted, wf.StepStatuses["stop"])
	})
}

func TestEngine_ApprovalPauseAndResume(t *testing.T) {
	f := newEngineFixture(t, deploymentTemplate(t, StepHITLApproval))
	f.completer.replies = []string{`{"risk":"medium","assessment":"touches prod"}`}

	wf, err := f.engine.Execute(t.Context(), "pr-deployment",
		map[string]any{"repo": "conductor"}, "")
	require.NoError(t, err)

	assert.Equal(t, models.WorkflowPaused, wf.Status)
	assert.Equal(t, "gate", wf.CurrentStep)
	// The gate stays running while the workflow waits.
	assert.Equal(t, models.StepRunning, wf.StepStatuses["gate"])
	assert.NotContains(t, wf.Outputs, "gate")

	approval, err := f.approvals.GetApprovalForStep(t.Context(), wf.ID, "gate")
	require.NoError(t, err)
	assert.Equal(t, models.RiskMedium, approval.Risk)
	assert.Equal(t, models.ApprovalPending, approval.Decision)

	frames := f.publisher.types()
	assert.Contains(t, frames, events.FrameApprovalRequired)

	require.Len(t, f.sink.events, 1)
	assert.Equal(t, "workflow.awaiting_approval", f.sink.events[0].Type)
	assert.Equal(t, wf.ID, f.sink.events[0].Payload["workflow_id"])

	resumed, err := f.engine.Resume(t.Context(), wf.ID, models.ApprovalApproved, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowCompleted, resumed.Status)
	assert.Equal(t, models.StepCompleted, resumed.StepStatuses["gate"])
	gateOut := resumed.Outputs["gate"].(map[string]any)
	assert.Equal(t, "approved", gateOut["decision"])
	assert.Equal(t, "medium", gateOut["risk"])

	// The deploy step ran after approval.
	require.Len(t, f.runner.tasks, 2)
	assert.Equal(t, "infra-agent", f.runner.tasks[1].AgentID)

	t.Run("duplicate decision is a no-op", func(t *testing.T) {
		again, err := f.engine.Resume(t.Context(), wf.ID, models.ApprovalApproved, "alice")
		require.NoError(t, err)
		assert.Equal(t, models.WorkflowCompleted, again.Status)
		assert.Len(t, f.runner.tasks, 2)
	})

	t.Run("conflicting decision is rejected", func(t *testing.T) {
		_, err := f.engine.Resume(t.Context(), wf.ID, models.ApprovalRejected, "bob")
		require.Error(t, err)
	})
}

func TestEngine_LowRiskAutoApproves(t *testing.T) {
	f := newEngineFixture(t, deploymentTemplate(t, StepHITLApproval))
	f.completer.replies = []string{`{"risk":"low","assessment":"doc-only change"}`}

	wf, err := f.engine.Execute(t.Context(), "pr-deployment",
		map[string]any{"repo": "conductor"}, "")
	require.NoError(t, err)

	assert.Equal(t, models.WorkflowCompleted, wf.Status)
	gateOut := wf.Outputs["gate"].(map[string]any)
	assert.Equal(t, "approved", gateOut["decision"])
	assert.Equal(t, true, gateOut["auto_approved"])

	// No approval request was persisted.
	_, err = f.approvals.GetApprovalForStep(t.Context(), wf.ID, "gate")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestEngine_RiskAssessmentFailureEscalates(t *testing.T) {
	f := newEngineFixture(t, deploymentTemplate(t, StepHITLApproval))
	f.completer.replies = []string{"not json at all"}

	wf, err := f.engine.Execute(t.Context(), "pr-deployment",
		map[string]any{"repo": "conductor"}, "")
	require.NoError(t, err)

	assert.Equal(t, models.WorkflowPaused, wf.Status)
	approval, err := f.approvals.GetApprovalForStep(t.Context(), wf.ID, "gate")
	require.NoError(t, err)
	assert.Equal(t, models.RiskHigh, approval.Risk)
}

func TestEngine_AgentFailure(t *testing.T) {
	t.Run("without failure branch the workflow fails", func(t *testing.T) {
		f := newEngineFixture(t, deploymentTemplate(t, StepDecisionGate))
		f.runner.errs["code-agent"] = fmt.Errorf("%w: boom", dispatch.ErrAgentFailure)

		wf, err := f.engine.Execute(t.Context(), "pr-deployment",
			map[string]any{"repo": "conductor"}, "")
		require.NoError(t, err)
		assert.Equal(t, models.WorkflowFailed, wf.Status)
		assert.Equal(t, models.StepFailed, wf.StepStatuses["build"])
		assert.Contains(t, wf.ErrorMessage, "build")
		assert.NotContains(t, wf.Outputs, "build")
	})

	t.Run("failure branch is taken", func(t *testing.T) {
		registry := NewTemplateRegistry()
		require.NoError(t, registry.Register(&Template{
			Name: "with-fallback",
			Steps: []Step{
				{ID: "try", Type: StepAgentCall, Agent: "code-agent", OnSuccess: "done", OnFailure: "cleanup"},
				{ID: "done", Type: StepNoop},
				{ID: "cleanup", Type: StepNoop},
			},
		}))
		f := newEngineFixture(t, registry)
		f.runner.errs["code-agent"] = errors.New("transient")

		wf, err := f.engine.Execute(t.Context(), "with-fallback", nil, "")
		require.NoError(t, err)
		assert.Equal(t, models.WorkflowCompleted, wf.Status)
		assert.Equal(t, models.StepFailed, wf.StepStatuses["try"])
		assert.Equal(t, models.StepCompleted, wf.StepStatuses["cleanup"])
	})
}

func TestEngine_UnresolvedPlaceholderFailsWorkflow(t *testing.T) {
	registry := NewTemplateRegistry()
	require.NoError(t, registry.Register(&Template{
		Name: "bad-ref",
		Steps: []Step{
			{ID: "a", Type: StepAgentCall, Agent: "code-agent",
				Payload: map[string]any{"x": "{{ outputs.ghost.value }}"}},
		},
	}))
	f := newEngineFixture(t, registry)

	wf, err := f.engine.Execute(t.Context(), "bad-ref", nil, "")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowFailed, wf.Status)
	assert.Contains(t, wf.ErrorMessage, "ghost")
	assert.Empty(t, f.runner.tasks)
}

func TestEngine_EmptyTemplateCompletes(t *testing.T) {
	registry := NewTemplateRegistry()
	require.NoError(t, registry.Register(&Template{Name: "empty"}))
	f := newEngineFixture(t, registry)

	wf, err := f.engine.Execute(t.Context(), "empty", nil, "")
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowCompleted, wf.Status)
	assert.Empty(t, wf.Outputs)
}

func TestEngine_UnknownTemplate(t *testing.T) {
	f := newEngineFixture(t, NewTemplateRegistry())
	_, err := f.engine.Execute(t.Context(), "ghost", nil, "")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestEngine_VersionConflict(t *testing.T) {
	t.Run("single conflict is retried", func(t *testing.T) {
		f := newEngineFixture(t, deploymentTemplate(t, StepDecisionGate))
		f.store.injectConflicts = 1

		wf, err := f.engine.Execute(t.Context(), "pr-deployment",
			map[string]any{"repo": "conductor"}, "")
		require.NoError(t, err)
		assert.Equal(t, models.WorkflowCompleted, wf.Status)
	})

	t.Run("second conflict surfaces concurrent update", func(t *testing.T) {
		f := newEngineFixture(t, deploymentTemplate(t, StepDecisionGate))
		f.store.injectConflicts = 2

		_, err := f.engine.Execute(t.Context(), "pr-deployment",
			map[string]any{"repo": "conductor"}, "")
		assert.ErrorIs(t, err, services.ErrConcurrentUpdate)
	})
}

func TestEngine_Cancel(t *testing.T) {
	f := newEngineFixture(t, deploymentTemplate(t, StepDecisionGate))
	f.runner.block = make(chan struct{})

	type result struct {
		wf  *models.Workflow
		err error
	}
	done := make(chan result, 1)
	var wfID string
	created := make(chan struct{})

	go func() {
		wf, err := f.store.CreateWorkflow(context.Background(), models.CreateWorkflowRequest{
			TemplateName: "pr-deployment",
			Context:      map[string]any{"repo": "conductor"},
		})
		if err != nil {
			done <- result{nil, err}
			return
		}
		wfID = wf.ID
		close(created)
		wf, err = f.engine.Advance(context.Background(), wf.ID)
		done <- result{wf, err}
	}()

	<-created
	// Wait until the build step is actually blocked inside the runner.
	require.Eventually(t, func() bool {
		f.runner.mu.Lock()
		defer f.runner.mu.Unlock()
		return len(f.runner.tasks) > 0
	}, 2*time.Second, 10*time.Millisecond)

	canceled, err := f.engine.Cancel(context.Background(), wfID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowCanceled, canceled.Status)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, models.WorkflowCanceled, res.wf.Status)

	// A second cancel is a no-op on a terminal workflow.
	again, err := f.engine.Cancel(context.Background(), wfID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowCanceled, again.Status)
}

func TestEngine_MappingSupplementsApprovalNotice(t *testing.T) {
	f := newEngineFixture(t, deploymentTemplate(t, StepHITLApproval))
	f.completer.replies = []string{`{"risk":"high","assessment":"prod deploy"}`}
	f.engine.mappings = mappingFunc(func(_ context.Context, taskID string) (string, error) {
		if taskID == "task-7" {
			return "OPS-1234", nil
		}
		return "", services.ErrNotFound
	})

	wf, err := f.engine.Execute(t.Context(), "pr-deployment",
		map[string]any{"repo": "conductor"}, "task-7")
	require.NoError(t, err)
	require.Equal(t, models.WorkflowPaused, wf.Status)

	require.Len(t, f.sink.events, 1)
	assert.Equal(t, "OPS-1234", f.sink.events[0].Payload["issue_ref"])
}

type mappingFunc func(ctx context.Context, taskID string) (string, error)

func (f mappingFunc) GetMapping(ctx context.Context, taskID string) (string, error) {
	return f(ctx, taskID)
}
