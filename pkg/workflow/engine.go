package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/conductorhq/conductor/pkg/bus"
	"github.com/conductorhq/conductor/pkg/dispatch"
	"github.com/conductorhq/conductor/pkg/events"
	"github.com/conductorhq/conductor/pkg/llm"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/services"
)

// Store is the workflow persistence surface. Each advance is one optimistic
// write; the engine owns the retry-once policy on version conflicts.
type Store interface {
	CreateWorkflow(ctx context.Context, req models.CreateWorkflowRequest) (*models.Workflow, error)
	GetWorkflow(ctx context.Context, id string) (*models.Workflow, error)
	UpdateWorkflow(ctx context.Context, id string, expectedVersion int, mutate func(*models.Workflow)) (*models.Workflow, error)
}

// Approvals persists HITL approval requests.
type Approvals interface {
	CreateApproval(ctx context.Context, workflowID, stepID string, risk models.RiskLevel, assessment string) (*models.ApprovalRequest, error)
	GetApprovalForStep(ctx context.Context, workflowID, stepID string) (*models.ApprovalRequest, error)
	Decide(ctx context.Context, id string, decision models.ApprovalDecision, decidedBy string) (*models.ApprovalRequest, error)
}

// TaskRunner executes specialist sub-tasks.
type TaskRunner interface {
	Run(ctx context.Context, task dispatch.Task) (*dispatch.Result, error)
}

// Completer is the LLM surface for decision gates and risk assessment.
type Completer interface {
	Complete(ctx context.Context, req llm.Request) (*llm.Completion, error)
}

// Mappings resolves task ids to external issue references for HITL
// notifications.
type Mappings interface {
	GetMapping(ctx context.Context, taskID string) (string, error)
}

// EventSink is the slice of the event bus the engine emits on.
type EventSink interface {
	Publish(ctx context.Context, topic string, event *bus.Event) error
}

// Heartbeater refreshes a workflow's liveness timestamp so orphan scanners
// on other pods leave it alone.
type Heartbeater interface {
	Heartbeat(ctx context.Context, id string) error
}

// Options tunes the engine.
type Options struct {
	// LLMTimeout bounds decision-gate and risk-assessment calls.
	LLMTimeout time.Duration
	// DefaultRequestType is used for agent_call steps whose payload does
	// not name one.
	DefaultRequestType string
	// Heartbeater, when set, is ticked every HeartbeatInterval while an
	// advance is in flight.
	Heartbeater       Heartbeater
	HeartbeatInterval time.Duration
}

// Engine interprets workflow templates.
type Engine struct {
	store     Store
	approvals Approvals
	runner    TaskRunner
	llm       Completer
	publisher events.Publisher
	bus       EventSink
	templates *TemplateRegistry
	mappings  Mappings
	opts      Options

	mu       sync.Mutex
	inflight map[string]context.CancelFunc
}

// NewEngine creates an engine. publisher, sink, and mappings may be nil;
// the corresponding notifications are skipped.
func NewEngine(store Store, approvals Approvals, runner TaskRunner, completer Completer,
	publisher events.Publisher, sink EventSink, templates *TemplateRegistry, mappings Mappings, opts Options) *Engine {
	if opts.LLMTimeout <= 0 {
		opts.LLMTimeout = 120 * time.Second
	}
	if opts.DefaultRequestType == "" {
		opts.DefaultRequestType = "task.execute"
	}
	if opts.HeartbeatInterval <= 0 {
		opts.HeartbeatInterval = 15 * time.Second
	}
	return &Engine{
		store:     store,
		approvals: approvals,
		runner:    runner,
		llm:       completer,
		publisher: publisher,
		bus:       sink,
		templates: templates,
		mappings:  mappings,
		opts:      opts,
		inflight:  make(map[string]context.CancelFunc),
	}
}

// Templates returns the engine's template registry.
func (e *Engine) Templates() *TemplateRegistry { return e.templates }

// Create validates the template reference and persists a new workflow in
// status running without advancing it. Callers that need to observe the run
// (stream subscriptions) create first, subscribe, then Advance.
func (e *Engine) Create(ctx context.Context, templateName string, wfContext map[string]any, taskID string) (*models.Workflow, error) {
	if _, err := e.templates.Get(templateName); err != nil {
		return nil, err
	}
	return e.store.CreateWorkflow(ctx, models.CreateWorkflowRequest{
		TemplateName: templateName,
		Context:      wfContext,
		TaskID:       taskID,
	})
}

// Execute creates a workflow from a template and runs it until it pauses or
// reaches a terminal state. The returned snapshot reflects the stop point.
func (e *Engine) Execute(ctx context.Context, templateName string, wfContext map[string]any, taskID string) (*models.Workflow, error) {
	wf, err := e.Create(ctx, templateName, wfContext, taskID)
	if err != nil {
		return nil, err
	}
	return e.Advance(ctx, wf.ID)
}

// Advance drives a workflow until it pauses or terminates. Used by Execute,
// Resume, and orphan recovery.
func (e *Engine) Advance(ctx context.Context, id string) (*models.Workflow, error) {
	ctx = e.register(ctx, id)
	defer e.unregister(id)
	defer e.startHeartbeat(ctx, id)()

	wf, err := e.store.GetWorkflow(ctx, id)
	if err != nil {
		return nil, err
	}
	tmpl, err := e.templates.Get(wf.TemplateName)
	if err != nil {
		return e.failWorkflow(ctx, wf, err.Error())
	}

	for {
		if ctx.Err() != nil {
			return e.markCanceled(wf)
		}
		if wf.Status.Terminal() || wf.Status == models.WorkflowPaused {
			return wf, nil
		}

		// An empty template completes immediately.
		if len(tmpl.Steps) == 0 {
			return e.persist(ctx, wf, func(w *models.Workflow) {
				w.Status = models.WorkflowCompleted
			})
		}

		stepID := wf.CurrentStep
		if stepID == "" {
			stepID = tmpl.FirstStep()
		}
		step, ok := tmpl.Step(stepID)
		if !ok {
			return e.failWorkflow(ctx, wf, fmt.Sprintf("unknown step id %q", stepID))
		}

		wf, err = e.persist(ctx, wf, func(w *models.Workflow) {
			w.CurrentStep = stepID
			w.StepStatuses[stepID] = models.StepRunning
		})
		if err != nil {
			return nil, err
		}
		e.publishStep(ctx, wf.ID, events.FrameStepStarted, stepID, models.StepRunning)

		outcome := e.executeStep(ctx, wf, step)
		if ctx.Err() != nil {
			return e.markCanceled(wf)
		}
		if outcome.templateErr != nil {
			return e.failWorkflow(ctx, wf, outcome.templateErr.Error())
		}

		if outcome.pause != nil {
			// The gate step stays running while the workflow waits for a
			// human decision.
			wf, err = e.persist(ctx, wf, func(w *models.Workflow) {
				w.Status = models.WorkflowPaused
			})
			if err != nil {
				return nil, err
			}
			e.notifyAwaitingApproval(ctx, wf, stepID, outcome.pause)
			return wf, nil
		}

		failed := outcome.status == models.StepFailed
		next := outcome.next
		wf, err = e.persist(ctx, wf, func(w *models.Workflow) {
			w.StepStatuses[stepID] = outcome.status
			if outcome.status == models.StepCompleted {
				w.Outputs[stepID] = outcome.output
			}
			switch {
			case failed && next == "":
				w.Status = models.WorkflowFailed
				w.ErrorMessage = outcome.errMsg
				w.CurrentStep = ""
			case next == "":
				w.Status = models.WorkflowCompleted
				w.CurrentStep = ""
			default:
				w.CurrentStep = next
			}
		})
		if err != nil {
			return nil, err
		}
		e.publishStep(ctx, wf.ID, events.FrameStepCompleted, stepID, outcome.status)

		if wf.Status.Terminal() {
			e.publishDone(ctx, wf)
			return wf, nil
		}
	}
}

// Resume applies a human decision to a paused workflow and continues it.
// Idempotent per (workflow, step, decision): repeating a decision returns
// the current snapshot without re-running anything.
func (e *Engine) Resume(ctx context.Context, id string, decision models.ApprovalDecision, decidedBy string) (*models.Workflow, error) {
	wf, err := e.store.GetWorkflow(ctx, id)
	if err != nil {
		return nil, err
	}

	if wf.Status != models.WorkflowPaused {
		// A duplicate of an already-applied decision coalesces to the
		// current state.
		if approval, aerr := e.lastApproval(ctx, wf); aerr == nil && approval.Decision == decision {
			return wf, nil
		}
		return nil, fmt.Errorf("%w: workflow %s is %s", ErrNotPaused, id, wf.Status)
	}

	stepID := wf.CurrentStep
	tmpl, err := e.templates.Get(wf.TemplateName)
	if err != nil {
		return nil, err
	}
	step, ok := tmpl.Step(stepID)
	if !ok || step.Type != StepHITLApproval {
		return nil, fmt.Errorf("%w: current step %q is not awaiting approval", ErrNotPaused, stepID)
	}

	approval, err := e.approvals.GetApprovalForStep(ctx, id, stepID)
	if err != nil {
		return nil, err
	}
	if _, err := e.approvals.Decide(ctx, approval.ID, decision, decidedBy); err != nil {
		return nil, err
	}

	next := step.OnApproved
	if decision == models.ApprovalRejected {
		next = step.OnRejected
	}

	wf, err = e.persist(ctx, wf, func(w *models.Workflow) {
		w.StepStatuses[stepID] = models.StepCompleted
		w.Outputs[stepID] = map[string]any{
			"decision": string(decision),
			"risk":     string(approval.Risk),
		}
		if next == "" {
			w.Status = models.WorkflowCompleted
			w.CurrentStep = ""
		} else {
			w.Status = models.WorkflowRunning
			w.CurrentStep = next
		}
	})
	if err != nil {
		return nil, err
	}
	e.publishStep(ctx, wf.ID, events.FrameStepCompleted, stepID, models.StepCompleted)

	if wf.Status.Terminal() {
		e.publishDone(ctx, wf)
		return wf, nil
	}
	return e.Advance(ctx, wf.ID)
}

// Cancel stops a workflow: the current step's context is canceled, which
// unwinds in-flight calls and releases step locks, and the workflow is
// marked canceled.
func (e *Engine) Cancel(ctx context.Context, id string) (*models.Workflow, error) {
	e.mu.Lock()
	if cancel, ok := e.inflight[id]; ok {
		cancel()
	}
	e.mu.Unlock()

	wf, err := e.store.GetWorkflow(ctx, id)
	if err != nil {
		return nil, err
	}
	if wf.Status.Terminal() {
		return wf, nil
	}
	wf, err = e.persist(ctx, wf, func(w *models.Workflow) {
		w.Status = models.WorkflowCanceled
	})
	if err != nil {
		return nil, err
	}
	e.publishDone(ctx, wf)
	return wf, nil
}

// register derives a cancelable context tracked per workflow so Cancel can
// reach an in-flight advance.
func (e *Engine) register(ctx context.Context, id string) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	e.mu.Lock()
	e.inflight[id] = cancel
	e.mu.Unlock()
	return ctx
}

// startHeartbeat refreshes the workflow's liveness timestamp until the
// returned stop function is called.
func (e *Engine) startHeartbeat(ctx context.Context, id string) func() {
	if e.opts.Heartbeater == nil {
		return func() {}
	}
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(e.opts.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := e.opts.Heartbeater.Heartbeat(ctx, id); err != nil {
					slog.Warn("Workflow heartbeat failed", "workflow_id", id, "error", err)
				}
			}
		}
	}()
	return func() { close(done) }
}

func (e *Engine) unregister(id string) {
	e.mu.Lock()
	if cancel, ok := e.inflight[id]; ok {
		cancel()
		delete(e.inflight, id)
	}
	e.mu.Unlock()
}

// persist applies one optimistic write, retrying once on a version conflict
// against the reloaded row. A second conflict surfaces ErrConcurrentUpdate.
func (e *Engine) persist(ctx context.Context, wf *models.Workflow, mutate func(*models.Workflow)) (*models.Workflow, error) {
	updated, err := e.store.UpdateWorkflow(ctx, wf.ID, wf.Version, mutate)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, services.ErrVersionConflict) {
		return nil, err
	}

	reloaded, gerr := e.store.GetWorkflow(ctx, wf.ID)
	if gerr != nil {
		return nil, gerr
	}
	updated, err = e.store.UpdateWorkflow(ctx, wf.ID, reloaded.Version, mutate)
	if errors.Is(err, services.ErrVersionConflict) {
		return nil, services.ErrConcurrentUpdate
	}
	return updated, err
}

// markCanceled records cancellation after the step context was torn down.
// A fresh context is used because the workflow's own is already canceled.
func (e *Engine) markCanceled(wf *models.Workflow) (*models.Workflow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	current, err := e.store.GetWorkflow(ctx, wf.ID)
	if err != nil {
		return nil, err
	}
	if current.Status.Terminal() {
		return current, nil
	}
	updated, err := e.persist(ctx, current, func(w *models.Workflow) {
		w.Status = models.WorkflowCanceled
	})
	if err != nil {
		return nil, err
	}
	e.publishDone(ctx, updated)
	return updated, nil
}

func (e *Engine) failWorkflow(ctx context.Context, wf *models.Workflow, diagnostic string) (*models.Workflow, error) {
	slog.Error("Workflow failed", "workflow_id", wf.ID, "error", diagnostic)
	updated, err := e.persist(ctx, wf, func(w *models.Workflow) {
		w.Status = models.WorkflowFailed
		w.ErrorMessage = diagnostic
		if w.CurrentStep != "" {
			w.StepStatuses[w.CurrentStep] = models.StepFailed
		}
	})
	if err != nil {
		return nil, err
	}
	e.publishError(ctx, updated.ID, "template_error", diagnostic)
	e.publishDone(ctx, updated)
	return updated, nil
}

// stepOutcome is the result of executing one step.
type stepOutcome struct {
	status      models.StepStatus
	output      map[string]any
	next        string
	errMsg      string
	templateErr error
	pause       *pauseInfo
}

type pauseInfo struct {
	approvalID string
	risk       models.RiskLevel
	issueRef   string
}

func (e *Engine) executeStep(ctx context.Context, wf *models.Workflow, step *Step) stepOutcome {
	if step.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, step.Timeout)
		defer cancel()
	}

	switch step.Type {
	case StepAgentCall:
		return e.runAgentCall(ctx, wf, step)
	case StepDecisionGate:
		return e.runDecisionGate(ctx, wf, step)
	case StepHITLApproval:
		return e.runApprovalGate(ctx, wf, step)
	case StepNoop:
		return stepOutcome{status: models.StepCompleted, output: map[string]any{}, next: step.OnSuccess}
	default:
		return stepOutcome{templateErr: fmt.Errorf("%w: unknown step type %q", ErrTemplate, step.Type)}
	}
}

func (e *Engine) runAgentCall(ctx context.Context, wf *models.Workflow, step *Step) stepOutcome {
	payload, err := RenderPayload(step.Payload, wf.Context, wf.Outputs)
	if err != nil {
		return stepOutcome{templateErr: err}
	}

	requestType := e.opts.DefaultRequestType
	if rt, ok := payload["request_type"].(string); ok && rt != "" {
		requestType = rt
	}
	description, _ := payload["description"].(string)

	result, err := e.runner.Run(ctx, dispatch.Task{
		AgentID:     step.Agent,
		RequestType: requestType,
		Payload:     payload,
		Description: description,
		Resources:   step.Resources,
		Timeout:     step.Timeout,
	})
	if err != nil {
		slog.Warn("Agent call failed",
			"workflow_id", wf.ID, "step_id", step.ID, "agent", step.Agent, "error", err)
		return stepOutcome{
			status: models.StepFailed,
			next:   step.OnFailure,
			errMsg: fmt.Sprintf("step %s: %v", step.ID, err),
		}
	}
	return stepOutcome{status: models.StepCompleted, output: result.Payload, next: step.OnSuccess}
}

// decisionVerdict is the JSON shape a decision gate expects from the model.
type decisionVerdict struct {
	Decision  string `json:"decision"`
	Reasoning string `json:"reasoning"`
}

func (e *Engine) runDecisionGate(ctx context.Context, wf *models.Workflow, step *Step) stepOutcome {
	prompt, err := RenderString(step.Prompt, wf.Context, wf.Outputs)
	if err != nil {
		return stepOutcome{templateErr: err}
	}

	verdict := decisionVerdict{Decision: "block"}
	raw, err := e.completeJSON(ctx, decisionGatePrompt, prompt)
	if err != nil {
		// A gate that cannot get a verdict blocks rather than guessing.
		verdict.Reasoning = fmt.Sprintf("verdict unavailable: %v", err)
	} else if err := json.Unmarshal(raw, &verdict); err != nil || verdict.Decision == "" {
		verdict = decisionVerdict{Decision: "block", Reasoning: "malformed verdict"}
	}

	next := step.OnBlock
	if verdict.Decision == "proceed" {
		next = step.OnProceed
	} else {
		verdict.Decision = "block"
	}
	return stepOutcome{
		status: models.StepCompleted,
		output: map[string]any{"decision": verdict.Decision, "reasoning": verdict.Reasoning},
		next:   next,
	}
}

// riskAssessment is the JSON shape a HITL gate expects from the model.
type riskAssessment struct {
	Risk       string `json:"risk"`
	Assessment string `json:"assessment"`
}

func (e *Engine) runApprovalGate(ctx context.Context, wf *models.Workflow, step *Step) stepOutcome {
	prompt, err := RenderString(step.Prompt, wf.Context, wf.Outputs)
	if err != nil {
		return stepOutcome{templateErr: err}
	}

	// An unavailable or malformed assessment escalates to a human rather
	// than auto-approving.
	assessment := riskAssessment{Risk: string(models.RiskHigh)}
	raw, err := e.completeJSON(ctx, riskAssessmentPrompt, prompt)
	if err != nil {
		assessment.Assessment = fmt.Sprintf("assessment unavailable: %v", err)
	} else if err := json.Unmarshal(raw, &assessment); err != nil || assessment.Risk == "" {
		assessment = riskAssessment{Risk: string(models.RiskHigh), Assessment: "malformed assessment"}
	}

	risk := models.RiskLevel(strings.ToLower(assessment.Risk))
	if risk != models.RiskLow && risk != models.RiskMedium && risk != models.RiskHigh {
		risk = models.RiskHigh
	}

	if risk == models.RiskLow {
		return stepOutcome{
			status: models.StepCompleted,
			output: map[string]any{
				"decision":      string(models.ApprovalApproved),
				"risk":          string(risk),
				"auto_approved": true,
			},
			next: step.OnApproved,
		}
	}

	approval, err := e.approvals.CreateApproval(ctx, wf.ID, step.ID, risk, assessment.Assessment)
	if err != nil {
		return stepOutcome{
			status: models.StepFailed,
			next:   step.OnFailure,
			errMsg: fmt.Sprintf("step %s: failed to persist approval: %v", step.ID, err),
		}
	}

	info := &pauseInfo{approvalID: approval.ID, risk: risk}
	if e.mappings != nil && wf.TaskID != "" {
		if ref, err := e.mappings.GetMapping(ctx, wf.TaskID); err == nil {
			info.issueRef = ref
		}
	}
	return stepOutcome{pause: info}
}

const decisionGatePrompt = `You are a workflow decision gate. Evaluate the
situation below and respond with ONLY a JSON object of the form
{"decision": "proceed" | "block", "reasoning": "..."}.`

const riskAssessmentPrompt = `You are a change risk assessor. Evaluate the
action below and respond with ONLY a JSON object of the form
{"risk": "low" | "medium" | "high", "assessment": "..."}.`

// completeJSON runs a single bounded completion and extracts the first JSON
// object from the reply.
func (e *Engine) completeJSON(ctx context.Context, system, user string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, e.opts.LLMTimeout)
	defer cancel()

	comp, err := e.llm.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: user},
		},
	})
	if err != nil {
		return nil, err
	}

	text := comp.Content
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model reply")
	}
	return json.RawMessage(text[start : end+1]), nil
}

// lastApproval returns the approval attached to the workflow's most recent
// HITL step, used for resume idempotence checks.
func (e *Engine) lastApproval(ctx context.Context, wf *models.Workflow) (*models.ApprovalRequest, error) {
	tmpl, err := e.templates.Get(wf.TemplateName)
	if err != nil {
		return nil, err
	}
	for i := len(tmpl.Steps) - 1; i >= 0; i-- {
		step := tmpl.Steps[i]
		if step.Type != StepHITLApproval {
			continue
		}
		if wf.StepStatuses[step.ID] == "" {
			continue
		}
		if approval, err := e.approvals.GetApprovalForStep(ctx, wf.ID, step.ID); err == nil {
			return approval, nil
		}
	}
	return nil, services.ErrNotFound
}

func (e *Engine) publishStep(ctx context.Context, workflowID, frameType, stepID string, status models.StepStatus) {
	if e.publisher == nil {
		return
	}
	frame := &events.StreamFrame{
		Type:       frameType,
		WorkflowID: workflowID,
		StepID:     stepID,
		StepStatus: string(status),
	}
	if err := e.publisher.PublishFrame(ctx, events.WorkflowChannel(workflowID), frame); err != nil {
		slog.Warn("Failed to publish step frame",
			"workflow_id", workflowID, "step_id", stepID, "error", err)
	}
}

func (e *Engine) publishDone(ctx context.Context, wf *models.Workflow) {
	if e.publisher == nil {
		return
	}
	frame := &events.StreamFrame{
		Type:       events.FrameDone,
		WorkflowID: wf.ID,
		StepStatus: string(wf.Status),
	}
	if err := e.publisher.PublishFrame(ctx, events.WorkflowChannel(wf.ID), frame); err != nil {
		slog.Warn("Failed to publish done frame", "workflow_id", wf.ID, "error", err)
	}
}

func (e *Engine) publishError(ctx context.Context, workflowID, kind, message string) {
	if e.publisher == nil {
		return
	}
	frame := &events.StreamFrame{
		Type:       events.FrameError,
		WorkflowID: workflowID,
		Error:      kind,
		Message:    message,
	}
	if err := e.publisher.PublishFrame(ctx, events.WorkflowChannel(workflowID), frame); err != nil {
		slog.Warn("Failed to publish error frame", "workflow_id", workflowID, "error", err)
	}
}

// notifyAwaitingApproval emits the approval_required frame and the
// workflow.awaiting_approval bus event.
func (e *Engine) notifyAwaitingApproval(ctx context.Context, wf *models.Workflow, stepID string, info *pauseInfo) {
	if e.publisher != nil {
		frame := &events.StreamFrame{
			Type:       events.FrameApprovalRequired,
			WorkflowID: wf.ID,
			StepID:     stepID,
			ApprovalID: info.approvalID,
			Risk:       string(info.risk),
			IssueRef:   info.issueRef,
		}
		if err := e.publisher.PublishFrame(ctx, events.WorkflowChannel(wf.ID), frame); err != nil {
			slog.Warn("Failed to publish approval frame", "workflow_id", wf.ID, "error", err)
		}
	}

	if e.bus == nil {
		return
	}
	payload := map[string]any{
		"workflow_id": wf.ID,
		"step_id":     stepID,
		"approval_id": info.approvalID,
		"risk":        string(info.risk),
	}
	if info.issueRef != "" {
		payload["issue_ref"] = info.issueRef
	}
	err := e.bus.Publish(ctx, "workflow", &bus.Event{
		Type:        "workflow.awaiting_approval",
		SourceAgent: "orchestrator",
		Payload:     payload,
		EmittedAt:   time.Now(),
	})
	if err != nil {
		slog.Warn("Failed to publish awaiting_approval event",
			"workflow_id", wf.ID, "error", err)
	}
}
