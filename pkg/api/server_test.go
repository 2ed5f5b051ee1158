package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/pkg/bus"
	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/services"
	"github.com/conductorhq/conductor/pkg/workflow"
)

// fakeOrchestrator scripts engine behavior per method. A non-empty pauseAt
// makes Execute stop on that step instead of completing.
type fakeOrchestrator struct {
	workflows map[string]*models.Workflow
	err       error
	pauseAt   string

	resumed  []models.ApprovalDecision
	canceled []string
}

func (f *fakeOrchestrator) snapshot(id string) (*models.Workflow, error) {
	if f.err != nil {
		return nil, f.err
	}
	wf, ok := f.workflows[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return wf, nil
}

func (f *fakeOrchestrator) Create(_ context.Context, templateName string, wfContext map[string]any, taskID string) (*models.Workflow, error) {
	if f.err != nil {
		return nil, f.err
	}
	wf := &models.Workflow{
		ID:           "wf-created",
		TemplateName: templateName,
		Status:       models.WorkflowRunning,
		Context:      wfContext,
		TaskID:       taskID,
		Version:      1,
	}
	f.workflows[wf.ID] = wf
	return wf, nil
}

func (f *fakeOrchestrator) Advance(_ context.Context, id string) (*models.Workflow, error) {
	return f.snapshot(id)
}

func (f *fakeOrchestrator) Execute(ctx context.Context, templateName string, wfContext map[string]any, taskID string) (*models.Workflow, error) {
	wf, err := f.Create(ctx, templateName, wfContext, taskID)
	if err != nil {
		return nil, err
	}
	if f.pauseAt != "" {
		wf.Status = models.WorkflowPaused
		wf.CurrentStep = f.pauseAt
		return wf, nil
	}
	wf.Status = models.WorkflowCompleted
	return wf, nil
}

func (f *fakeOrchestrator) Resume(_ context.Context, id string, decision models.ApprovalDecision, _ string) (*models.Workflow, error) {
	f.resumed = append(f.resumed, decision)
	return f.snapshot(id)
}

func (f *fakeOrchestrator) Cancel(_ context.Context, id string) (*models.Workflow, error) {
	f.canceled = append(f.canceled, id)
	return f.snapshot(id)
}

type fakeWorkflowReader struct {
	workflows map[string]*models.Workflow
}

func (f *fakeWorkflowReader) GetWorkflow(_ context.Context, id string) (*models.Workflow, error) {
	wf, ok := f.workflows[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return wf, nil
}

type fakeApprovalReader struct {
	approvals map[string]*models.ApprovalRequest
}

func (f *fakeApprovalReader) GetApproval(_ context.Context, id string) (*models.ApprovalRequest, error) {
	a, ok := f.approvals[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return a, nil
}

func (f *fakeApprovalReader) GetApprovalForStep(_ context.Context, workflowID, stepID string) (*models.ApprovalRequest, error) {
	for _, a := range f.approvals {
		if a.WorkflowID == workflowID && a.StepID == stepID {
			return a, nil
		}
	}
	return nil, services.ErrNotFound
}

type fakeRequester struct {
	resp *bus.Response
	err  error
	got  *bus.Request
}

func (f *fakeRequester) Request(_ context.Context, req *bus.Request, _ time.Duration) (*bus.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type serverFixture struct {
	server    *Server
	engine    *fakeOrchestrator
	approvals *fakeApprovalReader
	requester *fakeRequester
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	running := &models.Workflow{
		ID:           "wf-1",
		TemplateName: "deployment",
		Status:       models.WorkflowRunning,
		CurrentStep:  "deploy",
		Version:      3,
	}
	engine := &fakeOrchestrator{
		workflows: map[string]*models.Workflow{"wf-1": running},
	}
	approvals := &fakeApprovalReader{
		approvals: map[string]*models.ApprovalRequest{
			"apr-1": {
				ID:         "apr-1",
				WorkflowID: "wf-1",
				StepID:     "confirm",
				Risk:       models.RiskMedium,
				Decision:   models.ApprovalPending,
			},
		},
	}
	requester := &fakeRequester{
		resp: &bus.Response{Payload: map[string]any{"answer": "done"}},
	}

	templates := workflow.NewTemplateRegistry()
	require.NoError(t, templates.Register(&workflow.Template{
		Name: "deployment",
		Steps: []workflow.Step{
			{ID: "deploy", Type: workflow.StepAgentCall, Agent: "infra-agent"},
		},
	}))

	cfg := &config.Config{
		System: &config.SystemConfig{Port: 8080},
		Bus:    &config.BusConfig{RequestTimeoutSeconds: 5},
		Engine: &config.EngineConfig{DefaultTemplate: "deployment"},
	}

	server := NewServer(Deps{
		Config:    cfg,
		Engine:    engine,
		Workflows: &fakeWorkflowReader{workflows: engine.workflows},
		Approvals: approvals,
		Bus:       requester,
		Templates: templates,
	})
	return &serverFixture{
		server:    server,
		engine:    engine,
		approvals: approvals,
		requester: requester,
	}
}

func (f *serverFixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.server.Echo().ServeHTTP(rec, req)
	return rec
}

func TestExecuteWorkflowEndpoint(t *testing.T) {
	t.Run("runs the named template", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodPost, "/workflow/execute", map[string]any{
			"template_name": "deployment",
			"context":       map[string]any{"repo": "conductor"},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var wf models.Workflow
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wf))
		assert.Equal(t, "deployment", wf.TemplateName)
		assert.Equal(t, models.WorkflowCompleted, wf.Status)
	})

	t.Run("paused run carries the pending approval id", func(t *testing.T) {
		f := newServerFixture(t)
		f.engine.pauseAt = "confirm"
		f.approvals.approvals["apr-2"] = &models.ApprovalRequest{
			ID:         "apr-2",
			WorkflowID: "wf-created",
			StepID:     "confirm",
			Risk:       models.RiskMedium,
			Decision:   models.ApprovalPending,
		}

		rec := f.do(http.MethodPost, "/workflow/execute", map[string]any{
			"template_name": "deployment",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var body WorkflowResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, models.WorkflowPaused, body.Status)
		assert.Equal(t, "apr-2", body.ApprovalID)
		assert.Equal(t, models.RiskMedium, body.Risk)
	})

	t.Run("missing template name is rejected", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodPost, "/workflow/execute", map[string]any{
			"context": map[string]any{},
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "validation_error", body.Error)
	})

	t.Run("unknown template maps to 400", func(t *testing.T) {
		f := newServerFixture(t)
		f.engine.err = fmt.Errorf("create: %w", workflow.ErrTemplateNotFound)
		rec := f.do(http.MethodPost, "/workflow/execute", map[string]any{
			"template_name": "no-such-template",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWorkflowStatusEndpoint(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/workflow/status/wf-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var wf models.Workflow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wf))
	assert.Equal(t, "wf-1", wf.ID)
	assert.Equal(t, "deploy", wf.CurrentStep)

	rec = f.do(http.MethodGet, "/workflow/status/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResumeWorkflowEndpoint(t *testing.T) {
	t.Run("applies the decision", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodPost, "/workflow/resume/wf-1", map[string]any{
			"approval_decision": "approved",
			"decided_by":        "ops",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, f.engine.resumed, 1)
		assert.Equal(t, models.ApprovalApproved, f.engine.resumed[0])
	})

	t.Run("rejects decisions outside the enum", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodPost, "/workflow/resume/wf-1", map[string]any{
			"approval_decision": "maybe",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, f.engine.resumed)
	})
}

func TestCancelWorkflowEndpoint(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodPost, "/workflow/cancel/wf-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"wf-1"}, f.engine.canceled)
}

func TestListTemplatesEndpoint(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/workflow/templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body TemplateListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"deployment"}, body.Templates)
}

func TestApprovalEndpoints(t *testing.T) {
	t.Run("get returns the approval", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodGet, "/approvals/apr-1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var approval models.ApprovalRequest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &approval))
		assert.Equal(t, "wf-1", approval.WorkflowID)
		assert.Equal(t, models.RiskMedium, approval.Risk)
	})

	t.Run("decide resumes the owning workflow", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodPost, "/approvals/apr-1", map[string]any{
			"decision":   "rejected",
			"decided_by": "ops",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, f.engine.resumed, 1)
		assert.Equal(t, models.ApprovalRejected, f.engine.resumed[0])

		var body DecideApprovalResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "apr-1", body.Approval.ID)
		assert.Equal(t, "wf-1", body.Workflow.ID)
	})

	t.Run("unknown approval maps to 404", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodPost, "/approvals/missing", map[string]any{
			"decision": "approved",
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAgentRequestEndpoint(t *testing.T) {
	t.Run("dispatches through the bus", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodPost, "/agent-request", map[string]any{
			"request_type": "task.execute",
			"target_agent": "code-agent",
			"source_agent": "orchestrator",
			"payload":      map[string]any{"message": "review PR"},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var body AgentRequestResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "success", body.Status)
		assert.Equal(t, "done", body.Result["answer"])

		require.NotNil(t, f.requester.got)
		assert.Equal(t, "task.execute", f.requester.got.Type)
		assert.NotEmpty(t, f.requester.got.CorrelationID)
	})

	t.Run("handler failure surfaces as error status", func(t *testing.T) {
		f := newServerFixture(t)
		f.requester.resp = &bus.Response{Error: "tool exploded"}
		rec := f.do(http.MethodPost, "/agent-request", map[string]any{
			"request_type": "task.execute",
			"target_agent": "code-agent",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var body AgentRequestResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "error", body.Status)
	})

	t.Run("unreachable target maps to 502", func(t *testing.T) {
		f := newServerFixture(t)
		f.requester.err = fmt.Errorf("%w: code-agent", bus.ErrTargetUnreachable)
		rec := f.do(http.MethodPost, "/agent-request", map[string]any{
			"request_type": "task.execute",
			"target_agent": "code-agent",
		})

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("timeout maps to 504", func(t *testing.T) {
		f := newServerFixture(t)
		f.requester.err = bus.ErrRequestTimeout
		rec := f.do(http.MethodPost, "/agent-request", map[string]any{
			"request_type": "task.execute",
			"target_agent": "code-agent",
		})

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	})

	t.Run("missing request type is rejected", func(t *testing.T) {
		f := newServerFixture(t)
		rec := f.do(http.MethodPost, "/agent-request", map[string]any{
			"target_agent": "code-agent",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, healthStatusDegraded, body.Status)
	assert.Equal(t, healthStatusDegraded, body.Checks["database"].Status)
}
