package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/dispatch"
	"github.com/conductorhq/conductor/pkg/events"
	"github.com/conductorhq/conductor/pkg/intent"
	"github.com/conductorhq/conductor/pkg/models"
)

// streamingChat publishes a scripted reply on the session channel.
type streamingChat struct {
	publisher events.Publisher
	reply     string
	withTools []bool
}

func (c *streamingChat) Respond(ctx context.Context, sessionID, _ string, withTools bool) error {
	c.withTools = append(c.withTools, withTools)
	channel := events.SessionChannel(sessionID)
	if err := c.publisher.PublishContent(ctx, channel, c.reply); err != nil {
		return err
	}
	return c.publisher.PublishFrame(ctx, channel, &events.StreamFrame{
		Type:      events.FrameDone,
		SessionID: sessionID,
	})
}

// streamingOrchestrator publishes workflow frames when advanced.
type streamingOrchestrator struct {
	fakeOrchestrator
	publisher events.Publisher
}

func (o *streamingOrchestrator) Advance(ctx context.Context, id string) (*models.Workflow, error) {
	channel := events.WorkflowChannel(id)
	frames := []*events.StreamFrame{
		{Type: events.FrameStepStarted, WorkflowID: id, StepID: "deploy"},
		{Type: events.FrameStepCompleted, WorkflowID: id, StepID: "deploy", StepStatus: "completed"},
		{Type: events.FrameDone, WorkflowID: id},
	}
	for _, frame := range frames {
		if err := o.publisher.PublishFrame(ctx, channel, frame); err != nil {
			return nil, err
		}
	}
	return o.snapshot(id)
}

type recordingRunner struct {
	result *dispatch.Result
	tasks  []dispatch.Task
}

func (r *recordingRunner) Run(_ context.Context, task dispatch.Task) (*dispatch.Result, error) {
	r.tasks = append(r.tasks, task)
	return r.result, nil
}

type streamFixture struct {
	server *Server
	engine *streamingOrchestrator
	chat   *streamingChat
	runner *recordingRunner
}

func newStreamFixture(t *testing.T) *streamFixture {
	t.Helper()

	manager := events.NewStreamManager(nil)
	publisher := events.NewLocalPublisher(manager)

	engine := &streamingOrchestrator{
		fakeOrchestrator: fakeOrchestrator{workflows: map[string]*models.Workflow{}},
		publisher:        publisher,
	}
	chat := &streamingChat{publisher: publisher, reply: "locks lease per resource"}
	runner := &recordingRunner{
		result: &dispatch.Result{Payload: map[string]any{"summary": "patched the test"}},
	}

	cfg := &config.Config{
		System: &config.SystemConfig{Port: 8080},
		Bus:    &config.BusConfig{RequestTimeoutSeconds: 5},
		Engine: &config.EngineConfig{DefaultTemplate: "deployment"},
		Specialists: config.NewSpecialistRegistry(map[string]*config.SpecialistConfig{
			"code-agent": {
				Capabilities: []string{"fix", "refactor"},
				RequestType:  "task.execute",
			},
		}),
	}

	classifier := intent.NewClassifier(intent.DefaultConfig())
	server := NewServer(Deps{
		Config:     cfg,
		Engine:     engine,
		Chat:       chat,
		Classifier: classifier,
		Streams:    manager,
		Publisher:  publisher,
		Runner:     runner,
	})
	return &streamFixture{server: server, engine: engine, chat: chat, runner: runner}
}

func (f *streamFixture) stream(t *testing.T, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.server.Echo().ServeHTTP(rec, req)
	return rec
}

// sseFrames decodes the data lines of an SSE body, excluding the sentinel.
func sseFrames(t *testing.T, body string) []events.StreamFrame {
	t.Helper()
	var frames []events.StreamFrame
	for _, line := range bytes.Split([]byte(body), []byte("\n")) {
		payload, ok := bytes.CutPrefix(line, []byte("data: "))
		if !ok || string(payload) == "[DONE]" {
			continue
		}
		var frame events.StreamFrame
		require.NoError(t, json.Unmarshal(payload, &frame))
		frames = append(frames, frame)
	}
	return frames
}

func TestChatStreamQA(t *testing.T) {
	f := newStreamFixture(t)

	rec := f.stream(t, "/chat/stream", map[string]any{
		"message":    "how does the lock manager behave under contention",
		"session_id": "sess-1",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no", rec.Header().Get("X-Accel-Buffering"))

	body := rec.Body.String()
	assert.Contains(t, body, "locks lease per resource")
	assert.Contains(t, body, "data: [DONE]")

	require.Equal(t, []bool{false}, f.chat.withTools, "qa answers without tools")

	frames := sseFrames(t, body)
	require.Len(t, frames, 2)
	assert.Equal(t, events.FrameContent, frames[0].Type)
	assert.Equal(t, events.FrameDone, frames[1].Type)
}

func TestChatStreamSimpleTaskUsesTools(t *testing.T) {
	f := newStreamFixture(t)

	rec := f.stream(t, "/chat/stream", map[string]any{
		"message":    "show me the lock manager config",
		"session_id": "sess-2",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []bool{true}, f.chat.withTools)
}

func TestChatStreamMediumComplexityDispatchesSpecialist(t *testing.T) {
	f := newStreamFixture(t)

	rec := f.stream(t, "/chat/stream", map[string]any{
		"message":    "fix the flaky integration test",
		"session_id": "sess-3",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, f.runner.tasks, 1)
	assert.Equal(t, "code-agent", f.runner.tasks[0].AgentID)
	assert.Equal(t, "task.execute", f.runner.tasks[0].RequestType)

	body := rec.Body.String()
	assert.Contains(t, body, "patched the test")
	assert.Contains(t, body, "data: [DONE]")

	frames := sseFrames(t, body)
	var types []string
	for _, frame := range frames {
		types = append(types, frame.Type)
	}
	assert.Equal(t, []string{
		events.FrameStepStarted,
		events.FrameContent,
		events.FrameStepCompleted,
		events.FrameDone,
	}, types)
}

func TestChatStreamExplicitCommandRunsWorkflow(t *testing.T) {
	f := newStreamFixture(t)

	rec := f.stream(t, "/chat/stream", map[string]any{
		"message":    "/execute ship the release",
		"session_id": "sess-4",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	wf, ok := f.engine.workflows["wf-created"]
	require.True(t, ok, "workflow should have been created")
	assert.Equal(t, "deployment", wf.TemplateName)
	assert.Equal(t, "ship the release", wf.Context["request"])

	frames := sseFrames(t, rec.Body.String())
	require.Len(t, frames, 3)
	assert.Equal(t, events.FrameStepStarted, frames[0].Type)
	assert.Equal(t, events.FrameDone, frames[2].Type)
	assert.Contains(t, rec.Body.String(), "data: [DONE]")
}

func TestExecuteStreamIgnoresIntent(t *testing.T) {
	f := newStreamFixture(t)

	// A conversational message still runs the workflow path here.
	rec := f.stream(t, "/execute/stream", map[string]any{
		"message":    "how is the weather",
		"session_id": "sess-5",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	_, ok := f.engine.workflows["wf-created"]
	assert.True(t, ok)
	assert.Contains(t, rec.Body.String(), "data: [DONE]")
}

func TestExecuteStreamRequiresTemplate(t *testing.T) {
	f := newStreamFixture(t)
	f.server.cfg.Engine.DefaultTemplate = ""

	rec := f.stream(t, "/execute/stream", map[string]any{
		"message": "run something",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatStreamRequiresMessage(t *testing.T) {
	f := newStreamFixture(t)

	rec := f.stream(t, "/chat/stream", map[string]any{"session_id": "sess-6"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
