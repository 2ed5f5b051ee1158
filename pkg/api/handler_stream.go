package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/dispatch"
	"github.com/conductorhq/conductor/pkg/events"
	"github.com/conductorhq/conductor/pkg/intent"
)

// StreamRequest is the body for POST /chat/stream and POST /execute/stream.
type StreamRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
	// TemplateName overrides the default orchestration template on the
	// execute path.
	TemplateName string `json:"template_name,omitempty"`
	Context      map[string]any `json:"context,omitempty"`
	TaskID       string         `json:"task_id,omitempty"`
	// LastEventID resumes catchup replay after a reconnect.
	LastEventID int64 `json:"last_event_id,omitempty"`
}

// chatStreamHandler handles POST /chat/stream: classify the message and
// stream the chosen path's frames back as server-sent events.
func (s *Server) chatStreamHandler(c *echo.Context) error {
	if s.streams == nil || s.publisher == nil {
		return unavailable(c, "streaming is not available")
	}

	var req StreamRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Message == "" {
		return badRequest(c, "message is required")
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	routed := intent.HighComplexity
	if s.classifier != nil {
		routed = s.classifier.Classify(req.Message)
	}

	switch routed {
	case intent.QA:
		return s.streamChat(c, &req, false)
	case intent.SimpleTask:
		return s.streamChat(c, &req, true)
	case intent.MediumComplexity:
		return s.streamSpecialist(c, &req)
	default:
		// explicit_command and high_complexity take the orchestration path.
		return s.streamExecute(c, &req)
	}
}

// executeStreamHandler handles POST /execute/stream: the unconditional
// orchestration path.
func (s *Server) executeStreamHandler(c *echo.Context) error {
	if s.streams == nil || s.publisher == nil {
		return unavailable(c, "streaming is not available")
	}

	var req StreamRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Message == "" && req.TemplateName == "" {
		return badRequest(c, "message or template_name is required")
	}
	return s.streamExecute(c, &req)
}

// streamChat runs the conversational handler and relays its session channel.
func (s *Server) streamChat(c *echo.Context, req *StreamRequest, withTools bool) error {
	if s.chat == nil {
		return unavailable(c, "chat is not available")
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	channel := events.SessionChannel(req.SessionID)
	stream, err := s.streams.Subscribe(ctx, channel, req.LastEventID)
	if err != nil {
		return respondError(c, err)
	}
	defer stream.Close()

	go func() {
		if err := s.chat.Respond(ctx, req.SessionID, req.Message, withTools); err != nil {
			slog.Warn("Chat response failed", "session_id", req.SessionID, "error", err)
		}
	}()

	return s.pumpSSE(c, ctx, stream)
}

// streamSpecialist dispatches the message to one specialist and streams the
// outcome on the session channel.
func (s *Server) streamSpecialist(c *echo.Context, req *StreamRequest) error {
	if s.runner == nil {
		return s.streamExecute(c, req)
	}

	agentID, spec := s.pickSpecialist(req.Message)
	if agentID == "" {
		return s.streamExecute(c, req)
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	channel := events.SessionChannel(req.SessionID)
	stream, err := s.streams.Subscribe(ctx, channel, req.LastEventID)
	if err != nil {
		return respondError(c, err)
	}
	defer stream.Close()

	go func() {
		frame := &events.StreamFrame{Type: events.FrameStepStarted, SessionID: req.SessionID, StepID: agentID}
		if err := s.publisher.PublishFrame(ctx, channel, frame); err != nil {
			slog.Warn("Failed to publish frame", "channel", channel, "error", err)
		}

		result, err := s.runner.Run(ctx, dispatch.Task{
			AgentID:      agentID,
			RequestType:  spec.RequestType,
			Payload:      map[string]any{"message": req.Message},
			Description:  req.Message,
			Resources:    spec.Resources,
			ToolStrategy: spec.ToolStrategy,
		})
		if err != nil {
			s.publishStreamError(ctx, channel, "agent_failure", err.Error())
			return
		}

		if summary, ok := result.Payload["summary"].(string); ok && summary != "" {
			if err := s.publisher.PublishContent(ctx, channel, summary); err != nil {
				slog.Warn("Failed to publish content", "channel", channel, "error", err)
			}
		} else if encoded, err := json.Marshal(result.Payload); err == nil {
			if err := s.publisher.PublishContent(ctx, channel, string(encoded)); err != nil {
				slog.Warn("Failed to publish content", "channel", channel, "error", err)
			}
		}

		done := &events.StreamFrame{Type: events.FrameStepCompleted, SessionID: req.SessionID, StepID: agentID}
		if err := s.publisher.PublishFrame(ctx, channel, done); err != nil {
			slog.Warn("Failed to publish frame", "channel", channel, "error", err)
		}
		final := &events.StreamFrame{Type: events.FrameDone, SessionID: req.SessionID}
		if err := s.publisher.PublishFrame(ctx, channel, final); err != nil {
			slog.Warn("Failed to publish frame", "channel", channel, "error", err)
		}
	}()

	return s.pumpSSE(c, ctx, stream)
}

// streamExecute creates a workflow and relays its channel. The workflow is
// created before the subscription starts so no frame is lost, then advanced
// on a context derived from the client connection.
func (s *Server) streamExecute(c *echo.Context, req *StreamRequest) error {
	if s.engine == nil {
		return unavailable(c, "orchestration is not available")
	}

	templateName := req.TemplateName
	if templateName == "" && s.cfg != nil {
		templateName = s.cfg.Engine.DefaultTemplate
	}
	if templateName == "" {
		return badRequest(c, "no template_name given and no default template configured")
	}

	wfContext := req.Context
	if wfContext == nil {
		wfContext = map[string]any{}
	}
	if req.Message != "" {
		wfContext["request"] = strings.TrimSpace(strings.TrimPrefix(req.Message, "/execute"))
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	wf, err := s.engine.Create(ctx, templateName, wfContext, req.TaskID)
	if err != nil {
		return respondError(c, err)
	}

	stream, err := s.streams.Subscribe(ctx, events.WorkflowChannel(wf.ID), req.LastEventID)
	if err != nil {
		return respondError(c, err)
	}
	defer stream.Close()

	go func() {
		if _, err := s.engine.Advance(ctx, wf.ID); err != nil {
			slog.Error("Workflow advance failed", "workflow_id", wf.ID, "error", err)
		}
	}()

	return s.pumpSSE(c, ctx, stream)
}

// pickSpecialist matches the message against configured specialist
// capabilities; the first capability keyword found in the message wins.
func (s *Server) pickSpecialist(message string) (string, *config.SpecialistConfig) {
	if s.cfg == nil || s.cfg.Specialists == nil {
		return "", nil
	}
	text := strings.ToLower(message)

	ids := s.cfg.Specialists.IDs()
	sort.Strings(ids)
	for _, id := range ids {
		spec, err := s.cfg.Specialists.Get(id)
		if err != nil {
			continue
		}
		for _, capability := range spec.Capabilities {
			if strings.Contains(text, strings.ToLower(capability)) {
				return id, spec
			}
		}
	}
	if len(ids) > 0 {
		spec, err := s.cfg.Specialists.Get(ids[0])
		if err == nil {
			return ids[0], spec
		}
	}
	return "", nil
}

// pumpSSE relays stream frames to the client as SSE data lines until a
// done or error frame arrives, then emits the [DONE] sentinel. A client
// disconnect cancels ctx, which unwinds the producing goroutine.
func (s *Server) pumpSSE(c *echo.Context, ctx context.Context, stream *events.Stream) error {
	var w http.ResponseWriter = c.Response()
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	flush := func() {
		if flusher != nil {
			flusher.Flush()
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case payload, ok := <-stream.C():
			if !ok {
				writeSSE(w, []byte("[DONE]"))
				flush()
				return nil
			}
			writeSSE(w, payload)
			flush()

			if terminalFrame(payload) {
				writeSSE(w, []byte("[DONE]"))
				flush()
				return nil
			}
		}
	}
}

func writeSSE(w http.ResponseWriter, payload []byte) {
	fmt.Fprintf(w, "data: %s\n\n", payload)
}

// terminalFrame reports whether a frame ends the stream.
func terminalFrame(payload []byte) bool {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return false
	}
	return probe.Type == events.FrameDone || probe.Type == events.FrameError
}

func (s *Server) publishStreamError(ctx context.Context, channel, kind, message string) {
	frame := &events.StreamFrame{
		Type:    events.FrameError,
		Error:   kind,
		Message: message,
	}
	if err := s.publisher.PublishFrame(ctx, channel, frame); err != nil {
		slog.Warn("Failed to publish error frame", "channel", channel, "error", err)
	}
}
