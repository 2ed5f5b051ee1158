// Package chat is the conversational handler: a single-shot response
// streamed token by token onto the session's stream channel. Simple-task
// messages get the minimal tool catalog in context; plain questions get
// none. The handler never creates workflows.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/conductorhq/conductor/pkg/events"
	"github.com/conductorhq/conductor/pkg/llm"
	"github.com/conductorhq/conductor/pkg/mcp"
)

const systemPrompt = `You are Conductor, an orchestration assistant. Answer
the user's question directly and concisely. When tools are listed, you may
reference them to explain what actions are possible, but you do not execute
anything yourself.`

// Streamer is the LLM surface the handler needs.
type Streamer interface {
	Stream(ctx context.Context, req llm.Request) (<-chan llm.Chunk, error)
}

// Handler answers conversational messages.
type Handler struct {
	llm       Streamer
	publisher events.Publisher
	selector  *mcp.Selector
	catalog   *mcp.Catalog
	timeout   time.Duration
}

// NewHandler creates a handler. selector and catalog may be nil to disable
// tool context entirely.
func NewHandler(streamer Streamer, publisher events.Publisher, selector *mcp.Selector, catalog *mcp.Catalog, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Handler{
		llm:       streamer,
		publisher: publisher,
		selector:  selector,
		catalog:   catalog,
		timeout:   timeout,
	}
}

// Respond streams the answer for one message onto the session channel and
// finishes with a done frame. withTools offers the minimal tool catalog.
// The stream carries an error frame instead when the model call fails.
func (h *Handler) Respond(ctx context.Context, sessionID, message string, withTools bool) error {
	channel := events.SessionChannel(sessionID)

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: message},
		},
	}
	if withTools {
		req.Tools = h.toolDefinitions(message)
	}

	chunks, err := h.llm.Stream(ctx, req)
	if err != nil {
		h.publishError(ctx, channel, err)
		return err
	}

	for chunk := range chunks {
		switch c := chunk.(type) {
		case *llm.TextChunk:
			if err := h.publisher.PublishContent(ctx, channel, c.Content); err != nil {
				slog.Warn("Failed to publish content frame",
					"session_id", sessionID, "error", err)
			}
		case *llm.ToolCallChunk:
			// No in-process tool execution: surface the requested call so
			// the client can hand it to a specialist.
			text := fmt.Sprintf("\n[tool request: %s(%s)]\n", c.Name, c.Arguments)
			if err := h.publisher.PublishContent(ctx, channel, text); err != nil {
				slog.Warn("Failed to publish tool request frame",
					"session_id", sessionID, "error", err)
			}
		case *llm.ErrorChunk:
			streamErr := fmt.Errorf("llm stream failed: %s", c.Message)
			h.publishError(ctx, channel, streamErr)
			return streamErr
		}
	}

	done := &events.StreamFrame{Type: events.FrameDone, SessionID: sessionID}
	if err := h.publisher.PublishFrame(ctx, channel, done); err != nil {
		return fmt.Errorf("failed to publish done frame: %w", err)
	}
	return nil
}

// toolDefinitions maps the minimal catalog slice for the message into
// provider tool definitions.
func (h *Handler) toolDefinitions(message string) []llm.ToolDefinition {
	if h.selector == nil || h.catalog == nil {
		return nil
	}
	tools := h.selector.Select(message, "chat", mcp.StrategyMinimal, h.catalog)
	defs := make([]llm.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		params := string(t.Schema.Parameters)
		if params == "" {
			params = `{"type":"object","properties":{}}`
		}
		defs = append(defs, llm.ToolDefinition{
			Name:        mcp.ProviderToolName(t.QualifiedName()),
			Description: t.Schema.Description,
			Parameters:  params,
		})
	}
	return defs
}

func (h *Handler) publishError(ctx context.Context, channel string, cause error) {
	frame := &events.StreamFrame{
		Type:    events.FrameError,
		Error:   errorKind(cause),
		Message: cause.Error(),
	}
	if err := h.publisher.PublishFrame(ctx, channel, frame); err != nil {
		slog.Warn("Failed to publish error frame", "channel", channel, "error", err)
	}
}

// errorKind maps an LLM failure to its stream taxonomy kind.
func errorKind(err error) string {
	switch llm.KindOf(err) {
	case llm.ErrKindRateLimited:
		return "rate_limited"
	case llm.ErrKindTimeout:
		return "timeout"
	default:
		return "provider_error"
	}
}
