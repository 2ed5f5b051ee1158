package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/conductorhq/conductor/pkg/bus"
)

// AgentRequestBody is the wire form of a cross-pod agent request.
type AgentRequestBody struct {
	RequestType   string         `json:"request_type"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	TargetAgent   string         `json:"target_agent"`
	SourceAgent   string         `json:"source_agent,omitempty"`
	Payload       map[string]any `json:"payload,omitempty"`
}

// AgentRequestResponse is the body for POST /agent-request.
type AgentRequestResponse struct {
	Status string         `json:"status"`
	Result map[string]any `json:"result,omitempty"`
}

// agentRequestHandler handles POST /agent-request: the receive side of
// cross-pod agent calls. The request is dispatched through the bus, which
// routes it to the locally registered handler for the target agent.
func (s *Server) agentRequestHandler(c *echo.Context) error {
	if s.bus == nil {
		return unavailable(c, "event bus is not available")
	}

	var body AgentRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, err.Error())
	}
	if body.RequestType == "" {
		return badRequest(c, "request_type is required")
	}
	if body.TargetAgent == "" {
		return badRequest(c, "target_agent is required")
	}
	if body.CorrelationID == "" {
		body.CorrelationID = uuid.New().String()
	}

	timeout := 30 * time.Second
	if s.cfg != nil && s.cfg.Bus != nil {
		timeout = s.cfg.Bus.RequestTimeout()
	}

	req := &bus.Request{
		CorrelationID: body.CorrelationID,
		SourceAgent:   body.SourceAgent,
		TargetAgent:   body.TargetAgent,
		Type:          body.RequestType,
		Payload:       body.Payload,
		SentAt:        time.Now().UTC(),
	}

	resp, err := s.bus.Request(c.Request().Context(), req, timeout)
	if err != nil {
		return respondBusError(c, err)
	}
	if resp.Error != "" {
		return c.JSON(http.StatusOK, &AgentRequestResponse{
			Status: "error",
			Result: map[string]any{"error": resp.Error},
		})
	}
	return c.JSON(http.StatusOK, &AgentRequestResponse{
		Status: "success",
		Result: resp.Payload,
	})
}

// respondBusError maps bus request failures onto HTTP statuses.
func respondBusError(c *echo.Context, err error) error {
	switch {
	case errors.Is(err, bus.ErrRequestTimeout):
		return c.JSON(http.StatusGatewayTimeout, &ErrorResponse{
			Error: "request_timeout", Message: err.Error(),
		})
	case errors.Is(err, bus.ErrTargetUnreachable):
		return c.JSON(http.StatusBadGateway, &ErrorResponse{
			Error: "target_unreachable", Message: err.Error(),
		})
	case errors.Is(err, bus.ErrRemoteError):
		return c.JSON(http.StatusBadGateway, &ErrorResponse{
			Error: "remote_error", Message: err.Error(),
		})
	}
	return respondError(c, err)
}
