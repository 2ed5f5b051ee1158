// Package bus is the inter-agent event bus: fire-and-forget pub/sub plus
// correlated request/response. The in-process implementation is the default;
// a NATS implementation covers multi-pod deployments. Emitters are never
// blocked or failed by subscriber behavior.
package bus

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrRequestTimeout is returned when a request's deadline passes before
	// a response arrives.
	ErrRequestTimeout = errors.New("agent request timeout")

	// ErrTargetUnreachable is returned when the request target has no
	// handler, is not registered, or its health state is gone.
	ErrTargetUnreachable = errors.New("target agent unreachable")

	// ErrRemoteError is returned when the target received the request but
	// reported a failure.
	ErrRemoteError = errors.New("remote agent error")
)

// Event is a fire-and-forget message on a topic.
type Event struct {
	Type          string         `json:"type"`
	SourceAgent   string         `json:"source_agent"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	Payload       map[string]any `json:"payload,omitempty"`
	EmittedAt     time.Time      `json:"emitted_at"`
}

// Request is a correlated call to a single target agent.
type Request struct {
	CorrelationID string         `json:"correlation_id"`
	SourceAgent   string         `json:"source_agent"`
	TargetAgent   string         `json:"target_agent"`
	Type          string         `json:"type"`
	Payload       map[string]any `json:"payload,omitempty"`
	SentAt        time.Time      `json:"sent_at"`
}

// Response answers a Request, matched by correlation id.
type Response struct {
	CorrelationID string         `json:"correlation_id"`
	Payload       map[string]any `json:"payload,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// EventCallback consumes a published event. Callbacks run on the
// subscriber's own goroutine; a panic is counted and isolated.
type EventCallback func(ctx context.Context, event *Event)

// RequestHandler serves requests addressed to an agent.
type RequestHandler func(ctx context.Context, req *Request) (*Response, error)

// Subscription is a handle for cancelling a topic subscription.
type Subscription interface {
	Unsubscribe()
}

// Bus is the inter-agent messaging surface.
type Bus interface {
	// Publish emits an event to all current subscribers of the topic.
	// Delivery is at-most-once; slow subscribers lose events rather than
	// slowing the emitter.
	Publish(ctx context.Context, topic string, event *Event) error

	// Subscribe attaches a named callback to a topic. The name appears in
	// the subscriber error metric.
	Subscribe(topic, name string, callback EventCallback) (Subscription, error)

	// RegisterHandler serves requests addressed to agentID.
	RegisterHandler(agentID string, handler RequestHandler) error

	// Request sends a correlated request and waits for the response.
	Request(ctx context.Context, req *Request, timeout time.Duration) (*Response, error)

	Close() error
}

// remoteError builds the error for a failure reported by the target.
func remoteError(msg string) error {
	return fmt.Errorf("%w: %s", ErrRemoteError, msg)
}
