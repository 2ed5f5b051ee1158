package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/conductorhq/conductor/pkg/metrics"
	"github.com/conductorhq/conductor/pkg/registry"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const (
	natsEventPrefix = "conductor.events."
	natsAgentPrefix = "conductor.agents."
)

// NATSBus carries bus traffic over a NATS server so multiple pods share one
// event space. Pub/sub maps to NATS subjects, request/response to NATS
// request/reply.
type NATSBus struct {
	conn *nats.Conn
}

// NewNATSBus connects to the NATS server at the given URL.
func NewNATSBus(url string) (*NATSBus, error) {
	conn, err := nats.Connect(url,
		nats.Name("conductor"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			slog.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSBus{conn: conn}, nil
}

// Publish emits the event on the topic's subject.
func (b *NATSBus) Publish(_ context.Context, topic string, event *Event) error {
	if event.EmittedAt.IsZero() {
		event.EmittedAt = time.Now()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if err := b.conn.Publish(natsEventPrefix+topic, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	metrics.EventsEmitted.WithLabelValues(event.Type, event.SourceAgent).Inc()
	return nil
}

type natsSub struct {
	sub *nats.Subscription
}

func (s *natsSub) Unsubscribe() {
	_ = s.sub.Unsubscribe()
}

// Subscribe attaches a callback to a topic. NATS delivers each subscriber's
// messages on its own goroutine, matching the in-process isolation model.
func (b *NATSBus) Subscribe(topic, name string, callback EventCallback) (Subscription, error) {
	sub, err := b.conn.Subscribe(natsEventPrefix+topic, func(msg *nats.Msg) {
		var event Event
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			slog.Warn("Dropping malformed event", "topic", topic, "error", err)
			return
		}
		metrics.EventsDelivered.WithLabelValues(event.Type).Inc()
		defer func() {
			if r := recover(); r != nil {
				metrics.SubscriberErrors.WithLabelValues(event.Type, name).Inc()
				slog.Error("Subscriber callback panicked",
					"topic", topic, "subscriber", name, "panic", r)
			}
		}()
		callback(context.Background(), &event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}
	return &natsSub{sub: sub}, nil
}

// RegisterHandler serves requests addressed to agentID via NATS reply.
func (b *NATSBus) RegisterHandler(agentID string, handler RequestHandler) error {
	_, err := b.conn.Subscribe(natsAgentPrefix+agentID, func(msg *nats.Msg) {
		var req Request
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			b.reply(msg, &Response{Error: fmt.Sprintf("malformed request: %v", err)})
			return
		}

		resp := func() (resp *Response) {
			defer func() {
				if r := recover(); r != nil {
					resp = &Response{
						CorrelationID: req.CorrelationID,
						Error:         fmt.Sprintf("handler panicked: %v", r),
					}
				}
			}()
			out, err := handler(context.Background(), &req)
			if err != nil {
				return &Response{CorrelationID: req.CorrelationID, Error: err.Error()}
			}
			if out == nil {
				out = &Response{}
			}
			out.CorrelationID = req.CorrelationID
			return out
		}()

		b.reply(msg, resp)
	})
	if err != nil {
		return fmt.Errorf("failed to register handler for %s: %w", agentID, err)
	}
	return nil
}

func (b *NATSBus) reply(msg *nats.Msg, resp *Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error("Failed to encode response", "error", err)
		return
	}
	if err := msg.Respond(data); err != nil {
		slog.Warn("Failed to send reply", "error", err)
	}
}

// Request sends a correlated request over NATS request/reply.
func (b *NATSBus) Request(ctx context.Context, req *Request, timeout time.Duration) (*Response, error) {
	if req.CorrelationID == "" {
		req.CorrelationID = uuid.New().String()
	}
	if req.SentAt.IsZero() {
		req.SentAt = time.Now()
	}

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	metrics.AgentRequestsActive.WithLabelValues(req.SourceAgent, req.TargetAgent).Inc()
	defer metrics.AgentRequestsActive.WithLabelValues(req.SourceAgent, req.TargetAgent).Dec()
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	msg, err := b.conn.RequestWithContext(ctx, natsAgentPrefix+req.TargetAgent, data)
	if err != nil {
		switch {
		case ctx.Err() == context.DeadlineExceeded:
			metrics.AgentRequestTimeouts.WithLabelValues(req.SourceAgent, req.TargetAgent).Inc()
			return nil, fmt.Errorf("%w: %s -> %s after %s",
				ErrRequestTimeout, req.SourceAgent, req.TargetAgent, timeout)
		case err == nats.ErrNoResponders:
			return nil, fmt.Errorf("%w: no responders for %s", ErrTargetUnreachable, req.TargetAgent)
		default:
			return nil, fmt.Errorf("%w: %v", ErrTargetUnreachable, err)
		}
	}

	var resp Response
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	metrics.AgentRequestLatency.WithLabelValues(req.SourceAgent, req.TargetAgent, req.Type).
		Observe(time.Since(start).Seconds())

	if resp.Error != "" {
		return &resp, remoteError(resp.Error)
	}
	return &resp, nil
}

// Close drains and closes the NATS connection.
func (b *NATSBus) Close() error {
	if err := b.conn.Drain(); err != nil {
		b.conn.Close()
		return err
	}
	return nil
}

// NewFromEnv builds a bus from EVENT_BUS_URL. Empty selects in-process;
// nats:// selects NATS. The registry backs the in-process HTTP fallback.
func NewFromEnv(busURL string, reg registry.Registry) (Bus, error) {
	if busURL == "" {
		slog.Info("Event bus: in-process")
		return NewInProcessBus(reg), nil
	}
	slog.Info("Event bus: NATS", "url", busURL)
	return NewNATSBus(busURL)
}
