package bus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/conductorhq/conductor/pkg/metrics"
	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/registry"
	"github.com/google/uuid"
)

const subscriberBuffer = 256

// InProcessBus is the default single-process bus. Each subscriber owns a
// buffered channel drained by its own goroutine, so per-source ordering is
// preserved and a stuck callback only affects its own subscription.
type InProcessBus struct {
	mu          sync.RWMutex
	subscribers map[string][]*inProcessSub
	handlers    map[string]RequestHandler
	closed      bool

	// Remote fallback for targets without a local handler.
	registry   registry.Registry
	httpClient *http.Client
}

type inProcessSub struct {
	bus     *InProcessBus
	topic   string
	name    string
	ch      chan *Event
	done    chan struct{}

	// Incremented by concurrent Publish callers under the read lock.
	dropped atomic.Int64
}

// NewInProcessBus creates an in-process bus. The registry may be nil when
// all request targets register local handlers.
func NewInProcessBus(reg registry.Registry) *InProcessBus {
	return &InProcessBus{
		subscribers: make(map[string][]*inProcessSub),
		handlers:    make(map[string]RequestHandler),
		registry:    reg,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Publish delivers the event to every subscriber of the topic. Full
// subscriber buffers drop the event for that subscriber only.
func (b *InProcessBus) Publish(_ context.Context, topic string, event *Event) error {
	if event.EmittedAt.IsZero() {
		event.EmittedAt = time.Now()
	}
	metrics.EventsEmitted.WithLabelValues(event.Type, event.SourceAgent).Inc()

	b.mu.RLock()
	subs := make([]*inProcessSub, len(b.subscribers[topic]))
	copy(subs, b.subscribers[topic])
	b.mu.RUnlock()

	for _, sub := range subs {
		select {
		case sub.ch <- event:
			metrics.EventsDelivered.WithLabelValues(event.Type).Inc()
		default:
			sub.dropped.Add(1)
			slog.Warn("Event dropped: subscriber buffer full",
				"topic", topic, "subscriber", sub.name, "event_type", event.Type)
		}
	}
	return nil
}

// Subscribe attaches a callback to a topic.
func (b *InProcessBus) Subscribe(topic, name string, callback EventCallback) (Subscription, error) {
	sub := &inProcessSub{
		bus:   b,
		topic: topic,
		name:  name,
		ch:    make(chan *Event, subscriberBuffer),
		done:  make(chan struct{}),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, fmt.Errorf("bus is closed")
	}
	b.subscribers[topic] = append(b.subscribers[topic], sub)
	b.mu.Unlock()

	go sub.drain(callback)
	return sub, nil
}

func (s *inProcessSub) drain(callback EventCallback) {
	for {
		select {
		case <-s.done:
			return
		case event := <-s.ch:
			s.invoke(callback, event)
		}
	}
}

func (s *inProcessSub) invoke(callback EventCallback, event *Event) {
	defer func() {
		if r := recover(); r != nil {
			metrics.SubscriberErrors.WithLabelValues(event.Type, s.name).Inc()
			slog.Error("Subscriber callback panicked",
				"topic", s.topic, "subscriber", s.name, "panic", r)
		}
	}()
	callback(context.Background(), event)
}

// Unsubscribe detaches the subscription and stops its drain goroutine.
func (s *inProcessSub) Unsubscribe() {
	b := s.bus
	b.mu.Lock()
	subs := b.subscribers[s.topic]
	for i, other := range subs {
		if other == s {
			b.subscribers[s.topic] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	b.mu.Unlock()
	close(s.done)
}

// RegisterHandler serves requests addressed to agentID in-process.
func (b *InProcessBus) RegisterHandler(agentID string, handler RequestHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[agentID] = handler
	return nil
}

// Request sends a correlated request. A locally registered handler is called
// directly; otherwise the target's endpoint is resolved through the registry
// and called over HTTP.
func (b *InProcessBus) Request(ctx context.Context, req *Request, timeout time.Duration) (*Response, error) {
	if req.CorrelationID == "" {
		req.CorrelationID = uuid.New().String()
	}
	if req.SentAt.IsZero() {
		req.SentAt = time.Now()
	}

	metrics.AgentRequestsActive.WithLabelValues(req.SourceAgent, req.TargetAgent).Inc()
	defer metrics.AgentRequestsActive.WithLabelValues(req.SourceAgent, req.TargetAgent).Dec()
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := b.dispatch(ctx, req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			metrics.AgentRequestTimeouts.WithLabelValues(req.SourceAgent, req.TargetAgent).Inc()
			return nil, fmt.Errorf("%w: %s -> %s after %s",
				ErrRequestTimeout, req.SourceAgent, req.TargetAgent, timeout)
		}
		return nil, err
	}

	metrics.AgentRequestLatency.WithLabelValues(req.SourceAgent, req.TargetAgent, req.Type).
		Observe(time.Since(start).Seconds())

	if resp.Error != "" {
		return resp, remoteError(resp.Error)
	}
	resp.CorrelationID = req.CorrelationID
	return resp, nil
}

func (b *InProcessBus) dispatch(ctx context.Context, req *Request) (*Response, error) {
	b.mu.RLock()
	handler, ok := b.handlers[req.TargetAgent]
	b.mu.RUnlock()

	if ok {
		return b.callLocal(ctx, handler, req)
	}
	return b.callRemote(ctx, req)
}

// callLocal runs the handler on its own goroutine so the request deadline
// applies even to a handler that ignores its context.
func (b *InProcessBus) callLocal(ctx context.Context, handler RequestHandler, req *Request) (*Response, error) {
	type result struct {
		resp *Response
		err  error
	}
	resultCh := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resultCh <- result{err: remoteError(fmt.Sprintf("handler panicked: %v", r))}
			}
		}()
		resp, err := handler(ctx, req)
		resultCh <- result{resp: resp, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-resultCh:
		if r.err != nil {
			return nil, remoteError(r.err.Error())
		}
		if r.resp == nil {
			r.resp = &Response{}
		}
		return r.resp, nil
	}
}

func (b *InProcessBus) callRemote(ctx context.Context, req *Request) (*Response, error) {
	if b.registry == nil {
		return nil, fmt.Errorf("%w: no handler for %s", ErrTargetUnreachable, req.TargetAgent)
	}

	profile, err := b.registry.Get(ctx, req.TargetAgent)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not registered", ErrTargetUnreachable, req.TargetAgent)
	}
	if profile.Status == models.AgentGone {
		return nil, fmt.Errorf("%w: %s is gone", ErrTargetUnreachable, req.TargetAgent)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		profile.BaseURL+"/agent-request", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := b.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrTargetUnreachable, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, remoteError(fmt.Sprintf("status %d: %s", httpResp.StatusCode, string(data)))
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}

// Close detaches all subscribers and handlers.
func (b *InProcessBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for topic, subs := range b.subscribers {
		for _, sub := range subs {
			close(sub.done)
		}
		delete(b.subscribers, topic)
	}
	b.handlers = make(map[string]RequestHandler)
	return nil
}
