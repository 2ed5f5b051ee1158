package bus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/conductorhq/conductor/pkg/models"
	"github.com/conductorhq/conductor/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInProcessBus_PublishSubscribe(t *testing.T) {
	b := NewInProcessBus(nil)
	defer func() { _ = b.Close() }()
	ctx := context.Background()

	t.Run("delivers to all subscribers in order", func(t *testing.T) {
		var mu sync.Mutex
		received := map[string][]string{}
		done := make(chan struct{}, 2)

		record := func(name string) EventCallback {
			return func(_ context.Context, e *Event) {
				mu.Lock()
				received[name] = append(received[name], e.Type)
				if len(received[name]) == 3 {
					done <- struct{}{}
				}
				mu.Unlock()
			}
		}

		sub1, err := b.Subscribe("workflow", "recorder-1", record("one"))
		require.NoError(t, err)
		defer sub1.Unsubscribe()
		sub2, err := b.Subscribe("workflow", "recorder-2", record("two"))
		require.NoError(t, err)
		defer sub2.Unsubscribe()

		for _, typ := range []string{"step_started", "step_completed", "done"} {
			require.NoError(t, b.Publish(ctx, "workflow", &Event{Type: typ, SourceAgent: "engine"}))
		}

		for i := 0; i < 2; i++ {
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("subscribers did not receive all events")
			}
		}

		mu.Lock()
		defer mu.Unlock()
		want := []string{"step_started", "step_completed", "done"}
		assert.Equal(t, want, received["one"])
		assert.Equal(t, want, received["two"])
	})

	t.Run("no subscribers is a no-op", func(t *testing.T) {
		assert.NoError(t, b.Publish(ctx, "empty-topic", &Event{Type: "x"}))
	})

	t.Run("unsubscribed callback stops receiving", func(t *testing.T) {
		got := make(chan *Event, 1)
		sub, err := b.Subscribe("t", "s", func(_ context.Context, e *Event) { got <- e })
		require.NoError(t, err)
		sub.Unsubscribe()

		require.NoError(t, b.Publish(ctx, "t", &Event{Type: "after"}))
		select {
		case <-got:
			t.Fatal("received event after unsubscribe")
		case <-time.After(100 * time.Millisecond):
		}
	})
}

func TestInProcessBus_ConcurrentPublishersDropSafely(t *testing.T) {
	b := NewInProcessBus(nil)
	defer func() { _ = b.Close() }()
	ctx := context.Background()

	block := make(chan struct{})
	sub, err := b.Subscribe("t", "stuck", func(_ context.Context, _ *Event) { <-block })
	require.NoError(t, err)
	defer sub.Unsubscribe()
	defer close(block)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < subscriberBuffer; j++ {
				_ = b.Publish(ctx, "t", &Event{Type: "flood", SourceAgent: "flooder"})
			}
		}()
	}
	wg.Wait()

	// The buffer holds subscriberBuffer events plus the one stuck in the
	// callback; everything else is dropped, counted once each.
	dropped := sub.(*inProcessSub).dropped.Load()
	assert.GreaterOrEqual(t, dropped, int64(3*subscriberBuffer-1))
}

func TestInProcessBus_PanicIsolation(t *testing.T) {
	b := NewInProcessBus(nil)
	defer func() { _ = b.Close() }()
	ctx := context.Background()

	received := make(chan string, 4)

	sub1, err := b.Subscribe("t", "panicky", func(_ context.Context, e *Event) {
		panic("boom")
	})
	require.NoError(t, err)
	defer sub1.Unsubscribe()

	sub2, err := b.Subscribe("t", "steady", func(_ context.Context, e *Event) {
		received <- e.Type
	})
	require.NoError(t, err)
	defer sub2.Unsubscribe()

	require.NoError(t, b.Publish(ctx, "t", &Event{Type: "first"}))
	require.NoError(t, b.Publish(ctx, "t", &Event{Type: "second"}))

	// The panicking subscriber never breaks the healthy one, and keeps
	// consuming subsequent events itself.
	for _, want := range []string{"first", "second"} {
		select {
		case got := <-received:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatal("healthy subscriber starved by panicking one")
		}
	}
}

func TestInProcessBus_RequestLocal(t *testing.T) {
	b := NewInProcessBus(nil)
	defer func() { _ = b.Close() }()
	ctx := context.Background()

	t.Run("round trip with correlation", func(t *testing.T) {
		require.NoError(t, b.RegisterHandler("scaler", func(_ context.Context, req *Request) (*Response, error) {
			assert.Equal(t, "scale_deployment", req.Type)
			assert.NotEmpty(t, req.CorrelationID)
			return &Response{Payload: map[string]any{"replicas": float64(5)}}, nil
		}))

		resp, err := b.Request(ctx, &Request{
			SourceAgent: "orchestrator",
			TargetAgent: "scaler",
			Type:        "scale_deployment",
			Payload:     map[string]any{"deployment": "api"},
		}, time.Second)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.CorrelationID)
		assert.Equal(t, float64(5), resp.Payload["replicas"])
	})

	t.Run("handler error maps to remote error", func(t *testing.T) {
		require.NoError(t, b.RegisterHandler("broken", func(_ context.Context, _ *Request) (*Response, error) {
			return nil, assert.AnError
		}))

		_, err := b.Request(ctx, &Request{TargetAgent: "broken", Type: "x"}, time.Second)
		assert.ErrorIs(t, err, ErrRemoteError)
	})

	t.Run("handler panic maps to remote error", func(t *testing.T) {
		require.NoError(t, b.RegisterHandler("bomb", func(_ context.Context, _ *Request) (*Response, error) {
			panic("kaboom")
		}))

		_, err := b.Request(ctx, &Request{TargetAgent: "bomb", Type: "x"}, time.Second)
		assert.ErrorIs(t, err, ErrRemoteError)
	})

	t.Run("slow handler times out", func(t *testing.T) {
		require.NoError(t, b.RegisterHandler("slow", func(ctx context.Context, _ *Request) (*Response, error) {
			select {
			case <-time.After(5 * time.Second):
			case <-ctx.Done():
			}
			return &Response{}, nil
		}))

		_, err := b.Request(ctx, &Request{TargetAgent: "slow", Type: "x"}, 100*time.Millisecond)
		assert.ErrorIs(t, err, ErrRequestTimeout)
	})

	t.Run("unknown target without registry is unreachable", func(t *testing.T) {
		_, err := b.Request(ctx, &Request{TargetAgent: "ghost", Type: "x"}, time.Second)
		assert.ErrorIs(t, err, ErrTargetUnreachable)
	})
}

func TestInProcessBus_RequestRemote(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/agent-request", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"correlation_id":"remote","payload":{"ok":true}}`))
	}))
	defer server.Close()

	reg := registry.NewInMemoryRegistry(registry.DefaultHealthPolicy())
	require.NoError(t, reg.Register(ctx, &models.AgentProfile{
		ID:      "remote-agent",
		BaseURL: server.URL,
	}))
	require.NoError(t, reg.Heartbeat(ctx, "remote-agent"))

	b := NewInProcessBus(reg)
	defer func() { _ = b.Close() }()

	t.Run("falls back to HTTP for unregistered handlers", func(t *testing.T) {
		resp, err := b.Request(ctx, &Request{
			SourceAgent: "orchestrator",
			TargetAgent: "remote-agent",
			Type:        "ping",
		}, 2*time.Second)
		require.NoError(t, err)
		assert.Equal(t, true, resp.Payload["ok"])
	})

	t.Run("unregistered target is unreachable", func(t *testing.T) {
		_, err := b.Request(ctx, &Request{TargetAgent: "nobody", Type: "ping"}, time.Second)
		assert.ErrorIs(t, err, ErrTargetUnreachable)
	})
}
