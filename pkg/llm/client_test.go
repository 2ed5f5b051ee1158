package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider scripts a sequence of outcomes for Complete/Stream calls.
type fakeProvider struct {
	name     string
	outcomes []error
	calls    int
	requests []Request
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) next(req Request) error {
	p.requests = append(p.requests, req)
	idx := p.calls
	p.calls++
	if idx >= len(p.outcomes) {
		return nil
	}
	return p.outcomes[idx]
}

func (p *fakeProvider) Complete(_ context.Context, req Request) (*Completion, error) {
	if err := p.next(req); err != nil {
		return nil, err
	}
	return &Completion{Content: "ok from " + p.name, Provider: p.name, Model: req.Model}, nil
}

func (p *fakeProvider) Stream(_ context.Context, req Request) (<-chan Chunk, error) {
	if err := p.next(req); err != nil {
		return nil, err
	}
	ch := make(chan Chunk, 2)
	ch <- &TextChunk{Content: "ok from " + p.name}
	ch <- &UsageChunk{Usage: Usage{TotalTokens: 10}}
	close(ch)
	return ch, nil
}

func perr(provider string, kind ErrorKind) error {
	return &ProviderError{Provider: provider, Kind: kind, Err: errors.New(string(kind))}
}

func newTestClient(t *testing.T, providers map[string]Provider, chain []ChainEntry) *Client {
	t.Helper()
	c, err := NewClient(providers, chain, ClientOptions{
		RateLimitRetries:   2,
		RateLimitBaseDelay: time.Millisecond,
	})
	require.NoError(t, err)
	return c
}

func TestClient_Complete_Failover(t *testing.T) {
	ctx := context.Background()

	t.Run("first provider succeeds", func(t *testing.T) {
		primary := &fakeProvider{name: "openai"}
		backup := &fakeProvider{name: "anthropic"}
		c := newTestClient(t,
			map[string]Provider{"openai": primary, "anthropic": backup},
			[]ChainEntry{{"openai", "gpt-4o"}, {"anthropic", "claude-sonnet"}})

		comp, err := c.Complete(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
		require.NoError(t, err)
		assert.Equal(t, "openai", comp.Provider)
		assert.Equal(t, "gpt-4o", comp.Model)
		assert.Zero(t, backup.calls)
	})

	t.Run("provider error advances the chain", func(t *testing.T) {
		primary := &fakeProvider{name: "openai", outcomes: []error{perr("openai", ErrKindProvider)}}
		backup := &fakeProvider{name: "anthropic"}
		c := newTestClient(t,
			map[string]Provider{"openai": primary, "anthropic": backup},
			[]ChainEntry{{"openai", "gpt-4o"}, {"anthropic", "claude-sonnet"}})

		comp, err := c.Complete(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
		require.NoError(t, err)
		assert.Equal(t, "anthropic", comp.Provider)
		assert.Equal(t, "claude-sonnet", comp.Model)
	})

	t.Run("exhausted chain fails", func(t *testing.T) {
		primary := &fakeProvider{name: "openai", outcomes: []error{perr("openai", ErrKindProvider)}}
		backup := &fakeProvider{name: "anthropic", outcomes: []error{perr("anthropic", ErrKindTimeout)}}
		c := newTestClient(t,
			map[string]Provider{"openai": primary, "anthropic": backup},
			[]ChainEntry{{"openai", "gpt-4o"}, {"anthropic", "claude-sonnet"}})

		_, err := c.Complete(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
		assert.ErrorIs(t, err, ErrChainExhausted)
	})

	t.Run("chain referencing unknown provider is rejected", func(t *testing.T) {
		_, err := NewClient(map[string]Provider{}, []ChainEntry{{"ghost", "m"}}, ClientOptions{})
		assert.Error(t, err)
	})
}

func TestClient_Complete_RateLimited(t *testing.T) {
	ctx := context.Background()

	t.Run("retries in place and succeeds", func(t *testing.T) {
		p := &fakeProvider{name: "openai", outcomes: []error{
			perr("openai", ErrKindRateLimited),
			perr("openai", ErrKindRateLimited),
		}}
		c := newTestClient(t, map[string]Provider{"openai": p}, []ChainEntry{{"openai", "gpt-4o"}})

		comp, err := c.Complete(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
		require.NoError(t, err)
		assert.Equal(t, "openai", comp.Provider)
		assert.Equal(t, 3, p.calls)
	})

	t.Run("persistent rate limiting advances the chain", func(t *testing.T) {
		p := &fakeProvider{name: "openai", outcomes: []error{
			perr("openai", ErrKindRateLimited),
			perr("openai", ErrKindRateLimited),
			perr("openai", ErrKindRateLimited),
			perr("openai", ErrKindRateLimited),
		}}
		backup := &fakeProvider{name: "anthropic"}
		c := newTestClient(t,
			map[string]Provider{"openai": p, "anthropic": backup},
			[]ChainEntry{{"openai", "gpt-4o"}, {"anthropic", "claude-sonnet"}})

		comp, err := c.Complete(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
		require.NoError(t, err)
		assert.Equal(t, "anthropic", comp.Provider)
		// Initial attempt plus two retries before giving up on the entry.
		assert.Equal(t, 3, p.calls)
	})
}

func TestClient_Complete_ContextOverflow(t *testing.T) {
	ctx := context.Background()

	t.Run("truncates oldest non-system turn and retries once", func(t *testing.T) {
		p := &fakeProvider{name: "openai", outcomes: []error{perr("openai", ErrKindContextOverflow)}}
		c := newTestClient(t, map[string]Provider{"openai": p}, []ChainEntry{{"openai", "gpt-4o"}})

		comp, err := c.Complete(ctx, Request{Messages: []Message{
			{Role: RoleSystem, Content: "sys"},
			{Role: RoleUser, Content: "oldest"},
			{Role: RoleAssistant, Content: "reply"},
			{Role: RoleUser, Content: "newest"},
		}})
		require.NoError(t, err)
		assert.Equal(t, "openai", comp.Provider)
		require.Equal(t, 2, p.calls)

		retried := p.requests[1].Messages
		require.Len(t, retried, 3)
		assert.Equal(t, RoleSystem, retried[0].Role)
		assert.Equal(t, "reply", retried[1].Content)
		assert.Equal(t, "newest", retried[2].Content)
	})

	t.Run("second overflow advances the chain", func(t *testing.T) {
		p := &fakeProvider{name: "openai", outcomes: []error{
			perr("openai", ErrKindContextOverflow),
			perr("openai", ErrKindContextOverflow),
		}}
		backup := &fakeProvider{name: "anthropic"}
		c := newTestClient(t,
			map[string]Provider{"openai": p, "anthropic": backup},
			[]ChainEntry{{"openai", "gpt-4o"}, {"anthropic", "claude-sonnet"}})

		comp, err := c.Complete(ctx, Request{Messages: []Message{
			{Role: RoleSystem, Content: "sys"},
			{Role: RoleUser, Content: "only"},
		}})
		require.NoError(t, err)
		assert.Equal(t, "anthropic", comp.Provider)
	})

	t.Run("nothing left to truncate fails the entry", func(t *testing.T) {
		p := &fakeProvider{name: "openai", outcomes: []error{perr("openai", ErrKindContextOverflow)}}
		c := newTestClient(t, map[string]Provider{"openai": p}, []ChainEntry{{"openai", "gpt-4o"}})

		_, err := c.Complete(ctx, Request{Messages: []Message{{Role: RoleSystem, Content: "sys"}}})
		assert.ErrorIs(t, err, ErrChainExhausted)
	})
}

func TestClient_Stream(t *testing.T) {
	ctx := context.Background()

	t.Run("streams from first healthy provider", func(t *testing.T) {
		primary := &fakeProvider{name: "openai", outcomes: []error{perr("openai", ErrKindProvider)}}
		backup := &fakeProvider{name: "anthropic"}
		c := newTestClient(t,
			map[string]Provider{"openai": primary, "anthropic": backup},
			[]ChainEntry{{"openai", "gpt-4o"}, {"anthropic", "claude-sonnet"}})

		ch, err := c.Stream(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
		require.NoError(t, err)

		var text string
		for chunk := range ch {
			if tc, ok := chunk.(*TextChunk); ok {
				text += tc.Content
			}
		}
		assert.Equal(t, "ok from anthropic", text)
	})
}

func TestTruncateOldest(t *testing.T) {
	req := Request{Messages: []Message{
		{Role: RoleSystem, Content: "a"},
		{Role: RoleSystem, Content: "b"},
	}}
	_, ok := truncateOldest(req)
	assert.False(t, ok)

	req.Messages = append(req.Messages, Message{Role: RoleUser, Content: "c"})
	out, ok := truncateOldest(req)
	require.True(t, ok)
	assert.Len(t, out.Messages, 2)
	// Original request untouched.
	assert.Len(t, req.Messages, 3)
}
