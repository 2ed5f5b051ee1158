package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ChainEntry is one (provider, model) step of the failover chain.
type ChainEntry struct {
	Provider string `yaml:"provider" json:"provider"`
	Model    string `yaml:"model" json:"model"`
}

// Client is the failover LLM client. Each request walks the chain until a
// provider succeeds: rate limits retry in place with jittered backoff,
// context overflow truncates the oldest non-system turn and retries once,
// anything else advances to the next entry.
type Client struct {
	providers map[string]Provider
	chain     []ChainEntry

	rateLimitRetries   uint64
	rateLimitBaseDelay time.Duration
}

// ClientOptions tunes the failover behavior.
type ClientOptions struct {
	// RateLimitRetries bounds in-place retries on a rate-limited provider
	// before advancing the chain.
	RateLimitRetries uint64
	// RateLimitBaseDelay seeds the exponential backoff between retries.
	RateLimitBaseDelay time.Duration
}

// NewClient creates a failover client over the given providers.
func NewClient(providers map[string]Provider, chain []ChainEntry, opts ClientOptions) (*Client, error) {
	if len(chain) == 0 {
		return nil, fmt.Errorf("failover chain is empty")
	}
	for _, entry := range chain {
		if _, ok := providers[entry.Provider]; !ok {
			return nil, fmt.Errorf("chain references unknown provider %q", entry.Provider)
		}
	}
	if opts.RateLimitRetries == 0 {
		opts.RateLimitRetries = 3
	}
	if opts.RateLimitBaseDelay <= 0 {
		opts.RateLimitBaseDelay = time.Second
	}
	return &Client{
		providers:          providers,
		chain:              chain,
		rateLimitRetries:   opts.RateLimitRetries,
		rateLimitBaseDelay: opts.RateLimitBaseDelay,
	}, nil
}

// Complete runs the request through the failover chain.
func (c *Client) Complete(ctx context.Context, req Request) (*Completion, error) {
	var lastErr error
	for _, entry := range c.chain {
		provider := c.providers[entry.Provider]
		attempt := req
		attempt.Model = entry.Model

		comp, err := c.completeOne(ctx, provider, attempt)
		if err == nil {
			return comp, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("LLM provider failed, advancing chain",
			"provider", entry.Provider, "model", entry.Model,
			"kind", KindOf(err), "error", err)
	}
	return nil, fmt.Errorf("%w: %v", ErrChainExhausted, lastErr)
}

// Stream runs the request through the chain until a provider accepts the
// stream. Failures after streaming begins surface as ErrorChunk values.
func (c *Client) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	var lastErr error
	for _, entry := range c.chain {
		provider := c.providers[entry.Provider]
		attempt := req
		attempt.Model = entry.Model

		ch, err := c.streamOne(ctx, provider, attempt)
		if err == nil {
			return ch, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("LLM provider failed to open stream, advancing chain",
			"provider", entry.Provider, "model", entry.Model,
			"kind", KindOf(err), "error", err)
	}
	return nil, fmt.Errorf("%w: %v", ErrChainExhausted, lastErr)
}

// completeOne tries a single chain entry, applying the in-place recovery
// policies before giving up on it.
func (c *Client) completeOne(ctx context.Context, provider Provider, req Request) (*Completion, error) {
	comp, err := c.withRateLimitRetry(ctx, func() (*Completion, error) {
		return provider.Complete(ctx, req)
	})
	if err == nil {
		return comp, nil
	}

	if KindOf(err) == ErrKindContextOverflow {
		truncated, ok := truncateOldest(req)
		if !ok {
			return nil, err
		}
		slog.Info("Context overflow, retrying with truncated conversation",
			"provider", provider.Name(), "messages", len(truncated.Messages))
		return c.withRateLimitRetry(ctx, func() (*Completion, error) {
			return provider.Complete(ctx, truncated)
		})
	}
	return nil, err
}

func (c *Client) streamOne(ctx context.Context, provider Provider, req Request) (<-chan Chunk, error) {
	ch, err := provider.Stream(ctx, req)
	if err == nil {
		return ch, nil
	}

	switch KindOf(err) {
	case ErrKindRateLimited:
		var out <-chan Chunk
		_, retryErr := c.withRateLimitRetry(ctx, func() (*Completion, error) {
			var innerErr error
			out, innerErr = provider.Stream(ctx, req)
			return nil, innerErr
		})
		if retryErr != nil {
			return nil, retryErr
		}
		return out, nil
	case ErrKindContextOverflow:
		truncated, ok := truncateOldest(req)
		if !ok {
			return nil, err
		}
		return provider.Stream(ctx, truncated)
	default:
		return nil, err
	}
}

// withRateLimitRetry retries the call with exponential backoff and jitter
// while the provider reports rate limiting. Other errors abort immediately.
func (c *Client) withRateLimitRetry(ctx context.Context, call func() (*Completion, error)) (*Completion, error) {
	var comp *Completion

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.rateLimitBaseDelay
	policy.RandomizationFactor = 0.5

	operation := func() error {
		var err error
		comp, err = call()
		if err == nil {
			return nil
		}
		if KindOf(err) == ErrKindRateLimited {
			return err
		}
		return backoff.Permanent(err)
	}

	// backoff.Retry unwraps Permanent errors before returning them.
	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, c.rateLimitRetries), ctx))
	if err != nil {
		return nil, err
	}
	return comp, nil
}

// truncateOldest drops the oldest non-system message so the conversation
// fits the provider's context window. Returns false when nothing remains to
// drop.
func truncateOldest(req Request) (Request, bool) {
	for i, m := range req.Messages {
		if m.Role != RoleSystem {
			out := req
			out.Messages = make([]Message, 0, len(req.Messages)-1)
			out.Messages = append(out.Messages, req.Messages[:i]...)
			out.Messages = append(out.Messages, req.Messages[i+1:]...)
			return out, true
		}
	}
	return req, false
}
