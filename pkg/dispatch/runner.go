// Package dispatch runs a named specialist against a sub-task: acquire the
// task's resource locks, resolve its tool set, issue the bus request, retry
// transient failures, and always release the locks on exit.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/conductorhq/conductor/pkg/bus"
	"github.com/conductorhq/conductor/pkg/locks"
	"github.com/conductorhq/conductor/pkg/mcp"
)

// ErrAgentFailure is returned when a specialist call fails after the retry
// budget is exhausted, or the target is unreachable.
var ErrAgentFailure = errors.New("agent failure")

// Locker acquires a set of resource locks and returns a release closure.
type Locker interface {
	AcquireMany(ctx context.Context, resourceIDs []string, agentID string, lease, waitTimeout time.Duration, opts locks.AcquireOptions) (func(), error)
}

// Requester is the bus request surface the runner needs.
type Requester interface {
	Request(ctx context.Context, req *bus.Request, timeout time.Duration) (*bus.Response, error)
}

// Task describes one specialist invocation.
type Task struct {
	// AgentID is the target specialist.
	AgentID string
	// RequestType is the bus request type the specialist serves.
	RequestType string
	// Payload is the rendered task payload.
	Payload map[string]any
	// Description drives keyword-based tool selection.
	Description string
	// Resources are lock resource ids held for the duration of the call.
	Resources []string
	// ToolStrategy overrides the default progressive tool selection.
	ToolStrategy mcp.Strategy
	// Timeout overrides the default request timeout when positive.
	Timeout time.Duration
}

// Result is the specialist's response payload plus the tool set it was
// offered.
type Result struct {
	Payload map[string]any
	Tools   []string
}

// Options tunes the runner.
type Options struct {
	// SourceAgent identifies the caller on bus requests.
	SourceAgent string
	// Attempts bounds tries per call (initial attempt included).
	Attempts uint64
	// BaseDelay seeds the exponential backoff between attempts.
	BaseDelay time.Duration
	// RequestTimeout is the default per-attempt deadline.
	RequestTimeout time.Duration
	// LockLease and LockWait bound resource lock acquisition.
	LockLease time.Duration
	LockWait  time.Duration
}

// Runner executes specialist tasks.
type Runner struct {
	bus      Requester
	locker   Locker
	selector *mcp.Selector
	catalog  *mcp.Catalog
	opts     Options
}

// NewRunner creates a runner. selector and catalog may be nil when tool
// selection is not wanted.
func NewRunner(b Requester, locker Locker, selector *mcp.Selector, catalog *mcp.Catalog, opts Options) *Runner {
	if opts.SourceAgent == "" {
		opts.SourceAgent = "orchestrator"
	}
	if opts.Attempts == 0 {
		opts.Attempts = 3
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = 500 * time.Millisecond
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	if opts.LockLease <= 0 {
		opts.LockLease = 5 * time.Minute
	}
	if opts.LockWait <= 0 {
		opts.LockWait = 5 * time.Minute
	}
	return &Runner{bus: b, locker: locker, selector: selector, catalog: catalog, opts: opts}
}

// Run executes the task. Lock acquisition failures surface unchanged so the
// caller can distinguish wait_timeout from agent failure; request failures
// after the retry budget surface as ErrAgentFailure.
func (r *Runner) Run(ctx context.Context, task Task) (*Result, error) {
	if task.AgentID == "" {
		return nil, fmt.Errorf("%w: task has no agent id", ErrAgentFailure)
	}

	if len(task.Resources) > 0 {
		release, err := r.locker.AcquireMany(ctx, task.Resources, r.opts.SourceAgent,
			r.opts.LockLease, r.opts.LockWait, locks.AcquireOptions{
				Reason: "dispatch:" + task.AgentID,
			})
		if err != nil {
			return nil, err
		}
		defer release()
	}

	tools := r.toolsFor(task)
	payload := task.Payload
	if len(tools) > 0 {
		payload = make(map[string]any, len(task.Payload)+1)
		for k, v := range task.Payload {
			payload[k] = v
		}
		payload["available_tools"] = tools
	}

	timeout := task.Timeout
	if timeout <= 0 {
		timeout = r.opts.RequestTimeout
	}

	resp, err := r.requestWithRetry(ctx, &bus.Request{
		CorrelationID: uuid.New().String(),
		SourceAgent:   r.opts.SourceAgent,
		TargetAgent:   task.AgentID,
		Type:          task.RequestType,
		Payload:       payload,
		SentAt:        time.Now(),
	}, timeout)
	if err != nil {
		return nil, err
	}

	return &Result{Payload: resp.Payload, Tools: tools}, nil
}

// toolsFor resolves the qualified tool names offered to the specialist.
func (r *Runner) toolsFor(task Task) []string {
	if r.selector == nil || r.catalog == nil {
		return nil
	}
	strategy := task.ToolStrategy
	if strategy == "" {
		strategy = mcp.StrategyProgressive
	}
	selected := r.selector.Select(task.Description, task.AgentID, strategy, r.catalog)
	names := make([]string, len(selected))
	for i, t := range selected {
		names[i] = t.QualifiedName()
	}
	return names
}

// requestWithRetry retries timeouts and remote errors with exponential
// backoff. Unreachable targets fail immediately.
func (r *Runner) requestWithRetry(ctx context.Context, req *bus.Request, timeout time.Duration) (*bus.Response, error) {
	var resp *bus.Response

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.opts.BaseDelay
	policy.RandomizationFactor = 0.5

	attempt := 0
	operation := func() error {
		attempt++
		var err error
		resp, err = r.bus.Request(ctx, req, timeout)
		if err == nil {
			return nil
		}
		if errors.Is(err, bus.ErrRequestTimeout) || errors.Is(err, bus.ErrRemoteError) {
			slog.Warn("Specialist request failed, retrying",
				"target", req.TargetAgent, "type", req.Type,
				"attempt", attempt, "error", err)
			return err
		}
		return backoff.Permanent(err)
	}

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, r.opts.Attempts-1), ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAgentFailure, req.TargetAgent, err)
	}
	return resp, nil
}
