package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/conductorhq/conductor/pkg/models"
)

// TransitionFunc is invoked when an agent's health state changes between
// evaluator runs.
type TransitionFunc func(agentID string, from, to models.AgentStatus)

// Evaluator periodically walks the registry so health transitions are
// observed and announced even when nobody is querying. Reads already
// compute health on the fly; this loop exists for the notifications.
type Evaluator struct {
	registry     Registry
	interval     time.Duration
	onTransition TransitionFunc

	seen   map[string]models.AgentStatus
	cancel context.CancelFunc
	done   chan struct{}
}

// NewEvaluator creates a health evaluator.
func NewEvaluator(registry Registry, interval time.Duration, onTransition TransitionFunc) *Evaluator {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Evaluator{
		registry:     registry,
		interval:     interval,
		onTransition: onTransition,
		seen:         make(map[string]models.AgentStatus),
	}
}

// Start launches the background evaluation loop.
func (e *Evaluator) Start(ctx context.Context) {
	if e.cancel != nil {
		return
	}
	ctx, e.cancel = context.WithCancel(ctx)
	e.done = make(chan struct{})

	go e.run(ctx)

	slog.Info("Agent health evaluator started", "interval", e.interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (e *Evaluator) Stop() {
	if e.cancel == nil {
		return
	}
	e.cancel()
	<-e.done
	slog.Info("Agent health evaluator stopped")
}

func (e *Evaluator) run(ctx context.Context) {
	defer close(e.done)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.evaluate(ctx)
		}
	}
}

func (e *Evaluator) evaluate(ctx context.Context) {
	agents, err := e.registry.List(ctx)
	if err != nil {
		slog.Error("Health evaluation failed", "error", err)
		return
	}

	current := make(map[string]models.AgentStatus, len(agents))
	for _, a := range agents {
		current[a.ID] = a.Status
		prev, known := e.seen[a.ID]
		if known && prev != a.Status {
			slog.Info("Agent health transition",
				"agent_id", a.ID, "from", prev, "to", a.Status)
			if e.onTransition != nil {
				e.onTransition(a.ID, prev, a.Status)
			}
		}
	}
	e.seen = current
}
