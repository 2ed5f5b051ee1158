package workflow

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// OrphanStore claims workflows whose heartbeat went stale, fencing them to
// this pod with a version-guarded write.
type OrphanStore interface {
	ClaimOrphans(ctx context.Context, podID string, staleAfter time.Duration) ([]string, error)
}

// Recovery periodically scans for orphaned workflows, running workflows
// whose heartbeat went stale because their pod died, and re-adopts them.
// Each claimed workflow resumes from its checkpoint: the step that was in
// flight when the pod died runs again.
type Recovery struct {
	store      OrphanStore
	engine     *Engine
	podID      string
	interval   time.Duration
	staleAfter time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewRecovery creates a recovery scanner. podID may be empty, in which case
// an identity is derived from the environment.
func NewRecovery(store OrphanStore, engine *Engine, podID string, interval, staleAfter time.Duration) *Recovery {
	if podID == "" {
		podID = PodID()
	}
	return &Recovery{
		store:      store,
		engine:     engine,
		podID:      podID,
		interval:   interval,
		staleAfter: staleAfter,
	}
}

// PodID resolves this process's identity for orphan fencing: POD_ID, then
// HOSTNAME, then a random id.
func PodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "pod-" + uuid.NewString()[:8]
}

// Start launches the scan loop in the background.
func (r *Recovery) Start(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go r.run(ctx)

	slog.Info("Orphan recovery started",
		"pod_id", r.podID, "interval", r.interval, "stale_after", r.staleAfter)
}

// Stop signals the scan loop to exit and waits for it to finish. In-flight
// re-adopted workflows keep running on their own contexts.
func (r *Recovery) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	slog.Info("Orphan recovery stopped")
}

func (r *Recovery) run(ctx context.Context) {
	defer close(r.done)

	r.scan(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.scan(ctx)
		}
	}
}

func (r *Recovery) scan(ctx context.Context) {
	claimed, err := r.store.ClaimOrphans(ctx, r.podID, r.staleAfter)
	if err != nil {
		slog.Error("Orphan scan failed", "error", err)
		return
	}
	if len(claimed) == 0 {
		return
	}
	slog.Info("Claimed orphaned workflows", "pod_id", r.podID, "count", len(claimed))

	for _, id := range claimed {
		go func(workflowID string) {
			if _, err := r.engine.Advance(ctx, workflowID); err != nil {
				slog.Error("Failed to resume orphaned workflow",
					"workflow_id", workflowID, "error", err)
			}
		}(id)
	}
}
