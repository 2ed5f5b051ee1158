// Package cleanup enforces data retention: stream event rows past their TTL
// and terminal workflows past the retention window are removed on a periodic
// schedule.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/conductorhq/conductor/pkg/config"
	"github.com/conductorhq/conductor/pkg/services"
)

// Service runs the retention loop. All operations are idempotent and safe to
// run from multiple pods at once.
type Service struct {
	config    *config.RetentionConfig
	workflows *services.WorkflowService
	events    *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	workflows *services.WorkflowService,
	events *services.EventService,
) *Service {
	return &Service{
		config:    cfg,
		workflows: workflows,
		events:    events,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"workflow_retention", s.config.WorkflowRetention,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.cleanupOldEvents(ctx)
	s.purgeTerminalWorkflows(ctx)
}

func (s *Service) cleanupOldEvents(ctx context.Context) {
	count, err := s.events.CleanupOldEvents(ctx, s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: removed expired events", "count", count)
	}
}

func (s *Service) purgeTerminalWorkflows(ctx context.Context) {
	if s.config.WorkflowRetention <= 0 {
		return
	}
	count, err := s.workflows.PurgeTerminal(ctx, s.config.WorkflowRetention)
	if err != nil {
		slog.Error("Retention: workflow purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged terminal workflows", "count", count)
	}
}
