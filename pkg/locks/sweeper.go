package locks

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper periodically releases expired locks and promotes waiters. Running
// it from multiple pods is safe: each sweep step is transactional, so a
// resource is released exactly once.
type Sweeper struct {
	manager  *Manager
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a sweeper over the given manager.
func NewSweeper(manager *Manager, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Sweeper{manager: manager, interval: interval}
}

// Start launches the background sweep loop.
func (s *Sweeper) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Lock sweeper started", "interval", s.interval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Lock sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	count, err := s.manager.SweepExpired(ctx)
	if err != nil {
		slog.Error("Lock sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Released expired locks", "count", count)
	}
}
