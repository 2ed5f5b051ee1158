package services

import (
	"context"
	"fmt"
	"time"

	"github.com/conductorhq/conductor/ent"
	entevent "github.com/conductorhq/conductor/ent/event"
)

// EventService reads persisted stream events for client catchup after an
// SSE reconnect, and prunes stale rows.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// EventsAfter returns events on a channel with id greater than afterID,
// oldest first, capped at limit.
func (s *EventService) EventsAfter(ctx context.Context, channel string, afterID int64, limit int) ([]*ent.Event, error) {
	if limit <= 0 {
		limit = 200
	}
	events, err := s.client.Event.Query().
		Where(
			entevent.ChannelEQ(channel),
			entevent.IDGT(afterID),
		).
		Order(ent.Asc(entevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}
	return events, nil
}

// CleanupOldEvents deletes persisted events older than ttl. Safe to run from
// multiple pods.
func (s *EventService) CleanupOldEvents(ctx context.Context, ttl time.Duration) (int, error) {
	n, err := s.client.Event.Delete().
		Where(entevent.CreatedAtLT(time.Now().Add(-ttl))).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup events: %w", err)
	}
	return n, nil
}
