package events

import (
	"context"

	"github.com/conductorhq/conductor/pkg/services"
)

// EventServiceAdapter exposes services.EventService as a CatchupQuerier.
type EventServiceAdapter struct {
	eventService *services.EventService
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es *services.EventService) *EventServiceAdapter {
	return &EventServiceAdapter{eventService: es}
}

// GetCatchupEvents returns persisted frames on a channel after sinceID.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error) {
	rows, err := a.eventService.EventsAfter(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, len(rows))
	for i, row := range rows {
		result[i] = CatchupEvent{ID: row.ID, Payload: row.Payload}
	}
	return result, nil
}
