package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/pkg/events"
	"github.com/conductorhq/conductor/pkg/services"
	"github.com/conductorhq/conductor/test/util"
)

// End-to-end path: publish → events table + pg_notify → LISTEN → stream.
func TestNotifyPipeline(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)

	eventService := services.NewEventService(entClient)
	manager := events.NewStreamManager(events.NewEventServiceAdapter(eventService))

	listener := events.NewNotifyListener(util.GetBaseConnectionString(t), manager)
	require.NoError(t, listener.Start(context.Background()))
	t.Cleanup(func() { listener.Stop(context.Background()) })
	manager.SetListener(listener)

	publisher := events.NewNotifyPublisher(db)
	channel := events.WorkflowChannel("11111111-2222-3333-4444-555555555555")

	stream, err := manager.Subscribe(t.Context(), channel, 0)
	require.NoError(t, err)
	defer stream.Close()

	frame := &events.StreamFrame{
		Type:       events.FrameStepStarted,
		WorkflowID: "11111111-2222-3333-4444-555555555555",
		StepID:     "code_review",
	}
	require.NoError(t, publisher.PublishFrame(t.Context(), channel, frame))

	select {
	case payload := <-stream.C():
		assert.Contains(t, string(payload), `"type":"step_started"`)
		assert.Contains(t, string(payload), `"db_event_id"`)
	case <-time.After(5 * time.Second):
		t.Fatal("notification not delivered")
	}

	// Transient content frames are broadcast but never persisted.
	require.NoError(t, publisher.PublishContent(t.Context(), channel, "token"))
	select {
	case payload := <-stream.C():
		assert.Contains(t, string(payload), `"content":"token"`)
	case <-time.After(5 * time.Second):
		t.Fatal("content frame not delivered")
	}

	rows, err := eventService.EventsAfter(t.Context(), channel, 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "step_started", rows[0].Payload["type"])
}

// A subscriber joining late replays persisted frames before live ones.
func TestNotifyPipeline_Catchup(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)

	eventService := services.NewEventService(entClient)
	manager := events.NewStreamManager(events.NewEventServiceAdapter(eventService))
	publisher := events.NewNotifyPublisher(db)

	channel := events.WorkflowChannel("catchup-test")
	for _, step := range []string{"a", "b", "c"} {
		require.NoError(t, publisher.PublishFrame(t.Context(), channel, &events.StreamFrame{
			Type:   events.FrameStepCompleted,
			StepID: step,
		}))
	}

	// No listener wired: only catchup replay feeds the stream.
	stream, err := manager.Subscribe(t.Context(), channel, 1)
	require.NoError(t, err)
	defer stream.Close()

	var steps []string
	for i := 0; i < 2; i++ {
		select {
		case payload := <-stream.C():
			steps = append(steps, string(payload))
		case <-time.After(2 * time.Second):
			t.Fatal("catchup frame missing")
		}
	}
	assert.Contains(t, steps[0], `"step_id":"b"`)
	assert.Contains(t, steps[1], `"step_id":"c"`)
}
