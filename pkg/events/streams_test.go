package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatchup struct {
	events []CatchupEvent
	calls  []int64
}

func (f *fakeCatchup) GetCatchupEvents(_ context.Context, _ string, sinceID int64, limit int) ([]CatchupEvent, error) {
	f.calls = append(f.calls, sinceID)
	out := make([]CatchupEvent, 0, len(f.events))
	for _, e := range f.events {
		if e.ID > sinceID && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func recvFrame(t *testing.T, s *Stream) map[string]any {
	t.Helper()
	select {
	case payload, ok := <-s.C():
		require.True(t, ok, "stream closed")
		var m map[string]any
		require.NoError(t, json.Unmarshal(payload, &m))
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frame")
		return nil
	}
}

func TestStreamManager_Broadcast(t *testing.T) {
	m := NewStreamManager(nil)

	s1, err := m.Subscribe(t.Context(), "wf_abc", 0)
	require.NoError(t, err)
	s2, err := m.Subscribe(t.Context(), "wf_abc", 0)
	require.NoError(t, err)
	other, err := m.Subscribe(t.Context(), "wf_other", 0)
	require.NoError(t, err)
	defer other.Close()

	m.Broadcast("wf_abc", []byte(`{"type":"content","content":"hi"}`))

	for _, s := range []*Stream{s1, s2} {
		frame := recvFrame(t, s)
		assert.Equal(t, "content", frame["type"])
		assert.Equal(t, "hi", frame["content"])
	}
	assert.Empty(t, other.C())

	s1.Close()
	s2.Close()
	assert.Equal(t, 1, m.ActiveStreams())
	assert.Equal(t, 0, m.subscriberCount("wf_abc"))
}

func TestStreamManager_CloseEndsStream(t *testing.T) {
	m := NewStreamManager(nil)
	s, err := m.Subscribe(t.Context(), "wf_x", 0)
	require.NoError(t, err)

	s.Close()
	s.Close() // idempotent

	_, ok := <-s.C()
	assert.False(t, ok)

	// Broadcasting after close must not panic.
	m.Broadcast("wf_x", []byte(`{}`))
}

func TestStreamManager_Catchup(t *testing.T) {
	catchup := &fakeCatchup{events: []CatchupEvent{
		{ID: 1, Payload: map[string]any{"type": "step_started", "step_id": "a"}},
		{ID: 2, Payload: map[string]any{"type": "step_completed", "step_id": "a"}},
		{ID: 3, Payload: map[string]any{"type": "done"}},
	}}
	m := NewStreamManager(catchup)

	s, err := m.Subscribe(t.Context(), "wf_y", 1)
	require.NoError(t, err)
	defer s.Close()

	first := recvFrame(t, s)
	assert.Equal(t, "step_completed", first["type"])
	assert.Equal(t, float64(2), first["db_event_id"])

	second := recvFrame(t, s)
	assert.Equal(t, "done", second["type"])

	assert.Equal(t, []int64{1}, catchup.calls)
}

func TestLocalPublisher(t *testing.T) {
	m := NewStreamManager(nil)
	p := NewLocalPublisher(m)

	s, err := m.Subscribe(t.Context(), "chat_s1", 0)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, p.PublishContent(t.Context(), "chat_s1", "hello"))
	frame := recvFrame(t, s)
	assert.Equal(t, "content", frame["type"])
	assert.Equal(t, "hello", frame["content"])

	done := newFrame(FrameDone)
	done.SessionID = "s1"
	require.NoError(t, p.PublishFrame(t.Context(), "chat_s1", done))
	frame = recvFrame(t, s)
	assert.Equal(t, "done", frame["type"])
	assert.NotZero(t, frame["db_event_id"])
}

func TestChannelNames(t *testing.T) {
	assert.Equal(t, "wf_abc123", WorkflowChannel("abc-123"))
	assert.Equal(t, "chat_abc123", SessionChannel("abc-123"))
}

func TestTruncateIfNeeded(t *testing.T) {
	small := `{"type":"done","workflow_id":"w1"}`
	out, err := truncateIfNeeded(small)
	require.NoError(t, err)
	assert.Equal(t, small, out)

	big, err := json.Marshal(map[string]any{
		"type":        "step_completed",
		"workflow_id": "w1",
		"content":     string(make([]byte, 9000)),
	})
	require.NoError(t, err)
	out, err = truncateIfNeeded(string(big))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, "w1", m["workflow_id"])
}
