package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductorhq/conductor/pkg/events"
	"github.com/conductorhq/conductor/pkg/llm"
	"github.com/conductorhq/conductor/pkg/mcp"
)

type fakeStreamer struct {
	chunks   []llm.Chunk
	err      error
	requests []llm.Request
}

func (f *fakeStreamer) Stream(_ context.Context, req llm.Request) (<-chan llm.Chunk, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	ch := make(chan llm.Chunk, len(f.chunks))
	for _, c := range f.chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

type recordingPublisher struct {
	contents []string
	frames   []*events.StreamFrame
	channels []string
}

func (r *recordingPublisher) PublishContent(_ context.Context, channel, content string) error {
	r.channels = append(r.channels, channel)
	r.contents = append(r.contents, content)
	return nil
}

func (r *recordingPublisher) PublishFrame(_ context.Context, channel string, frame *events.StreamFrame) error {
	r.channels = append(r.channels, channel)
	r.frames = append(r.frames, frame)
	return nil
}

func TestHandler_Respond(t *testing.T) {
	streamer := &fakeStreamer{chunks: []llm.Chunk{
		&llm.TextChunk{Content: "The lock "},
		&llm.TextChunk{Content: "manager sweeps expired leases."},
	}}
	pub := &recordingPublisher{}
	h := NewHandler(streamer, pub, nil, nil, 0)

	err := h.Respond(t.Context(), "session-1", "how does the wait queue work", false)
	require.NoError(t, err)

	assert.Equal(t, []string{"The lock ", "manager sweeps expired leases."}, pub.contents)
	require.Len(t, pub.frames, 1)
	assert.Equal(t, events.FrameDone, pub.frames[0].Type)
	assert.Equal(t, "session-1", pub.frames[0].SessionID)
	assert.Equal(t, events.SessionChannel("session-1"), pub.channels[0])

	// No tools offered on plain questions.
	require.Len(t, streamer.requests, 1)
	assert.Empty(t, streamer.requests[0].Tools)
}

func TestHandler_RespondWithTools(t *testing.T) {
	catalog := mcp.NewStaticCatalog("v1", map[string][]mcp.ToolSchema{
		"kubernetes": {{Name: "get_pods", Description: "list pods"}},
	})
	selector := mcp.NewSelector(mcp.SelectorConfig{
		KeywordServers: map[string][]string{"pods": {"kubernetes"}},
	})
	streamer := &fakeStreamer{chunks: []llm.Chunk{&llm.TextChunk{Content: "ok"}}}
	pub := &recordingPublisher{}
	h := NewHandler(streamer, pub, selector, catalog, 0)

	require.NoError(t, h.Respond(t.Context(), "session-2", "list the failing pods", true))

	require.Len(t, streamer.requests, 1)
	require.Len(t, streamer.requests[0].Tools, 1)
	// Provider-facing names use the restricted alphabet.
	assert.Equal(t, "kubernetes__get_pods", streamer.requests[0].Tools[0].Name)
}

func TestHandler_ToolCallSurfacedAsContent(t *testing.T) {
	streamer := &fakeStreamer{chunks: []llm.Chunk{
		&llm.ToolCallChunk{CallID: "c1", Name: "kubernetes__get_pods", Arguments: `{"ns":"prod"}`},
	}}
	pub := &recordingPublisher{}
	h := NewHandler(streamer, pub, nil, nil, 0)

	require.NoError(t, h.Respond(t.Context(), "session-3", "show me the pods", true))
	require.Len(t, pub.contents, 1)
	assert.Contains(t, pub.contents[0], "kubernetes__get_pods")
}

func TestHandler_StreamErrorFrame(t *testing.T) {
	streamer := &fakeStreamer{chunks: []llm.Chunk{
		&llm.TextChunk{Content: "partial"},
		&llm.ErrorChunk{Message: "connection reset"},
	}}
	pub := &recordingPublisher{}
	h := NewHandler(streamer, pub, nil, nil, 0)

	err := h.Respond(t.Context(), "session-4", "hello", false)
	require.Error(t, err)

	require.Len(t, pub.frames, 1)
	assert.Equal(t, events.FrameError, pub.frames[0].Type)
	assert.Equal(t, "provider_error", pub.frames[0].Error)
	assert.Contains(t, pub.frames[0].Message, "connection reset")
}

func TestHandler_OpenStreamFailure(t *testing.T) {
	streamer := &fakeStreamer{err: llm.ErrChainExhausted}
	pub := &recordingPublisher{}
	h := NewHandler(streamer, pub, nil, nil, 0)

	err := h.Respond(t.Context(), "session-5", "hello", false)
	require.Error(t, err)
	require.Len(t, pub.frames, 1)
	assert.Equal(t, events.FrameError, pub.frames[0].Type)
}
