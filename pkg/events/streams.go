package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// catchupLimit caps the number of persisted frames replayed on subscribe.
// Clients that missed more are told to reload over REST instead.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when subscribing
// to a new PG channel.
const listenTimeout = 10 * time.Second

// streamBuffer is the per-subscriber frame buffer. A client that cannot
// drain this many frames loses the oldest rather than stalling broadcasts.
const streamBuffer = 256

// CatchupEvent is one persisted frame returned by the catchup query.
type CatchupEvent struct {
	ID      int64
	Payload map[string]any
}

// CatchupQuerier replays persisted frames for reconnecting clients.
// Implemented by the EventService adapter.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error)
}

// Stream is one client's view of a channel. Frames arrive on C as raw JSON,
// ready for an SSE data line. Close releases the subscription.
type Stream struct {
	id      string
	channel string
	frames  chan []byte
	closed  atomic.Bool
	cancel  func()
}

// C returns the frame channel. It is closed when the stream ends.
func (s *Stream) C() <-chan []byte { return s.frames }

// Close releases the subscription. Safe to call more than once.
func (s *Stream) Close() {
	if s.closed.CompareAndSwap(false, true) {
		s.cancel()
	}
}

// StreamManager fans NOTIFY payloads out to subscribed SSE streams. Each pod
// has one instance; the NotifyListener feeds it.
type StreamManager struct {
	mu      sync.RWMutex
	streams map[string]*Stream            // stream id -> stream
	byChan  map[string]map[string]*Stream // channel -> stream id -> stream

	catchup CatchupQuerier

	listenerMu sync.RWMutex
	listener   *NotifyListener
}

// NewStreamManager creates a manager. catchup may be nil to disable replay.
func NewStreamManager(catchup CatchupQuerier) *StreamManager {
	return &StreamManager{
		streams: make(map[string]*Stream),
		byChan:  make(map[string]map[string]*Stream),
		catchup: catchup,
	}
}

// SetListener wires the NOTIFY listener for dynamic LISTEN/UNLISTEN. Called
// once during startup.
func (m *StreamManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// Subscribe opens a stream on a channel. LISTEN is established synchronously
// before catchup runs, closing the gap where a frame published between the
// two would be lost. lastEventID > 0 resumes catchup from that row.
func (m *StreamManager) Subscribe(ctx context.Context, channel string, lastEventID int64) (*Stream, error) {
	s := &Stream{
		id:      uuid.New().String(),
		channel: channel,
		frames:  make(chan []byte, streamBuffer),
	}
	s.cancel = func() { m.unsubscribe(s) }

	m.mu.Lock()
	needsListen := false
	if _, exists := m.byChan[channel]; !exists {
		m.byChan[channel] = make(map[string]*Stream)
		needsListen = true
	}
	m.byChan[channel][s.id] = s
	m.streams[s.id] = s
	m.mu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				m.unsubscribe(s)
				return nil, fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	m.replayCatchup(ctx, s, channel, lastEventID)
	return s, nil
}

// Broadcast delivers a NOTIFY payload to every stream on the channel.
// Sends are non-blocking: a full buffer drops the frame for that stream.
func (m *StreamManager) Broadcast(channel string, payload []byte) {
	m.mu.RLock()
	subs := make([]*Stream, 0, len(m.byChan[channel]))
	for _, s := range m.byChan[channel] {
		subs = append(subs, s)
	}
	m.mu.RUnlock()

	for _, s := range subs {
		select {
		case s.frames <- payload:
		default:
			slog.Warn("Stream buffer full, dropping frame",
				"channel", channel, "stream_id", s.id)
		}
	}
}

// ActiveStreams returns the number of open streams.
func (m *StreamManager) ActiveStreams() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.streams)
}

func (m *StreamManager) subscriberCount(channel string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byChan[channel])
}

// unsubscribe removes the stream and stops LISTEN when it was the channel's
// last subscriber.
func (m *StreamManager) unsubscribe(s *Stream) {
	m.mu.Lock()
	delete(m.streams, s.id)
	lastOnChannel := false
	if subs, exists := m.byChan[s.channel]; exists {
		delete(subs, s.id)
		if len(subs) == 0 {
			delete(m.byChan, s.channel)
			lastOnChannel = true
		}
	}
	m.mu.Unlock()

	close(s.frames)

	if !lastOnChannel {
		return
	}
	m.listenerMu.RLock()
	l := m.listener
	m.listenerMu.RUnlock()
	if l == nil {
		return
	}
	channel := s.channel
	// UNLISTEN off the caller's goroutine; re-check for a racing resubscribe
	// so a rapid close/reopen cycle does not drop the LISTEN.
	go func() {
		m.mu.RLock()
		_, resubscribed := m.byChan[channel]
		m.mu.RUnlock()
		if resubscribed {
			return
		}
		if err := l.Unsubscribe(context.Background(), channel); err != nil {
			slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
		}
	}()
}

// replayCatchup queues persisted frames since lastEventID onto the stream,
// injecting db_event_id from the row id.
func (m *StreamManager) replayCatchup(ctx context.Context, s *Stream, channel string, lastEventID int64) {
	if m.catchup == nil {
		return
	}

	catchupEvents, err := m.catchup.GetCatchupEvents(ctx, channel, lastEventID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	hasMore := len(catchupEvents) > catchupLimit
	if hasMore {
		catchupEvents = catchupEvents[:catchupLimit]
	}

	for _, evt := range catchupEvents {
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		select {
		case s.frames <- payload:
		default:
			slog.Warn("Stream buffer full during catchup", "channel", channel)
			return
		}
	}

	if hasMore {
		overflow, _ := json.Marshal(map[string]any{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
		select {
		case s.frames <- overflow:
		default:
		}
	}
}

// LocalPublisher delivers frames straight to a StreamManager, bypassing
// PostgreSQL. Used for single-process deployments without cross-pod fan-out
// and by tests.
type LocalPublisher struct {
	manager *StreamManager
	nextID  atomic.Int64
}

// NewLocalPublisher creates a publisher bound to the manager.
func NewLocalPublisher(manager *StreamManager) *LocalPublisher {
	return &LocalPublisher{manager: manager}
}

// PublishContent broadcasts a token frame.
func (p *LocalPublisher) PublishContent(_ context.Context, channel, content string) error {
	frame := newFrame(FrameContent)
	frame.Content = content
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	p.manager.Broadcast(channel, payload)
	return nil
}

// PublishFrame broadcasts a structured frame with a synthetic event id.
func (p *LocalPublisher) PublishFrame(_ context.Context, channel string, frame *StreamFrame) error {
	if frame.Timestamp == "" {
		frame.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	frame.DBEventID = p.nextID.Add(1)
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	p.manager.Broadcast(channel, payload)
	return nil
}
