package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Publisher emits stream frames. Persistent frames are stored in the events
// table then broadcast via NOTIFY in one transaction (pg_notify is
// transactional, so the row and the notification commit together). Transient
// frames are broadcast via NOTIFY only.
type Publisher interface {
	// PublishContent broadcasts a token frame. Transient.
	PublishContent(ctx context.Context, channel, content string) error
	// PublishFrame persists and broadcasts a structured frame.
	PublishFrame(ctx context.Context, channel string, frame *StreamFrame) error
}

// NotifyPublisher is the PostgreSQL-backed Publisher.
type NotifyPublisher struct {
	db *sql.DB
}

// NewNotifyPublisher creates a publisher over the database client's *sql.DB.
func NewNotifyPublisher(db *sql.DB) *NotifyPublisher {
	return &NotifyPublisher{db: db}
}

// PublishContent broadcasts a content token without persisting it.
func (p *NotifyPublisher) PublishContent(ctx context.Context, channel, content string) error {
	frame := newFrame(FrameContent)
	frame.Content = content
	payload, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to marshal content frame: %w", err)
	}
	return p.notifyOnly(ctx, channel, payload)
}

// PublishFrame persists the frame and broadcasts it with its row id injected
// as db_event_id.
func (p *NotifyPublisher) PublishFrame(ctx context.Context, channel string, frame *StreamFrame) error {
	if frame.Timestamp == "" {
		frame.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	payload, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to marshal %s frame: %w", frame.Type, err)
	}
	return p.persistAndNotify(ctx, frame.WorkflowID, channel, payload)
}

func (p *NotifyPublisher) persistAndNotify(ctx context.Context, workflowID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var workflowRef any
	if workflowID != "" {
		workflowRef = workflowID
	}

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (workflow_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		workflowRef, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectDBEventID(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// pg_notify within the same transaction, held until COMMIT.
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

func (p *NotifyPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventID adds db_event_id to the NOTIFY copy of the payload so
// clients can track their catchup position. The stored row stays without it.
func injectDBEventID(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload as-is when it fits PostgreSQL's
// 8000-byte NOTIFY limit, otherwise a minimal envelope with routing fields;
// the client fetches the full frame from the database via catchup.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}

	var routing struct {
		Type       string `json:"type"`
		WorkflowID string `json:"workflow_id"`
		SessionID  string `json:"session_id"`
		DBEventID  *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal([]byte(payloadStr), &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":        routing.Type,
		"workflow_id": routing.WorkflowID,
		"session_id":  routing.SessionID,
		"truncated":   true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	out, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(out), nil
}
