// Package events delivers workflow and chat stream frames to connected SSE
// clients, with PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Frames follow one of two delivery patterns:
//
//   - TRANSIENT: content token frames are broadcast via NOTIFY only. They are
//     lost on reconnect; clients see the final state through persistent frames.
//   - PERSISTENT: step and approval frames are stored in the events table and
//     then broadcast, so a reconnecting client can catch up from its last
//     seen db_event_id.
package events

import (
	"strings"
	"time"
)

// Frame types on the stream. Clients treat unknown types as opaque.
const (
	FrameContent          = "content"
	FrameStepStarted      = "step_started"
	FrameStepCompleted    = "step_completed"
	FrameApprovalRequired = "approval_required"
	FrameDone             = "done"
	FrameError            = "error"
)

// StreamFrame is one frame on a stream channel. Only fields relevant to the
// frame type are set.
type StreamFrame struct {
	Type       string `json:"type"`
	WorkflowID string `json:"workflow_id,omitempty"`
	SessionID  string `json:"session_id,omitempty"`

	// Content token, for content frames.
	Content string `json:"content,omitempty"`

	// Step fields, for step_started / step_completed frames.
	StepID     string `json:"step_id,omitempty"`
	StepStatus string `json:"step_status,omitempty"`

	// Approval fields, for approval_required frames.
	ApprovalID string `json:"approval_id,omitempty"`
	Risk       string `json:"risk,omitempty"`
	IssueRef   string `json:"issue_ref,omitempty"`

	// Error fields, for error frames. Error carries the taxonomy kind.
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`

	// DBEventID is the persisted row id, injected at publish time so
	// reconnecting clients can resume catchup from it.
	DBEventID int64  `json:"db_event_id,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

func newFrame(frameType string) *StreamFrame {
	return &StreamFrame{
		Type:      frameType,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// WorkflowChannel derives the NOTIFY channel for a workflow's stream.
// PostgreSQL channel identifiers cannot contain hyphens, so UUIDs are
// flattened.
func WorkflowChannel(workflowID string) string {
	return "wf_" + strings.ReplaceAll(workflowID, "-", "")
}

// SessionChannel derives the NOTIFY channel for a chat session's stream.
func SessionChannel(sessionID string) string {
	return "chat_" + strings.ReplaceAll(sessionID, "-", "")
}
