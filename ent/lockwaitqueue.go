// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conductorhq/conductor/ent/lockwaitqueue"
)

// LockWaitQueue is the model entity for the LockWaitQueue schema.
type LockWaitQueue struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ResourceID holds the value of the "resource_id" field.
	ResourceID string `json:"resource_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// RequestedAt holds the value of the "requested_at" field.
	RequestedAt time.Time `json:"requested_at,omitempty"`
	// TimeoutAt holds the value of the "timeout_at" field.
	TimeoutAt time.Time `json:"timeout_at,omitempty"`
	// Higher wins
	Priority int `json:"priority,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LockWaitQueue) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lockwaitqueue.FieldMetadata:
			values[i] = new([]byte)
		case lockwaitqueue.FieldPriority:
			values[i] = new(sql.NullInt64)
		case lockwaitqueue.FieldID, lockwaitqueue.FieldResourceID, lockwaitqueue.FieldAgentID:
			values[i] = new(sql.NullString)
		case lockwaitqueue.FieldRequestedAt, lockwaitqueue.FieldTimeoutAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LockWaitQueue fields.
func (_m *LockWaitQueue) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lockwaitqueue.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case lockwaitqueue.FieldResourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource_id", values[i])
			} else if value.Valid {
				_m.ResourceID = value.String
			}
		case lockwaitqueue.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case lockwaitqueue.FieldRequestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field requested_at", values[i])
			} else if value.Valid {
				_m.RequestedAt = value.Time
			}
		case lockwaitqueue.FieldTimeoutAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_at", values[i])
			} else if value.Valid {
				_m.TimeoutAt = value.Time
			}
		case lockwaitqueue.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case lockwaitqueue.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LockWaitQueue.
// This includes values selected through modifiers, order, etc.
func (_m *LockWaitQueue) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LockWaitQueue.
// Note that you need to call LockWaitQueue.Unwrap() before calling this method if this LockWaitQueue
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LockWaitQueue) Update() *LockWaitQueueUpdateOne {
	return NewLockWaitQueueClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LockWaitQueue entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LockWaitQueue) Unwrap() *LockWaitQueue {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LockWaitQueue is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LockWaitQueue) String() string {
	var builder strings.Builder
	builder.WriteString("LockWaitQueue(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("resource_id=")
	builder.WriteString(_m.ResourceID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("requested_at=")
	builder.WriteString(_m.RequestedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("timeout_at=")
	builder.WriteString(_m.TimeoutAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// LockWaitQueues is a parsable slice of LockWaitQueue.
type LockWaitQueues []*LockWaitQueue
