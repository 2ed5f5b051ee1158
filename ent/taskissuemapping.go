// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conductorhq/conductor/ent/taskissuemapping"
)

// TaskIssueMapping is the model entity for the TaskIssueMapping schema.
type TaskIssueMapping struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// IssueRef holds the value of the "issue_ref" field.
	IssueRef string `json:"issue_ref,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskIssueMapping) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskissuemapping.FieldID, taskissuemapping.FieldIssueRef:
			values[i] = new(sql.NullString)
		case taskissuemapping.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskIssueMapping fields.
func (_m *TaskIssueMapping) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskissuemapping.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case taskissuemapping.FieldIssueRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field issue_ref", values[i])
			} else if value.Valid {
				_m.IssueRef = value.String
			}
		case taskissuemapping.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskIssueMapping.
// This includes values selected through modifiers, order, etc.
func (_m *TaskIssueMapping) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TaskIssueMapping.
// Note that you need to call TaskIssueMapping.Unwrap() before calling this method if this TaskIssueMapping
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskIssueMapping) Update() *TaskIssueMappingUpdateOne {
	return NewTaskIssueMappingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskIssueMapping entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskIssueMapping) Unwrap() *TaskIssueMapping {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskIssueMapping is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskIssueMapping) String() string {
	var builder strings.Builder
	builder.WriteString("TaskIssueMapping(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("issue_ref=")
	builder.WriteString(_m.IssueRef)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskIssueMappings is a parsable slice of TaskIssueMapping.
type TaskIssueMappings []*TaskIssueMapping
