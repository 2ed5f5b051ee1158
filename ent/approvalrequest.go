// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conductorhq/conductor/ent/approvalrequest"
	"github.com/conductorhq/conductor/ent/workflow"
)

// ApprovalRequest is the model entity for the ApprovalRequest schema.
type ApprovalRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkflowID holds the value of the "workflow_id" field.
	WorkflowID string `json:"workflow_id,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID string `json:"step_id,omitempty"`
	// LLM risk assessment text shown to the approver
	RiskAssessment string `json:"risk_assessment,omitempty"`
	// low|medium|high
	Risk string `json:"risk,omitempty"`
	// Decision holds the value of the "decision" field.
	Decision approvalrequest.Decision `json:"decision,omitempty"`
	// DecidedBy holds the value of the "decided_by" field.
	DecidedBy *string `json:"decided_by,omitempty"`
	// DecidedAt holds the value of the "decided_at" field.
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApprovalRequestQuery when eager-loading is set.
	Edges        ApprovalRequestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApprovalRequestEdges holds the relations/edges for other nodes in the graph.
type ApprovalRequestEdges struct {
	// Workflow holds the value of the workflow edge.
	Workflow *Workflow `json:"workflow,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WorkflowOrErr returns the Workflow value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApprovalRequestEdges) WorkflowOrErr() (*Workflow, error) {
	if e.Workflow != nil {
		return e.Workflow, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflow.Label}
	}
	return nil, &NotLoadedError{edge: "workflow"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApprovalRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case approvalrequest.FieldID, approvalrequest.FieldWorkflowID, approvalrequest.FieldStepID, approvalrequest.FieldRiskAssessment, approvalrequest.FieldRisk, approvalrequest.FieldDecision, approvalrequest.FieldDecidedBy:
			values[i] = new(sql.NullString)
		case approvalrequest.FieldDecidedAt, approvalrequest.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApprovalRequest fields.
func (_m *ApprovalRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case approvalrequest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case approvalrequest.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case approvalrequest.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = value.String
			}
		case approvalrequest.FieldRiskAssessment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_assessment", values[i])
			} else if value.Valid {
				_m.RiskAssessment = value.String
			}
		case approvalrequest.FieldRisk:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk", values[i])
			} else if value.Valid {
				_m.Risk = value.String
			}
		case approvalrequest.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = approvalrequest.Decision(value.String)
			}
		case approvalrequest.FieldDecidedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decided_by", values[i])
			} else if value.Valid {
				_m.DecidedBy = new(string)
				*_m.DecidedBy = value.String
			}
		case approvalrequest.FieldDecidedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field decided_at", values[i])
			} else if value.Valid {
				_m.DecidedAt = new(time.Time)
				*_m.DecidedAt = value.Time
			}
		case approvalrequest.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ApprovalRequest.
// This includes values selected through modifiers, order, etc.
func (_m *ApprovalRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkflow queries the "workflow" edge of the ApprovalRequest entity.
func (_m *ApprovalRequest) QueryWorkflow() *WorkflowQuery {
	return NewApprovalRequestClient(_m.config).QueryWorkflow(_m)
}

// Update returns a builder for updating this ApprovalRequest.
// Note that you need to call ApprovalRequest.Unwrap() before calling this method if this ApprovalRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ApprovalRequest) Update() *ApprovalRequestUpdateOne {
	return NewApprovalRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ApprovalRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ApprovalRequest) Unwrap() *ApprovalRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApprovalRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ApprovalRequest) String() string {
	var builder strings.Builder
	builder.WriteString("ApprovalRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("step_id=")
	builder.WriteString(_m.StepID)
	builder.WriteString(", ")
	builder.WriteString("risk_assessment=")
	builder.WriteString(_m.RiskAssessment)
	builder.WriteString(", ")
	builder.WriteString("risk=")
	builder.WriteString(_m.Risk)
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Decision))
	builder.WriteString(", ")
	if v := _m.DecidedBy; v != nil {
		builder.WriteString("decided_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DecidedAt; v != nil {
		builder.WriteString("decided_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ApprovalRequests is a parsable slice of ApprovalRequest.
type ApprovalRequests []*ApprovalRequest
