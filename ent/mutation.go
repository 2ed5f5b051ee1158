// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conductorhq/conductor/ent/approvalrequest"
	"github.com/conductorhq/conductor/ent/event"
	"github.com/conductorhq/conductor/ent/lockhistory"
	"github.com/conductorhq/conductor/ent/lockwaitqueue"
	"github.com/conductorhq/conductor/ent/predicate"
	"github.com/conductorhq/conductor/ent/resourcelock"
	"github.com/conductorhq/conductor/ent/taskissuemapping"
	"github.com/conductorhq/conductor/ent/workflow"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApprovalRequest  = "ApprovalRequest"
	TypeEvent            = "Event"
	TypeLockHistory      = "LockHistory"
	TypeLockWaitQueue    = "LockWaitQueue"
	TypeResourceLock     = "ResourceLock"
	TypeTaskIssueMapping = "TaskIssueMapping"
	TypeWorkflow         = "Workflow"
)

// ApprovalRequestMutation represents an operation that mutates the ApprovalRequest nodes in the graph.
type ApprovalRequestMutation struct {
	config
	op              Op
	typ             string
	id              *string
	step_id         *string
	risk_assessment *string
	risk            *string
	decision        *approvalrequest.Decision
	decided_by      *string
	decided_at      *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	workflow        *string
	clearedworkflow bool
	done            bool
	oldValue        func(context.Context) (*ApprovalRequest, error)
	predicates      []predicate.ApprovalRequest
}

var _ ent.Mutation = (*ApprovalRequestMutation)(nil)

// approvalrequestOption allows management of the mutation configuration using functional options.
type approvalrequestOption func(*ApprovalRequestMutation)

// newApprovalRequestMutation creates new mutation for the ApprovalRequest entity.
func newApprovalRequestMutation(c config, op Op, opts ...approvalrequestOption) *ApprovalRequestMutation {
	m := &ApprovalRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalRequestID sets the ID field of the mutation.
func withApprovalRequestID(id string) approvalrequestOption {
	return func(m *ApprovalRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalRequest
		)
		m.oldValue = func(ctx context.Context) (*ApprovalRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalRequest sets the old ApprovalRequest of the mutation.
func withApprovalRequest(node *ApprovalRequest) approvalrequestOption {
	return func(m *ApprovalRequestMutation) {
		m.oldValue = func(context.Context) (*ApprovalRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApprovalRequest entities.
func (m *ApprovalRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *ApprovalRequestMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *ApprovalRequestMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *ApprovalRequestMutation) ResetWorkflowID() {
	m.workflow = nil
}

// SetStepID sets the "step_id" field.
func (m *ApprovalRequestMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *ApprovalRequestMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ResetStepID resets all changes to the "step_id" field.
func (m *ApprovalRequestMutation) ResetStepID() {
	m.step_id = nil
}

// SetRiskAssessment sets the "risk_assessment" field.
func (m *ApprovalRequestMutation) SetRiskAssessment(s string) {
	m.risk_assessment = &s
}

// RiskAssessment returns the value of the "risk_assessment" field in the mutation.
func (m *ApprovalRequestMutation) RiskAssessment() (r string, exists bool) {
	v := m.risk_assessment
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskAssessment returns the old "risk_assessment" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRiskAssessment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskAssessment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskAssessment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskAssessment: %w", err)
	}
	return oldValue.RiskAssessment, nil
}

// ClearRiskAssessment clears the value of the "risk_assessment" field.
func (m *ApprovalRequestMutation) ClearRiskAssessment() {
	m.risk_assessment = nil
	m.clearedFields[approvalrequest.FieldRiskAssessment] = struct{}{}
}

// RiskAssessmentCleared returns if the "risk_assessment" field was cleared in this mutation.
func (m *ApprovalRequestMutation) RiskAssessmentCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldRiskAssessment]
	return ok
}

// ResetRiskAssessment resets all changes to the "risk_assessment" field.
func (m *ApprovalRequestMutation) ResetRiskAssessment() {
	m.risk_assessment = nil
	delete(m.clearedFields, approvalrequest.FieldRiskAssessment)
}

// SetRisk sets the "risk" field.
func (m *ApprovalRequestMutation) SetRisk(s string) {
	m.risk = &s
}

// Risk returns the value of the "risk" field in the mutation.
func (m *ApprovalRequestMutation) Risk() (r string, exists bool) {
	v := m.risk
	if v == nil {
		return
	}
	return *v, true
}

// OldRisk returns the old "risk" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRisk(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRisk: %w", err)
	}
	return oldValue.Risk, nil
}

// ClearRisk clears the value of the "risk" field.
func (m *ApprovalRequestMutation) ClearRisk() {
	m.risk = nil
	m.clearedFields[approvalrequest.FieldRisk] = struct{}{}
}

// RiskCleared returns if the "risk" field was cleared in this mutation.
func (m *ApprovalRequestMutation) RiskCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldRisk]
	return ok
}

// ResetRisk resets all changes to the "risk" field.
func (m *ApprovalRequestMutation) ResetRisk() {
	m.risk = nil
	delete(m.clearedFields, approvalrequest.FieldRisk)
}

// SetDecision sets the "decision" field.
func (m *ApprovalRequestMutation) SetDecision(a approvalrequest.Decision) {
	m.decision = &a
}

// Decision returns the value of the "decision" field in the mutation.
func (m *ApprovalRequestMutation) Decision() (r approvalrequest.Decision, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldDecision(ctx context.Context) (v approvalrequest.Decision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *ApprovalRequestMutation) ResetDecision() {
	m.decision = nil
}

// SetDecidedBy sets the "decided_by" field.
func (m *ApprovalRequestMutation) SetDecidedBy(s string) {
	m.decided_by = &s
}

// DecidedBy returns the value of the "decided_by" field in the mutation.
func (m *ApprovalRequestMutation) DecidedBy() (r string, exists bool) {
	v := m.decided_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedBy returns the old "decided_by" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldDecidedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedBy: %w", err)
	}
	return oldValue.DecidedBy, nil
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (m *ApprovalRequestMutation) ClearDecidedBy() {
	m.decided_by = nil
	m.clearedFields[approvalrequest.FieldDecidedBy] = struct{}{}
}

// DecidedByCleared returns if the "decided_by" field was cleared in this mutation.
func (m *ApprovalRequestMutation) DecidedByCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldDecidedBy]
	return ok
}

// ResetDecidedBy resets all changes to the "decided_by" field.
func (m *ApprovalRequestMutation) ResetDecidedBy() {
	m.decided_by = nil
	delete(m.clearedFields, approvalrequest.FieldDecidedBy)
}

// SetDecidedAt sets the "decided_at" field.
func (m *ApprovalRequestMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *ApprovalRequestMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *ApprovalRequestMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[approvalrequest.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *ApprovalRequestMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *ApprovalRequestMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, approvalrequest.FieldDecidedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApprovalRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *ApprovalRequestMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[approvalrequest.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *ApprovalRequestMutation) WorkflowCleared() bool {
	return m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *ApprovalRequestMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *ApprovalRequestMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the ApprovalRequestMutation builder.
func (m *ApprovalRequestMutation) Where(ps ...predicate.ApprovalRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalRequest).
func (m *ApprovalRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalRequestMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.workflow != nil {
		fields = append(fields, approvalrequest.FieldWorkflowID)
	}
	if m.step_id != nil {
		fields = append(fields, approvalrequest.FieldStepID)
	}
	if m.risk_assessment != nil {
		fields = append(fields, approvalrequest.FieldRiskAssessment)
	}
	if m.risk != nil {
		fields = append(fields, approvalrequest.FieldRisk)
	}
	if m.decision != nil {
		fields = append(fields, approvalrequest.FieldDecision)
	}
	if m.decided_by != nil {
		fields = append(fields, approvalrequest.FieldDecidedBy)
	}
	if m.decided_at != nil {
		fields = append(fields, approvalrequest.FieldDecidedAt)
	}
	if m.created_at != nil {
		fields = append(fields, approvalrequest.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalrequest.FieldWorkflowID:
		return m.WorkflowID()
	case approvalrequest.FieldStepID:
		return m.StepID()
	case approvalrequest.FieldRiskAssessment:
		return m.RiskAssessment()
	case approvalrequest.FieldRisk:
		return m.Risk()
	case approvalrequest.FieldDecision:
		return m.Decision()
	case approvalrequest.FieldDecidedBy:
		return m.DecidedBy()
	case approvalrequest.FieldDecidedAt:
		return m.DecidedAt()
	case approvalrequest.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalrequest.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case approvalrequest.FieldStepID:
		return m.OldStepID(ctx)
	case approvalrequest.FieldRiskAssessment:
		return m.OldRiskAssessment(ctx)
	case approvalrequest.FieldRisk:
		return m.OldRisk(ctx)
	case approvalrequest.FieldDecision:
		return m.OldDecision(ctx)
	case approvalrequest.FieldDecidedBy:
		return m.OldDecidedBy(ctx)
	case approvalrequest.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	case approvalrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalrequest.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case approvalrequest.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case approvalrequest.FieldRiskAssessment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskAssessment(v)
		return nil
	case approvalrequest.FieldRisk:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRisk(v)
		return nil
	case approvalrequest.FieldDecision:
		v, ok := value.(approvalrequest.Decision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case approvalrequest.FieldDecidedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedBy(v)
		return nil
	case approvalrequest.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	case approvalrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalRequestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalRequestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApprovalRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalrequest.FieldRiskAssessment) {
		fields = append(fields, approvalrequest.FieldRiskAssessment)
	}
	if m.FieldCleared(approvalrequest.FieldRisk) {
		fields = append(fields, approvalrequest.FieldRisk)
	}
	if m.FieldCleared(approvalrequest.FieldDecidedBy) {
		fields = append(fields, approvalrequest.FieldDecidedBy)
	}
	if m.FieldCleared(approvalrequest.FieldDecidedAt) {
		fields = append(fields, approvalrequest.FieldDecidedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalRequestMutation) ClearField(name string) error {
	switch name {
	case approvalrequest.FieldRiskAssessment:
		m.ClearRiskAssessment()
		return nil
	case approvalrequest.FieldRisk:
		m.ClearRisk()
		return nil
	case approvalrequest.FieldDecidedBy:
		m.ClearDecidedBy()
		return nil
	case approvalrequest.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalRequestMutation) ResetField(name string) error {
	switch name {
	case approvalrequest.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case approvalrequest.FieldStepID:
		m.ResetStepID()
		return nil
	case approvalrequest.FieldRiskAssessment:
		m.ResetRiskAssessment()
		return nil
	case approvalrequest.FieldRisk:
		m.ResetRisk()
		return nil
	case approvalrequest.FieldDecision:
		m.ResetDecision()
		return nil
	case approvalrequest.FieldDecidedBy:
		m.ResetDecidedBy()
		return nil
	case approvalrequest.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	case approvalrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, approvalrequest.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case approvalrequest.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, approvalrequest.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case approvalrequest.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalRequestMutation) ClearEdge(name string) error {
	switch name {
	case approvalrequest.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalRequestMutation) ResetEdge(name string) error {
	switch name {
	case approvalrequest.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op              Op
	typ             string
	id              *int64
	channel         *string
	payload         *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	workflow        *string
	clearedworkflow bool
	done            bool
	oldValue        func(context.Context) (*Event, error)
	predicates      []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int64) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowID sets the "workflow_id" field.
func (m *EventMutation) SetWorkflowID(s string) {
	m.workflow = &s
}

// WorkflowID returns the value of the "workflow_id" field in the mutation.
func (m *EventMutation) WorkflowID() (r string, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowID returns the old "workflow_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldWorkflowID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowID: %w", err)
	}
	return oldValue.WorkflowID, nil
}

// ClearWorkflowID clears the value of the "workflow_id" field.
func (m *EventMutation) ClearWorkflowID() {
	m.workflow = nil
	m.clearedFields[event.FieldWorkflowID] = struct{}{}
}

// WorkflowIDCleared returns if the "workflow_id" field was cleared in this mutation.
func (m *EventMutation) WorkflowIDCleared() bool {
	_, ok := m.clearedFields[event.FieldWorkflowID]
	return ok
}

// ResetWorkflowID resets all changes to the "workflow_id" field.
func (m *EventMutation) ResetWorkflowID() {
	m.workflow = nil
	delete(m.clearedFields, event.FieldWorkflowID)
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (m *EventMutation) ClearWorkflow() {
	m.clearedworkflow = true
	m.clearedFields[event.FieldWorkflowID] = struct{}{}
}

// WorkflowCleared reports if the "workflow" edge to the Workflow entity was cleared.
func (m *EventMutation) WorkflowCleared() bool {
	return m.WorkflowIDCleared() || m.clearedworkflow
}

// WorkflowIDs returns the "workflow" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkflowID instead. It exists only for internal usage by the builders.
func (m *EventMutation) WorkflowIDs() (ids []string) {
	if id := m.workflow; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkflow resets all changes to the "workflow" edge.
func (m *EventMutation) ResetWorkflow() {
	m.workflow = nil
	m.clearedworkflow = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.workflow != nil {
		fields = append(fields, event.FieldWorkflowID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldWorkflowID:
		return m.WorkflowID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldWorkflowID:
		return m.OldWorkflowID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldWorkflowID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldWorkflowID) {
		fields = append(fields, event.FieldWorkflowID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldWorkflowID:
		m.ClearWorkflowID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldWorkflowID:
		m.ResetWorkflowID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.workflow != nil {
		edges = append(edges, event.EdgeWorkflow)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeWorkflow:
		if id := m.workflow; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedworkflow {
		edges = append(edges, event.EdgeWorkflow)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeWorkflow:
		return m.clearedworkflow
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeWorkflow:
		m.ClearWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeWorkflow:
		m.ResetWorkflow()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// LockHistoryMutation represents an operation that mutates the LockHistory nodes in the graph.
type LockHistoryMutation struct {
	config
	op              Op
	typ             string
	id              *int
	resource_id     *string
	agent_id        *string
	_op             *lockhistory.Op
	acquired_at     *time.Time
	released_at     *time.Time
	duration_ms     *int64
	addduration_ms  *int64
	wait_time_ms    *int64
	addwait_time_ms *int64
	success         *bool
	error_message   *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*LockHistory, error)
	predicates      []predicate.LockHistory
}

var _ ent.Mutation = (*LockHistoryMutation)(nil)

// lockhistoryOption allows management of the mutation configuration using functional options.
type lockhistoryOption func(*LockHistoryMutation)

// newLockHistoryMutation creates new mutation for the LockHistory entity.
func newLockHistoryMutation(c config, op Op, opts ...lockhistoryOption) *LockHistoryMutation {
	m := &LockHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeLockHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLockHistoryID sets the ID field of the mutation.
func withLockHistoryID(id int) lockhistoryOption {
	return func(m *LockHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *LockHistory
		)
		m.oldValue = func(ctx context.Context) (*LockHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LockHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLockHistory sets the old LockHistory of the mutation.
func withLockHistory(node *LockHistory) lockhistoryOption {
	return func(m *LockHistoryMutation) {
		m.oldValue = func(context.Context) (*LockHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LockHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LockHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LockHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LockHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LockHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResourceID sets the "resource_id" field.
func (m *LockHistoryMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *LockHistoryMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the LockHistory entity.
// If the LockHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockHistoryMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *LockHistoryMutation) ResetResourceID() {
	m.resource_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *LockHistoryMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *LockHistoryMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the LockHistory entity.
// If the LockHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockHistoryMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *LockHistoryMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetOpField sets the "op" field.
func (m *LockHistoryMutation) SetOpField(l lockhistory.Op) {
	m._op = &l
}

// GetOp returns the value of the "op" field in the mutation.
func (m *LockHistoryMutation) GetOp() (r lockhistory.Op, exists bool) {
	v := m._op
	if v == nil {
		return
	}
	return *v, true
}

// OldOp returns the old "op" field's value of the LockHistory entity.
// If the LockHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockHistoryMutation) OldOp(ctx context.Context) (v lockhistory.Op, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOp: %w", err)
	}
	return oldValue.Op, nil
}

// ResetOp resets all changes to the "op" field.
func (m *LockHistoryMutation) ResetOp() {
	m._op = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *LockHistoryMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *LockHistoryMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the LockHistory entity.
// If the LockHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockHistoryMutation) OldAcquiredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ClearAcquiredAt clears the value of the "acquired_at" field.
func (m *LockHistoryMutation) ClearAcquiredAt() {
	m.acquired_at = nil
	m.clearedFields[lockhistory.FieldAcquiredAt] = struct{}{}
}

// AcquiredAtCleared returns if the "acquired_at" field was cleared in this mutation.
func (m *LockHistoryMutation) AcquiredAtCleared() bool {
	_, ok := m.clearedFields[lockhistory.FieldAcquiredAt]
	return ok
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *LockHistoryMutation) ResetAcquiredAt() {
	m.acquired_at = nil
	delete(m.clearedFields, lockhistory.FieldAcquiredAt)
}

// SetReleasedAt sets the "released_at" field.
func (m *LockHistoryMutation) SetReleasedAt(t time.Time) {
	m.released_at = &t
}

// ReleasedAt returns the value of the "released_at" field in the mutation.
func (m *LockHistoryMutation) ReleasedAt() (r time.Time, exists bool) {
	v := m.released_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReleasedAt returns the old "released_at" field's value of the LockHistory entity.
// If the LockHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockHistoryMutation) OldReleasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleasedAt: %w", err)
	}
	return oldValue.ReleasedAt, nil
}

// ClearReleasedAt clears the value of the "released_at" field.
func (m *LockHistoryMutation) ClearReleasedAt() {
	m.released_at = nil
	m.clearedFields[lockhistory.FieldReleasedAt] = struct{}{}
}

// ReleasedAtCleared returns if the "released_at" field was cleared in this mutation.
func (m *LockHistoryMutation) ReleasedAtCleared() bool {
	_, ok := m.clearedFields[lockhistory.FieldReleasedAt]
	return ok
}

// ResetReleasedAt resets all changes to the "released_at" field.
func (m *LockHistoryMutation) ResetReleasedAt() {
	m.released_at = nil
	delete(m.clearedFields, lockhistory.FieldReleasedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *LockHistoryMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *LockHistoryMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the LockHistory entity.
// If the LockHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockHistoryMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *LockHistoryMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *LockHistoryMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *LockHistoryMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[lockhistory.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *LockHistoryMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[lockhistory.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *LockHistoryMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, lockhistory.FieldDurationMs)
}

// SetWaitTimeMs sets the "wait_time_ms" field.
func (m *LockHistoryMutation) SetWaitTimeMs(i int64) {
	m.wait_time_ms = &i
	m.addwait_time_ms = nil
}

// WaitTimeMs returns the value of the "wait_time_ms" field in the mutation.
func (m *LockHistoryMutation) WaitTimeMs() (r int64, exists bool) {
	v := m.wait_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldWaitTimeMs returns the old "wait_time_ms" field's value of the LockHistory entity.
// If the LockHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockHistoryMutation) OldWaitTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaitTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaitTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaitTimeMs: %w", err)
	}
	return oldValue.WaitTimeMs, nil
}

// AddWaitTimeMs adds i to the "wait_time_ms" field.
func (m *LockHistoryMutation) AddWaitTimeMs(i int64) {
	if m.addwait_time_ms != nil {
		*m.addwait_time_ms += i
	} else {
		m.addwait_time_ms = &i
	}
}

// AddedWaitTimeMs returns the value that was added to the "wait_time_ms" field in this mutation.
func (m *LockHistoryMutation) AddedWaitTimeMs() (r int64, exists bool) {
	v := m.addwait_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearWaitTimeMs clears the value of the "wait_time_ms" field.
func (m *LockHistoryMutation) ClearWaitTimeMs() {
	m.wait_time_ms = nil
	m.addwait_time_ms = nil
	m.clearedFields[lockhistory.FieldWaitTimeMs] = struct{}{}
}

// WaitTimeMsCleared returns if the "wait_time_ms" field was cleared in this mutation.
func (m *LockHistoryMutation) WaitTimeMsCleared() bool {
	_, ok := m.clearedFields[lockhistory.FieldWaitTimeMs]
	return ok
}

// ResetWaitTimeMs resets all changes to the "wait_time_ms" field.
func (m *LockHistoryMutation) ResetWaitTimeMs() {
	m.wait_time_ms = nil
	m.addwait_time_ms = nil
	delete(m.clearedFields, lockhistory.FieldWaitTimeMs)
}

// SetSuccess sets the "success" field.
func (m *LockHistoryMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LockHistoryMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LockHistory entity.
// If the LockHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockHistoryMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LockHistoryMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LockHistoryMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LockHistoryMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LockHistory entity.
// If the LockHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockHistoryMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LockHistoryMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[lockhistory.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LockHistoryMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[lockhistory.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LockHistoryMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, lockhistory.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *LockHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LockHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LockHistory entity.
// If the LockHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LockHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LockHistoryMutation builder.
func (m *LockHistoryMutation) Where(ps ...predicate.LockHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LockHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LockHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LockHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LockHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LockHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LockHistory).
func (m *LockHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LockHistoryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.resource_id != nil {
		fields = append(fields, lockhistory.FieldResourceID)
	}
	if m.agent_id != nil {
		fields = append(fields, lockhistory.FieldAgentID)
	}
	if m._op != nil {
		fields = append(fields, lockhistory.FieldOp)
	}
	if m.acquired_at != nil {
		fields = append(fields, lockhistory.FieldAcquiredAt)
	}
	if m.released_at != nil {
		fields = append(fields, lockhistory.FieldReleasedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, lockhistory.FieldDurationMs)
	}
	if m.wait_time_ms != nil {
		fields = append(fields, lockhistory.FieldWaitTimeMs)
	}
	if m.success != nil {
		fields = append(fields, lockhistory.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, lockhistory.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, lockhistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LockHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lockhistory.FieldResourceID:
		return m.ResourceID()
	case lockhistory.FieldAgentID:
		return m.AgentID()
	case lockhistory.FieldOp:
		return m.GetOp()
	case lockhistory.FieldAcquiredAt:
		return m.AcquiredAt()
	case lockhistory.FieldReleasedAt:
		return m.ReleasedAt()
	case lockhistory.FieldDurationMs:
		return m.DurationMs()
	case lockhistory.FieldWaitTimeMs:
		return m.WaitTimeMs()
	case lockhistory.FieldSuccess:
		return m.Success()
	case lockhistory.FieldErrorMessage:
		return m.ErrorMessage()
	case lockhistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LockHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lockhistory.FieldResourceID:
		return m.OldResourceID(ctx)
	case lockhistory.FieldAgentID:
		return m.OldAgentID(ctx)
	case lockhistory.FieldOp:
		return m.OldOp(ctx)
	case lockhistory.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case lockhistory.FieldReleasedAt:
		return m.OldReleasedAt(ctx)
	case lockhistory.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case lockhistory.FieldWaitTimeMs:
		return m.OldWaitTimeMs(ctx)
	case lockhistory.FieldSuccess:
		return m.OldSuccess(ctx)
	case lockhistory.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case lockhistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LockHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LockHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lockhistory.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case lockhistory.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case lockhistory.FieldOp:
		v, ok := value.(lockhistory.Op)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpField(v)
		return nil
	case lockhistory.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case lockhistory.FieldReleasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleasedAt(v)
		return nil
	case lockhistory.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case lockhistory.FieldWaitTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaitTimeMs(v)
		return nil
	case lockhistory.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case lockhistory.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case lockhistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LockHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LockHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, lockhistory.FieldDurationMs)
	}
	if m.addwait_time_ms != nil {
		fields = append(fields, lockhistory.FieldWaitTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LockHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lockhistory.FieldDurationMs:
		return m.AddedDurationMs()
	case lockhistory.FieldWaitTimeMs:
		return m.AddedWaitTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LockHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lockhistory.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case lockhistory.FieldWaitTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWaitTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown LockHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LockHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lockhistory.FieldAcquiredAt) {
		fields = append(fields, lockhistory.FieldAcquiredAt)
	}
	if m.FieldCleared(lockhistory.FieldReleasedAt) {
		fields = append(fields, lockhistory.FieldReleasedAt)
	}
	if m.FieldCleared(lockhistory.FieldDurationMs) {
		fields = append(fields, lockhistory.FieldDurationMs)
	}
	if m.FieldCleared(lockhistory.FieldWaitTimeMs) {
		fields = append(fields, lockhistory.FieldWaitTimeMs)
	}
	if m.FieldCleared(lockhistory.FieldErrorMessage) {
		fields = append(fields, lockhistory.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LockHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LockHistoryMutation) ClearField(name string) error {
	switch name {
	case lockhistory.FieldAcquiredAt:
		m.ClearAcquiredAt()
		return nil
	case lockhistory.FieldReleasedAt:
		m.ClearReleasedAt()
		return nil
	case lockhistory.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case lockhistory.FieldWaitTimeMs:
		m.ClearWaitTimeMs()
		return nil
	case lockhistory.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LockHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LockHistoryMutation) ResetField(name string) error {
	switch name {
	case lockhistory.FieldResourceID:
		m.ResetResourceID()
		return nil
	case lockhistory.FieldAgentID:
		m.ResetAgentID()
		return nil
	case lockhistory.FieldOp:
		m.ResetOp()
		return nil
	case lockhistory.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case lockhistory.FieldReleasedAt:
		m.ResetReleasedAt()
		return nil
	case lockhistory.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case lockhistory.FieldWaitTimeMs:
		m.ResetWaitTimeMs()
		return nil
	case lockhistory.FieldSuccess:
		m.ResetSuccess()
		return nil
	case lockhistory.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case lockhistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LockHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LockHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LockHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LockHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LockHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LockHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LockHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LockHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LockHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LockHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LockHistory edge %s", name)
}

// LockWaitQueueMutation represents an operation that mutates the LockWaitQueue nodes in the graph.
type LockWaitQueueMutation struct {
	config
	op            Op
	typ           string
	id            *string
	resource_id   *string
	agent_id      *string
	requested_at  *time.Time
	timeout_at    *time.Time
	priority      *int
	addpriority   *int
	metadata      *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LockWaitQueue, error)
	predicates    []predicate.LockWaitQueue
}

var _ ent.Mutation = (*LockWaitQueueMutation)(nil)

// lockwaitqueueOption allows management of the mutation configuration using functional options.
type lockwaitqueueOption func(*LockWaitQueueMutation)

// newLockWaitQueueMutation creates new mutation for the LockWaitQueue entity.
func newLockWaitQueueMutation(c config, op Op, opts ...lockwaitqueueOption) *LockWaitQueueMutation {
	m := &LockWaitQueueMutation{
		config:        c,
		op:            op,
		typ:           TypeLockWaitQueue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLockWaitQueueID sets the ID field of the mutation.
func withLockWaitQueueID(id string) lockwaitqueueOption {
	return func(m *LockWaitQueueMutation) {
		var (
			err   error
			once  sync.Once
			value *LockWaitQueue
		)
		m.oldValue = func(ctx context.Context) (*LockWaitQueue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LockWaitQueue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLockWaitQueue sets the old LockWaitQueue of the mutation.
func withLockWaitQueue(node *LockWaitQueue) lockwaitqueueOption {
	return func(m *LockWaitQueueMutation) {
		m.oldValue = func(context.Context) (*LockWaitQueue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LockWaitQueueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LockWaitQueueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LockWaitQueue entities.
func (m *LockWaitQueueMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LockWaitQueueMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LockWaitQueueMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LockWaitQueue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResourceID sets the "resource_id" field.
func (m *LockWaitQueueMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *LockWaitQueueMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the LockWaitQueue entity.
// If the LockWaitQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockWaitQueueMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *LockWaitQueueMutation) ResetResourceID() {
	m.resource_id = nil
}

// SetAgentID sets the "agent_id" field.
func (m *LockWaitQueueMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *LockWaitQueueMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the LockWaitQueue entity.
// If the LockWaitQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockWaitQueueMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *LockWaitQueueMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetRequestedAt sets the "requested_at" field.
func (m *LockWaitQueueMutation) SetRequestedAt(t time.Time) {
	m.requested_at = &t
}

// RequestedAt returns the value of the "requested_at" field in the mutation.
func (m *LockWaitQueueMutation) RequestedAt() (r time.Time, exists bool) {
	v := m.requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedAt returns the old "requested_at" field's value of the LockWaitQueue entity.
// If the LockWaitQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockWaitQueueMutation) OldRequestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedAt: %w", err)
	}
	return oldValue.RequestedAt, nil
}

// ResetRequestedAt resets all changes to the "requested_at" field.
func (m *LockWaitQueueMutation) ResetRequestedAt() {
	m.requested_at = nil
}

// SetTimeoutAt sets the "timeout_at" field.
func (m *LockWaitQueueMutation) SetTimeoutAt(t time.Time) {
	m.timeout_at = &t
}

// TimeoutAt returns the value of the "timeout_at" field in the mutation.
func (m *LockWaitQueueMutation) TimeoutAt() (r time.Time, exists bool) {
	v := m.timeout_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutAt returns the old "timeout_at" field's value of the LockWaitQueue entity.
// If the LockWaitQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockWaitQueueMutation) OldTimeoutAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutAt: %w", err)
	}
	return oldValue.TimeoutAt, nil
}

// ResetTimeoutAt resets all changes to the "timeout_at" field.
func (m *LockWaitQueueMutation) ResetTimeoutAt() {
	m.timeout_at = nil
}

// SetPriority sets the "priority" field.
func (m *LockWaitQueueMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *LockWaitQueueMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the LockWaitQueue entity.
// If the LockWaitQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockWaitQueueMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *LockWaitQueueMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *LockWaitQueueMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *LockWaitQueueMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetMetadata sets the "metadata" field.
func (m *LockWaitQueueMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *LockWaitQueueMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the LockWaitQueue entity.
// If the LockWaitQueue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LockWaitQueueMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *LockWaitQueueMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[lockwaitqueue.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *LockWaitQueueMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[lockwaitqueue.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *LockWaitQueueMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, lockwaitqueue.FieldMetadata)
}

// Where appends a list predicates to the LockWaitQueueMutation builder.
func (m *LockWaitQueueMutation) Where(ps ...predicate.LockWaitQueue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LockWaitQueueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LockWaitQueueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LockWaitQueue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LockWaitQueueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LockWaitQueueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LockWaitQueue).
func (m *LockWaitQueueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LockWaitQueueMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.resource_id != nil {
		fields = append(fields, lockwaitqueue.FieldResourceID)
	}
	if m.agent_id != nil {
		fields = append(fields, lockwaitqueue.FieldAgentID)
	}
	if m.requested_at != nil {
		fields = append(fields, lockwaitqueue.FieldRequestedAt)
	}
	if m.timeout_at != nil {
		fields = append(fields, lockwaitqueue.FieldTimeoutAt)
	}
	if m.priority != nil {
		fields = append(fields, lockwaitqueue.FieldPriority)
	}
	if m.metadata != nil {
		fields = append(fields, lockwaitqueue.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LockWaitQueueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lockwaitqueue.FieldResourceID:
		return m.ResourceID()
	case lockwaitqueue.FieldAgentID:
		return m.AgentID()
	case lockwaitqueue.FieldRequestedAt:
		return m.RequestedAt()
	case lockwaitqueue.FieldTimeoutAt:
		return m.TimeoutAt()
	case lockwaitqueue.FieldPriority:
		return m.Priority()
	case lockwaitqueue.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LockWaitQueueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lockwaitqueue.FieldResourceID:
		return m.OldResourceID(ctx)
	case lockwaitqueue.FieldAgentID:
		return m.OldAgentID(ctx)
	case lockwaitqueue.FieldRequestedAt:
		return m.OldRequestedAt(ctx)
	case lockwaitqueue.FieldTimeoutAt:
		return m.OldTimeoutAt(ctx)
	case lockwaitqueue.FieldPriority:
		return m.OldPriority(ctx)
	case lockwaitqueue.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown LockWaitQueue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LockWaitQueueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lockwaitqueue.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case lockwaitqueue.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case lockwaitqueue.FieldRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedAt(v)
		return nil
	case lockwaitqueue.FieldTimeoutAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutAt(v)
		return nil
	case lockwaitqueue.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case lockwaitqueue.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown LockWaitQueue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LockWaitQueueMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, lockwaitqueue.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LockWaitQueueMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lockwaitqueue.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LockWaitQueueMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lockwaitqueue.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown LockWaitQueue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LockWaitQueueMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lockwaitqueue.FieldMetadata) {
		fields = append(fields, lockwaitqueue.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LockWaitQueueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LockWaitQueueMutation) ClearField(name string) error {
	switch name {
	case lockwaitqueue.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown LockWaitQueue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LockWaitQueueMutation) ResetField(name string) error {
	switch name {
	case lockwaitqueue.FieldResourceID:
		m.ResetResourceID()
		return nil
	case lockwaitqueue.FieldAgentID:
		m.ResetAgentID()
		return nil
	case lockwaitqueue.FieldRequestedAt:
		m.ResetRequestedAt()
		return nil
	case lockwaitqueue.FieldTimeoutAt:
		m.ResetTimeoutAt()
		return nil
	case lockwaitqueue.FieldPriority:
		m.ResetPriority()
		return nil
	case lockwaitqueue.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown LockWaitQueue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LockWaitQueueMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LockWaitQueueMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LockWaitQueueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LockWaitQueueMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LockWaitQueueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LockWaitQueueMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LockWaitQueueMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LockWaitQueue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LockWaitQueueMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LockWaitQueue edge %s", name)
}

// ResourceLockMutation represents an operation that mutates the ResourceLock nodes in the graph.
type ResourceLockMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_id      *string
	lock_key      *int64
	addlock_key   *int64
	acquired_at   *time.Time
	expires_at    *time.Time
	reason        *string
	metadata      *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ResourceLock, error)
	predicates    []predicate.ResourceLock
}

var _ ent.Mutation = (*ResourceLockMutation)(nil)

// resourcelockOption allows management of the mutation configuration using functional options.
type resourcelockOption func(*ResourceLockMutation)

// newResourceLockMutation creates new mutation for the ResourceLock entity.
func newResourceLockMutation(c config, op Op, opts ...resourcelockOption) *ResourceLockMutation {
	m := &ResourceLockMutation{
		config:        c,
		op:            op,
		typ:           TypeResourceLock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResourceLockID sets the ID field of the mutation.
func withResourceLockID(id string) resourcelockOption {
	return func(m *ResourceLockMutation) {
		var (
			err   error
			once  sync.Once
			value *ResourceLock
		)
		m.oldValue = func(ctx context.Context) (*ResourceLock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResourceLock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResourceLock sets the old ResourceLock of the mutation.
func withResourceLock(node *ResourceLock) resourcelockOption {
	return func(m *ResourceLockMutation) {
		m.oldValue = func(context.Context) (*ResourceLock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResourceLockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResourceLockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResourceLock entities.
func (m *ResourceLockMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResourceLockMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResourceLockMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResourceLock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *ResourceLockMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ResourceLockMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ResourceLockMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetLockKey sets the "lock_key" field.
func (m *ResourceLockMutation) SetLockKey(i int64) {
	m.lock_key = &i
	m.addlock_key = nil
}

// LockKey returns the value of the "lock_key" field in the mutation.
func (m *ResourceLockMutation) LockKey() (r int64, exists bool) {
	v := m.lock_key
	if v == nil {
		return
	}
	return *v, true
}

// OldLockKey returns the old "lock_key" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldLockKey(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockKey: %w", err)
	}
	return oldValue.LockKey, nil
}

// AddLockKey adds i to the "lock_key" field.
func (m *ResourceLockMutation) AddLockKey(i int64) {
	if m.addlock_key != nil {
		*m.addlock_key += i
	} else {
		m.addlock_key = &i
	}
}

// AddedLockKey returns the value that was added to the "lock_key" field in this mutation.
func (m *ResourceLockMutation) AddedLockKey() (r int64, exists bool) {
	v := m.addlock_key
	if v == nil {
		return
	}
	return *v, true
}

// ResetLockKey resets all changes to the "lock_key" field.
func (m *ResourceLockMutation) ResetLockKey() {
	m.lock_key = nil
	m.addlock_key = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *ResourceLockMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *ResourceLockMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *ResourceLockMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ResourceLockMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ResourceLockMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ResourceLockMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetReason sets the "reason" field.
func (m *ResourceLockMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ResourceLockMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *ResourceLockMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[resourcelock.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *ResourceLockMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[resourcelock.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *ResourceLockMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, resourcelock.FieldReason)
}

// SetMetadata sets the "metadata" field.
func (m *ResourceLockMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ResourceLockMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ResourceLock entity.
// If the ResourceLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceLockMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ResourceLockMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[resourcelock.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ResourceLockMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[resourcelock.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ResourceLockMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, resourcelock.FieldMetadata)
}

// Where appends a list predicates to the ResourceLockMutation builder.
func (m *ResourceLockMutation) Where(ps ...predicate.ResourceLock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResourceLockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResourceLockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResourceLock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResourceLockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResourceLockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResourceLock).
func (m *ResourceLockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResourceLockMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.agent_id != nil {
		fields = append(fields, resourcelock.FieldAgentID)
	}
	if m.lock_key != nil {
		fields = append(fields, resourcelock.FieldLockKey)
	}
	if m.acquired_at != nil {
		fields = append(fields, resourcelock.FieldAcquiredAt)
	}
	if m.expires_at != nil {
		fields = append(fields, resourcelock.FieldExpiresAt)
	}
	if m.reason != nil {
		fields = append(fields, resourcelock.FieldReason)
	}
	if m.metadata != nil {
		fields = append(fields, resourcelock.FieldMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResourceLockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resourcelock.FieldAgentID:
		return m.AgentID()
	case resourcelock.FieldLockKey:
		return m.LockKey()
	case resourcelock.FieldAcquiredAt:
		return m.AcquiredAt()
	case resourcelock.FieldExpiresAt:
		return m.ExpiresAt()
	case resourcelock.FieldReason:
		return m.Reason()
	case resourcelock.FieldMetadata:
		return m.Metadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResourceLockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resourcelock.FieldAgentID:
		return m.OldAgentID(ctx)
	case resourcelock.FieldLockKey:
		return m.OldLockKey(ctx)
	case resourcelock.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case resourcelock.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case resourcelock.FieldReason:
		return m.OldReason(ctx)
	case resourcelock.FieldMetadata:
		return m.OldMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown ResourceLock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResourceLockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resourcelock.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case resourcelock.FieldLockKey:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockKey(v)
		return nil
	case resourcelock.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case resourcelock.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case resourcelock.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case resourcelock.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown ResourceLock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResourceLockMutation) AddedFields() []string {
	var fields []string
	if m.addlock_key != nil {
		fields = append(fields, resourcelock.FieldLockKey)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResourceLockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case resourcelock.FieldLockKey:
		return m.AddedLockKey()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResourceLockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case resourcelock.FieldLockKey:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLockKey(v)
		return nil
	}
	return fmt.Errorf("unknown ResourceLock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResourceLockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(resourcelock.FieldReason) {
		fields = append(fields, resourcelock.FieldReason)
	}
	if m.FieldCleared(resourcelock.FieldMetadata) {
		fields = append(fields, resourcelock.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResourceLockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResourceLockMutation) ClearField(name string) error {
	switch name {
	case resourcelock.FieldReason:
		m.ClearReason()
		return nil
	case resourcelock.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ResourceLock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResourceLockMutation) ResetField(name string) error {
	switch name {
	case resourcelock.FieldAgentID:
		m.ResetAgentID()
		return nil
	case resourcelock.FieldLockKey:
		m.ResetLockKey()
		return nil
	case resourcelock.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case resourcelock.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case resourcelock.FieldReason:
		m.ResetReason()
		return nil
	case resourcelock.FieldMetadata:
		m.ResetMetadata()
		return nil
	}
	return fmt.Errorf("unknown ResourceLock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResourceLockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResourceLockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResourceLockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResourceLockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResourceLockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResourceLockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResourceLockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ResourceLock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResourceLockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ResourceLock edge %s", name)
}

// TaskIssueMappingMutation represents an operation that mutates the TaskIssueMapping nodes in the graph.
type TaskIssueMappingMutation struct {
	config
	op            Op
	typ           string
	id            *string
	issue_ref     *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TaskIssueMapping, error)
	predicates    []predicate.TaskIssueMapping
}

var _ ent.Mutation = (*TaskIssueMappingMutation)(nil)

// taskissuemappingOption allows management of the mutation configuration using functional options.
type taskissuemappingOption func(*TaskIssueMappingMutation)

// newTaskIssueMappingMutation creates new mutation for the TaskIssueMapping entity.
func newTaskIssueMappingMutation(c config, op Op, opts ...taskissuemappingOption) *TaskIssueMappingMutation {
	m := &TaskIssueMappingMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskIssueMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskIssueMappingID sets the ID field of the mutation.
func withTaskIssueMappingID(id string) taskissuemappingOption {
	return func(m *TaskIssueMappingMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskIssueMapping
		)
		m.oldValue = func(ctx context.Context) (*TaskIssueMapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskIssueMapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskIssueMapping sets the old TaskIssueMapping of the mutation.
func withTaskIssueMapping(node *TaskIssueMapping) taskissuemappingOption {
	return func(m *TaskIssueMappingMutation) {
		m.oldValue = func(context.Context) (*TaskIssueMapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskIssueMappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskIssueMappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaskIssueMapping entities.
func (m *TaskIssueMappingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskIssueMappingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskIssueMappingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskIssueMapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIssueRef sets the "issue_ref" field.
func (m *TaskIssueMappingMutation) SetIssueRef(s string) {
	m.issue_ref = &s
}

// IssueRef returns the value of the "issue_ref" field in the mutation.
func (m *TaskIssueMappingMutation) IssueRef() (r string, exists bool) {
	v := m.issue_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueRef returns the old "issue_ref" field's value of the TaskIssueMapping entity.
// If the TaskIssueMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskIssueMappingMutation) OldIssueRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueRef: %w", err)
	}
	return oldValue.IssueRef, nil
}

// ResetIssueRef resets all changes to the "issue_ref" field.
func (m *TaskIssueMappingMutation) ResetIssueRef() {
	m.issue_ref = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskIssueMappingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskIssueMappingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskIssueMapping entity.
// If the TaskIssueMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskIssueMappingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskIssueMappingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the TaskIssueMappingMutation builder.
func (m *TaskIssueMappingMutation) Where(ps ...predicate.TaskIssueMapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskIssueMappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskIssueMappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskIssueMapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskIssueMappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskIssueMappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskIssueMapping).
func (m *TaskIssueMappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskIssueMappingMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.issue_ref != nil {
		fields = append(fields, taskissuemapping.FieldIssueRef)
	}
	if m.created_at != nil {
		fields = append(fields, taskissuemapping.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskIssueMappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskissuemapping.FieldIssueRef:
		return m.IssueRef()
	case taskissuemapping.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskIssueMappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskissuemapping.FieldIssueRef:
		return m.OldIssueRef(ctx)
	case taskissuemapping.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskIssueMapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskIssueMappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskissuemapping.FieldIssueRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueRef(v)
		return nil
	case taskissuemapping.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskIssueMapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskIssueMappingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskIssueMappingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskIssueMappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TaskIssueMapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskIssueMappingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskIssueMappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskIssueMappingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskIssueMapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskIssueMappingMutation) ResetField(name string) error {
	switch name {
	case taskissuemapping.FieldIssueRef:
		m.ResetIssueRef()
		return nil
	case taskissuemapping.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskIssueMapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskIssueMappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskIssueMappingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskIssueMappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskIssueMappingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskIssueMappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskIssueMappingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskIssueMappingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskIssueMapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskIssueMappingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskIssueMapping edge %s", name)
}

// WorkflowMutation represents an operation that mutates the Workflow nodes in the graph.
type WorkflowMutation struct {
	config
	op                Op
	typ               string
	id                *string
	template_name     *string
	status            *workflow.Status
	current_step      *string
	context           *map[string]interface{}
	outputs           *map[string]interface{}
	step_statuses     *map[string]string
	version           *int
	addversion        *int
	task_id           *string
	error_message     *string
	pod_id            *string
	last_heartbeat_at *time.Time
	started_at        *time.Time
	updated_at        *time.Time
	completed_at      *time.Time
	clearedFields     map[string]struct{}
	approvals         map[string]struct{}
	removedapprovals  map[string]struct{}
	clearedapprovals  bool
	events            map[int64]struct{}
	removedevents     map[int64]struct{}
	clearedevents     bool
	done              bool
	oldValue          func(context.Context) (*Workflow, error)
	predicates        []predicate.Workflow
}

var _ ent.Mutation = (*WorkflowMutation)(nil)

// workflowOption allows management of the mutation configuration using functional options.
type workflowOption func(*WorkflowMutation)

// newWorkflowMutation creates new mutation for the Workflow entity.
func newWorkflowMutation(c config, op Op, opts ...workflowOption) *WorkflowMutation {
	m := &WorkflowMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowID sets the ID field of the mutation.
func withWorkflowID(id string) workflowOption {
	return func(m *WorkflowMutation) {
		var (
			err   error
			once  sync.Once
			value *Workflow
		)
		m.oldValue = func(ctx context.Context) (*Workflow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workflow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflow sets the old Workflow of the mutation.
func withWorkflow(node *Workflow) workflowOption {
	return func(m *WorkflowMutation) {
		m.oldValue = func(context.Context) (*Workflow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workflow entities.
func (m *WorkflowMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workflow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTemplateName sets the "template_name" field.
func (m *WorkflowMutation) SetTemplateName(s string) {
	m.template_name = &s
}

// TemplateName returns the value of the "template_name" field in the mutation.
func (m *WorkflowMutation) TemplateName() (r string, exists bool) {
	v := m.template_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateName returns the old "template_name" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldTemplateName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateName: %w", err)
	}
	return oldValue.TemplateName, nil
}

// ResetTemplateName resets all changes to the "template_name" field.
func (m *WorkflowMutation) ResetTemplateName() {
	m.template_name = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowMutation) SetStatus(w workflow.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowMutation) Status() (r workflow.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldStatus(ctx context.Context) (v workflow.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *WorkflowMutation) SetCurrentStep(s string) {
	m.current_step = &s
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *WorkflowMutation) CurrentStep() (r string, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCurrentStep(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// ClearCurrentStep clears the value of the "current_step" field.
func (m *WorkflowMutation) ClearCurrentStep() {
	m.current_step = nil
	m.clearedFields[workflow.FieldCurrentStep] = struct{}{}
}

// CurrentStepCleared returns if the "current_step" field was cleared in this mutation.
func (m *WorkflowMutation) CurrentStepCleared() bool {
	_, ok := m.clearedFields[workflow.FieldCurrentStep]
	return ok
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *WorkflowMutation) ResetCurrentStep() {
	m.current_step = nil
	delete(m.clearedFields, workflow.FieldCurrentStep)
}

// SetContext sets the "context" field.
func (m *WorkflowMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *WorkflowMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ResetContext resets all changes to the "context" field.
func (m *WorkflowMutation) ResetContext() {
	m.context = nil
}

// SetOutputs sets the "outputs" field.
func (m *WorkflowMutation) SetOutputs(value map[string]interface{}) {
	m.outputs = &value
}

// Outputs returns the value of the "outputs" field in the mutation.
func (m *WorkflowMutation) Outputs() (r map[string]interface{}, exists bool) {
	v := m.outputs
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputs returns the old "outputs" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldOutputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputs: %w", err)
	}
	return oldValue.Outputs, nil
}

// ClearOutputs clears the value of the "outputs" field.
func (m *WorkflowMutation) ClearOutputs() {
	m.outputs = nil
	m.clearedFields[workflow.FieldOutputs] = struct{}{}
}

// OutputsCleared returns if the "outputs" field was cleared in this mutation.
func (m *WorkflowMutation) OutputsCleared() bool {
	_, ok := m.clearedFields[workflow.FieldOutputs]
	return ok
}

// ResetOutputs resets all changes to the "outputs" field.
func (m *WorkflowMutation) ResetOutputs() {
	m.outputs = nil
	delete(m.clearedFields, workflow.FieldOutputs)
}

// SetStepStatuses sets the "step_statuses" field.
func (m *WorkflowMutation) SetStepStatuses(value map[string]string) {
	m.step_statuses = &value
}

// StepStatuses returns the value of the "step_statuses" field in the mutation.
func (m *WorkflowMutation) StepStatuses() (r map[string]string, exists bool) {
	v := m.step_statuses
	if v == nil {
		return
	}
	return *v, true
}

// OldStepStatuses returns the old "step_statuses" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldStepStatuses(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepStatuses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepStatuses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepStatuses: %w", err)
	}
	return oldValue.StepStatuses, nil
}

// ClearStepStatuses clears the value of the "step_statuses" field.
func (m *WorkflowMutation) ClearStepStatuses() {
	m.step_statuses = nil
	m.clearedFields[workflow.FieldStepStatuses] = struct{}{}
}

// StepStatusesCleared returns if the "step_statuses" field was cleared in this mutation.
func (m *WorkflowMutation) StepStatusesCleared() bool {
	_, ok := m.clearedFields[workflow.FieldStepStatuses]
	return ok
}

// ResetStepStatuses resets all changes to the "step_statuses" field.
func (m *WorkflowMutation) ResetStepStatuses() {
	m.step_statuses = nil
	delete(m.clearedFields, workflow.FieldStepStatuses)
}

// SetVersion sets the "version" field.
func (m *WorkflowMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *WorkflowMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *WorkflowMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *WorkflowMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *WorkflowMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetTaskID sets the "task_id" field.
func (m *WorkflowMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *WorkflowMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *WorkflowMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[workflow.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *WorkflowMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[workflow.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *WorkflowMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, workflow.FieldTaskID)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflow.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflow.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflow.FieldErrorMessage)
}

// SetPodID sets the "pod_id" field.
func (m *WorkflowMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *WorkflowMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *WorkflowMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[workflow.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *WorkflowMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[workflow.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *WorkflowMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, workflow.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *WorkflowMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *WorkflowMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *WorkflowMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[workflow.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *WorkflowMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *WorkflowMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, workflow.FieldLastHeartbeatAt)
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflow.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflow.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflow.FieldCompletedAt)
}

// AddApprovalIDs adds the "approvals" edge to the ApprovalRequest entity by ids.
func (m *WorkflowMutation) AddApprovalIDs(ids ...string) {
	if m.approvals == nil {
		m.approvals = make(map[string]struct{})
	}
	for i := range ids {
		m.approvals[ids[i]] = struct{}{}
	}
}

// ClearApprovals clears the "approvals" edge to the ApprovalRequest entity.
func (m *WorkflowMutation) ClearApprovals() {
	m.clearedapprovals = true
}

// ApprovalsCleared reports if the "approvals" edge to the ApprovalRequest entity was cleared.
func (m *WorkflowMutation) ApprovalsCleared() bool {
	return m.clearedapprovals
}

// RemoveApprovalIDs removes the "approvals" edge to the ApprovalRequest entity by IDs.
func (m *WorkflowMutation) RemoveApprovalIDs(ids ...string) {
	if m.removedapprovals == nil {
		m.removedapprovals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.approvals, ids[i])
		m.removedapprovals[ids[i]] = struct{}{}
	}
}

// RemovedApprovals returns the removed IDs of the "approvals" edge to the ApprovalRequest entity.
func (m *WorkflowMutation) RemovedApprovalsIDs() (ids []string) {
	for id := range m.removedapprovals {
		ids = append(ids, id)
	}
	return
}

// ApprovalsIDs returns the "approvals" edge IDs in the mutation.
func (m *WorkflowMutation) ApprovalsIDs() (ids []string) {
	for id := range m.approvals {
		ids = append(ids, id)
	}
	return
}

// ResetApprovals resets all changes to the "approvals" edge.
func (m *WorkflowMutation) ResetApprovals() {
	m.approvals = nil
	m.clearedapprovals = false
	m.removedapprovals = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *WorkflowMutation) AddEventIDs(ids ...int64) {
	if m.events == nil {
		m.events = make(map[int64]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *WorkflowMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *WorkflowMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *WorkflowMutation) RemoveEventIDs(ids ...int64) {
	if m.removedevents == nil {
		m.removedevents = make(map[int64]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *WorkflowMutation) RemovedEventsIDs() (ids []int64) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *WorkflowMutation) EventsIDs() (ids []int64) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *WorkflowMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the WorkflowMutation builder.
func (m *WorkflowMutation) Where(ps ...predicate.Workflow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workflow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workflow).
func (m *WorkflowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.template_name != nil {
		fields = append(fields, workflow.FieldTemplateName)
	}
	if m.status != nil {
		fields = append(fields, workflow.FieldStatus)
	}
	if m.current_step != nil {
		fields = append(fields, workflow.FieldCurrentStep)
	}
	if m.context != nil {
		fields = append(fields, workflow.FieldContext)
	}
	if m.outputs != nil {
		fields = append(fields, workflow.FieldOutputs)
	}
	if m.step_statuses != nil {
		fields = append(fields, workflow.FieldStepStatuses)
	}
	if m.version != nil {
		fields = append(fields, workflow.FieldVersion)
	}
	if m.task_id != nil {
		fields = append(fields, workflow.FieldTaskID)
	}
	if m.error_message != nil {
		fields = append(fields, workflow.FieldErrorMessage)
	}
	if m.pod_id != nil {
		fields = append(fields, workflow.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, workflow.FieldLastHeartbeatAt)
	}
	if m.started_at != nil {
		fields = append(fields, workflow.FieldStartedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflow.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflow.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldTemplateName:
		return m.TemplateName()
	case workflow.FieldStatus:
		return m.Status()
	case workflow.FieldCurrentStep:
		return m.CurrentStep()
	case workflow.FieldContext:
		return m.Context()
	case workflow.FieldOutputs:
		return m.Outputs()
	case workflow.FieldStepStatuses:
		return m.StepStatuses()
	case workflow.FieldVersion:
		return m.Version()
	case workflow.FieldTaskID:
		return m.TaskID()
	case workflow.FieldErrorMessage:
		return m.ErrorMessage()
	case workflow.FieldPodID:
		return m.PodID()
	case workflow.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case workflow.FieldStartedAt:
		return m.StartedAt()
	case workflow.FieldUpdatedAt:
		return m.UpdatedAt()
	case workflow.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflow.FieldTemplateName:
		return m.OldTemplateName(ctx)
	case workflow.FieldStatus:
		return m.OldStatus(ctx)
	case workflow.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case workflow.FieldContext:
		return m.OldContext(ctx)
	case workflow.FieldOutputs:
		return m.OldOutputs(ctx)
	case workflow.FieldStepStatuses:
		return m.OldStepStatuses(ctx)
	case workflow.FieldVersion:
		return m.OldVersion(ctx)
	case workflow.FieldTaskID:
		return m.OldTaskID(ctx)
	case workflow.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflow.FieldPodID:
		return m.OldPodID(ctx)
	case workflow.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case workflow.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflow.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case workflow.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workflow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldTemplateName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateName(v)
		return nil
	case workflow.FieldStatus:
		v, ok := value.(workflow.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflow.FieldCurrentStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case workflow.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case workflow.FieldOutputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputs(v)
		return nil
	case workflow.FieldStepStatuses:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepStatuses(v)
		return nil
	case workflow.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case workflow.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case workflow.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflow.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case workflow.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case workflow.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflow.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case workflow.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, workflow.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflow.FieldCurrentStep) {
		fields = append(fields, workflow.FieldCurrentStep)
	}
	if m.FieldCleared(workflow.FieldOutputs) {
		fields = append(fields, workflow.FieldOutputs)
	}
	if m.FieldCleared(workflow.FieldStepStatuses) {
		fields = append(fields, workflow.FieldStepStatuses)
	}
	if m.FieldCleared(workflow.FieldTaskID) {
		fields = append(fields, workflow.FieldTaskID)
	}
	if m.FieldCleared(workflow.FieldErrorMessage) {
		fields = append(fields, workflow.FieldErrorMessage)
	}
	if m.FieldCleared(workflow.FieldPodID) {
		fields = append(fields, workflow.FieldPodID)
	}
	if m.FieldCleared(workflow.FieldLastHeartbeatAt) {
		fields = append(fields, workflow.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(workflow.FieldCompletedAt) {
		fields = append(fields, workflow.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowMutation) ClearField(name string) error {
	switch name {
	case workflow.FieldCurrentStep:
		m.ClearCurrentStep()
		return nil
	case workflow.FieldOutputs:
		m.ClearOutputs()
		return nil
	case workflow.FieldStepStatuses:
		m.ClearStepStatuses()
		return nil
	case workflow.FieldTaskID:
		m.ClearTaskID()
		return nil
	case workflow.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflow.FieldPodID:
		m.ClearPodID()
		return nil
	case workflow.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case workflow.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowMutation) ResetField(name string) error {
	switch name {
	case workflow.FieldTemplateName:
		m.ResetTemplateName()
		return nil
	case workflow.FieldStatus:
		m.ResetStatus()
		return nil
	case workflow.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case workflow.FieldContext:
		m.ResetContext()
		return nil
	case workflow.FieldOutputs:
		m.ResetOutputs()
		return nil
	case workflow.FieldStepStatuses:
		m.ResetStepStatuses()
		return nil
	case workflow.FieldVersion:
		m.ResetVersion()
		return nil
	case workflow.FieldTaskID:
		m.ResetTaskID()
		return nil
	case workflow.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflow.FieldPodID:
		m.ResetPodID()
		return nil
	case workflow.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case workflow.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflow.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case workflow.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.approvals != nil {
		edges = append(edges, workflow.EdgeApprovals)
	}
	if m.events != nil {
		edges = append(edges, workflow.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeApprovals:
		ids := make([]ent.Value, 0, len(m.approvals))
		for id := range m.approvals {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedapprovals != nil {
		edges = append(edges, workflow.EdgeApprovals)
	}
	if m.removedevents != nil {
		edges = append(edges, workflow.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeApprovals:
		ids := make([]ent.Value, 0, len(m.removedapprovals))
		for id := range m.removedapprovals {
			ids = append(ids, id)
		}
		return ids
	case workflow.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedapprovals {
		edges = append(edges, workflow.EdgeApprovals)
	}
	if m.clearedevents {
		edges = append(edges, workflow.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowMutation) EdgeCleared(name string) bool {
	switch name {
	case workflow.EdgeApprovals:
		return m.clearedapprovals
	case workflow.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Workflow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowMutation) ResetEdge(name string) error {
	switch name {
	case workflow.EdgeApprovals:
		m.ResetApprovals()
		return nil
	case workflow.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Workflow edge %s", name)
}
