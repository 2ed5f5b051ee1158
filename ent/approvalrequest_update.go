// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conductorhq/conductor/ent/approvalrequest"
	"github.com/conductorhq/conductor/ent/predicate"
	"github.com/conductorhq/conductor/ent/workflow"
)

// ApprovalRequestUpdate is the builder for updating ApprovalRequest entities.
type ApprovalRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalRequestMutation
}

// Where appends a list predicates to the ApprovalRequestUpdate builder.
func (_u *ApprovalRequestUpdate) Where(ps ...predicate.ApprovalRequest) *ApprovalRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *ApprovalRequestUpdate) SetWorkflowID(v string) *ApprovalRequestUpdate {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableWorkflowID(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *ApprovalRequestUpdate) SetStepID(v string) *ApprovalRequestUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableStepID(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetRiskAssessment sets the "risk_assessment" field.
func (_u *ApprovalRequestUpdate) SetRiskAssessment(v string) *ApprovalRequestUpdate {
	_u.mutation.SetRiskAssessment(v)
	return _u
}

// SetNillableRiskAssessment sets the "risk_assessment" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableRiskAssessment(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetRiskAssessment(*v)
	}
	return _u
}

// ClearRiskAssessment clears the value of the "risk_assessment" field.
func (_u *ApprovalRequestUpdate) ClearRiskAssessment() *ApprovalRequestUpdate {
	_u.mutation.ClearRiskAssessment()
	return _u
}

// SetRisk sets the "risk" field.
func (_u *ApprovalRequestUpdate) SetRisk(v string) *ApprovalRequestUpdate {
	_u.mutation.SetRisk(v)
	return _u
}

// SetNillableRisk sets the "risk" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableRisk(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetRisk(*v)
	}
	return _u
}

// ClearRisk clears the value of the "risk" field.
func (_u *ApprovalRequestUpdate) ClearRisk() *ApprovalRequestUpdate {
	_u.mutation.ClearRisk()
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ApprovalRequestUpdate) SetDecision(v approvalrequest.Decision) *ApprovalRequestUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableDecision(v *approvalrequest.Decision) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *ApprovalRequestUpdate) SetDecidedBy(v string) *ApprovalRequestUpdate {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableDecidedBy(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *ApprovalRequestUpdate) ClearDecidedBy() *ApprovalRequestUpdate {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ApprovalRequestUpdate) SetDecidedAt(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableDecidedAt(v *time.Time) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ApprovalRequestUpdate) ClearDecidedAt() *ApprovalRequestUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_u *ApprovalRequestUpdate) SetWorkflow(v *Workflow) *ApprovalRequestUpdate {
	return _u.SetWorkflowID(v.ID)
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_u *ApprovalRequestUpdate) Mutation() *ApprovalRequestMutation {
	return _u.mutation
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (_u *ApprovalRequestUpdate) ClearWorkflow() *ApprovalRequestUpdate {
	_u.mutation.ClearWorkflow()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRequestUpdate) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := approvalrequest.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.decision": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalRequest.workflow"`)
	}
	return nil
}

func (_u *ApprovalRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrequest.Table, approvalrequest.Columns, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(approvalrequest.FieldStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskAssessment(); ok {
		_spec.SetField(approvalrequest.FieldRiskAssessment, field.TypeString, value)
	}
	if _u.mutation.RiskAssessmentCleared() {
		_spec.ClearField(approvalrequest.FieldRiskAssessment, field.TypeString)
	}
	if value, ok := _u.mutation.Risk(); ok {
		_spec.SetField(approvalrequest.FieldRisk, field.TypeString, value)
	}
	if _u.mutation.RiskCleared() {
		_spec.ClearField(approvalrequest.FieldRisk, field.TypeString)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(approvalrequest.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(approvalrequest.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(approvalrequest.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(approvalrequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(approvalrequest.FieldDecidedAt, field.TypeTime)
	}
	if _u.mutation.WorkflowCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvalrequest.WorkflowTable,
			Columns: []string{approvalrequest.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvalrequest.WorkflowTable,
			Columns: []string{approvalrequest.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalRequestUpdateOne is the builder for updating a single ApprovalRequest entity.
type ApprovalRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalRequestMutation
}

// SetWorkflowID sets the "workflow_id" field.
func (_u *ApprovalRequestUpdateOne) SetWorkflowID(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetWorkflowID(v)
	return _u
}

// SetNillableWorkflowID sets the "workflow_id" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableWorkflowID(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetWorkflowID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *ApprovalRequestUpdateOne) SetStepID(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableStepID(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// SetRiskAssessment sets the "risk_assessment" field.
func (_u *ApprovalRequestUpdateOne) SetRiskAssessment(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetRiskAssessment(v)
	return _u
}

// SetNillableRiskAssessment sets the "risk_assessment" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableRiskAssessment(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetRiskAssessment(*v)
	}
	return _u
}

// ClearRiskAssessment clears the value of the "risk_assessment" field.
func (_u *ApprovalRequestUpdateOne) ClearRiskAssessment() *ApprovalRequestUpdateOne {
	_u.mutation.ClearRiskAssessment()
	return _u
}

// SetRisk sets the "risk" field.
func (_u *ApprovalRequestUpdateOne) SetRisk(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetRisk(v)
	return _u
}

// SetNillableRisk sets the "risk" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableRisk(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetRisk(*v)
	}
	return _u
}

// ClearRisk clears the value of the "risk" field.
func (_u *ApprovalRequestUpdateOne) ClearRisk() *ApprovalRequestUpdateOne {
	_u.mutation.ClearRisk()
	return _u
}

// SetDecision sets the "decision" field.
func (_u *ApprovalRequestUpdateOne) SetDecision(v approvalrequest.Decision) *ApprovalRequestUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableDecision(v *approvalrequest.Decision) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *ApprovalRequestUpdateOne) SetDecidedBy(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableDecidedBy(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *ApprovalRequestUpdateOne) ClearDecidedBy() *ApprovalRequestUpdateOne {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ApprovalRequestUpdateOne) SetDecidedAt(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableDecidedAt(v *time.Time) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ApprovalRequestUpdateOne) ClearDecidedAt() *ApprovalRequestUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetWorkflow sets the "workflow" edge to the Workflow entity.
func (_u *ApprovalRequestUpdateOne) SetWorkflow(v *Workflow) *ApprovalRequestUpdateOne {
	return _u.SetWorkflowID(v.ID)
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_u *ApprovalRequestUpdateOne) Mutation() *ApprovalRequestMutation {
	return _u.mutation
}

// ClearWorkflow clears the "workflow" edge to the Workflow entity.
func (_u *ApprovalRequestUpdateOne) ClearWorkflow() *ApprovalRequestUpdateOne {
	_u.mutation.ClearWorkflow()
	return _u
}

// Where appends a list predicates to the ApprovalRequestUpdate builder.
func (_u *ApprovalRequestUpdateOne) Where(ps ...predicate.ApprovalRequest) *ApprovalRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalRequestUpdateOne) Select(field string, fields ...string) *ApprovalRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalRequest entity.
func (_u *ApprovalRequestUpdateOne) Save(ctx context.Context) (*ApprovalRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRequestUpdateOne) SaveX(ctx context.Context) *ApprovalRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := approvalrequest.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.decision": %w`, err)}
		}
	}
	if _u.mutation.WorkflowCleared() && len(_u.mutation.WorkflowIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalRequest.workflow"`)
	}
	return nil
}

func (_u *ApprovalRequestUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrequest.Table, approvalrequest.Columns, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalrequest.FieldID)
		for _, f := range fields {
			if !approvalrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalrequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(approvalrequest.FieldStepID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RiskAssessment(); ok {
		_spec.SetField(approvalrequest.FieldRiskAssessment, field.TypeString, value)
	}
	if _u.mutation.RiskAssessmentCleared() {
		_spec.ClearField(approvalrequest.FieldRiskAssessment, field.TypeString)
	}
	if value, ok := _u.mutation.Risk(); ok {
		_spec.SetField(approvalrequest.FieldRisk, field.TypeString, value)
	}
	if _u.mutation.RiskCleared() {
		_spec.ClearField(approvalrequest.FieldRisk, field.TypeString)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(approvalrequest.FieldDecision, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(approvalrequest.FieldDecidedBy, field.TypeString, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(approvalrequest.FieldDecidedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(approvalrequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(approvalrequest.FieldDecidedAt, field.TypeTime)
	}
	if _u.mutation.WorkflowCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvalrequest.WorkflowTable,
			Columns: []string{approvalrequest.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvalrequest.WorkflowTable,
			Columns: []string{approvalrequest.WorkflowColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ApprovalRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
