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
	"github.com/conductorhq/conductor/ent/event"
	"github.com/conductorhq/conductor/ent/predicate"
	"github.com/conductorhq/conductor/ent/workflow"
)

// WorkflowUpdate is the builder for updating Workflow entities.
type WorkflowUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowMutation
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdate) Where(ps ...predicate.Workflow) *WorkflowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTemplateName sets the "template_name" field.
func (_u *WorkflowUpdate) SetTemplateName(v string) *WorkflowUpdate {
	_u.mutation.SetTemplateName(v)
	return _u
}

// SetNillableTemplateName sets the "template_name" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableTemplateName(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetTemplateName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowUpdate) SetStatus(v workflow.Status) *WorkflowUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableStatus(v *workflow.Status) *WorkflowUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *WorkflowUpdate) SetCurrentStep(v string) *WorkflowUpdate {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableCurrentStep(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *WorkflowUpdate) ClearCurrentStep() *WorkflowUpdate {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetContext sets the "context" field.
func (_u *WorkflowUpdate) SetContext(v map[string]interface{}) *WorkflowUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *WorkflowUpdate) SetOutputs(v map[string]interface{}) *WorkflowUpdate {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *WorkflowUpdate) ClearOutputs() *WorkflowUpdate {
	_u.mutation.ClearOutputs()
	return _u
}

// SetStepStatuses sets the "step_statuses" field.
func (_u *WorkflowUpdate) SetStepStatuses(v map[string]string) *WorkflowUpdate {
	_u.mutation.SetStepStatuses(v)
	return _u
}

// ClearStepStatuses clears the value of the "step_statuses" field.
func (_u *WorkflowUpdate) ClearStepStatuses() *WorkflowUpdate {
	_u.mutation.ClearStepStatuses()
	return _u
}

// SetVersion sets the "version" field.
func (_u *WorkflowUpdate) SetVersion(v int) *WorkflowUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableVersion(v *int) *WorkflowUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *WorkflowUpdate) AddVersion(v int) *WorkflowUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *WorkflowUpdate) SetTaskID(v string) *WorkflowUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableTaskID(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *WorkflowUpdate) ClearTaskID() *WorkflowUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowUpdate) SetErrorMessage(v string) *WorkflowUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableErrorMessage(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowUpdate) ClearErrorMessage() *WorkflowUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowUpdate) SetPodID(v string) *WorkflowUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillablePodID(v *string) *WorkflowUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowUpdate) ClearPodID() *WorkflowUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkflowUpdate) SetLastHeartbeatAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkflowUpdate) ClearLastHeartbeatAt() *WorkflowUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowUpdate) SetStartedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableStartedAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdate) SetUpdatedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowUpdate) SetCompletedAt(v time.Time) *WorkflowUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowUpdate) SetNillableCompletedAt(v *time.Time) *WorkflowUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowUpdate) ClearCompletedAt() *WorkflowUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddApprovalIDs adds the "approvals" edge to the ApprovalRequest entity by IDs.
func (_u *WorkflowUpdate) AddApprovalIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the ApprovalRequest entity.
func (_u *WorkflowUpdate) AddApprovals(v ...*ApprovalRequest) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *WorkflowUpdate) AddEventIDs(ids ...int64) *WorkflowUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *WorkflowUpdate) AddEvents(v ...*Event) *WorkflowUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdate) Mutation() *WorkflowMutation {
	return _u.mutation
}

// ClearApprovals clears all "approvals" edges to the ApprovalRequest entity.
func (_u *WorkflowUpdate) ClearApprovals() *WorkflowUpdate {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to ApprovalRequest entities by IDs.
func (_u *WorkflowUpdate) RemoveApprovalIDs(ids ...string) *WorkflowUpdate {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to ApprovalRequest entities.
func (_u *WorkflowUpdate) RemoveApprovals(v ...*ApprovalRequest) *WorkflowUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *WorkflowUpdate) ClearEvents() *WorkflowUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *WorkflowUpdate) RemoveEventIDs(ids ...int64) *WorkflowUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *WorkflowUpdate) RemoveEvents(v ...*Event) *WorkflowUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TemplateName(); ok {
		_spec.SetField(workflow.FieldTemplateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(workflow.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(workflow.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(workflow.FieldContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(workflow.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(workflow.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.StepStatuses(); ok {
		_spec.SetField(workflow.FieldStepStatuses, field.TypeJSON, value)
	}
	if _u.mutation.StepStatusesCleared() {
		_spec.ClearField(workflow.FieldStepStatuses, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(workflow.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(workflow.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(workflow.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(workflow.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflow.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflow.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflow.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflow.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflow.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workflow.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflow.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflow.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ApprovalsTable,
			Columns: []string{workflow.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ApprovalsTable,
			Columns: []string{workflow.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ApprovalsTable,
			Columns: []string{workflow.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowUpdateOne is the builder for updating a single Workflow entity.
type WorkflowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowMutation
}

// SetTemplateName sets the "template_name" field.
func (_u *WorkflowUpdateOne) SetTemplateName(v string) *WorkflowUpdateOne {
	_u.mutation.SetTemplateName(v)
	return _u
}

// SetNillableTemplateName sets the "template_name" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableTemplateName(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetTemplateName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowUpdateOne) SetStatus(v workflow.Status) *WorkflowUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableStatus(v *workflow.Status) *WorkflowUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *WorkflowUpdateOne) SetCurrentStep(v string) *WorkflowUpdateOne {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableCurrentStep(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *WorkflowUpdateOne) ClearCurrentStep() *WorkflowUpdateOne {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetContext sets the "context" field.
func (_u *WorkflowUpdateOne) SetContext(v map[string]interface{}) *WorkflowUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *WorkflowUpdateOne) SetOutputs(v map[string]interface{}) *WorkflowUpdateOne {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *WorkflowUpdateOne) ClearOutputs() *WorkflowUpdateOne {
	_u.mutation.ClearOutputs()
	return _u
}

// SetStepStatuses sets the "step_statuses" field.
func (_u *WorkflowUpdateOne) SetStepStatuses(v map[string]string) *WorkflowUpdateOne {
	_u.mutation.SetStepStatuses(v)
	return _u
}

// ClearStepStatuses clears the value of the "step_statuses" field.
func (_u *WorkflowUpdateOne) ClearStepStatuses() *WorkflowUpdateOne {
	_u.mutation.ClearStepStatuses()
	return _u
}

// SetVersion sets the "version" field.
func (_u *WorkflowUpdateOne) SetVersion(v int) *WorkflowUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableVersion(v *int) *WorkflowUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *WorkflowUpdateOne) AddVersion(v int) *WorkflowUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *WorkflowUpdateOne) SetTaskID(v string) *WorkflowUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableTaskID(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *WorkflowUpdateOne) ClearTaskID() *WorkflowUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WorkflowUpdateOne) SetErrorMessage(v string) *WorkflowUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableErrorMessage(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WorkflowUpdateOne) ClearErrorMessage() *WorkflowUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *WorkflowUpdateOne) SetPodID(v string) *WorkflowUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillablePodID(v *string) *WorkflowUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *WorkflowUpdateOne) ClearPodID() *WorkflowUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *WorkflowUpdateOne) SetLastHeartbeatAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *WorkflowUpdateOne) ClearLastHeartbeatAt() *WorkflowUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkflowUpdateOne) SetStartedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableStartedAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowUpdateOne) SetUpdatedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *WorkflowUpdateOne) SetCompletedAt(v time.Time) *WorkflowUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *WorkflowUpdateOne) SetNillableCompletedAt(v *time.Time) *WorkflowUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *WorkflowUpdateOne) ClearCompletedAt() *WorkflowUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddApprovalIDs adds the "approvals" edge to the ApprovalRequest entity by IDs.
func (_u *WorkflowUpdateOne) AddApprovalIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the ApprovalRequest entity.
func (_u *WorkflowUpdateOne) AddApprovals(v ...*ApprovalRequest) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *WorkflowUpdateOne) AddEventIDs(ids ...int64) *WorkflowUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *WorkflowUpdateOne) AddEvents(v ...*Event) *WorkflowUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_u *WorkflowUpdateOne) Mutation() *WorkflowMutation {
	return _u.mutation
}

// ClearApprovals clears all "approvals" edges to the ApprovalRequest entity.
func (_u *WorkflowUpdateOne) ClearApprovals() *WorkflowUpdateOne {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to ApprovalRequest entities by IDs.
func (_u *WorkflowUpdateOne) RemoveApprovalIDs(ids ...string) *WorkflowUpdateOne {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to ApprovalRequest entities.
func (_u *WorkflowUpdateOne) RemoveApprovals(v ...*ApprovalRequest) *WorkflowUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *WorkflowUpdateOne) ClearEvents() *WorkflowUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *WorkflowUpdateOne) RemoveEventIDs(ids ...int64) *WorkflowUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *WorkflowUpdateOne) RemoveEvents(v ...*Event) *WorkflowUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the WorkflowUpdate builder.
func (_u *WorkflowUpdateOne) Where(ps ...predicate.Workflow) *WorkflowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowUpdateOne) Select(field string, fields ...string) *WorkflowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workflow entity.
func (_u *WorkflowUpdateOne) Save(ctx context.Context) (*Workflow, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowUpdateOne) SaveX(ctx context.Context) *Workflow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflow.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowUpdateOne) sqlSave(ctx context.Context) (_node *Workflow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflow.Table, workflow.Columns, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workflow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflow.FieldID)
		for _, f := range fields {
			if !workflow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflow.FieldID {
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
	if value, ok := _u.mutation.TemplateName(); ok {
		_spec.SetField(workflow.FieldTemplateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(workflow.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(workflow.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(workflow.FieldContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(workflow.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(workflow.FieldOutputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.StepStatuses(); ok {
		_spec.SetField(workflow.FieldStepStatuses, field.TypeJSON, value)
	}
	if _u.mutation.StepStatusesCleared() {
		_spec.ClearField(workflow.FieldStepStatuses, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(workflow.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(workflow.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(workflow.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(workflow.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(workflow.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflow.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(workflow.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(workflow.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflow.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(workflow.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workflow.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(workflow.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ApprovalsTable,
			Columns: []string{workflow.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ApprovalsTable,
			Columns: []string{workflow.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ApprovalsTable,
			Columns: []string{workflow.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.EventsTable,
			Columns: []string{workflow.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Workflow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
