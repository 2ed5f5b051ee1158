// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conductorhq/conductor/ent/approvalrequest"
	"github.com/conductorhq/conductor/ent/event"
	"github.com/conductorhq/conductor/ent/workflow"
)

// WorkflowCreate is the builder for creating a Workflow entity.
type WorkflowCreate struct {
	config
	mutation *WorkflowMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTemplateName sets the "template_name" field.
func (_c *WorkflowCreate) SetTemplateName(v string) *WorkflowCreate {
	_c.mutation.SetTemplateName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowCreate) SetStatus(v workflow.Status) *WorkflowCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableStatus(v *workflow.Status) *WorkflowCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *WorkflowCreate) SetCurrentStep(v string) *WorkflowCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCurrentStep(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *WorkflowCreate) SetContext(v map[string]interface{}) *WorkflowCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetOutputs sets the "outputs" field.
func (_c *WorkflowCreate) SetOutputs(v map[string]interface{}) *WorkflowCreate {
	_c.mutation.SetOutputs(v)
	return _c
}

// SetStepStatuses sets the "step_statuses" field.
func (_c *WorkflowCreate) SetStepStatuses(v map[string]string) *WorkflowCreate {
	_c.mutation.SetStepStatuses(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *WorkflowCreate) SetVersion(v int) *WorkflowCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableVersion(v *int) *WorkflowCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *WorkflowCreate) SetTaskID(v string) *WorkflowCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableTaskID(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkflowCreate) SetErrorMessage(v string) *WorkflowCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableErrorMessage(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *WorkflowCreate) SetPodID(v string) *WorkflowCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillablePodID(v *string) *WorkflowCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *WorkflowCreate) SetLastHeartbeatAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableLastHeartbeatAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *WorkflowCreate) SetStartedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableStartedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowCreate) SetUpdatedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *WorkflowCreate) SetCompletedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCompletedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowCreate) SetID(v string) *WorkflowCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddApprovalIDs adds the "approvals" edge to the ApprovalRequest entity by IDs.
func (_c *WorkflowCreate) AddApprovalIDs(ids ...string) *WorkflowCreate {
	_c.mutation.AddApprovalIDs(ids...)
	return _c
}

// AddApprovals adds the "approvals" edges to the ApprovalRequest entity.
func (_c *WorkflowCreate) AddApprovals(v ...*ApprovalRequest) *WorkflowCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApprovalIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *WorkflowCreate) AddEventIDs(ids ...int64) *WorkflowCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *WorkflowCreate) AddEvents(v ...*Event) *WorkflowCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_c *WorkflowCreate) Mutation() *WorkflowMutation {
	return _c.mutation
}

// Save creates the Workflow in the database.
func (_c *WorkflowCreate) Save(ctx context.Context) (*Workflow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowCreate) SaveX(ctx context.Context) *Workflow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workflow.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := workflow.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := workflow.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflow.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowCreate) check() error {
	if _, ok := _c.mutation.TemplateName(); !ok {
		return &ValidationError{Name: "template_name", err: errors.New(`ent: missing required field "Workflow.template_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Workflow.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Context(); !ok {
		return &ValidationError{Name: "context", err: errors.New(`ent: missing required field "Workflow.context"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Workflow.version"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Workflow.started_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Workflow.updated_at"`)}
	}
	return nil
}

func (_c *WorkflowCreate) sqlSave(ctx context.Context) (*Workflow, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Workflow.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowCreate) createSpec() (*Workflow, *sqlgraph.CreateSpec) {
	var (
		_node = &Workflow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflow.Table, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TemplateName(); ok {
		_spec.SetField(workflow.FieldTemplateName, field.TypeString, value)
		_node.TemplateName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(workflow.FieldCurrentStep, field.TypeString, value)
		_node.CurrentStep = &value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(workflow.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Outputs(); ok {
		_spec.SetField(workflow.FieldOutputs, field.TypeJSON, value)
		_node.Outputs = value
	}
	if value, ok := _c.mutation.StepStatuses(); ok {
		_spec.SetField(workflow.FieldStepStatuses, field.TypeJSON, value)
		_node.StepStatuses = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(workflow.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(workflow.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workflow.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(workflow.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(workflow.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(workflow.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflow.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ApprovalsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Workflow.Create().
//		SetTemplateName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowUpsert) {
//			SetTemplateName(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowCreate) OnConflict(opts ...sql.ConflictOption) *WorkflowUpsertOne {
	_c.conflict = opts
	return &WorkflowUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowCreate) OnConflictColumns(columns ...string) *WorkflowUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowUpsertOne{
		create: _c,
	}
}

type (
	// WorkflowUpsertOne is the builder for "upsert"-ing
	//  one Workflow node.
	WorkflowUpsertOne struct {
		create *WorkflowCreate
	}

	// WorkflowUpsert is the "OnConflict" setter.
	WorkflowUpsert struct {
		*sql.UpdateSet
	}
)

// SetTemplateName sets the "template_name" field.
func (u *WorkflowUpsert) SetTemplateName(v string) *WorkflowUpsert {
	u.Set(workflow.FieldTemplateName, v)
	return u
}

// UpdateTemplateName sets the "template_name" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateTemplateName() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldTemplateName)
	return u
}

// SetStatus sets the "status" field.
func (u *WorkflowUpsert) SetStatus(v workflow.Status) *WorkflowUpsert {
	u.Set(workflow.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateStatus() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldStatus)
	return u
}

// SetCurrentStep sets the "current_step" field.
func (u *WorkflowUpsert) SetCurrentStep(v string) *WorkflowUpsert {
	u.Set(workflow.FieldCurrentStep, v)
	return u
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateCurrentStep() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldCurrentStep)
	return u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *WorkflowUpsert) ClearCurrentStep() *WorkflowUpsert {
	u.SetNull(workflow.FieldCurrentStep)
	return u
}

// SetContext sets the "context" field.
func (u *WorkflowUpsert) SetContext(v map[string]interface{}) *WorkflowUpsert {
	u.Set(workflow.FieldContext, v)
	return u
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateContext() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldContext)
	return u
}

// SetOutputs sets the "outputs" field.
func (u *WorkflowUpsert) SetOutputs(v map[string]interface{}) *WorkflowUpsert {
	u.Set(workflow.FieldOutputs, v)
	return u
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateOutputs() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldOutputs)
	return u
}

// ClearOutputs clears the value of the "outputs" field.
func (u *WorkflowUpsert) ClearOutputs() *WorkflowUpsert {
	u.SetNull(workflow.FieldOutputs)
	return u
}

// SetStepStatuses sets the "step_statuses" field.
func (u *WorkflowUpsert) SetStepStatuses(v map[string]string) *WorkflowUpsert {
	u.Set(workflow.FieldStepStatuses, v)
	return u
}

// UpdateStepStatuses sets the "step_statuses" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateStepStatuses() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldStepStatuses)
	return u
}

// ClearStepStatuses clears the value of the "step_statuses" field.
func (u *WorkflowUpsert) ClearStepStatuses() *WorkflowUpsert {
	u.SetNull(workflow.FieldStepStatuses)
	return u
}

// SetVersion sets the "version" field.
func (u *WorkflowUpsert) SetVersion(v int) *WorkflowUpsert {
	u.Set(workflow.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateVersion() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *WorkflowUpsert) AddVersion(v int) *WorkflowUpsert {
	u.Add(workflow.FieldVersion, v)
	return u
}

// SetTaskID sets the "task_id" field.
func (u *WorkflowUpsert) SetTaskID(v string) *WorkflowUpsert {
	u.Set(workflow.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateTaskID() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldTaskID)
	return u
}

// ClearTaskID clears the value of the "task_id" field.
func (u *WorkflowUpsert) ClearTaskID() *WorkflowUpsert {
	u.SetNull(workflow.FieldTaskID)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkflowUpsert) SetErrorMessage(v string) *WorkflowUpsert {
	u.Set(workflow.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateErrorMessage() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkflowUpsert) ClearErrorMessage() *WorkflowUpsert {
	u.SetNull(workflow.FieldErrorMessage)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowUpsert) SetPodID(v string) *WorkflowUpsert {
	u.Set(workflow.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdatePodID() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowUpsert) ClearPodID() *WorkflowUpsert {
	u.SetNull(workflow.FieldPodID)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *WorkflowUpsert) SetLastHeartbeatAt(v time.Time) *WorkflowUpsert {
	u.Set(workflow.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateLastHeartbeatAt() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *WorkflowUpsert) ClearLastHeartbeatAt() *WorkflowUpsert {
	u.SetNull(workflow.FieldLastHeartbeatAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowUpsert) SetStartedAt(v time.Time) *WorkflowUpsert {
	u.Set(workflow.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateStartedAt() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldStartedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowUpsert) SetUpdatedAt(v time.Time) *WorkflowUpsert {
	u.Set(workflow.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateUpdatedAt() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldUpdatedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowUpsert) SetCompletedAt(v time.Time) *WorkflowUpsert {
	u.Set(workflow.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowUpsert) UpdateCompletedAt() *WorkflowUpsert {
	u.SetExcluded(workflow.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowUpsert) ClearCompletedAt() *WorkflowUpsert {
	u.SetNull(workflow.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflow.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowUpsertOne) UpdateNewValues() *WorkflowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workflow.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Workflow.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkflowUpsertOne) Ignore() *WorkflowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowUpsertOne) DoNothing() *WorkflowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowCreate.OnConflict
// documentation for more info.
func (u *WorkflowUpsertOne) Update(set func(*WorkflowUpsert)) *WorkflowUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowUpsert{UpdateSet: update})
	}))
	return u
}

// SetTemplateName sets the "template_name" field.
func (u *WorkflowUpsertOne) SetTemplateName(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetTemplateName(v)
	})
}

// UpdateTemplateName sets the "template_name" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateTemplateName() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateTemplateName()
	})
}

// SetStatus sets the "status" field.
func (u *WorkflowUpsertOne) SetStatus(v workflow.Status) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateStatus() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *WorkflowUpsertOne) SetCurrentStep(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateCurrentStep() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateCurrentStep()
	})
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *WorkflowUpsertOne) ClearCurrentStep() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearCurrentStep()
	})
}

// SetContext sets the "context" field.
func (u *WorkflowUpsertOne) SetContext(v map[string]interface{}) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateContext() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateContext()
	})
}

// SetOutputs sets the "outputs" field.
func (u *WorkflowUpsertOne) SetOutputs(v map[string]interface{}) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetOutputs(v)
	})
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateOutputs() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateOutputs()
	})
}

// ClearOutputs clears the value of the "outputs" field.
func (u *WorkflowUpsertOne) ClearOutputs() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearOutputs()
	})
}

// SetStepStatuses sets the "step_statuses" field.
func (u *WorkflowUpsertOne) SetStepStatuses(v map[string]string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetStepStatuses(v)
	})
}

// UpdateStepStatuses sets the "step_statuses" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateStepStatuses() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateStepStatuses()
	})
}

// ClearStepStatuses clears the value of the "step_statuses" field.
func (u *WorkflowUpsertOne) ClearStepStatuses() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearStepStatuses()
	})
}

// SetVersion sets the "version" field.
func (u *WorkflowUpsertOne) SetVersion(v int) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *WorkflowUpsertOne) AddVersion(v int) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateVersion() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateVersion()
	})
}

// SetTaskID sets the "task_id" field.
func (u *WorkflowUpsertOne) SetTaskID(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateTaskID() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateTaskID()
	})
}

// ClearTaskID clears the value of the "task_id" field.
func (u *WorkflowUpsertOne) ClearTaskID() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearTaskID()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkflowUpsertOne) SetErrorMessage(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateErrorMessage() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkflowUpsertOne) ClearErrorMessage() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowUpsertOne) SetPodID(v string) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdatePodID() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowUpsertOne) ClearPodID() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *WorkflowUpsertOne) SetLastHeartbeatAt(v time.Time) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateLastHeartbeatAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *WorkflowUpsertOne) ClearLastHeartbeatAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowUpsertOne) SetStartedAt(v time.Time) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateStartedAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateStartedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowUpsertOne) SetUpdatedAt(v time.Time) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateUpdatedAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowUpsertOne) SetCompletedAt(v time.Time) *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowUpsertOne) UpdateCompletedAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowUpsertOne) ClearCompletedAt() *WorkflowUpsertOne {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *WorkflowUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkflowUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkflowUpsertOne.ID is not supported by MySQL driver. Use WorkflowUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkflowUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkflowCreateBulk is the builder for creating many Workflow entities in bulk.
type WorkflowCreateBulk struct {
	config
	err      error
	builders []*WorkflowCreate
	conflict []sql.ConflictOption
}

// Save creates the Workflow entities in the database.
func (_c *WorkflowCreateBulk) Save(ctx context.Context) ([]*Workflow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Workflow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkflowCreateBulk) SaveX(ctx context.Context) []*Workflow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Workflow.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowUpsert) {
//			SetTemplateName(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkflowUpsertBulk {
	_c.conflict = opts
	return &WorkflowUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowCreateBulk) OnConflictColumns(columns ...string) *WorkflowUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowUpsertBulk{
		create: _c,
	}
}

// WorkflowUpsertBulk is the builder for "upsert"-ing
// a bulk of Workflow nodes.
type WorkflowUpsertBulk struct {
	create *WorkflowCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflow.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowUpsertBulk) UpdateNewValues() *WorkflowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workflow.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Workflow.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkflowUpsertBulk) Ignore() *WorkflowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowUpsertBulk) DoNothing() *WorkflowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowCreateBulk.OnConflict
// documentation for more info.
func (u *WorkflowUpsertBulk) Update(set func(*WorkflowUpsert)) *WorkflowUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowUpsert{UpdateSet: update})
	}))
	return u
}

// SetTemplateName sets the "template_name" field.
func (u *WorkflowUpsertBulk) SetTemplateName(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetTemplateName(v)
	})
}

// UpdateTemplateName sets the "template_name" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateTemplateName() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateTemplateName()
	})
}

// SetStatus sets the "status" field.
func (u *WorkflowUpsertBulk) SetStatus(v workflow.Status) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateStatus() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *WorkflowUpsertBulk) SetCurrentStep(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateCurrentStep() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateCurrentStep()
	})
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *WorkflowUpsertBulk) ClearCurrentStep() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearCurrentStep()
	})
}

// SetContext sets the "context" field.
func (u *WorkflowUpsertBulk) SetContext(v map[string]interface{}) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateContext() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateContext()
	})
}

// SetOutputs sets the "outputs" field.
func (u *WorkflowUpsertBulk) SetOutputs(v map[string]interface{}) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetOutputs(v)
	})
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateOutputs() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateOutputs()
	})
}

// ClearOutputs clears the value of the "outputs" field.
func (u *WorkflowUpsertBulk) ClearOutputs() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearOutputs()
	})
}

// SetStepStatuses sets the "step_statuses" field.
func (u *WorkflowUpsertBulk) SetStepStatuses(v map[string]string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetStepStatuses(v)
	})
}

// UpdateStepStatuses sets the "step_statuses" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateStepStatuses() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateStepStatuses()
	})
}

// ClearStepStatuses clears the value of the "step_statuses" field.
func (u *WorkflowUpsertBulk) ClearStepStatuses() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearStepStatuses()
	})
}

// SetVersion sets the "version" field.
func (u *WorkflowUpsertBulk) SetVersion(v int) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *WorkflowUpsertBulk) AddVersion(v int) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateVersion() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateVersion()
	})
}

// SetTaskID sets the "task_id" field.
func (u *WorkflowUpsertBulk) SetTaskID(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateTaskID() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateTaskID()
	})
}

// ClearTaskID clears the value of the "task_id" field.
func (u *WorkflowUpsertBulk) ClearTaskID() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearTaskID()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *WorkflowUpsertBulk) SetErrorMessage(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateErrorMessage() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *WorkflowUpsertBulk) ClearErrorMessage() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearErrorMessage()
	})
}

// SetPodID sets the "pod_id" field.
func (u *WorkflowUpsertBulk) SetPodID(v string) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdatePodID() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *WorkflowUpsertBulk) ClearPodID() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *WorkflowUpsertBulk) SetLastHeartbeatAt(v time.Time) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateLastHeartbeatAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *WorkflowUpsertBulk) ClearLastHeartbeatAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *WorkflowUpsertBulk) SetStartedAt(v time.Time) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateStartedAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateStartedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkflowUpsertBulk) SetUpdatedAt(v time.Time) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateUpdatedAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *WorkflowUpsertBulk) SetCompletedAt(v time.Time) *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *WorkflowUpsertBulk) UpdateCompletedAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *WorkflowUpsertBulk) ClearCompletedAt() *WorkflowUpsertBulk {
	return u.Update(func(s *WorkflowUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *WorkflowUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkflowCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
