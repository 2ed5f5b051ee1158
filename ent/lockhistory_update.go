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
	"github.com/conductorhq/conductor/ent/lockhistory"
	"github.com/conductorhq/conductor/ent/predicate"
)

// LockHistoryUpdate is the builder for updating LockHistory entities.
type LockHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *LockHistoryMutation
}

// Where appends a list predicates to the LockHistoryUpdate builder.
func (_u *LockHistoryUpdate) Where(ps ...predicate.LockHistory) *LockHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *LockHistoryUpdate) SetResourceID(v string) *LockHistoryUpdate {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *LockHistoryUpdate) SetNillableResourceID(v *string) *LockHistoryUpdate {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *LockHistoryUpdate) SetAgentID(v string) *LockHistoryUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *LockHistoryUpdate) SetNillableAgentID(v *string) *LockHistoryUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetOp sets the "op" field.
func (_u *LockHistoryUpdate) SetOp(v lockhistory.Op) *LockHistoryUpdate {
	_u.mutation.SetOpField(v)
	return _u
}

// SetNillableOp sets the "op" field if the given value is not nil.
func (_u *LockHistoryUpdate) SetNillableOp(v *lockhistory.Op) *LockHistoryUpdate {
	if v != nil {
		_u.SetOp(*v)
	}
	return _u
}

// SetAcquiredAt sets the "acquired_at" field.
func (_u *LockHistoryUpdate) SetAcquiredAt(v time.Time) *LockHistoryUpdate {
	_u.mutation.SetAcquiredAt(v)
	return _u
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_u *LockHistoryUpdate) SetNillableAcquiredAt(v *time.Time) *LockHistoryUpdate {
	if v != nil {
		_u.SetAcquiredAt(*v)
	}
	return _u
}

// ClearAcquiredAt clears the value of the "acquired_at" field.
func (_u *LockHistoryUpdate) ClearAcquiredAt() *LockHistoryUpdate {
	_u.mutation.ClearAcquiredAt()
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *LockHistoryUpdate) SetReleasedAt(v time.Time) *LockHistoryUpdate {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *LockHistoryUpdate) SetNillableReleasedAt(v *time.Time) *LockHistoryUpdate {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *LockHistoryUpdate) ClearReleasedAt() *LockHistoryUpdate {
	_u.mutation.ClearReleasedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LockHistoryUpdate) SetDurationMs(v int64) *LockHistoryUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LockHistoryUpdate) SetNillableDurationMs(v *int64) *LockHistoryUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LockHistoryUpdate) AddDurationMs(v int64) *LockHistoryUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *LockHistoryUpdate) ClearDurationMs() *LockHistoryUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetWaitTimeMs sets the "wait_time_ms" field.
func (_u *LockHistoryUpdate) SetWaitTimeMs(v int64) *LockHistoryUpdate {
	_u.mutation.ResetWaitTimeMs()
	_u.mutation.SetWaitTimeMs(v)
	return _u
}

// SetNillableWaitTimeMs sets the "wait_time_ms" field if the given value is not nil.
func (_u *LockHistoryUpdate) SetNillableWaitTimeMs(v *int64) *LockHistoryUpdate {
	if v != nil {
		_u.SetWaitTimeMs(*v)
	}
	return _u
}

// AddWaitTimeMs adds value to the "wait_time_ms" field.
func (_u *LockHistoryUpdate) AddWaitTimeMs(v int64) *LockHistoryUpdate {
	_u.mutation.AddWaitTimeMs(v)
	return _u
}

// ClearWaitTimeMs clears the value of the "wait_time_ms" field.
func (_u *LockHistoryUpdate) ClearWaitTimeMs() *LockHistoryUpdate {
	_u.mutation.ClearWaitTimeMs()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *LockHistoryUpdate) SetSuccess(v bool) *LockHistoryUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *LockHistoryUpdate) SetNillableSuccess(v *bool) *LockHistoryUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LockHistoryUpdate) SetErrorMessage(v string) *LockHistoryUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LockHistoryUpdate) SetNillableErrorMessage(v *string) *LockHistoryUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LockHistoryUpdate) ClearErrorMessage() *LockHistoryUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the LockHistoryMutation object of the builder.
func (_u *LockHistoryUpdate) Mutation() *LockHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LockHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LockHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LockHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LockHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LockHistoryUpdate) check() error {
	if v, ok := _u.mutation.GetOp(); ok {
		if err := lockhistory.OpValidator(v); err != nil {
			return &ValidationError{Name: "op", err: fmt.Errorf(`ent: validator failed for field "LockHistory.op": %w`, err)}
		}
	}
	return nil
}

func (_u *LockHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lockhistory.Table, lockhistory.Columns, sqlgraph.NewFieldSpec(lockhistory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(lockhistory.FieldResourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(lockhistory.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetOp(); ok {
		_spec.SetField(lockhistory.FieldOp, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AcquiredAt(); ok {
		_spec.SetField(lockhistory.FieldAcquiredAt, field.TypeTime, value)
	}
	if _u.mutation.AcquiredAtCleared() {
		_spec.ClearField(lockhistory.FieldAcquiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(lockhistory.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(lockhistory.FieldReleasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(lockhistory.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(lockhistory.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(lockhistory.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.WaitTimeMs(); ok {
		_spec.SetField(lockhistory.FieldWaitTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedWaitTimeMs(); ok {
		_spec.AddField(lockhistory.FieldWaitTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.WaitTimeMsCleared() {
		_spec.ClearField(lockhistory.FieldWaitTimeMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(lockhistory.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(lockhistory.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(lockhistory.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lockhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LockHistoryUpdateOne is the builder for updating a single LockHistory entity.
type LockHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LockHistoryMutation
}

// SetResourceID sets the "resource_id" field.
func (_u *LockHistoryUpdateOne) SetResourceID(v string) *LockHistoryUpdateOne {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *LockHistoryUpdateOne) SetNillableResourceID(v *string) *LockHistoryUpdateOne {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *LockHistoryUpdateOne) SetAgentID(v string) *LockHistoryUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *LockHistoryUpdateOne) SetNillableAgentID(v *string) *LockHistoryUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetOp sets the "op" field.
func (_u *LockHistoryUpdateOne) SetOp(v lockhistory.Op) *LockHistoryUpdateOne {
	_u.mutation.SetOpField(v)
	return _u
}

// SetNillableOp sets the "op" field if the given value is not nil.
func (_u *LockHistoryUpdateOne) SetNillableOp(v *lockhistory.Op) *LockHistoryUpdateOne {
	if v != nil {
		_u.SetOp(*v)
	}
	return _u
}

// SetAcquiredAt sets the "acquired_at" field.
func (_u *LockHistoryUpdateOne) SetAcquiredAt(v time.Time) *LockHistoryUpdateOne {
	_u.mutation.SetAcquiredAt(v)
	return _u
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_u *LockHistoryUpdateOne) SetNillableAcquiredAt(v *time.Time) *LockHistoryUpdateOne {
	if v != nil {
		_u.SetAcquiredAt(*v)
	}
	return _u
}

// ClearAcquiredAt clears the value of the "acquired_at" field.
func (_u *LockHistoryUpdateOne) ClearAcquiredAt() *LockHistoryUpdateOne {
	_u.mutation.ClearAcquiredAt()
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *LockHistoryUpdateOne) SetReleasedAt(v time.Time) *LockHistoryUpdateOne {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *LockHistoryUpdateOne) SetNillableReleasedAt(v *time.Time) *LockHistoryUpdateOne {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *LockHistoryUpdateOne) ClearReleasedAt() *LockHistoryUpdateOne {
	_u.mutation.ClearReleasedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *LockHistoryUpdateOne) SetDurationMs(v int64) *LockHistoryUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *LockHistoryUpdateOne) SetNillableDurationMs(v *int64) *LockHistoryUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *LockHistoryUpdateOne) AddDurationMs(v int64) *LockHistoryUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *LockHistoryUpdateOne) ClearDurationMs() *LockHistoryUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetWaitTimeMs sets the "wait_time_ms" field.
func (_u *LockHistoryUpdateOne) SetWaitTimeMs(v int64) *LockHistoryUpdateOne {
	_u.mutation.ResetWaitTimeMs()
	_u.mutation.SetWaitTimeMs(v)
	return _u
}

// SetNillableWaitTimeMs sets the "wait_time_ms" field if the given value is not nil.
func (_u *LockHistoryUpdateOne) SetNillableWaitTimeMs(v *int64) *LockHistoryUpdateOne {
	if v != nil {
		_u.SetWaitTimeMs(*v)
	}
	return _u
}

// AddWaitTimeMs adds value to the "wait_time_ms" field.
func (_u *LockHistoryUpdateOne) AddWaitTimeMs(v int64) *LockHistoryUpdateOne {
	_u.mutation.AddWaitTimeMs(v)
	return _u
}

// ClearWaitTimeMs clears the value of the "wait_time_ms" field.
func (_u *LockHistoryUpdateOne) ClearWaitTimeMs() *LockHistoryUpdateOne {
	_u.mutation.ClearWaitTimeMs()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *LockHistoryUpdateOne) SetSuccess(v bool) *LockHistoryUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *LockHistoryUpdateOne) SetNillableSuccess(v *bool) *LockHistoryUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LockHistoryUpdateOne) SetErrorMessage(v string) *LockHistoryUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LockHistoryUpdateOne) SetNillableErrorMessage(v *string) *LockHistoryUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LockHistoryUpdateOne) ClearErrorMessage() *LockHistoryUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the LockHistoryMutation object of the builder.
func (_u *LockHistoryUpdateOne) Mutation() *LockHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the LockHistoryUpdate builder.
func (_u *LockHistoryUpdateOne) Where(ps ...predicate.LockHistory) *LockHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LockHistoryUpdateOne) Select(field string, fields ...string) *LockHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LockHistory entity.
func (_u *LockHistoryUpdateOne) Save(ctx context.Context) (*LockHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LockHistoryUpdateOne) SaveX(ctx context.Context) *LockHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LockHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LockHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LockHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.GetOp(); ok {
		if err := lockhistory.OpValidator(v); err != nil {
			return &ValidationError{Name: "op", err: fmt.Errorf(`ent: validator failed for field "LockHistory.op": %w`, err)}
		}
	}
	return nil
}

func (_u *LockHistoryUpdateOne) sqlSave(ctx context.Context) (_node *LockHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lockhistory.Table, lockhistory.Columns, sqlgraph.NewFieldSpec(lockhistory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LockHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lockhistory.FieldID)
		for _, f := range fields {
			if !lockhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lockhistory.FieldID {
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
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(lockhistory.FieldResourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(lockhistory.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetOp(); ok {
		_spec.SetField(lockhistory.FieldOp, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AcquiredAt(); ok {
		_spec.SetField(lockhistory.FieldAcquiredAt, field.TypeTime, value)
	}
	if _u.mutation.AcquiredAtCleared() {
		_spec.ClearField(lockhistory.FieldAcquiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(lockhistory.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(lockhistory.FieldReleasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(lockhistory.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(lockhistory.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(lockhistory.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.WaitTimeMs(); ok {
		_spec.SetField(lockhistory.FieldWaitTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedWaitTimeMs(); ok {
		_spec.AddField(lockhistory.FieldWaitTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.WaitTimeMsCleared() {
		_spec.ClearField(lockhistory.FieldWaitTimeMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(lockhistory.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(lockhistory.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(lockhistory.FieldErrorMessage, field.TypeString)
	}
	_node = &LockHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lockhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
