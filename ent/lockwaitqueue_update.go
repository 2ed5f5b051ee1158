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
	"github.com/conductorhq/conductor/ent/lockwaitqueue"
	"github.com/conductorhq/conductor/ent/predicate"
)

// LockWaitQueueUpdate is the builder for updating LockWaitQueue entities.
type LockWaitQueueUpdate struct {
	config
	hooks    []Hook
	mutation *LockWaitQueueMutation
}

// Where appends a list predicates to the LockWaitQueueUpdate builder.
func (_u *LockWaitQueueUpdate) Where(ps ...predicate.LockWaitQueue) *LockWaitQueueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *LockWaitQueueUpdate) SetResourceID(v string) *LockWaitQueueUpdate {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *LockWaitQueueUpdate) SetNillableResourceID(v *string) *LockWaitQueueUpdate {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *LockWaitQueueUpdate) SetAgentID(v string) *LockWaitQueueUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *LockWaitQueueUpdate) SetNillableAgentID(v *string) *LockWaitQueueUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetRequestedAt sets the "requested_at" field.
func (_u *LockWaitQueueUpdate) SetRequestedAt(v time.Time) *LockWaitQueueUpdate {
	_u.mutation.SetRequestedAt(v)
	return _u
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (_u *LockWaitQueueUpdate) SetNillableRequestedAt(v *time.Time) *LockWaitQueueUpdate {
	if v != nil {
		_u.SetRequestedAt(*v)
	}
	return _u
}

// SetTimeoutAt sets the "timeout_at" field.
func (_u *LockWaitQueueUpdate) SetTimeoutAt(v time.Time) *LockWaitQueueUpdate {
	_u.mutation.SetTimeoutAt(v)
	return _u
}

// SetNillableTimeoutAt sets the "timeout_at" field if the given value is not nil.
func (_u *LockWaitQueueUpdate) SetNillableTimeoutAt(v *time.Time) *LockWaitQueueUpdate {
	if v != nil {
		_u.SetTimeoutAt(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *LockWaitQueueUpdate) SetPriority(v int) *LockWaitQueueUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *LockWaitQueueUpdate) SetNillablePriority(v *int) *LockWaitQueueUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *LockWaitQueueUpdate) AddPriority(v int) *LockWaitQueueUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *LockWaitQueueUpdate) SetMetadata(v map[string]interface{}) *LockWaitQueueUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *LockWaitQueueUpdate) ClearMetadata() *LockWaitQueueUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the LockWaitQueueMutation object of the builder.
func (_u *LockWaitQueueUpdate) Mutation() *LockWaitQueueMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LockWaitQueueUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LockWaitQueueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LockWaitQueueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LockWaitQueueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LockWaitQueueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(lockwaitqueue.Table, lockwaitqueue.Columns, sqlgraph.NewFieldSpec(lockwaitqueue.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(lockwaitqueue.FieldResourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(lockwaitqueue.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestedAt(); ok {
		_spec.SetField(lockwaitqueue.FieldRequestedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeoutAt(); ok {
		_spec.SetField(lockwaitqueue.FieldTimeoutAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(lockwaitqueue.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(lockwaitqueue.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(lockwaitqueue.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(lockwaitqueue.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lockwaitqueue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LockWaitQueueUpdateOne is the builder for updating a single LockWaitQueue entity.
type LockWaitQueueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LockWaitQueueMutation
}

// SetResourceID sets the "resource_id" field.
func (_u *LockWaitQueueUpdateOne) SetResourceID(v string) *LockWaitQueueUpdateOne {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *LockWaitQueueUpdateOne) SetNillableResourceID(v *string) *LockWaitQueueUpdateOne {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *LockWaitQueueUpdateOne) SetAgentID(v string) *LockWaitQueueUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *LockWaitQueueUpdateOne) SetNillableAgentID(v *string) *LockWaitQueueUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetRequestedAt sets the "requested_at" field.
func (_u *LockWaitQueueUpdateOne) SetRequestedAt(v time.Time) *LockWaitQueueUpdateOne {
	_u.mutation.SetRequestedAt(v)
	return _u
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (_u *LockWaitQueueUpdateOne) SetNillableRequestedAt(v *time.Time) *LockWaitQueueUpdateOne {
	if v != nil {
		_u.SetRequestedAt(*v)
	}
	return _u
}

// SetTimeoutAt sets the "timeout_at" field.
func (_u *LockWaitQueueUpdateOne) SetTimeoutAt(v time.Time) *LockWaitQueueUpdateOne {
	_u.mutation.SetTimeoutAt(v)
	return _u
}

// SetNillableTimeoutAt sets the "timeout_at" field if the given value is not nil.
func (_u *LockWaitQueueUpdateOne) SetNillableTimeoutAt(v *time.Time) *LockWaitQueueUpdateOne {
	if v != nil {
		_u.SetTimeoutAt(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *LockWaitQueueUpdateOne) SetPriority(v int) *LockWaitQueueUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *LockWaitQueueUpdateOne) SetNillablePriority(v *int) *LockWaitQueueUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *LockWaitQueueUpdateOne) AddPriority(v int) *LockWaitQueueUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *LockWaitQueueUpdateOne) SetMetadata(v map[string]interface{}) *LockWaitQueueUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *LockWaitQueueUpdateOne) ClearMetadata() *LockWaitQueueUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the LockWaitQueueMutation object of the builder.
func (_u *LockWaitQueueUpdateOne) Mutation() *LockWaitQueueMutation {
	return _u.mutation
}

// Where appends a list predicates to the LockWaitQueueUpdate builder.
func (_u *LockWaitQueueUpdateOne) Where(ps ...predicate.LockWaitQueue) *LockWaitQueueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LockWaitQueueUpdateOne) Select(field string, fields ...string) *LockWaitQueueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LockWaitQueue entity.
func (_u *LockWaitQueueUpdateOne) Save(ctx context.Context) (*LockWaitQueue, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LockWaitQueueUpdateOne) SaveX(ctx context.Context) *LockWaitQueue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LockWaitQueueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LockWaitQueueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LockWaitQueueUpdateOne) sqlSave(ctx context.Context) (_node *LockWaitQueue, err error) {
	_spec := sqlgraph.NewUpdateSpec(lockwaitqueue.Table, lockwaitqueue.Columns, sqlgraph.NewFieldSpec(lockwaitqueue.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LockWaitQueue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lockwaitqueue.FieldID)
		for _, f := range fields {
			if !lockwaitqueue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lockwaitqueue.FieldID {
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
		_spec.SetField(lockwaitqueue.FieldResourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(lockwaitqueue.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestedAt(); ok {
		_spec.SetField(lockwaitqueue.FieldRequestedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeoutAt(); ok {
		_spec.SetField(lockwaitqueue.FieldTimeoutAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(lockwaitqueue.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(lockwaitqueue.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(lockwaitqueue.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(lockwaitqueue.FieldMetadata, field.TypeJSON)
	}
	_node = &LockWaitQueue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lockwaitqueue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
