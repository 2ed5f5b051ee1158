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
	"github.com/conductorhq/conductor/ent/predicate"
	"github.com/conductorhq/conductor/ent/resourcelock"
)

// ResourceLockUpdate is the builder for updating ResourceLock entities.
type ResourceLockUpdate struct {
	config
	hooks    []Hook
	mutation *ResourceLockMutation
}

// Where appends a list predicates to the ResourceLockUpdate builder.
func (_u *ResourceLockUpdate) Where(ps ...predicate.ResourceLock) *ResourceLockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ResourceLockUpdate) SetAgentID(v string) *ResourceLockUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableAgentID(v *string) *ResourceLockUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetLockKey sets the "lock_key" field.
func (_u *ResourceLockUpdate) SetLockKey(v int64) *ResourceLockUpdate {
	_u.mutation.ResetLockKey()
	_u.mutation.SetLockKey(v)
	return _u
}

// SetNillableLockKey sets the "lock_key" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableLockKey(v *int64) *ResourceLockUpdate {
	if v != nil {
		_u.SetLockKey(*v)
	}
	return _u
}

// AddLockKey adds value to the "lock_key" field.
func (_u *ResourceLockUpdate) AddLockKey(v int64) *ResourceLockUpdate {
	_u.mutation.AddLockKey(v)
	return _u
}

// SetAcquiredAt sets the "acquired_at" field.
func (_u *ResourceLockUpdate) SetAcquiredAt(v time.Time) *ResourceLockUpdate {
	_u.mutation.SetAcquiredAt(v)
	return _u
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableAcquiredAt(v *time.Time) *ResourceLockUpdate {
	if v != nil {
		_u.SetAcquiredAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ResourceLockUpdate) SetExpiresAt(v time.Time) *ResourceLockUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableExpiresAt(v *time.Time) *ResourceLockUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ResourceLockUpdate) SetReason(v string) *ResourceLockUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ResourceLockUpdate) SetNillableReason(v *string) *ResourceLockUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ResourceLockUpdate) ClearReason() *ResourceLockUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ResourceLockUpdate) SetMetadata(v map[string]interface{}) *ResourceLockUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ResourceLockUpdate) ClearMetadata() *ResourceLockUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ResourceLockMutation object of the builder.
func (_u *ResourceLockUpdate) Mutation() *ResourceLockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResourceLockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceLockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResourceLockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceLockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ResourceLockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(resourcelock.Table, resourcelock.Columns, sqlgraph.NewFieldSpec(resourcelock.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(resourcelock.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LockKey(); ok {
		_spec.SetField(resourcelock.FieldLockKey, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLockKey(); ok {
		_spec.AddField(resourcelock.FieldLockKey, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AcquiredAt(); ok {
		_spec.SetField(resourcelock.FieldAcquiredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(resourcelock.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(resourcelock.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(resourcelock.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(resourcelock.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(resourcelock.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resourcelock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResourceLockUpdateOne is the builder for updating a single ResourceLock entity.
type ResourceLockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResourceLockMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *ResourceLockUpdateOne) SetAgentID(v string) *ResourceLockUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableAgentID(v *string) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetLockKey sets the "lock_key" field.
func (_u *ResourceLockUpdateOne) SetLockKey(v int64) *ResourceLockUpdateOne {
	_u.mutation.ResetLockKey()
	_u.mutation.SetLockKey(v)
	return _u
}

// SetNillableLockKey sets the "lock_key" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableLockKey(v *int64) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetLockKey(*v)
	}
	return _u
}

// AddLockKey adds value to the "lock_key" field.
func (_u *ResourceLockUpdateOne) AddLockKey(v int64) *ResourceLockUpdateOne {
	_u.mutation.AddLockKey(v)
	return _u
}

// SetAcquiredAt sets the "acquired_at" field.
func (_u *ResourceLockUpdateOne) SetAcquiredAt(v time.Time) *ResourceLockUpdateOne {
	_u.mutation.SetAcquiredAt(v)
	return _u
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableAcquiredAt(v *time.Time) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetAcquiredAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ResourceLockUpdateOne) SetExpiresAt(v time.Time) *ResourceLockUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableExpiresAt(v *time.Time) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ResourceLockUpdateOne) SetReason(v string) *ResourceLockUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ResourceLockUpdateOne) SetNillableReason(v *string) *ResourceLockUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ResourceLockUpdateOne) ClearReason() *ResourceLockUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ResourceLockUpdateOne) SetMetadata(v map[string]interface{}) *ResourceLockUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ResourceLockUpdateOne) ClearMetadata() *ResourceLockUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ResourceLockMutation object of the builder.
func (_u *ResourceLockUpdateOne) Mutation() *ResourceLockMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResourceLockUpdate builder.
func (_u *ResourceLockUpdateOne) Where(ps ...predicate.ResourceLock) *ResourceLockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResourceLockUpdateOne) Select(field string, fields ...string) *ResourceLockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResourceLock entity.
func (_u *ResourceLockUpdateOne) Save(ctx context.Context) (*ResourceLock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceLockUpdateOne) SaveX(ctx context.Context) *ResourceLock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResourceLockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceLockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ResourceLockUpdateOne) sqlSave(ctx context.Context) (_node *ResourceLock, err error) {
	_spec := sqlgraph.NewUpdateSpec(resourcelock.Table, resourcelock.Columns, sqlgraph.NewFieldSpec(resourcelock.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResourceLock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resourcelock.FieldID)
		for _, f := range fields {
			if !resourcelock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resourcelock.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(resourcelock.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LockKey(); ok {
		_spec.SetField(resourcelock.FieldLockKey, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLockKey(); ok {
		_spec.AddField(resourcelock.FieldLockKey, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AcquiredAt(); ok {
		_spec.SetField(resourcelock.FieldAcquiredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(resourcelock.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(resourcelock.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(resourcelock.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(resourcelock.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(resourcelock.FieldMetadata, field.TypeJSON)
	}
	_node = &ResourceLock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resourcelock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
