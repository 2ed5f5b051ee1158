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
)

// LockHistoryCreate is the builder for creating a LockHistory entity.
type LockHistoryCreate struct {
	config
	mutation *LockHistoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetResourceID sets the "resource_id" field.
func (_c *LockHistoryCreate) SetResourceID(v string) *LockHistoryCreate {
	_c.mutation.SetResourceID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *LockHistoryCreate) SetAgentID(v string) *LockHistoryCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetOp sets the "op" field.
func (_c *LockHistoryCreate) SetOp(v lockhistory.Op) *LockHistoryCreate {
	_c.mutation.SetOpField(v)
	return _c
}

// SetAcquiredAt sets the "acquired_at" field.
func (_c *LockHistoryCreate) SetAcquiredAt(v time.Time) *LockHistoryCreate {
	_c.mutation.SetAcquiredAt(v)
	return _c
}

// SetNillableAcquiredAt sets the "acquired_at" field if the given value is not nil.
func (_c *LockHistoryCreate) SetNillableAcquiredAt(v *time.Time) *LockHistoryCreate {
	if v != nil {
		_c.SetAcquiredAt(*v)
	}
	return _c
}

// SetReleasedAt sets the "released_at" field.
func (_c *LockHistoryCreate) SetReleasedAt(v time.Time) *LockHistoryCreate {
	_c.mutation.SetReleasedAt(v)
	return _c
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_c *LockHistoryCreate) SetNillableReleasedAt(v *time.Time) *LockHistoryCreate {
	if v != nil {
		_c.SetReleasedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *LockHistoryCreate) SetDurationMs(v int64) *LockHistoryCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *LockHistoryCreate) SetNillableDurationMs(v *int64) *LockHistoryCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetWaitTimeMs sets the "wait_time_ms" field.
func (_c *LockHistoryCreate) SetWaitTimeMs(v int64) *LockHistoryCreate {
	_c.mutation.SetWaitTimeMs(v)
	return _c
}

// SetNillableWaitTimeMs sets the "wait_time_ms" field if the given value is not nil.
func (_c *LockHistoryCreate) SetNillableWaitTimeMs(v *int64) *LockHistoryCreate {
	if v != nil {
		_c.SetWaitTimeMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *LockHistoryCreate) SetSuccess(v bool) *LockHistoryCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LockHistoryCreate) SetErrorMessage(v string) *LockHistoryCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LockHistoryCreate) SetNillableErrorMessage(v *string) *LockHistoryCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LockHistoryCreate) SetCreatedAt(v time.Time) *LockHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LockHistoryCreate) SetNillableCreatedAt(v *time.Time) *LockHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the LockHistoryMutation object of the builder.
func (_c *LockHistoryCreate) Mutation() *LockHistoryMutation {
	return _c.mutation
}

// Save creates the LockHistory in the database.
func (_c *LockHistoryCreate) Save(ctx context.Context) (*LockHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LockHistoryCreate) SaveX(ctx context.Context) *LockHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LockHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LockHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LockHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lockhistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LockHistoryCreate) check() error {
	if _, ok := _c.mutation.ResourceID(); !ok {
		return &ValidationError{Name: "resource_id", err: errors.New(`ent: missing required field "LockHistory.resource_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "LockHistory.agent_id"`)}
	}
	if _, ok := _c.mutation.GetOp(); !ok {
		return &ValidationError{Name: "op", err: errors.New(`ent: missing required field "LockHistory.op"`)}
	}
	if v, ok := _c.mutation.GetOp(); ok {
		if err := lockhistory.OpValidator(v); err != nil {
			return &ValidationError{Name: "op", err: fmt.Errorf(`ent: validator failed for field "LockHistory.op": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "LockHistory.success"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LockHistory.created_at"`)}
	}
	return nil
}

func (_c *LockHistoryCreate) sqlSave(ctx context.Context) (*LockHistory, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LockHistoryCreate) createSpec() (*LockHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &LockHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lockhistory.Table, sqlgraph.NewFieldSpec(lockhistory.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ResourceID(); ok {
		_spec.SetField(lockhistory.FieldResourceID, field.TypeString, value)
		_node.ResourceID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(lockhistory.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.GetOp(); ok {
		_spec.SetField(lockhistory.FieldOp, field.TypeEnum, value)
		_node.Op = value
	}
	if value, ok := _c.mutation.AcquiredAt(); ok {
		_spec.SetField(lockhistory.FieldAcquiredAt, field.TypeTime, value)
		_node.AcquiredAt = &value
	}
	if value, ok := _c.mutation.ReleasedAt(); ok {
		_spec.SetField(lockhistory.FieldReleasedAt, field.TypeTime, value)
		_node.ReleasedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(lockhistory.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.WaitTimeMs(); ok {
		_spec.SetField(lockhistory.FieldWaitTimeMs, field.TypeInt64, value)
		_node.WaitTimeMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(lockhistory.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(lockhistory.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lockhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LockHistory.Create().
//		SetResourceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LockHistoryUpsert) {
//			SetResourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *LockHistoryCreate) OnConflict(opts ...sql.ConflictOption) *LockHistoryUpsertOne {
	_c.conflict = opts
	return &LockHistoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LockHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LockHistoryCreate) OnConflictColumns(columns ...string) *LockHistoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LockHistoryUpsertOne{
		create: _c,
	}
}

type (
	// LockHistoryUpsertOne is the builder for "upsert"-ing
	//  one LockHistory node.
	LockHistoryUpsertOne struct {
		create *LockHistoryCreate
	}

	// LockHistoryUpsert is the "OnConflict" setter.
	LockHistoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetResourceID sets the "resource_id" field.
func (u *LockHistoryUpsert) SetResourceID(v string) *LockHistoryUpsert {
	u.Set(lockhistory.FieldResourceID, v)
	return u
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *LockHistoryUpsert) UpdateResourceID() *LockHistoryUpsert {
	u.SetExcluded(lockhistory.FieldResourceID)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *LockHistoryUpsert) SetAgentID(v string) *LockHistoryUpsert {
	u.Set(lockhistory.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *LockHistoryUpsert) UpdateAgentID() *LockHistoryUpsert {
	u.SetExcluded(lockhistory.FieldAgentID)
	return u
}

// SetOp sets the "op" field.
func (u *LockHistoryUpsert) SetOp(v lockhistory.Op) *LockHistoryUpsert {
	u.Set(lockhistory.FieldOp, v)
	return u
}

// UpdateOp sets the "op" field to the value that was provided on create.
func (u *LockHistoryUpsert) UpdateOp() *LockHistoryUpsert {
	u.SetExcluded(lockhistory.FieldOp)
	return u
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *LockHistoryUpsert) SetAcquiredAt(v time.Time) *LockHistoryUpsert {
	u.Set(lockhistory.FieldAcquiredAt, v)
	return u
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *LockHistoryUpsert) UpdateAcquiredAt() *LockHistoryUpsert {
	u.SetExcluded(lockhistory.FieldAcquiredAt)
	return u
}

// ClearAcquiredAt clears the value of the "acquired_at" field.
func (u *LockHistoryUpsert) ClearAcquiredAt() *LockHistoryUpsert {
	u.SetNull(lockhistory.FieldAcquiredAt)
	return u
}

// SetReleasedAt sets the "released_at" field.
func (u *LockHistoryUpsert) SetReleasedAt(v time.Time) *LockHistoryUpsert {
	u.Set(lockhistory.FieldReleasedAt, v)
	return u
}

// UpdateReleasedAt sets the "released_at" field to the value that was provided on create.
func (u *LockHistoryUpsert) UpdateReleasedAt() *LockHistoryUpsert {
	u.SetExcluded(lockhistory.FieldReleasedAt)
	return u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (u *LockHistoryUpsert) ClearReleasedAt() *LockHistoryUpsert {
	u.SetNull(lockhistory.FieldReleasedAt)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *LockHistoryUpsert) SetDurationMs(v int64) *LockHistoryUpsert {
	u.Set(lockhistory.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LockHistoryUpsert) UpdateDurationMs() *LockHistoryUpsert {
	u.SetExcluded(lockhistory.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LockHistoryUpsert) AddDurationMs(v int64) *LockHistoryUpsert {
	u.Add(lockhistory.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *LockHistoryUpsert) ClearDurationMs() *LockHistoryUpsert {
	u.SetNull(lockhistory.FieldDurationMs)
	return u
}

// SetWaitTimeMs sets the "wait_time_ms" field.
func (u *LockHistoryUpsert) SetWaitTimeMs(v int64) *LockHistoryUpsert {
	u.Set(lockhistory.FieldWaitTimeMs, v)
	return u
}

// UpdateWaitTimeMs sets the "wait_time_ms" field to the value that was provided on create.
func (u *LockHistoryUpsert) UpdateWaitTimeMs() *LockHistoryUpsert {
	u.SetExcluded(lockhistory.FieldWaitTimeMs)
	return u
}

// AddWaitTimeMs adds v to the "wait_time_ms" field.
func (u *LockHistoryUpsert) AddWaitTimeMs(v int64) *LockHistoryUpsert {
	u.Add(lockhistory.FieldWaitTimeMs, v)
	return u
}

// ClearWaitTimeMs clears the value of the "wait_time_ms" field.
func (u *LockHistoryUpsert) ClearWaitTimeMs() *LockHistoryUpsert {
	u.SetNull(lockhistory.FieldWaitTimeMs)
	return u
}

// SetSuccess sets the "success" field.
func (u *LockHistoryUpsert) SetSuccess(v bool) *LockHistoryUpsert {
	u.Set(lockhistory.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LockHistoryUpsert) UpdateSuccess() *LockHistoryUpsert {
	u.SetExcluded(lockhistory.FieldSuccess)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *LockHistoryUpsert) SetErrorMessage(v string) *LockHistoryUpsert {
	u.Set(lockhistory.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LockHistoryUpsert) UpdateErrorMessage() *LockHistoryUpsert {
	u.SetExcluded(lockhistory.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LockHistoryUpsert) ClearErrorMessage() *LockHistoryUpsert {
	u.SetNull(lockhistory.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LockHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LockHistoryUpsertOne) UpdateNewValues() *LockHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(lockhistory.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LockHistory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LockHistoryUpsertOne) Ignore() *LockHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LockHistoryUpsertOne) DoNothing() *LockHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LockHistoryCreate.OnConflict
// documentation for more info.
func (u *LockHistoryUpsertOne) Update(set func(*LockHistoryUpsert)) *LockHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LockHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetResourceID sets the "resource_id" field.
func (u *LockHistoryUpsertOne) SetResourceID(v string) *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetResourceID(v)
	})
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *LockHistoryUpsertOne) UpdateResourceID() *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateResourceID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *LockHistoryUpsertOne) SetAgentID(v string) *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *LockHistoryUpsertOne) UpdateAgentID() *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateAgentID()
	})
}

// SetOp sets the "op" field.
func (u *LockHistoryUpsertOne) SetOp(v lockhistory.Op) *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetOp(v)
	})
}

// UpdateOp sets the "op" field to the value that was provided on create.
func (u *LockHistoryUpsertOne) UpdateOp() *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateOp()
	})
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *LockHistoryUpsertOne) SetAcquiredAt(v time.Time) *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetAcquiredAt(v)
	})
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *LockHistoryUpsertOne) UpdateAcquiredAt() *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateAcquiredAt()
	})
}

// ClearAcquiredAt clears the value of the "acquired_at" field.
func (u *LockHistoryUpsertOne) ClearAcquiredAt() *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.ClearAcquiredAt()
	})
}

// SetReleasedAt sets the "released_at" field.
func (u *LockHistoryUpsertOne) SetReleasedAt(v time.Time) *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetReleasedAt(v)
	})
}

// UpdateReleasedAt sets the "released_at" field to the value that was provided on create.
func (u *LockHistoryUpsertOne) UpdateReleasedAt() *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateReleasedAt()
	})
}

// ClearReleasedAt clears the value of the "released_at" field.
func (u *LockHistoryUpsertOne) ClearReleasedAt() *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.ClearReleasedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LockHistoryUpsertOne) SetDurationMs(v int64) *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LockHistoryUpsertOne) AddDurationMs(v int64) *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LockHistoryUpsertOne) UpdateDurationMs() *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *LockHistoryUpsertOne) ClearDurationMs() *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.ClearDurationMs()
	})
}

// SetWaitTimeMs sets the "wait_time_ms" field.
func (u *LockHistoryUpsertOne) SetWaitTimeMs(v int64) *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetWaitTimeMs(v)
	})
}

// AddWaitTimeMs adds v to the "wait_time_ms" field.
func (u *LockHistoryUpsertOne) AddWaitTimeMs(v int64) *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.AddWaitTimeMs(v)
	})
}

// UpdateWaitTimeMs sets the "wait_time_ms" field to the value that was provided on create.
func (u *LockHistoryUpsertOne) UpdateWaitTimeMs() *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateWaitTimeMs()
	})
}

// ClearWaitTimeMs clears the value of the "wait_time_ms" field.
func (u *LockHistoryUpsertOne) ClearWaitTimeMs() *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.ClearWaitTimeMs()
	})
}

// SetSuccess sets the "success" field.
func (u *LockHistoryUpsertOne) SetSuccess(v bool) *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LockHistoryUpsertOne) UpdateSuccess() *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LockHistoryUpsertOne) SetErrorMessage(v string) *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LockHistoryUpsertOne) UpdateErrorMessage() *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LockHistoryUpsertOne) ClearErrorMessage() *LockHistoryUpsertOne {
	return u.Update(func(s *LockHistoryUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *LockHistoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LockHistoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LockHistoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LockHistoryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LockHistoryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LockHistoryCreateBulk is the builder for creating many LockHistory entities in bulk.
type LockHistoryCreateBulk struct {
	config
	err      error
	builders []*LockHistoryCreate
	conflict []sql.ConflictOption
}

// Save creates the LockHistory entities in the database.
func (_c *LockHistoryCreateBulk) Save(ctx context.Context) ([]*LockHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LockHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LockHistoryMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *LockHistoryCreateBulk) SaveX(ctx context.Context) []*LockHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LockHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LockHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LockHistory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LockHistoryUpsert) {
//			SetResourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *LockHistoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *LockHistoryUpsertBulk {
	_c.conflict = opts
	return &LockHistoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LockHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LockHistoryCreateBulk) OnConflictColumns(columns ...string) *LockHistoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LockHistoryUpsertBulk{
		create: _c,
	}
}

// LockHistoryUpsertBulk is the builder for "upsert"-ing
// a bulk of LockHistory nodes.
type LockHistoryUpsertBulk struct {
	create *LockHistoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LockHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LockHistoryUpsertBulk) UpdateNewValues() *LockHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(lockhistory.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LockHistory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LockHistoryUpsertBulk) Ignore() *LockHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LockHistoryUpsertBulk) DoNothing() *LockHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LockHistoryCreateBulk.OnConflict
// documentation for more info.
func (u *LockHistoryUpsertBulk) Update(set func(*LockHistoryUpsert)) *LockHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LockHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetResourceID sets the "resource_id" field.
func (u *LockHistoryUpsertBulk) SetResourceID(v string) *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetResourceID(v)
	})
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *LockHistoryUpsertBulk) UpdateResourceID() *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateResourceID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *LockHistoryUpsertBulk) SetAgentID(v string) *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *LockHistoryUpsertBulk) UpdateAgentID() *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateAgentID()
	})
}

// SetOp sets the "op" field.
func (u *LockHistoryUpsertBulk) SetOp(v lockhistory.Op) *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetOp(v)
	})
}

// UpdateOp sets the "op" field to the value that was provided on create.
func (u *LockHistoryUpsertBulk) UpdateOp() *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateOp()
	})
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *LockHistoryUpsertBulk) SetAcquiredAt(v time.Time) *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetAcquiredAt(v)
	})
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *LockHistoryUpsertBulk) UpdateAcquiredAt() *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateAcquiredAt()
	})
}

// ClearAcquiredAt clears the value of the "acquired_at" field.
func (u *LockHistoryUpsertBulk) ClearAcquiredAt() *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.ClearAcquiredAt()
	})
}

// SetReleasedAt sets the "released_at" field.
func (u *LockHistoryUpsertBulk) SetReleasedAt(v time.Time) *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetReleasedAt(v)
	})
}

// UpdateReleasedAt sets the "released_at" field to the value that was provided on create.
func (u *LockHistoryUpsertBulk) UpdateReleasedAt() *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateReleasedAt()
	})
}

// ClearReleasedAt clears the value of the "released_at" field.
func (u *LockHistoryUpsertBulk) ClearReleasedAt() *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.ClearReleasedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *LockHistoryUpsertBulk) SetDurationMs(v int64) *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *LockHistoryUpsertBulk) AddDurationMs(v int64) *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *LockHistoryUpsertBulk) UpdateDurationMs() *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *LockHistoryUpsertBulk) ClearDurationMs() *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.ClearDurationMs()
	})
}

// SetWaitTimeMs sets the "wait_time_ms" field.
func (u *LockHistoryUpsertBulk) SetWaitTimeMs(v int64) *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetWaitTimeMs(v)
	})
}

// AddWaitTimeMs adds v to the "wait_time_ms" field.
func (u *LockHistoryUpsertBulk) AddWaitTimeMs(v int64) *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.AddWaitTimeMs(v)
	})
}

// UpdateWaitTimeMs sets the "wait_time_ms" field to the value that was provided on create.
func (u *LockHistoryUpsertBulk) UpdateWaitTimeMs() *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateWaitTimeMs()
	})
}

// ClearWaitTimeMs clears the value of the "wait_time_ms" field.
func (u *LockHistoryUpsertBulk) ClearWaitTimeMs() *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.ClearWaitTimeMs()
	})
}

// SetSuccess sets the "success" field.
func (u *LockHistoryUpsertBulk) SetSuccess(v bool) *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *LockHistoryUpsertBulk) UpdateSuccess() *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateSuccess()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *LockHistoryUpsertBulk) SetErrorMessage(v string) *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *LockHistoryUpsertBulk) UpdateErrorMessage() *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *LockHistoryUpsertBulk) ClearErrorMessage() *LockHistoryUpsertBulk {
	return u.Update(func(s *LockHistoryUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *LockHistoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LockHistoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LockHistoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LockHistoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
