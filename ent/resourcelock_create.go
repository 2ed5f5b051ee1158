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
	"github.com/conductorhq/conductor/ent/resourcelock"
)

// ResourceLockCreate is the builder for creating a ResourceLock entity.
type ResourceLockCreate struct {
	config
	mutation *ResourceLockMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentID sets the "agent_id" field.
func (_c *ResourceLockCreate) SetAgentID(v string) *ResourceLockCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetLockKey sets the "lock_key" field.
func (_c *ResourceLockCreate) SetLockKey(v int64) *ResourceLockCreate {
	_c.mutation.SetLockKey(v)
	return _c
}

// SetAcquiredAt sets the "acquired_at" field.
func (_c *ResourceLockCreate) SetAcquiredAt(v time.Time) *ResourceLockCreate {
	_c.mutation.SetAcquiredAt(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ResourceLockCreate) SetExpiresAt(v time.Time) *ResourceLockCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ResourceLockCreate) SetReason(v string) *ResourceLockCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ResourceLockCreate) SetNillableReason(v *string) *ResourceLockCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ResourceLockCreate) SetMetadata(v map[string]interface{}) *ResourceLockCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ResourceLockCreate) SetID(v string) *ResourceLockCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ResourceLockMutation object of the builder.
func (_c *ResourceLockCreate) Mutation() *ResourceLockMutation {
	return _c.mutation
}

// Save creates the ResourceLock in the database.
func (_c *ResourceLockCreate) Save(ctx context.Context) (*ResourceLock, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResourceLockCreate) SaveX(ctx context.Context) *ResourceLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceLockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceLockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResourceLockCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "ResourceLock.agent_id"`)}
	}
	if _, ok := _c.mutation.LockKey(); !ok {
		return &ValidationError{Name: "lock_key", err: errors.New(`ent: missing required field "ResourceLock.lock_key"`)}
	}
	if _, ok := _c.mutation.AcquiredAt(); !ok {
		return &ValidationError{Name: "acquired_at", err: errors.New(`ent: missing required field "ResourceLock.acquired_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ResourceLock.expires_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := resourcelock.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "ResourceLock.id": %w`, err)}
		}
	}
	return nil
}

func (_c *ResourceLockCreate) sqlSave(ctx context.Context) (*ResourceLock, error) {
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
			return nil, fmt.Errorf("unexpected ResourceLock.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResourceLockCreate) createSpec() (*ResourceLock, *sqlgraph.CreateSpec) {
	var (
		_node = &ResourceLock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resourcelock.Table, sqlgraph.NewFieldSpec(resourcelock.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(resourcelock.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.LockKey(); ok {
		_spec.SetField(resourcelock.FieldLockKey, field.TypeInt64, value)
		_node.LockKey = value
	}
	if value, ok := _c.mutation.AcquiredAt(); ok {
		_spec.SetField(resourcelock.FieldAcquiredAt, field.TypeTime, value)
		_node.AcquiredAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(resourcelock.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(resourcelock.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(resourcelock.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ResourceLock.Create().
//		SetAgentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResourceLockUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ResourceLockCreate) OnConflict(opts ...sql.ConflictOption) *ResourceLockUpsertOne {
	_c.conflict = opts
	return &ResourceLockUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResourceLock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResourceLockCreate) OnConflictColumns(columns ...string) *ResourceLockUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResourceLockUpsertOne{
		create: _c,
	}
}

type (
	// ResourceLockUpsertOne is the builder for "upsert"-ing
	//  one ResourceLock node.
	ResourceLockUpsertOne struct {
		create *ResourceLockCreate
	}

	// ResourceLockUpsert is the "OnConflict" setter.
	ResourceLockUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentID sets the "agent_id" field.
func (u *ResourceLockUpsert) SetAgentID(v string) *ResourceLockUpsert {
	u.Set(resourcelock.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *ResourceLockUpsert) UpdateAgentID() *ResourceLockUpsert {
	u.SetExcluded(resourcelock.FieldAgentID)
	return u
}

// SetLockKey sets the "lock_key" field.
func (u *ResourceLockUpsert) SetLockKey(v int64) *ResourceLockUpsert {
	u.Set(resourcelock.FieldLockKey, v)
	return u
}

// UpdateLockKey sets the "lock_key" field to the value that was provided on create.
func (u *ResourceLockUpsert) UpdateLockKey() *ResourceLockUpsert {
	u.SetExcluded(resourcelock.FieldLockKey)
	return u
}

// AddLockKey adds v to the "lock_key" field.
func (u *ResourceLockUpsert) AddLockKey(v int64) *ResourceLockUpsert {
	u.Add(resourcelock.FieldLockKey, v)
	return u
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *ResourceLockUpsert) SetAcquiredAt(v time.Time) *ResourceLockUpsert {
	u.Set(resourcelock.FieldAcquiredAt, v)
	return u
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *ResourceLockUpsert) UpdateAcquiredAt() *ResourceLockUpsert {
	u.SetExcluded(resourcelock.FieldAcquiredAt)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *ResourceLockUpsert) SetExpiresAt(v time.Time) *ResourceLockUpsert {
	u.Set(resourcelock.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ResourceLockUpsert) UpdateExpiresAt() *ResourceLockUpsert {
	u.SetExcluded(resourcelock.FieldExpiresAt)
	return u
}

// SetReason sets the "reason" field.
func (u *ResourceLockUpsert) SetReason(v string) *ResourceLockUpsert {
	u.Set(resourcelock.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *ResourceLockUpsert) UpdateReason() *ResourceLockUpsert {
	u.SetExcluded(resourcelock.FieldReason)
	return u
}

// ClearReason clears the value of the "reason" field.
func (u *ResourceLockUpsert) ClearReason() *ResourceLockUpsert {
	u.SetNull(resourcelock.FieldReason)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *ResourceLockUpsert) SetMetadata(v map[string]interface{}) *ResourceLockUpsert {
	u.Set(resourcelock.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ResourceLockUpsert) UpdateMetadata() *ResourceLockUpsert {
	u.SetExcluded(resourcelock.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ResourceLockUpsert) ClearMetadata() *ResourceLockUpsert {
	u.SetNull(resourcelock.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ResourceLock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(resourcelock.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResourceLockUpsertOne) UpdateNewValues() *ResourceLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(resourcelock.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResourceLock.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResourceLockUpsertOne) Ignore() *ResourceLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResourceLockUpsertOne) DoNothing() *ResourceLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResourceLockCreate.OnConflict
// documentation for more info.
func (u *ResourceLockUpsertOne) Update(set func(*ResourceLockUpsert)) *ResourceLockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResourceLockUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *ResourceLockUpsertOne) SetAgentID(v string) *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *ResourceLockUpsertOne) UpdateAgentID() *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateAgentID()
	})
}

// SetLockKey sets the "lock_key" field.
func (u *ResourceLockUpsertOne) SetLockKey(v int64) *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetLockKey(v)
	})
}

// AddLockKey adds v to the "lock_key" field.
func (u *ResourceLockUpsertOne) AddLockKey(v int64) *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.AddLockKey(v)
	})
}

// UpdateLockKey sets the "lock_key" field to the value that was provided on create.
func (u *ResourceLockUpsertOne) UpdateLockKey() *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateLockKey()
	})
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *ResourceLockUpsertOne) SetAcquiredAt(v time.Time) *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetAcquiredAt(v)
	})
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *ResourceLockUpsertOne) UpdateAcquiredAt() *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateAcquiredAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ResourceLockUpsertOne) SetExpiresAt(v time.Time) *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ResourceLockUpsertOne) UpdateExpiresAt() *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetReason sets the "reason" field.
func (u *ResourceLockUpsertOne) SetReason(v string) *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *ResourceLockUpsertOne) UpdateReason() *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *ResourceLockUpsertOne) ClearReason() *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.ClearReason()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ResourceLockUpsertOne) SetMetadata(v map[string]interface{}) *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ResourceLockUpsertOne) UpdateMetadata() *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ResourceLockUpsertOne) ClearMetadata() *ResourceLockUpsertOne {
	return u.Update(func(s *ResourceLockUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *ResourceLockUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResourceLockCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResourceLockUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResourceLockUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ResourceLockUpsertOne.ID is not supported by MySQL driver. Use ResourceLockUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResourceLockUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResourceLockCreateBulk is the builder for creating many ResourceLock entities in bulk.
type ResourceLockCreateBulk struct {
	config
	err      error
	builders []*ResourceLockCreate
	conflict []sql.ConflictOption
}

// Save creates the ResourceLock entities in the database.
func (_c *ResourceLockCreateBulk) Save(ctx context.Context) ([]*ResourceLock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResourceLock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResourceLockMutation)
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
func (_c *ResourceLockCreateBulk) SaveX(ctx context.Context) []*ResourceLock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceLockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceLockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ResourceLock.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResourceLockUpsert) {
//			SetAgentID(v+v).
//		}).
//		Exec(ctx)
func (_c *ResourceLockCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResourceLockUpsertBulk {
	_c.conflict = opts
	return &ResourceLockUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResourceLock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResourceLockCreateBulk) OnConflictColumns(columns ...string) *ResourceLockUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResourceLockUpsertBulk{
		create: _c,
	}
}

// ResourceLockUpsertBulk is the builder for "upsert"-ing
// a bulk of ResourceLock nodes.
type ResourceLockUpsertBulk struct {
	create *ResourceLockCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ResourceLock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(resourcelock.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResourceLockUpsertBulk) UpdateNewValues() *ResourceLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(resourcelock.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResourceLock.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResourceLockUpsertBulk) Ignore() *ResourceLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResourceLockUpsertBulk) DoNothing() *ResourceLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResourceLockCreateBulk.OnConflict
// documentation for more info.
func (u *ResourceLockUpsertBulk) Update(set func(*ResourceLockUpsert)) *ResourceLockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResourceLockUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *ResourceLockUpsertBulk) SetAgentID(v string) *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *ResourceLockUpsertBulk) UpdateAgentID() *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateAgentID()
	})
}

// SetLockKey sets the "lock_key" field.
func (u *ResourceLockUpsertBulk) SetLockKey(v int64) *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetLockKey(v)
	})
}

// AddLockKey adds v to the "lock_key" field.
func (u *ResourceLockUpsertBulk) AddLockKey(v int64) *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.AddLockKey(v)
	})
}

// UpdateLockKey sets the "lock_key" field to the value that was provided on create.
func (u *ResourceLockUpsertBulk) UpdateLockKey() *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateLockKey()
	})
}

// SetAcquiredAt sets the "acquired_at" field.
func (u *ResourceLockUpsertBulk) SetAcquiredAt(v time.Time) *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetAcquiredAt(v)
	})
}

// UpdateAcquiredAt sets the "acquired_at" field to the value that was provided on create.
func (u *ResourceLockUpsertBulk) UpdateAcquiredAt() *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateAcquiredAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ResourceLockUpsertBulk) SetExpiresAt(v time.Time) *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ResourceLockUpsertBulk) UpdateExpiresAt() *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateExpiresAt()
	})
}

// SetReason sets the "reason" field.
func (u *ResourceLockUpsertBulk) SetReason(v string) *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *ResourceLockUpsertBulk) UpdateReason() *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateReason()
	})
}

// ClearReason clears the value of the "reason" field.
func (u *ResourceLockUpsertBulk) ClearReason() *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.ClearReason()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ResourceLockUpsertBulk) SetMetadata(v map[string]interface{}) *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ResourceLockUpsertBulk) UpdateMetadata() *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ResourceLockUpsertBulk) ClearMetadata() *ResourceLockUpsertBulk {
	return u.Update(func(s *ResourceLockUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *ResourceLockUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ResourceLockCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResourceLockCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResourceLockUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
