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
	"github.com/conductorhq/conductor/ent/lockwaitqueue"
)

// LockWaitQueueCreate is the builder for creating a LockWaitQueue entity.
type LockWaitQueueCreate struct {
	config
	mutation *LockWaitQueueMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetResourceID sets the "resource_id" field.
func (_c *LockWaitQueueCreate) SetResourceID(v string) *LockWaitQueueCreate {
	_c.mutation.SetResourceID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *LockWaitQueueCreate) SetAgentID(v string) *LockWaitQueueCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetRequestedAt sets the "requested_at" field.
func (_c *LockWaitQueueCreate) SetRequestedAt(v time.Time) *LockWaitQueueCreate {
	_c.mutation.SetRequestedAt(v)
	return _c
}

// SetTimeoutAt sets the "timeout_at" field.
func (_c *LockWaitQueueCreate) SetTimeoutAt(v time.Time) *LockWaitQueueCreate {
	_c.mutation.SetTimeoutAt(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *LockWaitQueueCreate) SetPriority(v int) *LockWaitQueueCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *LockWaitQueueCreate) SetNillablePriority(v *int) *LockWaitQueueCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *LockWaitQueueCreate) SetMetadata(v map[string]interface{}) *LockWaitQueueCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetID sets the "id" field.
func (_c *LockWaitQueueCreate) SetID(v string) *LockWaitQueueCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LockWaitQueueMutation object of the builder.
func (_c *LockWaitQueueCreate) Mutation() *LockWaitQueueMutation {
	return _c.mutation
}

// Save creates the LockWaitQueue in the database.
func (_c *LockWaitQueueCreate) Save(ctx context.Context) (*LockWaitQueue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LockWaitQueueCreate) SaveX(ctx context.Context) *LockWaitQueue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LockWaitQueueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LockWaitQueueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LockWaitQueueCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := lockwaitqueue.DefaultPriority
		_c.mutation.SetPriority(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LockWaitQueueCreate) check() error {
	if _, ok := _c.mutation.ResourceID(); !ok {
		return &ValidationError{Name: "resource_id", err: errors.New(`ent: missing required field "LockWaitQueue.resource_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "LockWaitQueue.agent_id"`)}
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		return &ValidationError{Name: "requested_at", err: errors.New(`ent: missing required field "LockWaitQueue.requested_at"`)}
	}
	if _, ok := _c.mutation.TimeoutAt(); !ok {
		return &ValidationError{Name: "timeout_at", err: errors.New(`ent: missing required field "LockWaitQueue.timeout_at"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "LockWaitQueue.priority"`)}
	}
	return nil
}

func (_c *LockWaitQueueCreate) sqlSave(ctx context.Context) (*LockWaitQueue, error) {
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
			return nil, fmt.Errorf("unexpected LockWaitQueue.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LockWaitQueueCreate) createSpec() (*LockWaitQueue, *sqlgraph.CreateSpec) {
	var (
		_node = &LockWaitQueue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lockwaitqueue.Table, sqlgraph.NewFieldSpec(lockwaitqueue.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ResourceID(); ok {
		_spec.SetField(lockwaitqueue.FieldResourceID, field.TypeString, value)
		_node.ResourceID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(lockwaitqueue.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.RequestedAt(); ok {
		_spec.SetField(lockwaitqueue.FieldRequestedAt, field.TypeTime, value)
		_node.RequestedAt = value
	}
	if value, ok := _c.mutation.TimeoutAt(); ok {
		_spec.SetField(lockwaitqueue.FieldTimeoutAt, field.TypeTime, value)
		_node.TimeoutAt = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(lockwaitqueue.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(lockwaitqueue.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LockWaitQueue.Create().
//		SetResourceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LockWaitQueueUpsert) {
//			SetResourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *LockWaitQueueCreate) OnConflict(opts ...sql.ConflictOption) *LockWaitQueueUpsertOne {
	_c.conflict = opts
	return &LockWaitQueueUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LockWaitQueue.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LockWaitQueueCreate) OnConflictColumns(columns ...string) *LockWaitQueueUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LockWaitQueueUpsertOne{
		create: _c,
	}
}

type (
	// LockWaitQueueUpsertOne is the builder for "upsert"-ing
	//  one LockWaitQueue node.
	LockWaitQueueUpsertOne struct {
		create *LockWaitQueueCreate
	}

	// LockWaitQueueUpsert is the "OnConflict" setter.
	LockWaitQueueUpsert struct {
		*sql.UpdateSet
	}
)

// SetResourceID sets the "resource_id" field.
func (u *LockWaitQueueUpsert) SetResourceID(v string) *LockWaitQueueUpsert {
	u.Set(lockwaitqueue.FieldResourceID, v)
	return u
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *LockWaitQueueUpsert) UpdateResourceID() *LockWaitQueueUpsert {
	u.SetExcluded(lockwaitqueue.FieldResourceID)
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *LockWaitQueueUpsert) SetAgentID(v string) *LockWaitQueueUpsert {
	u.Set(lockwaitqueue.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *LockWaitQueueUpsert) UpdateAgentID() *LockWaitQueueUpsert {
	u.SetExcluded(lockwaitqueue.FieldAgentID)
	return u
}

// SetRequestedAt sets the "requested_at" field.
func (u *LockWaitQueueUpsert) SetRequestedAt(v time.Time) *LockWaitQueueUpsert {
	u.Set(lockwaitqueue.FieldRequestedAt, v)
	return u
}

// UpdateRequestedAt sets the "requested_at" field to the value that was provided on create.
func (u *LockWaitQueueUpsert) UpdateRequestedAt() *LockWaitQueueUpsert {
	u.SetExcluded(lockwaitqueue.FieldRequestedAt)
	return u
}

// SetTimeoutAt sets the "timeout_at" field.
func (u *LockWaitQueueUpsert) SetTimeoutAt(v time.Time) *LockWaitQueueUpsert {
	u.Set(lockwaitqueue.FieldTimeoutAt, v)
	return u
}

// UpdateTimeoutAt sets the "timeout_at" field to the value that was provided on create.
func (u *LockWaitQueueUpsert) UpdateTimeoutAt() *LockWaitQueueUpsert {
	u.SetExcluded(lockwaitqueue.FieldTimeoutAt)
	return u
}

// SetPriority sets the "priority" field.
func (u *LockWaitQueueUpsert) SetPriority(v int) *LockWaitQueueUpsert {
	u.Set(lockwaitqueue.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *LockWaitQueueUpsert) UpdatePriority() *LockWaitQueueUpsert {
	u.SetExcluded(lockwaitqueue.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *LockWaitQueueUpsert) AddPriority(v int) *LockWaitQueueUpsert {
	u.Add(lockwaitqueue.FieldPriority, v)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *LockWaitQueueUpsert) SetMetadata(v map[string]interface{}) *LockWaitQueueUpsert {
	u.Set(lockwaitqueue.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *LockWaitQueueUpsert) UpdateMetadata() *LockWaitQueueUpsert {
	u.SetExcluded(lockwaitqueue.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *LockWaitQueueUpsert) ClearMetadata() *LockWaitQueueUpsert {
	u.SetNull(lockwaitqueue.FieldMetadata)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LockWaitQueue.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lockwaitqueue.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LockWaitQueueUpsertOne) UpdateNewValues() *LockWaitQueueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(lockwaitqueue.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LockWaitQueue.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LockWaitQueueUpsertOne) Ignore() *LockWaitQueueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LockWaitQueueUpsertOne) DoNothing() *LockWaitQueueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LockWaitQueueCreate.OnConflict
// documentation for more info.
func (u *LockWaitQueueUpsertOne) Update(set func(*LockWaitQueueUpsert)) *LockWaitQueueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LockWaitQueueUpsert{UpdateSet: update})
	}))
	return u
}

// SetResourceID sets the "resource_id" field.
func (u *LockWaitQueueUpsertOne) SetResourceID(v string) *LockWaitQueueUpsertOne {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.SetResourceID(v)
	})
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *LockWaitQueueUpsertOne) UpdateResourceID() *LockWaitQueueUpsertOne {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.UpdateResourceID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *LockWaitQueueUpsertOne) SetAgentID(v string) *LockWaitQueueUpsertOne {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *LockWaitQueueUpsertOne) UpdateAgentID() *LockWaitQueueUpsertOne {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.UpdateAgentID()
	})
}

// SetRequestedAt sets the "requested_at" field.
func (u *LockWaitQueueUpsertOne) SetRequestedAt(v time.Time) *LockWaitQueueUpsertOne {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.SetRequestedAt(v)
	})
}

// UpdateRequestedAt sets the "requested_at" field to the value that was provided on create.
func (u *LockWaitQueueUpsertOne) UpdateRequestedAt() *LockWaitQueueUpsertOne {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.UpdateRequestedAt()
	})
}

// SetTimeoutAt sets the "timeout_at" field.
func (u *LockWaitQueueUpsertOne) SetTimeoutAt(v time.Time) *LockWaitQueueUpsertOne {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.SetTimeoutAt(v)
	})
}

// UpdateTimeoutAt sets the "timeout_at" field to the value that was provided on create.
func (u *LockWaitQueueUpsertOne) UpdateTimeoutAt() *LockWaitQueueUpsertOne {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.UpdateTimeoutAt()
	})
}

// SetPriority sets the "priority" field.
func (u *LockWaitQueueUpsertOne) SetPriority(v int) *LockWaitQueueUpsertOne {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *LockWaitQueueUpsertOne) AddPriority(v int) *LockWaitQueueUpsertOne {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *LockWaitQueueUpsertOne) UpdatePriority() *LockWaitQueueUpsertOne {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.UpdatePriority()
	})
}

// SetMetadata sets the "metadata" field.
func (u *LockWaitQueueUpsertOne) SetMetadata(v map[string]interface{}) *LockWaitQueueUpsertOne {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *LockWaitQueueUpsertOne) UpdateMetadata() *LockWaitQueueUpsertOne {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *LockWaitQueueUpsertOne) ClearMetadata() *LockWaitQueueUpsertOne {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *LockWaitQueueUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LockWaitQueueCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LockWaitQueueUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LockWaitQueueUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LockWaitQueueUpsertOne.ID is not supported by MySQL driver. Use LockWaitQueueUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LockWaitQueueUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LockWaitQueueCreateBulk is the builder for creating many LockWaitQueue entities in bulk.
type LockWaitQueueCreateBulk struct {
	config
	err      error
	builders []*LockWaitQueueCreate
	conflict []sql.ConflictOption
}

// Save creates the LockWaitQueue entities in the database.
func (_c *LockWaitQueueCreateBulk) Save(ctx context.Context) ([]*LockWaitQueue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LockWaitQueue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LockWaitQueueMutation)
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
func (_c *LockWaitQueueCreateBulk) SaveX(ctx context.Context) []*LockWaitQueue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LockWaitQueueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LockWaitQueueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LockWaitQueue.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LockWaitQueueUpsert) {
//			SetResourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *LockWaitQueueCreateBulk) OnConflict(opts ...sql.ConflictOption) *LockWaitQueueUpsertBulk {
	_c.conflict = opts
	return &LockWaitQueueUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LockWaitQueue.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LockWaitQueueCreateBulk) OnConflictColumns(columns ...string) *LockWaitQueueUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LockWaitQueueUpsertBulk{
		create: _c,
	}
}

// LockWaitQueueUpsertBulk is the builder for "upsert"-ing
// a bulk of LockWaitQueue nodes.
type LockWaitQueueUpsertBulk struct {
	create *LockWaitQueueCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LockWaitQueue.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(lockwaitqueue.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LockWaitQueueUpsertBulk) UpdateNewValues() *LockWaitQueueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(lockwaitqueue.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LockWaitQueue.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LockWaitQueueUpsertBulk) Ignore() *LockWaitQueueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LockWaitQueueUpsertBulk) DoNothing() *LockWaitQueueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LockWaitQueueCreateBulk.OnConflict
// documentation for more info.
func (u *LockWaitQueueUpsertBulk) Update(set func(*LockWaitQueueUpsert)) *LockWaitQueueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LockWaitQueueUpsert{UpdateSet: update})
	}))
	return u
}

// SetResourceID sets the "resource_id" field.
func (u *LockWaitQueueUpsertBulk) SetResourceID(v string) *LockWaitQueueUpsertBulk {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.SetResourceID(v)
	})
}

// UpdateResourceID sets the "resource_id" field to the value that was provided on create.
func (u *LockWaitQueueUpsertBulk) UpdateResourceID() *LockWaitQueueUpsertBulk {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.UpdateResourceID()
	})
}

// SetAgentID sets the "agent_id" field.
func (u *LockWaitQueueUpsertBulk) SetAgentID(v string) *LockWaitQueueUpsertBulk {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *LockWaitQueueUpsertBulk) UpdateAgentID() *LockWaitQueueUpsertBulk {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.UpdateAgentID()
	})
}

// SetRequestedAt sets the "requested_at" field.
func (u *LockWaitQueueUpsertBulk) SetRequestedAt(v time.Time) *LockWaitQueueUpsertBulk {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.SetRequestedAt(v)
	})
}

// UpdateRequestedAt sets the "requested_at" field to the value that was provided on create.
func (u *LockWaitQueueUpsertBulk) UpdateRequestedAt() *LockWaitQueueUpsertBulk {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.UpdateRequestedAt()
	})
}

// SetTimeoutAt sets the "timeout_at" field.
func (u *LockWaitQueueUpsertBulk) SetTimeoutAt(v time.Time) *LockWaitQueueUpsertBulk {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.SetTimeoutAt(v)
	})
}

// UpdateTimeoutAt sets the "timeout_at" field to the value that was provided on create.
func (u *LockWaitQueueUpsertBulk) UpdateTimeoutAt() *LockWaitQueueUpsertBulk {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.UpdateTimeoutAt()
	})
}

// SetPriority sets the "priority" field.
func (u *LockWaitQueueUpsertBulk) SetPriority(v int) *LockWaitQueueUpsertBulk {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *LockWaitQueueUpsertBulk) AddPriority(v int) *LockWaitQueueUpsertBulk {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *LockWaitQueueUpsertBulk) UpdatePriority() *LockWaitQueueUpsertBulk {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.UpdatePriority()
	})
}

// SetMetadata sets the "metadata" field.
func (u *LockWaitQueueUpsertBulk) SetMetadata(v map[string]interface{}) *LockWaitQueueUpsertBulk {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *LockWaitQueueUpsertBulk) UpdateMetadata() *LockWaitQueueUpsertBulk {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *LockWaitQueueUpsertBulk) ClearMetadata() *LockWaitQueueUpsertBulk {
	return u.Update(func(s *LockWaitQueueUpsert) {
		s.ClearMetadata()
	})
}

// Exec executes the query.
func (u *LockWaitQueueUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LockWaitQueueCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LockWaitQueueCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LockWaitQueueUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
