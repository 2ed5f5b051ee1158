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
	"github.com/conductorhq/conductor/ent/taskissuemapping"
)

// TaskIssueMappingCreate is the builder for creating a TaskIssueMapping entity.
type TaskIssueMappingCreate struct {
	config
	mutation *TaskIssueMappingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIssueRef sets the "issue_ref" field.
func (_c *TaskIssueMappingCreate) SetIssueRef(v string) *TaskIssueMappingCreate {
	_c.mutation.SetIssueRef(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskIssueMappingCreate) SetCreatedAt(v time.Time) *TaskIssueMappingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskIssueMappingCreate) SetNillableCreatedAt(v *time.Time) *TaskIssueMappingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskIssueMappingCreate) SetID(v string) *TaskIssueMappingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TaskIssueMappingMutation object of the builder.
func (_c *TaskIssueMappingCreate) Mutation() *TaskIssueMappingMutation {
	return _c.mutation
}

// Save creates the TaskIssueMapping in the database.
func (_c *TaskIssueMappingCreate) Save(ctx context.Context) (*TaskIssueMapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskIssueMappingCreate) SaveX(ctx context.Context) *TaskIssueMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskIssueMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskIssueMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskIssueMappingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskissuemapping.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskIssueMappingCreate) check() error {
	if _, ok := _c.mutation.IssueRef(); !ok {
		return &ValidationError{Name: "issue_ref", err: errors.New(`ent: missing required field "TaskIssueMapping.issue_ref"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskIssueMapping.created_at"`)}
	}
	return nil
}

func (_c *TaskIssueMappingCreate) sqlSave(ctx context.Context) (*TaskIssueMapping, error) {
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
			return nil, fmt.Errorf("unexpected TaskIssueMapping.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskIssueMappingCreate) createSpec() (*TaskIssueMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskIssueMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskissuemapping.Table, sqlgraph.NewFieldSpec(taskissuemapping.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IssueRef(); ok {
		_spec.SetField(taskissuemapping.FieldIssueRef, field.TypeString, value)
		_node.IssueRef = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskissuemapping.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskIssueMapping.Create().
//		SetIssueRef(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskIssueMappingUpsert) {
//			SetIssueRef(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskIssueMappingCreate) OnConflict(opts ...sql.ConflictOption) *TaskIssueMappingUpsertOne {
	_c.conflict = opts
	return &TaskIssueMappingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskIssueMapping.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskIssueMappingCreate) OnConflictColumns(columns ...string) *TaskIssueMappingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskIssueMappingUpsertOne{
		create: _c,
	}
}

type (
	// TaskIssueMappingUpsertOne is the builder for "upsert"-ing
	//  one TaskIssueMapping node.
	TaskIssueMappingUpsertOne struct {
		create *TaskIssueMappingCreate
	}

	// TaskIssueMappingUpsert is the "OnConflict" setter.
	TaskIssueMappingUpsert struct {
		*sql.UpdateSet
	}
)

// SetIssueRef sets the "issue_ref" field.
func (u *TaskIssueMappingUpsert) SetIssueRef(v string) *TaskIssueMappingUpsert {
	u.Set(taskissuemapping.FieldIssueRef, v)
	return u
}

// UpdateIssueRef sets the "issue_ref" field to the value that was provided on create.
func (u *TaskIssueMappingUpsert) UpdateIssueRef() *TaskIssueMappingUpsert {
	u.SetExcluded(taskissuemapping.FieldIssueRef)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TaskIssueMapping.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskissuemapping.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskIssueMappingUpsertOne) UpdateNewValues() *TaskIssueMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(taskissuemapping.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(taskissuemapping.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskIssueMapping.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskIssueMappingUpsertOne) Ignore() *TaskIssueMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskIssueMappingUpsertOne) DoNothing() *TaskIssueMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskIssueMappingCreate.OnConflict
// documentation for more info.
func (u *TaskIssueMappingUpsertOne) Update(set func(*TaskIssueMappingUpsert)) *TaskIssueMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskIssueMappingUpsert{UpdateSet: update})
	}))
	return u
}

// SetIssueRef sets the "issue_ref" field.
func (u *TaskIssueMappingUpsertOne) SetIssueRef(v string) *TaskIssueMappingUpsertOne {
	return u.Update(func(s *TaskIssueMappingUpsert) {
		s.SetIssueRef(v)
	})
}

// UpdateIssueRef sets the "issue_ref" field to the value that was provided on create.
func (u *TaskIssueMappingUpsertOne) UpdateIssueRef() *TaskIssueMappingUpsertOne {
	return u.Update(func(s *TaskIssueMappingUpsert) {
		s.UpdateIssueRef()
	})
}

// Exec executes the query.
func (u *TaskIssueMappingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskIssueMappingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskIssueMappingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskIssueMappingUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskIssueMappingUpsertOne.ID is not supported by MySQL driver. Use TaskIssueMappingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskIssueMappingUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskIssueMappingCreateBulk is the builder for creating many TaskIssueMapping entities in bulk.
type TaskIssueMappingCreateBulk struct {
	config
	err      error
	builders []*TaskIssueMappingCreate
	conflict []sql.ConflictOption
}

// Save creates the TaskIssueMapping entities in the database.
func (_c *TaskIssueMappingCreateBulk) Save(ctx context.Context) ([]*TaskIssueMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskIssueMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskIssueMappingMutation)
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
func (_c *TaskIssueMappingCreateBulk) SaveX(ctx context.Context) []*TaskIssueMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskIssueMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskIssueMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskIssueMapping.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskIssueMappingUpsert) {
//			SetIssueRef(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskIssueMappingCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskIssueMappingUpsertBulk {
	_c.conflict = opts
	return &TaskIssueMappingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskIssueMapping.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskIssueMappingCreateBulk) OnConflictColumns(columns ...string) *TaskIssueMappingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskIssueMappingUpsertBulk{
		create: _c,
	}
}

// TaskIssueMappingUpsertBulk is the builder for "upsert"-ing
// a bulk of TaskIssueMapping nodes.
type TaskIssueMappingUpsertBulk struct {
	create *TaskIssueMappingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaskIssueMapping.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskissuemapping.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskIssueMappingUpsertBulk) UpdateNewValues() *TaskIssueMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(taskissuemapping.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(taskissuemapping.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskIssueMapping.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskIssueMappingUpsertBulk) Ignore() *TaskIssueMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskIssueMappingUpsertBulk) DoNothing() *TaskIssueMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskIssueMappingCreateBulk.OnConflict
// documentation for more info.
func (u *TaskIssueMappingUpsertBulk) Update(set func(*TaskIssueMappingUpsert)) *TaskIssueMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskIssueMappingUpsert{UpdateSet: update})
	}))
	return u
}

// SetIssueRef sets the "issue_ref" field.
func (u *TaskIssueMappingUpsertBulk) SetIssueRef(v string) *TaskIssueMappingUpsertBulk {
	return u.Update(func(s *TaskIssueMappingUpsert) {
		s.SetIssueRef(v)
	})
}

// UpdateIssueRef sets the "issue_ref" field to the value that was provided on create.
func (u *TaskIssueMappingUpsertBulk) UpdateIssueRef() *TaskIssueMappingUpsertBulk {
	return u.Update(func(s *TaskIssueMappingUpsert) {
		s.UpdateIssueRef()
	})
}

// Exec executes the query.
func (u *TaskIssueMappingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskIssueMappingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskIssueMappingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskIssueMappingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
