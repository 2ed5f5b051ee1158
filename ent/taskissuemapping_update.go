// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conductorhq/conductor/ent/predicate"
	"github.com/conductorhq/conductor/ent/taskissuemapping"
)

// TaskIssueMappingUpdate is the builder for updating TaskIssueMapping entities.
type TaskIssueMappingUpdate struct {
	config
	hooks    []Hook
	mutation *TaskIssueMappingMutation
}

// Where appends a list predicates to the TaskIssueMappingUpdate builder.
func (_u *TaskIssueMappingUpdate) Where(ps ...predicate.TaskIssueMapping) *TaskIssueMappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIssueRef sets the "issue_ref" field.
func (_u *TaskIssueMappingUpdate) SetIssueRef(v string) *TaskIssueMappingUpdate {
	_u.mutation.SetIssueRef(v)
	return _u
}

// SetNillableIssueRef sets the "issue_ref" field if the given value is not nil.
func (_u *TaskIssueMappingUpdate) SetNillableIssueRef(v *string) *TaskIssueMappingUpdate {
	if v != nil {
		_u.SetIssueRef(*v)
	}
	return _u
}

// Mutation returns the TaskIssueMappingMutation object of the builder.
func (_u *TaskIssueMappingUpdate) Mutation() *TaskIssueMappingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskIssueMappingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskIssueMappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskIssueMappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskIssueMappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskIssueMappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(taskissuemapping.Table, taskissuemapping.Columns, sqlgraph.NewFieldSpec(taskissuemapping.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IssueRef(); ok {
		_spec.SetField(taskissuemapping.FieldIssueRef, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskissuemapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskIssueMappingUpdateOne is the builder for updating a single TaskIssueMapping entity.
type TaskIssueMappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskIssueMappingMutation
}

// SetIssueRef sets the "issue_ref" field.
func (_u *TaskIssueMappingUpdateOne) SetIssueRef(v string) *TaskIssueMappingUpdateOne {
	_u.mutation.SetIssueRef(v)
	return _u
}

// SetNillableIssueRef sets the "issue_ref" field if the given value is not nil.
func (_u *TaskIssueMappingUpdateOne) SetNillableIssueRef(v *string) *TaskIssueMappingUpdateOne {
	if v != nil {
		_u.SetIssueRef(*v)
	}
	return _u
}

// Mutation returns the TaskIssueMappingMutation object of the builder.
func (_u *TaskIssueMappingUpdateOne) Mutation() *TaskIssueMappingMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskIssueMappingUpdate builder.
func (_u *TaskIssueMappingUpdateOne) Where(ps ...predicate.TaskIssueMapping) *TaskIssueMappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskIssueMappingUpdateOne) Select(field string, fields ...string) *TaskIssueMappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskIssueMapping entity.
func (_u *TaskIssueMappingUpdateOne) Save(ctx context.Context) (*TaskIssueMapping, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskIssueMappingUpdateOne) SaveX(ctx context.Context) *TaskIssueMapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskIssueMappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskIssueMappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TaskIssueMappingUpdateOne) sqlSave(ctx context.Context) (_node *TaskIssueMapping, err error) {
	_spec := sqlgraph.NewUpdateSpec(taskissuemapping.Table, taskissuemapping.Columns, sqlgraph.NewFieldSpec(taskissuemapping.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskIssueMapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskissuemapping.FieldID)
		for _, f := range fields {
			if !taskissuemapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskissuemapping.FieldID {
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
	if value, ok := _u.mutation.IssueRef(); ok {
		_spec.SetField(taskissuemapping.FieldIssueRef, field.TypeString, value)
	}
	_node = &TaskIssueMapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskissuemapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
