// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conductorhq/conductor/ent/lockwaitqueue"
	"github.com/conductorhq/conductor/ent/predicate"
)

// LockWaitQueueDelete is the builder for deleting a LockWaitQueue entity.
type LockWaitQueueDelete struct {
	config
	hooks    []Hook
	mutation *LockWaitQueueMutation
}

// Where appends a list predicates to the LockWaitQueueDelete builder.
func (_d *LockWaitQueueDelete) Where(ps ...predicate.LockWaitQueue) *LockWaitQueueDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LockWaitQueueDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LockWaitQueueDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LockWaitQueueDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(lockwaitqueue.Table, sqlgraph.NewFieldSpec(lockwaitqueue.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LockWaitQueueDeleteOne is the builder for deleting a single LockWaitQueue entity.
type LockWaitQueueDeleteOne struct {
	_d *LockWaitQueueDelete
}

// Where appends a list predicates to the LockWaitQueueDelete builder.
func (_d *LockWaitQueueDeleteOne) Where(ps ...predicate.LockWaitQueue) *LockWaitQueueDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LockWaitQueueDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{lockwaitqueue.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LockWaitQueueDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
