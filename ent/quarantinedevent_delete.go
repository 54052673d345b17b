// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-io/steward/ent/predicate"
	"github.com/steward-io/steward/ent/quarantinedevent"
)

// QuarantinedEventDelete is the builder for deleting a QuarantinedEvent entity.
type QuarantinedEventDelete struct {
	config
	hooks    []Hook
	mutation *QuarantinedEventMutation
}

// Where appends a list predicates to the QuarantinedEventDelete builder.
func (_d *QuarantinedEventDelete) Where(ps ...predicate.QuarantinedEvent) *QuarantinedEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *QuarantinedEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuarantinedEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *QuarantinedEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(quarantinedevent.Table, sqlgraph.NewFieldSpec(quarantinedevent.FieldID, field.TypeInt))
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

// QuarantinedEventDeleteOne is the builder for deleting a single QuarantinedEvent entity.
type QuarantinedEventDeleteOne struct {
	_d *QuarantinedEventDelete
}

// Where appends a list predicates to the QuarantinedEventDelete builder.
func (_d *QuarantinedEventDeleteOne) Where(ps ...predicate.QuarantinedEvent) *QuarantinedEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *QuarantinedEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{quarantinedevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuarantinedEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
