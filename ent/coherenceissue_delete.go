// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-io/steward/ent/coherenceissue"
	"github.com/steward-io/steward/ent/predicate"
)

// CoherenceIssueDelete is the builder for deleting a CoherenceIssue entity.
type CoherenceIssueDelete struct {
	config
	hooks    []Hook
	mutation *CoherenceIssueMutation
}

// Where appends a list predicates to the CoherenceIssueDelete builder.
func (_d *CoherenceIssueDelete) Where(ps ...predicate.CoherenceIssue) *CoherenceIssueDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CoherenceIssueDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CoherenceIssueDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CoherenceIssueDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(coherenceissue.Table, sqlgraph.NewFieldSpec(coherenceissue.FieldID, field.TypeString))
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

// CoherenceIssueDeleteOne is the builder for deleting a single CoherenceIssue entity.
type CoherenceIssueDeleteOne struct {
	_d *CoherenceIssueDelete
}

// Where appends a list predicates to the CoherenceIssueDelete builder.
func (_d *CoherenceIssueDeleteOne) Where(ps ...predicate.CoherenceIssue) *CoherenceIssueDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CoherenceIssueDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{coherenceissue.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CoherenceIssueDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
