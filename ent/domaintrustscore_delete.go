// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-io/steward/ent/domaintrustscore"
	"github.com/steward-io/steward/ent/predicate"
)

// DomainTrustScoreDelete is the builder for deleting a DomainTrustScore entity.
type DomainTrustScoreDelete struct {
	config
	hooks    []Hook
	mutation *DomainTrustScoreMutation
}

// Where appends a list predicates to the DomainTrustScoreDelete builder.
func (_d *DomainTrustScoreDelete) Where(ps ...predicate.DomainTrustScore) *DomainTrustScoreDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DomainTrustScoreDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DomainTrustScoreDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DomainTrustScoreDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(domaintrustscore.Table, sqlgraph.NewFieldSpec(domaintrustscore.FieldID, field.TypeInt))
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

// DomainTrustScoreDeleteOne is the builder for deleting a single DomainTrustScore entity.
type DomainTrustScoreDeleteOne struct {
	_d *DomainTrustScoreDelete
}

// Where appends a list predicates to the DomainTrustScoreDelete builder.
func (_d *DomainTrustScoreDeleteOne) Where(ps ...predicate.DomainTrustScore) *DomainTrustScoreDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DomainTrustScoreDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{domaintrustscore.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DomainTrustScoreDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
