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
	"github.com/steward-io/steward/ent/predicate"
	"github.com/steward-io/steward/ent/trustscore"
)

// TrustScoreUpdate is the builder for updating TrustScore entities.
type TrustScoreUpdate struct {
	config
	hooks    []Hook
	mutation *TrustScoreMutation
}

// Where appends a list predicates to the TrustScoreUpdate builder.
func (_u *TrustScoreUpdate) Where(ps ...predicate.TrustScore) *TrustScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScore sets the "score" field.
func (_u *TrustScoreUpdate) SetScore(v int) *TrustScoreUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TrustScoreUpdate) SetNillableScore(v *int) *TrustScoreUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TrustScoreUpdate) AddScore(v int) *TrustScoreUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetLastReason sets the "last_reason" field.
func (_u *TrustScoreUpdate) SetLastReason(v string) *TrustScoreUpdate {
	_u.mutation.SetLastReason(v)
	return _u
}

// SetNillableLastReason sets the "last_reason" field if the given value is not nil.
func (_u *TrustScoreUpdate) SetNillableLastReason(v *string) *TrustScoreUpdate {
	if v != nil {
		_u.SetLastReason(*v)
	}
	return _u
}

// ClearLastReason clears the value of the "last_reason" field.
func (_u *TrustScoreUpdate) ClearLastReason() *TrustScoreUpdate {
	_u.mutation.ClearLastReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TrustScoreUpdate) SetUpdatedAt(v time.Time) *TrustScoreUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TrustScoreUpdate) SetNillableUpdatedAt(v *time.Time) *TrustScoreUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the TrustScoreMutation object of the builder.
func (_u *TrustScoreUpdate) Mutation() *TrustScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrustScoreUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrustScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrustScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrustScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrustScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(trustscore.Table, trustscore.Columns, sqlgraph.NewFieldSpec(trustscore.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(trustscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(trustscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReason(); ok {
		_spec.SetField(trustscore.FieldLastReason, field.TypeString, value)
	}
	if _u.mutation.LastReasonCleared() {
		_spec.ClearField(trustscore.FieldLastReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(trustscore.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trustscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrustScoreUpdateOne is the builder for updating a single TrustScore entity.
type TrustScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrustScoreMutation
}

// SetScore sets the "score" field.
func (_u *TrustScoreUpdateOne) SetScore(v int) *TrustScoreUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *TrustScoreUpdateOne) SetNillableScore(v *int) *TrustScoreUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *TrustScoreUpdateOne) AddScore(v int) *TrustScoreUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetLastReason sets the "last_reason" field.
func (_u *TrustScoreUpdateOne) SetLastReason(v string) *TrustScoreUpdateOne {
	_u.mutation.SetLastReason(v)
	return _u
}

// SetNillableLastReason sets the "last_reason" field if the given value is not nil.
func (_u *TrustScoreUpdateOne) SetNillableLastReason(v *string) *TrustScoreUpdateOne {
	if v != nil {
		_u.SetLastReason(*v)
	}
	return _u
}

// ClearLastReason clears the value of the "last_reason" field.
func (_u *TrustScoreUpdateOne) ClearLastReason() *TrustScoreUpdateOne {
	_u.mutation.ClearLastReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TrustScoreUpdateOne) SetUpdatedAt(v time.Time) *TrustScoreUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TrustScoreUpdateOne) SetNillableUpdatedAt(v *time.Time) *TrustScoreUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the TrustScoreMutation object of the builder.
func (_u *TrustScoreUpdateOne) Mutation() *TrustScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrustScoreUpdate builder.
func (_u *TrustScoreUpdateOne) Where(ps ...predicate.TrustScore) *TrustScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrustScoreUpdateOne) Select(field string, fields ...string) *TrustScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrustScore entity.
func (_u *TrustScoreUpdateOne) Save(ctx context.Context) (*TrustScore, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrustScoreUpdateOne) SaveX(ctx context.Context) *TrustScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrustScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrustScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrustScoreUpdateOne) sqlSave(ctx context.Context) (_node *TrustScore, err error) {
	_spec := sqlgraph.NewUpdateSpec(trustscore.Table, trustscore.Columns, sqlgraph.NewFieldSpec(trustscore.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrustScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trustscore.FieldID)
		for _, f := range fields {
			if !trustscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trustscore.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(trustscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(trustscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReason(); ok {
		_spec.SetField(trustscore.FieldLastReason, field.TypeString, value)
	}
	if _u.mutation.LastReasonCleared() {
		_spec.ClearField(trustscore.FieldLastReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(trustscore.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TrustScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trustscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
