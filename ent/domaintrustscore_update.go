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
	"github.com/steward-io/steward/ent/domaintrustscore"
	"github.com/steward-io/steward/ent/predicate"
)

// DomainTrustScoreUpdate is the builder for updating DomainTrustScore entities.
type DomainTrustScoreUpdate struct {
	config
	hooks    []Hook
	mutation *DomainTrustScoreMutation
}

// Where appends a list predicates to the DomainTrustScoreUpdate builder.
func (_u *DomainTrustScoreUpdate) Where(ps ...predicate.DomainTrustScore) *DomainTrustScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *DomainTrustScoreUpdate) SetAgentID(v string) *DomainTrustScoreUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *DomainTrustScoreUpdate) SetNillableAgentID(v *string) *DomainTrustScoreUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *DomainTrustScoreUpdate) SetDomain(v string) *DomainTrustScoreUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *DomainTrustScoreUpdate) SetNillableDomain(v *string) *DomainTrustScoreUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *DomainTrustScoreUpdate) SetScore(v int) *DomainTrustScoreUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *DomainTrustScoreUpdate) SetNillableScore(v *int) *DomainTrustScoreUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *DomainTrustScoreUpdate) AddScore(v int) *DomainTrustScoreUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DomainTrustScoreUpdate) SetUpdatedAt(v time.Time) *DomainTrustScoreUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *DomainTrustScoreUpdate) SetNillableUpdatedAt(v *time.Time) *DomainTrustScoreUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the DomainTrustScoreMutation object of the builder.
func (_u *DomainTrustScoreUpdate) Mutation() *DomainTrustScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DomainTrustScoreUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainTrustScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DomainTrustScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainTrustScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DomainTrustScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(domaintrustscore.Table, domaintrustscore.Columns, sqlgraph.NewFieldSpec(domaintrustscore.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(domaintrustscore.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(domaintrustscore.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(domaintrustscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(domaintrustscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(domaintrustscore.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domaintrustscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DomainTrustScoreUpdateOne is the builder for updating a single DomainTrustScore entity.
type DomainTrustScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DomainTrustScoreMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *DomainTrustScoreUpdateOne) SetAgentID(v string) *DomainTrustScoreUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *DomainTrustScoreUpdateOne) SetNillableAgentID(v *string) *DomainTrustScoreUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *DomainTrustScoreUpdateOne) SetDomain(v string) *DomainTrustScoreUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *DomainTrustScoreUpdateOne) SetNillableDomain(v *string) *DomainTrustScoreUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *DomainTrustScoreUpdateOne) SetScore(v int) *DomainTrustScoreUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *DomainTrustScoreUpdateOne) SetNillableScore(v *int) *DomainTrustScoreUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *DomainTrustScoreUpdateOne) AddScore(v int) *DomainTrustScoreUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DomainTrustScoreUpdateOne) SetUpdatedAt(v time.Time) *DomainTrustScoreUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *DomainTrustScoreUpdateOne) SetNillableUpdatedAt(v *time.Time) *DomainTrustScoreUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the DomainTrustScoreMutation object of the builder.
func (_u *DomainTrustScoreUpdateOne) Mutation() *DomainTrustScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the DomainTrustScoreUpdate builder.
func (_u *DomainTrustScoreUpdateOne) Where(ps ...predicate.DomainTrustScore) *DomainTrustScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DomainTrustScoreUpdateOne) Select(field string, fields ...string) *DomainTrustScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DomainTrustScore entity.
func (_u *DomainTrustScoreUpdateOne) Save(ctx context.Context) (*DomainTrustScore, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainTrustScoreUpdateOne) SaveX(ctx context.Context) *DomainTrustScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DomainTrustScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainTrustScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DomainTrustScoreUpdateOne) sqlSave(ctx context.Context) (_node *DomainTrustScore, err error) {
	_spec := sqlgraph.NewUpdateSpec(domaintrustscore.Table, domaintrustscore.Columns, sqlgraph.NewFieldSpec(domaintrustscore.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DomainTrustScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, domaintrustscore.FieldID)
		for _, f := range fields {
			if !domaintrustscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != domaintrustscore.FieldID {
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
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(domaintrustscore.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(domaintrustscore.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(domaintrustscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(domaintrustscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(domaintrustscore.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DomainTrustScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domaintrustscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
