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
	"github.com/steward-io/steward/ent/workstream"
)

// WorkstreamUpdate is the builder for updating Workstream entities.
type WorkstreamUpdate struct {
	config
	hooks    []Hook
	mutation *WorkstreamMutation
}

// Where appends a list predicates to the WorkstreamUpdate builder.
func (_u *WorkstreamUpdate) Where(ps ...predicate.Workstream) *WorkstreamUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WorkstreamUpdate) SetName(v string) *WorkstreamUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkstreamUpdate) SetNillableName(v *string) *WorkstreamUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkstreamUpdate) SetStatus(v string) *WorkstreamUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkstreamUpdate) SetNillableStatus(v *string) *WorkstreamUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *WorkstreamUpdate) SetLastActivity(v string) *WorkstreamUpdate {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *WorkstreamUpdate) SetNillableLastActivity(v *string) *WorkstreamUpdate {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// ClearLastActivity clears the value of the "last_activity" field.
func (_u *WorkstreamUpdate) ClearLastActivity() *WorkstreamUpdate {
	_u.mutation.ClearLastActivity()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkstreamUpdate) SetCreatedAt(v time.Time) *WorkstreamUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkstreamUpdate) SetNillableCreatedAt(v *time.Time) *WorkstreamUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkstreamUpdate) SetUpdatedAt(v time.Time) *WorkstreamUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *WorkstreamUpdate) SetNillableUpdatedAt(v *time.Time) *WorkstreamUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the WorkstreamMutation object of the builder.
func (_u *WorkstreamUpdate) Mutation() *WorkstreamMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkstreamUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkstreamUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkstreamUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkstreamUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WorkstreamUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(workstream.Table, workstream.Columns, sqlgraph.NewFieldSpec(workstream.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workstream.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workstream.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(workstream.FieldLastActivity, field.TypeString, value)
	}
	if _u.mutation.LastActivityCleared() {
		_spec.ClearField(workstream.FieldLastActivity, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workstream.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workstream.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workstream.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkstreamUpdateOne is the builder for updating a single Workstream entity.
type WorkstreamUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkstreamMutation
}

// SetName sets the "name" field.
func (_u *WorkstreamUpdateOne) SetName(v string) *WorkstreamUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WorkstreamUpdateOne) SetNillableName(v *string) *WorkstreamUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkstreamUpdateOne) SetStatus(v string) *WorkstreamUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkstreamUpdateOne) SetNillableStatus(v *string) *WorkstreamUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *WorkstreamUpdateOne) SetLastActivity(v string) *WorkstreamUpdateOne {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *WorkstreamUpdateOne) SetNillableLastActivity(v *string) *WorkstreamUpdateOne {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// ClearLastActivity clears the value of the "last_activity" field.
func (_u *WorkstreamUpdateOne) ClearLastActivity() *WorkstreamUpdateOne {
	_u.mutation.ClearLastActivity()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WorkstreamUpdateOne) SetCreatedAt(v time.Time) *WorkstreamUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WorkstreamUpdateOne) SetNillableCreatedAt(v *time.Time) *WorkstreamUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkstreamUpdateOne) SetUpdatedAt(v time.Time) *WorkstreamUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *WorkstreamUpdateOne) SetNillableUpdatedAt(v *time.Time) *WorkstreamUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the WorkstreamMutation object of the builder.
func (_u *WorkstreamUpdateOne) Mutation() *WorkstreamMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkstreamUpdate builder.
func (_u *WorkstreamUpdateOne) Where(ps ...predicate.Workstream) *WorkstreamUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkstreamUpdateOne) Select(field string, fields ...string) *WorkstreamUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workstream entity.
func (_u *WorkstreamUpdateOne) Save(ctx context.Context) (*Workstream, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkstreamUpdateOne) SaveX(ctx context.Context) *Workstream {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkstreamUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkstreamUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WorkstreamUpdateOne) sqlSave(ctx context.Context) (_node *Workstream, err error) {
	_spec := sqlgraph.NewUpdateSpec(workstream.Table, workstream.Columns, sqlgraph.NewFieldSpec(workstream.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workstream.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workstream.FieldID)
		for _, f := range fields {
			if !workstream.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workstream.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(workstream.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workstream.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(workstream.FieldLastActivity, field.TypeString, value)
	}
	if _u.mutation.LastActivityCleared() {
		_spec.ClearField(workstream.FieldLastActivity, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(workstream.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workstream.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Workstream{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workstream.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
