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
	"github.com/steward-io/steward/ent/quarantinedevent"
)

// QuarantinedEventUpdate is the builder for updating QuarantinedEvent entities.
type QuarantinedEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuarantinedEventMutation
}

// Where appends a list predicates to the QuarantinedEventUpdate builder.
func (_u *QuarantinedEventUpdate) Where(ps ...predicate.QuarantinedEvent) *QuarantinedEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRaw sets the "raw" field.
func (_u *QuarantinedEventUpdate) SetRaw(v string) *QuarantinedEventUpdate {
	_u.mutation.SetRaw(v)
	return _u
}

// SetNillableRaw sets the "raw" field if the given value is not nil.
func (_u *QuarantinedEventUpdate) SetNillableRaw(v *string) *QuarantinedEventUpdate {
	if v != nil {
		_u.SetRaw(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *QuarantinedEventUpdate) SetReason(v string) *QuarantinedEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *QuarantinedEventUpdate) SetNillableReason(v *string) *QuarantinedEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *QuarantinedEventUpdate) SetSource(v string) *QuarantinedEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuarantinedEventUpdate) SetNillableSource(v *string) *QuarantinedEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *QuarantinedEventUpdate) ClearSource() *QuarantinedEventUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetQuarantinedAt sets the "quarantined_at" field.
func (_u *QuarantinedEventUpdate) SetQuarantinedAt(v time.Time) *QuarantinedEventUpdate {
	_u.mutation.SetQuarantinedAt(v)
	return _u
}

// SetNillableQuarantinedAt sets the "quarantined_at" field if the given value is not nil.
func (_u *QuarantinedEventUpdate) SetNillableQuarantinedAt(v *time.Time) *QuarantinedEventUpdate {
	if v != nil {
		_u.SetQuarantinedAt(*v)
	}
	return _u
}

// Mutation returns the QuarantinedEventMutation object of the builder.
func (_u *QuarantinedEventUpdate) Mutation() *QuarantinedEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuarantinedEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuarantinedEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuarantinedEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuarantinedEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuarantinedEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(quarantinedevent.Table, quarantinedevent.Columns, sqlgraph.NewFieldSpec(quarantinedevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Raw(); ok {
		_spec.SetField(quarantinedevent.FieldRaw, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(quarantinedevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(quarantinedevent.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(quarantinedevent.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.QuarantinedAt(); ok {
		_spec.SetField(quarantinedevent.FieldQuarantinedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quarantinedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuarantinedEventUpdateOne is the builder for updating a single QuarantinedEvent entity.
type QuarantinedEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuarantinedEventMutation
}

// SetRaw sets the "raw" field.
func (_u *QuarantinedEventUpdateOne) SetRaw(v string) *QuarantinedEventUpdateOne {
	_u.mutation.SetRaw(v)
	return _u
}

// SetNillableRaw sets the "raw" field if the given value is not nil.
func (_u *QuarantinedEventUpdateOne) SetNillableRaw(v *string) *QuarantinedEventUpdateOne {
	if v != nil {
		_u.SetRaw(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *QuarantinedEventUpdateOne) SetReason(v string) *QuarantinedEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *QuarantinedEventUpdateOne) SetNillableReason(v *string) *QuarantinedEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *QuarantinedEventUpdateOne) SetSource(v string) *QuarantinedEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuarantinedEventUpdateOne) SetNillableSource(v *string) *QuarantinedEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *QuarantinedEventUpdateOne) ClearSource() *QuarantinedEventUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetQuarantinedAt sets the "quarantined_at" field.
func (_u *QuarantinedEventUpdateOne) SetQuarantinedAt(v time.Time) *QuarantinedEventUpdateOne {
	_u.mutation.SetQuarantinedAt(v)
	return _u
}

// SetNillableQuarantinedAt sets the "quarantined_at" field if the given value is not nil.
func (_u *QuarantinedEventUpdateOne) SetNillableQuarantinedAt(v *time.Time) *QuarantinedEventUpdateOne {
	if v != nil {
		_u.SetQuarantinedAt(*v)
	}
	return _u
}

// Mutation returns the QuarantinedEventMutation object of the builder.
func (_u *QuarantinedEventUpdateOne) Mutation() *QuarantinedEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuarantinedEventUpdate builder.
func (_u *QuarantinedEventUpdateOne) Where(ps ...predicate.QuarantinedEvent) *QuarantinedEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuarantinedEventUpdateOne) Select(field string, fields ...string) *QuarantinedEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuarantinedEvent entity.
func (_u *QuarantinedEventUpdateOne) Save(ctx context.Context) (*QuarantinedEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuarantinedEventUpdateOne) SaveX(ctx context.Context) *QuarantinedEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuarantinedEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuarantinedEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuarantinedEventUpdateOne) sqlSave(ctx context.Context) (_node *QuarantinedEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(quarantinedevent.Table, quarantinedevent.Columns, sqlgraph.NewFieldSpec(quarantinedevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuarantinedEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quarantinedevent.FieldID)
		for _, f := range fields {
			if !quarantinedevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quarantinedevent.FieldID {
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
	if value, ok := _u.mutation.Raw(); ok {
		_spec.SetField(quarantinedevent.FieldRaw, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(quarantinedevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(quarantinedevent.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(quarantinedevent.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.QuarantinedAt(); ok {
		_spec.SetField(quarantinedevent.FieldQuarantinedAt, field.TypeTime, value)
	}
	_node = &QuarantinedEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quarantinedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
