// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-io/steward/ent/quarantinedevent"
)

// QuarantinedEventCreate is the builder for creating a QuarantinedEvent entity.
type QuarantinedEventCreate struct {
	config
	mutation *QuarantinedEventMutation
	hooks    []Hook
}

// SetRaw sets the "raw" field.
func (_c *QuarantinedEventCreate) SetRaw(v string) *QuarantinedEventCreate {
	_c.mutation.SetRaw(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *QuarantinedEventCreate) SetReason(v string) *QuarantinedEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *QuarantinedEventCreate) SetSource(v string) *QuarantinedEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *QuarantinedEventCreate) SetNillableSource(v *string) *QuarantinedEventCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetQuarantinedAt sets the "quarantined_at" field.
func (_c *QuarantinedEventCreate) SetQuarantinedAt(v time.Time) *QuarantinedEventCreate {
	_c.mutation.SetQuarantinedAt(v)
	return _c
}

// SetNillableQuarantinedAt sets the "quarantined_at" field if the given value is not nil.
func (_c *QuarantinedEventCreate) SetNillableQuarantinedAt(v *time.Time) *QuarantinedEventCreate {
	if v != nil {
		_c.SetQuarantinedAt(*v)
	}
	return _c
}

// Mutation returns the QuarantinedEventMutation object of the builder.
func (_c *QuarantinedEventCreate) Mutation() *QuarantinedEventMutation {
	return _c.mutation
}

// Save creates the QuarantinedEvent in the database.
func (_c *QuarantinedEventCreate) Save(ctx context.Context) (*QuarantinedEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuarantinedEventCreate) SaveX(ctx context.Context) *QuarantinedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuarantinedEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuarantinedEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuarantinedEventCreate) defaults() {
	if _, ok := _c.mutation.QuarantinedAt(); !ok {
		v := quarantinedevent.DefaultQuarantinedAt()
		_c.mutation.SetQuarantinedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuarantinedEventCreate) check() error {
	if _, ok := _c.mutation.Raw(); !ok {
		return &ValidationError{Name: "raw", err: errors.New(`ent: missing required field "QuarantinedEvent.raw"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "QuarantinedEvent.reason"`)}
	}
	if _, ok := _c.mutation.QuarantinedAt(); !ok {
		return &ValidationError{Name: "quarantined_at", err: errors.New(`ent: missing required field "QuarantinedEvent.quarantined_at"`)}
	}
	return nil
}

func (_c *QuarantinedEventCreate) sqlSave(ctx context.Context) (*QuarantinedEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuarantinedEventCreate) createSpec() (*QuarantinedEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuarantinedEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quarantinedevent.Table, sqlgraph.NewFieldSpec(quarantinedevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Raw(); ok {
		_spec.SetField(quarantinedevent.FieldRaw, field.TypeString, value)
		_node.Raw = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(quarantinedevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(quarantinedevent.FieldSource, field.TypeString, value)
		_node.Source = &value
	}
	if value, ok := _c.mutation.QuarantinedAt(); ok {
		_spec.SetField(quarantinedevent.FieldQuarantinedAt, field.TypeTime, value)
		_node.QuarantinedAt = value
	}
	return _node, _spec
}

// QuarantinedEventCreateBulk is the builder for creating many QuarantinedEvent entities in bulk.
type QuarantinedEventCreateBulk struct {
	config
	err      error
	builders []*QuarantinedEventCreate
}

// Save creates the QuarantinedEvent entities in the database.
func (_c *QuarantinedEventCreateBulk) Save(ctx context.Context) ([]*QuarantinedEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuarantinedEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuarantinedEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *QuarantinedEventCreateBulk) SaveX(ctx context.Context) []*QuarantinedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuarantinedEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuarantinedEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
