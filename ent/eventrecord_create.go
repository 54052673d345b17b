// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-io/steward/ent/eventrecord"
	"github.com/steward-io/steward/pkg/models"
)

// EventRecordCreate is the builder for creating a EventRecord entity.
type EventRecordCreate struct {
	config
	mutation *EventRecordMutation
	hooks    []Hook
}

// SetSourceEventID sets the "source_event_id" field.
func (_c *EventRecordCreate) SetSourceEventID(v string) *EventRecordCreate {
	_c.mutation.SetSourceEventID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *EventRecordCreate) SetAgentID(v string) *EventRecordCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *EventRecordCreate) SetRunID(v string) *EventRecordCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSourceSequence sets the "source_sequence" field.
func (_c *EventRecordCreate) SetSourceSequence(v int64) *EventRecordCreate {
	_c.mutation.SetSourceSequence(v)
	return _c
}

// SetSourceOccurredAt sets the "source_occurred_at" field.
func (_c *EventRecordCreate) SetSourceOccurredAt(v time.Time) *EventRecordCreate {
	_c.mutation.SetSourceOccurredAt(v)
	return _c
}

// SetIngestedAt sets the "ingested_at" field.
func (_c *EventRecordCreate) SetIngestedAt(v time.Time) *EventRecordCreate {
	_c.mutation.SetIngestedAt(v)
	return _c
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (_c *EventRecordCreate) SetNillableIngestedAt(v *time.Time) *EventRecordCreate {
	if v != nil {
		_c.SetIngestedAt(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *EventRecordCreate) SetEventType(v string) *EventRecordCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *EventRecordCreate) SetPayload(v models.AgentEvent) *EventRecordCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// Mutation returns the EventRecordMutation object of the builder.
func (_c *EventRecordCreate) Mutation() *EventRecordMutation {
	return _c.mutation
}

// Save creates the EventRecord in the database.
func (_c *EventRecordCreate) Save(ctx context.Context) (*EventRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventRecordCreate) SaveX(ctx context.Context) *EventRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventRecordCreate) defaults() {
	if _, ok := _c.mutation.IngestedAt(); !ok {
		v := eventrecord.DefaultIngestedAt()
		_c.mutation.SetIngestedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventRecordCreate) check() error {
	if _, ok := _c.mutation.SourceEventID(); !ok {
		return &ValidationError{Name: "source_event_id", err: errors.New(`ent: missing required field "EventRecord.source_event_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "EventRecord.agent_id"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "EventRecord.run_id"`)}
	}
	if _, ok := _c.mutation.SourceSequence(); !ok {
		return &ValidationError{Name: "source_sequence", err: errors.New(`ent: missing required field "EventRecord.source_sequence"`)}
	}
	if _, ok := _c.mutation.SourceOccurredAt(); !ok {
		return &ValidationError{Name: "source_occurred_at", err: errors.New(`ent: missing required field "EventRecord.source_occurred_at"`)}
	}
	if _, ok := _c.mutation.IngestedAt(); !ok {
		return &ValidationError{Name: "ingested_at", err: errors.New(`ent: missing required field "EventRecord.ingested_at"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "EventRecord.event_type"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "EventRecord.payload"`)}
	}
	if v, ok := _c.mutation.Payload(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "payload", err: fmt.Errorf(`ent: validator failed for field "EventRecord.payload": %w`, err)}
		}
	}
	return nil
}

func (_c *EventRecordCreate) sqlSave(ctx context.Context) (*EventRecord, error) {
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

func (_c *EventRecordCreate) createSpec() (*EventRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &EventRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventrecord.Table, sqlgraph.NewFieldSpec(eventrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceEventID(); ok {
		_spec.SetField(eventrecord.FieldSourceEventID, field.TypeString, value)
		_node.SourceEventID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(eventrecord.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(eventrecord.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.SourceSequence(); ok {
		_spec.SetField(eventrecord.FieldSourceSequence, field.TypeInt64, value)
		_node.SourceSequence = value
	}
	if value, ok := _c.mutation.SourceOccurredAt(); ok {
		_spec.SetField(eventrecord.FieldSourceOccurredAt, field.TypeTime, value)
		_node.SourceOccurredAt = value
	}
	if value, ok := _c.mutation.IngestedAt(); ok {
		_spec.SetField(eventrecord.FieldIngestedAt, field.TypeTime, value)
		_node.IngestedAt = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(eventrecord.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(eventrecord.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	return _node, _spec
}

// EventRecordCreateBulk is the builder for creating many EventRecord entities in bulk.
type EventRecordCreateBulk struct {
	config
	err      error
	builders []*EventRecordCreate
}

// Save creates the EventRecord entities in the database.
func (_c *EventRecordCreateBulk) Save(ctx context.Context) ([]*EventRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventRecordMutation)
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
func (_c *EventRecordCreateBulk) SaveX(ctx context.Context) []*EventRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
