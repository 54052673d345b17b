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
	"github.com/steward-io/steward/ent/eventrecord"
	"github.com/steward-io/steward/ent/predicate"
	"github.com/steward-io/steward/pkg/models"
)

// EventRecordUpdate is the builder for updating EventRecord entities.
type EventRecordUpdate struct {
	config
	hooks    []Hook
	mutation *EventRecordMutation
}

// Where appends a list predicates to the EventRecordUpdate builder.
func (_u *EventRecordUpdate) Where(ps ...predicate.EventRecord) *EventRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *EventRecordUpdate) SetAgentID(v string) *EventRecordUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableAgentID(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *EventRecordUpdate) SetRunID(v string) *EventRecordUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableRunID(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSourceSequence sets the "source_sequence" field.
func (_u *EventRecordUpdate) SetSourceSequence(v int64) *EventRecordUpdate {
	_u.mutation.ResetSourceSequence()
	_u.mutation.SetSourceSequence(v)
	return _u
}

// SetNillableSourceSequence sets the "source_sequence" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableSourceSequence(v *int64) *EventRecordUpdate {
	if v != nil {
		_u.SetSourceSequence(*v)
	}
	return _u
}

// AddSourceSequence adds value to the "source_sequence" field.
func (_u *EventRecordUpdate) AddSourceSequence(v int64) *EventRecordUpdate {
	_u.mutation.AddSourceSequence(v)
	return _u
}

// SetSourceOccurredAt sets the "source_occurred_at" field.
func (_u *EventRecordUpdate) SetSourceOccurredAt(v time.Time) *EventRecordUpdate {
	_u.mutation.SetSourceOccurredAt(v)
	return _u
}

// SetNillableSourceOccurredAt sets the "source_occurred_at" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableSourceOccurredAt(v *time.Time) *EventRecordUpdate {
	if v != nil {
		_u.SetSourceOccurredAt(*v)
	}
	return _u
}

// SetIngestedAt sets the "ingested_at" field.
func (_u *EventRecordUpdate) SetIngestedAt(v time.Time) *EventRecordUpdate {
	_u.mutation.SetIngestedAt(v)
	return _u
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableIngestedAt(v *time.Time) *EventRecordUpdate {
	if v != nil {
		_u.SetIngestedAt(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventRecordUpdate) SetEventType(v string) *EventRecordUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillableEventType(v *string) *EventRecordUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *EventRecordUpdate) SetPayload(v models.AgentEvent) *EventRecordUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *EventRecordUpdate) SetNillablePayload(v *models.AgentEvent) *EventRecordUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// Mutation returns the EventRecordMutation object of the builder.
func (_u *EventRecordUpdate) Mutation() *EventRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EventRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(eventrecord.Table, eventrecord.Columns, sqlgraph.NewFieldSpec(eventrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(eventrecord.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(eventrecord.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceSequence(); ok {
		_spec.SetField(eventrecord.FieldSourceSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSourceSequence(); ok {
		_spec.AddField(eventrecord.FieldSourceSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SourceOccurredAt(); ok {
		_spec.SetField(eventrecord.FieldSourceOccurredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IngestedAt(); ok {
		_spec.SetField(eventrecord.FieldIngestedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(eventrecord.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(eventrecord.FieldPayload, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventRecordUpdateOne is the builder for updating a single EventRecord entity.
type EventRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventRecordMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *EventRecordUpdateOne) SetAgentID(v string) *EventRecordUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableAgentID(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *EventRecordUpdateOne) SetRunID(v string) *EventRecordUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableRunID(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSourceSequence sets the "source_sequence" field.
func (_u *EventRecordUpdateOne) SetSourceSequence(v int64) *EventRecordUpdateOne {
	_u.mutation.ResetSourceSequence()
	_u.mutation.SetSourceSequence(v)
	return _u
}

// SetNillableSourceSequence sets the "source_sequence" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableSourceSequence(v *int64) *EventRecordUpdateOne {
	if v != nil {
		_u.SetSourceSequence(*v)
	}
	return _u
}

// AddSourceSequence adds value to the "source_sequence" field.
func (_u *EventRecordUpdateOne) AddSourceSequence(v int64) *EventRecordUpdateOne {
	_u.mutation.AddSourceSequence(v)
	return _u
}

// SetSourceOccurredAt sets the "source_occurred_at" field.
func (_u *EventRecordUpdateOne) SetSourceOccurredAt(v time.Time) *EventRecordUpdateOne {
	_u.mutation.SetSourceOccurredAt(v)
	return _u
}

// SetNillableSourceOccurredAt sets the "source_occurred_at" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableSourceOccurredAt(v *time.Time) *EventRecordUpdateOne {
	if v != nil {
		_u.SetSourceOccurredAt(*v)
	}
	return _u
}

// SetIngestedAt sets the "ingested_at" field.
func (_u *EventRecordUpdateOne) SetIngestedAt(v time.Time) *EventRecordUpdateOne {
	_u.mutation.SetIngestedAt(v)
	return _u
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableIngestedAt(v *time.Time) *EventRecordUpdateOne {
	if v != nil {
		_u.SetIngestedAt(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *EventRecordUpdateOne) SetEventType(v string) *EventRecordUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillableEventType(v *string) *EventRecordUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *EventRecordUpdateOne) SetPayload(v models.AgentEvent) *EventRecordUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *EventRecordUpdateOne) SetNillablePayload(v *models.AgentEvent) *EventRecordUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// Mutation returns the EventRecordMutation object of the builder.
func (_u *EventRecordUpdateOne) Mutation() *EventRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventRecordUpdate builder.
func (_u *EventRecordUpdateOne) Where(ps ...predicate.EventRecord) *EventRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventRecordUpdateOne) Select(field string, fields ...string) *EventRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventRecord entity.
func (_u *EventRecordUpdateOne) Save(ctx context.Context) (*EventRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventRecordUpdateOne) SaveX(ctx context.Context) *EventRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EventRecordUpdateOne) sqlSave(ctx context.Context) (_node *EventRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(eventrecord.Table, eventrecord.Columns, sqlgraph.NewFieldSpec(eventrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventrecord.FieldID)
		for _, f := range fields {
			if !eventrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventrecord.FieldID {
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
		_spec.SetField(eventrecord.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(eventrecord.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceSequence(); ok {
		_spec.SetField(eventrecord.FieldSourceSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSourceSequence(); ok {
		_spec.AddField(eventrecord.FieldSourceSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SourceOccurredAt(); ok {
		_spec.SetField(eventrecord.FieldSourceOccurredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IngestedAt(); ok {
		_spec.SetField(eventrecord.FieldIngestedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(eventrecord.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(eventrecord.FieldPayload, field.TypeJSON, value)
	}
	_node = &EventRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
