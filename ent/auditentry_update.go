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
	"github.com/steward-io/steward/ent/auditentry"
	"github.com/steward-io/steward/ent/predicate"
)

// AuditEntryUpdate is the builder for updating AuditEntry entities.
type AuditEntryUpdate struct {
	config
	hooks    []Hook
	mutation *AuditEntryMutation
}

// Where appends a list predicates to the AuditEntryUpdate builder.
func (_u *AuditEntryUpdate) Where(ps ...predicate.AuditEntry) *AuditEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *AuditEntryUpdate) SetEntityType(v string) *AuditEntryUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableEntityType(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *AuditEntryUpdate) SetEntityID(v string) *AuditEntryUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableEntityID(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AuditEntryUpdate) SetAction(v string) *AuditEntryUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableAction(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCallerAgentID sets the "caller_agent_id" field.
func (_u *AuditEntryUpdate) SetCallerAgentID(v string) *AuditEntryUpdate {
	_u.mutation.SetCallerAgentID(v)
	return _u
}

// SetNillableCallerAgentID sets the "caller_agent_id" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableCallerAgentID(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetCallerAgentID(*v)
	}
	return _u
}

// ClearCallerAgentID clears the value of the "caller_agent_id" field.
func (_u *AuditEntryUpdate) ClearCallerAgentID() *AuditEntryUpdate {
	_u.mutation.ClearCallerAgentID()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *AuditEntryUpdate) SetTimestamp(v time.Time) *AuditEntryUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableTimestamp(v *time.Time) *AuditEntryUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *AuditEntryUpdate) SetDetails(v map[string]interface{}) *AuditEntryUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *AuditEntryUpdate) ClearDetails() *AuditEntryUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_u *AuditEntryUpdate) Mutation() *AuditEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuditEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(auditentry.Table, auditentry.Columns, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(auditentry.FieldEntityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(auditentry.FieldEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(auditentry.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CallerAgentID(); ok {
		_spec.SetField(auditentry.FieldCallerAgentID, field.TypeString, value)
	}
	if _u.mutation.CallerAgentIDCleared() {
		_spec.ClearField(auditentry.FieldCallerAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(auditentry.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(auditentry.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(auditentry.FieldDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditEntryUpdateOne is the builder for updating a single AuditEntry entity.
type AuditEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditEntryMutation
}

// SetEntityType sets the "entity_type" field.
func (_u *AuditEntryUpdateOne) SetEntityType(v string) *AuditEntryUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableEntityType(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *AuditEntryUpdateOne) SetEntityID(v string) *AuditEntryUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableEntityID(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AuditEntryUpdateOne) SetAction(v string) *AuditEntryUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableAction(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCallerAgentID sets the "caller_agent_id" field.
func (_u *AuditEntryUpdateOne) SetCallerAgentID(v string) *AuditEntryUpdateOne {
	_u.mutation.SetCallerAgentID(v)
	return _u
}

// SetNillableCallerAgentID sets the "caller_agent_id" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableCallerAgentID(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetCallerAgentID(*v)
	}
	return _u
}

// ClearCallerAgentID clears the value of the "caller_agent_id" field.
func (_u *AuditEntryUpdateOne) ClearCallerAgentID() *AuditEntryUpdateOne {
	_u.mutation.ClearCallerAgentID()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *AuditEntryUpdateOne) SetTimestamp(v time.Time) *AuditEntryUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableTimestamp(v *time.Time) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *AuditEntryUpdateOne) SetDetails(v map[string]interface{}) *AuditEntryUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *AuditEntryUpdateOne) ClearDetails() *AuditEntryUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_u *AuditEntryUpdateOne) Mutation() *AuditEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditEntryUpdate builder.
func (_u *AuditEntryUpdateOne) Where(ps ...predicate.AuditEntry) *AuditEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditEntryUpdateOne) Select(field string, fields ...string) *AuditEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditEntry entity.
func (_u *AuditEntryUpdateOne) Save(ctx context.Context) (*AuditEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditEntryUpdateOne) SaveX(ctx context.Context) *AuditEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuditEntryUpdateOne) sqlSave(ctx context.Context) (_node *AuditEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(auditentry.Table, auditentry.Columns, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditentry.FieldID)
		for _, f := range fields {
			if !auditentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditentry.FieldID {
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
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(auditentry.FieldEntityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(auditentry.FieldEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(auditentry.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CallerAgentID(); ok {
		_spec.SetField(auditentry.FieldCallerAgentID, field.TypeString, value)
	}
	if _u.mutation.CallerAgentIDCleared() {
		_spec.ClearField(auditentry.FieldCallerAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(auditentry.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(auditentry.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(auditentry.FieldDetails, field.TypeJSON)
	}
	_node = &AuditEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
