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
	"github.com/steward-io/steward/ent/checkpoint"
	"github.com/steward-io/steward/ent/predicate"
	"github.com/steward-io/steward/pkg/models"
)

// CheckpointUpdate is the builder for updating Checkpoint entities.
type CheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointMutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdate) Where(ps ...predicate.Checkpoint) *CheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *CheckpointUpdate) SetAgentID(v string) *CheckpointUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableAgentID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CheckpointUpdate) SetState(v models.SerializedAgentState) *CheckpointUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableState(v *models.SerializedAgentState) *CheckpointUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetDecisionID sets the "decision_id" field.
func (_u *CheckpointUpdate) SetDecisionID(v string) *CheckpointUpdate {
	_u.mutation.SetDecisionID(v)
	return _u
}

// SetNillableDecisionID sets the "decision_id" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableDecisionID(v *string) *CheckpointUpdate {
	if v != nil {
		_u.SetDecisionID(*v)
	}
	return _u
}

// ClearDecisionID clears the value of the "decision_id" field.
func (_u *CheckpointUpdate) ClearDecisionID() *CheckpointUpdate {
	_u.mutation.ClearDecisionID()
	return _u
}

// SetSerializedBy sets the "serialized_by" field.
func (_u *CheckpointUpdate) SetSerializedBy(v checkpoint.SerializedBy) *CheckpointUpdate {
	_u.mutation.SetSerializedBy(v)
	return _u
}

// SetNillableSerializedBy sets the "serialized_by" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableSerializedBy(v *checkpoint.SerializedBy) *CheckpointUpdate {
	if v != nil {
		_u.SetSerializedBy(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CheckpointUpdate) SetCreatedAt(v time.Time) *CheckpointUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CheckpointUpdate) SetNillableCreatedAt(v *time.Time) *CheckpointUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdate) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdate) check() error {
	if v, ok := _u.mutation.SerializedBy(); ok {
		if err := checkpoint.SerializedByValidator(v); err != nil {
			return &ValidationError{Name: "serialized_by", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.serialized_by": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(checkpoint.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(checkpoint.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DecisionID(); ok {
		_spec.SetField(checkpoint.FieldDecisionID, field.TypeString, value)
	}
	if _u.mutation.DecisionIDCleared() {
		_spec.ClearField(checkpoint.FieldDecisionID, field.TypeString)
	}
	if value, ok := _u.mutation.SerializedBy(); ok {
		_spec.SetField(checkpoint.FieldSerializedBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(checkpoint.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointUpdateOne is the builder for updating a single Checkpoint entity.
type CheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *CheckpointUpdateOne) SetAgentID(v string) *CheckpointUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableAgentID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *CheckpointUpdateOne) SetState(v models.SerializedAgentState) *CheckpointUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableState(v *models.SerializedAgentState) *CheckpointUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetDecisionID sets the "decision_id" field.
func (_u *CheckpointUpdateOne) SetDecisionID(v string) *CheckpointUpdateOne {
	_u.mutation.SetDecisionID(v)
	return _u
}

// SetNillableDecisionID sets the "decision_id" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableDecisionID(v *string) *CheckpointUpdateOne {
	if v != nil {
		_u.SetDecisionID(*v)
	}
	return _u
}

// ClearDecisionID clears the value of the "decision_id" field.
func (_u *CheckpointUpdateOne) ClearDecisionID() *CheckpointUpdateOne {
	_u.mutation.ClearDecisionID()
	return _u
}

// SetSerializedBy sets the "serialized_by" field.
func (_u *CheckpointUpdateOne) SetSerializedBy(v checkpoint.SerializedBy) *CheckpointUpdateOne {
	_u.mutation.SetSerializedBy(v)
	return _u
}

// SetNillableSerializedBy sets the "serialized_by" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableSerializedBy(v *checkpoint.SerializedBy) *CheckpointUpdateOne {
	if v != nil {
		_u.SetSerializedBy(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CheckpointUpdateOne) SetCreatedAt(v time.Time) *CheckpointUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CheckpointUpdateOne) SetNillableCreatedAt(v *time.Time) *CheckpointUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the CheckpointMutation object of the builder.
func (_u *CheckpointUpdateOne) Mutation() *CheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckpointUpdate builder.
func (_u *CheckpointUpdateOne) Where(ps ...predicate.Checkpoint) *CheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointUpdateOne) Select(field string, fields ...string) *CheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Checkpoint entity.
func (_u *CheckpointUpdateOne) Save(ctx context.Context) (*Checkpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointUpdateOne) SaveX(ctx context.Context) *Checkpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointUpdateOne) check() error {
	if v, ok := _u.mutation.SerializedBy(); ok {
		if err := checkpoint.SerializedByValidator(v); err != nil {
			return &ValidationError{Name: "serialized_by", err: fmt.Errorf(`ent: validator failed for field "Checkpoint.serialized_by": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckpointUpdateOne) sqlSave(ctx context.Context) (_node *Checkpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpoint.Table, checkpoint.Columns, sqlgraph.NewFieldSpec(checkpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Checkpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpoint.FieldID)
		for _, f := range fields {
			if !checkpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpoint.FieldID {
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
		_spec.SetField(checkpoint.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(checkpoint.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DecisionID(); ok {
		_spec.SetField(checkpoint.FieldDecisionID, field.TypeString, value)
	}
	if _u.mutation.DecisionIDCleared() {
		_spec.ClearField(checkpoint.FieldDecisionID, field.TypeString)
	}
	if value, ok := _u.mutation.SerializedBy(); ok {
		_spec.SetField(checkpoint.FieldSerializedBy, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(checkpoint.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Checkpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
