// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/steward-io/steward/ent/agentrecord"
	"github.com/steward-io/steward/ent/predicate"
	"github.com/steward-io/steward/pkg/models"
)

// AgentRecordUpdate is the builder for updating AgentRecord entities.
type AgentRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRecordMutation
}

// Where appends a list predicates to the AgentRecordUpdate builder.
func (_u *AgentRecordUpdate) Where(ps ...predicate.AgentRecord) *AgentRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentRecordUpdate) SetRole(v string) *AgentRecordUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableRole(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetWorkstream sets the "workstream" field.
func (_u *AgentRecordUpdate) SetWorkstream(v string) *AgentRecordUpdate {
	_u.mutation.SetWorkstream(v)
	return _u
}

// SetNillableWorkstream sets the "workstream" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableWorkstream(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetWorkstream(*v)
	}
	return _u
}

// SetReadableWorkstreams sets the "readable_workstreams" field.
func (_u *AgentRecordUpdate) SetReadableWorkstreams(v []string) *AgentRecordUpdate {
	_u.mutation.SetReadableWorkstreams(v)
	return _u
}

// AppendReadableWorkstreams appends value to the "readable_workstreams" field.
func (_u *AgentRecordUpdate) AppendReadableWorkstreams(v []string) *AgentRecordUpdate {
	_u.mutation.AppendReadableWorkstreams(v)
	return _u
}

// ClearReadableWorkstreams clears the value of the "readable_workstreams" field.
func (_u *AgentRecordUpdate) ClearReadableWorkstreams() *AgentRecordUpdate {
	_u.mutation.ClearReadableWorkstreams()
	return _u
}

// SetPluginName sets the "plugin_name" field.
func (_u *AgentRecordUpdate) SetPluginName(v string) *AgentRecordUpdate {
	_u.mutation.SetPluginName(v)
	return _u
}

// SetNillablePluginName sets the "plugin_name" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillablePluginName(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetPluginName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRecordUpdate) SetStatus(v agentrecord.Status) *AgentRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableStatus(v *agentrecord.Status) *AgentRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AgentRecordUpdate) SetSessionID(v string) *AgentRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableSessionID(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *AgentRecordUpdate) ClearSessionID() *AgentRecordUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetModelPreference sets the "model_preference" field.
func (_u *AgentRecordUpdate) SetModelPreference(v string) *AgentRecordUpdate {
	_u.mutation.SetModelPreference(v)
	return _u
}

// SetNillableModelPreference sets the "model_preference" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableModelPreference(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetModelPreference(*v)
	}
	return _u
}

// ClearModelPreference clears the value of the "model_preference" field.
func (_u *AgentRecordUpdate) ClearModelPreference() *AgentRecordUpdate {
	_u.mutation.ClearModelPreference()
	return _u
}

// SetBrief sets the "brief" field.
func (_u *AgentRecordUpdate) SetBrief(v models.AgentBrief) *AgentRecordUpdate {
	_u.mutation.SetBrief(v)
	return _u
}

// SetNillableBrief sets the "brief" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableBrief(v *models.AgentBrief) *AgentRecordUpdate {
	if v != nil {
		_u.SetBrief(*v)
	}
	return _u
}

// ClearBrief clears the value of the "brief" field.
func (_u *AgentRecordUpdate) ClearBrief() *AgentRecordUpdate {
	_u.mutation.ClearBrief()
	return _u
}

// SetSpawnedAt sets the "spawned_at" field.
func (_u *AgentRecordUpdate) SetSpawnedAt(v time.Time) *AgentRecordUpdate {
	_u.mutation.SetSpawnedAt(v)
	return _u
}

// SetNillableSpawnedAt sets the "spawned_at" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableSpawnedAt(v *time.Time) *AgentRecordUpdate {
	if v != nil {
		_u.SetSpawnedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentRecordUpdate) SetUpdatedAt(v time.Time) *AgentRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableUpdatedAt(v *time.Time) *AgentRecordUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_u *AgentRecordUpdate) Mutation() *AgentRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Brief(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "brief", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.brief": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrecord.Table, agentrecord.Columns, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentrecord.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Workstream(); ok {
		_spec.SetField(agentrecord.FieldWorkstream, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReadableWorkstreams(); ok {
		_spec.SetField(agentrecord.FieldReadableWorkstreams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReadableWorkstreams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldReadableWorkstreams, value)
		})
	}
	if _u.mutation.ReadableWorkstreamsCleared() {
		_spec.ClearField(agentrecord.FieldReadableWorkstreams, field.TypeJSON)
	}
	if value, ok := _u.mutation.PluginName(); ok {
		_spec.SetField(agentrecord.FieldPluginName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(agentrecord.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(agentrecord.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ModelPreference(); ok {
		_spec.SetField(agentrecord.FieldModelPreference, field.TypeString, value)
	}
	if _u.mutation.ModelPreferenceCleared() {
		_spec.ClearField(agentrecord.FieldModelPreference, field.TypeString)
	}
	if value, ok := _u.mutation.Brief(); ok {
		_spec.SetField(agentrecord.FieldBrief, field.TypeJSON, value)
	}
	if _u.mutation.BriefCleared() {
		_spec.ClearField(agentrecord.FieldBrief, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpawnedAt(); ok {
		_spec.SetField(agentrecord.FieldSpawnedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRecordUpdateOne is the builder for updating a single AgentRecord entity.
type AgentRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRecordMutation
}

// SetRole sets the "role" field.
func (_u *AgentRecordUpdateOne) SetRole(v string) *AgentRecordUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableRole(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetWorkstream sets the "workstream" field.
func (_u *AgentRecordUpdateOne) SetWorkstream(v string) *AgentRecordUpdateOne {
	_u.mutation.SetWorkstream(v)
	return _u
}

// SetNillableWorkstream sets the "workstream" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableWorkstream(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetWorkstream(*v)
	}
	return _u
}

// SetReadableWorkstreams sets the "readable_workstreams" field.
func (_u *AgentRecordUpdateOne) SetReadableWorkstreams(v []string) *AgentRecordUpdateOne {
	_u.mutation.SetReadableWorkstreams(v)
	return _u
}

// AppendReadableWorkstreams appends value to the "readable_workstreams" field.
func (_u *AgentRecordUpdateOne) AppendReadableWorkstreams(v []string) *AgentRecordUpdateOne {
	_u.mutation.AppendReadableWorkstreams(v)
	return _u
}

// ClearReadableWorkstreams clears the value of the "readable_workstreams" field.
func (_u *AgentRecordUpdateOne) ClearReadableWorkstreams() *AgentRecordUpdateOne {
	_u.mutation.ClearReadableWorkstreams()
	return _u
}

// SetPluginName sets the "plugin_name" field.
func (_u *AgentRecordUpdateOne) SetPluginName(v string) *AgentRecordUpdateOne {
	_u.mutation.SetPluginName(v)
	return _u
}

// SetNillablePluginName sets the "plugin_name" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillablePluginName(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetPluginName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRecordUpdateOne) SetStatus(v agentrecord.Status) *AgentRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableStatus(v *agentrecord.Status) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AgentRecordUpdateOne) SetSessionID(v string) *AgentRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableSessionID(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *AgentRecordUpdateOne) ClearSessionID() *AgentRecordUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetModelPreference sets the "model_preference" field.
func (_u *AgentRecordUpdateOne) SetModelPreference(v string) *AgentRecordUpdateOne {
	_u.mutation.SetModelPreference(v)
	return _u
}

// SetNillableModelPreference sets the "model_preference" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableModelPreference(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetModelPreference(*v)
	}
	return _u
}

// ClearModelPreference clears the value of the "model_preference" field.
func (_u *AgentRecordUpdateOne) ClearModelPreference() *AgentRecordUpdateOne {
	_u.mutation.ClearModelPreference()
	return _u
}

// SetBrief sets the "brief" field.
func (_u *AgentRecordUpdateOne) SetBrief(v models.AgentBrief) *AgentRecordUpdateOne {
	_u.mutation.SetBrief(v)
	return _u
}

// SetNillableBrief sets the "brief" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableBrief(v *models.AgentBrief) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetBrief(*v)
	}
	return _u
}

// ClearBrief clears the value of the "brief" field.
func (_u *AgentRecordUpdateOne) ClearBrief() *AgentRecordUpdateOne {
	_u.mutation.ClearBrief()
	return _u
}

// SetSpawnedAt sets the "spawned_at" field.
func (_u *AgentRecordUpdateOne) SetSpawnedAt(v time.Time) *AgentRecordUpdateOne {
	_u.mutation.SetSpawnedAt(v)
	return _u
}

// SetNillableSpawnedAt sets the "spawned_at" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableSpawnedAt(v *time.Time) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetSpawnedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentRecordUpdateOne) SetUpdatedAt(v time.Time) *AgentRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableUpdatedAt(v *time.Time) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_u *AgentRecordUpdateOne) Mutation() *AgentRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentRecordUpdate builder.
func (_u *AgentRecordUpdateOne) Where(ps ...predicate.AgentRecord) *AgentRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRecordUpdateOne) Select(field string, fields ...string) *AgentRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRecord entity.
func (_u *AgentRecordUpdateOne) Save(ctx context.Context) (*AgentRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRecordUpdateOne) SaveX(ctx context.Context) *AgentRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Brief(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "brief", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.brief": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRecordUpdateOne) sqlSave(ctx context.Context) (_node *AgentRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrecord.Table, agentrecord.Columns, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrecord.FieldID)
		for _, f := range fields {
			if !agentrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrecord.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agentrecord.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Workstream(); ok {
		_spec.SetField(agentrecord.FieldWorkstream, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReadableWorkstreams(); ok {
		_spec.SetField(agentrecord.FieldReadableWorkstreams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReadableWorkstreams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldReadableWorkstreams, value)
		})
	}
	if _u.mutation.ReadableWorkstreamsCleared() {
		_spec.ClearField(agentrecord.FieldReadableWorkstreams, field.TypeJSON)
	}
	if value, ok := _u.mutation.PluginName(); ok {
		_spec.SetField(agentrecord.FieldPluginName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(agentrecord.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(agentrecord.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ModelPreference(); ok {
		_spec.SetField(agentrecord.FieldModelPreference, field.TypeString, value)
	}
	if _u.mutation.ModelPreferenceCleared() {
		_spec.ClearField(agentrecord.FieldModelPreference, field.TypeString)
	}
	if value, ok := _u.mutation.Brief(); ok {
		_spec.SetField(agentrecord.FieldBrief, field.TypeJSON, value)
	}
	if _u.mutation.BriefCleared() {
		_spec.ClearField(agentrecord.FieldBrief, field.TypeJSON)
	}
	if value, ok := _u.mutation.SpawnedAt(); ok {
		_spec.SetField(agentrecord.FieldSpawnedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
