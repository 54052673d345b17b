// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-io/steward/ent/agentrecord"
	"github.com/steward-io/steward/pkg/models"
)

// AgentRecordCreate is the builder for creating a AgentRecord entity.
type AgentRecordCreate struct {
	config
	mutation *AgentRecordMutation
	hooks    []Hook
}

// SetRole sets the "role" field.
func (_c *AgentRecordCreate) SetRole(v string) *AgentRecordCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetWorkstream sets the "workstream" field.
func (_c *AgentRecordCreate) SetWorkstream(v string) *AgentRecordCreate {
	_c.mutation.SetWorkstream(v)
	return _c
}

// SetReadableWorkstreams sets the "readable_workstreams" field.
func (_c *AgentRecordCreate) SetReadableWorkstreams(v []string) *AgentRecordCreate {
	_c.mutation.SetReadableWorkstreams(v)
	return _c
}

// SetPluginName sets the "plugin_name" field.
func (_c *AgentRecordCreate) SetPluginName(v string) *AgentRecordCreate {
	_c.mutation.SetPluginName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentRecordCreate) SetStatus(v agentrecord.Status) *AgentRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableStatus(v *agentrecord.Status) *AgentRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AgentRecordCreate) SetSessionID(v string) *AgentRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableSessionID(v *string) *AgentRecordCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetModelPreference sets the "model_preference" field.
func (_c *AgentRecordCreate) SetModelPreference(v string) *AgentRecordCreate {
	_c.mutation.SetModelPreference(v)
	return _c
}

// SetNillableModelPreference sets the "model_preference" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableModelPreference(v *string) *AgentRecordCreate {
	if v != nil {
		_c.SetModelPreference(*v)
	}
	return _c
}

// SetBrief sets the "brief" field.
func (_c *AgentRecordCreate) SetBrief(v models.AgentBrief) *AgentRecordCreate {
	_c.mutation.SetBrief(v)
	return _c
}

// SetNillableBrief sets the "brief" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableBrief(v *models.AgentBrief) *AgentRecordCreate {
	if v != nil {
		_c.SetBrief(*v)
	}
	return _c
}

// SetSpawnedAt sets the "spawned_at" field.
func (_c *AgentRecordCreate) SetSpawnedAt(v time.Time) *AgentRecordCreate {
	_c.mutation.SetSpawnedAt(v)
	return _c
}

// SetNillableSpawnedAt sets the "spawned_at" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableSpawnedAt(v *time.Time) *AgentRecordCreate {
	if v != nil {
		_c.SetSpawnedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentRecordCreate) SetUpdatedAt(v time.Time) *AgentRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableUpdatedAt(v *time.Time) *AgentRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentRecordCreate) SetID(v string) *AgentRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_c *AgentRecordCreate) Mutation() *AgentRecordMutation {
	return _c.mutation
}

// Save creates the AgentRecord in the database.
func (_c *AgentRecordCreate) Save(ctx context.Context) (*AgentRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentRecordCreate) SaveX(ctx context.Context) *AgentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SpawnedAt(); !ok {
		v := agentrecord.DefaultSpawnedAt()
		_c.mutation.SetSpawnedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentRecordCreate) check() error {
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "AgentRecord.role"`)}
	}
	if _, ok := _c.mutation.Workstream(); !ok {
		return &ValidationError{Name: "workstream", err: errors.New(`ent: missing required field "AgentRecord.workstream"`)}
	}
	if _, ok := _c.mutation.PluginName(); !ok {
		return &ValidationError{Name: "plugin_name", err: errors.New(`ent: missing required field "AgentRecord.plugin_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Brief(); ok {
		if err := v.Validate(); err != nil {
			return &ValidationError{Name: "brief", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.brief": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SpawnedAt(); !ok {
		return &ValidationError{Name: "spawned_at", err: errors.New(`ent: missing required field "AgentRecord.spawned_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentRecord.updated_at"`)}
	}
	return nil
}

func (_c *AgentRecordCreate) sqlSave(ctx context.Context) (*AgentRecord, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentRecordCreate) createSpec() (*AgentRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentrecord.Table, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(agentrecord.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Workstream(); ok {
		_spec.SetField(agentrecord.FieldWorkstream, field.TypeString, value)
		_node.Workstream = value
	}
	if value, ok := _c.mutation.ReadableWorkstreams(); ok {
		_spec.SetField(agentrecord.FieldReadableWorkstreams, field.TypeJSON, value)
		_node.ReadableWorkstreams = value
	}
	if value, ok := _c.mutation.PluginName(); ok {
		_spec.SetField(agentrecord.FieldPluginName, field.TypeString, value)
		_node.PluginName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(agentrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.ModelPreference(); ok {
		_spec.SetField(agentrecord.FieldModelPreference, field.TypeString, value)
		_node.ModelPreference = &value
	}
	if value, ok := _c.mutation.Brief(); ok {
		_spec.SetField(agentrecord.FieldBrief, field.TypeJSON, value)
		_node.Brief = value
	}
	if value, ok := _c.mutation.SpawnedAt(); ok {
		_spec.SetField(agentrecord.FieldSpawnedAt, field.TypeTime, value)
		_node.SpawnedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AgentRecordCreateBulk is the builder for creating many AgentRecord entities in bulk.
type AgentRecordCreateBulk struct {
	config
	err      error
	builders []*AgentRecordCreate
}

// Save creates the AgentRecord entities in the database.
func (_c *AgentRecordCreateBulk) Save(ctx context.Context) ([]*AgentRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentRecordMutation)
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
func (_c *AgentRecordCreateBulk) SaveX(ctx context.Context) []*AgentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
