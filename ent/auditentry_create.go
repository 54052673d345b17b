// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-io/steward/ent/auditentry"
)

// AuditEntryCreate is the builder for creating a AuditEntry entity.
type AuditEntryCreate struct {
	config
	mutation *AuditEntryMutation
	hooks    []Hook
}

// SetEntityType sets the "entity_type" field.
func (_c *AuditEntryCreate) SetEntityType(v string) *AuditEntryCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *AuditEntryCreate) SetEntityID(v string) *AuditEntryCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *AuditEntryCreate) SetAction(v string) *AuditEntryCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetCallerAgentID sets the "caller_agent_id" field.
func (_c *AuditEntryCreate) SetCallerAgentID(v string) *AuditEntryCreate {
	_c.mutation.SetCallerAgentID(v)
	return _c
}

// SetNillableCallerAgentID sets the "caller_agent_id" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableCallerAgentID(v *string) *AuditEntryCreate {
	if v != nil {
		_c.SetCallerAgentID(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AuditEntryCreate) SetTimestamp(v time.Time) *AuditEntryCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AuditEntryCreate) SetNillableTimestamp(v *time.Time) *AuditEntryCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *AuditEntryCreate) SetDetails(v map[string]interface{}) *AuditEntryCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_c *AuditEntryCreate) Mutation() *AuditEntryMutation {
	return _c.mutation
}

// Save creates the AuditEntry in the database.
func (_c *AuditEntryCreate) Save(ctx context.Context) (*AuditEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditEntryCreate) SaveX(ctx context.Context) *AuditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditEntryCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := auditentry.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditEntryCreate) check() error {
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "AuditEntry.entity_type"`)}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "AuditEntry.entity_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AuditEntry.action"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AuditEntry.timestamp"`)}
	}
	return nil
}

func (_c *AuditEntryCreate) sqlSave(ctx context.Context) (*AuditEntry, error) {
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

func (_c *AuditEntryCreate) createSpec() (*AuditEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditentry.Table, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(auditentry.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(auditentry.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(auditentry.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.CallerAgentID(); ok {
		_spec.SetField(auditentry.FieldCallerAgentID, field.TypeString, value)
		_node.CallerAgentID = &value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(auditentry.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(auditentry.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	return _node, _spec
}

// AuditEntryCreateBulk is the builder for creating many AuditEntry entities in bulk.
type AuditEntryCreateBulk struct {
	config
	err      error
	builders []*AuditEntryCreate
}

// Save creates the AuditEntry entities in the database.
func (_c *AuditEntryCreateBulk) Save(ctx context.Context) ([]*AuditEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditEntryMutation)
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
func (_c *AuditEntryCreateBulk) SaveX(ctx context.Context) []*AuditEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
