// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-io/steward/ent/domaintrustscore"
)

// DomainTrustScoreCreate is the builder for creating a DomainTrustScore entity.
type DomainTrustScoreCreate struct {
	config
	mutation *DomainTrustScoreMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *DomainTrustScoreCreate) SetAgentID(v string) *DomainTrustScoreCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *DomainTrustScoreCreate) SetDomain(v string) *DomainTrustScoreCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *DomainTrustScoreCreate) SetScore(v int) *DomainTrustScoreCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *DomainTrustScoreCreate) SetNillableScore(v *int) *DomainTrustScoreCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DomainTrustScoreCreate) SetUpdatedAt(v time.Time) *DomainTrustScoreCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DomainTrustScoreCreate) SetNillableUpdatedAt(v *time.Time) *DomainTrustScoreCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the DomainTrustScoreMutation object of the builder.
func (_c *DomainTrustScoreCreate) Mutation() *DomainTrustScoreMutation {
	return _c.mutation
}

// Save creates the DomainTrustScore in the database.
func (_c *DomainTrustScoreCreate) Save(ctx context.Context) (*DomainTrustScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DomainTrustScoreCreate) SaveX(ctx context.Context) *DomainTrustScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DomainTrustScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DomainTrustScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DomainTrustScoreCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := domaintrustscore.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := domaintrustscore.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DomainTrustScoreCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "DomainTrustScore.agent_id"`)}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "DomainTrustScore.domain"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "DomainTrustScore.score"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DomainTrustScore.updated_at"`)}
	}
	return nil
}

func (_c *DomainTrustScoreCreate) sqlSave(ctx context.Context) (*DomainTrustScore, error) {
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

func (_c *DomainTrustScoreCreate) createSpec() (*DomainTrustScore, *sqlgraph.CreateSpec) {
	var (
		_node = &DomainTrustScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(domaintrustscore.Table, sqlgraph.NewFieldSpec(domaintrustscore.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(domaintrustscore.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(domaintrustscore.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(domaintrustscore.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(domaintrustscore.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DomainTrustScoreCreateBulk is the builder for creating many DomainTrustScore entities in bulk.
type DomainTrustScoreCreateBulk struct {
	config
	err      error
	builders []*DomainTrustScoreCreate
}

// Save creates the DomainTrustScore entities in the database.
func (_c *DomainTrustScoreCreateBulk) Save(ctx context.Context) ([]*DomainTrustScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DomainTrustScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DomainTrustScoreMutation)
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
func (_c *DomainTrustScoreCreateBulk) SaveX(ctx context.Context) []*DomainTrustScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DomainTrustScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DomainTrustScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
