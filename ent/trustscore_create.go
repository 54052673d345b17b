// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-io/steward/ent/trustscore"
)

// TrustScoreCreate is the builder for creating a TrustScore entity.
type TrustScoreCreate struct {
	config
	mutation *TrustScoreMutation
	hooks    []Hook
}

// SetScore sets the "score" field.
func (_c *TrustScoreCreate) SetScore(v int) *TrustScoreCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *TrustScoreCreate) SetNillableScore(v *int) *TrustScoreCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetLastReason sets the "last_reason" field.
func (_c *TrustScoreCreate) SetLastReason(v string) *TrustScoreCreate {
	_c.mutation.SetLastReason(v)
	return _c
}

// SetNillableLastReason sets the "last_reason" field if the given value is not nil.
func (_c *TrustScoreCreate) SetNillableLastReason(v *string) *TrustScoreCreate {
	if v != nil {
		_c.SetLastReason(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TrustScoreCreate) SetUpdatedAt(v time.Time) *TrustScoreCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TrustScoreCreate) SetNillableUpdatedAt(v *time.Time) *TrustScoreCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrustScoreCreate) SetID(v string) *TrustScoreCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TrustScoreMutation object of the builder.
func (_c *TrustScoreCreate) Mutation() *TrustScoreMutation {
	return _c.mutation
}

// Save creates the TrustScore in the database.
func (_c *TrustScoreCreate) Save(ctx context.Context) (*TrustScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrustScoreCreate) SaveX(ctx context.Context) *TrustScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrustScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrustScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrustScoreCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := trustscore.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := trustscore.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrustScoreCreate) check() error {
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "TrustScore.score"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TrustScore.updated_at"`)}
	}
	return nil
}

func (_c *TrustScoreCreate) sqlSave(ctx context.Context) (*TrustScore, error) {
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
			return nil, fmt.Errorf("unexpected TrustScore.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TrustScoreCreate) createSpec() (*TrustScore, *sqlgraph.CreateSpec) {
	var (
		_node = &TrustScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trustscore.Table, sqlgraph.NewFieldSpec(trustscore.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(trustscore.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.LastReason(); ok {
		_spec.SetField(trustscore.FieldLastReason, field.TypeString, value)
		_node.LastReason = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(trustscore.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TrustScoreCreateBulk is the builder for creating many TrustScore entities in bulk.
type TrustScoreCreateBulk struct {
	config
	err      error
	builders []*TrustScoreCreate
}

// Save creates the TrustScore entities in the database.
func (_c *TrustScoreCreateBulk) Save(ctx context.Context) ([]*TrustScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrustScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrustScoreMutation)
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
func (_c *TrustScoreCreateBulk) SaveX(ctx context.Context) []*TrustScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrustScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrustScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
