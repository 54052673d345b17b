// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-io/steward/ent/artifactcontent"
)

// ArtifactContentCreate is the builder for creating a ArtifactContent entity.
type ArtifactContentCreate struct {
	config
	mutation *ArtifactContentMutation
	hooks    []Hook
}

// SetAgentID sets the "agent_id" field.
func (_c *ArtifactContentCreate) SetAgentID(v string) *ArtifactContentCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetArtifactID sets the "artifact_id" field.
func (_c *ArtifactContentCreate) SetArtifactID(v string) *ArtifactContentCreate {
	_c.mutation.SetArtifactID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ArtifactContentCreate) SetContent(v []byte) *ArtifactContentCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *ArtifactContentCreate) SetMimeType(v string) *ArtifactContentCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *ArtifactContentCreate) SetNillableMimeType(v *string) *ArtifactContentCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ArtifactContentCreate) SetUpdatedAt(v time.Time) *ArtifactContentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ArtifactContentCreate) SetNillableUpdatedAt(v *time.Time) *ArtifactContentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ArtifactContentMutation object of the builder.
func (_c *ArtifactContentCreate) Mutation() *ArtifactContentMutation {
	return _c.mutation
}

// Save creates the ArtifactContent in the database.
func (_c *ArtifactContentCreate) Save(ctx context.Context) (*ArtifactContent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArtifactContentCreate) SaveX(ctx context.Context) *ArtifactContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArtifactContentCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := artifactcontent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArtifactContentCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "ArtifactContent.agent_id"`)}
	}
	if _, ok := _c.mutation.ArtifactID(); !ok {
		return &ValidationError{Name: "artifact_id", err: errors.New(`ent: missing required field "ArtifactContent.artifact_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ArtifactContent.content"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ArtifactContent.updated_at"`)}
	}
	return nil
}

func (_c *ArtifactContentCreate) sqlSave(ctx context.Context) (*ArtifactContent, error) {
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

func (_c *ArtifactContentCreate) createSpec() (*ArtifactContent, *sqlgraph.CreateSpec) {
	var (
		_node = &ArtifactContent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(artifactcontent.Table, sqlgraph.NewFieldSpec(artifactcontent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(artifactcontent.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.ArtifactID(); ok {
		_spec.SetField(artifactcontent.FieldArtifactID, field.TypeString, value)
		_node.ArtifactID = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(artifactcontent.FieldContent, field.TypeBytes, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(artifactcontent.FieldMimeType, field.TypeString, value)
		_node.MimeType = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(artifactcontent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ArtifactContentCreateBulk is the builder for creating many ArtifactContent entities in bulk.
type ArtifactContentCreateBulk struct {
	config
	err      error
	builders []*ArtifactContentCreate
}

// Save creates the ArtifactContent entities in the database.
func (_c *ArtifactContentCreateBulk) Save(ctx context.Context) ([]*ArtifactContent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ArtifactContent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArtifactContentMutation)
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
func (_c *ArtifactContentCreateBulk) SaveX(ctx context.Context) []*ArtifactContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
