// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-io/steward/ent/artifact"
)

// ArtifactCreate is the builder for creating a Artifact entity.
type ArtifactCreate struct {
	config
	mutation *ArtifactMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ArtifactCreate) SetName(v string) *ArtifactCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ArtifactCreate) SetKind(v artifact.Kind) *ArtifactCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableKind(v *artifact.Kind) *ArtifactCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetWorkstream sets the "workstream" field.
func (_c *ArtifactCreate) SetWorkstream(v string) *ArtifactCreate {
	_c.mutation.SetWorkstream(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ArtifactCreate) SetStatus(v artifact.Status) *ArtifactCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableStatus(v *artifact.Status) *ArtifactCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *ArtifactCreate) SetQualityScore(v float64) *ArtifactCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableQualityScore(v *float64) *ArtifactCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ArtifactCreate) SetCreatedBy(v string) *ArtifactCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArtifactCreate) SetCreatedAt(v time.Time) *ArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableCreatedAt(v *time.Time) *ArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ArtifactCreate) SetUpdatedAt(v time.Time) *ArtifactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableUpdatedAt(v *time.Time) *ArtifactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSources sets the "sources" field.
func (_c *ArtifactCreate) SetSources(v []string) *ArtifactCreate {
	_c.mutation.SetSources(v)
	return _c
}

// SetURI sets the "uri" field.
func (_c *ArtifactCreate) SetURI(v string) *ArtifactCreate {
	_c.mutation.SetURI(v)
	return _c
}

// SetNillableURI sets the "uri" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableURI(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetURI(*v)
	}
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *ArtifactCreate) SetMimeType(v string) *ArtifactCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableMimeType(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *ArtifactCreate) SetSizeBytes(v int64) *ArtifactCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableSizeBytes(v *int64) *ArtifactCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *ArtifactCreate) SetContentHash(v string) *ArtifactCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableContentHash(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetContentHash(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ArtifactCreate) SetSummary(v string) *ArtifactCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableSummary(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ArtifactCreate) SetVersion(v int) *ArtifactCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableVersion(v *int) *ArtifactCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArtifactCreate) SetID(v string) *ArtifactCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ArtifactMutation object of the builder.
func (_c *ArtifactCreate) Mutation() *ArtifactMutation {
	return _c.mutation
}

// Save creates the Artifact in the database.
func (_c *ArtifactCreate) Save(ctx context.Context) (*Artifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArtifactCreate) SaveX(ctx context.Context) *Artifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArtifactCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := artifact.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := artifact.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		v := artifact.DefaultQualityScore
		_c.mutation.SetQualityScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := artifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := artifact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := artifact.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArtifactCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Artifact.name"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Artifact.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := artifact.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Artifact.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Workstream(); !ok {
		return &ValidationError{Name: "workstream", err: errors.New(`ent: missing required field "Artifact.workstream"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Artifact.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := artifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Artifact.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		return &ValidationError{Name: "quality_score", err: errors.New(`ent: missing required field "Artifact.quality_score"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Artifact.created_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Artifact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Artifact.updated_at"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Artifact.version"`)}
	}
	return nil
}

func (_c *ArtifactCreate) sqlSave(ctx context.Context) (*Artifact, error) {
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
			return nil, fmt.Errorf("unexpected Artifact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArtifactCreate) createSpec() (*Artifact, *sqlgraph.CreateSpec) {
	var (
		_node = &Artifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(artifact.Table, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(artifact.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(artifact.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Workstream(); ok {
		_spec.SetField(artifact.FieldWorkstream, field.TypeString, value)
		_node.Workstream = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(artifact.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(artifact.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(artifact.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(artifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(artifact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Sources(); ok {
		_spec.SetField(artifact.FieldSources, field.TypeJSON, value)
		_node.Sources = value
	}
	if value, ok := _c.mutation.URI(); ok {
		_spec.SetField(artifact.FieldURI, field.TypeString, value)
		_node.URI = &value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(artifact.FieldMimeType, field.TypeString, value)
		_node.MimeType = &value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(artifact.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = &value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(artifact.FieldContentHash, field.TypeString, value)
		_node.ContentHash = &value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(artifact.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(artifact.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	return _node, _spec
}

// ArtifactCreateBulk is the builder for creating many Artifact entities in bulk.
type ArtifactCreateBulk struct {
	config
	err      error
	builders []*ArtifactCreate
}

// Save creates the Artifact entities in the database.
func (_c *ArtifactCreateBulk) Save(ctx context.Context) ([]*Artifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Artifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArtifactMutation)
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
func (_c *ArtifactCreateBulk) SaveX(ctx context.Context) []*Artifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
