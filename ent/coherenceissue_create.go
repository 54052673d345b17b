// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-io/steward/ent/coherenceissue"
)

// CoherenceIssueCreate is the builder for creating a CoherenceIssue entity.
type CoherenceIssueCreate struct {
	config
	mutation *CoherenceIssueMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *CoherenceIssueCreate) SetKind(v coherenceissue.Kind) *CoherenceIssueCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *CoherenceIssueCreate) SetSummary(v string) *CoherenceIssueCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *CoherenceIssueCreate) SetSeverity(v coherenceissue.Severity) *CoherenceIssueCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *CoherenceIssueCreate) SetNillableSeverity(v *coherenceissue.Severity) *CoherenceIssueCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CoherenceIssueCreate) SetStatus(v coherenceissue.Status) *CoherenceIssueCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CoherenceIssueCreate) SetNillableStatus(v *coherenceissue.Status) *CoherenceIssueCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAffectedWorkstreams sets the "affected_workstreams" field.
func (_c *CoherenceIssueCreate) SetAffectedWorkstreams(v []string) *CoherenceIssueCreate {
	_c.mutation.SetAffectedWorkstreams(v)
	return _c
}

// SetAffectedArtifacts sets the "affected_artifacts" field.
func (_c *CoherenceIssueCreate) SetAffectedArtifacts(v []string) *CoherenceIssueCreate {
	_c.mutation.SetAffectedArtifacts(v)
	return _c
}

// SetDetectedBy sets the "detected_by" field.
func (_c *CoherenceIssueCreate) SetDetectedBy(v string) *CoherenceIssueCreate {
	_c.mutation.SetDetectedBy(v)
	return _c
}

// SetNillableDetectedBy sets the "detected_by" field if the given value is not nil.
func (_c *CoherenceIssueCreate) SetNillableDetectedBy(v *string) *CoherenceIssueCreate {
	if v != nil {
		_c.SetDetectedBy(*v)
	}
	return _c
}

// SetDetectedAtTick sets the "detected_at_tick" field.
func (_c *CoherenceIssueCreate) SetDetectedAtTick(v int64) *CoherenceIssueCreate {
	_c.mutation.SetDetectedAtTick(v)
	return _c
}

// SetNillableDetectedAtTick sets the "detected_at_tick" field if the given value is not nil.
func (_c *CoherenceIssueCreate) SetNillableDetectedAtTick(v *int64) *CoherenceIssueCreate {
	if v != nil {
		_c.SetDetectedAtTick(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CoherenceIssueCreate) SetCreatedAt(v time.Time) *CoherenceIssueCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CoherenceIssueCreate) SetNillableCreatedAt(v *time.Time) *CoherenceIssueCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *CoherenceIssueCreate) SetResolvedAt(v time.Time) *CoherenceIssueCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *CoherenceIssueCreate) SetNillableResolvedAt(v *time.Time) *CoherenceIssueCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetResolution sets the "resolution" field.
func (_c *CoherenceIssueCreate) SetResolution(v string) *CoherenceIssueCreate {
	_c.mutation.SetResolution(v)
	return _c
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_c *CoherenceIssueCreate) SetNillableResolution(v *string) *CoherenceIssueCreate {
	if v != nil {
		_c.SetResolution(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CoherenceIssueCreate) SetID(v string) *CoherenceIssueCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CoherenceIssueMutation object of the builder.
func (_c *CoherenceIssueCreate) Mutation() *CoherenceIssueMutation {
	return _c.mutation
}

// Save creates the CoherenceIssue in the database.
func (_c *CoherenceIssueCreate) Save(ctx context.Context) (*CoherenceIssue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CoherenceIssueCreate) SaveX(ctx context.Context) *CoherenceIssue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoherenceIssueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoherenceIssueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CoherenceIssueCreate) defaults() {
	if _, ok := _c.mutation.Severity(); !ok {
		v := coherenceissue.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := coherenceissue.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.DetectedAtTick(); !ok {
		v := coherenceissue.DefaultDetectedAtTick
		_c.mutation.SetDetectedAtTick(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := coherenceissue.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CoherenceIssueCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "CoherenceIssue.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := coherenceissue.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CoherenceIssue.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "CoherenceIssue.summary"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "CoherenceIssue.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := coherenceissue.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "CoherenceIssue.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CoherenceIssue.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := coherenceissue.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CoherenceIssue.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DetectedAtTick(); !ok {
		return &ValidationError{Name: "detected_at_tick", err: errors.New(`ent: missing required field "CoherenceIssue.detected_at_tick"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CoherenceIssue.created_at"`)}
	}
	return nil
}

func (_c *CoherenceIssueCreate) sqlSave(ctx context.Context) (*CoherenceIssue, error) {
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
			return nil, fmt.Errorf("unexpected CoherenceIssue.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CoherenceIssueCreate) createSpec() (*CoherenceIssue, *sqlgraph.CreateSpec) {
	var (
		_node = &CoherenceIssue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(coherenceissue.Table, sqlgraph.NewFieldSpec(coherenceissue.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(coherenceissue.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(coherenceissue.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(coherenceissue.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(coherenceissue.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AffectedWorkstreams(); ok {
		_spec.SetField(coherenceissue.FieldAffectedWorkstreams, field.TypeJSON, value)
		_node.AffectedWorkstreams = value
	}
	if value, ok := _c.mutation.AffectedArtifacts(); ok {
		_spec.SetField(coherenceissue.FieldAffectedArtifacts, field.TypeJSON, value)
		_node.AffectedArtifacts = value
	}
	if value, ok := _c.mutation.DetectedBy(); ok {
		_spec.SetField(coherenceissue.FieldDetectedBy, field.TypeString, value)
		_node.DetectedBy = &value
	}
	if value, ok := _c.mutation.DetectedAtTick(); ok {
		_spec.SetField(coherenceissue.FieldDetectedAtTick, field.TypeInt64, value)
		_node.DetectedAtTick = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(coherenceissue.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(coherenceissue.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.Resolution(); ok {
		_spec.SetField(coherenceissue.FieldResolution, field.TypeString, value)
		_node.Resolution = &value
	}
	return _node, _spec
}

// CoherenceIssueCreateBulk is the builder for creating many CoherenceIssue entities in bulk.
type CoherenceIssueCreateBulk struct {
	config
	err      error
	builders []*CoherenceIssueCreate
}

// Save creates the CoherenceIssue entities in the database.
func (_c *CoherenceIssueCreateBulk) Save(ctx context.Context) ([]*CoherenceIssue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CoherenceIssue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CoherenceIssueMutation)
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
func (_c *CoherenceIssueCreateBulk) SaveX(ctx context.Context) []*CoherenceIssue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CoherenceIssueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CoherenceIssueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
