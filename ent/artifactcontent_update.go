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
	"github.com/steward-io/steward/ent/artifactcontent"
	"github.com/steward-io/steward/ent/predicate"
)

// ArtifactContentUpdate is the builder for updating ArtifactContent entities.
type ArtifactContentUpdate struct {
	config
	hooks    []Hook
	mutation *ArtifactContentMutation
}

// Where appends a list predicates to the ArtifactContentUpdate builder.
func (_u *ArtifactContentUpdate) Where(ps ...predicate.ArtifactContent) *ArtifactContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *ArtifactContentUpdate) SetAgentID(v string) *ArtifactContentUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ArtifactContentUpdate) SetNillableAgentID(v *string) *ArtifactContentUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *ArtifactContentUpdate) SetArtifactID(v string) *ArtifactContentUpdate {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *ArtifactContentUpdate) SetNillableArtifactID(v *string) *ArtifactContentUpdate {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ArtifactContentUpdate) SetContent(v []byte) *ArtifactContentUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ArtifactContentUpdate) SetMimeType(v string) *ArtifactContentUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ArtifactContentUpdate) SetNillableMimeType(v *string) *ArtifactContentUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *ArtifactContentUpdate) ClearMimeType() *ArtifactContentUpdate {
	_u.mutation.ClearMimeType()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArtifactContentUpdate) SetUpdatedAt(v time.Time) *ArtifactContentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ArtifactContentUpdate) SetNillableUpdatedAt(v *time.Time) *ArtifactContentUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ArtifactContentMutation object of the builder.
func (_u *ArtifactContentUpdate) Mutation() *ArtifactContentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArtifactContentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArtifactContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ArtifactContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(artifactcontent.Table, artifactcontent.Columns, sqlgraph.NewFieldSpec(artifactcontent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(artifactcontent.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(artifactcontent.FieldArtifactID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(artifactcontent.FieldContent, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(artifactcontent.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(artifactcontent.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(artifactcontent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifactcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArtifactContentUpdateOne is the builder for updating a single ArtifactContent entity.
type ArtifactContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArtifactContentMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *ArtifactContentUpdateOne) SetAgentID(v string) *ArtifactContentUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *ArtifactContentUpdateOne) SetNillableAgentID(v *string) *ArtifactContentUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *ArtifactContentUpdateOne) SetArtifactID(v string) *ArtifactContentUpdateOne {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *ArtifactContentUpdateOne) SetNillableArtifactID(v *string) *ArtifactContentUpdateOne {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ArtifactContentUpdateOne) SetContent(v []byte) *ArtifactContentUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ArtifactContentUpdateOne) SetMimeType(v string) *ArtifactContentUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ArtifactContentUpdateOne) SetNillableMimeType(v *string) *ArtifactContentUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *ArtifactContentUpdateOne) ClearMimeType() *ArtifactContentUpdateOne {
	_u.mutation.ClearMimeType()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArtifactContentUpdateOne) SetUpdatedAt(v time.Time) *ArtifactContentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ArtifactContentUpdateOne) SetNillableUpdatedAt(v *time.Time) *ArtifactContentUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ArtifactContentMutation object of the builder.
func (_u *ArtifactContentUpdateOne) Mutation() *ArtifactContentMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArtifactContentUpdate builder.
func (_u *ArtifactContentUpdateOne) Where(ps ...predicate.ArtifactContent) *ArtifactContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArtifactContentUpdateOne) Select(field string, fields ...string) *ArtifactContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ArtifactContent entity.
func (_u *ArtifactContentUpdateOne) Save(ctx context.Context) (*ArtifactContent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactContentUpdateOne) SaveX(ctx context.Context) *ArtifactContent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArtifactContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ArtifactContentUpdateOne) sqlSave(ctx context.Context) (_node *ArtifactContent, err error) {
	_spec := sqlgraph.NewUpdateSpec(artifactcontent.Table, artifactcontent.Columns, sqlgraph.NewFieldSpec(artifactcontent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ArtifactContent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, artifactcontent.FieldID)
		for _, f := range fields {
			if !artifactcontent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != artifactcontent.FieldID {
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
		_spec.SetField(artifactcontent.FieldAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(artifactcontent.FieldArtifactID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(artifactcontent.FieldContent, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(artifactcontent.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(artifactcontent.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(artifactcontent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ArtifactContent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifactcontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
