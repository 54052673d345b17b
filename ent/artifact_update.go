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
	"github.com/steward-io/steward/ent/artifact"
	"github.com/steward-io/steward/ent/predicate"
)

// ArtifactUpdate is the builder for updating Artifact entities.
type ArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *ArtifactMutation
}

// Where appends a list predicates to the ArtifactUpdate builder.
func (_u *ArtifactUpdate) Where(ps ...predicate.Artifact) *ArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ArtifactUpdate) SetName(v string) *ArtifactUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableName(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ArtifactUpdate) SetKind(v artifact.Kind) *ArtifactUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableKind(v *artifact.Kind) *ArtifactUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetWorkstream sets the "workstream" field.
func (_u *ArtifactUpdate) SetWorkstream(v string) *ArtifactUpdate {
	_u.mutation.SetWorkstream(v)
	return _u
}

// SetNillableWorkstream sets the "workstream" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableWorkstream(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetWorkstream(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ArtifactUpdate) SetStatus(v artifact.Status) *ArtifactUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableStatus(v *artifact.Status) *ArtifactUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *ArtifactUpdate) SetQualityScore(v float64) *ArtifactUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableQualityScore(v *float64) *ArtifactUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *ArtifactUpdate) AddQualityScore(v float64) *ArtifactUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ArtifactUpdate) SetCreatedBy(v string) *ArtifactUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableCreatedBy(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ArtifactUpdate) SetCreatedAt(v time.Time) *ArtifactUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableCreatedAt(v *time.Time) *ArtifactUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArtifactUpdate) SetUpdatedAt(v time.Time) *ArtifactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableUpdatedAt(v *time.Time) *ArtifactUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetSources sets the "sources" field.
func (_u *ArtifactUpdate) SetSources(v []string) *ArtifactUpdate {
	_u.mutation.SetSources(v)
	return _u
}

// AppendSources appends value to the "sources" field.
func (_u *ArtifactUpdate) AppendSources(v []string) *ArtifactUpdate {
	_u.mutation.AppendSources(v)
	return _u
}

// ClearSources clears the value of the "sources" field.
func (_u *ArtifactUpdate) ClearSources() *ArtifactUpdate {
	_u.mutation.ClearSources()
	return _u
}

// SetURI sets the "uri" field.
func (_u *ArtifactUpdate) SetURI(v string) *ArtifactUpdate {
	_u.mutation.SetURI(v)
	return _u
}

// SetNillableURI sets the "uri" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableURI(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetURI(*v)
	}
	return _u
}

// ClearURI clears the value of the "uri" field.
func (_u *ArtifactUpdate) ClearURI() *ArtifactUpdate {
	_u.mutation.ClearURI()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ArtifactUpdate) SetMimeType(v string) *ArtifactUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableMimeType(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *ArtifactUpdate) ClearMimeType() *ArtifactUpdate {
	_u.mutation.ClearMimeType()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *ArtifactUpdate) SetSizeBytes(v int64) *ArtifactUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableSizeBytes(v *int64) *ArtifactUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *ArtifactUpdate) AddSizeBytes(v int64) *ArtifactUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (_u *ArtifactUpdate) ClearSizeBytes() *ArtifactUpdate {
	_u.mutation.ClearSizeBytes()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ArtifactUpdate) SetContentHash(v string) *ArtifactUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableContentHash(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *ArtifactUpdate) ClearContentHash() *ArtifactUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ArtifactUpdate) SetSummary(v string) *ArtifactUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableSummary(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ArtifactUpdate) ClearSummary() *ArtifactUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ArtifactUpdate) SetVersion(v int) *ArtifactUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableVersion(v *int) *ArtifactUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ArtifactUpdate) AddVersion(v int) *ArtifactUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the ArtifactMutation object of the builder.
func (_u *ArtifactUpdate) Mutation() *ArtifactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArtifactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArtifactUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := artifact.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Artifact.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := artifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Artifact.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(artifact.Table, artifact.Columns, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(artifact.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(artifact.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Workstream(); ok {
		_spec.SetField(artifact.FieldWorkstream, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(artifact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(artifact.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(artifact.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(artifact.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(artifact.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(artifact.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Sources(); ok {
		_spec.SetField(artifact.FieldSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, artifact.FieldSources, value)
		})
	}
	if _u.mutation.SourcesCleared() {
		_spec.ClearField(artifact.FieldSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.URI(); ok {
		_spec.SetField(artifact.FieldURI, field.TypeString, value)
	}
	if _u.mutation.URICleared() {
		_spec.ClearField(artifact.FieldURI, field.TypeString)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(artifact.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(artifact.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(artifact.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(artifact.FieldSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.SizeBytesCleared() {
		_spec.ClearField(artifact.FieldSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(artifact.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(artifact.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(artifact.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(artifact.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(artifact.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(artifact.FieldVersion, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArtifactUpdateOne is the builder for updating a single Artifact entity.
type ArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArtifactMutation
}

// SetName sets the "name" field.
func (_u *ArtifactUpdateOne) SetName(v string) *ArtifactUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableName(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ArtifactUpdateOne) SetKind(v artifact.Kind) *ArtifactUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableKind(v *artifact.Kind) *ArtifactUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetWorkstream sets the "workstream" field.
func (_u *ArtifactUpdateOne) SetWorkstream(v string) *ArtifactUpdateOne {
	_u.mutation.SetWorkstream(v)
	return _u
}

// SetNillableWorkstream sets the "workstream" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableWorkstream(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetWorkstream(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ArtifactUpdateOne) SetStatus(v artifact.Status) *ArtifactUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableStatus(v *artifact.Status) *ArtifactUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *ArtifactUpdateOne) SetQualityScore(v float64) *ArtifactUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableQualityScore(v *float64) *ArtifactUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *ArtifactUpdateOne) AddQualityScore(v float64) *ArtifactUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ArtifactUpdateOne) SetCreatedBy(v string) *ArtifactUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableCreatedBy(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ArtifactUpdateOne) SetCreatedAt(v time.Time) *ArtifactUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableCreatedAt(v *time.Time) *ArtifactUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArtifactUpdateOne) SetUpdatedAt(v time.Time) *ArtifactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableUpdatedAt(v *time.Time) *ArtifactUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetSources sets the "sources" field.
func (_u *ArtifactUpdateOne) SetSources(v []string) *ArtifactUpdateOne {
	_u.mutation.SetSources(v)
	return _u
}

// AppendSources appends value to the "sources" field.
func (_u *ArtifactUpdateOne) AppendSources(v []string) *ArtifactUpdateOne {
	_u.mutation.AppendSources(v)
	return _u
}

// ClearSources clears the value of the "sources" field.
func (_u *ArtifactUpdateOne) ClearSources() *ArtifactUpdateOne {
	_u.mutation.ClearSources()
	return _u
}

// SetURI sets the "uri" field.
func (_u *ArtifactUpdateOne) SetURI(v string) *ArtifactUpdateOne {
	_u.mutation.SetURI(v)
	return _u
}

// SetNillableURI sets the "uri" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableURI(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetURI(*v)
	}
	return _u
}

// ClearURI clears the value of the "uri" field.
func (_u *ArtifactUpdateOne) ClearURI() *ArtifactUpdateOne {
	_u.mutation.ClearURI()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ArtifactUpdateOne) SetMimeType(v string) *ArtifactUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableMimeType(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *ArtifactUpdateOne) ClearMimeType() *ArtifactUpdateOne {
	_u.mutation.ClearMimeType()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *ArtifactUpdateOne) SetSizeBytes(v int64) *ArtifactUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableSizeBytes(v *int64) *ArtifactUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *ArtifactUpdateOne) AddSizeBytes(v int64) *ArtifactUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// ClearSizeBytes clears the value of the "size_bytes" field.
func (_u *ArtifactUpdateOne) ClearSizeBytes() *ArtifactUpdateOne {
	_u.mutation.ClearSizeBytes()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *ArtifactUpdateOne) SetContentHash(v string) *ArtifactUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableContentHash(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *ArtifactUpdateOne) ClearContentHash() *ArtifactUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ArtifactUpdateOne) SetSummary(v string) *ArtifactUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableSummary(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ArtifactUpdateOne) ClearSummary() *ArtifactUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ArtifactUpdateOne) SetVersion(v int) *ArtifactUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableVersion(v *int) *ArtifactUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ArtifactUpdateOne) AddVersion(v int) *ArtifactUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the ArtifactMutation object of the builder.
func (_u *ArtifactUpdateOne) Mutation() *ArtifactMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArtifactUpdate builder.
func (_u *ArtifactUpdateOne) Where(ps ...predicate.Artifact) *ArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArtifactUpdateOne) Select(field string, fields ...string) *ArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Artifact entity.
func (_u *ArtifactUpdateOne) Save(ctx context.Context) (*Artifact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactUpdateOne) SaveX(ctx context.Context) *Artifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArtifactUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := artifact.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Artifact.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := artifact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Artifact.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ArtifactUpdateOne) sqlSave(ctx context.Context) (_node *Artifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(artifact.Table, artifact.Columns, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Artifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, artifact.FieldID)
		for _, f := range fields {
			if !artifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != artifact.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(artifact.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(artifact.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Workstream(); ok {
		_spec.SetField(artifact.FieldWorkstream, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(artifact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(artifact.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(artifact.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(artifact.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(artifact.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(artifact.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Sources(); ok {
		_spec.SetField(artifact.FieldSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, artifact.FieldSources, value)
		})
	}
	if _u.mutation.SourcesCleared() {
		_spec.ClearField(artifact.FieldSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.URI(); ok {
		_spec.SetField(artifact.FieldURI, field.TypeString, value)
	}
	if _u.mutation.URICleared() {
		_spec.ClearField(artifact.FieldURI, field.TypeString)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(artifact.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(artifact.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(artifact.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(artifact.FieldSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.SizeBytesCleared() {
		_spec.ClearField(artifact.FieldSizeBytes, field.TypeInt64)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(artifact.FieldContentHash, field.TypeString, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(artifact.FieldContentHash, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(artifact.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(artifact.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(artifact.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(artifact.FieldVersion, field.TypeInt, value)
	}
	_node = &Artifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
