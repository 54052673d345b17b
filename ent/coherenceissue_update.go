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
	"github.com/steward-io/steward/ent/coherenceissue"
	"github.com/steward-io/steward/ent/predicate"
)

// CoherenceIssueUpdate is the builder for updating CoherenceIssue entities.
type CoherenceIssueUpdate struct {
	config
	hooks    []Hook
	mutation *CoherenceIssueMutation
}

// Where appends a list predicates to the CoherenceIssueUpdate builder.
func (_u *CoherenceIssueUpdate) Where(ps ...predicate.CoherenceIssue) *CoherenceIssueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *CoherenceIssueUpdate) SetKind(v coherenceissue.Kind) *CoherenceIssueUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CoherenceIssueUpdate) SetNillableKind(v *coherenceissue.Kind) *CoherenceIssueUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CoherenceIssueUpdate) SetSummary(v string) *CoherenceIssueUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CoherenceIssueUpdate) SetNillableSummary(v *string) *CoherenceIssueUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *CoherenceIssueUpdate) SetSeverity(v coherenceissue.Severity) *CoherenceIssueUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *CoherenceIssueUpdate) SetNillableSeverity(v *coherenceissue.Severity) *CoherenceIssueUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CoherenceIssueUpdate) SetStatus(v coherenceissue.Status) *CoherenceIssueUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CoherenceIssueUpdate) SetNillableStatus(v *coherenceissue.Status) *CoherenceIssueUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAffectedWorkstreams sets the "affected_workstreams" field.
func (_u *CoherenceIssueUpdate) SetAffectedWorkstreams(v []string) *CoherenceIssueUpdate {
	_u.mutation.SetAffectedWorkstreams(v)
	return _u
}

// AppendAffectedWorkstreams appends value to the "affected_workstreams" field.
func (_u *CoherenceIssueUpdate) AppendAffectedWorkstreams(v []string) *CoherenceIssueUpdate {
	_u.mutation.AppendAffectedWorkstreams(v)
	return _u
}

// ClearAffectedWorkstreams clears the value of the "affected_workstreams" field.
func (_u *CoherenceIssueUpdate) ClearAffectedWorkstreams() *CoherenceIssueUpdate {
	_u.mutation.ClearAffectedWorkstreams()
	return _u
}

// SetAffectedArtifacts sets the "affected_artifacts" field.
func (_u *CoherenceIssueUpdate) SetAffectedArtifacts(v []string) *CoherenceIssueUpdate {
	_u.mutation.SetAffectedArtifacts(v)
	return _u
}

// AppendAffectedArtifacts appends value to the "affected_artifacts" field.
func (_u *CoherenceIssueUpdate) AppendAffectedArtifacts(v []string) *CoherenceIssueUpdate {
	_u.mutation.AppendAffectedArtifacts(v)
	return _u
}

// ClearAffectedArtifacts clears the value of the "affected_artifacts" field.
func (_u *CoherenceIssueUpdate) ClearAffectedArtifacts() *CoherenceIssueUpdate {
	_u.mutation.ClearAffectedArtifacts()
	return _u
}

// SetDetectedBy sets the "detected_by" field.
func (_u *CoherenceIssueUpdate) SetDetectedBy(v string) *CoherenceIssueUpdate {
	_u.mutation.SetDetectedBy(v)
	return _u
}

// SetNillableDetectedBy sets the "detected_by" field if the given value is not nil.
func (_u *CoherenceIssueUpdate) SetNillableDetectedBy(v *string) *CoherenceIssueUpdate {
	if v != nil {
		_u.SetDetectedBy(*v)
	}
	return _u
}

// ClearDetectedBy clears the value of the "detected_by" field.
func (_u *CoherenceIssueUpdate) ClearDetectedBy() *CoherenceIssueUpdate {
	_u.mutation.ClearDetectedBy()
	return _u
}

// SetDetectedAtTick sets the "detected_at_tick" field.
func (_u *CoherenceIssueUpdate) SetDetectedAtTick(v int64) *CoherenceIssueUpdate {
	_u.mutation.ResetDetectedAtTick()
	_u.mutation.SetDetectedAtTick(v)
	return _u
}

// SetNillableDetectedAtTick sets the "detected_at_tick" field if the given value is not nil.
func (_u *CoherenceIssueUpdate) SetNillableDetectedAtTick(v *int64) *CoherenceIssueUpdate {
	if v != nil {
		_u.SetDetectedAtTick(*v)
	}
	return _u
}

// AddDetectedAtTick adds value to the "detected_at_tick" field.
func (_u *CoherenceIssueUpdate) AddDetectedAtTick(v int64) *CoherenceIssueUpdate {
	_u.mutation.AddDetectedAtTick(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CoherenceIssueUpdate) SetCreatedAt(v time.Time) *CoherenceIssueUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CoherenceIssueUpdate) SetNillableCreatedAt(v *time.Time) *CoherenceIssueUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *CoherenceIssueUpdate) SetResolvedAt(v time.Time) *CoherenceIssueUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *CoherenceIssueUpdate) SetNillableResolvedAt(v *time.Time) *CoherenceIssueUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *CoherenceIssueUpdate) ClearResolvedAt() *CoherenceIssueUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *CoherenceIssueUpdate) SetResolution(v string) *CoherenceIssueUpdate {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *CoherenceIssueUpdate) SetNillableResolution(v *string) *CoherenceIssueUpdate {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *CoherenceIssueUpdate) ClearResolution() *CoherenceIssueUpdate {
	_u.mutation.ClearResolution()
	return _u
}

// Mutation returns the CoherenceIssueMutation object of the builder.
func (_u *CoherenceIssueUpdate) Mutation() *CoherenceIssueMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CoherenceIssueUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoherenceIssueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CoherenceIssueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoherenceIssueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoherenceIssueUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := coherenceissue.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CoherenceIssue.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := coherenceissue.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "CoherenceIssue.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := coherenceissue.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CoherenceIssue.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CoherenceIssueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coherenceissue.Table, coherenceissue.Columns, sqlgraph.NewFieldSpec(coherenceissue.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(coherenceissue.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(coherenceissue.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(coherenceissue.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(coherenceissue.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AffectedWorkstreams(); ok {
		_spec.SetField(coherenceissue.FieldAffectedWorkstreams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedWorkstreams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, coherenceissue.FieldAffectedWorkstreams, value)
		})
	}
	if _u.mutation.AffectedWorkstreamsCleared() {
		_spec.ClearField(coherenceissue.FieldAffectedWorkstreams, field.TypeJSON)
	}
	if value, ok := _u.mutation.AffectedArtifacts(); ok {
		_spec.SetField(coherenceissue.FieldAffectedArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, coherenceissue.FieldAffectedArtifacts, value)
		})
	}
	if _u.mutation.AffectedArtifactsCleared() {
		_spec.ClearField(coherenceissue.FieldAffectedArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetectedBy(); ok {
		_spec.SetField(coherenceissue.FieldDetectedBy, field.TypeString, value)
	}
	if _u.mutation.DetectedByCleared() {
		_spec.ClearField(coherenceissue.FieldDetectedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DetectedAtTick(); ok {
		_spec.SetField(coherenceissue.FieldDetectedAtTick, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDetectedAtTick(); ok {
		_spec.AddField(coherenceissue.FieldDetectedAtTick, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(coherenceissue.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(coherenceissue.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(coherenceissue.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(coherenceissue.FieldResolution, field.TypeString, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(coherenceissue.FieldResolution, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coherenceissue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CoherenceIssueUpdateOne is the builder for updating a single CoherenceIssue entity.
type CoherenceIssueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CoherenceIssueMutation
}

// SetKind sets the "kind" field.
func (_u *CoherenceIssueUpdateOne) SetKind(v coherenceissue.Kind) *CoherenceIssueUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CoherenceIssueUpdateOne) SetNillableKind(v *coherenceissue.Kind) *CoherenceIssueUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CoherenceIssueUpdateOne) SetSummary(v string) *CoherenceIssueUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CoherenceIssueUpdateOne) SetNillableSummary(v *string) *CoherenceIssueUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *CoherenceIssueUpdateOne) SetSeverity(v coherenceissue.Severity) *CoherenceIssueUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *CoherenceIssueUpdateOne) SetNillableSeverity(v *coherenceissue.Severity) *CoherenceIssueUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CoherenceIssueUpdateOne) SetStatus(v coherenceissue.Status) *CoherenceIssueUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CoherenceIssueUpdateOne) SetNillableStatus(v *coherenceissue.Status) *CoherenceIssueUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAffectedWorkstreams sets the "affected_workstreams" field.
func (_u *CoherenceIssueUpdateOne) SetAffectedWorkstreams(v []string) *CoherenceIssueUpdateOne {
	_u.mutation.SetAffectedWorkstreams(v)
	return _u
}

// AppendAffectedWorkstreams appends value to the "affected_workstreams" field.
func (_u *CoherenceIssueUpdateOne) AppendAffectedWorkstreams(v []string) *CoherenceIssueUpdateOne {
	_u.mutation.AppendAffectedWorkstreams(v)
	return _u
}

// ClearAffectedWorkstreams clears the value of the "affected_workstreams" field.
func (_u *CoherenceIssueUpdateOne) ClearAffectedWorkstreams() *CoherenceIssueUpdateOne {
	_u.mutation.ClearAffectedWorkstreams()
	return _u
}

// SetAffectedArtifacts sets the "affected_artifacts" field.
func (_u *CoherenceIssueUpdateOne) SetAffectedArtifacts(v []string) *CoherenceIssueUpdateOne {
	_u.mutation.SetAffectedArtifacts(v)
	return _u
}

// AppendAffectedArtifacts appends value to the "affected_artifacts" field.
func (_u *CoherenceIssueUpdateOne) AppendAffectedArtifacts(v []string) *CoherenceIssueUpdateOne {
	_u.mutation.AppendAffectedArtifacts(v)
	return _u
}

// ClearAffectedArtifacts clears the value of the "affected_artifacts" field.
func (_u *CoherenceIssueUpdateOne) ClearAffectedArtifacts() *CoherenceIssueUpdateOne {
	_u.mutation.ClearAffectedArtifacts()
	return _u
}

// SetDetectedBy sets the "detected_by" field.
func (_u *CoherenceIssueUpdateOne) SetDetectedBy(v string) *CoherenceIssueUpdateOne {
	_u.mutation.SetDetectedBy(v)
	return _u
}

// SetNillableDetectedBy sets the "detected_by" field if the given value is not nil.
func (_u *CoherenceIssueUpdateOne) SetNillableDetectedBy(v *string) *CoherenceIssueUpdateOne {
	if v != nil {
		_u.SetDetectedBy(*v)
	}
	return _u
}

// ClearDetectedBy clears the value of the "detected_by" field.
func (_u *CoherenceIssueUpdateOne) ClearDetectedBy() *CoherenceIssueUpdateOne {
	_u.mutation.ClearDetectedBy()
	return _u
}

// SetDetectedAtTick sets the "detected_at_tick" field.
func (_u *CoherenceIssueUpdateOne) SetDetectedAtTick(v int64) *CoherenceIssueUpdateOne {
	_u.mutation.ResetDetectedAtTick()
	_u.mutation.SetDetectedAtTick(v)
	return _u
}

// SetNillableDetectedAtTick sets the "detected_at_tick" field if the given value is not nil.
func (_u *CoherenceIssueUpdateOne) SetNillableDetectedAtTick(v *int64) *CoherenceIssueUpdateOne {
	if v != nil {
		_u.SetDetectedAtTick(*v)
	}
	return _u
}

// AddDetectedAtTick adds value to the "detected_at_tick" field.
func (_u *CoherenceIssueUpdateOne) AddDetectedAtTick(v int64) *CoherenceIssueUpdateOne {
	_u.mutation.AddDetectedAtTick(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CoherenceIssueUpdateOne) SetCreatedAt(v time.Time) *CoherenceIssueUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CoherenceIssueUpdateOne) SetNillableCreatedAt(v *time.Time) *CoherenceIssueUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *CoherenceIssueUpdateOne) SetResolvedAt(v time.Time) *CoherenceIssueUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *CoherenceIssueUpdateOne) SetNillableResolvedAt(v *time.Time) *CoherenceIssueUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *CoherenceIssueUpdateOne) ClearResolvedAt() *CoherenceIssueUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *CoherenceIssueUpdateOne) SetResolution(v string) *CoherenceIssueUpdateOne {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *CoherenceIssueUpdateOne) SetNillableResolution(v *string) *CoherenceIssueUpdateOne {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// ClearResolution clears the value of the "resolution" field.
func (_u *CoherenceIssueUpdateOne) ClearResolution() *CoherenceIssueUpdateOne {
	_u.mutation.ClearResolution()
	return _u
}

// Mutation returns the CoherenceIssueMutation object of the builder.
func (_u *CoherenceIssueUpdateOne) Mutation() *CoherenceIssueMutation {
	return _u.mutation
}

// Where appends a list predicates to the CoherenceIssueUpdate builder.
func (_u *CoherenceIssueUpdateOne) Where(ps ...predicate.CoherenceIssue) *CoherenceIssueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CoherenceIssueUpdateOne) Select(field string, fields ...string) *CoherenceIssueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CoherenceIssue entity.
func (_u *CoherenceIssueUpdateOne) Save(ctx context.Context) (*CoherenceIssue, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CoherenceIssueUpdateOne) SaveX(ctx context.Context) *CoherenceIssue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CoherenceIssueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CoherenceIssueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CoherenceIssueUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := coherenceissue.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CoherenceIssue.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := coherenceissue.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "CoherenceIssue.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := coherenceissue.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CoherenceIssue.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CoherenceIssueUpdateOne) sqlSave(ctx context.Context) (_node *CoherenceIssue, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coherenceissue.Table, coherenceissue.Columns, sqlgraph.NewFieldSpec(coherenceissue.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CoherenceIssue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coherenceissue.FieldID)
		for _, f := range fields {
			if !coherenceissue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coherenceissue.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(coherenceissue.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(coherenceissue.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(coherenceissue.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(coherenceissue.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AffectedWorkstreams(); ok {
		_spec.SetField(coherenceissue.FieldAffectedWorkstreams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedWorkstreams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, coherenceissue.FieldAffectedWorkstreams, value)
		})
	}
	if _u.mutation.AffectedWorkstreamsCleared() {
		_spec.ClearField(coherenceissue.FieldAffectedWorkstreams, field.TypeJSON)
	}
	if value, ok := _u.mutation.AffectedArtifacts(); ok {
		_spec.SetField(coherenceissue.FieldAffectedArtifacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAffectedArtifacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, coherenceissue.FieldAffectedArtifacts, value)
		})
	}
	if _u.mutation.AffectedArtifactsCleared() {
		_spec.ClearField(coherenceissue.FieldAffectedArtifacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetectedBy(); ok {
		_spec.SetField(coherenceissue.FieldDetectedBy, field.TypeString, value)
	}
	if _u.mutation.DetectedByCleared() {
		_spec.ClearField(coherenceissue.FieldDetectedBy, field.TypeString)
	}
	if value, ok := _u.mutation.DetectedAtTick(); ok {
		_spec.SetField(coherenceissue.FieldDetectedAtTick, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDetectedAtTick(); ok {
		_spec.AddField(coherenceissue.FieldDetectedAtTick, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(coherenceissue.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(coherenceissue.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(coherenceissue.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(coherenceissue.FieldResolution, field.TypeString, value)
	}
	if _u.mutation.ResolutionCleared() {
		_spec.ClearField(coherenceissue.FieldResolution, field.TypeString)
	}
	_node = &CoherenceIssue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coherenceissue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
