// Code generated by ent, DO NOT EDIT.

package coherenceissue

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-io/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldContainsFold(FieldID, id))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldSummary, v))
}

// DetectedBy applies equality check predicate on the "detected_by" field. It's identical to DetectedByEQ.
func DetectedBy(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldDetectedBy, v))
}

// DetectedAtTick applies equality check predicate on the "detected_at_tick" field. It's identical to DetectedAtTickEQ.
func DetectedAtTick(v int64) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldDetectedAtTick, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldResolvedAt, v))
}

// Resolution applies equality check predicate on the "resolution" field. It's identical to ResolutionEQ.
func Resolution(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldResolution, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotIn(FieldKind, vs...))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldContainsFold(FieldSummary, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotIn(FieldSeverity, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotIn(FieldStatus, vs...))
}

// AffectedWorkstreamsIsNil applies the IsNil predicate on the "affected_workstreams" field.
func AffectedWorkstreamsIsNil() predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIsNull(FieldAffectedWorkstreams))
}

// AffectedWorkstreamsNotNil applies the NotNil predicate on the "affected_workstreams" field.
func AffectedWorkstreamsNotNil() predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotNull(FieldAffectedWorkstreams))
}

// AffectedArtifactsIsNil applies the IsNil predicate on the "affected_artifacts" field.
func AffectedArtifactsIsNil() predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIsNull(FieldAffectedArtifacts))
}

// AffectedArtifactsNotNil applies the NotNil predicate on the "affected_artifacts" field.
func AffectedArtifactsNotNil() predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotNull(FieldAffectedArtifacts))
}

// DetectedByEQ applies the EQ predicate on the "detected_by" field.
func DetectedByEQ(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldDetectedBy, v))
}

// DetectedByNEQ applies the NEQ predicate on the "detected_by" field.
func DetectedByNEQ(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNEQ(FieldDetectedBy, v))
}

// DetectedByIn applies the In predicate on the "detected_by" field.
func DetectedByIn(vs ...string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIn(FieldDetectedBy, vs...))
}

// DetectedByNotIn applies the NotIn predicate on the "detected_by" field.
func DetectedByNotIn(vs ...string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotIn(FieldDetectedBy, vs...))
}

// DetectedByGT applies the GT predicate on the "detected_by" field.
func DetectedByGT(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldGT(FieldDetectedBy, v))
}

// DetectedByGTE applies the GTE predicate on the "detected_by" field.
func DetectedByGTE(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldGTE(FieldDetectedBy, v))
}

// DetectedByLT applies the LT predicate on the "detected_by" field.
func DetectedByLT(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldLT(FieldDetectedBy, v))
}

// DetectedByLTE applies the LTE predicate on the "detected_by" field.
func DetectedByLTE(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldLTE(FieldDetectedBy, v))
}

// DetectedByContains applies the Contains predicate on the "detected_by" field.
func DetectedByContains(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldContains(FieldDetectedBy, v))
}

// DetectedByHasPrefix applies the HasPrefix predicate on the "detected_by" field.
func DetectedByHasPrefix(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldHasPrefix(FieldDetectedBy, v))
}

// DetectedByHasSuffix applies the HasSuffix predicate on the "detected_by" field.
func DetectedByHasSuffix(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldHasSuffix(FieldDetectedBy, v))
}

// DetectedByIsNil applies the IsNil predicate on the "detected_by" field.
func DetectedByIsNil() predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIsNull(FieldDetectedBy))
}

// DetectedByNotNil applies the NotNil predicate on the "detected_by" field.
func DetectedByNotNil() predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotNull(FieldDetectedBy))
}

// DetectedByEqualFold applies the EqualFold predicate on the "detected_by" field.
func DetectedByEqualFold(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEqualFold(FieldDetectedBy, v))
}

// DetectedByContainsFold applies the ContainsFold predicate on the "detected_by" field.
func DetectedByContainsFold(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldContainsFold(FieldDetectedBy, v))
}

// DetectedAtTickEQ applies the EQ predicate on the "detected_at_tick" field.
func DetectedAtTickEQ(v int64) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldDetectedAtTick, v))
}

// DetectedAtTickNEQ applies the NEQ predicate on the "detected_at_tick" field.
func DetectedAtTickNEQ(v int64) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNEQ(FieldDetectedAtTick, v))
}

// DetectedAtTickIn applies the In predicate on the "detected_at_tick" field.
func DetectedAtTickIn(vs ...int64) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIn(FieldDetectedAtTick, vs...))
}

// DetectedAtTickNotIn applies the NotIn predicate on the "detected_at_tick" field.
func DetectedAtTickNotIn(vs ...int64) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotIn(FieldDetectedAtTick, vs...))
}

// DetectedAtTickGT applies the GT predicate on the "detected_at_tick" field.
func DetectedAtTickGT(v int64) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldGT(FieldDetectedAtTick, v))
}

// DetectedAtTickGTE applies the GTE predicate on the "detected_at_tick" field.
func DetectedAtTickGTE(v int64) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldGTE(FieldDetectedAtTick, v))
}

// DetectedAtTickLT applies the LT predicate on the "detected_at_tick" field.
func DetectedAtTickLT(v int64) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldLT(FieldDetectedAtTick, v))
}

// DetectedAtTickLTE applies the LTE predicate on the "detected_at_tick" field.
func DetectedAtTickLTE(v int64) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldLTE(FieldDetectedAtTick, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotNull(FieldResolvedAt))
}

// ResolutionEQ applies the EQ predicate on the "resolution" field.
func ResolutionEQ(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEQ(FieldResolution, v))
}

// ResolutionNEQ applies the NEQ predicate on the "resolution" field.
func ResolutionNEQ(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNEQ(FieldResolution, v))
}

// ResolutionIn applies the In predicate on the "resolution" field.
func ResolutionIn(vs ...string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIn(FieldResolution, vs...))
}

// ResolutionNotIn applies the NotIn predicate on the "resolution" field.
func ResolutionNotIn(vs ...string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotIn(FieldResolution, vs...))
}

// ResolutionGT applies the GT predicate on the "resolution" field.
func ResolutionGT(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldGT(FieldResolution, v))
}

// ResolutionGTE applies the GTE predicate on the "resolution" field.
func ResolutionGTE(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldGTE(FieldResolution, v))
}

// ResolutionLT applies the LT predicate on the "resolution" field.
func ResolutionLT(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldLT(FieldResolution, v))
}

// ResolutionLTE applies the LTE predicate on the "resolution" field.
func ResolutionLTE(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldLTE(FieldResolution, v))
}

// ResolutionContains applies the Contains predicate on the "resolution" field.
func ResolutionContains(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldContains(FieldResolution, v))
}

// ResolutionHasPrefix applies the HasPrefix predicate on the "resolution" field.
func ResolutionHasPrefix(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldHasPrefix(FieldResolution, v))
}

// ResolutionHasSuffix applies the HasSuffix predicate on the "resolution" field.
func ResolutionHasSuffix(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldHasSuffix(FieldResolution, v))
}

// ResolutionIsNil applies the IsNil predicate on the "resolution" field.
func ResolutionIsNil() predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldIsNull(FieldResolution))
}

// ResolutionNotNil applies the NotNil predicate on the "resolution" field.
func ResolutionNotNil() predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldNotNull(FieldResolution))
}

// ResolutionEqualFold applies the EqualFold predicate on the "resolution" field.
func ResolutionEqualFold(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldEqualFold(FieldResolution, v))
}

// ResolutionContainsFold applies the ContainsFold predicate on the "resolution" field.
func ResolutionContainsFold(v string) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.FieldContainsFold(FieldResolution, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CoherenceIssue) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CoherenceIssue) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CoherenceIssue) predicate.CoherenceIssue {
	return predicate.CoherenceIssue(sql.NotPredicates(p))
}
