// Code generated by ent, DO NOT EDIT.

package quarantinedevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-io/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldLTE(FieldID, id))
}

// Raw applies equality check predicate on the "raw" field. It's identical to RawEQ.
func Raw(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldEQ(FieldRaw, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldEQ(FieldReason, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldEQ(FieldSource, v))
}

// QuarantinedAt applies equality check predicate on the "quarantined_at" field. It's identical to QuarantinedAtEQ.
func QuarantinedAt(v time.Time) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldEQ(FieldQuarantinedAt, v))
}

// RawEQ applies the EQ predicate on the "raw" field.
func RawEQ(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldEQ(FieldRaw, v))
}

// RawNEQ applies the NEQ predicate on the "raw" field.
func RawNEQ(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldNEQ(FieldRaw, v))
}

// RawIn applies the In predicate on the "raw" field.
func RawIn(vs ...string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldIn(FieldRaw, vs...))
}

// RawNotIn applies the NotIn predicate on the "raw" field.
func RawNotIn(vs ...string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldNotIn(FieldRaw, vs...))
}

// RawGT applies the GT predicate on the "raw" field.
func RawGT(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldGT(FieldRaw, v))
}

// RawGTE applies the GTE predicate on the "raw" field.
func RawGTE(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldGTE(FieldRaw, v))
}

// RawLT applies the LT predicate on the "raw" field.
func RawLT(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldLT(FieldRaw, v))
}

// RawLTE applies the LTE predicate on the "raw" field.
func RawLTE(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldLTE(FieldRaw, v))
}

// RawContains applies the Contains predicate on the "raw" field.
func RawContains(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldContains(FieldRaw, v))
}

// RawHasPrefix applies the HasPrefix predicate on the "raw" field.
func RawHasPrefix(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldHasPrefix(FieldRaw, v))
}

// RawHasSuffix applies the HasSuffix predicate on the "raw" field.
func RawHasSuffix(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldHasSuffix(FieldRaw, v))
}

// RawEqualFold applies the EqualFold predicate on the "raw" field.
func RawEqualFold(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldEqualFold(FieldRaw, v))
}

// RawContainsFold applies the ContainsFold predicate on the "raw" field.
func RawContainsFold(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldContainsFold(FieldRaw, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldContainsFold(FieldReason, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldContainsFold(FieldSource, v))
}

// QuarantinedAtEQ applies the EQ predicate on the "quarantined_at" field.
func QuarantinedAtEQ(v time.Time) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldEQ(FieldQuarantinedAt, v))
}

// QuarantinedAtNEQ applies the NEQ predicate on the "quarantined_at" field.
func QuarantinedAtNEQ(v time.Time) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldNEQ(FieldQuarantinedAt, v))
}

// QuarantinedAtIn applies the In predicate on the "quarantined_at" field.
func QuarantinedAtIn(vs ...time.Time) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldIn(FieldQuarantinedAt, vs...))
}

// QuarantinedAtNotIn applies the NotIn predicate on the "quarantined_at" field.
func QuarantinedAtNotIn(vs ...time.Time) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldNotIn(FieldQuarantinedAt, vs...))
}

// QuarantinedAtGT applies the GT predicate on the "quarantined_at" field.
func QuarantinedAtGT(v time.Time) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldGT(FieldQuarantinedAt, v))
}

// QuarantinedAtGTE applies the GTE predicate on the "quarantined_at" field.
func QuarantinedAtGTE(v time.Time) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldGTE(FieldQuarantinedAt, v))
}

// QuarantinedAtLT applies the LT predicate on the "quarantined_at" field.
func QuarantinedAtLT(v time.Time) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldLT(FieldQuarantinedAt, v))
}

// QuarantinedAtLTE applies the LTE predicate on the "quarantined_at" field.
func QuarantinedAtLTE(v time.Time) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.FieldLTE(FieldQuarantinedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuarantinedEvent) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuarantinedEvent) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuarantinedEvent) predicate.QuarantinedEvent {
	return predicate.QuarantinedEvent(sql.NotPredicates(p))
}
