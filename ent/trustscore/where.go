// Code generated by ent, DO NOT EDIT.

package trustscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-io/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldContainsFold(FieldID, id))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldEQ(FieldScore, v))
}

// LastReason applies equality check predicate on the "last_reason" field. It's identical to LastReasonEQ.
func LastReason(v string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldEQ(FieldLastReason, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldLTE(FieldScore, v))
}

// LastReasonEQ applies the EQ predicate on the "last_reason" field.
func LastReasonEQ(v string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldEQ(FieldLastReason, v))
}

// LastReasonNEQ applies the NEQ predicate on the "last_reason" field.
func LastReasonNEQ(v string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldNEQ(FieldLastReason, v))
}

// LastReasonIn applies the In predicate on the "last_reason" field.
func LastReasonIn(vs ...string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldIn(FieldLastReason, vs...))
}

// LastReasonNotIn applies the NotIn predicate on the "last_reason" field.
func LastReasonNotIn(vs ...string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldNotIn(FieldLastReason, vs...))
}

// LastReasonGT applies the GT predicate on the "last_reason" field.
func LastReasonGT(v string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldGT(FieldLastReason, v))
}

// LastReasonGTE applies the GTE predicate on the "last_reason" field.
func LastReasonGTE(v string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldGTE(FieldLastReason, v))
}

// LastReasonLT applies the LT predicate on the "last_reason" field.
func LastReasonLT(v string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldLT(FieldLastReason, v))
}

// LastReasonLTE applies the LTE predicate on the "last_reason" field.
func LastReasonLTE(v string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldLTE(FieldLastReason, v))
}

// LastReasonContains applies the Contains predicate on the "last_reason" field.
func LastReasonContains(v string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldContains(FieldLastReason, v))
}

// LastReasonHasPrefix applies the HasPrefix predicate on the "last_reason" field.
func LastReasonHasPrefix(v string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldHasPrefix(FieldLastReason, v))
}

// LastReasonHasSuffix applies the HasSuffix predicate on the "last_reason" field.
func LastReasonHasSuffix(v string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldHasSuffix(FieldLastReason, v))
}

// LastReasonIsNil applies the IsNil predicate on the "last_reason" field.
func LastReasonIsNil() predicate.TrustScore {
	return predicate.TrustScore(sql.FieldIsNull(FieldLastReason))
}

// LastReasonNotNil applies the NotNil predicate on the "last_reason" field.
func LastReasonNotNil() predicate.TrustScore {
	return predicate.TrustScore(sql.FieldNotNull(FieldLastReason))
}

// LastReasonEqualFold applies the EqualFold predicate on the "last_reason" field.
func LastReasonEqualFold(v string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldEqualFold(FieldLastReason, v))
}

// LastReasonContainsFold applies the ContainsFold predicate on the "last_reason" field.
func LastReasonContainsFold(v string) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldContainsFold(FieldLastReason, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TrustScore {
	return predicate.TrustScore(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrustScore) predicate.TrustScore {
	return predicate.TrustScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrustScore) predicate.TrustScore {
	return predicate.TrustScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrustScore) predicate.TrustScore {
	return predicate.TrustScore(sql.NotPredicates(p))
}
