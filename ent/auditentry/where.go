// Code generated by ent, DO NOT EDIT.

package auditentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-io/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldID, id))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldEntityType, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldEntityID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldAction, v))
}

// CallerAgentID applies equality check predicate on the "caller_agent_id" field. It's identical to CallerAgentIDEQ.
func CallerAgentID(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldCallerAgentID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldTimestamp, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldEntityType, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldEntityID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldAction, v))
}

// CallerAgentIDEQ applies the EQ predicate on the "caller_agent_id" field.
func CallerAgentIDEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldCallerAgentID, v))
}

// CallerAgentIDNEQ applies the NEQ predicate on the "caller_agent_id" field.
func CallerAgentIDNEQ(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldCallerAgentID, v))
}

// CallerAgentIDIn applies the In predicate on the "caller_agent_id" field.
func CallerAgentIDIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldCallerAgentID, vs...))
}

// CallerAgentIDNotIn applies the NotIn predicate on the "caller_agent_id" field.
func CallerAgentIDNotIn(vs ...string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldCallerAgentID, vs...))
}

// CallerAgentIDGT applies the GT predicate on the "caller_agent_id" field.
func CallerAgentIDGT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldCallerAgentID, v))
}

// CallerAgentIDGTE applies the GTE predicate on the "caller_agent_id" field.
func CallerAgentIDGTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldCallerAgentID, v))
}

// CallerAgentIDLT applies the LT predicate on the "caller_agent_id" field.
func CallerAgentIDLT(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldCallerAgentID, v))
}

// CallerAgentIDLTE applies the LTE predicate on the "caller_agent_id" field.
func CallerAgentIDLTE(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldCallerAgentID, v))
}

// CallerAgentIDContains applies the Contains predicate on the "caller_agent_id" field.
func CallerAgentIDContains(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContains(FieldCallerAgentID, v))
}

// CallerAgentIDHasPrefix applies the HasPrefix predicate on the "caller_agent_id" field.
func CallerAgentIDHasPrefix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasPrefix(FieldCallerAgentID, v))
}

// CallerAgentIDHasSuffix applies the HasSuffix predicate on the "caller_agent_id" field.
func CallerAgentIDHasSuffix(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldHasSuffix(FieldCallerAgentID, v))
}

// CallerAgentIDIsNil applies the IsNil predicate on the "caller_agent_id" field.
func CallerAgentIDIsNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIsNull(FieldCallerAgentID))
}

// CallerAgentIDNotNil applies the NotNil predicate on the "caller_agent_id" field.
func CallerAgentIDNotNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotNull(FieldCallerAgentID))
}

// CallerAgentIDEqualFold applies the EqualFold predicate on the "caller_agent_id" field.
func CallerAgentIDEqualFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEqualFold(FieldCallerAgentID, v))
}

// CallerAgentIDContainsFold applies the ContainsFold predicate on the "caller_agent_id" field.
func CallerAgentIDContainsFold(v string) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldContainsFold(FieldCallerAgentID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldLTE(FieldTimestamp, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.AuditEntry {
	return predicate.AuditEntry(sql.FieldNotNull(FieldDetails))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditEntry) predicate.AuditEntry {
	return predicate.AuditEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditEntry) predicate.AuditEntry {
	return predicate.AuditEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditEntry) predicate.AuditEntry {
	return predicate.AuditEntry(sql.NotPredicates(p))
}
