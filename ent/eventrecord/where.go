// Code generated by ent, DO NOT EDIT.

package eventrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-io/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldID, id))
}

// SourceEventID applies equality check predicate on the "source_event_id" field. It's identical to SourceEventIDEQ.
func SourceEventID(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldSourceEventID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldAgentID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldRunID, v))
}

// SourceSequence applies equality check predicate on the "source_sequence" field. It's identical to SourceSequenceEQ.
func SourceSequence(v int64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldSourceSequence, v))
}

// SourceOccurredAt applies equality check predicate on the "source_occurred_at" field. It's identical to SourceOccurredAtEQ.
func SourceOccurredAt(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldSourceOccurredAt, v))
}

// IngestedAt applies equality check predicate on the "ingested_at" field. It's identical to IngestedAtEQ.
func IngestedAt(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldIngestedAt, v))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEventType, v))
}

// SourceEventIDEQ applies the EQ predicate on the "source_event_id" field.
func SourceEventIDEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldSourceEventID, v))
}

// SourceEventIDNEQ applies the NEQ predicate on the "source_event_id" field.
func SourceEventIDNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldSourceEventID, v))
}

// SourceEventIDIn applies the In predicate on the "source_event_id" field.
func SourceEventIDIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldSourceEventID, vs...))
}

// SourceEventIDNotIn applies the NotIn predicate on the "source_event_id" field.
func SourceEventIDNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldSourceEventID, vs...))
}

// SourceEventIDGT applies the GT predicate on the "source_event_id" field.
func SourceEventIDGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldSourceEventID, v))
}

// SourceEventIDGTE applies the GTE predicate on the "source_event_id" field.
func SourceEventIDGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldSourceEventID, v))
}

// SourceEventIDLT applies the LT predicate on the "source_event_id" field.
func SourceEventIDLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldSourceEventID, v))
}

// SourceEventIDLTE applies the LTE predicate on the "source_event_id" field.
func SourceEventIDLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldSourceEventID, v))
}

// SourceEventIDContains applies the Contains predicate on the "source_event_id" field.
func SourceEventIDContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldSourceEventID, v))
}

// SourceEventIDHasPrefix applies the HasPrefix predicate on the "source_event_id" field.
func SourceEventIDHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldSourceEventID, v))
}

// SourceEventIDHasSuffix applies the HasSuffix predicate on the "source_event_id" field.
func SourceEventIDHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldSourceEventID, v))
}

// SourceEventIDEqualFold applies the EqualFold predicate on the "source_event_id" field.
func SourceEventIDEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldSourceEventID, v))
}

// SourceEventIDContainsFold applies the ContainsFold predicate on the "source_event_id" field.
func SourceEventIDContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldSourceEventID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldAgentID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldRunID, v))
}

// SourceSequenceEQ applies the EQ predicate on the "source_sequence" field.
func SourceSequenceEQ(v int64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldSourceSequence, v))
}

// SourceSequenceNEQ applies the NEQ predicate on the "source_sequence" field.
func SourceSequenceNEQ(v int64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldSourceSequence, v))
}

// SourceSequenceIn applies the In predicate on the "source_sequence" field.
func SourceSequenceIn(vs ...int64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldSourceSequence, vs...))
}

// SourceSequenceNotIn applies the NotIn predicate on the "source_sequence" field.
func SourceSequenceNotIn(vs ...int64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldSourceSequence, vs...))
}

// SourceSequenceGT applies the GT predicate on the "source_sequence" field.
func SourceSequenceGT(v int64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldSourceSequence, v))
}

// SourceSequenceGTE applies the GTE predicate on the "source_sequence" field.
func SourceSequenceGTE(v int64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldSourceSequence, v))
}

// SourceSequenceLT applies the LT predicate on the "source_sequence" field.
func SourceSequenceLT(v int64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldSourceSequence, v))
}

// SourceSequenceLTE applies the LTE predicate on the "source_sequence" field.
func SourceSequenceLTE(v int64) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldSourceSequence, v))
}

// SourceOccurredAtEQ applies the EQ predicate on the "source_occurred_at" field.
func SourceOccurredAtEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldSourceOccurredAt, v))
}

// SourceOccurredAtNEQ applies the NEQ predicate on the "source_occurred_at" field.
func SourceOccurredAtNEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldSourceOccurredAt, v))
}

// SourceOccurredAtIn applies the In predicate on the "source_occurred_at" field.
func SourceOccurredAtIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldSourceOccurredAt, vs...))
}

// SourceOccurredAtNotIn applies the NotIn predicate on the "source_occurred_at" field.
func SourceOccurredAtNotIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldSourceOccurredAt, vs...))
}

// SourceOccurredAtGT applies the GT predicate on the "source_occurred_at" field.
func SourceOccurredAtGT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldSourceOccurredAt, v))
}

// SourceOccurredAtGTE applies the GTE predicate on the "source_occurred_at" field.
func SourceOccurredAtGTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldSourceOccurredAt, v))
}

// SourceOccurredAtLT applies the LT predicate on the "source_occurred_at" field.
func SourceOccurredAtLT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldSourceOccurredAt, v))
}

// SourceOccurredAtLTE applies the LTE predicate on the "source_occurred_at" field.
func SourceOccurredAtLTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldSourceOccurredAt, v))
}

// IngestedAtEQ applies the EQ predicate on the "ingested_at" field.
func IngestedAtEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldIngestedAt, v))
}

// IngestedAtNEQ applies the NEQ predicate on the "ingested_at" field.
func IngestedAtNEQ(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldIngestedAt, v))
}

// IngestedAtIn applies the In predicate on the "ingested_at" field.
func IngestedAtIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldIngestedAt, vs...))
}

// IngestedAtNotIn applies the NotIn predicate on the "ingested_at" field.
func IngestedAtNotIn(vs ...time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldIngestedAt, vs...))
}

// IngestedAtGT applies the GT predicate on the "ingested_at" field.
func IngestedAtGT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldIngestedAt, v))
}

// IngestedAtGTE applies the GTE predicate on the "ingested_at" field.
func IngestedAtGTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldIngestedAt, v))
}

// IngestedAtLT applies the LT predicate on the "ingested_at" field.
func IngestedAtLT(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldIngestedAt, v))
}

// IngestedAtLTE applies the LTE predicate on the "ingested_at" field.
func IngestedAtLTE(v time.Time) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldIngestedAt, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.EventRecord {
	return predicate.EventRecord(sql.FieldContainsFold(FieldEventType, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EventRecord) predicate.EventRecord {
	return predicate.EventRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EventRecord) predicate.EventRecord {
	return predicate.EventRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EventRecord) predicate.EventRecord {
	return predicate.EventRecord(sql.NotPredicates(p))
}
