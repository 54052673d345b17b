// Code generated by ent, DO NOT EDIT.

package agentrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-io/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldID, id))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldRole, v))
}

// Workstream applies equality check predicate on the "workstream" field. It's identical to WorkstreamEQ.
func Workstream(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldWorkstream, v))
}

// PluginName applies equality check predicate on the "plugin_name" field. It's identical to PluginNameEQ.
func PluginName(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldPluginName, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldSessionID, v))
}

// ModelPreference applies equality check predicate on the "model_preference" field. It's identical to ModelPreferenceEQ.
func ModelPreference(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldModelPreference, v))
}

// SpawnedAt applies equality check predicate on the "spawned_at" field. It's identical to SpawnedAtEQ.
func SpawnedAt(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldSpawnedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldRole, v))
}

// WorkstreamEQ applies the EQ predicate on the "workstream" field.
func WorkstreamEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldWorkstream, v))
}

// WorkstreamNEQ applies the NEQ predicate on the "workstream" field.
func WorkstreamNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldWorkstream, v))
}

// WorkstreamIn applies the In predicate on the "workstream" field.
func WorkstreamIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldWorkstream, vs...))
}

// WorkstreamNotIn applies the NotIn predicate on the "workstream" field.
func WorkstreamNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldWorkstream, vs...))
}

// WorkstreamGT applies the GT predicate on the "workstream" field.
func WorkstreamGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldWorkstream, v))
}

// WorkstreamGTE applies the GTE predicate on the "workstream" field.
func WorkstreamGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldWorkstream, v))
}

// WorkstreamLT applies the LT predicate on the "workstream" field.
func WorkstreamLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldWorkstream, v))
}

// WorkstreamLTE applies the LTE predicate on the "workstream" field.
func WorkstreamLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldWorkstream, v))
}

// WorkstreamContains applies the Contains predicate on the "workstream" field.
func WorkstreamContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldWorkstream, v))
}

// WorkstreamHasPrefix applies the HasPrefix predicate on the "workstream" field.
func WorkstreamHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldWorkstream, v))
}

// WorkstreamHasSuffix applies the HasSuffix predicate on the "workstream" field.
func WorkstreamHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldWorkstream, v))
}

// WorkstreamEqualFold applies the EqualFold predicate on the "workstream" field.
func WorkstreamEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldWorkstream, v))
}

// WorkstreamContainsFold applies the ContainsFold predicate on the "workstream" field.
func WorkstreamContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldWorkstream, v))
}

// ReadableWorkstreamsIsNil applies the IsNil predicate on the "readable_workstreams" field.
func ReadableWorkstreamsIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldReadableWorkstreams))
}

// ReadableWorkstreamsNotNil applies the NotNil predicate on the "readable_workstreams" field.
func ReadableWorkstreamsNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldReadableWorkstreams))
}

// PluginNameEQ applies the EQ predicate on the "plugin_name" field.
func PluginNameEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldPluginName, v))
}

// PluginNameNEQ applies the NEQ predicate on the "plugin_name" field.
func PluginNameNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldPluginName, v))
}

// PluginNameIn applies the In predicate on the "plugin_name" field.
func PluginNameIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldPluginName, vs...))
}

// PluginNameNotIn applies the NotIn predicate on the "plugin_name" field.
func PluginNameNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldPluginName, vs...))
}

// PluginNameGT applies the GT predicate on the "plugin_name" field.
func PluginNameGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldPluginName, v))
}

// PluginNameGTE applies the GTE predicate on the "plugin_name" field.
func PluginNameGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldPluginName, v))
}

// PluginNameLT applies the LT predicate on the "plugin_name" field.
func PluginNameLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldPluginName, v))
}

// PluginNameLTE applies the LTE predicate on the "plugin_name" field.
func PluginNameLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldPluginName, v))
}

// PluginNameContains applies the Contains predicate on the "plugin_name" field.
func PluginNameContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldPluginName, v))
}

// PluginNameHasPrefix applies the HasPrefix predicate on the "plugin_name" field.
func PluginNameHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldPluginName, v))
}

// PluginNameHasSuffix applies the HasSuffix predicate on the "plugin_name" field.
func PluginNameHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldPluginName, v))
}

// PluginNameEqualFold applies the EqualFold predicate on the "plugin_name" field.
func PluginNameEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldPluginName, v))
}

// PluginNameContainsFold applies the ContainsFold predicate on the "plugin_name" field.
func PluginNameContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldPluginName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// ModelPreferenceEQ applies the EQ predicate on the "model_preference" field.
func ModelPreferenceEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldModelPreference, v))
}

// ModelPreferenceNEQ applies the NEQ predicate on the "model_preference" field.
func ModelPreferenceNEQ(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldModelPreference, v))
}

// ModelPreferenceIn applies the In predicate on the "model_preference" field.
func ModelPreferenceIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldModelPreference, vs...))
}

// ModelPreferenceNotIn applies the NotIn predicate on the "model_preference" field.
func ModelPreferenceNotIn(vs ...string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldModelPreference, vs...))
}

// ModelPreferenceGT applies the GT predicate on the "model_preference" field.
func ModelPreferenceGT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldModelPreference, v))
}

// ModelPreferenceGTE applies the GTE predicate on the "model_preference" field.
func ModelPreferenceGTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldModelPreference, v))
}

// ModelPreferenceLT applies the LT predicate on the "model_preference" field.
func ModelPreferenceLT(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldModelPreference, v))
}

// ModelPreferenceLTE applies the LTE predicate on the "model_preference" field.
func ModelPreferenceLTE(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldModelPreference, v))
}

// ModelPreferenceContains applies the Contains predicate on the "model_preference" field.
func ModelPreferenceContains(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContains(FieldModelPreference, v))
}

// ModelPreferenceHasPrefix applies the HasPrefix predicate on the "model_preference" field.
func ModelPreferenceHasPrefix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasPrefix(FieldModelPreference, v))
}

// ModelPreferenceHasSuffix applies the HasSuffix predicate on the "model_preference" field.
func ModelPreferenceHasSuffix(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldHasSuffix(FieldModelPreference, v))
}

// ModelPreferenceIsNil applies the IsNil predicate on the "model_preference" field.
func ModelPreferenceIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldModelPreference))
}

// ModelPreferenceNotNil applies the NotNil predicate on the "model_preference" field.
func ModelPreferenceNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldModelPreference))
}

// ModelPreferenceEqualFold applies the EqualFold predicate on the "model_preference" field.
func ModelPreferenceEqualFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEqualFold(FieldModelPreference, v))
}

// ModelPreferenceContainsFold applies the ContainsFold predicate on the "model_preference" field.
func ModelPreferenceContainsFold(v string) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldContainsFold(FieldModelPreference, v))
}

// BriefIsNil applies the IsNil predicate on the "brief" field.
func BriefIsNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIsNull(FieldBrief))
}

// BriefNotNil applies the NotNil predicate on the "brief" field.
func BriefNotNil() predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotNull(FieldBrief))
}

// SpawnedAtEQ applies the EQ predicate on the "spawned_at" field.
func SpawnedAtEQ(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldSpawnedAt, v))
}

// SpawnedAtNEQ applies the NEQ predicate on the "spawned_at" field.
func SpawnedAtNEQ(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldSpawnedAt, v))
}

// SpawnedAtIn applies the In predicate on the "spawned_at" field.
func SpawnedAtIn(vs ...time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldSpawnedAt, vs...))
}

// SpawnedAtNotIn applies the NotIn predicate on the "spawned_at" field.
func SpawnedAtNotIn(vs ...time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldSpawnedAt, vs...))
}

// SpawnedAtGT applies the GT predicate on the "spawned_at" field.
func SpawnedAtGT(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldSpawnedAt, v))
}

// SpawnedAtGTE applies the GTE predicate on the "spawned_at" field.
func SpawnedAtGTE(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldSpawnedAt, v))
}

// SpawnedAtLT applies the LT predicate on the "spawned_at" field.
func SpawnedAtLT(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldSpawnedAt, v))
}

// SpawnedAtLTE applies the LTE predicate on the "spawned_at" field.
func SpawnedAtLTE(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldSpawnedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentRecord {
	return predicate.AgentRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentRecord) predicate.AgentRecord {
	return predicate.AgentRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentRecord) predicate.AgentRecord {
	return predicate.AgentRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentRecord) predicate.AgentRecord {
	return predicate.AgentRecord(sql.NotPredicates(p))
}
