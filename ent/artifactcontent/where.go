// Code generated by ent, DO NOT EDIT.

package artifactcontent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-io/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEQ(FieldAgentID, v))
}

// ArtifactID applies equality check predicate on the "artifact_id" field. It's identical to ArtifactIDEQ.
func ArtifactID(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEQ(FieldArtifactID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v []byte) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEQ(FieldContent, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEQ(FieldMimeType, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEQ(FieldUpdatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldContainsFold(FieldAgentID, v))
}

// ArtifactIDEQ applies the EQ predicate on the "artifact_id" field.
func ArtifactIDEQ(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEQ(FieldArtifactID, v))
}

// ArtifactIDNEQ applies the NEQ predicate on the "artifact_id" field.
func ArtifactIDNEQ(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldNEQ(FieldArtifactID, v))
}

// ArtifactIDIn applies the In predicate on the "artifact_id" field.
func ArtifactIDIn(vs ...string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldIn(FieldArtifactID, vs...))
}

// ArtifactIDNotIn applies the NotIn predicate on the "artifact_id" field.
func ArtifactIDNotIn(vs ...string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldNotIn(FieldArtifactID, vs...))
}

// ArtifactIDGT applies the GT predicate on the "artifact_id" field.
func ArtifactIDGT(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldGT(FieldArtifactID, v))
}

// ArtifactIDGTE applies the GTE predicate on the "artifact_id" field.
func ArtifactIDGTE(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldGTE(FieldArtifactID, v))
}

// ArtifactIDLT applies the LT predicate on the "artifact_id" field.
func ArtifactIDLT(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldLT(FieldArtifactID, v))
}

// ArtifactIDLTE applies the LTE predicate on the "artifact_id" field.
func ArtifactIDLTE(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldLTE(FieldArtifactID, v))
}

// ArtifactIDContains applies the Contains predicate on the "artifact_id" field.
func ArtifactIDContains(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldContains(FieldArtifactID, v))
}

// ArtifactIDHasPrefix applies the HasPrefix predicate on the "artifact_id" field.
func ArtifactIDHasPrefix(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldHasPrefix(FieldArtifactID, v))
}

// ArtifactIDHasSuffix applies the HasSuffix predicate on the "artifact_id" field.
func ArtifactIDHasSuffix(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldHasSuffix(FieldArtifactID, v))
}

// ArtifactIDEqualFold applies the EqualFold predicate on the "artifact_id" field.
func ArtifactIDEqualFold(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEqualFold(FieldArtifactID, v))
}

// ArtifactIDContainsFold applies the ContainsFold predicate on the "artifact_id" field.
func ArtifactIDContainsFold(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldContainsFold(FieldArtifactID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v []byte) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v []byte) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...[]byte) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...[]byte) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v []byte) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v []byte) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v []byte) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v []byte) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldLTE(FieldContent, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeIsNil applies the IsNil predicate on the "mime_type" field.
func MimeTypeIsNil() predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldIsNull(FieldMimeType))
}

// MimeTypeNotNil applies the NotNil predicate on the "mime_type" field.
func MimeTypeNotNil() predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldNotNull(FieldMimeType))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldContainsFold(FieldMimeType, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ArtifactContent) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ArtifactContent) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ArtifactContent) predicate.ArtifactContent {
	return predicate.ArtifactContent(sql.NotPredicates(p))
}
