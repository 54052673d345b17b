package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CoherenceIssue holds the schema definition for a cross-workstream
// inconsistency flagged by an agent or by the coherence scan.
type CoherenceIssue struct {
	ent.Schema
}

// Fields of the CoherenceIssue.
func (CoherenceIssue) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("issue_id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("contradiction", "duplication", "gap", "dependency_violation"),
		field.Text("summary"),
		field.Enum("severity").
			Values("warning", "low", "medium", "high", "critical").
			Default("medium"),
		field.Enum("status").
			Values("open", "resolved").
			Default("open"),
		field.JSON("affected_workstreams", []string{}).
			Optional(),
		field.JSON("affected_artifacts", []string{}).
			Optional().
			Comment("Ids of the artifacts involved in the inconsistency"),
		field.String("detected_by").
			Optional().
			Nillable().
			Comment("Agent id when reported through the event stream"),
		field.Int64("detected_at_tick").
			Default(0),
		field.Time("created_at").
			Default(time.Now),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.Text("resolution").
			Optional().
			Nillable(),
	}
}

// Indexes of the CoherenceIssue.
func (CoherenceIssue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
	}
}
