package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact holds the schema definition for the Artifact entity.
type Artifact struct {
	ent.Schema
}

// Fields of the Artifact.
func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Enum("kind").
			Values("code", "doc", "design", "config", "test", "other").
			Default("other"),
		field.String("workstream"),
		field.Enum("status").
			Values("draft", "in_review", "approved", "rejected").
			Default("draft"),
		field.Float("quality_score").
			Default(0).
			Comment("Reviewer-assigned quality in [0,1]"),
		field.String("created_by").
			Comment("Agent or human that produced the artifact"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now),
		field.JSON("sources", []string{}).
			Optional().
			Comment("Provenance: ids of upstream artifacts this one derives from"),
		field.String("uri").
			Optional().
			Nillable(),
		field.String("mime_type").
			Optional().
			Nillable(),
		field.Int64("size_bytes").
			Optional().
			Nillable(),
		field.String("content_hash").
			Optional().
			Nillable(),
		field.Text("summary").
			Optional().
			Nillable(),
		field.Int("version").
			Default(1).
			Comment("Strictly increases on each accepted upsert"),
	}
}

// Indexes of the Artifact.
func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workstream"),
		index.Fields("status"),
		index.Fields("workstream", "status"),
	}
}
