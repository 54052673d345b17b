package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ArtifactContent holds uploaded artifact bodies, keyed by (agent, artifact).
// Resolved through the artifact://<agentId>/<artifactId> URI scheme.
type ArtifactContent struct {
	ent.Schema
}

// Fields of the ArtifactContent.
func (ArtifactContent) Fields() []ent.Field {
	return []ent.Field{
		field.String("agent_id"),
		field.String("artifact_id"),
		field.Bytes("content"),
		field.String("mime_type").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Indexes of the ArtifactContent.
func (ArtifactContent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "artifact_id").
			Unique(),
	}
}
