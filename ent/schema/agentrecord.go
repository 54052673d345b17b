package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/steward-io/steward/pkg/models"
)

// AgentRecord holds the schema definition for a spawned worker agent.
// The agent id is stable across pause/resume; completed/error are terminal.
type AgentRecord struct {
	ent.Schema
}

// Fields of the AgentRecord.
func (AgentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("role"),
		field.String("workstream").
			Comment("Primary workstream assignment"),
		field.JSON("readable_workstreams", []string{}).
			Optional(),
		field.String("plugin_name"),
		field.Enum("status").
			Values("running", "paused", "waiting_on_human", "completed", "error").
			Default("running"),
		field.String("session_id").
			Optional().
			Nillable(),
		field.String("model_preference").
			Optional().
			Nillable(),
		field.JSON("brief", models.AgentBrief{}).
			Optional().
			Comment("Brief snapshot handed to the agent at spawn"),
		field.Time("spawned_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Indexes of the AgentRecord.
func (AgentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("workstream"),
	}
}
