package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/steward-io/steward/pkg/models"
)

// Checkpoint holds one serialized agent state snapshot. Retention keeps the
// newest N per agent; older rows are pruned on store.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("agent_id"),
		field.JSON("state", models.SerializedAgentState{}).
			Comment("Adapter checkpoint plus brief snapshot, last sequence, pending decision ids"),
		field.String("decision_id").
			Optional().
			Nillable().
			Comment("Set when the checkpoint was taken for a decision"),
		field.Enum("serialized_by").
			Values("pause", "kill_grace", "crash_recovery", "decision_checkpoint"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("agent_id", "created_at"),
	}
}
