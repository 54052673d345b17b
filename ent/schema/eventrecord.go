package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/steward-io/steward/pkg/models"
)

// EventRecord holds one ingested event envelope. Append-only; the integer
// primary key doubles as the insertion order for queries.
type EventRecord struct {
	ent.Schema
}

// Fields of the EventRecord.
func (EventRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_event_id").
			Unique().
			Immutable().
			Comment("Adapter-assigned id; ingestion is idempotent on it"),
		field.String("agent_id"),
		field.String("run_id"),
		field.Int64("source_sequence").
			Comment("Strictly increasing per (agent_id, run_id)"),
		field.Time("source_occurred_at"),
		field.Time("ingested_at").
			Default(time.Now),
		field.String("event_type"),
		field.JSON("payload", models.AgentEvent{}).
			Comment("Typed event body, stored as-is"),
	}
}

// Indexes of the EventRecord.
func (EventRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("event_type"),
		index.Fields("agent_id", "run_id", "source_sequence"),
		index.Fields("ingested_at"),
	}
}
