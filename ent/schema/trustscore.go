package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// TrustScore holds the persisted global trust score for one agent.
// The id is the agent id; scores are clamped to [0,100] by the store.
type TrustScore struct {
	ent.Schema
}

// Fields of the TrustScore.
func (TrustScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.Int("score").
			Default(50),
		field.String("last_reason").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}
