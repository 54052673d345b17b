package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DomainTrustScore holds one agent's trust score in a single artifact domain
// (code, doc, design, ...). Domains exist only once the agent has acted in them.
type DomainTrustScore struct {
	ent.Schema
}

// Fields of the DomainTrustScore.
func (DomainTrustScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("agent_id"),
		field.String("domain"),
		field.Int("score").
			Default(50),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Indexes of the DomainTrustScore.
func (DomainTrustScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "domain").
			Unique(),
		index.Fields("agent_id"),
	}
}
