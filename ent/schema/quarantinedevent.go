package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuarantinedEvent holds a malformed ingested event that failed validation.
// Quarantined payloads never reach the event bus.
type QuarantinedEvent struct {
	ent.Schema
}

// Fields of the QuarantinedEvent.
func (QuarantinedEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Text("raw").
			Comment("Original payload, verbatim"),
		field.String("reason"),
		field.String("source").
			Optional().
			Nillable().
			Comment("Agent id or transport the payload arrived from, when known"),
		field.Time("quarantined_at").
			Default(time.Now),
	}
}

// Indexes of the QuarantinedEvent.
func (QuarantinedEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quarantined_at"),
	}
}
