package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEntry holds one append-only audit log record.
type AuditEntry struct {
	ent.Schema
}

// Fields of the AuditEntry.
func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("entity_type"),
		field.String("entity_id"),
		field.String("action"),
		field.String("caller_agent_id").
			Optional().
			Nillable(),
		field.Time("timestamp").
			Default(time.Now),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the AuditEntry.
func (AuditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("timestamp"),
	}
}
