package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Workstream holds the schema definition for a named slice of project work.
type Workstream struct {
	ent.Schema
}

// Fields of the Workstream.
func (Workstream) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workstream_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("status").
			Default("active"),
		field.Text("last_activity").
			Optional().
			Nillable().
			Comment("Free-text summary of the most recent activity"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now),
	}
}
