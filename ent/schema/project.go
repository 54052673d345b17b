package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Project holds the single-row project configuration.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("project_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional().
			Nillable(),
		field.JSON("config", map[string]interface{}{}).
			Optional().
			Comment("Seeded project config: workstreams, role templates, policies"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now),
	}
}
