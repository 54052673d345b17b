package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// StoreMeta holds the single-row global version counter. Every mutation that
// changes externally visible snapshot data bumps it inside the same transaction.
type StoreMeta struct {
	ent.Schema
}

// Annotations of the StoreMeta.
func (StoreMeta) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "store_meta"},
	}
}

// Fields of the StoreMeta.
func (StoreMeta) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("meta_id").
			Unique().
			Immutable(),
		field.Int64("version").
			Default(0),
		field.Time("updated_at").
			Default(time.Now),
	}
}
