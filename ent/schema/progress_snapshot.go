package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressSnapshot stores the learner's full progress record as a JSON
// document, one row per save. The latest row is authoritative; older rows
// are kept as history and pruned periodically.
type ProgressSnapshot struct {
	ent.Schema
}

func (ProgressSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Event sequence number at the time of the save"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the record was saved"),
		field.JSON("data", map[string]any{}).
			Comment("Full progress record as JSON"),
	}
}

func (ProgressSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("sequence"),
	}
}
