package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records a single completion: a video watched, a quiz
// attempt, an achievement unlock, or a reset. Append-only.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_type").NotEmpty().
			Comment("video, quiz, achievement, or reset"),
		field.String("item_key").Optional().
			Comment("Completion key of the item, empty for resets"),
		field.Int("score").Optional().Nillable().
			Comment("Quiz score, unset for other event types"),
		field.Int("points_awarded").Default(0),
		field.String("attempt_id").NotEmpty().
			Comment("UUID grouping the events of one engine operation"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_type"),
		index.Fields("item_key"),
		index.Fields("attempt_id"),
	}
}
