package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records a single lesson-level behavioral fact
// (start, complete, quiz submit/retake, note, revisit).
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_type").
			NotEmpty().
			Comment("lesson_start, lesson_complete, quiz_submit, quiz_retake, note_taken, lesson_revisit"),
		field.String("course_id").NotEmpty(),
		field.String("lesson_id").NotEmpty(),
		field.Int("module_index").Default(0),
		field.Int("time_spent_secs").
			Default(0).
			Comment("Seconds spent on the lesson (complete events)"),
		field.Float("quiz_score").
			Default(0).
			Comment("Percentage score 0-100 (quiz_submit events)"),
		field.Int("quiz_attempt").
			Default(0).
			Comment("Attempt number (quiz events)"),
		field.String("difficulty").
			Default("").
			Comment("Lesson difficulty tier at event time"),
		field.String("topic_id").
			Default("").
			Comment("Topic cluster the lesson belongs to"),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("lesson_id"),
		index.Fields("event_type"),
		index.Fields("topic_id"),
	}
}
