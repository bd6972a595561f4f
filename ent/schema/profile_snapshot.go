package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProfileSnapshot captures a learner's full profile and cached derived
// artifacts at a point in time, enabling fast restore on initialize
// without replaying the entire event log.
type ProfileSnapshot struct {
	ent.Schema
}

func (ProfileSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Learner the snapshot belongs to"),
		field.Int64("sequence").
			Comment("Event sequence number at the time of snapshot"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was taken"),
		field.JSON("data", map[string]any{}).
			Comment("Profile and cached derived state as JSON"),
	}
}

func (ProfileSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("timestamp"),
		index.Fields("sequence"),
	}
}
