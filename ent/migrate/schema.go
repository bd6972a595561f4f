// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LessonEventsColumns holds the columns for the "lesson_events" table.
	LessonEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "module_index", Type: field.TypeInt, Default: 0},
		{Name: "time_spent_secs", Type: field.TypeInt, Default: 0},
		{Name: "quiz_score", Type: field.TypeFloat64, Default: 0},
		{Name: "quiz_attempt", Type: field.TypeInt, Default: 0},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "topic_id", Type: field.TypeString, Default: ""},
	}
	// LessonEventsTable holds the schema information for the "lesson_events" table.
	LessonEventsTable = &schema.Table{
		Name:       "lesson_events",
		Columns:    LessonEventsColumns,
		PrimaryKey: []*schema.Column{LessonEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[1]},
			},
			{
				Name:    "lessonevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2]},
			},
			{
				Name:    "lessonevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[3]},
			},
			{
				Name:    "lessonevent_course_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[5]},
			},
			{
				Name:    "lessonevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[6]},
			},
			{
				Name:    "lessonevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[4]},
			},
			{
				Name:    "lessonevent_topic_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[12]},
			},
		},
	}
	// ProfileSnapshotsColumns holds the columns for the "profile_snapshots" table.
	ProfileSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// ProfileSnapshotsTable holds the schema information for the "profile_snapshots" table.
	ProfileSnapshotsTable = &schema.Table{
		Name:       "profile_snapshots",
		Columns:    ProfileSnapshotsColumns,
		PrimaryKey: []*schema.Column{ProfileSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profilesnapshot_user_id",
				Unique:  false,
				Columns: []*schema.Column{ProfileSnapshotsColumns[1]},
			},
			{
				Name:    "profilesnapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProfileSnapshotsColumns[3]},
			},
			{
				Name:    "profilesnapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProfileSnapshotsColumns[2]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "event_count", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LessonEventsTable,
		ProfileSnapshotsTable,
		SessionEventsTable,
	}
)

func init() {
}
