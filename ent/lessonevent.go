// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/adaptiq/ent/lessonevent"
)

// LessonEvent is the model entity for the LessonEvent schema.
type LessonEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// Learner the event belongs to
	UserID string `json:"user_id,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// lesson_start, lesson_complete, quiz_submit, quiz_retake, note_taken, lesson_revisit
	EventType string `json:"event_type,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID string `json:"course_id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// ModuleIndex holds the value of the "module_index" field.
	ModuleIndex int `json:"module_index,omitempty"`
	// Seconds spent on the lesson (complete events)
	TimeSpentSecs int `json:"time_spent_secs,omitempty"`
	// Percentage score 0-100 (quiz_submit events)
	QuizScore float64 `json:"quiz_score,omitempty"`
	// Attempt number (quiz events)
	QuizAttempt int `json:"quiz_attempt,omitempty"`
	// Lesson difficulty tier at event time
	Difficulty string `json:"difficulty,omitempty"`
	// Topic cluster the lesson belongs to
	TopicID      string `json:"topic_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonevent.FieldQuizScore:
			values[i] = new(sql.NullFloat64)
		case lessonevent.FieldID, lessonevent.FieldSequence, lessonevent.FieldModuleIndex, lessonevent.FieldTimeSpentSecs, lessonevent.FieldQuizAttempt:
			values[i] = new(sql.NullInt64)
		case lessonevent.FieldUserID, lessonevent.FieldEventType, lessonevent.FieldCourseID, lessonevent.FieldLessonID, lessonevent.FieldDifficulty, lessonevent.FieldTopicID:
			values[i] = new(sql.NullString)
		case lessonevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonEvent fields.
func (le *LessonEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			le.ID = int(value.Int64)
		case lessonevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				le.Sequence = value.Int64
			}
		case lessonevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				le.UserID = value.String
			}
		case lessonevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				le.Timestamp = value.Time
			}
		case lessonevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				le.EventType = value.String
			}
		case lessonevent.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				le.CourseID = value.String
			}
		case lessonevent.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				le.LessonID = value.String
			}
		case lessonevent.FieldModuleIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field module_index", values[i])
			} else if value.Valid {
				le.ModuleIndex = int(value.Int64)
			}
		case lessonevent.FieldTimeSpentSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_secs", values[i])
			} else if value.Valid {
				le.TimeSpentSecs = int(value.Int64)
			}
		case lessonevent.FieldQuizScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_score", values[i])
			} else if value.Valid {
				le.QuizScore = value.Float64
			}
		case lessonevent.FieldQuizAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_attempt", values[i])
			} else if value.Valid {
				le.QuizAttempt = int(value.Int64)
			}
		case lessonevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				le.Difficulty = value.String
			}
		case lessonevent.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				le.TopicID = value.String
			}
		default:
			le.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonEvent.
// This includes values selected through modifiers, order, etc.
func (le *LessonEvent) Value(name string) (ent.Value, error) {
	return le.selectValues.Get(name)
}

// Update returns a builder for updating this LessonEvent.
// Note that you need to call LessonEvent.Unwrap() before calling this method if this LessonEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (le *LessonEvent) Update() *LessonEventUpdateOne {
	return NewLessonEventClient(le.config).UpdateOne(le)
}

// Unwrap unwraps the LessonEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (le *LessonEvent) Unwrap() *LessonEvent {
	_tx, ok := le.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonEvent is not a transactional entity")
	}
	le.config.driver = _tx.drv
	return le
}

// String implements the fmt.Stringer.
func (le *LessonEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LessonEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", le.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", le.Sequence))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(le.UserID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(le.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(le.EventType)
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(le.CourseID)
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(le.LessonID)
	builder.WriteString(", ")
	builder.WriteString("module_index=")
	builder.WriteString(fmt.Sprintf("%v", le.ModuleIndex))
	builder.WriteString(", ")
	builder.WriteString("time_spent_secs=")
	builder.WriteString(fmt.Sprintf("%v", le.TimeSpentSecs))
	builder.WriteString(", ")
	builder.WriteString("quiz_score=")
	builder.WriteString(fmt.Sprintf("%v", le.QuizScore))
	builder.WriteString(", ")
	builder.WriteString("quiz_attempt=")
	builder.WriteString(fmt.Sprintf("%v", le.QuizAttempt))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(le.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(le.TopicID)
	builder.WriteByte(')')
	return builder.String()
}

// LessonEvents is a parsable slice of LessonEvent.
type LessonEvents []*LessonEvent
