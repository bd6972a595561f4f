package learner

import (
	"time"

	"github.com/abhisek/adaptiq/internal/catalog"
)

// EventType identifies a lesson-level behavioral event.
type EventType string

const (
	EventLessonStart    EventType = "lesson_start"
	EventLessonComplete EventType = "lesson_complete"
	EventQuizSubmit     EventType = "quiz_submit"
	EventQuizRetake     EventType = "quiz_retake"
	EventNoteTaken      EventType = "note_taken"
	EventLessonRevisit  EventType = "lesson_revisit"
)

// LessonEvent is an immutable behavioral fact. Once recorded it is
// never mutated.
type LessonEvent struct {
	Type          EventType          `json:"type"`
	UserID        string             `json:"user_id"`
	CourseID      string             `json:"course_id"`
	LessonID      string             `json:"lesson_id"`
	ModuleIndex   int                `json:"module_index"`
	Timestamp     time.Time          `json:"timestamp"`
	TimeSpentSecs int                `json:"time_spent_secs,omitempty"`
	QuizScore     float64            `json:"quiz_score,omitempty"`
	QuizAttempt   int                `json:"quiz_attempt,omitempty"`
	Difficulty    catalog.Difficulty `json:"difficulty,omitempty"`
	TopicID       string             `json:"topic_id,omitempty"`
}

// SessionAction identifies a session lifecycle event.
type SessionAction string

const (
	SessionStart SessionAction = "session_start"
	SessionEnd   SessionAction = "session_end"
)

// SessionEvent is an immutable session lifecycle fact.
type SessionEvent struct {
	Action       SessionAction `json:"action"`
	UserID       string        `json:"user_id"`
	SessionID    string        `json:"session_id"`
	Timestamp    time.Time     `json:"timestamp"`
	DurationSecs int           `json:"duration_secs,omitempty"`
	EventCount   int           `json:"event_count,omitempty"`
}

// Filter selects lesson events. Zero-valued fields are ignored; set
// fields combine with AND semantics.
type Filter struct {
	CourseID string
	LessonID string
	Type     EventType
	Since    time.Time
}

func (f Filter) matches(ev LessonEvent) bool {
	if f.CourseID != "" && ev.CourseID != f.CourseID {
		return false
	}
	if f.LessonID != "" && ev.LessonID != f.LessonID {
		return false
	}
	if f.Type != "" && ev.Type != f.Type {
		return false
	}
	if !f.Since.IsZero() && ev.Timestamp.Before(f.Since) {
		return false
	}
	return true
}
