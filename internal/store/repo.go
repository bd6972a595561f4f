package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/abhisek/adaptiq/ent"
)

// LessonEventData is the persisted form of a lesson behavioral event.
// Sequence is assigned by the repo on append and reported on reads.
type LessonEventData struct {
	Sequence      int64
	UserID        string
	EventType     string
	CourseID      string
	LessonID      string
	ModuleIndex   int
	Timestamp     time.Time
	TimeSpentSecs int
	QuizScore     float64
	QuizAttempt   int
	Difficulty    string
	TopicID       string
}

// SessionEventData is the persisted form of a session lifecycle event.
// Sequence is assigned by the repo on append and reported on reads.
type SessionEventData struct {
	Sequence     int64
	UserID       string
	SessionID    string
	Action       string
	Timestamp    time.Time
	DurationSecs int
	EventCount   int
}

// EventRepo provides append and query access to behavioral events.
type EventRepo interface {
	// AppendLessonEvent records a lesson-level event and returns its
	// assigned global sequence number.
	AppendLessonEvent(ctx context.Context, data LessonEventData) (int64, error)

	// AppendSessionEvent records a session lifecycle event and returns
	// its assigned global sequence number.
	AppendSessionEvent(ctx context.Context, data SessionEventData) (int64, error)

	// RecentLessonEvents returns a user's most recent lesson events in
	// sequence order (oldest first), at most limit entries.
	RecentLessonEvents(ctx context.Context, userID string, limit int) ([]LessonEventData, error)

	// RecentSessionEvents returns a user's most recent session events
	// in sequence order (oldest first), at most limit entries.
	RecentSessionEvents(ctx context.Context, userID string, limit int) ([]SessionEventData, error)

	// PruneLessonEvents deletes all but a user's keep most recent lesson events.
	PruneLessonEvents(ctx context.Context, userID string, keep int) error

	// PruneSessionEvents deletes all but a user's keep most recent session events.
	PruneSessionEvents(ctx context.Context, userID string, keep int) error

	// DeleteUser removes all of a user's events (profile reset).
	DeleteUser(ctx context.Context, userID string) error
}

// SnapshotData captures the full learner state at a point in time.
// The profile and cached derived artifacts are stored as raw JSON so
// the store stays agnostic of the domain types that produce them.
type SnapshotData struct {
	Version     int             `json:"version"`
	Profile     json.RawMessage `json:"profile,omitempty"`
	Path        json.RawMessage `json:"path,omitempty"`
	Analysis    json.RawMessage `json:"analysis,omitempty"`
	Predictions json.RawMessage `json:"predictions,omitempty"`
}

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = 1

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	UserID    string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages per-user learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the user's most recent snapshot, or nil if none exist.
	Latest(ctx context.Context, userID string) (*Snapshot, error)

	// Prune deletes all but the user's N most recent snapshots.
	Prune(ctx context.Context, userID string, keep int) error

	// DeleteUser removes all of a user's snapshots (profile reset).
	DeleteUser(ctx context.Context, userID string) error
}

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}
