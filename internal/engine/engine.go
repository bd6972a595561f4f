// Package engine wires the learner state, modeling, strategy, and
// analytics packages behind a single facade. All model updates flow
// through it, and it owns persistence: events are appended as they
// arrive and full state snapshots are written at session boundaries.
package engine

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/abhisek/adaptiq/internal/analytics"
	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/config"
	"github.com/abhisek/adaptiq/internal/learner"
	"github.com/abhisek/adaptiq/internal/modeling"
	"github.com/abhisek/adaptiq/internal/store"
	"github.com/abhisek/adaptiq/internal/strategy"
)

// Engine is the single entry point for recording learner activity and
// querying the adaptive model. It is safe for concurrent use.
type Engine struct {
	mu  sync.Mutex
	cfg config.Config
	reg *catalog.Registry
	now func() time.Time

	events    store.EventRepo
	snapshots store.SnapshotRepo

	userID       string
	sessionID    string
	sessionStart time.Time
	sessionCount int
	seq          int64

	state    *learner.State
	modeling *modeling.Service
	strategy *strategy.Service

	// Derived artifacts, invalidated whenever an event lands.
	path     *strategy.AdaptivePath
	analysis *analytics.PerformanceAnalysis
	signals  []analytics.Signal
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig overrides the default tuning parameters.
func WithConfig(cfg config.Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithRepos attaches persistence. Without repos the engine runs purely
// in memory.
func WithRepos(events store.EventRepo, snapshots store.SnapshotRepo) Option {
	return func(e *Engine) {
		e.events = events
		e.snapshots = snapshots
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an engine over the given content registry. Initialize
// must be called before recording events.
func New(reg *catalog.Registry, opts ...Option) *Engine {
	e := &Engine{
		cfg: config.DefaultConfig(),
		reg: reg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize loads or creates the model for a user. Calling it again
// for the same user is a no-op; calling it for a different user swaps
// the loaded model.
func (e *Engine) Initialize(ctx context.Context, userID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != nil && e.userID == userID {
		return nil
	}

	e.userID = userID
	e.sessionID = ""
	e.seq = 0
	e.state = learner.NewState(userID, e.cfg.Learner, e.cfg.Store.MaxLessonEvents, e.cfg.Store.MaxSessionEvents)
	e.modeling = modeling.NewService(e.state, e.cfg)
	e.strategy = strategy.NewService(e.state, e.reg, e.cfg)
	e.invalidate()

	if e.snapshots == nil {
		return nil
	}
	if err := e.restore(ctx, userID); err != nil {
		return err
	}
	return nil
}

// restore rehydrates state from the latest snapshot plus the recent
// event history. A corrupt snapshot falls back to a fresh profile; the
// event log is the source of truth and survives. Events with a sequence
// beyond the snapshot were never captured in it, so they are replayed
// through the model to recover mutations from a run that ended without
// a snapshot.
func (e *Engine) restore(ctx context.Context, userID string) error {
	var snapSeq int64
	snap, err := e.snapshots.Latest(ctx, userID)
	if err != nil {
		return err
	}
	if snap != nil {
		snapSeq = snap.Sequence
		e.seq = snap.Sequence
		var p learner.Profile
		if len(snap.Data.Profile) > 0 && json.Unmarshal(snap.Data.Profile, &p) == nil {
			e.state.RestoreProfile(&p)
		}
		e.restoreCaches(snap.Data)
	}

	if e.events == nil {
		return nil
	}
	lessons, err := e.events.RecentLessonEvents(ctx, userID, e.cfg.Store.MaxLessonEvents)
	if err != nil {
		return err
	}
	sessions, err := e.events.RecentSessionEvents(ctx, userID, e.cfg.Store.MaxSessionEvents)
	if err != nil {
		return err
	}

	// Events the snapshot already covers go straight into the logs.
	var covered []learner.LessonEvent
	var lessonTail []store.LessonEventData
	for _, d := range lessons {
		if d.Sequence <= snapSeq {
			covered = append(covered, lessonEventFromData(d))
		} else {
			lessonTail = append(lessonTail, d)
		}
	}
	e.state.RestoreEvents(covered)

	var coveredSessions []learner.SessionEvent
	var sessionTail []store.SessionEventData
	for _, d := range sessions {
		if d.Sequence <= snapSeq {
			coveredSessions = append(coveredSessions, sessionEventFromData(d))
		} else {
			sessionTail = append(sessionTail, d)
		}
	}
	e.state.RestoreSessions(coveredSessions)

	e.replayTail(lessonTail, sessionTail)
	return nil
}

// replayTail re-applies events newer than the snapshot in sequence
// order, bringing the profile back to where the last run left it.
func (e *Engine) replayTail(lessons []store.LessonEventData, sessions []store.SessionEventData) {
	li, si := 0, 0
	for li < len(lessons) || si < len(sessions) {
		if si >= len(sessions) || (li < len(lessons) && lessons[li].Sequence < sessions[si].Sequence) {
			d := lessons[li]
			li++
			e.modeling.ProcessLessonEvent(lessonEventFromData(d))
			if d.Sequence > e.seq {
				e.seq = d.Sequence
			}
			continue
		}

		d := sessions[si]
		si++
		ev := sessionEventFromData(d)
		e.state.RecordSession(ev)
		if ev.Action == learner.SessionStart {
			count := e.state.Profile().SessionCount + 1
			e.state.UpdateProfile(learner.ProfilePatch{SessionCount: &count})
			e.state.MarkActive(ev.Timestamp)
		}
		if d.Sequence > e.seq {
			e.seq = d.Sequence
		}
	}
}

func (e *Engine) restoreCaches(data store.SnapshotData) {
	if len(data.Path) > 0 {
		var path strategy.AdaptivePath
		if json.Unmarshal(data.Path, &path) == nil {
			e.path = &path
		}
	}
	if len(data.Analysis) > 0 {
		var analysis analytics.PerformanceAnalysis
		if json.Unmarshal(data.Analysis, &analysis) == nil {
			e.analysis = &analysis
		}
	}
	if len(data.Predictions) > 0 {
		var signals []analytics.Signal
		if json.Unmarshal(data.Predictions, &signals) == nil {
			e.signals = signals
		}
	}
}

// invalidate drops the derived artifacts so the next query recomputes.
func (e *Engine) invalidate() {
	e.path = nil
	e.analysis = nil
	e.signals = nil
}

// Flush writes a snapshot of the current model. A no-op without repos
// or before Initialize.
func (e *Engine) Flush(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.saveSnapshot(ctx)
}

// saveSnapshot persists the profile and the current derived artifacts,
// then prunes old snapshots. Caller holds e.mu.
func (e *Engine) saveSnapshot(ctx context.Context) error {
	if e.snapshots == nil || e.state == nil {
		return nil
	}

	data := store.SnapshotData{Version: store.SnapshotVersion}
	if raw, err := json.Marshal(e.state.Profile()); err == nil {
		data.Profile = raw
	}
	if e.path != nil {
		if raw, err := json.Marshal(e.path); err == nil {
			data.Path = raw
		}
	}
	if e.analysis != nil {
		if raw, err := json.Marshal(e.analysis); err == nil {
			data.Analysis = raw
		}
	}
	if len(e.signals) > 0 {
		if raw, err := json.Marshal(e.signals); err == nil {
			data.Predictions = raw
		}
	}

	snap := &store.Snapshot{
		UserID:    e.userID,
		Sequence:  e.seq,
		Timestamp: e.now(),
		Data:      data,
	}
	if err := e.snapshots.Save(ctx, snap); err != nil {
		return err
	}
	return e.snapshots.Prune(ctx, e.userID, e.cfg.Store.SnapshotKeep)
}

// Reset wipes the user's model: persisted events, snapshots, and the
// in-memory state. The engine stays initialized with a fresh profile.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return nil
	}
	if e.events != nil {
		if err := e.events.DeleteUser(ctx, e.userID); err != nil {
			return err
		}
	}
	if e.snapshots != nil {
		if err := e.snapshots.DeleteUser(ctx, e.userID); err != nil {
			return err
		}
	}

	e.seq = 0
	e.sessionID = ""
	e.state = learner.NewState(e.userID, e.cfg.Learner, e.cfg.Store.MaxLessonEvents, e.cfg.Store.MaxSessionEvents)
	e.modeling = modeling.NewService(e.state, e.cfg)
	e.strategy = strategy.NewService(e.state, e.reg, e.cfg)
	e.invalidate()
	return nil
}

// Subscribe registers a listener for profile changes and returns its
// unsubscribe function. Must be called after Initialize.
func (e *Engine) Subscribe(l learner.Listener) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return func() {}
	}
	return e.state.Subscribe(l)
}

func lessonEventFromData(d store.LessonEventData) learner.LessonEvent {
	return learner.LessonEvent{
		Type:          learner.EventType(d.EventType),
		UserID:        d.UserID,
		CourseID:      d.CourseID,
		LessonID:      d.LessonID,
		ModuleIndex:   d.ModuleIndex,
		Timestamp:     d.Timestamp,
		TimeSpentSecs: d.TimeSpentSecs,
		QuizScore:     d.QuizScore,
		QuizAttempt:   d.QuizAttempt,
		Difficulty:    catalog.Difficulty(d.Difficulty),
		TopicID:       d.TopicID,
	}
}

func sessionEventFromData(d store.SessionEventData) learner.SessionEvent {
	return learner.SessionEvent{
		Action:       learner.SessionAction(d.Action),
		UserID:       d.UserID,
		SessionID:    d.SessionID,
		Timestamp:    d.Timestamp,
		DurationSecs: d.DurationSecs,
		EventCount:   d.EventCount,
	}
}
