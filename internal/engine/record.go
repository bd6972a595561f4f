package engine

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/abhisek/adaptiq/internal/learner"
	"github.com/abhisek/adaptiq/internal/store"
)

// ErrNotInitialized is returned when an event is recorded before
// Initialize has loaded a user.
var ErrNotInitialized = errors.New("engine: not initialized")

// RecordLessonStart marks a lesson as opened. Starting counts as
// activity for the learning streak.
func (e *Engine) RecordLessonStart(ctx context.Context, courseID, lessonID string) error {
	return e.record(ctx, learner.EventLessonStart, courseID, lessonID, 0, 0, 0)
}

// RecordLessonComplete marks a lesson as finished with the time spent
// on it.
func (e *Engine) RecordLessonComplete(ctx context.Context, courseID, lessonID string, timeSpentSecs int) error {
	return e.record(ctx, learner.EventLessonComplete, courseID, lessonID, timeSpentSecs, 0, 0)
}

// RecordQuizSubmit records a first quiz attempt with its percentage
// score.
func (e *Engine) RecordQuizSubmit(ctx context.Context, courseID, lessonID string, score float64) error {
	return e.record(ctx, learner.EventQuizSubmit, courseID, lessonID, 0, score, 1)
}

// RecordQuizRetake records a repeat quiz attempt. Retakes do not feed
// the quiz averages.
func (e *Engine) RecordQuizRetake(ctx context.Context, courseID, lessonID string, score float64, attempt int) error {
	return e.record(ctx, learner.EventQuizRetake, courseID, lessonID, 0, score, attempt)
}

// RecordNoteTaken records that the learner took a note on a lesson.
func (e *Engine) RecordNoteTaken(ctx context.Context, courseID, lessonID string) error {
	return e.record(ctx, learner.EventNoteTaken, courseID, lessonID, 0, 0, 0)
}

// RecordLessonRevisit records a return to previously completed
// material.
func (e *Engine) RecordLessonRevisit(ctx context.Context, courseID, lessonID string) error {
	return e.record(ctx, learner.EventLessonRevisit, courseID, lessonID, 0, 0, 0)
}

// record applies an event to the in-memory model and appends it to the
// event log. The model update always happens; only persistence can
// fail.
func (e *Engine) record(ctx context.Context, typ learner.EventType, courseID, lessonID string, timeSpentSecs int, score float64, attempt int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return ErrNotInitialized
	}

	ev := learner.LessonEvent{
		Type:          typ,
		UserID:        e.userID,
		CourseID:      courseID,
		LessonID:      lessonID,
		Timestamp:     e.now(),
		TimeSpentSecs: timeSpentSecs,
		QuizScore:     score,
		QuizAttempt:   attempt,
	}
	if meta, ok := e.reg.Lookup(lessonID); ok {
		ev.ModuleIndex = meta.ModuleIndex
		ev.Difficulty = meta.Difficulty
		ev.TopicID = meta.TopicID
	}

	e.modeling.ProcessLessonEvent(ev)
	e.sessionCount++
	e.invalidate()

	if e.events == nil {
		return nil
	}
	seq, err := e.events.AppendLessonEvent(ctx, store.LessonEventData{
		UserID:        ev.UserID,
		EventType:     string(ev.Type),
		CourseID:      ev.CourseID,
		LessonID:      ev.LessonID,
		ModuleIndex:   ev.ModuleIndex,
		Timestamp:     ev.Timestamp,
		TimeSpentSecs: ev.TimeSpentSecs,
		QuizScore:     ev.QuizScore,
		QuizAttempt:   ev.QuizAttempt,
		Difficulty:    string(ev.Difficulty),
		TopicID:       ev.TopicID,
	})
	if err != nil {
		return err
	}
	e.seq = seq
	return nil
}

// StartSession opens a new learning session and returns its id.
func (e *Engine) StartSession(ctx context.Context) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return "", ErrNotInitialized
	}

	now := e.now()
	e.sessionID = uuid.NewString()
	e.sessionStart = now
	e.sessionCount = 0

	count := e.state.Profile().SessionCount + 1
	e.state.UpdateProfile(learner.ProfilePatch{SessionCount: &count})
	e.state.MarkActive(now)

	ev := learner.SessionEvent{
		Action:    learner.SessionStart,
		UserID:    e.userID,
		SessionID: e.sessionID,
		Timestamp: now,
	}
	e.state.RecordSession(ev)
	return e.sessionID, e.appendSession(ctx, ev)
}

// EndSession closes the current session, recording its duration and
// event count, then snapshots the model and prunes old history. A
// no-op when no session is open.
func (e *Engine) EndSession(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return ErrNotInitialized
	}
	if e.sessionID == "" {
		return nil
	}

	now := e.now()
	ev := learner.SessionEvent{
		Action:       learner.SessionEnd,
		UserID:       e.userID,
		SessionID:    e.sessionID,
		Timestamp:    now,
		DurationSecs: int(now.Sub(e.sessionStart).Seconds()),
		EventCount:   e.sessionCount,
	}
	e.sessionID = ""
	e.state.RecordSession(ev)

	if err := e.appendSession(ctx, ev); err != nil {
		return err
	}
	if e.events != nil {
		if err := e.events.PruneLessonEvents(ctx, e.userID, e.cfg.Store.MaxLessonEvents); err != nil {
			return err
		}
		if err := e.events.PruneSessionEvents(ctx, e.userID, e.cfg.Store.MaxSessionEvents); err != nil {
			return err
		}
	}
	return e.saveSnapshot(ctx)
}

func (e *Engine) appendSession(ctx context.Context, ev learner.SessionEvent) error {
	if e.events == nil {
		return nil
	}
	seq, err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
		UserID:       ev.UserID,
		SessionID:    ev.SessionID,
		Action:       string(ev.Action),
		Timestamp:    ev.Timestamp,
		DurationSecs: ev.DurationSecs,
		EventCount:   ev.EventCount,
	})
	if err != nil {
		return err
	}
	e.seq = seq
	return nil
}
