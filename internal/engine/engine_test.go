package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/learner"
	"github.com/abhisek/adaptiq/internal/store"
)

// memEventRepo is an in-memory EventRepo for tests. Sequences are
// assigned from a single counter shared across both event kinds, same
// as the sqlite repo.
type memEventRepo struct {
	seq      int64
	lessons  []store.LessonEventData
	sessions []store.SessionEventData
}

func (m *memEventRepo) AppendLessonEvent(_ context.Context, data store.LessonEventData) (int64, error) {
	m.seq++
	data.Sequence = m.seq
	m.lessons = append(m.lessons, data)
	return m.seq, nil
}

func (m *memEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) (int64, error) {
	m.seq++
	data.Sequence = m.seq
	m.sessions = append(m.sessions, data)
	return m.seq, nil
}

func (m *memEventRepo) RecentLessonEvents(_ context.Context, userID string, limit int) ([]store.LessonEventData, error) {
	var out []store.LessonEventData
	for _, d := range m.lessons {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (m *memEventRepo) RecentSessionEvents(_ context.Context, userID string, limit int) ([]store.SessionEventData, error) {
	var out []store.SessionEventData
	for _, d := range m.sessions {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (m *memEventRepo) PruneLessonEvents(context.Context, string, int) error  { return nil }
func (m *memEventRepo) PruneSessionEvents(context.Context, string, int) error { return nil }

func (m *memEventRepo) DeleteUser(_ context.Context, userID string) error {
	var lessons []store.LessonEventData
	for _, d := range m.lessons {
		if d.UserID != userID {
			lessons = append(lessons, d)
		}
	}
	m.lessons = lessons
	var sessions []store.SessionEventData
	for _, d := range m.sessions {
		if d.UserID != userID {
			sessions = append(sessions, d)
		}
	}
	m.sessions = sessions
	return nil
}

// memSnapshotRepo is an in-memory SnapshotRepo for tests.
type memSnapshotRepo struct {
	snaps []*store.Snapshot
}

func (m *memSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snaps = append(m.snaps, snap)
	return nil
}

func (m *memSnapshotRepo) Latest(_ context.Context, userID string) (*store.Snapshot, error) {
	for i := len(m.snaps) - 1; i >= 0; i-- {
		if m.snaps[i].UserID == userID {
			return m.snaps[i], nil
		}
	}
	return nil, nil
}

func (m *memSnapshotRepo) Prune(context.Context, string, int) error { return nil }

func (m *memSnapshotRepo) DeleteUser(_ context.Context, userID string) error {
	var snaps []*store.Snapshot
	for _, s := range m.snaps {
		if s.UserID != userID {
			snaps = append(snaps, s)
		}
	}
	m.snaps = snaps
	return nil
}

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	c, err := catalog.DefaultCatalog()
	require.NoError(t, err)
	return catalog.BuildRegistry(c)
}

type fixture struct {
	eng    *Engine
	events *memEventRepo
	snaps  *memSnapshotRepo
	now    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		events: &memEventRepo{},
		snaps:  &memSnapshotRepo{},
		now:    time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC),
	}
	f.eng = New(testRegistry(t),
		WithRepos(f.events, f.snaps),
		WithClock(func() time.Time { return f.now }),
	)
	require.NoError(t, f.eng.Initialize(context.Background(), "alice"))
	return f
}

func TestInitializeIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.eng.RecordLessonComplete(ctx, "intro-to-ai", "ai-101", 600))
	before := f.eng.Profile()

	require.NoError(t, f.eng.Initialize(ctx, "alice"))
	after := f.eng.Profile()
	assert.Equal(t, before.TotalLessonsCompleted, after.TotalLessonsCompleted)
}

func TestRecordUpdatesProfileAndPersists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.eng.RecordLessonComplete(ctx, "intro-to-ai", "ai-101", 600))
	require.NoError(t, f.eng.RecordQuizSubmit(ctx, "intro-to-ai", "ai-103", 90))

	p := f.eng.Profile()
	assert.Equal(t, 1, p.TotalLessonsCompleted)
	assert.Equal(t, 1, p.TotalQuizzesTaken)
	assert.Equal(t, 90.0, p.AverageQuizScore)
	require.NotNil(t, p.Topic("ai-foundations"))

	require.Len(t, f.events.lessons, 2)
	assert.Equal(t, "lesson_complete", f.events.lessons[0].EventType)
	// Metadata is enriched from the registry.
	assert.Equal(t, "ai-foundations", f.events.lessons[0].TopicID)
}

func TestRecordBeforeInitialize(t *testing.T) {
	eng := New(testRegistry(t))
	err := eng.RecordLessonStart(context.Background(), "intro-to-ai", "ai-101")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestSessionLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id, err := f.eng.StartSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.NoError(t, f.eng.RecordLessonStart(ctx, "intro-to-ai", "ai-101"))
	f.now = f.now.Add(20 * time.Minute)
	require.NoError(t, f.eng.EndSession(ctx))

	require.Len(t, f.events.sessions, 2)
	end := f.events.sessions[1]
	assert.Equal(t, "session_end", end.Action)
	assert.Equal(t, id, end.SessionID)
	assert.Equal(t, 1200, end.DurationSecs)
	assert.Equal(t, 1, end.EventCount)

	// Ending a session snapshots the model.
	require.Len(t, f.snaps.snaps, 1)
	assert.Equal(t, "alice", f.snaps.snaps[0].UserID)
	assert.NotEmpty(t, f.snaps.snaps[0].Data.Profile)

	p := f.eng.Profile()
	assert.Equal(t, 1, p.SessionCount)
	assert.Equal(t, 1, p.CurrentStreak)
}

func TestStateSurvivesRestart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.eng.StartSession(ctx)
	require.NoError(t, err)
	require.NoError(t, f.eng.RecordLessonComplete(ctx, "intro-to-ai", "ai-101", 600))
	require.NoError(t, f.eng.RecordQuizSubmit(ctx, "intro-to-ai", "ai-103", 85))
	require.NoError(t, f.eng.EndSession(ctx))
	before := f.eng.Profile()

	// A fresh engine over the same repos restores the model.
	eng2 := New(testRegistry(t),
		WithRepos(f.events, f.snaps),
		WithClock(func() time.Time { return f.now }),
	)
	require.NoError(t, eng2.Initialize(ctx, "alice"))

	after := eng2.Profile()
	assert.Equal(t, before.TotalLessonsCompleted, after.TotalLessonsCompleted)
	assert.Equal(t, before.AverageQuizScore, after.AverageQuizScore)
	assert.Equal(t, before.OverallScore, after.OverallScore)
	require.NotNil(t, after.Topic("ai-foundations"))
	assert.Equal(t, before.Topic("ai-foundations").Score, after.Topic("ai-foundations").Score)

	// The event history came back too.
	assert.Len(t, eng2.Events(learner.Filter{}), 2)
}

func TestStateSurvivesRestartWithoutSessionEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// No session bracket and no explicit Flush: the process ends with
	// events persisted but no snapshot written.
	require.NoError(t, f.eng.RecordLessonComplete(ctx, "intro-to-ai", "ai-101", 600))
	require.NoError(t, f.eng.RecordQuizSubmit(ctx, "intro-to-ai", "ai-103", 85))
	before := f.eng.Profile()
	require.Empty(t, f.snaps.snaps)

	eng2 := New(testRegistry(t),
		WithRepos(f.events, f.snaps),
		WithClock(func() time.Time { return f.now }),
	)
	require.NoError(t, eng2.Initialize(ctx, "alice"))

	after := eng2.Profile()
	assert.Equal(t, 1, after.TotalLessonsCompleted)
	assert.Equal(t, 1, after.TotalQuizzesTaken)
	assert.Equal(t, before.AverageQuizScore, after.AverageQuizScore)
	assert.Equal(t, before.OverallScore, after.OverallScore)
	require.NotNil(t, after.Topic("ai-foundations"))
	assert.Equal(t, before.Topic("ai-foundations").Score, after.Topic("ai-foundations").Score)
	assert.Len(t, eng2.Events(learner.Filter{}), 2)
}

func TestRestartReplaysOnlyEventsPastSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// First run snapshots at session end, then keeps going without one.
	_, err := f.eng.StartSession(ctx)
	require.NoError(t, err)
	require.NoError(t, f.eng.RecordLessonComplete(ctx, "intro-to-ai", "ai-101", 600))
	require.NoError(t, f.eng.EndSession(ctx))
	require.NoError(t, f.eng.RecordLessonComplete(ctx, "intro-to-ai", "ai-102", 700))
	before := f.eng.Profile()

	eng2 := New(testRegistry(t),
		WithRepos(f.events, f.snaps),
		WithClock(func() time.Time { return f.now }),
	)
	require.NoError(t, eng2.Initialize(ctx, "alice"))

	after := eng2.Profile()
	assert.Equal(t, 2, after.TotalLessonsCompleted)
	assert.Equal(t, before.TotalTimeSpentSecs, after.TotalTimeSpentSecs)
	assert.Equal(t, before.SessionCount, after.SessionCount)
	assert.Equal(t, before.Topic("ai-foundations").Score, after.Topic("ai-foundations").Score)
}

func TestCorruptSnapshotFallsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.snaps.snaps = append(f.snaps.snaps, &store.Snapshot{
		UserID:    "bob",
		Timestamp: f.now,
		Data:      store.SnapshotData{Version: 1, Profile: []byte("{not json")},
	})

	require.NoError(t, f.eng.Initialize(ctx, "bob"))
	p := f.eng.Profile()
	assert.Equal(t, learner.KnowledgeBeginner, p.KnowledgeLevel)
	assert.Equal(t, 0, p.TotalLessonsCompleted)
}

func TestQueriesBeforeInitializeAreNeutral(t *testing.T) {
	eng := New(testRegistry(t))

	assert.Equal(t, learner.KnowledgeBeginner, eng.Profile().KnowledgeLevel)
	assert.Equal(t, 30, eng.OptimalSessionLength())
	assert.Equal(t, 50, eng.Comprehension("intro-to-ai"))
	// Readiness must not block the learner before the model is loaded.
	assert.True(t, eng.Readiness(catalog.Beginner).Ready)
	assert.True(t, eng.Readiness(catalog.Advanced).Ready)
	assert.Nil(t, eng.PredictiveSignals())
	assert.Nil(t, eng.NextLesson())
	assert.False(t, eng.ShouldTriggerReview("ai-foundations"))
}

func TestLessonMetadata(t *testing.T) {
	f := newFixture(t)

	meta, ok := f.eng.LessonMetadata("ai-101")
	require.True(t, ok)
	assert.Equal(t, "intro-to-ai", meta.CourseID)
	assert.Equal(t, "ai-foundations", meta.TopicID)

	_, ok = f.eng.LessonMetadata("no-such-lesson")
	assert.False(t, ok)
}

func TestAdaptivePathCacheInvalidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	path := f.eng.AdaptivePath()
	require.NotNil(t, path.Next)
	assert.Equal(t, "ai-101", path.Next.LessonID)
	// Cached: same pointer until an event lands.
	assert.Same(t, path, f.eng.AdaptivePath())

	require.NoError(t, f.eng.RecordLessonComplete(ctx, "intro-to-ai", "ai-101", 600))
	fresh := f.eng.AdaptivePath()
	require.NotNil(t, fresh.Next)
	assert.Equal(t, "ai-102", fresh.Next.LessonID)
}

func TestEvaluateQuiz(t *testing.T) {
	f := newFixture(t)

	questions := testRegistry(t).Questions("ai-103")
	require.NotEmpty(t, questions)

	answers := make(map[string]string)
	for _, q := range questions {
		answers[q.ID] = q.Answer
	}
	res, err := f.eng.EvaluateQuiz("ai-103", answers)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)
	assert.True(t, res.Passed)

	_, err = f.eng.EvaluateQuiz("ai-101", nil)
	assert.Error(t, err, "lesson without a quiz")
}

func TestReset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.eng.StartSession(ctx)
	require.NoError(t, err)
	require.NoError(t, f.eng.RecordLessonComplete(ctx, "intro-to-ai", "ai-101", 600))
	require.NoError(t, f.eng.EndSession(ctx))

	require.NoError(t, f.eng.Reset(ctx))

	p := f.eng.Profile()
	assert.Equal(t, 0, p.TotalLessonsCompleted)
	assert.Empty(t, f.events.lessons)
	assert.Empty(t, f.snaps.snaps)
	assert.Empty(t, f.eng.Events(learner.Filter{}))

	// The engine stays usable after a reset.
	require.NoError(t, f.eng.RecordLessonComplete(ctx, "intro-to-ai", "ai-101", 600))
	assert.Equal(t, 1, f.eng.Profile().TotalLessonsCompleted)
}

func TestSubscribe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	calls := 0
	unsubscribe := f.eng.Subscribe(func(p *learner.Profile) { calls++ })
	require.NoError(t, f.eng.RecordLessonStart(ctx, "intro-to-ai", "ai-101"))
	assert.Greater(t, calls, 0)

	seen := calls
	unsubscribe()
	require.NoError(t, f.eng.RecordLessonStart(ctx, "intro-to-ai", "ai-102"))
	assert.Equal(t, seen, calls)
}
