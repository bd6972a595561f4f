package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEventRepo(t *testing.T, s *Store) EventRepo {
	t.Helper()
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "alice")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		UserID:    "alice",
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "alice")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("data.version = %d, want 1", snap.Data.Version)
	}
}

func TestSnapshotLatestIsUserScoped(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	users := []struct {
		id  string
		seq int64
	}{
		{"alice", 10},
		{"bob", 20},
	}
	for i, u := range users {
		err := repo.Save(ctx, &Snapshot{
			UserID:    u.id,
			Sequence:  u.seq,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %s: %v", u.id, err)
		}
	}

	snap, err := repo.Latest(ctx, "alice")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 10 {
		t.Errorf("alice sequence = %d, want 10", snap.Sequence)
	}

	snap, err = repo.Latest(ctx, "carol")
	if err != nil {
		t.Fatalf("latest (no data): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot for user with no data")
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "alice",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "alice", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().ProfileSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx, "alice")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			UserID:    "alice",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, "alice", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().ProfileSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLessonEventAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		seq, err := repo.AppendLessonEvent(ctx, LessonEventData{
			UserID:    "alice",
			EventType: "lesson_complete",
			CourseID:  "intro-to-ai",
			LessonID:  "ai-101",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			TopicID:   "ai-foundations",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if seq != int64(i+1) {
			t.Errorf("append %d returned seq %d, want %d", i, seq, i+1)
		}
	}

	events, err := repo.RecentLessonEvents(ctx, "alice", 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	// Oldest first within the window, so the last entry is the newest.
	if got, want := events[2].Timestamp, base.Add(4*time.Minute); !got.Equal(want) {
		t.Errorf("newest timestamp = %v, want %v", got, want)
	}
	if events[0].Timestamp.After(events[1].Timestamp) {
		t.Error("events not in ascending order")
	}
	// Reads report the sequence assigned at append time.
	for i, ev := range events {
		if got, want := ev.Sequence, int64(i+3); got != want {
			t.Errorf("events[%d].Sequence = %d, want %d", i, got, want)
		}
	}
}

func TestRecentLessonEventsIsUserScoped(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	for _, user := range []string{"alice", "bob", "alice"} {
		_, err := repo.AppendLessonEvent(ctx, LessonEventData{
			UserID:    user,
			EventType: "lesson_start",
			CourseID:  "intro-to-ai",
			LessonID:  "ai-101",
			Timestamp: time.Now(),
		})
		if err != nil {
			t.Fatalf("append for %s: %v", user, err)
		}
	}

	events, err := repo.RecentLessonEvents(ctx, "alice", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("alice events = %d, want 2", len(events))
	}
}

func TestPruneLessonEvents(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 8; i++ {
		_, err := repo.AppendLessonEvent(ctx, LessonEventData{
			UserID:    "alice",
			EventType: "lesson_start",
			CourseID:  "intro-to-ai",
			LessonID:  "ai-101",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	if err := repo.PruneLessonEvents(ctx, "alice", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	events, err := repo.RecentLessonEvents(ctx, "alice", 100)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 5 {
		t.Fatalf("remaining events = %d, want 5", len(events))
	}
	// The oldest survivors are the 4th onward.
	if got, want := events[0].Timestamp, base.Add(3*time.Minute); !got.Equal(want) {
		t.Errorf("oldest survivor = %v, want %v", got, want)
	}
}

func TestSessionEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	_, err := repo.AppendSessionEvent(ctx, SessionEventData{
		UserID:       "alice",
		SessionID:    "s-1",
		Action:       "session_end",
		Timestamp:    time.Now(),
		DurationSecs: 1200,
		EventCount:   7,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.RecentSessionEvents(ctx, "alice", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].DurationSecs != 1200 || events[0].EventCount != 7 {
		t.Errorf("got %+v, want duration 1200 and count 7", events[0])
	}
}

func TestDeleteUser(t *testing.T) {
	s := openTestStore(t)
	events := testEventRepo(t, s)
	snaps := s.SnapshotRepo()
	ctx := context.Background()

	for _, user := range []string{"alice", "bob"} {
		_, err := events.AppendLessonEvent(ctx, LessonEventData{
			UserID:    user,
			EventType: "lesson_start",
			CourseID:  "intro-to-ai",
			LessonID:  "ai-101",
			Timestamp: time.Now(),
		})
		if err != nil {
			t.Fatalf("append for %s: %v", user, err)
		}
		err = snaps.Save(ctx, &Snapshot{
			UserID:    user,
			Timestamp: time.Now(),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save for %s: %v", user, err)
		}
	}

	if err := events.DeleteUser(ctx, "alice"); err != nil {
		t.Fatalf("delete events: %v", err)
	}
	if err := snaps.DeleteUser(ctx, "alice"); err != nil {
		t.Fatalf("delete snapshots: %v", err)
	}

	got, err := events.RecentLessonEvents(ctx, "alice", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("alice events after delete = %d, want 0", len(got))
	}

	snap, err := snaps.Latest(ctx, "bob")
	if err != nil {
		t.Fatalf("latest bob: %v", err)
	}
	if snap == nil {
		t.Error("bob's snapshot should survive alice's delete")
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='profile_snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "profile_snapshots" {
		t.Errorf("table name = %q, want 'profile_snapshots'", name)
	}
}
