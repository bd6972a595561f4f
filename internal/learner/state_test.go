package learner

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/config"
)

func ts(day int) time.Time {
	return time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC)
}

func newTestState(maxEvents, maxSessions int) *State {
	return NewState("u1", config.DefaultConfig().Learner, maxEvents, maxSessions)
}

func TestRecordEventFIFOCap(t *testing.T) {
	s := newTestState(3, 2)

	for i := 0; i < 5; i++ {
		s.RecordEvent(LessonEvent{
			Type:      EventLessonStart,
			LessonID:  string(rune('a' + i)),
			Timestamp: ts(1).Add(time.Duration(i) * time.Minute),
		})
	}

	events := s.Events(Filter{})
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}
	// Oldest dropped first.
	if events[0].LessonID != "c" || events[2].LessonID != "e" {
		t.Errorf("unexpected window: %v", events)
	}

	for i := 0; i < 4; i++ {
		s.RecordSession(SessionEvent{Action: SessionStart, SessionID: string(rune('a' + i))})
	}
	if got := len(s.Sessions()); got != 2 {
		t.Errorf("len(sessions) = %d, want 2", got)
	}
}

func TestEventsFilterANDSemantics(t *testing.T) {
	s := newTestState(100, 10)
	s.RecordEvent(LessonEvent{Type: EventLessonComplete, CourseID: "c1", LessonID: "l1", Timestamp: ts(1)})
	s.RecordEvent(LessonEvent{Type: EventQuizSubmit, CourseID: "c1", LessonID: "l1", Timestamp: ts(2)})
	s.RecordEvent(LessonEvent{Type: EventLessonComplete, CourseID: "c2", LessonID: "l2", Timestamp: ts(3)})

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 3},
		{"by type", Filter{Type: EventLessonComplete}, 2},
		{"by course", Filter{CourseID: "c1"}, 2},
		{"type and course", Filter{Type: EventLessonComplete, CourseID: "c1"}, 1},
		{"since", Filter{Since: ts(2)}, 2},
		{"no match", Filter{CourseID: "c3"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(s.Events(tt.filter)); got != tt.want {
				t.Errorf("len = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUpdateProfileMergePatch(t *testing.T) {
	s := newTestState(10, 10)

	lessons := 4
	avg := 82.5
	s.UpdateProfile(ProfilePatch{
		TotalLessonsCompleted: &lessons,
		AverageQuizScore:      &avg,
	})

	p := s.Profile()
	if p.TotalLessonsCompleted != 4 || p.AverageQuizScore != 82.5 {
		t.Errorf("patched fields not applied: %+v", p)
	}
	// Untouched fields retain defaults.
	if p.KnowledgeLevel != KnowledgeBeginner || p.RecommendedDifficulty != catalog.Beginner {
		t.Errorf("unpatched fields changed: %+v", p)
	}

	level := KnowledgeIntermediate
	s.UpdateProfile(ProfilePatch{KnowledgeLevel: &level})
	p = s.Profile()
	if p.KnowledgeLevel != KnowledgeIntermediate {
		t.Error("second patch not applied")
	}
	if p.TotalLessonsCompleted != 4 {
		t.Error("second patch clobbered earlier field")
	}
}

func TestUpdateTopicCreatesAndRefreshes(t *testing.T) {
	s := newTestState(10, 10)

	score := 55
	s.UpdateTopic("nlp", TopicPatch{Score: &score}, ts(5))

	tp := s.Profile().Topic("nlp")
	if tp == nil {
		t.Fatal("topic not created")
	}
	if tp.Score != 55 || !tp.LastAccessed.Equal(ts(5)) {
		t.Errorf("unexpected topic: %+v", tp)
	}

	// Empty patch still refreshes LastAccessed.
	s.UpdateTopic("nlp", TopicPatch{}, ts(8))
	if got := s.Profile().Topic("nlp").LastAccessed; !got.Equal(ts(8)) {
		t.Errorf("LastAccessed = %v, want %v", got, ts(8))
	}
}

func TestStrengthsWeaknesses(t *testing.T) {
	s := newTestState(10, 10)

	set := func(topic string, score, lessons int) {
		s.UpdateTopic(topic, TopicPatch{Score: &score, LessonsCompleted: &lessons}, ts(1))
	}
	set("strong-a", 90, 3)
	set("strong-b", 75, 2)
	set("middling", 60, 2)
	set("weak-a", 30, 1)
	set("weak-b", 20, 2)
	set("untouched", 10, 0) // no completions, never a weakness

	p := s.Profile()
	if !reflect.DeepEqual(p.Strengths, []string{"strong-a", "strong-b"}) {
		t.Errorf("strengths = %v", p.Strengths)
	}
	if !reflect.DeepEqual(p.Weaknesses, []string{"weak-b", "weak-a"}) {
		t.Errorf("weaknesses = %v", p.Weaknesses)
	}
}

func TestStrengthsCappedAtFive(t *testing.T) {
	s := newTestState(10, 10)
	for i := 0; i < 7; i++ {
		score := 80 + i
		lessons := 1
		s.UpdateTopic(string(rune('a'+i)), TopicPatch{Score: &score, LessonsCompleted: &lessons}, ts(1))
	}
	if got := len(s.Profile().Strengths); got != 5 {
		t.Errorf("len(strengths) = %d, want 5", got)
	}
	// Highest score first.
	if s.Profile().Strengths[0] != "g" {
		t.Errorf("strengths[0] = %q, want g", s.Profile().Strengths[0])
	}
}

func TestHighlightThresholdsConfigurable(t *testing.T) {
	cfg := config.LearnerConfig{StrengthScoreMin: 90, WeaknessScoreMax: 40, MaxHighlights: 2}
	s := NewState("u1", cfg, 10, 10)

	set := func(topic string, score, lessons int) {
		s.UpdateTopic(topic, TopicPatch{Score: &score, LessonsCompleted: &lessons}, ts(1))
	}
	set("a", 95, 1)
	set("b", 92, 1)
	set("c", 91, 1) // over MaxHighlights, dropped
	set("d", 75, 1) // strength under defaults, not here
	set("e", 35, 1)

	p := s.Profile()
	if !reflect.DeepEqual(p.Strengths, []string{"a", "b"}) {
		t.Errorf("strengths = %v", p.Strengths)
	}
	if !reflect.DeepEqual(p.Weaknesses, []string{"e"}) {
		t.Errorf("weaknesses = %v", p.Weaknesses)
	}
}

func TestMarkActiveStreak(t *testing.T) {
	s := newTestState(10, 10)

	s.MarkActive(ts(1))
	if got := s.Profile().CurrentStreak; got != 1 {
		t.Fatalf("first day streak = %d, want 1", got)
	}

	// Same day is a no-op.
	s.MarkActive(ts(1).Add(5 * time.Hour))
	if got := s.Profile().CurrentStreak; got != 1 {
		t.Errorf("same-day streak = %d, want 1", got)
	}

	// Consecutive days extend.
	s.MarkActive(ts(2))
	s.MarkActive(ts(3))
	if got := s.Profile().CurrentStreak; got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}

	// A gap resets, with the return day counting.
	s.MarkActive(ts(7))
	if got := s.Profile().CurrentStreak; got != 1 {
		t.Errorf("post-gap streak = %d, want 1", got)
	}
	if got := s.Profile().LastActiveDate; got != "2026-03-07" {
		t.Errorf("LastActiveDate = %q", got)
	}
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	s := newTestState(10, 10)

	calls := 0
	unsubscribe := s.Subscribe(func(p *Profile) { calls++ })

	s.RecordEvent(LessonEvent{Type: EventLessonStart, Timestamp: ts(1)})
	lessons := 1
	s.UpdateProfile(ProfilePatch{TotalLessonsCompleted: &lessons})
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}

	unsubscribe()
	s.RecordEvent(LessonEvent{Type: EventLessonStart, Timestamp: ts(2)})
	if calls != 2 {
		t.Errorf("calls after unsubscribe = %d, want 2", calls)
	}
}

func TestProfileJSONRoundTrip(t *testing.T) {
	p := NewProfile("u1")
	p.OverallScore = 42
	p.AverageQuizScore = 77.5
	p.Topics["nlp"] = &TopicProficiency{
		TopicID:    "nlp",
		Name:       "Natural Language Processing",
		Score:      61,
		QuizScores: []float64{70, 53},
	}

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Profile
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.OverallScore != 42 || got.AverageQuizScore != 77.5 {
		t.Errorf("scalar fields lost: %+v", got)
	}
	tp := got.Topic("nlp")
	if tp == nil || tp.Score != 61 || !reflect.DeepEqual(tp.QuizScores, []float64{70, 53}) {
		t.Errorf("topic lost: %+v", tp)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := NewProfile("u1")
	p.Topics["a"] = &TopicProficiency{TopicID: "a", Score: 50, QuizScores: []float64{50}}
	p.Strengths = []string{"a"}

	cp := p.Clone()
	cp.Topics["a"].Score = 99
	cp.Topics["a"].QuizScores[0] = 99
	cp.Strengths[0] = "z"

	if p.Topics["a"].Score != 50 || p.Topics["a"].QuizScores[0] != 50 {
		t.Error("clone shares topic state")
	}
	if p.Strengths[0] != "a" {
		t.Error("clone shares strengths slice")
	}
}
