package strategy

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/config"
	"github.com/abhisek/adaptiq/internal/learner"
)

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	c, err := catalog.DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	return catalog.BuildRegistry(c)
}

func newTestService(t *testing.T) (*Service, *learner.State) {
	t.Helper()
	state := learner.NewState("u1", config.DefaultConfig().Learner, 500, 100)
	return NewService(state, testRegistry(t), config.DefaultConfig()), state
}

func day(d int) time.Time {
	return time.Date(2026, 5, d, 12, 0, 0, 0, time.UTC)
}

func complete(state *learner.State, courseID, lessonID string, d int) {
	state.RecordEvent(learner.LessonEvent{
		Type:      learner.EventLessonComplete,
		CourseID:  courseID,
		LessonID:  lessonID,
		Timestamp: day(d),
	})
}

func TestNextLessonForFreshLearner(t *testing.T) {
	s, _ := newTestService(t)

	rec := s.NextLesson()
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	// First lesson of the easiest unlocked course.
	if rec.LessonID != "ai-101" {
		t.Errorf("lesson = %s, want ai-101", rec.LessonID)
	}
	if rec.Type != RecNext || rec.Priority != PriorityHigh {
		t.Errorf("unexpected rec: %+v", rec)
	}
}

func TestNextLessonContinuesCurrentCourse(t *testing.T) {
	s, state := newTestService(t)

	complete(state, "intro-to-ai", "ai-101", 1)
	rec := s.NextLesson()
	if rec == nil || rec.LessonID != "ai-102" {
		t.Fatalf("rec = %+v, want ai-102", rec)
	}
	if !strings.Contains(rec.Reason, "Continue") {
		t.Errorf("reason = %q", rec.Reason)
	}
}

func TestNextLessonSkipsLockedCourses(t *testing.T) {
	s, state := newTestService(t)

	// Finish intro-to-ai entirely.
	for _, id := range []string{"ai-101", "ai-102", "ai-103", "ai-201", "ai-202", "ai-203"} {
		complete(state, "intro-to-ai", id, 1)
	}

	rec := s.NextLesson()
	if rec == nil {
		t.Fatal("expected a recommendation")
	}
	// prompt-engineering is the only remaining beginner course with its
	// prerequisites done; the intermediate tiers are gated on readiness.
	if rec.CourseID != "prompt-engineering" {
		t.Errorf("course = %s, want prompt-engineering", rec.CourseID)
	}
}

func TestNextLessonUnlocksIntermediateWhenReady(t *testing.T) {
	s, state := newTestService(t)

	// Complete both beginner courses.
	for _, id := range []string{"ai-101", "ai-102", "ai-103", "ai-201", "ai-202", "ai-203"} {
		complete(state, "intro-to-ai", id, 1)
	}
	for _, id := range []string{"pe-101", "pe-102", "pe-201", "pe-202"} {
		complete(state, "prompt-engineering", id, 1)
	}

	// Not yet ready: a fresh profile fails the intermediate gates.
	if rec := s.NextLesson(); rec != nil {
		t.Fatalf("expected nil while gated, got %+v", rec)
	}

	overall, lessons, quizzes, avg := 45, 10, 2, 75.0
	state.UpdateProfile(learner.ProfilePatch{
		OverallScore:          &overall,
		TotalLessonsCompleted: &lessons,
		TotalQuizzesTaken:     &quizzes,
		AverageQuizScore:      &avg,
	})

	rec := s.NextLesson()
	if rec == nil || rec.CourseID != "machine-learning-basics" {
		t.Fatalf("rec = %+v, want machine-learning-basics", rec)
	}
	if rec.LessonID != "ml-101" {
		t.Errorf("lesson = %s, want ml-101", rec.LessonID)
	}
}

func TestReinforcementTargetsWeakestTopics(t *testing.T) {
	s, state := newTestService(t)

	score1, score2, lessons := 30, 45, 2
	state.UpdateTopic("machine-learning", learner.TopicPatch{
		Name: strPtr("Machine Learning"), Score: &score1, LessonsCompleted: &lessons,
	}, day(1))
	state.UpdateTopic("nlp", learner.TopicPatch{
		Name: strPtr("NLP"), Score: &score2, LessonsCompleted: &lessons,
	}, day(1))

	out := s.ReinforcementLessons()
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3 (capped)", len(out))
	}
	// Weakest topic first: machine-learning at 30.
	if out[0].CourseID != "machine-learning-basics" {
		t.Errorf("first rec course = %s", out[0].CourseID)
	}
	if out[0].Type != RecReinforcement {
		t.Errorf("type = %s", out[0].Type)
	}
}

func TestReinforcementCapIsConfigurable(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Strategy.MaxReinforcement = 1
	state := learner.NewState("u1", cfg.Learner, 500, 100)
	s := NewService(state, testRegistry(t), cfg)

	score1, score2, lessons := 30, 45, 2
	state.UpdateTopic("machine-learning", learner.TopicPatch{
		Name: strPtr("Machine Learning"), Score: &score1, LessonsCompleted: &lessons,
	}, day(1))
	state.UpdateTopic("nlp", learner.TopicPatch{
		Name: strPtr("NLP"), Score: &score2, LessonsCompleted: &lessons,
	}, day(1))

	out := s.ReinforcementLessons()
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].CourseID != "machine-learning-basics" {
		t.Errorf("rec course = %s, want the weakest topic's course", out[0].CourseID)
	}
}

func TestPracticeRetakesLowScores(t *testing.T) {
	s, state := newTestService(t)

	state.RecordEvent(learner.LessonEvent{
		Type: learner.EventQuizSubmit, CourseID: "intro-to-ai", LessonID: "ai-103",
		QuizScore: 60, Timestamp: day(1),
	})
	state.RecordEvent(learner.LessonEvent{
		Type: learner.EventQuizSubmit, CourseID: "prompt-engineering", LessonID: "pe-202",
		QuizScore: 95, Timestamp: day(2),
	})

	out := s.PracticeActivities()
	if len(out) == 0 {
		t.Fatal("expected practice recommendations")
	}
	if out[0].LessonID != "ai-103" || out[0].Type != RecPractice {
		t.Errorf("first rec = %+v", out[0])
	}
	for _, rec := range out {
		if rec.LessonID == "pe-202" {
			t.Error("high-scoring quiz should not be retaken")
		}
	}
}

func TestPracticeSuggestsUnattemptedQuizzes(t *testing.T) {
	s, state := newTestService(t)

	lessons := 3
	state.UpdateTopic("ai-foundations", learner.TopicPatch{
		Name: strPtr("AI Foundations"), LessonsCompleted: &lessons,
	}, day(1))

	out := s.PracticeActivities()
	if len(out) == 0 {
		t.Fatal("expected practice recommendations")
	}
	if out[0].LessonID != "ai-103" {
		t.Errorf("rec = %+v, want the ai-103 quiz", out[0])
	}
	if out[0].Priority != PriorityMedium {
		t.Errorf("priority = %s, want medium", out[0].Priority)
	}
}

func TestAdvancedSuggestionsForStrongTopics(t *testing.T) {
	s, state := newTestService(t)

	level := learner.KnowledgeIntermediate
	state.UpdateProfile(learner.ProfilePatch{KnowledgeLevel: &level})
	score, lessons := 85, 6
	state.UpdateTopic("machine-learning", learner.TopicPatch{
		Name: strPtr("Machine Learning"), Score: &score, LessonsCompleted: &lessons,
	}, day(1))

	out := s.AdvancedSuggestions()
	if len(out) == 0 {
		t.Fatal("expected advanced suggestions")
	}
	// Both advanced courses list machine-learning-basics as a prereq.
	for _, rec := range out {
		if rec.Difficulty == catalog.Beginner {
			t.Errorf("advanced rec at beginner difficulty: %+v", rec)
		}
		if rec.Type != RecAdvanced {
			t.Errorf("type = %s", rec.Type)
		}
	}
}

func TestAdvancedSuggestionsEmptyForBeginners(t *testing.T) {
	s, state := newTestService(t)

	score, lessons := 85, 6
	state.UpdateTopic("machine-learning", learner.TopicPatch{
		Score: &score, LessonsCompleted: &lessons,
	}, day(1))

	if out := s.AdvancedSuggestions(); out != nil {
		t.Errorf("beginners should get no advanced suggestions: %+v", out)
	}
}

func TestShouldTriggerReview(t *testing.T) {
	s, state := newTestService(t)

	score := 55
	state.UpdateTopic("nlp", learner.TopicPatch{Score: &score}, day(1))

	if s.ShouldTriggerReview("nlp", day(3)) {
		t.Error("recently accessed topic should not need review")
	}
	if !s.ShouldTriggerReview("nlp", day(10)) {
		t.Error("stale low-scoring topic should need review")
	}

	// High-scoring topics never go stale.
	score = 90
	state.UpdateTopic("nlp", learner.TopicPatch{Score: &score}, day(1))
	if s.ShouldTriggerReview("nlp", day(20)) {
		t.Error("stale but mastered topic should not need review")
	}

	// A sharp drop across the last two quizzes triggers regardless.
	state.UpdateTopic("nlp", learner.TopicPatch{QuizScores: []float64{90, 70}}, day(20))
	if !s.ShouldTriggerReview("nlp", day(20)) {
		t.Error("quiz regression should trigger review")
	}

	if s.ShouldTriggerReview("unknown", day(20)) {
		t.Error("unknown topic should not trigger review")
	}
}

func TestOptimalSessionLength(t *testing.T) {
	tests := []struct {
		speed learner.LearningSpeed
		risk  learner.EngagementRisk
		want  int
	}{
		{learner.SpeedModerate, learner.RiskLow, 30},
		{learner.SpeedFast, learner.RiskLow, 45},
		{learner.SpeedSlow, learner.RiskLow, 20},
		{learner.SpeedFast, learner.RiskHigh, 20},
		{learner.SpeedModerate, learner.RiskCritical, 20},
	}

	for _, tt := range tests {
		s, state := newTestService(t)
		speed, risk := tt.speed, tt.risk
		state.UpdateProfile(learner.ProfilePatch{LearningSpeed: &speed, EngagementRisk: &risk})
		if got := s.OptimalSessionLength(); got != tt.want {
			t.Errorf("(%s, %s) = %d, want %d", tt.speed, tt.risk, got, tt.want)
		}
	}
}

func strPtr(s string) *string { return &s }
