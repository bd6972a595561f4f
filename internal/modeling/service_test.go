package modeling

import (
	"testing"
	"time"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/config"
	"github.com/abhisek/adaptiq/internal/learner"
)

func newTestService() (*Service, *learner.State) {
	state := learner.NewState("u1", config.DefaultConfig().Learner, 500, 100)
	return NewService(state, config.DefaultConfig()), state
}

func at(day int) time.Time {
	return time.Date(2026, 4, day, 9, 0, 0, 0, time.UTC)
}

func TestFirstQuizScore(t *testing.T) {
	s, state := newTestService()

	s.ProcessLessonEvent(learner.LessonEvent{
		Type:      learner.EventQuizSubmit,
		CourseID:  "intro-to-ai",
		LessonID:  "ai-102",
		QuizScore: 100,
		Timestamp: at(1),
	})

	p := state.Profile()
	tp := p.Topic("ai-foundations")
	if tp == nil {
		t.Fatal("topic not created")
	}
	// 100*0.6 quiz + 0*0.4 volume.
	if tp.Score != 60 {
		t.Errorf("topic score = %d, want 60", tp.Score)
	}
	if p.AverageQuizScore != 100 || p.TotalQuizzesTaken != 1 {
		t.Errorf("quiz aggregates wrong: %+v", p)
	}
}

func TestLessonCompletionScore(t *testing.T) {
	s, state := newTestService()

	for i := 0; i < 5; i++ {
		s.ProcessLessonEvent(learner.LessonEvent{
			Type:          learner.EventLessonComplete,
			CourseID:      "intro-to-ai",
			LessonID:      "ai-101",
			TimeSpentSecs: 600,
			Timestamp:     at(i + 1),
		})
	}

	p := state.Profile()
	tp := p.Topic("ai-foundations")
	if tp == nil {
		t.Fatal("topic not created")
	}
	// Five completions at +5 each, no quizzes yet.
	if tp.Score != 25 {
		t.Errorf("topic score = %d, want 25", tp.Score)
	}
	if tp.LessonsCompleted != 5 || p.TotalLessonsCompleted != 5 {
		t.Errorf("completion counts wrong: topic %d, total %d", tp.LessonsCompleted, p.TotalLessonsCompleted)
	}
	if p.TotalTimeSpentSecs != 3000 {
		t.Errorf("time spent = %d, want 3000", p.TotalTimeSpentSecs)
	}
}

func TestLessonScoreCapsAt100(t *testing.T) {
	s, state := newTestService()

	for i := 0; i < 25; i++ {
		s.ProcessLessonEvent(learner.LessonEvent{
			Type:      learner.EventLessonComplete,
			CourseID:  "intro-to-ai",
			LessonID:  "ai-101",
			Timestamp: at(1),
		})
	}

	if got := state.Profile().Topic("ai-foundations").Score; got != 100 {
		t.Errorf("topic score = %d, want 100", got)
	}
}

func TestQuizBlendsWithVolume(t *testing.T) {
	s, state := newTestService()

	// Two completions then an 80% quiz:
	// 80*0.6 + min(100, 2*10)*0.4 = 48 + 8 = 56.
	for i := 0; i < 2; i++ {
		s.ProcessLessonEvent(learner.LessonEvent{
			Type:      learner.EventLessonComplete,
			CourseID:  "intro-to-ai",
			LessonID:  "ai-101",
			Timestamp: at(1),
		})
	}
	s.ProcessLessonEvent(learner.LessonEvent{
		Type:      learner.EventQuizSubmit,
		CourseID:  "intro-to-ai",
		LessonID:  "ai-102",
		QuizScore: 80,
		Timestamp: at(1),
	})

	if got := state.Profile().Topic("ai-foundations").Score; got != 56 {
		t.Errorf("topic score = %d, want 56", got)
	}
}

func TestRunningQuizAverage(t *testing.T) {
	s, state := newTestService()

	for _, score := range []float64{100, 50, 75} {
		s.ProcessLessonEvent(learner.LessonEvent{
			Type:      learner.EventQuizSubmit,
			CourseID:  "intro-to-ai",
			LessonID:  "ai-102",
			QuizScore: score,
			Timestamp: at(1),
		})
	}

	p := state.Profile()
	if p.TotalQuizzesTaken != 3 {
		t.Errorf("quizzes taken = %d, want 3", p.TotalQuizzesTaken)
	}
	if p.AverageQuizScore != 75 {
		t.Errorf("average = %f, want 75", p.AverageQuizScore)
	}
}

func TestRetakeDoesNotAffectAverages(t *testing.T) {
	s, state := newTestService()

	s.ProcessLessonEvent(learner.LessonEvent{
		Type:      learner.EventQuizSubmit,
		CourseID:  "intro-to-ai",
		LessonID:  "ai-102",
		QuizScore: 90,
		Timestamp: at(1),
	})
	s.ProcessLessonEvent(learner.LessonEvent{
		Type:        learner.EventQuizRetake,
		CourseID:    "intro-to-ai",
		LessonID:    "ai-102",
		QuizScore:   20,
		QuizAttempt: 2,
		Timestamp:   at(1),
	})

	p := state.Profile()
	if p.AverageQuizScore != 90 || p.TotalQuizzesTaken != 1 {
		t.Errorf("retake leaked into averages: %+v", p)
	}
	// The retake is still on the event log.
	if got := len(state.Events(learner.Filter{Type: learner.EventQuizRetake})); got != 1 {
		t.Errorf("retake events = %d, want 1", got)
	}
}

func TestLessonStartExtendsStreak(t *testing.T) {
	s, state := newTestService()

	s.ProcessLessonEvent(learner.LessonEvent{
		Type: learner.EventLessonStart, CourseID: "intro-to-ai", LessonID: "ai-101", Timestamp: at(1),
	})
	s.ProcessLessonEvent(learner.LessonEvent{
		Type: learner.EventLessonStart, CourseID: "intro-to-ai", LessonID: "ai-102", Timestamp: at(2),
	})

	if got := state.Profile().CurrentStreak; got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestRefreshIdempotent(t *testing.T) {
	s, state := newTestService()

	s.ProcessLessonEvent(learner.LessonEvent{
		Type:      learner.EventQuizSubmit,
		CourseID:  "intro-to-ai",
		LessonID:  "ai-102",
		QuizScore: 88,
		Timestamp: at(1),
	})

	first := state.Profile().Clone()
	s.Refresh(at(1))
	s.Refresh(at(1))
	second := state.Profile()

	if first.OverallScore != second.OverallScore ||
		first.KnowledgeLevel != second.KnowledgeLevel ||
		first.RecommendedDifficulty != second.RecommendedDifficulty ||
		first.EngagementRisk != second.EngagementRisk {
		t.Errorf("refresh not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestKnowledgeLevelProgression(t *testing.T) {
	s, state := newTestService()

	// A strong learner: high quiz scores across many completions.
	for i := 0; i < 30; i++ {
		s.ProcessLessonEvent(learner.LessonEvent{
			Type:          learner.EventLessonComplete,
			CourseID:      "intro-to-ai",
			LessonID:      "ai-101",
			TimeSpentSecs: 600,
			Timestamp:     at(1),
		})
		s.ProcessLessonEvent(learner.LessonEvent{
			Type:      learner.EventQuizSubmit,
			CourseID:  "intro-to-ai",
			LessonID:  "ai-102",
			QuizScore: 95,
			Timestamp: at(1),
		})
	}

	p := state.Profile()
	if p.KnowledgeLevel != learner.KnowledgeAdvanced {
		t.Errorf("level = %s, want advanced (overall %d)", p.KnowledgeLevel, p.OverallScore)
	}
	if p.RecommendedDifficulty != catalog.Advanced {
		t.Errorf("difficulty = %s, want advanced", p.RecommendedDifficulty)
	}
}

func TestLearningSpeed(t *testing.T) {
	tests := []struct {
		name  string
		times []int
		want  learner.LearningSpeed
	}{
		{"too few samples", []int{100, 100}, learner.SpeedModerate},
		{"fast", []int{300, 400, 500}, learner.SpeedFast},
		{"moderate", []int{900, 900, 900}, learner.SpeedModerate},
		{"slow", []int{1500, 1600, 1400}, learner.SpeedSlow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, state := newTestService()
			for _, secs := range tt.times {
				s.ProcessLessonEvent(learner.LessonEvent{
					Type:          learner.EventLessonComplete,
					CourseID:      "intro-to-ai",
					LessonID:      "ai-101",
					TimeSpentSecs: secs,
					Timestamp:     at(1),
				})
			}
			if got := state.Profile().LearningSpeed; got != tt.want {
				t.Errorf("speed = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEngagementRiskEscalation(t *testing.T) {
	s, state := newTestService()

	// Low quiz average plus long inactivity.
	s.ProcessLessonEvent(learner.LessonEvent{
		Type:      learner.EventQuizSubmit,
		CourseID:  "intro-to-ai",
		LessonID:  "ai-102",
		QuizScore: 40,
		Timestamp: at(1),
	})
	state.MarkActive(at(1))

	// Refresh as of 20 days later: 40 inactivity + 15 low quiz >= 50.
	s.Refresh(at(21))
	if got := state.Profile().EngagementRisk; got != learner.RiskCritical {
		t.Errorf("risk = %s, want critical", got)
	}

	// Resuming activity clears the inactivity points.
	state.MarkActive(at(22))
	s.Refresh(at(22))
	if got := state.Profile().EngagementRisk; got == learner.RiskCritical {
		t.Errorf("risk should drop after activity resumes, got %s", got)
	}
}

func TestRecommendedDifficultySteps(t *testing.T) {
	s, state := newTestService()

	// Intermediate learner with a failing quiz average steps down.
	p := state.Profile()
	lessons := 20
	avg := 40.0
	score := 45
	state.UpdateProfile(learner.ProfilePatch{
		TotalLessonsCompleted: &lessons,
		AverageQuizScore:      &avg,
	})
	state.UpdateTopic("ai-foundations", learner.TopicPatch{Score: &score, LessonsCompleted: &lessons}, at(1))

	s.Refresh(at(1))
	p = state.Profile()
	if p.KnowledgeLevel != learner.KnowledgeIntermediate {
		t.Fatalf("level = %s, want intermediate", p.KnowledgeLevel)
	}
	if p.RecommendedDifficulty != catalog.Beginner {
		t.Errorf("difficulty = %s, want beginner", p.RecommendedDifficulty)
	}
}

func TestTopicResolvedFromCourse(t *testing.T) {
	s, state := newTestService()

	s.ProcessLessonEvent(learner.LessonEvent{
		Type:      learner.EventLessonComplete,
		CourseID:  "unknown-course",
		LessonID:  "x-1",
		Timestamp: at(1),
	})

	if tp := state.Profile().Topic("topic-unknown-course"); tp == nil {
		t.Error("fallback topic not created")
	}
}
