package strategy

import (
	"strings"
	"testing"

	"github.com/abhisek/adaptiq/internal/learner"
)

func TestGenerateAdaptivePath(t *testing.T) {
	s, _ := newTestService(t)

	path := s.GenerateAdaptivePath()
	if path.Next == nil {
		t.Error("expected a next lesson for a fresh learner")
	}
	if !strings.Contains(path.DifficultyNote, "beginner") {
		t.Errorf("difficulty note = %q", path.DifficultyNote)
	}
	if !strings.Contains(path.Insight, "Welcome") {
		t.Errorf("insight = %q", path.Insight)
	}
}

func TestProgressInsightPriority(t *testing.T) {
	s, state := newTestService(t)

	// Re-engagement beats everything once lessons exist.
	lessons := 5
	risk := learner.RiskCritical
	state.UpdateProfile(learner.ProfilePatch{
		TotalLessonsCompleted: &lessons,
		EngagementRisk:        &risk,
	})
	if got := s.progressInsight(state.Profile()); !strings.Contains(got, "been a while") {
		t.Errorf("insight = %q", got)
	}

	// Misunderstandings outrank score praise.
	risk = learner.RiskLow
	state.UpdateProfile(learner.ProfilePatch{EngagementRisk: &risk})
	topicLessons := 2
	state.UpdateTopic("nlp", learner.TopicPatch{
		Name:             strPtr("NLP"),
		LessonsCompleted: &topicLessons,
		QuizScores:       []float64{40},
	}, day(1))
	if got := s.progressInsight(state.Profile()); !strings.Contains(got, "NLP") {
		t.Errorf("insight = %q", got)
	}

	// With no gaps, the score message applies.
	state.UpdateTopic("nlp", learner.TopicPatch{QuizScores: []float64{90}}, day(1))
	overall := 80
	state.UpdateProfile(learner.ProfilePatch{OverallScore: &overall})
	if got := s.progressInsight(state.Profile()); !strings.Contains(got, "Excellent") {
		t.Errorf("insight = %q", got)
	}
}
