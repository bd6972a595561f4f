package evaluation

import (
	"testing"
	"time"

	"github.com/abhisek/adaptiq/internal/learner"
)

func TestComprehensionUnknownTopicIsNeutral(t *testing.T) {
	p := learner.NewProfile("u1")
	if got := EstimateComprehension("intro-to-ai", p, nil, evalCfg); got != NeutralComprehension {
		t.Errorf("comprehension = %d, want %d", got, NeutralComprehension)
	}
}

func TestComprehensionBlendsQuizAndVolume(t *testing.T) {
	p := learner.NewProfile("u1")
	p.Topics["ai-foundations"] = &learner.TopicProficiency{
		TopicID:          "ai-foundations",
		LessonsCompleted: 5,
		QuizScores:       []float64{80},
	}

	// 80*0.5 + min(100, 5*12)*0.5 = 40 + 30 = 70, no time penalty.
	events := []learner.LessonEvent{{
		Type:          learner.EventLessonComplete,
		CourseID:      "intro-to-ai",
		TimeSpentSecs: 600,
		Timestamp:     time.Now(),
	}}
	if got := EstimateComprehension("intro-to-ai", p, events, evalCfg); got != 70 {
		t.Errorf("comprehension = %d, want 70", got)
	}
}

func TestComprehensionSkimPenalty(t *testing.T) {
	p := learner.NewProfile("u1")
	p.Topics["ai-foundations"] = &learner.TopicProficiency{
		TopicID:          "ai-foundations",
		LessonsCompleted: 5,
		QuizScores:       []float64{80},
	}

	// Average 60s per lesson is skimming: 70 * 0.7 = 49.
	events := []learner.LessonEvent{{
		Type:          learner.EventLessonComplete,
		CourseID:      "intro-to-ai",
		TimeSpentSecs: 60,
		Timestamp:     time.Now(),
	}}
	if got := EstimateComprehension("intro-to-ai", p, events, evalCfg); got != 49 {
		t.Errorf("comprehension = %d, want 49", got)
	}

	// A mild rush is penalized less: 70 * 0.9 = 63.
	events[0].TimeSpentSecs = 200
	if got := EstimateComprehension("intro-to-ai", p, events, evalCfg); got != 63 {
		t.Errorf("comprehension = %d, want 63", got)
	}
}

func TestComprehensionNoQuizzesUsesNeutralQuizPart(t *testing.T) {
	p := learner.NewProfile("u1")
	p.Topics["ai-foundations"] = &learner.TopicProficiency{
		TopicID:          "ai-foundations",
		LessonsCompleted: 2,
	}

	// 50*0.5 + 24*0.5 = 37.
	if got := EstimateComprehension("intro-to-ai", p, nil, evalCfg); got != 37 {
		t.Errorf("comprehension = %d, want 37", got)
	}
}
