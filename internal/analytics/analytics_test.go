package analytics

import (
	"testing"
	"time"

	"github.com/abhisek/adaptiq/internal/config"
	"github.com/abhisek/adaptiq/internal/learner"
)

var cfg = config.DefaultConfig().Analytics

func day(d int) time.Time {
	return time.Date(2026, 6, d, 12, 0, 0, 0, time.UTC)
}

func eventsOn(days ...int) []learner.LessonEvent {
	var out []learner.LessonEvent
	for _, d := range days {
		out = append(out, learner.LessonEvent{
			Type:      learner.EventLessonStart,
			Timestamp: day(d),
		})
	}
	return out
}

func TestEngagementTrend(t *testing.T) {
	now := day(15)
	tests := []struct {
		name   string
		events []learner.LessonEvent
		want   Trend
	}{
		{"no activity", nil, TrendStable},
		{"new learner", eventsOn(10, 12, 14), TrendImproving},
		{"went quiet", eventsOn(2, 3, 4), TrendDeclining},
		{"ramping up", eventsOn(2, 3, 10, 12, 13, 14), TrendImproving},
		{"steady", eventsOn(2, 3, 10, 12), TrendStable},
		{"tapering", eventsOn(1, 2, 3, 4, 5, 12), TrendDeclining},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EngagementTrend(tt.events, now, cfg); got != tt.want {
				t.Errorf("trend = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDropoutSignalAfterInactivity(t *testing.T) {
	p := learner.NewProfile("u1")
	p.LastActiveDate = day(1).Format(learner.DateLayout)

	// 9 days out: warning.
	signals := GeneratePredictiveSignals(p, nil, day(10), cfg)
	if len(signals) != 1 {
		t.Fatalf("signals = %+v, want exactly one", signals)
	}
	if signals[0].Type != SignalDropoutRisk || signals[0].Severity != SeverityWarning {
		t.Errorf("signal = %+v", signals[0])
	}

	// 20 days out: exactly one critical signal, not one per rule.
	signals = GeneratePredictiveSignals(p, nil, day(21), cfg)
	if len(signals) != 1 {
		t.Fatalf("signals = %+v, want exactly one", signals)
	}
	if signals[0].Severity != SeverityCritical {
		t.Errorf("severity = %s, want critical", signals[0].Severity)
	}
	if c := signals[0].Confidence; c < 0.89 || c > 0.91 {
		t.Errorf("confidence = %f, want ~0.9", c)
	}
}

func TestSessionDropSignal(t *testing.T) {
	p := learner.NewProfile("u1")
	p.LastActiveDate = day(14).Format(learner.DateLayout)

	var sessions []learner.SessionEvent
	for _, d := range []int{2, 4, 6} {
		sessions = append(sessions, learner.SessionEvent{
			Action: learner.SessionStart, Timestamp: day(d),
		})
		// Session ends must not count toward the drop comparison.
		sessions = append(sessions, learner.SessionEvent{
			Action: learner.SessionEnd, Timestamp: day(d),
		})
	}

	signals := GeneratePredictiveSignals(p, sessions, day(14), cfg)
	found := false
	for _, sig := range signals {
		if sig.Type == SignalDropoutRisk && sig.Confidence == 0.7 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a session-drop signal, got %+v", signals)
	}
}

func TestComprehensionSignalSeverity(t *testing.T) {
	p := learner.NewProfile("u1")
	p.LastActiveDate = day(14).Format(learner.DateLayout)
	p.Topics["ml"] = &learner.TopicProficiency{
		TopicID: "ml", Name: "ML", Score: 55,
		QuizScores:   []float64{40, 44},
		LastAccessed: day(14),
	}
	p.Topics["nlp"] = &learner.TopicProficiency{
		TopicID: "nlp", Name: "NLP", Score: 55,
		QuizScores:   []float64{20, 25},
		LastAccessed: day(14),
	}
	// A single low score is not yet a signal.
	p.Topics["dl"] = &learner.TopicProficiency{
		TopicID: "dl", Name: "DL", Score: 55,
		QuizScores:   []float64{10},
		LastAccessed: day(14),
	}

	signals := GeneratePredictiveSignals(p, nil, day(14), cfg)
	if len(signals) != 2 {
		t.Fatalf("signals = %+v, want 2", signals)
	}
	// Critical (nlp, avg 22.5) sorts before warning (ml, avg 42).
	if signals[0].Severity != SeverityCritical || signals[0].Topics[0] != "nlp" {
		t.Errorf("first signal = %+v", signals[0])
	}
	if signals[1].Severity != SeverityWarning || signals[1].Topics[0] != "ml" {
		t.Errorf("second signal = %+v", signals[1])
	}
}

func TestReviewSignalThresholds(t *testing.T) {
	p := learner.NewProfile("u1")
	p.LastActiveDate = day(20).Format(learner.DateLayout)

	// Score 60 reviews after 7 days; accessed 10 days ago.
	p.Topics["mid"] = &learner.TopicProficiency{
		TopicID: "mid", Name: "Mid", Score: 60, LastAccessed: day(10),
	}
	// Score 75 tolerates 14 days; accessed 10 days ago, no signal.
	p.Topics["high"] = &learner.TopicProficiency{
		TopicID: "high", Name: "High", Score: 75, LastAccessed: day(10),
	}
	// Score 95 never needs review.
	p.Topics["mastered"] = &learner.TopicProficiency{
		TopicID: "mastered", Name: "Mastered", Score: 95, LastAccessed: day(1),
	}

	signals := GeneratePredictiveSignals(p, nil, day(20), cfg)
	if len(signals) != 1 {
		t.Fatalf("signals = %+v, want 1", signals)
	}
	if signals[0].Type != SignalOptimalReview || signals[0].Topics[0] != "mid" {
		t.Errorf("signal = %+v", signals[0])
	}
}

func TestReadyForAdvancedSignal(t *testing.T) {
	p := learner.NewProfile("u1")
	p.LastActiveDate = day(14).Format(learner.DateLayout)
	p.Strengths = []string{"ml"}
	p.Topics["ml"] = &learner.TopicProficiency{
		TopicID: "ml", Name: "ML", Score: 92,
		QuizScores:   []float64{85, 90},
		LastAccessed: day(14),
	}

	signals := GeneratePredictiveSignals(p, nil, day(14), cfg)
	if len(signals) != 1 || signals[0].Type != SignalReadyForAdvanced {
		t.Fatalf("signals = %+v", signals)
	}

	// One weak recent score blocks the signal.
	p.Topics["ml"].QuizScores = []float64{85, 60}
	if signals := GeneratePredictiveSignals(p, nil, day(14), cfg); len(signals) != 0 {
		t.Errorf("signals = %+v, want none", signals)
	}
}

func TestWeeklyStats(t *testing.T) {
	p := learner.NewProfile("u1")
	p.CurrentStreak = 3

	events := []learner.LessonEvent{
		{Type: learner.EventLessonComplete, TimeSpentSecs: 1200, Timestamp: day(13)},
		{Type: learner.EventLessonComplete, TimeSpentSecs: 600, Timestamp: day(14)},
		{Type: learner.EventQuizSubmit, QuizScore: 80, Timestamp: day(14)},
		{Type: learner.EventNoteTaken, Timestamp: day(14)},
		// Outside the window.
		{Type: learner.EventLessonComplete, TimeSpentSecs: 9000, Timestamp: day(1)},
	}

	stats := weeklyStats(p, events, day(15))
	if stats.LessonsCompleted != 2 {
		t.Errorf("lessons = %d, want 2", stats.LessonsCompleted)
	}
	if stats.TotalMinutes != 30 {
		t.Errorf("minutes = %d, want 30", stats.TotalMinutes)
	}
	if stats.AverageQuizScore != 80 {
		t.Errorf("quiz avg = %f, want 80", stats.AverageQuizScore)
	}
	// 4 events (20) + streak 3 (12) + 3 types (20 cap hit at 21->20) +
	// 1 quiz (5) + 1 note (5).
	if stats.EngagementScore != 62 {
		t.Errorf("engagement = %d, want 62", stats.EngagementScore)
	}
}

func TestTopicBreakdownTrend(t *testing.T) {
	p := learner.NewProfile("u1")
	p.Topics["up"] = &learner.TopicProficiency{TopicID: "up", Score: 70, QuizScores: []float64{60, 70}}
	p.Topics["down"] = &learner.TopicProficiency{TopicID: "down", Score: 60, QuizScores: []float64{70, 60}}
	p.Topics["flat"] = &learner.TopicProficiency{TopicID: "flat", Score: 50, QuizScores: []float64{60, 64}}

	out := topicBreakdown(p, cfg)
	if len(out) != 3 {
		t.Fatalf("len = %d", len(out))
	}
	// Sorted by descending score.
	byID := map[string]TopicBreakdown{}
	for _, tb := range out {
		byID[tb.TopicID] = tb
	}
	if byID["up"].Trend != TrendImproving || byID["down"].Trend != TrendDeclining || byID["flat"].Trend != TrendStable {
		t.Errorf("trends = %+v", byID)
	}
	if out[0].TopicID != "up" {
		t.Errorf("order = %+v", out)
	}
}

func TestMilestones(t *testing.T) {
	p := learner.NewProfile("u1")
	p.TotalLessonsCompleted = 12
	p.TotalQuizzesTaken = 4
	p.AverageQuizScore = 85
	p.CurrentStreak = 3
	p.Topics["ml"] = &learner.TopicProficiency{TopicID: "ml", Score: 45}

	byID := map[string]Milestone{}
	for _, m := range milestones(p) {
		byID[m.ID] = m
	}

	if !byID["first-lesson"].Achieved || !byID["ten-lessons"].Achieved {
		t.Error("lesson milestones should be achieved")
	}
	if byID["twenty-five-lessons"].Achieved || byID["twenty-five-lessons"].Progress != 48 {
		t.Errorf("twenty-five-lessons = %+v", byID["twenty-five-lessons"])
	}
	if !byID["quiz-excellence"].Achieved {
		t.Errorf("quiz-excellence = %+v", byID["quiz-excellence"])
	}
	if byID["week-streak"].Achieved || byID["week-streak"].Progress != 43 {
		t.Errorf("week-streak = %+v", byID["week-streak"])
	}
	if byID["topic-mastery"].Achieved || byID["topic-mastery"].Progress != 50 {
		t.Errorf("topic-mastery = %+v", byID["topic-mastery"])
	}
	if byID["advanced-level"].Achieved || byID["advanced-level"].Progress != 33 {
		t.Errorf("advanced-level = %+v", byID["advanced-level"])
	}
}

func TestSuggestedExamplesFallBack(t *testing.T) {
	if got := SuggestedExamples("no-such-topic", learner.KnowledgeBeginner); len(got) == 0 {
		t.Error("expected generic examples for unknown topics")
	}
	if ExplanationComplexity(learner.KnowledgeAdvanced) != "technical" {
		t.Error("advanced learners get technical explanations")
	}
}
