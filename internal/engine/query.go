package engine

import (
	"fmt"
	"time"

	"github.com/abhisek/adaptiq/internal/analytics"
	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/evaluation"
	"github.com/abhisek/adaptiq/internal/learner"
	"github.com/abhisek/adaptiq/internal/strategy"
)

// Profile returns a copy of the current learner profile, or a fresh
// default profile before Initialize.
func (e *Engine) Profile() *learner.Profile {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return learner.NewProfile("")
	}
	return e.state.Profile().Clone()
}

// AdaptivePath returns the full recommendation bundle. The result is
// cached until the next recorded event.
func (e *Engine) AdaptivePath() *strategy.AdaptivePath {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return &strategy.AdaptivePath{}
	}
	if e.path == nil {
		e.path = e.strategy.GenerateAdaptivePath()
	}
	return e.path
}

// NextLesson returns the single best next lesson, or nil when no
// course has an unlocked uncompleted lesson.
func (e *Engine) NextLesson() *strategy.LessonRecommendation {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return nil
	}
	return e.strategy.NextLesson()
}

// LessonMetadata looks up a lesson's derived metadata in the content
// registry.
func (e *Engine) LessonMetadata(lessonID string) (*catalog.ContentMetadata, bool) {
	return e.reg.Lookup(lessonID)
}

// PerformanceAnalysis returns weekly stats, per-topic breakdowns, and
// milestone progress. Cached until the next recorded event.
func (e *Engine) PerformanceAnalysis() *analytics.PerformanceAnalysis {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return &analytics.PerformanceAnalysis{}
	}
	if e.analysis == nil {
		e.analysis = analytics.GeneratePerformanceAnalysis(
			e.state.Profile(), e.state.Events(learner.Filter{}), e.state.Sessions(), e.now(), e.cfg.Analytics)
	}
	return e.analysis
}

// PredictiveSignals returns the current early-warning and opportunity
// signals. Cached until the next recorded event.
func (e *Engine) PredictiveSignals() []analytics.Signal {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return nil
	}
	if e.signals == nil {
		e.signals = analytics.GeneratePredictiveSignals(
			e.state.Profile(), e.state.Sessions(), e.now(), e.cfg.Analytics)
	}
	return e.signals
}

// EngagementTrend classifies this week's activity against the prior
// week's.
func (e *Engine) EngagementTrend() analytics.Trend {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return analytics.TrendStable
	}
	return analytics.EngagementTrend(e.state.Events(learner.Filter{}), e.now(), e.cfg.Analytics)
}

// EvaluateQuiz grades the learner's answers against a lesson's quiz.
func (e *Engine) EvaluateQuiz(lessonID string, answers map[string]string) (evaluation.QuizResult, error) {
	questions := e.reg.Questions(lessonID)
	if len(questions) == 0 {
		return evaluation.QuizResult{}, fmt.Errorf("no quiz for lesson %q", lessonID)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return evaluation.ScoreQuiz(answers, questions, e.cfg.Evaluation), nil
}

// Comprehension estimates how well the learner understands a course's
// material, 0 to 100.
func (e *Engine) Comprehension(courseID string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return evaluation.NeutralComprehension
	}
	return evaluation.EstimateComprehension(
		courseID, e.state.Profile(), e.state.Events(learner.Filter{}), e.cfg.Evaluation)
}

// Readiness reports whether the learner is prepared for material at
// the target difficulty. Before Initialize it never blocks: the answer
// degrades to ready.
func (e *Engine) Readiness(target catalog.Difficulty) evaluation.Readiness {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return evaluation.Readiness{Ready: true}
	}
	return evaluation.AssessReadiness(e.state.Profile(), target, e.cfg.Evaluation)
}

// Misunderstandings lists topics showing low averages or score
// regressions.
func (e *Engine) Misunderstandings() []evaluation.Misunderstanding {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return nil
	}
	return evaluation.DetectMisunderstandings(e.state.Profile(), e.cfg.Evaluation)
}

// OptimalSessionLength suggests a session length in minutes, tuned to
// the learner's pace and engagement risk.
func (e *Engine) OptimalSessionLength() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return e.cfg.Strategy.BaseSessionMins
	}
	return e.strategy.OptimalSessionLength()
}

// ShouldTriggerReview reports whether a topic is due for review.
func (e *Engine) ShouldTriggerReview(topicID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return false
	}
	return e.strategy.ShouldTriggerReview(topicID, e.now())
}

// SuggestedExamples returns topic examples pitched at the learner's
// knowledge level.
func (e *Engine) SuggestedExamples(topicID string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	level := learner.KnowledgeBeginner
	if e.state != nil {
		level = e.state.Profile().KnowledgeLevel
	}
	return analytics.SuggestedExamples(topicID, level)
}

// ExplanationComplexity returns the explanation style matching the
// learner's knowledge level.
func (e *Engine) ExplanationComplexity() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	level := learner.KnowledgeBeginner
	if e.state != nil {
		level = e.state.Profile().KnowledgeLevel
	}
	return analytics.ExplanationComplexity(level)
}

// Events returns the in-memory lesson events matching the filter.
func (e *Engine) Events(f learner.Filter) []learner.LessonEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return nil
	}
	return e.state.Events(f)
}

// Sessions returns the in-memory session events.
func (e *Engine) Sessions() []learner.SessionEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return nil
	}
	return e.state.Sessions()
}

// LastActive returns the time elapsed since the learner's last active
// day, or false when there is no activity yet.
func (e *Engine) LastActive() (time.Duration, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return 0, false
	}
	last := e.state.Profile().LastActiveDate
	if last == "" {
		return 0, false
	}
	t, err := time.Parse(learner.DateLayout, last)
	if err != nil {
		return 0, false
	}
	return e.now().Sub(t), true
}
