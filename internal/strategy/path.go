package strategy

import (
	"fmt"

	"github.com/abhisek/adaptiq/internal/evaluation"
	"github.com/abhisek/adaptiq/internal/learner"
)

// GenerateAdaptivePath composes the full recommendation bundle plus a
// single progress insight chosen by priority.
func (s *Service) GenerateAdaptivePath() *AdaptivePath {
	p := s.state.Profile()

	path := &AdaptivePath{
		Next:          s.NextLesson(),
		Reinforcement: s.ReinforcementLessons(),
		Practice:      s.PracticeActivities(),
		Advanced:      s.AdvancedSuggestions(),
		DifficultyNote: fmt.Sprintf(
			"Content is calibrated to %s difficulty based on your quiz results and pace.",
			p.RecommendedDifficulty),
	}
	path.Insight = s.progressInsight(p)
	return path
}

// progressInsight selects exactly one insight, in priority order:
// welcome, re-engagement, misunderstanding, then score-based messages.
func (s *Service) progressInsight(p *learner.Profile) string {
	switch {
	case p.TotalLessonsCompleted == 0:
		return "Welcome! Complete your first lesson to start building your learning profile."
	case p.EngagementRisk == learner.RiskCritical:
		return "It's been a while. A short session today goes a long way toward rebuilding momentum."
	}

	if m := evaluation.DetectMisunderstandings(p, s.cfg.Evaluation); len(m) > 0 {
		return m[0].Message
	}

	switch {
	case p.OverallScore >= 75:
		return fmt.Sprintf("Excellent progress. With an overall score of %d you're mastering this material.", p.OverallScore)
	case p.OverallScore >= 50:
		return "Solid progress. Keep the streak going and the advanced material will open up soon."
	default:
		return "You're building foundations. Steady, regular practice is what moves the needle at this stage."
	}
}
