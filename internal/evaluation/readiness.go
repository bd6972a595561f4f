package evaluation

import (
	"fmt"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/config"
	"github.com/abhisek/adaptiq/internal/learner"
)

// Readiness is the outcome of a readiness assessment. Ready is false
// iff at least one reason exists.
type Readiness struct {
	Ready   bool
	Reasons []string
}

// AssessReadiness checks whether the learner is prepared for content at
// the target difficulty. Beginner content is always accessible.
func AssessReadiness(p *learner.Profile, target catalog.Difficulty, cfg config.EvaluationConfig) Readiness {
	var reasons []string

	switch target {
	case catalog.Intermediate:
		reasons = gateReasons(p, cfg.IntermediateMinScore, cfg.IntermediateMinLessons, cfg.IntermediateMinQuizAvg)
	case catalog.Advanced:
		reasons = gateReasons(p, cfg.AdvancedMinScore, cfg.AdvancedMinLessons, cfg.AdvancedMinQuizAvg)
	}

	return Readiness{Ready: len(reasons) == 0, Reasons: reasons}
}

func gateReasons(p *learner.Profile, minScore, minLessons int, minQuizAvg float64) []string {
	var reasons []string
	if p.OverallScore < minScore {
		reasons = append(reasons, fmt.Sprintf("overall score %d is below %d", p.OverallScore, minScore))
	}
	if p.TotalLessonsCompleted < minLessons {
		reasons = append(reasons, fmt.Sprintf("only %d of %d recommended lessons completed", p.TotalLessonsCompleted, minLessons))
	}
	if p.TotalQuizzesTaken > 0 && p.AverageQuizScore < minQuizAvg {
		reasons = append(reasons, fmt.Sprintf("quiz average %.0f%% is below %.0f%%", p.AverageQuizScore, minQuizAvg))
	}
	return reasons
}
