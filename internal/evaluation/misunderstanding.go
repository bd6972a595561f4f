package evaluation

import (
	"fmt"
	"sort"

	"github.com/abhisek/adaptiq/internal/config"
	"github.com/abhisek/adaptiq/internal/learner"
)

// Misunderstanding flags a topic where the learner shows signs of a
// conceptual gap.
type Misunderstanding struct {
	TopicID string
	Kind    string
	Message string
}

const (
	// KindLowAverage marks a practiced topic with a failing quiz mean.
	KindLowAverage = "low_average"
	// KindRegression marks a sharp drop between consecutive quiz scores.
	KindRegression = "regression"
)

// DetectMisunderstandings scans all topic proficiencies for gap signals.
// Results are ordered by topic id for determinism.
func DetectMisunderstandings(p *learner.Profile, cfg config.EvaluationConfig) []Misunderstanding {
	ids := make([]string, 0, len(p.Topics))
	for id := range p.Topics {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []Misunderstanding
	for _, id := range ids {
		tp := p.Topics[id]

		if tp.LessonsCompleted >= 2 && len(tp.QuizScores) >= 1 {
			if avg := tp.QuizAverage(); avg < cfg.LowTopicAverage {
				out = append(out, Misunderstanding{
					TopicID: id,
					Kind:    KindLowAverage,
					Message: fmt.Sprintf("Quiz results in %s average %.0f%% despite completed lessons; the core concepts may not have landed.", tp.Name, avg),
				})
			}
		}

		if n := len(tp.QuizScores); n >= 2 {
			last, prev := tp.QuizScores[n-1], tp.QuizScores[n-2]
			if last < prev-cfg.RegressionDrop {
				out = append(out, Misunderstanding{
					TopicID: id,
					Kind:    KindRegression,
					Message: fmt.Sprintf("Latest %s quiz dropped from %.0f%% to %.0f%%; earlier material may be slipping.", tp.Name, prev, last),
				})
			}
		}
	}
	return out
}
