package evaluation

import (
	"math"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/config"
	"github.com/abhisek/adaptiq/internal/learner"
)

// NeutralComprehension is returned when the course's topic has no
// proficiency record yet.
const NeutralComprehension = 50

// EstimateComprehension blends quiz performance and completion volume
// for a course's topic, penalized when average completion times suggest
// skimming.
func EstimateComprehension(courseID string, p *learner.Profile, events []learner.LessonEvent, cfg config.EvaluationConfig) int {
	tp := p.Topic(catalog.TopicForCourse(courseID))
	if tp == nil {
		return NeutralComprehension
	}

	quizPart := 50.0
	if len(tp.QuizScores) > 0 {
		quizPart = tp.QuizAverage()
	}
	volumePart := float64(tp.LessonsCompleted * cfg.ComprehensionPerLess)
	if volumePart > 100 {
		volumePart = 100
	}

	base := quizPart*0.5 + volumePart*0.5
	return int(math.Round(base * timeFactor(courseID, events, cfg)))
}

// timeFactor penalizes suspiciously fast lesson completions.
func timeFactor(courseID string, events []learner.LessonEvent, cfg config.EvaluationConfig) float64 {
	var totalSecs, samples int
	for _, ev := range events {
		if ev.Type == learner.EventLessonComplete && ev.CourseID == courseID && ev.TimeSpentSecs > 0 {
			totalSecs += ev.TimeSpentSecs
			samples++
		}
	}
	if samples == 0 {
		return 1.0
	}

	avg := float64(totalSecs) / float64(samples)
	switch {
	case avg < float64(cfg.SkimSecs):
		return cfg.SkimFactor
	case avg < float64(cfg.RushSecs):
		return cfg.RushFactor
	default:
		return 1.0
	}
}
