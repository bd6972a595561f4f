// Package modeling updates topic proficiencies and profile-level
// aggregates from behavioral events.
package modeling

import (
	"math"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/config"
	"github.com/abhisek/adaptiq/internal/learner"
)

// Service consumes lesson events and keeps the learner profile current.
type Service struct {
	state *learner.State
	cfg   config.Config
}

// NewService creates a modeling service over the given state.
func NewService(state *learner.State, cfg config.Config) *Service {
	return &Service{state: state, cfg: cfg}
}

// ProcessLessonEvent records the event, applies its per-type effects,
// and runs a full profile refresh.
func (s *Service) ProcessLessonEvent(ev learner.LessonEvent) {
	if ev.TopicID == "" {
		ev.TopicID = catalog.TopicForCourse(ev.CourseID)
	}
	s.state.RecordEvent(ev)

	switch ev.Type {
	case learner.EventLessonComplete:
		s.applyLessonComplete(ev)
	case learner.EventQuizSubmit:
		s.applyQuizSubmit(ev)
	case learner.EventQuizRetake:
		// Recorded only. Retries are persistence, not failure.
	case learner.EventLessonRevisit:
		// Touch the topic's last access if it already exists.
		if s.state.Profile().Topic(ev.TopicID) != nil {
			s.state.UpdateTopic(ev.TopicID, learner.TopicPatch{}, ev.Timestamp)
		}
	case learner.EventLessonStart:
		s.state.MarkActive(ev.Timestamp)
	case learner.EventNoteTaken:
		// Recorded only.
	}

	s.Refresh(ev.Timestamp)
}

func (s *Service) applyLessonComplete(ev learner.LessonEvent) {
	p := s.state.Profile()

	lessons := p.TotalLessonsCompleted + 1
	timeSpent := p.TotalTimeSpentSecs + ev.TimeSpentSecs
	s.state.UpdateProfile(learner.ProfilePatch{
		TotalLessonsCompleted: &lessons,
		TotalTimeSpentSecs:    &timeSpent,
	})

	prevScore, prevLessons := 0, 0
	if tp := p.Topic(ev.TopicID); tp != nil {
		prevScore, prevLessons = tp.Score, tp.LessonsCompleted
	}
	topicLessons := prevLessons + 1
	score := prevScore + s.cfg.Modeling.LessonScoreIncrement
	if score > 100 {
		score = 100
	}
	name := catalog.TopicNameForCourse(ev.CourseID)
	s.state.UpdateTopic(ev.TopicID, learner.TopicPatch{
		Name:                   &name,
		Score:                  &score,
		LessonsCompleted:       &topicLessons,
		AverageReadingTimeSecs: &ev.TimeSpentSecs,
	}, ev.Timestamp)
}

func (s *Service) applyQuizSubmit(ev learner.LessonEvent) {
	p := s.state.Profile()

	count := p.TotalQuizzesTaken + 1
	avg := (p.AverageQuizScore*float64(p.TotalQuizzesTaken) + ev.QuizScore) / float64(count)
	s.state.UpdateProfile(learner.ProfilePatch{
		TotalQuizzesTaken: &count,
		AverageQuizScore:  &avg,
	})

	var scores []float64
	lessons := 0
	if tp := p.Topic(ev.TopicID); tp != nil {
		scores = append(scores, tp.QuizScores...)
		lessons = tp.LessonsCompleted
	}
	scores = append(scores, ev.QuizScore)

	score := topicScore(scores, lessons, s.cfg.Modeling)
	name := catalog.TopicNameForCourse(ev.CourseID)
	s.state.UpdateTopic(ev.TopicID, learner.TopicPatch{
		Name:       &name,
		Score:      &score,
		QuizScores: scores,
	}, ev.Timestamp)
}

// topicScore blends quiz performance with completion volume. Quiz
// performance dominates once quizzes exist.
func topicScore(quizScores []float64, lessonsCompleted int, cfg config.ModelingConfig) int {
	sum := 0.0
	for _, s := range quizScores {
		sum += s
	}
	quizAvg := sum / float64(len(quizScores))

	volume := float64(lessonsCompleted * cfg.VolumePerLesson)
	if volume > 100 {
		volume = 100
	}
	return int(math.Round(quizAvg*cfg.QuizWeight + volume*cfg.VolumeWeight))
}
