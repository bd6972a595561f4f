package strategy

import (
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/config"
	"github.com/abhisek/adaptiq/internal/evaluation"
	"github.com/abhisek/adaptiq/internal/learner"
)

// Service selects next-step, reinforcement, practice, and advanced
// lessons from the profile and event history.
type Service struct {
	state *learner.State
	reg   *catalog.Registry
	cfg   config.Config
}

// NewService creates a strategy service.
func NewService(state *learner.State, reg *catalog.Registry, cfg config.Config) *Service {
	return &Service{state: state, reg: reg, cfg: cfg}
}

// completedSet returns the lesson ids with a recorded completion.
func (s *Service) completedSet() map[string]bool {
	completed := make(map[string]bool)
	for _, ev := range s.state.Events(learner.Filter{Type: learner.EventLessonComplete}) {
		completed[ev.LessonID] = true
	}
	return completed
}

// firstUncompleted returns a course's first uncompleted lesson in
// module order, or nil when the course is done.
func (s *Service) firstUncompleted(courseID string, completed map[string]bool) *catalog.ContentMetadata {
	for _, meta := range s.reg.ByCourse(courseID) {
		if !completed[meta.LessonID] {
			return meta
		}
	}
	return nil
}

// courseCompleted reports whether every lesson of a course is done.
func (s *Service) courseCompleted(courseID string, completed map[string]bool) bool {
	lessons := s.reg.ByCourse(courseID)
	if len(lessons) == 0 {
		return true
	}
	return s.firstUncompleted(courseID, completed) == nil
}

// NextLesson picks the single best lesson to continue with: the current
// course first, then the easiest unlocked course the learner is ready
// for. Returns nil when everything is completed.
func (s *Service) NextLesson() *LessonRecommendation {
	completed := s.completedSet()
	p := s.state.Profile()

	// Prefer continuing the most recently completed course.
	completions := s.state.Events(learner.Filter{Type: learner.EventLessonComplete})
	if len(completions) > 0 {
		recent := completions[len(completions)-1].CourseID
		if meta := s.firstUncompleted(recent, completed); meta != nil {
			return s.recommend(meta, RecNext, PriorityHigh,
				fmt.Sprintf("Continue where you left off in %s.", meta.CourseTitle))
		}
	}

	// Fall back to scanning courses by ascending difficulty, skipping
	// locked and not-yet-ready ones.
	for _, ref := range s.reg.Courses() {
		if s.courseCompleted(ref.ID, completed) {
			continue
		}
		prereqsDone := true
		for _, prereq := range ref.Prereqs {
			if !s.courseCompleted(prereq, completed) {
				prereqsDone = false
				break
			}
		}
		if !prereqsDone {
			continue
		}
		if ref.Baseline != catalog.Beginner && !evaluation.AssessReadiness(p, ref.Baseline, s.cfg.Evaluation).Ready {
			continue
		}
		if meta := s.firstUncompleted(ref.ID, completed); meta != nil {
			return s.recommend(meta, RecNext, PriorityHigh,
				fmt.Sprintf("Start %s next; it fits your current level.", meta.CourseTitle))
		}
	}
	return nil
}

// ReinforcementLessons suggests review lessons for the weakest topics.
func (s *Service) ReinforcementLessons() []LessonRecommendation {
	p := s.state.Profile()

	weak := append([]string(nil), p.Weaknesses...)
	sort.Slice(weak, func(i, j int) bool {
		return topicScoreOf(p, weak[i]) < topicScoreOf(p, weak[j])
	})
	if n := s.cfg.Strategy.MaxReinforcement; len(weak) > n {
		weak = weak[:n]
	}

	var out []LessonRecommendation
	for _, topicID := range weak {
		courses := s.reg.CoursesForTopic(topicID)
		if len(courses) == 0 {
			continue
		}
		lessons := s.reg.ByCourse(courses[0])
		for i := 0; i < len(lessons) && i < 2; i++ {
			if len(out) >= s.cfg.Strategy.MaxReinforcement {
				return out
			}
			name := topicID
			if tp := p.Topic(topicID); tp != nil {
				name = tp.Name
			}
			out = append(out, *s.recommend(lessons[i], RecReinforcement, PriorityHigh,
				fmt.Sprintf("Revisit the basics of %s to shore up a weak spot.", name)))
		}
	}
	return out
}

func topicScoreOf(p *learner.Profile, topicID string) int {
	if tp := p.Topic(topicID); tp != nil {
		return tp.Score
	}
	return 0
}

// PracticeActivities suggests quiz retakes for recent low scores, then
// fresh quizzes in topics with enough completed lessons.
func (s *Service) PracticeActivities() []LessonRecommendation {
	p := s.state.Profile()
	cfg := s.cfg.Strategy

	var out []LessonRecommendation
	seen := make(map[string]bool)

	// Retake recent quizzes scored below the bar, most recent first.
	subs := s.state.Events(learner.Filter{Type: learner.EventQuizSubmit})
	if len(subs) > cfg.PracticeRetakeMax {
		subs = subs[len(subs)-cfg.PracticeRetakeMax:]
	}
	for i := len(subs) - 1; i >= 0 && len(out) < cfg.MaxPractice; i-- {
		ev := subs[i]
		if ev.QuizScore >= cfg.PracticeScoreBar || seen[ev.LessonID] {
			continue
		}
		meta, ok := s.reg.Lookup(ev.LessonID)
		if !ok {
			continue
		}
		seen[ev.LessonID] = true
		out = append(out, *s.recommend(meta, RecPractice, PriorityHigh,
			fmt.Sprintf("Retake this quiz; your last attempt scored %.0f%%.", ev.QuizScore)))
	}

	// Fill remaining slots with unattempted quizzes in practiced topics.
	attempted := make(map[string]bool)
	for _, ev := range s.state.Events(learner.Filter{Type: learner.EventQuizSubmit}) {
		attempted[ev.LessonID] = true
	}
	for _, ref := range s.reg.Courses() {
		if len(out) >= cfg.MaxPractice {
			break
		}
		tp := p.Topic(ref.TopicID)
		if tp == nil || tp.LessonsCompleted < cfg.PracticeMinLessons {
			continue
		}
		for _, meta := range s.reg.ByCourse(ref.ID) {
			if len(out) >= cfg.MaxPractice {
				break
			}
			if !meta.HasQuiz || attempted[meta.LessonID] || seen[meta.LessonID] {
				continue
			}
			seen[meta.LessonID] = true
			out = append(out, *s.recommend(meta, RecPractice, PriorityMedium,
				fmt.Sprintf("Check your understanding of %s with this quiz.", tp.Name)))
		}
	}
	return out
}

// AdvancedSuggestions proposes advanced courses building on the
// learner's strongest topics. Beginners get none.
func (s *Service) AdvancedSuggestions() []LessonRecommendation {
	p := s.state.Profile()
	if p.KnowledgeLevel == learner.KnowledgeBeginner {
		return nil
	}

	strengths := p.Strengths
	if n := s.cfg.Strategy.MaxAdvanced; len(strengths) > n {
		strengths = strengths[:n]
	}
	completed := s.completedSet()

	var out []LessonRecommendation
	seen := make(map[string]bool)
	for _, topicID := range strengths {
		for _, ref := range s.reg.Courses() {
			if len(out) >= s.cfg.Strategy.MaxAdvanced {
				return out
			}
			if ref.Baseline != catalog.Advanced || !s.dependsOnTopic(ref, topicID) {
				continue
			}
			meta := s.firstUncompleted(ref.ID, completed)
			if meta == nil || seen[meta.LessonID] {
				continue
			}
			seen[meta.LessonID] = true
			name := topicID
			if tp := p.Topic(topicID); tp != nil {
				name = tp.Name
			}
			out = append(out, *s.recommend(meta, RecAdvanced, PriorityMedium,
				fmt.Sprintf("You're strong in %s; this builds on it.", name)))
		}
	}
	return out
}

// dependsOnTopic reports whether any of a course's prerequisites belong
// to the given topic cluster.
func (s *Service) dependsOnTopic(ref catalog.CourseRef, topicID string) bool {
	for _, prereq := range ref.Prereqs {
		if pr, ok := s.reg.Course(prereq); ok && pr.TopicID == topicID {
			return true
		}
	}
	return false
}

// ShouldTriggerReview reports whether a topic is due for review: stale
// and below threshold, or regressing across the last two quizzes.
func (s *Service) ShouldTriggerReview(topicID string, now time.Time) bool {
	tp := s.state.Profile().Topic(topicID)
	if tp == nil {
		return false
	}
	cfg := s.cfg.Strategy

	staleDays := now.Sub(tp.LastAccessed).Hours() / 24
	if staleDays >= float64(cfg.ReviewStaleDays) && tp.Score < cfg.ReviewScoreBar {
		return true
	}
	if n := len(tp.QuizScores); n >= 2 {
		if tp.QuizScores[n-2]-tp.QuizScores[n-1] > cfg.ReviewDropPoints {
			return true
		}
	}
	return false
}

// OptimalSessionLength suggests a session length in minutes, shortened
// when engagement risk is elevated.
func (s *Service) OptimalSessionLength() int {
	p := s.state.Profile()
	cfg := s.cfg.Strategy

	mins := cfg.BaseSessionMins
	switch p.LearningSpeed {
	case learner.SpeedFast:
		mins = cfg.FastSessionMins
	case learner.SpeedSlow:
		mins = cfg.SlowSessionMins
	}
	if (p.EngagementRisk == learner.RiskHigh || p.EngagementRisk == learner.RiskCritical) && mins > cfg.RiskCapMins {
		mins = cfg.RiskCapMins
	}
	return mins
}

func (s *Service) recommend(meta *catalog.ContentMetadata, typ RecType, prio Priority, reason string) *LessonRecommendation {
	return &LessonRecommendation{
		LessonID:         meta.LessonID,
		CourseID:         meta.CourseID,
		Title:            meta.Title,
		Reason:           reason,
		Priority:         prio,
		Type:             typ,
		EstimatedMinutes: meta.EstimatedMinutes,
		Difficulty:       meta.Difficulty,
	}
}
