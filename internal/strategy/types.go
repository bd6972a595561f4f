// Package strategy decides what the learner should work on next.
package strategy

import "github.com/abhisek/adaptiq/internal/catalog"

// Priority ranks a recommendation's urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// RecType identifies the kind of recommendation.
type RecType string

const (
	RecNext          RecType = "next"
	RecReinforcement RecType = "reinforcement"
	RecPractice      RecType = "practice"
	RecAdvanced      RecType = "advanced"
	RecReview        RecType = "review"
)

// LessonRecommendation is a single suggested lesson with its rationale.
type LessonRecommendation struct {
	LessonID         string             `json:"lesson_id"`
	CourseID         string             `json:"course_id"`
	Title            string             `json:"title"`
	Reason           string             `json:"reason"`
	Priority         Priority           `json:"priority"`
	Type             RecType            `json:"type"`
	EstimatedMinutes int                `json:"estimated_minutes"`
	Difficulty       catalog.Difficulty `json:"difficulty"`
}

// AdaptivePath bundles all recommendations generated for the learner's
// current state. It is regenerated on demand, never updated in place.
type AdaptivePath struct {
	Next           *LessonRecommendation  `json:"next,omitempty"`
	Reinforcement  []LessonRecommendation `json:"reinforcement,omitempty"`
	Practice       []LessonRecommendation `json:"practice,omitempty"`
	Advanced       []LessonRecommendation `json:"advanced,omitempty"`
	DifficultyNote string                 `json:"difficulty_note"`
	Insight        string                 `json:"insight"`
}
