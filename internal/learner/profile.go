// Package learner holds the mutable learner profile and the bounded
// event history it is derived from.
package learner

import (
	"time"

	"github.com/abhisek/adaptiq/internal/catalog"
)

// KnowledgeLevel classifies overall learner mastery.
type KnowledgeLevel string

const (
	KnowledgeBeginner     KnowledgeLevel = "beginner"
	KnowledgeIntermediate KnowledgeLevel = "intermediate"
	KnowledgeAdvanced     KnowledgeLevel = "advanced"
)

// LearningSpeed classifies lesson completion pace.
type LearningSpeed string

const (
	SpeedSlow     LearningSpeed = "slow"
	SpeedModerate LearningSpeed = "moderate"
	SpeedFast     LearningSpeed = "fast"
)

// EngagementRisk estimates likelihood of disengagement.
type EngagementRisk string

const (
	RiskLow      EngagementRisk = "low"
	RiskMedium   EngagementRisk = "medium"
	RiskHigh     EngagementRisk = "high"
	RiskCritical EngagementRisk = "critical"
)

// TopicProficiency tracks mastery of one topic cluster. Score is always
// recomputed from QuizScores and LessonsCompleted, never set on its own.
type TopicProficiency struct {
	TopicID                string    `json:"topic_id"`
	Name                   string    `json:"name"`
	Score                  int       `json:"score"` // 0-100
	LessonsCompleted       int       `json:"lessons_completed"`
	QuizScores             []float64 `json:"quiz_scores"`
	AverageReadingTimeSecs int       `json:"average_reading_time_secs"`
	LastAccessed           time.Time `json:"last_accessed"`
}

// QuizAverage returns the mean of all recorded quiz scores, or 0 when
// none exist.
func (tp *TopicProficiency) QuizAverage() float64 {
	if len(tp.QuizScores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range tp.QuizScores {
		sum += s
	}
	return sum / float64(len(tp.QuizScores))
}

// Profile is the continuously recomputed learner model. One per user;
// a single profile is active at a time.
type Profile struct {
	UserID                string                       `json:"user_id"`
	KnowledgeLevel        KnowledgeLevel               `json:"knowledge_level"`
	LearningSpeed         LearningSpeed                `json:"learning_speed"`
	EngagementRisk        EngagementRisk               `json:"engagement_risk"`
	RecommendedDifficulty catalog.Difficulty           `json:"recommended_difficulty"`
	OverallScore          int                          `json:"overall_score"` // 0-100
	Topics                map[string]*TopicProficiency `json:"topics"`
	Strengths             []string                     `json:"strengths"`  // derived, never authored
	Weaknesses            []string                     `json:"weaknesses"` // derived, never authored
	TotalLessonsCompleted int                          `json:"total_lessons_completed"`
	TotalQuizzesTaken     int                          `json:"total_quizzes_taken"`
	AverageQuizScore      float64                      `json:"average_quiz_score"`
	TotalTimeSpentSecs    int                          `json:"total_time_spent_secs"`
	CurrentStreak         int                          `json:"current_streak"`
	LastActiveDate        string                       `json:"last_active_date"` // calendar date, "2006-01-02"
	SessionCount          int                          `json:"session_count"`
}

// NewProfile creates a fresh profile with all-zero defaults.
func NewProfile(userID string) *Profile {
	return &Profile{
		UserID:                userID,
		KnowledgeLevel:        KnowledgeBeginner,
		LearningSpeed:         SpeedModerate,
		EngagementRisk:        RiskLow,
		RecommendedDifficulty: catalog.Beginner,
		Topics:                make(map[string]*TopicProficiency),
	}
}

// Topic returns the proficiency record for a topic, or nil if the topic
// has never been touched.
func (p *Profile) Topic(topicID string) *TopicProficiency {
	return p.Topics[topicID]
}

// MeanTopicScore averages all topic scores. No topics yields 0.
func (p *Profile) MeanTopicScore() float64 {
	if len(p.Topics) == 0 {
		return 0
	}
	sum := 0
	for _, tp := range p.Topics {
		sum += tp.Score
	}
	return float64(sum) / float64(len(p.Topics))
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	cp := *p
	cp.Topics = make(map[string]*TopicProficiency, len(p.Topics))
	for id, tp := range p.Topics {
		tc := *tp
		tc.QuizScores = append([]float64(nil), tp.QuizScores...)
		cp.Topics[id] = &tc
	}
	cp.Strengths = append([]string(nil), p.Strengths...)
	cp.Weaknesses = append([]string(nil), p.Weaknesses...)
	return &cp
}
