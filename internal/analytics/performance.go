package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/abhisek/adaptiq/internal/config"
	"github.com/abhisek/adaptiq/internal/learner"
)

// WeeklyStats summarizes the trailing seven days of activity.
type WeeklyStats struct {
	LessonsCompleted int     `json:"lessons_completed"`
	AverageQuizScore float64 `json:"average_quiz_score"`
	TotalMinutes     int     `json:"total_minutes"`
	EngagementScore  int     `json:"engagement_score"` // 0-100
}

// TopicBreakdown reports one topic's standing and direction.
type TopicBreakdown struct {
	TopicID        string `json:"topic_id"`
	Name           string `json:"name"`
	Proficiency    int    `json:"proficiency"`
	Trend          Trend  `json:"trend"`
	Recommendation string `json:"recommendation"`
}

// Milestone is one entry of the fixed achievement checklist.
type Milestone struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Achieved bool   `json:"achieved"`
	Progress int    `json:"progress"` // 0-100
}

// PerformanceAnalysis is the full analytics bundle.
type PerformanceAnalysis struct {
	Weekly       WeeklyStats      `json:"weekly"`
	OverallTrend Trend            `json:"overall_trend"`
	Topics       []TopicBreakdown `json:"topics"`
	Predictions  []Signal         `json:"predictions"`
	Milestones   []Milestone      `json:"milestones"`
}

// GeneratePerformanceAnalysis computes weekly stats, per-topic
// breakdowns, predictions, and milestone progress.
func GeneratePerformanceAnalysis(p *learner.Profile, events []learner.LessonEvent, sessions []learner.SessionEvent, now time.Time, cfg config.AnalyticsConfig) *PerformanceAnalysis {
	return &PerformanceAnalysis{
		Weekly:       weeklyStats(p, events, now),
		OverallTrend: EngagementTrend(events, now, cfg),
		Topics:       topicBreakdown(p, cfg),
		Predictions:  GeneratePredictiveSignals(p, sessions, now, cfg),
		Milestones:   milestones(p),
	}
}

// weeklyStats is computed purely from the trailing-7-day event window.
func weeklyStats(p *learner.Profile, events []learner.LessonEvent, now time.Time) WeeklyStats {
	weekAgo := now.AddDate(0, 0, -7)

	var stats WeeklyStats
	var quizSum float64
	var quizzes, totalSecs, revisitsNotes int
	types := make(map[learner.EventType]bool)
	windowEvents := 0

	for _, ev := range events {
		if ev.Timestamp.Before(weekAgo) {
			continue
		}
		windowEvents++
		types[ev.Type] = true
		switch ev.Type {
		case learner.EventLessonComplete:
			stats.LessonsCompleted++
			totalSecs += ev.TimeSpentSecs
		case learner.EventQuizSubmit:
			quizzes++
			quizSum += ev.QuizScore
		case learner.EventLessonRevisit, learner.EventNoteTaken:
			revisitsNotes++
		}
	}

	if quizzes > 0 {
		stats.AverageQuizScore = quizSum / float64(quizzes)
	}
	stats.TotalMinutes = totalSecs / 60
	stats.EngagementScore = capped(windowEvents*5, 30) +
		capped(p.CurrentStreak*4, 20) +
		capped(len(types)*7, 20) +
		capped(quizzes*5, 15) +
		capped(revisitsNotes*5, 15)
	return stats
}

func capped(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}

func topicBreakdown(p *learner.Profile, cfg config.AnalyticsConfig) []TopicBreakdown {
	topics := make([]*learner.TopicProficiency, 0, len(p.Topics))
	for _, tp := range p.Topics {
		topics = append(topics, tp)
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Score != topics[j].Score {
			return topics[i].Score > topics[j].Score
		}
		return topics[i].TopicID < topics[j].TopicID
	})

	out := make([]TopicBreakdown, 0, len(topics))
	for _, tp := range topics {
		trend := TrendStable
		if n := len(tp.QuizScores); n >= 2 {
			delta := tp.QuizScores[n-1] - tp.QuizScores[n-2]
			switch {
			case delta > cfg.TrendDeltaPoints:
				trend = TrendImproving
			case delta < -cfg.TrendDeltaPoints:
				trend = TrendDeclining
			}
		}
		out = append(out, TopicBreakdown{
			TopicID:        tp.TopicID,
			Name:           tp.Name,
			Proficiency:    tp.Score,
			Trend:          trend,
			Recommendation: topicRecommendation(tp, trend),
		})
	}
	return out
}

func topicRecommendation(tp *learner.TopicProficiency, trend Trend) string {
	switch {
	case trend == TrendDeclining:
		return "Recent scores dipped; schedule a review session for this topic."
	case tp.Score < 50:
		return "Focus your review time here; the fundamentals need reinforcement."
	case tp.Score >= 70:
		return "Strong grasp; occasional review keeps it sharp."
	default:
		return "Making progress; keep practicing regularly."
	}
}

// milestones is the fixed achievement checklist.
func milestones(p *learner.Profile) []Milestone {
	maxTopic := 0
	for _, tp := range p.Topics {
		if tp.Score > maxTopic {
			maxTopic = tp.Score
		}
	}

	quizExcellence := p.TotalQuizzesTaken >= 3 && p.AverageQuizScore >= 80
	quizExcellenceProgress := p.TotalQuizzesTaken * 33
	if p.TotalQuizzesTaken >= 3 {
		quizExcellenceProgress = percentOf(p.AverageQuizScore, 80)
	}

	levelProgress := 33
	switch p.KnowledgeLevel {
	case learner.KnowledgeIntermediate:
		levelProgress = 66
	case learner.KnowledgeAdvanced:
		levelProgress = 100
	}

	return []Milestone{
		{ID: "first-lesson", Label: "Complete your first lesson",
			Achieved: p.TotalLessonsCompleted >= 1, Progress: percentOf(float64(p.TotalLessonsCompleted), 1)},
		{ID: "first-quiz", Label: "Take your first quiz",
			Achieved: p.TotalQuizzesTaken >= 1, Progress: percentOf(float64(p.TotalQuizzesTaken), 1)},
		{ID: "ten-lessons", Label: "Complete 10 lessons",
			Achieved: p.TotalLessonsCompleted >= 10, Progress: percentOf(float64(p.TotalLessonsCompleted), 10)},
		{ID: "twenty-five-lessons", Label: "Complete 25 lessons",
			Achieved: p.TotalLessonsCompleted >= 25, Progress: percentOf(float64(p.TotalLessonsCompleted), 25)},
		{ID: "quiz-excellence", Label: "Average 80%+ across 3 or more quizzes",
			Achieved: quizExcellence, Progress: capped(quizExcellenceProgress, 100)},
		{ID: "week-streak", Label: "Learn 7 days in a row",
			Achieved: p.CurrentStreak >= 7, Progress: percentOf(float64(p.CurrentStreak), 7)},
		{ID: "topic-mastery", Label: "Reach 90+ proficiency in a topic",
			Achieved: maxTopic >= 90, Progress: percentOf(float64(maxTopic), 90)},
		{ID: "advanced-level", Label: "Reach the advanced level",
			Achieved: p.KnowledgeLevel == learner.KnowledgeAdvanced, Progress: levelProgress},
	}
}

func percentOf(value, target float64) int {
	if target <= 0 {
		return 0
	}
	pct := int(math.Round(value / target * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}
