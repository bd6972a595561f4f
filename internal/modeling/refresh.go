package modeling

import (
	"math"
	"time"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/config"
	"github.com/abhisek/adaptiq/internal/learner"
)

// Refresh recomputes every profile-level aggregate from the current
// profile and event history. It is idempotent: calling it twice with no
// new events in between yields an identical profile.
func (s *Service) Refresh(now time.Time) {
	p := s.state.Profile()
	events := s.state.Events(learner.Filter{})

	overall := overallScore(p)
	level := knowledgeLevel(overall, p, s.cfg.Modeling)
	speed := learningSpeed(events, s.cfg.Modeling)
	risk := engagementRisk(p, events, now, s.cfg.Risk)
	difficulty := recommendedDifficulty(level, p.AverageQuizScore, s.cfg.Modeling)

	s.state.UpdateProfile(learner.ProfilePatch{
		OverallScore:          &overall,
		KnowledgeLevel:        &level,
		LearningSpeed:         &speed,
		EngagementRisk:        &risk,
		RecommendedDifficulty: &difficulty,
	})
}

// overallScore composites quiz performance, topic mastery, and a capped
// completion-volume bonus. Topics with zero entries contribute 0.
func overallScore(p *learner.Profile) int {
	volume := float64(p.TotalLessonsCompleted) * 0.5
	if volume > 20 {
		volume = 20
	}
	score := p.AverageQuizScore*0.4 + p.MeanTopicScore()*0.4 + volume
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}

func knowledgeLevel(overall int, p *learner.Profile, cfg config.ModelingConfig) learner.KnowledgeLevel {
	lessons := float64(p.TotalLessonsCompleted)
	if lessons > 50 {
		lessons = 50
	}
	composite := float64(overall)*0.4 + p.AverageQuizScore*0.4 + lessons*0.4

	switch {
	case composite >= cfg.AdvancedComposite:
		return learner.KnowledgeAdvanced
	case composite >= cfg.IntermediateComposite:
		return learner.KnowledgeIntermediate
	default:
		return learner.KnowledgeBeginner
	}
}

// learningSpeed compares average completion time against the baseline.
// Too few timed samples defaults to moderate.
func learningSpeed(events []learner.LessonEvent, cfg config.ModelingConfig) learner.LearningSpeed {
	var totalSecs, samples int
	for _, ev := range events {
		if ev.Type == learner.EventLessonComplete && ev.TimeSpentSecs > 0 {
			totalSecs += ev.TimeSpentSecs
			samples++
		}
	}
	if samples < cfg.SpeedMinSamples {
		return learner.SpeedModerate
	}

	avg := float64(totalSecs) / float64(samples)
	switch {
	case avg < cfg.SpeedBaselineSecs*cfg.SpeedFastRatio:
		return learner.SpeedFast
	case avg > cfg.SpeedBaselineSecs*cfg.SpeedSlowRatio:
		return learner.SpeedSlow
	default:
		return learner.SpeedModerate
	}
}

// engagementRisk scores disengagement signals additively and buckets
// the total.
func engagementRisk(p *learner.Profile, events []learner.LessonEvent, now time.Time, cfg config.RiskConfig) learner.EngagementRisk {
	score := 0

	if days := daysSinceActive(p.LastActiveDate, now); days >= 0 {
		switch {
		case days >= 14:
			score += cfg.InactiveDays14
		case days >= 7:
			score += cfg.InactiveDays7
		case days >= 3:
			score += cfg.InactiveDays3
		}
	}

	thisWeek, priorWeek := 0, 0
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)
	for _, ev := range events {
		switch {
		case !ev.Timestamp.Before(weekAgo):
			thisWeek++
		case !ev.Timestamp.Before(twoWeeksAgo):
			priorWeek++
		}
	}
	if priorWeek > 0 && thisWeek*2 < priorWeek {
		score += cfg.WeekDropPoints
	}

	if p.AverageQuizScore > 0 && p.AverageQuizScore < cfg.LowQuizAvg {
		score += cfg.LowQuizPoints
	}
	if p.CurrentStreak == 0 && p.SessionCount > cfg.MinSessions {
		score += cfg.BrokenStreak
	}

	retakes := 0
	retakeSince := now.AddDate(0, 0, -cfg.RetakeBurstDays)
	for _, ev := range events {
		if ev.Type == learner.EventQuizRetake && !ev.Timestamp.Before(retakeSince) {
			retakes++
		}
	}
	if retakes >= cfg.RetakeBurstMin {
		score += cfg.RetakeBurst
	}

	switch {
	case score >= cfg.CriticalScore:
		return learner.RiskCritical
	case score >= cfg.HighScore:
		return learner.RiskHigh
	case score >= cfg.MediumScore:
		return learner.RiskMedium
	default:
		return learner.RiskLow
	}
}

// recommendedDifficulty derives the next content tier from the
// knowledge level: a high quiz average steps up one tier, a failing
// average steps down one.
func recommendedDifficulty(level learner.KnowledgeLevel, quizAvg float64, cfg config.ModelingConfig) catalog.Difficulty {
	base := difficultyForLevel(level)
	switch {
	case quizAvg >= cfg.StepUpQuizAvg && level != learner.KnowledgeAdvanced:
		return base.StepUp()
	case quizAvg > 0 && quizAvg < cfg.StepDownQuizAvg && level != learner.KnowledgeBeginner:
		return base.StepDown()
	default:
		return base
	}
}

func difficultyForLevel(level learner.KnowledgeLevel) catalog.Difficulty {
	switch level {
	case learner.KnowledgeAdvanced:
		return catalog.Advanced
	case learner.KnowledgeIntermediate:
		return catalog.Intermediate
	default:
		return catalog.Beginner
	}
}

// daysSinceActive returns whole days since the stored last-active
// calendar date, or -1 when the learner has never been active.
func daysSinceActive(lastActive string, now time.Time) int {
	if lastActive == "" {
		return -1
	}
	last, err := time.Parse(learner.DateLayout, lastActive)
	if err != nil {
		return -1
	}
	today, _ := time.Parse(learner.DateLayout, now.Format(learner.DateLayout))
	return int(today.Sub(last).Hours() / 24)
}
