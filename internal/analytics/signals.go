package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/adaptiq/internal/config"
	"github.com/abhisek/adaptiq/internal/learner"
)

// SignalType identifies a predictive signal.
type SignalType string

const (
	SignalDropoutRisk      SignalType = "dropout_risk"
	SignalLowComprehension SignalType = "low_comprehension"
	SignalOptimalReview    SignalType = "optimal_review"
	SignalReadyForAdvanced SignalType = "ready_for_advanced"
)

// Severity ranks a signal's urgency.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

func severityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// Signal is a severity-ranked prediction surfaced to the learner.
type Signal struct {
	Type           SignalType `json:"type"`
	Severity       Severity   `json:"severity"`
	Confidence     float64    `json:"confidence"` // 0-1
	Message        string     `json:"message"`
	Recommendation string     `json:"recommendation"`
	Topics         []string   `json:"topics,omitempty"`
	Timestamp      time.Time  `json:"timestamp"`
}

// GeneratePredictiveSignals derives zero or more signals from the
// current profile, sorted by severity then descending confidence.
func GeneratePredictiveSignals(p *learner.Profile, sessions []learner.SessionEvent, now time.Time, cfg config.AnalyticsConfig) []Signal {
	var signals []Signal

	signals = append(signals, dropoutSignals(p, sessions, now, cfg)...)
	signals = append(signals, comprehensionSignals(p, now, cfg)...)
	signals = append(signals, reviewSignals(p, now, cfg)...)
	signals = append(signals, advancedSignals(p, now, cfg)...)

	sort.SliceStable(signals, func(i, j int) bool {
		ri, rj := severityRank(signals[i].Severity), severityRank(signals[j].Severity)
		if ri != rj {
			return ri < rj
		}
		return signals[i].Confidence > signals[j].Confidence
	})
	return signals
}

func dropoutSignals(p *learner.Profile, sessions []learner.SessionEvent, now time.Time, cfg config.AnalyticsConfig) []Signal {
	var signals []Signal

	if days := daysSinceActive(p.LastActiveDate, now); days >= cfg.DropoutWarnDays {
		severity := SeverityWarning
		if days >= cfg.DropoutCritDays {
			severity = SeverityCritical
		}
		conf := 0.5 + float64(days)*0.02
		if conf > 0.95 {
			conf = 0.95
		}
		signals = append(signals, Signal{
			Type:           SignalDropoutRisk,
			Severity:       severity,
			Confidence:     conf,
			Message:        fmt.Sprintf("No activity for %d days.", days),
			Recommendation: "Schedule a short session; even ten minutes rebuilds the habit.",
			Timestamp:      now,
		})
	}

	// A sharp week-over-week collapse in session count is an
	// independent dropout signal.
	thisWeek, priorWeek := 0, 0
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)
	for _, ev := range sessions {
		if ev.Action != learner.SessionStart {
			continue
		}
		switch {
		case !ev.Timestamp.Before(weekAgo):
			thisWeek++
		case !ev.Timestamp.Before(twoWeeksAgo):
			priorWeek++
		}
	}
	if priorWeek >= cfg.SessionDropPrior && thisWeek <= cfg.SessionDropNow {
		signals = append(signals, Signal{
			Type:           SignalDropoutRisk,
			Severity:       SeverityWarning,
			Confidence:     0.7,
			Message:        fmt.Sprintf("Sessions dropped from %d last week to %d this week.", priorWeek, thisWeek),
			Recommendation: "Pick a consistent time of day to study and protect it.",
			Timestamp:      now,
		})
	}
	return signals
}

func comprehensionSignals(p *learner.Profile, now time.Time, cfg config.AnalyticsConfig) []Signal {
	var signals []Signal
	for _, topicID := range sortedTopicIDs(p) {
		tp := p.Topics[topicID]
		if len(tp.QuizScores) < 2 {
			continue
		}
		avg := tp.QuizAverage()
		if avg >= cfg.WeakTopicAvg {
			continue
		}
		severity := SeverityWarning
		if avg < cfg.WeakTopicCritAvg {
			severity = SeverityCritical
		}
		conf := 0.5 + (cfg.WeakTopicAvg-avg)/100
		if conf > 0.9 {
			conf = 0.9
		}
		signals = append(signals, Signal{
			Type:           SignalLowComprehension,
			Severity:       severity,
			Confidence:     conf,
			Message:        fmt.Sprintf("Quiz scores in %s average %.0f%%.", tp.Name, avg),
			Recommendation: "Revisit the fundamentals before attempting new material in this topic.",
			Topics:         []string{topicID},
			Timestamp:      now,
		})
	}
	return signals
}

func reviewSignals(p *learner.Profile, now time.Time, cfg config.AnalyticsConfig) []Signal {
	var signals []Signal
	for _, topicID := range sortedTopicIDs(p) {
		tp := p.Topics[topicID]
		if tp.Score >= cfg.ReviewSkipScore || tp.LastAccessed.IsZero() {
			continue
		}

		// Stronger topics tolerate longer gaps before review.
		threshold := cfg.ReviewLowDays
		switch {
		case tp.Score >= cfg.ReviewHighScore:
			threshold = cfg.ReviewHighDays
		case tp.Score >= cfg.ReviewMidScore:
			threshold = cfg.ReviewMidDays
		}

		days := int(now.Sub(tp.LastAccessed).Hours() / 24)
		if days <= threshold {
			continue
		}
		signals = append(signals, Signal{
			Type:           SignalOptimalReview,
			Severity:       SeverityInfo,
			Confidence:     0.6,
			Message:        fmt.Sprintf("%s hasn't been touched in %d days; now is a good time to review.", tp.Name, days),
			Recommendation: "A quick review session locks in what you learned.",
			Topics:         []string{topicID},
			Timestamp:      now,
		})
	}
	return signals
}

func advancedSignals(p *learner.Profile, now time.Time, cfg config.AnalyticsConfig) []Signal {
	var signals []Signal
	for _, topicID := range p.Strengths {
		tp := p.Topics[topicID]
		if tp == nil || tp.Score < cfg.AdvancedScore {
			continue
		}
		n := len(tp.QuizScores)
		if n < 2 || tp.QuizScores[n-1] < cfg.AdvancedQuizBar || tp.QuizScores[n-2] < cfg.AdvancedQuizBar {
			continue
		}
		signals = append(signals, Signal{
			Type:           SignalReadyForAdvanced,
			Severity:       SeverityInfo,
			Confidence:     0.8,
			Message:        fmt.Sprintf("Your recent %s quiz scores show you're ready for advanced content.", tp.Name),
			Recommendation: "Try an advanced course that builds on this topic.",
			Topics:         []string{topicID},
			Timestamp:      now,
		})
	}
	return signals
}

func sortedTopicIDs(p *learner.Profile) []string {
	ids := make([]string, 0, len(p.Topics))
	for id := range p.Topics {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
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
