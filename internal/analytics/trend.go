// Package analytics computes engagement trends, predictive signals,
// and performance breakdowns from the profile and event history.
package analytics

import (
	"time"

	"github.com/abhisek/adaptiq/internal/config"
	"github.com/abhisek/adaptiq/internal/learner"
)

// Trend classifies a direction of change.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// EngagementTrend compares activity in the trailing week against the
// week before it.
func EngagementTrend(events []learner.LessonEvent, now time.Time, cfg config.AnalyticsConfig) Trend {
	window := time.Duration(cfg.TrendWindowDays) * 24 * time.Hour
	weekAgo := now.Add(-window)
	twoWeeksAgo := now.Add(-2 * window)

	current, prior := 0, 0
	for _, ev := range events {
		switch {
		case !ev.Timestamp.Before(weekAgo):
			current++
		case !ev.Timestamp.Before(twoWeeksAgo):
			prior++
		}
	}

	switch {
	case current == 0 && prior == 0:
		return TrendStable
	case prior == 0:
		return TrendImproving
	case current == 0:
		return TrendDeclining
	}

	ratio := float64(current) / float64(prior)
	switch {
	case ratio >= cfg.ImprovingRatio:
		return TrendImproving
	case ratio <= cfg.DecliningRatio:
		return TrendDeclining
	default:
		return TrendStable
	}
}
