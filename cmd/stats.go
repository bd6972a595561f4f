package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/analytics"
	"github.com/abhisek/adaptiq/internal/learner"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner profile and performance analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		p := eng.Profile()
		analysis := eng.PerformanceAnalysis()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Profile  *learner.Profile               `json:"profile"`
				Analysis *analytics.PerformanceAnalysis `json:"analysis"`
			}{p, analysis})
		}

		printStats(p, analysis)
		return nil
	},
}

func printStats(p *learner.Profile, analysis *analytics.PerformanceAnalysis) {
	fmt.Printf("Learner %s\n", p.UserID)
	fmt.Printf("  Overall score:   %d (%s)\n", p.OverallScore, p.KnowledgeLevel)
	fmt.Printf("  Lessons done:    %d\n", p.TotalLessonsCompleted)
	fmt.Printf("  Quizzes taken:   %d (avg %.1f)\n", p.TotalQuizzesTaken, p.AverageQuizScore)
	fmt.Printf("  Current streak:  %d days\n", p.CurrentStreak)
	fmt.Printf("  Pace:            %s, engagement risk %s\n", p.LearningSpeed, p.EngagementRisk)
	fmt.Printf("  Recommended:     %s difficulty\n", p.RecommendedDifficulty)

	fmt.Printf("\nThis week: %d lessons, %d min, engagement %d/100, trend %s\n",
		analysis.Weekly.LessonsCompleted, analysis.Weekly.TotalMinutes,
		analysis.Weekly.EngagementScore, analysis.OverallTrend)

	if len(analysis.Topics) > 0 {
		fmt.Println("\nTopics:")
		for _, t := range analysis.Topics {
			fmt.Printf("  %-24s %3d  %-10s %s\n", t.Name, t.Proficiency, t.Trend, t.Recommendation)
		}
	}

	if len(analysis.Predictions) > 0 {
		fmt.Println("\nSignals:")
		for _, sig := range analysis.Predictions {
			fmt.Printf("  [%s] %s\n", sig.Severity, sig.Message)
		}
	}

	achieved := 0
	for _, m := range analysis.Milestones {
		if m.Achieved {
			achieved++
		}
	}
	fmt.Printf("\nMilestones: %d/%d achieved\n", achieved, len(analysis.Milestones))
	next := nextMilestones(analysis.Milestones, 3)
	for _, m := range next {
		fmt.Printf("  %-28s %d%%\n", m.Label, m.Progress)
	}
}

// nextMilestones returns the closest unachieved milestones.
func nextMilestones(milestones []analytics.Milestone, limit int) []analytics.Milestone {
	var pending []analytics.Milestone
	for _, m := range milestones {
		if !m.Achieved {
			pending = append(pending, m)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Progress > pending[j].Progress
	})
	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending
}

func init() {
	statsCmd.Flags().Bool("json", false, "Emit stats as JSON")
}
