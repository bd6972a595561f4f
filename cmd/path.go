package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/strategy"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the learner's adaptive learning path",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		path := eng.AdaptivePath()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(path)
		}

		printPath(path)
		return nil
	},
}

func printPath(path *strategy.AdaptivePath) {
	fmt.Println(path.Insight)
	fmt.Println()

	if path.Next != nil {
		fmt.Printf("Next up: %s (%s)\n", path.Next.Title, path.Next.CourseID)
		fmt.Printf("  %s\n", path.Next.Reason)
	} else {
		fmt.Println("Next up: all available lessons completed.")
	}

	printRecs("Reinforce", path.Reinforcement)
	printRecs("Practice", path.Practice)
	printRecs("Go deeper", path.Advanced)

	fmt.Println()
	fmt.Println(path.DifficultyNote)
}

func printRecs(heading string, recs []strategy.LessonRecommendation) {
	if len(recs) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", heading)
	for _, rec := range recs {
		fmt.Printf("  - %s (%s): %s\n", rec.Title, rec.CourseID, rec.Reason)
	}
}

func init() {
	pathCmd.Flags().Bool("json", false, "Emit the path as JSON")
}
