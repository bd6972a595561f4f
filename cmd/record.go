package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/engine"
)

var recordCmd = &cobra.Command{
	Use:   "record <event-type> <course-id> <lesson-id>",
	Short: "Record a learner event",
	Long: "Record a behavioral event and update the learner model.\n\n" +
		"Event types: lesson_start, lesson_complete, quiz_submit, quiz_retake,\n" +
		"note_taken, lesson_revisit.",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		if _, err := eng.StartSession(ctx); err != nil {
			return fmt.Errorf("start session: %w", err)
		}
		if err := recordEvent(ctx, eng, cmd, args[0], args[1], args[2]); err != nil {
			return err
		}
		if err := eng.EndSession(ctx); err != nil {
			return fmt.Errorf("end session: %w", err)
		}

		p := eng.Profile()
		fmt.Printf("Recorded %s. Overall score %d, level %s, streak %d.\n",
			args[0], p.OverallScore, p.KnowledgeLevel, p.CurrentStreak)
		return nil
	},
}

func recordEvent(ctx context.Context, eng *engine.Engine, cmd *cobra.Command, typ, courseID, lessonID string) error {
	timeSpent, _ := cmd.Flags().GetInt("time")
	score, _ := cmd.Flags().GetFloat64("score")
	attempt, _ := cmd.Flags().GetInt("attempt")

	switch typ {
	case "lesson_start":
		return eng.RecordLessonStart(ctx, courseID, lessonID)
	case "lesson_complete":
		return eng.RecordLessonComplete(ctx, courseID, lessonID, timeSpent)
	case "quiz_submit":
		return eng.RecordQuizSubmit(ctx, courseID, lessonID, score)
	case "quiz_retake":
		return eng.RecordQuizRetake(ctx, courseID, lessonID, score, attempt)
	case "note_taken":
		return eng.RecordNoteTaken(ctx, courseID, lessonID)
	case "lesson_revisit":
		return eng.RecordLessonRevisit(ctx, courseID, lessonID)
	default:
		return fmt.Errorf("unknown event type %q", typ)
	}
}

func init() {
	recordCmd.Flags().Int("time", 0, "Time spent in seconds (lesson_complete)")
	recordCmd.Flags().Float64("score", 0, "Quiz score percentage (quiz_submit, quiz_retake)")
	recordCmd.Flags().Int("attempt", 2, "Attempt number (quiz_retake)")
}
