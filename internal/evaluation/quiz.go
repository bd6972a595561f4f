// Package evaluation scores quiz submissions and assesses learner
// understanding and readiness.
package evaluation

import (
	"math"
	"sort"
	"strings"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/config"
)

// Pattern tags a quiz submission. Tags are non-exclusive; each rule is
// evaluated independently.
type Pattern string

const (
	PatternPerfectScore      Pattern = "perfect_score"
	PatternNearPerfect       Pattern = "near_perfect"
	PatternPassing           Pattern = "passing"
	PatternStruggling        Pattern = "struggling"
	PatternSignificantGap    Pattern = "significant_gap"
	PatternPossibleGuessing  Pattern = "possible_guessing"
	PatternConsecutiveErrors Pattern = "consecutive_errors"
)

// QuizResult is the outcome of scoring one submission.
type QuizResult struct {
	Score       int // percentage, rounded
	Passed      bool
	Correct     int
	Total       int
	Patterns    []Pattern
	Suggestions []string
}

// ScoreQuiz grades a submission against its questions. Answers map
// question id to the selected option key. An empty question list scores
// 0% with no patterns rather than dividing by zero.
func ScoreQuiz(answers map[string]string, questions []catalog.QuizQuestion, cfg config.EvaluationConfig) QuizResult {
	if len(questions) == 0 {
		return QuizResult{}
	}

	correct := 0
	for _, q := range questions {
		if answerMatches(answers[q.ID], q.Answer) {
			correct++
		}
	}
	score := int(math.Round(float64(correct) / float64(len(questions)) * 100))

	res := QuizResult{
		Score:   score,
		Passed:  score >= cfg.PassPercent,
		Correct: correct,
		Total:   len(questions),
	}

	if score == 100 {
		res.Patterns = append(res.Patterns, PatternPerfectScore)
	}
	if score >= 90 {
		res.Patterns = append(res.Patterns, PatternNearPerfect)
	}
	if score >= cfg.PassPercent {
		res.Patterns = append(res.Patterns, PatternPassing)
	}
	if score >= 50 && score < cfg.PassPercent {
		res.Patterns = append(res.Patterns, PatternStruggling)
		res.Suggestions = append(res.Suggestions, "Review this lesson before moving on.")
	}
	if score < 50 {
		res.Patterns = append(res.Patterns, PatternSignificantGap)
		res.Suggestions = append(res.Suggestions,
			"Revisit the prerequisite lessons for this topic.",
			"Take notes while re-reading; it helps retention.")
	}
	if isGuessing(answers, cfg.GuessingMinAnswers) {
		res.Patterns = append(res.Patterns, PatternPossibleGuessing)
	}
	if hasConsecutiveErrors(answers, questions, cfg.ConsecutiveErrorRun) {
		res.Patterns = append(res.Patterns, PatternConsecutiveErrors)
	}

	return res
}

func answerMatches(given, expected string) bool {
	return given != "" && strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(expected))
}

// isGuessing flags submissions where every answer is the same option.
func isGuessing(answers map[string]string, minAnswers int) bool {
	if len(answers) < minAnswers {
		return false
	}
	first := ""
	for _, a := range answers {
		if first == "" {
			first = a
			continue
		}
		if !strings.EqualFold(a, first) {
			return false
		}
	}
	return first != ""
}

// hasConsecutiveErrors looks for a run of wrong answers. Questions are
// ordered by sorted id, which is a best-effort stand-in for display
// order, so this is a heuristic rather than a guarantee.
func hasConsecutiveErrors(answers map[string]string, questions []catalog.QuizQuestion, runLen int) bool {
	ordered := append([]catalog.QuizQuestion(nil), questions...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	run := 0
	for _, q := range ordered {
		if answerMatches(answers[q.ID], q.Answer) {
			run = 0
			continue
		}
		run++
		if run >= runLen {
			return true
		}
	}
	return false
}
