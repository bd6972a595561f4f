package evaluation

import (
	"testing"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/config"
)

var evalCfg = config.DefaultConfig().Evaluation

func fourQuestions() []catalog.QuizQuestion {
	return []catalog.QuizQuestion{
		{ID: "q1", Prompt: "1?", Answer: "a"},
		{ID: "q2", Prompt: "2?", Answer: "b"},
		{ID: "q3", Prompt: "3?", Answer: "c"},
		{ID: "q4", Prompt: "4?", Answer: "d"},
	}
}

func hasPattern(res QuizResult, p Pattern) bool {
	for _, got := range res.Patterns {
		if got == p {
			return true
		}
	}
	return false
}

func TestScoreQuizPerfect(t *testing.T) {
	res := ScoreQuiz(map[string]string{"q1": "a", "q2": "b", "q3": "c", "q4": "d"}, fourQuestions(), evalCfg)

	if res.Score != 100 || !res.Passed || res.Correct != 4 || res.Total != 4 {
		t.Errorf("unexpected result: %+v", res)
	}
	for _, want := range []Pattern{PatternPerfectScore, PatternNearPerfect, PatternPassing} {
		if !hasPattern(res, want) {
			t.Errorf("missing pattern %s", want)
		}
	}
}

func TestScoreQuizAnswerMatchingIsLenient(t *testing.T) {
	res := ScoreQuiz(map[string]string{"q1": " A ", "q2": "B", "q3": "c", "q4": "D"}, fourQuestions(), evalCfg)
	if res.Correct != 4 {
		t.Errorf("correct = %d, want 4 (case and whitespace should not matter)", res.Correct)
	}
}

func TestScoreQuizStruggling(t *testing.T) {
	// 2 of 4 = 50%: struggling, not a significant gap.
	res := ScoreQuiz(map[string]string{"q1": "a", "q2": "b", "q3": "x", "q4": "x"}, fourQuestions(), evalCfg)

	if res.Score != 50 || res.Passed {
		t.Errorf("unexpected result: %+v", res)
	}
	if !hasPattern(res, PatternStruggling) || hasPattern(res, PatternSignificantGap) {
		t.Errorf("patterns = %v", res.Patterns)
	}
	if len(res.Suggestions) == 0 {
		t.Error("expected a review suggestion")
	}
}

func TestScoreQuizSignificantGap(t *testing.T) {
	res := ScoreQuiz(map[string]string{"q1": "a"}, fourQuestions(), evalCfg)

	if res.Score != 25 {
		t.Errorf("score = %d, want 25", res.Score)
	}
	if !hasPattern(res, PatternSignificantGap) {
		t.Errorf("patterns = %v", res.Patterns)
	}
}

func TestScoreQuizGuessingDetection(t *testing.T) {
	// All four answers identical: one happens to be right.
	res := ScoreQuiz(map[string]string{"q1": "a", "q2": "a", "q3": "a", "q4": "a"}, fourQuestions(), evalCfg)
	if !hasPattern(res, PatternPossibleGuessing) {
		t.Errorf("expected guessing pattern, got %v", res.Patterns)
	}

	// Two identical answers are below the detection floor.
	res = ScoreQuiz(map[string]string{"q1": "a", "q2": "a"}, fourQuestions(), evalCfg)
	if hasPattern(res, PatternPossibleGuessing) {
		t.Errorf("unexpected guessing pattern with %d answers", 2)
	}

	// Varied answers are not guessing.
	res = ScoreQuiz(map[string]string{"q1": "a", "q2": "b", "q3": "a", "q4": "c"}, fourQuestions(), evalCfg)
	if hasPattern(res, PatternPossibleGuessing) {
		t.Errorf("varied answers flagged as guessing: %v", res.Patterns)
	}
}

func TestScoreQuizConsecutiveErrors(t *testing.T) {
	// q2..q4 wrong: a run of three.
	res := ScoreQuiz(map[string]string{"q1": "a", "q2": "x", "q3": "y", "q4": "z"}, fourQuestions(), evalCfg)
	if !hasPattern(res, PatternConsecutiveErrors) {
		t.Errorf("expected consecutive errors, got %v", res.Patterns)
	}

	// Alternating wrong answers never build a run.
	res = ScoreQuiz(map[string]string{"q1": "x", "q2": "b", "q3": "y", "q4": "d"}, fourQuestions(), evalCfg)
	if hasPattern(res, PatternConsecutiveErrors) {
		t.Errorf("alternating errors flagged: %v", res.Patterns)
	}
}

func TestScoreQuizEmptyQuestions(t *testing.T) {
	res := ScoreQuiz(map[string]string{"q1": "a"}, nil, evalCfg)
	if res.Score != 0 || res.Passed || len(res.Patterns) != 0 {
		t.Errorf("empty quiz should be a zero result, got %+v", res)
	}
}

func TestScoreQuizUnansweredCountsWrong(t *testing.T) {
	res := ScoreQuiz(map[string]string{}, fourQuestions(), evalCfg)
	if res.Correct != 0 || res.Score != 0 {
		t.Errorf("blank submission should score 0, got %+v", res)
	}
}
