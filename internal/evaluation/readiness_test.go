package evaluation

import (
	"strings"
	"testing"

	"github.com/abhisek/adaptiq/internal/catalog"
	"github.com/abhisek/adaptiq/internal/learner"
)

func TestBeginnerAlwaysReady(t *testing.T) {
	p := learner.NewProfile("u1")
	res := AssessReadiness(p, catalog.Beginner, evalCfg)
	if !res.Ready || len(res.Reasons) != 0 {
		t.Errorf("fresh profile should be ready for beginner content: %+v", res)
	}
}

func TestIntermediateGates(t *testing.T) {
	p := learner.NewProfile("u1")
	res := AssessReadiness(p, catalog.Intermediate, evalCfg)
	if res.Ready {
		t.Fatal("fresh profile should not be ready for intermediate")
	}
	// Empty profile fails score and lessons gates; the quiz gate only
	// applies once quizzes exist.
	if len(res.Reasons) != 2 {
		t.Errorf("reasons = %v, want 2 entries", res.Reasons)
	}

	p.OverallScore = 45
	p.TotalLessonsCompleted = 8
	p.TotalQuizzesTaken = 2
	p.AverageQuizScore = 40
	res = AssessReadiness(p, catalog.Intermediate, evalCfg)
	if res.Ready || len(res.Reasons) != 1 {
		t.Fatalf("expected only the quiz gate to fail: %+v", res)
	}
	if !strings.Contains(res.Reasons[0], "quiz average") {
		t.Errorf("reason = %q", res.Reasons[0])
	}

	p.AverageQuizScore = 72
	res = AssessReadiness(p, catalog.Intermediate, evalCfg)
	if !res.Ready {
		t.Errorf("expected ready: %+v", res)
	}
}

func TestAdvancedGatesAreStricter(t *testing.T) {
	p := learner.NewProfile("u1")
	p.OverallScore = 45
	p.TotalLessonsCompleted = 8
	p.TotalQuizzesTaken = 3
	p.AverageQuizScore = 72

	if res := AssessReadiness(p, catalog.Intermediate, evalCfg); !res.Ready {
		t.Fatalf("should be ready for intermediate: %+v", res)
	}
	res := AssessReadiness(p, catalog.Advanced, evalCfg)
	if res.Ready {
		t.Fatal("should not be ready for advanced")
	}
	// Fails score (45 < 55) and lessons (8 < 15); quiz average 72 passes.
	if len(res.Reasons) != 2 {
		t.Errorf("reasons = %v", res.Reasons)
	}
}

func TestGateThresholdsConfigurable(t *testing.T) {
	p := learner.NewProfile("u1")
	p.OverallScore = 45
	p.TotalLessonsCompleted = 8

	cfg := evalCfg
	cfg.IntermediateMinScore = 60
	cfg.IntermediateMinLessons = 20
	if res := AssessReadiness(p, catalog.Intermediate, cfg); res.Ready || len(res.Reasons) != 2 {
		t.Errorf("raised gates should block: %+v", res)
	}

	cfg.IntermediateMinScore = 10
	cfg.IntermediateMinLessons = 1
	if res := AssessReadiness(p, catalog.Intermediate, cfg); !res.Ready {
		t.Errorf("lowered gates should pass: %+v", res)
	}
}
