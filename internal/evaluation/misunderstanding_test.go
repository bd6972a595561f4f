package evaluation

import (
	"testing"

	"github.com/abhisek/adaptiq/internal/learner"
)

func TestDetectLowAverage(t *testing.T) {
	p := learner.NewProfile("u1")
	p.Topics["ml"] = &learner.TopicProficiency{
		TopicID:          "ml",
		Name:             "Machine Learning",
		LessonsCompleted: 3,
		QuizScores:       []float64{50, 55},
	}

	out := DetectMisunderstandings(p, evalCfg)
	if len(out) != 1 || out[0].Kind != KindLowAverage {
		t.Fatalf("out = %+v", out)
	}
	if out[0].TopicID != "ml" {
		t.Errorf("topic = %q", out[0].TopicID)
	}
}

func TestLowAverageNeedsPractice(t *testing.T) {
	p := learner.NewProfile("u1")
	// One completed lesson is not enough evidence.
	p.Topics["ml"] = &learner.TopicProficiency{
		TopicID:          "ml",
		LessonsCompleted: 1,
		QuizScores:       []float64{30},
	}

	if out := DetectMisunderstandings(p, evalCfg); len(out) != 0 {
		t.Errorf("out = %+v", out)
	}
}

func TestDetectRegression(t *testing.T) {
	p := learner.NewProfile("u1")
	p.Topics["nlp"] = &learner.TopicProficiency{
		TopicID:    "nlp",
		Name:       "NLP",
		QuizScores: []float64{90, 70},
	}

	out := DetectMisunderstandings(p, evalCfg)
	if len(out) != 1 || out[0].Kind != KindRegression {
		t.Fatalf("out = %+v", out)
	}

	// A 10-point dip is within normal variance.
	p.Topics["nlp"].QuizScores = []float64{90, 80}
	if out := DetectMisunderstandings(p, evalCfg); len(out) != 0 {
		t.Errorf("out = %+v", out)
	}
}

func TestMisunderstandingsSortedByTopic(t *testing.T) {
	p := learner.NewProfile("u1")
	for _, id := range []string{"zeta", "alpha"} {
		p.Topics[id] = &learner.TopicProficiency{
			TopicID:          id,
			LessonsCompleted: 2,
			QuizScores:       []float64{40},
		}
	}

	out := DetectMisunderstandings(p, evalCfg)
	if len(out) != 2 || out[0].TopicID != "alpha" || out[1].TopicID != "zeta" {
		t.Errorf("out = %+v", out)
	}
}
