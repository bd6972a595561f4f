// Package config centralizes the engine's heuristic thresholds so the
// branching logic that uses them can be tuned and tested in isolation.
package config

// Config aggregates all tunable engine parameters.
type Config struct {
	Store      StoreConfig
	Learner    LearnerConfig
	Modeling   ModelingConfig
	Risk       RiskConfig
	Evaluation EvaluationConfig
	Strategy   StrategyConfig
	Analytics  AnalyticsConfig
}

// LearnerConfig bounds the derived strength and weakness highlight
// lists on the profile.
type LearnerConfig struct {
	StrengthScoreMin int // topics at or above this qualify as strengths
	WeaknessScoreMax int // topics below this qualify as weaknesses
	MaxHighlights    int // cap on each list's length
}

// StoreConfig bounds the in-memory and persisted history.
type StoreConfig struct {
	MaxLessonEvents  int // FIFO cap on the lesson event log
	MaxSessionEvents int // FIFO cap on the session event log
	SnapshotKeep     int // snapshots retained per user
}

// ModelingConfig holds profile refresh parameters.
type ModelingConfig struct {
	LessonScoreIncrement  int     // flat topic score gain per completed lesson
	QuizWeight            float64 // quiz share of a topic score once quizzes exist
	VolumeWeight          float64 // completion-volume share of a topic score
	VolumePerLesson       int     // volume points per completed lesson (capped 100)
	AdvancedComposite     float64 // knowledge level composite cutoffs
	IntermediateComposite float64
	SpeedBaselineSecs     float64 // reference lesson completion time
	SpeedFastRatio        float64 // below this fraction of baseline = fast
	SpeedSlowRatio        float64 // above this fraction of baseline = slow
	SpeedMinSamples       int     // timed completions needed to classify
	StepUpQuizAvg         float64 // quiz average that steps difficulty up
	StepDownQuizAvg       float64 // quiz average that steps difficulty down
}

// RiskConfig holds the additive engagement risk scoring parameters.
type RiskConfig struct {
	InactiveDays14  int // points for >=14 days inactive
	InactiveDays7   int
	InactiveDays3   int
	WeekDropPoints  int // this week's events under half of prior week's
	LowQuizPoints   int // quiz average >0 and under LowQuizAvg
	LowQuizAvg      float64
	BrokenStreak    int // streak 0 with more than MinSessions sessions
	MinSessions     int
	RetakeBurst     int // >=RetakeBurstMin retakes in the last RetakeBurstDays days
	RetakeBurstDays int
	RetakeBurstMin  int
	CriticalScore   int
	HighScore       int
	MediumScore     int
}

// EvaluationConfig holds quiz scoring and readiness parameters.
type EvaluationConfig struct {
	PassPercent          int
	GuessingMinAnswers   int // identical answers needed to flag guessing
	ConsecutiveErrorRun  int
	RegressionDrop       float64 // points below the prior quiz score
	LowTopicAverage      float64 // misunderstanding mean cutoff
	ComprehensionPerLess int     // volume points per lesson in comprehension
	SkimSecs             int     // under this average = skimming penalty
	RushSecs             int     // under this average = mild penalty
	SkimFactor           float64
	RushFactor           float64

	// Readiness gates per target tier. The quiz gate only applies once
	// the learner has taken at least one quiz.
	IntermediateMinScore   int
	IntermediateMinLessons int
	IntermediateMinQuizAvg float64
	AdvancedMinScore       int
	AdvancedMinLessons     int
	AdvancedMinQuizAvg     float64
}

// StrategyConfig holds recommendation selection parameters.
type StrategyConfig struct {
	MaxReinforcement   int
	MaxPractice        int
	MaxAdvanced        int
	PracticeRetakeMax  int     // recent quiz submissions considered for retakes
	PracticeScoreBar   float64 // retake quizzes scored below this
	PracticeMinLessons int     // topic completions before suggesting new quizzes
	ReviewStaleDays    int     // days since access that triggers review
	ReviewScoreBar     int     // only topics under this score go stale
	ReviewDropPoints   float64 // drop across last two quizzes that triggers review
	BaseSessionMins    int
	FastSessionMins    int
	SlowSessionMins    int
	RiskCapMins        int // cap when engagement risk is high or critical
}

// AnalyticsConfig holds trend, signal, and milestone parameters.
type AnalyticsConfig struct {
	TrendWindowDays  int
	ImprovingRatio   float64
	DecliningRatio   float64
	DropoutWarnDays  int
	DropoutCritDays  int
	SessionDropPrior int     // sessions in the prior week
	SessionDropNow   int     // sessions this week at or under this
	WeakTopicAvg     float64 // low-comprehension mean cutoff
	WeakTopicCritAvg float64
	ReviewHighScore  int // score >= this reviews every ReviewHighDays
	ReviewHighDays   int
	ReviewMidScore   int
	ReviewMidDays    int
	ReviewLowDays    int
	ReviewSkipScore  int     // topics at or above this never need review
	AdvancedScore    int     // strength score for ready_for_advanced
	AdvancedQuizBar  float64 // last two quiz scores must both reach this
	TrendDeltaPoints float64 // per-topic quiz delta for improving/declining
}

// DefaultConfig returns the engine's tuned defaults.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			MaxLessonEvents:  500,
			MaxSessionEvents: 100,
			SnapshotKeep:     10,
		},
		Learner: LearnerConfig{
			StrengthScoreMin: 70,
			WeaknessScoreMax: 50,
			MaxHighlights:    5,
		},
		Modeling: ModelingConfig{
			LessonScoreIncrement:  5,
			QuizWeight:            0.6,
			VolumeWeight:          0.4,
			VolumePerLesson:       10,
			AdvancedComposite:     70,
			IntermediateComposite: 35,
			SpeedBaselineSecs:     900,
			SpeedFastRatio:        0.6,
			SpeedSlowRatio:        1.5,
			SpeedMinSamples:       3,
			StepUpQuizAvg:         85,
			StepDownQuizAvg:       50,
		},
		Risk: RiskConfig{
			InactiveDays14:  40,
			InactiveDays7:   25,
			InactiveDays3:   10,
			WeekDropPoints:  20,
			LowQuizPoints:   15,
			LowQuizAvg:      50,
			BrokenStreak:    10,
			MinSessions:     3,
			RetakeBurst:     15,
			RetakeBurstDays: 7,
			RetakeBurstMin:  3,
			CriticalScore:   50,
			HighScore:       30,
			MediumScore:     15,
		},
		Evaluation: EvaluationConfig{
			PassPercent:          70,
			GuessingMinAnswers:   3,
			ConsecutiveErrorRun:  3,
			RegressionDrop:       15,
			LowTopicAverage:      60,
			ComprehensionPerLess: 12,
			SkimSecs:             120,
			RushSecs:             300,
			SkimFactor:           0.7,
			RushFactor:           0.9,

			IntermediateMinScore:   30,
			IntermediateMinLessons: 5,
			IntermediateMinQuizAvg: 50,
			AdvancedMinScore:       55,
			AdvancedMinLessons:     15,
			AdvancedMinQuizAvg:     65,
		},
		Strategy: StrategyConfig{
			MaxReinforcement:   3,
			MaxPractice:        3,
			MaxAdvanced:        2,
			PracticeRetakeMax:  5,
			PracticeScoreBar:   80,
			PracticeMinLessons: 2,
			ReviewStaleDays:    7,
			ReviewScoreBar:     70,
			ReviewDropPoints:   10,
			BaseSessionMins:    30,
			FastSessionMins:    45,
			SlowSessionMins:    20,
			RiskCapMins:        20,
		},
		Analytics: AnalyticsConfig{
			TrendWindowDays:  7,
			ImprovingRatio:   1.2,
			DecliningRatio:   0.6,
			DropoutWarnDays:  7,
			DropoutCritDays:  14,
			SessionDropPrior: 3,
			SessionDropNow:   1,
			WeakTopicAvg:     50,
			WeakTopicCritAvg: 30,
			ReviewHighScore:  70,
			ReviewHighDays:   14,
			ReviewMidScore:   50,
			ReviewMidDays:    7,
			ReviewLowDays:    3,
			ReviewSkipScore:  90,
			AdvancedScore:    80,
			AdvancedQuizBar:  80,
			TrendDeltaPoints: 5,
		},
	}
}
