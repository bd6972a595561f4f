package catalog

// courseInfo holds the fixed per-course classification used when building
// the registry. Courses absent from the table fall back to a generated
// topic id and beginner baseline.
type courseInfo struct {
	TopicID   string
	TopicName string
	Baseline  Difficulty
	Prereqs   []string // course ids expected completed first
	Skills    []string
}

var courseTable = map[string]courseInfo{
	"intro-to-ai": {
		TopicID:   "ai-foundations",
		TopicName: "AI Foundations",
		Baseline:  Beginner,
		Skills:    []string{"ai-literacy", "terminology", "history-of-ai"},
	},
	"prompt-engineering": {
		TopicID:   "prompt-engineering",
		TopicName: "Prompt Engineering",
		Baseline:  Beginner,
		Prereqs:   []string{"intro-to-ai"},
		Skills:    []string{"prompt-design", "iteration", "evaluation"},
	},
	"machine-learning-basics": {
		TopicID:   "machine-learning",
		TopicName: "Machine Learning",
		Baseline:  Intermediate,
		Prereqs:   []string{"intro-to-ai"},
		Skills:    []string{"supervised-learning", "model-evaluation", "feature-engineering"},
	},
	"nlp-essentials": {
		TopicID:   "nlp",
		TopicName: "Natural Language Processing",
		Baseline:  Intermediate,
		Prereqs:   []string{"machine-learning-basics"},
		Skills:    []string{"tokenization", "embeddings", "text-classification"},
	},
	"deep-learning-fundamentals": {
		TopicID:   "deep-learning",
		TopicName: "Deep Learning",
		Baseline:  Advanced,
		Prereqs:   []string{"machine-learning-basics"},
		Skills:    []string{"neural-networks", "backpropagation", "regularization"},
	},
	"applied-ml-systems": {
		TopicID:   "ml-systems",
		TopicName: "Applied ML Systems",
		Baseline:  Advanced,
		Prereqs:   []string{"machine-learning-basics", "deep-learning-fundamentals"},
		Skills:    []string{"deployment", "monitoring", "data-pipelines"},
	},
}

// infoForCourse returns the course classification, generating a fallback
// for unknown course ids.
func infoForCourse(courseID string) courseInfo {
	if info, ok := courseTable[courseID]; ok {
		return info
	}
	return courseInfo{
		TopicID:   "topic-" + courseID,
		TopicName: courseID,
		Baseline:  Beginner,
	}
}

// TopicForCourse maps a course id to its topic cluster id.
func TopicForCourse(courseID string) string {
	return infoForCourse(courseID).TopicID
}

// TopicNameForCourse maps a course id to its topic display name.
func TopicNameForCourse(courseID string) string {
	return infoForCourse(courseID).TopicName
}
