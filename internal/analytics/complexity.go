package analytics

import "github.com/abhisek/adaptiq/internal/learner"

// ExplanationComplexity maps the knowledge level to a content
// adaptation hint consumed by explanation renderers.
func ExplanationComplexity(level learner.KnowledgeLevel) string {
	switch level {
	case learner.KnowledgeAdvanced:
		return "technical"
	case learner.KnowledgeIntermediate:
		return "balanced"
	default:
		return "simple"
	}
}

// exampleTable holds curated examples per topic per level.
var exampleTable = map[string]map[learner.KnowledgeLevel][]string{
	"ai-foundations": {
		learner.KnowledgeBeginner: {
			"A spam filter deciding which emails to hide",
			"A photo app grouping pictures of the same person",
		},
		learner.KnowledgeIntermediate: {
			"A recommendation engine ranking movies by predicted rating",
			"A voice assistant mapping audio to intents",
		},
		learner.KnowledgeAdvanced: {
			"Trade-offs between rule-based and learned components in a hybrid system",
		},
	},
	"machine-learning": {
		learner.KnowledgeBeginner: {
			"Predicting house prices from size and location",
			"Sorting fruit by weight and color measurements",
		},
		learner.KnowledgeIntermediate: {
			"Tuning regularization strength on a validation set",
			"Comparing precision/recall trade-offs for fraud detection",
		},
		learner.KnowledgeAdvanced: {
			"Diagnosing label leakage from a suspiciously good AUC",
		},
	},
	"deep-learning": {
		learner.KnowledgeBeginner: {
			"A network learning to recognize handwritten digits",
		},
		learner.KnowledgeIntermediate: {
			"Choosing between dropout and weight decay for a small dataset",
		},
		learner.KnowledgeAdvanced: {
			"Debugging vanishing gradients with normalized initialization",
		},
	},
	"prompt-engineering": {
		learner.KnowledgeBeginner: {
			"Turning 'write about dogs' into a specific, structured request",
		},
		learner.KnowledgeIntermediate: {
			"Adding worked examples to stabilize output format",
		},
		learner.KnowledgeAdvanced: {
			"Designing a rubric-based self-critique loop",
		},
	},
}

// genericExamples backs topics without a curated list.
var genericExamples = []string{
	"A worked example from your most recent lesson",
	"A small hands-on exercise applying the concept to familiar data",
}

// SuggestedExamples returns curated examples for a topic at the
// learner's level, falling back to generic suggestions.
func SuggestedExamples(topicID string, level learner.KnowledgeLevel) []string {
	if byLevel, ok := exampleTable[topicID]; ok {
		if examples, ok := byLevel[level]; ok && len(examples) > 0 {
			return examples
		}
	}
	return genericExamples
}
