// Package catalog builds the static content metadata registry from the
// course catalog supplied by the host application.
package catalog

// Catalog is the raw course catalog as authored externally.
type Catalog struct {
	Courses []Course `json:"courses"`
}

// Course is a coherent sequence of modules on one topic.
type Course struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Modules []Module `json:"modules"`
}

// Module groups lessons within a course.
type Module struct {
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Lesson is a single learning unit.
type Lesson struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Type       string         `json:"type,omitempty"`     // "reading", "video", "quiz", ...
	Duration   string         `json:"duration,omitempty"` // free text, e.g. "15 min", "1 hour"
	Activity   string         `json:"activity,omitempty"` // hands-on exercise description
	Objectives []string       `json:"objectives,omitempty"`
	Questions  []QuizQuestion `json:"questions,omitempty"`
}

// QuizQuestion is one question of a lesson's quiz.
type QuizQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// ContentMetadata is the derived, immutable descriptor for one lesson.
type ContentMetadata struct {
	CourseID         string
	CourseTitle      string
	LessonID         string
	Title            string
	ModuleIndex      int
	LessonIndex      int
	Difficulty       Difficulty
	Dependencies     []string // lesson ids expected completed first (last 10)
	Skills           []string
	EstimatedMinutes int
	PracticeRequired bool
	HasQuiz          bool
	TopicID          string
	Tags             []string
}
