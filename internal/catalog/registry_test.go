package catalog

import (
	"fmt"
	"reflect"
	"testing"
)

func TestModuleDifficulty(t *testing.T) {
	tests := []struct {
		baseline    Difficulty
		moduleIdx   int
		moduleCount int
		want        Difficulty
	}{
		{Beginner, 0, 5, Beginner},
		{Beginner, 3, 5, Beginner},
		{Beginner, 4, 5, Intermediate},
		{Intermediate, 0, 10, Beginner},
		{Intermediate, 2, 10, Beginner},
		{Intermediate, 3, 10, Intermediate},
		{Intermediate, 6, 10, Intermediate},
		{Intermediate, 7, 10, Advanced},
		{Advanced, 0, 10, Intermediate},
		{Advanced, 1, 10, Intermediate},
		{Advanced, 2, 10, Advanced},
		{Advanced, 9, 10, Advanced},
		{Beginner, 0, 0, Beginner},
	}

	for _, tt := range tests {
		got := moduleDifficulty(tt.baseline, tt.moduleIdx, tt.moduleCount)
		if got != tt.want {
			t.Errorf("moduleDifficulty(%s, %d, %d) = %s, want %s",
				tt.baseline, tt.moduleIdx, tt.moduleCount, got, tt.want)
		}
	}
}

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"15 min", 15},
		{"45min", 45},
		{"1 hour", 60},
		{"2 hours", 120},
		{"1h", 60},
		{"90", 90},
		{"", DefaultLessonMinutes},
		{"soon", DefaultLessonMinutes},
		{"-5 min", DefaultLessonMinutes},
	}

	for _, tt := range tests {
		got := parseDurationMinutes(tt.input)
		if got != tt.want {
			t.Errorf("parseDurationMinutes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func testCatalog() *Catalog {
	return &Catalog{Courses: []Course{
		{
			ID:    "intro-to-ai",
			Title: "Intro to AI",
			Modules: []Module{
				{Title: "Basics", Lessons: []Lesson{
					{ID: "ai-1", Title: "What is AI", Duration: "10 min"},
					{ID: "ai-2", Title: "History", Type: "quiz", Questions: []QuizQuestion{
						{ID: "q1", Prompt: "Year of Dartmouth workshop?", Answer: "1956"},
					}},
				}},
			},
		},
		{
			ID:    "machine-learning-basics",
			Title: "ML Basics",
			Modules: []Module{
				{Title: "Foundations", Lessons: []Lesson{
					{ID: "ml-1", Title: "Supervised Learning"},
				}},
			},
		},
	}}
}

func TestBuildRegistryIndexes(t *testing.T) {
	r := BuildRegistry(testCatalog())

	meta, ok := r.Lookup("ai-2")
	if !ok {
		t.Fatal("expected ai-2 to be indexed")
	}
	if meta.CourseID != "intro-to-ai" || meta.ModuleIndex != 0 || meta.LessonIndex != 1 {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if !meta.HasQuiz {
		t.Error("ai-2 should have a quiz")
	}
	if meta.TopicID != "ai-foundations" {
		t.Errorf("topic = %q, want ai-foundations", meta.TopicID)
	}
	if !reflect.DeepEqual(meta.Dependencies, []string{"ai-1"}) {
		t.Errorf("deps = %v, want [ai-1]", meta.Dependencies)
	}

	if got := len(r.Questions("ai-2")); got != 1 {
		t.Errorf("questions for ai-2 = %d, want 1", got)
	}
	if r.Questions("ai-1") != nil {
		t.Error("ai-1 should have no questions")
	}
}

func TestBuildRegistryPrereqDependencies(t *testing.T) {
	r := BuildRegistry(testCatalog())

	// machine-learning-basics depends on intro-to-ai, so its first
	// lesson inherits that course's lessons as dependencies.
	meta, ok := r.Lookup("ml-1")
	if !ok {
		t.Fatal("expected ml-1 to be indexed")
	}
	if !reflect.DeepEqual(meta.Dependencies, []string{"ai-1", "ai-2"}) {
		t.Errorf("deps = %v, want [ai-1 ai-2]", meta.Dependencies)
	}
}

func TestBuildRegistryDependencyCap(t *testing.T) {
	var lessons []Lesson
	for i := 0; i < MaxDependencies+5; i++ {
		lessons = append(lessons, Lesson{ID: fmt.Sprintf("l-%d", i), Title: "L"})
	}
	c := &Catalog{Courses: []Course{
		{ID: "big", Title: "Big", Modules: []Module{{Title: "M", Lessons: lessons}}},
	}}

	r := BuildRegistry(c)
	last, ok := r.Lookup(fmt.Sprintf("l-%d", MaxDependencies+4))
	if !ok {
		t.Fatal("expected last lesson to be indexed")
	}
	if len(last.Dependencies) != MaxDependencies {
		t.Fatalf("deps = %d, want %d", len(last.Dependencies), MaxDependencies)
	}
	// The most recent dependencies win.
	if got, want := last.Dependencies[MaxDependencies-1], fmt.Sprintf("l-%d", MaxDependencies+3); got != want {
		t.Errorf("newest dep = %q, want %q", got, want)
	}
}

func TestCoursesOrderedByBaseline(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	r := BuildRegistry(c)

	prev := -1
	for _, ref := range r.Courses() {
		if ref.Baseline.Rank() < prev {
			t.Fatalf("courses not ordered by baseline: %v", r.Courses())
		}
		prev = ref.Baseline.Rank()
	}
}

func TestCourseByIDSurvivesReordering(t *testing.T) {
	// Hardest course first: the sort moves it, and the id index must
	// still point at the right entry.
	c := &Catalog{Courses: []Course{
		{
			ID:    "machine-learning-basics",
			Title: "ML Basics",
			Modules: []Module{
				{Title: "Foundations", Lessons: []Lesson{{ID: "ml-1", Title: "Supervised Learning"}}},
			},
		},
		{
			ID:    "intro-to-ai",
			Title: "Intro to AI",
			Modules: []Module{
				{Title: "Basics", Lessons: []Lesson{{ID: "ai-1", Title: "What is AI"}}},
			},
		},
	}}

	r := BuildRegistry(c)
	ref, ok := r.Course("intro-to-ai")
	if !ok {
		t.Fatal("expected intro-to-ai to be indexed")
	}
	if ref.ID != "intro-to-ai" || ref.Baseline != Beginner {
		t.Errorf("Course(intro-to-ai) = %+v", ref)
	}
	ref, ok = r.Course("machine-learning-basics")
	if !ok || ref.Baseline != Intermediate {
		t.Errorf("Course(machine-learning-basics) = %+v, ok=%v", ref, ok)
	}
}

func TestBuildRegistryDeterministic(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}

	a, b := BuildRegistry(c), BuildRegistry(c)
	if a.LessonCount() != b.LessonCount() {
		t.Fatalf("lesson counts differ: %d vs %d", a.LessonCount(), b.LessonCount())
	}
	if !reflect.DeepEqual(a.Courses(), b.Courses()) {
		t.Error("course order differs between builds")
	}
}

func TestInfoForCourseFallback(t *testing.T) {
	info := infoForCourse("mystery-course")
	if info.TopicID != "topic-mystery-course" {
		t.Errorf("topic = %q, want topic-mystery-course", info.TopicID)
	}
	if info.Baseline != Beginner {
		t.Errorf("baseline = %s, want beginner", info.Baseline)
	}
}

func TestDifficultyStepping(t *testing.T) {
	if got := Beginner.StepUp(); got != Intermediate {
		t.Errorf("beginner.StepUp() = %s", got)
	}
	if got := Advanced.StepUp(); got != Advanced {
		t.Errorf("advanced.StepUp() = %s", got)
	}
	if got := Beginner.StepDown(); got != Beginner {
		t.Errorf("beginner.StepDown() = %s", got)
	}
	if got := Advanced.StepDown(); got != Intermediate {
		t.Errorf("advanced.StepDown() = %s", got)
	}
}
