package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// MaxDependencies caps a lesson's concept dependency chain. When the
// chain is longer, the most recent dependencies win.
const MaxDependencies = 10

// DefaultLessonMinutes is used when a lesson's duration string is
// missing or unparseable.
const DefaultLessonMinutes = 15

// CourseRef is a course-level summary held by the registry.
type CourseRef struct {
	ID       string
	Title    string
	TopicID  string
	Baseline Difficulty
	Prereqs  []string
	Skills   []string
}

// Registry is an immutable lookup from lesson id to ContentMetadata,
// with precomputed per-course and per-topic indices.
type Registry struct {
	byLesson    map[string]*ContentMetadata
	byCourse    map[string][]*ContentMetadata
	courses     []CourseRef
	byCourseRef map[string]*CourseRef
	byTopic     map[string][]string // topic id -> course ids in catalog order
	questions   map[string][]QuizQuestion
}

// BuildRegistry derives the content metadata index from a raw catalog.
// It is a pure function of its input: building twice from the same
// catalog yields identical output.
func BuildRegistry(c *Catalog) *Registry {
	r := &Registry{
		byLesson:    make(map[string]*ContentMetadata),
		byCourse:    make(map[string][]*ContentMetadata),
		byCourseRef: make(map[string]*CourseRef),
		byTopic:     make(map[string][]string),
		questions:   make(map[string][]QuizQuestion),
	}
	if c == nil {
		return r
	}

	for _, course := range c.Courses {
		info := infoForCourse(course.ID)
		ref := CourseRef{
			ID:       course.ID,
			Title:    course.Title,
			TopicID:  info.TopicID,
			Baseline: info.Baseline,
			Prereqs:  info.Prereqs,
			Skills:   info.Skills,
		}
		r.courses = append(r.courses, ref)
		r.byTopic[info.TopicID] = append(r.byTopic[info.TopicID], course.ID)
	}
	// Sort the course scan order by ascending baseline difficulty,
	// stable on catalog order within a tier. The id index must be built
	// after the sort: its pointers alias slice elements.
	sort.SliceStable(r.courses, func(i, j int) bool {
		return r.courses[i].Baseline.Rank() < r.courses[j].Baseline.Rank()
	})
	for i := range r.courses {
		r.byCourseRef[r.courses[i].ID] = &r.courses[i]
	}

	for _, course := range c.Courses {
		r.indexCourse(course)
	}
	return r
}

func (r *Registry) indexCourse(course Course) {
	info := infoForCourse(course.ID)
	moduleCount := len(course.Modules)

	// Lesson ids from prerequisite courses, in catalog order, seed
	// every dependency chain in this course.
	var prereqLessons []string
	for _, prereqID := range info.Prereqs {
		for _, meta := range r.byCourse[prereqID] {
			prereqLessons = append(prereqLessons, meta.LessonID)
		}
	}

	var priorLessons []string // lessons earlier in this course
	for mi, module := range course.Modules {
		difficulty := moduleDifficulty(info.Baseline, mi, moduleCount)
		for li, lesson := range module.Lessons {
			deps := make([]string, 0, len(prereqLessons)+len(priorLessons))
			deps = append(deps, prereqLessons...)
			deps = append(deps, priorLessons...)
			if len(deps) > MaxDependencies {
				deps = deps[len(deps)-MaxDependencies:]
			}

			meta := &ContentMetadata{
				CourseID:         course.ID,
				CourseTitle:      course.Title,
				LessonID:         lesson.ID,
				Title:            lesson.Title,
				ModuleIndex:      mi,
				LessonIndex:      li,
				Difficulty:       difficulty,
				Dependencies:     deps,
				Skills:           info.Skills,
				EstimatedMinutes: parseDurationMinutes(lesson.Duration),
				PracticeRequired: lesson.Type == "quiz" || lesson.Activity != "",
				HasQuiz:          lesson.Type == "quiz" || len(lesson.Questions) > 0,
				TopicID:          info.TopicID,
				Tags:             lesson.Objectives,
			}
			r.byLesson[lesson.ID] = meta
			r.byCourse[course.ID] = append(r.byCourse[course.ID], meta)
			if len(lesson.Questions) > 0 {
				r.questions[lesson.ID] = lesson.Questions
			}
			priorLessons = append(priorLessons, lesson.ID)
		}
	}
}

// moduleDifficulty escalates per-module difficulty according to the
// course baseline: beginner courses stay beginner through ~80% of
// modules then become intermediate; intermediate courses move
// beginner -> intermediate -> advanced at the ~30%/70% marks; advanced
// courses start intermediate for the first ~20% then go advanced.
func moduleDifficulty(baseline Difficulty, moduleIdx, moduleCount int) Difficulty {
	if moduleCount <= 0 {
		return baseline
	}
	pos := float64(moduleIdx) / float64(moduleCount)
	switch baseline {
	case Intermediate:
		switch {
		case pos < 0.3:
			return Beginner
		case pos < 0.7:
			return Intermediate
		default:
			return Advanced
		}
	case Advanced:
		if pos < 0.2 {
			return Intermediate
		}
		return Advanced
	default:
		if pos < 0.8 {
			return Beginner
		}
		return Intermediate
	}
}

// parseDurationMinutes parses free-text durations like "15 min",
// "2 hours" or "1h". Unparseable input defaults to DefaultLessonMinutes.
func parseDurationMinutes(s string) int {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(fields) == 0 {
		return DefaultLessonMinutes
	}

	first := fields[0]
	unit := ""
	if len(fields) > 1 {
		unit = fields[1]
	} else {
		// Handle compact forms like "45min" or "1h".
		i := 0
		for i < len(first) && (first[i] >= '0' && first[i] <= '9') {
			i++
		}
		unit = first[i:]
		first = first[:i]
	}

	n, err := strconv.Atoi(first)
	if err != nil || n <= 0 {
		return DefaultLessonMinutes
	}
	if strings.HasPrefix(unit, "h") {
		return n * 60
	}
	return n
}

// Lookup returns the metadata for a lesson id.
func (r *Registry) Lookup(lessonID string) (*ContentMetadata, bool) {
	meta, ok := r.byLesson[lessonID]
	return meta, ok
}

// ByCourse returns a course's lessons in module/lesson order.
func (r *Registry) ByCourse(courseID string) []*ContentMetadata {
	return r.byCourse[courseID]
}

// Courses returns all courses ordered by ascending baseline difficulty.
func (r *Registry) Courses() []CourseRef {
	return r.courses
}

// Course returns the course summary for an id.
func (r *Registry) Course(courseID string) (*CourseRef, bool) {
	ref, ok := r.byCourseRef[courseID]
	return ref, ok
}

// CoursesForTopic returns the course ids belonging to a topic cluster,
// in catalog order.
func (r *Registry) CoursesForTopic(topicID string) []string {
	return r.byTopic[topicID]
}

// Questions returns a lesson's quiz questions, or nil when it has none.
func (r *Registry) Questions(lessonID string) []QuizQuestion {
	return r.questions[lessonID]
}

// LessonCount returns the number of indexed lessons.
func (r *Registry) LessonCount() int {
	return len(r.byLesson)
}
