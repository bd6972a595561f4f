package catalog

import (
	"strings"
	"testing"
)

func TestLoadCatalogValid(t *testing.T) {
	input := `{
	  "courses": [
	    {
	      "id": "intro-to-ai",
	      "title": "Intro to AI",
	      "modules": [
	        {"title": "Basics", "lessons": [
	          {"id": "ai-1", "title": "What is AI", "duration": "10 min"}
	        ]}
	      ]
	    }
	  ]
	}`

	c, err := LoadCatalog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c.Courses) != 1 || c.Courses[0].ID != "intro-to-ai" {
		t.Errorf("unexpected catalog: %+v", c)
	}
}

func TestLoadCatalogRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{"courses": [`},
		{"missing courses", `{}`},
		{"course without id", `{"courses": [{"title": "X", "modules": []}]}`},
		{"empty lesson id", `{"courses": [{"id": "c", "title": "C", "modules": [
			{"title": "M", "lessons": [{"id": "", "title": "L"}]}]}]}`},
		{"question without answer", `{"courses": [{"id": "c", "title": "C", "modules": [
			{"title": "M", "lessons": [{"id": "l", "title": "L",
			"questions": [{"id": "q1", "prompt": "?"}]}]}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadCatalog(strings.NewReader(tt.input)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if len(c.Courses) == 0 {
		t.Fatal("bundled catalog has no courses")
	}

	r := BuildRegistry(c)
	if r.LessonCount() == 0 {
		t.Fatal("registry indexed no lessons")
	}
	for _, course := range c.Courses {
		if len(r.ByCourse(course.ID)) == 0 {
			t.Errorf("course %s has no indexed lessons", course.ID)
		}
	}
}
