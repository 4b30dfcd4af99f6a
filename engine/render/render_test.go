package render

import (
	"strings"
	"testing"

	"github.com/nathoo/shmoopland/engine/random"
)

func TestRenderSubstitutes(t *testing.T) {
	vars := map[string]string{"mood": "cheerful", "time_of_day": "morning"}

	got := Render("The {mood} town square on a {time_of_day}.", vars)
	want := "The cheerful town square on a morning."
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderMissingPlaceholderLeavesTemplateIntact(t *testing.T) {
	vars := map[string]string{"mood": "cheerful"}

	template := "The {mood} square at {time_of_day}."
	if got := Render(template, vars); got != template {
		t.Errorf("Render with missing var = %q, want unmodified template", got)
	}
}

func TestRenderNoPlaceholders(t *testing.T) {
	if got := Render("A quiet corner.", nil); got != "A quiet corner." {
		t.Errorf("Render = %q", got)
	}
}

func TestScanPlaceholders(t *testing.T) {
	tests := []struct {
		template string
		want     int
	}{
		{"{a} and {b}", 2},
		{"no placeholders", 0},
		{"unclosed {brace", 0},
		{"{} empty skipped", 0},
	}
	for _, tt := range tests {
		if got := scanPlaceholders(tt.template); len(got) != tt.want {
			t.Errorf("scanPlaceholders(%q) = %v, want %d names", tt.template, got, tt.want)
		}
	}
}

func TestDescribeMemoizesPerContext(t *testing.T) {
	templates := map[string][]string{
		"square": {"The square feels {mood}.", "A {mood} crowd fills the square."},
	}
	variables := map[string][]string{}
	r := NewRenderer(templates, variables, random.New(11), 8)

	ctx := map[string]string{"mood": "lively"}
	first := r.Describe("square", "static", ctx)
	second := r.Describe("square", "static", ctx)
	if first != second {
		t.Errorf("same context produced different text: %q vs %q", first, second)
	}
	if !strings.Contains(first, "lively") {
		t.Errorf("context variable not substituted: %q", first)
	}

	other := r.Describe("square", "static", map[string]string{"mood": "quiet"})
	if !strings.Contains(other, "quiet") {
		t.Errorf("new context not reflected: %q", other)
	}
}

func TestDescribeFallsBackToStatic(t *testing.T) {
	r := NewRenderer(nil, nil, random.New(1), 8)

	got := r.Describe("nowhere", "A plain room.", nil)
	if got != "A plain room." {
		t.Errorf("Describe = %q, want static text", got)
	}
}

func TestDescribeContextWinsOverVariables(t *testing.T) {
	templates := map[string][]string{"cave": {"The cave is {state}."}}
	variables := map[string][]string{"state": {"dark"}}
	r := NewRenderer(templates, variables, random.New(2), 8)

	got := r.Describe("cave", "", map[string]string{"state": "flooded"})
	if got != "The cave is flooded." {
		t.Errorf("Describe = %q, want context value to win", got)
	}
}
