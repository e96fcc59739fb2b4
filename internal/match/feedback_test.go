package match

import (
	"strings"
	"testing"

	"github.com/moussa101/Skillora/internal/language"
)

func TestFeedbackSummaryBands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "Excellent match"},
		{80, "Excellent match"},
		{79.9, "Good match"},
		{60, "Good match"},
		{59, "Moderate match"},
		{40, "Moderate match"},
		{39.9, "Low match"},
		{0, "Low match"},
	}
	for _, tc := range cases {
		fb := GenerateFeedback(tc.score, nil, nil, language.Default())
		if !strings.HasPrefix(fb.Summary, tc.want) {
			t.Errorf("score %v: summary %q, want prefix %q", tc.score, fb.Summary, tc.want)
		}
	}
}

func TestFeedbackMissingKeywordsFirst(t *testing.T) {
	fb := GenerateFeedback(50, []string{"Python"}, []string{"Docker", "Kubernetes", "Aws", "React"}, language.Default())
	if len(fb.Suggestions) == 0 {
		t.Fatal("no suggestions")
	}
	want := "Add experience with: Docker, Kubernetes, Aws"
	if fb.Suggestions[0] != want {
		t.Fatalf("first suggestion = %q, want %q", fb.Suggestions[0], want)
	}
}

func TestFeedbackFewSkillsSuggestion(t *testing.T) {
	fb := GenerateFeedback(50, []string{"Python", "Go"}, nil, language.Default())
	if !containsSuggestion(fb, "skills section") {
		t.Fatalf("expected skills-section suggestion, got %v", fb.Suggestions)
	}

	many := []string{"A", "B", "C", "D", "E", "F"}
	fb = GenerateFeedback(50, many, nil, language.Default())
	if containsSuggestion(fb, "skills section") {
		t.Fatalf("skills-section suggestion should be absent, got %v", fb.Suggestions)
	}
}

func TestFeedbackNonEnglishSuggestion(t *testing.T) {
	lang := language.InfoFor("es", 0.9)
	fb := GenerateFeedback(85, make([]string, 6), nil, lang)
	if !containsSuggestion(fb, "Spanish") {
		t.Fatalf("expected translated-resume suggestion, got %v", fb.Suggestions)
	}

	fb = GenerateFeedback(85, make([]string, 6), nil, language.Default())
	if containsSuggestion(fb, "English version") {
		t.Fatalf("english resume must not get the translation suggestion: %v", fb.Suggestions)
	}
}

func TestFeedbackAtMostFourSuggestions(t *testing.T) {
	lang := language.InfoFor("fr", 0.9)
	fb := GenerateFeedback(30, []string{"Python"}, []string{"Docker", "Aws", "React", "Vue"}, lang)
	if len(fb.Suggestions) > 4 {
		t.Fatalf("got %d suggestions, want at most 4", len(fb.Suggestions))
	}
}

func containsSuggestion(fb Feedback, substr string) bool {
	for _, s := range fb.Suggestions {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
