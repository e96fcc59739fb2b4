package analyses

import (
	"context"
	"strings"
	"testing"

	"github.com/moussa101/Skillora/internal/ats"
	"github.com/moussa101/Skillora/internal/language"
	"github.com/moussa101/Skillora/internal/match"
)

func newTestService() *Service {
	return NewService(language.NewDetector(), &match.Scorer{}, ats.NewScorer())
}

func TestAnalyzeTextBasic(t *testing.T) {
	svc := newTestService()
	result := svc.AnalyzeText(context.Background(),
		"Experienced engineer skilled in python, docker and kubernetes deployments.",
		"Looking for python and docker experience in production.", "")

	if result.Score < 0 || result.Score > 100 {
		t.Fatalf("score out of range: %v", result.Score)
	}
	if got := result.Score * 10; got != float64(int64(got)) {
		t.Fatalf("score %v not rounded to 1 decimal", result.Score)
	}
	if len(result.SkillsFound) == 0 {
		t.Fatal("expected skills found")
	}
	if result.Language.Code != "en" {
		t.Fatalf("language = %q, want en", result.Language.Code)
	}
	if result.Feedback.Summary == "" {
		t.Fatal("expected a feedback summary")
	}
	if result.ATS == nil {
		t.Fatal("expected an ATS breakdown")
	}
}

func TestAnalyzeTextSuspiciousOnCopyPaste(t *testing.T) {
	svc := newTestService()
	text := "python java docker kubernetes react angular aws git postgresql mysql engineer"
	result := svc.AnalyzeText(context.Background(), text, text, "")

	if result.Score < 95 {
		t.Fatalf("copy-paste score = %v, want >= 95", result.Score)
	}
	if !result.Suspicious {
		t.Fatal("expected suspicious flag")
	}
	if !strings.Contains(result.SuspiciousReason, "JD copy-paste") {
		t.Fatalf("unexpected reason: %q", result.SuspiciousReason)
	}
}

func TestAnalyzeTextNotSuspiciousOnModestScore(t *testing.T) {
	svc := newTestService()
	result := svc.AnalyzeText(context.Background(),
		"I paint landscapes on weekends",
		"python docker kubernetes required", "")

	if result.Suspicious {
		t.Fatalf("modest score %v flagged as suspicious", result.Score)
	}
	if result.SuspiciousReason != "" {
		t.Fatalf("unexpected reason: %q", result.SuspiciousReason)
	}
}

func TestAnalyzeTextTruncatesLists(t *testing.T) {
	svc := newTestService()
	resume := "python java javascript typescript react angular vue docker kubernetes aws azure gcp git github redis"
	jd := "go rust php swift kotlin scala django flask spring express mysql mongodb"
	result := svc.AnalyzeText(context.Background(), resume, jd, "")

	if len(result.SkillsFound) > maxSkillsReturned {
		t.Fatalf("%d skills returned, want at most %d", len(result.SkillsFound), maxSkillsReturned)
	}
	if len(result.MissingKeywords) > maxMissingReturned {
		t.Fatalf("%d missing keywords returned, want at most %d", len(result.MissingKeywords), maxMissingReturned)
	}
}

func TestAnalyzeTextLanguageOverride(t *testing.T) {
	svc := newTestService()
	result := svc.AnalyzeText(context.Background(),
		"Desarrollador con experiencia en python y docker", "python docker", "es")

	if result.Language.Code != "es" {
		t.Fatalf("language = %q, want es (override)", result.Language.Code)
	}
	if result.Language.Name != "Spanish" {
		t.Fatalf("language name = %q, want Spanish", result.Language.Name)
	}
}

func TestAnalyzeTextEmptyListsAreNotNull(t *testing.T) {
	svc := newTestService()
	result := svc.AnalyzeText(context.Background(), "", "", "")

	if result.SkillsFound == nil || result.MissingKeywords == nil {
		t.Fatal("skill lists must be empty, not nil")
	}
}

func TestScoreATS(t *testing.T) {
	svc := newTestService()
	result := svc.ScoreATS(context.Background(),
		"Experienced python developer.\n\nSkills:\npython, docker", "python docker role")

	if result.OverallScore < 0 || result.OverallScore > 100 {
		t.Fatalf("overall out of range: %v", result.OverallScore)
	}
	if len(result.Categories) != 5 {
		t.Fatalf("got %d categories, want 5", len(result.Categories))
	}
}

func TestZeroValueServiceDegrades(t *testing.T) {
	svc := &Service{}
	result := svc.AnalyzeText(context.Background(), "python developer", "python role", "")

	if result.Language != language.Default() {
		t.Fatalf("language = %+v, want default", result.Language)
	}
	if result.Score < 0 || result.Score > 100 {
		t.Fatalf("score out of range: %v", result.Score)
	}
	if result.ATS != nil {
		t.Fatal("zero-value service must not produce an ATS breakdown")
	}
}
