// Package analyses is the HTTP feature for resume scoring: it glues language
// detection, skill matching, feedback and ATS scoring into the API payloads.
package analyses

import (
	"context"
	"math"

	"github.com/moussa101/Skillora/internal/ats"
	"github.com/moussa101/Skillora/internal/language"
	"github.com/moussa101/Skillora/internal/match"
)

const (
	maxSkillsReturned  = 10
	maxMissingReturned = 8

	// suspiciousThreshold flags scores consistent with a resume that simply
	// pastes the job description.
	suspiciousThreshold = 95.0
	suspiciousReason    = "Score >= 95% indicates possible JD copy-paste. Manual review required."
)

// Service runs analyses. All collaborators are required except none: the
// zero value degrades to English-only detection and skill-free fallbacks.
type Service struct {
	Detector language.Detector
	Matcher  *match.Scorer
	ATS      *ats.Scorer
}

// NewService constructs a Service.
func NewService(detector language.Detector, matcher *match.Scorer, atsScorer *ats.Scorer) *Service {
	return &Service{Detector: detector, Matcher: matcher, ATS: atsScorer}
}

// AnalyzeText scores a resume against a job description. langCode, when
// non-empty, overrides language detection.
func (s *Service) AnalyzeText(ctx context.Context, resumeText, jobDescription, langCode string) AnalysisResult {
	lang := s.resolveLanguage(resumeText, langCode)

	matcher := s.Matcher
	if matcher == nil {
		matcher = &match.Scorer{}
	}
	matchRes := matcher.Score(ctx, resumeText, jobDescription, lang.Code)

	feedback := match.GenerateFeedback(matchRes.Score, matchRes.ResumeSkills, matchRes.Missing, lang)

	result := AnalysisResult{
		Score:           round1(matchRes.Score),
		SkillsFound:     firstN(matchRes.ResumeSkills, maxSkillsReturned),
		MissingKeywords: firstN(matchRes.Missing, maxMissingReturned),
		Feedback:        feedback,
		Language:        lang,
	}
	if matchRes.Score >= suspiciousThreshold {
		result.Suspicious = true
		result.SuspiciousReason = suspiciousReason
	}

	if s.ATS != nil {
		atsRes := s.ATS.Score(resumeText, jobDescription, matchRes.ResumeSkills, matchRes.Missing)
		result.ATS = &atsRes
	}
	return result
}

// ScoreATS computes the standalone ATS compatibility breakdown. The skill
// gap is derived the same way AnalyzeText derives it.
func (s *Service) ScoreATS(ctx context.Context, resumeText, jobDescription string) ats.ScoreResult {
	lang := s.resolveLanguage(resumeText, "")

	matcher := s.Matcher
	if matcher == nil {
		matcher = &match.Scorer{}
	}
	matchRes := matcher.Score(ctx, resumeText, jobDescription, lang.Code)

	atsScorer := s.ATS
	if atsScorer == nil {
		atsScorer = ats.NewScorer()
	}
	return atsScorer.Score(resumeText, jobDescription, matchRes.ResumeSkills, matchRes.Missing)
}

func (s *Service) resolveLanguage(text, override string) language.Info {
	if override != "" {
		return language.InfoFor(override, 1.0)
	}
	if s.Detector == nil {
		return language.Default()
	}
	return s.Detector.Detect(text)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func firstN(items []string, n int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}
