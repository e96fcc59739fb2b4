package match

import (
	"context"
	"sort"
	"strings"

	"github.com/moussa101/Skillora/internal/embedding"
	"github.com/moussa101/Skillora/internal/shared/telemetry"
)

const (
	// embedInputLimit caps the text sent to the embedding collaborator.
	embedInputLimit = 2000
	// fallbackSkillScore is used when no skills exist in the JD and no
	// embedder is available (or it fails).
	fallbackSkillScore = 50.0
)

// stopWords are stripped before computing the lexical-overlap bonus.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "and": {}, "or": {},
	"to": {}, "for": {}, "with": {}, "in": {}, "on": {}, "of": {}, "we": {},
	"you": {}, "will": {}, "be": {}, "as": {}, "at": {}, "by": {}, "have": {},
	"has": {}, "this": {}, "that": {}, "our": {}, "your": {},
}

// Scorer computes resume-to-job match scores. The zero value works; the
// embedder is optional and only consulted when the job description yields no
// recognizable skills.
type Scorer struct {
	Embedder embedding.Embedder
}

// Result is the full outcome of a match computation.
type Result struct {
	// Score is the final clamped value in [0, 100]. Rounding is the
	// caller's concern.
	Score float64
	// MatchRatio is |resume ∩ jd| / |jd| over skill sets, 0 on the
	// embedding-fallback branch.
	MatchRatio float64
	// ResumeSkills and JobSkills are title-cased, sorted skill labels.
	ResumeSkills []string
	JobSkills    []string
	// Matched and Missing partition JobSkills by presence in the resume.
	Matched []string
	Missing []string
	// UsedEmbedding is true when the semantic-similarity fallback ran.
	UsedEmbedding bool
}

// Score computes the weighted match between a resume and a job description.
// It never fails: a well-formed Result is returned for any input.
func (s *Scorer) Score(ctx context.Context, resumeText, jobText, langCode string) Result {
	resumeTerms := extractTerms(resumeText, langCode)
	jdTerms := extractTerms(jobText, langCode)

	var (
		res        Result
		skillScore float64
	)
	res.ResumeSkills = titleSorted(resumeTerms)
	res.JobSkills = titleSorted(jdTerms)

	if len(jdTerms) > 0 {
		matched := make(map[string]struct{})
		missing := make(map[string]struct{})
		for term := range jdTerms {
			if _, ok := resumeTerms[term]; ok {
				matched[term] = struct{}{}
			} else {
				missing[term] = struct{}{}
			}
		}
		res.Matched = titleSorted(matched)
		res.Missing = titleSorted(missing)
		res.MatchRatio = float64(len(matched)) / float64(len(jdTerms))
		// 0% match = 20, 50% = 55, 100% = 90.
		skillScore = 20 + res.MatchRatio*70
	} else {
		skillScore = s.semanticScore(ctx, resumeText, jobText)
		res.UsedEmbedding = true
	}

	finalScore := skillScore + wordOverlapBonus(resumeText, jobText)

	switch {
	case len(jdTerms) > 0 && res.MatchRatio >= 1.0:
		finalScore += 5
	case res.MatchRatio >= 0.8:
		finalScore += 3
	}

	switch {
	case len(resumeTerms) >= 8:
		finalScore += 3
	case len(resumeTerms) >= 5:
		finalScore += 2
	}

	res.Score = clamp(finalScore, 0, 100)
	return res
}

// semanticScore handles the no-skills-in-JD branch: cosine similarity over
// embeddings scaled to [30, 90], or a fixed 50 when the embedder is missing
// or errors. Failures are logged and never propagated.
func (s *Scorer) semanticScore(ctx context.Context, resumeText, jobText string) float64 {
	if s.Embedder == nil {
		return fallbackSkillScore
	}

	resumeVec, err := s.Embedder.Embed(ctx, truncateRunes(resumeText, embedInputLimit))
	if err != nil {
		telemetry.Warn("match.embedding_failed", map[string]any{"error": err.Error()})
		return fallbackSkillScore
	}
	jdVec, err := s.Embedder.Embed(ctx, truncateRunes(jobText, embedInputLimit))
	if err != nil {
		telemetry.Warn("match.embedding_failed", map[string]any{"error": err.Error()})
		return fallbackSkillScore
	}

	similarity := embedding.Cosine(resumeVec, jdVec)
	return 30 + similarity*60
}

// wordOverlapBonus rewards lexical overlap between the texts, capped at 15
// so verbatim copy-paste is not over-rewarded.
func wordOverlapBonus(resumeText, jobText string) float64 {
	resumeWords := tokenSet(resumeText)
	jdWords := tokenSet(jobText)
	if len(jdWords) == 0 {
		return 5
	}

	common := 0
	for w := range resumeWords {
		if _, ok := jdWords[w]; ok {
			common++
		}
	}
	overlap := float64(common) / float64(len(jdWords))
	bonus := overlap * 20
	if bonus > 15 {
		bonus = 15
	}
	return bonus
}

func tokenSet(text string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if _, stop := stopWords[w]; stop {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

func titleSorted(terms map[string]struct{}) []string {
	out := make([]string, 0, len(terms))
	for term := range terms {
		out = append(out, title(term))
	}
	sort.Strings(out)
	return out
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
