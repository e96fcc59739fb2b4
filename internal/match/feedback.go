package match

import (
	"fmt"
	"strings"

	"github.com/moussa101/Skillora/internal/language"
)

// Feedback is the actionable summary returned alongside a match score.
type Feedback struct {
	Summary     string   `json:"summary"`
	Suggestions []string `json:"suggestions"`
}

const maxSuggestions = 4

// GenerateFeedback maps a score band and the skill gap to summary and
// suggestion text. Suggestions follow a fixed priority and are truncated to
// four.
func GenerateFeedback(score float64, skillsFound, missingKeywords []string, lang language.Info) Feedback {
	var summary string
	switch {
	case score >= 80:
		summary = "Excellent match! Your resume aligns well with the job requirements."
	case score >= 60:
		summary = "Good match with room for improvement. Consider adding missing skills."
	case score >= 40:
		summary = "Moderate match. You may need to tailor your resume more specifically."
	default:
		summary = "Low match. Consider gaining experience in the required areas."
	}

	suggestions := make([]string, 0, maxSuggestions)
	if len(missingKeywords) > 0 {
		top := missingKeywords
		if len(top) > 3 {
			top = top[:3]
		}
		suggestions = append(suggestions, "Add experience with: "+strings.Join(top, ", "))
	}
	if len(skillsFound) < 5 {
		suggestions = append(suggestions, "List more technical skills explicitly in a skills section")
	}
	suggestions = append(suggestions,
		"Quantify achievements with numbers and metrics",
		"Use action verbs to describe accomplishments",
	)
	if lang.Code != "" && lang.Code != language.DefaultCode {
		suggestions = append(suggestions, fmt.Sprintf("Resume detected as %s. Consider having an English version for international positions.", lang.Name))
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return Feedback{Summary: summary, Suggestions: suggestions}
}
