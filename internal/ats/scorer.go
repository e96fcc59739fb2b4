package ats

import (
	"fmt"
	"math"
	"strings"
)

const (
	maxCriticalIssues = 5
	maxSuggestions    = 6
)

// Scorer evaluates resume text for ATS compatibility. It is stateless and
// safe for concurrent use.
type Scorer struct{}

// NewScorer returns a ready-to-use Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score calculates the comprehensive ATS compatibility score from the resume
// text, the target job description and the skill gap already computed by the
// match scorer.
func (s *Scorer) Score(resumeText, jobDescription string, skillsFound, missingKeywords []string) ScoreResult {
	categories := []Category{
		s.scoreFormatting(resumeText),
		s.scoreSections(resumeText),
		s.scoreKeywords(resumeText, skillsFound, missingKeywords),
		s.scoreContact(resumeText),
		s.scoreContent(resumeText),
	}

	var totalWeight, weighted float64
	for _, cat := range categories {
		totalWeight += cat.Weight
		weighted += cat.Score * cat.Weight
	}
	overall := 0.0
	if totalWeight > 0 {
		overall = weighted / totalWeight
	}

	var critical, suggestions []string
	for _, cat := range categories {
		for _, check := range cat.Checks {
			if check.Severity == SeverityCritical && !check.Passed {
				critical = append(critical, check.Message)
			}
		}
		suggestions = append(suggestions, cat.Tips...)
	}
	if len(critical) > maxCriticalIssues {
		critical = critical[:maxCriticalIssues]
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	kwRate := 0.0
	if total := len(skillsFound) + len(missingKeywords); total > 0 {
		kwRate = float64(len(skillsFound)) / float64(total) * 100
	}

	return ScoreResult{
		OverallScore:     round1(math.Min(100, math.Max(0, overall))),
		Categories:       categories,
		CriticalIssues:   emptyNotNil(critical),
		Suggestions:      emptyNotNil(suggestions),
		KeywordMatchRate: round1(kwRate),
	}
}

// scoreFormatting covers category 1: can the ATS read the document at all.
func (s *Scorer) scoreFormatting(text string) Category {
	var checks []CheckResult
	var tips []string
	score := 100.0

	var problematicFound []string
	for _, p := range problematicPatterns {
		if p.re.MatchString(text) {
			problematicFound = append(problematicFound, p.label)
		}
	}
	if len(problematicFound) > 0 {
		deduction := math.Min(float64(len(problematicFound))*10, 30)
		score -= deduction
		checks = append(checks, CheckResult{
			Name:     "special_characters",
			Passed:   false,
			Score:    math.Max(0, 1-deduction/30),
			Message:  "Found ATS-unfriendly characters: " + strings.Join(problematicFound, ", "),
			Severity: SeverityWarning,
		})
		tips = append(tips, "Remove decorative symbols and special characters — ATS may misparse them")
	} else {
		checks = append(checks, CheckResult{
			Name:     "special_characters",
			Passed:   true,
			Score:    1.0,
			Message:  "No problematic special characters detected",
			Severity: SeverityGood,
		})
	}

	if len(blankRunPattern.FindAllString(text, -1)) > 2 {
		score -= 10
		checks = append(checks, CheckResult{
			Name:     "blank_lines",
			Passed:   false,
			Score:    0.5,
			Message:  "Excessive blank lines detected — may indicate formatting issues",
			Severity: SeverityInfo,
		})
		tips = append(tips, "Remove excessive blank lines to improve ATS parsing")
	} else {
		checks = append(checks, CheckResult{
			Name:     "blank_lines",
			Passed:   true,
			Score:    1.0,
			Message:  "Spacing looks clean",
			Severity: SeverityGood,
		})
	}

	wordCount := len(strings.Fields(text))
	switch {
	case wordCount < 100:
		score -= 25
		checks = append(checks, CheckResult{
			Name:     "length",
			Passed:   false,
			Score:    0.2,
			Message:  fmt.Sprintf("Resume is very short (%d words) — ATS may rank it low", wordCount),
			Severity: SeverityCritical,
		})
		tips = append(tips, "Add more detail — aim for 400-800 words for a strong resume")
	case wordCount < 250:
		score -= 10
		checks = append(checks, CheckResult{
			Name:     "length",
			Passed:   false,
			Score:    0.6,
			Message:  fmt.Sprintf("Resume is short (%d words) — consider adding more detail", wordCount),
			Severity: SeverityWarning,
		})
		tips = append(tips, "Expand your experience and skills sections for better ATS ranking")
	case wordCount > 1500:
		score -= 5
		checks = append(checks, CheckResult{
			Name:     "length",
			Passed:   true,
			Score:    0.8,
			Message:  fmt.Sprintf("Resume is long (%d words) — consider trimming to 1-2 pages", wordCount),
			Severity: SeverityInfo,
		})
	default:
		checks = append(checks, CheckResult{
			Name:     "length",
			Passed:   true,
			Score:    1.0,
			Message:  fmt.Sprintf("Good resume length (%d words)", wordCount),
			Severity: SeverityGood,
		})
	}

	// Repeated header/footer text can make an ATS double-count entries.
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > 5 {
		firstLine := strings.ToLower(strings.TrimSpace(lines[0]))
		if len(firstLine) > 5 {
			for _, tail := range lines[len(lines)-3:] {
				if firstLine == strings.ToLower(strings.TrimSpace(tail)) {
					score -= 5
					checks = append(checks, CheckResult{
						Name:     "header_footer",
						Passed:   false,
						Score:    0.7,
						Message:  "Repeated header/footer text detected — ATS may double-count it",
						Severity: SeverityInfo,
					})
					break
				}
			}
		}
	}

	return Category{
		Name:   "Formatting & Parsability",
		Score:  math.Max(0, score),
		Weight: 0.25,
		Checks: checks,
		Tips:   tips,
	}
}

// scoreSections covers category 2: presence of standard section headers.
func (s *Scorer) scoreSections(text string) Category {
	var checks []CheckResult
	var tips []string
	textLower := strings.ToLower(text)

	foundSections := make(map[string]bool, len(headerPatterns))
	for section, pats := range headerPatterns {
		for _, pat := range pats {
			if pat.MatchString(textLower) {
				foundSections[section] = true
				break
			}
		}
	}

	requiredFound := 0
	for _, section := range requiredSections {
		if foundSections[section] {
			requiredFound++
		}
	}

	var score float64
	if requiredFound == len(requiredSections) {
		score = 80.0
		checks = append(checks, CheckResult{
			Name:     "required_sections",
			Passed:   true,
			Score:    1.0,
			Message:  "All key sections found (Experience, Education, Skills)",
			Severity: SeverityGood,
		})
	} else {
		var missing []string
		for _, section := range requiredSections {
			if !foundSections[section] {
				missing = append(missing, titleWord(section))
			}
		}
		score = math.Max(20, float64(requiredFound)/float64(len(requiredSections))*80)
		checks = append(checks, CheckResult{
			Name:     "required_sections",
			Passed:   false,
			Score:    float64(requiredFound) / float64(len(requiredSections)),
			Message:  "Missing key sections: " + strings.Join(missing, ", "),
			Severity: SeverityCritical,
		})
		tips = append(tips, "Add clear section headers for: "+strings.Join(missing, ", "))
	}

	bonusFound := 0
	var bonusNames []string
	for _, section := range bonusSections {
		if foundSections[section] {
			bonusFound++
			bonusNames = append(bonusNames, titleWord(section))
		}
	}
	score += float64(bonusFound) * (20.0 / float64(len(bonusSections)))

	if bonusFound > 0 {
		checks = append(checks, CheckResult{
			Name:     "bonus_sections",
			Passed:   true,
			Score:    float64(bonusFound) / float64(len(bonusSections)),
			Message:  "Bonus sections found: " + strings.Join(bonusNames, ", "),
			Severity: SeverityGood,
		})
	} else {
		checks = append(checks, CheckResult{
			Name:     "bonus_sections",
			Passed:   false,
			Score:    0.0,
			Message:  "No summary, certifications, or projects section found",
			Severity: SeverityInfo,
		})
		tips = append(tips, "Add a Professional Summary section at the top for better ATS ranking")
	}

	return Category{
		Name:   "Section Structure",
		Score:  math.Min(100, math.Max(0, score)),
		Weight: 0.20,
		Checks: checks,
		Tips:   tips,
	}
}

// scoreKeywords covers category 3: how well the JD keywords are used.
func (s *Scorer) scoreKeywords(text string, skillsFound, missing []string) Category {
	var checks []CheckResult
	var tips []string

	total := len(skillsFound) + len(missing)
	if total == 0 {
		return Category{
			Name:   "Keyword Optimization",
			Score:  50.0,
			Weight: 0.25,
			Checks: []CheckResult{{
				Name:     "keyword_match",
				Passed:   true,
				Score:    0.5,
				Message:  "No specific skills detected in job description",
				Severity: SeverityInfo,
			}},
			Tips: []string{"Include relevant technical skills explicitly in your resume"},
		}
	}

	matchRate := float64(len(skillsFound)) / float64(total)
	score := matchRate * 100

	switch {
	case matchRate >= 0.8:
		checks = append(checks, CheckResult{
			Name:     "keyword_match",
			Passed:   true,
			Score:    matchRate,
			Message:  fmt.Sprintf("Excellent keyword match: %d/%d skills (%.0f%%)", len(skillsFound), total, matchRate*100),
			Severity: SeverityGood,
		})
	case matchRate >= 0.5:
		checks = append(checks, CheckResult{
			Name:     "keyword_match",
			Passed:   true,
			Score:    matchRate,
			Message:  fmt.Sprintf("Good keyword match: %d/%d skills (%.0f%%)", len(skillsFound), total, matchRate*100),
			Severity: SeverityInfo,
		})
		tips = append(tips, "Add missing keywords to improve ATS ranking: "+strings.Join(firstN(missing, 3), ", "))
	default:
		checks = append(checks, CheckResult{
			Name:     "keyword_match",
			Passed:   false,
			Score:    matchRate,
			Message:  fmt.Sprintf("Low keyword match: %d/%d skills (%.0f%%)", len(skillsFound), total, matchRate*100),
			Severity: SeverityCritical,
		})
		tips = append(tips, "Your resume is missing critical keywords: "+strings.Join(firstN(missing, 4), ", "))
	}

	// A dedicated skills section makes the keywords easy for an ATS to pick
	// up. Plain substring search here, unlike the line-anchored section scan.
	textLower := strings.ToLower(text)
	skillsSection := false
	for _, header := range sectionHeaders["skills"] {
		if strings.Contains(textLower, header) {
			skillsSection = true
			break
		}
	}
	if skillsSection {
		checks = append(checks, CheckResult{
			Name:     "skills_section",
			Passed:   true,
			Score:    1.0,
			Message:  "Skills listed in a dedicated section — ATS-friendly",
			Severity: SeverityGood,
		})
		score = math.Min(100, score+5)
	} else {
		checks = append(checks, CheckResult{
			Name:     "skills_section",
			Passed:   false,
			Score:    0.3,
			Message:  "No dedicated skills section found — ATS may miss your skills",
			Severity: SeverityWarning,
		})
		tips = append(tips, "Create a 'Skills' or 'Technical Skills' section listing your key skills")
		score = math.Max(0, score-5)
	}

	// Keyword stuffing: only the first offender is reported.
	for _, skill := range firstN(skillsFound, 5) {
		count := strings.Count(textLower, strings.ToLower(skill))
		if count > 8 {
			score -= 10
			checks = append(checks, CheckResult{
				Name:     "keyword_stuffing",
				Passed:   false,
				Score:    0.3,
				Message:  fmt.Sprintf("'%s' appears %d times — may be flagged as keyword stuffing", skill, count),
				Severity: SeverityWarning,
			})
			tips = append(tips, "Avoid repeating the same keyword excessively — use it 2-4 times naturally")
			break
		}
	}

	return Category{
		Name:   "Keyword Optimization",
		Score:  math.Max(0, math.Min(100, score)),
		Weight: 0.25,
		Checks: checks,
		Tips:   tips,
	}
}

// scoreContact covers category 4: parsable contact information.
func (s *Scorer) scoreContact(text string) Category {
	var checks []CheckResult
	var tips []string
	score := 0.0

	if email := emailPattern.FindString(text); email != "" {
		score += 30
		checks = append(checks, CheckResult{
			Name:     "email",
			Passed:   true,
			Score:    1.0,
			Message:  "Email found: " + truncate(email, 30),
			Severity: SeverityGood,
		})
	} else {
		checks = append(checks, CheckResult{
			Name:     "email",
			Passed:   false,
			Score:    0.0,
			Message:  "No email address found",
			Severity: SeverityCritical,
		})
		tips = append(tips, "Add your email address — it's essential for ATS parsing")
	}

	// Phone numbers live near the top, so only the head is scanned.
	if phonePattern.MatchString(truncate(text, 500)) {
		score += 25
		checks = append(checks, CheckResult{
			Name:     "phone",
			Passed:   true,
			Score:    1.0,
			Message:  "Phone number found",
			Severity: SeverityGood,
		})
	} else {
		checks = append(checks, CheckResult{
			Name:     "phone",
			Passed:   false,
			Score:    0.0,
			Message:  "No phone number detected",
			Severity: SeverityWarning,
		})
		tips = append(tips, "Add a phone number for recruiter contact")
	}

	if linkedinPattern.MatchString(text) {
		score += 20
		checks = append(checks, CheckResult{
			Name:     "linkedin",
			Passed:   true,
			Score:    1.0,
			Message:  "LinkedIn profile URL found",
			Severity: SeverityGood,
		})
	} else {
		checks = append(checks, CheckResult{
			Name:     "linkedin",
			Passed:   false,
			Score:    0.0,
			Message:  "No LinkedIn profile URL found",
			Severity: SeverityInfo,
		})
		tips = append(tips, "Include your LinkedIn profile URL")
	}

	// Name heuristic: a short first line with no digits or @ is probably
	// the candidate's name.
	nameFound := false
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if fields := strings.Fields(line); len(fields) >= 2 && len(fields) <= 5 && !nameDigitAt.MatchString(line) {
			nameFound = true
			score += 25
			checks = append(checks, CheckResult{
				Name:     "name",
				Passed:   true,
				Score:    1.0,
				Message:  "Name likely detected: " + truncate(line, 40),
				Severity: SeverityGood,
			})
		}
		break
	}
	if !nameFound {
		checks = append(checks, CheckResult{
			Name:     "name",
			Passed:   false,
			Score:    0.0,
			Message:  "Name may not be clearly placed at the top",
			Severity: SeverityWarning,
		})
		tips = append(tips, "Put your full name as the first line of your resume")
	}

	return Category{
		Name:   "Contact Information",
		Score:  math.Min(100, math.Max(0, score)),
		Weight: 0.10,
		Checks: checks,
		Tips:   tips,
	}
}

// scoreContent covers category 5: action verbs, metrics and dates.
func (s *Scorer) scoreContent(text string) Category {
	var checks []CheckResult
	var tips []string
	score := 0.0
	textLower := strings.ToLower(text)

	foundVerbs := 0
	for _, pat := range verbPatterns {
		if pat.MatchString(textLower) {
			foundVerbs++
		}
	}
	switch {
	case foundVerbs >= 8:
		score += 35
		checks = append(checks, CheckResult{
			Name:     "action_verbs",
			Passed:   true,
			Score:    1.0,
			Message:  fmt.Sprintf("Strong use of action verbs (%d found)", foundVerbs),
			Severity: SeverityGood,
		})
	case foundVerbs >= 4:
		score += 25
		checks = append(checks, CheckResult{
			Name:     "action_verbs",
			Passed:   true,
			Score:    0.7,
			Message:  fmt.Sprintf("Good use of action verbs (%d found)", foundVerbs),
			Severity: SeverityInfo,
		})
		tips = append(tips, "Use more action verbs like 'implemented', 'optimized', 'delivered'")
	default:
		score += 10
		checks = append(checks, CheckResult{
			Name:     "action_verbs",
			Passed:   false,
			Score:    0.3,
			Message:  fmt.Sprintf("Few action verbs found (%d) — resume may seem passive", foundVerbs),
			Severity: SeverityWarning,
		})
		tips = append(tips, "Start bullet points with action verbs: 'Built', 'Led', 'Reduced', 'Designed'")
	}

	metricsCount := len(metricsPattern.FindAllString(text, -1))
	switch {
	case metricsCount >= 5:
		score += 35
		checks = append(checks, CheckResult{
			Name:     "metrics",
			Passed:   true,
			Score:    1.0,
			Message:  fmt.Sprintf("Good use of metrics and numbers (%d found)", metricsCount),
			Severity: SeverityGood,
		})
	case metricsCount >= 2:
		score += 20
		checks = append(checks, CheckResult{
			Name:     "metrics",
			Passed:   true,
			Score:    0.6,
			Message:  fmt.Sprintf("Some metrics found (%d) — add more for impact", metricsCount),
			Severity: SeverityInfo,
		})
		tips = append(tips, "Quantify achievements: 'Increased performance by 40%', 'Managed team of 8'")
	default:
		score += 5
		checks = append(checks, CheckResult{
			Name:     "metrics",
			Passed:   false,
			Score:    0.2,
			Message:  "Very few quantified achievements found",
			Severity: SeverityWarning,
		})
		tips = append(tips, "Add numbers to your achievements: revenue, percentages, team sizes, etc.")
	}

	dateCount := 0
	for _, pat := range datePatterns {
		dateCount += len(pat.FindAllString(text, -1))
	}
	switch {
	case dateCount >= 2:
		score += 30
		checks = append(checks, CheckResult{
			Name:     "dates",
			Passed:   true,
			Score:    1.0,
			Message:  fmt.Sprintf("Clear date entries found (%d dates)", dateCount),
			Severity: SeverityGood,
		})
	case dateCount == 1:
		score += 15
		checks = append(checks, CheckResult{
			Name:     "dates",
			Passed:   true,
			Score:    0.5,
			Message:  "Only one date entry found — add dates to all positions",
			Severity: SeverityInfo,
		})
		tips = append(tips, "Add start and end dates (e.g., 'Jan 2022 – Present') to all positions")
	default:
		checks = append(checks, CheckResult{
			Name:     "dates",
			Passed:   false,
			Score:    0.0,
			Message:  "No date entries detected — ATS needs dates for chronological parsing",
			Severity: SeverityCritical,
		})
		tips = append(tips, "Include dates for each role: 'Jan 2022 – Present' or '2021 – 2023'")
	}

	return Category{
		Name:   "Content Quality",
		Score:  math.Min(100, math.Max(0, score)),
		Weight: 0.20,
		Checks: checks,
		Tips:   tips,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func emptyNotNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
