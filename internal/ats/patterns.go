package ats

import "regexp"

// sectionHeaders are the standard resume section headers ATS systems look
// for, grouped by canonical section.
var sectionHeaders = map[string][]string{
	"experience": {
		"experience", "work experience", "professional experience",
		"employment history", "work history", "career history",
		"relevant experience", "professional background",
	},
	"education": {
		"education", "academic background", "academic qualifications",
		"educational background", "qualifications", "degrees",
	},
	"skills": {
		"skills", "technical skills", "core competencies",
		"key skills", "competencies", "areas of expertise",
		"proficiencies", "technologies",
	},
	"summary": {
		"summary", "professional summary", "career summary",
		"profile", "professional profile", "about me",
		"objective", "career objective",
	},
	"certifications": {
		"certifications", "certificates", "licenses",
		"professional certifications", "credentials",
	},
	"projects": {
		"projects", "key projects", "personal projects",
		"notable projects", "portfolio",
	},
}

var (
	requiredSections = []string{"experience", "education", "skills"}
	bonusSections    = []string{"summary", "certifications", "projects"}
)

// actionVerbs are the verbs ATS systems and recruiters look for.
var actionVerbs = []string{
	"achieved", "administered", "analyzed", "built", "collaborated",
	"conducted", "coordinated", "created", "delivered", "designed",
	"developed", "directed", "drove", "engineered", "established",
	"executed", "expanded", "facilitated", "generated", "grew",
	"identified", "implemented", "improved", "increased", "initiated",
	"integrated", "launched", "led", "managed", "mentored",
	"monitored", "negotiated", "optimized", "orchestrated", "organized",
	"oversaw", "pioneered", "planned", "produced", "reduced",
	"redesigned", "refactored", "resolved", "revamped", "scaled",
	"shipped", "spearheaded", "streamlined", "supervised", "transformed",
	"upgraded", "utilized",
}

// problematicPattern pairs a character-class regexp with a human label for
// glyphs that confuse ATS parsers.
type problematicPattern struct {
	re    *regexp.Regexp
	label string
}

var problematicPatterns = []problematicPattern{
	{regexp.MustCompile(`[│|┃┆┇┊┋]`), "table/pipe characters"},
	{regexp.MustCompile(`[★☆●◆◇▪▫►▸•]`), "decorative bullet symbols"},
	{regexp.MustCompile(`[─━═┄┅┈┉]`), "box-drawing line characters"},
	{regexp.MustCompile(`[\x{200b}\x{200c}\x{200d}\x{feff}]`), "zero-width/invisible characters"},
	{regexp.MustCompile(`[©®™]`), "special symbols (©, ®, ™)"},
}

// datePatterns cover the date formats ATS systems can parse.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{4}\b`),
	regexp.MustCompile(`\b\d{4}\s*[-–—]\s*(?:\d{4}|[Pp]resent|[Cc]urrent)\b`),
	regexp.MustCompile(`\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}\s*[-–—]\s*(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|[Pp]resent|[Cc]urrent)\b`),
}

var (
	// metricsPattern finds quantified achievements: bare numbers,
	// percentages, dollar amounts and counted nouns.
	metricsPattern = regexp.MustCompile(`\b\d+[%+xX]?\b|\$\d+|\d+\s*(?:users|clients|customers|projects|team|members|engineers|developers|people|employees|reports|applications|servers|endpoints|requests|transactions|records)`)

	blankRunPattern = regexp.MustCompile(`\n{4,}`)
	emailPattern    = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.]+`)
	phonePattern    = regexp.MustCompile(`[+]?[\d\s\-()]{7,15}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	nameDigitAt     = regexp.MustCompile(`[@\d]`)
)

// verbPatterns are whole-word matchers for each action verb, compiled once.
var verbPatterns = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(actionVerbs))
	for i, verb := range actionVerbs {
		out[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(verb) + `\b`)
	}
	return out
}()

// headerPatterns precompile the line-anchored header matchers per section.
var headerPatterns = func() map[string][]*regexp.Regexp {
	out := make(map[string][]*regexp.Regexp, len(sectionHeaders))
	for section, headers := range sectionHeaders {
		pats := make([]*regexp.Regexp, len(headers))
		for i, header := range headers {
			pats[i] = regexp.MustCompile(`(?:^|\n)\s*` + regexp.QuoteMeta(header) + `\s*[:\n]`)
		}
		out[section] = pats
	}
	return out
}()
