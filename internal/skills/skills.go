// Package skills holds the per-language skill term dictionaries used for
// keyword extraction. Terms are stored lower-cased; matching is the caller's
// concern.
package skills

import "sort"

// Set is an unordered collection of lower-cased skill terms.
type Set map[string]struct{}

// Has reports whether term is in the set.
func (s Set) Has(term string) bool {
	_, ok := s[term]
	return ok
}

// Terms returns the set contents sorted alphabetically.
func (s Set) Terms() []string {
	out := make([]string, 0, len(s))
	for term := range s {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

func newSet(lists ...[]string) Set {
	s := make(Set)
	for _, list := range lists {
		for _, term := range list {
			s[term] = struct{}{}
		}
	}
	return s
}

// universalTerms are tech terms spelled identically across all supported
// languages, always unioned into every dictionary.
var universalTerms = []string{
	// Programming languages
	"python", "javascript", "typescript", "java", "c++", "c#", "c", "ruby", "go", "rust", "php", "swift", "kotlin", "scala",
	// Frameworks
	"react", "angular", "vue", "django", "flask", "fastapi", "spring", "node.js", "express",
	// Tools
	"docker", "kubernetes", "git", "github", "aws", "azure", "gcp",
	// Databases
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch",
}

var byLanguage = map[string]Set{
	"en":    newSet(englishTerms),
	"es":    newSet(spanishTerms),
	"fr":    newSet(frenchTerms),
	"de":    newSet(germanTerms),
	"zh-cn": newSet(chineseTerms),
	"zh-tw": newSet(chineseTerms),
	"ar":    newSet(arabicTerms),
}

var universal = newSet(universalTerms)

// ForLanguage returns the skill dictionary for the given language code,
// falling back to English for unknown codes. The universal term set is
// always included, so the result is never empty.
func ForLanguage(code string) Set {
	base, ok := byLanguage[code]
	if !ok {
		base = byLanguage["en"]
	}
	merged := make(Set, len(base)+len(universal))
	for term := range base {
		merged[term] = struct{}{}
	}
	for term := range universal {
		merged[term] = struct{}{}
	}
	return merged
}

// All returns every skill term across all language dictionaries.
func All() Set {
	merged := make(Set)
	for _, s := range byLanguage {
		for term := range s {
			merged[term] = struct{}{}
		}
	}
	for term := range universal {
		merged[term] = struct{}{}
	}
	return merged
}

// SupportedLanguages lists the language codes with a dedicated dictionary.
func SupportedLanguages() []string {
	codes := make([]string, 0, len(byLanguage))
	for code := range byLanguage {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
