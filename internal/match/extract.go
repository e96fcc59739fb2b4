// Package match scores how well a resume fits a job description. Extraction
// and scoring are pure functions over the input texts plus the static skill
// dictionaries; the only external collaborator is the optional embedder used
// when a job description contains no recognizable skills.
package match

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/moussa101/Skillora/internal/skills"
)

// Extract returns the dictionary skills present in text for the given
// language, title-cased for display and sorted alphabetically. Matching is
// case-insensitive and whole-word: "java" does not match inside
// "javascript", while punctuation-bearing terms like "c++" match literally.
func Extract(text, langCode string) []string {
	found := extractTerms(text, langCode)
	out := make([]string, 0, len(found))
	for term := range found {
		out = append(out, title(term))
	}
	sort.Strings(out)
	return out
}

// extractTerms returns the matched dictionary terms in canonical lower case.
func extractTerms(text, langCode string) map[string]struct{} {
	textLower := strings.ToLower(text)
	dict := skills.ForLanguage(langCode)

	found := make(map[string]struct{})
	for term := range dict {
		if containsWholeWord(textLower, term) {
			found[term] = struct{}{}
		}
	}
	return found
}

// containsWholeWord reports whether term occurs in textLower bounded by
// non-word runes. Boundaries are only enforced on term edges that are word
// runes, so terms ending in punctuation ("c++", ".net") still match.
func containsWholeWord(textLower, term string) bool {
	if term == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(term)
	last, _ := utf8.DecodeLastRuneInString(term)

	for start := 0; start <= len(textLower)-len(term); {
		idx := strings.Index(textLower[start:], term)
		if idx < 0 {
			return false
		}
		i := start + idx
		j := i + len(term)

		ok := true
		if isWordRune(first) && i > 0 {
			if prev, _ := utf8.DecodeLastRuneInString(textLower[:i]); isWordRune(prev) {
				ok = false
			}
		}
		if ok && isWordRune(last) && j < len(textLower) {
			if next, _ := utf8.DecodeRuneInString(textLower[j:]); isWordRune(next) {
				ok = false
			}
		}
		if ok {
			return true
		}
		start = i + 1
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// title upper-cases the first letter of every word, like the canonical
// display form of a skill label ("machine learning" -> "Machine Learning",
// "node.js" -> "Node.Js").
func title(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
