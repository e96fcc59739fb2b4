// Package language identifies the language of resume text. The classifier
// itself (whatlanggo) is treated as a black box; this package normalizes its
// output into stable ISO 639-1 codes with display names.
package language

import (
	"sort"
	"strings"
)

// Info describes a detected language. Built once per call, immutable after.
type Info struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	IsRTL      bool    `json:"isRtl"`
}

// Detector identifies the language of a piece of text.
type Detector interface {
	Detect(text string) Info
}

// DefaultCode is assumed when detection is unavailable or unreliable.
const DefaultCode = "en"

// minDetectableLength is the shortest trimmed text worth classifying.
const minDetectableLength = 20

var displayNames = map[string]string{
	"en":    "English",
	"es":    "Spanish",
	"fr":    "French",
	"de":    "German",
	"zh-cn": "Chinese (Simplified)",
	"zh-tw": "Chinese (Traditional)",
	"ar":    "Arabic",
	"hi":    "Hindi",
	"pt":    "Portuguese",
	"ru":    "Russian",
	"ja":    "Japanese",
	"ko":    "Korean",
	"it":    "Italian",
	"nl":    "Dutch",
	"pl":    "Polish",
	"tr":    "Turkish",
	"vi":    "Vietnamese",
	"th":    "Thai",
	"id":    "Indonesian",
	"sv":    "Swedish",
}

var rtlCodes = map[string]struct{}{
	"ar": {},
	"he": {},
	"fa": {},
	"ur": {},
}

// Default returns the Info used when no detection happened.
func Default() Info {
	return Info{Code: DefaultCode, Name: "English", Confidence: 1.0}
}

// IsRTL reports whether the language is written right to left.
func IsRTL(code string) bool {
	_, ok := rtlCodes[code]
	return ok
}

// DisplayName returns the human-readable name for a language code, falling
// back to the upper-cased code itself.
func DisplayName(code string) string {
	if name, ok := displayNames[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}

// InfoFor builds an Info for an explicitly supplied language code.
func InfoFor(code string, confidence float64) Info {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return Default()
	}
	return Info{
		Code:       code,
		Name:       DisplayName(code),
		Confidence: confidence,
		IsRTL:      IsRTL(code),
	}
}

// Supported lists the languages with display names, sorted by code.
func Supported() []Info {
	out := make([]Info, 0, len(displayNames))
	for code, name := range displayNames {
		out = append(out, Info{Code: code, Name: name, Confidence: 1.0, IsRTL: IsRTL(code)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
