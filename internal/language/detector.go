package language

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// WhatlangDetector wraps the whatlanggo trigram classifier.
type WhatlangDetector struct{}

// NewDetector returns the default language detector.
func NewDetector() WhatlangDetector {
	return WhatlangDetector{}
}

// iso3to1 maps whatlanggo's ISO 639-3 output to the 639-1 codes used by the
// skill dictionaries. Unlisted languages keep their 639-3 code.
var iso3to1 = map[string]string{
	"eng": "en",
	"spa": "es",
	"fra": "fr",
	"deu": "de",
	"cmn": "zh-cn",
	"arb": "ar",
	"hin": "hi",
	"por": "pt",
	"rus": "ru",
	"jpn": "ja",
	"kor": "ko",
	"ita": "it",
	"nld": "nl",
	"pol": "pl",
	"tur": "tr",
	"vie": "vi",
	"tha": "th",
	"ind": "id",
	"swe": "sv",
	"heb": "he",
	"pes": "fa",
	"urd": "ur",
}

// Detect classifies the language of text. Texts shorter than 20 trimmed
// characters default to English with zero confidence, matching the behavior
// expected by callers for degenerate input.
func (WhatlangDetector) Detect(text string) Info {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minDetectableLength {
		return Info{Code: DefaultCode, Name: "English", Confidence: 0.0}
	}

	result := whatlanggo.Detect(trimmed)
	code3 := whatlanggo.LangToString(result.Lang)
	if code3 == "" {
		return Info{Code: DefaultCode, Name: "English", Confidence: 0.0}
	}

	code := code3
	if mapped, ok := iso3to1[code3]; ok {
		code = mapped
	}

	confidence := result.Confidence
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}

	return Info{
		Code:       code,
		Name:       DisplayName(code),
		Confidence: confidence,
		IsRTL:      IsRTL(code),
	}
}
