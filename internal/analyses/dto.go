package analyses

import (
	"github.com/moussa101/Skillora/internal/ats"
	"github.com/moussa101/Skillora/internal/language"
	"github.com/moussa101/Skillora/internal/match"
)

// AnalyzeRequest is the JSON body for POST /analyze.
type AnalyzeRequest struct {
	ResumeText     string `json:"resumeText" binding:"required"`
	JobDescription string `json:"jobDescription" binding:"required"`
	// Language optionally overrides detection with an ISO 639-1 code.
	Language string `json:"language"`
}

// ATSRequest is the JSON body for POST /ats-score.
type ATSRequest struct {
	ResumeText     string `json:"resumeText" binding:"required"`
	JobDescription string `json:"jobDescription" binding:"required"`
}

// AnalysisResult is the response for the analyze endpoints.
type AnalysisResult struct {
	Score            float64          `json:"score"`
	Suspicious       bool             `json:"suspicious"`
	SuspiciousReason string           `json:"suspiciousReason,omitempty"`
	SkillsFound      []string         `json:"skillsFound"`
	MissingKeywords  []string         `json:"missingKeywords"`
	Feedback         match.Feedback   `json:"feedback"`
	Language         language.Info    `json:"language"`
	ATS              *ats.ScoreResult `json:"ats,omitempty"`
}

// ExtractResult is the response for POST /extract-text.
type ExtractResult struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
	Length   int    `json:"length"`
	Status   string `json:"status"`
}
