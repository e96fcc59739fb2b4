// Package ats evaluates how well a resume will parse and rank in applicant
// tracking systems. The overall score is the weighted sum of five
// independent category scores: formatting & parsability (25%), section
// structure (20%), keyword optimization (25%), contact information (10%)
// and content quality (20%).
package ats

// Severity classifies a check outcome.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
	SeverityGood     Severity = "good"
)

// CheckResult is the outcome of a single ATS check.
type CheckResult struct {
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	Score    float64  `json:"score"` // 0.0 - 1.0
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Category is the scoring for one ATS category.
type Category struct {
	Name   string        `json:"name"`
	Score  float64       `json:"score"` // 0 - 100
	Weight float64       `json:"weight"`
	Checks []CheckResult `json:"checks"`
	Tips   []string      `json:"tips,omitempty"`
}

// ScoreResult is the complete ATS compatibility score.
type ScoreResult struct {
	OverallScore     float64    `json:"overallScore"` // 0 - 100
	Categories       []Category `json:"categories"`
	CriticalIssues   []string   `json:"criticalIssues"`
	Suggestions      []string   `json:"suggestions"`
	KeywordMatchRate float64    `json:"keywordMatchRate"` // 0 - 100
}
