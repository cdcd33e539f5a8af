package model

// ReasoningResult sources.
const (
	ReasoningSourceExternal = "external"
	ReasoningSourceFallback = "fallback"
)

// Reasoning verdict and risk vocabularies.
const (
	FinalVerdictLikelyFake = "likely_fake"
	FinalVerdictLikelyReal = "likely_real"
	FinalVerdictUncertain  = "uncertain"

	RiskLevelLow    = "low"
	RiskLevelMedium = "medium"
	RiskLevelHigh   = "high"
)

// ReasoningResult is the structured explanation for a verdict, built either
// from the external reasoning service or from the deterministic fallback.
// Source is mandatory so callers can distinguish degraded mode. RawResponse
// holds the upstream payload verbatim (empty on fallback) for audit.
type ReasoningResult struct {
	FinalVerdict        string
	RiskLevel           string
	ScoreSummary        string
	ArtefactExplanation []string
	OverallExplanation  string
	Source              string
	RawResponse         string
}
