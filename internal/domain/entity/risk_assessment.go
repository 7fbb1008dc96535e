package entity

import "strings"

const (
	// MaxRiskReasons bounds how many reason strings an assessment keeps.
	MaxRiskReasons = 10
	// MaxRiskSummaryLen bounds the free-text summary length.
	MaxRiskSummaryLen = 240

	// FallbackSummary marks an assessment produced by the degraded path
	// instead of the external model.
	FallbackSummary = "AI_UNAVAILABLE"
	// FallbackRiskScore is the neutral score of the canned fallback.
	FallbackRiskScore = 50
)

// RiskAssessment is a bounded score, reason list and summary describing an
// application's estimated risk. Always run Normalized before use: the bounds
// hold for model output and fallback alike.
type RiskAssessment struct {
	Score   int      `json:"riskScore"`
	Reasons []string `json:"reasons"`
	Summary string   `json:"summary"`
}

// Normalized returns a copy with the score clamped to [0,100], at most
// MaxRiskReasons reasons and the summary truncated to MaxRiskSummaryLen.
func (ra RiskAssessment) Normalized() RiskAssessment {
	out := ra
	if out.Score < 0 {
		out.Score = 0
	}
	if out.Score > 100 {
		out.Score = 100
	}
	if len(out.Reasons) > MaxRiskReasons {
		out.Reasons = append([]string(nil), out.Reasons[:MaxRiskReasons]...)
	}
	if len(out.Summary) > MaxRiskSummaryLen {
		out.Summary = out.Summary[:MaxRiskSummaryLen]
	}
	return out
}

// IsFallback reports whether this assessment carries the fallback marker.
func (ra RiskAssessment) IsFallback() bool {
	return strings.Contains(strings.ToUpper(ra.Summary), FallbackSummary)
}

// FallbackAssessment is the canned result substituted whenever the external
// assessor fails.
func FallbackAssessment() RiskAssessment {
	return RiskAssessment{
		Score:   FallbackRiskScore,
		Reasons: []string{FallbackSummary},
		Summary: FallbackSummary,
	}
}
