package models

import "time"

// Verdict and confidence thresholds. They are exported so that the test suite
// can assert on the exact boundary values.
const (
	RejectScoreThreshold = 70
	ReviewScoreThreshold = 40

	// Outside of [HighConfidenceLowerBound, HighConfidenceUpperBound] the
	// heuristic is considered certain of its verdict.
	HighConfidenceLowerBound = 20
	HighConfidenceUpperBound = 80

	HighConfidence = 0.85
	LowConfidence  = 0.65

	MinRiskScore = 0
	MaxRiskScore = 100
)

type ScoreResult struct {
	CaseId     string
	RiskScore  int
	Verdict    Verdict
	Confidence float64
	Rationale  string
	Signals    []string
	Model      string
	Backend    string
	Timestamp  time.Time
}

func VerdictFromScore(score int) Verdict {
	switch {
	case score >= RejectScoreThreshold:
		return VerdictReject
	case score >= ReviewScoreThreshold:
		return VerdictReview
	default:
		return VerdictApprove
	}
}

func ConfidenceFromScore(score int) float64 {
	if score >= HighConfidenceUpperBound || score <= HighConfidenceLowerBound {
		return HighConfidence
	}
	return LowConfidence
}

func ClampRiskScore(score int) int {
	if score < MinRiskScore {
		return MinRiskScore
	}
	if score > MaxRiskScore {
		return MaxRiskScore
	}
	return score
}
