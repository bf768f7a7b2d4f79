package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerdictFromScore_boundaries(t *testing.T) {
	assert.Equal(t, VerdictApprove, VerdictFromScore(0))
	assert.Equal(t, VerdictApprove, VerdictFromScore(39))
	assert.Equal(t, VerdictReview, VerdictFromScore(40))
	assert.Equal(t, VerdictReview, VerdictFromScore(69))
	assert.Equal(t, VerdictReject, VerdictFromScore(70))
	assert.Equal(t, VerdictReject, VerdictFromScore(100))
}

func TestConfidenceFromScore_boundaries(t *testing.T) {
	assert.Equal(t, HighConfidence, ConfidenceFromScore(20))
	assert.Equal(t, LowConfidence, ConfidenceFromScore(21))
	assert.Equal(t, LowConfidence, ConfidenceFromScore(79))
	assert.Equal(t, HighConfidence, ConfidenceFromScore(80))
	assert.Equal(t, HighConfidence, ConfidenceFromScore(0))
	assert.Equal(t, HighConfidence, ConfidenceFromScore(100))
}

func TestClampRiskScore(t *testing.T) {
	assert.Equal(t, 0, ClampRiskScore(-5))
	assert.Equal(t, 55, ClampRiskScore(55))
	assert.Equal(t, 100, ClampRiskScore(120))
}

func TestVerdictRoundTrip(t *testing.T) {
	for _, verdict := range ValidVerdicts {
		assert.Equal(t, verdict, VerdictFrom(verdict.String()))
	}
	assert.Equal(t, UnknownVerdict, VerdictFrom("decline"))
}

func TestCaseTypeRoundTrip(t *testing.T) {
	for _, caseType := range ValidCaseTypes {
		assert.Equal(t, caseType, CaseTypeFrom(caseType.String()))
	}
	assert.Equal(t, UnknownCaseType, CaseTypeFrom("payment"))
}
