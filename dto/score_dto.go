package dto

import (
	"time"

	"github.com/riskdesk/riskdesk-backend/models"
)

type APIScoreResult struct {
	CaseId     string    `json:"case_id"`
	RiskScore  int       `json:"risk_score"`
	Verdict    string    `json:"verdict"`
	Confidence float64   `json:"confidence"`
	Rationale  string    `json:"rationale"`
	Signals    []string  `json:"signals"`
	Model      string    `json:"model"`
	Backend    string    `json:"backend"`
	Timestamp  time.Time `json:"timestamp"`
}

func AdaptScoreResultDto(result models.ScoreResult) APIScoreResult {
	return APIScoreResult{
		CaseId:     result.CaseId,
		RiskScore:  result.RiskScore,
		Verdict:    result.Verdict.String(),
		Confidence: result.Confidence,
		Rationale:  result.Rationale,
		Signals:    result.Signals,
		Model:      result.Model,
		Backend:    result.Backend,
		Timestamp:  result.Timestamp,
	}
}
