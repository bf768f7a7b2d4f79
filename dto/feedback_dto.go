package dto

import (
	"github.com/riskdesk/riskdesk-backend/models"
)

type OriginalScoreBody struct {
	Verdict    string  `json:"verdict"`
	RiskScore  int     `json:"risk_score"`
	Confidence float64 `json:"confidence"`
	Model      string  `json:"model"`
	Backend    string  `json:"backend"`
}

type FeedbackBody struct {
	CaseId       string             `json:"case_id" binding:"required"`
	Reviewer     string             `json:"reviewer" binding:"required"`
	Action       string             `json:"action" binding:"required,oneof=approve override"`
	FinalVerdict string             `json:"final_verdict" binding:"required,oneof=approve review reject"`
	ReasonCodes  []string           `json:"reason_codes"`
	Notes        string             `json:"notes"`
	Original     *OriginalScoreBody `json:"original"`
}

func AdaptFeedbackRecord(body FeedbackBody) models.FeedbackRecord {
	var original *models.OriginalScore
	if body.Original != nil {
		original = &models.OriginalScore{
			Verdict:    models.VerdictFrom(body.Original.Verdict),
			RiskScore:  body.Original.RiskScore,
			Confidence: body.Original.Confidence,
			Model:      body.Original.Model,
			Backend:    body.Original.Backend,
		}
	}

	return models.FeedbackRecord{
		CaseId:       body.CaseId,
		Reviewer:     body.Reviewer,
		Action:       models.ReviewActionFrom(body.Action),
		FinalVerdict: models.VerdictFrom(body.FinalVerdict),
		ReasonCodes:  body.ReasonCodes,
		Notes:        body.Notes,
		Original:     original,
	}
}
