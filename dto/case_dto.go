package dto

import (
	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/riskdesk/riskdesk-backend/models"
)

type CaseBody struct {
	Id          string     `json:"id"`
	Type        string     `json:"type" binding:"required,oneof=transaction content account"`
	Summary     string     `json:"summary" binding:"required"`
	Amount      null.Float `json:"amount"`
	Merchant    string     `json:"merchant"`
	UserContext string     `json:"user_context"`
}

type CreateScoreBody struct {
	Case *CaseBody `json:"case" binding:"required"`
}

func AdaptCase(body CaseBody) (models.Case, error) {
	// null.Float is opaque to the binding validator, so the sign check is done here.
	var amount *float64
	if body.Amount.Valid {
		if body.Amount.Float64 < 0 {
			return models.Case{}, errors.Wrap(models.ErrMissingCaseFields, "amount must be non-negative")
		}
		amount = &body.Amount.Float64
	}

	return models.Case{
		Id:          body.Id,
		Type:        models.CaseTypeFrom(body.Type),
		Summary:     body.Summary,
		Amount:      amount,
		Merchant:    body.Merchant,
		UserContext: body.UserContext,
	}, nil
}
