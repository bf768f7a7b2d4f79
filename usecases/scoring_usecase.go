package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/riskdesk/riskdesk-backend/models"
)

// Rule weights of the scoring heuristic. Rules are additive and independent so
// that each signal's contribution stays individually auditable by a reviewer.
const (
	BaselineScore = 20

	HighAmountThreshold     = 500.0
	HighAmountWeight        = 25
	UrgencyLanguageWeight   = 15
	HighRiskPaymentWeight   = 25
	SocialEngineeringWeight = 15
)

const scoreRationale = "Heuristic rule-based assessment over the case description"

// ScoringRule triggers on the case (for structured fields) or on the lowercased
// concatenation of its free-text fields.
type ScoringRule struct {
	Signal    string
	Weight    int
	Triggered func(c models.Case, text string) bool
}

// ScoringRules is evaluated in order; the order of emitted signals follows this
// table, not the case content.
var ScoringRules = []ScoringRule{
	{
		Signal: "high_amount",
		Weight: HighAmountWeight,
		Triggered: func(c models.Case, text string) bool {
			return c.Amount != nil && *c.Amount > HighAmountThreshold
		},
	},
	{
		Signal: "urgency_language",
		Weight: UrgencyLanguageWeight,
		Triggered: func(c models.Case, text string) bool {
			return containsAny(text, "urgent", "immediately")
		},
	},
	{
		Signal: "high_risk_payment",
		Weight: HighRiskPaymentWeight,
		Triggered: func(c models.Case, text string) bool {
			return containsAny(text, "gift card", "wire", "crypto")
		},
	},
	{
		Signal: "social_engineering_phrase",
		Weight: SocialEngineeringWeight,
		Triggered: func(c models.Case, text string) bool {
			return containsAny(text, "not a scam", "trust me")
		},
	},
}

type ScoringUseCase struct {
	modelName   string
	backendName string
}

// ScoreCase is total over well-formed cases: required-field validation happens
// at the api boundary, everything that reaches this point produces a result.
func (usecase ScoringUseCase) ScoreCase(ctx context.Context, c models.Case) models.ScoreResult {
	text := strings.ToLower(strings.Join([]string{c.Summary, c.Merchant, c.UserContext}, " "))

	score := BaselineScore
	signals := []string{}
	for _, rule := range ScoringRules {
		if rule.Triggered(c, text) {
			score += rule.Weight
			signals = append(signals, rule.Signal)
		}
	}
	score = models.ClampRiskScore(score)

	caseId := c.Id
	if caseId == "" {
		caseId = uuid.NewString()
	}

	return models.ScoreResult{
		CaseId:     caseId,
		RiskScore:  score,
		Verdict:    models.VerdictFromScore(score),
		Confidence: models.ConfidenceFromScore(score),
		Rationale:  scoreRationale,
		Signals:    signals,
		Model:      usecase.modelName,
		Backend:    usecase.backendName,
		Timestamp:  time.Now(),
	}
}

func containsAny(text string, phrases ...string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
