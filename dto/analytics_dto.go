package dto

import (
	"github.com/riskdesk/riskdesk-backend/models"
	"github.com/riskdesk/riskdesk-backend/pure_utils"
)

type APIReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

type APIOverrideSummary struct {
	TotalFeedback int              `json:"total_feedback"`
	OverrideRate  float64          `json:"override_rate"`
	TopReasons    []APIReasonCount `json:"top_reasons"`
}

func AdaptOverrideSummaryDto(summary models.OverrideSummary) APIOverrideSummary {
	topReasons := pure_utils.Map(summary.TopReasons, func(r models.ReasonCount) APIReasonCount {
		return APIReasonCount{Reason: r.Reason, Count: r.Count}
	})
	if topReasons == nil {
		topReasons = []APIReasonCount{}
	}

	return APIOverrideSummary{
		TotalFeedback: summary.TotalFeedback,
		OverrideRate:  summary.OverrideRate,
		TopReasons:    topReasons,
	}
}
