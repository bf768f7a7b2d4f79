package usecases

import (
	"context"
	"math"
	"sort"

	"github.com/riskdesk/riskdesk-backend/models"
)

type FeedbackReaderRepository interface {
	ListAll(ctx context.Context) ([]models.FeedbackRecord, error)
}

type AnalyticsUseCase struct {
	feedbackReader FeedbackReaderRepository
}

// OverrideSummary recomputes the aggregate over the full feedback history on
// every call. The log is in-memory and demo-scale, so the O(records x reasons)
// pass is acceptable; incremental counters would be the production shape.
func (usecase AnalyticsUseCase) OverrideSummary(ctx context.Context) (models.OverrideSummary, error) {
	records, err := usecase.feedbackReader.ListAll(ctx)
	if err != nil {
		return models.OverrideSummary{}, err
	}

	overrides := 0
	counts := map[string]int{}
	firstSeen := []string{}
	for _, record := range records {
		if record.Action == models.ReviewActionOverride {
			overrides++
		}
		for _, reason := range record.ReasonCodes {
			if _, seen := counts[reason]; !seen {
				firstSeen = append(firstSeen, reason)
			}
			counts[reason]++
		}
	}

	overrideRate := 0.0
	if len(records) > 0 {
		overrideRate = roundToTwoDecimals(float64(overrides) / float64(len(records)))
	}

	return models.OverrideSummary{
		TotalFeedback: len(records),
		OverrideRate:  overrideRate,
		TopReasons:    rankReasons(counts, firstSeen),
	}, nil
}

// rankReasons sorts reasons by count descending. Ties keep the order in which a
// reason first appeared in the log, so the ranking is deterministic.
func rankReasons(counts map[string]int, firstSeen []string) []models.ReasonCount {
	ranked := make([]models.ReasonCount, 0, len(firstSeen))
	for _, reason := range firstSeen {
		ranked = append(ranked, models.ReasonCount{Reason: reason, Count: counts[reason]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

func roundToTwoDecimals(f float64) float64 {
	return math.Round(f*100) / 100
}
