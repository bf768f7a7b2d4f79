package models

type ReasonCount struct {
	Reason string
	Count  int
}

// OverrideSummary is recomputed from the full feedback log on every read, it is
// never stored.
type OverrideSummary struct {
	TotalFeedback int
	OverrideRate  float64
	TopReasons    []ReasonCount
}
