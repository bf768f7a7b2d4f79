package models

import "time"

type ReviewAction int

const (
	ReviewActionApprove ReviewAction = iota
	ReviewActionOverride
	UnknownReviewAction
)

var ValidReviewActions = []ReviewAction{ReviewActionApprove, ReviewActionOverride}

func (a ReviewAction) String() string {
	switch a {
	case ReviewActionApprove:
		return "approve"
	case ReviewActionOverride:
		return "override"
	}
	return "unknown"
}

func ReviewActionFrom(s string) ReviewAction {
	switch s {
	case "approve":
		return ReviewActionApprove
	case "override":
		return ReviewActionOverride
	}
	return UnknownReviewAction
}

// OriginalScore is the snapshot of the model output the reviewer was looking at
// when they submitted their decision.
type OriginalScore struct {
	Verdict    Verdict
	RiskScore  int
	Confidence float64
	Model      string
	Backend    string
}

// FeedbackRecord is appended to the feedback log when a reviewer confirms or
// overrides a verdict. Records are never mutated or deleted afterwards.
type FeedbackRecord struct {
	CaseId       string
	Reviewer     string
	Action       ReviewAction
	FinalVerdict Verdict
	ReasonCodes  []string
	Notes        string
	Original     *OriginalScore
	ReceivedAt   time.Time
}
