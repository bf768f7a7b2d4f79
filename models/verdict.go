package models

type Verdict int

const (
	VerdictApprove Verdict = iota
	VerdictReview
	VerdictReject
	UnknownVerdict
)

var ValidVerdicts = []Verdict{VerdictApprove, VerdictReview, VerdictReject}

// Provide a string value for each verdict
func (v Verdict) String() string {
	switch v {
	case VerdictApprove:
		return "approve"
	case VerdictReview:
		return "review"
	case VerdictReject:
		return "reject"
	}
	return "unknown"
}

// Provide a Verdict from a string value
func VerdictFrom(s string) Verdict {
	switch s {
	case "approve":
		return VerdictApprove
	case "review":
		return VerdictReview
	case "reject":
		return VerdictReject
	}
	return UnknownVerdict
}
