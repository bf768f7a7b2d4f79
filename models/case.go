package models

type CaseType int

const (
	CaseTypeTransaction CaseType = iota
	CaseTypeContent
	CaseTypeAccount
	UnknownCaseType
)

var ValidCaseTypes = []CaseType{CaseTypeTransaction, CaseTypeContent, CaseTypeAccount}

func (t CaseType) String() string {
	switch t {
	case CaseTypeTransaction:
		return "transaction"
	case CaseTypeContent:
		return "content"
	case CaseTypeAccount:
		return "account"
	}
	return "unknown"
}

func CaseTypeFrom(s string) CaseType {
	switch s {
	case "transaction":
		return CaseTypeTransaction
	case "content":
		return CaseTypeContent
	case "account":
		return CaseTypeAccount
	}
	return UnknownCaseType
}

// Case is the input of a scoring call. It is never persisted: the caller keeps
// the returned ScoreResult around if it intends to submit feedback on it later.
type Case struct {
	Id          string
	Type        CaseType
	Summary     string
	Amount      *float64
	Merchant    string
	UserContext string
}
