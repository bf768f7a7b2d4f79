package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Messages of the two recoverable boundary errors. The http response bodies
// carry them verbatim, so they must not change without updating API consumers.
const (
	MissingCaseFieldsMessage = "Missing required fields"
	InvalidFeedbackMessage   = "Invalid feedback payload"
)

var (
	ErrMissingCaseFields = errors.Wrap(BadParameterError, MissingCaseFieldsMessage)
	ErrInvalidFeedback   = errors.Wrap(BadParameterError, InvalidFeedbackMessage)
)
