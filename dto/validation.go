package dto

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// AdaptFieldValidationError maps a binding validation error to a human-readable
// message, returned in the `details` of the error response.
func AdaptFieldValidationError(fe validator.FieldError) string {
	message := func(fe validator.FieldError) string {
		switch fe.ActualTag() {
		case "required":
			return "is required"
		case "oneof":
			opts := strings.Split(fe.Param(), " ")
			return fmt.Sprintf("must be one of %s", strings.Join(opts, ", "))
		default:
			return fmt.Sprintf("is invalid (%s)", fe.ActualTag())
		}
	}

	return fmt.Sprintf("field '%s' %s", strings.ToLower(fe.Field()), message(fe))
}

// ValidationErrorDetails extracts per-field messages from a gin binding error.
// Non-validator errors (unparseable JSON, wrong types) yield no details: the
// fixed top-level error message is all the caller gets.
func ValidationErrorDetails(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, AdaptFieldValidationError(fe))
	}
	return details
}
