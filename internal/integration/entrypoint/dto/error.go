// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents an error in API responses. Details carries
// field-level validation messages when the request body failed schema
// validation.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationDetails extracts field-level messages from a binding error.
// Non-validation errors yield nil.
func ValidationDetails(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "required":
			details[fe.Field()] = "is required"
		case "oneof":
			details[fe.Field()] = "must be one of: " + fe.Param()
		case "min":
			details[fe.Field()] = "must have at least " + fe.Param()
		case "max":
			details[fe.Field()] = "must have at most " + fe.Param()
		case "datetime":
			details[fe.Field()] = "must be a date in YYYY-MM-DD format"
		default:
			details[fe.Field()] = "is invalid"
		}
	}
	return details
}
