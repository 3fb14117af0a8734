package utils

import (
	"fmt"
	"strings"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateOneOf checks that value is one of the allowed choices (case-insensitive)
func ValidateOneOf(field, value string, allowed ...string) error {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ValidationError{Field: field, Message: field + " is required"}
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return ValidationError{Field: field, Message: fmt.Sprintf("must be one of %s", strings.Join(allowed, ", "))}
}

// ValidatePositive checks that a count flag or form value is at least 1
func ValidatePositive(field string, n int) error {
	if n < 1 {
		return ValidationError{Field: field, Message: field + " must be at least 1"}
	}
	return nil
}
