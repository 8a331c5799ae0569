package application

import (
	"fmt"
	"strings"
	"time"

	"vibegraph/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "recordID" -> "record ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"recordID": "record ID",
		"fromDate": "from date",
		"toDate":   "to date",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateDate checks that a value is a real YYYY-MM-DD calendar date.
// The returned error matches ErrInvalidDate.
func ValidateDate(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	if _, err := time.Parse(domain.DateLayout, value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDate, &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected %s as YYYY-MM-DD, got: %s", formatFieldName(fieldName), value),
		})
	}
	return nil
}

// ValidateDateRange checks that both ends are valid dates and from <= to.
// Empty ends are allowed and mean "unbounded".
func ValidateDateRange(from, to string) error {
	if from != "" {
		if err := ValidateDate("fromDate", from); err != nil {
			return err
		}
	}
	if to != "" {
		if err := ValidateDate("toDate", to); err != nil {
			return err
		}
	}
	if from != "" && to != "" && from > to {
		return &ValidationError{
			Field:   "fromDate",
			Message: fmt.Sprintf("from date %s is after to date %s", from, to),
		}
	}
	return nil
}
