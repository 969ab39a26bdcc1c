package entity

import "strings"

// ValidateRequiredText checks that a required text field is non-empty.
// Leading and trailing whitespace is disregarded for the emptiness check only;
// the stored value is never modified.
// Returns a ValidationError naming the field when the check fails.
func ValidateRequiredText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "cannot be empty"}
	}
	return nil
}
