package operations

import "fmt"

// ValidationError names the single invariant a proposed operation violated.
// Validation is all-or-nothing: one violation rejects the whole operation.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, rule, msg string) error {
	return &ValidationError{Field: field, Rule: rule, Message: msg}
}
