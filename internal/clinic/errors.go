package clinic

import "fmt"

// ValidationError reports a malformed candidate record. It is always raised
// before any state mutation, so a caller receiving one can assume the store
// and the remote collaborator were never touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("clinic: invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
