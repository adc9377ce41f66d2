package entity

import "fmt"

// ValidationError reports a bad value before any state mutation or I/O has
// happened. It is always recoverable by the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
