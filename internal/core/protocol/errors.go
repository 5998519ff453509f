package protocol

import (
	"errors"
	"fmt"
)

// ValidationError indicates missing or malformed step input. The machine
// never advances on invalid input; the caller re-prompts and retries.
type ValidationError struct {
	State  State
	Field  string // empty for state-level failures
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.State, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.State, e.Reason)
}

// IsValidation returns true if the error is a ValidationError.
// Uses errors.As to handle wrapped errors.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
