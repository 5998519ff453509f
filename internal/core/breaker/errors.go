package breaker

import (
	"errors"
	"fmt"
	"strings"
)

// CircuitBreakerActiveError indicates a restricted operation was attempted
// while a breaker cycle is active. Only the simplified-focus project may be
// mutated until deactivation succeeds.
type CircuitBreakerActiveError struct {
	SimplifiedProjectID string
}

// Error implements the error interface.
func (e *CircuitBreakerActiveError) Error() string {
	if e.SimplifiedProjectID == "" {
		return "circuit breaker active: operation not permitted"
	}
	return fmt.Sprintf("circuit breaker active: only the simplified-focus project %s may be mutated", e.SimplifiedProjectID)
}

// BlockedTransitionError indicates an activation attempt without the
// required simplified-focus selection or external-support confirmation.
// The breaker remains inactive.
type BlockedTransitionError struct {
	Reason string
}

// Error implements the error interface.
func (e *BlockedTransitionError) Error() string {
	return "cannot activate circuit breaker: " + e.Reason
}

// PreconditionNotMetError indicates a deactivation attempt before the
// recovery conditions hold. Unmet lists every failing condition.
type PreconditionNotMetError struct {
	Unmet []string
}

// Error implements the error interface.
func (e *PreconditionNotMetError) Error() string {
	return "cannot deactivate circuit breaker: " + strings.Join(e.Unmet, "; ")
}

// IsActive returns true if the error is a CircuitBreakerActiveError.
// Uses errors.As to handle wrapped errors.
func IsActive(err error) bool {
	var ae *CircuitBreakerActiveError
	return errors.As(err, &ae)
}

// IsBlockedTransition returns true if the error is a BlockedTransitionError.
func IsBlockedTransition(err error) bool {
	var be *BlockedTransitionError
	return errors.As(err, &be)
}

// IsPreconditionNotMet returns true if the error is a PreconditionNotMetError.
func IsPreconditionNotMet(err error) bool {
	var pe *PreconditionNotMetError
	return errors.As(err, &pe)
}
