// Package project contains the pure business rules for project lifecycle
// and the hard cap on concurrent work.
// This is part of the Functional Core - no I/O, only pure functions.
package project

import (
	"errors"
	"fmt"
	"strings"
)

// ActiveCap is the hard maximum of simultaneously active projects.
// There is no override path; the cap is an invariant, not a warning.
const ActiveCap = 3

// CapExceededError indicates that adding a project would exceed the active cap.
// It carries the current active projects so the caller can present the choice:
// ship, kill, or delegate one before retrying.
type CapExceededError struct {
	ActiveNames []string
}

// Error implements the error interface.
func (e *CapExceededError) Error() string {
	return fmt.Sprintf("active project cap reached (%d/%d): %s",
		len(e.ActiveNames), ActiveCap, strings.Join(e.ActiveNames, ", "))
}

// IsCapExceeded returns true if the error is a CapExceededError.
// Uses errors.As to handle wrapped errors.
func IsCapExceeded(err error) bool {
	var ce *CapExceededError
	return errors.As(err, &ce)
}

// CanAddProject evaluates whether a new project may be created.
// Rule: the count of active projects must stay below ActiveCap.
func CanAddProject(activeCount int) bool {
	return activeCount < ActiveCap
}

// CheckCap returns a CapExceededError when the cap is reached, nil otherwise.
// activeNames is the list of currently active project names, used to tell the
// caller exactly what must be shipped or killed first.
func CheckCap(activeNames []string) error {
	if CanAddProject(len(activeNames)) {
		return nil
	}
	return &CapExceededError{ActiveNames: activeNames}
}
