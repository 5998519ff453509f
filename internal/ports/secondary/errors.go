package secondary

import (
	"errors"
	"fmt"
)

// NotFoundError indicates that a requested record does not exist.
type NotFoundError struct {
	// Kind names the record collection ("log", "project", "decision", "breaker").
	Kind string

	// Key is the identifier that failed to resolve (ID, date, or prefix).
	Key string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

// DuplicateDateError indicates an attempt to create a second daily log
// for the same calendar date.
type DuplicateDateError struct {
	Date string
}

// Error implements the error interface.
func (e *DuplicateDateError) Error() string {
	return fmt.Sprintf("daily log already exists for %s", e.Date)
}

// InvalidTransitionError indicates an attempt to transition a record out of
// a terminal status.
type InvalidTransitionError struct {
	Kind    string
	ID      string
	Status  string // current (terminal) status
	Attempt string // requested status
}

// Error implements the error interface.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s %s is already %s, cannot transition to %s", e.Kind, e.ID, e.Status, e.Attempt)
}

// IsNotFound returns true if the error is a NotFoundError.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsDuplicateDate returns true if the error is a DuplicateDateError.
func IsDuplicateDate(err error) bool {
	var dd *DuplicateDateError
	return errors.As(err, &dd)
}

// IsInvalidTransition returns true if the error is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var it *InvalidTransitionError
	return errors.As(err, &it)
}
