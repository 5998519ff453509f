package project

import "time"

// Status represents the possible states of a project.
type Status string

const (
	StatusActive  Status = "active"
	StatusShipped Status = "shipped"
	StatusKilled  Status = "killed"
)

// IsTerminal reports whether a status ends the project lifecycle.
// There is no reactivation: shipped and killed are final.
func IsTerminal(s Status) bool {
	return s == StatusShipped || s == StatusKilled
}

// TransitionResult captures the outcome of a terminal transition.
type TransitionResult struct {
	NewStatus    Status
	CompletedAt  time.Time
	ShippedEarly *bool // set only on transition to shipped
}

// ApplyShip applies the active → shipped transition.
// shipped_early is true iff the project concluded on or before its target
// date; projects without a target date get no early/late verdict.
// The caller passes the current time to keep this testable.
func ApplyShip(targetDate *time.Time, now time.Time) TransitionResult {
	result := TransitionResult{
		NewStatus:   StatusShipped,
		CompletedAt: now,
	}
	if targetDate != nil {
		early := !now.Truncate(24 * time.Hour).After(*targetDate)
		result.ShippedEarly = &early
	}
	return result
}

// ApplyKill applies the active → killed transition.
func ApplyKill(now time.Time) TransitionResult {
	return TransitionResult{
		NewStatus:   StatusKilled,
		CompletedAt: now,
	}
}

// InitialStatus returns the status for a newly created project.
func InitialStatus() Status {
	return StatusActive
}

// DaysRemaining returns the whole days until the target date, negative when
// overdue. Returns false when the project has no target date.
func DaysRemaining(targetDate *time.Time, now time.Time) (int, bool) {
	if targetDate == nil {
		return 0, false
	}
	days := int(targetDate.Sub(now.Truncate(24*time.Hour)).Hours() / 24)
	return days, true
}
