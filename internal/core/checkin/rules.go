// Package checkin contains the pure business rules for daily logs.
// This is part of the Functional Core - no I/O, only pure functions.
package checkin

import "fmt"

// Energy represents the reported energy level at check-in.
type Energy string

const (
	EnergyHigh   Energy = "high"
	EnergyMedium Energy = "medium"
	EnergyLow    Energy = "low"
)

// MissionStatus represents the lifecycle of a daily mission.
// A mission starts pending and is terminal once concluded for that date.
type MissionStatus string

const (
	StatusPending  MissionStatus = "pending"
	StatusShipped  MissionStatus = "shipped"
	StatusBlocked  MissionStatus = "blocked"
	StatusDeferred MissionStatus = "deferred"
)

// BlockerType classifies what blocked a mission.
type BlockerType string

const (
	BlockerNone         BlockerType = "none"
	BlockerSelfDecision BlockerType = "self_decision"
	BlockerExternal     BlockerType = "external"
)

// ValidEnergy reports whether e is a known energy level.
func ValidEnergy(e Energy) bool {
	switch e {
	case EnergyHigh, EnergyMedium, EnergyLow:
		return true
	}
	return false
}

// ValidConclusion reports whether s is a valid terminal mission status.
func ValidConclusion(s MissionStatus) bool {
	switch s {
	case StatusShipped, StatusBlocked, StatusDeferred:
		return true
	}
	return false
}

// ValidBlocker reports whether b is a known blocker type.
func ValidBlocker(b BlockerType) bool {
	switch b {
	case BlockerNone, BlockerSelfDecision, BlockerExternal:
		return true
	}
	return false
}

// CanConclude evaluates whether a mission in the current status may
// transition to the requested terminal status. Concluded statuses are
// terminal for the day: no further transition is allowed.
func CanConclude(current, requested MissionStatus) error {
	if !ValidConclusion(requested) {
		return fmt.Errorf("invalid mission status %q (use shipped, blocked or deferred)", requested)
	}
	if current != StatusPending {
		return fmt.Errorf("mission already concluded as %s", current)
	}
	return nil
}

// IsConcluded reports whether the mission status is terminal.
func IsConcluded(s MissionStatus) bool {
	return s != StatusPending && s != ""
}
