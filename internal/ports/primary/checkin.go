// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces the CLI calls into, with their
// boundary types. The core performs semantic validation only; inputs arrive
// already shaped by the collaborator.
package primary

import "context"

// CheckinService defines the primary port for daily check-in operations.
type CheckinService interface {
	// Checkin records the morning check-in for a date. A second check-in
	// for the same date fails with DuplicateDateError. The result carries
	// the circuit-breaker evaluation for this check-in and whether the
	// paralysis protocol should be run.
	Checkin(ctx context.Context, req CheckinRequest) (*CheckinResult, error)

	// CompleteMission concludes the day's mission. The status is terminal:
	// a second conclusion for the same date fails.
	CompleteMission(ctx context.Context, req CompleteMissionRequest) (*DailyLog, error)

	// GetDay retrieves the log for a date.
	GetDay(ctx context.Context, date string) (*DailyLog, error)
}

// Energy level constants.
const (
	EnergyHigh   = "high"
	EnergyMedium = "medium"
	EnergyLow    = "low"
)

// Mission status constants.
const (
	MissionPending  = "pending"
	MissionShipped  = "shipped"
	MissionBlocked  = "blocked"
	MissionDeferred = "deferred"
)

// Blocker type constants.
const (
	BlockerNone         = "none"
	BlockerSelfDecision = "self_decision"
	BlockerExternal     = "external"
)

// CheckinRequest carries the morning check-in inputs.
type CheckinRequest struct {
	Date             string // ISO date (2006-01-02)
	Energy           string
	ParalysisSignals bool
	Mission          string
	DoneDefinition   string // what DONE looks like
	TargetTime       string // HH:MM
}

// CheckinResult is returned on a successful check-in.
type CheckinResult struct {
	Log *DailyLog

	// RunProtocol is true when paralysis signals were reported and the
	// caller should drive the 20-minute decision protocol.
	RunProtocol bool

	// Emergency is the circuit-breaker evaluation for this check-in.
	Emergency *EmergencyCheck
}

// CompleteMissionRequest concludes a day's mission.
type CompleteMissionRequest struct {
	Date         string
	Status       string // shipped, blocked or deferred
	BlockerType  string // required when Status is blocked
	DecisionMade string // optional: what decision broke the block
}

// DailyLog represents a daily log at the port boundary.
type DailyLog struct {
	ID                    string
	Date                  string
	Energy                string
	ParalysisSignals      bool
	Mission               string
	MissionDoneDefinition string
	MissionTargetTime     string
	MissionStatus         string
	BlockerType           string
	DecisionMade          string
	CreatedAt             string
}
