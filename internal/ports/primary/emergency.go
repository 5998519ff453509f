package primary

import "context"

// EmergencyService defines the primary port for the circuit breaker.
// Exactly one breaker cycle can be live at a time; activation restricts
// project mutations to the simplified-focus project until deactivation.
type EmergencyService interface {
	// Check evaluates the trigger predicate against fresh store contents.
	Check(ctx context.Context) (*EmergencyCheck, error)

	// Activate starts a breaker cycle. Requires a simplified-focus project
	// and confirmed external support; otherwise BlockedTransitionError.
	// ManualReason allows activation when no automatic trigger matched.
	Activate(ctx context.Context, req ActivateRequest) (*BreakerState, error)

	// Deactivate ends the active cycle once the recovery conditions hold.
	// Fails with PreconditionNotMetError listing unmet conditions.
	Deactivate(ctx context.Context) (*BreakerState, error)

	// Status returns the active cycle, or nil when the breaker is inactive.
	Status(ctx context.Context) (*BreakerState, error)
}

// EmergencyCheck is the result of evaluating the trigger predicate.
type EmergencyCheck struct {
	// Active is true when a breaker cycle is already live.
	Active bool

	// Triggered is true when at least one trigger condition matched.
	Triggered bool

	// Reasons lists every matched condition, in evaluation order.
	Reasons []string
}

// ActivateRequest carries the activation inputs.
type ActivateRequest struct {
	SimplifiedProjectID    string // ID or unique prefix
	ExternalSupportEngaged bool
	ExternalContact        string
	ManualReason           string // used when no automatic trigger matched
}

// BreakerState represents a breaker cycle at the port boundary.
type BreakerState struct {
	ID                     string
	Status                 string
	TriggerReasons         []string
	ActivatedAt            string
	SimplifiedProjectID    string
	SimplifiedProjectName  string
	ExternalSupportEngaged bool
	ExternalContact        string
	DeactivatedAt          string
}
