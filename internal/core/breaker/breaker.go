// Package breaker contains the pure rules for the system-wide circuit
// breaker: the trigger predicate, the activation guard, and the
// deactivation predicate. All gating of restricted operations funnels
// through the active cycle held in the store; this package never does I/O.
package breaker

import "fmt"

// Status represents the lifecycle of a breaker cycle.
type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

// Trigger thresholds.
const (
	// ParalysisEpisodeLimit trips the breaker when reached within 30 days.
	ParalysisEpisodeLimit = 5

	// CompletionRateFloor trips the breaker when the completion rate stays
	// at or below it for two consecutive 7-day windows.
	CompletionRateFloor = 60.0

	// StaleProjectLimit trips the breaker when this many active projects
	// have sat unchanged for more than 7 days.
	StaleProjectLimit = 2
)

// Deactivation thresholds.
const (
	RequiredShipped14        = 3 // projects shipped in trailing 14 days
	RequiredCleanDecisions14 = 5 // decisions without a later paralysis day, trailing 14 days
	MaxParalysisDays7        = 3 // paralysis-signal days in trailing 7 days must stay below this
)

// TriggerInput is the metrics snapshot the trigger predicate is evaluated
// against. The caller computes it fresh from the store at each check-in.
type TriggerInput struct {
	ParalysisEpisodes30d int

	// Completion rates for the two most recent consecutive 7-day windows,
	// with the number of concluded missions behind each. Windows without a
	// single concluded mission carry no signal and never trip the breaker.
	CompletionRateLast7  float64
	ConcludedLast7       int
	CompletionRatePrior7 float64
	ConcludedPrior7      int

	StaleActiveProjects int
}

// Evaluate applies the trigger predicate. Any condition firing trips the
// breaker; every matched reason is returned, not just the first.
func Evaluate(in TriggerInput) (bool, []string) {
	var reasons []string

	if in.ParalysisEpisodes30d >= ParalysisEpisodeLimit {
		reasons = append(reasons, fmt.Sprintf("5+ paralysis episodes in 30 days (%d)", in.ParalysisEpisodes30d))
	}

	if in.ConcludedLast7 > 0 && in.ConcludedPrior7 > 0 &&
		in.CompletionRateLast7 <= CompletionRateFloor && in.CompletionRatePrior7 <= CompletionRateFloor {
		reasons = append(reasons, fmt.Sprintf("completion rate ≤60%% for 2 consecutive weeks (%.0f%%, %.0f%%)",
			in.CompletionRateLast7, in.CompletionRatePrior7))
	}

	if in.StaleActiveProjects >= StaleProjectLimit {
		reasons = append(reasons, fmt.Sprintf("2+ active projects stalled for over 7 days (%d)", in.StaleActiveProjects))
	}

	return len(reasons) > 0, reasons
}

// CanActivate guards the INACTIVE → ACTIVE transition. Activation requires
// exactly one project selected for simplified focus and explicit
// confirmation that external support is engaged; otherwise the breaker
// stays inactive.
func CanActivate(simplifiedProjectID string, externalSupportEngaged bool) error {
	if simplifiedProjectID == "" {
		return &BlockedTransitionError{Reason: "a simplified-focus project must be selected"}
	}
	if !externalSupportEngaged {
		return &BlockedTransitionError{Reason: "external support must be engaged and confirmed before activation"}
	}
	return nil
}

// DeactivationInput is the recovery snapshot the deactivation predicate is
// evaluated against.
type DeactivationInput struct {
	ShippedLast14        int
	CleanDecisionsLast14 int // decisions with no paralysis-signal day after them in the window
	ParalysisDays7       int
}

// CanDeactivate applies the deactivation predicate. All conditions must
// hold; otherwise the error lists every unmet condition.
func CanDeactivate(in DeactivationInput) error {
	var unmet []string

	if in.ShippedLast14 < RequiredShipped14 {
		unmet = append(unmet, fmt.Sprintf("≥3 projects shipped in 14 days (have %d)", in.ShippedLast14))
	}
	if in.CleanDecisionsLast14 < RequiredCleanDecisions14 {
		unmet = append(unmet, fmt.Sprintf("≥5 decisions without subsequent paralysis in 14 days (have %d)", in.CleanDecisionsLast14))
	}
	if in.ParalysisDays7 >= MaxParalysisDays7 {
		unmet = append(unmet, fmt.Sprintf("<3 paralysis-signal days in 7 days (have %d)", in.ParalysisDays7))
	}

	if len(unmet) > 0 {
		return &PreconditionNotMetError{Unmet: unmet}
	}
	return nil
}

// CanMutateProject guards project mutations while a cycle is active.
// Only the simplified-focus project may be touched.
func CanMutateProject(activeSimplifiedID, projectID string) error {
	if projectID != activeSimplifiedID {
		return &CircuitBreakerActiveError{SimplifiedProjectID: activeSimplifiedID}
	}
	return nil
}
