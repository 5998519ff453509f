package primary

import "context"

// DecisionService defines the primary port for the decision log.
// Decisions are append-only and immutable once created.
type DecisionService interface {
	// LogDecision records a decision explicitly (outside the protocol).
	LogDecision(ctx context.Context, req LogDecisionRequest) (*Decision, error)

	// CommitProtocol persists the decision produced by a completed
	// paralysis-protocol invocation.
	CommitProtocol(ctx context.Context, req ProtocolCommitRequest) (*Decision, error)

	// ListDecisions lists decisions over the trailing N days, newest first.
	ListDecisions(ctx context.Context, days int) ([]*Decision, error)
}

// Decision outcome constants.
const (
	OutcomeProceeded = "proceeded"
	OutcomeBlocked   = "blocked"
	OutcomeRevisited = "revisited"
)

// LogDecisionRequest carries an explicit decision-log entry.
type LogDecisionRequest struct {
	Date               string
	Decision           string
	TimeToDecide       *int // minutes, must be >= 0 when set
	MadeUnderParalysis bool
	Outcome            string
	Notes              string
}

// ProtocolCommitRequest carries the output of a completed protocol run.
type ProtocolCommitRequest struct {
	Date           string
	Decision       string // "<avoided> → <chosen>"
	Rationale      string
	ElapsedMinutes int
	CoinFlipped    bool
}

// Decision represents a decision at the port boundary.
type Decision struct {
	ID                 string
	Date               string
	Decision           string
	TimeToDecide       *int
	MadeUnderParalysis bool
	Outcome            string
	Notes              string
	CreatedAt          string
}
