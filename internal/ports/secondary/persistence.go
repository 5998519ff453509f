// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives persistence.
package secondary

import "context"

// LogRepository defines the secondary port for daily log persistence.
type LogRepository interface {
	// Create persists a new daily log. Fails with DuplicateDateError if a
	// log already exists for the entry's date.
	Create(ctx context.Context, log *LogRecord) error

	// GetByDate retrieves the log for a calendar date.
	// Fails with NotFoundError if no log exists for the date.
	GetByDate(ctx context.Context, date string) (*LogRecord, error)

	// Update updates an existing daily log.
	// Fails with NotFoundError if no log exists for the record's date.
	Update(ctx context.Context, log *LogRecord) error

	// ListSince retrieves logs with date >= since, newest first.
	ListSince(ctx context.Context, since string) ([]*LogRecord, error)

	// ListRange retrieves logs with since <= date <= until, newest first.
	ListRange(ctx context.Context, since, until string) ([]*LogRecord, error)
}

// LogRecord represents a daily log as stored in persistence.
// Dates are ISO (2006-01-02) strings; timestamps are RFC3339 strings.
type LogRecord struct {
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
	UpdatedAt             string
}

// ProjectRepository defines the secondary port for project persistence.
type ProjectRepository interface {
	// Create persists a new project.
	Create(ctx context.Context, project *ProjectRecord) error

	// GetByID retrieves a project by its ID.
	// Fails with NotFoundError if the ID is unknown.
	GetByID(ctx context.Context, id string) (*ProjectRecord, error)

	// GetByPrefix resolves a project by a unique ID prefix.
	// Fails with NotFoundError when the prefix matches zero or multiple projects.
	GetByPrefix(ctx context.Context, prefix string) (*ProjectRecord, error)

	// List retrieves projects matching the given filters, newest first.
	List(ctx context.Context, filters ProjectFilters) ([]*ProjectRecord, error)

	// CountActive returns the number of projects with status 'active'.
	CountActive(ctx context.Context) (int, error)

	// UpdateStatus transitions a project to a terminal status, setting
	// completed_at and (for shipped) shipped_early. Fails with NotFoundError
	// for unknown IDs and InvalidTransitionError when the project is already
	// in a terminal status.
	UpdateStatus(ctx context.Context, id string, update StatusUpdate) error
}

// ProjectRecord represents a project as stored in persistence.
type ProjectRecord struct {
	ID           string
	Name         string
	TargetDate   string
	Status       string
	ShippedEarly *bool
	KillReason   string
	CreatedAt    string
	UpdatedAt    string
	CompletedAt  string
}

// ProjectFilters contains filter options for querying projects.
type ProjectFilters struct {
	Status string
}

// StatusUpdate describes a project status transition.
type StatusUpdate struct {
	Status       string
	ShippedEarly *bool
	KillReason   string
	CompletedAt  string
}

// DecisionRepository defines the secondary port for decision persistence.
// The decision log is append-only; there is deliberately no update surface.
type DecisionRepository interface {
	// Create persists a new decision.
	Create(ctx context.Context, decision *DecisionRecord) error

	// ListSince retrieves decisions with date >= since, newest first.
	ListSince(ctx context.Context, since string) ([]*DecisionRecord, error)
}

// DecisionRecord represents a decision as stored in persistence.
type DecisionRecord struct {
	ID                 string
	Date               string
	Decision           string
	TimeToDecide       *int
	MadeUnderParalysis bool
	Outcome            string
	Notes              string
	CreatedAt          string
}

// BreakerRepository defines the secondary port for circuit breaker persistence.
type BreakerRepository interface {
	// Create persists a new breaker cycle.
	Create(ctx context.Context, state *BreakerRecord) error

	// GetActive returns the active breaker cycle, or nil if none.
	GetActive(ctx context.Context) (*BreakerRecord, error)

	// End transitions a breaker cycle to 'ended', setting deactivated_at.
	// Fails with NotFoundError for unknown IDs.
	End(ctx context.Context, id string) error
}

// BreakerRecord represents a circuit breaker cycle as stored in persistence.
type BreakerRecord struct {
	ID                     string
	Status                 string
	TriggerReasons         []string
	ActivatedAt            string
	SimplifiedProjectID    string
	ExternalSupportEngaged bool
	ExternalContact        string
	DeactivatedAt          string
}
