package primary

import "context"

// ProjectService defines the primary port for project operations.
// Project IDs accepted by lookup operations may be unique prefixes.
type ProjectService interface {
	// AddProject creates a project. Fails with CapExceededError when 3
	// projects are already active, and with CircuitBreakerActiveError while
	// a breaker cycle is active.
	AddProject(ctx context.Context, req AddProjectRequest) (*Project, error)

	// ListProjects lists projects, optionally filtered by status.
	ListProjects(ctx context.Context, filters ProjectFilters) ([]*Project, error)

	// GetProject retrieves a project by ID or unique ID prefix.
	GetProject(ctx context.Context, idOrPrefix string) (*Project, error)

	// CompleteProject marks a project shipped, recording whether it
	// shipped on or before its target date.
	CompleteProject(ctx context.Context, idOrPrefix string) (*Project, error)

	// KillProject terminates a project without shipping it.
	KillProject(ctx context.Context, idOrPrefix, reason string) (*Project, error)
}

// Project status constants.
const (
	ProjectActive  = "active"
	ProjectShipped = "shipped"
	ProjectKilled  = "killed"
)

// AddProjectRequest carries the inputs for project creation.
type AddProjectRequest struct {
	Name       string
	TargetDate string // optional ISO date
}

// ProjectFilters contains filter options for listing projects.
type ProjectFilters struct {
	Status string
}

// Project represents a project at the port boundary.
type Project struct {
	ID            string
	Name          string
	TargetDate    string
	Status        string
	ShippedEarly  *bool
	KillReason    string
	DaysRemaining *int // nil when no target date
	CreatedAt     string
	CompletedAt   string
}
