package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/ceo/internal/core/breaker"
	coreproject "github.com/example/ceo/internal/core/project"
	"github.com/example/ceo/internal/ports/primary"
	"github.com/example/ceo/internal/ports/secondary"
)

// ProjectServiceImpl implements the ProjectService interface.
type ProjectServiceImpl struct {
	projectRepo secondary.ProjectRepository
	breakerRepo secondary.BreakerRepository
	now         func() time.Time
}

// NewProjectService creates a new ProjectService with injected dependencies.
func NewProjectService(projectRepo secondary.ProjectRepository, breakerRepo secondary.BreakerRepository) *ProjectServiceImpl {
	return NewProjectServiceWithClock(projectRepo, breakerRepo, time.Now)
}

// NewProjectServiceWithClock creates a ProjectService with a custom clock, for tests.
func NewProjectServiceWithClock(
	projectRepo secondary.ProjectRepository,
	breakerRepo secondary.BreakerRepository,
	now func() time.Time,
) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		breakerRepo: breakerRepo,
		now:         now,
	}
}

// AddProject creates a project, enforcing the hard cap and the breaker gate.
func (s *ProjectServiceImpl) AddProject(ctx context.Context, req primary.AddProjectRequest) (*primary.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("a project name is required")
	}
	if req.TargetDate != "" {
		if _, err := parseDate(req.TargetDate); err != nil {
			return nil, err
		}
	}

	// No new commitments while simplified mode is active, simplified
	// project or not.
	active, err := s.breakerRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read breaker state: %w", err)
	}
	if active != nil {
		return nil, &breaker.CircuitBreakerActiveError{SimplifiedProjectID: active.SimplifiedProjectID}
	}

	// Re-read the active set on every attempt; the cap is checked against
	// fresh store contents, never a cached count.
	activeProjects, err := s.projectRepo.List(ctx, secondary.ProjectFilters{Status: primary.ProjectActive})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	names := make([]string, 0, len(activeProjects))
	for _, p := range activeProjects {
		names = append(names, p.Name)
	}
	if err := coreproject.CheckCap(names); err != nil {
		return nil, err
	}

	record := &secondary.ProjectRecord{
		ID:         uuid.New().String(),
		Name:       name,
		TargetDate: req.TargetDate,
		Status:     string(coreproject.InitialStatus()),
	}
	if err := s.projectRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return projectToPrimary(record, s.now()), nil
}

// ListProjects lists projects, optionally filtered by status.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context, filters primary.ProjectFilters) ([]*primary.Project, error) {
	records, err := s.projectRepo.List(ctx, secondary.ProjectFilters{Status: filters.Status})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	now := s.now()
	projects := make([]*primary.Project, 0, len(records))
	for _, r := range records {
		projects = append(projects, projectToPrimary(r, now))
	}
	return projects, nil
}

// GetProject retrieves a project by ID or unique ID prefix.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, idOrPrefix string) (*primary.Project, error) {
	record, err := s.projectRepo.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return nil, err
	}
	return projectToPrimary(record, s.now()), nil
}

// CompleteProject marks a project shipped.
func (s *ProjectServiceImpl) CompleteProject(ctx context.Context, idOrPrefix string) (*primary.Project, error) {
	record, err := s.resolveMutable(ctx, idOrPrefix)
	if err != nil {
		return nil, err
	}

	var target *time.Time
	if record.TargetDate != "" {
		t, err := parseDate(record.TargetDate)
		if err != nil {
			return nil, err
		}
		target = &t
	}

	result := coreproject.ApplyShip(target, s.now().UTC())
	update := secondary.StatusUpdate{
		Status:       string(result.NewStatus),
		ShippedEarly: result.ShippedEarly,
		CompletedAt:  result.CompletedAt.Format(time.RFC3339),
	}
	if err := s.projectRepo.UpdateStatus(ctx, record.ID, update); err != nil {
		return nil, err
	}

	record.Status = update.Status
	record.ShippedEarly = update.ShippedEarly
	record.CompletedAt = update.CompletedAt
	return projectToPrimary(record, s.now()), nil
}

// KillProject terminates a project without shipping it.
func (s *ProjectServiceImpl) KillProject(ctx context.Context, idOrPrefix, reason string) (*primary.Project, error) {
	record, err := s.resolveMutable(ctx, idOrPrefix)
	if err != nil {
		return nil, err
	}

	result := coreproject.ApplyKill(s.now().UTC())
	update := secondary.StatusUpdate{
		Status:      string(result.NewStatus),
		KillReason:  strings.TrimSpace(reason),
		CompletedAt: result.CompletedAt.Format(time.RFC3339),
	}
	if err := s.projectRepo.UpdateStatus(ctx, record.ID, update); err != nil {
		return nil, err
	}

	record.Status = update.Status
	record.KillReason = update.KillReason
	record.CompletedAt = update.CompletedAt
	return projectToPrimary(record, s.now()), nil
}

// resolveMutable resolves a project and applies the breaker mutation gate:
// while a cycle is active only the simplified-focus project may change.
func (s *ProjectServiceImpl) resolveMutable(ctx context.Context, idOrPrefix string) (*secondary.ProjectRecord, error) {
	record, err := s.projectRepo.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return nil, err
	}

	active, err := s.breakerRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read breaker state: %w", err)
	}
	if active != nil {
		if err := breaker.CanMutateProject(active.SimplifiedProjectID, record.ID); err != nil {
			return nil, err
		}
	}
	return record, nil
}

// Ensure ProjectServiceImpl implements the interface
var _ primary.ProjectService = (*ProjectServiceImpl)(nil)
