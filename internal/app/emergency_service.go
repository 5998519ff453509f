package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/ceo/internal/core/breaker"
	"github.com/example/ceo/internal/core/metrics"
	"github.com/example/ceo/internal/ports/primary"
	"github.com/example/ceo/internal/ports/secondary"
)

// EmergencyServiceImpl implements the EmergencyService interface.
type EmergencyServiceImpl struct {
	breakerRepo  secondary.BreakerRepository
	logRepo      secondary.LogRepository
	projectRepo  secondary.ProjectRepository
	decisionRepo secondary.DecisionRepository
	now          func() time.Time
}

// NewEmergencyService creates a new EmergencyService with injected dependencies.
func NewEmergencyService(
	breakerRepo secondary.BreakerRepository,
	logRepo secondary.LogRepository,
	projectRepo secondary.ProjectRepository,
	decisionRepo secondary.DecisionRepository,
) *EmergencyServiceImpl {
	return NewEmergencyServiceWithClock(breakerRepo, logRepo, projectRepo, decisionRepo, time.Now)
}

// NewEmergencyServiceWithClock creates an EmergencyService with a custom clock, for tests.
func NewEmergencyServiceWithClock(
	breakerRepo secondary.BreakerRepository,
	logRepo secondary.LogRepository,
	projectRepo secondary.ProjectRepository,
	decisionRepo secondary.DecisionRepository,
	now func() time.Time,
) *EmergencyServiceImpl {
	return &EmergencyServiceImpl{
		breakerRepo:  breakerRepo,
		logRepo:      logRepo,
		projectRepo:  projectRepo,
		decisionRepo: decisionRepo,
		now:          now,
	}
}

// Check evaluates the trigger predicate against fresh store contents.
func (s *EmergencyServiceImpl) Check(ctx context.Context) (*primary.EmergencyCheck, error) {
	active, err := s.breakerRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read breaker state: %w", err)
	}

	input, err := s.triggerInput(ctx)
	if err != nil {
		return nil, err
	}

	triggered, reasons := breaker.Evaluate(*input)
	return &primary.EmergencyCheck{
		Active:    active != nil,
		Triggered: triggered,
		Reasons:   reasons,
	}, nil
}

// Activate starts a breaker cycle.
func (s *EmergencyServiceImpl) Activate(ctx context.Context, req primary.ActivateRequest) (*primary.BreakerState, error) {
	active, err := s.breakerRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read breaker state: %w", err)
	}
	if active != nil {
		return nil, &breaker.BlockedTransitionError{Reason: "a breaker cycle is already active"}
	}

	// Resolve the simplified-focus project before guarding, so an unknown
	// ID surfaces as NotFoundError rather than a blocked transition.
	var project *secondary.ProjectRecord
	if req.SimplifiedProjectID != "" {
		project, err = s.projectRepo.GetByPrefix(ctx, req.SimplifiedProjectID)
		if err != nil {
			return nil, err
		}
	}

	projectID := ""
	if project != nil {
		projectID = project.ID
	}
	if err := breaker.CanActivate(projectID, req.ExternalSupportEngaged); err != nil {
		return nil, err
	}

	input, err := s.triggerInput(ctx)
	if err != nil {
		return nil, err
	}
	triggered, reasons := breaker.Evaluate(*input)
	if !triggered {
		if req.ManualReason == "" {
			return nil, &breaker.BlockedTransitionError{Reason: "no trigger conditions met; provide a manual reason"}
		}
		reasons = []string{"manual: " + req.ManualReason}
	}

	record := &secondary.BreakerRecord{
		ID:                     uuid.New().String(),
		Status:                 string(breaker.StatusActive),
		TriggerReasons:         reasons,
		ActivatedAt:            s.now().UTC().Format(time.RFC3339),
		SimplifiedProjectID:    projectID,
		ExternalSupportEngaged: req.ExternalSupportEngaged,
		ExternalContact:        req.ExternalContact,
	}
	if err := s.breakerRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to activate circuit breaker: %w", err)
	}

	state := breakerToPrimary(record)
	state.SimplifiedProjectName = project.Name
	return state, nil
}

// Deactivate ends the active cycle once the recovery conditions hold.
func (s *EmergencyServiceImpl) Deactivate(ctx context.Context) (*primary.BreakerState, error) {
	active, err := s.breakerRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read breaker state: %w", err)
	}
	if active == nil {
		return nil, &secondary.NotFoundError{Kind: "breaker cycle", Key: "active"}
	}

	input, err := s.deactivationInput(ctx)
	if err != nil {
		return nil, err
	}
	if err := breaker.CanDeactivate(*input); err != nil {
		return nil, err
	}

	if err := s.breakerRepo.End(ctx, active.ID); err != nil {
		return nil, fmt.Errorf("failed to end breaker cycle: %w", err)
	}

	ended, err := s.breakerRepo.GetActive(ctx)
	if err == nil && ended != nil {
		// End did not stick; surface rather than report success.
		return nil, fmt.Errorf("breaker cycle %s still active after deactivation", active.ID)
	}

	active.Status = string(breaker.StatusEnded)
	active.DeactivatedAt = s.now().UTC().Format(time.RFC3339)
	return breakerToPrimary(active), nil
}

// Status returns the active cycle, or nil when the breaker is inactive.
func (s *EmergencyServiceImpl) Status(ctx context.Context) (*primary.BreakerState, error) {
	active, err := s.breakerRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read breaker state: %w", err)
	}
	if active == nil {
		return nil, nil
	}

	state := breakerToPrimary(active)
	if active.SimplifiedProjectID != "" {
		if project, err := s.projectRepo.GetByID(ctx, active.SimplifiedProjectID); err == nil {
			state.SimplifiedProjectName = project.Name
		}
	}
	return state, nil
}

// triggerInput assembles the metrics snapshot for the trigger predicate.
func (s *EmergencyServiceImpl) triggerInput(ctx context.Context) (*breaker.TriggerInput, error) {
	now := s.now().UTC().Truncate(24 * time.Hour)

	records, err := s.logRepo.ListSince(ctx, now.AddDate(0, 0, -29).Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	logs, err := logsToDayLogs(records)
	if err != nil {
		return nil, err
	}

	last7 := metrics.Window(logs, now.AddDate(0, 0, -6), now)
	prior7 := metrics.Window(logs, now.AddDate(0, 0, -13), now.AddDate(0, 0, -7))

	activeProjects, err := s.projectRepo.List(ctx, secondary.ProjectFilters{Status: primary.ProjectActive})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	stale := 0
	for _, p := range activeProjects {
		changed, ok := parseTimestamp(p.UpdatedAt)
		if !ok {
			changed, ok = parseTimestamp(p.CreatedAt)
		}
		if ok && s.now().UTC().Sub(changed) > 7*24*time.Hour {
			stale++
		}
	}

	return &breaker.TriggerInput{
		ParalysisEpisodes30d: metrics.ParalysisEpisodes(logs),
		CompletionRateLast7:  metrics.CompletionRate(last7),
		ConcludedLast7:       metrics.ConcludedCount(last7),
		CompletionRatePrior7: metrics.CompletionRate(prior7),
		ConcludedPrior7:      metrics.ConcludedCount(prior7),
		StaleActiveProjects:  stale,
	}, nil
}

// deactivationInput assembles the recovery snapshot for the deactivation predicate.
func (s *EmergencyServiceImpl) deactivationInput(ctx context.Context) (*breaker.DeactivationInput, error) {
	now := s.now().UTC().Truncate(24 * time.Hour)
	since14 := now.AddDate(0, 0, -13)

	shipped, err := s.projectRepo.List(ctx, secondary.ProjectFilters{Status: primary.ProjectShipped})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	shipped14 := 0
	for _, p := range shipped {
		completed, ok := parseTimestamp(p.CompletedAt)
		if ok && !completed.Before(since14) {
			shipped14++
		}
	}

	logRecords, err := s.logRepo.ListSince(ctx, since14.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	logs, err := logsToDayLogs(logRecords)
	if err != nil {
		return nil, err
	}

	decisionRecords, err := s.decisionRepo.ListSince(ctx, since14.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}

	// A decision counts as clean when no paralysis-signal day follows it
	// within the window.
	clean := 0
	for _, d := range decisionRecords {
		decided, err := parseDate(d.Date)
		if err != nil {
			return nil, err
		}
		followed := false
		for _, log := range logs {
			if log.ParalysisSignals && log.Date.After(decided) {
				followed = true
				break
			}
		}
		if !followed {
			clean++
		}
	}

	paralysisDays7 := metrics.ParalysisEpisodes(metrics.Window(logs, now.AddDate(0, 0, -6), now))

	return &breaker.DeactivationInput{
		ShippedLast14:        shipped14,
		CleanDecisionsLast14: clean,
		ParalysisDays7:       paralysisDays7,
	}, nil
}

// Ensure EmergencyServiceImpl implements the interface
var _ primary.EmergencyService = (*EmergencyServiceImpl)(nil)
