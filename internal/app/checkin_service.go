package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/ceo/internal/core/checkin"
	"github.com/example/ceo/internal/ports/primary"
	"github.com/example/ceo/internal/ports/secondary"
)

// CheckinServiceImpl implements the CheckinService interface.
type CheckinServiceImpl struct {
	logRepo   secondary.LogRepository
	emergency primary.EmergencyService
}

// NewCheckinService creates a new CheckinService with injected dependencies.
func NewCheckinService(logRepo secondary.LogRepository, emergency primary.EmergencyService) *CheckinServiceImpl {
	return &CheckinServiceImpl{
		logRepo:   logRepo,
		emergency: emergency,
	}
}

// Checkin records the morning check-in for a date.
func (s *CheckinServiceImpl) Checkin(ctx context.Context, req primary.CheckinRequest) (*primary.CheckinResult, error) {
	if _, err := parseDate(req.Date); err != nil {
		return nil, err
	}

	energy := req.Energy
	if energy == "" {
		energy = primary.EnergyMedium
	}
	if !checkin.ValidEnergy(checkin.Energy(energy)) {
		return nil, fmt.Errorf("invalid energy level %q (use high, medium or low)", req.Energy)
	}

	mission := strings.TrimSpace(req.Mission)
	if mission == "" && !req.ParalysisSignals {
		// A paralysis check-in may stay partial: the mission is set after
		// the decision protocol breaks the loop.
		return nil, fmt.Errorf("a mission is required (what is the ONE thing you will ship today?)")
	}

	record := &secondary.LogRecord{
		ID:                    uuid.New().String(),
		Date:                  req.Date,
		Energy:                energy,
		ParalysisSignals:      req.ParalysisSignals,
		Mission:               mission,
		MissionDoneDefinition: strings.TrimSpace(req.DoneDefinition),
		MissionTargetTime:     req.TargetTime,
		MissionStatus:         string(checkin.StatusPending),
		BlockerType:           string(checkin.BlockerNone),
	}
	if err := s.logRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	result := &primary.CheckinResult{
		Log:         logToPrimary(record),
		RunProtocol: req.ParalysisSignals,
	}

	// The breaker trigger predicate is evaluated once per check-in.
	emergency, err := s.emergency.Check(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate circuit breaker: %w", err)
	}
	result.Emergency = emergency

	return result, nil
}

// CompleteMission concludes the day's mission.
func (s *CheckinServiceImpl) CompleteMission(ctx context.Context, req primary.CompleteMissionRequest) (*primary.DailyLog, error) {
	record, err := s.logRepo.GetByDate(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	if record.Mission == "" {
		return nil, fmt.Errorf("no mission set for %s", req.Date)
	}

	current := checkin.MissionStatus(record.MissionStatus)
	requested := checkin.MissionStatus(req.Status)
	if err := checkin.CanConclude(current, requested); err != nil {
		if checkin.IsConcluded(current) {
			return nil, &secondary.InvalidTransitionError{
				Kind:    "mission",
				ID:      req.Date,
				Status:  record.MissionStatus,
				Attempt: req.Status,
			}
		}
		return nil, err
	}

	blocker := checkin.BlockerType(req.BlockerType)
	if requested == checkin.StatusBlocked {
		if blocker == "" {
			blocker = checkin.BlockerSelfDecision
		}
		if !checkin.ValidBlocker(blocker) || blocker == checkin.BlockerNone {
			return nil, fmt.Errorf("invalid blocker type %q (use self_decision or external)", req.BlockerType)
		}
	} else {
		blocker = checkin.BlockerNone
	}

	record.MissionStatus = string(requested)
	record.BlockerType = string(blocker)
	record.DecisionMade = strings.TrimSpace(req.DecisionMade)

	if err := s.logRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return logToPrimary(record), nil
}

// GetDay retrieves the log for a date.
func (s *CheckinServiceImpl) GetDay(ctx context.Context, date string) (*primary.DailyLog, error) {
	record, err := s.logRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return logToPrimary(record), nil
}

// Today returns the current date in the store's ISO layout.
func Today() string {
	return time.Now().UTC().Format(dateLayout)
}

// Ensure CheckinServiceImpl implements the interface
var _ primary.CheckinService = (*CheckinServiceImpl)(nil)
