package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/ceo/internal/ports/primary"
	"github.com/example/ceo/internal/ports/secondary"
)

// DecisionServiceImpl implements the DecisionService interface.
type DecisionServiceImpl struct {
	decisionRepo secondary.DecisionRepository
	now          func() time.Time
}

// NewDecisionService creates a new DecisionService with injected dependencies.
func NewDecisionService(decisionRepo secondary.DecisionRepository) *DecisionServiceImpl {
	return NewDecisionServiceWithClock(decisionRepo, time.Now)
}

// NewDecisionServiceWithClock creates a DecisionService with a custom clock, for tests.
func NewDecisionServiceWithClock(decisionRepo secondary.DecisionRepository, now func() time.Time) *DecisionServiceImpl {
	return &DecisionServiceImpl{decisionRepo: decisionRepo, now: now}
}

// LogDecision records a decision explicitly.
func (s *DecisionServiceImpl) LogDecision(ctx context.Context, req primary.LogDecisionRequest) (*primary.Decision, error) {
	if _, err := parseDate(req.Date); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Decision) == "" {
		return nil, fmt.Errorf("the decision text is required")
	}
	if !validOutcome(req.Outcome) {
		return nil, fmt.Errorf("invalid outcome %q (use proceeded, blocked or revisited)", req.Outcome)
	}
	if req.TimeToDecide != nil && *req.TimeToDecide < 0 {
		return nil, fmt.Errorf("time to decide cannot be negative")
	}

	record := &secondary.DecisionRecord{
		ID:                 uuid.New().String(),
		Date:               req.Date,
		Decision:           strings.TrimSpace(req.Decision),
		TimeToDecide:       req.TimeToDecide,
		MadeUnderParalysis: req.MadeUnderParalysis,
		Outcome:            req.Outcome,
		Notes:              strings.TrimSpace(req.Notes),
	}
	if err := s.decisionRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record decision: %w", err)
	}
	return decisionToPrimary(record), nil
}

// CommitProtocol persists the decision produced by a completed protocol run.
func (s *DecisionServiceImpl) CommitProtocol(ctx context.Context, req primary.ProtocolCommitRequest) (*primary.Decision, error) {
	if _, err := parseDate(req.Date); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Decision) == "" {
		return nil, fmt.Errorf("the decision text is required")
	}

	notes := "Rationale: " + req.Rationale
	if req.CoinFlipped {
		notes += " (coin flip resolved identical options)"
	}

	elapsed := req.ElapsedMinutes
	record := &secondary.DecisionRecord{
		ID:                 uuid.New().String(),
		Date:               req.Date,
		Decision:           req.Decision,
		TimeToDecide:       &elapsed,
		MadeUnderParalysis: true,
		Outcome:            primary.OutcomeProceeded,
		Notes:              notes,
	}
	if err := s.decisionRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record decision: %w", err)
	}
	return decisionToPrimary(record), nil
}

// ListDecisions lists decisions over the trailing N days, newest first.
func (s *DecisionServiceImpl) ListDecisions(ctx context.Context, days int) ([]*primary.Decision, error) {
	if days <= 0 {
		days = 30
	}
	since := s.now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))

	records, err := s.decisionRepo.ListSince(ctx, since.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}

	decisions := make([]*primary.Decision, 0, len(records))
	for _, r := range records {
		decisions = append(decisions, decisionToPrimary(r))
	}
	return decisions, nil
}

func validOutcome(outcome string) bool {
	switch outcome {
	case primary.OutcomeProceeded, primary.OutcomeBlocked, primary.OutcomeRevisited:
		return true
	}
	return false
}

// Ensure DecisionServiceImpl implements the interface
var _ primary.DecisionService = (*DecisionServiceImpl)(nil)
