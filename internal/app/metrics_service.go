package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/ceo/internal/core/metrics"
	"github.com/example/ceo/internal/ports/primary"
	"github.com/example/ceo/internal/ports/secondary"
)

// MetricsServiceImpl implements the MetricsService interface.
// Metrics are recomputed from a fresh store snapshot on every call.
type MetricsServiceImpl struct {
	logRepo      secondary.LogRepository
	decisionRepo secondary.DecisionRepository
	projectRepo  secondary.ProjectRepository
	now          func() time.Time
}

// NewMetricsService creates a new MetricsService with injected dependencies.
func NewMetricsService(
	logRepo secondary.LogRepository,
	decisionRepo secondary.DecisionRepository,
	projectRepo secondary.ProjectRepository,
) *MetricsServiceImpl {
	return NewMetricsServiceWithClock(logRepo, decisionRepo, projectRepo, time.Now)
}

// NewMetricsServiceWithClock creates a MetricsService with a custom clock, for tests.
func NewMetricsServiceWithClock(
	logRepo secondary.LogRepository,
	decisionRepo secondary.DecisionRepository,
	projectRepo secondary.ProjectRepository,
	now func() time.Time,
) *MetricsServiceImpl {
	return &MetricsServiceImpl{
		logRepo:      logRepo,
		decisionRepo: decisionRepo,
		projectRepo:  projectRepo,
		now:          now,
	}
}

// Summary computes the dashboard metrics over the trailing window.
func (s *MetricsServiceImpl) Summary(ctx context.Context) (*primary.Summary, error) {
	now := s.now().UTC().Truncate(24 * time.Hour)
	today := now.Format(dateLayout)

	records, err := s.logRepo.ListSince(ctx, now.AddDate(0, 0, -29).Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	logs, err := logsToDayLogs(records)
	if err != nil {
		return nil, err
	}

	summary := &primary.Summary{
		CompletionRate30: metrics.CompletionRate(logs),
		ParalysisRate30:  metrics.ParalysisRate(logs),
		ParalysisDays30:  metrics.ParalysisEpisodes(logs),
		TotalDays30:      len(logs),
		CompletionTrend:  string(metrics.CompletionTrend(logs, now)),
		ParalysisTrend:   string(metrics.ParalysisTrend(logs, now)),
	}

	for _, r := range records {
		if r.Date == today {
			summary.Today = logToPrimary(r)
			break
		}
	}

	thisWeek := metrics.WeekStart(now)
	summary.ThisWeek = weekToPrimary(metrics.StatsForWeek(logs, thisWeek))
	summary.LastWeek = weekToPrimary(metrics.StatsForWeek(logs, thisWeek.AddDate(0, 0, -7)))

	decisionRecords, err := s.decisionRepo.ListSince(ctx, now.AddDate(0, 0, -29).Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}
	entries, err := decisionsToEntries(decisionRecords)
	if err != nil {
		return nil, err
	}
	stats := metrics.StatsForDecisions(entries)
	summary.Decisions = primary.DecisionSummary{
		Total:          stats.Total,
		AvgMinutes:     stats.AvgMinutes,
		Under20Rate:    stats.Under20Rate,
		UnderParalysis: stats.UnderParalysis,
	}

	activeCount, err := s.projectRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active projects: %w", err)
	}
	summary.ActiveProjects = activeCount

	return summary, nil
}

func weekToPrimary(stats metrics.WeekStats) primary.WeekSummary {
	return primary.WeekSummary{
		WeekStart:      stats.WeekStart.Format(dateLayout),
		Shipped:        stats.Shipped,
		Total:          stats.Total,
		CompletionRate: stats.CompletionRate,
	}
}

// Ensure MetricsServiceImpl implements the interface
var _ primary.MetricsService = (*MetricsServiceImpl)(nil)
