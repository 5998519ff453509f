package primary

import "context"

// MetricsService defines the primary port for on-demand metrics.
// Every call reads a fresh snapshot from the store; nothing is cached.
type MetricsService interface {
	// Summary computes the dashboard metrics over the trailing window.
	Summary(ctx context.Context) (*Summary, error)
}

// Trend constants.
const (
	TrendImproving = "improving"
	TrendFlat      = "flat"
	TrendDeclining = "declining"
)

// WeekSummary summarizes a Monday-keyed calendar week.
type WeekSummary struct {
	WeekStart      string
	Shipped        int
	Total          int
	CompletionRate float64
}

// DecisionSummary summarizes decision timing over the trailing 30 days.
type DecisionSummary struct {
	Total          int
	AvgMinutes     float64
	Under20Rate    float64
	UnderParalysis int
}

// Summary is the full dashboard snapshot.
type Summary struct {
	Today *DailyLog // nil when no check-in today

	ThisWeek WeekSummary
	LastWeek WeekSummary

	// Trailing 30-day rates.
	CompletionRate30 float64
	ParalysisRate30  float64
	ParalysisDays30  int
	TotalDays30      int

	// 7-day-vs-prior-7-day trends.
	CompletionTrend string
	ParalysisTrend  string

	Decisions DecisionSummary

	ActiveProjects int
}
