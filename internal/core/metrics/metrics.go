// Package metrics computes derived rates and trends from the raw log.
// Everything here is a deterministic pure function of the snapshot passed in:
// no caching, no clock access, replay-safe for tests using synthetic data.
package metrics

import (
	"time"

	"github.com/example/ceo/internal/core/checkin"
)

// DayLog is the metrics view of a daily log.
type DayLog struct {
	Date             time.Time
	ParalysisSignals bool
	HasMission       bool
	MissionStatus    checkin.MissionStatus
}

// DecisionEntry is the metrics view of a logged decision.
type DecisionEntry struct {
	Date               time.Time
	Minutes            *int
	MadeUnderParalysis bool
}

// Trend classifies the direction of a metric across two adjacent windows.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendFlat      Trend = "flat"
	TrendDeclining Trend = "declining"
)

// TrendBand is the dead-band, in percentage points, inside which a metric
// movement counts as flat. Keeps trends from flapping on noise.
const TrendBand = 2.0

// CompletionRate returns shipped / concluded as a percentage.
// Logs still pending are not counted in the denominator; an empty
// denominator yields 0, never a divide-by-zero fault.
func CompletionRate(logs []DayLog) float64 {
	var shipped, concluded int
	for _, log := range logs {
		if !checkin.IsConcluded(log.MissionStatus) {
			continue
		}
		concluded++
		if log.MissionStatus == checkin.StatusShipped {
			shipped++
		}
	}
	if concluded == 0 {
		return 0
	}
	return float64(shipped) / float64(concluded) * 100
}

// ConcludedCount counts the logs whose mission reached a terminal status.
func ConcludedCount(logs []DayLog) int {
	count := 0
	for _, log := range logs {
		if checkin.IsConcluded(log.MissionStatus) {
			count++
		}
	}
	return count
}

// ParalysisRate returns paralysis-signal days / total days as a percentage.
func ParalysisRate(logs []DayLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	return float64(ParalysisEpisodes(logs)) / float64(len(logs)) * 100
}

// ParalysisEpisodes counts the days that reported paralysis signals.
func ParalysisEpisodes(logs []DayLog) int {
	count := 0
	for _, log := range logs {
		if log.ParalysisSignals {
			count++
		}
	}
	return count
}

// Window filters logs to from <= date <= to.
func Window(logs []DayLog, from, to time.Time) []DayLog {
	var out []DayLog
	for _, log := range logs {
		if log.Date.Before(from) || log.Date.After(to) {
			continue
		}
		out = append(out, log)
	}
	return out
}

// CompareTrend classifies current vs previous using the dead-band.
func CompareTrend(current, previous float64) Trend {
	delta := current - previous
	switch {
	case delta > TrendBand:
		return TrendImproving
	case delta < -TrendBand:
		return TrendDeclining
	default:
		return TrendFlat
	}
}

// CompletionTrend compares the completion rate of the last 7 days against
// the prior 7 days, ending at now.
func CompletionTrend(logs []DayLog, now time.Time) Trend {
	current := CompletionRate(Window(logs, now.AddDate(0, 0, -6), now))
	previous := CompletionRate(Window(logs, now.AddDate(0, 0, -13), now.AddDate(0, 0, -7)))
	return CompareTrend(current, previous)
}

// ParalysisTrend compares the paralysis rate of the last 7 days against the
// prior 7 days, ending at now. Lower is better, so a falling rate improves.
func ParalysisTrend(logs []DayLog, now time.Time) Trend {
	current := ParalysisRate(Window(logs, now.AddDate(0, 0, -6), now))
	previous := ParalysisRate(Window(logs, now.AddDate(0, 0, -13), now.AddDate(0, 0, -7)))
	switch CompareTrend(current, previous) {
	case TrendImproving:
		return TrendDeclining
	case TrendDeclining:
		return TrendImproving
	default:
		return TrendFlat
	}
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	day := t.Truncate(24 * time.Hour)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekStats summarizes a Monday-keyed calendar week.
type WeekStats struct {
	WeekStart      time.Time
	Shipped        int
	Total          int // days with a mission set
	CompletionRate float64
}

// StatsForWeek computes the stats for the week starting at weekStart.
func StatsForWeek(logs []DayLog, weekStart time.Time) WeekStats {
	weekLogs := Window(logs, weekStart, weekStart.AddDate(0, 0, 6))
	stats := WeekStats{
		WeekStart:      weekStart,
		CompletionRate: CompletionRate(weekLogs),
	}
	for _, log := range weekLogs {
		if log.HasMission {
			stats.Total++
		}
		if log.MissionStatus == checkin.StatusShipped {
			stats.Shipped++
		}
	}
	return stats
}

// DecisionStats summarizes decision timing over a window.
type DecisionStats struct {
	Total          int
	AvgMinutes     float64 // over decisions with timing data
	Under20Rate    float64 // percentage of timed decisions within 20 minutes
	UnderParalysis int
}

// StatsForDecisions computes decision timing statistics.
func StatsForDecisions(decisions []DecisionEntry) DecisionStats {
	stats := DecisionStats{Total: len(decisions)}
	var timed, under20, totalMinutes int
	for _, d := range decisions {
		if d.MadeUnderParalysis {
			stats.UnderParalysis++
		}
		if d.Minutes == nil {
			continue
		}
		timed++
		totalMinutes += *d.Minutes
		if *d.Minutes <= 20 {
			under20++
		}
	}
	if timed > 0 {
		stats.AvgMinutes = float64(totalMinutes) / float64(timed)
		stats.Under20Rate = float64(under20) / float64(timed) * 100
	}
	return stats
}
