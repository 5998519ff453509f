// Package app implements the primary ports against the secondary ports.
// Services read fresh from the repositories on every call; nothing mutable
// is cached across calls.
package app

import (
	"fmt"
	"time"

	"github.com/example/ceo/internal/core/checkin"
	"github.com/example/ceo/internal/core/metrics"
	"github.com/example/ceo/internal/ports/primary"
	"github.com/example/ceo/internal/ports/secondary"
)

// dateLayout is the ISO calendar-date layout used throughout the store.
const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// parseTimestamp parses an RFC3339 timestamp, tolerating the bare
// "2006-01-02 15:04:05" form SQLite's CURRENT_TIMESTAMP produces.
func parseTimestamp(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func logToDayLog(r *secondary.LogRecord) (metrics.DayLog, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return metrics.DayLog{}, err
	}
	status := checkin.MissionStatus(r.MissionStatus)
	if status == "" {
		status = checkin.StatusPending
	}
	return metrics.DayLog{
		Date:             date,
		ParalysisSignals: r.ParalysisSignals,
		HasMission:       r.Mission != "",
		MissionStatus:    status,
	}, nil
}

func logsToDayLogs(records []*secondary.LogRecord) ([]metrics.DayLog, error) {
	var logs []metrics.DayLog
	for _, r := range records {
		log, err := logToDayLog(r)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, nil
}

func decisionsToEntries(records []*secondary.DecisionRecord) ([]metrics.DecisionEntry, error) {
	var entries []metrics.DecisionEntry
	for _, r := range records {
		date, err := parseDate(r.Date)
		if err != nil {
			return nil, err
		}
		entries = append(entries, metrics.DecisionEntry{
			Date:               date,
			Minutes:            r.TimeToDecide,
			MadeUnderParalysis: r.MadeUnderParalysis,
		})
	}
	return entries, nil
}

func logToPrimary(r *secondary.LogRecord) *primary.DailyLog {
	return &primary.DailyLog{
		ID:                    r.ID,
		Date:                  r.Date,
		Energy:                r.Energy,
		ParalysisSignals:      r.ParalysisSignals,
		Mission:               r.Mission,
		MissionDoneDefinition: r.MissionDoneDefinition,
		MissionTargetTime:     r.MissionTargetTime,
		MissionStatus:         r.MissionStatus,
		BlockerType:           r.BlockerType,
		DecisionMade:          r.DecisionMade,
		CreatedAt:             r.CreatedAt,
	}
}

func projectToPrimary(r *secondary.ProjectRecord, now time.Time) *primary.Project {
	p := &primary.Project{
		ID:           r.ID,
		Name:         r.Name,
		TargetDate:   r.TargetDate,
		Status:       r.Status,
		ShippedEarly: r.ShippedEarly,
		KillReason:   r.KillReason,
		CreatedAt:    r.CreatedAt,
		CompletedAt:  r.CompletedAt,
	}
	if r.TargetDate != "" && r.Status == primary.ProjectActive {
		if target, err := parseDate(r.TargetDate); err == nil {
			days := int(target.Sub(now.UTC().Truncate(24*time.Hour)).Hours() / 24)
			p.DaysRemaining = &days
		}
	}
	return p
}

func decisionToPrimary(r *secondary.DecisionRecord) *primary.Decision {
	return &primary.Decision{
		ID:                 r.ID,
		Date:               r.Date,
		Decision:           r.Decision,
		TimeToDecide:       r.TimeToDecide,
		MadeUnderParalysis: r.MadeUnderParalysis,
		Outcome:            r.Outcome,
		Notes:              r.Notes,
		CreatedAt:          r.CreatedAt,
	}
}

func breakerToPrimary(r *secondary.BreakerRecord) *primary.BreakerState {
	return &primary.BreakerState{
		ID:                     r.ID,
		Status:                 r.Status,
		TriggerReasons:         r.TriggerReasons,
		ActivatedAt:            r.ActivatedAt,
		SimplifiedProjectID:    r.SimplifiedProjectID,
		ExternalSupportEngaged: r.ExternalSupportEngaged,
		ExternalContact:        r.ExternalContact,
		DeactivatedAt:          r.DeactivatedAt,
	}
}
