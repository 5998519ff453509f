// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/example/ceo/internal/ports/secondary"
)

// LogRepository implements secondary.LogRepository with SQLite.
type LogRepository struct {
	db *sql.DB
}

// NewLogRepository creates a new SQLite daily log repository.
func NewLogRepository(db *sql.DB) *LogRepository {
	return &LogRepository{db: db}
}

const logColumns = "id, date, energy, paralysis_signals, mission, mission_done_definition, mission_target_time, mission_status, blocker_type, decision_made, created_at, updated_at"

// Create persists a new daily log.
// The record must have ID, MissionStatus and BlockerType pre-populated by the
// service layer.
func (r *LogRepository) Create(ctx context.Context, log *secondary.LogRecord) error {
	if log.ID == "" {
		return fmt.Errorf("log ID must be pre-populated by service layer")
	}
	if log.MissionStatus == "" {
		return fmt.Errorf("log MissionStatus must be pre-populated by service layer")
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO daily_logs (id, date, energy, paralysis_signals, mission, mission_done_definition, mission_target_time, mission_status, blocker_type, decision_made) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		log.ID, log.Date, nullable(log.Energy), log.ParalysisSignals,
		nullable(log.Mission), nullable(log.MissionDoneDefinition), nullable(log.MissionTargetTime),
		log.MissionStatus, log.BlockerType, nullable(log.DecisionMade),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return &secondary.DuplicateDateError{Date: log.Date}
		}
		return fmt.Errorf("failed to create daily log: %w", err)
	}

	return nil
}

// GetByDate retrieves the log for a calendar date.
func (r *LogRepository) GetByDate(ctx context.Context, date string) (*secondary.LogRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+logColumns+" FROM daily_logs WHERE date = ?", date)

	record, err := scanLog(row)
	if err == sql.ErrNoRows {
		return nil, &secondary.NotFoundError{Kind: "daily log", Key: date}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily log: %w", err)
	}
	return record, nil
}

// Update updates an existing daily log, keyed by date.
func (r *LogRepository) Update(ctx context.Context, log *secondary.LogRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE daily_logs SET energy = ?, paralysis_signals = ?, mission = ?, mission_done_definition = ?, mission_target_time = ?, mission_status = ?, blocker_type = ?, decision_made = ?, updated_at = CURRENT_TIMESTAMP WHERE date = ?",
		nullable(log.Energy), log.ParalysisSignals,
		nullable(log.Mission), nullable(log.MissionDoneDefinition), nullable(log.MissionTargetTime),
		log.MissionStatus, log.BlockerType, nullable(log.DecisionMade),
		log.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to update daily log: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return &secondary.NotFoundError{Kind: "daily log", Key: log.Date}
	}

	return nil
}

// ListSince retrieves logs with date >= since, newest first.
func (r *LogRepository) ListSince(ctx context.Context, since string) ([]*secondary.LogRecord, error) {
	return r.list(ctx,
		"SELECT "+logColumns+" FROM daily_logs WHERE date >= ? ORDER BY date DESC", since)
}

// ListRange retrieves logs with since <= date <= until, newest first.
func (r *LogRepository) ListRange(ctx context.Context, since, until string) ([]*secondary.LogRecord, error) {
	return r.list(ctx,
		"SELECT "+logColumns+" FROM daily_logs WHERE date >= ? AND date <= ? ORDER BY date DESC", since, until)
}

func (r *LogRepository) list(ctx context.Context, query string, args ...any) ([]*secondary.LogRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}
	defer rows.Close()

	var logs []*secondary.LogRecord
	for rows.Next() {
		record, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily log: %w", err)
		}
		logs = append(logs, record)
	}

	return logs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner) (*secondary.LogRecord, error) {
	var (
		energy, mission, doneDef, targetTime, decisionMade sql.NullString
		createdAt, updatedAt                               time.Time
	)

	record := &secondary.LogRecord{}
	err := row.Scan(&record.ID, &record.Date, &energy, &record.ParalysisSignals,
		&mission, &doneDef, &targetTime, &record.MissionStatus, &record.BlockerType,
		&decisionMade, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.Energy = energy.String
	record.Mission = mission.String
	record.MissionDoneDefinition = doneDef.String
	record.MissionTargetTime = targetTime.String
	record.DecisionMade = decisionMade.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// nullable maps "" to NULL so empty optional columns stay NULL in the store.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Ensure LogRepository implements the interface
var _ secondary.LogRepository = (*LogRepository)(nil)
