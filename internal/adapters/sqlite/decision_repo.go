package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/ceo/internal/ports/secondary"
)

// DecisionRepository implements secondary.DecisionRepository with SQLite.
// The decision log is append-only; there is no update or delete path.
type DecisionRepository struct {
	db *sql.DB
}

// NewDecisionRepository creates a new SQLite decision repository.
func NewDecisionRepository(db *sql.DB) *DecisionRepository {
	return &DecisionRepository{db: db}
}

// Create persists a new decision.
// The record must have ID and Outcome pre-populated by the service layer.
func (r *DecisionRepository) Create(ctx context.Context, decision *secondary.DecisionRecord) error {
	if decision.ID == "" {
		return fmt.Errorf("decision ID must be pre-populated by service layer")
	}
	if decision.Outcome == "" {
		return fmt.Errorf("decision Outcome must be pre-populated by service layer")
	}

	var timeToDecide sql.NullInt64
	if decision.TimeToDecide != nil {
		timeToDecide = sql.NullInt64{Int64: int64(*decision.TimeToDecide), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO decisions (id, date, decision, time_to_decide, made_under_paralysis, outcome, notes) VALUES (?, ?, ?, ?, ?, ?, ?)",
		decision.ID, decision.Date, decision.Decision, timeToDecide,
		decision.MadeUnderParalysis, decision.Outcome, nullable(decision.Notes),
	)
	if err != nil {
		return fmt.Errorf("failed to create decision: %w", err)
	}

	return nil
}

// ListSince retrieves decisions with date >= since, newest first.
func (r *DecisionRepository) ListSince(ctx context.Context, since string) ([]*secondary.DecisionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, date, decision, time_to_decide, made_under_paralysis, outcome, notes, created_at FROM decisions WHERE date >= ? ORDER BY date DESC, created_at DESC",
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}
	defer rows.Close()

	var decisions []*secondary.DecisionRecord
	for rows.Next() {
		var (
			timeToDecide sql.NullInt64
			notes        sql.NullString
			createdAt    time.Time
		)

		record := &secondary.DecisionRecord{}
		err := rows.Scan(&record.ID, &record.Date, &record.Decision, &timeToDecide,
			&record.MadeUnderParalysis, &record.Outcome, &notes, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan decision: %w", err)
		}

		if timeToDecide.Valid {
			minutes := int(timeToDecide.Int64)
			record.TimeToDecide = &minutes
		}
		record.Notes = notes.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		decisions = append(decisions, record)
	}

	return decisions, rows.Err()
}

// Ensure DecisionRepository implements the interface
var _ secondary.DecisionRepository = (*DecisionRepository)(nil)
