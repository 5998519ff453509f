package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/ceo/internal/ports/secondary"
)

// BreakerRepository implements secondary.BreakerRepository with SQLite.
type BreakerRepository struct {
	db *sql.DB
}

// NewBreakerRepository creates a new SQLite circuit breaker repository.
func NewBreakerRepository(db *sql.DB) *BreakerRepository {
	return &BreakerRepository{db: db}
}

// Create persists a new breaker cycle.
// The record must have ID and Status pre-populated by the service layer.
func (r *BreakerRepository) Create(ctx context.Context, state *secondary.BreakerRecord) error {
	if state.ID == "" {
		return fmt.Errorf("breaker ID must be pre-populated by service layer")
	}
	if state.Status == "" {
		return fmt.Errorf("breaker Status must be pre-populated by service layer")
	}

	reasons, err := json.Marshal(state.TriggerReasons)
	if err != nil {
		return fmt.Errorf("failed to encode trigger reasons: %w", err)
	}

	var activatedAt any = nil
	if state.ActivatedAt != "" {
		t, err := time.Parse(time.RFC3339, state.ActivatedAt)
		if err != nil {
			return fmt.Errorf("invalid activated_at timestamp: %w", err)
		}
		activatedAt = t
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO breaker_states (id, status, trigger_reasons, activated_at, simplified_project_id, external_support_engaged, external_contact) VALUES (?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP), ?, ?, ?)",
		state.ID, state.Status, string(reasons), activatedAt,
		nullable(state.SimplifiedProjectID), state.ExternalSupportEngaged, nullable(state.ExternalContact),
	)
	if err != nil {
		return fmt.Errorf("failed to create breaker cycle: %w", err)
	}

	return nil
}

// GetActive returns the active breaker cycle, or nil if none.
func (r *BreakerRepository) GetActive(ctx context.Context) (*secondary.BreakerRecord, error) {
	var (
		reasons            string
		projectID, contact sql.NullString
		activatedAt        time.Time
		deactivatedAt      sql.NullTime
	)

	record := &secondary.BreakerRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, status, trigger_reasons, activated_at, simplified_project_id, external_support_engaged, external_contact, deactivated_at FROM breaker_states WHERE status = 'active' ORDER BY activated_at DESC LIMIT 1",
	).Scan(&record.ID, &record.Status, &reasons, &activatedAt, &projectID,
		&record.ExternalSupportEngaged, &contact, &deactivatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active breaker cycle: %w", err)
	}

	if err := json.Unmarshal([]byte(reasons), &record.TriggerReasons); err != nil {
		return nil, fmt.Errorf("failed to decode trigger reasons: %w", err)
	}
	record.ActivatedAt = activatedAt.Format(time.RFC3339)
	record.SimplifiedProjectID = projectID.String
	record.ExternalContact = contact.String
	if deactivatedAt.Valid {
		record.DeactivatedAt = deactivatedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// End transitions a breaker cycle to 'ended', setting deactivated_at.
func (r *BreakerRepository) End(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE breaker_states SET status = 'ended', deactivated_at = CURRENT_TIMESTAMP WHERE id = ?",
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to end breaker cycle: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return &secondary.NotFoundError{Kind: "breaker cycle", Key: id}
	}

	return nil
}

// Ensure BreakerRepository implements the interface
var _ secondary.BreakerRepository = (*BreakerRepository)(nil)
