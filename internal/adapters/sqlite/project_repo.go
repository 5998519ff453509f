package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/ceo/internal/ports/secondary"
)

// ProjectRepository implements secondary.ProjectRepository with SQLite.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new SQLite project repository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = "id, name, target_date, status, shipped_early, kill_reason, created_at, updated_at, completed_at"

// Create persists a new project.
// The record must have ID and Status pre-populated by the service layer.
func (r *ProjectRepository) Create(ctx context.Context, project *secondary.ProjectRecord) error {
	if project.ID == "" {
		return fmt.Errorf("project ID must be pre-populated by service layer")
	}
	if project.Status == "" {
		return fmt.Errorf("project Status must be pre-populated by service layer")
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (id, name, target_date, status) VALUES (?, ?, ?, ?)",
		project.ID, project.Name, nullable(project.TargetDate), project.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by its ID.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = ?", id)

	record, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, &secondary.NotFoundError{Kind: "project", Key: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return record, nil
}

// GetByPrefix resolves a project by a unique ID prefix. An ambiguous prefix
// resolves to nothing rather than an arbitrary match.
func (r *ProjectRepository) GetByPrefix(ctx context.Context, prefix string) (*secondary.ProjectRecord, error) {
	if prefix == "" {
		return nil, &secondary.NotFoundError{Kind: "project", Key: prefix}
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id LIKE ? || '%' LIMIT 2", prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project prefix: %w", err)
	}
	defer rows.Close()

	var matches []*secondary.ProjectRecord
	for rows.Next() {
		record, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		matches = append(matches, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to resolve project prefix: %w", err)
	}

	if len(matches) != 1 {
		return nil, &secondary.NotFoundError{Kind: "project", Key: prefix}
	}
	return matches[0], nil
}

// List retrieves projects matching the given filters, newest first.
func (r *ProjectRepository) List(ctx context.Context, filters secondary.ProjectFilters) ([]*secondary.ProjectRecord, error) {
	query := "SELECT " + projectColumns + " FROM projects"
	args := []any{}

	if filters.Status != "" {
		query += " WHERE status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*secondary.ProjectRecord
	for rows.Next() {
		record, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, record)
	}

	return projects, rows.Err()
}

// CountActive returns the number of projects with status 'active'.
func (r *ProjectRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM projects WHERE status = 'active'",
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active projects: %w", err)
	}

	return count, nil
}

// UpdateStatus transitions a project to a terminal status. The guard on the
// current status lives in the WHERE clause so a concurrent writer cannot
// conclude the same project twice.
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id string, update secondary.StatusUpdate) error {
	var shippedEarly sql.NullBool
	if update.ShippedEarly != nil {
		shippedEarly = sql.NullBool{Bool: *update.ShippedEarly, Valid: true}
	}

	var completedAt sql.NullTime
	if update.CompletedAt != "" {
		t, err := time.Parse(time.RFC3339, update.CompletedAt)
		if err != nil {
			return fmt.Errorf("invalid completed_at timestamp: %w", err)
		}
		completedAt = sql.NullTime{Time: t, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE projects SET status = ?, shipped_early = ?, kill_reason = ?, completed_at = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND status = 'active'",
		update.Status, shippedEarly, nullable(update.KillReason), completedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update project status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		record, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return &secondary.InvalidTransitionError{
			Kind:    "project",
			ID:      id,
			Status:  record.Status,
			Attempt: update.Status,
		}
	}

	return nil
}

func scanProject(row rowScanner) (*secondary.ProjectRecord, error) {
	var (
		targetDate, killReason sql.NullString
		shippedEarly           sql.NullBool
		createdAt, updatedAt   time.Time
		completedAt            sql.NullTime
	)

	record := &secondary.ProjectRecord{}
	err := row.Scan(&record.ID, &record.Name, &targetDate, &record.Status,
		&shippedEarly, &killReason, &createdAt, &updatedAt, &completedAt)
	if err != nil {
		return nil, err
	}

	record.TargetDate = targetDate.String
	record.KillReason = killReason.String
	if shippedEarly.Valid {
		record.ShippedEarly = &shippedEarly.Bool
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	if completedAt.Valid {
		record.CompletedAt = completedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// Ensure ProjectRepository implements the interface
var _ secondary.ProjectRepository = (*ProjectRepository)(nil)
