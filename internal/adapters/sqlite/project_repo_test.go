package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/ceo/internal/adapters/sqlite"
	"github.com/example/ceo/internal/ports/secondary"
)

func boolPtr(v bool) *bool { return &v }

func TestProjectRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewProjectRepository(db)
	ctx := context.Background()

	project := &secondary.ProjectRecord{
		ID:         "proj-1",
		Name:       "Launch beta",
		TargetDate: "2026-09-05",
		Status:     "active",
	}
	if err := repo.Create(ctx, project); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := repo.GetByID(ctx, "proj-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Name != "Launch beta" {
		t.Errorf("expected name 'Launch beta', got %q", got.Name)
	}
	if got.TargetDate != "2026-09-05" {
		t.Errorf("expected target date, got %q", got.TargetDate)
	}
	if got.ShippedEarly != nil {
		t.Errorf("expected no shipped_early verdict yet, got %v", *got.ShippedEarly)
	}
}

func TestProjectRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewProjectRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "nope")
	if !secondary.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestProjectRepository_GetByPrefix(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewProjectRepository(db)
	ctx := context.Background()

	seedProject(t, db, "abc123", "One", "")
	seedProject(t, db, "abd456", "Two", "")

	got, err := repo.GetByPrefix(ctx, "abc")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Name != "One" {
		t.Errorf("expected 'One', got %q", got.Name)
	}
}

func TestProjectRepository_GetByPrefix_Ambiguous(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewProjectRepository(db)
	ctx := context.Background()

	seedProject(t, db, "abc123", "One", "")
	seedProject(t, db, "abd456", "Two", "")

	_, err := repo.GetByPrefix(ctx, "ab")
	if !secondary.IsNotFound(err) {
		t.Errorf("expected NotFoundError for ambiguous prefix, got %v", err)
	}
}

func TestProjectRepository_List_StatusFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewProjectRepository(db)
	ctx := context.Background()

	seedProject(t, db, "proj-1", "One", "active")
	seedProject(t, db, "proj-2", "Two", "active")
	seedProject(t, db, "proj-3", "Three", "killed")

	active, err := repo.List(ctx, secondary.ProjectFilters{Status: "active"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(active) != 2 {
		t.Errorf("expected 2 active projects, got %d", len(active))
	}

	all, err := repo.List(ctx, secondary.ProjectFilters{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 projects, got %d", len(all))
	}
}

func TestProjectRepository_CountActive(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewProjectRepository(db)
	ctx := context.Background()

	seedProject(t, db, "proj-1", "One", "active")
	seedProject(t, db, "proj-2", "Two", "shipped")

	count, err := repo.CountActive(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 active project, got %d", count)
	}
}

func TestProjectRepository_UpdateStatus_Ship(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewProjectRepository(db)
	ctx := context.Background()

	seedProject(t, db, "proj-1", "One", "active")

	err := repo.UpdateStatus(ctx, "proj-1", secondary.StatusUpdate{
		Status:       "shipped",
		ShippedEarly: boolPtr(true),
		CompletedAt:  "2026-08-31T10:00:00Z",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := repo.GetByID(ctx, "proj-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != "shipped" {
		t.Errorf("expected status 'shipped', got %q", got.Status)
	}
	if got.ShippedEarly == nil || !*got.ShippedEarly {
		t.Errorf("expected shipped early, got %v", got.ShippedEarly)
	}
	if got.CompletedAt == "" {
		t.Error("expected completed_at to be set")
	}
}

func TestProjectRepository_UpdateStatus_Kill(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewProjectRepository(db)
	ctx := context.Background()

	seedProject(t, db, "proj-1", "One", "active")

	err := repo.UpdateStatus(ctx, "proj-1", secondary.StatusUpdate{
		Status:      "killed",
		KillReason:  "wrong bet",
		CompletedAt: "2026-08-31T10:00:00Z",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := repo.GetByID(ctx, "proj-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != "killed" || got.KillReason != "wrong bet" {
		t.Errorf("expected killed with reason, got %q / %q", got.Status, got.KillReason)
	}
}

func TestProjectRepository_UpdateStatus_TerminalOnce(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewProjectRepository(db)
	ctx := context.Background()

	seedProject(t, db, "proj-1", "One", "shipped")

	err := repo.UpdateStatus(ctx, "proj-1", secondary.StatusUpdate{
		Status:      "killed",
		CompletedAt: "2026-08-31T10:00:00Z",
	})
	if !secondary.IsInvalidTransition(err) {
		t.Errorf("expected InvalidTransitionError, got %v", err)
	}
}

func TestProjectRepository_UpdateStatus_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewProjectRepository(db)
	ctx := context.Background()

	err := repo.UpdateStatus(ctx, "nope", secondary.StatusUpdate{Status: "shipped"})
	if !secondary.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}
