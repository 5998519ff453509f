package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/ceo/internal/adapters/sqlite"
	"github.com/example/ceo/internal/ports/secondary"
)

func TestLogRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewLogRepository(db)
	ctx := context.Background()

	log := &secondary.LogRecord{
		ID:                    "log-1",
		Date:                  "2026-08-31",
		Energy:                "high",
		ParalysisSignals:      true,
		Mission:               "Ship the beta",
		MissionDoneDefinition: "invite link live",
		MissionTargetTime:     "15:00",
		MissionStatus:         "pending",
		BlockerType:           "none",
	}
	if err := repo.Create(ctx, log); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := repo.GetByDate(ctx, "2026-08-31")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Mission != "Ship the beta" {
		t.Errorf("expected mission 'Ship the beta', got %q", got.Mission)
	}
	if !got.ParalysisSignals {
		t.Error("expected paralysis signals true")
	}
	if got.MissionDoneDefinition != "invite link live" {
		t.Errorf("expected done definition, got %q", got.MissionDoneDefinition)
	}
	if got.CreatedAt == "" {
		t.Error("expected created_at to be set")
	}
}

func TestLogRepository_Create_DuplicateDate(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewLogRepository(db)
	ctx := context.Background()

	seedLog(t, db, "log-1", "2026-08-31", "")

	err := repo.Create(ctx, &secondary.LogRecord{
		ID:            "log-2",
		Date:          "2026-08-31",
		MissionStatus: "pending",
		BlockerType:   "none",
	})
	if !secondary.IsDuplicateDate(err) {
		t.Errorf("expected DuplicateDateError, got %v", err)
	}
}

func TestLogRepository_Create_RequiresID(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewLogRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &secondary.LogRecord{Date: "2026-08-31", MissionStatus: "pending"})
	if err == nil {
		t.Error("expected error for missing ID")
	}
}

func TestLogRepository_GetByDate_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewLogRepository(db)
	ctx := context.Background()

	_, err := repo.GetByDate(ctx, "2026-08-31")
	if !secondary.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestLogRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewLogRepository(db)
	ctx := context.Background()

	seedLog(t, db, "log-1", "2026-08-31", "pending")

	log, err := repo.GetByDate(ctx, "2026-08-31")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	log.MissionStatus = "shipped"
	log.DecisionMade = "cut the scope"

	if err := repo.Update(ctx, log); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := repo.GetByDate(ctx, "2026-08-31")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.MissionStatus != "shipped" {
		t.Errorf("expected status 'shipped', got %q", got.MissionStatus)
	}
	if got.DecisionMade != "cut the scope" {
		t.Errorf("expected decision note, got %q", got.DecisionMade)
	}
}

func TestLogRepository_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewLogRepository(db)
	ctx := context.Background()

	err := repo.Update(ctx, &secondary.LogRecord{
		Date:          "2026-08-31",
		MissionStatus: "shipped",
		BlockerType:   "none",
	})
	if !secondary.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestLogRepository_ListSince(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewLogRepository(db)
	ctx := context.Background()

	seedLog(t, db, "log-1", "2026-08-29", "")
	seedLog(t, db, "log-2", "2026-08-30", "")
	seedLog(t, db, "log-3", "2026-08-01", "")

	logs, err := repo.ListSince(ctx, "2026-08-15")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	// Newest first.
	if logs[0].Date != "2026-08-30" || logs[1].Date != "2026-08-29" {
		t.Errorf("expected newest-first ordering, got %s, %s", logs[0].Date, logs[1].Date)
	}
}

func TestLogRepository_ListRange(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewLogRepository(db)
	ctx := context.Background()

	seedLog(t, db, "log-1", "2026-08-10", "")
	seedLog(t, db, "log-2", "2026-08-20", "")
	seedLog(t, db, "log-3", "2026-08-30", "")

	logs, err := repo.ListRange(ctx, "2026-08-15", "2026-08-25")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(logs) != 1 || logs[0].Date != "2026-08-20" {
		t.Errorf("expected only the in-range log, got %d", len(logs))
	}
}
