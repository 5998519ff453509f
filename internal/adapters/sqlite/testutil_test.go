// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/ceo/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
// Uses db.GetSchemaSQL() to prevent test schemas from drifting.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedLog inserts a test daily log and returns its ID.
func seedLog(t *testing.T, db *sql.DB, id, date, missionStatus string) string {
	t.Helper()
	if id == "" {
		id = "log-1"
	}
	if date == "" {
		date = "2026-08-31"
	}
	if missionStatus == "" {
		missionStatus = "pending"
	}
	_, err := db.Exec(
		"INSERT INTO daily_logs (id, date, energy, mission, mission_status, blocker_type) VALUES (?, ?, 'medium', 'Test mission', ?, 'none')",
		id, date, missionStatus,
	)
	if err != nil {
		t.Fatalf("failed to seed daily log: %v", err)
	}
	return id
}

// seedProject inserts a test project and returns its ID.
func seedProject(t *testing.T, db *sql.DB, id, name, status string) string {
	t.Helper()
	if id == "" {
		id = "proj-1"
	}
	if name == "" {
		name = "Test Project"
	}
	if status == "" {
		status = "active"
	}
	_, err := db.Exec("INSERT INTO projects (id, name, status) VALUES (?, ?, ?)", id, name, status)
	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return id
}

// seedDecision inserts a test decision and returns its ID.
func seedDecision(t *testing.T, db *sql.DB, id, date string) string {
	t.Helper()
	if id == "" {
		id = "dec-1"
	}
	if date == "" {
		date = "2026-08-31"
	}
	_, err := db.Exec(
		"INSERT INTO decisions (id, date, decision, outcome) VALUES (?, ?, 'Test decision', 'proceeded')",
		id, date,
	)
	if err != nil {
		t.Fatalf("failed to seed decision: %v", err)
	}
	return id
}
