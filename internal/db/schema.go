package db

// SchemaSQL is the complete schema for fresh installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Tests load it
// via GetSchemaSQL() so that repository code and tests can never drift apart:
// a column referenced by a repository that is missing here fails immediately
// with "no such column".
const SchemaSQL = `
-- Daily logs (one check-in per calendar date)
CREATE TABLE IF NOT EXISTS daily_logs (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL UNIQUE,
	energy TEXT CHECK(energy IN ('high', 'medium', 'low')),
	paralysis_signals INTEGER NOT NULL DEFAULT 0,
	mission TEXT,
	mission_done_definition TEXT,
	mission_target_time TEXT,
	mission_status TEXT NOT NULL CHECK(mission_status IN ('pending', 'shipped', 'blocked', 'deferred')) DEFAULT 'pending',
	blocker_type TEXT NOT NULL CHECK(blocker_type IN ('none', 'self_decision', 'external')) DEFAULT 'none',
	decision_made TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Projects (hard cap of 3 active, enforced in the service layer)
CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	target_date TEXT,
	status TEXT NOT NULL CHECK(status IN ('active', 'shipped', 'killed')) DEFAULT 'active',
	shipped_early INTEGER,
	kill_reason TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	completed_at DATETIME
);

-- Decisions (append-only log with timing)
CREATE TABLE IF NOT EXISTS decisions (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	decision TEXT NOT NULL,
	time_to_decide INTEGER,
	made_under_paralysis INTEGER NOT NULL DEFAULT 0,
	outcome TEXT NOT NULL CHECK(outcome IN ('proceeded', 'blocked', 'revisited')),
	notes TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Circuit breaker cycles (at most one row with status 'active')
CREATE TABLE IF NOT EXISTS breaker_states (
	id TEXT PRIMARY KEY,
	status TEXT NOT NULL CHECK(status IN ('active', 'ended')) DEFAULT 'active',
	trigger_reasons TEXT NOT NULL,  -- JSON array of reason strings
	activated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	simplified_project_id TEXT,
	external_support_engaged INTEGER NOT NULL DEFAULT 0,
	external_contact TEXT,
	deactivated_at DATETIME,
	FOREIGN KEY (simplified_project_id) REFERENCES projects(id)
);

CREATE INDEX IF NOT EXISTS idx_daily_logs_date ON daily_logs(date);
CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);
CREATE INDEX IF NOT EXISTS idx_decisions_date ON decisions(date);
CREATE INDEX IF NOT EXISTS idx_breaker_states_status ON breaker_states(status);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	_, err = db.Exec(SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
