package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations run in order on every open. Statements must stay
// re-runnable: creates are IF NOT EXISTS, and additive ALTER TABLE
// columns rely on Migrate tolerating the duplicate-column error.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		address     TEXT NOT NULL DEFAULT '',
		client      TEXT NOT NULL DEFAULT '',
		owner       TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'planned',
		budget      REAL NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS members (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		email      TEXT NOT NULL,
		role       TEXT NOT NULL DEFAULT 'member',
		invited_at TEXT NOT NULL,
		PRIMARY KEY (project_id, email)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_members_project ON members(project_id)`,
	`ALTER TABLE projects ADD COLUMN tags TEXT NOT NULL DEFAULT ''`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Re-running an additive ALTER TABLE on a current schema
			// fails with "duplicate column name"; that is the
			// already-applied case.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
