package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS auth_session (
		id        INTEGER PRIMARY KEY CHECK (id = 1),
		token     TEXT NOT NULL,
		user_id   INTEGER NOT NULL DEFAULT 0,
		username  TEXT NOT NULL DEFAULT '',
		email     TEXT NOT NULL DEFAULT '',
		saved_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS schema_meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`INSERT OR IGNORE INTO schema_meta (key, value) VALUES ('schema_version', '1')`,
}

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// SchemaVersion reports the recorded schema version.
func SchemaVersion(ctx context.Context, db DBTX) (string, error) {
	var v string
	row := db.QueryRowContext(ctx, `SELECT value FROM schema_meta WHERE key = 'schema_version'`)
	if err := row.Scan(&v); err != nil {
		return "", fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}
