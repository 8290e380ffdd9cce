package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run on
// every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		codec      TEXT NOT NULL DEFAULT 'json'
		           CHECK(codec IN ('json','cbor')),
		updated_at TEXT NOT NULL
	)`,
}
