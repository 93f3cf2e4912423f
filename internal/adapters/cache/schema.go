package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres lookup cache schema. Safe to run repeatedly.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS lookup_cache (
		cache_key TEXT PRIMARY KEY,
		cache_value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create lookup_cache table: %w", err)
	}

	return nil
}
