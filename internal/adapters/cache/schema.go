package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the cache tables when absent.
// The statements are portable across the SQLite and Postgres backends.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_path_cache (
		coord_key TEXT PRIMARY KEY,
		geometry TEXT NOT NULL
	);
	`

	if _, err := tx.Exec(createRouteCacheQuery); err != nil {
		return fmt.Errorf("init schema: create route_path_cache: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}
	return nil
}
