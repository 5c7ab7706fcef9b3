package db

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// Open connects to an existing SQLite log store in read-only mode and
// verifies the expected schema is present. The store is created and
// populated by an external writer; a missing file or missing logs table is
// a configuration error, so we fail fast instead of creating anything.
func Open(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("log store %q not found: %w", path, err)
	}

	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA query_only = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA query_only=ON: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := probeSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// probeSchema runs a zero-row select over the columns this application
// reads, so schema drift surfaces at startup rather than mid-request.
func probeSchema(db *sql.DB) error {
	rows, err := db.Query("SELECT id, event_type, timestamp, duration FROM logs LIMIT 0")
	if err != nil {
		return fmt.Errorf("log store schema check: %w", err)
	}
	return rows.Close()
}
