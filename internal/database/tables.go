package database

import (
	"database/sql"
	"fmt"
)

// initHistoryTable initializes the download history table.
func initHistoryTable(tx *sql.Tx) error {
	query := `
    CREATE TABLE IF NOT EXISTS history (
        id TEXT PRIMARY KEY,
        url TEXT NOT NULL,
        args TEXT,
        outcome TEXT NOT NULL CHECK(outcome IN ('ok', 'format', 'launch', 'partial', 'fatal', 'terminated', 'cancelled')),
        exit_code INTEGER,
        error TEXT,
        started_at TIMESTAMP NOT NULL,
        finished_at TIMESTAMP,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    );
    CREATE INDEX IF NOT EXISTS idx_history_url ON history(url);
    CREATE INDEX IF NOT EXISTS idx_history_started_at ON history(started_at);
    `
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}
	return nil
}
