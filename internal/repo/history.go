package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ytcli/internal/domain/consts"
	"ytcli/internal/models"
	"ytcli/internal/utils/logging"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// HistoryStore holds a pointer to the sql.DB.
type HistoryStore struct {
	DB *sql.DB
}

// GetHistoryStore returns a history store instance with injected database.
func GetHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{
		DB: db,
	}
}

// Record inserts e, assigning an ID when it has none.
func (hs *HistoryStore) Record(ctx context.Context, e *models.HistoryEntry) error {
	if e == nil {
		return fmt.Errorf("history entry is nil")
	}
	if strings.TrimSpace(e.URL) == "" {
		return fmt.Errorf("history entry has no URL")
	}

	if e.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate history ID: %w", err)
		}
		e.ID = id.String()
	}
	if e.StartedAt.IsZero() {
		e.StartedAt = time.Now()
	}

	query := squirrel.
		Insert(consts.DBHistory).
		Columns(
			consts.QHistID,
			consts.QHistURL,
			consts.QHistArgs,
			consts.QHistOutcome,
			consts.QHistExitCode,
			consts.QHistError,
			consts.QHistStartedAt,
			consts.QHistFinishedAt,
		).
		Values(
			e.ID,
			e.URL,
			e.Args,
			e.Outcome,
			e.ExitCode,
			e.Error,
			e.StartedAt,
			e.FinishedAt,
		).
		RunWith(hs.DB)

	if _, err := query.ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to record history for %q: %w", e.URL, err)
	}

	logging.D(2, "Recorded history entry %s for %q (%s)", e.ID, e.URL, e.Outcome)
	return nil
}

// Recent returns up to limit entries, newest first. A limit under 1 returns all.
func (hs *HistoryStore) Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	query := squirrel.
		Select(
			consts.QHistID,
			consts.QHistURL,
			consts.QHistArgs,
			consts.QHistOutcome,
			consts.QHistExitCode,
			consts.QHistError,
			consts.QHistStartedAt,
			consts.QHistFinishedAt,
		).
		From(consts.DBHistory).
		OrderBy(consts.QHistStartedAt+" DESC", consts.QHistID+" DESC").
		RunWith(hs.DB)

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var (
			e       models.HistoryEntry
			args    sql.NullString
			errText sql.NullString
			code    sql.NullInt64
		)
		if err := rows.Scan(
			&e.ID,
			&e.URL,
			&args,
			&e.Outcome,
			&code,
			&errText,
			&e.StartedAt,
			&e.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.Args = args.String
		e.Error = errText.String
		e.ExitCode = int(code.Int64)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history rows: %w", err)
	}
	return entries, nil
}
