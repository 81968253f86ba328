package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"ytcli/internal/command/builder"
	"ytcli/internal/domain/errs"
	"ytcli/internal/interfaces"
	"ytcli/internal/models"
)

const historyTimeout = 5 * time.Second

// NewHistoryEntry describes one download attempt for the history store.
// ExitCode is yt-dlp's status, or -1 when it produced none.
func NewHistoryEntry(req models.Request, started, finished time.Time, outcome error) *models.HistoryEntry {
	entry := &models.HistoryEntry{
		URL:        req.URL,
		Outcome:    errs.KindOf(outcome).String(),
		StartedAt:  started,
		FinishedAt: finished,
	}
	if args, err := builder.BuildArgs(req); err == nil {
		entry.Args = strings.Join(args, " ")
	}

	if outcome != nil {
		entry.Error = outcome.Error()
		entry.ExitCode = -1

		var ee *errs.ExecError
		if errors.As(outcome, &ee) {
			entry.ExitCode = ee.ExitCode
		}
	}
	return entry
}

// RecordOutcome stores the attempt. It runs on its own short deadline so a
// cancelled download is still recorded.
func RecordOutcome(store interfaces.HistoryStore, req models.Request, started, finished time.Time, outcome error) error {
	ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
	defer cancel()
	return store.Record(ctx, NewHistoryEntry(req, started, finished, outcome))
}
