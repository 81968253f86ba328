package models

import "time"

// HistoryEntry records the outcome of one download attempt.
type HistoryEntry struct {
	ID         string
	URL        string
	Args       string
	Outcome    string
	ExitCode   int
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration is the wall time the attempt took.
func (h HistoryEntry) Duration() time.Duration {
	if h.FinishedAt.Before(h.StartedAt) {
		return 0
	}
	return h.FinishedAt.Sub(h.StartedAt)
}
