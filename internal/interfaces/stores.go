package interfaces

import (
	"context"

	"ytcli/internal/models"
)

// HistoryStore persists download outcomes.
type HistoryStore interface {
	Record(ctx context.Context, e *models.HistoryEntry) error
	Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error)
}
