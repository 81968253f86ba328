// Package interfaces holds the capabilities wired between layers.
package interfaces

import (
	"context"

	"ytcli/internal/models"
)

// Downloader runs one download request to completion.
type Downloader interface {
	Download(ctx context.Context, req models.Request) error
}

// ProgressFunc receives non-decreasing fractions in [0, 1].
type ProgressFunc func(fraction float64)

// ProgressDownloader is a Downloader that can also report progress.
type ProgressDownloader interface {
	Downloader
	DownloadWithProgress(ctx context.Context, req models.Request, onProgress ProgressFunc) error
}
