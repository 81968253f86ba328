// Package app holds the download use case.
package app

import (
	"context"

	"ytcli/internal/interfaces"
	"ytcli/internal/models"
)

// DownloadVideo decides whether and when to download; the Downloader decides how.
type DownloadVideo struct {
	Downloader interfaces.Downloader
}

// NewDownloadVideo returns the use case over d.
func NewDownloadVideo(d interfaces.Downloader) *DownloadVideo {
	return &DownloadVideo{Downloader: d}
}

// Execute forwards req to the downloader once and returns its result unchanged.
func (uc *DownloadVideo) Execute(ctx context.Context, req models.Request) error {
	return uc.Downloader.Download(ctx, req)
}

// ExecuteWithProgress is Execute for downloaders that report progress. Other
// downloaders are called through Download and onProgress is never invoked.
func (uc *DownloadVideo) ExecuteWithProgress(ctx context.Context, req models.Request, onProgress interfaces.ProgressFunc) error {
	if pd, ok := uc.Downloader.(interfaces.ProgressDownloader); ok {
		return pd.DownloadWithProgress(ctx, req, onProgress)
	}
	return uc.Downloader.Download(ctx, req)
}
