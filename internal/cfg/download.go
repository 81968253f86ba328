package cfg

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"ytcli/internal/app"
	"ytcli/internal/command/execute"
	"ytcli/internal/database"
	"ytcli/internal/domain/errs"
	"ytcli/internal/domain/keys"
	"ytcli/internal/interfaces"
	"ytcli/internal/models"
	"ytcli/internal/parsing"
	"ytcli/internal/repo"
	"ytcli/internal/utils/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newDownloader builds the yt-dlp executor from config. Tests replace it.
var newDownloader = func(c *Config) interfaces.Downloader {
	y := execute.New()
	y.Path = c.YtdlpPath
	y.Stdout = os.Stdout
	y.Stderr = os.Stderr
	return y
}

// openHistory opens the history store at path. Tests replace it.
var openHistory = func(path string) (interfaces.HistoryStore, io.Closer, error) {
	d, err := database.InitDB(path)
	if err != nil {
		return nil, nil, err
	}
	return repo.InitStores(d.DB).HistoryStore(), d, nil
}

// runDownload is the root command: one URL, one yt-dlp run.
func runDownload(cmd *cobra.Command, args []string) error {
	c, err := LoadConfig()
	if err != nil {
		recordRejectedFileType(args[0], err)
		return err
	}
	logging.Level = c.DebugLevel

	req, err := c.Request(args[0])
	if err != nil {
		return err
	}
	logRequest(req)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	logging.I("Starting download: %s", req.URL)
	started := time.Now()

	err = app.NewDownloadVideo(newDownloader(c)).Execute(ctx, req)

	if !c.NoHistory {
		recordHistory(c.DBPath, req, started, time.Now(), err)
	}
	reportOutcome(err)
	if err != nil {
		return &reportedError{err: err}
	}
	return nil
}

// recordRejectedFileType stores a file type the config validation refused,
// so it lands in history like a format error from the translator.
func recordRejectedFileType(url string, err error) {
	var fe *errs.FormatError
	if !errors.As(err, &fe) || viper.GetBool(keys.NoHistory) {
		return
	}
	req := models.NewRequest(url)
	req.AudioOnly = viper.GetBool(keys.AudioOnly)
	req.FileType = fe.Value

	now := time.Now()
	recordHistory(viper.GetString(keys.DBPath), req, now, now, err)
}

// logRequest prints the non-default choices at debug level.
func logRequest(req models.Request) {
	logging.D(1, "Request: audio-only=%v file-type=%s quality=%q output=%q", req.AudioOnly, req.ResolvedFileType(), req.Quality, req.Output)
	if req.Playlist.IsSet() {
		logging.D(1, "Playlist: start=%q end=%q items=%q ignore-errors=%v", req.Playlist.Start, req.Playlist.End, req.Playlist.Items, req.IgnoreErrors)
	}
	if req.DateAfter != "" {
		logging.D(1, "Only videos uploaded on or after %s", parsing.HyphenateYyyyMmDd(req.DateAfter))
	}
	if req.DateBefore != "" {
		logging.D(1, "Only videos uploaded on or before %s", parsing.HyphenateYyyyMmDd(req.DateBefore))
	}
}

// recordHistory stores the outcome. Failures are logged and never change
// the download result.
func recordHistory(dbPath string, req models.Request, started, finished time.Time, outcome error) {
	if dbPath == "" {
		logging.D(1, "No history database path, skipping history")
		return
	}

	store, closer, err := openHistory(dbPath)
	if err != nil {
		logging.W("Could not open history database %q: %v", dbPath, err)
		return
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logging.D(1, "Failed to close history database: %v", err)
		}
	}()

	if err := app.RecordOutcome(store, req, started, finished, outcome); err != nil {
		logging.W("Could not record history: %v", err)
	}
}
