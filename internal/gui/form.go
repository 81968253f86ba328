package gui

import (
	"errors"
	"fmt"
	"strings"

	"ytcli/internal/domain/consts"
	"ytcli/internal/domain/errs"
	"ytcli/internal/models"
	"ytcli/internal/parsing"
)

// formState is a snapshot of the form widgets.
type formState struct {
	URL          string
	Output       string
	QualityLabel string
	FileType     string
	AudioOnly    bool
	Dir          string

	PlaylistStart string
	PlaylistEnd   string
	PlaylistItems string
	IgnoreErrors  bool
}

// toRequest builds the download request from the form.
func (f formState) toRequest() (models.Request, error) {
	url := strings.TrimSpace(f.URL)
	if url == "" {
		return models.Request{}, errors.New("enter a video or playlist URL")
	}

	req := models.NewRequest(url)
	req.Output = strings.TrimSpace(f.Output)
	req.Quality = QualityFromLabel(f.QualityLabel)
	req.AudioOnly = f.AudioOnly
	req.FileType = strings.TrimSpace(f.FileType)
	dir, err := parsing.ExpandDir(f.Dir)
	if err != nil {
		return models.Request{}, err
	}
	req.Dir = dir
	req.Playlist = models.Playlist{
		Start: strings.TrimSpace(f.PlaylistStart),
		End:   strings.TrimSpace(f.PlaylistEnd),
		Items: strings.TrimSpace(f.PlaylistItems),
	}
	req.IgnoreErrors = f.IgnoreErrors
	return req, nil
}

// fileTypeOptions lists the file types valid for the mode.
func fileTypeOptions(audioOnly bool) []string {
	if audioOnly {
		return consts.AudioFileTypes
	}
	return consts.VideoFileTypes
}

// statusMessage renders a download outcome for the status label.
func statusMessage(err error) string {
	switch errs.KindOf(err) {
	case errs.KindNone:
		return "Download complete"
	case errs.KindFormat:
		return fmt.Sprintf("Invalid choice: %v", err)
	case errs.KindLaunch:
		return fmt.Sprintf("%v. %s", err, consts.InstallHint)
	case errs.KindPartial:
		return consts.PartialHint
	case errs.KindCancelled:
		return "Download cancelled"
	default:
		return fmt.Sprintf("Download failed: %v", err)
	}
}
