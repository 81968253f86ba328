// Package builder translates download requests into yt-dlp arguments.
package builder

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"ytcli/internal/domain/command"
	"ytcli/internal/domain/consts"
	"ytcli/internal/domain/errs"
	"ytcli/internal/models"
	"ytcli/internal/utils/logging"
)

var heightPreset = regexp.MustCompile(`^(\d+)p$`)

// maxHeight bounds height caps to something a real stream could have.
const maxHeight = 9999

// audioPairs maps a video container to the audio extension merged into it.
var audioPairs = map[string]string{
	"mp4":  "m4a",
	"webm": "webm",
}

// VideoDLRequest builds the yt-dlp argument list for one request.
type VideoDLRequest struct {
	Request models.Request
}

// NewVideoDLRequest copies req into a new builder.
func NewVideoDLRequest(req models.Request) *VideoDLRequest {
	return &VideoDLRequest{
		Request: req,
	}
}

// BuildArgs is shorthand for NewVideoDLRequest(req).Args().
func BuildArgs(req models.Request) ([]string, error) {
	return NewVideoDLRequest(req).Args()
}

// Args returns the argument list, URL first:
//
//	<url> -f <selector> [--extract-audio --audio-format <fmt>] [-o <output>.%(ext)s] [-P <dir>]
//	[--playlist-start N] [--playlist-end N] [--playlist-items EXPR]
//	[--dateafter D] [--datebefore D] [--ignore-errors] [--cookies F | --cookies-from-browser B]
//
// The URL is passed through untouched. Unsupported file types or height caps
// return an *errs.FormatError.
func (vr *VideoDLRequest) Args() ([]string, error) {
	r := vr.Request
	args := []string{r.URL}

	fileType := r.ResolvedFileType()
	if r.AudioOnly {
		if !slices.Contains(consts.AudioFileTypes, fileType) {
			return nil, &errs.FormatError{Field: "audio format", Value: fileType, Allowed: consts.AudioFileTypes}
		}
		selector, err := audioSelector(r.Quality)
		if err != nil {
			return nil, err
		}
		args = append(args, command.Format, selector)
		args = append(args, command.ExtractAudio, command.AudioFormat, fileType)
	} else {
		if !slices.Contains(consts.VideoFileTypes, fileType) {
			return nil, &errs.FormatError{Field: "video format", Value: fileType, Allowed: consts.VideoFileTypes}
		}
		selector, err := videoSelector(fileType, r.Quality)
		if err != nil {
			return nil, err
		}
		args = append(args, command.Format, selector)
	}

	if r.Output != "" {
		args = append(args, command.Output, r.Output+command.OutputExtSuffix)
	}
	if r.Dir != "" {
		args = append(args, command.P, r.Dir)
	}

	args = appendIfSet(args, command.PlaylistStart, r.Playlist.Start)
	args = appendIfSet(args, command.PlaylistEnd, r.Playlist.End)
	args = appendIfSet(args, command.PlaylistItems, r.Playlist.Items)
	args = appendIfSet(args, command.DateAfter, r.DateAfter)
	args = appendIfSet(args, command.DateBefore, r.DateBefore)

	if r.IgnoreErrors {
		args = append(args, command.IgnoreErrors)
	}

	switch {
	case r.Cookies.File != "":
		args = append(args, command.CookiePath, r.Cookies.File)
	case r.Cookies.Browser != "":
		args = append(args, command.CookiesFromBrowser, r.Cookies.Browser)
	}

	logging.D(1, "Built argument list: %v", args)
	return args, nil
}

// videoSelector returns the -f expression for a whitelisted container.
//
// The default quality prefers separate best streams in the container with a
// same-container fallback, e.g. "bestvideo[ext=mp4]+bestaudio[ext=m4a]/mp4".
func videoSelector(ext, quality string) (string, error) {
	audio := audioPairs[ext]

	q, err := parseQuality(quality)
	if err != nil {
		return "", err
	}

	switch {
	case q.selector != "":
		return q.selector, nil
	case q.preset == consts.QualityWorst:
		return fmt.Sprintf("worstvideo[ext=%s]+worstaudio[ext=%s]/worst[ext=%s]", ext, audio, ext), nil
	case q.height > 0:
		return fmt.Sprintf("bestvideo[ext=%s][height<=%d]+bestaudio[ext=%s]/best[ext=%s][height<=%d]",
			ext, q.height, audio, ext, q.height), nil
	default:
		return fmt.Sprintf("bestvideo[ext=%s]+bestaudio[ext=%s]/%s", ext, audio, ext), nil
	}
}

// audioSelector returns the -f expression for audio extraction. Height caps
// do not apply to audio streams.
func audioSelector(quality string) (string, error) {
	q, err := parseQuality(quality)
	if err != nil {
		return "", err
	}
	switch {
	case q.selector != "":
		return q.selector, nil
	case q.preset == consts.QualityWorst:
		return command.WorstAudioSelector, nil
	case q.height > 0:
		logging.D(1, "Ignoring height cap %dp for audio-only download", q.height)
	}
	return command.BestAudioSelector, nil
}

// quality is a parsed quality value. Exactly one field is set.
type quality struct {
	preset   string
	height   int
	selector string
}

// parseQuality recognizes the best and worst presets and <N>p height caps.
// Anything else is a raw yt-dlp format selector and replaces the
// type-driven one.
func parseQuality(raw string) (quality, error) {
	trimmed := strings.TrimSpace(raw)
	q := strings.ToLower(trimmed)
	switch q {
	case "", consts.QualityBest, models.DefaultQuality:
		return quality{preset: consts.QualityBest}, nil
	case consts.QualityWorst:
		return quality{preset: consts.QualityWorst}, nil
	}

	if m := heightPreset.FindStringSubmatch(q); m != nil {
		h, err := strconv.Atoi(m[1])
		if err != nil || h <= 0 || h > maxHeight {
			return quality{}, &errs.FormatError{
				Field:   "quality",
				Value:   raw,
				Allowed: []string{fmt.Sprintf("a height from 1p to %dp", maxHeight)},
			}
		}
		return quality{height: h}, nil
	}
	return quality{selector: trimmed}, nil
}

// appendIfSet appends flag and val when val is non-empty.
func appendIfSet(args []string, flag, val string) []string {
	if val == "" {
		return args
	}
	return append(args, flag, val)
}
