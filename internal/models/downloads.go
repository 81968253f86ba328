package models

import "strings"

// DefaultQuality is the yt-dlp selector used when the user does not pick a quality.
const DefaultQuality = "bv*+ba/b"

// Playlist selects a subset of a multi-item URL. Values are forwarded to
// yt-dlp as-is; malformed expressions are rejected there.
type Playlist struct {
	Start string
	End   string
	Items string // e.g. "1,3,5-7"
}

// IsSet reports whether any playlist field was given.
func (p Playlist) IsSet() bool {
	return p.Start != "" || p.End != "" || p.Items != ""
}

// Cookies points yt-dlp at authentication cookies.
type Cookies struct {
	File    string // Netscape cookies.txt
	Browser string // browser name for yt-dlp's own cookie extraction
}

// Request describes one download. It is built once per invocation and passed
// by value, so downstream layers cannot write back into the caller's copy.
type Request struct {
	URL       string
	Output    string // base filename without extension, empty lets yt-dlp decide
	Quality   string
	AudioOnly bool
	FileType  string // empty defaults per mode, see ResolvedFileType

	Dir          string // destination directory
	Playlist     Playlist
	IgnoreErrors bool
	DateAfter    string // YYYYMMDD or yt-dlp relative date
	DateBefore   string
	Cookies      Cookies
}

// NewRequest returns a video request for url with the default quality selector.
func NewRequest(url string) Request {
	return Request{
		URL:     url,
		Quality: DefaultQuality,
	}
}

// ResolvedFileType returns FileType, or the mode default (mp3 for audio, mp4 for video).
func (r Request) ResolvedFileType() string {
	if ft := strings.TrimSpace(r.FileType); ft != "" {
		return ft
	}
	if r.AudioOnly {
		return "mp3"
	}
	return "mp4"
}
