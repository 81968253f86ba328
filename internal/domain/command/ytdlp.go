// Package command holds yt-dlp flag names and selector fragments.
package command

// General
const (
	YTDLP              = "yt-dlp"
	Format             = "-f"
	Output             = "-o"
	P                  = "-P"
	OutputExtSuffix    = ".%(ext)s"
	Newline            = "--newline"
	CookiePath         = "--cookies"
	CookiesFromBrowser = "--cookies-from-browser"
	IgnoreErrors       = "--ignore-errors"
)

// Audio extraction
const (
	ExtractAudio = "--extract-audio"
	AudioFormat  = "--audio-format"
)

// Playlist selection
const (
	PlaylistStart = "--playlist-start"
	PlaylistEnd   = "--playlist-end"
	PlaylistItems = "--playlist-items"
	DateAfter     = "--dateafter"
	DateBefore    = "--datebefore"
)

// Format selectors
const (
	BestAudioSelector  = "ba/b"
	WorstAudioSelector = "wa/w"
)
