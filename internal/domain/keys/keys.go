// Package keys holds viper keys. Each key doubles as the CLI flag name and,
// upper-cased with a YTCLI_ prefix, as the environment variable name.
package keys

// Request
const (
	Output     string = "output"
	AudioOnly  string = "audio-only"
	Quality    string = "quality"
	FileType   string = "file-type"
	Dir        string = "dir"
	DateAfter  string = "date-after"
	DateBefore string = "date-before"
)

// Playlist
const (
	PlaylistStart string = "playlist-start"
	PlaylistEnd   string = "playlist-end"
	PlaylistItems string = "playlist-items"
	IgnoreErrors  string = "ignore-errors"
)

// Cookies
const (
	CookiePath    string = "cookies"
	CookieBrowser string = "cookies-from-browser"
)

// Program
const (
	YtdlpPath  string = "ytdlp-path"
	Timeout    string = "timeout"
	NoHistory  string = "no-history"
	DBPath     string = "db-path"
	DebugLevel string = "debug-level"
	ConfigFile string = "config"
)

// Environment
const (
	EnvPrefix string = "YTCLI"
)
