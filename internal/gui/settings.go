package gui

import (
	"fyne.io/fyne/v2"
)

// Preference keys.
const (
	KeyDownloadDir = "download_directory"
	KeyFileType    = "file_type"
	KeyAudioOnly   = "audio_only"
)

// Settings remembers the last form choices between runs.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager.
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// DownloadDir returns the last used download directory, empty for the working directory.
func (s *Settings) DownloadDir() string {
	return s.app.Preferences().String(KeyDownloadDir)
}

// SetDownloadDir stores the download directory.
func (s *Settings) SetDownloadDir(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// FileType returns the last chosen file type, empty for the mode default.
func (s *Settings) FileType() string {
	return s.app.Preferences().String(KeyFileType)
}

// SetFileType stores the file type.
func (s *Settings) SetFileType(ft string) {
	s.app.Preferences().SetString(KeyFileType, ft)
}

// AudioOnly returns whether audio-only was last checked.
func (s *Settings) AudioOnly() bool {
	return s.app.Preferences().Bool(KeyAudioOnly)
}

// SetAudioOnly stores the audio-only choice.
func (s *Settings) SetAudioOnly(v bool) {
	s.app.Preferences().SetBool(KeyAudioOnly, v)
}
