package consts

// File types yt-dlp is allowed to produce, per mode.
var (
	AudioFileTypes = []string{"mp3", "m4a", "wav"}
	VideoFileTypes = []string{"mp4", "webm"}
	AllFileTypes   = []string{"mp4", "webm", "mp3", "m4a", "wav"}
)

// Quality presets recognized on top of the default selector.
const (
	QualityBest  = "best"
	QualityWorst = "worst"
)

// Program messages.
const (
	InstallHint = "Make sure yt-dlp is installed: pip install yt-dlp"
	PartialHint = "Some videos failed to download, but others may have succeeded. Please check your output directory."
)

// ProgramName is printed in version output and the log banner.
const ProgramName = "ytcli"
