// Package parsing normalizes user input such as dates and directories.
package parsing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ytcli/internal/utils/logging"
)

// ExpandDir returns the absolute form of a download directory.
//
// A leading "~" is replaced by the user's home directory. An empty
// input stays empty so yt-dlp keeps writing to the working directory.
func ExpandDir(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", nil
	}

	parsed := dir
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand %q: %w", dir, err)
		}
		parsed = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}

	if !filepath.IsAbs(parsed) {
		abs, err := filepath.Abs(parsed)
		if err != nil {
			return "", err
		}
		parsed = abs
	}

	if parsed != dir {
		logging.D(2, "Expanded output directory %q to %q", dir, parsed)
	}
	return parsed, nil
}
