// Package paths initializes ytcli's filepaths and directories.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ytcli/internal/domain/consts"
)

const (
	yDir     = ".ytcli"
	yDBFile  = "ytcli.db"
	yLogFile = "ytcli.log"
)

// File and directory path strings.
var (
	HomeYtcliDir     string
	DBFilePath       string
	YtcliLogFilePath string
)

// InitProgFilesDirs initializes necessary program directories and filepaths.
func InitProgFilesDirs() error {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return errors.New("failed to get home directory")
	}
	return initUnder(userHomeDir)
}

// initUnder sets up ~/.ytcli rooted at home.
func initUnder(home string) error {
	HomeYtcliDir = filepath.Join(home, yDir)
	if _, err := os.Stat(HomeYtcliDir); os.IsNotExist(err) {
		if err := os.MkdirAll(HomeYtcliDir, consts.PermsHomeProgDir); err != nil {
			return fmt.Errorf("failed to make directories: %w", err)
		}
	}

	DBFilePath = filepath.Join(HomeYtcliDir, yDBFile)
	YtcliLogFilePath = filepath.Join(HomeYtcliDir, yLogFile)
	return nil
}
