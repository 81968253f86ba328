// Package logging prints leveled, colored messages to the console and
// mirrors them into a zerolog JSON log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"ytcli/internal/domain/consts"

	"github.com/rs/zerolog"
)

var (
	// Level is the debug verbosity (0 - 5). D(l, ...) prints when l <= Level.
	Level = 0

	// Console receives colored output. Errors and warnings go to ErrConsole.
	Console    io.Writer = os.Stdout
	ErrConsole io.Writer = os.Stderr

	fileLogger *zerolog.Logger
	logFile    *os.File
	mu         sync.Mutex
)

// Regular expression to match ANSI escape codes
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetupLogging creates and/or opens the log file at path.
func SetupLogging(path string) error {
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, consts.PermsLogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", path, err)
	}
	setFileSink(f)
	logFile = f

	fileLogger.Info().Msg(fmt.Sprintf("=========== %v ===========", time.Now().Format(time.RFC1123Z)))
	return nil
}

// setFileSink points the file logger at w.
func setFileSink(w io.Writer) {
	l := zerolog.New(w).With().Timestamp().Logger()
	fileLogger = &l
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	fileLogger = nil
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// writeLog mirrors a console message into the file log. Callers hold mu.
func writeLog(level zerolog.Level, msg string) {
	if fileLogger == nil {
		return
	}
	fileLogger.WithLevel(level).Msg(strings.TrimSpace(stripAnsiCodes(msg)))
}

// stripAnsiCodes removes ANSI escape codes from a string
func stripAnsiCodes(input string) string {
	return ansiEscape.ReplaceAllString(input, "")
}
