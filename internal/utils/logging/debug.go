package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"ytcli/internal/domain/consts"

	"github.com/rs/zerolog"
)

// E prints an error with its call site.
func E(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := withCaller(consts.RedError, format, args...)
	fmt.Fprint(ErrConsole, msg)
	writeLog(zerolog.ErrorLevel, msg)
	return msg
}

// W prints a warning.
func W(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := plain(consts.YellowWarning, format, args...)
	fmt.Fprint(ErrConsole, msg)
	writeLog(zerolog.WarnLevel, msg)
	return msg
}

// S prints a success message.
func S(format string, args ...any) string {
	return emit(Console, zerolog.InfoLevel, consts.GreenSuccess, format, args...)
}

// I prints an info message.
func I(format string, args ...any) string {
	return emit(Console, zerolog.InfoLevel, consts.BlueInfo, format, args...)
}

// P prints a message without a tag.
func P(format string, args ...any) string {
	return emit(Console, zerolog.InfoLevel, "", format, args...)
}

// D prints a debug message with its call site when l <= Level.
func D(l int, format string, args ...any) string {
	if l > Level || l < 1 {
		return ""
	}

	mu.Lock()
	defer mu.Unlock()

	msg := withCaller(consts.YellowDebug, format, args...)
	fmt.Fprint(Console, msg)
	writeLog(zerolog.DebugLevel, msg)
	return msg
}

func emit(w io.Writer, level zerolog.Level, tag, format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := plain(tag, format, args...)
	fmt.Fprint(w, msg)
	writeLog(level, msg)
	return msg
}

func plain(tag, format string, args ...any) string {
	var b strings.Builder
	b.Grow(len(tag) + len(format) + 1 + (len(args) * 32))
	b.WriteString(tag)

	// Write formatted message
	if len(args) != 0 {
		fmt.Fprintf(&b, format, args...)
	} else {
		b.WriteString(format)
	}

	b.WriteString("\n")
	return b.String()
}

// withCaller appends "[Function: f - File: x.go : Line: n]" for the caller of E or D.
func withCaller(tag, format string, args ...any) string {
	pc, file, line, _ := runtime.Caller(2)
	file = filepath.Base(file)
	funcName := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = filepath.Base(fn.Name())
	}

	var b strings.Builder
	b.Grow(len(tag) + len(format) + 64 + (len(args) * 32))
	b.WriteString(tag)

	if len(args) != 0 {
		fmt.Fprintf(&b, format, args...)
	} else {
		b.WriteString(format)
	}

	b.WriteString(" [")
	b.WriteString(consts.ColorBlue)
	b.WriteString("Function: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(funcName)
	b.WriteString(" - ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("File: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(file)
	b.WriteString(" : ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("Line: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(strconv.Itoa(line))
	b.WriteString("]\n")

	return b.String()
}
