// Package errs holds the error taxonomy for download requests.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies how a download attempt ended.
type Kind int

const (
	KindNone Kind = iota
	KindFormat
	KindLaunch
	KindPartial
	KindFatal
	KindTerminated
	KindCancelled
)

// String returns the short outcome name stored in history.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case KindFormat:
		return "format"
	case KindLaunch:
		return "launch"
	case KindPartial:
		return "partial"
	case KindFatal:
		return "fatal"
	case KindTerminated:
		return "terminated"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Sentinels, matched through errors.Is against *FormatError and *ExecError.
var (
	ErrFormat         = errors.New("unsupported format")
	ErrLaunchFailure  = errors.New("yt-dlp could not be started")
	ErrPartialFailure = errors.New("yt-dlp exited with status 1 (partial failure)")
	ErrFatalFailure   = errors.New("yt-dlp failed")
	ErrTerminated     = errors.New("yt-dlp process terminated by signal")
	ErrCancelled      = errors.New("download cancelled")
)

// sentinelFor maps a kind to its sentinel.
func sentinelFor(k Kind) error {
	switch k {
	case KindFormat:
		return ErrFormat
	case KindLaunch:
		return ErrLaunchFailure
	case KindPartial:
		return ErrPartialFailure
	case KindFatal:
		return ErrFatalFailure
	case KindTerminated:
		return ErrTerminated
	case KindCancelled:
		return ErrCancelled
	}
	return nil
}

// FormatError reports a file type or quality outside the allowed set.
//
// It is returned before any process is launched.
type FormatError struct {
	Field   string // "audio format", "video format" or "quality"
	Value   string
	Allowed []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %q is not supported, use %s", e.Field, e.Value, joinAllowed(e.Allowed))
}

// Is lets errors.Is(err, ErrFormat) match.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// ExecError describes a failed yt-dlp run.
type ExecError struct {
	Kind     Kind
	Cmd      string
	Args     []string
	ExitCode int    // -1 when the process never produced one
	Status   string // process state description, e.g. "signal: killed"
	Stderr   string // trailing stderr lines
	Cause    error
}

func (e *ExecError) Error() string {
	switch e.Kind {
	case KindLaunch:
		return fmt.Sprintf("failed to start %s: %v", e.Cmd, e.Cause)
	case KindPartial:
		return "yt-dlp exited with status 1 (partial failure): some items may have failed while others succeeded"
	case KindFatal:
		return fmt.Sprintf("yt-dlp exited with status: %d", e.ExitCode)
	case KindTerminated:
		if e.Status != "" {
			return fmt.Sprintf("yt-dlp process terminated by signal (%s)", e.Status)
		}
		return "yt-dlp process terminated by signal"
	case KindCancelled:
		if e.Cause != nil {
			return fmt.Sprintf("download cancelled: %v", e.Cause)
		}
		return "download cancelled"
	}
	return fmt.Sprintf("yt-dlp command failed: %s", e.CommandLine())
}

// Unwrap exposes the underlying cause (OS error, context error, exit error).
func (e *ExecError) Unwrap() error { return e.Cause }

// Is matches the sentinel for the error's kind.
func (e *ExecError) Is(target error) bool {
	s := sentinelFor(e.Kind)
	return s != nil && target == s
}

// CommandLine renders the command for logs.
func (e *ExecError) CommandLine() string {
	return strings.TrimSpace(e.Cmd + " " + strings.Join(e.Args, " "))
}

// KindOf returns the outcome kind of err, KindNone for nil.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var fe *FormatError
	if errors.As(err, &fe) {
		return KindFormat
	}
	var ee *ExecError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	for _, k := range []Kind{KindLaunch, KindPartial, KindFatal, KindTerminated, KindCancelled} {
		if errors.Is(err, sentinelFor(k)) {
			return k
		}
	}
	return KindFatal
}

// joinAllowed renders "a, b, or c".
func joinAllowed(vals []string) string {
	switch len(vals) {
	case 0:
		return "nothing"
	case 1:
		return vals[0]
	case 2:
		return vals[0] + " or " + vals[1]
	}
	return strings.Join(vals[:len(vals)-1], ", ") + ", or " + vals[len(vals)-1]
}
