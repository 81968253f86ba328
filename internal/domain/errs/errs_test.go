package errs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatError_NamesValueAndAllowedSet(t *testing.T) {
	err := &FormatError{Field: "audio format", Value: "ogg", Allowed: []string{"mp3", "m4a", "wav"}}

	require.Equal(t, `audio format "ogg" is not supported, use mp3, m4a, or wav`, err.Error())
	require.ErrorIs(t, err, ErrFormat)
	require.NotErrorIs(t, err, ErrFatalFailure)
}

func TestExecError_MatchesSentinelForKind(t *testing.T) {
	tests := []struct {
		kind Kind
		want error
	}{
		{KindLaunch, ErrLaunchFailure},
		{KindPartial, ErrPartialFailure},
		{KindFatal, ErrFatalFailure},
		{KindTerminated, ErrTerminated},
		{KindCancelled, ErrCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &ExecError{Kind: tt.kind, Cmd: "yt-dlp"})
			require.ErrorIs(t, err, tt.want)
			require.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestExecError_FatalCarriesExitCode(t *testing.T) {
	err := &ExecError{Kind: KindFatal, Cmd: "yt-dlp", ExitCode: 2}
	require.Equal(t, "yt-dlp exited with status: 2", err.Error())

	var ee *ExecError
	require.ErrorAs(t, fmt.Errorf("x: %w", err), &ee)
	require.Equal(t, 2, ee.ExitCode)
}

func TestExecError_UnwrapsCause(t *testing.T) {
	err := &ExecError{Kind: KindCancelled, Cause: context.Canceled}
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, err, ErrCancelled)
}

func TestKindOf(t *testing.T) {
	require.Equal(t, KindNone, KindOf(nil))
	require.Equal(t, KindFormat, KindOf(&FormatError{Field: "video format", Value: "avi"}))
	require.Equal(t, KindFatal, KindOf(errors.New("something else")))
}

func TestJoinAllowed(t *testing.T) {
	require.Equal(t, "nothing", joinAllowed(nil))
	require.Equal(t, "mp4", joinAllowed([]string{"mp4"}))
	require.Equal(t, "mp4 or webm", joinAllowed([]string{"mp4", "webm"}))
}
