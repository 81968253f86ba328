package execute

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"ytcli/internal/domain/errs"
	"ytcli/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

// shExecutor runs script through sh in place of yt-dlp. The request
// arguments land in the script's positional parameters.
func shExecutor(t *testing.T, script string) *YtDlp {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	return &YtDlp{
		Path:      "sh",
		ExtraArgs: []string{"-c", script, "yt-dlp"},
		WaitDelay: time.Second,
	}
}

type lineRecorder struct {
	mu    sync.Mutex
	lines map[string][]string
}

func (r *lineRecorder) record(stream, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lines == nil {
		r.lines = make(map[string][]string)
	}
	r.lines[stream] = append(r.lines[stream], line)
}

func (r *lineRecorder) get(stream string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines[stream]...)
}

func TestDownloadPassesArguments(t *testing.T) {
	y := shExecutor(t, `printf '%s\n' "$@"`)
	rec := &lineRecorder{}
	y.LogCallback = rec.record

	req := models.NewRequest(testURL)
	req.Output = "clip"
	require.NoError(t, y.Download(context.Background(), req))

	got := rec.get("stdout")
	require.NotEmpty(t, got)
	assert.Equal(t, "--newline", got[0])
	assert.Equal(t, testURL, got[1])
	assert.Contains(t, got, "clip.%(ext)s")
}

func TestDownloadWithProgress(t *testing.T) {
	y := shExecutor(t, `
printf '[download] Destination: clip.mp3\n'
printf '[download]  25.0%% of 1.00MiB\n'
printf '[download]  75.0%% of 1.00MiB\n'
`)
	req := models.NewRequest(testURL)
	req.AudioOnly = true

	var got []float64
	err := y.DownloadWithProgress(context.Background(), req, func(f float64) {
		got = append(got, f)
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.75, 1}, got)
}

func TestDownloadOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		sentinel error
		kind     errs.Kind
		exitCode int
	}{
		{
			name:     "partial failure",
			script:   "exit 1",
			sentinel: errs.ErrPartialFailure,
			kind:     errs.KindPartial,
			exitCode: 1,
		},
		{
			name:     "fatal failure",
			script:   "echo 'ERROR: Unsupported URL' >&2; exit 2",
			sentinel: errs.ErrFatalFailure,
			kind:     errs.KindFatal,
			exitCode: 2,
		},
		{
			name:     "terminated by signal",
			script:   "kill -TERM $$",
			sentinel: errs.ErrTerminated,
			kind:     errs.KindTerminated,
			exitCode: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := shExecutor(t, tt.script)
			err := y.Download(context.Background(), models.NewRequest(testURL))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var execErr *errs.ExecError
			require.True(t, errors.As(err, &execErr))
			assert.Equal(t, tt.kind, execErr.Kind)
			assert.Equal(t, tt.exitCode, execErr.ExitCode)
			assert.Equal(t, "sh", execErr.Cmd)
			assert.Contains(t, execErr.Args, testURL)
		})
	}
}

func TestDownloadFatalKeepsStderrTail(t *testing.T) {
	y := shExecutor(t, "echo 'ERROR: Unsupported URL' >&2; exit 2")
	err := y.Download(context.Background(), models.NewRequest(testURL))

	var execErr *errs.ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "ERROR: Unsupported URL", execErr.Stderr)
	assert.Equal(t, "yt-dlp exited with status: 2", err.Error())
}

func TestDownloadCancelled(t *testing.T) {
	y := shExecutor(t, "exec sleep 5")
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := y.Download(ctx, models.NewRequest(testURL))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCancelled)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestDownloadAlreadyCancelled(t *testing.T) {
	y := shExecutor(t, "exit 0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := y.Download(ctx, models.NewRequest(testURL))
	assert.ErrorIs(t, err, errs.ErrCancelled)
	assert.Equal(t, errs.KindCancelled, errs.KindOf(err))
}

func TestDownloadLaunchFailure(t *testing.T) {
	y := New()
	y.Path = "/nonexistent/bin/yt-dlp"

	err := y.Download(context.Background(), models.NewRequest(testURL))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrLaunchFailure)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to start /nonexistent/bin/yt-dlp"))
}

func TestDownloadFormatErrorSkipsLaunch(t *testing.T) {
	y := New()
	y.newCmd = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		t.Fatal("process launched for an invalid request")
		return nil
	}

	req := models.NewRequest(testURL)
	req.AudioOnly = true
	req.FileType = "ogg"

	err := y.Download(context.Background(), req)
	assert.ErrorIs(t, err, errs.ErrFormat)
	assert.EqualError(t, err, `audio format "ogg" is not supported, use mp3, m4a, or wav`)
}

type fakeState struct {
	code   int
	status string
}

func (f fakeState) ExitCode() int  { return f.code }
func (f fakeState) String() string { return f.status }

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		ctxErr  error
		state   exitState
		waitErr error
		want    errs.Kind
	}{
		{name: "success", state: fakeState{code: 0, status: "exit status 0"}, want: errs.KindNone},
		{name: "success with open pipes", state: fakeState{code: 0}, waitErr: exec.ErrWaitDelay, want: errs.KindNone},
		{name: "partial", state: fakeState{code: 1, status: "exit status 1"}, want: errs.KindPartial},
		{name: "fatal", state: fakeState{code: 101, status: "exit status 101"}, want: errs.KindFatal},
		{name: "signal", state: fakeState{code: -1, status: "signal: killed"}, want: errs.KindTerminated},
		{name: "cancelled wins over signal", ctxErr: context.Canceled, state: fakeState{code: -1}, want: errs.KindCancelled},
		{name: "no process state", waitErr: errors.New("wait failed"), want: errs.KindFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.ctxErr, tt.state, tt.waitErr)
			if tt.want == errs.KindNone {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}
