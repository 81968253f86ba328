// Package execute runs yt-dlp for download requests and classifies the result.
package execute

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"time"

	"ytcli/internal/command/builder"
	"ytcli/internal/domain/command"
	"ytcli/internal/domain/errs"
	"ytcli/internal/interfaces"
	"ytcli/internal/models"
	"ytcli/internal/utils/logging"
)

const (
	stderrTailLines  = 20
	defaultWaitDelay = 5 * time.Second
)

// YtDlp launches yt-dlp once per request.
type YtDlp struct {
	// Path to the yt-dlp binary, resolved through PATH when bare.
	Path string

	// ExtraArgs are placed before the request arguments.
	ExtraArgs []string

	// Stdout and Stderr receive the raw child output when set.
	Stdout io.Writer
	Stderr io.Writer

	// LogCallback receives each non-empty output line.
	LogCallback func(stream, line string)

	// WaitDelay bounds how long Wait blocks on open pipes after the child is killed.
	WaitDelay time.Duration

	newCmd func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// New returns an executor for the yt-dlp binary on PATH.
func New() *YtDlp {
	return &YtDlp{
		Path:      command.YTDLP,
		WaitDelay: defaultWaitDelay,
	}
}

var _ interfaces.ProgressDownloader = (*YtDlp)(nil)

// Download runs the request and returns its classified outcome.
func (y *YtDlp) Download(ctx context.Context, req models.Request) error {
	return y.run(ctx, req, nil)
}

// DownloadWithProgress runs the request, reporting progress through onProgress.
func (y *YtDlp) DownloadWithProgress(ctx context.Context, req models.Request, onProgress interfaces.ProgressFunc) error {
	return y.run(ctx, req, onProgress)
}

func (y *YtDlp) run(ctx context.Context, req models.Request, onProgress interfaces.ProgressFunc) error {
	if ctx == nil {
		ctx = context.Background()
	}

	reqArgs, err := builder.BuildArgs(req)
	if err != nil {
		return err
	}

	name := y.Path
	if name == "" {
		name = command.YTDLP
	}

	args := make([]string, 0, len(y.ExtraArgs)+len(reqArgs)+1)
	args = append(args, y.ExtraArgs...)
	args = append(args, command.Newline)
	args = append(args, reqArgs...)

	newCmd := y.newCmd
	if newCmd == nil {
		newCmd = exec.CommandContext
	}
	cmd := newCmd(ctx, name, args...)
	cmd.WaitDelay = y.WaitDelay

	stages := 2
	if req.AudioOnly {
		stages = 1
	}
	tracker := newProgressTracker(stages)
	tail := &tailBuffer{max: stderrTailLines}

	onLine := func(stream, line string) {
		if y.LogCallback != nil {
			y.LogCallback(stream, line)
		}
		if stream == "stderr" {
			tail.add(line)
			return
		}
		if onProgress != nil {
			if f, ok := tracker.update(line); ok {
				onProgress(f)
			}
		}
	}

	stdout := &streamWriter{stream: "stdout", callback: onLine, passthrough: y.Stdout}
	stderr := &streamWriter{stream: "stderr", callback: onLine, passthrough: y.Stderr}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	logging.D(1, "Executing download command: %s", cmd.String())

	if err := cmd.Start(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &errs.ExecError{Kind: errs.KindCancelled, Cmd: name, Args: args, ExitCode: -1, Cause: ctxErr}
		}
		return &errs.ExecError{Kind: errs.KindLaunch, Cmd: name, Args: args, ExitCode: -1, Cause: err}
	}

	waitErr := cmd.Wait()
	stdout.Flush()
	stderr.Flush()

	var state exitState
	if cmd.ProcessState != nil {
		state = cmd.ProcessState
	}

	if err := classify(ctx.Err(), state, waitErr); err != nil {
		err.Cmd = name
		err.Args = args
		err.Stderr = tail.String()
		return err
	}

	if onProgress != nil {
		if f, ok := tracker.complete(); ok {
			onProgress(f)
		}
	}
	return nil
}

// exitState is the part of *os.ProcessState used for classification.
type exitState interface {
	ExitCode() int
	String() string
}

// classify maps a finished run to its outcome, nil on success.
func classify(ctxErr error, state exitState, waitErr error) *errs.ExecError {
	if ctxErr != nil {
		return &errs.ExecError{Kind: errs.KindCancelled, ExitCode: exitCodeOf(state), Cause: ctxErr}
	}

	if state == nil {
		if waitErr == nil {
			return nil
		}
		return &errs.ExecError{Kind: errs.KindFatal, ExitCode: -1, Cause: waitErr}
	}

	code := state.ExitCode()
	switch code {
	case 0:
		if waitErr != nil && !errors.Is(waitErr, exec.ErrWaitDelay) {
			return &errs.ExecError{Kind: errs.KindFatal, ExitCode: 0, Status: state.String(), Cause: waitErr}
		}
		if waitErr != nil {
			logging.W("yt-dlp exited cleanly but left output pipes open: %v", waitErr)
		}
		return nil
	case -1:
		return &errs.ExecError{Kind: errs.KindTerminated, ExitCode: -1, Status: state.String(), Cause: waitErr}
	case 1:
		return &errs.ExecError{Kind: errs.KindPartial, ExitCode: 1, Status: state.String(), Cause: waitErr}
	default:
		return &errs.ExecError{Kind: errs.KindFatal, ExitCode: code, Status: state.String(), Cause: waitErr}
	}
}

func exitCodeOf(state exitState) int {
	if state == nil {
		return -1
	}
	return state.ExitCode()
}
