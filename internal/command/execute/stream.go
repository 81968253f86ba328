package execute

import (
	"bytes"
	"io"
	"strings"
)

// streamWriter splits child output into lines for a callback. yt-dlp redraws
// progress with carriage returns, so both \r and \n end a line.
type streamWriter struct {
	stream      string
	callback    func(stream string, line string)
	passthrough io.Writer
	pending     []byte
}

func (w *streamWriter) Write(p []byte) (n int, err error) {
	if w.passthrough != nil {
		if _, err := w.passthrough.Write(p); err != nil {
			return 0, err
		}
	}

	w.pending = append(w.pending, p...)

	for {
		idx := bytes.IndexAny(w.pending, "\r\n")
		if idx < 0 {
			break
		}

		line := string(w.pending[:idx])

		// Consume CRLF as one delimiter.
		consume := 1
		if w.pending[idx] == '\r' && idx+1 < len(w.pending) && w.pending[idx+1] == '\n' {
			consume = 2
		}
		w.pending = w.pending[idx+consume:]

		w.emit(line)
	}

	return len(p), nil
}

// Flush emits a trailing line that had no delimiter.
func (w *streamWriter) Flush() {
	if len(w.pending) == 0 {
		return
	}
	line := string(w.pending)
	w.pending = nil
	w.emit(line)
}

func (w *streamWriter) emit(line string) {
	if w.callback == nil {
		return
	}
	if trimmed := strings.TrimSpace(line); trimmed != "" {
		w.callback(w.stream, trimmed)
	}
}

// tailBuffer keeps the last max lines written to it.
type tailBuffer struct {
	max   int
	lines []string
}

func (t *tailBuffer) add(line string) {
	t.lines = append(t.lines, line)
	if len(t.lines) > t.max {
		t.lines = t.lines[len(t.lines)-t.max:]
	}
}

func (t *tailBuffer) String() string {
	return strings.Join(t.lines, "\n")
}
