package execute

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	percentRegex = regexp.MustCompile(`^\[download\]\s+(\d+(?:\.\d+)?)%`)
	itemRegex    = regexp.MustCompile(`^\[download\] Downloading (?:item|video) (\d+) of (\d+)`)
)

const (
	destPrefix      = "[download] Destination:"
	alreadyDLSuffix = "has already been downloaded"
	mergerPrefix    = "[Merger]"
	extractPrefix   = "[ExtractAudio]"
)

// progressTracker turns yt-dlp output lines into an overall fraction.
//
// Each item is split into equal stages, one per expected stream (two for
// separate video+audio, one for audio extraction). Reported values never
// decrease and stay within [0, 1].
type progressTracker struct {
	stages int

	item, items int
	stage       int
	stagePct    float64
	last        float64
}

func newProgressTracker(stages int) *progressTracker {
	if stages < 1 {
		stages = 1
	}
	return &progressTracker{
		stages: stages,
		item:   1,
		items:  1,
		stage:  -1,
	}
}

// update consumes one line. It returns the new fraction and true when the
// line moved progress forward.
func (t *progressTracker) update(line string) (float64, bool) {
	line = strings.TrimSpace(line)

	switch {
	case itemRegex.MatchString(line):
		m := itemRegex.FindStringSubmatch(line)
		i, errI := strconv.Atoi(m[1])
		n, errN := strconv.Atoi(m[2])
		if errI != nil || errN != nil || n < 1 || i < 1 || i > n {
			return t.last, false
		}
		t.item, t.items = i, n
		t.stage, t.stagePct = -1, 0

	case strings.HasPrefix(line, destPrefix):
		if t.stage < t.stages-1 {
			t.stage++
		}
		t.stagePct = 0

	case strings.HasSuffix(line, alreadyDLSuffix),
		strings.HasPrefix(line, mergerPrefix),
		strings.HasPrefix(line, extractPrefix):
		t.stage, t.stagePct = t.stages-1, 1

	case percentRegex.MatchString(line):
		m := percentRegex.FindStringSubmatch(line)
		p, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return t.last, false
		}
		if t.stage < 0 {
			t.stage = 0
		}
		t.stagePct = clamp(p / 100)

	default:
		return t.last, false
	}

	return t.advance(t.fraction())
}

// fraction computes overall progress from the current position.
func (t *progressTracker) fraction() float64 {
	stage := max(t.stage, 0)
	itemFrac := (float64(stage) + t.stagePct) / float64(t.stages)
	return clamp((float64(t.item-1) + clamp(itemFrac)) / float64(t.items))
}

// advance records f if it moves forward.
func (t *progressTracker) advance(f float64) (float64, bool) {
	if f <= t.last {
		return t.last, false
	}
	t.last = f
	return f, true
}

// complete marks the run finished.
func (t *progressTracker) complete() (float64, bool) {
	return t.advance(1)
}

func clamp(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
