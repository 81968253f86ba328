package execute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feed(t *progressTracker, lines ...string) []float64 {
	var got []float64
	for _, l := range lines {
		if f, ok := t.update(l); ok {
			got = append(got, f)
		}
	}
	return got
}

func TestProgressTrackerSingleStage(t *testing.T) {
	tr := newProgressTracker(1)
	got := feed(tr,
		"[youtube] abc: Downloading webpage",
		"[download] Destination: clip.webm",
		"[download]  12.5% of 10.00MiB at 1.00MiB/s ETA 00:08",
		"[download]  50.0% of 10.00MiB at 1.00MiB/s ETA 00:05",
		"[download] 100% of 10.00MiB in 00:00:10",
	)
	assert.Equal(t, []float64{0.125, 0.5, 1}, got)
}

func TestProgressTrackerTwoStages(t *testing.T) {
	tr := newProgressTracker(2)
	got := feed(tr,
		"[download] Destination: clip.f137.mp4",
		"[download]  50.0% of 10.00MiB",
		"[download] 100% of 10.00MiB",
		"[download] Destination: clip.f140.m4a",
		"[download]  50.0% of 1.00MiB",
		"[Merger] Merging formats into \"clip.mp4\"",
	)
	assert.Equal(t, []float64{0.25, 0.5, 0.75, 1}, got)
}

func TestProgressTrackerPlaylist(t *testing.T) {
	tr := newProgressTracker(1)
	got := feed(tr,
		"[download] Downloading item 2 of 4",
		"[download] Destination: two.mp3",
		"[download]  50.0% of 3.00MiB",
		"[download] Downloading item 3 of 4",
		"[download] three.mp3 has already been downloaded",
	)
	assert.Equal(t, []float64{0.25, 0.375, 0.5, 0.75}, got)
}

func TestProgressTrackerNeverDecreases(t *testing.T) {
	tr := newProgressTracker(1)
	got := feed(tr,
		"[download]  60.0% of 3.00MiB",
		"[download]  40.0% of 3.00MiB",
		"[download]  250.0% of 3.00MiB",
	)
	assert.Equal(t, []float64{0.6, 1}, got)

	for _, f := range got {
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.0)
	}
}

func TestProgressTrackerIgnoresNoise(t *testing.T) {
	tr := newProgressTracker(1)
	got := feed(tr,
		"",
		"WARNING: something odd",
		"[info] abc: Downloading 1 format(s): 251",
		"[download] Downloading item 5 of 3",
	)
	assert.Empty(t, got)

	f, ok := tr.complete()
	assert.True(t, ok)
	assert.Equal(t, 1.0, f)

	_, ok = tr.complete()
	assert.False(t, ok)
}
