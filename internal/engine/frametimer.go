package engine

import "time"

// frameTimer measures the elapsed time between processed events in
// milliseconds, with outlier handling on both ends.
type frameTimer struct {
	last   time.Time
	lastMs float64
}

func newFrameTimer() frameTimer {
	return frameTimer{lastMs: fallbackFrameMs}
}

// elapsed returns the frame time for an event observed at now. It has no
// failure mode and always returns a positive value in (0, maxFrameMs]:
//
//   - First call, or a reading below timer resolution: substitute the last
//     known-good value instead of a near-zero frame time that would blow up
//     the speed division.
//   - Reading above maxFrameMs: clamp, limiting the boost after a pause.
//
// The post-clamp value becomes the new known-good fallback.
func (t *frameTimer) elapsed(now time.Time) float64 {
	ms := t.lastMs
	if !t.last.IsZero() {
		raw := float64(now.Sub(t.last)) / float64(time.Millisecond)
		if raw >= minFrameMs {
			ms = raw
		}
	}
	if ms > maxFrameMs {
		ms = maxFrameMs
	}
	t.last = now
	t.lastMs = ms
	return ms
}

// reset returns the timer to its initial state.
func (t *frameTimer) reset() {
	t.last = time.Time{}
	t.lastMs = fallbackFrameMs
}
