package engine

import (
	"math"
	"time"
)

// Frame timing constants
const (
	// fallbackFrameMs seeds the last known-good frame time before any event
	// has been timed. One millisecond matches a 1000 Hz polling interval.
	fallbackFrameMs = 1.0

	// minFrameMs is the smallest frame time accepted as a real measurement.
	// USB reports sometimes arrive bunched beyond timer resolution; readings
	// below this are timer noise and fall back to the last known-good value.
	minFrameMs = 1.0

	// maxFrameMs caps the frame time after a pause, which in turn caps the
	// acceleration boost granted to the first event after the pointer was
	// idle. InterAccel used 200 here; RawAccel rounds to 100, and so do we.
	maxFrameMs = 100.0
)

// refreshInterval is the minimum spacing between applied tuning refreshes.
// Refreshing on every event would put string parsing on the hot path and
// let rapid parameter toggling be used as a timing side channel.
const refreshInterval = time.Second

// wheelNotchBase is the hardware baseline of lines per scroll-wheel notch.
// ScrollsPerTick is expressed relative to this, so the default of 3 scrolls
// per tick leaves wheel deltas untouched.
const wheelNotchBase = 3.0

// corruptOutput is the known signature of a torn floating-point context:
// computed deltas collapse to the minimum representable int32 when cast
// back to integers.
const corruptOutput = math.MinInt32
