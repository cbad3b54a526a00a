package engine

// deltaAccumulator buffers raw deltas from events the engine could not
// process. Sums are int64, double the width of a single event's deltas, so
// realistic motion magnitudes cannot wrap even across a long degraded
// stretch.
type deltaAccumulator struct {
	x     int64
	y     int64
	wheel int64
}

// buffer adds the given deltas to the running sums.
func (a *deltaAccumulator) buffer(dx, dy, dwheel int64) {
	a.x += dx
	a.y += dy
	a.wheel += dwheel
}

// drain returns the buffered sums and resets them to zero. The engine
// drains at the start of every successfully processed event, before any
// acceleration math, so motion from skipped events is delayed, never lost.
func (a *deltaAccumulator) drain() (x, y, wheel int64) {
	x, y, wheel = a.x, a.y, a.wheel
	a.x, a.y, a.wheel = 0, 0, 0
	return x, y, wheel
}

// empty reports whether any motion is buffered.
func (a *deltaAccumulator) empty() bool {
	return a.x == 0 && a.y == 0 && a.wheel == 0
}
