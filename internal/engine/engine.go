// Package engine implements the pointer acceleration core: per-event speed
// measurement, curve evaluation, sub-unit carry preservation, deferred-delta
// buffering, and debounced tuning refresh.
//
// The engine processes a single logical stream of events strictly one at a
// time. One Process call fully completes before the next begins, and all
// state is owned by the Engine instance; there is no internal locking
// because there is no concurrent access. Every path completes in bounded
// time without blocking, sleeping, or allocating.
package engine

import (
	"log/slog"
	"math"
	"time"
)

// Outcome classifies the result of processing one event.
type Outcome int

const (
	// Processed means the event ran the full pipeline and the returned
	// deltas are valid accelerated motion.
	Processed Outcome = iota

	// Deferred means the event could not use the floating-point path this
	// call. Its deltas were buffered and merge into the next processed
	// event; the caller must emit no motion for it.
	Deferred

	// Faulted means the computed output failed the final corruption check
	// and was discarded. Dropping one event's motion is preferred over
	// risking a huge erroneous pointer jump.
	Faulted
)

// String returns the outcome's textual name.
func (o Outcome) String() string {
	switch o {
	case Processed:
		return "processed"
	case Deferred:
		return "deferred"
	case Faulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// Metrics is a snapshot of the engine's diagnostic counters.
type Metrics struct {
	// Processed counts events that produced valid output.
	Processed uint64

	// Deferred counts events buffered for a later call, whether because the
	// numeric facility was unavailable or because of a conversion fault.
	Deferred uint64

	// InputFaults counts conversion round-trip failures (a subset of
	// Deferred).
	InputFaults uint64

	// OutputFaults counts final-trap discards.
	OutputFaults uint64

	// Refreshes counts adopted tuning refreshes.
	Refreshes uint64

	// ParseFailures counts tuning fields that failed to parse across all
	// refreshes.
	ParseFailures uint64
}

// Engine transforms raw relative pointer deltas into accelerated integer
// deltas, once per motion event. The zero value is not usable; construct
// with New.
type Engine struct {
	acc   deltaAccumulator
	timer frameTimer
	store paramStore

	carryX     float64
	carryY     float64
	carryWheel float64

	processed    uint64
	deferred     uint64
	inputFaults  uint64
	outputFaults uint64

	log *slog.Logger
}

// New creates an engine with the given initial tuning. A nil logger
// discards the rare trap and refresh diagnostics.
func New(initial Tuning, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		timer: newFrameTimer(),
		store: newParamStore(initial, log),
		log:   log,
	}
}

// Process runs one motion event through the acceleration pipeline.
//
// now must come from a monotonic clock. numericOK reports whether the host
// permits floating-point work for this call; the facility is shared and
// preemptible, so the caller must re-check it for every single event and
// never assume a prior check still holds.
//
// The returned deltas are meaningful only when the outcome is Processed.
// Deferred and Faulted are both non-fatal and self-healing: the next event
// retries normally.
func (e *Engine) Process(dx, dy, dwheel int32, now time.Time, numericOK bool) (ox, oy, owheel int32, outcome Outcome) {
	if !numericOK {
		e.acc.buffer(int64(dx), int64(dy), int64(dwheel))
		e.deferred++
		return 0, 0, 0, Deferred
	}

	// Merge motion deferred from earlier events before any float math, so
	// skipped events are delayed, never lost.
	bx, by, bw := e.acc.drain()
	mx := bx + int64(dx)
	my := by + int64(dy)
	mw := bw + int64(dwheel)

	// Everything from here to the final trap is the protected
	// floating-point region: straight-line, non-suspending, no calls into
	// arbitrarily deep code.
	fx := float64(mx)
	fy := float64(my)
	fw := float64(mw)

	if !convertOK(mx, fx) || !convertOK(my, fy) || !convertOK(mw, fw) {
		// Torn float context. Re-buffer the merged totals and retry on the
		// next event.
		e.acc.buffer(mx, my, mw)
		e.inputFaults++
		e.deferred++
		e.log.Warn("conversion round trip failed, deferring event",
			"dx", mx, "dy", my, "dwheel", mw)
		return 0, 0, 0, Deferred
	}

	ms := e.timer.elapsed(now)
	e.store.maybeApply(now)
	tn := &e.store.live

	speed := math.Sqrt(fx*fx + fy*fy)
	if tn.SpeedCap > 0 && speed >= tn.SpeedCap {
		speed = tn.SpeedCap
	}
	speed /= ms
	speed -= tn.Offset

	m := multiplier(speed, tn)

	// Sensitivity is a final multiplier on top of the curve; the wheel is
	// scaled by its own fixed ratio and never runs through the curve.
	fx *= m * tn.Sensitivity
	fy *= m * tn.Sensitivity
	fw *= tn.ScrollsPerTick / wheelNotchBase

	x, cx := roundWithCarry(fx, e.carryX)
	y, cy := roundWithCarry(fy, e.carryY)
	w, cw := roundWithCarry(fw, e.carryWheel)

	if !outputOK(x, y, w) {
		// Carries stay uncommitted; this event's motion is dropped rather
		// than emitted corrupt.
		e.outputFaults++
		e.log.Error("output corruption trap triggered, dropping event")
		return 0, 0, 0, Faulted
	}

	e.carryX, e.carryY, e.carryWheel = cx, cy, cw
	e.processed++
	return x, y, w, Processed
}

// Stage replaces the staged textual tuning values for the next refresh.
func (e *Engine) Stage(p Pending) {
	e.store.stage(p)
}

// RequestRefresh marks a tuning refresh as pending. The staged values are
// adopted during a later Process call, at most once per debounce interval.
func (e *Engine) RequestRefresh() {
	e.store.requestRefresh()
}

// Tuning returns a copy of the live tuning.
func (e *Engine) Tuning() Tuning {
	return e.store.live
}

// Metrics returns a snapshot of the diagnostic counters.
func (e *Engine) Metrics() Metrics {
	return Metrics{
		Processed:     e.processed,
		Deferred:      e.deferred,
		InputFaults:   e.inputFaults,
		OutputFaults:  e.outputFaults,
		Refreshes:     e.store.applied,
		ParseFailures: e.store.failures,
	}
}

// Carries returns the fractional remainders currently held for each
// channel. Intended for diagnostics and tests.
func (e *Engine) Carries() (x, y, wheel float64) {
	return e.carryX, e.carryY, e.carryWheel
}

// Buffered reports whether motion from deferred events is waiting to merge.
func (e *Engine) Buffered() bool {
	return !e.acc.empty()
}

// Reset clears all per-event state: buffered deltas, carries, and frame
// timing. The live tuning and counters are kept.
func (e *Engine) Reset() {
	e.acc = deltaAccumulator{}
	e.timer.reset()
	e.carryX, e.carryY, e.carryWheel = 0, 0, 0
}
