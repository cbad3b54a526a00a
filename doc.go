// Package pointeraccel provides speed-dependent pointer acceleration in
// pure Go.
//
// This library is based on the leetmouse mouse driver by Christopher
// Williams and Klaus Zipfel, implementing the InterAccel/RawAccel family of
// acceleration curves as a standalone, real-time transformation stage for
// input pipelines.
//
// # Features
//
//   - Linear, Classic, and Motivity (sigmoid) acceleration curves
//   - Sub-unit carry preservation so low-speed precision motion is never lost
//   - Frame-time measurement with anti-jitter fallback and pause clamping
//   - Safe degradation when the host's floating-point facility is busy:
//     motion is buffered and merged into the next processed event
//   - Numeric round-trip guards against torn floating-point context
//   - Debounced hot refresh of all tuning parameters from textual values
//   - Allocation-free per-event processing suitable for hot input paths
//
// # Quick Start
//
// For a fixed tuning:
//
//	acc, err := pointeraccel.NewLinear(0.04)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, outcome := acc.Process(pointeraccel.MotionEvent{DX: dx, DY: dy}, time.Now(), true)
//	if outcome == pointeraccel.OutcomeProcessed {
//	    emit(out)
//	}
//
// For live tuning from an operator control surface, stage textual values
// and request a refresh; the engine adopts them at most once per second:
//
//	acc.StageTuning(pointeraccel.PendingConfig{Acceleration: "0.08"})
//	acc.RequestRefresh()
//
// # Curve Modes
//
//   - [CurveLinear]: multiplier = speed*acceleration + 1. Predictable gain,
//     the usual starting point.
//   - [CurveClassic]: multiplier = (speed*acceleration + 1)^exponent. The
//     classic InterAccel shape.
//   - [CurveMotivity]: multiplier = acceleration / (1 + e^(midpoint-speed)).
//     A sigmoid with bounded gain, popularized by RawAccel.
//
// Motion below the configured offset is never accelerated, and the scroll
// wheel is scaled by a fixed ratio rather than run through the curve.
//
// # Real-Time Contract
//
// Process performs no allocation, never blocks, and completes in bounded
// time. The caller supplies a monotonic timestamp and a per-call signal for
// whether floating-point work is currently permitted; availability must be
// re-checked for every event because the facility is shared and
// preemptible.
package pointeraccel
