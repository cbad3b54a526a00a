package pointeraccel

import (
	"time"

	"github.com/tphakala/go-pointer-accel/internal/engine"
)

// accelerator adapts the internal engine to the public interface.
type accelerator struct {
	eng *engine.Engine
}

func (a *accelerator) Process(ev MotionEvent, now time.Time, numericOK bool) (MotionEvent, Outcome) {
	x, y, w, out := a.eng.Process(ev.DX, ev.DY, ev.Wheel, now, numericOK)

	var outcome Outcome
	switch out {
	case engine.Processed:
		outcome = OutcomeProcessed
	case engine.Deferred:
		outcome = OutcomeDeferred
	default:
		outcome = OutcomeFaulted
	}
	return MotionEvent{DX: x, DY: y, Wheel: w}, outcome
}

func (a *accelerator) StageTuning(p PendingConfig) {
	a.eng.Stage(engine.Pending{
		Sensitivity:    p.Sensitivity,
		Acceleration:   p.Acceleration,
		SensitivityCap: p.SensitivityCap,
		SpeedCap:       p.SpeedCap,
		Offset:         p.Offset,
		Exponent:       p.Exponent,
		Midpoint:       p.Midpoint,
		ScrollsPerTick: p.ScrollsPerTick,
		Mode:           p.Mode,
	})
}

func (a *accelerator) RequestRefresh() {
	a.eng.RequestRefresh()
}

func (a *accelerator) Tuning() Config {
	tn := a.eng.Tuning()
	return Config{
		Sensitivity:    tn.Sensitivity,
		Acceleration:   tn.Acceleration,
		SensitivityCap: tn.SensitivityCap,
		SpeedCap:       tn.SpeedCap,
		Offset:         tn.Offset,
		Exponent:       tn.Exponent,
		Midpoint:       tn.Midpoint,
		ScrollsPerTick: tn.ScrollsPerTick,
		Mode:           CurveMode(tn.Mode),
	}
}

func (a *accelerator) Metrics() Metrics {
	m := a.eng.Metrics()
	return Metrics{
		Processed:     m.Processed,
		Deferred:      m.Deferred,
		InputFaults:   m.InputFaults,
		OutputFaults:  m.OutputFaults,
		Refreshes:     m.Refreshes,
		ParseFailures: m.ParseFailures,
	}
}

func (a *accelerator) Reset() {
	a.eng.Reset()
}
