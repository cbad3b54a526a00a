package pointeraccel

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/tphakala/go-pointer-accel/internal/engine"
)

// MotionEvent is one relative pointer motion report: horizontal, vertical,
// and scroll-wheel deltas in device counts.
type MotionEvent struct {
	DX    int32
	DY    int32
	Wheel int32
}

// Outcome classifies the result of processing one event.
type Outcome int

const (
	// OutcomeProcessed means the returned event holds valid accelerated
	// deltas.
	OutcomeProcessed Outcome = iota

	// OutcomeDeferred means the event was buffered; its motion merges into
	// the next processed event. Emit nothing for it.
	OutcomeDeferred

	// OutcomeFaulted means the computed output failed the corruption check
	// and was discarded. Emit nothing for it.
	OutcomeFaulted
)

// String returns the outcome's textual name.
func (o Outcome) String() string {
	switch o {
	case OutcomeProcessed:
		return "processed"
	case OutcomeDeferred:
		return "deferred"
	case OutcomeFaulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// CurveMode selects the acceleration curve. The numeric values match the
// mode codes exposed by the original driver tooling.
type CurveMode int

const (
	// CurveLinear applies multiplier = speed*acceleration + 1.
	CurveLinear CurveMode = 1 + iota

	// CurveClassic applies multiplier = (speed*acceleration + 1)^exponent.
	CurveClassic

	// CurveMotivity applies the sigmoid
	// multiplier = acceleration / (1 + e^(midpoint-speed)).
	CurveMotivity
)

// Config holds the accelerator tuning.
type Config struct {
	// Sensitivity is the base multiplier applied after the curve.
	// Must be positive.
	Sensitivity float64

	// Acceleration is the curve coefficient. Zero disables acceleration for
	// the linear curve.
	Acceleration float64

	// SensitivityCap clamps the curve multiplier. Zero means uncapped.
	SensitivityCap float64

	// SpeedCap limits the measured speed before the curve is evaluated.
	// Zero means uncapped.
	SpeedCap float64

	// Offset is subtracted from the measured speed; motion below it is
	// unaccelerated.
	Offset float64

	// Exponent is the Classic curve exponent.
	Exponent float64

	// Midpoint is the Motivity sigmoid midpoint.
	Midpoint float64

	// ScrollsPerTick is the number of lines to scroll per wheel notch.
	// The hardware baseline is 3.
	ScrollsPerTick float64

	// Mode selects the acceleration curve.
	Mode CurveMode

	// Logger receives the rare trap and refresh diagnostics. Nil discards.
	Logger *slog.Logger
}

// Common errors returned by the accelerator.
var (
	// ErrInvalidConfig indicates invalid tuning parameters.
	ErrInvalidConfig = errors.New("invalid accelerator configuration")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"sensitivity", c.Sensitivity},
		{"acceleration", c.Acceleration},
		{"sensitivity cap", c.SensitivityCap},
		{"speed cap", c.SpeedCap},
		{"offset", c.Offset},
		{"exponent", c.Exponent},
		{"midpoint", c.Midpoint},
		{"scrolls per tick", c.ScrollsPerTick},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidConfig, v.name)
		}
	}

	if c.Sensitivity <= 0 {
		return fmt.Errorf("%w: sensitivity must be positive", ErrInvalidConfig)
	}

	if c.SensitivityCap < 0 || c.SpeedCap < 0 {
		return fmt.Errorf("%w: caps must be zero (uncapped) or positive", ErrInvalidConfig)
	}

	if c.ScrollsPerTick < 0 {
		return fmt.Errorf("%w: scrolls per tick must not be negative", ErrInvalidConfig)
	}

	switch c.Mode {
	case CurveLinear, CurveClassic, CurveMotivity:
	default:
		return fmt.Errorf("%w: unknown curve mode %d", ErrInvalidConfig, c.Mode)
	}

	return nil
}

// Accelerator is the main interface for pointer acceleration. One instance
// owns one event stream; calls must not overlap.
type Accelerator interface {
	// Process transforms one motion event. now must come from a monotonic
	// clock, and numericOK reports whether floating-point work is permitted
	// for this call; it must be re-checked per event.
	//
	// The returned event is meaningful only when the outcome is
	// OutcomeProcessed.
	Process(ev MotionEvent, now time.Time, numericOK bool) (MotionEvent, Outcome)

	// StageTuning replaces the staged textual tuning values for the next
	// refresh. Empty fields keep their current value.
	StageTuning(p PendingConfig)

	// RequestRefresh marks a tuning refresh as pending. Staged values are
	// adopted during a later Process call, at most once per second.
	RequestRefresh()

	// Tuning returns a snapshot of the live numeric tuning.
	Tuning() Config

	// Metrics returns a snapshot of the diagnostic counters.
	Metrics() Metrics

	// Reset clears buffered deltas, carries, and frame timing.
	Reset()
}

// New creates an accelerator with the specified configuration.
func New(cfg *Config) (Accelerator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &accelerator{
		eng: engine.New(engine.Tuning{
			Sensitivity:    cfg.Sensitivity,
			Acceleration:   cfg.Acceleration,
			SensitivityCap: cfg.SensitivityCap,
			SpeedCap:       cfg.SpeedCap,
			Offset:         cfg.Offset,
			Exponent:       cfg.Exponent,
			Midpoint:       cfg.Midpoint,
			ScrollsPerTick: cfg.ScrollsPerTick,
			Mode:           engine.Mode(cfg.Mode),
		}, cfg.Logger),
	}, nil
}
