package engine

import (
	"math"

	"github.com/tphakala/go-pointer-accel/internal/mathutil"
)

// Mode selects the acceleration curve. The numeric values match the mode
// codes the original tooling exposes, so they survive a textual refresh
// unchanged.
type Mode int

const (
	// ModeLinear applies multiplier = speed*acceleration + 1.
	ModeLinear Mode = 1 + iota

	// ModeClassic applies multiplier = (speed*acceleration + 1)^exponent.
	ModeClassic

	// ModeMotivity applies the sigmoid
	// multiplier = acceleration / (1 + e^(midpoint-speed)).
	ModeMotivity
)

// String returns the mode's textual name.
func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeClassic:
		return "classic"
	case ModeMotivity:
		return "motivity"
	default:
		return "none"
	}
}

// multiplier evaluates the active curve for an offset-adjusted speed.
// Motion at or below the offset threshold is unaccelerated, and so is any
// unrecognized mode. A nonzero SensitivityCap clamps the result.
func multiplier(speed float64, tn *Tuning) float64 {
	if speed <= 0 {
		return 1
	}

	var m float64
	switch tn.Mode {
	case ModeLinear:
		m = speed*tn.Acceleration + 1

	case ModeClassic:
		m = math.Pow(speed*tn.Acceleration+1, tn.Exponent)

	case ModeMotivity:
		// Algebraically a/(1+e^(mid-s)); the logistic form stays finite
		// for any midpoint/speed combination.
		m = tn.Acceleration * mathutil.Sigmoid(speed-tn.Midpoint)

	default:
		return 1
	}

	if tn.SensitivityCap > 0 && m > tn.SensitivityCap {
		m = tn.SensitivityCap
	}
	return m
}
