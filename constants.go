package pointeraccel

// Default tuning values, carried over from the reference driver
// configuration.
const (
	// DefaultSensitivity is the neutral base sensitivity.
	DefaultSensitivity = 1.0

	// DefaultAcceleration is a gentle linear gain, equivalent to
	// cl_mouseaccel 0.04 in Quake terms.
	DefaultAcceleration = 0.04

	// DefaultSensitivityCap bounds the curve multiplier.
	DefaultSensitivityCap = 2.2

	// DefaultSpeedCap leaves the measured speed uncapped.
	DefaultSpeedCap = 0.0

	// DefaultOffset accelerates all motion, however slow.
	DefaultOffset = 0.0

	// DefaultExponent is the neutral Classic exponent.
	DefaultExponent = 1.0

	// DefaultMidpoint centers the Motivity sigmoid at speed 1.
	DefaultMidpoint = 1.0

	// DefaultScrollsPerTick matches the hardware baseline of 3 lines per
	// wheel notch, leaving wheel deltas untouched.
	DefaultScrollsPerTick = 3.0
)
