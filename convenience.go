package pointeraccel

// DefaultConfig returns the reference driver's default tuning: linear
// acceleration with neutral sensitivity.
func DefaultConfig() Config {
	return Config{
		Sensitivity:    DefaultSensitivity,
		Acceleration:   DefaultAcceleration,
		SensitivityCap: DefaultSensitivityCap,
		SpeedCap:       DefaultSpeedCap,
		Offset:         DefaultOffset,
		Exponent:       DefaultExponent,
		Midpoint:       DefaultMidpoint,
		ScrollsPerTick: DefaultScrollsPerTick,
		Mode:           CurveLinear,
	}
}

// NewLinear creates an accelerator using the linear curve with the given
// acceleration coefficient and defaults for everything else.
func NewLinear(acceleration float64) (Accelerator, error) {
	cfg := DefaultConfig()
	cfg.Acceleration = acceleration
	cfg.Mode = CurveLinear
	return New(&cfg)
}

// NewClassic creates an accelerator using the classic curve
// (speed*acceleration + 1)^exponent.
func NewClassic(acceleration, exponent float64) (Accelerator, error) {
	cfg := DefaultConfig()
	cfg.Acceleration = acceleration
	cfg.Exponent = exponent
	cfg.Mode = CurveClassic
	return New(&cfg)
}

// NewMotivity creates an accelerator using the sigmoid curve with the given
// gain and midpoint.
func NewMotivity(acceleration, midpoint float64) (Accelerator, error) {
	cfg := DefaultConfig()
	cfg.Acceleration = acceleration
	cfg.Midpoint = midpoint
	cfg.Mode = CurveMotivity
	return New(&cfg)
}
