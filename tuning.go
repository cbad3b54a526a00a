package pointeraccel

// PendingConfig holds textual tuning values staged for the next debounced
// refresh, as supplied by an operator-facing control surface. Fields left
// empty keep their current value; a field that fails to parse keeps its
// previous value without blocking the rest of the refresh.
type PendingConfig struct {
	Sensitivity    string
	Acceleration   string
	SensitivityCap string
	SpeedCap       string
	Offset         string
	Exponent       string
	Midpoint       string
	ScrollsPerTick string

	// Mode accepts curve names ("linear", "classic", "motivity") or the
	// original numeric mode codes.
	Mode string
}

// Metrics is a snapshot of an accelerator's diagnostic counters.
type Metrics struct {
	// Processed counts events that produced valid output.
	Processed uint64

	// Deferred counts events buffered for a later call.
	Deferred uint64

	// InputFaults counts conversion round-trip failures (a subset of
	// Deferred).
	InputFaults uint64

	// OutputFaults counts events discarded by the final corruption trap.
	OutputFaults uint64

	// Refreshes counts adopted tuning refreshes.
	Refreshes uint64

	// ParseFailures counts tuning fields that failed to parse across all
	// refreshes.
	ParseFailures uint64
}
