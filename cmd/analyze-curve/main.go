// Command analyze-curve sweeps each acceleration curve over a speed range
// and prints the multiplier response with summary statistics, for comparing
// tunings before loading them into a live pipeline.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	pointeraccel "github.com/tphakala/go-pointer-accel"
)

const (
	// Sweep parameters
	defaultMaxSpeed = 50.0 // counts per millisecond, covers violent flicks
	defaultSteps    = 26

	// Probe geometry: a horizontal move at a fixed 1 ms frame time, so the
	// probe delta equals the probed speed.
	probeFrameMs = 1.0
)

func main() {
	var (
		accel    = flag.Float64("accel", pointeraccel.DefaultAcceleration, "Acceleration coefficient")
		exponent = flag.Float64("exponent", 2.0, "Classic curve exponent")
		midpoint = flag.Float64("midpoint", pointeraccel.DefaultMidpoint, "Motivity sigmoid midpoint")
		sensCap  = flag.Float64("sens-cap", 0, "Sensitivity cap (0 = uncapped)")
		maxSpeed = flag.Float64("max-speed", defaultMaxSpeed, "Top of the speed sweep, counts/ms")
		steps    = flag.Int("steps", defaultSteps, "Number of sweep points")
	)
	flag.Parse()

	speeds := make([]float64, *steps)
	floats.Span(speeds, 0, *maxSpeed)

	modes := []pointeraccel.CurveMode{
		pointeraccel.CurveLinear,
		pointeraccel.CurveClassic,
		pointeraccel.CurveMotivity,
	}
	names := []string{"linear", "classic", "motivity"}

	fmt.Printf("=== Curve Response (accel=%g exponent=%g midpoint=%g) ===\n\n",
		*accel, *exponent, *midpoint)
	fmt.Printf("%10s", "speed")
	for _, n := range names {
		fmt.Printf("  %10s", n)
	}
	fmt.Println()

	responses := make([][]float64, len(modes))
	for i, mode := range modes {
		cfg := pointeraccel.Config{
			Sensitivity:    1.0,
			Acceleration:   *accel,
			SensitivityCap: *sensCap,
			Exponent:       *exponent,
			Midpoint:       *midpoint,
			ScrollsPerTick: pointeraccel.DefaultScrollsPerTick,
			Mode:           mode,
		}
		r, err := sweep(&cfg, speeds)
		if err != nil {
			log.Fatalf("sweep %s: %v", names[i], err)
		}
		responses[i] = r
	}

	for j, s := range speeds {
		fmt.Printf("%10.2f", s)
		for i := range modes {
			fmt.Printf("  %10.4f", responses[i][j])
		}
		fmt.Println()
	}

	fmt.Println()
	for i, n := range names {
		mean, std := stat.MeanStdDev(responses[i], nil)
		fmt.Printf("%-8s  mean multiplier %.4f  std %.4f  max %.4f\n",
			n, mean, std, floats.Max(responses[i]))
	}
}

// sweep measures the effective multiplier at each speed by probing a fresh
// accelerator with a single horizontal event per point. The measured value
// is output/input after carry-free rounding, so large probe deltas keep
// quantization negligible.
func sweep(cfg *pointeraccel.Config, speeds []float64) ([]float64, error) {
	out := make([]float64, len(speeds))
	for i, s := range speeds {
		acc, err := pointeraccel.New(cfg)
		if err != nil {
			return nil, err
		}

		// Scale the probe so rounding error stays small at low speeds.
		delta := int32(s * probeScale)
		if delta == 0 {
			out[i] = 1.0
			continue
		}

		now := time.Unix(0, 0)
		// First event establishes the frame timer baseline.
		acc.Process(pointeraccel.MotionEvent{}, now, true)
		now = now.Add(time.Duration(probeScale * probeFrameMs * float64(time.Millisecond)))

		ev := pointeraccel.MotionEvent{DX: delta}
		res, outcome := acc.Process(ev, now, true)
		if outcome != pointeraccel.OutcomeProcessed {
			return nil, fmt.Errorf("probe not processed: %s", outcome)
		}
		out[i] = float64(res.DX) / float64(delta)
	}
	return out, nil
}

// probeScale stretches both the probe delta and the frame time so the ratio
// (the speed) is preserved while quantization error shrinks.
const probeScale = 100.0
