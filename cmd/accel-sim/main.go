// Command accel-sim runs a synthetic motion stream through the
// acceleration engine and reports what came out, for quick tuning
// experiments without real hardware.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	pointeraccel "github.com/tphakala/go-pointer-accel"
	"github.com/tphakala/go-pointer-accel/internal/profile"
)

func main() {
	var (
		mode        = flag.String("mode", "linear", "Curve mode: linear, classic, motivity")
		sensitivity = flag.Float64("sensitivity", pointeraccel.DefaultSensitivity, "Base sensitivity")
		accel       = flag.Float64("accel", pointeraccel.DefaultAcceleration, "Acceleration coefficient")
		offset      = flag.Float64("offset", pointeraccel.DefaultOffset, "Speed offset below which motion is unaccelerated")
		speedCap    = flag.Float64("speed-cap", pointeraccel.DefaultSpeedCap, "Speed cap (0 = uncapped)")
		exponent    = flag.Float64("exponent", pointeraccel.DefaultExponent, "Classic curve exponent")
		midpoint    = flag.Float64("midpoint", pointeraccel.DefaultMidpoint, "Motivity sigmoid midpoint")
		events      = flag.Int("events", defaultEventCount, "Number of synthetic events")
		dx          = flag.Int("dx", defaultDeltaX, "Horizontal delta per event")
		dy          = flag.Int("dy", defaultDeltaY, "Vertical delta per event")
		intervalMs  = flag.Float64("interval", defaultIntervalMs, "Milliseconds between events")
		profilePath = flag.String("profile", "", "Optional TOML tuning profile to apply")
		verbose     = flag.Bool("v", false, "Print every event")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := pointeraccel.Config{
		Sensitivity:    *sensitivity,
		Acceleration:   *accel,
		SensitivityCap: pointeraccel.DefaultSensitivityCap,
		SpeedCap:       *speedCap,
		Offset:         *offset,
		Exponent:       *exponent,
		Midpoint:       *midpoint,
		ScrollsPerTick: pointeraccel.DefaultScrollsPerTick,
		Mode:           parseMode(*mode),
		Logger:         logger,
	}

	acc, err := pointeraccel.New(&cfg)
	if err != nil {
		log.Fatalf("Failed to create accelerator: %v", err)
	}

	if *profilePath != "" {
		p, err := profile.Load(*profilePath)
		if err != nil {
			log.Fatalf("Failed to load profile: %v", err)
		}
		p.Apply(acc)
		fmt.Printf("Staged profile %s (mode %s); adopted after the refresh debounce\n",
			*profilePath, p.Mode)
	}

	now := time.Now()
	interval := time.Duration(*intervalMs * float64(time.Millisecond))

	var sumInX, sumInY, sumOutX, sumOutY int64
	for i := 0; i < *events; i++ {
		now = now.Add(interval)
		ev := pointeraccel.MotionEvent{DX: int32(*dx), DY: int32(*dy)}
		out, outcome := acc.Process(ev, now, true)

		sumInX += int64(ev.DX)
		sumInY += int64(ev.DY)
		if outcome == pointeraccel.OutcomeProcessed {
			sumOutX += int64(out.DX)
			sumOutY += int64(out.DY)
		}
		if *verbose {
			fmt.Printf("event %4d: in=(%d,%d) out=(%d,%d) %s\n",
				i, ev.DX, ev.DY, out.DX, out.DY, outcome)
		}
	}

	m := acc.Metrics()
	fmt.Printf("Simulated %d events at %.1f ms spacing (mode %s):\n", *events, *intervalMs, *mode)
	fmt.Printf("  Input motion:  (%d, %d)\n", sumInX, sumInY)
	fmt.Printf("  Output motion: (%d, %d)\n", sumOutX, sumOutY)
	if sumInX != 0 {
		fmt.Printf("  Effective gain X: %.4f\n", float64(sumOutX)/float64(sumInX))
	}
	fmt.Printf("  Processed: %d  Deferred: %d  Faults: %d/%d\n",
		m.Processed, m.Deferred, m.InputFaults, m.OutputFaults)
}

func parseMode(s string) pointeraccel.CurveMode {
	switch s {
	case "linear":
		return pointeraccel.CurveLinear
	case "classic":
		return pointeraccel.CurveClassic
	case "motivity":
		return pointeraccel.CurveMotivity
	default:
		return pointeraccel.CurveLinear
	}
}
