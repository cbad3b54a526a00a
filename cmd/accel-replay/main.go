// Command accel-replay runs a recorded motion trace through the
// acceleration engine and writes the accelerated trace, so tunings can be
// compared offline against real captured motion.
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
	"github.com/tphakala/go-pointer-accel/internal/trace"
)

func main() {
	var (
		inPath      = flag.String("in", "", "Input trace CSV (dx,dy,wheel,dt_ms)")
		outPath     = flag.String("out", "", "Output trace CSV (defaults to stdout)")
		profilePath = flag.String("profile", "", "TOML tuning profile (defaults to library defaults)")
		stats       = flag.Bool("stats", true, "Print trace statistics")
	)
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	in, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("Failed to open trace: %v", err)
	}
	defer in.Close()

	tr, err := trace.ReadCSV(in)
	if err != nil {
		log.Fatalf("Failed to parse trace: %v", err)
	}

	cfg := pointeraccel.DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	acc, err := pointeraccel.New(&cfg)
	if err != nil {
		log.Fatalf("Failed to create accelerator: %v", err)
	}
	if *profilePath != "" {
		p, err := profile.Load(*profilePath)
		if err != nil {
			log.Fatalf("Failed to load profile: %v", err)
		}
		// Staged values are adopted on the first replayed sample.
		p.Apply(acc)
	}

	out := replay(acc, tr)

	w := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("Failed to create output: %v", err)
		}
		defer f.Close()
		w = f
	}
	if err := out.WriteCSV(w); err != nil {
		log.Fatalf("Failed to write trace: %v", err)
	}

	if *stats {
		printStats("input", trace.Summarize(tr))
		printStats("output", trace.Summarize(out))
		m := acc.Metrics()
		fmt.Fprintf(os.Stderr, "processed %d, deferred %d, faults %d/%d\n",
			m.Processed, m.Deferred, m.InputFaults, m.OutputFaults)
	}
}

// replay feeds the trace through the accelerator, reconstructing event
// times from the per-sample intervals. Samples without timing advance the
// clock by one millisecond.
func replay(acc pointeraccel.Accelerator, tr trace.Trace) trace.Trace {
	now := time.Unix(0, 0)

	out := make(trace.Trace, 0, len(tr))
	for _, s := range tr {
		dt := s.DT
		if dt <= 0 {
			dt = 1
		}
		now = now.Add(time.Duration(dt * float64(time.Millisecond)))

		ev := pointeraccel.MotionEvent{DX: s.DX, DY: s.DY, Wheel: s.Wheel}
		res, outcome := acc.Process(ev, now, true)
		if outcome != pointeraccel.OutcomeProcessed {
			continue
		}
		out = append(out, trace.Sample{DX: res.DX, DY: res.DY, Wheel: res.Wheel, DT: s.DT})
	}
	return out
}

func printStats(label string, st trace.Stats) {
	fmt.Fprintf(os.Stderr, "%s: %d events, distance %.1f (rms %.2f), speed %.3f ± %.3f counts/ms\n",
		label, st.Events, st.TotalDistance, st.RMSDistance, st.MeanSpeed, st.StdSpeed)
}
