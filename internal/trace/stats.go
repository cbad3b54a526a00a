package trace

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/tphakala/go-pointer-accel/internal/simdops"
)

// Stats summarizes a motion trace.
type Stats struct {
	// Events is the number of samples.
	Events int

	// TotalDistance is the summed per-event XY magnitude in counts.
	TotalDistance float64

	// RMSDistance is the root mean square of per-event magnitudes, a
	// flick-heaviness indicator for recorded gameplay traces.
	RMSDistance float64

	// MeanSpeed and StdSpeed describe the per-event speed distribution in
	// counts per millisecond. Samples without timing (DT <= 0) are excluded.
	MeanSpeed float64
	StdSpeed  float64
}

// Summarize computes summary statistics for the trace.
func Summarize(tr Trace) Stats {
	st := Stats{Events: len(tr)}
	if len(tr) == 0 {
		return st
	}

	ops := simdops.For[float64]()
	dx, dy, _ := tr.Columns()

	dists := make([]float64, len(tr))
	speeds := make([]float64, 0, len(tr))
	for i := range tr {
		dists[i] = math.Hypot(dx[i], dy[i])
		if tr[i].DT > 0 {
			speeds = append(speeds, dists[i]/tr[i].DT)
		}
	}
	st.TotalDistance = ops.Sum(dists)
	st.RMSDistance = math.Sqrt(ops.DotProductUnsafe(dists, dists) / float64(len(dists)))

	if len(speeds) > 0 {
		st.MeanSpeed, st.StdSpeed = stat.MeanStdDev(speeds, nil)
		if math.IsNaN(st.StdSpeed) {
			st.StdSpeed = 0
		}
	}
	return st
}

// ScaleAxes returns a copy of the trace columns with each axis multiplied
// by s, for normalizing recorded traces before comparison.
func ScaleAxes(tr Trace, s float64) (dx, dy []float64) {
	ops := simdops.For[float64]()
	cx, cy, _ := tr.Columns()
	dx = make([]float64, len(cx))
	dy = make([]float64, len(cy))
	ops.Scale(dx, cx, s)
	ops.Scale(dy, cy, s)
	return dx, dy
}
