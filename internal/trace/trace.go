// Package trace handles recorded pointer motion traces: a tabular CSV
// format, column extraction for batch analysis, and summary statistics.
package trace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrBadTrace indicates a malformed trace file.
var ErrBadTrace = errors.New("malformed motion trace")

// header is the canonical CSV column order.
var header = []string{"dx", "dy", "wheel", "dt_ms"}

// Sample is one motion event in a recorded trace.
type Sample struct {
	DX    int32
	DY    int32
	Wheel int32

	// DT is the time since the previous sample in milliseconds.
	DT float64
}

// Trace is an ordered sequence of motion samples.
type Trace []Sample

// ReadCSV parses a trace from r. The first record may be the canonical
// header; it is skipped when present.
func ReadCSV(r io.Reader) (Trace, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTrace, err)
	}

	tr := make(Trace, 0, len(records))
	for i, rec := range records {
		if i == 0 && rec[0] == header[0] {
			continue
		}

		var s Sample
		if s.DX, err = parseDelta(rec[0]); err == nil {
			if s.DY, err = parseDelta(rec[1]); err == nil {
				s.Wheel, err = parseDelta(rec[2])
			}
		}
		if err == nil {
			s.DT, err = strconv.ParseFloat(rec[3], 64)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrBadTrace, i+1, err)
		}
		tr = append(tr, s)
	}
	return tr, nil
}

// WriteCSV writes the trace to w with the canonical header.
func (tr Trace) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range tr {
		rec := []string{
			strconv.FormatInt(int64(s.DX), 10),
			strconv.FormatInt(int64(s.DY), 10),
			strconv.FormatInt(int64(s.Wheel), 10),
			strconv.FormatFloat(s.DT, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Columns extracts per-axis float64 columns for batch analysis.
func (tr Trace) Columns() (dx, dy, wheel []float64) {
	dx = make([]float64, len(tr))
	dy = make([]float64, len(tr))
	wheel = make([]float64, len(tr))
	for i, s := range tr {
		dx[i] = float64(s.DX)
		dy[i] = float64(s.DY)
		wheel[i] = float64(s.Wheel)
	}
	return dx, dy, wheel
}

func parseDelta(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
}
