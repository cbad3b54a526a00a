package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrace() Trace {
	return Trace{
		{DX: 3, DY: 4, Wheel: 0, DT: 1},
		{DX: -6, DY: 8, Wheel: 1, DT: 2},
		{DX: 0, DY: 0, Wheel: -1, DT: 0.5},
	}
}

func TestTrace_CSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTrace().WriteCSV(&buf))

	got, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleTrace(), got)
}

func TestReadCSV_AcceptsHeaderlessInput(t *testing.T) {
	in := "3,4,0,1\n-6,8,1,2\n"
	got, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, Sample{DX: 3, DY: 4, Wheel: 0, DT: 1}, got[0])
}

func TestReadCSV_RejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"non-numeric delta": "dx,dy,wheel,dt_ms\nx,0,0,1\n",
		"bad field count":   "1,2,3\n",
		"delta overflow":    "99999999999,0,0,1\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(in))
			assert.ErrorIs(t, err, ErrBadTrace)
		})
	}
}

func TestTrace_Columns(t *testing.T) {
	dx, dy, wheel := sampleTrace().Columns()
	assert.Equal(t, []float64{3, -6, 0}, dx)
	assert.Equal(t, []float64{4, 8, 0}, dy)
	assert.Equal(t, []float64{0, 1, -1}, wheel)
}

func TestSummarize(t *testing.T) {
	st := Summarize(sampleTrace())
	assert.Equal(t, 3, st.Events)

	// Magnitudes are 5, 10, 0.
	assert.InDelta(t, 15.0, st.TotalDistance, 1e-9)

	// Speeds: 5/1, 10/2, 0/0.5 -> mean 10/3.
	assert.InDelta(t, 10.0/3.0, st.MeanSpeed, 1e-9)
	assert.Greater(t, st.StdSpeed, 0.0)
	assert.InDelta(t, 6.45497224, st.RMSDistance, 1e-6) // sqrt(125/3)
}

func TestSummarize_Empty(t *testing.T) {
	st := Summarize(nil)
	assert.Zero(t, st.Events)
	assert.Zero(t, st.TotalDistance)
	assert.Zero(t, st.MeanSpeed)
	assert.Zero(t, st.StdSpeed)
}

func TestScaleAxes(t *testing.T) {
	dx, dy := ScaleAxes(sampleTrace(), 0.5)
	assert.Equal(t, []float64{1.5, -3, 0}, dx)
	assert.Equal(t, []float64{2, 4, 0}, dy)
}
