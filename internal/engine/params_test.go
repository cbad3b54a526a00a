package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestStore() paramStore {
	return newParamStore(Tuning{
		Sensitivity:    1.0,
		Acceleration:   0.04,
		ScrollsPerTick: 3.0,
		Mode:           ModeLinear,
	}, discardLogger())
}

func TestParamStore_NoRefreshWithoutRequest(t *testing.T) {
	s := newTestStore()
	s.stage(Pending{Sensitivity: "2.0"})
	s.maybeApply(time.Unix(10, 0))
	assert.Equal(t, 1.0, s.live.Sensitivity, "staged values need an explicit refresh request")
}

func TestParamStore_AppliesAllFields(t *testing.T) {
	s := newTestStore()
	s.stage(Pending{
		Sensitivity:    "1.5",
		Acceleration:   "0.1",
		SensitivityCap: "2.2",
		SpeedCap:       "80",
		Offset:         "0.5",
		Exponent:       "1.3",
		Midpoint:       "4",
		ScrollsPerTick: "6",
		Mode:           "motivity",
	})
	s.requestRefresh()
	s.maybeApply(time.Unix(10, 0))

	assert.Equal(t, Tuning{
		Sensitivity:    1.5,
		Acceleration:   0.1,
		SensitivityCap: 2.2,
		SpeedCap:       80,
		Offset:         0.5,
		Exponent:       1.3,
		Midpoint:       4,
		ScrollsPerTick: 6,
		Mode:           ModeMotivity,
	}, s.live)
	assert.Equal(t, uint64(1), s.applied)
	assert.Zero(t, s.failures)
}

func TestParamStore_Debounce(t *testing.T) {
	s := newTestStore()
	base := time.Unix(100, 0)

	s.stage(Pending{Sensitivity: "2"})
	s.requestRefresh()
	s.maybeApply(base)
	assert.Equal(t, 2.0, s.live.Sensitivity)

	// A second request inside the window is deferred, not lost.
	s.stage(Pending{Sensitivity: "3"})
	s.requestRefresh()
	s.maybeApply(base.Add(500 * time.Millisecond))
	assert.Equal(t, 2.0, s.live.Sensitivity, "refresh inside debounce window must not apply")
	assert.Equal(t, uint64(1), s.applied)

	// After the window it goes through.
	s.maybeApply(base.Add(1100 * time.Millisecond))
	assert.Equal(t, 3.0, s.live.Sensitivity)
	assert.Equal(t, uint64(2), s.applied)
}

func TestParamStore_FailSoftPerField(t *testing.T) {
	s := newTestStore()
	s.stage(Pending{
		Sensitivity:  "not-a-number",
		Acceleration: "0.2",
		Offset:       "NaN",
		Midpoint:     "+Inf",
	})
	s.requestRefresh()
	s.maybeApply(time.Unix(10, 0))

	// Bad fields keep their previous values, good fields still refresh.
	assert.Equal(t, 1.0, s.live.Sensitivity)
	assert.Equal(t, 0.2, s.live.Acceleration)
	assert.Equal(t, 0.0, s.live.Offset)
	assert.Equal(t, 0.0, s.live.Midpoint)
	assert.Equal(t, uint64(3), s.failures, "each failed field is counted")
	assert.Equal(t, uint64(1), s.applied)
}

// TestParamStore_RejectsOutOfDomainValues checks that a refresh cannot
// adopt a tuning the construction path would reject: non-positive
// sensitivity and negative caps keep their previous values and count as
// failures, while fields without a lower bound still refresh freely.
func TestParamStore_RejectsOutOfDomainValues(t *testing.T) {
	s := newTestStore()
	s.stage(Pending{
		Sensitivity:    "-2",
		SpeedCap:       "-10",
		ScrollsPerTick: "-1",
		Acceleration:   "-0.04", // negative gain is a legal deceleration tuning
		Offset:         "-3",    // offsets may be negative
	})
	s.requestRefresh()
	s.maybeApply(time.Unix(10, 0))

	assert.Equal(t, 1.0, s.live.Sensitivity)
	assert.Equal(t, 0.0, s.live.SpeedCap)
	assert.Equal(t, 3.0, s.live.ScrollsPerTick)
	assert.Equal(t, -0.04, s.live.Acceleration)
	assert.Equal(t, -3.0, s.live.Offset)
	assert.Equal(t, uint64(3), s.failures)
	assert.Equal(t, uint64(1), s.applied)
}

func TestParseField_DomainChecks(t *testing.T) {
	v := 1.0
	failed := 0

	parseField(&v, "0", &failed, positive)
	assert.Equal(t, 1.0, v, "zero fails the positive check")

	parseField(&v, "2", &failed, positive)
	assert.Equal(t, 2.0, v)

	parseField(&v, "-1", &failed, nonNegative)
	assert.Equal(t, 2.0, v, "negative fails the non-negative check")

	parseField(&v, "0", &failed, nonNegative)
	assert.Equal(t, 0.0, v, "zero passes the non-negative check")

	assert.Equal(t, 2, failed)
}

func TestParamStore_EmptyFieldsKeepValues(t *testing.T) {
	s := newTestStore()
	s.stage(Pending{Acceleration: "0.5"})
	s.requestRefresh()
	s.maybeApply(time.Unix(10, 0))

	assert.Equal(t, 0.5, s.live.Acceleration)
	assert.Equal(t, 1.0, s.live.Sensitivity)
	assert.Equal(t, ModeLinear, s.live.Mode)
	assert.Zero(t, s.failures, "empty fields are not parse failures")
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		raw      string
		want     Mode
		wantFail bool
	}{
		{"linear", ModeLinear, false},
		{"Classic", ModeClassic, false},
		{"MOTIVITY", ModeMotivity, false},
		{"2", ModeClassic, false},
		{"7", Mode(7), false}, // out-of-range codes disable acceleration at the curve
		{"bogus", ModeLinear, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			mode := ModeLinear
			failed := 0
			parseMode(&mode, tt.raw, &failed)
			assert.Equal(t, tt.want, mode)
			assert.Equal(t, tt.wantFail, failed == 1)
		})
	}
}
