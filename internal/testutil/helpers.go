// Package testutil provides reusable test helper functions for pointer
// acceleration tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for numeric comparisons.
const (
	DefaultTolerance = 1e-9
	CurveTolerance   = 1e-6
)

// AssertCarryBounded verifies the carry invariant |carry| < 1 on all three
// channels.
func AssertCarryBounded(t *testing.T, x, y, wheel float64) bool {
	t.Helper()
	ok := true
	for _, c := range []struct {
		name  string
		value float64
	}{{"x", x}, {"y", y}, {"wheel", wheel}} {
		if !assert.Less(t, math.Abs(c.value), 1.0,
			"carry_%s=%f violates |carry| < 1", c.name, c.value) {
			ok = false
		}
	}
	return ok
}

// AssertNoNaNOrInf verifies that no values are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, values ...float64) bool {
	t.Helper()
	for i, v := range values {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "values[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "values[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all values are within [minVal, maxVal].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float64) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}
