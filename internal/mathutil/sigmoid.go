// Package mathutil provides small numeric kernels shared by the
// acceleration curves.
package mathutil

import "math"

// Sigmoid returns the standard logistic function 1 / (1 + e^-x).
//
// The naive form overflows e^-x to +Inf for large negative x; evaluating
// the branch with a non-positive exponent keeps every intermediate finite,
// so the result degrades gracefully to 0 or 1 at the extremes.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}
