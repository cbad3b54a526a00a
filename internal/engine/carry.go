package engine

import "math"

// roundWithCarry rounds delta plus the remainder carried from the previous
// event to the nearest integer, returning the integer delta and the new
// remainder. The remainder always satisfies |carry| <= 0.5, so sub-unit
// motion accumulates across events instead of being discarded: repeated
// 0.4-unit moves eventually emit a whole unit.
func roundWithCarry(delta, carryIn float64) (int32, float64) {
	total := delta + carryIn
	rounded := math.Round(total)
	return int32(rounded), total - rounded
}
