package engine

// Numeric integrity checks for the floating-point path.
//
// The floating-point unit is a shared, preemptible resource in the host
// environment; a torn context switch shows up as silently wrong conversion
// results, not as any catchable error. The only reliable detector is a
// round-trip check. Both functions below must stay straight-line and free
// of calls into deeper code so they are safe to run inside the protected
// floating-point region.

// convertOK reports whether converting v to float and back reproduces the
// original value bit for bit.
func convertOK(v int64, f float64) bool {
	return int64(f) == v
}

// outputOK reports whether the final integer deltas are free of the known
// corruption signature. A healthy event cannot legitimately produce the
// minimum representable delta on any channel.
func outputOK(x, y, wheel int32) bool {
	return x != corruptOutput && y != corruptOutput && wheel != corruptOutput
}
