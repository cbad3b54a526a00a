package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_ReturnsBoundOps(t *testing.T) {
	ops32 := For[float32]()
	require.NotNil(t, ops32.Scale)
	require.NotNil(t, ops32.Sum)
	require.NotNil(t, ops32.DotProductUnsafe)

	ops64 := For[float64]()
	require.NotNil(t, ops64.Scale)
	require.NotNil(t, ops64.Sum)
	require.NotNil(t, ops64.DotProductUnsafe)
}

func TestOps_MatchScalarReference(t *testing.T) {
	testOpsParity[float32](t, 1e-5)
	testOpsParity[float64](t, 1e-12)
}

func testOpsParity[F Float](t *testing.T, tol float64) {
	t.Helper()
	ops := For[F]()

	a := make([]F, 101)
	b := make([]F, 101)
	for i := range a {
		a[i] = F(i%13) - 6
		b[i] = F(i%7) * 0.5
	}

	// Sum
	var wantSum F
	for _, v := range a {
		wantSum += v
	}
	assert.InDelta(t, float64(wantSum), float64(ops.Sum(a)), tol)

	// Scale
	dst := make([]F, len(a))
	ops.Scale(dst, a, 2.5)
	for i := range a {
		assert.InDelta(t, float64(a[i])*2.5, float64(dst[i]), tol)
	}

	// Dot product
	var wantDot F
	for i := range a {
		wantDot += a[i] * b[i]
	}
	assert.InDelta(t, float64(wantDot), float64(ops.DotProductUnsafe(a, b)), tol)
}
