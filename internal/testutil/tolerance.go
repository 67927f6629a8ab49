package testutil

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireShape fails t unless m has r rows and c columns.
func RequireShape(t *testing.T, m mat.Matrix, r, c int) {
	t.Helper()
	gr, gc := m.Dims()
	if gr != r || gc != c {
		t.Fatalf("shape = [%d,%d], want [%d,%d]", gr, gc, r, c)
	}
}

// RequireMatrixNearlyEqual fails t if got and want differ in shape or if any
// element pair exceeds eps (absolute tolerance).
func RequireMatrixNearlyEqual(t *testing.T, got, want mat.Matrix, eps float64) {
	t.Helper()
	r, c := want.Dims()
	RequireShape(t, got, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			diff := math.Abs(got.At(i, j) - want.At(i, j))
			if diff > eps {
				t.Fatalf("element [%d,%d]: got %v, want %v (diff %v > eps %v)",
					i, j, got.At(i, j), want.At(i, j), diff, eps)
			}
		}
	}
}

// RequireMatrixFinite fails t if any element of m is NaN or Inf.
func RequireMatrixFinite(t *testing.T, m mat.Matrix) {
	t.Helper()
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("element [%d,%d]: non-finite value %v", i, j, v)
			}
		}
	}
}

// ColumnSums returns the sum over rows of every column of m.
func ColumnSums(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[j] += m.At(i, j)
		}
	}
	return out
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
