package spline

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-basis/internal/testutil"
	"gonum.org/v1/gonum/mat"
)

func TestEvaluateCyclicShapeAndPartition(t *testing.T) {
	x := testutil.Linspace(0, 1, 100)

	for _, tc := range []struct{ n, order int }{
		{n: 8, order: 4},
		{n: 4, order: 2},
		{n: 6, order: 3},
		{n: 12, order: 5},
	} {
		m, err := EvaluateCyclic(x, tc.order, tc.n)
		if err != nil {
			t.Fatalf("n=%d order=%d: %v", tc.n, tc.order, err)
		}
		testutil.RequireShape(t, m, tc.n, len(x))
		for j, s := range testutil.ColumnSums(m) {
			if math.Abs(s-1) > 1e-12 {
				t.Fatalf("n=%d order=%d: column %d sums to %v, want 1", tc.n, tc.order, j, s)
			}
		}
	}
}

func TestEvaluateCyclicSeam(t *testing.T) {
	x := testutil.Linspace(0, 1, 100)

	for der := 0; der <= 2; der++ {
		m, err := EvaluateCyclic(x, 4, 8, WithDerivative(der))
		if err != nil {
			t.Fatalf("der=%d: %v", der, err)
		}
		testutil.RequireSliceNearlyEqual(t, mat.Col(nil, 0, m), mat.Col(nil, 99, m), 1e-9)
	}
}

func TestEvaluateCyclicValuesAtOrigin(t *testing.T) {
	x := testutil.Linspace(0, 1, 100)

	m, err := EvaluateCyclic(x, 4, 8)
	if err != nil {
		t.Fatalf("EvaluateCyclic: %v", err)
	}

	want := []float64{1.0 / 6, 2.0 / 3, 1.0 / 6, 0, 0, 0, 0, 0}
	testutil.RequireSliceNearlyEqual(t, mat.Col(nil, 0, m), want, 1e-12)
}

func TestEvaluateCyclicPeriodicShift(t *testing.T) {
	// 80 steps per period; one knot spacing (1/8) is 10 steps.
	x := testutil.Linspace(0, 1, 81)
	const n, step = 8, 10

	m, err := EvaluateCyclic(x, 4, n)
	if err != nil {
		t.Fatalf("EvaluateCyclic: %v", err)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < 80; j++ {
			got := m.At((i+1)%n, (j+step)%80)
			want := m.At(i, j)
			if math.Abs(got-want) > 1e-12 {
				t.Fatalf("N_%d(x_%d) = %v, want N_%d(x_%d) = %v", (i+1)%n, (j+step)%80, got, i, j, want)
			}
		}
	}
}

func TestEvaluateCyclicLeavesInputUntouched(t *testing.T) {
	x := testutil.DeterministicNoise(11, 5, 64)
	orig := append([]float64(nil), x...)

	if _, err := EvaluateCyclic(x, 3, 7); err != nil {
		t.Fatalf("EvaluateCyclic: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, x, orig, 0)
}

func TestEvaluateCyclicPercentiles(t *testing.T) {
	x := testutil.Linspace(0, 1, 81)

	m, err := EvaluateCyclic(x, 4, 8, WithPercentiles(0.1, 0.9))
	if err != nil {
		t.Fatalf("EvaluateCyclic: %v", err)
	}
	testutil.RequireShape(t, m, 8, 81)
	testutil.RequireMatrixFinite(t, m)

	sums := testutil.ColumnSums(m)
	for j := 8; j <= 72; j++ {
		if math.Abs(sums[j]-1) > 1e-12 {
			t.Fatalf("column %d sums to %v, want 1", j, sums[j])
		}
	}
}

func TestEvaluateCyclicErrors(t *testing.T) {
	x := testutil.Linspace(0, 1, 50)

	tests := []struct {
		name  string
		x     []float64
		order int
		n     int
		want  error
	}{
		{name: "order one", x: x, order: 1, n: 6, want: ErrConfig},
		{name: "below order+2", x: x, order: 4, n: 5, want: ErrConfig},
		{name: "below 2*(order-1)", x: x, order: 5, n: 7, want: ErrConfig},
		{name: "constant samples", x: []float64{3, 3, 3}, order: 2, n: 4, want: ErrDomain},
		{name: "no finite samples", x: []float64{math.NaN()}, order: 2, n: 4, want: ErrDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateCyclic(tt.x, tt.order, tt.n)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
