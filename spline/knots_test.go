package spline

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-basis/internal/testutil"
)

func TestKnotsClamped(t *testing.T) {
	x := testutil.Linspace(0, 1, 5)

	knots, err := Knots(x, 3, 5)
	if err != nil {
		t.Fatalf("Knots: %v", err)
	}

	want := []float64{0, 0, 0, 1.0 / 3, 2.0 / 3, 1, 1, 1}
	testutil.RequireSliceNearlyEqual(t, knots, want, 1e-15)
}

func TestKnotsCount(t *testing.T) {
	x := testutil.DeterministicNoise(3, 2, 200)

	tests := []struct {
		name   string
		order  int
		nFuncs int
		cyclic bool
		want   int
	}{
		{name: "order 1", order: 1, nFuncs: 5, want: 6},
		{name: "order 4", order: 4, nFuncs: 6, want: 10},
		{name: "order equals funcs", order: 4, nFuncs: 4, want: 8},
		{name: "cyclic order 4", order: 4, nFuncs: 8, cyclic: true, want: 15},
		{name: "cyclic order 2", order: 2, nFuncs: 4, cyclic: true, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.cyclic {
				opts = append(opts, WithCyclic())
			}
			knots, err := Knots(x, tt.order, tt.nFuncs, opts...)
			if err != nil {
				t.Fatalf("Knots: %v", err)
			}
			if len(knots) != tt.want {
				t.Fatalf("len(knots) = %d, want %d", len(knots), tt.want)
			}
			for i := 1; i < len(knots); i++ {
				if knots[i] < knots[i-1] {
					t.Fatalf("knots not sorted at %d: %v", i, knots)
				}
			}
			if tt.cyclic {
				return
			}
			// Without the cyclic layout the basis count is len-order.
			if n := len(knots) - tt.order; n != tt.nFuncs {
				t.Fatalf("basis count = %d, want %d", n, tt.nFuncs)
			}
		})
	}
}

func TestKnotsPercentiles(t *testing.T) {
	x := testutil.Linspace(0, 10, 101)

	knots, err := Knots(x, 2, 3, WithPercentiles(0.1, 0.9))
	if err != nil {
		t.Fatalf("Knots: %v", err)
	}

	want := []float64{1, 1, 5, 9, 9}
	testutil.RequireSliceNearlyEqual(t, knots, want, 1e-12)
}

func TestKnotsIgnoresNonFinite(t *testing.T) {
	x := []float64{math.NaN(), 2, math.Inf(1), 4, math.Inf(-1), 3}

	knots, err := Knots(x, 2, 2)
	if err != nil {
		t.Fatalf("Knots: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, knots, []float64{2, 2, 4, 4}, 0)
}

func TestKnotsErrors(t *testing.T) {
	x := testutil.Linspace(0, 1, 10)

	tests := []struct {
		name  string
		x     []float64
		order int
		n     int
		opts  []Option
		want  error
	}{
		{name: "order zero", x: x, order: 0, n: 4, want: ErrConfig},
		{name: "order above funcs", x: x, order: 5, n: 4, want: ErrConfig},
		{name: "low negative", x: x, order: 2, n: 4, opts: []Option{WithPercentiles(-0.1, 1)}, want: ErrConfig},
		{name: "high above one", x: x, order: 2, n: 4, opts: []Option{WithPercentiles(0, 1.5)}, want: ErrConfig},
		{name: "low equals high", x: x, order: 2, n: 4, opts: []Option{WithPercentiles(0.5, 0.5)}, want: ErrConfig},
		{name: "nan percentile", x: x, order: 2, n: 4, opts: []Option{WithPercentiles(math.NaN(), 1)}, want: ErrConfig},
		{name: "no finite samples", x: []float64{math.NaN(), math.Inf(1)}, order: 2, n: 4, want: ErrDomain},
		{name: "empty samples", x: nil, order: 2, n: 4, want: ErrDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Knots(tt.x, tt.order, tt.n, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestKnotsCyclicAllowsOrderAboveFuncs(t *testing.T) {
	// The cyclic layout adds order-1 interior knots.
	x := testutil.Linspace(0, 1, 10)
	if _, err := Knots(x, 4, 3, WithCyclic()); err != nil {
		t.Fatalf("Knots: %v", err)
	}
}

func TestPercentile(t *testing.T) {
	x := []float64{4, math.NaN(), 1, 3, 2}

	tests := []struct {
		p    float64
		want float64
	}{
		{p: 0, want: 1},
		{p: 0.5, want: 2.5},
		{p: 0.25, want: 1.75},
		{p: 1, want: 4},
		{p: -1, want: 1},
		{p: 2, want: 4},
	}

	for _, tt := range tests {
		got, ok := Percentile(x, tt.p)
		if !ok {
			t.Fatalf("p=%v: ok = false", tt.p)
		}
		if math.Abs(got-tt.want) > 1e-15 {
			t.Fatalf("p=%v: got %v, want %v", tt.p, got, tt.want)
		}
	}

	if _, ok := Percentile([]float64{math.NaN()}, 0.5); ok {
		t.Fatal("expected ok = false without finite samples")
	}
}
