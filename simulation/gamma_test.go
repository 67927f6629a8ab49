package simulation

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-basis/internal/testutil"
	"gonum.org/v1/gonum/floats"
)

// excitQuantile solves 1 - exp(-2x)(1+2x) = p, the quantile of a gamma with
// shape 2 and rate 2.
func excitQuantile(p float64) float64 {
	lo, hi := 0.0, 50.0
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if 1-math.Exp(-2*mid)*(1+2*mid) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func TestDifferenceOfGammasDefaults(t *testing.T) {
	const ws = 100
	got, err := DifferenceOfGammas(ws)
	if err != nil {
		t.Fatalf("DifferenceOfGammas: %v", err)
	}
	if len(got) != ws {
		t.Fatalf("len = %d, want %d", len(got), ws)
	}

	// The excitatory gamma is wider: its 0.99 quantile (~3.32) exceeds the
	// inhibitory one (ln(100)/2 ~ 2.30).
	xmax := excitQuantile(0.99)
	want := make([]float64, ws)
	for i := range want {
		x := xmax * float64(i) / (ws - 1)
		want[i] = 4*x*math.Exp(-2*x) - 2*math.Exp(-2*x)
	}
	floats.Scale(1/floats.Norm(want, 2), want)

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-7)
	if n := floats.Norm(got, 2); math.Abs(n-1) > 1e-12 {
		t.Fatalf("norm = %v, want 1", n)
	}
	if got[0] >= 0 || floats.Max(got) <= 0 {
		t.Fatalf("want inhibitory onset and excitatory lobe, got first=%v max=%v", got[0], floats.Max(got))
	}
}

func TestDifferenceOfGammasOptions(t *testing.T) {
	a, err := DifferenceOfGammas(50, WithExcitation(3, 1), WithInhibition(2, 4), WithUpperPercentile(0.9))
	if err != nil {
		t.Fatalf("DifferenceOfGammas: %v", err)
	}
	b, _ := DifferenceOfGammas(50)
	if d, _ := testutil.MaxAbsDiff(a, b); d < 1e-3 {
		t.Fatalf("options had no effect (max diff %v)", d)
	}
	testutil.RequireFinite(t, a)
}

func TestDifferenceOfGammasErrors(t *testing.T) {
	tests := []struct {
		name string
		ws   int
		opts []GammaOption
	}{
		{name: "window one", ws: 1},
		{name: "percentile one", ws: 10, opts: []GammaOption{WithUpperPercentile(1)}},
		{name: "percentile zero", ws: 10, opts: []GammaOption{WithUpperPercentile(0)}},
		{name: "negative shape", ws: 10, opts: []GammaOption{WithExcitation(-1, 2)}},
		{name: "zero rate", ws: 10, opts: []GammaOption{WithInhibition(1, 0)}},
		{name: "NaN shape", ws: 10, opts: []GammaOption{WithInhibition(math.NaN(), 1)}},
		{name: "identical gammas", ws: 10, opts: []GammaOption{WithExcitation(1, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DifferenceOfGammas(tt.ws, tt.opts...); !errors.Is(err, ErrInvalidFilter) {
				t.Fatalf("err = %v, want ErrInvalidFilter", err)
			}
		})
	}
}
