package spline

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Knots derives a clamped knot vector for nBasisFuncs basis functions of the
// given order from the distribution of x.
//
// The vector holds order-1 copies of the low percentile, an evenly spaced run
// of interior+2 points from the low to the high percentile, and order-1 copies
// of the high percentile, where interior = nBasisFuncs-order (plus order-1 with
// [WithCyclic]). Non-finite samples are ignored.
func Knots(x []float64, order, nBasisFuncs int, opts ...Option) ([]float64, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)

	interior := nBasisFuncs - order
	if cfg.cyclic {
		interior += order - 1
	}
	if interior < 0 {
		return nil, fmt.Errorf("%w: order %d is larger than n_basis_funcs %d", ErrConfig, order, nBasisFuncs)
	}

	if err := validatePercentiles(cfg.low, cfg.high); err != nil {
		return nil, err
	}

	sorted := finiteSorted(x)
	if len(sorted) == 0 {
		return nil, fmt.Errorf("%w: no finite samples to place knots", ErrDomain)
	}
	mn := quantileSorted(sorted, cfg.low)
	mx := quantileSorted(sorted, cfg.high)

	reps := order - 1
	knots := make([]float64, 2*reps+interior+2)
	for i := 0; i < reps; i++ {
		knots[i] = mn
		knots[len(knots)-1-i] = mx
	}
	floats.Span(knots[reps:len(knots)-reps], mn, mx)
	// Span can miss mx by an ulp; the clamped end must match exactly.
	knots[len(knots)-reps-1] = mx

	return knots, nil
}
