package spline

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// EvaluateCyclic evaluates nBasisFuncs periodic B-splines of the given order
// at x. The period is the knot range chosen by the percentile options
// (by default [min(x), max(x)]), and the result has nBasisFuncs rows.
//
// The knot vector is made strictly increasing and prefixed with its last
// order-1 interior knots shifted one period to the left. Samples above the
// wrap threshold are evaluated a second time shifted left by one period and
// the two contributions are summed, which folds the tail back onto the head.
// x is never modified.
func EvaluateCyclic(x []float64, order, nBasisFuncs int, opts ...Option) (*mat.Dense, error) {
	if err := ValidateCyclic(nBasisFuncs, order); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)

	knotOpts := []Option{WithPercentiles(cfg.low, cfg.high), WithCyclic()}
	knots, err := Knots(x, order, nBasisFuncs, knotOpts...)
	if err != nil {
		return nil, err
	}
	knots = slices.Compact(knots)

	nk := len(knots)
	if nk != nBasisFuncs+1 {
		return nil, fmt.Errorf("%w: sample range [%g, %g] cannot hold %d cyclic basis functions",
			ErrDomain, knots[0], knots[nk-1], nBasisFuncs)
	}

	xc := knots[nk-2*order+1]
	period := knots[nk-1] - knots[0]

	ext := make([]float64, 0, nk+order-1)
	for _, k := range knots[nk-order : nk-1] {
		ext = append(ext, k-period)
	}
	ext = append(ext, knots...)

	evalOpts := []Option{WithOutsideAllowed(), WithDerivative(cfg.derivative)}
	out, err := Evaluate(x, ext, order, evalOpts...)
	if err != nil {
		return nil, err
	}

	var far []int
	var shifted []float64
	for j, v := range x {
		if v > xc {
			far = append(far, j)
			shifted = append(shifted, v-period)
		}
	}
	if len(far) == 0 {
		return out, nil
	}

	tail, err := Evaluate(shifted, ext, order, evalOpts...)
	if err != nil {
		return nil, err
	}

	rows, _ := out.Dims()
	for r := 0; r < rows; r++ {
		dst := out.RawRowView(r)
		src := tail.RawRowView(r)
		for q, j := range far {
			dst[j] += src[q]
		}
	}

	return out, nil
}
