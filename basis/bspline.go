package basis

import (
	"fmt"

	"github.com/cwbudde/algo-basis/spline"
	"gonum.org/v1/gonum/mat"
)

// BSpline is a one-dimensional basis of clamped B-splines. Knots are placed
// afresh on every evaluation from the percentiles of the evaluated stream.
type BSpline struct {
	nBasisFuncs int
	order       int
	cfg         config
}

// NewBSpline returns a basis of nBasisFuncs B-splines of the given order
// (polynomial degree + 1). Splines of order k have k-2 continuous derivatives
// at interior knots. order must lie within [1, nBasisFuncs].
func NewBSpline(nBasisFuncs, order int, opts ...Option) (*BSpline, error) {
	if err := validateLeaf(nBasisFuncs, order); err != nil {
		return nil, err
	}
	if order > nBasisFuncs {
		return nil, fmt.Errorf("%w: order %d is larger than n_basis_funcs %d", ErrConfig, order, nBasisFuncs)
	}
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &BSpline{nBasisFuncs: nBasisFuncs, order: order, cfg: cfg}, nil
}

// NumBasisFuncs returns the number of basis functions.
func (b *BSpline) NumBasisFuncs() int { return b.nBasisFuncs }

// NumInputs returns 1.
func (b *BSpline) NumInputs() int { return 1 }

// MemoryLimit returns the model-matrix ceiling in bytes.
func (b *BSpline) MemoryLimit() float64 { return b.cfg.memoryLimit }

// Order returns the spline order.
func (b *BSpline) Order() int { return b.order }

// Mode returns the evaluation mode.
func (b *BSpline) Mode() Mode { return b.cfg.mode }

func (b *BSpline) String() string {
	return fmt.Sprintf("BSpline(%d, order=%d)", b.nBasisFuncs, b.order)
}

// Evaluate returns the [NumBasisFuncs, len(samples)] matrix of basis values.
// Samples outside the knot range fail with [ErrDomain] unless the basis was
// built with [WithOutsideAllowed].
func (b *BSpline) Evaluate(samples []float64) (*mat.Dense, error) {
	knots, err := spline.Knots(samples, b.order, b.nBasisFuncs, spline.WithPercentiles(b.cfg.low, b.cfg.high))
	if err != nil {
		return nil, err
	}

	opts := []spline.Option{spline.WithDerivative(b.cfg.derivative)}
	if b.cfg.outside {
		opts = append(opts, spline.WithOutsideAllowed())
	}
	return spline.Evaluate(samples, knots, b.order, opts...)
}

// Convolve is not implemented and returns [ErrNotImplemented].
func (b *BSpline) Convolve([]float64) (*mat.Dense, error) {
	return convolveNotImplemented(b)
}

func (b *BSpline) modelMatrix(samples [][]float64) (*mat.Dense, error) {
	if b.cfg.mode == ModeConvolve {
		return b.Convolve(samples[0])
	}
	return b.Evaluate(samples[0])
}
