package basis

import (
	"fmt"

	"github.com/cwbudde/algo-basis/spline"
	"gonum.org/v1/gonum/mat"
)

// CyclicBSpline is a one-dimensional basis of periodic B-splines. The period
// is the knot range of the evaluated stream, so values at both ends of the
// range coincide.
type CyclicBSpline struct {
	nBasisFuncs int
	order       int
	cfg         config
}

// NewCyclicBSpline returns a basis of nBasisFuncs periodic B-splines of the
// given order. It requires order >= 2, nBasisFuncs >= order+2 and
// nBasisFuncs >= 2*(order-1).
func NewCyclicBSpline(nBasisFuncs, order int, opts ...Option) (*CyclicBSpline, error) {
	if err := validateLeaf(nBasisFuncs, order); err != nil {
		return nil, err
	}
	if err := spline.ValidateCyclic(nBasisFuncs, order); err != nil {
		return nil, err
	}
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return &CyclicBSpline{nBasisFuncs: nBasisFuncs, order: order, cfg: cfg}, nil
}

// NumBasisFuncs returns the number of basis functions.
func (c *CyclicBSpline) NumBasisFuncs() int { return c.nBasisFuncs }

// NumInputs returns 1.
func (c *CyclicBSpline) NumInputs() int { return 1 }

// MemoryLimit returns the model-matrix ceiling in bytes.
func (c *CyclicBSpline) MemoryLimit() float64 { return c.cfg.memoryLimit }

// Order returns the spline order.
func (c *CyclicBSpline) Order() int { return c.order }

// Mode returns the evaluation mode.
func (c *CyclicBSpline) Mode() Mode { return c.cfg.mode }

func (c *CyclicBSpline) String() string {
	return fmt.Sprintf("CyclicBSpline(%d, order=%d)", c.nBasisFuncs, c.order)
}

// Evaluate returns the [NumBasisFuncs, len(samples)] matrix of periodic basis
// values. samples is not modified.
func (c *CyclicBSpline) Evaluate(samples []float64) (*mat.Dense, error) {
	return spline.EvaluateCyclic(samples, c.order, c.nBasisFuncs,
		spline.WithPercentiles(c.cfg.low, c.cfg.high),
		spline.WithDerivative(c.cfg.derivative),
	)
}

// Convolve is not implemented and returns [ErrNotImplemented].
func (c *CyclicBSpline) Convolve([]float64) (*mat.Dense, error) {
	return convolveNotImplemented(c)
}

func (c *CyclicBSpline) modelMatrix(samples [][]float64) (*mat.Dense, error) {
	if c.cfg.mode == ModeConvolve {
		return c.Convolve(samples[0])
	}
	return c.Evaluate(samples[0])
}
