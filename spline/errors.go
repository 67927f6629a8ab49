package spline

import (
	"errors"
	"fmt"
)

// Errors returned by knot generation and evaluation.
var (
	// ErrConfig reports invalid hyperparameters: orders, basis counts,
	// percentile bounds or knot vectors that cannot define a spline family.
	ErrConfig = errors.New("spline: invalid configuration")

	// ErrDomain reports samples that cannot be evaluated: values outside the
	// knot support when that is not allowed, or no finite samples at all.
	ErrDomain = errors.New("spline: sample outside valid domain")
)

func validateOrder(order int) error {
	if order < 1 {
		return fmt.Errorf("%w: order must be >= 1: %d", ErrConfig, order)
	}
	return nil
}

func validatePercentiles(low, high float64) error {
	if !(low >= 0 && low <= 1) {
		return fmt.Errorf("%w: low percentile must be in [0,1]: %g", ErrConfig, low)
	}
	if !(high >= 0 && high <= 1) {
		return fmt.Errorf("%w: high percentile must be in [0,1]: %g", ErrConfig, high)
	}
	if low >= high {
		return fmt.Errorf("%w: low percentile %g must be below high percentile %g", ErrConfig, low, high)
	}
	return nil
}

// ValidateCyclic checks the constraints a periodic basis of the given size
// and order must satisfy.
func ValidateCyclic(nBasisFuncs, order int) error {
	if order < 2 {
		return fmt.Errorf("%w: cyclic order must be >= 2: %d", ErrConfig, order)
	}
	if nBasisFuncs < order+2 {
		return fmt.Errorf("%w: cyclic basis needs n_basis_funcs >= order+2 (%d < %d)",
			ErrConfig, nBasisFuncs, order+2)
	}
	if nBasisFuncs < 2*(order-1) {
		return fmt.Errorf("%w: cyclic basis needs n_basis_funcs >= 2*(order-1) (%d < %d)",
			ErrConfig, nBasisFuncs, 2*(order-1))
	}
	return nil
}
