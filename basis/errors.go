package basis

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-basis/spline"
)

// Errors returned while building bases and model matrices.
var (
	// ErrConfig reports invalid hyperparameters. It is the same value as
	// spline.ErrConfig, so knot-generation failures match it too.
	ErrConfig = spline.ErrConfig

	// ErrDomain reports samples outside the support of a basis. It is the
	// same value as spline.ErrDomain.
	ErrDomain = spline.ErrDomain

	ErrInputCount     = errors.New("basis: wrong number of sample streams")
	ErrShape          = errors.New("basis: inconsistent sample streams")
	ErrResourceLimit  = errors.New("basis: model matrix exceeds memory limit")
	ErrNotImplemented = errors.New("basis: operation not implemented")
)

func validateInputCount(b Basis, samples [][]float64) error {
	if len(samples) != b.NumInputs() {
		return fmt.Errorf("%w: %s requires %d, got %d", ErrInputCount, b, b.NumInputs(), len(samples))
	}
	return nil
}

func validateSampleLengths(samples [][]float64) (int, error) {
	n := len(samples[0])
	for i, x := range samples[1:] {
		if len(x) != n {
			return 0, fmt.Errorf("%w: stream %d has %d samples, stream 0 has %d", ErrShape, i+1, len(x), n)
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: sample streams are empty", ErrShape)
	}
	return n, nil
}

func validateMemory(b Basis, n int) error {
	size := ModelMatrixBytes(b, n)
	if size > b.MemoryLimit() {
		return fmt.Errorf("%w: %d x %d model matrix needs %.0f bytes, limit is %.0f",
			ErrResourceLimit, b.NumBasisFuncs(), n, size, b.MemoryLimit())
	}
	return nil
}

func validateLeaf(nBasisFuncs, order int) error {
	if nBasisFuncs <= 0 {
		return fmt.Errorf("%w: n_basis_funcs must be > 0: %d", ErrConfig, nBasisFuncs)
	}
	if order < 1 {
		return fmt.Errorf("%w: order must be >= 1: %d", ErrConfig, order)
	}
	return nil
}
