package basis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Convolver is implemented by bases that can convolve their basis functions
// with a sample stream. No convolution algorithm is defined yet: the leaf
// implementations report [ErrNotImplemented].
type Convolver interface {
	Convolve(samples []float64) (*mat.Dense, error)
}

func convolveNotImplemented(b Basis) (*mat.Dense, error) {
	return nil, fmt.Errorf("%w: convolve for %s", ErrNotImplemented, b)
}
