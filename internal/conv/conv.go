package conv

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// DirectThreshold is the kernel length from which [Convolve] switches from
// direct to overlap-add convolution.
const DirectThreshold = 64

// Direct returns the full linear convolution of a and b, of length
// len(a)+len(b)-1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}
	dst := make([]float64, len(a)+len(b)-1)
	if err := DirectTo(dst, a, b); err != nil {
		return nil, err
	}
	return dst, nil
}

// DirectTo writes the full linear convolution of a and b into dst, which must
// have length len(a)+len(b)-1.
func DirectTo(dst, a, b []float64) error {
	if want := len(a) + len(b) - 1; len(dst) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(dst))
	}
	for i := range dst {
		dst[i] = 0
	}
	m := len(b)
	for i, v := range a {
		if v == 0 {
			continue
		}
		floats.AddScaled(dst[i:i+m], v, b)
	}
	return nil
}

// Convolve returns the full linear convolution of signal and kernel, using
// direct convolution for kernels shorter than [DirectThreshold] and
// overlap-add otherwise.
func Convolve(signal, kernel []float64) ([]float64, error) {
	if len(kernel) < DirectThreshold {
		return Direct(signal, kernel)
	}
	return OverlapAddConvolve(signal, kernel)
}

// Causal returns the first len(signal) samples of the convolution of signal
// and kernel.
func Causal(signal, kernel []float64) ([]float64, error) {
	full, err := Convolve(signal, kernel)
	if err != nil {
		return nil, err
	}
	return full[:len(signal):len(signal)], nil
}
