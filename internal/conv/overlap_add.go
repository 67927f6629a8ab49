package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

const minBlockSize = 256

// OverlapAdd convolves long signals with a fixed kernel block by block in the
// frequency domain.
type OverlapAdd struct {
	kernelFFT []complex128
	kernelLen int
	blockSize int
	fftSize   int

	plan *algofft.Plan[complex128]

	block []complex128
	prod  []complex128
}

// NewOverlapAdd returns an overlap-add convolver for kernel. A non-positive
// blockSize selects max(256, nextPowerOf2(len(kernel))).
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if blockSize <= 0 {
		blockSize = max(nextPowerOf2(len(kernel)), minBlockSize)
	}
	fftSize := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT: make([]complex128, fftSize),
		kernelLen: len(kernel),
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		block:     make([]complex128, fftSize),
		prod:      make([]complex128, fftSize),
	}

	padded := make([]complex128, fftSize)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}
	if err := plan.Forward(oa.kernelFFT, padded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}
	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int { return oa.blockSize }

// FFTSize returns the transform length.
func (oa *OverlapAdd) FFTSize() int { return oa.fftSize }

// Process returns the full linear convolution of input with the kernel.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	outLen := len(input) + oa.kernelLen - 1
	out := make([]float64, outLen)

	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))

		clear(oa.block)
		for i, v := range input[start:end] {
			oa.block[i] = complex(v, 0)
		}
		if err := oa.plan.Forward(oa.block, oa.block); err != nil {
			return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
		}
		for i := range oa.prod {
			oa.prod[i] = oa.block[i] * oa.kernelFFT[i]
		}
		if err := oa.plan.Inverse(oa.prod, oa.prod); err != nil {
			return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		n := min(end-start+oa.kernelLen-1, outLen-start)
		for i := 0; i < n; i++ {
			out[start+i] += real(oa.prod[i])
		}
	}
	return out, nil
}

// OverlapAddConvolve is a one-shot [OverlapAdd] convolution.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(signal)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
