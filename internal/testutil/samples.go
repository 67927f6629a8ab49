package testutil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := floats.Span(make([]float64, n), lo, hi)
	out[n-1] = hi
	return out
}

// DeterministicNoise generates uniform values in [-amplitude, amplitude) with
// a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// WithNaN returns a copy of x with NaN written at the given positions.
// Out-of-range positions are ignored.
func WithNaN(x []float64, pos ...int) []float64 {
	out := append([]float64(nil), x...)
	for _, p := range pos {
		if p >= 0 && p < len(out) {
			out[p] = math.NaN()
		}
	}
	return out
}
