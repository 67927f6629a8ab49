package simulation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidFilter reports unusable filter parameters or filter banks.
var ErrInvalidFilter = errors.New("simulation: invalid filter")

// GammaOption configures [DifferenceOfGammas].
type GammaOption func(*gammaConfig)

type gammaConfig struct {
	upper  float64
	inhibA float64
	inhibB float64
	excitA float64
	excitB float64
}

func defaultGammaConfig() gammaConfig {
	return gammaConfig{upper: 0.99, inhibA: 1, inhibB: 2, excitA: 2, excitB: 2}
}

// WithUpperPercentile sets the percentile of the wider gamma that bounds the
// evaluation range. Default 0.99.
func WithUpperPercentile(p float64) GammaOption {
	return func(c *gammaConfig) { c.upper = p }
}

// WithInhibition sets shape and rate of the inhibitory gamma. Default (1, 2).
func WithInhibition(shape, rate float64) GammaOption {
	return func(c *gammaConfig) { c.inhibA, c.inhibB = shape, rate }
}

// WithExcitation sets shape and rate of the excitatory gamma. Default (2, 2).
func WithExcitation(shape, rate float64) GammaOption {
	return func(c *gammaConfig) { c.excitA, c.excitB = shape, rate }
}

// DifferenceOfGammas returns a coupling filter of windowSize taps: the
// excitatory gamma density minus the inhibitory one, sampled evenly on
// [0, xmax] and scaled to unit L2 norm. xmax is the larger of the two
// densities' upper percentiles.
func DifferenceOfGammas(windowSize int, opts ...GammaOption) ([]float64, error) {
	cfg := defaultGammaConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if windowSize < 2 {
		return nil, fmt.Errorf("%w: window size must be >= 2: %d", ErrInvalidFilter, windowSize)
	}
	if !(cfg.upper > 0 && cfg.upper < 1) {
		return nil, fmt.Errorf("%w: upper percentile must be in (0, 1): %g", ErrInvalidFilter, cfg.upper)
	}
	for _, v := range []float64{cfg.inhibA, cfg.inhibB, cfg.excitA, cfg.excitB} {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: gamma shape and rate must be positive: %g", ErrInvalidFilter, v)
		}
	}

	inhib := distuv.Gamma{Alpha: cfg.inhibA, Beta: cfg.inhibB}
	excit := distuv.Gamma{Alpha: cfg.excitA, Beta: cfg.excitB}

	xmax := math.Max(inhib.Quantile(cfg.upper), excit.Quantile(cfg.upper))
	x := grid(0, xmax, windowSize)

	out := make([]float64, windowSize)
	for i, v := range x {
		out[i] = gammaPDF(excit, v) - gammaPDF(inhib, v)
	}

	norm := floats.Norm(out, 2)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, fmt.Errorf("%w: filter norm is %g", ErrInvalidFilter, norm)
	}
	floats.Scale(1/norm, out)
	return out, nil
}

// gammaPDF is g.Prob with the density's limit at zero, which Prob reports as
// 0 for every shape.
func gammaPDF(g distuv.Gamma, x float64) float64 {
	if x == 0 {
		switch {
		case g.Alpha == 1:
			return g.Beta
		case g.Alpha < 1:
			return math.Inf(1)
		default:
			return 0
		}
	}
	return g.Prob(x)
}

// grid returns n evenly spaced points from lo to hi inclusive.
func grid(lo, hi float64, n int) []float64 {
	x := make([]float64, n)
	if n == 1 {
		x[0] = lo
		return x
	}
	floats.Span(x, lo, hi)
	x[n-1] = hi
	return x
}
