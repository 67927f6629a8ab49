package spline

import (
	"math"
	"slices"
)

// Percentile returns the p-quantile (p in [0,1], clamped) of the finite values
// in x, interpolating linearly between the two closest ranks. ok is false when
// x holds no finite value.
func Percentile(x []float64, p float64) (v float64, ok bool) {
	sorted := finiteSorted(x)
	if len(sorted) == 0 {
		return math.NaN(), false
	}
	return quantileSorted(sorted, p), true
}

func finiteSorted(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

func quantileSorted(sorted []float64, p float64) float64 {
	p = math.Min(math.Max(p, 0), 1)
	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
