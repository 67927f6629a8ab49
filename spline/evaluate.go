package spline

import (
	"fmt"
	"slices"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Evaluate returns the basis functions defined by knots and order evaluated at
// x, as a matrix with one row per basis function and one column per sample.
//
// Row i holds the i-th B-spline N_i (Cox–de Boor), i.e. the spline whose
// coefficient vector is the i-th unit vector. [WithDerivative] selects a
// derivative of N_i instead.
//
// Samples outside [knots[order-1], knots[len-order]] fail with [ErrDomain]
// unless [WithOutsideAllowed] is given. In that case the knot vector is padded
// with order-1 copies of its first and last knot, and the padding functions
// are dropped from the result, so the row count is always len(knots)-order.
func Evaluate(x, knots []float64, order int, opts ...Option) (*mat.Dense, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if len(knots) < 2*order {
		return nil, fmt.Errorf("%w: order %d needs at least %d knots, got %d",
			ErrConfig, order, 2*order, len(knots))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: empty sample set", ErrDomain)
	}

	cfg := applyOptions(opts)

	t := slices.Clone(knots)
	if !slices.IsSorted(t) {
		slices.Sort(t)
	}

	lo, hi := t[order-1], t[len(t)-order]
	outside := false
	for _, v := range x {
		if v < lo || v > hi {
			outside = true
			break
		}
	}

	pad := 0
	if outside {
		if !cfg.outside {
			return nil, fmt.Errorf("%w: samples must lie within the knot range [%g, %g]", ErrDomain, lo, hi)
		}
		pad = order - 1
		t = padKnots(t, pad)
	}

	rows := len(t) - order - 2*pad
	out := mat.NewDense(rows, len(x), nil)

	degree := order - 1
	if cfg.derivative > degree {
		return out, nil
	}

	raw := out.RawMatrix()
	first, last := t[0], t[len(t)-1]
	bf := newBasisFuncs(degree)

	for j, v := range x {
		// Also rejects NaN.
		if !(v >= first && v <= last) {
			continue
		}

		span := findSpan(t, degree, v)
		if t[span] == t[span+1] {
			continue
		}

		for r, val := range bf.eval(t, span, v, cfg.derivative) {
			row := span - degree + r - pad
			if row >= 0 && row < rows {
				raw.Data[row*raw.Stride+j] = val
			}
		}
	}

	return out, nil
}

func padKnots(t []float64, pad int) []float64 {
	out := make([]float64, 0, len(t)+2*pad)
	for i := 0; i < pad; i++ {
		out = append(out, t[0])
	}
	out = append(out, t...)
	for i := 0; i < pad; i++ {
		out = append(out, t[len(t)-1])
	}
	return out
}

// findSpan returns the index of the knot span [t[s], t[s+1]) holding u,
// restricted to the base interval [t[degree], t[len-degree-1]]. The right
// endpoint belongs to the last non-empty span.
func findSpan(t []float64, degree int, u float64) int {
	span := sort.Search(len(t), func(i int) bool { return t[i] > u }) - 1
	if low := degree; span < low {
		span = low
	}
	if high := len(t) - degree - 2; span > high {
		span = high
	}
	return span
}

// basisFuncs evaluates the degree+1 B-splines that are non-zero on one knot
// span, and their derivatives (Piegl & Tiller, algorithm A2.3).
type basisFuncs struct {
	degree int
	ndu    [][]float64
	left   []float64
	right  []float64
	a      [2][]float64
	out    []float64
}

func newBasisFuncs(degree int) *basisFuncs {
	n := degree + 1
	ndu := make([][]float64, n)
	for i := range ndu {
		ndu[i] = make([]float64, n)
	}
	return &basisFuncs{
		degree: degree,
		ndu:    ndu,
		left:   make([]float64, n),
		right:  make([]float64, n),
		a:      [2][]float64{make([]float64, n), make([]float64, n)},
		out:    make([]float64, n),
	}
}

// eval returns the der-th derivative of N_{span-degree}..N_{span} at u.
// The returned slice is reused by the next call. der must not exceed degree.
func (b *basisFuncs) eval(t []float64, span int, u float64, der int) []float64 {
	p := b.degree
	ndu := b.ndu

	// ndu holds basis values in the upper triangle and knot differences in
	// the lower triangle.
	ndu[0][0] = 1
	for j := 1; j <= p; j++ {
		b.left[j] = u - t[span+1-j]
		b.right[j] = t[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			ndu[j][r] = b.right[r+1] + b.left[j-r]
			tmp := ndu[r][j-1] / ndu[j][r]
			ndu[r][j] = saved + b.right[r+1]*tmp
			saved = b.left[j-r] * tmp
		}
		ndu[j][j] = saved
	}

	out := b.out
	if der == 0 {
		for j := 0; j <= p; j++ {
			out[j] = ndu[j][p]
		}
		return out
	}

	for r := 0; r <= p; r++ {
		s1, s2 := b.a[0], b.a[1]
		s1[0] = 1
		var d float64
		for k := 1; k <= der; k++ {
			d = 0
			rk, pk := r-k, p-k
			if r >= k {
				s2[0] = s1[0] / ndu[pk+1][rk]
				d = s2[0] * ndu[rk][pk]
			}
			j1 := 1
			if rk < -1 {
				j1 = -rk
			}
			j2 := k - 1
			if r-1 > pk {
				j2 = p - r
			}
			for j := j1; j <= j2; j++ {
				s2[j] = (s1[j] - s1[j-1]) / ndu[pk+1][rk+j]
				d += s2[j] * ndu[rk+j][pk]
			}
			if r <= pk {
				s2[k] = -s1[k-1] / ndu[pk+1][r]
				d += s2[k] * ndu[r][pk]
			}
			s1, s2 = s2, s1
		}
		out[r] = d
	}

	// p!/(p-der)!
	scale := 1.0
	for k := 0; k < der; k++ {
		scale *= float64(p - k)
	}
	for j := range out {
		out[j] *= scale
	}
	return out
}
