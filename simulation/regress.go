package simulation

import (
	"fmt"

	"github.com/cwbudde/algo-basis/basis"
	"github.com/cwbudde/algo-basis/internal/conv"
	"gonum.org/v1/gonum/mat"
)

// RegressFilter expresses a bank of coupling filters in b. bank[i][j] is the
// filter from neuron j to neuron i; every filter has the same window size ws.
//
// b is evaluated on ws points evenly spaced over [0, 1] and all filters are
// fitted at once by least squares. The returned design matrix is
// [ws, NumBasisFuncs] and weights[i][j] holds the coefficients of bank[i][j].
func RegressFilter(bank [][][]float64, b basis.Basis) (*mat.Dense, [][][]float64, error) {
	n := len(bank)
	if n == 0 {
		return nil, nil, fmt.Errorf("%w: empty filter bank", ErrInvalidFilter)
	}
	ws := 0
	for i, row := range bank {
		if len(row) != n {
			return nil, nil, fmt.Errorf("%w: bank row %d has %d filters, want %d", ErrInvalidFilter, i, len(row), n)
		}
		for j, f := range row {
			if ws == 0 {
				ws = len(f)
			}
			if len(f) == 0 || len(f) != ws {
				return nil, nil, fmt.Errorf("%w: filter [%d][%d] has %d taps, want %d", ErrInvalidFilter, i, j, len(f), ws)
			}
		}
	}

	x, err := basis.GenerateModelMatrix(b, grid(0, 1, ws))
	if err != nil {
		return nil, nil, err
	}
	var design mat.Dense
	design.CloneFrom(x.T())

	targets := mat.NewDense(ws, n*n, nil)
	for i, row := range bank {
		for j, f := range row {
			targets.SetCol(i*n+j, f)
		}
	}

	var w mat.Dense
	if err := w.Solve(&design, targets); err != nil {
		return nil, nil, fmt.Errorf("%w: least-squares fit: %w", ErrInvalidFilter, err)
	}

	k := b.NumBasisFuncs()
	weights := make([][][]float64, n)
	for i := range weights {
		weights[i] = make([][]float64, n)
		for j := range weights[i] {
			weights[i][j] = mat.Col(make([]float64, k), i*n+j, &w)
		}
	}
	return &design, weights, nil
}

// Reconstruct returns the filter represented by weights in design, a
// [ws, NumBasisFuncs] matrix as returned by [RegressFilter].
func Reconstruct(design mat.Matrix, weights []float64) ([]float64, error) {
	ws, k := design.Dims()
	if len(weights) != k {
		return nil, fmt.Errorf("%w: %d weights for %d basis functions", ErrInvalidFilter, len(weights), k)
	}
	out := mat.NewVecDense(ws, nil)
	out.MulVec(design, mat.NewVecDense(k, weights))
	return out.RawVector().Data, nil
}

// CouplingInput returns the drive a neuron receives through filter from the
// given event counts: the causal convolution of counts and filter, truncated
// to len(counts). Long filters are convolved in the frequency domain.
func CouplingInput(counts, filter []float64) ([]float64, error) {
	out, err := conv.Causal(counts, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	return out, nil
}
