package basis

import "gonum.org/v1/gonum/mat"

const bytesPerElement = 8

// Basis is a family of basis functions mapping NumInputs sample streams to a
// model matrix with NumBasisFuncs rows.
//
// The set of implementations is closed: [BSpline], [CyclicBSpline], [Sum] and
// [Product]. Bases are immutable once built and safe for concurrent use.
type Basis interface {
	// NumBasisFuncs is the number of rows of the model matrix.
	NumBasisFuncs() int
	// NumInputs is the number of sample streams the basis consumes.
	NumInputs() int
	// MemoryLimit is the model-matrix ceiling in bytes.
	MemoryLimit() float64
	String() string

	// modelMatrix produces the matrix for already validated streams.
	modelMatrix(samples [][]float64) (*mat.Dense, error)
}

// GenerateModelMatrix projects the sample streams onto b and returns the
// [b.NumBasisFuncs(), N] model matrix, N being the common stream length.
//
// It fails with [ErrInputCount] unless exactly b.NumInputs() streams are
// given, with [ErrShape] if the streams differ in length or are empty, and
// with [ErrResourceLimit] if the matrix would exceed b.MemoryLimit(). All of
// these checks run before any matrix is allocated.
func GenerateModelMatrix(b Basis, samples ...[]float64) (*mat.Dense, error) {
	if err := validateInputCount(b, samples); err != nil {
		return nil, err
	}
	n, err := validateSampleLengths(samples)
	if err != nil {
		return nil, err
	}
	if err := validateMemory(b, n); err != nil {
		return nil, err
	}
	return b.modelMatrix(samples)
}

// ModelMatrixBytes returns the size in bytes of the model matrix b produces
// for n samples.
func ModelMatrixBytes(b Basis, n int) float64 {
	return float64(n) * float64(b.NumBasisFuncs()) * bytesPerElement
}
