// Package basis builds model (design) matrices from one or more sample
// streams by projecting each stream onto a family of basis functions.
//
// Leaf bases consume one stream each:
//
//   - [BSpline]:       clamped B-splines whose knots follow the sample distribution
//   - [CyclicBSpline]: periodic B-splines for phase-like inputs
//
// Bases compose into trees without evaluating anything:
//
//   - [Add] stacks the two model matrices (feature count L+R)
//   - [Multiply] takes the per-sample outer product (feature count L*R), so
//     a two-dimensional response surface is the tensor product of two
//     one-dimensional bases
//
// A composite consumes the streams of its left child first and those of its
// right child after, so (A+B)+C routes x1 to A, x2 to B and x3 to C.
//
// # Usage
//
//	a, _ := basis.NewBSpline(6, 4)
//	c, _ := basis.NewCyclicBSpline(8, 4)
//	m, err := basis.GenerateModelMatrix(basis.Multiply(a, c), speed, phase)
//
// The model matrix has one row per basis function and one column per sample.
// Its projected size is checked against the memory limit of the root basis
// before anything is allocated.
//
// # Errors
//
// All failures wrap one of [ErrConfig], [ErrInputCount], [ErrShape],
// [ErrResourceLimit], [ErrDomain] or [ErrNotImplemented]; match them with
// errors.Is.
package basis
