package basis

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// Sum is the additive composition of two bases. Its model matrix stacks the
// rows of the left model matrix on top of the rows of the right one.
type Sum struct {
	left, right Basis
}

// Product is the multiplicative composition of two bases. Row i*R+j of its
// model matrix is the element-wise product of row i of the left and row j of
// the right model matrix, R being right.NumBasisFuncs().
type Product struct {
	left, right Basis
}

// Add returns the sum of left and right. It consumes the streams of left
// followed by those of right and evaluates nothing. Add panics if either
// operand is nil.
func Add(left, right Basis) *Sum {
	mustOperands("Add", left, right)
	return &Sum{left: left, right: right}
}

// Multiply returns the product of left and right. It consumes the streams of
// left followed by those of right and evaluates nothing. Multiply panics if
// either operand is nil.
func Multiply(left, right Basis) *Product {
	mustOperands("Multiply", left, right)
	return &Product{left: left, right: right}
}

func mustOperands(op string, left, right Basis) {
	if left == nil || right == nil {
		panic("basis: " + op + " with nil operand")
	}
}

// NumBasisFuncs returns left.NumBasisFuncs() + right.NumBasisFuncs().
func (s *Sum) NumBasisFuncs() int { return s.left.NumBasisFuncs() + s.right.NumBasisFuncs() }

// NumInputs returns left.NumInputs() + right.NumInputs().
func (s *Sum) NumInputs() int { return s.left.NumInputs() + s.right.NumInputs() }

// MemoryLimit returns the limit of the left operand.
func (s *Sum) MemoryLimit() float64 { return s.left.MemoryLimit() }

// Left returns the left operand.
func (s *Sum) Left() Basis { return s.left }

// Right returns the right operand.
func (s *Sum) Right() Basis { return s.right }

func (s *Sum) String() string { return fmt.Sprintf("(%s + %s)", s.left, s.right) }

func (s *Sum) modelMatrix(samples [][]float64) (*mat.Dense, error) {
	a, b, err := splitModelMatrices(s.left, s.right, samples)
	if err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Stack(a, b)
	return &out, nil
}

// NumBasisFuncs returns left.NumBasisFuncs() * right.NumBasisFuncs().
func (p *Product) NumBasisFuncs() int { return p.left.NumBasisFuncs() * p.right.NumBasisFuncs() }

// NumInputs returns left.NumInputs() + right.NumInputs().
func (p *Product) NumInputs() int { return p.left.NumInputs() + p.right.NumInputs() }

// MemoryLimit returns the limit of the left operand.
func (p *Product) MemoryLimit() float64 { return p.left.MemoryLimit() }

// Left returns the left operand.
func (p *Product) Left() Basis { return p.left }

// Right returns the right operand.
func (p *Product) Right() Basis { return p.right }

func (p *Product) String() string { return fmt.Sprintf("(%s * %s)", p.left, p.right) }

func (p *Product) modelMatrix(samples [][]float64) (*mat.Dense, error) {
	a, b, err := splitModelMatrices(p.left, p.right, samples)
	if err != nil {
		return nil, err
	}
	return rowWiseKron(a, b), nil
}

// splitModelMatrices routes the first left.NumInputs() streams to left and
// the rest to right.
func splitModelMatrices(left, right Basis, samples [][]float64) (*mat.Dense, *mat.Dense, error) {
	k := left.NumInputs()
	a, err := left.modelMatrix(samples[:k])
	if err != nil {
		return nil, nil, err
	}
	b, err := right.modelMatrix(samples[k:])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// rowWiseKron returns the per-column Kronecker product of a [L,N] and b [R,N]:
// row i*R+j equals a[i,:] * b[j,:].
func rowWiseKron(a, b *mat.Dense) *mat.Dense {
	l, n := a.Dims()
	r, _ := b.Dims()
	out := mat.NewDense(l*r, n, nil)
	for i := 0; i < l; i++ {
		ai := a.RawRowView(i)
		for j := 0; j < r; j++ {
			vecmath.MulBlock(out.RawRowView(i*r+j), ai, b.RawRowView(j))
		}
	}
	return out
}
