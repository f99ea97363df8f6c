package ops

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/matflow-ml/matflow/internal/graph"
)

// MatMul multiplies its two parents: value = A·B. Parent order is the
// operand order.
type MatMul struct {
	graph.Base
}

// NewMatMul creates a product node with left operand a and right
// operand b.
func NewMatMul(a, b graph.Node) *MatMul {
	return &MatMul{Base: graph.NewBase(a, b)}
}

// Compute sets the value to the standard matrix product of the two
// parents. A's column count must equal B's row count.
func (op *MatMul) Compute() error {
	parents := op.Parents()
	if len(parents) != 2 {
		return errors.Wrapf(ErrShapeMismatch, "matmul: want exactly 2 parents, have %d", len(parents))
	}

	aRows, aCols := parents[0].Shape()
	bRows, bCols := parents[1].Shape()
	if aCols != bRows {
		return errors.Wrapf(ErrShapeMismatch, "matmul: %dx%d times %dx%d", aRows, aCols, bRows, bCols)
	}

	prod := mat.NewDense(aRows, bCols, nil)
	prod.Mul(parents[0].Value(), parents[1].Value())
	op.SetValue(prod)
	return nil
}

// Jacobian treats C = A·B as a map from one flattened operand to the
// flattened product, the other operand held fixed. The two parents
// produce structurally different results.
//
// For A: every row of C is the matching row of A pushed through B, so
// under row-major flattening the derivative is Bᵀ repeated along the
// block diagonal — one block per row of C.
//
// For B: the same block construction with filler A is correct under the
// opposite (column-major) flatten order for C's and B's positions. Both
// axes of that intermediate are permuted back to the canonical order:
// rows by C's transpose permutation, columns by B's.
func (op *MatMul) Jacobian(parent graph.Node) (*mat.Dense, error) {
	parents := op.Parents()
	if err := validateParent(parents, parent); err != nil {
		return nil, err
	}

	zeros := mat.NewDense(op.Dimension(), parent.Dimension(), nil)
	if parent == parents[0] {
		return FillDiagonal(zeros, parents[1].Value().T())
	}

	jac, err := FillDiagonal(zeros, parents[0].Value())
	if err != nil {
		return nil, err
	}
	selfRows, selfCols := op.Shape()
	parentRows, parentCols := parent.Shape()
	return reindex(jac, transposePerm(selfRows, selfCols), transposePerm(parentRows, parentCols)), nil
}
