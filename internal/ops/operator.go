// Package ops implements the operator nodes of the computation graph:
// addition, matrix product, softmax, step and logistic.
//
// Every operator embeds graph.Base and satisfies graph.Operator. Compute
// overwrites the node's value from its parents' values; Jacobian returns
// the derivative of the node's flattened value with respect to one
// parent's flattened value, as a dense (self.Dimension × parent.Dimension)
// matrix under the row-major flatten convention defined in package graph.
//
// Failures are reported through package-level sentinels wrapped with
// context; callers branch with errors.Is. There is no recovery inside
// this package — shape preconditions fail Compute outright, and the one
// numerical hazard (overflowing exponentials) is prevented by clipping
// rather than reported.
package ops

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/matflow-ml/matflow/internal/graph"
)

// Sentinel errors. Jacobian and Compute wrap these with operator-specific
// context.
var (
	// ErrShapeMismatch reports operands whose shapes violate an
	// operator's precondition: unequal summand shapes, incompatible
	// inner dimensions of a product, or a wrong parent count.
	ErrShapeMismatch = errors.New("ops: operand shapes are incompatible")

	// ErrNotParent reports a Jacobian query for a node that is not
	// among the operator's parents.
	ErrNotParent = errors.New("ops: node is not a parent of this operator")

	// ErrNoJacobian reports an operator that deliberately has no
	// standalone derivative. Only SoftMax returns it: training must go
	// through the fused cross-entropy node instead.
	ErrNoJacobian = errors.New("ops: operator has no standalone jacobian")

	// ErrBadFill reports a FillDiagonal call whose filler does not tile
	// the target's diagonal exactly.
	ErrBadFill = errors.New("ops: filler does not tile the target diagonal")
)

// clipThreshold caps exponents before math.Exp so that large activations
// saturate instead of overflowing to +Inf.
const clipThreshold = 1e2

// validateParent checks that candidate is one of parents.
func validateParent(parents []graph.Node, candidate graph.Node) error {
	for _, p := range parents {
		if p == candidate {
			return nil
		}
	}
	return errors.WithStack(ErrNotParent)
}

// soleParent returns the single parent of a one-parent operator.
func soleParent(parents []graph.Node) (graph.Node, error) {
	if len(parents) != 1 {
		return nil, errors.Wrapf(ErrShapeMismatch, "want exactly 1 parent, have %d", len(parents))
	}
	return parents[0], nil
}

// identity returns the n×n identity matrix.
func identity(n int) *mat.Dense {
	eye := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		eye.Set(i, i, 1)
	}
	return eye
}
