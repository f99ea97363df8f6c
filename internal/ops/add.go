package ops

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/matflow-ml/matflow/internal/graph"
)

// Add sums any number of same-shaped parent matrices elementwise.
type Add struct {
	graph.Base
}

// NewAdd creates an addition node over the given parents.
func NewAdd(parents ...graph.Node) *Add {
	return &Add{Base: graph.NewBase(parents...)}
}

// Compute sets the value to the elementwise sum of all parents. Every
// parent must share the first parent's shape.
func (op *Add) Compute() error {
	parents := op.Parents()
	if len(parents) == 0 {
		return errors.Wrap(ErrShapeMismatch, "add: no parents")
	}

	rows, cols := parents[0].Shape()
	sum := mat.NewDense(rows, cols, nil)
	for i, p := range parents {
		pr, pc := p.Shape()
		if pr != rows || pc != cols {
			return errors.Wrapf(ErrShapeMismatch, "add: parent %d is %dx%d, want %dx%d", i, pr, pc, rows, cols)
		}
		sum.Add(sum, p.Value())
	}
	op.SetValue(sum)
	return nil
}

// Jacobian of a sum with respect to any one summand is the identity:
// addition passes every entry of every parent straight through.
func (op *Add) Jacobian(parent graph.Node) (*mat.Dense, error) {
	if err := validateParent(op.Parents(), parent); err != nil {
		return nil, err
	}
	return identity(op.Dimension()), nil
}
