package ops

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/matflow-ml/matflow/internal/graph"
)

// Step applies the Heaviside step elementwise: 1 where the parent entry
// is ≥ 0, else 0.
type Step struct {
	graph.Base
}

// NewStep creates a step node over parent.
func NewStep(parent graph.Node) *Step {
	return &Step{Base: graph.NewBase(parent)}
}

// Compute thresholds the parent's value at zero.
func (op *Step) Compute() error {
	parent, err := soleParent(op.Parents())
	if err != nil {
		return errors.WithMessage(err, "step")
	}

	x := parent.Value()
	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if x.At(i, j) >= 0 {
				out.Set(i, j, 1)
			}
		}
	}
	op.SetValue(out)
	return nil
}

// Jacobian is identically zero: the step is flat almost everywhere, and
// the discontinuity at zero is taken as zero slope rather than left
// undefined.
func (op *Step) Jacobian(parent graph.Node) (*mat.Dense, error) {
	if err := validateParent(op.Parents(), parent); err != nil {
		return nil, err
	}
	d := op.Dimension()
	return mat.NewDense(d, d, nil), nil
}
