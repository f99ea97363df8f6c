package ops

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/matflow-ml/matflow/internal/graph"
)

// Logistic applies the logistic function σ(x) = 1/(1+exp(−x)) to every
// entry of its single parent.
type Logistic struct {
	graph.Base
}

// NewLogistic creates a logistic node over parent.
func NewLogistic(parent graph.Node) *Logistic {
	return &Logistic{Base: graph.NewBase(parent)}
}

// Compute applies the logistic function in the stable form
// 1/(1+exp(min(−x, clipThreshold))), so very negative inputs saturate
// near zero instead of overflowing the exponential.
func (op *Logistic) Compute() error {
	parent, err := soleParent(op.Parents())
	if err != nil {
		return errors.WithMessage(err, "logistic")
	}

	x := parent.Value()
	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, 1/(1+math.Exp(math.Min(-x.At(i, j), clipThreshold))))
		}
	}
	op.SetValue(out)
	return nil
}

// Jacobian is diagonal with entries vᵢ·(1−vᵢ): each output entry depends
// only on the matching input entry, with the usual logistic derivative
// expressed through the already computed value.
func (op *Logistic) Jacobian(parent graph.Node) (*mat.Dense, error) {
	if err := validateParent(op.Parents(), parent); err != nil {
		return nil, err
	}

	v := graph.Flatten(op.Value())
	jac := mat.NewDense(len(v), len(v), nil)
	for i, vi := range v {
		jac.Set(i, i, vi*(1-vi))
	}
	return jac, nil
}
