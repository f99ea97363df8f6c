package ops

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/matflow-ml/matflow/internal/graph"
)

// SoftMax normalizes its single parent into a probability-like matrix:
// elementwise exp divided by the sum of all exponentiated entries. The
// normalization runs over the whole flattened value, not per row.
type SoftMax struct {
	graph.Base
}

// NewSoftMax creates a softmax node over parent.
func NewSoftMax(parent graph.Node) *SoftMax {
	return &SoftMax{Base: graph.NewBase(parent)}
}

// Compute exponentiates and normalizes the parent's value. Entries above
// clipThreshold are clipped first so extreme logits saturate instead of
// overflowing.
func (op *SoftMax) Compute() error {
	parent, err := soleParent(op.Parents())
	if err != nil {
		return errors.WithMessage(err, "softmax")
	}

	x := parent.Value()
	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols, nil)
	sum := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			e := math.Exp(math.Min(x.At(i, j), clipThreshold))
			out.Set(i, j, e)
			sum += e
		}
	}
	out.Scale(1/sum, out)
	op.SetValue(out)
	return nil
}

// Jacobian always fails with ErrNoJacobian. Differentiating softmax on
// its own is never wanted during training: composed with cross-entropy
// loss the gradient collapses to the numerically simple value − target,
// which the fused cross-entropy node computes instead. Callers must
// branch on the error and route through that node.
func (op *SoftMax) Jacobian(parent graph.Node) (*mat.Dense, error) {
	if err := validateParent(op.Parents(), parent); err != nil {
		return nil, err
	}
	return nil, errors.Wrap(ErrNoJacobian, "softmax: use the fused cross-entropy node")
}
