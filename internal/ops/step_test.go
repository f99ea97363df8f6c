package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/matflow-ml/matflow/internal/graph"
	"github.com/matflow-ml/matflow/internal/ops"
)

func TestStep_Compute(t *testing.T) {
	x := graph.NewVariable(mat.NewDense(2, 3, []float64{
		-1.5, 0, 2,
		3, -0.001, -100,
	}))

	step := ops.NewStep(x)
	require.NoError(t, step.Compute())

	// Zero counts as the high side.
	want := mat.NewDense(2, 3, []float64{
		0, 1, 1,
		1, 0, 0,
	})
	assert.True(t, mat.Equal(want, step.Value()), "got:\n%v", mat.Formatted(step.Value()))
}

func TestStep_JacobianAllZero(t *testing.T) {
	x := graph.NewVariable(mat.NewDense(2, 3, []float64{-1, 2, -3, 4, -5, 6}))

	step := ops.NewStep(x)
	require.NoError(t, step.Compute())

	jac, err := step.Jacobian(x)
	require.NoError(t, err)

	rows, cols := jac.Dims()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 6, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.Zero(t, jac.At(i, j))
		}
	}
}

func TestStep_JacobianNotParent(t *testing.T) {
	x := graph.NewVariable(mat.NewDense(1, 2, []float64{1, -1}))
	stranger := graph.NewVariable(mat.NewDense(1, 2, nil))

	step := ops.NewStep(x)
	require.NoError(t, step.Compute())

	_, err := step.Jacobian(stranger)
	assert.ErrorIs(t, err, ops.ErrNotParent)
}
