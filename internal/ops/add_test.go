package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/matflow-ml/matflow/internal/graph"
	"github.com/matflow-ml/matflow/internal/ops"
)

func TestAdd_Compute(t *testing.T) {
	a := graph.NewVariable(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	b := graph.NewVariable(mat.NewDense(2, 2, []float64{10, 20, 30, 40}))
	c := graph.NewVariable(mat.NewDense(2, 2, []float64{100, 200, 300, 400}))

	sum := ops.NewAdd(a, b, c)
	require.NoError(t, sum.Compute())

	want := mat.NewDense(2, 2, []float64{111, 222, 333, 444})
	assert.True(t, mat.Equal(want, sum.Value()), "got:\n%v", mat.Formatted(sum.Value()))
}

// The Jacobian of a sum is the identity no matter which summand is
// queried.
func TestAdd_Jacobian(t *testing.T) {
	a := graph.NewVariable(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}))
	b := graph.NewVariable(mat.NewDense(2, 3, []float64{6, 5, 4, 3, 2, 1}))

	sum := ops.NewAdd(a, b)
	require.NoError(t, sum.Compute())

	for _, parent := range []graph.Node{a, b} {
		jac, err := sum.Jacobian(parent)
		require.NoError(t, err)

		rows, cols := jac.Dims()
		assert.Equal(t, 6, rows)
		assert.Equal(t, 6, cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				assert.Equal(t, want, jac.At(i, j))
			}
		}
	}
}

func TestAdd_ShapeMismatch(t *testing.T) {
	a := graph.NewVariable(mat.NewDense(2, 2, nil))
	b := graph.NewVariable(mat.NewDense(2, 3, nil))

	sum := ops.NewAdd(a, b)
	assert.ErrorIs(t, sum.Compute(), ops.ErrShapeMismatch)
}

func TestAdd_NoParents(t *testing.T) {
	assert.ErrorIs(t, ops.NewAdd().Compute(), ops.ErrShapeMismatch)
}

func TestAdd_JacobianNotParent(t *testing.T) {
	a := graph.NewVariable(mat.NewDense(2, 2, nil))
	b := graph.NewVariable(mat.NewDense(2, 2, nil))
	stranger := graph.NewVariable(mat.NewDense(2, 2, nil))

	sum := ops.NewAdd(a, b)
	require.NoError(t, sum.Compute())

	_, err := sum.Jacobian(stranger)
	assert.ErrorIs(t, err, ops.ErrNotParent)
}
