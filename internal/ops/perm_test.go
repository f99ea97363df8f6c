package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// Hand-computed cases for non-square shapes. For a 2×3 matrix the
// entries in row-major order are (0,0),(0,1),(0,2),(1,0),(1,1),(1,2);
// their column-major indices are 0,2,4,1,3,5.
func TestTransposePerm(t *testing.T) {
	assert.Equal(t, []int{0, 2, 4, 1, 3, 5}, transposePerm(2, 3))
	assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, transposePerm(3, 2))
	assert.Equal(t, []int{0, 1, 2, 3}, transposePerm(1, 4))
	assert.Equal(t, []int{0, 2, 1, 3}, transposePerm(2, 2))
}

// Applying the permutation for (r, c) and then the one for (c, r) gives
// back the original order.
func TestTransposePerm_Involution(t *testing.T) {
	forward := transposePerm(3, 5)
	backward := transposePerm(5, 3)
	for i := range forward {
		assert.Equal(t, i, backward[forward[i]])
	}
}

func TestReindex(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	got := reindex(m, []int{1, 0}, []int{2, 0, 1})
	want := mat.NewDense(2, 3, []float64{
		6, 4, 5,
		3, 1, 2,
	})
	assert.True(t, mat.Equal(want, got), "got:\n%v", mat.Formatted(got))
}
