package ops

import "gonum.org/v1/gonum/mat"

// transposePerm returns the permutation that converts flattened positions
// of a rows×cols matrix between the two flatten orders: for the entry at
// (i, j), perm[i*cols+j] = j*rows+i, i.e. the row-major position of each
// entry maps to its column-major index. The permutation for (cols, rows)
// is its inverse.
func transposePerm(rows, cols int) []int {
	perm := make([]int, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			perm[i*cols+j] = j*rows + i
		}
	}
	return perm
}

// reindex returns a new matrix with m's rows and columns reordered:
// out(i, j) = m(rowPerm[i], colPerm[j]).
func reindex(m *mat.Dense, rowPerm, colPerm []int) *mat.Dense {
	out := mat.NewDense(len(rowPerm), len(colPerm), nil)
	for i, ri := range rowPerm {
		for j, cj := range colPerm {
			out.Set(i, j, m.At(ri, cj))
		}
	}
	return out
}
