package ops

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// FillDiagonal overwrites n non-overlapping diagonal blocks of dst with
// filler and returns dst. With dst of shape (R, C) and filler of shape
// (r, c), the block count n = R/r = C/c must be one exact integer; the
// call fails with ErrBadFill otherwise. Entries outside the blocks are
// left untouched, so callers pass a freshly allocated zero matrix.
//
// This is the structural primitive behind the product Jacobians: one
// local derivative block repeated along the diagonal expresses "the same
// derivative applied independently to each output slice".
func FillDiagonal(dst *mat.Dense, filler mat.Matrix) (*mat.Dense, error) {
	dstRows, dstCols := dst.Dims()
	rows, cols := filler.Dims()
	if dstRows%rows != 0 || dstCols%cols != 0 || dstRows/rows != dstCols/cols {
		return nil, errors.Wrapf(ErrBadFill, "target %dx%d, filler %dx%d", dstRows, dstCols, rows, cols)
	}

	n := dstRows / rows
	for i := 0; i < n; i++ {
		block := dst.Slice(i*rows, (i+1)*rows, i*cols, (i+1)*cols).(*mat.Dense)
		block.Copy(filler)
	}
	return dst, nil
}
