// Copyright 2026 Matflow ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the public API for the operator nodes of the
// computation graph.
//
// Available operators:
//   - Add: elementwise sum of same-shaped parents
//   - MatMul: matrix product of exactly two parents
//   - SoftMax: whole-matrix exponential normalization (no standalone
//     Jacobian — see ErrNoJacobian)
//   - Step: elementwise Heaviside step
//   - Logistic: elementwise logistic function
//
// Each operator implements graph.Operator: Compute overwrites the node's
// value from its parents, Jacobian returns ∂vec(self)/∂vec(parent) as a
// dense matrix. Failures wrap the package's sentinel errors; branch on
// them with errors.Is.
package ops

import (
	"gonum.org/v1/gonum/mat"

	"github.com/matflow-ml/matflow/graph"
	"github.com/matflow-ml/matflow/internal/ops"
)

// Sentinel errors returned (wrapped) by the operators.
var (
	ErrShapeMismatch = ops.ErrShapeMismatch
	ErrNotParent     = ops.ErrNotParent
	ErrNoJacobian    = ops.ErrNoJacobian
	ErrBadFill       = ops.ErrBadFill
)

// Add sums any number of same-shaped parent matrices elementwise.
type Add = ops.Add

// MatMul multiplies its two parents: value = A·B.
type MatMul = ops.MatMul

// SoftMax normalizes its parent into a probability-like matrix.
type SoftMax = ops.SoftMax

// Step applies the Heaviside step elementwise.
type Step = ops.Step

// Logistic applies the logistic function elementwise.
type Logistic = ops.Logistic

// NewAdd creates an addition node over the given parents.
func NewAdd(parents ...graph.Node) *Add {
	return ops.NewAdd(parents...)
}

// NewMatMul creates a product node with left operand a and right
// operand b.
func NewMatMul(a, b graph.Node) *MatMul {
	return ops.NewMatMul(a, b)
}

// NewSoftMax creates a softmax node over parent.
func NewSoftMax(parent graph.Node) *SoftMax {
	return ops.NewSoftMax(parent)
}

// NewStep creates a step node over parent.
func NewStep(parent graph.Node) *Step {
	return ops.NewStep(parent)
}

// NewLogistic creates a logistic node over parent.
func NewLogistic(parent graph.Node) *Logistic {
	return ops.NewLogistic(parent)
}

// FillDiagonal overwrites the diagonal blocks of dst with filler and
// returns dst. See internal/ops.FillDiagonal for the tiling contract.
func FillDiagonal(dst *mat.Dense, filler mat.Matrix) (*mat.Dense, error) {
	return ops.FillDiagonal(dst, filler)
}
