// Copyright 2026 Matflow ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides the public API for computation-graph nodes.
//
// A graph is built from leaf Variable nodes and operator nodes (package
// ops); an external executor walks it forward calling Compute and
// backward calling Jacobian. Node values and Jacobians are gonum
// *mat.Dense matrices.
//
// Example:
//
//	a := graph.NewVariable(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
//	b := graph.NewVariable(mat.NewDense(2, 2, []float64{5, 6, 7, 8}))
//	c := ops.NewMatMul(a, b)
//	if err := c.Compute(); err != nil { ... }
//	jac, err := c.Jacobian(a) // ∂vec(c)/∂vec(a)
package graph

import (
	"gonum.org/v1/gonum/mat"

	"github.com/matflow-ml/matflow/internal/graph"
)

// Node is one vertex of a computation graph. See internal/graph for the
// full contract.
type Node = graph.Node

// Operator is a Node that derives its value from its parents through
// the Compute/Jacobian pair.
type Operator = graph.Operator

// Base carries the parent list and value slot every node type embeds.
type Base = graph.Base

// Variable is a leaf node whose value is supplied from outside the
// graph.
type Variable = graph.Variable

// NewVariable creates a leaf node holding v.
func NewVariable(v *mat.Dense) *Variable {
	return graph.NewVariable(v)
}

// Flatten returns vec(m) under the engine's canonical row-major order.
// Jacobians relate node values flattened exactly this way.
func Flatten(m mat.Matrix) []float64 {
	return graph.Flatten(m)
}
