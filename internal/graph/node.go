// Package graph defines the node abstraction the operator layer is built
// on.
//
// A computation graph is a directed graph whose nodes hold dense float64
// matrices. Leaf nodes (Variable) get their values from outside; operator
// nodes derive theirs from parents. The graph-wide traversal that decides
// evaluation order lives outside this package: it walks the graph forward
// calling Compute once parent values are fresh, then backward calling
// Jacobian for every consumed edge and chaining the results.
//
// Jacobians are ordinary matrices because every node value is flattened
// into a column vector under one fixed convention: row-major order,
// entries of the first row first. Flatten is the single definition of
// that convention; everything that reasons about flattened positions
// goes through it or matches it.
package graph

import "gonum.org/v1/gonum/mat"

// Node is one vertex of a computation graph.
type Node interface {
	// Parents returns the node's upstream nodes in declaration order.
	// Order is significant: asymmetric operators (matrix product)
	// distinguish the left and right operand by position. Leaf nodes
	// return nil.
	Parents() []Node

	// Value returns the node's current matrix, or nil before the first
	// Compute / Set.
	Value() *mat.Dense

	// Shape returns the (rows, cols) of the current value.
	Shape() (rows, cols int)

	// Dimension returns rows*cols, the length of the value flattened
	// into a column vector.
	Dimension() int
}

// Operator is a Node that derives its value from its parents.
//
// Compute reads every parent's value and overwrites the receiver's own;
// it must be idempotent for unchanged parent values. Jacobian returns
// the matrix of partial derivatives of the receiver's flattened value
// with respect to one parent's flattened value, recomputed from current
// values on every call. Both belong to a single forward/backward pass:
// Compute must have produced a value before Jacobian is asked for it,
// and neither result survives into the next pass.
type Operator interface {
	Node

	Compute() error
	Jacobian(parent Node) (*mat.Dense, error)
}

// Base carries the parent list and value slot shared by every node type.
// Operator implementations embed it and supply Compute/Jacobian.
type Base struct {
	parents []Node
	value   *mat.Dense
}

// NewBase creates a Base with the given parents.
func NewBase(parents ...Node) Base {
	return Base{parents: parents}
}

// Parents returns the node's parents in declaration order.
func (b *Base) Parents() []Node {
	return b.parents
}

// Value returns the node's current value, or nil if none has been set.
func (b *Base) Value() *mat.Dense {
	return b.value
}

// SetValue overwrites the node's value. The previous value is discarded,
// never accumulated into.
func (b *Base) SetValue(v *mat.Dense) {
	b.value = v
}

// Shape returns the dimensions of the current value, or (0, 0) if no
// value has been set.
func (b *Base) Shape() (rows, cols int) {
	if b.value == nil {
		return 0, 0
	}
	return b.value.Dims()
}

// Dimension returns the flattened length of the current value.
func (b *Base) Dimension() int {
	rows, cols := b.Shape()
	return rows * cols
}

// Variable is a leaf node whose value is supplied from outside the
// graph: an input, a label, or a trainable parameter owned by an
// optimizer.
type Variable struct {
	Base
}

// NewVariable creates a leaf node holding v. A nil v is allowed; the
// value can be set later with SetValue.
func NewVariable(v *mat.Dense) *Variable {
	n := &Variable{}
	n.SetValue(v)
	return n
}

// Flatten returns vec(m): the entries of m read in the engine's
// canonical row-major order.
func Flatten(m mat.Matrix) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}
