// Package r1cs lowers a linearised constraint program into sparse
// (A, B, C) matrices with the byte-exact layout the native proof backends
// ingest.
package r1cs

import (
	"zkc/internal/ast"
	"zkc/internal/field"
	"zkc/internal/flat"
)

// Term is one weighted wire of a linear combination.
type Term struct {
	Variable    flat.Variable
	Coefficient field.Element
}

// LinComb is a linear combination of wires.
type LinComb []Term

// QuadComb is the product of two linear combinations.
type QuadComb struct {
	Left  LinComb
	Right LinComb
}

// Statement is either a rank-1 constraint or a witness directive.
type Statement interface {
	isConstraintStmt()
}

// Constraint asserts Quad.Left * Quad.Right == Lin over the witness.
type Constraint struct {
	Span  *ast.Span
	Quad  QuadComb
	Lin   LinComb
	Error flat.RuntimeError
}

// Directive carries a witness-generation instruction. Directives do not
// contribute constraints and are skipped during lowering.
type Directive struct {
	Span    *ast.Span
	Inputs  []LinComb
	Outputs []flat.Variable
	Solver  flat.Solver
}

func (*Constraint) isConstraintStmt() {}
func (*Directive) isConstraintStmt()  {}

// Prog is a constraint program over the main function's wires.
type Prog struct {
	Curve       field.Curve
	Arguments   []flat.Parameter
	ReturnCount int
	Statements  []Statement
}

// Returns lists the program's public output wires in order.
func (p Prog) Returns() []flat.Variable {
	out := make([]flat.Variable, p.ReturnCount)
	for i := range out {
		out[i] = flat.Public(i)
	}
	return out
}
