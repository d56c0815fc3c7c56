package ast

// Node is implemented by every IR node, typed or flat. The String form is
// what diagnostics embed; it excludes span information so that two
// structurally identical nodes print identically.
//
// Node kinds are discriminated by their operator tag where one exists: a
// binary node's operator is part of its identity, so an addition and a
// subtraction over the same operands are distinct nodes.
type Node interface {
	NodeSpan() *Span
	String() string
}
