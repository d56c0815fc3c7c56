package flat

import (
	"fmt"
	"strings"

	"zkc/internal/ast"
	"zkc/internal/field"
	"zkc/internal/typed"
)

// RuntimeError names the prover-facing failure a condition guards against.
type RuntimeError string

const (
	RuntimeErrorSourceAssertion RuntimeError = "assertion failed"
	RuntimeErrorInverse         RuntimeError = "inverse undefined"
	RuntimeErrorBitness         RuntimeError = "bitness check failed"
	RuntimeErrorSelectRange     RuntimeError = "select out of range"
)

// Statement is a single instruction of a flat program.
type Statement interface {
	ast.Node
	isFlatStmt()
}

// Condition asserts that its expression evaluates to zero.
type Condition struct {
	Span       *ast.Span
	Expression Expr
	Error      RuntimeError
}

// Definition binds a variable to the value of an expression.
type Definition struct {
	Span     *ast.Span
	Assignee Variable
	RHS      Expr
}

// Directive is a non-deterministic witness binding: the prover runs the
// solver over the inputs and records the outputs in the witness.
type Directive struct {
	Span    *ast.Span
	Inputs  []Expr
	Outputs []Variable
	Solver  Solver
}

// LogArg is one typed group of expressions interpolated into a log line.
type LogArg struct {
	Type  typed.Type
	Exprs []Expr
}

// Log emits a formatted message at proving time.
type Log struct {
	Span   *ast.Span
	Format string
	Args   []LogArg
}

func (*Condition) isFlatStmt()  {}
func (*Definition) isFlatStmt() {}
func (*Directive) isFlatStmt()  {}
func (*Log) isFlatStmt()        {}

func (s *Condition) NodeSpan() *ast.Span  { return s.Span }
func (s *Definition) NodeSpan() *ast.Span { return s.Span }
func (s *Directive) NodeSpan() *ast.Span  { return s.Span }
func (s *Log) NodeSpan() *ast.Span        { return s.Span }

func (s *Condition) String() string {
	return fmt.Sprintf("%s == 0 // %s", s.Expression, s.Error)
}

func (s *Definition) String() string {
	return fmt.Sprintf("%s = %s", s.Assignee, s.RHS)
}

func (s *Directive) String() string {
	outs := make([]string, len(s.Outputs))
	for i, o := range s.Outputs {
		outs[i] = o.String()
	}
	ins := make([]string, len(s.Inputs))
	for i, in := range s.Inputs {
		ins[i] = in.String()
	}
	return fmt.Sprintf("# %s = %s(%s)", strings.Join(outs, ", "), s.Solver, strings.Join(ins, ", "))
}

func (s *Log) String() string {
	return fmt.Sprintf("log(%q)", s.Format)
}

// NewDefinition binds assignee to rhs.
func NewDefinition(assignee Variable, rhs Expr) *Definition {
	return &Definition{Assignee: assignee, RHS: rhs}
}

// NewAssertion asserts expression == 0.
func NewAssertion(expression Expr, err RuntimeError) *Condition {
	return &Condition{Expression: expression, Error: err}
}

// NewCondition asserts left == right, as sugar for an assertion over their
// difference.
func NewCondition(left, right Expr, err RuntimeError) *Condition {
	return NewAssertion(Sub(left, right), err)
}

// NewDirective builds a directive, checking the solver signature against
// the provided arities. A mismatch is a programming error.
func NewDirective(outputs []Variable, solver Solver, inputs []Expr) *Directive {
	inCount, outCount := solver.Signature()
	if inCount != len(inputs) || outCount != len(outputs) {
		panic(fmt.Sprintf("flat: directive arity mismatch for %s: got %d inputs, %d outputs", solver, len(inputs), len(outputs)))
	}
	return &Directive{Inputs: inputs, Outputs: outputs, Solver: solver}
}

// ApplySubstitution rewrites every variable reference of the statement
// through sub, returning a new statement.
func ApplySubstitution(s Statement, sub map[Variable]Variable) Statement {
	switch s := s.(type) {
	case *Condition:
		return &Condition{Span: s.Span, Expression: s.Expression.ApplySubstitution(sub), Error: s.Error}
	case *Definition:
		assignee := s.Assignee
		if r, ok := sub[assignee]; ok {
			assignee = r
		}
		return &Definition{Span: s.Span, Assignee: assignee, RHS: s.RHS.ApplySubstitution(sub)}
	case *Directive:
		inputs := make([]Expr, len(s.Inputs))
		for i, in := range s.Inputs {
			inputs[i] = in.ApplySubstitution(sub)
		}
		outputs := make([]Variable, len(s.Outputs))
		for i, o := range s.Outputs {
			outputs[i] = o
			if r, ok := sub[o]; ok {
				outputs[i] = r
			}
		}
		return &Directive{Span: s.Span, Inputs: inputs, Outputs: outputs, Solver: s.Solver}
	case *Log:
		args := make([]LogArg, len(s.Args))
		for i, a := range s.Args {
			exprs := make([]Expr, len(a.Exprs))
			for j, e := range a.Exprs {
				exprs[j] = e.ApplySubstitution(sub)
			}
			args[i] = LogArg{Type: a.Type, Exprs: exprs}
		}
		return &Log{Span: s.Span, Format: s.Format, Args: args}
	}
	panic(fmt.Sprintf("flat: unknown statement %T", s))
}

// Prog is a flat program: the fully inlined main function.
type Prog struct {
	Curve       field.Curve
	Arguments   []Parameter
	ReturnCount int
	Statements  []Statement
}
