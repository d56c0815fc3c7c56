package flat

import "fmt"

// Folder rewrites a flat program bottom-up. Implementations provide the
// hooks they care about and delegate the rest to the FoldXDefault walkers,
// which visit children first and preserve spans on rebuilt nodes.
//
// FoldStatement returns a slice so that a hook may expand one statement
// into several, or drop one entirely.
type Folder interface {
	FoldVariable(v Variable) Variable
	FoldExpr(e Expr) Expr
	FoldStatement(s Statement) []Statement
	FoldDirective(d *Directive) *Directive
}

// FoldProg runs f over every statement of p.
func FoldProg(f Folder, p Prog) Prog {
	arguments := make([]Parameter, len(p.Arguments))
	for i, a := range p.Arguments {
		arguments[i] = Parameter{Variable: f.FoldVariable(a.Variable), Private: a.Private}
	}
	var statements []Statement
	for _, s := range p.Statements {
		statements = append(statements, f.FoldStatement(s)...)
	}
	return Prog{
		Curve:       p.Curve,
		Arguments:   arguments,
		ReturnCount: p.ReturnCount,
		Statements:  statements,
	}
}

// FoldStatementDefault rebuilds s with every child folded through f.
func FoldStatementDefault(f Folder, s Statement) []Statement {
	switch s := s.(type) {
	case *Condition:
		return []Statement{&Condition{Span: s.Span, Expression: f.FoldExpr(s.Expression), Error: s.Error}}
	case *Definition:
		return []Statement{&Definition{Span: s.Span, Assignee: f.FoldVariable(s.Assignee), RHS: f.FoldExpr(s.RHS)}}
	case *Directive:
		return []Statement{f.FoldDirective(s)}
	case *Log:
		args := make([]LogArg, len(s.Args))
		for i, a := range s.Args {
			exprs := make([]Expr, len(a.Exprs))
			for j, e := range a.Exprs {
				exprs[j] = f.FoldExpr(e)
			}
			args[i] = LogArg{Type: a.Type, Exprs: exprs}
		}
		return []Statement{&Log{Span: s.Span, Format: s.Format, Args: args}}
	}
	panic(fmt.Sprintf("flat: unknown statement %T", s))
}

// FoldExprDefault rebuilds e with children folded first.
func FoldExprDefault(f Folder, e Expr) Expr {
	switch e := e.(type) {
	case *Number:
		return e
	case *Identifier:
		return &Identifier{Span: e.Span, Variable: f.FoldVariable(e.Variable)}
	case *BinaryExpr:
		return &BinaryExpr{Span: e.Span, Op: e.Op, Left: f.FoldExpr(e.Left), Right: f.FoldExpr(e.Right)}
	}
	panic(fmt.Sprintf("flat: unknown expression %T", e))
}

// FoldDirectiveDefault folds the inputs and outputs of d.
func FoldDirectiveDefault(f Folder, d *Directive) *Directive {
	inputs := make([]Expr, len(d.Inputs))
	for i, in := range d.Inputs {
		inputs[i] = f.FoldExpr(in)
	}
	outputs := make([]Variable, len(d.Outputs))
	for i, o := range d.Outputs {
		outputs[i] = f.FoldVariable(o)
	}
	return &Directive{Span: d.Span, Inputs: inputs, Outputs: outputs, Solver: d.Solver}
}
