package typed

import "fmt"

// ResultFolder rewrites a typed program bottom-up and may fail with a
// typed error. Implementations override the hooks they need and delegate
// the rest to the FoldXDefault walkers, which visit children first (a
// single post-order traversal) and preserve spans on rebuilt nodes.
//
// FoldStatement returns a slice so a hook can replace one statement with
// several, or drop one.
type ResultFolder interface {
	FoldStatement(s Statement) ([]Statement, error)
	FoldExpr(e Expr) (Expr, error)
	FoldAssignee(a Assignee) (Assignee, error)
}

// FoldFunction folds every statement of fn through f.
func FoldFunction(f ResultFolder, fn *Function) (*Function, error) {
	var statements []Statement
	for _, s := range fn.Statements {
		folded, err := f.FoldStatement(s)
		if err != nil {
			return nil, err
		}
		statements = append(statements, folded...)
	}
	return &Function{Name: fn.Name, Arguments: fn.Arguments, Statements: statements}, nil
}

// FoldStatementDefault rebuilds s with every child folded through f.
func FoldStatementDefault(f ResultFolder, s Statement) ([]Statement, error) {
	switch s := s.(type) {
	case *Definition:
		assignee, err := f.FoldAssignee(s.Assignee)
		if err != nil {
			return nil, err
		}
		rhs, err := f.FoldExpr(s.RHS)
		if err != nil {
			return nil, err
		}
		return []Statement{&Definition{Span: s.Span, Assignee: assignee, RHS: rhs}}, nil
	case *EmbedDefinition:
		assignee, err := f.FoldAssignee(s.Assignee)
		if err != nil {
			return nil, err
		}
		call, err := FoldEmbedCall(f, s.Call)
		if err != nil {
			return nil, err
		}
		return []Statement{&EmbedDefinition{Span: s.Span, Assignee: assignee, Call: call}}, nil
	case *Assertion:
		expression, err := f.FoldExpr(s.Expression)
		if err != nil {
			return nil, err
		}
		return []Statement{&Assertion{Span: s.Span, Expression: expression, Kind: s.Kind}}, nil
	case *For:
		from, err := f.FoldExpr(s.From)
		if err != nil {
			return nil, err
		}
		to, err := f.FoldExpr(s.To)
		if err != nil {
			return nil, err
		}
		var body []Statement
		for _, inner := range s.Body {
			folded, err := f.FoldStatement(inner)
			if err != nil {
				return nil, err
			}
			body = append(body, folded...)
		}
		return []Statement{&For{Span: s.Span, Variable: s.Variable, From: from, To: to, Body: body}}, nil
	case *Return:
		expression, err := f.FoldExpr(s.Expression)
		if err != nil {
			return nil, err
		}
		return []Statement{&Return{Span: s.Span, Expression: expression}}, nil
	case *PushCallLog, *PopCallLog:
		return []Statement{s}, nil
	case *Log:
		args := make([]Expr, len(s.Args))
		for i, a := range s.Args {
			folded, err := f.FoldExpr(a)
			if err != nil {
				return nil, err
			}
			args[i] = folded
		}
		return []Statement{&Log{Span: s.Span, Format: s.Format, Args: args}}, nil
	}
	panic(fmt.Sprintf("typed: unknown statement %T", s))
}

// FoldAssigneeDefault rebuilds a with projection children folded.
func FoldAssigneeDefault(f ResultFolder, a Assignee) (Assignee, error) {
	switch a := a.(type) {
	case *AssigneeIdentifier:
		return a, nil
	case *AssigneeSelect:
		base, err := f.FoldAssignee(a.Base)
		if err != nil {
			return nil, err
		}
		index, err := f.FoldExpr(a.Index)
		if err != nil {
			return nil, err
		}
		return &AssigneeSelect{Span: a.Span, Base: base, Index: index}, nil
	case *AssigneeMember:
		base, err := f.FoldAssignee(a.Base)
		if err != nil {
			return nil, err
		}
		return &AssigneeMember{Span: a.Span, Base: base, ID: a.ID}, nil
	case *AssigneeElement:
		base, err := f.FoldAssignee(a.Base)
		if err != nil {
			return nil, err
		}
		return &AssigneeElement{Span: a.Span, Base: base, Index: a.Index}, nil
	}
	panic(fmt.Sprintf("typed: unknown assignee %T", a))
}

// FoldEmbedCall folds the arguments of an intrinsic call.
func FoldEmbedCall(f ResultFolder, c *EmbedCall) (*EmbedCall, error) {
	arguments := make([]Expr, len(c.Arguments))
	for i, a := range c.Arguments {
		folded, err := f.FoldExpr(a)
		if err != nil {
			return nil, err
		}
		arguments[i] = folded
	}
	return &EmbedCall{Span: c.Span, Embed: c.Embed, Generics: c.Generics, Arguments: arguments}, nil
}

// FoldExprDefault rebuilds e with children folded first.
func FoldExprDefault(f ResultFolder, e Expr) (Expr, error) {
	switch e := e.(type) {
	case *FieldValue, *BoolValue, *UintValue, *IdentifierExpr:
		return e, nil
	case *ArrayValue:
		elements, err := foldAll(f, e.Elements)
		if err != nil {
			return nil, err
		}
		return &ArrayValue{Span: e.Span, Elem: e.Elem, Elements: elements}, nil
	case *Spread:
		array, err := f.FoldExpr(e.Array)
		if err != nil {
			return nil, err
		}
		return &Spread{Span: e.Span, Array: array}, nil
	case *StructValue:
		values, err := foldAll(f, e.Values)
		if err != nil {
			return nil, err
		}
		return &StructValue{Span: e.Span, Ty: e.Ty, Values: values}, nil
	case *TupleValue:
		values, err := foldAll(f, e.Values)
		if err != nil {
			return nil, err
		}
		return &TupleValue{Span: e.Span, Ty: e.Ty, Values: values}, nil
	case *BinaryExpr:
		left, err := f.FoldExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := f.FoldExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Span: e.Span, Op: e.Op, Left: left, Right: right}, nil
	case *UnaryExpr:
		inner, err := f.FoldExpr(e.Inner)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Span: e.Span, Op: e.Op, Inner: inner}, nil
	case *Conditional:
		condition, err := f.FoldExpr(e.Condition)
		if err != nil {
			return nil, err
		}
		consequence, err := f.FoldExpr(e.Consequence)
		if err != nil {
			return nil, err
		}
		alternative, err := f.FoldExpr(e.Alternative)
		if err != nil {
			return nil, err
		}
		return &Conditional{Span: e.Span, Condition: condition, Consequence: consequence, Alternative: alternative}, nil
	case *Select:
		array, err := f.FoldExpr(e.Array)
		if err != nil {
			return nil, err
		}
		index, err := f.FoldExpr(e.Index)
		if err != nil {
			return nil, err
		}
		return &Select{Span: e.Span, Array: array, Index: index}, nil
	case *Member:
		strct, err := f.FoldExpr(e.Struct)
		if err != nil {
			return nil, err
		}
		return &Member{Span: e.Span, Struct: strct, ID: e.ID}, nil
	case *Element:
		tuple, err := f.FoldExpr(e.Tuple)
		if err != nil {
			return nil, err
		}
		return &Element{Span: e.Span, Tuple: tuple, Index: e.Index}, nil
	}
	panic(fmt.Sprintf("typed: unknown expression %T", e))
}

func foldAll(f ResultFolder, exprs []Expr) ([]Expr, error) {
	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		folded, err := f.FoldExpr(e)
		if err != nil {
			return nil, err
		}
		out[i] = folded
	}
	return out, nil
}
