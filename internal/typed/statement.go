package typed

import (
	"fmt"

	"zkc/internal/ast"
	"zkc/internal/field"
)

// Assignee is the left-hand side of a definition: an identifier or a
// projection path into one.
type Assignee interface {
	ast.Node
	Type() Type
	isAssignee()
}

// AssigneeIdentifier assigns a whole variable.
type AssigneeIdentifier struct {
	Span     *ast.Span
	Variable Variable
}

// AssigneeSelect assigns one array slot.
type AssigneeSelect struct {
	Span  *ast.Span
	Base  Assignee
	Index Expr
}

// AssigneeMember assigns one struct member.
type AssigneeMember struct {
	Span *ast.Span
	Base Assignee
	ID   string
}

// AssigneeElement assigns one tuple element.
type AssigneeElement struct {
	Span  *ast.Span
	Base  Assignee
	Index int
}

func (*AssigneeIdentifier) isAssignee() {}
func (*AssigneeSelect) isAssignee()     {}
func (*AssigneeMember) isAssignee()     {}
func (*AssigneeElement) isAssignee()    {}

func (a *AssigneeIdentifier) NodeSpan() *ast.Span { return a.Span }
func (a *AssigneeSelect) NodeSpan() *ast.Span     { return a.Span }
func (a *AssigneeMember) NodeSpan() *ast.Span     { return a.Span }
func (a *AssigneeElement) NodeSpan() *ast.Span    { return a.Span }

func (a *AssigneeIdentifier) Type() Type { return a.Variable.Ty }
func (a *AssigneeSelect) Type() Type     { return a.Base.Type().(ArrayType).Elem }
func (a *AssigneeMember) Type() Type     { return a.Base.Type().(StructType).Member(a.ID) }
func (a *AssigneeElement) Type() Type    { return a.Base.Type().(TupleType).Elements[a.Index] }

func (a *AssigneeIdentifier) String() string { return string(a.Variable.ID) }
func (a *AssigneeSelect) String() string     { return fmt.Sprintf("%s[%s]", a.Base, a.Index) }
func (a *AssigneeMember) String() string     { return fmt.Sprintf("%s.%s", a.Base, a.ID) }
func (a *AssigneeElement) String() string    { return fmt.Sprintf("%s.%d", a.Base, a.Index) }

// AssertionKind describes the source construct an assertion came from; it
// prefixes the diagnostic when the assertion is statically decided.
type AssertionKind string

const (
	AssertionKindUser    AssertionKind = "assertion"
	AssertionKindBounds  AssertionKind = "bounds check"
	AssertionKindDivisor AssertionKind = "division check"
)

// Statement is one statement of a typed function body.
type Statement interface {
	ast.Node
	isTypedStmt()
}

// Definition binds an assignee to an expression.
type Definition struct {
	Span     *ast.Span
	Assignee Assignee
	RHS      Expr
}

// EmbedDefinition binds an assignee to the result of an intrinsic call.
type EmbedDefinition struct {
	Span     *ast.Span
	Assignee Assignee
	Call     *EmbedCall
}

// Assertion constrains a boolean expression.
type Assertion struct {
	Span       *ast.Span
	Expression Expr
	Kind       AssertionKind
}

// For is a counted loop. Loop unrolling happens upstream; by the time the
// propagator runs, bodies are only descended into by generic folders.
type For struct {
	Span     *ast.Span
	Variable Variable
	From     Expr
	To       Expr
	Body     []Statement
}

// Return yields the program outputs.
type Return struct {
	Span       *ast.Span
	Expression Expr
}

// PushCallLog and PopCallLog bracket an inlined call for diagnostics.
type PushCallLog struct {
	Span     *ast.Span
	Function string
}

type PopCallLog struct {
	Span *ast.Span
}

// Log emits a formatted message at proving time.
type Log struct {
	Span   *ast.Span
	Format string
	Args   []Expr
}

func (*Definition) isTypedStmt()      {}
func (*EmbedDefinition) isTypedStmt() {}
func (*Assertion) isTypedStmt()       {}
func (*For) isTypedStmt()             {}
func (*Return) isTypedStmt()          {}
func (*PushCallLog) isTypedStmt()     {}
func (*PopCallLog) isTypedStmt()      {}
func (*Log) isTypedStmt()             {}

func (s *Definition) NodeSpan() *ast.Span      { return s.Span }
func (s *EmbedDefinition) NodeSpan() *ast.Span { return s.Span }
func (s *Assertion) NodeSpan() *ast.Span       { return s.Span }
func (s *For) NodeSpan() *ast.Span             { return s.Span }
func (s *Return) NodeSpan() *ast.Span          { return s.Span }
func (s *PushCallLog) NodeSpan() *ast.Span     { return s.Span }
func (s *PopCallLog) NodeSpan() *ast.Span      { return s.Span }
func (s *Log) NodeSpan() *ast.Span             { return s.Span }

func (s *Definition) String() string {
	return fmt.Sprintf("%s = %s", s.Assignee, s.RHS)
}

func (s *EmbedDefinition) String() string {
	return fmt.Sprintf("%s = %s", s.Assignee, s.Call)
}

func (s *Assertion) String() string {
	return fmt.Sprintf("assert(%s)", s.Expression)
}

func (s *For) String() string {
	return fmt.Sprintf("for %s in %s..%s", s.Variable, s.From, s.To)
}

func (s *Return) String() string      { return fmt.Sprintf("return %s", s.Expression) }
func (s *PushCallLog) String() string { return fmt.Sprintf("// call %s", s.Function) }
func (s *PopCallLog) String() string  { return "// ret" }
func (s *Log) String() string         { return fmt.Sprintf("log(%q)", s.Format) }

// Parameter is a typed main-function argument.
type Parameter struct {
	Variable Variable
	Private  bool
}

// Function is a typed function body. After inlining only main remains
// meaningful; other symbols pass through analysis untouched.
type Function struct {
	Name       string
	Arguments  []Parameter
	Statements []Statement
}

// Module groups function symbols.
type Module struct {
	Functions []*Function
}

// Program is a typed program: a set of modules and the name of the main
// module. A pass consumes a program and returns a new one.
type Program struct {
	Curve   field.Curve
	Main    string
	Modules map[string]*Module
}
