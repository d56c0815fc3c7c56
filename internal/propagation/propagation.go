// Package propagation implements constant propagation over the typed IR.
//
// The pass runs on the SSA form produced upstream: every identifier is
// assigned at most once, so a constant definition can be deleted from the
// program and cached in the constants environment. Partially constant
// aggregates are not tracked: `[x, 1]` is not a constant, `[0, 1]` is.
package propagation

import (
	"zkc/internal/field"
	"zkc/internal/typed"
)

// Constants caches the canonical constant value of every identifier known
// to be constant at the current program point. Values are boxed so that
// projected assignees can overwrite sub-slots in place.
type Constants map[typed.Identifier]*typed.Expr

// Propagator folds constants, checks types at IR level and eliminates dead
// branches. It implements typed.ResultFolder.
type Propagator struct {
	curve     field.Curve
	constants Constants
}

// NewPropagator builds a propagator with a fresh constants environment.
func NewPropagator(curve field.Curve) *Propagator {
	return WithConstants(curve, Constants{})
}

// WithConstants builds a propagator over a caller-owned constants
// environment, allowing several passes to share one cache.
func WithConstants(curve field.Curve, constants Constants) *Propagator {
	return &Propagator{curve: curve, constants: constants}
}

// Propagate runs the pass over the main module of p. Other modules pass
// through untouched: they are either already inlined or external.
func Propagate(p *typed.Program) (*typed.Program, error) {
	return NewPropagator(p.Curve).FoldProgram(p)
}

// FoldProgram folds the main function of the main module.
func (pr *Propagator) FoldProgram(p *typed.Program) (*typed.Program, error) {
	modules := make(map[string]*typed.Module, len(p.Modules))
	for id, module := range p.Modules {
		if id != p.Main {
			modules[id] = module
			continue
		}
		functions := make([]*typed.Function, len(module.Functions))
		for i, fn := range module.Functions {
			if fn.Name != "main" {
				functions[i] = fn
				continue
			}
			folded, err := typed.FoldFunction(pr, fn)
			if err != nil {
				return nil, err
			}
			functions[i] = folded
		}
		modules[id] = &typed.Module{Functions: functions}
	}
	return &typed.Program{Curve: p.Curve, Main: p.Main, Modules: modules}, nil
}

// tryGetConstantSlot walks an assignee path. It returns the identifier at
// the root of the path and, when every step is statically resolvable (the
// root is cached and each index is a literal), a pointer to the cached
// sub-slot. The cache stores canonical literal aggregates, so each step is
// a direct slot access; hitting a non-literal aggregate means the program
// is ill-typed and panics.
func (pr *Propagator) tryGetConstantSlot(a typed.Assignee) (typed.Variable, *typed.Expr, bool) {
	switch a := a.(type) {
	case *typed.AssigneeIdentifier:
		slot, ok := pr.constants[a.Variable.ID]
		if !ok {
			return a.Variable, nil, false
		}
		return a.Variable, slot, true
	case *typed.AssigneeSelect:
		root, slot, ok := pr.tryGetConstantSlot(a.Base)
		if !ok {
			return root, nil, false
		}
		index, isLiteral := a.Index.(*typed.UintValue)
		if !isLiteral {
			return root, nil, false
		}
		array, isArray := (*slot).(*typed.ArrayValue)
		if !isArray {
			panic("propagation: projected constant should be an array value")
		}
		if int(index.Value) >= len(array.Elements) {
			return root, nil, false
		}
		return root, &array.Elements[index.Value], true
	case *typed.AssigneeMember:
		root, slot, ok := pr.tryGetConstantSlot(a.Base)
		if !ok {
			return root, nil, false
		}
		structType, isStruct := a.Base.Type().(typed.StructType)
		if !isStruct {
			panic("propagation: projected constant should be a struct type")
		}
		value, isValue := (*slot).(*typed.StructValue)
		if !isValue {
			panic("propagation: projected constant should be a struct value")
		}
		return root, &value.Values[structType.MemberIndex(a.ID)], true
	case *typed.AssigneeElement:
		root, slot, ok := pr.tryGetConstantSlot(a.Base)
		if !ok {
			return root, nil, false
		}
		value, isValue := (*slot).(*typed.TupleValue)
		if !isValue {
			panic("propagation: projected constant should be a tuple value")
		}
		return root, &value.Values[a.Index], true
	}
	panic("propagation: unknown assignee")
}

// FoldAssignee folds projection indices inside the assignee path.
func (pr *Propagator) FoldAssignee(a typed.Assignee) (typed.Assignee, error) {
	return typed.FoldAssigneeDefault(pr, a)
}

// FoldStatement implements the statement-level rules of the pass.
func (pr *Propagator) FoldStatement(s typed.Statement) ([]typed.Statement, error) {
	switch s := s.(type) {
	case *typed.Definition:
		assignee, err := pr.FoldAssignee(s.Assignee)
		if err != nil {
			return nil, err
		}
		rhs, err := pr.FoldExpr(s.RHS)
		if err != nil {
			return nil, err
		}

		if !assignee.Type().Equal(rhs.Type()) {
			return nil, typeErrorf("Cannot assign %s of type %s to %s of type %s",
				rhs, rhs.Type(), assignee, assignee.Type())
		}

		if typed.IsConstant(rhs) {
			if id, isIdentifier := assignee.(*typed.AssigneeIdentifier); isIdentifier {
				if _, bound := pr.constants[id.Variable.ID]; bound {
					panic("propagation: identifier defined twice, SSA precondition violated")
				}
				canonical := typed.Canonicalise(rhs)
				pr.constants[id.Variable.ID] = &canonical
				return nil, nil
			}
			root, slot, ok := pr.tryGetConstantSlot(assignee)
			if ok {
				*slot = typed.Canonicalise(rhs)
				return nil, nil
			}
			return pr.flushAndDefine(root, &typed.Definition{Span: s.Span, Assignee: assignee, RHS: rhs}), nil
		}

		// Non-constant right-hand side: invalidate the cache for the root
		// identifier and, if a constant was cached, define its latest
		// version in the program so later uses see a coherent value.
		root, _, _ := pr.tryGetConstantSlot(assignee)
		return pr.flushAndDefine(root, &typed.Definition{Span: s.Span, Assignee: assignee, RHS: rhs}), nil

	case *typed.EmbedDefinition:
		return pr.foldEmbedDefinition(s)

	case *typed.Assertion:
		original := s.Expression.String()
		expression, err := pr.FoldExpr(s.Expression)
		if err != nil {
			return nil, err
		}
		if value, isLiteral := expression.(*typed.BoolValue); isLiteral {
			if value.Value {
				return nil, assertionFailed("%s: (%s)", s.Kind, original)
			}
			return nil, nil
		}
		return []typed.Statement{&typed.Assertion{Span: s.Span, Expression: expression, Kind: s.Kind}}, nil

	case *typed.For:
		// Loop bodies are unrolled upstream; only the bounds are folded.
		from, err := pr.FoldExpr(s.From)
		if err != nil {
			return nil, err
		}
		to, err := pr.FoldExpr(s.To)
		if err != nil {
			return nil, err
		}
		return []typed.Statement{&typed.For{Span: s.Span, Variable: s.Variable, From: from, To: to, Body: s.Body}}, nil

	case *typed.PushCallLog, *typed.PopCallLog:
		return []typed.Statement{s}, nil
	}
	return typed.FoldStatementDefault(pr, s)
}

// flushAndDefine removes any cached constant for root and, if one existed,
// re-emits it in front of the definition.
func (pr *Propagator) flushAndDefine(root typed.Variable, definition *typed.Definition) []typed.Statement {
	slot, cached := pr.constants[root.ID]
	if !cached {
		return []typed.Statement{definition}
	}
	delete(pr.constants, root.ID)
	restore := &typed.Definition{
		Assignee: &typed.AssigneeIdentifier{Variable: root},
		RHS:      *slot,
	}
	return []typed.Statement{restore, definition}
}
