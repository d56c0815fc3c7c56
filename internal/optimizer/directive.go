// Package optimizer removes redundant non-deterministic solver calls from
// flat programs:
//
//	b := solver(a)
//	c := solver(a)
//
// becomes a single call, with every later use of c rewritten to b.
package optimizer

import (
	"fmt"
	"strings"

	"zkc/internal/flat"
)

// DirectiveOptimizer deduplicates directives that invoke the same solver
// over structurally identical inputs. Inputs are expected to already be in
// canonical form (after propagation); the key comparison is structural, so
// uncanonicalised duplicates are missed, never miscompiled.
type DirectiveOptimizer struct {
	calls        map[string][]flat.Variable
	substitution map[flat.Variable]flat.Variable
}

func NewDirectiveOptimizer() *DirectiveOptimizer {
	return &DirectiveOptimizer{
		calls:        map[string][]flat.Variable{},
		substitution: map[flat.Variable]flat.Variable{},
	}
}

// Optimize runs the deduplication over p.
func (o *DirectiveOptimizer) Optimize(p flat.Prog) flat.Prog {
	return flat.FoldProg(o, p)
}

func (o *DirectiveOptimizer) FoldVariable(v flat.Variable) flat.Variable {
	if r, ok := o.substitution[v]; ok {
		return r
	}
	return v
}

func (o *DirectiveOptimizer) FoldExpr(e flat.Expr) flat.Expr {
	return flat.FoldExprDefault(o, e)
}

func (o *DirectiveOptimizer) FoldDirective(d *flat.Directive) *flat.Directive {
	return flat.FoldDirectiveDefault(o, d)
}

func (o *DirectiveOptimizer) FoldStatement(s flat.Statement) []flat.Statement {
	d, isDirective := s.(*flat.Directive)
	if !isDirective {
		return flat.FoldStatementDefault(o, s)
	}

	// Rewrite inputs first so the key sees the deduplicated wires.
	d = o.FoldDirective(d)

	key := callKey(d)
	previous, seen := o.calls[key]
	if !seen {
		o.calls[key] = d.Outputs
		return []flat.Statement{d}
	}

	// The call is redundant: route this directive's outputs to the
	// previous outputs. Each output is substituted at most once because
	// upstream passes never reuse an output variable.
	for i, out := range d.Outputs {
		o.substitution[out] = previous[i]
	}
	return nil
}

// callKey identifies a solver invocation by solver identity and the
// structural form of its inputs.
func callKey(d *flat.Directive) string {
	inputs := make([]string, len(d.Inputs))
	for i, in := range d.Inputs {
		inputs[i] = in.String()
	}
	inCount, outCount := d.Solver.Signature()
	return fmt.Sprintf("%s/%d/%d(%s)", d.Solver.Name, inCount, outCount, strings.Join(inputs, ", "))
}
