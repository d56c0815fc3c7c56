package r1cs

import (
	"zkc/internal/field"
	"zkc/internal/flat"
)

// SparseTerm is a matrix entry: a column index and its coefficient.
type SparseTerm struct {
	Column int
	Value  field.Element
}

// SparseVec is one sparse matrix row.
type SparseVec []SparseTerm

// SparseConstraint is one (A, B, C) row triple.
type SparseConstraint struct {
	A SparseVec
	B SparseVec
	C SparseVec
}

// provideVariableIdx returns the column of v, assigning the next fresh
// column on first occurrence.
func provideVariableIdx(variables map[flat.Variable]int, v flat.Variable) int {
	if idx, ok := variables[v]; ok {
		return idx
	}
	idx := len(variables)
	variables[v] = idx
	return idx
}

// Lower linearises p into sparse constraint rows. It returns the column
// order, the number of public variables, and the rows.
//
// The column layout is binding for the proof backends, which split the
// witness on a "public variables first" convention:
//
//	column 0                    the constant-1 wire
//	columns 1..=K               non-private arguments, in source order
//	next ReturnCount columns    public outputs ~out_0, ~out_1, ...
//	remaining columns           other variables, in first-occurrence order
func Lower(p Prog) ([]flat.Variable, int, []SparseConstraint) {
	variables := map[flat.Variable]int{}
	provideVariableIdx(variables, flat.One())

	for _, argument := range p.Arguments {
		if !argument.Private {
			provideVariableIdx(variables, argument.Variable)
		}
	}

	for _, output := range p.Returns() {
		provideVariableIdx(variables, output)
	}

	publicVariablesCount := len(variables)

	// First pass: assign columns to every wire referenced by a constraint.
	for _, s := range p.Statements {
		constraint, isConstraint := s.(*Constraint)
		if !isConstraint {
			continue
		}
		for _, term := range constraint.Quad.Left {
			provideVariableIdx(variables, term.Variable)
		}
		for _, term := range constraint.Quad.Right {
			provideVariableIdx(variables, term.Variable)
		}
		for _, term := range constraint.Lin {
			provideVariableIdx(variables, term.Variable)
		}
	}

	// Second pass: emit the sparse rows against the settled columns.
	var constraints []SparseConstraint
	for _, s := range p.Statements {
		constraint, isConstraint := s.(*Constraint)
		if !isConstraint {
			continue
		}
		constraints = append(constraints, SparseConstraint{
			A: sparse(variables, constraint.Quad.Left),
			B: sparse(variables, constraint.Quad.Right),
			C: sparse(variables, constraint.Lin),
		})
	}

	ordered := make([]flat.Variable, len(variables))
	for v, idx := range variables {
		ordered[idx] = v
	}
	return ordered, publicVariablesCount, constraints
}

func sparse(variables map[flat.Variable]int, comb LinComb) SparseVec {
	row := make(SparseVec, len(comb))
	for i, term := range comb {
		row[i] = SparseTerm{Column: variables[term.Variable], Value: term.Coefficient}
	}
	return row
}
