package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zkc/internal/field"
	"zkc/internal/typed"
)

func fv(v uint64) *typed.FieldValue {
	return &typed.FieldValue{Value: field.BN254.FromUint64(v)}
}

func uv(bitwidth int, v uint64) *typed.UintValue {
	return &typed.UintValue{Bitwidth: bitwidth, Value: v}
}

func bv(v bool) *typed.BoolValue {
	return &typed.BoolValue{Value: v}
}

func fieldIdent(name string) *typed.IdentifierExpr {
	return &typed.IdentifierExpr{ID: typed.Identifier(name), Ty: typed.FieldElementType{}}
}

func uintIdent(name string, bitwidth int) *typed.IdentifierExpr {
	return &typed.IdentifierExpr{ID: typed.Identifier(name), Ty: typed.UintType{Bitwidth: bitwidth}}
}

func boolIdent(name string) *typed.IdentifierExpr {
	return &typed.IdentifierExpr{ID: typed.Identifier(name), Ty: typed.BooleanType{}}
}

func binary(op typed.BinaryOp, l, r typed.Expr) *typed.BinaryExpr {
	return &typed.BinaryExpr{Op: op, Left: l, Right: r}
}

func fieldVar(name string) typed.Variable {
	return typed.Variable{ID: typed.Identifier(name), Ty: typed.FieldElementType{}}
}

func assignIdent(v typed.Variable) *typed.AssigneeIdentifier {
	return &typed.AssigneeIdentifier{Variable: v}
}

func program(statements ...typed.Statement) *typed.Program {
	return &typed.Program{
		Curve: field.BN254,
		Main:  "main",
		Modules: map[string]*typed.Module{
			"main": {Functions: []*typed.Function{{Name: "main", Statements: statements}}},
		},
	}
}

func mainStatements(t *testing.T, p *typed.Program) []typed.Statement {
	t.Helper()
	module, ok := p.Modules[p.Main]
	require.True(t, ok)
	for _, fn := range module.Functions {
		if fn.Name == "main" {
			return fn.Statements
		}
	}
	t.Fatal("no main function")
	return nil
}

func statementStrings(statements []typed.Statement) []string {
	out := make([]string, len(statements))
	for i, s := range statements {
		out[i] = s.String()
	}
	return out
}

func foldExpr(t *testing.T, e typed.Expr) typed.Expr {
	t.Helper()
	folded, err := NewPropagator(field.BN254).FoldExpr(e)
	require.NoError(t, err)
	return folded
}

func TestFieldArithmeticFolds(t *testing.T) {
	tests := []struct {
		name string
		expr typed.Expr
		want string
	}{
		{"add", binary(typed.OpFieldAdd, fv(2), fv(3)), "5"},
		{"sub", binary(typed.OpFieldSub, fv(3), fv(2)), "1"},
		{"mul", binary(typed.OpFieldMul, fv(3), fv(2)), "6"},
		{"div", binary(typed.OpFieldDiv, fv(6), fv(2)), "3"},
		{"pow", binary(typed.OpFieldPow, fv(2), uv(32, 10)), "1024"},
		{"nested", binary(typed.OpFieldMul, binary(typed.OpFieldAdd, fv(1), fv(2)), fv(4)), "12"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, foldExpr(t, test.expr).String())
		})
	}
}

func TestFieldArithmeticRebuildsOnNonConstants(t *testing.T) {
	x := fieldIdent("x")

	folded := foldExpr(t, binary(typed.OpFieldAdd, fv(2), x))
	assert.Equal(t, "(2 + x)", folded.String())
}

func TestPowZeroExponentFoldsRegardlessOfBase(t *testing.T) {
	x := fieldIdent("x")

	folded := foldExpr(t, binary(typed.OpFieldPow, x, uv(32, 0)))
	assert.Equal(t, "1", folded.String())
}

func TestPowNonConstantExponent(t *testing.T) {
	e := binary(typed.OpFieldPow, fieldIdent("x"), uintIdent("n", 32))

	_, err := NewPropagator(field.BN254).FoldExpr(e)
	require.Error(t, err)
	assert.Equal(t, ErrorNonConstantExponent, err.(*Error).Kind)
	assert.Contains(t, err.Error(), "n")
}

func TestUintArithmeticFolds(t *testing.T) {
	x := uintIdent("x", 8)

	tests := []struct {
		name string
		expr typed.Expr
		want string
	}{
		{"add wraps", binary(typed.OpUintAdd, uv(8, 200), uv(8, 100)), "44"},
		{"add zero identity", binary(typed.OpUintAdd, x, uv(8, 0)), "x"},
		{"sub wraps", binary(typed.OpUintSub, uv(8, 2), uv(8, 3)), "255"},
		{"sub zero identity", binary(typed.OpUintSub, x, uv(8, 0)), "x"},
		{"floor_sub saturates", binary(typed.OpUintFloorSub, uv(8, 2), uv(8, 5)), "0"},
		{"floor_sub zero identity", binary(typed.OpUintFloorSub, x, uv(8, 0)), "x"},
		{"mul", binary(typed.OpUintMul, uv(8, 16), uv(8, 16)), "0"},
		{"mul by zero", binary(typed.OpUintMul, x, uv(8, 0)), "0"},
		{"mul by one", binary(typed.OpUintMul, x, uv(8, 1)), "x"},
		{"div", binary(typed.OpUintDiv, uv(8, 7), uv(8, 2)), "3"},
		{"div by one", binary(typed.OpUintDiv, x, uv(8, 1)), "x"},
		{"rem", binary(typed.OpUintRem, uv(8, 7), uv(8, 4)), "3"},
		{"rem by one", binary(typed.OpUintRem, x, uv(8, 1)), "0"},
		{"left shift masks", binary(typed.OpUintLeftShift, uv(8, 129), uv(32, 1)), "2"},
		{"right shift", binary(typed.OpUintRightShift, uv(8, 129), uv(32, 1)), "64"},
		{"xor", binary(typed.OpUintXor, uv(8, 6), uv(8, 3)), "5"},
		{"xor zero identity", binary(typed.OpUintXor, uv(8, 0), x), "x"},
		{"xor self", binary(typed.OpUintXor, x, uintIdent("x", 8)), "0"},
		{"and", binary(typed.OpUintAnd, uv(8, 6), uv(8, 3)), "2"},
		{"and zero", binary(typed.OpUintAnd, x, uv(8, 0)), "0"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, foldExpr(t, test.expr).String())
		})
	}
}

func TestUintXorDistinctTreesRebuild(t *testing.T) {
	// Tree inequality proves nothing: x ^ y stays as it is.
	folded := foldExpr(t, binary(typed.OpUintXor, uintIdent("x", 8), uintIdent("y", 8)))
	assert.Equal(t, "(x ^ y)", folded.String())
}

func TestUintAndMaskIdentityNotReduced(t *testing.T) {
	folded := foldExpr(t, binary(typed.OpUintAnd, uintIdent("x", 8), uv(8, 255)))
	assert.Equal(t, "(x & 255)", folded.String())
}

func TestUintFloorSubRebuildsUnchanged(t *testing.T) {
	// Neither operand constant: the node is rebuilt as floor_sub, not
	// demoted to a wrapping sub.
	folded := foldExpr(t, binary(typed.OpUintFloorSub, uintIdent("x", 8), uintIdent("y", 8)))
	assert.Equal(t, "floor_sub(x, y)", folded.String())
}

func TestUintUnaryFolds(t *testing.T) {
	assert.Equal(t, "254", foldExpr(t, &typed.UnaryExpr{Op: typed.OpNeg, Inner: uv(8, 2)}).String())
	assert.Equal(t, "253", foldExpr(t, &typed.UnaryExpr{Op: typed.OpUintNot, Inner: uv(8, 2)}).String())
	assert.Equal(t, "2", foldExpr(t, &typed.UnaryExpr{Op: typed.OpPos, Inner: uv(8, 2)}).String())
}

func TestFieldNegFolds(t *testing.T) {
	folded := foldExpr(t, &typed.UnaryExpr{Op: typed.OpNeg, Inner: fv(5)})

	sum := foldExpr(t, binary(typed.OpFieldAdd, folded, fv(5)))
	assert.Equal(t, "0", sum.String())
}

func TestBooleanFolds(t *testing.T) {
	c := boolIdent("c")

	tests := []struct {
		name string
		expr typed.Expr
		want string
	}{
		{"and constants", binary(typed.OpBoolAnd, bv(true), bv(false)), "false"},
		{"and true identity", binary(typed.OpBoolAnd, c, bv(true)), "c"},
		{"and false annihilates", binary(typed.OpBoolAnd, c, bv(false)), "false"},
		{"or constants", binary(typed.OpBoolOr, bv(false), bv(true)), "true"},
		{"or false identity", binary(typed.OpBoolOr, c, bv(false)), "c"},
		{"or true annihilates", binary(typed.OpBoolOr, c, bv(true)), "true"},
		{"not", &typed.UnaryExpr{Op: typed.OpBoolNot, Inner: bv(true)}, "false"},
		{"field lt", binary(typed.OpFieldLt, fv(2), fv(3)), "true"},
		{"field le", binary(typed.OpFieldLe, fv(3), fv(3)), "true"},
		{"uint lt", binary(typed.OpUintLt, uv(32, 3), uv(32, 2)), "false"},
		{"uint le", binary(typed.OpUintLe, uv(32, 2), uv(32, 2)), "true"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, foldExpr(t, test.expr).String())
		})
	}
}

func TestEqIdenticalTreesFoldToTrue(t *testing.T) {
	// The same tree resolves to the same wires, so equality holds even
	// though the value is unknown.
	e := binary(typed.OpEq, fieldIdent("a"), fieldIdent("a"))
	assert.Equal(t, "true", foldExpr(t, e).String())
}

func TestEqDistinctTreesRebuild(t *testing.T) {
	// a == 1 may still hold at runtime; nothing folds.
	e := binary(typed.OpEq, fieldIdent("a"), fv(1))
	assert.Equal(t, "(a == 1)", foldExpr(t, e).String())
}

func TestEqConstantsCompareCanonically(t *testing.T) {
	assert.Equal(t, "true", foldExpr(t, binary(typed.OpEq, fv(5), fv(5))).String())
	assert.Equal(t, "false", foldExpr(t, binary(typed.OpEq, fv(5), fv(6))).String())
}

func TestEqTypeMismatch(t *testing.T) {
	e := binary(typed.OpEq, fieldIdent("a"), uv(32, 1))

	_, err := NewPropagator(field.BN254).FoldExpr(e)
	require.Error(t, err)
	assert.Equal(t, ErrorType, err.(*Error).Kind)
}

func TestConditionalFolds(t *testing.T) {
	a := fieldIdent("a")
	b := fieldIdent("b")
	c := boolIdent("c")

	folded := foldExpr(t, &typed.Conditional{Condition: bv(true), Consequence: a, Alternative: b})
	assert.Equal(t, "a", folded.String())

	folded = foldExpr(t, &typed.Conditional{Condition: bv(false), Consequence: a, Alternative: b})
	assert.Equal(t, "b", folded.String())

	folded = foldExpr(t, &typed.Conditional{Condition: c, Consequence: a, Alternative: fieldIdent("a")})
	assert.Equal(t, "a", folded.String())

	folded = foldExpr(t, &typed.Conditional{Condition: c, Consequence: a, Alternative: b})
	assert.Equal(t, "if c then a else b fi", folded.String())
}

func fieldArray(values ...uint64) *typed.ArrayValue {
	elements := make([]typed.Expr, len(values))
	for i, v := range values {
		elements[i] = fv(v)
	}
	return &typed.ArrayValue{Elem: typed.FieldElementType{}, Elements: elements}
}

func TestSelectLiteralArray(t *testing.T) {
	e := &typed.Select{Array: fieldArray(1, 2, 3), Index: uv(32, 1)}
	assert.Equal(t, "2", foldExpr(t, e).String())
}

func TestSelectOutOfBounds(t *testing.T) {
	e := &typed.Select{Array: fieldArray(1, 2, 3), Index: uv(32, 4)}

	_, err := NewPropagator(field.BN254).FoldExpr(e)
	require.Error(t, err)
	propagationErr := err.(*Error)
	assert.Equal(t, ErrorOutOfBounds, propagationErr.Kind)
	assert.Equal(t, uint64(4), propagationErr.Index)
	assert.Equal(t, 3, propagationErr.Size)
	assert.Equal(t, "Out of bounds index (4 >= 3) found during static analysis", err.Error())
}

func TestSelectThroughConstantIdentifier(t *testing.T) {
	arrayVar := typed.Variable{ID: "a", Ty: typed.ArrayType{Elem: typed.FieldElementType{}, Size: 3}}
	yVar := fieldVar("y")
	arrayIdent := &typed.IdentifierExpr{ID: "a", Ty: arrayVar.Ty}

	p := program(
		&typed.Definition{Assignee: assignIdent(arrayVar), RHS: fieldArray(1, 2, 3)},
		&typed.Definition{Assignee: assignIdent(yVar), RHS: binary(typed.OpFieldMul, &typed.Select{Array: arrayIdent, Index: uv(32, 2)}, fieldIdent("x"))},
	)

	folded, err := Propagate(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"y = (3 * x)"}, statementStrings(mainStatements(t, folded)))
}

func TestSelectOutOfBoundsThroughIdentifier(t *testing.T) {
	arrayVar := typed.Variable{ID: "a", Ty: typed.ArrayType{Elem: typed.FieldElementType{}, Size: 3}}
	yVar := fieldVar("y")
	arrayIdent := &typed.IdentifierExpr{ID: "a", Ty: arrayVar.Ty}

	p := program(
		&typed.Definition{Assignee: assignIdent(arrayVar), RHS: fieldArray(1, 2, 3)},
		&typed.Definition{Assignee: assignIdent(yVar), RHS: &typed.Select{Array: arrayIdent, Index: uv(32, 4)}},
	)

	_, err := Propagate(p)
	require.Error(t, err)
	assert.Equal(t, ErrorOutOfBounds, err.(*Error).Kind)
}

func TestMemberOfLiteralStruct(t *testing.T) {
	point := typed.StructType{Module: "geometry", Name: "Point", Members: []typed.StructMember{
		{ID: "x", Type: typed.FieldElementType{}},
		{ID: "y", Type: typed.FieldElementType{}},
	}}
	literal := &typed.StructValue{Ty: point, Values: []typed.Expr{fv(1), fv(2)}}

	folded := foldExpr(t, &typed.Member{Struct: literal, ID: "y"})
	assert.Equal(t, "2", folded.String())
}

func TestStructLiteralMemberTypeMismatch(t *testing.T) {
	point := typed.StructType{Module: "geometry", Name: "Point", Members: []typed.StructMember{
		{ID: "x", Type: typed.FieldElementType{}},
	}}
	literal := &typed.StructValue{Ty: point, Values: []typed.Expr{bv(true)}}

	_, err := NewPropagator(field.BN254).FoldExpr(literal)
	require.Error(t, err)
	assert.Equal(t, ErrorType, err.(*Error).Kind)
	assert.Contains(t, err.Error(), "`x`")
}

func TestElementOfLiteralTuple(t *testing.T) {
	pair := typed.TupleType{Elements: []typed.Type{typed.FieldElementType{}, typed.BooleanType{}}}
	literal := &typed.TupleValue{Ty: pair, Values: []typed.Expr{fv(7), bv(true)}}

	folded := foldExpr(t, &typed.Element{Tuple: literal, Index: 0})
	assert.Equal(t, "7", folded.String())
}

func TestTupleLiteralElementTypeMismatch(t *testing.T) {
	pair := typed.TupleType{Elements: []typed.Type{typed.FieldElementType{}}}
	literal := &typed.TupleValue{Ty: pair, Values: []typed.Expr{bv(true)}}

	_, err := NewPropagator(field.BN254).FoldExpr(literal)
	require.Error(t, err)
	assert.Equal(t, ErrorType, err.(*Error).Kind)
}

func TestConstantDefinitionIsElided(t *testing.T) {
	a := fieldVar("a")
	b := fieldVar("b")

	p := program(
		&typed.Definition{Assignee: assignIdent(a), RHS: binary(typed.OpFieldAdd, fv(2), fv(3))},
		&typed.Definition{Assignee: assignIdent(b), RHS: binary(typed.OpFieldMul, fieldIdent("a"), fieldIdent("x"))},
	)

	folded, err := Propagate(p)
	require.NoError(t, err)

	// a is cached, not emitted; its value reaches b's definition.
	assert.Equal(t, []string{"b = (5 * x)"}, statementStrings(mainStatements(t, folded)))
}

func TestAssertionStaticallySatisfied(t *testing.T) {
	a := fieldVar("a")

	p := program(
		&typed.Definition{Assignee: assignIdent(a), RHS: binary(typed.OpFieldAdd, fv(2), fv(3))},
		&typed.Assertion{
			Kind:       typed.AssertionKindUser,
			Expression: &typed.UnaryExpr{Op: typed.OpBoolNot, Inner: binary(typed.OpEq, fieldIdent("a"), fv(5))},
		},
	)

	folded, err := Propagate(p)
	require.NoError(t, err)
	assert.Empty(t, mainStatements(t, folded))
}

func TestAssertionStaticallyFailing(t *testing.T) {
	// The folded condition being literally true is the failing case: the
	// statement encodes the constraint the prover must avoid.
	p := program(&typed.Assertion{
		Kind:       typed.AssertionKindUser,
		Expression: binary(typed.OpEq, fv(5), fv(5)),
	})

	_, err := Propagate(p)
	require.Error(t, err)
	assert.Equal(t, ErrorAssertionFailed, err.(*Error).Kind)
	assert.Contains(t, err.Error(), "(5 == 5)")
}

func TestAssertionNonConstantIsKept(t *testing.T) {
	p := program(&typed.Assertion{
		Kind:       typed.AssertionKindUser,
		Expression: binary(typed.OpEq, fieldIdent("a"), fv(1)),
	})

	folded, err := Propagate(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"assert((a == 1))"}, statementStrings(mainStatements(t, folded)))
}

func TestDefinitionTypeMismatch(t *testing.T) {
	a := fieldVar("a")

	p := program(&typed.Definition{Assignee: assignIdent(a), RHS: bv(true)})

	_, err := Propagate(p)
	require.Error(t, err)
	assert.Equal(t, ErrorType, err.(*Error).Kind)
}

func TestNonConstantOverwriteFlushesCache(t *testing.T) {
	arrayTy := typed.ArrayType{Elem: typed.FieldElementType{}, Size: 2}
	a := typed.Variable{ID: "a", Ty: arrayTy}

	// The index is not a literal, so the cached constant cannot be
	// patched in place: it is flushed back in front of the definition.
	p := program(
		&typed.Definition{Assignee: assignIdent(a), RHS: fieldArray(1, 2)},
		&typed.Definition{
			Assignee: &typed.AssigneeSelect{Base: assignIdent(a), Index: uintIdent("j", 32)},
			RHS:      fv(9),
		},
	)

	folded, err := Propagate(p)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"a = [1, 2]",
		"a[j] = 9",
	}, statementStrings(mainStatements(t, folded)))
}

func TestProjectedConstantOverwriteInPlace(t *testing.T) {
	arrayTy := typed.ArrayType{Elem: typed.FieldElementType{}, Size: 3}
	a := typed.Variable{ID: "a", Ty: arrayTy}
	arrayIdent := &typed.IdentifierExpr{ID: "a", Ty: arrayTy}

	p := program(
		&typed.Definition{Assignee: assignIdent(a), RHS: fieldArray(1, 2, 3)},
		&typed.Definition{
			Assignee: &typed.AssigneeSelect{Base: assignIdent(a), Index: uv(32, 1)},
			RHS:      fv(5),
		},
		// Observing the patched cache: a == [1, 5, 3] must fold away.
		&typed.Assertion{
			Kind:       typed.AssertionKindUser,
			Expression: &typed.UnaryExpr{Op: typed.OpBoolNot, Inner: binary(typed.OpEq, arrayIdent, fieldArray(1, 5, 3))},
		},
	)

	folded, err := Propagate(p)
	require.NoError(t, err)
	assert.Empty(t, mainStatements(t, folded))
}

func TestForBoundsFoldedBodyUntouched(t *testing.T) {
	i := typed.Variable{ID: "i", Ty: typed.UintType{Bitwidth: 32}}
	z := fieldVar("z")
	body := []typed.Statement{
		&typed.Definition{Assignee: assignIdent(z), RHS: binary(typed.OpFieldAdd, fv(1), fv(1))},
	}

	p := program(&typed.For{
		Variable: i,
		From:     binary(typed.OpUintAdd, uv(32, 0), uv(32, 0)),
		To:       binary(typed.OpUintAdd, uv(32, 1), uv(32, 1)),
		Body:     body,
	})

	folded, err := Propagate(p)
	require.NoError(t, err)

	statements := mainStatements(t, folded)
	require.Len(t, statements, 1)
	loop := statements[0].(*typed.For)
	assert.Equal(t, "0", loop.From.String())
	assert.Equal(t, "2", loop.To.String())
	// The body is not descended into: unrolling happens upstream.
	assert.Equal(t, "z = (1 + 1)", loop.Body[0].String())
}

func TestCallLogsPassThrough(t *testing.T) {
	p := program(
		&typed.PushCallLog{Function: "helper"},
		&typed.PopCallLog{},
	)

	folded, err := Propagate(p)
	require.NoError(t, err)
	assert.Len(t, mainStatements(t, folded), 2)
}

func TestOtherModulesPassThrough(t *testing.T) {
	a := fieldVar("a")
	other := &typed.Module{Functions: []*typed.Function{{
		Name: "main",
		Statements: []typed.Statement{
			&typed.Definition{Assignee: assignIdent(a), RHS: binary(typed.OpFieldAdd, fv(1), fv(1))},
		},
	}}}

	p := program()
	p.Modules["other"] = other

	folded, err := Propagate(p)
	require.NoError(t, err)
	assert.Equal(t, "a = (1 + 1)", folded.Modules["other"].Functions[0].Statements[0].String())
}

func TestPropagationIsIdempotent(t *testing.T) {
	a := fieldVar("a")
	b := fieldVar("b")

	p := program(
		&typed.Definition{Assignee: assignIdent(a), RHS: binary(typed.OpFieldAdd, fv(2), fv(3))},
		&typed.Definition{Assignee: assignIdent(b), RHS: binary(typed.OpFieldMul, fieldIdent("a"), fieldIdent("x"))},
		&typed.Assertion{Kind: typed.AssertionKindUser, Expression: binary(typed.OpEq, fieldIdent("b"), fv(1))},
	)

	once, err := Propagate(p)
	require.NoError(t, err)
	twice, err := Propagate(once)
	require.NoError(t, err)

	assert.Equal(t, statementStrings(mainStatements(t, once)), statementStrings(mainStatements(t, twice)))
}

func TestWithConstantsSharesEnvironment(t *testing.T) {
	constants := Constants{}

	first := WithConstants(field.BN254, constants)
	_, err := first.FoldStatement(&typed.Definition{
		Assignee: assignIdent(fieldVar("a")),
		RHS:      fv(5),
	})
	require.NoError(t, err)

	second := WithConstants(field.BN254, constants)
	folded, err := second.FoldExpr(fieldIdent("a"))
	require.NoError(t, err)
	assert.Equal(t, "5", folded.String())
}

func TestDoubleConstantDefinitionPanics(t *testing.T) {
	a := fieldVar("a")

	p := program(
		&typed.Definition{Assignee: assignIdent(a), RHS: fv(1)},
		&typed.Definition{Assignee: assignIdent(a), RHS: fv(2)},
	)

	assert.Panics(t, func() {
		_, _ = Propagate(p)
	})
}
