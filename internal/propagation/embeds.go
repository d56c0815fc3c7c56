package propagation

import (
	"zkc/internal/field"
	"zkc/internal/typed"
)

// foldEmbedDefinition evaluates an intrinsic call when every argument is
// constant; otherwise the call is emitted and any cached constant for the
// assignee's root is flushed back into the program.
func (pr *Propagator) foldEmbedDefinition(s *typed.EmbedDefinition) ([]typed.Statement, error) {
	assignee, err := pr.FoldAssignee(s.Assignee)
	if err != nil {
		return nil, err
	}
	call, err := typed.FoldEmbedCall(pr, s.Call)
	if err != nil {
		return nil, err
	}

	allConstant := true
	for _, a := range call.Arguments {
		if !typed.IsConstant(a) {
			allConstant = false
			break
		}
	}

	emit := &typed.EmbedDefinition{Span: s.Span, Assignee: assignee, Call: call}

	if !allConstant {
		root, _, _ := pr.tryGetConstantSlot(assignee)
		return pr.flushEmbed(root, emit), nil
	}

	result, err := pr.evalEmbed(call, assignee)
	if err != nil {
		return nil, err
	}
	if result == nil {
		// Only a subset of embeds is evaluated here; the rest always
		// lowers to circuit logic, so the cache must be invalidated.
		root, _, _ := pr.tryGetConstantSlot(assignee)
		return pr.flushEmbed(root, emit), nil
	}

	if id, isIdentifier := assignee.(*typed.AssigneeIdentifier); isIdentifier {
		pr.constants[id.Variable.ID] = &result
		return nil, nil
	}
	root, slot, ok := pr.tryGetConstantSlot(assignee)
	if ok {
		*slot = result
		return nil, nil
	}
	return pr.flushAndDefine(root, &typed.Definition{Span: s.Span, Assignee: assignee, RHS: result}), nil
}

func (pr *Propagator) flushEmbed(root typed.Variable, emit *typed.EmbedDefinition) []typed.Statement {
	slot, cached := pr.constants[root.ID]
	if !cached {
		return []typed.Statement{emit}
	}
	delete(pr.constants, root.ID)
	restore := &typed.Definition{
		Assignee: &typed.AssigneeIdentifier{Variable: root},
		RHS:      *slot,
	}
	return []typed.Statement{restore, emit}
}

// evalEmbed computes the constant result of an intrinsic, or nil for the
// embeds that never fold (their lowering is always emitted).
func (pr *Propagator) evalEmbed(call *typed.EmbedCall, assignee typed.Assignee) (typed.Expr, error) {
	if width, ok := call.Embed.FromBitsWidth(); ok {
		return evalFromBits(call, width), nil
	}
	if width, ok := call.Embed.ToBitsWidth(); ok {
		return evalToBits(call, width), nil
	}
	if call.Embed == typed.EmbedUnpack {
		return pr.evalUnpack(call, assignee)
	}
	// BitArrayLe, Sha256Round, SnarkVerifyBls12377.
	return nil, nil
}

// evalFromBits packs a big-endian boolean array into an unsigned value:
// bit 0 is the most significant.
func evalFromBits(call *typed.EmbedCall, width int) typed.Expr {
	if len(call.Arguments) != 1 {
		panic("propagation: from_bits takes exactly one argument")
	}
	array, isArray := typed.Canonicalise(call.Arguments[0]).(*typed.ArrayValue)
	if !isArray {
		panic("propagation: from_bits argument should be an array value")
	}

	var acc uint64
	for i, item := range array.Elements {
		bit, isBool := item.(*typed.BoolValue)
		if !isBool {
			// Spreads cannot survive canonicalisation of a constant.
			panic("propagation: from_bits argument should be a constant boolean array")
		}
		if bit.Value {
			acc += uint64(1) << (width - i - 1)
		}
	}
	return &typed.UintValue{Bitwidth: width, Value: acc}
}

// evalToBits is the inverse: it unpacks an unsigned value into width
// big-endian booleans.
func evalToBits(call *typed.EmbedCall, width int) typed.Expr {
	if len(call.Arguments) != 1 {
		panic("propagation: to_bits takes exactly one argument")
	}
	value, isUint := call.Arguments[0].(*typed.UintValue)
	if !isUint {
		panic("propagation: to_bits argument should be a uint value")
	}

	elements := make([]typed.Expr, width)
	for i := 0; i < width; i++ {
		elements[i] = &typed.BoolValue{Value: value.Value>>(width-i-1)&1 == 1}
	}
	return &typed.ArrayValue{Elem: typed.BooleanType{}, Elements: elements}
}

// evalUnpack decomposes a field element into its big-endian bits, failing
// when the element exceeds 2^bitWidth - 1.
func (pr *Propagator) evalUnpack(call *typed.EmbedCall, assignee typed.Assignee) (typed.Expr, error) {
	if len(call.Arguments) != 1 || len(call.Generics) != 1 {
		panic("propagation: unpack takes one argument and one generic")
	}
	bitWidth := int(call.Generics[0])

	value, isField := call.Arguments[0].(*typed.FieldValue)
	if !isField {
		panic("propagation: unpack argument should be a field value")
	}

	bits, fits := field.Bits(value.Value, bitWidth)
	if !fits {
		return nil, valueTooLarge("Cannot unpack `%s` to `%s`: value is too large", value, assignee.Type())
	}

	elements := make([]typed.Expr, bitWidth)
	for i, b := range bits {
		elements[i] = &typed.BoolValue{Value: b}
	}
	return &typed.ArrayValue{Elem: typed.BooleanType{}, Elements: elements}, nil
}
