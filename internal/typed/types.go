package typed

import (
	"fmt"
	"strings"
)

// Type is the static type of a typed expression. All types at this stage
// are concrete: generics have been resolved and array sizes are known.
type Type interface {
	String() string
	Equal(other Type) bool
	isType()
}

// FieldElementType is the prime-field scalar type.
type FieldElementType struct{}

// BooleanType is the boolean type.
type BooleanType struct{}

// UintType is a fixed-width unsigned integer type, width 8, 16, 32 or 64.
type UintType struct {
	Bitwidth int
}

// ArrayType is a fixed-size homogeneous array. The element type and length
// are part of the type.
type ArrayType struct {
	Elem Type
	Size int
}

// StructMember is a named, typed struct field.
type StructMember struct {
	ID   string
	Type Type
}

// StructType is a nominal struct type, identified by its canonical
// (module, name, members) triple.
type StructType struct {
	Module  string
	Name    string
	Members []StructMember
}

// TupleType is a positional product type.
type TupleType struct {
	Elements []Type
}

func (FieldElementType) isType() {}
func (BooleanType) isType()      {}
func (UintType) isType()         {}
func (ArrayType) isType()        {}
func (StructType) isType()       {}
func (TupleType) isType()        {}

func (FieldElementType) String() string { return "field" }
func (BooleanType) String() string      { return "bool" }
func (t UintType) String() string       { return fmt.Sprintf("u%d", t.Bitwidth) }
func (t ArrayType) String() string      { return fmt.Sprintf("%s[%d]", t.Elem, t.Size) }

func (t StructType) String() string {
	if t.Module == "" {
		return t.Name
	}
	return fmt.Sprintf("%s/%s", t.Module, t.Name)
}

func (t TupleType) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

func (FieldElementType) Equal(other Type) bool {
	_, ok := other.(FieldElementType)
	return ok
}

func (BooleanType) Equal(other Type) bool {
	_, ok := other.(BooleanType)
	return ok
}

func (t UintType) Equal(other Type) bool {
	o, ok := other.(UintType)
	return ok && o.Bitwidth == t.Bitwidth
}

func (t ArrayType) Equal(other Type) bool {
	o, ok := other.(ArrayType)
	return ok && o.Size == t.Size && t.Elem.Equal(o.Elem)
}

func (t StructType) Equal(other Type) bool {
	o, ok := other.(StructType)
	if !ok || o.Module != t.Module || o.Name != t.Name || len(o.Members) != len(t.Members) {
		return false
	}
	for i, m := range t.Members {
		if o.Members[i].ID != m.ID || !m.Type.Equal(o.Members[i].Type) {
			return false
		}
	}
	return true
}

func (t TupleType) Equal(other Type) bool {
	o, ok := other.(TupleType)
	if !ok || len(o.Elements) != len(t.Elements) {
		return false
	}
	for i, e := range t.Elements {
		if !e.Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

// Member returns the type of the named struct member. Asking for a member
// that does not exist is a programming error.
func (t StructType) Member(id string) Type {
	for _, m := range t.Members {
		if m.ID == id {
			return m.Type
		}
	}
	panic(fmt.Sprintf("typed: struct %s has no member %q", t, id))
}

// MemberIndex returns the position of the named member.
func (t StructType) MemberIndex(id string) int {
	for i, m := range t.Members {
		if m.ID == id {
			return i
		}
	}
	panic(fmt.Sprintf("typed: struct %s has no member %q", t, id))
}
