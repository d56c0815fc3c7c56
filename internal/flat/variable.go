package flat

import "fmt"

// Variable is an opaque wire identifier. Three constructors exist: One for
// the constant-1 wire, Public for the i-th public output wire, and
// NewVariable for everything else (upstream passes hand out fresh ids).
//
// Variables are comparable, usable as map keys, and totally ordered by
// their internal id: outputs sort before the one-wire, which sorts before
// ordinary variables.
type Variable struct {
	id int
}

// NewVariable returns the i-th ordinary variable.
func NewVariable(i int) Variable {
	return Variable{id: i + 1}
}

// One returns the constant-1 wire.
func One() Variable {
	return Variable{}
}

// Public returns the i-th public output wire.
func Public(i int) Variable {
	return Variable{id: -(i + 1)}
}

// IsOutput reports whether v is a public output wire.
func (v Variable) IsOutput() bool {
	return v.id < 0
}

// Less orders variables by internal id.
func (v Variable) Less(other Variable) bool {
	return v.id < other.id
}

func (v Variable) String() string {
	switch {
	case v.id == 0:
		return "~one"
	case v.id < 0:
		return fmt.Sprintf("~out_%d", -v.id-1)
	default:
		return fmt.Sprintf("_%d", v.id-1)
	}
}

// Parameter is a main-function argument. Non-private parameters become
// public input columns in the constraint system.
type Parameter struct {
	Variable Variable
	Private  bool
}

func (p Parameter) String() string {
	if p.Private {
		return fmt.Sprintf("private %s", p.Variable)
	}
	return p.Variable.String()
}
