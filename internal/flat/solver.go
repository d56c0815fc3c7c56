package flat

import "fmt"

// Solver identifies an external witness-generation routine. The core treats
// solvers as opaque: it only needs value equality (for directive
// deduplication) and the input/output arity.
type Solver struct {
	Name     string
	InCount  int
	OutCount int
}

// NewSolver builds a solver handle with the given arity.
func NewSolver(name string, inCount, outCount int) Solver {
	return Solver{Name: name, InCount: inCount, OutCount: outCount}
}

// Signature returns the (input, output) arity of the solver.
func (s Solver) Signature() (int, int) {
	return s.InCount, s.OutCount
}

func (s Solver) String() string {
	return fmt.Sprintf("%s/%d", s.Name, s.InCount)
}
