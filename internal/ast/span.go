package ast

import "fmt"

// Position is a line/column pair inside a source file, 1-based.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span locates an IR node in the surface program. Spans exist purely for
// diagnostics: structural equality of nodes ignores them, and passes that
// rewrite a node keep the source span unless they produce a semantically new
// node.
type Span struct {
	File  string
	Start Position
	End   Position
}

func (s *Span) String() string {
	if s == nil {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%s", s.File, s.Start)
}
