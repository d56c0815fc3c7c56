package flat

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	pkgerrors "github.com/pkg/errors"

	"zkc/internal/field"
)

// Witness assigns a field value to every variable of a program.
type Witness map[Variable]field.Element

var witnessLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Variable", Pattern: `[~_][a-zA-Z0-9_]*`},
		{Name: "Number", Pattern: `[0-9]+`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	},
})

type witnessEntry struct {
	Variable string `parser:"@Variable"`
	Value    string `parser:"@Number"`
}

type witnessDoc struct {
	Entries []witnessEntry `parser:"@@*"`
}

var witnessParser = participle.MustBuild[witnessDoc](
	participle.Lexer(witnessLexer),
	participle.Elide("Whitespace", "Comment"),
)

// ParseVariable parses the textual form of a variable: `~one`, `~out_i`
// or `_i`.
func ParseVariable(s string) (Variable, error) {
	switch {
	case s == "~one":
		return One(), nil
	case strings.HasPrefix(s, "~out_"):
		i, err := strconv.Atoi(strings.TrimPrefix(s, "~out_"))
		if err != nil || i < 0 {
			return Variable{}, fmt.Errorf("invalid output variable %q", s)
		}
		return Public(i), nil
	case strings.HasPrefix(s, "_"):
		i, err := strconv.Atoi(strings.TrimPrefix(s, "_"))
		if err != nil || i < 0 {
			return Variable{}, fmt.Errorf("invalid variable %q", s)
		}
		return NewVariable(i), nil
	}
	return Variable{}, fmt.Errorf("invalid variable %q", s)
}

// ReadWitness parses the textual witness format: one `<variable> <value>`
// pair per line, values in decimal.
func ReadWitness(r io.Reader, curve field.Curve) (Witness, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "reading witness")
	}

	doc, err := witnessParser.ParseString("witness", string(source))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "parsing witness")
	}

	w := Witness{}
	for _, entry := range doc.Entries {
		v, err := ParseVariable(entry.Variable)
		if err != nil {
			return nil, err
		}
		if _, dup := w[v]; dup {
			return nil, fmt.Errorf("duplicate witness entry for %s", v)
		}
		value, err := curve.FromString(entry.Value)
		if err != nil {
			return nil, err
		}
		w[v] = value
	}
	return w, nil
}

// WriteWitness writes w in the textual witness format, ordered by variable.
func WriteWitness(out io.Writer, w Witness) error {
	variables := make([]Variable, 0, len(w))
	for v := range w {
		variables = append(variables, v)
	}
	sort.Slice(variables, func(i, j int) bool { return variables[i].Less(variables[j]) })

	for _, v := range variables {
		if _, err := fmt.Fprintf(out, "%s %s\n", v, w[v].BigInt()); err != nil {
			return pkgerrors.Wrap(err, "writing witness")
		}
	}
	return nil
}
