package flat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zkc/internal/field"
)

func TestReadWitness(t *testing.T) {
	source := `
~one 1
~out_0 5
_0 3
_1 2
`

	w, err := ReadWitness(strings.NewReader(source), field.BN254)
	require.NoError(t, err)

	assert.Len(t, w, 4)
	assert.True(t, w[One()].Equal(field.BN254.One()))
	assert.True(t, w[Public(0)].Equal(field.BN254.FromUint64(5)))
	assert.True(t, w[NewVariable(0)].Equal(field.BN254.FromUint64(3)))
	assert.True(t, w[NewVariable(1)].Equal(field.BN254.FromUint64(2)))
}

func TestReadWitnessComments(t *testing.T) {
	source := "# header\n~one 1\n"

	w, err := ReadWitness(strings.NewReader(source), field.BN254)
	require.NoError(t, err)
	assert.Len(t, w, 1)
}

func TestReadWitnessRejectsDuplicates(t *testing.T) {
	source := "_0 1\n_0 2\n"

	_, err := ReadWitness(strings.NewReader(source), field.BN254)
	assert.ErrorContains(t, err, "duplicate witness entry")
}

func TestWitnessRoundTrip(t *testing.T) {
	w := Witness{
		One():          field.BN254.One(),
		Public(0):      field.BN254.FromUint64(9),
		NewVariable(3): field.BN254.FromUint64(4),
	}

	var buffer bytes.Buffer
	require.NoError(t, WriteWitness(&buffer, w))

	// Outputs sort before the one-wire, which sorts before ordinary
	// variables.
	assert.Equal(t, "~out_0 9\n~one 1\n_3 4\n", buffer.String())

	read, err := ReadWitness(&buffer, field.BN254)
	require.NoError(t, err)
	assert.Len(t, read, len(w))
	for v, value := range w {
		assert.True(t, read[v].Equal(value))
	}
}

func TestParseVariable(t *testing.T) {
	tests := []struct {
		input string
		want  Variable
	}{
		{"~one", One()},
		{"~out_0", Public(0)},
		{"~out_12", Public(12)},
		{"_0", NewVariable(0)},
		{"_7", NewVariable(7)},
	}
	for _, test := range tests {
		v, err := ParseVariable(test.input)
		require.NoError(t, err)
		assert.Equal(t, test.want, v)
	}

	for _, invalid := range []string{"one", "~out_x", "_", "~out_-1", "x3"} {
		_, err := ParseVariable(invalid)
		assert.Error(t, err, invalid)
	}
}
