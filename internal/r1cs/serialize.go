package r1cs

import (
	"encoding/binary"

	pkgerrors "github.com/pkg/errors"

	"zkc/internal/flat"
)

// The backend ABI packs one record per non-zero coefficient:
//
//	{ row: i32 @ 0, column: i32 @ 4, value: [u8; 32] @ 8 }
//
// row and column are little-endian, value is the field element's canonical
// big-endian 32-byte encoding.
const (
	recordSize  = 40
	rowOffset   = 0
	idxOffset   = 4
	valueOffset = 8
)

// Setup is the proof-system-independent input of the setup phase: the
// serialised A, B and C matrices plus the program dimensions. The byte
// layout is stable; backends consume it as-is.
type Setup struct {
	A []byte
	B []byte
	C []byte

	NumConstraints int
	NumVariables   int
	NumInputs      int
}

func appendRecord(buf []byte, row, column int32, value [32]byte) []byte {
	var record [recordSize]byte
	binary.LittleEndian.PutUint32(record[rowOffset:], uint32(row))
	binary.LittleEndian.PutUint32(record[idxOffset:], uint32(column))
	copy(record[valueOffset:], value[:])
	return append(buf, record[:]...)
}

// readRecord decodes one 40-byte record.
func readRecord(buf []byte) (int32, int32, [32]byte) {
	row := int32(binary.LittleEndian.Uint32(buf[rowOffset:]))
	column := int32(binary.LittleEndian.Uint32(buf[idxOffset:]))
	var value [32]byte
	copy(value[:], buf[valueOffset:recordSize])
	return row, column, value
}

// PrepareSetup lowers p and serialises its matrices for backend ingestion.
func PrepareSetup(p Prog) Setup {
	variables, publicVariablesCount, constraints := Lower(p)

	setup := Setup{
		NumConstraints: len(constraints),
		NumVariables:   len(variables),
		NumInputs:      publicVariablesCount - 1,
	}

	for row, constraint := range constraints {
		for _, term := range constraint.A {
			setup.A = appendRecord(setup.A, int32(row), int32(term.Column), term.Value.Bytes())
		}
		for _, term := range constraint.B {
			setup.B = appendRecord(setup.B, int32(row), int32(term.Column), term.Value.Bytes())
		}
		for _, term := range constraint.C {
			setup.C = appendRecord(setup.C, int32(row), int32(term.Column), term.Value.Bytes())
		}
	}
	return setup
}

// PrepareProof materialises the witness slices for proof generation: the
// public slice covers the first publicVariablesCount columns, the private
// slice the rest. Backends require non-empty buffers, so an empty private
// slice is padded with a single zero record; PrivateCount still reports
// the real length.
type Proof struct {
	Public  [][32]byte
	Private [][32]byte

	PublicCount  int
	PrivateCount int
}

func PrepareProof(p Prog, witness flat.Witness) (Proof, error) {
	variables, publicVariablesCount, _ := Lower(p)

	values := make([][32]byte, len(variables))
	for i, v := range variables {
		value, ok := witness[v]
		if !ok {
			return Proof{}, pkgerrors.Errorf("missing witness value for %s", v)
		}
		values[i] = value.Bytes()
	}

	public := values[:publicVariablesCount]
	private := values[publicVariablesCount:]

	proof := Proof{
		Public:       public,
		Private:      private,
		PublicCount:  len(public),
		PrivateCount: len(private),
	}
	if len(private) == 0 {
		proof.Private = [][32]byte{{}}
	}
	return proof, nil
}
