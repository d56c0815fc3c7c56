package field

import (
	"fmt"
	"math/big"
)

// Curve selects the prime field the compiler works over. Every element is
// tied to the curve that created it; mixing elements from different curves
// is a programming error and panics.
type Curve int

const (
	BN254 Curve = iota
	BLS12_377
	BLS12_381
)

var curveNames = map[string]Curve{
	"bn254":     BN254,
	"bn128":     BN254,
	"bls12_377": BLS12_377,
	"bls12_381": BLS12_381,
}

// CurveFromName resolves a curve by its command-line name.
func CurveFromName(name string) (Curve, error) {
	c, ok := curveNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown curve %q", name)
	}
	return c, nil
}

func (c Curve) String() string {
	switch c {
	case BN254:
		return "bn254"
	case BLS12_377:
		return "bls12_377"
	case BLS12_381:
		return "bls12_381"
	}
	return "unknown"
}

// Element is an element of the scalar field of the selected curve.
//
// All operations return fresh elements; an Element is immutable once
// created. Bytes returns the canonical big-endian 32-byte encoding with the
// value right-aligned, which is the wire format the proof backends ingest.
type Element interface {
	Curve() Curve

	Add(other Element) Element
	Sub(other Element) Element
	Mul(other Element) Element
	Div(other Element) Element
	Exp(exponent uint64) Element
	Neg() Element

	Equal(other Element) bool
	// Cmp compares the canonical (non-Montgomery) integer representations.
	Cmp(other Element) int
	IsZero() bool
	IsOne() bool

	Bytes() [32]byte
	BigInt() *big.Int
	String() string
}

// Zero returns the additive identity of the curve's scalar field.
func (c Curve) Zero() Element {
	return c.FromUint64(0)
}

// One returns the multiplicative identity of the curve's scalar field.
func (c Curve) One() Element {
	return c.FromUint64(1)
}

// FromUint64 lifts v into the field.
func (c Curve) FromUint64(v uint64) Element {
	switch c {
	case BN254:
		return newBN254FromUint64(v)
	case BLS12_377:
		return newBLS377FromUint64(v)
	case BLS12_381:
		return newBLS381FromUint64(v)
	}
	panic(fmt.Sprintf("field: unsupported curve %d", c))
}

// FromBigInt lifts v into the field, reducing modulo the field order.
func (c Curve) FromBigInt(v *big.Int) Element {
	switch c {
	case BN254:
		return newBN254FromBigInt(v)
	case BLS12_377:
		return newBLS377FromBigInt(v)
	case BLS12_381:
		return newBLS381FromBigInt(v)
	}
	panic(fmt.Sprintf("field: unsupported curve %d", c))
}

// FromString parses a decimal literal into the field.
func (c Curve) FromString(s string) (Element, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid field literal %q", s)
	}
	return c.FromBigInt(v), nil
}

// Bits decomposes e into width big-endian bits (bit 0 is the most
// significant). The second return is false when e does not fit in width
// bits.
func Bits(e Element, width int) ([]bool, bool) {
	v := e.BigInt()
	if v.BitLen() > width {
		return nil, false
	}
	bits := make([]bool, width)
	for i := 0; i < width; i++ {
		bits[i] = v.Bit(width-1-i) == 1
	}
	return bits, true
}

func sameCurve(a, b Element) {
	if a.Curve() != b.Curve() {
		panic(fmt.Sprintf("field: mixed curves %s and %s", a.Curve(), b.Curve()))
	}
}
