package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

type bls381Element struct {
	inner fr.Element
}

func newBLS381FromUint64(v uint64) Element {
	var e fr.Element
	e.SetUint64(v)
	return bls381Element{inner: e}
}

func newBLS381FromBigInt(v *big.Int) Element {
	var e fr.Element
	e.SetBigInt(v)
	return bls381Element{inner: e}
}

func (e bls381Element) Curve() Curve { return BLS12_381 }

func (e bls381Element) Add(other Element) Element {
	sameCurve(e, other)
	o := other.(bls381Element)
	var r fr.Element
	r.Add(&e.inner, &o.inner)
	return bls381Element{inner: r}
}

func (e bls381Element) Sub(other Element) Element {
	sameCurve(e, other)
	o := other.(bls381Element)
	var r fr.Element
	r.Sub(&e.inner, &o.inner)
	return bls381Element{inner: r}
}

func (e bls381Element) Mul(other Element) Element {
	sameCurve(e, other)
	o := other.(bls381Element)
	var r fr.Element
	r.Mul(&e.inner, &o.inner)
	return bls381Element{inner: r}
}

func (e bls381Element) Div(other Element) Element {
	sameCurve(e, other)
	o := other.(bls381Element)
	var r fr.Element
	r.Div(&e.inner, &o.inner)
	return bls381Element{inner: r}
}

func (e bls381Element) Exp(exponent uint64) Element {
	var r fr.Element
	r.Exp(e.inner, new(big.Int).SetUint64(exponent))
	return bls381Element{inner: r}
}

func (e bls381Element) Neg() Element {
	var r fr.Element
	r.Neg(&e.inner)
	return bls381Element{inner: r}
}

func (e bls381Element) Equal(other Element) bool {
	sameCurve(e, other)
	o := other.(bls381Element)
	return e.inner.Equal(&o.inner)
}

func (e bls381Element) Cmp(other Element) int {
	sameCurve(e, other)
	o := other.(bls381Element)
	return e.inner.Cmp(&o.inner)
}

func (e bls381Element) IsZero() bool { return e.inner.IsZero() }
func (e bls381Element) IsOne() bool  { return e.inner.IsOne() }

func (e bls381Element) Bytes() [32]byte { return e.inner.Bytes() }

func (e bls381Element) BigInt() *big.Int { return e.inner.BigInt(new(big.Int)) }

func (e bls381Element) String() string { return e.inner.String() }
