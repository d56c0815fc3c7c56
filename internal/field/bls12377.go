package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

type bls377Element struct {
	inner fr.Element
}

func newBLS377FromUint64(v uint64) Element {
	var e fr.Element
	e.SetUint64(v)
	return bls377Element{inner: e}
}

func newBLS377FromBigInt(v *big.Int) Element {
	var e fr.Element
	e.SetBigInt(v)
	return bls377Element{inner: e}
}

func (e bls377Element) Curve() Curve { return BLS12_377 }

func (e bls377Element) Add(other Element) Element {
	sameCurve(e, other)
	o := other.(bls377Element)
	var r fr.Element
	r.Add(&e.inner, &o.inner)
	return bls377Element{inner: r}
}

func (e bls377Element) Sub(other Element) Element {
	sameCurve(e, other)
	o := other.(bls377Element)
	var r fr.Element
	r.Sub(&e.inner, &o.inner)
	return bls377Element{inner: r}
}

func (e bls377Element) Mul(other Element) Element {
	sameCurve(e, other)
	o := other.(bls377Element)
	var r fr.Element
	r.Mul(&e.inner, &o.inner)
	return bls377Element{inner: r}
}

func (e bls377Element) Div(other Element) Element {
	sameCurve(e, other)
	o := other.(bls377Element)
	var r fr.Element
	r.Div(&e.inner, &o.inner)
	return bls377Element{inner: r}
}

func (e bls377Element) Exp(exponent uint64) Element {
	var r fr.Element
	r.Exp(e.inner, new(big.Int).SetUint64(exponent))
	return bls377Element{inner: r}
}

func (e bls377Element) Neg() Element {
	var r fr.Element
	r.Neg(&e.inner)
	return bls377Element{inner: r}
}

func (e bls377Element) Equal(other Element) bool {
	sameCurve(e, other)
	o := other.(bls377Element)
	return e.inner.Equal(&o.inner)
}

func (e bls377Element) Cmp(other Element) int {
	sameCurve(e, other)
	o := other.(bls377Element)
	return e.inner.Cmp(&o.inner)
}

func (e bls377Element) IsZero() bool { return e.inner.IsZero() }
func (e bls377Element) IsOne() bool  { return e.inner.IsOne() }

func (e bls377Element) Bytes() [32]byte { return e.inner.Bytes() }

func (e bls377Element) BigInt() *big.Int { return e.inner.BigInt(new(big.Int)) }

func (e bls377Element) String() string { return e.inner.String() }
