package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

type bn254Element struct {
	inner fr.Element
}

func newBN254FromUint64(v uint64) Element {
	var e fr.Element
	e.SetUint64(v)
	return bn254Element{inner: e}
}

func newBN254FromBigInt(v *big.Int) Element {
	var e fr.Element
	e.SetBigInt(v)
	return bn254Element{inner: e}
}

func (e bn254Element) Curve() Curve { return BN254 }

func (e bn254Element) Add(other Element) Element {
	sameCurve(e, other)
	o := other.(bn254Element)
	var r fr.Element
	r.Add(&e.inner, &o.inner)
	return bn254Element{inner: r}
}

func (e bn254Element) Sub(other Element) Element {
	sameCurve(e, other)
	o := other.(bn254Element)
	var r fr.Element
	r.Sub(&e.inner, &o.inner)
	return bn254Element{inner: r}
}

func (e bn254Element) Mul(other Element) Element {
	sameCurve(e, other)
	o := other.(bn254Element)
	var r fr.Element
	r.Mul(&e.inner, &o.inner)
	return bn254Element{inner: r}
}

func (e bn254Element) Div(other Element) Element {
	sameCurve(e, other)
	o := other.(bn254Element)
	var r fr.Element
	r.Div(&e.inner, &o.inner)
	return bn254Element{inner: r}
}

func (e bn254Element) Exp(exponent uint64) Element {
	var r fr.Element
	r.Exp(e.inner, new(big.Int).SetUint64(exponent))
	return bn254Element{inner: r}
}

func (e bn254Element) Neg() Element {
	var r fr.Element
	r.Neg(&e.inner)
	return bn254Element{inner: r}
}

func (e bn254Element) Equal(other Element) bool {
	sameCurve(e, other)
	o := other.(bn254Element)
	return e.inner.Equal(&o.inner)
}

func (e bn254Element) Cmp(other Element) int {
	sameCurve(e, other)
	o := other.(bn254Element)
	return e.inner.Cmp(&o.inner)
}

func (e bn254Element) IsZero() bool { return e.inner.IsZero() }
func (e bn254Element) IsOne() bool  { return e.inner.IsOne() }

func (e bn254Element) Bytes() [32]byte { return e.inner.Bytes() }

func (e bn254Element) BigInt() *big.Int { return e.inner.BigInt(new(big.Int)) }

func (e bn254Element) String() string { return e.inner.String() }
