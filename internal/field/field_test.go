package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var curves = []Curve{BN254, BLS12_377, BLS12_381}

func TestArithmetic(t *testing.T) {
	for _, curve := range curves {
		t.Run(curve.String(), func(t *testing.T) {
			two := curve.FromUint64(2)
			three := curve.FromUint64(3)

			assert.True(t, two.Add(three).Equal(curve.FromUint64(5)))
			assert.True(t, three.Sub(two).Equal(curve.One()))
			assert.True(t, two.Mul(three).Equal(curve.FromUint64(6)))
			assert.True(t, curve.FromUint64(6).Div(three).Equal(two))
		})
	}
}

func TestSubWrapsAroundModulus(t *testing.T) {
	two := BN254.FromUint64(2)
	three := BN254.FromUint64(3)

	// 2 - 3 has no uint64 representation but is well-defined in the field.
	wrapped := two.Sub(three)
	assert.True(t, wrapped.Add(three).Equal(two))
	assert.True(t, wrapped.Equal(three.Neg().Add(two)))
}

func TestExp(t *testing.T) {
	two := BN254.FromUint64(2)

	assert.True(t, two.Exp(10).Equal(BN254.FromUint64(1024)))
	assert.True(t, two.Exp(0).Equal(BN254.One()))
	assert.True(t, BN254.Zero().Exp(0).Equal(BN254.One()))
}

func TestCmpUsesCanonicalRepresentation(t *testing.T) {
	two := BN254.FromUint64(2)
	three := BN254.FromUint64(3)

	assert.Equal(t, -1, two.Cmp(three))
	assert.Equal(t, 1, three.Cmp(two))
	assert.Equal(t, 0, two.Cmp(BN254.FromUint64(2)))
}

func TestBytesAreBigEndianRightAligned(t *testing.T) {
	for _, curve := range curves {
		t.Run(curve.String(), func(t *testing.T) {
			bytes := curve.FromUint64(5).Bytes()

			assert.Equal(t, byte(5), bytes[31])
			for i := 0; i < 31; i++ {
				assert.Equal(t, byte(0), bytes[i])
			}

			bytes = curve.FromUint64(256).Bytes()
			assert.Equal(t, byte(0), bytes[31])
			assert.Equal(t, byte(1), bytes[30])
		})
	}
}

func TestFromString(t *testing.T) {
	e, err := BN254.FromString("42")
	require.NoError(t, err)
	assert.True(t, e.Equal(BN254.FromUint64(42)))

	_, err = BN254.FromString("not a number")
	assert.Error(t, err)
}

func TestFromBigIntReduces(t *testing.T) {
	modulus, ok := new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)
	require.True(t, ok)

	e := BN254.FromBigInt(new(big.Int).Add(modulus, big.NewInt(7)))
	assert.True(t, e.Equal(BN254.FromUint64(7)))
}

func TestBits(t *testing.T) {
	seventeen := BN254.FromUint64(17)

	_, fits := Bits(seventeen, 4)
	assert.False(t, fits)

	bits, fits := Bits(seventeen, 5)
	require.True(t, fits)
	assert.Equal(t, []bool{true, false, false, false, true}, bits)
}

func TestCurveFromName(t *testing.T) {
	for _, name := range []string{"bn254", "bn128", "bls12_377", "bls12_381"} {
		_, err := CurveFromName(name)
		assert.NoError(t, err)
	}

	_, err := CurveFromName("secp256k1")
	assert.Error(t, err)
}

func TestMixedCurvesPanic(t *testing.T) {
	assert.Panics(t, func() {
		BN254.One().Add(BLS12_381.One())
	})
}
