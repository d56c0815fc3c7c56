package typed

import (
	"fmt"
	"strings"

	"zkc/internal/ast"
)

// Embed identifies one of the hardcoded compiler intrinsics. Each embed has
// a fixed arithmetic lowering; a subset can additionally be evaluated at
// compile time when every argument is constant.
type Embed int

const (
	EmbedU8FromBits Embed = iota
	EmbedU16FromBits
	EmbedU32FromBits
	EmbedU64FromBits
	EmbedU8ToBits
	EmbedU16ToBits
	EmbedU32ToBits
	EmbedU64ToBits
	EmbedUnpack
	EmbedBitArrayLe
	EmbedSha256Round
	EmbedSnarkVerifyBls12377
)

func (e Embed) String() string {
	switch e {
	case EmbedU8FromBits:
		return "u8_from_bits"
	case EmbedU16FromBits:
		return "u16_from_bits"
	case EmbedU32FromBits:
		return "u32_from_bits"
	case EmbedU64FromBits:
		return "u64_from_bits"
	case EmbedU8ToBits:
		return "u8_to_bits"
	case EmbedU16ToBits:
		return "u16_to_bits"
	case EmbedU32ToBits:
		return "u32_to_bits"
	case EmbedU64ToBits:
		return "u64_to_bits"
	case EmbedUnpack:
		return "unpack"
	case EmbedBitArrayLe:
		return "bit_array_le"
	case EmbedSha256Round:
		return "sha256_round"
	case EmbedSnarkVerifyBls12377:
		return "snark_verify_bls12_377"
	}
	return "unknown_embed"
}

// FromBitsWidth returns the target bitwidth of a U*FromBits embed.
func (e Embed) FromBitsWidth() (int, bool) {
	switch e {
	case EmbedU8FromBits:
		return 8, true
	case EmbedU16FromBits:
		return 16, true
	case EmbedU32FromBits:
		return 32, true
	case EmbedU64FromBits:
		return 64, true
	}
	return 0, false
}

// ToBitsWidth returns the source bitwidth of a U*ToBits embed.
func (e Embed) ToBitsWidth() (int, bool) {
	switch e {
	case EmbedU8ToBits:
		return 8, true
	case EmbedU16ToBits:
		return 16, true
	case EmbedU32ToBits:
		return 32, true
	case EmbedU64ToBits:
		return 64, true
	}
	return 0, false
}

// EmbedCall invokes an intrinsic with resolved generics. It appears only as
// the right-hand side of a definition.
type EmbedCall struct {
	Span      *ast.Span
	Embed     Embed
	Generics  []uint32
	Arguments []Expr
}

func (c *EmbedCall) NodeSpan() *ast.Span { return c.Span }

func (c *EmbedCall) String() string {
	generics := make([]string, len(c.Generics))
	for i, g := range c.Generics {
		generics[i] = fmt.Sprintf("%d", g)
	}
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = a.String()
	}
	if len(generics) > 0 {
		return fmt.Sprintf("%s::<%s>(%s)", c.Embed, strings.Join(generics, ", "), strings.Join(args, ", "))
	}
	return fmt.Sprintf("%s(%s)", c.Embed, strings.Join(args, ", "))
}
